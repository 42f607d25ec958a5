package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AreaModel struct {
	AreaID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"area_id"`
	AreaName      string         `gorm:"type:varchar(100);uniqueIndex;not null" json:"area_name"`
	AreaParentID  *uuid.UUID     `gorm:"type:uuid;index" json:"area_parent_id,omitempty"`
	AreaLatitude  *float64       `gorm:"type:decimal(10,7)" json:"area_latitude,omitempty"`
	AreaLongitude *float64       `gorm:"type:decimal(10,7)" json:"area_longitude,omitempty"`
	AreaCreatedAt time.Time      `gorm:"autoCreateTime" json:"area_created_at"`
	AreaUpdatedAt time.Time      `gorm:"autoUpdateTime" json:"area_updated_at"`
	AreaDeletedAt gorm.DeletedAt `gorm:"column:area_deleted_at" json:"area_deleted_at,omitempty"`

	// Self reference: hapus parent -> sub-area ikut terhapus (cascade di store)
	Parent *AreaModel `gorm:"foreignKey:AreaParentID;references:AreaID;constraint:OnDelete:CASCADE" json:"-"`
}

func (AreaModel) TableName() string {
	return "areas"
}

func (m *AreaModel) BeforeCreate(tx *gorm.DB) error {
	if m.AreaID == uuid.Nil {
		m.AreaID = uuid.New()
	}
	return nil
}
