package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SpecializationModel struct {
	SpecializationID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"specialization_id"`
	SpecializationName      string         `gorm:"type:varchar(100);uniqueIndex;not null" json:"specialization_name"`
	SpecializationCreatedAt time.Time      `gorm:"autoCreateTime" json:"specialization_created_at"`
	SpecializationUpdatedAt time.Time      `gorm:"autoUpdateTime" json:"specialization_updated_at"`
	SpecializationDeletedAt gorm.DeletedAt `gorm:"column:specialization_deleted_at" json:"specialization_deleted_at,omitempty"`
}

func (SpecializationModel) TableName() string {
	return "specializations"
}

func (m *SpecializationModel) BeforeCreate(tx *gorm.DB) error {
	if m.SpecializationID == uuid.Nil {
		m.SpecializationID = uuid.New()
	}
	return nil
}
