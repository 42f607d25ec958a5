package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	areaModel "masjida_backend/internals/features/areas/model"
	mosqueModel "masjida_backend/internals/features/mosques/mosques/model"
	specializationModel "masjida_backend/internals/features/specializations/model"
)

// State pendakwah: diset langsung oleh admin, tidak ada method transisi.
const (
	PreacherStateDraft     = "draft"
	PreacherStateProses    = "proses"
	PreacherStateConfirmed = "confirmed"
	PreacherStateRejected  = "rejected"
	PreacherStateCancelled = "cancelled"
)

const (
	GenderMale   = "male"
	GenderFemale = "female"
)

type PreacherModel struct {
	PreacherID               uuid.UUID      `gorm:"type:uuid;primaryKey" json:"preacher_id"`
	PreacherCode             string         `gorm:"type:varchar(50);not null" json:"preacher_code"`
	PreacherName             string         `gorm:"type:varchar(100);not null" json:"preacher_name"`
	PreacherEmail            string         `gorm:"type:varchar(255)" json:"preacher_email"`
	PreacherPhone            string         `gorm:"type:varchar(30)" json:"preacher_phone"`
	PreacherBio              string         `gorm:"type:text" json:"preacher_bio"`
	PreacherEducation        string         `gorm:"type:varchar(255)" json:"preacher_education"`
	PreacherDateOfBirth      *time.Time     `gorm:"type:date" json:"preacher_date_of_birth,omitempty"`
	PreacherGender           string         `gorm:"type:varchar(10);default:'male'" json:"preacher_gender"`
	PreacherSpecializationID *uuid.UUID     `gorm:"type:uuid;index" json:"preacher_specialization_id,omitempty"`
	PreacherAreaID           *uuid.UUID     `gorm:"type:uuid;index" json:"preacher_area_id,omitempty"`
	PreacherUserID           *uuid.UUID     `gorm:"type:uuid;index" json:"preacher_user_id,omitempty"`
	PreacherPeriod           float64        `gorm:"type:decimal(5,2);default:0" json:"preacher_period"`
	PreacherImageURL         string         `gorm:"type:text" json:"preacher_image_url"`
	PreacherState            string         `gorm:"type:varchar(20);not null;default:'draft'" json:"preacher_state"`
	PreacherDisplayName      string         `gorm:"type:text" json:"preacher_display_name"`
	PreacherCreatedAt        time.Time      `gorm:"autoCreateTime" json:"preacher_created_at"`
	PreacherUpdatedAt        time.Time      `gorm:"autoUpdateTime" json:"preacher_updated_at"`
	PreacherDeletedAt        gorm.DeletedAt `gorm:"column:preacher_deleted_at" json:"preacher_deleted_at,omitempty"`

	Area           *areaModel.AreaModel                     `gorm:"foreignKey:PreacherAreaID;references:AreaID" json:"area,omitempty"`
	Specialization *specializationModel.SpecializationModel `gorm:"foreignKey:PreacherSpecializationID;references:SpecializationID" json:"specialization,omitempty"`
}

func (PreacherModel) TableName() string {
	return "preachers"
}

func (m *PreacherModel) BeforeCreate(tx *gorm.DB) error {
	if m.PreacherID == uuid.Nil {
		m.PreacherID = uuid.New()
	}
	return nil
}

// BeforeSave menghitung ulang display_name "[CODE] Nama (Area)".
func (m *PreacherModel) BeforeSave(tx *gorm.DB) error {
	areaName := ""
	if m.PreacherAreaID != nil && *m.PreacherAreaID != uuid.Nil {
		if err := tx.Table("areas").
			Select("area_name").
			Where("area_id = ? AND area_deleted_at IS NULL", *m.PreacherAreaID).
			Scan(&areaName).Error; err != nil {
			return err
		}
	}
	m.PreacherDisplayName = mosqueModel.DisplayLabel(m.PreacherCode, m.PreacherName, areaName)
	return nil
}
