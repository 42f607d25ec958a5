package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	HelpRequestStateOpen   = "open"
	HelpRequestStateClosed = "closed"
)

type HelpTypeModel struct {
	HelpTypeID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"help_type_id"`
	HelpTypeName      string         `gorm:"type:varchar(100);uniqueIndex;not null" json:"help_type_name"`
	HelpTypeCreatedAt time.Time      `gorm:"autoCreateTime" json:"help_type_created_at"`
	HelpTypeDeletedAt gorm.DeletedAt `gorm:"column:help_type_deleted_at" json:"help_type_deleted_at,omitempty"`
}

func (HelpTypeModel) TableName() string { return "help_types" }

func (m *HelpTypeModel) BeforeCreate(tx *gorm.DB) error {
	if m.HelpTypeID == uuid.Nil {
		m.HelpTypeID = uuid.New()
	}
	return nil
}

// HelpRequestModel: tiket bantuan dari akun pendakwah.
type HelpRequestModel struct {
	HelpRequestID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"help_request_id"`
	HelpRequestUserID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"help_request_user_id"`
	HelpRequestHelpTypeID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"help_request_help_type_id"`
	HelpRequestDescription string         `gorm:"type:text;not null" json:"help_request_description"`
	HelpRequestState       string         `gorm:"type:varchar(20);not null;default:'open'" json:"help_request_state"`
	HelpRequestCreatedAt   time.Time      `gorm:"autoCreateTime" json:"help_request_created_at"`
	HelpRequestUpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"help_request_updated_at"`
	HelpRequestDeletedAt   gorm.DeletedAt `gorm:"column:help_request_deleted_at" json:"help_request_deleted_at,omitempty"`

	HelpType *HelpTypeModel `gorm:"foreignKey:HelpRequestHelpTypeID;references:HelpTypeID" json:"help_type,omitempty"`
}

func (HelpRequestModel) TableName() string { return "help_requests" }

func (m *HelpRequestModel) BeforeCreate(tx *gorm.DB) error {
	if m.HelpRequestID == uuid.Nil {
		m.HelpRequestID = uuid.New()
	}
	return nil
}
