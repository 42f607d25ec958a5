package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	mosqueModel "masjida_backend/internals/features/mosques/mosques/model"
	preacherModel "masjida_backend/internals/features/preachers/preachers/model"
)

// Lifecycle jadwal:
//
//	draft → sent → confirmed → done|cancelled
//	              ↘ rejected
//	       ↘ cancelled (saat masih sent)
const (
	ScheduleStateDraft     = "draft"
	ScheduleStateSent      = "sent"
	ScheduleStateConfirmed = "confirmed"
	ScheduleStateRejected  = "rejected"
	ScheduleStateDone      = "done"
	ScheduleStateCancelled = "cancelled"
)

type SermonScheduleModel struct {
	SermonScheduleID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"sermon_schedule_id"`
	SermonScheduleMosqueID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"sermon_schedule_mosque_id"`
	SermonSchedulePreacherID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"sermon_schedule_preacher_id"`
	SermonScheduleTopic       string         `gorm:"type:varchar(255);not null" json:"sermon_schedule_topic"`
	SermonScheduleDescription string         `gorm:"type:text" json:"sermon_schedule_description"`
	SermonScheduleStartTime   time.Time      `gorm:"not null;index" json:"sermon_schedule_start_time"`
	SermonScheduleEndTime     *time.Time     `json:"sermon_schedule_end_time,omitempty"`
	SermonScheduleState       string         `gorm:"type:varchar(20);not null;default:'draft';index" json:"sermon_schedule_state"`
	SermonScheduleCreatedAt   time.Time      `gorm:"autoCreateTime" json:"sermon_schedule_created_at"`
	SermonScheduleUpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"sermon_schedule_updated_at"`
	SermonScheduleDeletedAt   gorm.DeletedAt `gorm:"column:sermon_schedule_deleted_at" json:"sermon_schedule_deleted_at,omitempty"`

	Mosque   *mosqueModel.MosqueModel     `gorm:"foreignKey:SermonScheduleMosqueID;references:MosqueID;constraint:OnDelete:CASCADE" json:"mosque,omitempty"`
	Preacher *preacherModel.PreacherModel `gorm:"foreignKey:SermonSchedulePreacherID;references:PreacherID;constraint:OnDelete:CASCADE" json:"preacher,omitempty"`
}

func (SermonScheduleModel) TableName() string {
	return "sermon_schedules"
}

func (m *SermonScheduleModel) BeforeCreate(tx *gorm.DB) error {
	if m.SermonScheduleID == uuid.Nil {
		m.SermonScheduleID = uuid.New()
	}
	return nil
}
