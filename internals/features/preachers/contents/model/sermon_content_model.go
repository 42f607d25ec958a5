package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ContentTypeText  = "text"
	ContentTypeImage = "image"
	ContentTypeVideo = "video"
)

const (
	ContentStateDraft     = "draft"
	ContentStatePublished = "published"
)

type SermonContentModel struct {
	SermonContentID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"sermon_content_id"`
	SermonContentTitle       string         `gorm:"type:varchar(255);not null" json:"sermon_content_title"`
	SermonContentPreacherID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"sermon_content_preacher_id"`
	SermonContentType        string         `gorm:"type:varchar(10);not null;default:'text'" json:"sermon_content_type"`
	SermonContentText        string         `gorm:"type:text" json:"sermon_content_text"`
	SermonContentImageURL    string         `gorm:"type:text" json:"sermon_content_image_url"`
	SermonContentVideoURL    string         `gorm:"type:text" json:"sermon_content_video_url"`
	SermonContentPublishDate *time.Time     `json:"sermon_content_publish_date,omitempty"`
	SermonContentState       string         `gorm:"type:varchar(20);not null;default:'draft'" json:"sermon_content_state"`
	SermonContentCreatedAt   time.Time      `gorm:"autoCreateTime" json:"sermon_content_created_at"`
	SermonContentUpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"sermon_content_updated_at"`
	SermonContentDeletedAt   gorm.DeletedAt `gorm:"column:sermon_content_deleted_at" json:"sermon_content_deleted_at,omitempty"`
}

func (SermonContentModel) TableName() string {
	return "sermon_contents"
}

func (m *SermonContentModel) BeforeCreate(tx *gorm.DB) error {
	if m.SermonContentID == uuid.Nil {
		m.SermonContentID = uuid.New()
	}
	return nil
}

// Publish menerbitkan konten dan menstempel publish_date=now.
func (m *SermonContentModel) Publish(now time.Time) {
	m.SermonContentState = ContentStatePublished
	m.SermonContentPublishDate = &now
}

// Unpublish mengembalikan konten ke draft.
func (m *SermonContentModel) Unpublish() {
	m.SermonContentState = ContentStateDraft
}
