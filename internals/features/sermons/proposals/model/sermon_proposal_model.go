package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	mosqueModel "masjida_backend/internals/features/mosques/mosques/model"
	preacherModel "masjida_backend/internals/features/preachers/preachers/model"
)

// Lifecycle proposal: draft → submitted → approved|rejected (terminal).
const (
	ProposalStateDraft     = "draft"
	ProposalStateSubmitted = "submitted"
	ProposalStateApproved  = "approved"
	ProposalStateRejected  = "rejected"
)

type SermonProposalModel struct {
	SermonProposalID                uuid.UUID      `gorm:"type:uuid;primaryKey" json:"sermon_proposal_id"`
	SermonProposalPreacherID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"sermon_proposal_preacher_id"`
	SermonProposalMosqueID          uuid.UUID      `gorm:"type:uuid;not null;index" json:"sermon_proposal_mosque_id"`
	SermonProposalProposedTopic     string         `gorm:"type:varchar(255);not null" json:"sermon_proposal_proposed_topic"`
	SermonProposalProposedStartTime time.Time      `gorm:"not null" json:"sermon_proposal_proposed_start_time"`
	SermonProposalNotes             string         `gorm:"type:text" json:"sermon_proposal_notes"`
	SermonProposalState             string         `gorm:"type:varchar(20);not null;default:'draft';index" json:"sermon_proposal_state"`
	SermonProposalCreatedAt         time.Time      `gorm:"autoCreateTime" json:"sermon_proposal_created_at"`
	SermonProposalUpdatedAt         time.Time      `gorm:"autoUpdateTime" json:"sermon_proposal_updated_at"`
	SermonProposalDeletedAt         gorm.DeletedAt `gorm:"column:sermon_proposal_deleted_at" json:"sermon_proposal_deleted_at,omitempty"`

	Mosque   *mosqueModel.MosqueModel     `gorm:"foreignKey:SermonProposalMosqueID;references:MosqueID" json:"mosque,omitempty"`
	Preacher *preacherModel.PreacherModel `gorm:"foreignKey:SermonProposalPreacherID;references:PreacherID;constraint:OnDelete:CASCADE" json:"preacher,omitempty"`
}

func (SermonProposalModel) TableName() string {
	return "sermon_proposals"
}

func (m *SermonProposalModel) BeforeCreate(tx *gorm.DB) error {
	if m.SermonProposalID == uuid.Nil {
		m.SermonProposalID = uuid.New()
	}
	return nil
}
