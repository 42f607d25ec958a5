// file: internals/features/sermons/proposals/dto/sermon_proposal_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"masjida_backend/internals/features/sermons/proposals/model"
	scheduleDTO "masjida_backend/internals/features/sermons/schedules/dto"
)

// SermonProposalRequest: input portal. Preacher tidak pernah diterima dari
// body — selalu diambil dari akun yang login.
type SermonProposalRequest struct {
	SermonProposalMosqueID          uuid.UUID `json:"sermon_proposal_mosque_id" validate:"required"`
	SermonProposalProposedTopic     string    `json:"sermon_proposal_proposed_topic" validate:"required,max=255"`
	SermonProposalProposedStartTime time.Time `json:"sermon_proposal_proposed_start_time" validate:"required"`
	SermonProposalNotes             string    `json:"sermon_proposal_notes"`
}

type SermonProposalResponse struct {
	SermonProposalID                string    `json:"sermon_proposal_id"`
	SermonProposalPreacherID        string    `json:"sermon_proposal_preacher_id"`
	SermonProposalMosqueID          string    `json:"sermon_proposal_mosque_id"`
	SermonProposalProposedTopic     string    `json:"sermon_proposal_proposed_topic"`
	SermonProposalProposedStartTime time.Time `json:"sermon_proposal_proposed_start_time"`
	SermonProposalNotes             string    `json:"sermon_proposal_notes"`
	SermonProposalState             string    `json:"sermon_proposal_state"`
}

// SermonProposalApproveResponse: hasil approve — proposal plus jadwal
// confirmed yang dimaterialisasi dari proposal tersebut.
type SermonProposalApproveResponse struct {
	Proposal SermonProposalResponse             `json:"proposal"`
	Schedule scheduleDTO.SermonScheduleResponse `json:"schedule"`
}

func FromModelSermonProposal(m *model.SermonProposalModel) SermonProposalResponse {
	return SermonProposalResponse{
		SermonProposalID:                m.SermonProposalID.String(),
		SermonProposalPreacherID:        m.SermonProposalPreacherID.String(),
		SermonProposalMosqueID:          m.SermonProposalMosqueID.String(),
		SermonProposalProposedTopic:     m.SermonProposalProposedTopic,
		SermonProposalProposedStartTime: m.SermonProposalProposedStartTime,
		SermonProposalNotes:             m.SermonProposalNotes,
		SermonProposalState:             m.SermonProposalState,
	}
}
