// file: internals/features/sermons/proposals/service/proposal_service.go
package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	boardModel "masjida_backend/internals/features/mosques/mosque_boards/model"
	"masjida_backend/internals/features/sermons/proposals/model"
	scheduleModel "masjida_backend/internals/features/sermons/schedules/model"
	identityService "masjida_backend/internals/features/users/identity/service"
)

var (
	ErrProposalNotFound  = errors.New("proposal tidak ditemukan")
	ErrNotAllowed        = errors.New("Anda tidak berwenang untuk aksi ini")
	ErrInvalidTransition = errors.New("state proposal tidak mengizinkan aksi ini")
	ErrNoLinkedPreacher  = identityService.ErrNoLinkedPreacher
)

func loadProposal(db *gorm.DB, id uuid.UUID) (*model.SermonProposalModel, error) {
	var prop model.SermonProposalModel
	if err := db.First(&prop, "sermon_proposal_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProposalNotFound
		}
		return nil, err
	}
	return &prop, nil
}

// Create membuat proposal atas nama preacher yang terhubung ke akun pemanggil;
// field preacher tidak pernah diterima dari input. Proposal langsung
// di-submit (alur portal: create = ajukan).
func Create(db *gorm.DB, callerID, mosqueID uuid.UUID, topic string, startTime time.Time, notes string) (*model.SermonProposalModel, error) {
	preacher, err := identityService.PreacherForUser(db, callerID)
	if err != nil {
		return nil, err
	}

	prop := model.SermonProposalModel{
		SermonProposalPreacherID:        preacher.PreacherID,
		SermonProposalMosqueID:          mosqueID,
		SermonProposalProposedTopic:     topic,
		SermonProposalProposedStartTime: startTime,
		SermonProposalNotes:             notes,
		SermonProposalState:             model.ProposalStateDraft,
	}
	if err := db.Create(&prop).Error; err != nil {
		return nil, err
	}
	return Submit(db, prop.SermonProposalID, callerID)
}

// Submit: draft → submitted, hanya oleh preacher pemilik proposal.
func Submit(db *gorm.DB, proposalID, callerID uuid.UUID) (*model.SermonProposalModel, error) {
	prop, err := loadProposal(db, proposalID)
	if err != nil {
		return nil, err
	}

	preacher, err := identityService.PreacherForUser(db, callerID)
	if err != nil {
		if errors.Is(err, identityService.ErrNoLinkedPreacher) {
			return nil, ErrNotAllowed
		}
		return nil, err
	}
	if preacher.PreacherID != prop.SermonProposalPreacherID {
		return nil, ErrNotAllowed
	}

	if prop.SermonProposalState != model.ProposalStateDraft {
		return nil, ErrInvalidTransition
	}
	if err := db.Model(&model.SermonProposalModel{}).
		Where("sermon_proposal_id = ?", prop.SermonProposalID).
		Update("sermon_proposal_state", model.ProposalStateSubmitted).Error; err != nil {
		return nil, err
	}
	prop.SermonProposalState = model.ProposalStateSubmitted
	return prop, nil
}

// Approve: submitted → approved oleh pengurus masjid tujuan. Dalam SATU
// transaksi: buat jadwal baru langsung confirmed (bypass send/confirm) dan
// tandai proposal approved — gagal salah satu, dua-duanya batal.
func Approve(db *gorm.DB, proposalID, callerID uuid.UUID) (*model.SermonProposalModel, *scheduleModel.SermonScheduleModel, error) {
	prop, err := loadProposal(db, proposalID)
	if err != nil {
		return nil, nil, err
	}

	isBoard, err := boardModel.IsBoardMember(db, prop.SermonProposalMosqueID, callerID)
	if err != nil {
		return nil, nil, err
	}
	if !isBoard {
		return nil, nil, ErrNotAllowed
	}

	if prop.SermonProposalState != model.ProposalStateSubmitted {
		return nil, nil, ErrInvalidTransition
	}

	sched := scheduleModel.SermonScheduleModel{
		SermonScheduleMosqueID:   prop.SermonProposalMosqueID,
		SermonSchedulePreacherID: prop.SermonProposalPreacherID,
		SermonScheduleTopic:      prop.SermonProposalProposedTopic,
		SermonScheduleStartTime:  prop.SermonProposalProposedStartTime,
		SermonScheduleState:      scheduleModel.ScheduleStateConfirmed,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&sched).Error; err != nil {
			return err
		}
		return tx.Model(&model.SermonProposalModel{}).
			Where("sermon_proposal_id = ?", prop.SermonProposalID).
			Update("sermon_proposal_state", model.ProposalStateApproved).Error
	})
	if err != nil {
		return nil, nil, err
	}

	prop.SermonProposalState = model.ProposalStateApproved
	return prop, &sched, nil
}

// Reject: submitted → rejected oleh pengurus masjid tujuan.
func Reject(db *gorm.DB, proposalID, callerID uuid.UUID) (*model.SermonProposalModel, error) {
	prop, err := loadProposal(db, proposalID)
	if err != nil {
		return nil, err
	}

	isBoard, err := boardModel.IsBoardMember(db, prop.SermonProposalMosqueID, callerID)
	if err != nil {
		return nil, err
	}
	if !isBoard {
		return nil, ErrNotAllowed
	}

	if prop.SermonProposalState != model.ProposalStateSubmitted {
		return nil, ErrInvalidTransition
	}
	if err := db.Model(&model.SermonProposalModel{}).
		Where("sermon_proposal_id = ?", prop.SermonProposalID).
		Update("sermon_proposal_state", model.ProposalStateRejected).Error; err != nil {
		return nil, err
	}
	prop.SermonProposalState = model.ProposalStateRejected
	return prop, nil
}
