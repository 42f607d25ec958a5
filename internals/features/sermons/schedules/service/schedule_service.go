// file: internals/features/sermons/schedules/service/schedule_service.go
package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	boardModel "masjida_backend/internals/features/mosques/mosque_boards/model"
	preacherModel "masjida_backend/internals/features/preachers/preachers/model"
	"masjida_backend/internals/features/sermons/schedules/model"
)

var (
	ErrScheduleNotFound  = errors.New("jadwal tidak ditemukan")
	ErrNotAllowed        = errors.New("Anda tidak berwenang untuk aksi ini")
	ErrInvalidTransition = errors.New("state jadwal tidak mengizinkan aksi ini")
)

func loadSchedule(db *gorm.DB, id uuid.UUID) (*model.SermonScheduleModel, error) {
	var sched model.SermonScheduleModel
	if err := db.First(&sched, "sermon_schedule_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScheduleNotFound
		}
		return nil, err
	}
	return &sched, nil
}

func setState(db *gorm.DB, sched *model.SermonScheduleModel, state string) error {
	if err := db.Model(&model.SermonScheduleModel{}).
		Where("sermon_schedule_id = ?", sched.SermonScheduleID).
		Update("sermon_schedule_state", state).Error; err != nil {
		return err
	}
	sched.SermonScheduleState = state
	return nil
}

// callerIsAssignedPreacher: akun pemanggil harus sama dengan akun yang
// terhubung ke preacher milik jadwal.
func callerIsAssignedPreacher(db *gorm.DB, sched *model.SermonScheduleModel, callerID uuid.UUID) (bool, error) {
	var preacher preacherModel.PreacherModel
	if err := db.Select("preacher_user_id").
		First(&preacher, "preacher_id = ?", sched.SermonSchedulePreacherID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return preacher.PreacherUserID != nil && *preacher.PreacherUserID == callerID, nil
}

// SendInvitation: draft → sent, hanya oleh pengurus masjid jadwal tsb.
// Tidak idempotent: panggilan kedua ditolak sebagai pelanggaran state.
func SendInvitation(db *gorm.DB, scheduleID, callerID uuid.UUID) (*model.SermonScheduleModel, error) {
	sched, err := loadSchedule(db, scheduleID)
	if err != nil {
		return nil, err
	}

	isBoard, err := boardModel.IsBoardMember(db, sched.SermonScheduleMosqueID, callerID)
	if err != nil {
		return nil, err
	}
	if !isBoard {
		return nil, ErrNotAllowed
	}

	if sched.SermonScheduleState != model.ScheduleStateDraft {
		return nil, ErrInvalidTransition
	}
	if err := setState(db, sched, model.ScheduleStateSent); err != nil {
		return nil, err
	}
	return sched, nil
}

// Confirm: sent → confirmed, hanya oleh akun preacher yang diundang.
// Cek otorisasi dilakukan sebelum cek state: pemanggil yang salah selalu
// ditolak, apa pun state-nya, tanpa mutasi.
func Confirm(db *gorm.DB, scheduleID, callerID uuid.UUID) (*model.SermonScheduleModel, error) {
	sched, err := loadSchedule(db, scheduleID)
	if err != nil {
		return nil, err
	}

	ok, err := callerIsAssignedPreacher(db, sched, callerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotAllowed
	}

	if sched.SermonScheduleState != model.ScheduleStateSent {
		return nil, ErrInvalidTransition
	}
	if err := setState(db, sched, model.ScheduleStateConfirmed); err != nil {
		return nil, err
	}
	return sched, nil
}

// Reject: sent → rejected, aturan pemanggil sama dengan Confirm.
func Reject(db *gorm.DB, scheduleID, callerID uuid.UUID) (*model.SermonScheduleModel, error) {
	sched, err := loadSchedule(db, scheduleID)
	if err != nil {
		return nil, err
	}

	ok, err := callerIsAssignedPreacher(db, sched, callerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotAllowed
	}

	if sched.SermonScheduleState != model.ScheduleStateSent {
		return nil, ErrInvalidTransition
	}
	if err := setState(db, sched, model.ScheduleStateRejected); err != nil {
		return nil, err
	}
	return sched, nil
}

// Cancel: sent|confirmed → cancelled, oleh pengurus masjid.
func Cancel(db *gorm.DB, scheduleID, callerID uuid.UUID) (*model.SermonScheduleModel, error) {
	sched, err := loadSchedule(db, scheduleID)
	if err != nil {
		return nil, err
	}

	isBoard, err := boardModel.IsBoardMember(db, sched.SermonScheduleMosqueID, callerID)
	if err != nil {
		return nil, err
	}
	if !isBoard {
		return nil, ErrNotAllowed
	}

	if sched.SermonScheduleState != model.ScheduleStateSent &&
		sched.SermonScheduleState != model.ScheduleStateConfirmed {
		return nil, ErrInvalidTransition
	}
	if err := setState(db, sched, model.ScheduleStateCancelled); err != nil {
		return nil, err
	}
	return sched, nil
}

// ExpireFinishedSchedules: sweep periodik confirmed → done untuk jadwal yang
// end_time-nya sudah lewat. Satu UPDATE batch dengan predikat state, jadi
// idempotent — dan predikat yang sama berlaku sebagai compare-and-swap
// terhadap transisi user yang berpacu dengan sweep.
func ExpireFinishedSchedules(db *gorm.DB, now time.Time) (int64, error) {
	res := db.Model(&model.SermonScheduleModel{}).
		Where("sermon_schedule_state = ? AND sermon_schedule_end_time IS NOT NULL AND sermon_schedule_end_time < ?",
			model.ScheduleStateConfirmed, now).
		Update("sermon_schedule_state", model.ScheduleStateDone)
	return res.RowsAffected, res.Error
}
