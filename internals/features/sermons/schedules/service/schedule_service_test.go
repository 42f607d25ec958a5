// file: internals/features/sermons/schedules/service/schedule_service_test.go
package service

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"masjida_backend/internals/databases"
	areaModel "masjida_backend/internals/features/areas/model"
	boardModel "masjida_backend/internals/features/mosques/mosque_boards/model"
	mosqueModel "masjida_backend/internals/features/mosques/mosques/model"
	preacherModel "masjida_backend/internals/features/preachers/preachers/model"
	"masjida_backend/internals/features/sermons/schedules/model"
	userModel "masjida_backend/internals/features/users/user/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, databases.AutoMigrate(db))
	return db
}

// fixture: satu masjid dengan satu pengurus dan satu pendakwah ber-akun.
type scheduleFixture struct {
	boardUserID    uuid.UUID
	preacherUserID uuid.UUID
	outsiderID     uuid.UUID
	mosqueID       uuid.UUID
	preacherID     uuid.UUID
}

func setupScheduleFixture(t *testing.T, db *gorm.DB) scheduleFixture {
	t.Helper()

	area := areaModel.AreaModel{AreaName: "Jakarta Selatan"}
	require.NoError(t, db.Create(&area).Error)

	boardUser := userModel.UserModel{UserName: "Pak Budi", Email: "budi@dkm.id", IsActive: true}
	require.NoError(t, db.Create(&boardUser).Error)
	preacherUser := userModel.UserModel{UserName: "Ust. Ahmad", Email: "ahmad@dai.id", IsActive: true}
	require.NoError(t, db.Create(&preacherUser).Error)
	outsider := userModel.UserModel{UserName: "Orang Lain", Email: "lain@mail.id", IsActive: true}
	require.NoError(t, db.Create(&outsider).Error)

	mosque := mosqueModel.MosqueModel{
		MosqueCode:   "MSJ-01",
		MosqueName:   "Al-Falah",
		MosqueAreaID: area.AreaID,
	}
	require.NoError(t, db.Create(&mosque).Error)

	board := boardModel.MosqueBoardModel{
		MosqueBoardName:     "Pak Budi",
		MosqueBoardEmail:    "budi@dkm.id",
		MosqueBoardMosqueID: mosque.MosqueID,
		MosqueBoardUserID:   boardUser.ID,
	}
	require.NoError(t, db.Create(&board).Error)

	preacher := preacherModel.PreacherModel{
		PreacherCode:   "DAI-01",
		PreacherName:   "Ust. Ahmad",
		PreacherUserID: &preacherUser.ID,
		PreacherState:  preacherModel.PreacherStateConfirmed,
	}
	require.NoError(t, db.Create(&preacher).Error)

	return scheduleFixture{
		boardUserID:    boardUser.ID,
		preacherUserID: preacherUser.ID,
		outsiderID:     outsider.ID,
		mosqueID:       mosque.MosqueID,
		preacherID:     preacher.PreacherID,
	}
}

func makeSchedule(t *testing.T, db *gorm.DB, fx scheduleFixture, state string) *model.SermonScheduleModel {
	t.Helper()
	end := time.Now().Add(3 * time.Hour)
	sched := model.SermonScheduleModel{
		SermonScheduleMosqueID:   fx.mosqueID,
		SermonSchedulePreacherID: fx.preacherID,
		SermonScheduleTopic:      "Kajian Subuh",
		SermonScheduleStartTime:  time.Now().Add(2 * time.Hour),
		SermonScheduleEndTime:    &end,
		SermonScheduleState:      state,
	}
	require.NoError(t, db.Create(&sched).Error)
	return &sched
}

func TestSendInvitation(t *testing.T) {
	db := openTestDB(t)
	fx := setupScheduleFixture(t, db)

	t.Run("pengurus mengirim undangan draft", func(t *testing.T) {
		sched := makeSchedule(t, db, fx, model.ScheduleStateDraft)
		got, err := SendInvitation(db, sched.SermonScheduleID, fx.boardUserID)
		require.NoError(t, err)
		assert.Equal(t, model.ScheduleStateSent, got.SermonScheduleState)
	})

	t.Run("kirim ulang ditolak (bukan idempotent)", func(t *testing.T) {
		sched := makeSchedule(t, db, fx, model.ScheduleStateDraft)
		_, err := SendInvitation(db, sched.SermonScheduleID, fx.boardUserID)
		require.NoError(t, err)
		_, err = SendInvitation(db, sched.SermonScheduleID, fx.boardUserID)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("bukan pengurus ditolak", func(t *testing.T) {
		sched := makeSchedule(t, db, fx, model.ScheduleStateDraft)
		_, err := SendInvitation(db, sched.SermonScheduleID, fx.outsiderID)
		assert.ErrorIs(t, err, ErrNotAllowed)
	})

	t.Run("jadwal tidak ada", func(t *testing.T) {
		_, err := SendInvitation(db, uuid.New(), fx.boardUserID)
		assert.ErrorIs(t, err, ErrScheduleNotFound)
	})
}

func TestConfirmReject(t *testing.T) {
	db := openTestDB(t)
	fx := setupScheduleFixture(t, db)

	t.Run("preacher konfirmasi undangan", func(t *testing.T) {
		sched := makeSchedule(t, db, fx, model.ScheduleStateSent)
		got, err := Confirm(db, sched.SermonScheduleID, fx.preacherUserID)
		require.NoError(t, err)
		assert.Equal(t, model.ScheduleStateConfirmed, got.SermonScheduleState)
	})

	t.Run("preacher menolak undangan", func(t *testing.T) {
		sched := makeSchedule(t, db, fx, model.ScheduleStateSent)
		got, err := Reject(db, sched.SermonScheduleID, fx.preacherUserID)
		require.NoError(t, err)
		assert.Equal(t, model.ScheduleStateRejected, got.SermonScheduleState)
	})

	t.Run("akun lain selalu ditolak, apa pun state-nya", func(t *testing.T) {
		for _, state := range []string{
			model.ScheduleStateDraft,
			model.ScheduleStateSent,
			model.ScheduleStateConfirmed,
			model.ScheduleStateDone,
		} {
			sched := makeSchedule(t, db, fx, state)
			_, err := Confirm(db, sched.SermonScheduleID, fx.outsiderID)
			assert.ErrorIs(t, err, ErrNotAllowed, "state %s", state)

			// tidak ada mutasi
			var reloaded model.SermonScheduleModel
			require.NoError(t, db.First(&reloaded, "sermon_schedule_id = ?", sched.SermonScheduleID).Error)
			assert.Equal(t, state, reloaded.SermonScheduleState)
		}
	})

	t.Run("konfirmasi di luar state sent ditolak", func(t *testing.T) {
		for _, state := range []string{
			model.ScheduleStateDraft,
			model.ScheduleStateConfirmed,
			model.ScheduleStateRejected,
			model.ScheduleStateDone,
			model.ScheduleStateCancelled,
		} {
			sched := makeSchedule(t, db, fx, state)
			_, err := Confirm(db, sched.SermonScheduleID, fx.preacherUserID)
			assert.ErrorIs(t, err, ErrInvalidTransition, "state %s", state)
		}
	})

	t.Run("pengurus bukan preacher: tidak boleh konfirmasi", func(t *testing.T) {
		sched := makeSchedule(t, db, fx, model.ScheduleStateSent)
		_, err := Confirm(db, sched.SermonScheduleID, fx.boardUserID)
		assert.ErrorIs(t, err, ErrNotAllowed)
	})
}

func TestCancel(t *testing.T) {
	db := openTestDB(t)
	fx := setupScheduleFixture(t, db)

	t.Run("pengurus membatalkan jadwal sent dan confirmed", func(t *testing.T) {
		for _, state := range []string{model.ScheduleStateSent, model.ScheduleStateConfirmed} {
			sched := makeSchedule(t, db, fx, state)
			got, err := Cancel(db, sched.SermonScheduleID, fx.boardUserID)
			require.NoError(t, err)
			assert.Equal(t, model.ScheduleStateCancelled, got.SermonScheduleState)
		}
	})

	t.Run("draft dan done tidak bisa dibatalkan", func(t *testing.T) {
		for _, state := range []string{model.ScheduleStateDraft, model.ScheduleStateDone} {
			sched := makeSchedule(t, db, fx, state)
			_, err := Cancel(db, sched.SermonScheduleID, fx.boardUserID)
			assert.ErrorIs(t, err, ErrInvalidTransition, "state %s", state)
		}
	})
}

// Alur lengkap: draft → kirim → konfirmasi oleh preacher → sweep menandai done.
func TestScheduleLifecycleEndToEnd(t *testing.T) {
	db := openTestDB(t)
	fx := setupScheduleFixture(t, db)

	end := time.Now().Add(-time.Hour) // sudah lewat
	sched := model.SermonScheduleModel{
		SermonScheduleMosqueID:   fx.mosqueID,
		SermonSchedulePreacherID: fx.preacherID,
		SermonScheduleTopic:      "Khutbah Jumat",
		SermonScheduleStartTime:  time.Now().Add(-2 * time.Hour),
		SermonScheduleEndTime:    &end,
	}
	require.NoError(t, db.Create(&sched).Error)
	assert.Equal(t, model.ScheduleStateDraft, sched.SermonScheduleState)

	_, err := SendInvitation(db, sched.SermonScheduleID, fx.boardUserID)
	require.NoError(t, err)
	_, err = Confirm(db, sched.SermonScheduleID, fx.preacherUserID)
	require.NoError(t, err)

	n, err := ExpireFinishedSchedules(db, time.Now())
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	var reloaded model.SermonScheduleModel
	require.NoError(t, db.First(&reloaded, "sermon_schedule_id = ?", sched.SermonScheduleID).Error)
	assert.Equal(t, model.ScheduleStateDone, reloaded.SermonScheduleState)
}

func TestExpireFinishedSchedules(t *testing.T) {
	db := openTestDB(t)
	fx := setupScheduleFixture(t, db)

	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(3 * time.Hour)

	expired := makeSchedule(t, db, fx, model.ScheduleStateConfirmed)
	require.NoError(t, db.Model(expired).Update("sermon_schedule_end_time", past).Error)

	stillRunning := makeSchedule(t, db, fx, model.ScheduleStateConfirmed)
	require.NoError(t, db.Model(stillRunning).Update("sermon_schedule_end_time", future).Error)

	sentPast := makeSchedule(t, db, fx, model.ScheduleStateSent)
	require.NoError(t, db.Model(sentPast).Update("sermon_schedule_end_time", past).Error)

	noEnd := makeSchedule(t, db, fx, model.ScheduleStateConfirmed)
	require.NoError(t, db.Model(noEnd).Update("sermon_schedule_end_time", nil).Error)

	n, err := ExpireFinishedSchedules(db, time.Now())
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	var reloaded model.SermonScheduleModel
	require.NoError(t, db.First(&reloaded, "sermon_schedule_id = ?", expired.SermonScheduleID).Error)
	assert.Equal(t, model.ScheduleStateDone, reloaded.SermonScheduleState)

	reloaded = model.SermonScheduleModel{}
	require.NoError(t, db.First(&reloaded, "sermon_schedule_id = ?", stillRunning.SermonScheduleID).Error)
	assert.Equal(t, model.ScheduleStateConfirmed, reloaded.SermonScheduleState)

	reloaded = model.SermonScheduleModel{}
	require.NoError(t, db.First(&reloaded, "sermon_schedule_id = ?", sentPast.SermonScheduleID).Error)
	assert.Equal(t, model.ScheduleStateSent, reloaded.SermonScheduleState)

	// jalan kedua: tidak ada yang berubah (idempotent)
	n, err = ExpireFinishedSchedules(db, time.Now())
	require.NoError(t, err)
	assert.Zero(t, n)
}
