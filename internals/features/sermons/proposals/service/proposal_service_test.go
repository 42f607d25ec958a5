// file: internals/features/sermons/proposals/service/proposal_service_test.go
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
	"masjida_backend/internals/features/sermons/proposals/model"
	scheduleModel "masjida_backend/internals/features/sermons/schedules/model"
	userModel "masjida_backend/internals/features/users/user/model"
)

type proposalFixture struct {
	boardUserID    uuid.UUID
	preacherUserID uuid.UUID
	outsiderID     uuid.UUID
	mosqueID       uuid.UUID
	preacherID     uuid.UUID
}

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

func setupProposalFixture(t *testing.T, db *gorm.DB) proposalFixture {
	t.Helper()

	area := areaModel.AreaModel{AreaName: "Bandung"}
	require.NoError(t, db.Create(&area).Error)

	boardUser := userModel.UserModel{UserName: "Bu Siti", Email: "siti@dkm.id", IsActive: true}
	require.NoError(t, db.Create(&boardUser).Error)
	preacherUser := userModel.UserModel{UserName: "Ust. Hasan", Email: "hasan@dai.id", IsActive: true}
	require.NoError(t, db.Create(&preacherUser).Error)
	outsider := userModel.UserModel{UserName: "Orang Lain", Email: "lain2@mail.id", IsActive: true}
	require.NoError(t, db.Create(&outsider).Error)

	mosque := mosqueModel.MosqueModel{MosqueCode: "MSJ-02", MosqueName: "An-Nur", MosqueAreaID: area.AreaID}
	require.NoError(t, db.Create(&mosque).Error)

	board := boardModel.MosqueBoardModel{
		MosqueBoardName:     "Bu Siti",
		MosqueBoardEmail:    "siti@dkm.id",
		MosqueBoardMosqueID: mosque.MosqueID,
		MosqueBoardUserID:   boardUser.ID,
	}
	require.NoError(t, db.Create(&board).Error)

	preacher := preacherModel.PreacherModel{
		PreacherCode:   "DAI-02",
		PreacherName:   "Ust. Hasan",
		PreacherUserID: &preacherUser.ID,
		PreacherState:  preacherModel.PreacherStateConfirmed,
	}
	require.NoError(t, db.Create(&preacher).Error)

	return proposalFixture{
		boardUserID:    boardUser.ID,
		preacherUserID: preacherUser.ID,
		outsiderID:     outsider.ID,
		mosqueID:       mosque.MosqueID,
		preacherID:     preacher.PreacherID,
	}
}

func TestCreateProposal(t *testing.T) {
	db := openTestDB(t)
	fx := setupProposalFixture(t, db)

	t.Run("create langsung submitted atas nama preacher pemanggil", func(t *testing.T) {
		prop, err := Create(db, fx.preacherUserID, fx.mosqueID, "Fiqih Muamalah", time.Now().Add(48*time.Hour), "catatan")
		require.NoError(t, err)
		assert.Equal(t, model.ProposalStateSubmitted, prop.SermonProposalState)
		assert.Equal(t, fx.preacherID, prop.SermonProposalPreacherID)
	})

	t.Run("akun tanpa profil pendakwah ditolak", func(t *testing.T) {
		_, err := Create(db, fx.outsiderID, fx.mosqueID, "Topik", time.Now().Add(48*time.Hour), "")
		assert.ErrorIs(t, err, ErrNoLinkedPreacher)
	})
}

func TestApproveProposal(t *testing.T) {
	db := openTestDB(t)
	fx := setupProposalFixture(t, db)

	t.Run("approve mematerialisasi jadwal confirmed", func(t *testing.T) {
		start := time.Now().Add(72 * time.Hour)
		prop, err := Create(db, fx.preacherUserID, fx.mosqueID, "Tafsir Al-Kahfi", start, "")
		require.NoError(t, err)

		gotProp, gotSched, err := Approve(db, prop.SermonProposalID, fx.boardUserID)
		require.NoError(t, err)
		assert.Equal(t, model.ProposalStateApproved, gotProp.SermonProposalState)
		assert.Equal(t, scheduleModel.ScheduleStateConfirmed, gotSched.SermonScheduleState)
		assert.Equal(t, fx.preacherID, gotSched.SermonSchedulePreacherID)
		assert.Equal(t, fx.mosqueID, gotSched.SermonScheduleMosqueID)
		assert.Equal(t, "Tafsir Al-Kahfi", gotSched.SermonScheduleTopic)
		assert.True(t, gotSched.SermonScheduleStartTime.Equal(start))
	})

	t.Run("approve kedua kali ditolak", func(t *testing.T) {
		prop, err := Create(db, fx.preacherUserID, fx.mosqueID, "Topik", time.Now().Add(time.Hour), "")
		require.NoError(t, err)
		_, _, err = Approve(db, prop.SermonProposalID, fx.boardUserID)
		require.NoError(t, err)
		_, _, err = Approve(db, prop.SermonProposalID, fx.boardUserID)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("bukan pengurus masjid tujuan ditolak", func(t *testing.T) {
		prop, err := Create(db, fx.preacherUserID, fx.mosqueID, "Topik", time.Now().Add(time.Hour), "")
		require.NoError(t, err)
		_, _, err = Approve(db, prop.SermonProposalID, fx.outsiderID)
		assert.ErrorIs(t, err, ErrNotAllowed)
		_, _, err = Approve(db, prop.SermonProposalID, fx.preacherUserID)
		assert.ErrorIs(t, err, ErrNotAllowed)
	})

	t.Run("gagal simpan jadwal: proposal tetap submitted", func(t *testing.T) {
		prop, err := Create(db, fx.preacherUserID, fx.mosqueID, "Topik Atomik", time.Now().Add(time.Hour), "")
		require.NoError(t, err)

		// injeksi fault: tabel jadwal dihilangkan supaya insert gagal
		require.NoError(t, db.Migrator().DropTable(&scheduleModel.SermonScheduleModel{}))
		_, _, err = Approve(db, prop.SermonProposalID, fx.boardUserID)
		require.Error(t, err)
		require.NoError(t, db.Migrator().CreateTable(&scheduleModel.SermonScheduleModel{}))

		var reloaded model.SermonProposalModel
		require.NoError(t, db.First(&reloaded, "sermon_proposal_id = ?", prop.SermonProposalID).Error)
		assert.Equal(t, model.ProposalStateSubmitted, reloaded.SermonProposalState)
	})
}

func TestRejectProposal(t *testing.T) {
	db := openTestDB(t)
	fx := setupProposalFixture(t, db)

	prop, err := Create(db, fx.preacherUserID, fx.mosqueID, "Topik", time.Now().Add(time.Hour), "")
	require.NoError(t, err)

	_, err = Reject(db, prop.SermonProposalID, fx.outsiderID)
	assert.ErrorIs(t, err, ErrNotAllowed)

	got, err := Reject(db, prop.SermonProposalID, fx.boardUserID)
	require.NoError(t, err)
	assert.Equal(t, model.ProposalStateRejected, got.SermonProposalState)

	// terminal: tidak bisa di-approve lagi
	_, _, err = Approve(db, prop.SermonProposalID, fx.boardUserID)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// tidak ada jadwal yang ikut terbuat
	var count int64
	require.NoError(t, db.Model(&scheduleModel.SermonScheduleModel{}).Count(&count).Error)
	assert.Zero(t, count)
}
