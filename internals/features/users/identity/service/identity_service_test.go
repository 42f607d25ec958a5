// file: internals/features/users/identity/service/identity_service_test.go
package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"masjida_backend/internals/constants"
	"masjida_backend/internals/databases"
	areaModel "masjida_backend/internals/features/areas/model"
	boardModel "masjida_backend/internals/features/mosques/mosque_boards/model"
	mosqueModel "masjida_backend/internals/features/mosques/mosques/model"
	preacherModel "masjida_backend/internals/features/preachers/preachers/model"
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

func grantsOf(t *testing.T, db *gorm.DB, userID uuid.UUID) []string {
	t.Helper()
	var grants []string
	require.NoError(t, db.Model(&userModel.UserGrantModel{}).
		Where("user_id = ?", userID).
		Order("user_grant").
		Pluck("user_grant", &grants).Error)
	return grants
}

func TestLinkAccount(t *testing.T) {
	db := openTestDB(t)

	t.Run("buat akun baru tanpa password", func(t *testing.T) {
		user, err := LinkAccount(db, "Ust. Umar", "umar@dai.id", constants.PreacherGrants...)
		require.NoError(t, err)
		assert.Equal(t, "umar@dai.id", user.Email)
		assert.False(t, user.HasPassword())
		assert.Equal(t, []string{constants.GrantPortal}, grantsOf(t, db, user.ID))
	})

	t.Run("email sama: akun di-reuse, bukan duplikat", func(t *testing.T) {
		first, err := LinkAccount(db, "Ust. Umar", "umar@dai.id", constants.PreacherGrants...)
		require.NoError(t, err)
		second, err := LinkAccount(db, "Nama Beda", "umar@dai.id", constants.PreacherGrants...)
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)

		var count int64
		require.NoError(t, db.Model(&userModel.UserModel{}).Where("email = ?", "umar@dai.id").Count(&count).Error)
		assert.EqualValues(t, 1, count)
	})

	t.Run("grant tidak pernah dobel", func(t *testing.T) {
		user, err := LinkAccount(db, "Pak Joko", "joko@dkm.id", constants.BoardMemberGrants...)
		require.NoError(t, err)
		_, err = LinkAccount(db, "Pak Joko", "joko@dkm.id", constants.BoardMemberGrants...)
		require.NoError(t, err)
		assert.Equal(t, []string{constants.GrantInternal, constants.GrantMosqueAdmin}, grantsOf(t, db, user.ID))
	})

	t.Run("email kosong ditolak", func(t *testing.T) {
		_, err := LinkAccount(db, "Tanpa Email", "  ")
		assert.Error(t, err)
	})

	t.Run("lookup email case-sensitive", func(t *testing.T) {
		lower, err := LinkAccount(db, "Ali", "ali@dai.id")
		require.NoError(t, err)
		upper, err := LinkAccount(db, "Ali", "ALI@dai.id")
		require.NoError(t, err)
		assert.NotEqual(t, lower.ID, upper.ID)
	})
}

func TestSyncAccount(t *testing.T) {
	db := openTestDB(t)

	user, err := LinkAccount(db, "Nama Lama", "lama@mail.id")
	require.NoError(t, err)

	require.NoError(t, SyncAccount(db, user.ID, "Nama Baru", "baru@mail.id"))

	var reloaded userModel.UserModel
	require.NoError(t, db.First(&reloaded, "id = ?", user.ID).Error)
	assert.Equal(t, "Nama Baru", reloaded.UserName)
	assert.Equal(t, "baru@mail.id", reloaded.Email)

	// field kosong tidak menimpa
	require.NoError(t, SyncAccount(db, user.ID, "", ""))
	require.NoError(t, db.First(&reloaded, "id = ?", user.ID).Error)
	assert.Equal(t, "Nama Baru", reloaded.UserName)
}

func TestReleaseAccount(t *testing.T) {
	db := openTestDB(t)

	area := areaModel.AreaModel{AreaName: "Depok"}
	require.NoError(t, db.Create(&area).Error)
	mosque := mosqueModel.MosqueModel{MosqueCode: "MSJ-03", MosqueName: "Baitul Ilmi", MosqueAreaID: area.AreaID}
	require.NoError(t, db.Create(&mosque).Error)
	mosque2 := mosqueModel.MosqueModel{MosqueCode: "MSJ-04", MosqueName: "Al-Ikhlas", MosqueAreaID: area.AreaID}
	require.NoError(t, db.Create(&mosque2).Error)

	user, err := LinkAccount(db, "Pak Dirman", "dirman@dkm.id", constants.BoardMemberGrants...)
	require.NoError(t, err)

	board1 := boardModel.MosqueBoardModel{
		MosqueBoardName: "Pak Dirman", MosqueBoardEmail: "dirman@dkm.id",
		MosqueBoardMosqueID: mosque.MosqueID, MosqueBoardUserID: user.ID,
	}
	require.NoError(t, db.Create(&board1).Error)
	board2 := boardModel.MosqueBoardModel{
		MosqueBoardName: "Pak Dirman", MosqueBoardEmail: "dirman@dkm.id",
		MosqueBoardMosqueID: mosque2.MosqueID, MosqueBoardUserID: user.ID,
	}
	require.NoError(t, db.Create(&board2).Error)

	// masih ada dua referensi: akun bertahan
	require.NoError(t, db.Delete(&board1).Error)
	require.NoError(t, ReleaseAccount(db, user.ID))
	var count int64
	require.NoError(t, db.Model(&userModel.UserModel{}).Where("id = ?", user.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	// referensi terakhir lepas: akun + grant ikut terhapus
	require.NoError(t, db.Delete(&board2).Error)
	require.NoError(t, ReleaseAccount(db, user.ID))
	require.NoError(t, db.Model(&userModel.UserModel{}).Where("id = ?", user.ID).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&userModel.UserGrantModel{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestPreacherForUser(t *testing.T) {
	db := openTestDB(t)

	user, err := LinkAccount(db, "Ust. Salim", "salim@dai.id", constants.PreacherGrants...)
	require.NoError(t, err)

	_, err = PreacherForUser(db, user.ID)
	assert.ErrorIs(t, err, ErrNoLinkedPreacher)

	preacher := preacherModel.PreacherModel{
		PreacherCode: "DAI-03", PreacherName: "Ust. Salim", PreacherUserID: &user.ID,
	}
	require.NoError(t, db.Create(&preacher).Error)

	got, err := PreacherForUser(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, preacher.PreacherID, got.PreacherID)
}
