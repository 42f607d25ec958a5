// file: internals/features/users/identity/service/identity_service.go
package service

import (
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	preacherModel "masjida_backend/internals/features/preachers/preachers/model"
	userModel "masjida_backend/internals/features/users/user/model"
)

var ErrNoLinkedPreacher = errors.New("akun tidak terhubung ke profil pendakwah")

// LinkAccount mencari akun berdasarkan email (exact match, case-sensitive);
// kalau tidak ada, buat akun baru tanpa password (diset lewat reset flow).
// Grant yang diminta selalu direkonsiliasi: hanya yang belum ada yang
// ditambahkan, jadi pemanggilan ulang aman.
//
// Catatan: pembuatan akun TIDAK di-rollback kalau insert entitas setelahnya
// gagal — akun yatim dibiarkan (gap konsistensi yang disengaja, lihat DESIGN.md).
func LinkAccount(db *gorm.DB, name, email string, grants ...string) (*userModel.UserModel, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, errors.New("email wajib diisi untuk menghubungkan akun")
	}

	var user userModel.UserModel
	err := db.Where("email = ?", email).First(&user).Error
	switch {
	case err == nil:
		// reuse akun yang sudah ada
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = userModel.UserModel{
			UserName: name,
			Email:    email,
			IsActive: true,
		}
		if err := db.Create(&user).Error; err != nil {
			return nil, err
		}
		log.Printf("[INFO] Akun baru dibuat untuk %s", email)
	default:
		return nil, err
	}

	if err := EnsureGrants(db, user.ID, grants...); err != nil {
		return nil, err
	}
	return &user, nil
}

// EnsureGrants menambahkan grant yang belum dimiliki user. Idempotent.
func EnsureGrants(db *gorm.DB, userID uuid.UUID, grants ...string) error {
	if len(grants) == 0 {
		return nil
	}

	var existing []string
	if err := db.Model(&userModel.UserGrantModel{}).
		Where("user_id = ?", userID).
		Pluck("user_grant", &existing).Error; err != nil {
		return err
	}
	have := make(map[string]bool, len(existing))
	for _, g := range existing {
		have[g] = true
	}

	for _, g := range grants {
		if have[g] {
			continue
		}
		row := userModel.UserGrantModel{UserID: userID, Grant: g}
		if err := db.Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

// SyncAccount menyelaraskan nama & email akun dengan record sumber
// (preacher / board member) saat field tersebut diubah.
func SyncAccount(db *gorm.DB, userID uuid.UUID, name, email string) error {
	updates := map[string]interface{}{}
	if strings.TrimSpace(name) != "" {
		updates["user_name"] = name
	}
	if strings.TrimSpace(email) != "" {
		updates["email"] = email
	}
	if len(updates) == 0 {
		return nil
	}
	return db.Model(&userModel.UserModel{}).Where("id = ?", userID).Updates(updates).Error
}

// ReleaseAccount menghapus akun HANYA kalau tidak ada record MosqueBoard atau
// Preacher lain yang masih menunjuk ke akun itu (reference count, bukan
// cascade — akun bisa dipakai bersama).
func ReleaseAccount(db *gorm.DB, userID uuid.UUID) error {
	var refs int64
	if err := db.Table("mosque_boards").
		Where("mosque_board_user_id = ? AND mosque_board_deleted_at IS NULL", userID).
		Count(&refs).Error; err != nil {
		return err
	}
	var preacherRefs int64
	if err := db.Table("preachers").
		Where("preacher_user_id = ? AND preacher_deleted_at IS NULL", userID).
		Count(&preacherRefs).Error; err != nil {
		return err
	}
	refs += preacherRefs

	if refs > 0 {
		log.Printf("[INFO] Akun %s masih direferensikan %d record, tidak dihapus", userID, refs)
		return nil
	}

	if err := db.Where("user_id = ?", userID).Delete(&userModel.UserGrantModel{}).Error; err != nil {
		return err
	}
	return db.Where("id = ?", userID).Delete(&userModel.UserModel{}).Error
}

// PreacherForUser mencari profil pendakwah yang terhubung ke sebuah akun.
func PreacherForUser(db *gorm.DB, userID uuid.UUID) (*preacherModel.PreacherModel, error) {
	var preacher preacherModel.PreacherModel
	err := db.Where("preacher_user_id = ?", userID).First(&preacher).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoLinkedPreacher
	}
	if err != nil {
		return nil, err
	}
	return &preacher, nil
}
