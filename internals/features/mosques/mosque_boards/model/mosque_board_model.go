package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	mosqueModel "masjida_backend/internals/features/mosques/mosques/model"
	userModel "masjida_backend/internals/features/users/user/model"
)

const (
	PositionChairman  = "chairman"
	PositionSecretary = "secretary"
	PositionTreasurer = "treasurer"
	PositionMember    = "member"
)

// MosqueBoardModel: pengurus satu masjid, terhubung ke akun user untuk login.
// Constraint store: satu akun maksimal satu posisi per masjid, dan satu email
// hanya boleh terdaftar sekali per masjid.
type MosqueBoardModel struct {
	MosqueBoardID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"mosque_board_id"`
	MosqueBoardName      string         `gorm:"type:varchar(100);not null" json:"mosque_board_name"`
	MosqueBoardPosition  string         `gorm:"type:varchar(20);not null;default:'member'" json:"mosque_board_position"`
	MosqueBoardPhone     string         `gorm:"type:varchar(30)" json:"mosque_board_phone"`
	MosqueBoardEmail     string         `gorm:"type:varchar(255);uniqueIndex:uq_board_email_mosque" json:"mosque_board_email"`
	MosqueBoardMosqueID  uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:uq_board_user_mosque;uniqueIndex:uq_board_email_mosque" json:"mosque_board_mosque_id"`
	MosqueBoardUserID    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:uq_board_user_mosque" json:"mosque_board_user_id"`
	MosqueBoardCreatedAt time.Time      `gorm:"autoCreateTime" json:"mosque_board_created_at"`
	MosqueBoardUpdatedAt time.Time      `gorm:"autoUpdateTime" json:"mosque_board_updated_at"`
	MosqueBoardDeletedAt gorm.DeletedAt `gorm:"column:mosque_board_deleted_at" json:"mosque_board_deleted_at,omitempty"`

	Mosque *mosqueModel.MosqueModel `gorm:"foreignKey:MosqueBoardMosqueID;references:MosqueID;constraint:OnDelete:CASCADE" json:"mosque,omitempty"`
	User   *userModel.UserModel     `gorm:"foreignKey:MosqueBoardUserID;references:ID" json:"user,omitempty"`
}

func (MosqueBoardModel) TableName() string {
	return "mosque_boards"
}

func (m *MosqueBoardModel) BeforeCreate(tx *gorm.DB) error {
	if m.MosqueBoardID == uuid.Nil {
		m.MosqueBoardID = uuid.New()
	}
	return nil
}

// IsBoardMember: cek keanggotaan (mosque, user) — dipakai aturan approve/reject
// proposal dan aksi admin jadwal.
func IsBoardMember(db *gorm.DB, mosqueID, userID uuid.UUID) (bool, error) {
	var count int64
	err := db.Model(&MosqueBoardModel{}).
		Where("mosque_board_mosque_id = ? AND mosque_board_user_id = ?", mosqueID, userID).
		Count(&count).Error
	return count > 0, err
}
