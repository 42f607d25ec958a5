// file: internals/features/users/user/model/user_grants.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserGrantModel: capability grant per user. Pasangan (user_id, grant) unik,
// jadi re-link akun tidak pernah menggandakan grant.
type UserGrantModel struct {
	UserGrantID uuid.UUID `gorm:"column:user_grant_id;type:uuid;primaryKey" json:"user_grant_id"`
	UserID      uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex:uq_user_grant" json:"user_id"`
	Grant       string    `gorm:"column:user_grant;size:50;not null;uniqueIndex:uq_user_grant" json:"grant"`
	GrantedAt   time.Time `gorm:"column:granted_at;autoCreateTime" json:"granted_at"`
}

func (UserGrantModel) TableName() string { return "user_grants" }

func (g *UserGrantModel) BeforeCreate(tx *gorm.DB) error {
	if g.UserGrantID == uuid.Nil {
		g.UserGrantID = uuid.New()
	}
	return nil
}
