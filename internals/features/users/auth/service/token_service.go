// file: internals/features/users/auth/service/token_service.go
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v4"

	"masjida_backend/internals/configs"
	userModel "masjida_backend/internals/features/users/user/model"
)

// Umur token akses. Belum ada refresh token: aplikasi mobile login ulang.
const tokenTTL = 72 * time.Hour

// GenerateToken menerbitkan JWT dengan claim yang dibaca auth middleware:
// id, user_name, grants, iat, exp.
func GenerateToken(user *userModel.UserModel, grants []string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":        user.ID.String(),
		"user_name": user.UserName,
		"grants":    grants,
		"iat":       now.Unix(),
		"exp":       now.Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}
