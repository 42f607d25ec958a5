// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"masjida_backend/internals/constants"
	preacherModel "masjida_backend/internals/features/preachers/preachers/model"
	"masjida_backend/internals/features/users/auth/dto"
	authService "masjida_backend/internals/features/users/auth/service"
	identityService "masjida_backend/internals/features/users/identity/service"
	userModel "masjida_backend/internals/features/users/user/model"
	helper "masjida_backend/internals/helpers"
)

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validate: validator.New()}
}

// validationFieldErrors memetakan error validator per field untuk respons 422.
func validationFieldErrors(err error) map[string][]string {
	out := map[string][]string{}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			field := fe.Field()
			out[field] = append(out[field], fe.Tag())
		}
	} else {
		out["_"] = []string{err.Error()}
	}
	return out
}

// 🟢 POST /api/auth/register
// Registrasi self-service hanya untuk pendakwah: akun + profil preacher draft
// + grant portal dalam satu transaksi.
func (ctl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, validationFieldErrors(err))
	}
	if req.UserType != constants.UserTypePreacher {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "user_type tidak dikenal, hanya 'preacher' yang bisa registrasi mandiri")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	user := userModel.UserModel{
		UserName: req.UserName,
		Email:    req.Email,
		Password: string(hashed),
		Phone:    req.Phone,
		IsActive: true,
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		preacher := preacherModel.PreacherModel{
			PreacherCode:   "REG-" + user.ID.String()[:8],
			PreacherName:   req.UserName,
			PreacherEmail:  req.Email,
			PreacherPhone:  req.Phone,
			PreacherUserID: &user.ID,
			PreacherState:  preacherModel.PreacherStateDraft,
		}
		if err := tx.Create(&preacher).Error; err != nil {
			return err
		}
		return identityService.EnsureGrants(tx, user.ID, constants.PreacherGrants...)
	})
	if err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan akun")
	}

	return helper.JsonCreated(c, "Registrasi berhasil", dto.AuthUserResponse{
		ID:       user.ID.String(),
		UserName: user.UserName,
		Email:    user.Email,
		Grants:   constants.PreacherGrants,
	})
}

// 🔐 POST /api/auth/login
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var user userModel.UserModel
	if err := ctl.DB.First(&user, "email = ?", req.Email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil akun")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun dinonaktifkan")
	}
	if !user.HasPassword() {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Akun belum memiliki password, hubungi pengurus untuk reset")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	var grants []string
	if err := ctl.DB.Model(&userModel.UserGrantModel{}).
		Where("user_id = ?", user.ID).
		Pluck("user_grant", &grants).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil hak akses")
	}

	token, err := authService.GenerateToken(&user, grants)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		HTTPOnly: true,
		SameSite: "Lax",
		Expires:  time.Now().Add(72 * time.Hour),
	})

	return helper.JsonOK(c, "Login berhasil", dto.LoginResponse{
		Token: token,
		User: dto.AuthUserResponse{
			ID:       user.ID.String(),
			UserName: user.UserName,
			Email:    user.Email,
			Grants:   grants,
		},
	})
}

// 🚪 POST /api/auth/logout — token stateless, cukup hapus cookie.
func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		HTTPOnly: true,
		SameSite: "Lax",
		Expires:  time.Now().Add(-time.Hour),
	})
	return helper.JsonOK(c, "Logout berhasil", nil)
}

// 👤 GET /api/u/me
func (ctl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var user userModel.UserModel
	if err := ctl.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Akun tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil akun")
	}

	return helper.JsonOK(c, "Profil akun", dto.AuthUserResponse{
		ID:       user.ID.String(),
		UserName: user.UserName,
		Email:    user.Email,
		Grants:   helper.GetGrantsFromToken(c),
	})
}
