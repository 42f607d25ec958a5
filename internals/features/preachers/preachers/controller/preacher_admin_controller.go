// file: internals/features/preachers/preachers/controller/preacher_admin_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"masjida_backend/internals/constants"
	"masjida_backend/internals/features/preachers/preachers/dto"
	"masjida_backend/internals/features/preachers/preachers/model"
	identityService "masjida_backend/internals/features/users/identity/service"
	userModel "masjida_backend/internals/features/users/user/model"
	helper "masjida_backend/internals/helpers"
)

type PreacherAdminController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewPreacherAdminController(db *gorm.DB) *PreacherAdminController {
	return &PreacherAdminController{DB: db, Validate: validator.New()}
}

// 📄 GET /api/a/preachers
func (ctl *PreacherAdminController) GetAllPreachers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.PreacherModel{})
	if state := c.Query("state"); state != "" {
		q = q.Where("preacher_state = ?", state)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data pendakwah")
	}

	var preachers []model.PreacherModel
	if err := q.Order("preacher_name").Offset(paging.Offset).Limit(paging.Limit).Find(&preachers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data pendakwah")
	}

	resp := make([]dto.PreacherResponse, 0, len(preachers))
	for i := range preachers {
		resp = append(resp, dto.FromModelPreacher(&preachers[i]))
	}
	return helper.JsonList(c, "Daftar pendakwah", resp,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🟢 POST /api/a/preachers
// Kalau email diisi dan user_id kosong, akun login dibuat/di-reuse otomatis.
func (ctl *PreacherAdminController) CreatePreacher(c *fiber.Ctx) error {
	var req dto.PreacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	preacher := dto.ToModelPreacher(&req)

	if preacher.PreacherUserID == nil && preacher.PreacherEmail != "" {
		user, err := identityService.LinkAccount(ctl.DB, preacher.PreacherName, preacher.PreacherEmail, constants.PreacherGrants...)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghubungkan akun pendakwah")
		}
		preacher.PreacherUserID = &user.ID
	} else if preacher.PreacherUserID != nil {
		if err := identityService.EnsureGrants(ctl.DB, *preacher.PreacherUserID, constants.PreacherGrants...); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menambahkan hak akses pendakwah")
		}
	}

	if err := ctl.DB.Create(preacher).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Pendakwah dengan data ini sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan data pendakwah")
	}

	return helper.JsonCreated(c, "Pendakwah berhasil ditambahkan", dto.FromModelPreacher(preacher))
}

// ✏️ PUT /api/a/preachers/:id
func (ctl *PreacherAdminController) UpdatePreacher(c *fiber.Ctx) error {
	preacherID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID pendakwah tidak valid")
	}

	var req dto.PreacherUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}

	var preacher model.PreacherModel
	if err := ctl.DB.First(&preacher, "preacher_id = ?", preacherID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pendakwah tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data pendakwah")
	}

	syncIdentity := req.PreacherName != nil || req.PreacherEmail != nil
	dto.ApplyPreacherUpdate(&preacher, &req)

	if err := ctl.DB.Save(&preacher).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui data pendakwah")
	}

	if syncIdentity && preacher.PreacherUserID != nil {
		if err := identityService.SyncAccount(ctl.DB, *preacher.PreacherUserID, preacher.PreacherName, preacher.PreacherEmail); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyelaraskan akun pendakwah")
		}
	}

	return helper.JsonUpdated(c, "Pendakwah berhasil diperbarui", dto.FromModelPreacher(&preacher))
}

// 🗑️ DELETE /api/a/preachers/:id
func (ctl *PreacherAdminController) DeletePreacher(c *fiber.Ctx) error {
	preacherID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID pendakwah tidak valid")
	}

	var preacher model.PreacherModel
	if err := ctl.DB.First(&preacher, "preacher_id = ?", preacherID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pendakwah tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data pendakwah")
	}

	if err := ctl.DB.Delete(&preacher).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus data pendakwah")
	}
	if preacher.PreacherUserID != nil {
		if err := identityService.ReleaseAccount(ctl.DB, *preacher.PreacherUserID); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal melepas akun pendakwah")
		}
	}

	return helper.JsonDeleted(c, "Pendakwah berhasil dihapus", fiber.Map{"preacher_id": preacherID})
}

type resetPasswordRequest struct {
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

// 🔑 POST /api/a/preachers/:id/reset-password
// Admin mengatur ulang password akun login pendakwah.
func (ctl *PreacherAdminController) ResetPreacherPassword(c *fiber.Ctx) error {
	preacherID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID pendakwah tidak valid")
	}

	var req resetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var preacher model.PreacherModel
	if err := ctl.DB.First(&preacher, "preacher_id = ?", preacherID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pendakwah tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data pendakwah")
	}
	if preacher.PreacherUserID == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Pendakwah belum memiliki akun login")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}
	if err := ctl.DB.Model(&userModel.UserModel{}).
		Where("id = ?", *preacher.PreacherUserID).
		Update("password", string(hashed)).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui password")
	}

	return helper.JsonOK(c, "Password berhasil diatur ulang", fiber.Map{"preacher_id": preacherID})
}
