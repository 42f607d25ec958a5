// file: internals/features/preachers/preachers/controller/preacher_portal_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"masjida_backend/internals/features/preachers/preachers/dto"
	identityService "masjida_backend/internals/features/users/identity/service"
	helper "masjida_backend/internals/helpers"
)

// PreacherPortalController: profil milik pendakwah yang sedang login.
type PreacherPortalController struct {
	DB *gorm.DB
}

func NewPreacherPortalController(db *gorm.DB) *PreacherPortalController {
	return &PreacherPortalController{DB: db}
}

// 🔍 GET /api/u/preachers/me
// 404 kalau akun tidak terhubung ke profil pendakwah manapun.
func (ctl *PreacherPortalController) GetMyProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	preacher, err := identityService.PreacherForUser(ctl.DB, userID)
	if err != nil {
		if errors.Is(err, identityService.ErrNoLinkedPreacher) {
			return helper.JsonError(c, fiber.StatusNotFound, "Akun ini tidak terhubung ke profil pendakwah")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil profil")
	}

	schedules, err := ConfirmedSchedulesForPreacher(ctl.DB, preacher.PreacherID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jadwal")
	}

	return helper.JsonOK(c, "Profil berhasil diambil", dto.PreacherDetailResponse{
		PreacherResponse: dto.FromModelPreacher(preacher),
		Schedules:        schedules,
	})
}

// ✏️ PUT /api/u/preachers/me
// Hanya field profil yang boleh diubah; field lain (state, code, email) diam-diam diabaikan.
func (ctl *PreacherPortalController) UpdateMyProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	preacher, err := identityService.PreacherForUser(ctl.DB, userID)
	if err != nil {
		if errors.Is(err, identityService.ErrNoLinkedPreacher) {
			return helper.JsonError(c, fiber.StatusNotFound, "Akun ini tidak terhubung ke profil pendakwah")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil profil")
	}

	var req dto.PreacherProfileUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}

	syncIdentity := req.PreacherName != nil
	dto.ApplyPreacherProfileUpdate(preacher, &req)

	if err := ctl.DB.Save(preacher).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui profil")
	}

	if syncIdentity && preacher.PreacherUserID != nil {
		if err := identityService.SyncAccount(ctl.DB, *preacher.PreacherUserID, preacher.PreacherName, ""); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyelaraskan akun")
		}
	}

	return helper.JsonUpdated(c, "Profil berhasil diperbarui", dto.FromModelPreacher(preacher))
}
