// file: internals/features/users/help_requests/controller/help_request_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"masjida_backend/internals/features/users/help_requests/model"
	helper "masjida_backend/internals/helpers"
)

type HelpRequestController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewHelpRequestController(db *gorm.DB) *HelpRequestController {
	return &HelpRequestController{DB: db, Validate: validator.New()}
}

// 📄 GET /api/v1/help-types — daftar kategori bantuan (publik).
func (ctl *HelpRequestController) GetHelpTypes(c *fiber.Ctx) error {
	var types []model.HelpTypeModel
	if err := ctl.DB.Order("help_type_name").Find(&types).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kategori bantuan")
	}
	return helper.JsonOK(c, "Kategori bantuan", types)
}

// 🟢 POST /api/a/help-types
func (ctl *HelpRequestController) CreateHelpType(c *fiber.Ctx) error {
	var req struct {
		HelpTypeName string `json:"help_type_name" validate:"required,max=100"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	ht := model.HelpTypeModel{HelpTypeName: req.HelpTypeName}
	if err := ctl.DB.Create(&ht).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Kategori bantuan ini sudah ada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan kategori bantuan")
	}
	return helper.JsonCreated(c, "Kategori bantuan berhasil dibuat", ht)
}

type helpRequestInput struct {
	HelpRequestHelpTypeID  uuid.UUID `json:"help_request_help_type_id" validate:"required"`
	HelpRequestDescription string    `json:"help_request_description" validate:"required"`
}

// 🟢 POST /api/u/help-requests — tiket bantuan dari akun yang login.
func (ctl *HelpRequestController) CreateHelpRequest(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req helpRequestInput
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var ht model.HelpTypeModel
	if err := ctl.DB.First(&ht, "help_type_id = ?", req.HelpRequestHelpTypeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kategori bantuan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kategori bantuan")
	}

	hr := model.HelpRequestModel{
		HelpRequestUserID:      userID,
		HelpRequestHelpTypeID:  req.HelpRequestHelpTypeID,
		HelpRequestDescription: req.HelpRequestDescription,
		HelpRequestState:       model.HelpRequestStateOpen,
	}
	if err := ctl.DB.Create(&hr).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan tiket bantuan")
	}
	return helper.JsonCreated(c, "Tiket bantuan berhasil dibuat", hr)
}

// 📄 GET /api/u/help-requests — tiket milik akun yang login.
func (ctl *HelpRequestController) GetMyHelpRequests(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var requests []model.HelpRequestModel
	if err := ctl.DB.Preload("HelpType").
		Where("help_request_user_id = ?", userID).
		Order("help_request_created_at DESC").
		Find(&requests).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil tiket bantuan")
	}
	return helper.JsonOK(c, "Tiket bantuan", requests)
}

// ✅ POST /api/a/help-requests/:id/close
func (ctl *HelpRequestController) CloseHelpRequest(c *fiber.Ctx) error {
	requestID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tiket tidak valid")
	}

	var hr model.HelpRequestModel
	if err := ctl.DB.First(&hr, "help_request_id = ?", requestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Tiket tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil tiket")
	}

	hr.HelpRequestState = model.HelpRequestStateClosed
	if err := ctl.DB.Save(&hr).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menutup tiket")
	}
	return helper.JsonUpdated(c, "Tiket ditutup", hr)
}
