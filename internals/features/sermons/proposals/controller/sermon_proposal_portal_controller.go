// file: internals/features/sermons/proposals/controller/sermon_proposal_portal_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"masjida_backend/internals/features/sermons/proposals/dto"
	"masjida_backend/internals/features/sermons/proposals/model"
	"masjida_backend/internals/features/sermons/proposals/service"
	identityService "masjida_backend/internals/features/users/identity/service"
	helper "masjida_backend/internals/helpers"
)

// SermonProposalPortalController: pendakwah mengajukan diri mengisi jadwal.
type SermonProposalPortalController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSermonProposalPortalController(db *gorm.DB) *SermonProposalPortalController {
	return &SermonProposalPortalController{DB: db, Validate: validator.New()}
}

func mapProposalError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrProposalNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrNoLinkedPreacher):
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrNotAllowed):
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrInvalidTransition):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
	}
}

// 📄 GET /api/u/sermon-proposals — proposal milik pendakwah yang login.
func (ctl *SermonProposalPortalController) GetMyProposals(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	preacher, err := identityService.PreacherForUser(ctl.DB, userID)
	if err != nil {
		return mapProposalError(c, err)
	}

	var proposals []model.SermonProposalModel
	if err := ctl.DB.
		Where("sermon_proposal_preacher_id = ?", preacher.PreacherID).
		Order("sermon_proposal_created_at DESC").
		Find(&proposals).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil proposal")
	}

	resp := make([]dto.SermonProposalResponse, 0, len(proposals))
	for i := range proposals {
		resp = append(resp, dto.FromModelSermonProposal(&proposals[i]))
	}
	return helper.JsonOK(c, "Proposal berhasil diambil", resp)
}

// 🟢 POST /api/u/sermon-proposals
// Proposal langsung diajukan (submitted) atas nama pendakwah yang login.
func (ctl *SermonProposalPortalController) CreateProposal(c *fiber.Ctx) error {
	callerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.SermonProposalRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	prop, err := service.Create(ctl.DB, callerID, req.SermonProposalMosqueID,
		req.SermonProposalProposedTopic, req.SermonProposalProposedStartTime, req.SermonProposalNotes)
	if err != nil {
		return mapProposalError(c, err)
	}

	return helper.JsonCreated(c, "Proposal berhasil diajukan", dto.FromModelSermonProposal(prop))
}
