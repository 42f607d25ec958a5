// file: internals/features/sermons/proposals/controller/sermon_proposal_admin_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	scheduleDTO "masjida_backend/internals/features/sermons/schedules/dto"
	"masjida_backend/internals/features/sermons/proposals/dto"
	"masjida_backend/internals/features/sermons/proposals/model"
	"masjida_backend/internals/features/sermons/proposals/service"
	helper "masjida_backend/internals/helpers"
)

// SermonProposalAdminController: sisi pengurus — meninjau proposal masuk.
type SermonProposalAdminController struct {
	DB *gorm.DB
}

func NewSermonProposalAdminController(db *gorm.DB) *SermonProposalAdminController {
	return &SermonProposalAdminController{DB: db}
}

// 📄 GET /api/a/sermon-proposals?mosque_id=&state=
func (ctl *SermonProposalAdminController) GetProposals(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.SermonProposalModel{})
	if raw := c.Query("mosque_id"); raw != "" {
		mosqueID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "mosque_id tidak valid")
		}
		q = q.Where("sermon_proposal_mosque_id = ?", mosqueID)
	}
	if state := c.Query("state"); state != "" {
		q = q.Where("sermon_proposal_state = ?", state)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung proposal")
	}

	var proposals []model.SermonProposalModel
	if err := q.Order("sermon_proposal_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&proposals).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil proposal")
	}

	resp := make([]dto.SermonProposalResponse, 0, len(proposals))
	for i := range proposals {
		resp = append(resp, dto.FromModelSermonProposal(&proposals[i]))
	}
	return helper.JsonList(c, "Daftar proposal", resp,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// ✅ POST /api/a/sermon-proposals/:id/approve
// Sekali jalan: proposal jadi approved DAN jadwal confirmed dibuat — atomik.
func (ctl *SermonProposalAdminController) ApproveProposal(c *fiber.Ctx) error {
	proposalID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID proposal tidak valid")
	}
	callerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	prop, sched, err := service.Approve(ctl.DB, proposalID, callerID)
	if err != nil {
		return mapProposalError(c, err)
	}

	return helper.JsonUpdated(c, "Proposal disetujui", dto.SermonProposalApproveResponse{
		Proposal: dto.FromModelSermonProposal(prop),
		Schedule: scheduleDTO.FromModelSermonSchedule(sched),
	})
}

// ❌ POST /api/a/sermon-proposals/:id/reject
func (ctl *SermonProposalAdminController) RejectProposal(c *fiber.Ctx) error {
	proposalID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID proposal tidak valid")
	}
	callerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	prop, err := service.Reject(ctl.DB, proposalID, callerID)
	if err != nil {
		return mapProposalError(c, err)
	}
	return helper.JsonUpdated(c, "Proposal ditolak", dto.FromModelSermonProposal(prop))
}
