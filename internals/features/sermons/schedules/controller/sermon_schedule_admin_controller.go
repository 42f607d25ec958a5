// file: internals/features/sermons/schedules/controller/sermon_schedule_admin_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"masjida_backend/internals/features/sermons/schedules/dto"
	"masjida_backend/internals/features/sermons/schedules/model"
	"masjida_backend/internals/features/sermons/schedules/service"
	helper "masjida_backend/internals/helpers"
)

type SermonScheduleAdminController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSermonScheduleAdminController(db *gorm.DB) *SermonScheduleAdminController {
	return &SermonScheduleAdminController{DB: db, Validate: validator.New()}
}

// mapScheduleError menerjemahkan sentinel service ke respons HTTP.
func mapScheduleError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrScheduleNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrNotAllowed):
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrInvalidTransition):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
	}
}

// 📄 GET /api/a/sermon-schedules?mosque_id=&state=
func (ctl *SermonScheduleAdminController) GetSchedules(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.SermonScheduleModel{})
	if raw := c.Query("mosque_id"); raw != "" {
		mosqueID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "mosque_id tidak valid")
		}
		q = q.Where("sermon_schedule_mosque_id = ?", mosqueID)
	}
	if state := c.Query("state"); state != "" {
		q = q.Where("sermon_schedule_state = ?", state)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung jadwal")
	}

	var schedules []model.SermonScheduleModel
	if err := q.Order("sermon_schedule_start_time").Offset(paging.Offset).Limit(paging.Limit).Find(&schedules).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jadwal")
	}

	resp := make([]dto.SermonScheduleResponse, 0, len(schedules))
	for i := range schedules {
		resp = append(resp, dto.FromModelSermonSchedule(&schedules[i]))
	}
	return helper.JsonList(c, "Daftar jadwal", resp,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🟢 POST /api/a/sermon-schedules — jadwal baru selalu lahir sebagai draft.
func (ctl *SermonScheduleAdminController) CreateSchedule(c *fiber.Ctx) error {
	var req dto.SermonScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	if req.SermonScheduleEndTime != nil && !req.SermonScheduleEndTime.After(req.SermonScheduleStartTime) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "sermon_schedule_end_time harus setelah sermon_schedule_start_time")
	}

	sched := dto.ToModelSermonSchedule(&req)
	if err := ctl.DB.Create(sched).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan jadwal")
	}

	return helper.JsonCreated(c, "Jadwal berhasil dibuat", dto.FromModelSermonSchedule(sched))
}

// ✏️ PUT /api/a/sermon-schedules/:id — detail hanya boleh diubah selagi draft.
func (ctl *SermonScheduleAdminController) UpdateSchedule(c *fiber.Ctx) error {
	scheduleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID jadwal tidak valid")
	}

	var req dto.SermonScheduleUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}

	var sched model.SermonScheduleModel
	if err := ctl.DB.First(&sched, "sermon_schedule_id = ?", scheduleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Jadwal tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jadwal")
	}
	if sched.SermonScheduleState != model.ScheduleStateDraft {
		return helper.JsonError(c, fiber.StatusBadRequest, "Jadwal hanya bisa diubah selama masih draft")
	}

	dto.ApplySermonScheduleUpdate(&sched, &req)
	if err := ctl.DB.Save(&sched).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui jadwal")
	}

	return helper.JsonUpdated(c, "Jadwal berhasil diperbarui", dto.FromModelSermonSchedule(&sched))
}

// 📨 POST /api/a/sermon-schedules/:id/send — kirim undangan ke pendakwah.
func (ctl *SermonScheduleAdminController) SendInvitation(c *fiber.Ctx) error {
	scheduleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID jadwal tidak valid")
	}
	callerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	sched, err := service.SendInvitation(ctl.DB, scheduleID, callerID)
	if err != nil {
		return mapScheduleError(c, err)
	}
	return helper.JsonUpdated(c, "Undangan berhasil dikirim", dto.FromModelSermonSchedule(sched))
}

// 🛑 POST /api/a/sermon-schedules/:id/cancel
func (ctl *SermonScheduleAdminController) CancelSchedule(c *fiber.Ctx) error {
	scheduleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID jadwal tidak valid")
	}
	callerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	sched, err := service.Cancel(ctl.DB, scheduleID, callerID)
	if err != nil {
		return mapScheduleError(c, err)
	}
	return helper.JsonUpdated(c, "Jadwal dibatalkan", dto.FromModelSermonSchedule(sched))
}
