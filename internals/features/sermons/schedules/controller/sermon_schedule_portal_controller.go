// file: internals/features/sermons/schedules/controller/sermon_schedule_portal_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"masjida_backend/internals/features/sermons/schedules/dto"
	"masjida_backend/internals/features/sermons/schedules/model"
	"masjida_backend/internals/features/sermons/schedules/service"
	identityService "masjida_backend/internals/features/users/identity/service"
	helper "masjida_backend/internals/helpers"
)

// SermonSchedulePortalController: sisi pendakwah — undangan masuk dan jawabannya.
type SermonSchedulePortalController struct {
	DB *gorm.DB
}

func NewSermonSchedulePortalController(db *gorm.DB) *SermonSchedulePortalController {
	return &SermonSchedulePortalController{DB: db}
}

// 📄 GET /api/u/sermon-schedules/pending
// Undangan sent untuk pendakwah yang login. 404 kalau akun tidak terhubung
// ke profil pendakwah.
func (ctl *SermonSchedulePortalController) GetPendingInvitations(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	preacher, err := identityService.PreacherForUser(ctl.DB, userID)
	if err != nil {
		if errors.Is(err, identityService.ErrNoLinkedPreacher) {
			return helper.JsonError(c, fiber.StatusNotFound, "Akun ini tidak terhubung ke profil pendakwah")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil profil pendakwah")
	}

	var scan []struct {
		SermonScheduleID        uuid.UUID
		SermonScheduleTopic     string
		SermonScheduleStartTime time.Time
		SermonScheduleMosqueID  uuid.UUID
		MosqueName              string
	}
	if err := ctl.DB.Table("sermon_schedules").
		Select(`sermon_schedules.sermon_schedule_id, sermon_schedules.sermon_schedule_topic,
			sermon_schedules.sermon_schedule_start_time, sermon_schedules.sermon_schedule_mosque_id,
			mosques.mosque_name`).
		Joins("JOIN mosques ON mosques.mosque_id = sermon_schedules.sermon_schedule_mosque_id AND mosques.mosque_deleted_at IS NULL").
		Where("sermon_schedules.sermon_schedule_preacher_id = ?", preacher.PreacherID).
		Where("sermon_schedules.sermon_schedule_state = ?", model.ScheduleStateSent).
		Where("sermon_schedules.sermon_schedule_deleted_at IS NULL").
		Order("sermon_schedules.sermon_schedule_start_time").
		Scan(&scan).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil undangan")
	}

	rows := make([]dto.PendingInvitationRow, 0, len(scan))
	for _, s := range scan {
		rows = append(rows, dto.PendingInvitationRow{
			ID:         s.SermonScheduleID,
			Topic:      s.SermonScheduleTopic,
			StartTime:  s.SermonScheduleStartTime,
			MosqueID:   s.SermonScheduleMosqueID,
			MosqueName: s.MosqueName,
		})
	}
	return helper.JsonOK(c, "Undangan berhasil diambil", rows)
}

// ✅ POST /api/u/sermon-schedules/:id/confirm
func (ctl *SermonSchedulePortalController) ConfirmSchedule(c *fiber.Ctx) error {
	scheduleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID jadwal tidak valid")
	}
	callerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	sched, err := service.Confirm(ctl.DB, scheduleID, callerID)
	if err != nil {
		return mapScheduleError(c, err)
	}
	return helper.JsonUpdated(c, "Jadwal dikonfirmasi", dto.FromModelSermonSchedule(sched))
}

// ❌ POST /api/u/sermon-schedules/:id/reject
func (ctl *SermonSchedulePortalController) RejectSchedule(c *fiber.Ctx) error {
	scheduleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID jadwal tidak valid")
	}
	callerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	sched, err := service.Reject(ctl.DB, scheduleID, callerID)
	if err != nil {
		return mapScheduleError(c, err)
	}
	return helper.JsonUpdated(c, "Undangan ditolak", dto.FromModelSermonSchedule(sched))
}
