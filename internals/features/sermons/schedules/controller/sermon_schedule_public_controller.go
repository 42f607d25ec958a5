// file: internals/features/sermons/schedules/controller/sermon_schedule_public_controller.go
package controller

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"masjida_backend/internals/configs"
	"masjida_backend/internals/features/sermons/schedules/dto"
	"masjida_backend/internals/features/sermons/schedules/model"
	helper "masjida_backend/internals/helpers"
)

// SermonSchedulePublicController: feed jadwal untuk web publik dan mobile.
type SermonSchedulePublicController struct {
	DB *gorm.DB
}

func NewSermonSchedulePublicController(db *gorm.DB) *SermonSchedulePublicController {
	return &SermonSchedulePublicController{DB: db}
}

// 📄 GET /api/v1/sermon-schedules?search=&area_id=&day_of_week=
// Hanya jadwal confirmed yang akan datang. day_of_week: 0=Senin .. 6=Minggu,
// dievaluasi pada start_time yang dilokalkan ke timezone aplikasi.
func (ctl *SermonSchedulePublicController) GetPublicSchedules(c *fiber.Ctx) error {
	now := time.Now()

	q := ctl.DB.Table("sermon_schedules").
		Select(`sermon_schedules.sermon_schedule_id, sermon_schedules.sermon_schedule_topic,
			sermon_schedules.sermon_schedule_start_time,
			sermon_schedules.sermon_schedule_mosque_id, mosques.mosque_name,
			areas.area_name,
			sermon_schedules.sermon_schedule_preacher_id, preachers.preacher_display_name`).
		Joins("JOIN mosques ON mosques.mosque_id = sermon_schedules.sermon_schedule_mosque_id AND mosques.mosque_deleted_at IS NULL").
		Joins("LEFT JOIN areas ON areas.area_id = mosques.mosque_area_id AND areas.area_deleted_at IS NULL").
		Joins("JOIN preachers ON preachers.preacher_id = sermon_schedules.sermon_schedule_preacher_id AND preachers.preacher_deleted_at IS NULL").
		Where("sermon_schedules.sermon_schedule_state = ?", model.ScheduleStateConfirmed).
		Where("sermon_schedules.sermon_schedule_start_time >= ?", now).
		Where("sermon_schedules.sermon_schedule_deleted_at IS NULL")

	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		q = q.Where("LOWER(sermon_schedules.sermon_schedule_topic) LIKE LOWER(?) OR LOWER(preachers.preacher_name) LIKE LOWER(?)", like, like)
	}
	if raw := c.Query("area_id"); raw != "" {
		areaID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "area_id tidak valid")
		}
		q = q.Where("mosques.mosque_area_id = ?", areaID)
	}

	var scan []struct {
		SermonScheduleID         uuid.UUID
		SermonScheduleTopic      string
		SermonScheduleStartTime  time.Time
		SermonScheduleMosqueID   uuid.UUID
		MosqueName               string
		AreaName                 *string
		SermonSchedulePreacherID uuid.UUID
		PreacherDisplayName      string
	}
	if err := q.Order("sermon_schedules.sermon_schedule_start_time").Scan(&scan).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jadwal")
	}

	// Filter hari dilakukan di aplikasi: penentuan hari tergantung timezone,
	// bukan nilai UTC yang tersimpan di store.
	dayFilter := -1
	if raw := c.Query("day_of_week"); raw != "" {
		d, err := strconv.Atoi(raw)
		if err != nil || d < 0 || d > 6 {
			return helper.JsonError(c, fiber.StatusBadRequest, "day_of_week harus 0 (Senin) sampai 6 (Minggu)")
		}
		dayFilter = d
	}
	loc := configs.Timezone()

	rows := make([]dto.PublicScheduleRow, 0, len(scan))
	for _, s := range scan {
		if dayFilter >= 0 {
			// time.Weekday: Minggu=0 — digeser ke Senin=0.
			localDay := (int(s.SermonScheduleStartTime.In(loc).Weekday()) + 6) % 7
			if localDay != dayFilter {
				continue
			}
		}
		rows = append(rows, dto.PublicScheduleRow{
			ID:           s.SermonScheduleID,
			Topic:        s.SermonScheduleTopic,
			StartTime:    s.SermonScheduleStartTime,
			MosqueID:     s.SermonScheduleMosqueID,
			MosqueName:   s.MosqueName,
			Area:         s.AreaName,
			PreacherID:   s.SermonSchedulePreacherID,
			PreacherName: s.PreacherDisplayName,
		})
	}

	return helper.JsonOK(c, "Jadwal berhasil diambil", rows)
}
