// file: internals/features/preachers/preachers/controller/preacher_public_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"masjida_backend/internals/features/preachers/preachers/dto"
	"masjida_backend/internals/features/preachers/preachers/model"
	scheduleModel "masjida_backend/internals/features/sermons/schedules/model"
	helper "masjida_backend/internals/helpers"
)

type PreacherPublicController struct {
	DB *gorm.DB
}

func NewPreacherPublicController(db *gorm.DB) *PreacherPublicController {
	return &PreacherPublicController{DB: db}
}

// 📄 GET /api/v1/preachers?search=&area_id=&specialization_id=
// Daftar publik — hanya pendakwah confirmed yang tampil.
func (ctl *PreacherPublicController) GetPublicPreachers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Table("preachers").
		Select(`preachers.preacher_id, preachers.preacher_code, preachers.preacher_name,
			preachers.preacher_display_name, preachers.preacher_image_url,
			preachers.preacher_area_id, preachers.preacher_specialization_id,
			areas.area_name, specializations.specialization_name`).
		Joins("LEFT JOIN areas ON areas.area_id = preachers.preacher_area_id AND areas.area_deleted_at IS NULL").
		Joins("LEFT JOIN specializations ON specializations.specialization_id = preachers.preacher_specialization_id AND specializations.specialization_deleted_at IS NULL").
		Where("preachers.preacher_state = ?", model.PreacherStateConfirmed).
		Where("preachers.preacher_deleted_at IS NULL")

	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		q = q.Where("LOWER(preachers.preacher_name) LIKE LOWER(?) OR LOWER(areas.area_name) LIKE LOWER(?)", like, like)
	}
	if raw := c.Query("area_id"); raw != "" {
		areaID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "area_id tidak valid")
		}
		q = q.Where("preachers.preacher_area_id = ?", areaID)
	}
	if raw := c.Query("specialization_id"); raw != "" {
		specID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "specialization_id tidak valid")
		}
		q = q.Where("preachers.preacher_specialization_id = ?", specID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data pendakwah")
	}

	var scan []struct {
		PreacherID               uuid.UUID
		PreacherCode             string
		PreacherName             string
		PreacherDisplayName      string
		PreacherImageURL         string
		PreacherAreaID           *uuid.UUID
		PreacherSpecializationID *uuid.UUID
		AreaName                 *string
		SpecializationName       *string
	}
	if err := q.Order("preachers.preacher_name").Offset(paging.Offset).Limit(paging.Limit).Scan(&scan).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data pendakwah")
	}

	rows := make([]dto.PreacherListRow, 0, len(scan))
	for _, s := range scan {
		row := dto.PreacherListRow{
			ID:               s.PreacherID,
			Code:             s.PreacherCode,
			Name:             s.PreacherName,
			DisplayName:      s.PreacherDisplayName,
			Area:             s.AreaName,
			AreaID:           s.PreacherAreaID,
			Specialization:   s.SpecializationName,
			SpecializationID: s.PreacherSpecializationID,
		}
		if s.PreacherImageURL != "" {
			url := s.PreacherImageURL
			row.ImageURL = &url
		}
		rows = append(rows, row)
	}

	return helper.JsonList(c, "Daftar pendakwah", rows,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🔍 GET /api/v1/preachers/:id
// Detail publik plus seluruh jadwal confirmed-nya.
func (ctl *PreacherPublicController) GetPublicPreacherDetail(c *fiber.Ctx) error {
	preacherID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID pendakwah tidak valid")
	}

	var preacher model.PreacherModel
	if err := ctl.DB.Preload("Area").Preload("Specialization").
		First(&preacher, "preacher_id = ? AND preacher_state = ?", preacherID, model.PreacherStateConfirmed).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pendakwah tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data pendakwah")
	}

	schedules, err := ConfirmedSchedulesForPreacher(ctl.DB, preacher.PreacherID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jadwal pendakwah")
	}

	detail := dto.PreacherDetailResponse{
		PreacherResponse: dto.FromModelPreacher(&preacher),
		Schedules:        schedules,
	}
	if preacher.Area != nil {
		detail.Area = preacher.Area.AreaName
	}
	if preacher.Specialization != nil {
		detail.Specialization = preacher.Specialization.SpecializationName
	}

	return helper.JsonOK(c, "Detail pendakwah berhasil diambil", detail)
}

// ConfirmedSchedulesForPreacher: seluruh jadwal confirmed milik satu
// pendakwah (tanpa batas waktu), dengan nama masjid di-flatten. Dipakai
// detail publik dan portal.
func ConfirmedSchedulesForPreacher(db *gorm.DB, preacherID uuid.UUID) ([]dto.PreacherScheduleRow, error) {
	var scan []struct {
		SermonScheduleID        uuid.UUID
		SermonScheduleTopic     string
		SermonScheduleStartTime time.Time
		SermonScheduleMosqueID  uuid.UUID
		MosqueName              string
	}
	err := db.Table("sermon_schedules").
		Select(`sermon_schedules.sermon_schedule_id, sermon_schedules.sermon_schedule_topic,
			sermon_schedules.sermon_schedule_start_time, sermon_schedules.sermon_schedule_mosque_id,
			mosques.mosque_name`).
		Joins("JOIN mosques ON mosques.mosque_id = sermon_schedules.sermon_schedule_mosque_id AND mosques.mosque_deleted_at IS NULL").
		Where("sermon_schedules.sermon_schedule_preacher_id = ?", preacherID).
		Where("sermon_schedules.sermon_schedule_state = ?", scheduleModel.ScheduleStateConfirmed).
		Where("sermon_schedules.sermon_schedule_deleted_at IS NULL").
		Order("sermon_schedules.sermon_schedule_start_time").
		Scan(&scan).Error
	if err != nil {
		return nil, err
	}

	rows := make([]dto.PreacherScheduleRow, 0, len(scan))
	for _, s := range scan {
		rows = append(rows, dto.PreacherScheduleRow{
			ID:         s.SermonScheduleID,
			Topic:      s.SermonScheduleTopic,
			StartTime:  s.SermonScheduleStartTime,
			MosqueID:   s.SermonScheduleMosqueID,
			MosqueName: s.MosqueName,
		})
	}
	return rows, nil
}
