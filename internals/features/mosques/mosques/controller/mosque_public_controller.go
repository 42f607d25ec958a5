// Read-model publik: baris datar untuk konsumsi mobile (Tab Masjid).
package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"masjida_backend/internals/features/mosques/mosques/dto"
	"masjida_backend/internals/features/mosques/mosques/model"
	helper "masjida_backend/internals/helpers"
)

type mosqueScan struct {
	MosqueID       uuid.UUID
	MosqueName     string
	MosqueCode     string
	AreaName       string
	MosqueImageURL string
}

// 📄 GET /api/v1/mosques?search=&area_id=
// Substring case-insensitive pada nama masjid ATAU nama area; filter exact
// area_id; urut nama.
func (ctl *MosqueController) GetPublicMosques(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.MosqueModel{}).
		Joins("LEFT JOIN areas ON areas.area_id = mosques.mosque_area_id AND areas.area_deleted_at IS NULL")

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(mosques.mosque_name) LIKE ? OR LOWER(areas.area_name) LIKE ?", like, like)
	}
	if areaStr := strings.TrimSpace(c.Query("area_id")); areaStr != "" {
		areaID, err := uuid.Parse(areaStr)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Format area_id tidak valid")
		}
		q = q.Where("mosques.mosque_area_id = ?", areaID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data masjid")
	}

	var rows []mosqueScan
	if err := q.Select("mosques.mosque_id, mosques.mosque_name, mosques.mosque_code, areas.area_name, mosques.mosque_image_url").
		Order("mosques.mosque_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data masjid")
	}

	out := make([]dto.MosqueListRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.MosqueListRow{
			ID:       r.MosqueID.String(),
			Name:     r.MosqueName,
			Code:     r.MosqueCode,
			Area:     r.AreaName,
			ImageURL: nilIfEmpty(r.MosqueImageURL),
		})
	}
	return helper.JsonList(c, "Daftar masjid", out,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🔍 GET /api/v1/mosques/:id — detail + jadwal CONFIRMED saja
func (ctl *MosqueController) GetPublicMosqueDetail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format ID masjid tidak valid")
	}

	var mosque model.MosqueModel
	if err := ctl.DB.Preload("Area").First(&mosque, "mosque_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Masjid tidak ditemukan")
	}

	type schedScan struct {
		SermonScheduleID        uuid.UUID
		SermonScheduleTopic     string
		SermonScheduleStartTime time.Time
		PreacherID              uuid.UUID
		PreacherDisplayName     string
	}
	var scheds []schedScan
	if err := ctl.DB.Table("sermon_schedules").
		Joins("JOIN preachers ON preachers.preacher_id = sermon_schedules.sermon_schedule_preacher_id").
		Where("sermon_schedules.sermon_schedule_mosque_id = ? AND sermon_schedules.sermon_schedule_state = ? AND sermon_schedules.sermon_schedule_deleted_at IS NULL", id, "confirmed").
		Select("sermon_schedules.sermon_schedule_id, sermon_schedules.sermon_schedule_topic, sermon_schedules.sermon_schedule_start_time, preachers.preacher_id, preachers.preacher_display_name").
		Order("sermon_schedules.sermon_schedule_start_time ASC").
		Scan(&scheds).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jadwal")
	}

	detail := dto.MosqueDetailResponse{
		MosqueResponse: dto.FromModelMosque(&mosque),
		Schedules:      make([]dto.MosqueScheduleRow, 0, len(scheds)),
	}
	if mosque.Area != nil {
		detail.Area = mosque.Area.AreaName
	}
	for _, s := range scheds {
		detail.Schedules = append(detail.Schedules, dto.MosqueScheduleRow{
			ID:           s.SermonScheduleID.String(),
			Topic:        s.SermonScheduleTopic,
			StartTime:    s.SermonScheduleStartTime,
			PreacherID:   s.PreacherID.String(),
			PreacherName: s.PreacherDisplayName,
		})
	}
	return helper.JsonOK(c, "Detail masjid", detail)
}

func nilIfEmpty(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
