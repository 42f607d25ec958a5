package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"masjida_backend/internals/features/areas/dto"
	"masjida_backend/internals/features/areas/model"
	helper "masjida_backend/internals/helpers"
)

type AreaController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAreaController(db *gorm.DB) *AreaController {
	return &AreaController{DB: db, Validate: validator.New()}
}

// 📄 GET /areas — publik, urut nama
func (ctl *AreaController) GetAllAreas(c *fiber.Ctx) error {
	var areas []model.AreaModel
	if err := ctl.DB.Order("area_name ASC").Find(&areas).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data area")
	}

	out := make([]dto.AreaResponse, 0, len(areas))
	for i := range areas {
		out = append(out, dto.FromModelArea(&areas[i]))
	}
	return helper.JsonOK(c, "Daftar area", out)
}

// 🟢 POST /api/a/areas
func (ctl *AreaController) CreateArea(c *fiber.Ctx) error {
	var input dto.AreaRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format JSON tidak valid")
	}
	input.AreaName = strings.TrimSpace(input.AreaName)
	if err := ctl.Validate.Struct(&input); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	area := dto.ToModelArea(&input)
	if err := ctl.DB.Create(area).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Nama area sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat area")
	}
	return helper.JsonCreated(c, "Area berhasil dibuat", dto.FromModelArea(area))
}

// 🟢 PUT /api/a/areas/:id (partial)
func (ctl *AreaController) UpdateArea(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format ID area tidak valid")
	}

	var existing model.AreaModel
	if err := ctl.DB.First(&existing, "area_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Area tidak ditemukan")
	}

	var input dto.AreaUpdateRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format JSON tidak valid")
	}
	dto.ApplyAreaUpdate(&existing, &input)

	if err := ctl.DB.Save(&existing).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Nama area sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui area")
	}
	return helper.JsonUpdated(c, "Area berhasil diperbarui", dto.FromModelArea(&existing))
}

// 🗑️ DELETE /api/a/areas/:id — sub-area ikut terhapus (cascade)
func (ctl *AreaController) DeleteArea(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format ID area tidak valid")
	}

	var existing model.AreaModel
	if err := ctl.DB.First(&existing, "area_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Area tidak ditemukan")
	}

	// Soft delete: cascade sub-area dikerjakan eksplisit (bukan FK, karena
	// soft delete hanyalah UPDATE).
	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("area_parent_id = ?", id).Delete(&model.AreaModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&existing).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus area")
	}
	return helper.JsonDeleted(c, "Area berhasil dihapus", fiber.Map{"area_id": id.String()})
}
