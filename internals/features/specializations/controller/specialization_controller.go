package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"masjida_backend/internals/features/specializations/model"
	helper "masjida_backend/internals/helpers"
)

type SpecializationController struct {
	DB *gorm.DB
}

func NewSpecializationController(db *gorm.DB) *SpecializationController {
	return &SpecializationController{DB: db}
}

type specializationRow struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// 📄 GET /specializations — publik, urut nama
func (ctl *SpecializationController) GetAllSpecializations(c *fiber.Ctx) error {
	var specs []model.SpecializationModel
	if err := ctl.DB.Order("specialization_name ASC").Find(&specs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data spesialisasi")
	}

	out := make([]specializationRow, 0, len(specs))
	for i := range specs {
		out = append(out, specializationRow{ID: specs[i].SpecializationID.String(), Name: specs[i].SpecializationName})
	}
	return helper.JsonOK(c, "Daftar spesialisasi", out)
}

// 🟢 POST /api/a/specializations
func (ctl *SpecializationController) CreateSpecialization(c *fiber.Ctx) error {
	var input struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format JSON tidak valid")
	}
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Nama spesialisasi wajib diisi")
	}

	spec := model.SpecializationModel{SpecializationName: input.Name}
	if err := ctl.DB.Create(&spec).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Nama spesialisasi sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat spesialisasi")
	}
	return helper.JsonCreated(c, "Spesialisasi berhasil dibuat",
		specializationRow{ID: spec.SpecializationID.String(), Name: spec.SpecializationName})
}

// 🗑️ DELETE /api/a/specializations/:id
func (ctl *SpecializationController) DeleteSpecialization(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format ID tidak valid")
	}

	var existing model.SpecializationModel
	if err := ctl.DB.First(&existing, "specialization_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Spesialisasi tidak ditemukan")
	}
	if err := ctl.DB.Delete(&existing).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus spesialisasi")
	}
	return helper.JsonDeleted(c, "Spesialisasi berhasil dihapus", fiber.Map{"specialization_id": id.String()})
}
