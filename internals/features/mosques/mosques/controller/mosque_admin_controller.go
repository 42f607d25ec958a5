package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"masjida_backend/internals/features/mosques/mosques/dto"
	"masjida_backend/internals/features/mosques/mosques/model"
	helper "masjida_backend/internals/helpers"
)

type MosqueController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewMosqueController(db *gorm.DB) *MosqueController {
	return &MosqueController{DB: db, Validate: validator.New()}
}

// 🟢 POST /api/a/mosques
func (ctl *MosqueController) CreateMosque(c *fiber.Ctx) error {
	var input dto.MosqueRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format JSON tidak valid")
	}
	if err := ctl.Validate.Struct(&input); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	// Area wajib ada
	var count int64
	if err := ctl.DB.Table("areas").
		Where("area_id = ? AND area_deleted_at IS NULL", input.MosqueAreaID).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memverifikasi area")
	}
	if count == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Area tidak ditemukan")
	}

	mosque := dto.ToModelMosque(&input)
	if err := ctl.DB.Create(mosque).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Data masjid duplikat")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat masjid")
	}
	return helper.JsonCreated(c, "Masjid berhasil dibuat", dto.FromModelMosque(mosque))
}

// 🟢 PUT /api/a/mosques/:id (partial)
func (ctl *MosqueController) UpdateMosque(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format ID masjid tidak valid")
	}

	var existing model.MosqueModel
	if err := ctl.DB.First(&existing, "mosque_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Masjid tidak ditemukan")
	}

	var input dto.MosqueUpdateRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format JSON tidak valid")
	}
	dto.ApplyMosqueUpdate(&existing, &input)

	// full_address & display_name dihitung ulang di BeforeSave
	if err := ctl.DB.Save(&existing).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui masjid")
	}
	return helper.JsonUpdated(c, "Masjid berhasil diperbarui", dto.FromModelMosque(&existing))
}

// 🗑️ DELETE /api/a/mosques/:id — board & jadwal milik masjid ikut terhapus
func (ctl *MosqueController) DeleteMosque(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format ID masjid tidak valid")
	}

	var existing model.MosqueModel
	if err := ctl.DB.First(&existing, "mosque_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Masjid tidak ditemukan")
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Table("sermon_schedules").
			Where("sermon_schedule_mosque_id = ? AND sermon_schedule_deleted_at IS NULL", id).
			Update("sermon_schedule_deleted_at", gorm.Expr("CURRENT_TIMESTAMP")).Error; err != nil {
			return err
		}
		if err := tx.Table("mosque_boards").
			Where("mosque_board_mosque_id = ? AND mosque_board_deleted_at IS NULL", id).
			Update("mosque_board_deleted_at", gorm.Expr("CURRENT_TIMESTAMP")).Error; err != nil {
			return err
		}
		return tx.Delete(&existing).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus masjid")
	}
	return helper.JsonDeleted(c, "Masjid berhasil dihapus", fiber.Map{"mosque_id": id.String()})
}
