// file: internals/features/mosques/mosque_boards/controller/mosque_board_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"masjida_backend/internals/constants"
	"masjida_backend/internals/features/mosques/mosque_boards/dto"
	"masjida_backend/internals/features/mosques/mosque_boards/model"
	identityService "masjida_backend/internals/features/users/identity/service"
	helper "masjida_backend/internals/helpers"
)

type MosqueBoardController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewMosqueBoardController(db *gorm.DB) *MosqueBoardController {
	return &MosqueBoardController{DB: db, Validate: validator.New()}
}

// 📄 GET /api/a/mosque-boards?mosque_id=...
func (ctl *MosqueBoardController) GetMosqueBoards(c *fiber.Ctx) error {
	q := ctl.DB.Model(&model.MosqueBoardModel{})
	if raw := c.Query("mosque_id"); raw != "" {
		mosqueID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "mosque_id tidak valid")
		}
		q = q.Where("mosque_board_mosque_id = ?", mosqueID)
	}

	var boards []model.MosqueBoardModel
	if err := q.Order("mosque_board_name").Find(&boards).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data pengurus")
	}

	resp := make([]dto.MosqueBoardResponse, 0, len(boards))
	for i := range boards {
		resp = append(resp, dto.FromModelMosqueBoard(&boards[i]))
	}
	return helper.JsonOK(c, "Data pengurus berhasil diambil", resp)
}

// 🟢 POST /api/a/mosque-boards
// Kalau user_id tidak dikirim, akun di-resolve lewat email: reuse kalau ada,
// buat baru kalau belum — lalu grant pengurus direkonsiliasi.
func (ctl *MosqueBoardController) CreateMosqueBoard(c *fiber.Ctx) error {
	var req dto.MosqueBoardRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	userID := req.MosqueBoardUserID
	if userID == nil {
		user, err := identityService.LinkAccount(ctl.DB, req.MosqueBoardName, req.MosqueBoardEmail, constants.BoardMemberGrants...)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghubungkan akun pengurus")
		}
		userID = &user.ID
	} else {
		if err := identityService.EnsureGrants(ctl.DB, *userID, constants.BoardMemberGrants...); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menambahkan hak akses pengurus")
		}
	}

	position := req.MosqueBoardPosition
	if position == "" {
		position = model.PositionMember
	}

	board := model.MosqueBoardModel{
		MosqueBoardName:     req.MosqueBoardName,
		MosqueBoardPosition: position,
		MosqueBoardPhone:    req.MosqueBoardPhone,
		MosqueBoardEmail:    req.MosqueBoardEmail,
		MosqueBoardMosqueID: req.MosqueBoardMosqueID,
		MosqueBoardUserID:   *userID,
	}
	if err := ctl.DB.Create(&board).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Pengurus dengan akun atau email ini sudah terdaftar di masjid tersebut")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan data pengurus")
	}

	return helper.JsonCreated(c, "Pengurus berhasil ditambahkan", dto.FromModelMosqueBoard(&board))
}

// ✏️ PUT /api/a/mosque-boards/:id
// Perubahan nama/email ikut disinkronkan ke akun yang terhubung.
func (ctl *MosqueBoardController) UpdateMosqueBoard(c *fiber.Ctx) error {
	boardID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID pengurus tidak valid")
	}

	var req dto.MosqueBoardUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}

	var board model.MosqueBoardModel
	if err := ctl.DB.First(&board, "mosque_board_id = ?", boardID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pengurus tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data pengurus")
	}

	syncIdentity := false
	if req.MosqueBoardName != nil {
		board.MosqueBoardName = *req.MosqueBoardName
		syncIdentity = true
	}
	if req.MosqueBoardPosition != nil {
		board.MosqueBoardPosition = *req.MosqueBoardPosition
	}
	if req.MosqueBoardPhone != nil {
		board.MosqueBoardPhone = *req.MosqueBoardPhone
	}
	if req.MosqueBoardEmail != nil {
		board.MosqueBoardEmail = *req.MosqueBoardEmail
		syncIdentity = true
	}

	if err := ctl.DB.Save(&board).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email ini sudah dipakai pengurus lain di masjid tersebut")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui data pengurus")
	}

	if syncIdentity {
		if err := identityService.SyncAccount(ctl.DB, board.MosqueBoardUserID, board.MosqueBoardName, board.MosqueBoardEmail); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyelaraskan akun pengurus")
		}
	}

	return helper.JsonUpdated(c, "Pengurus berhasil diperbarui", dto.FromModelMosqueBoard(&board))
}

// 🗑️ DELETE /api/a/mosque-boards/:id
// Akun hanya ikut dihapus kalau tidak ada record lain yang memakainya.
func (ctl *MosqueBoardController) DeleteMosqueBoard(c *fiber.Ctx) error {
	boardID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID pengurus tidak valid")
	}

	var board model.MosqueBoardModel
	if err := ctl.DB.First(&board, "mosque_board_id = ?", boardID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pengurus tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data pengurus")
	}

	if err := ctl.DB.Delete(&board).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus data pengurus")
	}
	if err := identityService.ReleaseAccount(ctl.DB, board.MosqueBoardUserID); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal melepas akun pengurus")
	}

	return helper.JsonDeleted(c, "Pengurus berhasil dihapus", fiber.Map{"mosque_board_id": boardID})
}
