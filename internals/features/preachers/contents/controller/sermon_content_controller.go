// file: internals/features/preachers/contents/controller/sermon_content_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"masjida_backend/internals/features/preachers/contents/dto"
	"masjida_backend/internals/features/preachers/contents/model"
	preacherModel "masjida_backend/internals/features/preachers/preachers/model"
	identityService "masjida_backend/internals/features/users/identity/service"
	helper "masjida_backend/internals/helpers"
)

// SermonContentController: konten dakwah milik pendakwah yang login (portal)
// plus feed publik konten yang sudah terbit.
type SermonContentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSermonContentController(db *gorm.DB) *SermonContentController {
	return &SermonContentController{DB: db, Validate: validator.New()}
}

func (ctl *SermonContentController) callerPreacher(c *fiber.Ctx) (*preacherModel.PreacherModel, error) {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return nil, err
	}
	preacher, err := identityService.PreacherForUser(ctl.DB, userID)
	if err != nil {
		if errors.Is(err, identityService.ErrNoLinkedPreacher) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Akun ini tidak terhubung ke profil pendakwah")
		}
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil profil pendakwah")
	}
	return preacher, nil
}

// ownContent memuat konten milik caller; konten orang lain diperlakukan 404.
func (ctl *SermonContentController) ownContent(c *fiber.Ctx, preacherID uuid.UUID) (*model.SermonContentModel, error) {
	contentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "ID konten tidak valid")
	}
	var content model.SermonContentModel
	if err := ctl.DB.First(&content,
		"sermon_content_id = ? AND sermon_content_preacher_id = ?", contentID, preacherID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Konten tidak ditemukan")
		}
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil konten")
	}
	return &content, nil
}

// 📄 GET /api/u/sermon-contents
func (ctl *SermonContentController) GetMyContents(c *fiber.Ctx) error {
	preacher, err := ctl.callerPreacher(c)
	if err != nil {
		return err
	}

	var contents []model.SermonContentModel
	if err := ctl.DB.
		Where("sermon_content_preacher_id = ?", preacher.PreacherID).
		Order("sermon_content_created_at DESC").
		Find(&contents).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil konten")
	}

	resp := make([]dto.SermonContentResponse, 0, len(contents))
	for i := range contents {
		resp = append(resp, dto.FromModelSermonContent(&contents[i]))
	}
	return helper.JsonOK(c, "Konten berhasil diambil", resp)
}

// 🟢 POST /api/u/sermon-contents
func (ctl *SermonContentController) CreateContent(c *fiber.Ctx) error {
	preacher, err := ctl.callerPreacher(c)
	if err != nil {
		return err
	}

	var req dto.SermonContentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	contentType := req.SermonContentType
	if contentType == "" {
		contentType = model.ContentTypeText
	}
	content := model.SermonContentModel{
		SermonContentTitle:      req.SermonContentTitle,
		SermonContentPreacherID: preacher.PreacherID,
		SermonContentType:       contentType,
		SermonContentText:       req.SermonContentText,
		SermonContentImageURL:   req.SermonContentImageURL,
		SermonContentVideoURL:   req.SermonContentVideoURL,
		SermonContentState:      model.ContentStateDraft,
	}
	if err := ctl.DB.Create(&content).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan konten")
	}

	return helper.JsonCreated(c, "Konten berhasil dibuat", dto.FromModelSermonContent(&content))
}

// ✏️ PUT /api/u/sermon-contents/:id
func (ctl *SermonContentController) UpdateContent(c *fiber.Ctx) error {
	preacher, err := ctl.callerPreacher(c)
	if err != nil {
		return err
	}
	content, err := ctl.ownContent(c, preacher.PreacherID)
	if err != nil {
		return err
	}

	var req dto.SermonContentUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}

	dto.ApplySermonContentUpdate(content, &req)
	if err := ctl.DB.Save(content).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui konten")
	}

	return helper.JsonUpdated(c, "Konten berhasil diperbarui", dto.FromModelSermonContent(content))
}

// 🗑️ DELETE /api/u/sermon-contents/:id
func (ctl *SermonContentController) DeleteContent(c *fiber.Ctx) error {
	preacher, err := ctl.callerPreacher(c)
	if err != nil {
		return err
	}
	content, err := ctl.ownContent(c, preacher.PreacherID)
	if err != nil {
		return err
	}

	if err := ctl.DB.Delete(content).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus konten")
	}
	return helper.JsonDeleted(c, "Konten berhasil dihapus", fiber.Map{"sermon_content_id": content.SermonContentID})
}

// 🚀 POST /api/u/sermon-contents/:id/publish
func (ctl *SermonContentController) PublishContent(c *fiber.Ctx) error {
	preacher, err := ctl.callerPreacher(c)
	if err != nil {
		return err
	}
	content, err := ctl.ownContent(c, preacher.PreacherID)
	if err != nil {
		return err
	}

	content.Publish(time.Now())
	if err := ctl.DB.Save(content).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menerbitkan konten")
	}
	return helper.JsonUpdated(c, "Konten berhasil diterbitkan", dto.FromModelSermonContent(content))
}

// ↩️ POST /api/u/sermon-contents/:id/unpublish
func (ctl *SermonContentController) UnpublishContent(c *fiber.Ctx) error {
	preacher, err := ctl.callerPreacher(c)
	if err != nil {
		return err
	}
	content, err := ctl.ownContent(c, preacher.PreacherID)
	if err != nil {
		return err
	}

	content.Unpublish()
	if err := ctl.DB.Save(content).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menarik konten")
	}
	return helper.JsonUpdated(c, "Konten dikembalikan ke draft", dto.FromModelSermonContent(content))
}

// 📄 GET /api/v1/sermon-contents — feed publik, hanya yang published.
func (ctl *SermonContentController) GetPublicContents(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.SermonContentModel{}).
		Where("sermon_content_state = ?", model.ContentStatePublished)
	if raw := c.Query("preacher_id"); raw != "" {
		preacherID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "preacher_id tidak valid")
		}
		q = q.Where("sermon_content_preacher_id = ?", preacherID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung konten")
	}

	var contents []model.SermonContentModel
	if err := q.Order("sermon_content_publish_date DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&contents).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil konten")
	}

	resp := make([]dto.SermonContentResponse, 0, len(contents))
	for i := range contents {
		resp = append(resp, dto.FromModelSermonContent(&contents[i]))
	}
	return helper.JsonList(c, "Konten terbit", resp,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
