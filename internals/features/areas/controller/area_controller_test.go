// file: internals/features/areas/controller/area_controller_test.go
package controller

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"masjida_backend/internals/databases"
	"masjida_backend/internals/features/areas/model"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, databases.AutoMigrate(db))

	app := fiber.New()
	ctl := NewAreaController(db)
	app.Get("/areas", ctl.GetAllAreas)
	app.Post("/areas", ctl.CreateArea)
	app.Delete("/areas/:id", ctl.DeleteArea)
	return app, db
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) (int, map[string]any) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(fiber.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(payload, &out))
	return resp.StatusCode, out
}

func TestCreateArea(t *testing.T) {
	app, db := newTestApp(t)

	status, body := postJSON(t, app, "/areas", fiber.Map{"area_name": "Tebet"})
	assert.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, "Area berhasil dibuat", body["message"])

	var count int64
	require.NoError(t, db.Model(&model.AreaModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// Nama duplikat → 409, bukan baris kedua.
	status, body = postJSON(t, app, "/areas", fiber.Map{"area_name": "Tebet"})
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, "Nama area sudah terdaftar", body["message"])
	require.NoError(t, db.Model(&model.AreaModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// Nama kosong ditolak validator.
	status, _ = postJSON(t, app, "/areas", fiber.Map{"area_name": "   "})
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
}

func TestDeleteAreaCascadesSubAreas(t *testing.T) {
	app, db := newTestApp(t)

	parent := model.AreaModel{AreaName: "Jakarta Selatan"}
	require.NoError(t, db.Create(&parent).Error)
	child := model.AreaModel{AreaName: "Tebet", AreaParentID: &parent.AreaID}
	require.NoError(t, db.Create(&child).Error)

	req := httptest.NewRequest(fiber.MethodDelete, "/areas/"+parent.AreaID.String(), nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&model.AreaModel{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}
