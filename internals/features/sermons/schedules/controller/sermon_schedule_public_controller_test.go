// file: internals/features/sermons/schedules/controller/sermon_schedule_public_controller_test.go
package controller

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"masjida_backend/internals/configs"
	"masjida_backend/internals/databases"
	areaModel "masjida_backend/internals/features/areas/model"
	mosqueModel "masjida_backend/internals/features/mosques/mosques/model"
	preacherModel "masjida_backend/internals/features/preachers/preachers/model"
	"masjida_backend/internals/features/sermons/schedules/model"
)

func newPublicTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, databases.AutoMigrate(db))

	app := fiber.New()
	ctl := NewSermonSchedulePublicController(db)
	app.Get("/sermon-schedules", ctl.GetPublicSchedules)
	return app, db
}

// nextLocalWeekday: waktu di masa depan yang jatuh pada hari tertentu
// (0=Senin .. 6=Minggu) menurut timezone aplikasi.
func nextLocalWeekday(day int) time.Time {
	loc := configs.Timezone()
	ts := time.Now().In(loc).Add(24 * time.Hour)
	for (int(ts.Weekday())+6)%7 != day {
		ts = ts.Add(24 * time.Hour)
	}
	return ts
}

func getJSON(t *testing.T, app *fiber.App, path string) (int, []map[string]any) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodGet, path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var envelope struct {
		Status string           `json:"status"`
		Data   []map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(payload, &envelope))
	return resp.StatusCode, envelope.Data
}

func TestGetPublicSchedules(t *testing.T) {
	app, db := newPublicTestApp(t)

	area := areaModel.AreaModel{AreaName: "Tebet"}
	require.NoError(t, db.Create(&area).Error)
	mosque := mosqueModel.MosqueModel{MosqueCode: "MSJ-01", MosqueName: "Al-Falah", MosqueAreaID: area.AreaID}
	require.NoError(t, db.Create(&mosque).Error)
	preacher := preacherModel.PreacherModel{
		PreacherCode:  "PRC-01",
		PreacherName:  "Ust. Ahmad",
		PreacherState: preacherModel.PreacherStateConfirmed,
	}
	require.NoError(t, db.Create(&preacher).Error)

	monday := nextLocalWeekday(0)
	tuesday := nextLocalWeekday(1)
	makeSched := func(topic string, start time.Time, state string) {
		s := model.SermonScheduleModel{
			SermonScheduleMosqueID:   mosque.MosqueID,
			SermonSchedulePreacherID: preacher.PreacherID,
			SermonScheduleTopic:      topic,
			SermonScheduleStartTime:  start,
			SermonScheduleState:      state,
		}
		require.NoError(t, db.Create(&s).Error)
	}
	makeSched("Kajian Senin", monday, model.ScheduleStateConfirmed)
	makeSched("Kajian Selasa", tuesday, model.ScheduleStateConfirmed)
	makeSched("Belum dikirim", monday, model.ScheduleStateDraft)

	t.Run("tanpa filter: hanya confirmed, urut start_time", func(t *testing.T) {
		status, data := getJSON(t, app, "/sermon-schedules")
		require.Equal(t, fiber.StatusOK, status)
		require.Len(t, data, 2)
		topics := []string{data[0]["topic"].(string), data[1]["topic"].(string)}
		assert.NotContains(t, topics, "Belum dikirim")
	})

	t.Run("filter hari Senin", func(t *testing.T) {
		status, data := getJSON(t, app, "/sermon-schedules?day_of_week=0")
		require.Equal(t, fiber.StatusOK, status)
		require.Len(t, data, 1)
		assert.Equal(t, "Kajian Senin", data[0]["topic"])
		assert.Equal(t, "Al-Falah", data[0]["mosque_name"])
		assert.Equal(t, "Tebet", data[0]["area"])
	})

	t.Run("filter hari tanpa jadwal", func(t *testing.T) {
		status, data := getJSON(t, app, "/sermon-schedules?day_of_week=6")
		require.Equal(t, fiber.StatusOK, status)
		assert.Len(t, data, 0)
	})

	t.Run("day_of_week di luar rentang", func(t *testing.T) {
		req := httptest.NewRequest(fiber.MethodGet, "/sermon-schedules?day_of_week=7", nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("search nama pendakwah", func(t *testing.T) {
		status, data := getJSON(t, app, "/sermon-schedules?search=ahmad")
		require.Equal(t, fiber.StatusOK, status)
		assert.Len(t, data, 2)
	})
}
