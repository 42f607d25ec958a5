// file: internals/features/preachers/preachers/controller/preacher_public_controller_test.go
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

	"masjida_backend/internals/databases"
	areaModel "masjida_backend/internals/features/areas/model"
	mosqueModel "masjida_backend/internals/features/mosques/mosques/model"
	"masjida_backend/internals/features/preachers/preachers/model"
	scheduleModel "masjida_backend/internals/features/sermons/schedules/model"
	specializationModel "masjida_backend/internals/features/specializations/model"
)

type publicPreacherFixture struct {
	area     areaModel.AreaModel
	spec     specializationModel.SpecializationModel
	mosque   mosqueModel.MosqueModel
	preacher model.PreacherModel
}

func newPreacherPublicTestApp(t *testing.T) (*fiber.App, *gorm.DB, publicPreacherFixture) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, databases.AutoMigrate(db))

	fx := publicPreacherFixture{
		area: areaModel.AreaModel{AreaName: "Tebet"},
		spec: specializationModel.SpecializationModel{SpecializationName: "Fiqih"},
	}
	require.NoError(t, db.Create(&fx.area).Error)
	require.NoError(t, db.Create(&fx.spec).Error)

	fx.mosque = mosqueModel.MosqueModel{MosqueCode: "MSJ-01", MosqueName: "Al-Falah", MosqueAreaID: fx.area.AreaID}
	require.NoError(t, db.Create(&fx.mosque).Error)

	fx.preacher = model.PreacherModel{
		PreacherCode:             "PRC-01",
		PreacherName:             "Ust. Ahmad",
		PreacherAreaID:           &fx.area.AreaID,
		PreacherSpecializationID: &fx.spec.SpecializationID,
		PreacherState:            model.PreacherStateConfirmed,
	}
	require.NoError(t, db.Create(&fx.preacher).Error)

	app := fiber.New()
	ctl := NewPreacherPublicController(db)
	app.Get("/preachers", ctl.GetPublicPreachers)
	app.Get("/preachers/:id", ctl.GetPublicPreacherDetail)
	return app, db, fx
}

func getBody(t *testing.T, app *fiber.App, path string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodGet, path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(payload, &out))
	return resp.StatusCode, out
}

// Baris daftar harus membawa nama flatten DAN id mentah area/spesialisasi.
func TestGetPublicPreachersRowShape(t *testing.T) {
	app, _, fx := newPreacherPublicTestApp(t)

	status, body := getBody(t, app, "/preachers")
	require.Equal(t, fiber.StatusOK, status)

	data, ok := body["data"].([]any)
	require.True(t, ok)
	require.Len(t, data, 1)

	row := data[0].(map[string]any)
	assert.Equal(t, fx.preacher.PreacherID.String(), row["id"])
	assert.Equal(t, "Ust. Ahmad", row["name"])
	assert.Equal(t, "PRC-01", row["code"])
	assert.Equal(t, "Tebet", row["area"])
	assert.Equal(t, fx.area.AreaID.String(), row["area_id"])
	assert.Equal(t, "Fiqih", row["specialization"])
	assert.Equal(t, fx.spec.SpecializationID.String(), row["specialization_id"])
}

func TestGetPublicPreachersHidesUnconfirmed(t *testing.T) {
	app, db, _ := newPreacherPublicTestApp(t)

	draft := model.PreacherModel{PreacherCode: "PRC-02", PreacherName: "Ust. Draft", PreacherState: model.PreacherStateDraft}
	require.NoError(t, db.Create(&draft).Error)

	status, body := getBody(t, app, "/preachers")
	require.Equal(t, fiber.StatusOK, status)
	data := body["data"].([]any)
	require.Len(t, data, 1)

	status, _ = getBody(t, app, "/preachers/"+draft.PreacherID.String())
	assert.Equal(t, fiber.StatusNotFound, status)
}

// Detail memuat SEMUA jadwal confirmed, termasuk yang sudah lewat; state lain
// tidak ikut.
func TestGetPublicPreacherDetailSchedules(t *testing.T) {
	app, db, fx := newPreacherPublicTestApp(t)

	makeSched := func(topic string, start time.Time, state string) {
		s := scheduleModel.SermonScheduleModel{
			SermonScheduleMosqueID:   fx.mosque.MosqueID,
			SermonSchedulePreacherID: fx.preacher.PreacherID,
			SermonScheduleTopic:      topic,
			SermonScheduleStartTime:  start,
			SermonScheduleState:      state,
		}
		require.NoError(t, db.Create(&s).Error)
	}
	makeSched("Kajian lampau", time.Now().Add(-48*time.Hour), scheduleModel.ScheduleStateConfirmed)
	makeSched("Kajian mendatang", time.Now().Add(48*time.Hour), scheduleModel.ScheduleStateConfirmed)
	makeSched("Masih undangan", time.Now().Add(72*time.Hour), scheduleModel.ScheduleStateSent)

	status, body := getBody(t, app, "/preachers/"+fx.preacher.PreacherID.String())
	require.Equal(t, fiber.StatusOK, status)

	detail := body["data"].(map[string]any)
	scheds := detail["schedules"].([]any)
	require.Len(t, scheds, 2)

	first := scheds[0].(map[string]any)
	second := scheds[1].(map[string]any)
	assert.Equal(t, "Kajian lampau", first["topic"])
	assert.Equal(t, "Kajian mendatang", second["topic"])
	assert.Equal(t, "Al-Falah", first["mosque_name"])
}
