package controller_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	activityModel "vedaschool_backend/internals/features/school/activities/model"
	activityRoute "vedaschool_backend/internals/features/school/activities/route"
	helper "vedaschool_backend/internals/helpers"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&activityModel.ActivityModel{}))

	app := fiber.New(fiber.Config{ErrorHandler: helper.AppErrorHandler})
	activityRoute.ActivityAdminRoutes(app, db)
	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path string, payload any) (*http.Response, map[string]any) {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var envelope map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return resp, envelope
}

func TestCreateActivityDefaultsToUpcoming(t *testing.T) {
	app, _ := newTestApp(t)

	resp, env := doJSON(t, app, http.MethodPost, "/activities/", map[string]any{
		"activity_title": "Annual Sports Day",
		"activity_type":  "Sports",
		"activity_date":  "2026-11-20",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "success", env["status"])

	data := env["data"].(map[string]any)
	assert.Equal(t, "Upcoming", data["activity_status"])
}

func TestCreateActivityWithWinnersIsCompleted(t *testing.T) {
	app, _ := newTestApp(t)

	resp, env := doJSON(t, app, http.MethodPost, "/activities/", map[string]any{
		"activity_title": "Chess Tournament",
		"activity_type":  "Academic",
		"activity_date":  "2026-03-10",
		"activity_winners": map[string]any{
			"First": map[string]any{"name": "Ishaan", "class": "VII", "section": "A"},
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	data := env["data"].(map[string]any)
	assert.Equal(t, "Completed", data["activity_status"])
}

func TestRecordingWinnersCompletesActivity(t *testing.T) {
	app, _ := newTestApp(t)

	_, env := doJSON(t, app, http.MethodPost, "/activities/", map[string]any{
		"activity_title":   "Football Finals",
		"activity_type":    "Sports",
		"activity_classes": []string{"IX", "X"},
		"activity_date":    "2026-12-01",
		"activity_time":    "15:30",
		"activity_venue":   "Main Ground",
	})
	created := env["data"].(map[string]any)
	require.Equal(t, "Upcoming", created["activity_status"])
	id := created["activity_id"].(string)

	resp, env := doJSON(t, app, http.MethodPut, "/activities/"+id, map[string]any{
		"activity_outcome": "Team X won 3-1",
		"activity_winners": map[string]any{
			"First":  map[string]any{"name": "Aryan", "class": "X", "section": "B"},
			"Second": map[string]any{"name": "Kabir", "class": "IX", "section": "A"},
		},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := env["data"].(map[string]any)
	assert.Equal(t, "Completed", updated["activity_status"])
	assert.Equal(t, "Team X won 3-1", updated["activity_outcome"])

	// shows up under the Completed filter
	resp, env = doJSON(t, app, http.MethodGet, "/activities/?status=Completed", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	rows := env["data"].([]any)
	require.Len(t, rows, 1)
	assert.Equal(t, "Football Finals", rows[0].(map[string]any)["activity_title"])
}

func TestCreateActivityMissingTitleRejected(t *testing.T) {
	app, db := newTestApp(t)

	resp, env := doJSON(t, app, http.MethodPost, "/activities/", map[string]any{
		"activity_type": "Cultural",
		"activity_date": "2026-05-05",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "error", env["status"])

	var count int64
	require.NoError(t, db.Model(&activityModel.ActivityModel{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateActivityRejectsUnknownType(t *testing.T) {
	app, _ := newTestApp(t)

	resp, env := doJSON(t, app, http.MethodPost, "/activities/", map[string]any{
		"activity_title": "Mystery Event",
		"activity_type":  "Recreational",
		"activity_date":  "2026-05-05",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Validation failed", env["message"])
}

func TestGetActivityUnknownIDReturns404(t *testing.T) {
	app, _ := newTestApp(t)

	resp, env := doJSON(t, app, http.MethodGet, "/activities/7e2f4b9a-8a4e-4a0f-9ce4-1b2d3c4e5f60", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "error", env["status"])
}
