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

	calendarModel "vedaschool_backend/internals/features/school/calendar/model"
	calendarRoute "vedaschool_backend/internals/features/school/calendar/route"
	helper "vedaschool_backend/internals/helpers"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&calendarModel.EventTypeModel{},
		&calendarModel.CalendarEventModel{},
	))

	app := fiber.New(fiber.Config{ErrorHandler: helper.AppErrorHandler})
	calendarRoute.CalendarUserRoutes(app, db)
	calendarRoute.CalendarAdminRoutes(app, db)
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

func TestEventEndBeforeStartRejected(t *testing.T) {
	app, _ := newTestApp(t)

	resp, env := doJSON(t, app, http.MethodPost, "/calendar-events/", map[string]any{
		"calendar_event_title":    "Inverted",
		"calendar_event_start_at": "2026-09-10T10:00:00Z",
		"calendar_event_end_at":   "2026-09-10T09:00:00Z",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "error", env["status"])
}

func TestEventListRangeFilter(t *testing.T) {
	app, _ := newTestApp(t)

	events := []map[string]any{
		{
			"calendar_event_title":    "Orientation",
			"calendar_event_start_at": "2026-09-01T09:00:00Z",
			"calendar_event_end_at":   "2026-09-01T11:00:00Z",
		},
		{
			"calendar_event_title":    "Winter Concert",
			"calendar_event_start_at": "2026-12-18T17:00:00Z",
			"calendar_event_end_at":   "2026-12-18T19:00:00Z",
		},
	}
	for _, e := range events {
		resp, _ := doJSON(t, app, http.MethodPost, "/calendar-events/", e)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp, env := doJSON(t, app, http.MethodGet,
		"/calendar-events/?start=2026-12-01&end=2026-12-31", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	rows := env["data"].([]any)
	require.Len(t, rows, 1)
	assert.Equal(t, "Winter Concert",
		rows[0].(map[string]any)["calendar_event_title"])
}

func TestEventListTypeFilter(t *testing.T) {
	app, _ := newTestApp(t)

	for title, typ := range map[string]string{
		"Diwali Break": "Holiday",
		"Science Expo": "Exhibition",
		"Summer Break": "Holiday",
	} {
		resp, _ := doJSON(t, app, http.MethodPost, "/calendar-events/", map[string]any{
			"calendar_event_title":    title,
			"calendar_event_type":     typ,
			"calendar_event_start_at": "2026-06-01T00:00:00Z",
			"calendar_event_end_at":   "2026-06-02T00:00:00Z",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp, env := doJSON(t, app, http.MethodGet, "/calendar-events/?type=Holiday", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, env["data"].([]any), 2)
}

func TestEventTypeNameUnique(t *testing.T) {
	app, _ := newTestApp(t)

	payload := map[string]any{"event_type_name": "Holiday"}
	resp, _ := doJSON(t, app, http.MethodPost, "/event-types/", payload)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/event-types/", payload)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
}
