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

	frontofficeModel "vedaschool_backend/internals/features/school/frontoffice/model"
	frontofficeRoute "vedaschool_backend/internals/features/school/frontoffice/route"
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
		&frontofficeModel.FrontOfficeSetupModel{},
		&frontofficeModel.VisitorBookModel{},
	))

	app := fiber.New(fiber.Config{ErrorHandler: helper.AppErrorHandler})
	frontofficeRoute.FrontOfficeAdminRoutes(app, db)
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

func TestSetupDuplicateTypeNameConflicts(t *testing.T) {
	app, _ := newTestApp(t)

	payload := map[string]any{
		"setup_type": "Purpose",
		"setup_name": "Admission Enquiry",
	}
	resp, _ := doJSON(t, app, http.MethodPost, "/front-office/setups/", payload)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/front-office/setups/", payload)
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	// same name under a different type is a distinct entry
	resp, _ = doJSON(t, app, http.MethodPost, "/front-office/setups/", map[string]any{
		"setup_type": "Source",
		"setup_name": "Admission Enquiry",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestSetupRejectsUnknownType(t *testing.T) {
	app, _ := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/front-office/setups/", map[string]any{
		"setup_type": "Category",
		"setup_name": "Misc",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestVisitorEntryLifecycle(t *testing.T) {
	app, _ := newTestApp(t)

	resp, env := doJSON(t, app, http.MethodPost, "/front-office/visitors/", map[string]any{
		"visitor_purpose":      "Admission Enquiry",
		"visitor_name":         "Rohit Sharma",
		"visitor_phone":        "9876543210",
		"visitor_persons":      2,
		"visitor_date":         "2026-09-01",
		"visitor_time_in":      "10:15",
		"visitor_meeting_with": "Front Desk",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := env["data"].(map[string]any)["visitor_id"].(string)

	resp, env = doJSON(t, app, http.MethodPut, "/front-office/visitors/"+id, map[string]any{
		"visitor_time_out": "11:05",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := env["data"].(map[string]any)
	assert.Equal(t, "11:05", data["visitor_time_out"])
	assert.Equal(t, "10:15", data["visitor_time_in"])
}

func TestVisitorMissingPurposeRejected(t *testing.T) {
	app, db := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/front-office/visitors/", map[string]any{
		"visitor_name": "No Purpose",
		"visitor_date": "2026-09-01",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&frontofficeModel.VisitorBookModel{}).Count(&count).Error)
	assert.Zero(t, count)
}
