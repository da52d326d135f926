package controller_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	submissionModel "vedaschool_backend/internals/features/school/academics/submissions/model"
	submissionRoute "vedaschool_backend/internals/features/school/academics/submissions/route"
	helper "vedaschool_backend/internals/helpers"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&submissionModel.SubmissionModel{}))

	app := fiber.New(fiber.Config{ErrorHandler: helper.AppErrorHandler})
	submissionRoute.SubmissionAdminRoutes(app, db)
	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path string, payload any) (*http.Response, map[string]any) {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var envelope map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return resp, envelope
}

func TestSubmissionDefaultsToSubmitted(t *testing.T) {
	app, _ := newTestApp(t)

	resp, env := doJSON(t, app, http.MethodPost, "/submissions/", map[string]any{
		"submission_assignment_title": "Essay on Rivers",
		"submission_student_id":       uuid.New().String(),
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	data := env["data"].(map[string]any)
	assert.Equal(t, "Submitted", data["submission_status"])
}

func TestSubmissionGradingFlow(t *testing.T) {
	app, _ := newTestApp(t)

	_, env := doJSON(t, app, http.MethodPost, "/submissions/", map[string]any{
		"submission_assignment_title": "Algebra Worksheet",
		"submission_student_id":       uuid.New().String(),
	})
	id := env["data"].(map[string]any)["submission_id"].(string)

	resp, env := doJSON(t, app, http.MethodPut, "/submissions/"+id, map[string]any{
		"submission_status": "Graded",
		"submission_marks":  18,
		"submission_grade":  "A",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := env["data"].(map[string]any)
	assert.Equal(t, "Graded", data["submission_status"])
	assert.EqualValues(t, 18, data["submission_marks"])
}

func TestSubmissionRejectsUnknownStatus(t *testing.T) {
	app, _ := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/submissions/", map[string]any{
		"submission_assignment_title": "Essay",
		"submission_student_id":       uuid.New().String(),
		"submission_status":           "Reviewed",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
