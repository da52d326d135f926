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

	curriculumModel "vedaschool_backend/internals/features/school/academics/curriculum/model"
	curriculumRoute "vedaschool_backend/internals/features/school/academics/curriculum/route"
	helper "vedaschool_backend/internals/helpers"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&curriculumModel.CurriculumModel{}))

	app := fiber.New(fiber.Config{ErrorHandler: helper.AppErrorHandler})
	curriculumRoute.CurriculumAdminRoutes(app, db)
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

func TestCurriculumUniquePerYearClassSection(t *testing.T) {
	app, _ := newTestApp(t)

	payload := map[string]any{
		"curriculum_academic_year": "2026-27",
		"curriculum_class_name":    "VI",
		"curriculum_section":       "A",
		"curriculum_subjects":      []string{"Mathematics", "Science", "English"},
	}
	resp, _ := doJSON(t, app, http.MethodPost, "/curricula/", payload)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/curricula/", payload)
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	// a different section is fine
	payload["curriculum_section"] = "B"
	resp, _ = doJSON(t, app, http.MethodPost, "/curricula/", payload)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestCurriculumSubjectsRoundTrip(t *testing.T) {
	app, _ := newTestApp(t)

	resp, env := doJSON(t, app, http.MethodPost, "/curricula/", map[string]any{
		"curriculum_academic_year": "2026-27",
		"curriculum_class_name":    "VII",
		"curriculum_section":       "C",
		"curriculum_subjects":      []string{"History", "Geography"},
		"curriculum_electives":     []string{"French"},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := env["data"].(map[string]any)["curriculum_id"].(string)

	resp, env = doJSON(t, app, http.MethodGet, "/curricula/"+id, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := env["data"].(map[string]any)

	var subjects []string
	raw, err := json.Marshal(data["curriculum_subjects"])
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &subjects))
	assert.Equal(t, []string{"History", "Geography"}, subjects)
}
