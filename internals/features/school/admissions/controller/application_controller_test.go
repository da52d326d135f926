package controller_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	admissionController "vedaschool_backend/internals/features/school/admissions/controller"
	admissionModel "vedaschool_backend/internals/features/school/admissions/model"
	helper "vedaschool_backend/internals/helpers"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&admissionModel.ApplicationModel{}))

	apps := &admissionController.ApplicationController{DB: db, UploadDir: t.TempDir()}
	app := fiber.New(fiber.Config{ErrorHandler: helper.AppErrorHandler})
	g := app.Group("/admissions/applications")
	g.Get("/", apps.List)
	g.Get("/:id", apps.GetByID)
	g.Post("/", apps.Create)
	g.Put("/:id", apps.Update)
	g.Delete("/:id", apps.Delete)
	g.Post("/:id/documents", apps.UploadDocument)
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

func createApplication(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp, env := doJSON(t, app, http.MethodPost, "/admissions/applications/", map[string]any{
		"application_student_name":   "Ananya Rao",
		"application_class_applied":  "VI",
		"application_guardian_name":  "Suresh Rao",
		"application_guardian_phone": "9812345678",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return env["data"].(map[string]any)["application_id"].(string)
}

func TestApplicationStartsPending(t *testing.T) {
	app, _ := newTestApp(t)

	resp, env := doJSON(t, app, http.MethodPost, "/admissions/applications/", map[string]any{
		"application_student_name":   "Vikram Nair",
		"application_class_applied":  "IX",
		"application_guardian_name":  "Latha Nair",
		"application_guardian_phone": "9876501234",
		// client cannot pre-approve itself
		"application_status": "Approved",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	data := env["data"].(map[string]any)
	assert.Equal(t, "Pending", data["application_status"])
}

func TestApplicationStatusTransition(t *testing.T) {
	app, _ := newTestApp(t)
	id := createApplication(t, app)

	resp, env := doJSON(t, app, http.MethodPut, "/admissions/applications/"+id, map[string]any{
		"application_status": "Approved",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Approved", env["data"].(map[string]any)["application_status"])
}

func TestUploadDocumentAppendsToList(t *testing.T) {
	app, db := newTestApp(t)
	id := createApplication(t, app)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("type", "Birth Certificate"))
	fw, err := w.CreateFormFile("file", "birth cert.pdf")
	require.NoError(t, err)
	_, err = fw.Write([]byte("%PDF-1.4 fake"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost,
		"/admissions/applications/"+id+"/documents", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var row admissionModel.ApplicationModel
	require.NoError(t, db.First(&row, "application_id = ?", id).Error)

	var docs []admissionModel.ApplicationDocument
	require.NoError(t, json.Unmarshal(row.ApplicationDocuments, &docs))
	require.Len(t, docs, 1)
	assert.Equal(t, "Birth Certificate", docs[0].Type)
	assert.Equal(t, "birth_cert.pdf", docs[0].Name)

	// the file actually landed on disk under the application's folder
	_, err = os.Stat(docs[0].Path)
	require.NoError(t, err)
	assert.Equal(t, id, filepath.Base(filepath.Dir(docs[0].Path)))
}

func TestUploadDocumentUnknownApplication(t *testing.T) {
	app, _ := newTestApp(t)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("type", "Photo"))
	fw, err := w.CreateFormFile("file", "photo.jpg")
	require.NoError(t, err)
	_, err = fw.Write([]byte("jpeg"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost,
		"/admissions/applications/"+uuid.New().String()+"/documents", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
