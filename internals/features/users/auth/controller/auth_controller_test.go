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

	"vedaschool_backend/internals/configs"
	authModel "vedaschool_backend/internals/features/users/auth/model"
	authRoute "vedaschool_backend/internals/features/users/auth/route"
	helper "vedaschool_backend/internals/helpers"
	authMW "vedaschool_backend/internals/middlewares/auth"
)

const testSecret = "test-secret-not-for-production"

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	configs.JWTSecret = testSecret

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&authModel.UserModel{}))

	app := fiber.New(fiber.Config{ErrorHandler: helper.AppErrorHandler})
	authRoute.AuthPublicRoutes(app, db)
	authRoute.AuthAdminRoutes(app, db)

	private := app.Group("/",
		authMW.AuthJWT(authMW.AuthJWTOpts{Secret: testSecret}))
	authRoute.AuthUserRoutes(private, db)
	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, payload any) (*http.Response, map[string]any) {
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
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var envelope map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return resp, envelope
}

func register(t *testing.T, app *fiber.App, email, password, role string) {
	t.Helper()
	resp, _ := doJSON(t, app, http.MethodPost, "/auth/register", "", map[string]any{
		"user_name":     "Test User",
		"user_email":    email,
		"user_password": password,
		"user_role":     role,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestLoginAndMe(t *testing.T) {
	app, _ := newTestApp(t)
	register(t, app, "admin@vedaschool.test", "s3cret-pass", "admin")

	resp, env := doJSON(t, app, http.MethodPost, "/auth/login", "", map[string]any{
		"user_email":    "admin@vedaschool.test",
		"user_password": "s3cret-pass",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := env["data"].(map[string]any)
	token := data["access_token"].(string)
	require.NotEmpty(t, token)

	resp, env = doJSON(t, app, http.MethodGet, "/auth/me", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	me := env["data"].(map[string]any)
	assert.Equal(t, "admin@vedaschool.test", me["user_email"])
	assert.Equal(t, "admin", me["user_role"])
}

func TestLoginWrongPasswordUnauthorized(t *testing.T) {
	app, _ := newTestApp(t)
	register(t, app, "staff@vedaschool.test", "correct-pass", "staff")

	resp, env := doJSON(t, app, http.MethodPost, "/auth/login", "", map[string]any{
		"user_email":    "staff@vedaschool.test",
		"user_password": "wrong-pass",
	})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid credentials", env["message"])
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	app, db := newTestApp(t)
	register(t, app, "dup@vedaschool.test", "password123", "student")

	resp, _ := doJSON(t, app, http.MethodPost, "/auth/register", "", map[string]any{
		"user_name":     "Second",
		"user_email":    "DUP@vedaschool.test",
		"user_password": "password123",
		"user_role":     "student",
	})
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&authModel.UserModel{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestMeWithoutTokenUnauthorized(t *testing.T) {
	app, _ := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodGet, "/auth/me", "", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	app, _ := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/auth/register", "", map[string]any{
		"user_name":     "Bad Role",
		"user_email":    "badrole@vedaschool.test",
		"user_password": "password123",
		"user_role":     "principal",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
