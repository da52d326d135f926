package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vedaschool_backend/internals/constants"
	authMW "vedaschool_backend/internals/middlewares/auth"
)

const testSecret = "jwt-auth-test-secret"

func signToken(t *testing.T, role string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":  uuid.New().String(),
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return raw
}

func newRoleApp() *fiber.App {
	app := fiber.New()
	api := app.Group("/api/a", authMW.AuthJWT(authMW.AuthJWTOpts{Secret: testSecret}))
	api.Use("/hr", authMW.RequireRoles(constants.RoleAdmin, constants.RoleHR))
	api.Use("/front-office", authMW.RequireRoles(constants.RoleAdmin, constants.RoleReceptionist))
	api.Use(authMW.RequireRoles(constants.RoleAdmin))

	ok := func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) }
	api.Get("/hr/attendances", ok)
	api.Get("/front-office/visitors", ok)
	api.Get("/activities", ok)
	return app
}

func getAs(t *testing.T, app *fiber.App, path, token string) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestAdminReachesEverything(t *testing.T) {
	app := newRoleApp()
	token := signToken(t, constants.RoleAdmin)

	assert.Equal(t, http.StatusOK, getAs(t, app, "/api/a/activities", token))
	assert.Equal(t, http.StatusOK, getAs(t, app, "/api/a/hr/attendances", token))
	assert.Equal(t, http.StatusOK, getAs(t, app, "/api/a/front-office/visitors", token))
}

func TestHRRoleScopedToHRPaths(t *testing.T) {
	app := newRoleApp()
	token := signToken(t, constants.RoleHR)

	assert.Equal(t, http.StatusOK, getAs(t, app, "/api/a/hr/attendances", token))
	assert.Equal(t, http.StatusForbidden, getAs(t, app, "/api/a/activities", token))
	assert.Equal(t, http.StatusForbidden, getAs(t, app, "/api/a/front-office/visitors", token))
}

func TestReceptionistScopedToFrontOffice(t *testing.T) {
	app := newRoleApp()
	token := signToken(t, constants.RoleReceptionist)

	assert.Equal(t, http.StatusOK, getAs(t, app, "/api/a/front-office/visitors", token))
	assert.Equal(t, http.StatusForbidden, getAs(t, app, "/api/a/hr/attendances", token))
}

func TestMissingOrBadToken(t *testing.T) {
	app := newRoleApp()

	assert.Equal(t, http.StatusUnauthorized, getAs(t, app, "/api/a/activities", ""))
	assert.Equal(t, http.StatusUnauthorized, getAs(t, app, "/api/a/activities", "not-a-jwt"))
}
