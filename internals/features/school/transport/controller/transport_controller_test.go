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

	transportModel "vedaschool_backend/internals/features/school/transport/model"
	transportRoute "vedaschool_backend/internals/features/school/transport/route"
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
		&transportModel.VehicleModel{},
		&transportModel.RouteModel{},
		&transportModel.PickupPointModel{},
		&transportModel.VehicleAssignmentModel{},
		&transportModel.RouteStopModel{},
	))

	app := fiber.New(fiber.Config{ErrorHandler: helper.AppErrorHandler})
	transportRoute.TransportAdminRoutes(app, db)
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

func createRoute(t *testing.T, app *fiber.App, name string) string {
	t.Helper()
	resp, env := doJSON(t, app, http.MethodPost, "/transport/routes/", map[string]any{
		"route_name":        name,
		"route_start_point": "School Gate",
		"route_end_point":   "City Center",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return env["data"].(map[string]any)["route_id"].(string)
}

func createPickupPoint(t *testing.T, app *fiber.App, name string) string {
	t.Helper()
	resp, env := doJSON(t, app, http.MethodPost, "/transport/pickup-points/", map[string]any{
		"pickup_point_name": name,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return env["data"].(map[string]any)["pickup_point_id"].(string)
}

func TestDeleteVehicleUnknownIDLeavesStoreUnchanged(t *testing.T) {
	app, db := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/transport/vehicles/", map[string]any{
		"vehicle_registration_no": "ka-01-ab-1234",
		"vehicle_model_name":      "Tata Starbus",
		"vehicle_capacity":        40,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, env := doJSON(t, app, http.MethodDelete,
		"/transport/vehicles/"+uuid.New().String(), nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "error", env["status"])

	var count int64
	require.NoError(t, db.Model(&transportModel.VehicleModel{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestVehicleRegistrationIsUppercasedAndUnique(t *testing.T) {
	app, _ := newTestApp(t)

	resp, env := doJSON(t, app, http.MethodPost, "/transport/vehicles/", map[string]any{
		"vehicle_registration_no": "mh-12-cd-5678",
		"vehicle_capacity":        32,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	data := env["data"].(map[string]any)
	assert.Equal(t, "MH-12-CD-5678", data["vehicle_registration_no"])

	resp, _ = doJSON(t, app, http.MethodPost, "/transport/vehicles/", map[string]any{
		"vehicle_registration_no": "MH-12-CD-5678",
		"vehicle_capacity":        32,
	})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestRouteStopRejectsDanglingRoute(t *testing.T) {
	app, db := newTestApp(t)
	pointID := createPickupPoint(t, app, "Lake View")

	resp, env := doJSON(t, app, http.MethodPost, "/transport/route-stops/", map[string]any{
		"route_stop_route_id":        uuid.New().String(),
		"route_stop_pickup_point_id": pointID,
		"route_stop_order":           1,
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Referenced route does not exist", env["message"])

	var count int64
	require.NoError(t, db.Model(&transportModel.RouteStopModel{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRouteStopRejectsDanglingPickupPoint(t *testing.T) {
	app, _ := newTestApp(t)
	routeID := createRoute(t, app, "North Loop")

	resp, env := doJSON(t, app, http.MethodPost, "/transport/route-stops/", map[string]any{
		"route_stop_route_id":        routeID,
		"route_stop_pickup_point_id": uuid.New().String(),
		"route_stop_order":           1,
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Referenced pickup point does not exist", env["message"])
}

func TestRouteStopDuplicatePairConflicts(t *testing.T) {
	app, _ := newTestApp(t)
	routeID := createRoute(t, app, "South Loop")
	pointID := createPickupPoint(t, app, "Market Square")

	payload := map[string]any{
		"route_stop_route_id":        routeID,
		"route_stop_pickup_point_id": pointID,
		"route_stop_order":           2,
	}
	resp, _ := doJSON(t, app, http.MethodPost, "/transport/route-stops/", payload)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/transport/route-stops/", payload)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestAssignmentRequiresExistingVehicles(t *testing.T) {
	app, _ := newTestApp(t)
	routeID := createRoute(t, app, "East Loop")

	resp, env := doJSON(t, app, http.MethodPost, "/transport/assignments/", map[string]any{
		"vehicle_assignment_route_id":    routeID,
		"vehicle_assignment_vehicle_ids": []string{uuid.New().String()},
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "One or more referenced vehicles do not exist", env["message"])
}

func TestAssignmentCreateAndDuplicateRoute(t *testing.T) {
	app, _ := newTestApp(t)
	routeID := createRoute(t, app, "West Loop")

	resp, env := doJSON(t, app, http.MethodPost, "/transport/vehicles/", map[string]any{
		"vehicle_registration_no": "KA-05-EF-9012",
		"vehicle_capacity":        28,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	vehicleID := env["data"].(map[string]any)["vehicle_id"].(string)

	payload := map[string]any{
		"vehicle_assignment_route_id":    routeID,
		"vehicle_assignment_vehicle_ids": []string{vehicleID},
	}
	resp, _ = doJSON(t, app, http.MethodPost, "/transport/assignments/", payload)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/transport/assignments/", payload)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
}
