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

	hrModel "vedaschool_backend/internals/features/school/hr/model"
	hrRoute "vedaschool_backend/internals/features/school/hr/route"
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
		&hrModel.StaffAttendanceModel{},
		&hrModel.StaffPayrollModel{},
	))

	app := fiber.New(fiber.Config{ErrorHandler: helper.AppErrorHandler})
	hrRoute.HRAdminRoutes(app, db)
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

func TestAttendanceDoubleInsertConflicts(t *testing.T) {
	app, db := newTestApp(t)
	staffID := uuid.New()

	payload := map[string]any{
		"staff_attendance_staff_id": staffID.String(),
		"staff_attendance_date":     "2026-04-07",
		"staff_attendance_status":   "Present",
	}

	resp, _ := doJSON(t, app, http.MethodPost, "/hr/attendances/", payload)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	payload["staff_attendance_status"] = "Late"
	resp, env := doJSON(t, app, http.MethodPost, "/hr/attendances/", payload)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "error", env["status"])

	var count int64
	require.NoError(t, db.Model(&hrModel.StaffAttendanceModel{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestAttendanceSameStaffDifferentDateAllowed(t *testing.T) {
	app, _ := newTestApp(t)
	staffID := uuid.New()

	for _, date := range []string{"2026-04-07", "2026-04-08"} {
		resp, _ := doJSON(t, app, http.MethodPost, "/hr/attendances/", map[string]any{
			"staff_attendance_staff_id": staffID.String(),
			"staff_attendance_date":     date,
			"staff_attendance_status":   "Present",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}
}

func TestAttendanceRejectsUnknownStatus(t *testing.T) {
	app, _ := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/hr/attendances/", map[string]any{
		"staff_attendance_staff_id": uuid.New().String(),
		"staff_attendance_date":     "2026-04-07",
		"staff_attendance_status":   "Working",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPayrollNetIsRecomputed(t *testing.T) {
	app, _ := newTestApp(t)
	staffID := uuid.New()

	resp, env := doJSON(t, app, http.MethodPost, "/hr/payrolls/", map[string]any{
		"staff_payroll_staff_id":   staffID.String(),
		"staff_payroll_month":      3,
		"staff_payroll_year":       2026,
		"staff_payroll_basic":      30000.0,
		"staff_payroll_allowances": 5000.0,
		"staff_payroll_deductions": 2000.0,
		// a client-sent net is ignored
		"staff_payroll_net": 99999.0,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	data := env["data"].(map[string]any)
	assert.InDelta(t, 33000.0, data["staff_payroll_net"], 0.001)
	id := data["staff_payroll_id"].(string)

	resp, env = doJSON(t, app, http.MethodPut, "/hr/payrolls/"+id, map[string]any{
		"staff_payroll_deductions": 4000.0,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := env["data"].(map[string]any)
	assert.InDelta(t, 31000.0, updated["staff_payroll_net"], 0.001)
}

func TestPayrollDuplicateMonthConflicts(t *testing.T) {
	app, _ := newTestApp(t)
	staffID := uuid.New()

	payload := map[string]any{
		"staff_payroll_staff_id": staffID.String(),
		"staff_payroll_month":    6,
		"staff_payroll_year":     2026,
		"staff_payroll_basic":    25000.0,
	}

	resp, _ := doJSON(t, app, http.MethodPost, "/hr/payrolls/", payload)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/hr/payrolls/", payload)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestPayrollPaidStatusSetsPaidAt(t *testing.T) {
	app, _ := newTestApp(t)

	resp, env := doJSON(t, app, http.MethodPost, "/hr/payrolls/", map[string]any{
		"staff_payroll_staff_id": uuid.New().String(),
		"staff_payroll_month":    7,
		"staff_payroll_year":     2026,
		"staff_payroll_basic":    25000.0,
		"staff_payroll_status":   "Paid",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	data := env["data"].(map[string]any)
	assert.NotNil(t, data["staff_payroll_paid_at"])
}
