package controller_test

import (
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

	database "vedaschool_backend/internals/databases"
	activityModel "vedaschool_backend/internals/features/school/activities/model"
	hrModel "vedaschool_backend/internals/features/school/hr/model"
	statsRoute "vedaschool_backend/internals/features/school/stats/route"
	helper "vedaschool_backend/internals/helpers"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	app := fiber.New(fiber.Config{ErrorHandler: helper.AppErrorHandler})
	statsRoute.StatsAdminRoutes(app, db)
	return app, db
}

func get(t *testing.T, app *fiber.App, path string) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
	require.NoError(t, err)
	var envelope map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return resp, envelope
}

func TestOverviewCounts(t *testing.T) {
	app, db := newTestApp(t)

	for i := 0; i < 3; i++ {
		require.NoError(t, db.Create(&activityModel.ActivityModel{
			ActivityTitle:  fmt.Sprintf("Activity %d", i),
			ActivityType:   "Sports",
			ActivityDate:   "2026-05-01",
			ActivityStatus: "Upcoming",
		}).Error)
	}

	require.NoError(t, db.Create(&hrModel.StaffPayrollModel{
		StaffPayrollStaffID: uuid.New(),
		StaffPayrollMonth:   5,
		StaffPayrollYear:    2026,
		StaffPayrollBasic:   30000,
		StaffPayrollNet:     30000,
		StaffPayrollStatus:  hrModel.PayrollStatusPending,
	}).Error)

	resp, env := get(t, app, "/stats/overview")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := env["data"].(map[string]any)
	assert.EqualValues(t, 3, data["activities"])
	assert.EqualValues(t, 0, data["vehicles"])
	assert.EqualValues(t, 1, data["pending_payrolls"])
}

func TestActivityStatsBuckets(t *testing.T) {
	app, db := newTestApp(t)

	rows := []activityModel.ActivityModel{
		{ActivityTitle: "A", ActivityType: "Sports", ActivityDate: "2026-05-01", ActivityStatus: "Upcoming"},
		{ActivityTitle: "B", ActivityType: "Sports", ActivityDate: "2026-05-02", ActivityStatus: "Completed"},
		{ActivityTitle: "C", ActivityType: "Cultural", ActivityDate: "2026-05-03", ActivityStatus: "Completed"},
	}
	for i := range rows {
		require.NoError(t, db.Create(&rows[i]).Error)
	}

	resp, env := get(t, app, "/stats/activities")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := env["data"].(map[string]any)

	byStatus := map[string]float64{}
	for _, b := range data["by_status"].([]any) {
		bucket := b.(map[string]any)
		byStatus[bucket["key"].(string)] = bucket["count"].(float64)
	}
	assert.EqualValues(t, 1, byStatus["Upcoming"])
	assert.EqualValues(t, 2, byStatus["Completed"])
}

func TestAttendanceStatsFiltersByMonth(t *testing.T) {
	app, db := newTestApp(t)
	staff := uuid.New()

	seed := []hrModel.StaffAttendanceModel{
		{StaffAttendanceStaffID: staff, StaffAttendanceDate: "2026-03-02", StaffAttendanceStatus: "Present"},
		{StaffAttendanceStaffID: staff, StaffAttendanceDate: "2026-03-03", StaffAttendanceStatus: "Absent"},
		{StaffAttendanceStaffID: staff, StaffAttendanceDate: "2026-04-01", StaffAttendanceStatus: "Present"},
	}
	for i := range seed {
		require.NoError(t, db.Create(&seed[i]).Error)
	}

	resp, env := get(t, app, "/stats/attendance?month=3&year=2026")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := env["data"].(map[string]any)
	assert.EqualValues(t, 2, data["total"])
}

func TestAttendanceStatsRejectsBadMonth(t *testing.T) {
	app, _ := newTestApp(t)

	resp, env := get(t, app, "/stats/attendance?month=13&year=2026")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "error", env["status"])
}
