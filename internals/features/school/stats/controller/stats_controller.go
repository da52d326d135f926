package controller

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userModel "vedaschool_backend/internals/features/users/auth/model"

	activityModel "vedaschool_backend/internals/features/school/activities/model"
	curriculumModel "vedaschool_backend/internals/features/school/academics/curriculum/model"
	examModel "vedaschool_backend/internals/features/school/academics/exams/model"
	reportModel "vedaschool_backend/internals/features/school/academics/reports/model"
	submissionModel "vedaschool_backend/internals/features/school/academics/submissions/model"
	admissionModel "vedaschool_backend/internals/features/school/admissions/model"
	calendarModel "vedaschool_backend/internals/features/school/calendar/model"
	frontofficeModel "vedaschool_backend/internals/features/school/frontoffice/model"
	hrModel "vedaschool_backend/internals/features/school/hr/model"
	transportModel "vedaschool_backend/internals/features/school/transport/model"
	helper "vedaschool_backend/internals/helpers"
)

type StatsController struct {
	DB *gorm.DB
}

type bucketCount struct {
	Key   string `json:"key" gorm:"column:key"`
	Count int64  `json:"count" gorm:"column:count"`
}

func (h *StatsController) countOf(model any) (int64, error) {
	var n int64
	err := h.DB.Model(model).Count(&n).Error
	return n, err
}

// GET /stats/overview
func (h *StatsController) Overview(c *fiber.Ctx) error {
	counts := map[string]int64{}
	for name, model := range map[string]any{
		"users":             &userModel.UserModel{},
		"activities":        &activityModel.ActivityModel{},
		"event_types":       &calendarModel.EventTypeModel{},
		"calendar_events":   &calendarModel.CalendarEventModel{},
		"curricula":         &curriculumModel.CurriculumModel{},
		"exams":             &examModel.ExamModel{},
		"reports":           &reportModel.ReportModel{},
		"submissions":       &submissionModel.SubmissionModel{},
		"visitor_books":     &frontofficeModel.VisitorBookModel{},
		"staff_attendances": &hrModel.StaffAttendanceModel{},
		"staff_payrolls":    &hrModel.StaffPayrollModel{},
		"vehicles":          &transportModel.VehicleModel{},
		"routes":            &transportModel.RouteModel{},
		"applications":      &admissionModel.ApplicationModel{},
	} {
		n, err := h.countOf(model)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to aggregate counts")
		}
		counts[name] = n
	}

	var pendingPayrolls int64
	if err := h.DB.Model(&hrModel.StaffPayrollModel{}).
		Where("staff_payroll_status = ?", hrModel.PayrollStatusPending).
		Count(&pendingPayrolls).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to aggregate counts")
	}
	counts["pending_payrolls"] = pendingPayrolls

	return helper.JsonOK(c, "Overview statistics", counts)
}

// GET /stats/activities
func (h *StatsController) Activities(c *fiber.Ctx) error {
	var byStatus []bucketCount
	if err := h.DB.Model(&activityModel.ActivityModel{}).
		Select("activity_status AS key, COUNT(*) AS count").
		Group("activity_status").
		Scan(&byStatus).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to aggregate activities")
	}

	var byType []bucketCount
	if err := h.DB.Model(&activityModel.ActivityModel{}).
		Select("activity_type AS key, COUNT(*) AS count").
		Group("activity_type").
		Scan(&byType).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to aggregate activities")
	}

	return helper.JsonOK(c, "Activity statistics", fiber.Map{
		"by_status": byStatus,
		"by_type":   byType,
	})
}

// GET /stats/exams
func (h *StatsController) Exams(c *fiber.Ctx) error {
	var byStatus []bucketCount
	if err := h.DB.Model(&examModel.ExamModel{}).
		Select("exam_status AS key, COUNT(*) AS count").
		Group("exam_status").
		Scan(&byStatus).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to aggregate exams")
	}

	var byType []bucketCount
	if err := h.DB.Model(&examModel.ExamModel{}).
		Select("exam_type AS key, COUNT(*) AS count").
		Group("exam_type").
		Scan(&byType).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to aggregate exams")
	}

	return helper.JsonOK(c, "Exam statistics", fiber.Map{
		"by_status": byStatus,
		"by_type":   byType,
	})
}

// GET /stats/attendance?month=&year=
// Buckets staff attendance by status for the given month.
func (h *StatsController) Attendance(c *fiber.Ctx) error {
	month, err := strconv.Atoi(strings.TrimSpace(c.Query("month")))
	if err != nil || month < 1 || month > 12 {
		return fiber.NewError(fiber.StatusBadRequest, "month must be between 1 and 12")
	}
	year, err := strconv.Atoi(strings.TrimSpace(c.Query("year")))
	if err != nil || year < 2000 || year > 2100 {
		return fiber.NewError(fiber.StatusBadRequest, "year must be a four digit year")
	}

	prefix := fmt.Sprintf("%04d-%02d-%%", year, month)
	var byStatus []bucketCount
	if err := h.DB.Model(&hrModel.StaffAttendanceModel{}).
		Select("staff_attendance_status AS key, COUNT(*) AS count").
		Where("staff_attendance_date LIKE ?", prefix).
		Group("staff_attendance_status").
		Scan(&byStatus).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to aggregate attendance")
	}

	var total int64
	for _, b := range byStatus {
		total += b.Count
	}
	return helper.JsonOK(c, "Attendance statistics", fiber.Map{
		"month":     month,
		"year":      year,
		"total":     total,
		"by_status": byStatus,
	})
}
