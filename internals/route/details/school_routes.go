package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	CurriculumRoutes "vedaschool_backend/internals/features/school/academics/curriculum/route"
	ExamRoutes "vedaschool_backend/internals/features/school/academics/exams/route"
	ReportRoutes "vedaschool_backend/internals/features/school/academics/reports/route"
	SubmissionRoutes "vedaschool_backend/internals/features/school/academics/submissions/route"
	ActivityRoutes "vedaschool_backend/internals/features/school/activities/route"
	AdmissionsRoutes "vedaschool_backend/internals/features/school/admissions/route"
	CalendarRoutes "vedaschool_backend/internals/features/school/calendar/route"
	FrontOfficeRoutes "vedaschool_backend/internals/features/school/frontoffice/route"
	HRRoutes "vedaschool_backend/internals/features/school/hr/route"
	StatsRoutes "vedaschool_backend/internals/features/school/stats/route"
	TransportRoutes "vedaschool_backend/internals/features/school/transport/route"
)

// SchoolUserRoutes mounts everything an authenticated non-admin user
// may reach.
func SchoolUserRoutes(r fiber.Router, db *gorm.DB) {
	ActivityRoutes.ActivityUserRoutes(r, db)
	CalendarRoutes.CalendarUserRoutes(r, db)
	CurriculumRoutes.CurriculumUserRoutes(r, db)
	ExamRoutes.ExamUserRoutes(r, db)
	ReportRoutes.ReportUserRoutes(r, db)
	SubmissionRoutes.SubmissionUserRoutes(r, db)
	TransportRoutes.TransportUserRoutes(r, db)
	AdmissionsRoutes.AdmissionsUserRoutes(r, db)
	HRRoutes.HRUserRoutes(r, db)
	StatsRoutes.StatsUserRoutes(r, db)
}

// SchoolAdminRoutes mounts the admin-only management surface.
func SchoolAdminRoutes(r fiber.Router, db *gorm.DB) {
	ActivityRoutes.ActivityAdminRoutes(r, db)
	CalendarRoutes.CalendarAdminRoutes(r, db)
	CurriculumRoutes.CurriculumAdminRoutes(r, db)
	ExamRoutes.ExamAdminRoutes(r, db)
	ReportRoutes.ReportAdminRoutes(r, db)
	SubmissionRoutes.SubmissionAdminRoutes(r, db)
	TransportRoutes.TransportAdminRoutes(r, db)
	AdmissionsRoutes.AdmissionsAdminRoutes(r, db)
	StatsRoutes.StatsAdminRoutes(r, db)
}

// FrontOfficeUserRoutes and HRAdminRoutes get their own mounts because
// the receptionist and HR roles are allowed in alongside admins.
func FrontOfficeUserRoutes(r fiber.Router, db *gorm.DB) {
	FrontOfficeRoutes.FrontOfficeUserRoutes(r, db)
}

func FrontOfficeAdminRoutes(r fiber.Router, db *gorm.DB) {
	FrontOfficeRoutes.FrontOfficeAdminRoutes(r, db)
}

func HRAdminRoutes(r fiber.Router, db *gorm.DB) {
	HRRoutes.HRAdminRoutes(r, db)
}
