package database

import (
	"gorm.io/gorm"

	userModel "vedaschool_backend/internals/features/users/auth/model"

	curriculumModel "vedaschool_backend/internals/features/school/academics/curriculum/model"
	examModel "vedaschool_backend/internals/features/school/academics/exams/model"
	reportModel "vedaschool_backend/internals/features/school/academics/reports/model"
	submissionModel "vedaschool_backend/internals/features/school/academics/submissions/model"
	activityModel "vedaschool_backend/internals/features/school/activities/model"
	admissionModel "vedaschool_backend/internals/features/school/admissions/model"
	calendarModel "vedaschool_backend/internals/features/school/calendar/model"
	frontofficeModel "vedaschool_backend/internals/features/school/frontoffice/model"
	hrModel "vedaschool_backend/internals/features/school/hr/model"
	transportModel "vedaschool_backend/internals/features/school/transport/model"
)

// AutoMigrate creates or updates every table the API serves.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel.UserModel{},

		&activityModel.ActivityModel{},
		&calendarModel.EventTypeModel{},
		&calendarModel.CalendarEventModel{},

		&curriculumModel.CurriculumModel{},
		&examModel.ExamModel{},
		&reportModel.ReportModel{},
		&submissionModel.SubmissionModel{},

		&frontofficeModel.FrontOfficeSetupModel{},
		&frontofficeModel.VisitorBookModel{},

		&hrModel.StaffAttendanceModel{},
		&hrModel.StaffPayrollModel{},

		&transportModel.VehicleModel{},
		&transportModel.RouteModel{},
		&transportModel.PickupPointModel{},
		&transportModel.VehicleAssignmentModel{},
		&transportModel.RouteStopModel{},

		&admissionModel.ApplicationModel{},
	)
}
