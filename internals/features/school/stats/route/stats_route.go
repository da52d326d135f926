package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	statsController "vedaschool_backend/internals/features/school/stats/controller"
)

func StatsUserRoutes(r fiber.Router, db *gorm.DB) {
	stats := &statsController.StatsController{DB: db}

	g := r.Group("/stats")
	g.Get("/overview", stats.Overview)
	g.Get("/activities", stats.Activities)
	g.Get("/exams", stats.Exams)
	g.Get("/attendance", stats.Attendance)
}

func StatsAdminRoutes(r fiber.Router, db *gorm.DB) {
	StatsUserRoutes(r, db)
}
