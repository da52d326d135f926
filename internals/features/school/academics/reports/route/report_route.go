package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	reportController "vedaschool_backend/internals/features/school/academics/reports/controller"
)

func ReportUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &reportController.ReportController{DB: db}
	g := r.Group("/reports")
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
}

func ReportAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &reportController.ReportController{DB: db}
	g := r.Group("/reports")
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
	g.Post("/", ctrl.Create)
	g.Put("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
}
