package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	hrController "vedaschool_backend/internals/features/school/hr/controller"
)

func HRUserRoutes(r fiber.Router, db *gorm.DB) {
	attendances := &hrController.StaffAttendanceController{DB: db}

	hr := r.Group("/hr")
	ga := hr.Group("/attendances")
	ga.Get("/", attendances.List)
	ga.Get("/:id", attendances.GetByID)
}

func HRAdminRoutes(r fiber.Router, db *gorm.DB) {
	attendances := &hrController.StaffAttendanceController{DB: db}
	payrolls := &hrController.StaffPayrollController{DB: db}

	hr := r.Group("/hr")

	ga := hr.Group("/attendances")
	ga.Get("/", attendances.List)
	ga.Get("/:id", attendances.GetByID)
	ga.Post("/", attendances.Create)
	ga.Put("/:id", attendances.Update)
	ga.Delete("/:id", attendances.Delete)

	gp := hr.Group("/payrolls")
	gp.Get("/", payrolls.List)
	gp.Get("/:id", payrolls.GetByID)
	gp.Post("/", payrolls.Create)
	gp.Put("/:id", payrolls.Update)
	gp.Delete("/:id", payrolls.Delete)
}
