package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	examController "vedaschool_backend/internals/features/school/academics/exams/controller"
)

func ExamUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &examController.ExamController{DB: db}
	g := r.Group("/exams")
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
}

func ExamAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &examController.ExamController{DB: db}
	g := r.Group("/exams")
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
	g.Post("/", ctrl.Create)
	g.Put("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
}
