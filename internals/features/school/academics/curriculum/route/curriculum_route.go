package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	curriculumController "vedaschool_backend/internals/features/school/academics/curriculum/controller"
)

func CurriculumUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &curriculumController.CurriculumController{DB: db}
	g := r.Group("/curricula")
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
}

func CurriculumAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &curriculumController.CurriculumController{DB: db}
	g := r.Group("/curricula")
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
	g.Post("/", ctrl.Create)
	g.Put("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
}
