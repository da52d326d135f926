package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	submissionController "vedaschool_backend/internals/features/school/academics/submissions/controller"
)

func SubmissionUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &submissionController.SubmissionController{DB: db}
	g := r.Group("/submissions")
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
	g.Post("/", ctrl.Create)
}

func SubmissionAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &submissionController.SubmissionController{DB: db}
	g := r.Group("/submissions")
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
	g.Post("/", ctrl.Create)
	g.Put("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
}
