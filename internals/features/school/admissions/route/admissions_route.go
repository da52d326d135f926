package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"vedaschool_backend/internals/configs"
	admissionController "vedaschool_backend/internals/features/school/admissions/controller"
)

func AdmissionsUserRoutes(r fiber.Router, db *gorm.DB) {
	apps := &admissionController.ApplicationController{DB: db, UploadDir: configs.UploadDir}

	ad := r.Group("/admissions")
	ga := ad.Group("/applications")
	ga.Get("/", apps.List)
	ga.Get("/:id", apps.GetByID)
	ga.Post("/", apps.Create)
	ga.Post("/:id/documents", apps.UploadDocument)
}

func AdmissionsAdminRoutes(r fiber.Router, db *gorm.DB) {
	apps := &admissionController.ApplicationController{DB: db, UploadDir: configs.UploadDir}

	ad := r.Group("/admissions")
	ga := ad.Group("/applications")
	ga.Get("/", apps.List)
	ga.Get("/:id", apps.GetByID)
	ga.Post("/", apps.Create)
	ga.Put("/:id", apps.Update)
	ga.Delete("/:id", apps.Delete)
	ga.Post("/:id/documents", apps.UploadDocument)
}
