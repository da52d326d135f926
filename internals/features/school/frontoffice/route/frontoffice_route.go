package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	frontofficeController "vedaschool_backend/internals/features/school/frontoffice/controller"
)

// FrontOfficeUserRoutes: visitor logging is the receptionist's daily
// surface, mounted for authenticated users.
func FrontOfficeUserRoutes(r fiber.Router, db *gorm.DB) {
	setups := &frontofficeController.FrontOfficeSetupController{DB: db}
	visitors := &frontofficeController.VisitorBookController{DB: db}

	fo := r.Group("/front-office")

	gs := fo.Group("/setups")
	gs.Get("/", setups.List)
	gs.Get("/:id", setups.GetByID)

	gv := fo.Group("/visitors")
	gv.Get("/", visitors.List)
	gv.Get("/:id", visitors.GetByID)
	gv.Post("/", visitors.Create)
	gv.Put("/:id", visitors.Update)
}

func FrontOfficeAdminRoutes(r fiber.Router, db *gorm.DB) {
	setups := &frontofficeController.FrontOfficeSetupController{DB: db}
	visitors := &frontofficeController.VisitorBookController{DB: db}

	fo := r.Group("/front-office")

	gs := fo.Group("/setups")
	gs.Get("/", setups.List)
	gs.Get("/:id", setups.GetByID)
	gs.Post("/", setups.Create)
	gs.Put("/:id", setups.Update)
	gs.Delete("/:id", setups.Delete)

	gv := fo.Group("/visitors")
	gv.Get("/", visitors.List)
	gv.Get("/:id", visitors.GetByID)
	gv.Post("/", visitors.Create)
	gv.Put("/:id", visitors.Update)
	gv.Delete("/:id", visitors.Delete)
}
