package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	activityController "vedaschool_backend/internals/features/school/activities/controller"
)

// ActivityUserRoutes: read-only endpoints for any authenticated role.
func ActivityUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &activityController.ActivityController{DB: db}
	g := r.Group("/activities")
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
}

// ActivityAdminRoutes: full CRUD for admin/staff.
func ActivityAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &activityController.ActivityController{DB: db}
	g := r.Group("/activities")
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
	g.Post("/", ctrl.Create)
	g.Put("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
}
