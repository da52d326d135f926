package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	calendarController "vedaschool_backend/internals/features/school/calendar/controller"
)

func CalendarUserRoutes(r fiber.Router, db *gorm.DB) {
	events := &calendarController.CalendarEventController{DB: db}
	types := &calendarController.EventTypeController{DB: db}

	ge := r.Group("/calendar-events")
	ge.Get("/", events.List)
	ge.Get("/:id", events.GetByID)
	ge.Post("/", events.Create)
	ge.Put("/:id", events.Update)
	ge.Delete("/:id", events.Delete)

	gt := r.Group("/event-types")
	gt.Get("/", types.List)
	gt.Get("/:id", types.GetByID)
}

func CalendarAdminRoutes(r fiber.Router, db *gorm.DB) {
	types := &calendarController.EventTypeController{DB: db}

	gt := r.Group("/event-types")
	gt.Get("/", types.List)
	gt.Get("/:id", types.GetByID)
	gt.Post("/", types.Create)
	gt.Put("/:id", types.Update)
	gt.Delete("/:id", types.Delete)
}
