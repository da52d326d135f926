package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	transportController "vedaschool_backend/internals/features/school/transport/controller"
)

// TransportUserRoutes exposes read-only transport data to authenticated users.
func TransportUserRoutes(r fiber.Router, db *gorm.DB) {
	vehicles := &transportController.VehicleController{DB: db}
	routes := &transportController.RouteController{DB: db}
	points := &transportController.PickupPointController{DB: db}
	assignments := &transportController.VehicleAssignmentController{DB: db}
	stops := &transportController.RouteStopController{DB: db}

	tr := r.Group("/transport")

	gv := tr.Group("/vehicles")
	gv.Get("/", vehicles.List)
	gv.Get("/:id", vehicles.GetByID)

	gr := tr.Group("/routes")
	gr.Get("/", routes.List)
	gr.Get("/:id", routes.GetByID)

	gp := tr.Group("/pickup-points")
	gp.Get("/", points.List)
	gp.Get("/:id", points.GetByID)

	ga := tr.Group("/assignments")
	ga.Get("/", assignments.List)
	ga.Get("/:id", assignments.GetByID)

	gs := tr.Group("/route-stops")
	gs.Get("/", stops.List)
	gs.Get("/:id", stops.GetByID)
}

func TransportAdminRoutes(r fiber.Router, db *gorm.DB) {
	vehicles := &transportController.VehicleController{DB: db}
	routes := &transportController.RouteController{DB: db}
	points := &transportController.PickupPointController{DB: db}
	assignments := &transportController.VehicleAssignmentController{DB: db}
	stops := &transportController.RouteStopController{DB: db}

	tr := r.Group("/transport")

	gv := tr.Group("/vehicles")
	gv.Get("/", vehicles.List)
	gv.Get("/:id", vehicles.GetByID)
	gv.Post("/", vehicles.Create)
	gv.Put("/:id", vehicles.Update)
	gv.Delete("/:id", vehicles.Delete)

	gr := tr.Group("/routes")
	gr.Get("/", routes.List)
	gr.Get("/:id", routes.GetByID)
	gr.Post("/", routes.Create)
	gr.Put("/:id", routes.Update)
	gr.Delete("/:id", routes.Delete)

	gp := tr.Group("/pickup-points")
	gp.Get("/", points.List)
	gp.Get("/:id", points.GetByID)
	gp.Post("/", points.Create)
	gp.Put("/:id", points.Update)
	gp.Delete("/:id", points.Delete)

	ga := tr.Group("/assignments")
	ga.Get("/", assignments.List)
	ga.Get("/:id", assignments.GetByID)
	ga.Post("/", assignments.Create)
	ga.Put("/:id", assignments.Update)
	ga.Delete("/:id", assignments.Delete)

	gs := tr.Group("/route-stops")
	gs.Get("/", stops.List)
	gs.Get("/:id", stops.GetByID)
	gs.Post("/", stops.Create)
	gs.Put("/:id", stops.Update)
	gs.Delete("/:id", stops.Delete)
}
