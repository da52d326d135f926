package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "vedaschool_backend/internals/features/users/auth/controller"
)

// AuthPublicRoutes: endpoints reachable without a token.
func AuthPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &authController.AuthController{DB: db}
	g := r.Group("/auth")
	g.Post("/login", ctrl.Login)
}

// AuthUserRoutes: endpoints for any authenticated user.
func AuthUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &authController.AuthController{DB: db}
	g := r.Group("/auth")
	g.Get("/me", ctrl.Me)
}

// AuthAdminRoutes: account management, admin only.
func AuthAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &authController.AuthController{DB: db}
	g := r.Group("/auth")
	g.Post("/register", ctrl.Register)
}
