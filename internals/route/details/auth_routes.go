package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	AuthRoutes "vedaschool_backend/internals/features/users/auth/route"
)

func AuthPublicRoutes(r fiber.Router, db *gorm.DB) {
	AuthRoutes.AuthPublicRoutes(r, db)
}

func AuthUserRoutes(r fiber.Router, db *gorm.DB) {
	AuthRoutes.AuthUserRoutes(r, db)
}

func AuthAdminRoutes(r fiber.Router, db *gorm.DB) {
	AuthRoutes.AuthAdminRoutes(r, db)
}
