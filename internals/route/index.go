package routes

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"vedaschool_backend/internals/constants"
	authMiddleware "vedaschool_backend/internals/middlewares/auth"
	routeDetails "vedaschool_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	authOpts := authMiddleware.AuthJWTOpts{
		Secret:              os.Getenv("JWT_SECRET"),
		AllowCookieFallback: true,
	}

	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")

	log.Println("[INFO] Setting up PRIVATE (user) group...")
	private := app.Group("/api/u",
		authMiddleware.AuthJWT(authOpts),
	)

	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a", authMiddleware.AuthJWT(authOpts))

	// HR and the front desk admit their own roles alongside admins.
	// Path-scoped checks register first; the catch-all admin check is
	// skipped once a narrower one has granted access.
	admin.Use("/hr", authMiddleware.RequireRoles(constants.RoleAdmin, constants.RoleHR))
	admin.Use("/front-office", authMiddleware.RequireRoles(constants.RoleAdmin, constants.RoleReceptionist))
	admin.Use(authMiddleware.RequireRoles(constants.RoleAdmin))

	log.Println("[INFO] Mounting Auth routes...")
	routeDetails.AuthPublicRoutes(public, db)
	routeDetails.AuthUserRoutes(private, db)
	routeDetails.AuthAdminRoutes(admin, db)

	log.Println("[INFO] Mounting School routes...")
	routeDetails.SchoolUserRoutes(private, db)
	routeDetails.SchoolAdminRoutes(admin, db)

	log.Println("[INFO] Mounting FrontOffice routes...")
	routeDetails.FrontOfficeUserRoutes(private, db)
	routeDetails.FrontOfficeAdminRoutes(admin, db)

	log.Println("[INFO] Mounting HR routes...")
	routeDetails.HRAdminRoutes(admin, db)
}
