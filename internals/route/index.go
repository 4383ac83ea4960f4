// file: internals/route/index.go
package routes

import (
	"log"
	"os"
	"time"

	"kampusku_backend/internals/constants"
	middlewares "kampusku_backend/internals/middlewares"
	authMiddleware "kampusku_backend/internals/middlewares/auth"
	routeDetails "kampusku_backend/internals/route/details"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// koneksi db tersedia di locals untuk handler ad-hoc
	app.Use(middlewares.DBMiddleware(db))

	// ===================== PRIVATE (USER / STUDENT) =====================
	log.Println("[INFO] Setting up PRIVATE (user) group...")
	private := app.Group("/api/u",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
	)
	routeDetails.LmsUserRoutes(private, db)

	// ===================== ADMIN / LECTURER =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
		authMiddleware.RequireRoles("LMS admin", constants.LecturerAndAbove...),
	)
	routeDetails.LmsAdminRoutes(admin, db)

	// uptime sederhana untuk dashboard ops
	app.Get("/api/uptime", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"uptime": time.Since(startTime).String()})
	})
}
