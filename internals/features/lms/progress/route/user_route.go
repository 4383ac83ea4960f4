package routes

import (
	progressController "kampusku_backend/internals/features/lms/progress/controller"
	middlewares "kampusku_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func UserVideoProgressRoutes(router fiber.Router, db *gorm.DB) {
	controller := progressController.NewVideoProgressController(db)
	progressRoutes := router.Group("/video-progress")

	progressRoutes.Post("/", middlewares.ProgressRateLimiter(), controller.Report)
	progressRoutes.Get("/:material_id", controller.GetMine)
}
