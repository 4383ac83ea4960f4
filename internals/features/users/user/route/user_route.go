package routes

import (
	userController "kampusku_backend/internals/features/users/user/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func UserRoutes(router fiber.Router, db *gorm.DB) {
	controller := userController.NewUserController(db)
	userRoutes := router.Group("/users")

	userRoutes.Get("/me", controller.GetMe)
}
