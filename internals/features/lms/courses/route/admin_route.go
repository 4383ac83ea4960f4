package routes

import (
	courseController "kampusku_backend/internals/features/lms/courses/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AdminCourseRoutes: CRUD course + enrollment (group lecturer/admin)
func AdminCourseRoutes(router fiber.Router, db *gorm.DB) {
	controller := courseController.NewCourseController(db)
	courseRoutes := router.Group("/courses")

	courseRoutes.Post("/", controller.Create)
	courseRoutes.Get("/", controller.List)
	courseRoutes.Get("/:id", controller.GetByID)
	courseRoutes.Patch("/:id", controller.Update)
	courseRoutes.Post("/:id/students", controller.EnrollStudent)
}
