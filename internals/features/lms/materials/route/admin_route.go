package routes

import (
	materialController "kampusku_backend/internals/features/lms/materials/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AdminMaterialRoutes: CRUD materi + rekonsiliasi manual (group lecturer/admin)
func AdminMaterialRoutes(router fiber.Router, db *gorm.DB) {
	controller := materialController.NewCourseMaterialController(db)
	materialRoutes := router.Group("/materials")

	materialRoutes.Post("/", controller.Create)
	materialRoutes.Get("/", controller.ListByCourse)
	materialRoutes.Patch("/:id", controller.Update)
	materialRoutes.Post("/:id/reconcile", controller.Reconcile)
}
