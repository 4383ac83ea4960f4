package routes

import (
	attController "kampusku_backend/internals/features/lms/attendance/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func UserAttendanceRoutes(router fiber.Router, db *gorm.DB) {
	controller := attController.NewAttendanceController(db)
	attendanceRoutes := router.Group("/attendances")

	attendanceRoutes.Get("/", controller.ListMine)
}
