package routes

import (
	attController "kampusku_backend/internals/features/lms/attendance/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// TeacherAttendanceRoutes: roster + penandaan manual (group lecturer/admin)
func TeacherAttendanceRoutes(router fiber.Router, db *gorm.DB) {
	controller := attController.NewAttendanceController(db)
	attendanceRoutes := router.Group("/attendances")

	attendanceRoutes.Get("/", controller.ListForLecturer)
	attendanceRoutes.Post("/", controller.CreateManual)
	attendanceRoutes.Get("/:id", controller.GetByID)
}
