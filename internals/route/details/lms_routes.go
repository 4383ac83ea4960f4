// internals/route/details/lms_routes.go
package details

import (
	// ====== LMS features ======
	AttendanceRoutes "kampusku_backend/internals/features/lms/attendance/route"
	CourseRoutes "kampusku_backend/internals/features/lms/courses/route"
	MaterialRoutes "kampusku_backend/internals/features/lms/materials/route"
	ProgressRoutes "kampusku_backend/internals/features/lms/progress/route"
	UserRoutes "kampusku_backend/internals/features/users/user/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/* ===================== USER (PRIVATE) ===================== */
// Endpoint yang butuh login mahasiswa (token user)
func LmsUserRoutes(r fiber.Router, db *gorm.DB) {
	UserRoutes.UserRoutes(r, db)

	lms := r.Group("/lms")
	ProgressRoutes.UserVideoProgressRoutes(lms, db)
	AttendanceRoutes.UserAttendanceRoutes(lms, db)
}

/* ===================== ADMIN / LECTURER ===================== */
// Endpoint manajemen course, materi, dan roster absensi
func LmsAdminRoutes(r fiber.Router, db *gorm.DB) {
	lms := r.Group("/lms")
	CourseRoutes.AdminCourseRoutes(lms, db)
	MaterialRoutes.AdminMaterialRoutes(lms, db)
	AttendanceRoutes.TeacherAttendanceRoutes(lms, db)
}
