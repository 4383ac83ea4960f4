// internals/features/lms/materials/controller/course_material_controller.go
package controller

import (
	"errors"
	"strings"

	"kampusku_backend/internals/constants"
	attService "kampusku_backend/internals/features/lms/attendance/service"
	materialDTO "kampusku_backend/internals/features/lms/materials/dto"
	materialModel "kampusku_backend/internals/features/lms/materials/model"
	helper "kampusku_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CourseMaterialController struct {
	DB         *gorm.DB
	Validator  *validator.Validate
	Reconciler *attService.Reconciler
}

func NewCourseMaterialController(db *gorm.DB) *CourseMaterialController {
	return &CourseMaterialController{
		DB:         db,
		Validator:  validator.New(),
		Reconciler: attService.NewReconciler(db),
	}
}

// POST /api/a/lms/materials
func (ctl *CourseMaterialController) Create(c *fiber.Ctx) error {
	var req materialDTO.CreateCourseMaterialRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	req.Normalize()
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	// materi pemicu harus video berdurasi
	if req.IsAttendanceTrigger && req.Kind != string(materialModel.CourseMaterialVideo) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Hanya materi video yang bisa jadi pemicu absensi")
	}

	var courseExists int64
	if err := ctl.DB.WithContext(c.Context()).
		Table("courses").
		Where("course_id = ? AND course_deleted_at IS NULL", req.CourseID).
		Count(&courseExists).Error; err != nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Database sedang tidak tersedia")
	}
	if courseExists == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Course tidak ditemukan")
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Database sedang tidak tersedia")
	}

	return helper.JsonCreated(c, "Materi dibuat", m)
}

// GET /api/a/lms/materials?course_id=
func (ctl *CourseMaterialController) ListByCourse(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(strings.TrimSpace(c.Query("course_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "course_id wajib dan harus UUID")
	}

	p := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.WithContext(c.Context()).
		Model(&materialModel.CourseMaterialModel{}).
		Where("course_material_course_id = ?", courseID)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Database sedang tidak tersedia")
	}

	var rows []materialModel.CourseMaterialModel
	if err := tx.Order("course_material_created_at ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Database sedang tidak tersedia")
	}

	return helper.JsonList(c, "ok", rows, helper.BuildPaginationFromOffset(total, p.Offset, p.Limit))
}

// PATCH /api/a/lms/materials/:id
//
// Toggle is_attendance_trigger false→true langsung memicu rekonsiliasi:
// completion lama yang menggantung dibereskan di sini, bukan lewat script
// terpisah di luar jam kerja.
func (ctl *CourseMaterialController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Material ID tidak valid")
	}

	var req materialDTO.UpdateCourseMaterialRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m materialModel.CourseMaterialModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("course_material_id = ?", id).
		Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Materi tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Database sedang tidak tersedia")
	}

	triggerTurnedOn := req.IsAttendanceTrigger != nil &&
		*req.IsAttendanceTrigger && !m.CourseMaterialIsAttendanceTrigger

	updates := map[string]any{}
	if req.Title != nil {
		updates["course_material_title"] = strings.TrimSpace(*req.Title)
	}
	if req.URL != nil {
		updates["course_material_url"] = *req.URL
	}
	if req.DurationSeconds != nil {
		updates["course_material_duration_seconds"] = *req.DurationSeconds
	}
	if req.IsAttendanceTrigger != nil {
		updates["course_material_is_attendance_trigger"] = *req.IsAttendanceTrigger
	}
	if req.AttendanceThreshold != nil {
		updates["course_material_attendance_threshold"] = *req.AttendanceThreshold
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	if err := ctl.DB.WithContext(c.Context()).
		Model(&materialModel.CourseMaterialModel{}).
		Where("course_material_id = ?", id).
		Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Database sedang tidak tersedia")
	}

	resp := fiber.Map{"course_material_id": id}

	if triggerTurnedOn {
		sum, err := ctl.Reconciler.ReconcileMaterial(c.UserContext(), id)
		switch {
		case errors.Is(err, attService.ErrMaterialNotTrigger):
			// flag keburu dimatikan lagi oleh update lain; jangan laporkan
			// summary kosong seolah rekonsiliasi jalan
			resp["reconcile_skipped"] = "Flag pemicu sudah nonaktif lagi, rekonsiliasi dilewati"
		case err != nil:
			// update sudah commit; rekonsiliasi yang gagal dicoba ulang sweep
			resp["reconcile_error"] = "Rekonsiliasi tertunda, akan dicoba ulang otomatis"
		default:
			resp["reconcile"] = sum
		}
	}

	return helper.JsonOK(c, "Materi diperbarui", resp)
}

// POST /api/a/lms/materials/:id/reconcile — jalur operator (disaster recovery),
// hanya admin walau group-nya lecturer+admin
func (ctl *CourseMaterialController) Reconcile(c *fiber.Ctx) error {
	role, err := helper.GetRoleFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if role != constants.RoleAdmin {
		return helper.JsonError(c, fiber.StatusForbidden, constants.RoleErrorAdmin("rekonsiliasi absensi"))
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Material ID tidak valid")
	}

	sum, err := ctl.Reconciler.ReconcileMaterial(c.UserContext(), id)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Materi tidak ditemukan")
	case errors.Is(err, attService.ErrMaterialNotTrigger):
		return helper.JsonError(c, fiber.StatusBadRequest, "Materi bukan pemicu absensi")
	case err != nil:
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Database sedang tidak tersedia")
	}

	return helper.JsonOK(c, "Rekonsiliasi selesai", sum)
}
