// internals/features/lms/attendance/controller/attendance_controller.go
package controller

import (
	"time"

	attDTO "kampusku_backend/internals/features/lms/attendance/dto"
	attModel "kampusku_backend/internals/features/lms/attendance/model"
	helper "kampusku_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AttendanceController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{
		DB:        db,
		Validator: validator.New(),
	}
}

// ===============================
// Helpers
// ===============================

// Build list query dari filter yang SUDAH tervalidasi (dipakai endpoint student & lecturer)
func (ctl *AttendanceController) buildListQuery(c *fiber.Ctx, f attDTO.ListAttendanceFilter) *gorm.DB {
	tx := ctl.DB.WithContext(c.Context()).Model(&attModel.AttendanceModel{})

	if f.CourseID != nil {
		tx = tx.Where("attendance_course_id = ?", *f.CourseID)
	}
	if f.StudentID != nil {
		tx = tx.Where("attendance_student_id = ?", *f.StudentID)
	}
	if f.Status != "" {
		tx = tx.Where("attendance_status = ?", f.Status)
	}
	if f.Type != "" {
		tx = tx.Where("attendance_type = ?", f.Type)
	}
	if f.DateFrom != nil {
		tx = tx.Where("attendance_date >= ?", *f.DateFrom)
	}
	if f.DateTo != nil {
		tx = tx.Where("attendance_date <= ?", *f.DateTo)
	}

	return tx.Order("attendance_date DESC, attendance_created_at DESC")
}

func (ctl *AttendanceController) list(c *fiber.Ctx, q attDTO.ListAttendanceQuery) error {
	// Validasi filter dulu, sebelum menyentuh DB.
	f, err := q.ParseFilter()
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	tx := ctl.buildListQuery(c, f)

	p := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Database sedang tidak tersedia")
	}

	var rows []attModel.AttendanceModel
	if err := tx.Offset(p.Offset).Limit(p.Limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Database sedang tidak tersedia")
	}

	return helper.JsonList(c, "ok", rows, helper.BuildPaginationFromOffset(total, p.Offset, p.Limit))
}

// ===============================
// Student endpoints
// ===============================

// GET /api/u/lms/attendances — daftar absensi milik sendiri
func (ctl *AttendanceController) ListMine(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var q attDTO.ListAttendanceQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query tidak valid")
	}
	q.StudentID = &studentID // paksa ke diri sendiri

	return ctl.list(c, q)
}

// ===============================
// Lecturer endpoints
// ===============================

// GET /api/a/lms/attendances — roster per course
func (ctl *AttendanceController) ListForLecturer(c *fiber.Ctx) error {
	var q attDTO.ListAttendanceQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query tidak valid")
	}
	return ctl.list(c, q)
}

// POST /api/a/lms/attendances — penandaan manual oleh dosen.
// Boleh koeksis dengan baris auto_present di hari yang sama (unik per type).
func (ctl *AttendanceController) CreateManual(c *fiber.Ctx) error {
	lecturerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req attDTO.ManualAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	req.Normalize()
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	date, err := req.ParseDate()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "date invalid format, expected YYYY-MM-DD")
	}

	// pastikan mahasiswa memang terdaftar di course (tenant-safe)
	var enrolled int64
	if err := ctl.DB.WithContext(c.Context()).
		Table("course_students").
		Where("course_student_course_id = ? AND course_student_student_id = ? AND course_student_deleted_at IS NULL",
			req.CourseID, req.StudentID).
		Count(&enrolled).Error; err != nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Database sedang tidak tersedia")
	}
	if enrolled == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Mahasiswa tidak terdaftar di course ini")
	}

	m := req.ToModel(date, lecturerID, time.Now())
	if err := ctl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Absensi manual untuk tanggal ini sudah ada")
		}
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Database sedang tidak tersedia")
	}

	return helper.JsonCreated(c, "Absensi dicatat", m)
}

// GET /api/a/lms/attendances/:id
func (ctl *AttendanceController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Attendance ID tidak valid")
	}

	var m attModel.AttendanceModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("attendance_id = ?", id).
		Take(&m).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Absensi tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Database sedang tidak tersedia")
	}

	return helper.JsonOK(c, "ok", m)
}
