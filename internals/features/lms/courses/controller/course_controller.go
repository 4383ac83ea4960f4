// internals/features/lms/courses/controller/course_controller.go
package controller

import (
	"errors"
	"strings"

	courseDTO "kampusku_backend/internals/features/lms/courses/dto"
	courseModel "kampusku_backend/internals/features/lms/courses/model"
	helper "kampusku_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CourseController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{
		DB:        db,
		Validator: validator.New(),
	}
}

// POST /api/a/lms/courses
func (ctl *CourseController) Create(c *fiber.Ctx) error {
	lecturerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req courseDTO.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	req.Normalize()
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel(lecturerID)
	if err := ctl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Kode course sudah dipakai")
		}
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Database sedang tidak tersedia")
	}

	return helper.JsonCreated(c, "Course dibuat", m)
}

// GET /api/a/lms/courses
func (ctl *CourseController) List(c *fiber.Ctx) error {
	var q courseDTO.ListCourseQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query tidak valid")
	}

	p := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.WithContext(c.Context()).Model(&courseModel.CourseModel{})
	if q.Search != nil && strings.TrimSpace(*q.Search) != "" {
		s := "%" + strings.TrimSpace(*q.Search) + "%"
		tx = tx.Where("course_title ILIKE ? OR course_code ILIKE ?", s, s)
	}
	if q.IsActive != nil {
		tx = tx.Where("course_is_active = ?", *q.IsActive)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Database sedang tidak tersedia")
	}

	var rows []courseModel.CourseModel
	if err := tx.Order("course_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Database sedang tidak tersedia")
	}

	return helper.JsonList(c, "ok", rows, helper.BuildPaginationFromOffset(total, p.Offset, p.Limit))
}

// GET /api/a/lms/courses/:id
func (ctl *CourseController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Course ID tidak valid")
	}

	var m courseModel.CourseModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("course_id = ?", id).
		Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Database sedang tidak tersedia")
	}

	return helper.JsonOK(c, "ok", m)
}

// PATCH /api/a/lms/courses/:id
func (ctl *CourseController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Course ID tidak valid")
	}

	var req courseDTO.UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]any{}
	if req.CourseTitle != nil {
		updates["course_title"] = strings.TrimSpace(*req.CourseTitle)
	}
	if req.CourseDesc != nil {
		updates["course_desc"] = *req.CourseDesc
	}
	if req.CourseIsActive != nil {
		updates["course_is_active"] = *req.CourseIsActive
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	res := ctl.DB.WithContext(c.Context()).
		Model(&courseModel.CourseModel{}).
		Where("course_id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Database sedang tidak tersedia")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Course tidak ditemukan")
	}

	return helper.JsonOK(c, "Course diperbarui", fiber.Map{"course_id": id})
}

// POST /api/a/lms/courses/:id/students
func (ctl *CourseController) EnrollStudent(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Course ID tidak valid")
	}

	var req courseDTO.EnrollStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := &courseModel.CourseStudentModel{
		CourseStudentCourseID:  courseID,
		CourseStudentStudentID: req.StudentID,
	}
	if err := ctl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Mahasiswa sudah terdaftar di course ini")
		}
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Database sedang tidak tersedia")
	}

	return helper.JsonCreated(c, "Mahasiswa terdaftar", m)
}
