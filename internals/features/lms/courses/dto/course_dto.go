// internals/features/lms/courses/dto/course_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	"kampusku_backend/internals/features/lms/courses/model"
)

/* =========================
   Requests
========================= */

type CreateCourseRequest struct {
	CourseCode  string  `json:"course_code" validate:"required,min=2,max=32"`
	CourseTitle string  `json:"course_title" validate:"required,min=3,max=255"`
	CourseDesc  *string `json:"course_desc" validate:"omitempty,max=4000"`
}

func (r *CreateCourseRequest) Normalize() {
	r.CourseCode = strings.ToUpper(strings.TrimSpace(r.CourseCode))
	r.CourseTitle = strings.TrimSpace(r.CourseTitle)
}

func (r *CreateCourseRequest) ToModel(lecturerID uuid.UUID) *model.CourseModel {
	return &model.CourseModel{
		CourseCode:       r.CourseCode,
		CourseTitle:      r.CourseTitle,
		CourseDesc:       r.CourseDesc,
		CourseLecturerID: lecturerID,
	}
}

type UpdateCourseRequest struct {
	CourseTitle    *string `json:"course_title" validate:"omitempty,min=3,max=255"`
	CourseDesc     *string `json:"course_desc" validate:"omitempty,max=4000"`
	CourseIsActive *bool   `json:"course_is_active"`
}

type EnrollStudentRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
}

/* =========================
   Queries
========================= */

type ListCourseQuery struct {
	Search   *string `query:"search"`
	IsActive *bool   `query:"is_active"`
}
