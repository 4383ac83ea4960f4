// internals/features/lms/materials/dto/course_material_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"kampusku_backend/internals/features/lms/materials/model"
)

/* =========================
   Requests
========================= */

type CreateCourseMaterialRequest struct {
	CourseID        uuid.UUID `json:"course_id" validate:"required"`
	Title           string    `json:"title" validate:"required,min=3,max=255"`
	Kind            string    `json:"kind" validate:"omitempty,oneof=video document link"`
	URL             *string   `json:"url" validate:"omitempty,url"`
	DurationSeconds *float64  `json:"duration_seconds" validate:"omitempty,gt=0"`

	IsAttendanceTrigger bool     `json:"is_attendance_trigger"`
	AttendanceThreshold *float64 `json:"attendance_threshold" validate:"omitempty,gte=0,lte=100"`

	Metadata datatypes.JSON `json:"metadata"`
}

func (r *CreateCourseMaterialRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	if strings.TrimSpace(r.Kind) == "" {
		r.Kind = string(model.CourseMaterialVideo)
	}
}

func (r *CreateCourseMaterialRequest) ToModel() *model.CourseMaterialModel {
	return &model.CourseMaterialModel{
		CourseMaterialCourseID:            r.CourseID,
		CourseMaterialTitle:               r.Title,
		CourseMaterialKind:                model.CourseMaterialKind(r.Kind),
		CourseMaterialURL:                 r.URL,
		CourseMaterialDurationSeconds:     r.DurationSeconds,
		CourseMaterialIsAttendanceTrigger: r.IsAttendanceTrigger,
		CourseMaterialAttendanceThreshold: r.AttendanceThreshold,
		CourseMaterialMetadata:            r.Metadata,
	}
}

// Semua field opsional; toggle is_attendance_trigger false→true memicu rekonsiliasi.
type UpdateCourseMaterialRequest struct {
	Title               *string  `json:"title" validate:"omitempty,min=3,max=255"`
	URL                 *string  `json:"url" validate:"omitempty,url"`
	DurationSeconds     *float64 `json:"duration_seconds" validate:"omitempty,gt=0"`
	IsAttendanceTrigger *bool    `json:"is_attendance_trigger"`
	AttendanceThreshold *float64 `json:"attendance_threshold" validate:"omitempty,gte=0,lte=100"`
}
