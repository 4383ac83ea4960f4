// internals/features/lms/materials/model/course_material_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CourseMaterialKind string

const (
	CourseMaterialVideo    CourseMaterialKind = "video"
	CourseMaterialDocument CourseMaterialKind = "document"
	CourseMaterialLink     CourseMaterialKind = "link"
)

type CourseMaterialModel struct {
	// PK
	CourseMaterialID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:course_material_id" json:"course_material_id"`

	// FK
	CourseMaterialCourseID uuid.UUID `gorm:"type:uuid;not null;column:course_material_course_id;index:idx_course_materials_course" json:"course_material_course_id"`

	CourseMaterialTitle string             `gorm:"type:varchar(255);not null;column:course_material_title" json:"course_material_title"`
	CourseMaterialKind  CourseMaterialKind `gorm:"type:varchar(16);not null;default:video;column:course_material_kind" json:"course_material_kind"`
	CourseMaterialURL   *string            `gorm:"type:text;column:course_material_url" json:"course_material_url,omitempty"`

	// Durasi video (detik); nullable untuk materi non-video
	CourseMaterialDurationSeconds *float64 `gorm:"type:numeric(10,2);column:course_material_duration_seconds" json:"course_material_duration_seconds,omitempty"`

	// Pipeline absensi otomatis
	CourseMaterialIsAttendanceTrigger bool     `gorm:"not null;default:false;column:course_material_is_attendance_trigger;index:idx_course_materials_trigger" json:"course_material_is_attendance_trigger"`
	CourseMaterialAttendanceThreshold *float64 `gorm:"type:numeric(5,2);column:course_material_attendance_threshold" json:"course_material_attendance_threshold,omitempty"` // DB: CHECK 0..100

	CourseMaterialMetadata datatypes.JSON `gorm:"type:jsonb;column:course_material_metadata" json:"course_material_metadata,omitempty"`

	// Timestamps
	CourseMaterialCreatedAt time.Time      `gorm:"column:course_material_created_at;autoCreateTime" json:"course_material_created_at"`
	CourseMaterialUpdatedAt time.Time      `gorm:"column:course_material_updated_at;autoUpdateTime" json:"course_material_updated_at"`
	CourseMaterialDeletedAt gorm.DeletedAt `gorm:"column:course_material_deleted_at;index" json:"course_material_deleted_at,omitempty"`
}

func (CourseMaterialModel) TableName() string {
	return "course_materials"
}

// EffectiveAttendanceThreshold: override per materi kalau ada, selain itu default global.
func (m *CourseMaterialModel) EffectiveAttendanceThreshold(globalDefault float64) float64 {
	if m.CourseMaterialAttendanceThreshold != nil {
		return *m.CourseMaterialAttendanceThreshold
	}
	return globalDefault
}
