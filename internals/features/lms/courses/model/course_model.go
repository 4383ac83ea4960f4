// internals/features/lms/courses/model/course_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CourseModel struct {
	// PK
	CourseID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:course_id" json:"course_id"`

	CourseCode  string  `gorm:"type:varchar(32);not null;uniqueIndex:uq_courses_code;column:course_code" json:"course_code"`
	CourseTitle string  `gorm:"type:varchar(255);not null;column:course_title" json:"course_title"`
	CourseDesc  *string `gorm:"type:text;column:course_desc" json:"course_desc,omitempty"`

	// FK ke users (dosen pengampu)
	CourseLecturerID uuid.UUID `gorm:"type:uuid;not null;column:course_lecturer_id;index:idx_courses_lecturer" json:"course_lecturer_id"`

	CourseIsActive bool `gorm:"not null;default:true;column:course_is_active" json:"course_is_active"`

	// Timestamps
	CourseCreatedAt time.Time      `gorm:"column:course_created_at;autoCreateTime" json:"course_created_at"`
	CourseUpdatedAt time.Time      `gorm:"column:course_updated_at;autoUpdateTime" json:"course_updated_at"`
	CourseDeletedAt gorm.DeletedAt `gorm:"column:course_deleted_at;index" json:"course_deleted_at,omitempty"`
}

func (CourseModel) TableName() string {
	return "courses"
}
