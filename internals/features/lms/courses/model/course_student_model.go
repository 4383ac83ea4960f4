// internals/features/lms/courses/model/course_student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Enrollment mahasiswa pada sebuah course. Satu baris per (course, student).
type CourseStudentModel struct {
	// PK
	CourseStudentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:course_student_id" json:"course_student_id"`

	// FKs (unik berpasangan)
	CourseStudentCourseID  uuid.UUID `gorm:"type:uuid;not null;column:course_student_course_id;uniqueIndex:uq_course_students_pair;index:idx_course_students_course" json:"course_student_course_id"`
	CourseStudentStudentID uuid.UUID `gorm:"type:uuid;not null;column:course_student_student_id;uniqueIndex:uq_course_students_pair;index:idx_course_students_student" json:"course_student_student_id"`

	CourseStudentEnrolledAt time.Time      `gorm:"column:course_student_enrolled_at;autoCreateTime" json:"course_student_enrolled_at"`
	CourseStudentDeletedAt  gorm.DeletedAt `gorm:"column:course_student_deleted_at;index" json:"course_student_deleted_at,omitempty"`
}

func (CourseStudentModel) TableName() string {
	return "course_students"
}
