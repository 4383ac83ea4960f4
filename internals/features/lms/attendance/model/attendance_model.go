// internals/features/lms/attendance/model/attendance_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AttendanceStatus string

const (
	AttendancePresent     AttendanceStatus = "present"
	AttendanceAbsent      AttendanceStatus = "absent"
	AttendanceAutoPresent AttendanceStatus = "auto_present"
	AttendanceExcused     AttendanceStatus = "excused"
	AttendanceLate        AttendanceStatus = "late"
)

type AttendanceType string

const (
	AttendanceManual          AttendanceType = "manual"
	AttendanceVideoCompletion AttendanceType = "video_completion"
	AttendanceQRCode          AttendanceType = "qr_code"
	AttendanceLocationBased   AttendanceType = "location_based"
)

// Satu baris per (student, course, date, type) — unik di DB, bukan cuma di aplikasi.
// Baris manual dan video_completion untuk hari yang sama boleh koeksis karena
// uniknya di-scope per type. Baris tidak pernah dimutasi oleh pipeline otomatis.
type AttendanceModel struct {
	// PK
	AttendanceID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_id" json:"attendance_id"`

	// FKs + tanggal (unik berempat)
	AttendanceStudentID uuid.UUID `gorm:"type:uuid;not null;column:attendance_student_id;uniqueIndex:uq_attendances_scd_type;index:idx_attendances_student" json:"attendance_student_id"`
	AttendanceCourseID  uuid.UUID `gorm:"type:uuid;not null;column:attendance_course_id;uniqueIndex:uq_attendances_scd_type;index:idx_attendances_course" json:"attendance_course_id"`
	AttendanceDate      time.Time `gorm:"type:date;not null;column:attendance_date;uniqueIndex:uq_attendances_scd_type" json:"attendance_date"`
	AttendanceType      AttendanceType `gorm:"type:varchar(20);not null;default:manual;column:attendance_type;uniqueIndex:uq_attendances_scd_type" json:"attendance_type"`

	// Status (CHECK di DB)
	AttendanceStatus AttendanceStatus `gorm:"type:varchar(16);not null;default:present;column:attendance_status;index:idx_attendances_status" json:"attendance_status"`

	// Materi pemicu (nullable; hanya terisi di jalur video_completion)
	AttendanceTriggerMaterialID *uuid.UUID `gorm:"type:uuid;column:attendance_trigger_material_id;index:idx_attendances_trigger_material" json:"attendance_trigger_material_id,omitempty"`

	// Catatan human-readable + metadata bebas
	AttendanceNote     *string        `gorm:"type:text;column:attendance_note" json:"attendance_note,omitempty"`
	AttendanceMetadata datatypes.JSON `gorm:"type:jsonb;column:attendance_metadata" json:"attendance_metadata,omitempty"`

	AttendanceSubmittedAt time.Time `gorm:"not null;column:attendance_submitted_at" json:"attendance_submitted_at"`

	// Override manual oleh dosen (tidak dipakai jalur otomatis)
	AttendanceVerifiedBy *uuid.UUID `gorm:"type:uuid;column:attendance_verified_by" json:"attendance_verified_by,omitempty"`
	AttendanceVerifiedAt *time.Time `gorm:"column:attendance_verified_at" json:"attendance_verified_at,omitempty"`

	// Timestamps
	AttendanceCreatedAt time.Time `gorm:"column:attendance_created_at;autoCreateTime" json:"attendance_created_at"`
	AttendanceUpdatedAt time.Time `gorm:"column:attendance_updated_at;autoUpdateTime" json:"attendance_updated_at"`
}

func (AttendanceModel) TableName() string {
	return "attendances"
}
