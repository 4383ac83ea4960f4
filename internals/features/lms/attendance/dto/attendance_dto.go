// internals/features/lms/attendance/dto/attendance_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"kampusku_backend/internals/features/lms/attendance/model"
)

const dateLayout = "2006-01-02"

/* =========================
   Requests
========================= */

// Penandaan manual oleh dosen (status default present).
type ManualAttendanceRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	CourseID  uuid.UUID `json:"course_id" validate:"required"`
	Date      string    `json:"date" validate:"required"` // YYYY-MM-DD
	Status    string    `json:"status" validate:"omitempty,oneof=present absent excused late"`
	Note      *string   `json:"note" validate:"omitempty,max=1000"`
}

func (r *ManualAttendanceRequest) Normalize() {
	r.Status = strings.ToLower(strings.TrimSpace(r.Status))
	if r.Status == "" {
		r.Status = string(model.AttendancePresent)
	}
}

// ParseDate memvalidasi format tanggal dan memotong ke midnight UTC.
func (r *ManualAttendanceRequest) ParseDate() (time.Time, error) {
	return time.Parse(dateLayout, strings.TrimSpace(r.Date))
}

func (r *ManualAttendanceRequest) ToModel(date time.Time, verifiedBy uuid.UUID, now time.Time) *model.AttendanceModel {
	verifiedAt := now
	return &model.AttendanceModel{
		AttendanceStudentID:   r.StudentID,
		AttendanceCourseID:    r.CourseID,
		AttendanceDate:        date,
		AttendanceType:        model.AttendanceManual,
		AttendanceStatus:      model.AttendanceStatus(r.Status),
		AttendanceNote:        r.Note,
		AttendanceSubmittedAt: now,
		AttendanceVerifiedBy:  &verifiedBy,
		AttendanceVerifiedAt:  &verifiedAt,
	}
}

/* =========================
   Queries
========================= */

type ListAttendanceQuery struct {
	CourseID  *uuid.UUID `query:"course_id"`
	StudentID *uuid.UUID `query:"student_id"`
	Status    *string    `query:"status"`
	Type      *string    `query:"type"`
	DateFrom  *string    `query:"date_from"`
	DateTo    *string    `query:"date_to"`
}

// ListAttendanceFilter: hasil validasi ListAttendanceQuery, siap dipakai ke WHERE clause.
type ListAttendanceFilter struct {
	CourseID  *uuid.UUID
	StudentID *uuid.UUID
	Status    string
	Type      string
	DateFrom  *time.Time
	DateTo    *time.Time
}

// ParseFilter memvalidasi semua filter sebelum query dibangun.
// Nilai invalid mengembalikan *fiber.Error 400 (bukan response langsung),
// supaya controller yang memutuskan cara menulisnya.
func (q *ListAttendanceQuery) ParseFilter() (ListAttendanceFilter, error) {
	f := ListAttendanceFilter{
		CourseID:  q.CourseID,
		StudentID: q.StudentID,
	}

	if q.Status != nil && strings.TrimSpace(*q.Status) != "" {
		s := strings.ToLower(strings.TrimSpace(*q.Status))
		switch s {
		case "present", "absent", "auto_present", "excused", "late":
			f.Status = s
		default:
			return f, fiber.NewError(fiber.StatusBadRequest, "status tidak valid (present/absent/auto_present/excused/late)")
		}
	}
	if q.Type != nil && strings.TrimSpace(*q.Type) != "" {
		s := strings.ToLower(strings.TrimSpace(*q.Type))
		switch s {
		case "manual", "video_completion", "qr_code", "location_based":
			f.Type = s
		default:
			return f, fiber.NewError(fiber.StatusBadRequest, "type tidak valid (manual/video_completion/qr_code/location_based)")
		}
	}
	if q.DateFrom != nil && strings.TrimSpace(*q.DateFrom) != "" {
		t, err := time.Parse(dateLayout, strings.TrimSpace(*q.DateFrom))
		if err != nil {
			return f, fiber.NewError(fiber.StatusBadRequest, "date_from invalid format, expected YYYY-MM-DD")
		}
		f.DateFrom = &t
	}
	if q.DateTo != nil && strings.TrimSpace(*q.DateTo) != "" {
		t, err := time.Parse(dateLayout, strings.TrimSpace(*q.DateTo))
		if err != nil {
			return f, fiber.NewError(fiber.StatusBadRequest, "date_to invalid format, expected YYYY-MM-DD")
		}
		f.DateTo = &t
	}

	return f, nil
}
