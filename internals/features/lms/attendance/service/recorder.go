// internals/features/lms/attendance/service/recorder.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	attModel "kampusku_backend/internals/features/lms/attendance/model"
)

// Zona waktu penentu "tanggal kehadiran" (kalender kampus).
var attendanceTZ = func() *time.Location {
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		return time.Local
	}
	return loc
}()

// AttendanceDateFor memotong timestamp completion ke tanggal kalender.
func AttendanceDateFor(t time.Time) time.Time {
	y, m, d := t.In(attendanceTZ).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AutoAttendanceNote: catatan human-readable dengan persentase yang dicapai.
func AutoAttendanceNote(materialTitle string, percentage float64) string {
	return fmt.Sprintf("Hadir otomatis: menonton %.0f%% materi %q", percentage, materialTitle)
}

/* =========================
   Recorder
========================= */

type Recorder struct {
	DB *gorm.DB
}

func NewRecorder(db *gorm.DB) *Recorder {
	return &Recorder{DB: db}
}

type RecordInput struct {
	ProgressID    uuid.UUID
	StudentID     uuid.UUID
	CourseID      uuid.UUID
	MaterialID    uuid.UUID
	MaterialTitle string
	Percentage    float64
	CompletedAt   time.Time
}

type RecordResult struct {
	Created bool `json:"created"` // false = baris hari itu sudah ada (ConflictIgnored)

	AttendanceDate time.Time `json:"attendance_date"`
}

// BuildAutoAttendance menyusun baris auto_present dari input (tanpa menulis DB).
func BuildAutoAttendance(in RecordInput) attModel.AttendanceModel {
	note := AutoAttendanceNote(in.MaterialTitle, in.Percentage)
	materialID := in.MaterialID
	return attModel.AttendanceModel{
		AttendanceStudentID:         in.StudentID,
		AttendanceCourseID:          in.CourseID,
		AttendanceDate:              AttendanceDateFor(in.CompletedAt),
		AttendanceType:              attModel.AttendanceVideoCompletion,
		AttendanceStatus:            attModel.AttendanceAutoPresent,
		AttendanceTriggerMaterialID: &materialID,
		AttendanceNote:              &note,
		AttendanceSubmittedAt:       in.CompletedAt,
	}
}

// RecordFromProgress menulis absensi auto_present untuk satu completion.
//
// Insert-nya "insert if absent" atomik: ON CONFLICT (student, course, date, type)
// DO NOTHING, jadi dua laporan nyaris bersamaan tidak mungkin menghasilkan dua
// baris — DB yang menegakkan at-most-one, bukan existence check aplikasi.
// Flag has_triggered_attendance di-update dalam transaksi yang sama supaya
// laporan berikutnya berhenti mengecek.
func (r *Recorder) RecordFromProgress(ctx context.Context, in RecordInput) (RecordResult, error) {
	att := BuildAutoAttendance(in)
	res := RecordResult{AttendanceDate: att.AttendanceDate}

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ins := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "attendance_student_id"},
				{Name: "attendance_course_id"},
				{Name: "attendance_date"},
				{Name: "attendance_type"},
			},
			DoNothing: true,
		}).Create(&att)
		if ins.Error != nil {
			return ins.Error
		}
		res.Created = ins.RowsAffected > 0

		// walau insert di-skip (sudah ada baris hari itu), flag tetap dinaikkan
		// supaya progress ini tidak dievaluasi ulang terus-menerus
		return tx.Table("video_progress").
			Where("video_progress_id = ?", in.ProgressID).
			Update("video_progress_has_triggered_attendance", true).Error
	})
	if err != nil {
		return RecordResult{}, err
	}
	return res, nil
}
