// internals/features/lms/progress/service/progress_service.go
package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kampusku_backend/internals/configs"
	attService "kampusku_backend/internals/features/lms/attendance/service"
	materialModel "kampusku_backend/internals/features/lms/materials/model"
	progressDTO "kampusku_backend/internals/features/lms/progress/dto"
	progressModel "kampusku_backend/internals/features/lms/progress/model"
	helper "kampusku_backend/internals/helpers"
)

/* =========================
   Progress Recorder
========================= */

type ProgressService struct {
	DB       *gorm.DB
	Recorder *attService.Recorder
}

func NewProgressService(db *gorm.DB) *ProgressService {
	return &ProgressService{
		DB:       db,
		Recorder: attService.NewRecorder(db),
	}
}

// Hasil satu laporan progress. AttendanceError non-nil berarti posisi playback
// tersimpan tapi langkah absensi gagal transient — bukan alasan menolak laporan.
type ReportOutcome struct {
	Progress   *progressModel.VideoProgressModel `json:"progress"`
	Decision   attService.TriggerDecision        `json:"decision"`
	Attendance *attService.RecordResult          `json:"attendance,omitempty"`

	AttendanceError string `json:"attendance_error,omitempty"`
}

// Report menjalankan pipeline penuh: upsert progress → evaluasi ambang →
// catat absensi. Upsert commit duluan di transaksinya sendiri; kegagalan
// langkah absensi tidak pernah membatalkan penulisan posisi playback.
func (s *ProgressService) Report(ctx context.Context, studentID uuid.UUID, req progressDTO.ReportVideoProgressRequest) (*ReportOutcome, error) {
	// 1) Resolve materi (404 kalau tidak ada / bukan video trigger-able)
	var material materialModel.CourseMaterialModel
	if err := s.DB.WithContext(ctx).
		Where("course_material_id = ?", req.MaterialID).
		Take(&material).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Materi tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusServiceUnavailable, "Database sedang tidak tersedia")
	}

	// 2) Pastikan mahasiswa terdaftar di course pemilik materi
	var enrolled int64
	if err := s.DB.WithContext(ctx).
		Table("course_students").
		Where("course_student_course_id = ? AND course_student_student_id = ? AND course_student_deleted_at IS NULL",
			material.CourseMaterialCourseID, studentID).
		Count(&enrolled).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusServiceUnavailable, "Database sedang tidak tersedia")
	}
	if enrolled == 0 {
		return nil, fiber.NewError(fiber.StatusNotFound, "Mahasiswa tidak terdaftar di course ini")
	}

	threshold := material.EffectiveAttendanceThreshold(configs.DefaultAttendanceThreshold)
	now := time.Now()

	// 3) Upsert baris (student, material) — transaksi sendiri
	progress, err := s.upsertProgress(ctx, studentID, req, threshold, now)
	if err != nil {
		return nil, err
	}

	outcome := &ReportOutcome{Progress: progress}

	// 4) Evaluasi ambang (fungsi murni, tanpa side effect)
	outcome.Decision = attService.EvaluateTrigger(attService.TriggerInput{
		MaterialIsAttendanceTrigger: material.CourseMaterialIsAttendanceTrigger,
		MaterialThreshold:           material.CourseMaterialAttendanceThreshold,
		DefaultThreshold:            configs.DefaultAttendanceThreshold,
		WatchedPercentage:           progress.VideoProgressWatchedPercentage,
		HasTriggeredAttendance:      progress.VideoProgressHasTriggeredAttendance,
	})
	if !outcome.Decision.ShouldTrigger {
		return outcome, nil
	}

	// 5) Catat absensi (insert-if-absent atomik + naikkan flag)
	completedAt := now
	if progress.VideoProgressCompletedAt != nil {
		completedAt = *progress.VideoProgressCompletedAt
	}

	res, err := s.Recorder.RecordFromProgress(ctx, attService.RecordInput{
		ProgressID:    progress.VideoProgressID,
		StudentID:     studentID,
		CourseID:      material.CourseMaterialCourseID,
		MaterialID:    material.CourseMaterialID,
		MaterialTitle: material.CourseMaterialTitle,
		Percentage:    progress.VideoProgressWatchedPercentage,
		CompletedAt:   completedAt,
	})
	if err != nil {
		// jangan gagalkan laporan posisi; sweep periodik akan membereskan
		log.Printf("[PROGRESS] absensi gagal student=%s material=%s: %v", studentID, req.MaterialID, err)
		outcome.AttendanceError = "Pencatatan absensi tertunda, akan dicoba ulang otomatis"
		return outcome, nil
	}

	progress.VideoProgressHasTriggeredAttendance = true
	outcome.Attendance = &res
	return outcome, nil
}

// upsertProgress: create kalau baris (student, material) belum ada; kalau ada
// (termasuk kalah race di unique index) reload lalu update. Maksimal dua
// percobaan — create yang kalah race jatuh sekali ke jalur update; race kedua
// (baris sempat dihapus lagi) menyerah dengan 503, tidak retry tanpa batas.
func (s *ProgressService) upsertProgress(ctx context.Context, studentID uuid.UUID, req progressDTO.ReportVideoProgressRequest, threshold float64, now time.Time) (*progressModel.VideoProgressModel, error) {
	session := progressModel.WatchSession{
		StartedAt:   now,
		ReportedAt:  now,
		FromSeconds: req.CurrentTime,
		ToSeconds:   req.CurrentTime,
	}
	if req.SessionStartedAt != nil {
		session.StartedAt = *req.SessionStartedAt
	}

	for attempt := 0; attempt < 2; attempt++ {
		var progress progressModel.VideoProgressModel
		err := s.DB.WithContext(ctx).
			Where("video_progress_student_id = ? AND video_progress_material_id = ?", studentID, req.MaterialID).
			Take(&progress).Error

		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			progress = progressModel.VideoProgressModel{
				VideoProgressStudentID:  studentID,
				VideoProgressMaterialID: req.MaterialID,
			}
			progress.ApplyReport(req.CurrentTime, req.TotalDuration, req.WatchedPercentage, req.WatchedSeconds, threshold, now)
			if err := progress.AppendWatchSession(session); err != nil {
				return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mencatat sesi tonton")
			}
			if err := s.DB.WithContext(ctx).Create(&progress).Error; err != nil {
				if helper.IsDuplicateKey(err) {
					// kalah race dengan laporan kembar; reload lewat jalur update
					continue
				}
				return nil, fiber.NewError(fiber.StatusServiceUnavailable, "Database sedang tidak tersedia")
			}
			return &progress, nil

		case err != nil:
			return nil, fiber.NewError(fiber.StatusServiceUnavailable, "Database sedang tidak tersedia")
		}

		progress.ApplyReport(req.CurrentTime, req.TotalDuration, req.WatchedPercentage, req.WatchedSeconds, threshold, now)
		if err := progress.AppendWatchSession(session); err != nil {
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mencatat sesi tonton")
		}
		if err := s.DB.WithContext(ctx).Save(&progress).Error; err != nil {
			return nil, fiber.NewError(fiber.StatusServiceUnavailable, "Database sedang tidak tersedia")
		}
		return &progress, nil
	}

	return nil, fiber.NewError(fiber.StatusServiceUnavailable, "Database sedang tidak tersedia")
}
