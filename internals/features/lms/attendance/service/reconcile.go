// internals/features/lms/attendance/service/reconcile.go
package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kampusku_backend/internals/configs"
)

/* =========================
   Reconcile / Backfill
========================= */

// Reconciler membereskan progress yang selesai sebelum flag pemicu dinyalakan
// (gap toggle-after-completion). Dipanggil dari tiga tempat: controller materi
// saat flag naik, sweep periodik, dan binary cmd/attendancerepair.
type Reconciler struct {
	DB       *gorm.DB
	Recorder *Recorder
}

func NewReconciler(db *gorm.DB) *Reconciler {
	return &Reconciler{DB: db, Recorder: NewRecorder(db)}
}

type ReconcileSummary struct {
	MaterialID     uuid.UUID `json:"material_id"`
	Scanned        int       `json:"scanned"`
	Created        int       `json:"created"`
	AlreadyPresent int       `json:"already_present"`
	BelowThreshold int       `json:"below_threshold"`
	Failed         int       `json:"failed"`
}

var ErrMaterialNotTrigger = errors.New("materi bukan pemicu absensi")

// baris hasil join video_progress × course_materials
type reconcileRow struct {
	ProgressID  uuid.UUID  `gorm:"column:video_progress_id"`
	StudentID   uuid.UUID  `gorm:"column:video_progress_student_id"`
	Percentage  float64    `gorm:"column:video_progress_watched_percentage"`
	CompletedAt *time.Time `gorm:"column:video_progress_completed_at"`

	CourseID      uuid.UUID `gorm:"column:course_material_course_id"`
	MaterialTitle string    `gorm:"column:course_material_title"`
	Threshold     *float64  `gorm:"column:course_material_attendance_threshold"`
}

// ReconcileMaterial scan semua progress selesai-tapi-belum-trigger untuk satu
// materi dan menjalankan insert-if-absent yang sama dengan jalur live. Aman
// dijalankan berulang: existence di-enforce unique index, flag naik sekali.
func (r *Reconciler) ReconcileMaterial(ctx context.Context, materialID uuid.UUID) (ReconcileSummary, error) {
	sum := ReconcileSummary{MaterialID: materialID}

	var mat struct {
		IsTrigger bool `gorm:"column:course_material_is_attendance_trigger"`
	}
	if err := r.DB.WithContext(ctx).
		Table("course_materials").
		Select("course_material_is_attendance_trigger").
		Where("course_material_id = ? AND course_material_deleted_at IS NULL", materialID).
		Take(&mat).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return sum, gorm.ErrRecordNotFound
		}
		return sum, err
	}
	if !mat.IsTrigger {
		return sum, ErrMaterialNotTrigger
	}

	var rows []reconcileRow
	if err := r.DB.WithContext(ctx).
		Table("video_progress").
		Select(`video_progress_id, video_progress_student_id,
		        video_progress_watched_percentage, video_progress_completed_at,
		        course_material_course_id, course_material_title,
		        course_material_attendance_threshold`).
		Joins("JOIN course_materials ON course_material_id = video_progress_material_id").
		Where("video_progress_material_id = ?", materialID).
		Where("video_progress_is_completed = TRUE").
		Where("video_progress_has_triggered_attendance = FALSE").
		Find(&rows).Error; err != nil {
		return sum, err
	}

	for _, row := range rows {
		sum.Scanned++

		decision := EvaluateTrigger(TriggerInput{
			MaterialIsAttendanceTrigger: true,
			MaterialThreshold:           row.Threshold,
			DefaultThreshold:            configs.DefaultAttendanceThreshold,
			WatchedPercentage:           row.Percentage,
			HasTriggeredAttendance:      false,
		})
		if !decision.ShouldTrigger {
			sum.BelowThreshold++
			continue
		}

		completedAt := time.Now()
		if row.CompletedAt != nil {
			completedAt = *row.CompletedAt
		}

		res, err := r.Recorder.RecordFromProgress(ctx, RecordInput{
			ProgressID:    row.ProgressID,
			StudentID:     row.StudentID,
			CourseID:      row.CourseID,
			MaterialID:    materialID,
			MaterialTitle: row.MaterialTitle,
			Percentage:    row.Percentage,
			CompletedAt:   completedAt,
		})
		if err != nil {
			sum.Failed++
			log.Printf("[RECONCILE] material=%s student=%s err=%v", materialID, row.StudentID, err)
			continue
		}

		// ringkasan per mahasiswa: sebelum (belum trigger) → sesudah
		if res.Created {
			sum.Created++
			log.Printf("[RECONCILE] material=%s student=%s %.0f%% → absensi %s dibuat",
				materialID, row.StudentID, row.Percentage, res.AttendanceDate.Format("2006-01-02"))
		} else {
			sum.AlreadyPresent++
			log.Printf("[RECONCILE] material=%s student=%s %.0f%% → baris %s sudah ada, flag dinaikkan",
				materialID, row.StudentID, row.Percentage, res.AttendanceDate.Format("2006-01-02"))
		}
	}

	return sum, nil
}

// ReconcileAllTriggerMaterials dipakai sweep periodik: cari materi pemicu yang
// masih punya completion menggantung lalu rekonsiliasi satu per satu.
func (r *Reconciler) ReconcileAllTriggerMaterials(ctx context.Context) ([]ReconcileSummary, error) {
	var ids []uuid.UUID
	if err := r.DB.WithContext(ctx).
		Table("course_materials").
		Where("course_material_is_attendance_trigger = TRUE").
		Where("course_material_deleted_at IS NULL").
		Where(`EXISTS (SELECT 1 FROM video_progress
		         WHERE video_progress_material_id = course_material_id
		           AND video_progress_is_completed = TRUE
		           AND video_progress_has_triggered_attendance = FALSE)`).
		Pluck("course_material_id", &ids).Error; err != nil {
		return nil, err
	}

	summaries := make([]ReconcileSummary, 0, len(ids))
	for _, id := range ids {
		sum, err := r.ReconcileMaterial(ctx, id)
		if err != nil {
			log.Printf("[RECONCILE] material=%s gagal: %v", id, err)
			continue
		}
		summaries = append(summaries, sum)
	}
	return summaries, nil
}
