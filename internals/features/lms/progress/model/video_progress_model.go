// internals/features/lms/progress/model/video_progress_model.go
package model

import (
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Satu interval playback kontinu yang dilaporkan player.
type WatchSession struct {
	StartedAt   time.Time `json:"started_at"`
	ReportedAt  time.Time `json:"reported_at"`
	FromSeconds float64   `json:"from_seconds"`
	ToSeconds   float64   `json:"to_seconds"`
}

// Log sesi dibatasi supaya kolom jsonb tidak tumbuh tanpa batas;
// sesi paling lama dibuang duluan.
const MaxWatchSessions = 50

// Satu baris per (student, material) — unik di DB.
type VideoProgressModel struct {
	// PK
	VideoProgressID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:video_progress_id" json:"video_progress_id"`

	// FKs (unik berpasangan)
	VideoProgressStudentID  uuid.UUID `gorm:"type:uuid;not null;column:video_progress_student_id;uniqueIndex:uq_video_progress_pair;index:idx_video_progress_student" json:"video_progress_student_id"`
	VideoProgressMaterialID uuid.UUID `gorm:"type:uuid;not null;column:video_progress_material_id;uniqueIndex:uq_video_progress_pair;index:idx_video_progress_material" json:"video_progress_material_id"`

	// Posisi playback terakhir
	VideoProgressCurrentTimeSeconds   float64 `gorm:"type:numeric(10,2);not null;default:0;column:video_progress_current_time_seconds" json:"video_progress_current_time_seconds"`
	VideoProgressTotalDurationSeconds float64 `gorm:"type:numeric(10,2);not null;default:0;column:video_progress_total_duration_seconds" json:"video_progress_total_duration_seconds"`
	VideoProgressWatchedPercentage    float64 `gorm:"type:numeric(5,2);not null;default:0;column:video_progress_watched_percentage" json:"video_progress_watched_percentage"` // DB: CHECK 0..100
	VideoProgressWatchedSeconds       float64 `gorm:"type:numeric(10,2);not null;default:0;column:video_progress_watched_seconds" json:"video_progress_watched_seconds"`

	// Completion monoton: sekali true tidak pernah turun, completed_at tidak ditimpa
	VideoProgressIsCompleted bool       `gorm:"not null;default:false;column:video_progress_is_completed;index:idx_video_progress_completed" json:"video_progress_is_completed"`
	VideoProgressCompletedAt *time.Time `gorm:"column:video_progress_completed_at" json:"video_progress_completed_at,omitempty"`

	// Guard aplikasi; penegakan at-most-one sebenarnya ada di unique index attendances
	VideoProgressHasTriggeredAttendance bool `gorm:"not null;default:false;column:video_progress_has_triggered_attendance" json:"video_progress_has_triggered_attendance"`

	// Log sesi tonton (maksimal MaxWatchSessions entri)
	VideoProgressWatchSessions datatypes.JSON `gorm:"type:jsonb;column:video_progress_watch_sessions" json:"video_progress_watch_sessions,omitempty"`

	// Timestamps
	VideoProgressCreatedAt time.Time      `gorm:"column:video_progress_created_at;autoCreateTime" json:"video_progress_created_at"`
	VideoProgressUpdatedAt time.Time      `gorm:"column:video_progress_updated_at;autoUpdateTime" json:"video_progress_updated_at"`
	VideoProgressDeletedAt gorm.DeletedAt `gorm:"column:video_progress_deleted_at;index" json:"video_progress_deleted_at,omitempty"`
}

func (VideoProgressModel) TableName() string {
	return "video_progress"
}

// ApplyReport menimpa posisi playback dengan laporan terbaru dan menaikkan
// is_completed kalau ambang tercapai. Monoton: laporan dengan persentase lebih
// rendah tidak pernah menurunkan is_completed maupun menimpa completed_at.
func (m *VideoProgressModel) ApplyReport(currentTime, totalDuration, percentage, watchedSeconds, completionThreshold float64, now time.Time) {
	m.VideoProgressCurrentTimeSeconds = currentTime
	if totalDuration > 0 {
		m.VideoProgressTotalDurationSeconds = totalDuration
	}
	m.VideoProgressWatchedPercentage = percentage
	if watchedSeconds > m.VideoProgressWatchedSeconds {
		m.VideoProgressWatchedSeconds = watchedSeconds
	}

	if !m.VideoProgressIsCompleted && percentage >= completionThreshold {
		m.VideoProgressIsCompleted = true
		if m.VideoProgressCompletedAt == nil {
			t := now
			m.VideoProgressCompletedAt = &t
		}
	}
}

// AppendWatchSession menambah satu sesi ke log jsonb, membuang yang terlama
// kalau sudah melewati MaxWatchSessions. Log korup di-reset, bukan bikin gagal.
func (m *VideoProgressModel) AppendWatchSession(s WatchSession) error {
	var sessions []WatchSession
	if len(m.VideoProgressWatchSessions) > 0 {
		if err := sonic.Unmarshal(m.VideoProgressWatchSessions, &sessions); err != nil {
			sessions = nil
		}
	}

	sessions = append(sessions, s)
	if len(sessions) > MaxWatchSessions {
		sessions = sessions[len(sessions)-MaxWatchSessions:]
	}

	raw, err := sonic.Marshal(sessions)
	if err != nil {
		return err
	}
	m.VideoProgressWatchSessions = datatypes.JSON(raw)
	return nil
}

// WatchSessions mendecode log sesi (helper untuk response & test).
func (m *VideoProgressModel) WatchSessions() []WatchSession {
	var sessions []WatchSession
	if len(m.VideoProgressWatchSessions) > 0 {
		_ = sonic.Unmarshal(m.VideoProgressWatchSessions, &sessions)
	}
	return sessions
}
