// internals/features/lms/progress/dto/video_progress_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

/* =========================
   Requests
========================= */

// Laporan periodik dari player (tiap 10-30 detik + saat pause/ended).
type ReportVideoProgressRequest struct {
	MaterialID        uuid.UUID `json:"material_id" validate:"required"`
	CurrentTime       float64   `json:"current_time" validate:"gte=0"`
	TotalDuration     float64   `json:"total_duration" validate:"omitempty,gt=0"`
	WatchedPercentage float64   `json:"watched_percentage"`
	WatchedSeconds    float64   `json:"watched_seconds" validate:"gte=0"`

	// Awal sesi playback yang sedang berjalan (opsional, default = sekarang)
	SessionStartedAt *time.Time `json:"session_started_at"`
}

// Clamp menormalkan nilai dari client: persentase dikunci ke [0,100],
// angka negatif jadi 0. Player liar tidak boleh merusak data.
func (r *ReportVideoProgressRequest) Clamp() {
	if r.WatchedPercentage < 0 {
		r.WatchedPercentage = 0
	}
	if r.WatchedPercentage > 100 {
		r.WatchedPercentage = 100
	}
	if r.CurrentTime < 0 {
		r.CurrentTime = 0
	}
	if r.WatchedSeconds < 0 {
		r.WatchedSeconds = 0
	}
	if r.TotalDuration < 0 {
		r.TotalDuration = 0
	}
}
