package scheduler

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"kampusku_backend/internals/features/lms/attendance/service"

	"gorm.io/gorm"
)

// StartReconcileSweep menjalankan rekonsiliasi periodik sebagai jaring pengaman:
// toggle flag yang terlewat (atau insert yang gagal transient) tetap akan
// dibereskan tanpa perlu operator turun tangan.
func StartReconcileSweep(db *gorm.DB) {
	go func() {
		// Interval dari env (default: 6 jam)
		intervalHours := 6
		if val := os.Getenv("ATTENDANCE_SWEEP_INTERVAL_HOURS"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
				intervalHours = parsed
			}
		}

		reconciler := service.NewReconciler(db)

		for {
			log.Println("[SWEEP] Menjalankan rekonsiliasi absensi video...")

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
			summaries, err := reconciler.ReconcileAllTriggerMaterials(ctx)
			cancel()

			if err != nil {
				log.Printf("[SWEEP ERROR] Gagal ambil daftar materi: %v", err)
			} else if len(summaries) == 0 {
				log.Println("[SWEEP] Tidak ada completion menggantung")
			} else {
				for _, s := range summaries {
					log.Printf("[SWEEP] material=%s scanned=%d created=%d already=%d below=%d failed=%d",
						s.MaterialID, s.Scanned, s.Created, s.AlreadyPresent, s.BelowThreshold, s.Failed)
				}
			}

			time.Sleep(time.Duration(intervalHours) * time.Hour)
		}
	}()
}
