// cmd/attendancerepair/main.go
//
// Job offline untuk membereskan absensi video yang bolong (disaster recovery).
// Jalur normal sudah rekonsiliasi otomatis saat flag materi dinyalakan + sweep
// periodik; binary ini untuk operator kalau dua-duanya mati.
//
// Pakai:
//
//	go run ./cmd/attendancerepair -material <uuid>
//	go run ./cmd/attendancerepair -all
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/google/uuid"

	"kampusku_backend/internals/configs"
	attService "kampusku_backend/internals/features/lms/attendance/service"
)

func main() {
	materialFlag := flag.String("material", "", "UUID materi yang mau direkonsiliasi")
	allFlag := flag.Bool("all", false, "rekonsiliasi semua materi pemicu yang punya completion menggantung")
	flag.Parse()

	if *materialFlag == "" && !*allFlag {
		log.Fatal("❌ Wajib pilih -material <uuid> atau -all")
	}

	configs.LoadEnv()
	db := configs.InitJobDB()

	reconciler := attService.NewReconciler(db)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	if *allFlag {
		summaries, err := reconciler.ReconcileAllTriggerMaterials(ctx)
		if err != nil {
			log.Fatalf("❌ Rekonsiliasi gagal: %v", err)
		}
		for _, s := range summaries {
			printSummary(s)
		}
		log.Printf("✅ Selesai: %d materi diproses", len(summaries))
		return
	}

	materialID, err := uuid.Parse(*materialFlag)
	if err != nil {
		log.Fatalf("❌ -material bukan UUID valid: %v", err)
	}

	sum, err := reconciler.ReconcileMaterial(ctx, materialID)
	if err != nil {
		log.Fatalf("❌ Rekonsiliasi gagal: %v", err)
	}
	printSummary(sum)
	log.Println("✅ Selesai.")
}

func printSummary(s attService.ReconcileSummary) {
	log.Printf("[REPAIR] material=%s scanned=%d created=%d already=%d below=%d failed=%d",
		s.MaterialID, s.Scanned, s.Created, s.AlreadyPresent, s.BelowThreshold, s.Failed)
}
