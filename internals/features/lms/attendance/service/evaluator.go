// internals/features/lms/attendance/service/evaluator.go
package service

/* =========================
   Threshold Evaluator
========================= */

// TriggerInput: snapshot progress + konfigurasi materi. Semua nilai sudah dibaca
// dari DB oleh pemanggil; evaluator sendiri tidak menyentuh storage sama sekali.
type TriggerInput struct {
	MaterialIsAttendanceTrigger bool
	MaterialThreshold           *float64 // override per materi, nil = pakai default
	DefaultThreshold            float64  // dari configs (ATTENDANCE_DEFAULT_THRESHOLD)

	WatchedPercentage      float64
	HasTriggeredAttendance bool
}

type TriggerDecision struct {
	ShouldTrigger      bool    `json:"should_trigger"`
	EffectiveThreshold float64 `json:"effective_threshold"`
	Reason             string  `json:"reason"`
}

// EvaluateTrigger memutuskan apakah satu laporan tonton menghasilkan absensi.
// Trigger hanya ketika: materi diflag, belum pernah trigger, dan persentase
// mencapai ambang efektif. Begitu pernah trigger status tidak pernah dicabut
// walau persentase turun (completion monoton).
func EvaluateTrigger(in TriggerInput) TriggerDecision {
	threshold := in.DefaultThreshold
	if in.MaterialThreshold != nil {
		threshold = *in.MaterialThreshold
	}

	d := TriggerDecision{EffectiveThreshold: threshold}

	switch {
	case !in.MaterialIsAttendanceTrigger:
		d.Reason = "materi bukan pemicu absensi"
	case in.HasTriggeredAttendance:
		d.Reason = "absensi sudah pernah ter-trigger"
	case in.WatchedPercentage < threshold:
		d.Reason = "persentase tonton di bawah ambang"
	default:
		d.ShouldTrigger = true
		d.Reason = "ambang tercapai"
	}
	return d
}
