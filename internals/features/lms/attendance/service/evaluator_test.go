package service

import (
	"testing"
)

func ptrF(v float64) *float64 { return &v }

func TestEvaluateTrigger(t *testing.T) {
	tests := []struct {
		name          string
		in            TriggerInput
		wantTrigger   bool
		wantThreshold float64
	}{
		{
			name: "materi bukan pemicu",
			in: TriggerInput{
				MaterialIsAttendanceTrigger: false,
				DefaultThreshold:            80,
				WatchedPercentage:           100,
			},
			wantTrigger:   false,
			wantThreshold: 80,
		},
		{
			name: "sudah pernah trigger",
			in: TriggerInput{
				MaterialIsAttendanceTrigger: true,
				DefaultThreshold:            80,
				WatchedPercentage:           95,
				HasTriggeredAttendance:      true,
			},
			wantTrigger:   false,
			wantThreshold: 80,
		},
		{
			name: "di bawah ambang default",
			in: TriggerInput{
				MaterialIsAttendanceTrigger: true,
				DefaultThreshold:            80,
				WatchedPercentage:           79.99,
			},
			wantTrigger:   false,
			wantThreshold: 80,
		},
		{
			name: "tepat di ambang default",
			in: TriggerInput{
				MaterialIsAttendanceTrigger: true,
				DefaultThreshold:            80,
				WatchedPercentage:           80,
			},
			wantTrigger:   true,
			wantThreshold: 80,
		},
		{
			name: "override materi 70: 69 tidak lolos",
			in: TriggerInput{
				MaterialIsAttendanceTrigger: true,
				MaterialThreshold:           ptrF(70),
				DefaultThreshold:            80,
				WatchedPercentage:           69,
			},
			wantTrigger:   false,
			wantThreshold: 70,
		},
		{
			name: "override materi 70: 70 lolos",
			in: TriggerInput{
				MaterialIsAttendanceTrigger: true,
				MaterialThreshold:           ptrF(70),
				DefaultThreshold:            80,
				WatchedPercentage:           70,
			},
			wantTrigger:   true,
			wantThreshold: 70,
		},
		{
			name: "persentase turun setelah trigger tetap no-op",
			in: TriggerInput{
				MaterialIsAttendanceTrigger: true,
				DefaultThreshold:            80,
				WatchedPercentage:           30,
				HasTriggeredAttendance:      true,
			},
			wantTrigger:   false,
			wantThreshold: 80,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateTrigger(tt.in)
			if got.ShouldTrigger != tt.wantTrigger {
				t.Errorf("ShouldTrigger = %v, want %v (reason: %s)", got.ShouldTrigger, tt.wantTrigger, got.Reason)
			}
			if got.EffectiveThreshold != tt.wantThreshold {
				t.Errorf("EffectiveThreshold = %v, want %v", got.EffectiveThreshold, tt.wantThreshold)
			}
		})
	}
}

// Skenario spesifik: materi trigger ambang 80, laporan 45% → 82% → 95%.
// Hanya laporan kedua yang menghasilkan trigger.
func TestEvaluateTriggerScenario(t *testing.T) {
	base := TriggerInput{
		MaterialIsAttendanceTrigger: true,
		MaterialThreshold:           ptrF(80),
		DefaultThreshold:            80,
	}

	first := base
	first.WatchedPercentage = 45
	if EvaluateTrigger(first).ShouldTrigger {
		t.Fatal("45% tidak boleh trigger")
	}

	second := base
	second.WatchedPercentage = 82
	if !EvaluateTrigger(second).ShouldTrigger {
		t.Fatal("82% harus trigger")
	}

	// setelah trigger pertama flag naik; laporan 95% tidak boleh trigger lagi
	third := base
	third.WatchedPercentage = 95
	third.HasTriggeredAttendance = true
	if EvaluateTrigger(third).ShouldTrigger {
		t.Fatal("95% setelah trigger tidak boleh trigger kedua kali")
	}
}
