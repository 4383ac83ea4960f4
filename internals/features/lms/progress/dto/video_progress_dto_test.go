package dto

import (
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		in       ReportVideoProgressRequest
		wantPct  float64
		wantTime float64
	}{
		{
			name:     "nilai normal tidak berubah",
			in:       ReportVideoProgressRequest{CurrentTime: 540, WatchedPercentage: 45},
			wantPct:  45,
			wantTime: 540,
		},
		{
			name:     "persentase di atas 100 dikunci",
			in:       ReportVideoProgressRequest{CurrentTime: 1300, WatchedPercentage: 108.3},
			wantPct:  100,
			wantTime: 1300,
		},
		{
			name:     "nilai negatif jadi 0",
			in:       ReportVideoProgressRequest{CurrentTime: -5, WatchedPercentage: -1, WatchedSeconds: -10},
			wantPct:  0,
			wantTime: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.in.Clamp()
			if tt.in.WatchedPercentage != tt.wantPct {
				t.Errorf("WatchedPercentage = %v, want %v", tt.in.WatchedPercentage, tt.wantPct)
			}
			if tt.in.CurrentTime != tt.wantTime {
				t.Errorf("CurrentTime = %v, want %v", tt.in.CurrentTime, tt.wantTime)
			}
			if tt.in.WatchedSeconds < 0 {
				t.Errorf("WatchedSeconds masih negatif: %v", tt.in.WatchedSeconds)
			}
		})
	}
}
