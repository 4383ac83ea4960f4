package model

import (
	"testing"
)

func TestEffectiveAttendanceThreshold(t *testing.T) {
	override := 70.0

	tests := []struct {
		name string
		m    CourseMaterialModel
		want float64
	}{
		{name: "tanpa override pakai default global", m: CourseMaterialModel{}, want: 80},
		{name: "override per materi menang", m: CourseMaterialModel{CourseMaterialAttendanceThreshold: &override}, want: 70},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.EffectiveAttendanceThreshold(80); got != tt.want {
				t.Errorf("EffectiveAttendanceThreshold() = %v, want %v", got, tt.want)
			}
		})
	}
}
