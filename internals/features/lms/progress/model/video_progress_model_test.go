package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestApplyReportCompletion(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	var m VideoProgressModel

	// 45%: belum selesai
	m.ApplyReport(540, 1200, 45, 540, 80, now)
	assert.False(t, m.VideoProgressIsCompleted)
	assert.Nil(t, m.VideoProgressCompletedAt)

	// 82%: selesai, completed_at distempel
	later := now.Add(10 * time.Minute)
	m.ApplyReport(984, 1200, 82, 984, 80, later)
	assert.True(t, m.VideoProgressIsCompleted)
	require.NotNil(t, m.VideoProgressCompletedAt)
	assert.Equal(t, later, *m.VideoProgressCompletedAt)

	// 95%: completed_at TIDAK ditimpa
	evenLater := now.Add(20 * time.Minute)
	m.ApplyReport(1140, 1200, 95, 1140, 80, evenLater)
	assert.True(t, m.VideoProgressIsCompleted)
	assert.Equal(t, later, *m.VideoProgressCompletedAt)
}

// Monoton: laporan dengan persentase lebih rendah (seek mundur / re-watch)
// tidak pernah menurunkan is_completed atau menghapus completed_at.
func TestApplyReportMonotonicCompletion(t *testing.T) {
	now := time.Now()
	var m VideoProgressModel

	m.ApplyReport(984, 1200, 82, 984, 80, now)
	require.True(t, m.VideoProgressIsCompleted)
	stamped := *m.VideoProgressCompletedAt

	m.ApplyReport(120, 1200, 10, 984, 80, now.Add(time.Hour))
	assert.True(t, m.VideoProgressIsCompleted, "is_completed tidak boleh turun")
	assert.Equal(t, stamped, *m.VideoProgressCompletedAt)
	// posisi playback tetap mengikuti laporan terakhir
	assert.Equal(t, float64(120), m.VideoProgressCurrentTimeSeconds)
	assert.Equal(t, float64(10), m.VideoProgressWatchedPercentage)
}

func TestApplyReportWatchedSecondsNeverShrinks(t *testing.T) {
	now := time.Now()
	var m VideoProgressModel

	m.ApplyReport(600, 1200, 50, 600, 80, now)
	m.ApplyReport(300, 1200, 25, 300, 80, now)

	assert.Equal(t, float64(600), m.VideoProgressWatchedSeconds)
}

func TestApplyReportKeepsKnownDuration(t *testing.T) {
	now := time.Now()
	var m VideoProgressModel

	m.ApplyReport(100, 1200, 8, 100, 80, now)
	// laporan tanpa durasi (0) tidak menghapus durasi yang sudah diketahui
	m.ApplyReport(150, 0, 12, 150, 80, now)

	assert.Equal(t, float64(1200), m.VideoProgressTotalDurationSeconds)
}

func TestAppendWatchSessionCap(t *testing.T) {
	var m VideoProgressModel
	start := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)

	for i := 0; i < MaxWatchSessions+10; i++ {
		err := m.AppendWatchSession(WatchSession{
			StartedAt:   start.Add(time.Duration(i) * time.Minute),
			ReportedAt:  start.Add(time.Duration(i) * time.Minute),
			FromSeconds: float64(i),
			ToSeconds:   float64(i + 30),
		})
		require.NoError(t, err)
	}

	sessions := m.WatchSessions()
	require.Len(t, sessions, MaxWatchSessions)
	// yang terlama dibuang: entri pertama sekarang sesi ke-10
	assert.Equal(t, float64(10), sessions[0].FromSeconds)
	assert.Equal(t, float64(MaxWatchSessions+9), sessions[len(sessions)-1].FromSeconds)
}

func TestAppendWatchSessionResetsCorruptLog(t *testing.T) {
	m := VideoProgressModel{
		VideoProgressWatchSessions: datatypes.JSON([]byte(`{bukan array`)),
	}

	err := m.AppendWatchSession(WatchSession{FromSeconds: 1, ToSeconds: 2})
	require.NoError(t, err)
	require.Len(t, m.WatchSessions(), 1)
}
