package service

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	progressDTO "kampusku_backend/internals/features/lms/progress/dto"
)

func newMockGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
		Logger:                 gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

// Retry duplicate-key dibatasi: kalau baris kembar terus menghilang di antara
// reload dan create (delete yang balapan), upsert menyerah 503 setelah dua
// percobaan — bukan loop tanpa batas.
func TestUpsertProgressDuplicateRetryBounded(t *testing.T) {
	db, mock := newMockGorm(t)
	svc := NewProgressService(db)

	dup := &pq.Error{Code: "23505"}
	lookupSQL := `FROM "video_progress" WHERE video_progress_student_id`
	insertSQL := `INSERT INTO "video_progress"`

	// percobaan 1: belum ada baris, create kalah di unique index
	mock.ExpectQuery(lookupSQL).WillReturnRows(sqlmock.NewRows([]string{"video_progress_id"}))
	mock.ExpectQuery(insertSQL).WillReturnError(dup)
	// percobaan 2: baris sudah dihapus lagi, create kalah lagi → berhenti
	mock.ExpectQuery(lookupSQL).WillReturnRows(sqlmock.NewRows([]string{"video_progress_id"}))
	mock.ExpectQuery(insertSQL).WillReturnError(dup)

	req := progressDTO.ReportVideoProgressRequest{
		MaterialID:        uuid.New(),
		CurrentTime:       120,
		TotalDuration:     600,
		WatchedPercentage: 20,
	}

	_, err := svc.upsertProgress(context.Background(), uuid.New(), req, 80, time.Now())
	require.Error(t, err)

	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusServiceUnavailable, fe.Code)

	// kedua percobaan terpakai, tidak ada percobaan ketiga
	assert.NoError(t, mock.ExpectationsWereMet())
}
