package service

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// newMockGorm: gorm di atas driver mock, tanpa Postgres hidup.
// SkipDefaultTransaction supaya urutan statement-nya deterministik;
// transaksi eksplisit (recorder) tetap Begin/Commit sendiri.
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

const (
	flagCheckSQL  = `SELECT course_material_is_attendance_trigger FROM "course_materials"`
	candidatesSQL = `JOIN course_materials ON course_material_id = video_progress_material_id`
	insertSQL     = `INSERT INTO "attendances"`
	raiseFlagSQL  = `UPDATE "video_progress" SET "video_progress_has_triggered_attendance"`
)

var candidateCols = []string{
	"video_progress_id", "video_progress_student_id",
	"video_progress_watched_percentage", "video_progress_completed_at",
	"course_material_course_id", "course_material_title",
	"course_material_attendance_threshold",
}

func expectTriggerFlag(mock sqlmock.Sqlmock, isTrigger bool) {
	mock.ExpectQuery(flagCheckSQL).WillReturnRows(
		sqlmock.NewRows([]string{"course_material_is_attendance_trigger"}).AddRow(isTrigger))
}

// Rekonsiliasi harus idempoten: run kedua untuk completion yang sama tidak
// boleh menambah baris absensi — insert-nya kalah di unique index dan
// dihitung sebagai already_present, bukan created.
func TestReconcileMaterialIdempotent(t *testing.T) {
	db, mock := newMockGorm(t)
	rec := NewReconciler(db)

	materialID := uuid.New()
	courseID := uuid.New()
	progressID := uuid.New()
	studentID := uuid.New()
	slowProgressID := uuid.New()
	slowStudentID := uuid.New()
	completedAt := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)

	// ── Run 1: satu completion 95% (dibuat), satu 40% (di bawah ambang) ──
	expectTriggerFlag(mock, true)
	mock.ExpectQuery(candidatesSQL).WillReturnRows(
		sqlmock.NewRows(candidateCols).
			AddRow(progressID, studentID, 95.0, completedAt, courseID, "Kalkulus I", nil).
			AddRow(slowProgressID, slowStudentID, 40.0, nil, courseID, "Kalkulus I", nil))
	mock.ExpectBegin()
	mock.ExpectQuery(insertSQL).WillReturnRows(
		sqlmock.NewRows([]string{"attendance_id"}).AddRow(uuid.New()))
	mock.ExpectExec(raiseFlagSQL).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	sum, err := rec.ReconcileMaterial(context.Background(), materialID)
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Scanned)
	assert.Equal(t, 1, sum.Created)
	assert.Equal(t, 0, sum.AlreadyPresent)
	assert.Equal(t, 1, sum.BelowThreshold)
	assert.Equal(t, 0, sum.Failed)

	// ── Run 2: baris absensi sudah ada tapi flag belum naik (crash di antara
	// insert dan update) — ON CONFLICT DO NOTHING tidak mengembalikan baris,
	// flag tetap dinaikkan ──
	expectTriggerFlag(mock, true)
	mock.ExpectQuery(candidatesSQL).WillReturnRows(
		sqlmock.NewRows(candidateCols).
			AddRow(progressID, studentID, 95.0, completedAt, courseID, "Kalkulus I", nil))
	mock.ExpectBegin()
	mock.ExpectQuery(insertSQL).WillReturnRows(sqlmock.NewRows([]string{"attendance_id"}))
	mock.ExpectExec(raiseFlagSQL).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	sum, err = rec.ReconcileMaterial(context.Background(), materialID)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Scanned)
	assert.Equal(t, 0, sum.Created, "run kedua tidak boleh membuat baris baru")
	assert.Equal(t, 1, sum.AlreadyPresent)

	// ── Run 3: semua flag sudah naik, tidak ada kandidat, tidak ada write ──
	expectTriggerFlag(mock, true)
	mock.ExpectQuery(candidatesSQL).WillReturnRows(sqlmock.NewRows(candidateCols))

	sum, err = rec.ReconcileMaterial(context.Background(), materialID)
	require.NoError(t, err)
	assert.Equal(t, 0, sum.Scanned)
	assert.Equal(t, 0, sum.Created)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReconcileMaterialNotTrigger(t *testing.T) {
	db, mock := newMockGorm(t)
	rec := NewReconciler(db)

	expectTriggerFlag(mock, false)

	_, err := rec.ReconcileMaterial(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrMaterialNotTrigger)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReconcileMaterialNotFound(t *testing.T) {
	db, mock := newMockGorm(t)
	rec := NewReconciler(db)

	mock.ExpectQuery(flagCheckSQL).WillReturnRows(
		sqlmock.NewRows([]string{"course_material_is_attendance_trigger"}))

	_, err := rec.ReconcileMaterial(context.Background(), uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// RecordFromProgress: insert yang kalah di unique index bukan error —
// Created false, flag progress tetap dinaikkan dalam transaksi yang sama.
func TestRecordFromProgressConflictIgnored(t *testing.T) {
	db, mock := newMockGorm(t)
	rec := NewRecorder(db)

	in := RecordInput{
		ProgressID:    uuid.New(),
		StudentID:     uuid.New(),
		CourseID:      uuid.New(),
		MaterialID:    uuid.New(),
		MaterialTitle: "Kalkulus I",
		Percentage:    91.5,
		CompletedAt:   time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC),
	}

	mock.ExpectBegin()
	mock.ExpectQuery(insertSQL).WillReturnRows(sqlmock.NewRows([]string{"attendance_id"}))
	mock.ExpectExec(raiseFlagSQL).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	res, err := rec.RecordFromProgress(context.Background(), in)
	require.NoError(t, err)
	assert.False(t, res.Created)
	assert.Equal(t, AttendanceDateFor(in.CompletedAt), res.AttendanceDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}
