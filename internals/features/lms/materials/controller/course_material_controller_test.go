package controller

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
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

// Toggle trigger yang keburu dimatikan lagi oleh update lain: rekonsiliasi
// dilewati dan response bilang begitu — bukan summary kosong seolah jalan.
func TestUpdateTriggerToggleRaceReportsSkipped(t *testing.T) {
	db, mock := newMockGorm(t)
	ctl := NewCourseMaterialController(db)

	app := fiber.New()
	app.Patch("/materials/:id", ctl.Update)

	materialID := uuid.New()

	// load materi: flag masih false, jadi PATCH ini terdeteksi sebagai toggle naik
	mock.ExpectQuery(`FROM "course_materials"`).WillReturnRows(
		sqlmock.NewRows([]string{
			"course_material_id", "course_material_course_id",
			"course_material_title", "course_material_kind",
			"course_material_is_attendance_trigger",
		}).AddRow(materialID, uuid.New(), "Kalkulus I", "video", false))

	mock.ExpectExec(`UPDATE "course_materials" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	// rekonsiliasi membaca ulang flag dan mendapatinya sudah false lagi
	mock.ExpectQuery(`SELECT course_material_is_attendance_trigger FROM "course_materials"`).
		WillReturnRows(sqlmock.NewRows([]string{"course_material_is_attendance_trigger"}).
			AddRow(false))

	req := httptest.NewRequest("PATCH", "/materials/"+materialID.String(),
		strings.NewReader(`{"is_attendance_trigger": true}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "reconcile_skipped")
	assert.NotContains(t, string(body), `"reconcile"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}
