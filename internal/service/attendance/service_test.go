package attendance

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/homelesson/lms-backend-go/internal/domain/attendance"
	"github.com/homelesson/lms-backend-go/internal/domain/teacher"
	"github.com/homelesson/lms-backend-go/internal/pkg/database"
	"github.com/homelesson/lms-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDB *database.DB

func attendanceTestInit(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	if testDB != nil {
		return
	}

	var err error
	testDB, err = database.NewPostgreSQLDB(dsn, database.PoolOptions{})
	require.NoError(t, err)
}

func truncateAttendanceTables(t *testing.T, ctx context.Context) {
	for _, table := range []string{"attendance", "timetable", "teachers"} {
		_, err := testDB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err)
	}
}

func createTestSlot(t *testing.T, ctx context.Context) (teacherID, timetableID int64) {
	err := testDB.QueryRow(ctx, `
		INSERT INTO teachers (name, subjects, status)
		VALUES ('Test Teacher', '{"English"}', 'active')
		RETURNING id
	`).Scan(&teacherID)
	require.NoError(t, err)

	err = testDB.QueryRow(ctx, `
		INSERT INTO timetable (day_of_week, time_slot, teacher_id)
		VALUES (1, '08:00-09:00', $1)
		RETURNING id
	`, teacherID).Scan(&timetableID)
	require.NoError(t, err)
	return teacherID, timetableID
}

func newTestAttendanceService() attendance.AttendanceService {
	return NewAttendanceService(
		testDB,
		postgresql.NewAttendanceRepository(testDB),
		postgresql.NewTeacherRepository(testDB),
	)
}

func TestAttendanceService_Mark_UpsertsInsteadOfDuplicating(t *testing.T) {
	attendanceTestInit(t)
	ctx := context.Background()
	truncateAttendanceTables(t, ctx)

	teacherID, timetableID := createTestSlot(t, ctx)
	svc := newTestAttendanceService()

	req := attendance.MarkAttendanceRequest{
		WeekNumber:  10,
		Year:        2026,
		DayOfWeek:   1,
		TimetableID: timetableID,
		TeacherID:   teacherID,
		Status:      "present",
	}

	first, err := svc.Mark(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "present", first.Status)

	req.Status = "late"
	second, err := svc.Mark(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "late", second.Status)

	records, err := svc.ListByWeek(ctx, 10, 2026)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestAttendanceService_Mark_UnknownTeacher(t *testing.T) {
	attendanceTestInit(t)
	ctx := context.Background()
	truncateAttendanceTables(t, ctx)

	svc := newTestAttendanceService()
	_, err := svc.Mark(ctx, attendance.MarkAttendanceRequest{
		WeekNumber:  10,
		Year:        2026,
		DayOfWeek:   1,
		TimetableID: 1,
		TeacherID:   9999,
		Status:      "present",
	})
	assert.ErrorIs(t, err, teacher.ErrTeacherNotFound)
}

func TestAttendanceService_WeeklySummary_IncludesTeachersWithoutRecords(t *testing.T) {
	attendanceTestInit(t)
	ctx := context.Background()
	truncateAttendanceTables(t, ctx)

	teacherID, timetableID := createTestSlot(t, ctx)

	var idleID int64
	err := testDB.QueryRow(ctx, `
		INSERT INTO teachers (name, subjects, status)
		VALUES ('Idle Teacher', '{"Science"}', 'active')
		RETURNING id
	`).Scan(&idleID)
	require.NoError(t, err)

	svc := newTestAttendanceService()
	_, err = svc.Mark(ctx, attendance.MarkAttendanceRequest{
		WeekNumber:  10,
		Year:        2026,
		DayOfWeek:   1,
		TimetableID: timetableID,
		TeacherID:   teacherID,
		Status:      "present",
	})
	require.NoError(t, err)

	summary, err := svc.WeeklySummary(ctx, 10, 2026)
	require.NoError(t, err)
	require.Len(t, summary, 2)

	byID := map[int64]attendance.WeeklySummaryRow{}
	for _, row := range summary {
		byID[row.TeacherID] = row
	}

	require.NotNil(t, byID[teacherID].Percentage)
	assert.Equal(t, 100, *byID[teacherID].Percentage)
	assert.Equal(t, 0, byID[idleID].TotalLessons)
	assert.Nil(t, byID[idleID].Percentage)
}
