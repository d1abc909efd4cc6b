package timetable

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/homelesson/lms-backend-go/internal/domain/timetable"
	"github.com/homelesson/lms-backend-go/internal/pkg/database"
	"github.com/homelesson/lms-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistinctDays(t *testing.T) {
	req := timetable.ReplaceRequest{
		{DayOfWeek: 1, TimeSlot: "08:00-09:00"},
		{DayOfWeek: 3, TimeSlot: "08:00-09:00"},
		{DayOfWeek: 1, TimeSlot: "09:00-10:00"},
		{DayOfWeek: 3, TimeSlot: "09:00-10:00"},
	}

	assert.Equal(t, []int{1, 3}, distinctDays(req))
	assert.Nil(t, distinctDays(timetable.ReplaceRequest{}))
}

func TestReplaceRequest_Validate(t *testing.T) {
	invalid := timetable.ReplaceRequest{
		{DayOfWeek: 9, TimeSlot: "08:00-09:00"},
		{DayOfWeek: 2, TimeSlot: ""},
	}
	err := invalid.Validate()
	require.Error(t, err)

	valid := timetable.ReplaceRequest{
		{DayOfWeek: 0, TimeSlot: "08:00-09:00"},
	}
	assert.NoError(t, valid.Validate())
}

// ---- integration tests below; they need a migrated test database ----

var testDB *database.DB

func timetableTestInit(t *testing.T) {
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

func truncateTimetableTables(t *testing.T, ctx context.Context) {
	for _, table := range []string{"attendance", "timetable", "teachers", "subjects"} {
		_, err := testDB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err)
	}
}

func newTestTimetableService() timetable.TimetableService {
	return NewTimetableService(testDB, postgresql.NewTimetableRepository(testDB))
}

func TestTimetableService_Replace_OnlyTouchesMentionedDays(t *testing.T) {
	timetableTestInit(t)
	ctx := context.Background()
	truncateTimetableTables(t, ctx)

	svc := newTestTimetableService()

	// Seed Monday and Wednesday.
	_, err := svc.Replace(ctx, timetable.ReplaceRequest{
		{DayOfWeek: 1, TimeSlot: "08:00-09:00"},
		{DayOfWeek: 3, TimeSlot: "08:00-09:00"},
	})
	require.NoError(t, err)

	// Replacing Monday alone must leave Wednesday in place.
	_, err = svc.Replace(ctx, timetable.ReplaceRequest{
		{DayOfWeek: 1, TimeSlot: "10:00-11:00"},
		{DayOfWeek: 1, TimeSlot: "11:00-12:00"},
	})
	require.NoError(t, err)

	monday, err := svc.ByDay(ctx, 1)
	require.NoError(t, err)
	require.Len(t, monday, 2)
	assert.Equal(t, "10:00-11:00", monday[0].TimeSlot)

	wednesday, err := svc.ByDay(ctx, 3)
	require.NoError(t, err)
	require.Len(t, wednesday, 1)
	assert.Equal(t, "08:00-09:00", wednesday[0].TimeSlot)
}

func TestTimetableService_Replace_EmptyBatchIsNoOp(t *testing.T) {
	timetableTestInit(t)
	ctx := context.Background()
	truncateTimetableTables(t, ctx)

	svc := newTestTimetableService()

	_, err := svc.Replace(ctx, timetable.ReplaceRequest{
		{DayOfWeek: 2, TimeSlot: "08:00-09:00"},
	})
	require.NoError(t, err)

	result, err := svc.Replace(ctx, timetable.ReplaceRequest{})
	require.NoError(t, err)
	assert.Empty(t, result)

	tuesday, err := svc.ByDay(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, tuesday, 1)
}

func TestTimetableService_Statistics_ExcludesBreaks(t *testing.T) {
	timetableTestInit(t)
	ctx := context.Background()
	truncateTimetableTables(t, ctx)

	svc := newTestTimetableService()

	isBreak := true
	desc := "Lunch"
	_, err := svc.Replace(ctx, timetable.ReplaceRequest{
		{DayOfWeek: 1, TimeSlot: "08:00-09:00"},
		{DayOfWeek: 1, TimeSlot: "12:00-13:00", IsBreak: &isBreak, BreakDescription: &desc},
		{DayOfWeek: 2, TimeSlot: "08:00-09:00"},
	})
	require.NoError(t, err)

	stats, err := svc.Statistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalLessons)
	assert.Equal(t, map[int]int{1: 1, 2: 1}, stats.LessonsPerDay)
}
