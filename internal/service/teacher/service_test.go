package teacher

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/homelesson/lms-backend-go/internal/domain/teacher"
	"github.com/homelesson/lms-backend-go/internal/pkg/database"
	"github.com/homelesson/lms-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDB *database.DB

func teacherTestInit(t *testing.T) {
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

func truncateTeacherTables(t *testing.T, ctx context.Context) {
	for _, table := range []string{"payment_history", "payroll", "attendance", "timetable", "teachers"} {
		_, err := testDB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err)
	}
}

func newTestTeacherService() teacher.TeacherService {
	return NewTeacherService(testDB, postgresql.NewTeacherRepository(testDB))
}

func TestTeacherService_CreateGetUpdateDelete(t *testing.T) {
	teacherTestInit(t)
	ctx := context.Background()
	truncateTeacherTables(t, ctx)

	svc := newTestTeacherService()

	created, err := svc.Create(ctx, teacher.CreateTeacherRequest{
		Name:               "Budi Santoso",
		Subjects:           []string{"Mathematics", "Science"},
		TeachingAllowance:  25000,
		TransportAllowance: 10000,
		Status:             "active",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Budi Santoso", got.Name)
	assert.Equal(t, []string{"Mathematics", "Science"}, got.Subjects)

	status := "on-leave"
	updated, err := svc.Update(ctx, teacher.UpdateTeacherRequest{ID: created.ID, Status: &status})
	require.NoError(t, err)
	assert.Equal(t, "on-leave", updated.Status)
	assert.Equal(t, int64(25000), updated.TeachingAllowance)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, teacher.ErrTeacherNotFound)
}

func TestTeacherService_Delete_CascadesDependentRows(t *testing.T) {
	teacherTestInit(t)
	ctx := context.Background()
	truncateTeacherTables(t, ctx)

	svc := newTestTeacherService()
	created, err := svc.Create(ctx, teacher.CreateTeacherRequest{
		Name:     "Cascade Teacher",
		Subjects: []string{"English"},
		Status:   "active",
	})
	require.NoError(t, err)

	var timetableID int64
	err = testDB.QueryRow(ctx, `
		INSERT INTO timetable (day_of_week, time_slot, teacher_id)
		VALUES (1, '08:00-09:00', $1)
		RETURNING id
	`, created.ID).Scan(&timetableID)
	require.NoError(t, err)

	_, err = testDB.Exec(ctx, `
		INSERT INTO attendance (teacher_id, timetable_id, week_number, year, day_of_week, status)
		VALUES ($1, $2, 10, 2026, 1, 'present')
	`, created.ID, timetableID)
	require.NoError(t, err)

	_, err = testDB.Exec(ctx, `
		INSERT INTO payroll (teacher_id, week_number, year, total_amount)
		VALUES ($1, 10, 2026, 32000)
	`, created.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	var count int
	err = testDB.QueryRow(ctx, `SELECT COUNT(*) FROM attendance WHERE teacher_id = $1`, created.ID).Scan(&count)
	require.NoError(t, err)
	assert.Zero(t, count)

	err = testDB.QueryRow(ctx, `SELECT COUNT(*) FROM payroll WHERE teacher_id = $1`, created.ID).Scan(&count)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestTeacherService_Delete_NotFound(t *testing.T) {
	teacherTestInit(t)
	ctx := context.Background()
	truncateTeacherTables(t, ctx)

	svc := newTestTeacherService()
	assert.ErrorIs(t, svc.Delete(ctx, 9999), teacher.ErrTeacherNotFound)
}
