package payroll

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/homelesson/lms-backend-go/internal/domain/payroll"
	"github.com/homelesson/lms-backend-go/internal/domain/settings"
	"github.com/homelesson/lms-backend-go/internal/pkg/database"
	"github.com/homelesson/lms-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeAllowances(t *testing.T) {
	tests := []struct {
		name             string
		attended         int
		teaching         int64
		transport        int64
		transportEnabled bool
		wantTeaching     int64
		wantTransport    int64
	}{
		{"attended full week", 10, 20000, 12000, true, 20000, 12000},
		{"attended single lesson", 1, 20000, 12000, true, 20000, 12000},
		{"no attendance", 0, 20000, 12000, true, 0, 0},
		{"transport disabled", 5, 20000, 12000, false, 20000, 0},
		{"transport disabled no attendance", 0, 20000, 12000, false, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			teaching, transport := computeAllowances(tt.attended, tt.teaching, tt.transport, tt.transportEnabled)
			assert.Equal(t, tt.wantTeaching, teaching)
			assert.Equal(t, tt.wantTransport, transport)
		})
	}
}

// staticSettingsRepo serves settings from a map; missing keys behave as
// unset rows.
type staticSettingsRepo map[string]string

func (r staticSettingsRepo) Get(_ context.Context, key string) (string, error) {
	v, ok := r[key]
	if !ok {
		return "", settings.ErrSettingNotFound
	}
	return v, nil
}

func TestLoadSettings(t *testing.T) {
	t.Run("unset keys fall back with transport disabled", func(t *testing.T) {
		svc := &PayrollServiceImpl{settingsRepo: staticSettingsRepo{}}

		cfg, err := svc.loadSettings(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(20000), cfg.teachingDefault)
		assert.Equal(t, int64(12000), cfg.transportDefault)
		assert.False(t, cfg.transportEnabled)
	})

	t.Run("stored values win", func(t *testing.T) {
		svc := &PayrollServiceImpl{settingsRepo: staticSettingsRepo{
			settings.KeyTeachingAllowance:        "25000",
			settings.KeyTransportAllowance:       "15000",
			settings.KeyEnableTransportAllowance: "true",
		}}

		cfg, err := svc.loadSettings(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(25000), cfg.teachingDefault)
		assert.Equal(t, int64(15000), cfg.transportDefault)
		assert.True(t, cfg.transportEnabled)
	})

	t.Run("toggle only honors the literal true", func(t *testing.T) {
		svc := &PayrollServiceImpl{settingsRepo: staticSettingsRepo{
			settings.KeyEnableTransportAllowance: "yes",
		}}

		cfg, err := svc.loadSettings(context.Background())
		require.NoError(t, err)
		assert.False(t, cfg.transportEnabled)
	})
}

func TestAdjustTotal(t *testing.T) {
	assert.Equal(t, int64(32000), adjustTotal(20000, 12000, 0, 0))
	assert.Equal(t, int64(37000), adjustTotal(20000, 12000, 5000, 0))
	assert.Equal(t, int64(29000), adjustTotal(20000, 12000, 0, 3000))
	assert.Equal(t, int64(34000), adjustTotal(20000, 12000, 5000, 3000))
}

func TestPaymentReference(t *testing.T) {
	ref := paymentReference(42, 7)
	assert.True(t, strings.HasPrefix(ref, "PAY-42-7-"))

	// References must be unique even for the same teacher and week.
	assert.NotEqual(t, ref, paymentReference(42, 7))
}

// ---- integration tests below; they need a migrated test database ----

var testDB *database.DB

func payrollTestInit(t *testing.T) {
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

func truncatePayrollTables(t *testing.T, ctx context.Context) {
	tables := []string{"payment_history", "payroll", "attendance", "timetable", "teachers", "system_config"}
	for _, table := range tables {
		_, err := testDB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err)
	}
}

func seedPayrollSettings(t *testing.T, ctx context.Context, teaching, transport, enableTransport string) {
	rows := map[string]string{
		settings.KeyTeachingAllowance:        teaching,
		settings.KeyTransportAllowance:       transport,
		settings.KeyEnableTransportAllowance: enableTransport,
	}
	for key, value := range rows {
		_, err := testDB.Exec(ctx, `
			INSERT INTO system_config (config_key, config_value)
			VALUES ($1, $2)
			ON CONFLICT (config_key) DO UPDATE SET config_value = EXCLUDED.config_value
		`, key, value)
		require.NoError(t, err)
	}
}

func createPayrollTestTeacher(t *testing.T, ctx context.Context, name string, teaching, transport int64) int64 {
	var id int64
	err := testDB.QueryRow(ctx, `
		INSERT INTO teachers (name, subjects, teaching_allowance, transport_allowance, status)
		VALUES ($1, '{"Mathematics"}', $2, $3, 'active')
		RETURNING id
	`, name, teaching, transport).Scan(&id)
	require.NoError(t, err)
	return id
}

func createPayrollTestAttendance(t *testing.T, ctx context.Context, teacherID int64, week, year int, status string) {
	var timetableID int64
	err := testDB.QueryRow(ctx, `
		INSERT INTO timetable (day_of_week, time_slot, teacher_id)
		VALUES (1, '08:00-09:00', $1)
		RETURNING id
	`, teacherID).Scan(&timetableID)
	require.NoError(t, err)

	_, err = testDB.Exec(ctx, `
		INSERT INTO attendance (teacher_id, timetable_id, week_number, year, day_of_week, status)
		VALUES ($1, $2, $3, $4, 1, $5)
	`, teacherID, timetableID, week, year, status)
	require.NoError(t, err)
}

func newTestPayrollService() payroll.PayrollService {
	return NewPayrollService(
		testDB,
		postgresql.NewPayrollRepository(testDB),
		postgresql.NewTeacherRepository(testDB),
		postgresql.NewSettingsRepository(testDB),
	)
}

func TestPayrollService_Process_EligibleAndIneligible(t *testing.T) {
	payrollTestInit(t)
	ctx := context.Background()
	truncatePayrollTables(t, ctx)
	seedPayrollSettings(t, ctx, "20000", "12000", "true")

	attended := createPayrollTestTeacher(t, ctx, "Attended Teacher", 20000, 12000)
	absent := createPayrollTestTeacher(t, ctx, "Absent Teacher", 20000, 12000)

	createPayrollTestAttendance(t, ctx, attended, 10, 2026, "present")
	createPayrollTestAttendance(t, ctx, absent, 10, 2026, "absent")

	svc := newTestPayrollService()
	_, err := svc.Process(ctx, 10, 2026)
	require.NoError(t, err)

	week, err := svc.Week(ctx, 10, 2026)
	require.NoError(t, err)
	require.Len(t, week.Payroll, 2)

	byTeacher := map[int64]payroll.RecordResponse{}
	for _, rec := range week.Payroll {
		byTeacher[rec.TeacherID] = rec
	}

	assert.Equal(t, int64(32000), byTeacher[attended].TotalAmount)
	assert.Equal(t, int64(0), byTeacher[absent].TotalAmount)
	assert.Equal(t, int64(32000), week.Total)
}

func TestPayrollService_Process_IgnoresPersonalRates(t *testing.T) {
	payrollTestInit(t)
	ctx := context.Background()
	truncatePayrollTables(t, ctx)
	seedPayrollSettings(t, ctx, "20000", "12000", "true")

	// The teacher row carries its own rates; payroll pays the configured
	// amounts regardless.
	teacherID := createPayrollTestTeacher(t, ctx, "Premium Teacher", 25000, 15000)
	createPayrollTestAttendance(t, ctx, teacherID, 14, 2026, "present")

	svc := newTestPayrollService()
	_, err := svc.Process(ctx, 14, 2026)
	require.NoError(t, err)

	week, err := svc.Week(ctx, 14, 2026)
	require.NoError(t, err)
	require.Len(t, week.Payroll, 1)
	assert.Equal(t, int64(20000), week.Payroll[0].TeachingAllowance)
	assert.Equal(t, int64(12000), week.Payroll[0].TransportAllowance)
	assert.Equal(t, int64(32000), week.Payroll[0].TotalAmount)
}

func TestPayrollService_Process_TransportOffWhenToggleUnset(t *testing.T) {
	payrollTestInit(t)
	ctx := context.Background()
	truncatePayrollTables(t, ctx)

	teacherID := createPayrollTestTeacher(t, ctx, "No Config Teacher", 20000, 12000)
	createPayrollTestAttendance(t, ctx, teacherID, 15, 2026, "present")

	svc := newTestPayrollService()
	_, err := svc.Process(ctx, 15, 2026)
	require.NoError(t, err)

	week, err := svc.Week(ctx, 15, 2026)
	require.NoError(t, err)
	require.Len(t, week.Payroll, 1)
	assert.Equal(t, int64(20000), week.Payroll[0].TeachingAllowance)
	assert.Equal(t, int64(0), week.Payroll[0].TransportAllowance)
	assert.Equal(t, int64(20000), week.Payroll[0].TotalAmount)
}

func TestPayrollService_Process_Idempotent(t *testing.T) {
	payrollTestInit(t)
	ctx := context.Background()
	truncatePayrollTables(t, ctx)
	seedPayrollSettings(t, ctx, "20000", "12000", "true")

	teacherID := createPayrollTestTeacher(t, ctx, "Repeat Teacher", 20000, 12000)
	createPayrollTestAttendance(t, ctx, teacherID, 11, 2026, "late")

	svc := newTestPayrollService()
	_, err := svc.Process(ctx, 11, 2026)
	require.NoError(t, err)
	_, err = svc.Process(ctx, 11, 2026)
	require.NoError(t, err)

	var count int
	err = testDB.QueryRow(ctx,
		`SELECT COUNT(*) FROM payroll WHERE teacher_id = $1 AND week_number = 11 AND year = 2026`,
		teacherID,
	).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestPayrollService_Adjust_PaidTransitionWritesHistoryOnce(t *testing.T) {
	payrollTestInit(t)
	ctx := context.Background()
	truncatePayrollTables(t, ctx)
	seedPayrollSettings(t, ctx, "20000", "12000", "true")

	teacherID := createPayrollTestTeacher(t, ctx, "Paid Teacher", 20000, 12000)
	createPayrollTestAttendance(t, ctx, teacherID, 12, 2026, "present")

	svc := newTestPayrollService()
	_, err := svc.Process(ctx, 12, 2026)
	require.NoError(t, err)

	week, err := svc.Week(ctx, 12, 2026)
	require.NoError(t, err)
	require.Len(t, week.Payroll, 1)
	recordID := week.Payroll[0].ID

	paid := true
	bonus := int64(5000)
	adjusted, err := svc.Adjust(ctx, payroll.AdjustPayrollRequest{ID: recordID, Bonus: &bonus, Paid: &paid})
	require.NoError(t, err)
	assert.True(t, adjusted.Paid)
	assert.Equal(t, int64(37000), adjusted.TotalAmount)
	assert.NotNil(t, adjusted.PaymentDate)

	// Marking paid again must not duplicate the history row.
	_, err = svc.Adjust(ctx, payroll.AdjustPayrollRequest{ID: recordID, Paid: &paid})
	require.NoError(t, err)

	history, err := svc.History(ctx, 50, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), history.Total)
	require.Len(t, history.Payments, 1)
	assert.Equal(t, payroll.PaymentTypeWeeklyPayroll, history.Payments[0].PaymentType)
	assert.Equal(t, payroll.PaymentStatusCompleted, history.Payments[0].Status)
	assert.True(t, strings.HasPrefix(history.Payments[0].Reference, fmt.Sprintf("PAY-%d-12-", teacherID)))
}

func TestPayrollService_Adjust_UnpayKeepsPaymentDate(t *testing.T) {
	payrollTestInit(t)
	ctx := context.Background()
	truncatePayrollTables(t, ctx)
	seedPayrollSettings(t, ctx, "20000", "12000", "true")

	teacherID := createPayrollTestTeacher(t, ctx, "Unpaid Teacher", 20000, 12000)
	createPayrollTestAttendance(t, ctx, teacherID, 13, 2026, "present")

	svc := newTestPayrollService()
	_, err := svc.Process(ctx, 13, 2026)
	require.NoError(t, err)

	week, err := svc.Week(ctx, 13, 2026)
	require.NoError(t, err)
	require.Len(t, week.Payroll, 1)
	recordID := week.Payroll[0].ID

	paid := true
	adjusted, err := svc.Adjust(ctx, payroll.AdjustPayrollRequest{ID: recordID, Paid: &paid})
	require.NoError(t, err)
	require.NotNil(t, adjusted.PaymentDate)
	firstPaidAt := *adjusted.PaymentDate

	// Reverting the paid flag keeps the original payment date.
	unpaid := false
	adjusted, err = svc.Adjust(ctx, payroll.AdjustPayrollRequest{ID: recordID, Paid: &unpaid})
	require.NoError(t, err)
	assert.False(t, adjusted.Paid)
	require.NotNil(t, adjusted.PaymentDate)
	assert.Equal(t, firstPaidAt, *adjusted.PaymentDate)
}

func TestPayrollService_Adjust_NotFound(t *testing.T) {
	payrollTestInit(t)
	ctx := context.Background()
	truncatePayrollTables(t, ctx)

	svc := newTestPayrollService()
	_, err := svc.Adjust(ctx, payroll.AdjustPayrollRequest{ID: 9999})
	assert.ErrorIs(t, err, payroll.ErrRecordNotFound)
}
