package postgresql

import (
	"context"
	"fmt"

	"github.com/homelesson/lms-backend-go/internal/domain/analytics"
	"github.com/homelesson/lms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type analyticsRepository struct {
	db *database.DB
}

const attendanceRowSelect = `
	SELECT t.name,
		   COUNT(a.id)::int,
		   COUNT(a.id) FILTER (WHERE a.status = 'present')::int,
		   COUNT(a.id) FILTER (WHERE a.status = 'absent')::int,
		   COUNT(a.id) FILTER (WHERE a.status = 'late')::int,
		   COUNT(a.id) FILTER (WHERE a.status = 'partial')::int,
		   ROUND(COUNT(a.id) FILTER (WHERE a.status IN ('present', 'late')) * 100.0 / NULLIF(COUNT(a.id), 0))::int
`

// AttendanceByWeek implements analytics.AnalyticsRepository.
func (r *analyticsRepository) AttendanceByWeek(ctx context.Context, week, year int) ([]analytics.AttendanceRow, error) {
	q := GetQuerier(ctx, r.db)

	query := attendanceRowSelect + `
		FROM teachers t
		LEFT JOIN attendance a
			   ON a.teacher_id = t.id AND a.week_number = $1 AND a.year = $2
		WHERE t.status = 'active'
		GROUP BY t.id, t.name
		ORDER BY 7 DESC NULLS LAST, t.name
	`

	rows, err := q.Query(ctx, query, week, year)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate weekly attendance: %w", err)
	}
	defer rows.Close()

	return scanAttendanceRows(rows)
}

// AttendanceByMonth implements analytics.AnalyticsRepository. The month is
// taken from when each record was marked.
func (r *analyticsRepository) AttendanceByMonth(ctx context.Context, month, year int) ([]analytics.AttendanceRow, error) {
	q := GetQuerier(ctx, r.db)

	query := attendanceRowSelect + `
		FROM teachers t
		LEFT JOIN attendance a
			   ON a.teacher_id = t.id
			  AND EXTRACT(MONTH FROM a.recorded_at) = $1
			  AND EXTRACT(YEAR FROM a.recorded_at) = $2
		WHERE t.status = 'active'
		GROUP BY t.id, t.name
		ORDER BY 7 DESC NULLS LAST, t.name
	`

	rows, err := q.Query(ctx, query, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate monthly attendance: %w", err)
	}
	defer rows.Close()

	return scanAttendanceRows(rows)
}

// SubjectDistribution implements analytics.AnalyticsRepository.
func (r *analyticsRepository) SubjectDistribution(ctx context.Context) ([]analytics.SubjectDistributionRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.name,
			   COUNT(tt.id)::int,
			   COUNT(DISTINCT tt.teacher_id)::int,
			   COALESCE(STRING_AGG(DISTINCT t.name, ', ' ORDER BY t.name), '')
		FROM timetable tt
		JOIN subjects s ON s.id = tt.subject_id
		LEFT JOIN teachers t ON t.id = tt.teacher_id
		WHERE tt.is_break = false
		GROUP BY s.id, s.name
		ORDER BY COUNT(tt.id) DESC, s.name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate subjects: %w", err)
	}
	defer rows.Close()

	var result []analytics.SubjectDistributionRow
	for rows.Next() {
		var row analytics.SubjectDistributionRow
		if err := rows.Scan(&row.SubjectName, &row.TotalLessons, &row.TeachersCount, &row.Teachers); err != nil {
			return nil, fmt.Errorf("failed to scan subject row: %w", err)
		}
		result = append(result, row)
	}

	return result, rows.Err()
}

// PayrollTrends implements analytics.AnalyticsRepository. Only periods with
// at least one paid record count.
func (r *analyticsRepository) PayrollTrends(ctx context.Context, limit int) ([]analytics.PayrollTrendRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT week_number, year,
			   COUNT(*)::int,
			   SUM(total_amount)::bigint,
			   ROUND(AVG(total_amount), 2)::float8
		FROM payroll
		WHERE paid = true
		GROUP BY year, week_number
		ORDER BY year DESC, week_number DESC
		LIMIT $1
	`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate payroll trends: %w", err)
	}
	defer rows.Close()

	var result []analytics.PayrollTrendRow
	for rows.Next() {
		var row analytics.PayrollTrendRow
		if err := rows.Scan(&row.WeekNumber, &row.Year, &row.TeachersPaid, &row.TotalAmount, &row.AveragePayment); err != nil {
			return nil, fmt.Errorf("failed to scan payroll trend: %w", err)
		}
		result = append(result, row)
	}

	return result, rows.Err()
}

// Performance implements analytics.AnalyticsRepository.
func (r *analyticsRepository) Performance(ctx context.Context) ([]analytics.PerformanceRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.name,
			   COUNT(DISTINCT (a.year, a.week_number))::int,
			   COUNT(a.id)::int,
			   COUNT(a.id) FILTER (WHERE a.status IN ('present', 'late'))::int,
			   ROUND(COUNT(a.id) FILTER (WHERE a.status IN ('present', 'late')) * 100.0 / NULLIF(COUNT(a.id), 0))::int,
			   COALESCE(p.total_earnings, 0),
			   COALESCE(p.avg_weekly, 0)
		FROM teachers t
		LEFT JOIN attendance a ON a.teacher_id = t.id
		LEFT JOIN LATERAL (
			SELECT SUM(total_amount)::bigint AS total_earnings,
				   ROUND(AVG(total_amount), 2)::float8 AS avg_weekly
			FROM payroll
			WHERE teacher_id = t.id AND paid = true
		) p ON true
		WHERE t.status = 'active'
		GROUP BY t.id, t.name, p.total_earnings, p.avg_weekly
		ORDER BY 6 DESC NULLS LAST, t.name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate performance: %w", err)
	}
	defer rows.Close()

	var result []analytics.PerformanceRow
	for rows.Next() {
		var row analytics.PerformanceRow
		err := rows.Scan(
			&row.TeacherID, &row.TeacherName, &row.WeeksTaught, &row.TotalLessons,
			&row.AttendedLessons, &row.AttendanceRate, &row.TotalEarnings, &row.AvgWeeklyEarnings,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan performance row: %w", err)
		}
		result = append(result, row)
	}

	return result, rows.Err()
}

func scanAttendanceRows(rows pgx.Rows) ([]analytics.AttendanceRow, error) {
	var result []analytics.AttendanceRow
	for rows.Next() {
		var row analytics.AttendanceRow
		err := rows.Scan(
			&row.TeacherName, &row.TotalLessons, &row.Present,
			&row.Absent, &row.Late, &row.Partial, &row.Percentage,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func NewAnalyticsRepository(db *database.DB) analytics.AnalyticsRepository {
	return &analyticsRepository{db: db}
}
