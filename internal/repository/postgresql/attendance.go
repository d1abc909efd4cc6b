package postgresql

import (
	"context"
	"fmt"

	"github.com/homelesson/lms-backend-go/internal/domain/attendance"
	"github.com/homelesson/lms-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

// ListByWeek implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByWeek(ctx context.Context, week, year int) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.teacher_id, a.timetable_id, a.week_number, a.year,
			   a.day_of_week, a.status, a.notes, a.recorded_by, a.recorded_at,
			   t.name, tt.time_slot, s.name
		FROM attendance a
		JOIN teachers t ON t.id = a.teacher_id
		JOIN timetable tt ON tt.id = a.timetable_id
		LEFT JOIN subjects s ON s.id = tt.subject_id
		WHERE a.week_number = $1 AND a.year = $2
		ORDER BY a.day_of_week, tt.time_slot, t.name
	`

	rows, err := q.Query(ctx, query, week, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		err := rows.Scan(
			&rec.ID, &rec.TeacherID, &rec.TimetableID, &rec.WeekNumber, &rec.Year,
			&rec.DayOfWeek, &rec.Status, &rec.Notes, &rec.RecordedBy, &rec.RecordedAt,
			&rec.TeacherName, &rec.TimeSlot, &rec.SubjectName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// Upsert implements attendance.AttendanceRepository. Marking the same slot
// twice overwrites status and notes instead of inserting a duplicate.
func (r *attendanceRepository) Upsert(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance (
			teacher_id, timetable_id, week_number, year, day_of_week,
			status, notes, recorded_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
		ON CONFLICT (teacher_id, timetable_id, week_number, year, day_of_week)
		DO UPDATE SET
			status = EXCLUDED.status,
			notes = EXCLUDED.notes,
			recorded_by = EXCLUDED.recorded_by,
			recorded_at = NOW()
		RETURNING id, recorded_at
	`

	err := q.QueryRow(ctx, query,
		rec.TeacherID,
		rec.TimetableID,
		rec.WeekNumber,
		rec.Year,
		rec.DayOfWeek,
		rec.Status,
		rec.Notes,
		rec.RecordedBy,
	).Scan(&rec.ID, &rec.RecordedAt)

	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to upsert attendance: %w", err)
	}

	return rec, nil
}

// WeeklySummary implements attendance.AttendanceRepository. Every active
// teacher appears, including those with no recorded lessons.
func (r *attendanceRepository) WeeklySummary(ctx context.Context, week, year int) ([]attendance.WeeklySummaryRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.name,
			   COUNT(a.id),
			   COUNT(a.id) FILTER (WHERE a.status = 'present'),
			   COUNT(a.id) FILTER (WHERE a.status = 'absent'),
			   COUNT(a.id) FILTER (WHERE a.status = 'late'),
			   COUNT(a.id) FILTER (WHERE a.status = 'partial'),
			   ROUND(COUNT(a.id) FILTER (WHERE a.status IN ('present', 'late')) * 100.0 / NULLIF(COUNT(a.id), 0))::int
		FROM teachers t
		LEFT JOIN attendance a
			   ON a.teacher_id = t.id AND a.week_number = $1 AND a.year = $2
		WHERE t.status = 'active'
		GROUP BY t.id, t.name
		ORDER BY t.name
	`

	rows, err := q.Query(ctx, query, week, year)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize week: %w", err)
	}
	defer rows.Close()

	var summary []attendance.WeeklySummaryRow
	for rows.Next() {
		var row attendance.WeeklySummaryRow
		err := rows.Scan(
			&row.TeacherID, &row.TeacherName, &row.TotalLessons,
			&row.Present, &row.Absent, &row.Late, &row.Partial, &row.Percentage,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan summary row: %w", err)
		}
		summary = append(summary, row)
	}

	return summary, rows.Err()
}

// Trends implements attendance.AttendanceRepository. Rows come back oldest
// week first so charts read left to right.
func (r *attendanceRepository) Trends(ctx context.Context, teacherID int64, weeks int) ([]attendance.TrendPoint, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT week_number, year, total_lessons, attended, percentage
		FROM (
			SELECT a.week_number, a.year,
				   COUNT(*)::int AS total_lessons,
				   COUNT(*) FILTER (WHERE a.status IN ('present', 'late'))::int AS attended,
				   ROUND(COUNT(*) FILTER (WHERE a.status IN ('present', 'late')) * 100.0 / NULLIF(COUNT(*), 0))::int AS percentage
			FROM attendance a
			WHERE a.teacher_id = $1
			GROUP BY a.year, a.week_number
			ORDER BY a.year DESC, a.week_number DESC
			LIMIT $2
		) recent
		ORDER BY year, week_number
	`

	rows, err := q.Query(ctx, query, teacherID, weeks)
	if err != nil {
		return nil, fmt.Errorf("failed to load attendance trends: %w", err)
	}
	defer rows.Close()

	var points []attendance.TrendPoint
	for rows.Next() {
		var p attendance.TrendPoint
		if err := rows.Scan(&p.WeekNumber, &p.Year, &p.TotalLessons, &p.Attended, &p.Percentage); err != nil {
			return nil, fmt.Errorf("failed to scan trend point: %w", err)
		}
		points = append(points, p)
	}

	return points, rows.Err()
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}
