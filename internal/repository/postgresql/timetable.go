package postgresql

import (
	"context"
	"fmt"

	"github.com/homelesson/lms-backend-go/internal/domain/timetable"
	"github.com/homelesson/lms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type timetableRepository struct {
	db *database.DB
}

const timetableSelect = `
	SELECT tt.id, tt.day_of_week, tt.time_slot, tt.subject_id, tt.teacher_id,
		   tt.is_break, tt.break_description, tt.created_at, tt.updated_at,
		   t.name, s.name
	FROM timetable tt
	LEFT JOIN teachers t ON t.id = tt.teacher_id
	LEFT JOIN subjects s ON s.id = tt.subject_id
`

// ListByDay implements timetable.TimetableRepository.
func (r *timetableRepository) ListByDay(ctx context.Context, day int) ([]timetable.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := timetableSelect + `
		WHERE tt.day_of_week = $1
		ORDER BY tt.time_slot
	`

	rows, err := q.Query(ctx, query, day)
	if err != nil {
		return nil, fmt.Errorf("failed to list timetable for day: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// ListAll implements timetable.TimetableRepository.
func (r *timetableRepository) ListAll(ctx context.Context) ([]timetable.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := timetableSelect + `
		ORDER BY tt.day_of_week, tt.time_slot
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list timetable: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// DeleteByDays implements timetable.TimetableRepository.
func (r *timetableRepository) DeleteByDays(ctx context.Context, days []int) error {
	if len(days) == 0 {
		return nil
	}

	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM timetable WHERE day_of_week = ANY($1)`, days)
	if err != nil {
		return fmt.Errorf("failed to clear timetable days: %w", err)
	}

	return nil
}

// Insert implements timetable.TimetableRepository.
func (r *timetableRepository) Insert(ctx context.Context, e timetable.Entry) (timetable.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO timetable (
			day_of_week, time_slot, subject_id, teacher_id, is_break, break_description
		) VALUES (
			$1, $2, $3, $4, $5, $6
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		e.DayOfWeek,
		e.TimeSlot,
		e.SubjectID,
		e.TeacherID,
		e.IsBreak,
		e.BreakDescription,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)

	if err != nil {
		return timetable.Entry{}, fmt.Errorf("failed to insert timetable entry: %w", err)
	}

	return e, nil
}

// Statistics implements timetable.TimetableRepository. Breaks are excluded
// from every figure.
func (r *timetableRepository) Statistics(ctx context.Context) (timetable.StatisticsResponse, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*),
			   COUNT(DISTINCT subject_id),
			   COUNT(DISTINCT teacher_id)
		FROM timetable
		WHERE is_break = false
	`

	var stats timetable.StatisticsResponse
	err := q.QueryRow(ctx, query).Scan(&stats.TotalLessons, &stats.UniqueSubjects, &stats.TeachersInvolved)
	if err != nil {
		return timetable.StatisticsResponse{}, fmt.Errorf("failed to compute timetable statistics: %w", err)
	}

	perDayQuery := `
		SELECT day_of_week, COUNT(*)
		FROM timetable
		WHERE is_break = false
		GROUP BY day_of_week
		ORDER BY day_of_week
	`

	rows, err := q.Query(ctx, perDayQuery)
	if err != nil {
		return timetable.StatisticsResponse{}, fmt.Errorf("failed to count lessons per day: %w", err)
	}
	defer rows.Close()

	stats.LessonsPerDay = make(map[int]int)
	for rows.Next() {
		var day, count int
		if err := rows.Scan(&day, &count); err != nil {
			return timetable.StatisticsResponse{}, fmt.Errorf("failed to scan per-day count: %w", err)
		}
		stats.LessonsPerDay[day] = count
	}

	return stats, rows.Err()
}

func scanEntries(rows pgx.Rows) ([]timetable.Entry, error) {
	var entries []timetable.Entry
	for rows.Next() {
		var e timetable.Entry
		err := rows.Scan(
			&e.ID, &e.DayOfWeek, &e.TimeSlot, &e.SubjectID, &e.TeacherID,
			&e.IsBreak, &e.BreakDescription, &e.CreatedAt, &e.UpdatedAt,
			&e.TeacherName, &e.SubjectName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan timetable entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func NewTimetableRepository(db *database.DB) timetable.TimetableRepository {
	return &timetableRepository{db: db}
}
