package attendance

import "context"

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	ListByWeek(ctx context.Context, week, year int) ([]Record, error)

	// Upsert inserts the record, or updates status/notes/recorded_at in
	// place when a row already exists for the same natural key.
	Upsert(ctx context.Context, rec Record) (Record, error)

	// WeeklySummary aggregates per-teacher counts across all active
	// teachers for one week; teachers with no records appear with zero
	// counts and a nil percentage.
	WeeklySummary(ctx context.Context, week, year int) ([]WeeklySummaryRow, error)

	// Trends returns the teacher's most recent weeks in chronological order.
	Trends(ctx context.Context, teacherID int64, weeks int) ([]TrendPoint, error)
}
