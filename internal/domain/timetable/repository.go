package timetable

import "context"

// TimetableRepository defines data access methods for the weekly grid.
type TimetableRepository interface {
	ListByDay(ctx context.Context, day int) ([]Entry, error)
	ListAll(ctx context.Context) ([]Entry, error)

	// DeleteByDays removes every entry for the given days.
	DeleteByDays(ctx context.Context, days []int) error

	Insert(ctx context.Context, e Entry) (Entry, error)

	Statistics(ctx context.Context) (StatisticsResponse, error)
}
