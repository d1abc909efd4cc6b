package timetable

import "context"

type TimetableService interface {
	ByDay(ctx context.Context, day int) ([]EntryResponse, error)

	// Full returns every entry grouped by day of week.
	Full(ctx context.Context) (map[int][]EntryResponse, error)

	// Replace atomically swaps out the entries of every day present in
	// the batch; days not mentioned are untouched.
	Replace(ctx context.Context, req ReplaceRequest) ([]EntryResponse, error)

	Statistics(ctx context.Context) (StatisticsResponse, error)
}
