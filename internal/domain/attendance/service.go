package attendance

import "context"

type AttendanceService interface {
	ListByWeek(ctx context.Context, week, year int) ([]RecordResponse, error)
	Mark(ctx context.Context, req MarkAttendanceRequest) (RecordResponse, error)
	WeeklySummary(ctx context.Context, week, year int) ([]WeeklySummaryRow, error)
	Trends(ctx context.Context, teacherID int64) ([]TrendPoint, error)
}
