package analytics

import "context"

// AnalyticsRepository serves the read-only aggregation views. No writes.
type AnalyticsRepository interface {
	AttendanceByWeek(ctx context.Context, week, year int) ([]AttendanceRow, error)
	AttendanceByMonth(ctx context.Context, month, year int) ([]AttendanceRow, error)
	SubjectDistribution(ctx context.Context) ([]SubjectDistributionRow, error)

	// PayrollTrends returns the most recent paid periods, newest first.
	PayrollTrends(ctx context.Context, limit int) ([]PayrollTrendRow, error)

	Performance(ctx context.Context) ([]PerformanceRow, error)
}
