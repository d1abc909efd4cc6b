package analytics

import "context"

type AnalyticsService interface {
	// Attendance serves period="week" (explicit or current week/year) and
	// period="month" (current month, keyed on recorded_at).
	Attendance(ctx context.Context, period string, week, year int) ([]AttendanceRow, error)
	SubjectDistribution(ctx context.Context) ([]SubjectDistributionRow, error)
	PayrollTrends(ctx context.Context) ([]PayrollTrendRow, error)
	Performance(ctx context.Context) ([]PerformanceRow, error)
}
