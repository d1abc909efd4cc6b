package analytics

import (
	"context"
	"time"

	"github.com/homelesson/lms-backend-go/internal/domain/analytics"
	"github.com/homelesson/lms-backend-go/internal/pkg/database"
)

// trendPeriods is how many paid periods feed the payroll trend chart.
const trendPeriods = 12

type AnalyticsServiceImpl struct {
	db            *database.DB
	analyticsRepo analytics.AnalyticsRepository
}

func NewAnalyticsService(db *database.DB, analyticsRepo analytics.AnalyticsRepository) analytics.AnalyticsService {
	return &AnalyticsServiceImpl{
		db:            db,
		analyticsRepo: analyticsRepo,
	}
}

func (s *AnalyticsServiceImpl) Attendance(ctx context.Context, period string, week, year int) ([]analytics.AttendanceRow, error) {
	now := time.Now()

	if period == "month" {
		return s.analyticsRepo.AttendanceByMonth(ctx, int(now.Month()), now.Year())
	}

	if week == 0 || year == 0 {
		nowYear, nowWeek := now.ISOWeek()
		if week == 0 {
			week = nowWeek
		}
		if year == 0 {
			year = nowYear
		}
	}

	return s.analyticsRepo.AttendanceByWeek(ctx, week, year)
}

func (s *AnalyticsServiceImpl) SubjectDistribution(ctx context.Context) ([]analytics.SubjectDistributionRow, error) {
	return s.analyticsRepo.SubjectDistribution(ctx)
}

func (s *AnalyticsServiceImpl) PayrollTrends(ctx context.Context) ([]analytics.PayrollTrendRow, error) {
	return s.analyticsRepo.PayrollTrends(ctx, trendPeriods)
}

func (s *AnalyticsServiceImpl) Performance(ctx context.Context) ([]analytics.PerformanceRow, error) {
	return s.analyticsRepo.Performance(ctx)
}
