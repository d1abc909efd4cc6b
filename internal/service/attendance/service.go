package attendance

import (
	"context"

	"github.com/go-chi/jwtauth/v5"
	"github.com/homelesson/lms-backend-go/internal/domain/attendance"
	"github.com/homelesson/lms-backend-go/internal/domain/teacher"
	"github.com/homelesson/lms-backend-go/internal/pkg/database"
)

// trendWindow is how many recent weeks feed the trend chart.
const trendWindow = 4

type AttendanceServiceImpl struct {
	db             *database.DB
	attendanceRepo attendance.AttendanceRepository
	teacherRepo    teacher.TeacherRepository
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	teacherRepo teacher.TeacherRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:             db,
		attendanceRepo: attendanceRepo,
		teacherRepo:    teacherRepo,
	}
}

// actorIDFromContext pulls the authenticated user's id from the JWT claims.
// Numeric claims decode as float64.
func actorIDFromContext(ctx context.Context) *int64 {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return nil
	}
	raw, ok := claims["user_id"].(float64)
	if !ok {
		return nil
	}
	id := int64(raw)
	return &id
}

func (s *AttendanceServiceImpl) ListByWeek(ctx context.Context, week, year int) ([]attendance.RecordResponse, error) {
	records, err := s.attendanceRepo.ListByWeek(ctx, week, year)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, rec.ToResponse())
	}

	return responses, nil
}

func (s *AttendanceServiceImpl) Mark(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	if _, err := s.teacherRepo.GetByID(ctx, req.TeacherID); err != nil {
		return attendance.RecordResponse{}, err
	}

	rec, err := s.attendanceRepo.Upsert(ctx, attendance.Record{
		TeacherID:   req.TeacherID,
		TimetableID: req.TimetableID,
		WeekNumber:  req.WeekNumber,
		Year:        req.Year,
		DayOfWeek:   req.DayOfWeek,
		Status:      attendance.Status(req.Status),
		Notes:       req.Notes,
		RecordedBy:  actorIDFromContext(ctx),
	})
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	return rec.ToResponse(), nil
}

func (s *AttendanceServiceImpl) WeeklySummary(ctx context.Context, week, year int) ([]attendance.WeeklySummaryRow, error) {
	return s.attendanceRepo.WeeklySummary(ctx, week, year)
}

func (s *AttendanceServiceImpl) Trends(ctx context.Context, teacherID int64) ([]attendance.TrendPoint, error) {
	if _, err := s.teacherRepo.GetByID(ctx, teacherID); err != nil {
		return nil, err
	}

	return s.attendanceRepo.Trends(ctx, teacherID, trendWindow)
}
