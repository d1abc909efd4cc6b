package teacher

import "context"

type TeacherService interface {
	List(ctx context.Context) ([]TeacherResponse, error)
	Get(ctx context.Context, id int64) (TeacherResponse, error)
	Create(ctx context.Context, req CreateTeacherRequest) (TeacherResponse, error)
	Update(ctx context.Context, req UpdateTeacherRequest) (TeacherResponse, error)
	Delete(ctx context.Context, id int64) error

	// AttendanceSummary defaults week and year to the current period when zero.
	AttendanceSummary(ctx context.Context, id int64, week, year int) (AttendanceSummaryResponse, error)
}
