package teacher

import "context"

// TeacherRepository defines data access methods for teachers.
type TeacherRepository interface {
	List(ctx context.Context) ([]Teacher, error)
	GetByID(ctx context.Context, id int64) (Teacher, error)
	GetActive(ctx context.Context) ([]Teacher, error)
	Create(ctx context.Context, t Teacher) (Teacher, error)
	Update(ctx context.Context, req UpdateTeacherRequest) (Teacher, error)
	Delete(ctx context.Context, id int64) error

	// AttendanceSummary aggregates the teacher's lesson counts for one week.
	// A week with no records yields zero counts, not an error.
	AttendanceSummary(ctx context.Context, id int64, week, year int) (AttendanceSummaryResponse, error)
}
