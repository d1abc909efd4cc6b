package report

import (
	"context"

	"github.com/homelesson/lms-backend-go/internal/domain/attendance"
	"github.com/homelesson/lms-backend-go/internal/domain/payroll"
)

type ReportRepository interface {
	Insert(ctx context.Context, rep Report) (Report, error)
	List(ctx context.Context, limit, offset int) ([]Report, int64, error)
	TeacherWeekAttendance(ctx context.Context, teacherID int64, weekNumber, year int) ([]attendance.Record, error)
	// TeacherWeekPayroll returns payroll.ErrRecordNotFound when the week has
	// not been processed for the teacher.
	TeacherWeekPayroll(ctx context.Context, teacherID int64, weekNumber, year int) (payroll.Record, error)
	Export(ctx context.Context) (ExportData, error)
}
