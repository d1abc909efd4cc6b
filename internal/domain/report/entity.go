package report

import (
	"time"

	"github.com/homelesson/lms-backend-go/internal/domain/attendance"
	"github.com/homelesson/lms-backend-go/internal/domain/payroll"
	"github.com/homelesson/lms-backend-go/internal/domain/teacher"
	"github.com/homelesson/lms-backend-go/internal/domain/timetable"
)

const (
	TypeTeacherReport = "teacher_report"
	TypeFullExport    = "full_export"
)

// Report - metadata row recorded for every generated report or export.
// Document rendering happens outside this service.
type Report struct {
	ID          int64
	ReportType  string
	Description *string
	GeneratedBy *int64
	CreatedAt   time.Time

	// Joined fields
	GeneratedByName *string
}

// ExportData - full snapshot of every table, taken in one read.
type ExportData struct {
	Teachers       []teacher.Teacher
	Subjects       []timetable.Subject
	Timetable      []timetable.Entry
	Attendance     []attendance.Record
	Payroll        []payroll.Record
	PaymentHistory []payroll.PaymentHistory
}
