package report

import (
	"time"

	"github.com/homelesson/lms-backend-go/internal/domain/attendance"
	"github.com/homelesson/lms-backend-go/internal/domain/payroll"
	"github.com/homelesson/lms-backend-go/internal/domain/teacher"
	"github.com/homelesson/lms-backend-go/internal/domain/timetable"
	"github.com/homelesson/lms-backend-go/internal/pkg/validator"
)

type GenerateTeacherReportRequest struct {
	TeacherID  int64 `json:"-"`
	WeekNumber int   `json:"week_number"`
	Year       int   `json:"year"`
}

// Validate accepts zero week/year; the service fills in the current week.
func (r *GenerateTeacherReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.WeekNumber != 0 && !validator.IsValidWeek(r.WeekNumber) {
		errs = append(errs, validator.ValidationError{Field: "week_number", Message: "must be between 1 and 53"})
	}
	if r.Year != 0 && !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be between 2023 and 2100"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ReportResponse struct {
	ID              int64   `json:"id"`
	ReportType      string  `json:"report_type"`
	Description     *string `json:"description,omitempty"`
	GeneratedBy     *int64  `json:"generated_by,omitempty"`
	GeneratedByName *string `json:"generated_by_name,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

func (r Report) ToResponse() ReportResponse {
	return ReportResponse{
		ID:              r.ID,
		ReportType:      r.ReportType,
		Description:     r.Description,
		GeneratedBy:     r.GeneratedBy,
		GeneratedByName: r.GeneratedByName,
		CreatedAt:       r.CreatedAt.Format(time.RFC3339),
	}
}

type TeacherReportResponse struct {
	Report     ReportResponse              `json:"report"`
	Teacher    teacher.TeacherResponse     `json:"teacher"`
	WeekNumber int                         `json:"week_number"`
	Year       int                         `json:"year"`
	Attendance []attendance.RecordResponse `json:"attendance"`
	Payroll    *payroll.RecordResponse     `json:"payroll"`
}

type HistoryResponse struct {
	Reports []ReportResponse `json:"reports"`
	Total   int64            `json:"total"`
}

type ExportResponse struct {
	ExportDate     string                      `json:"export_date"`
	Teachers       []teacher.TeacherResponse   `json:"teachers"`
	Subjects       []SubjectResponse           `json:"subjects"`
	Timetable      []timetable.EntryResponse   `json:"timetable"`
	Attendance     []attendance.RecordResponse `json:"attendance"`
	Payroll        []payroll.RecordResponse    `json:"payroll"`
	PaymentHistory []payroll.PaymentResponse   `json:"payment_history"`
}

type SubjectResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
