package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/homelesson/lms-backend-go/internal/domain/attendance"
	"github.com/homelesson/lms-backend-go/internal/domain/payroll"
	"github.com/homelesson/lms-backend-go/internal/domain/report"
	"github.com/homelesson/lms-backend-go/internal/domain/teacher"
	"github.com/homelesson/lms-backend-go/internal/domain/timetable"
	"github.com/homelesson/lms-backend-go/internal/pkg/database"
)

type ReportServiceImpl struct {
	db          *database.DB
	reportRepo  report.ReportRepository
	teacherRepo teacher.TeacherRepository
}

func NewReportService(
	db *database.DB,
	reportRepo report.ReportRepository,
	teacherRepo teacher.TeacherRepository,
) report.ReportService {
	return &ReportServiceImpl{
		db:          db,
		reportRepo:  reportRepo,
		teacherRepo: teacherRepo,
	}
}

func (s *ReportServiceImpl) GenerateTeacherReport(ctx context.Context, req *report.GenerateTeacherReportRequest, actorID *int64) (*report.TeacherReportResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	t, err := s.teacherRepo.GetByID(ctx, req.TeacherID)
	if err != nil {
		return nil, err
	}

	week, year := req.WeekNumber, req.Year
	if week == 0 || year == 0 {
		nowYear, nowWeek := time.Now().ISOWeek()
		if week == 0 {
			week = nowWeek
		}
		if year == 0 {
			year = nowYear
		}
	}

	records, err := s.reportRepo.TeacherWeekAttendance(ctx, req.TeacherID, week, year)
	if err != nil {
		return nil, err
	}

	var payrollResp *payroll.RecordResponse
	rec, err := s.reportRepo.TeacherWeekPayroll(ctx, req.TeacherID, week, year)
	switch {
	case err == nil:
		r := rec.ToResponse()
		payrollResp = &r
	case errors.Is(err, payroll.ErrRecordNotFound):
		// Week not processed yet; report goes out without payroll figures.
	default:
		return nil, err
	}

	description := fmt.Sprintf("Teacher report for %s, Week %d, %d", t.Name, week, year)
	meta, err := s.reportRepo.Insert(ctx, report.Report{
		ReportType:  report.TypeTeacherReport,
		Description: &description,
		GeneratedBy: actorID,
	})
	if err != nil {
		return nil, err
	}

	resp := &report.TeacherReportResponse{
		Report:     meta.ToResponse(),
		Teacher:    t.ToResponse(),
		WeekNumber: week,
		Year:       year,
		Attendance: []attendance.RecordResponse{},
		Payroll:    payrollResp,
	}
	for _, rec := range records {
		resp.Attendance = append(resp.Attendance, rec.ToResponse())
	}

	return resp, nil
}

func (s *ReportServiceImpl) History(ctx context.Context, limit, offset int) (*report.HistoryResponse, error) {
	reports, total, err := s.reportRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	resp := &report.HistoryResponse{Reports: []report.ReportResponse{}, Total: total}
	for _, rep := range reports {
		resp.Reports = append(resp.Reports, rep.ToResponse())
	}

	return resp, nil
}

func (s *ReportServiceImpl) Export(ctx context.Context, actorID *int64) (*report.ExportResponse, error) {
	data, err := s.reportRepo.Export(ctx)
	if err != nil {
		return nil, err
	}

	description := "Full data export"
	if _, err := s.reportRepo.Insert(ctx, report.Report{
		ReportType:  report.TypeFullExport,
		Description: &description,
		GeneratedBy: actorID,
	}); err != nil {
		return nil, err
	}

	resp := &report.ExportResponse{
		ExportDate:     time.Now().Format(time.RFC3339),
		Teachers:       []teacher.TeacherResponse{},
		Subjects:       []report.SubjectResponse{},
		Timetable:      []timetable.EntryResponse{},
		Attendance:     []attendance.RecordResponse{},
		Payroll:        []payroll.RecordResponse{},
		PaymentHistory: []payroll.PaymentResponse{},
	}
	for _, t := range data.Teachers {
		resp.Teachers = append(resp.Teachers, t.ToResponse())
	}
	for _, sub := range data.Subjects {
		resp.Subjects = append(resp.Subjects, report.SubjectResponse{ID: sub.ID, Name: sub.Name})
	}
	for _, e := range data.Timetable {
		resp.Timetable = append(resp.Timetable, e.ToResponse())
	}
	for _, rec := range data.Attendance {
		resp.Attendance = append(resp.Attendance, rec.ToResponse())
	}
	for _, rec := range data.Payroll {
		resp.Payroll = append(resp.Payroll, rec.ToResponse())
	}
	for _, p := range data.PaymentHistory {
		resp.PaymentHistory = append(resp.PaymentHistory, p.ToResponse())
	}

	return resp, nil
}
