package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/homelesson/lms-backend-go/internal/domain/attendance"
	"github.com/homelesson/lms-backend-go/internal/domain/payroll"
	"github.com/homelesson/lms-backend-go/internal/domain/report"
	"github.com/homelesson/lms-backend-go/internal/domain/teacher"
	"github.com/homelesson/lms-backend-go/internal/domain/timetable"
	"github.com/homelesson/lms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type reportRepository struct {
	db *database.DB
}

// Insert implements report.ReportRepository.
func (r *reportRepository) Insert(ctx context.Context, rep report.Report) (report.Report, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO reports (report_type, description, generated_by)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query, rep.ReportType, rep.Description, rep.GeneratedBy).
		Scan(&rep.ID, &rep.CreatedAt)
	if err != nil {
		return report.Report{}, fmt.Errorf("failed to insert report: %w", err)
	}

	return rep, nil
}

// List implements report.ReportRepository.
func (r *reportRepository) List(ctx context.Context, limit, offset int) ([]report.Report, int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM reports`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count reports: %w", err)
	}

	query := `
		SELECT r.id, r.report_type, r.description, r.generated_by, r.created_at, u.username
		FROM reports r
		LEFT JOIN users u ON u.id = r.generated_by
		ORDER BY r.created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	var reports []report.Report
	for rows.Next() {
		var rep report.Report
		err := rows.Scan(&rep.ID, &rep.ReportType, &rep.Description, &rep.GeneratedBy, &rep.CreatedAt, &rep.GeneratedByName)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan report: %w", err)
		}
		reports = append(reports, rep)
	}

	return reports, total, rows.Err()
}

// TeacherWeekAttendance implements report.ReportRepository.
func (r *reportRepository) TeacherWeekAttendance(ctx context.Context, teacherID int64, weekNumber, year int) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.teacher_id, a.timetable_id, a.week_number, a.year,
			   a.day_of_week, a.status, a.notes, a.recorded_by, a.recorded_at,
			   tt.time_slot, s.name
		FROM attendance a
		JOIN timetable tt ON tt.id = a.timetable_id
		LEFT JOIN subjects s ON s.id = tt.subject_id
		WHERE a.teacher_id = $1 AND a.week_number = $2 AND a.year = $3
		ORDER BY a.day_of_week, tt.time_slot
	`

	rows, err := q.Query(ctx, query, teacherID, weekNumber, year)
	if err != nil {
		return nil, fmt.Errorf("failed to load report attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		err := rows.Scan(
			&rec.ID, &rec.TeacherID, &rec.TimetableID, &rec.WeekNumber, &rec.Year,
			&rec.DayOfWeek, &rec.Status, &rec.Notes, &rec.RecordedBy, &rec.RecordedAt,
			&rec.TimeSlot, &rec.SubjectName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report attendance: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// TeacherWeekPayroll implements report.ReportRepository.
func (r *reportRepository) TeacherWeekPayroll(ctx context.Context, teacherID int64, weekNumber, year int) (payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, teacher_id, week_number, year, teaching_allowance,
			   transport_allowance, bonus, deduction, total_amount,
			   paid, payment_date, processed_by, processed_at
		FROM payroll
		WHERE teacher_id = $1 AND week_number = $2 AND year = $3
	`

	var rec payroll.Record
	err := q.QueryRow(ctx, query, teacherID, weekNumber, year).Scan(
		&rec.ID, &rec.TeacherID, &rec.WeekNumber, &rec.Year, &rec.TeachingAllowance,
		&rec.TransportAllowance, &rec.Bonus, &rec.Deduction, &rec.TotalAmount,
		&rec.Paid, &rec.PaymentDate, &rec.ProcessedBy, &rec.ProcessedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Record{}, payroll.ErrRecordNotFound
		}
		return payroll.Record{}, fmt.Errorf("failed to load report payroll: %w", err)
	}

	return rec, nil
}

// Export implements report.ReportRepository.
func (r *reportRepository) Export(ctx context.Context) (report.ExportData, error) {
	var data report.ExportData
	var err error

	if data.Teachers, err = r.exportTeachers(ctx); err != nil {
		return report.ExportData{}, err
	}
	if data.Subjects, err = r.exportSubjects(ctx); err != nil {
		return report.ExportData{}, err
	}
	if data.Timetable, err = NewTimetableRepository(r.db).ListAll(ctx); err != nil {
		return report.ExportData{}, err
	}
	if data.Attendance, err = r.exportAttendance(ctx); err != nil {
		return report.ExportData{}, err
	}
	if data.Payroll, err = r.exportPayroll(ctx); err != nil {
		return report.ExportData{}, err
	}
	if data.PaymentHistory, err = r.exportPaymentHistory(ctx); err != nil {
		return report.ExportData{}, err
	}

	return data, nil
}

func (r *reportRepository) exportTeachers(ctx context.Context) ([]teacher.Teacher, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, phone, email, subjects, teaching_allowance,
			   transport_allowance, status, notes, created_at, updated_at
		FROM teachers
		ORDER BY id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to export teachers: %w", err)
	}
	defer rows.Close()

	var teachers []teacher.Teacher
	for rows.Next() {
		var t teacher.Teacher
		err := rows.Scan(
			&t.ID, &t.Name, &t.Phone, &t.Email, &t.Subjects, &t.TeachingAllowance,
			&t.TransportAllowance, &t.Status, &t.Notes, &t.CreatedAt, &t.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan exported teacher: %w", err)
		}
		teachers = append(teachers, t)
	}

	return teachers, rows.Err()
}

func (r *reportRepository) exportSubjects(ctx context.Context) ([]timetable.Subject, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, name FROM subjects ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to export subjects: %w", err)
	}
	defer rows.Close()

	var subjects []timetable.Subject
	for rows.Next() {
		var s timetable.Subject
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, fmt.Errorf("failed to scan exported subject: %w", err)
		}
		subjects = append(subjects, s)
	}

	return subjects, rows.Err()
}

func (r *reportRepository) exportAttendance(ctx context.Context) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, teacher_id, timetable_id, week_number, year,
			   day_of_week, status, notes, recorded_by, recorded_at
		FROM attendance
		ORDER BY year, week_number, day_of_week
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to export attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		err := rows.Scan(
			&rec.ID, &rec.TeacherID, &rec.TimetableID, &rec.WeekNumber, &rec.Year,
			&rec.DayOfWeek, &rec.Status, &rec.Notes, &rec.RecordedBy, &rec.RecordedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan exported attendance: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

func (r *reportRepository) exportPayroll(ctx context.Context) ([]payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, teacher_id, week_number, year, teaching_allowance,
			   transport_allowance, bonus, deduction, total_amount,
			   paid, payment_date, processed_by, processed_at
		FROM payroll
		ORDER BY year, week_number, teacher_id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to export payroll: %w", err)
	}
	defer rows.Close()

	var records []payroll.Record
	for rows.Next() {
		var rec payroll.Record
		err := rows.Scan(
			&rec.ID, &rec.TeacherID, &rec.WeekNumber, &rec.Year, &rec.TeachingAllowance,
			&rec.TransportAllowance, &rec.Bonus, &rec.Deduction, &rec.TotalAmount,
			&rec.Paid, &rec.PaymentDate, &rec.ProcessedBy, &rec.ProcessedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan exported payroll: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

func (r *reportRepository) exportPaymentHistory(ctx context.Context) ([]payroll.PaymentHistory, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, teacher_id, amount, payment_type, status,
			   reference, notes, created_by, created_at
		FROM payment_history
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to export payment history: %w", err)
	}
	defer rows.Close()

	var payments []payroll.PaymentHistory
	for rows.Next() {
		var ph payroll.PaymentHistory
		err := rows.Scan(
			&ph.ID, &ph.TeacherID, &ph.Amount, &ph.PaymentType, &ph.Status,
			&ph.Reference, &ph.Notes, &ph.CreatedBy, &ph.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan exported payment: %w", err)
		}
		payments = append(payments, ph)
	}

	return payments, rows.Err()
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepository{db: db}
}
