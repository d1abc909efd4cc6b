package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/homelesson/lms-backend-go/internal/domain/teacher"
	"github.com/homelesson/lms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type teacherRepository struct {
	db *database.DB
}

// attendanceWeekAgg mirrors the json_agg payload built in SQL.
type attendanceWeekAgg struct {
	WeekNumber int `json:"week_number"`
	Year       int `json:"year"`
	Percentage int `json:"percentage"`
}

type payrollPeriodAgg struct {
	WeekNumber  int   `json:"week_number"`
	Year        int   `json:"year"`
	TotalAmount int64 `json:"total_amount"`
	Paid        bool  `json:"paid"`
}

// List implements teacher.TeacherRepository.
func (r *teacherRepository) List(ctx context.Context) ([]teacher.Teacher, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.name, t.phone, t.email, t.subjects, t.teaching_allowance,
			   t.transport_allowance, t.status, t.notes, t.created_at, t.updated_at,
			   COALESCE(ah.history, '[]'::json)
		FROM teachers t
		LEFT JOIN LATERAL (
			SELECT json_agg(w) AS history FROM (
				SELECT a.week_number, a.year,
					   ROUND(COUNT(*) FILTER (WHERE a.status IN ('present', 'late')) * 100.0 / COUNT(*))::int AS percentage
				FROM attendance a
				WHERE a.teacher_id = t.id
				GROUP BY a.year, a.week_number
				ORDER BY a.year DESC, a.week_number DESC
				LIMIT 4
			) w
		) ah ON true
		ORDER BY t.name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list teachers: %w", err)
	}
	defer rows.Close()

	var teachers []teacher.Teacher
	for rows.Next() {
		var t teacher.Teacher
		var history []byte
		err := rows.Scan(
			&t.ID, &t.Name, &t.Phone, &t.Email, &t.Subjects, &t.TeachingAllowance,
			&t.TransportAllowance, &t.Status, &t.Notes, &t.CreatedAt, &t.UpdatedAt,
			&history,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan teacher: %w", err)
		}
		t.AttendanceHistory, err = parseAttendanceHistory(history)
		if err != nil {
			return nil, err
		}
		teachers = append(teachers, t)
	}

	return teachers, rows.Err()
}

// GetByID implements teacher.TeacherRepository.
func (r *teacherRepository) GetByID(ctx context.Context, id int64) (teacher.Teacher, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.name, t.phone, t.email, t.subjects, t.teaching_allowance,
			   t.transport_allowance, t.status, t.notes, t.created_at, t.updated_at,
			   COALESCE(ah.history, '[]'::json),
			   COALESCE(ph.history, '[]'::json)
		FROM teachers t
		LEFT JOIN LATERAL (
			SELECT json_agg(w) AS history FROM (
				SELECT a.week_number, a.year,
					   ROUND(COUNT(*) FILTER (WHERE a.status IN ('present', 'late')) * 100.0 / COUNT(*))::int AS percentage
				FROM attendance a
				WHERE a.teacher_id = t.id
				GROUP BY a.year, a.week_number
				ORDER BY a.year DESC, a.week_number DESC
				LIMIT 4
			) w
		) ah ON true
		LEFT JOIN LATERAL (
			SELECT json_agg(p) AS history FROM (
				SELECT pr.week_number, pr.year, pr.total_amount, pr.paid
				FROM payroll pr
				WHERE pr.teacher_id = t.id
				ORDER BY pr.year DESC, pr.week_number DESC
				LIMIT 8
			) p
		) ph ON true
		WHERE t.id = $1
	`

	var t teacher.Teacher
	var attHistory, payHistory []byte
	err := q.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Name, &t.Phone, &t.Email, &t.Subjects, &t.TeachingAllowance,
		&t.TransportAllowance, &t.Status, &t.Notes, &t.CreatedAt, &t.UpdatedAt,
		&attHistory, &payHistory,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return teacher.Teacher{}, teacher.ErrTeacherNotFound
		}
		return teacher.Teacher{}, fmt.Errorf("failed to get teacher: %w", err)
	}

	if t.AttendanceHistory, err = parseAttendanceHistory(attHistory); err != nil {
		return teacher.Teacher{}, err
	}
	if t.PayrollHistory, err = parsePayrollHistory(payHistory); err != nil {
		return teacher.Teacher{}, err
	}

	return t, nil
}

// GetActive implements teacher.TeacherRepository.
func (r *teacherRepository) GetActive(ctx context.Context) ([]teacher.Teacher, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, phone, email, subjects, teaching_allowance,
			   transport_allowance, status, notes, created_at, updated_at
		FROM teachers
		WHERE status = 'active'
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active teachers: %w", err)
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
			return nil, fmt.Errorf("failed to scan teacher: %w", err)
		}
		teachers = append(teachers, t)
	}

	return teachers, rows.Err()
}

// Create implements teacher.TeacherRepository.
func (r *teacherRepository) Create(ctx context.Context, t teacher.Teacher) (teacher.Teacher, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO teachers (
			name, phone, email, subjects, teaching_allowance,
			transport_allowance, status, notes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		t.Name,
		t.Phone,
		t.Email,
		t.Subjects,
		t.TeachingAllowance,
		t.TransportAllowance,
		t.Status,
		t.Notes,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)

	if err != nil {
		return teacher.Teacher{}, fmt.Errorf("failed to create teacher: %w", err)
	}

	return t, nil
}

// Update implements teacher.TeacherRepository. Only the fields present in
// the request are touched.
func (r *teacherRepository) Update(ctx context.Context, req teacher.UpdateTeacherRequest) (teacher.Teacher, error) {
	q := GetQuerier(ctx, r.db)

	setClauses := []string{}
	args := []interface{}{}
	argIdx := 1

	addSet := func(column string, value interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}

	if req.Name != nil {
		addSet("name", *req.Name)
	}
	if req.Phone != nil {
		addSet("phone", *req.Phone)
	}
	if req.Email != nil {
		addSet("email", *req.Email)
	}
	if req.Subjects != nil {
		addSet("subjects", *req.Subjects)
	}
	if req.TeachingAllowance != nil {
		addSet("teaching_allowance", *req.TeachingAllowance)
	}
	if req.TransportAllowance != nil {
		addSet("transport_allowance", *req.TransportAllowance)
	}
	if req.Status != nil {
		addSet("status", *req.Status)
	}
	if req.Notes != nil {
		addSet("notes", *req.Notes)
	}

	if len(setClauses) == 0 {
		return teacher.Teacher{}, teacher.ErrNoFieldsToUpdate
	}

	setClauses = append(setClauses, "updated_at = NOW()")
	args = append(args, req.ID)

	query := fmt.Sprintf(`
		UPDATE teachers
		SET %s
		WHERE id = $%d
		RETURNING id, name, phone, email, subjects, teaching_allowance,
				  transport_allowance, status, notes, created_at, updated_at
	`, strings.Join(setClauses, ", "), argIdx)

	var t teacher.Teacher
	err := q.QueryRow(ctx, query, args...).Scan(
		&t.ID, &t.Name, &t.Phone, &t.Email, &t.Subjects, &t.TeachingAllowance,
		&t.TransportAllowance, &t.Status, &t.Notes, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return teacher.Teacher{}, teacher.ErrTeacherNotFound
		}
		return teacher.Teacher{}, fmt.Errorf("failed to update teacher: %w", err)
	}

	return t, nil
}

// Delete implements teacher.TeacherRepository. Dependent attendance and
// payroll rows go with the teacher via ON DELETE CASCADE.
func (r *teacherRepository) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM teachers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete teacher: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return teacher.ErrTeacherNotFound
	}

	return nil
}

// AttendanceSummary implements teacher.TeacherRepository.
func (r *teacherRepository) AttendanceSummary(ctx context.Context, id int64, week, year int) (teacher.AttendanceSummaryResponse, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*),
			   COUNT(*) FILTER (WHERE status = 'present'),
			   COUNT(*) FILTER (WHERE status = 'absent'),
			   COUNT(*) FILTER (WHERE status = 'late'),
			   COUNT(*) FILTER (WHERE status = 'partial'),
			   COALESCE(ROUND(COUNT(*) FILTER (WHERE status IN ('present', 'late')) * 100.0 / NULLIF(COUNT(*), 0)), 0)::int
		FROM attendance
		WHERE teacher_id = $1 AND week_number = $2 AND year = $3
	`

	summary := teacher.AttendanceSummaryResponse{WeekNumber: week, Year: year}
	err := q.QueryRow(ctx, query, id, week, year).Scan(
		&summary.TotalLessons,
		&summary.Present,
		&summary.Absent,
		&summary.Late,
		&summary.Partial,
		&summary.Percentage,
	)
	if err != nil {
		return teacher.AttendanceSummaryResponse{}, fmt.Errorf("failed to summarize attendance: %w", err)
	}

	return summary, nil
}

func parseAttendanceHistory(raw []byte) ([]teacher.AttendanceWeek, error) {
	var agg []attendanceWeekAgg
	if err := json.Unmarshal(raw, &agg); err != nil {
		return nil, fmt.Errorf("failed to decode attendance history: %w", err)
	}
	history := make([]teacher.AttendanceWeek, 0, len(agg))
	for _, w := range agg {
		history = append(history, teacher.AttendanceWeek{
			WeekNumber: w.WeekNumber,
			Year:       w.Year,
			Percentage: w.Percentage,
		})
	}
	return history, nil
}

func parsePayrollHistory(raw []byte) ([]teacher.PayrollPeriod, error) {
	var agg []payrollPeriodAgg
	if err := json.Unmarshal(raw, &agg); err != nil {
		return nil, fmt.Errorf("failed to decode payroll history: %w", err)
	}
	history := make([]teacher.PayrollPeriod, 0, len(agg))
	for _, p := range agg {
		history = append(history, teacher.PayrollPeriod{
			WeekNumber:  p.WeekNumber,
			Year:        p.Year,
			TotalAmount: p.TotalAmount,
			Paid:        p.Paid,
		})
	}
	return history, nil
}

func NewTeacherRepository(db *database.DB) teacher.TeacherRepository {
	return &teacherRepository{db: db}
}
