package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/homelesson/lms-backend-go/internal/domain/payroll"
	"github.com/homelesson/lms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type payrollRepository struct {
	db *database.DB
}

// AttendanceCounts implements payroll.PayrollRepository.
func (r *payrollRepository) AttendanceCounts(ctx context.Context, week, year int) ([]payroll.AttendanceCount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT teacher_id,
			   COUNT(*)::int,
			   COUNT(*) FILTER (WHERE status IN ('present', 'late'))::int
		FROM attendance
		WHERE week_number = $1 AND year = $2
		GROUP BY teacher_id
	`

	rows, err := q.Query(ctx, query, week, year)
	if err != nil {
		return nil, fmt.Errorf("failed to count attendance: %w", err)
	}
	defer rows.Close()

	var counts []payroll.AttendanceCount
	for rows.Next() {
		var c payroll.AttendanceCount
		if err := rows.Scan(&c.TeacherID, &c.TotalLessons, &c.Attended); err != nil {
			return nil, fmt.Errorf("failed to scan attendance count: %w", err)
		}
		counts = append(counts, c)
	}

	return counts, rows.Err()
}

// Upsert implements payroll.PayrollRepository. Reprocessing a week refreshes
// the computed allowances but never touches manual adjustments or the paid
// state of an existing row.
func (r *payrollRepository) Upsert(ctx context.Context, rec payroll.Record) (payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll (
			teacher_id, week_number, year, teaching_allowance,
			transport_allowance, total_amount, processed_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		)
		ON CONFLICT (teacher_id, week_number, year)
		DO UPDATE SET
			teaching_allowance = EXCLUDED.teaching_allowance,
			transport_allowance = EXCLUDED.transport_allowance,
			total_amount = EXCLUDED.total_amount,
			processed_by = EXCLUDED.processed_by,
			processed_at = NOW()
		RETURNING id, bonus, deduction, total_amount, paid, payment_date, processed_at
	`

	err := q.QueryRow(ctx, query,
		rec.TeacherID,
		rec.WeekNumber,
		rec.Year,
		rec.TeachingAllowance,
		rec.TransportAllowance,
		rec.TotalAmount,
		rec.ProcessedBy,
	).Scan(&rec.ID, &rec.Bonus, &rec.Deduction, &rec.TotalAmount, &rec.Paid, &rec.PaymentDate, &rec.ProcessedAt)

	if err != nil {
		return payroll.Record{}, fmt.Errorf("failed to upsert payroll: %w", err)
	}

	return rec, nil
}

// GetByID implements payroll.PayrollRepository.
func (r *payrollRepository) GetByID(ctx context.Context, id int64) (payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.teacher_id, p.week_number, p.year, p.teaching_allowance,
			   p.transport_allowance, p.bonus, p.deduction, p.total_amount,
			   p.paid, p.payment_date, p.processed_by, p.processed_at, t.name
		FROM payroll p
		JOIN teachers t ON t.id = p.teacher_id
		WHERE p.id = $1
	`

	var rec payroll.Record
	err := q.QueryRow(ctx, query, id).Scan(
		&rec.ID, &rec.TeacherID, &rec.WeekNumber, &rec.Year, &rec.TeachingAllowance,
		&rec.TransportAllowance, &rec.Bonus, &rec.Deduction, &rec.TotalAmount,
		&rec.Paid, &rec.PaymentDate, &rec.ProcessedBy, &rec.ProcessedAt, &rec.TeacherName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Record{}, payroll.ErrRecordNotFound
		}
		return payroll.Record{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return rec, nil
}

// UpdateAdjustments implements payroll.PayrollRepository. The payment date
// is written once, on the first transition to paid, and survives later
// adjustments.
func (r *payrollRepository) UpdateAdjustments(ctx context.Context, id int64, bonus, deduction, total int64, paid *bool) (payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll
		SET bonus = $1,
			deduction = $2,
			total_amount = $3,
			paid = COALESCE($4, paid),
			payment_date = CASE
				WHEN $4 = true AND payment_date IS NULL THEN NOW()
				ELSE payment_date
			END
		WHERE id = $5
		RETURNING id, teacher_id, week_number, year, teaching_allowance,
				  transport_allowance, bonus, deduction, total_amount,
				  paid, payment_date, processed_by, processed_at
	`

	var rec payroll.Record
	err := q.QueryRow(ctx, query, bonus, deduction, total, paid, id).Scan(
		&rec.ID, &rec.TeacherID, &rec.WeekNumber, &rec.Year, &rec.TeachingAllowance,
		&rec.TransportAllowance, &rec.Bonus, &rec.Deduction, &rec.TotalAmount,
		&rec.Paid, &rec.PaymentDate, &rec.ProcessedBy, &rec.ProcessedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Record{}, payroll.ErrRecordNotFound
		}
		return payroll.Record{}, fmt.Errorf("failed to adjust payroll: %w", err)
	}

	return rec, nil
}

// ListByWeek implements payroll.PayrollRepository.
func (r *payrollRepository) ListByWeek(ctx context.Context, week, year int) ([]payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.teacher_id, p.week_number, p.year, p.teaching_allowance,
			   p.transport_allowance, p.bonus, p.deduction, p.total_amount,
			   p.paid, p.payment_date, p.processed_by, p.processed_at, t.name
		FROM payroll p
		JOIN teachers t ON t.id = p.teacher_id
		WHERE p.week_number = $1 AND p.year = $2
		ORDER BY t.name
	`

	rows, err := q.Query(ctx, query, week, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll: %w", err)
	}
	defer rows.Close()

	var records []payroll.Record
	for rows.Next() {
		var rec payroll.Record
		err := rows.Scan(
			&rec.ID, &rec.TeacherID, &rec.WeekNumber, &rec.Year, &rec.TeachingAllowance,
			&rec.TransportAllowance, &rec.Bonus, &rec.Deduction, &rec.TotalAmount,
			&rec.Paid, &rec.PaymentDate, &rec.ProcessedBy, &rec.ProcessedAt, &rec.TeacherName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// WeekTotal implements payroll.PayrollRepository.
func (r *payrollRepository) WeekTotal(ctx context.Context, week, year int) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	err := q.QueryRow(ctx,
		`SELECT COALESCE(SUM(total_amount), 0)::bigint FROM payroll WHERE week_number = $1 AND year = $2`,
		week, year,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to total week payroll: %w", err)
	}

	return total, nil
}

// InsertPaymentHistory implements payroll.PayrollRepository.
func (r *payrollRepository) InsertPaymentHistory(ctx context.Context, ph payroll.PaymentHistory) (payroll.PaymentHistory, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payment_history (
			teacher_id, amount, payment_type, status, reference, notes, created_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		) RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		ph.TeacherID,
		ph.Amount,
		ph.PaymentType,
		ph.Status,
		ph.Reference,
		ph.Notes,
		ph.CreatedBy,
	).Scan(&ph.ID, &ph.CreatedAt)

	if err != nil {
		return payroll.PaymentHistory{}, fmt.Errorf("failed to insert payment history: %w", err)
	}

	return ph, nil
}

// ListPaymentHistory implements payroll.PayrollRepository.
func (r *payrollRepository) ListPaymentHistory(ctx context.Context, limit, offset int) ([]payroll.PaymentHistory, int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM payment_history`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count payment history: %w", err)
	}

	query := `
		SELECT ph.id, ph.teacher_id, ph.amount, ph.payment_type, ph.status,
			   ph.reference, ph.notes, ph.created_by, ph.created_at, t.name
		FROM payment_history ph
		JOIN teachers t ON t.id = ph.teacher_id
		ORDER BY ph.created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payment history: %w", err)
	}
	defer rows.Close()

	var payments []payroll.PaymentHistory
	for rows.Next() {
		var ph payroll.PaymentHistory
		err := rows.Scan(
			&ph.ID, &ph.TeacherID, &ph.Amount, &ph.PaymentType, &ph.Status,
			&ph.Reference, &ph.Notes, &ph.CreatedBy, &ph.CreatedAt, &ph.TeacherName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan payment history: %w", err)
		}
		payments = append(payments, ph)
	}

	return payments, total, rows.Err()
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}
