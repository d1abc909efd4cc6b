package payroll

import "context"

// PayrollRepository defines data access methods for payroll records and
// the payment history log.
type PayrollRepository interface {
	// AttendanceCounts aggregates per-teacher lesson counts for one week.
	AttendanceCounts(ctx context.Context, week, year int) ([]AttendanceCount, error)

	// Upsert writes the computed amounts for (teacher, week, year).
	// An existing row keeps its bonus, deduction, paid flag and payment
	// date; a new row starts with bonus=deduction=0 and paid=false.
	Upsert(ctx context.Context, rec Record) (Record, error)

	GetByID(ctx context.Context, id int64) (Record, error)

	// UpdateAdjustments persists the recomputed totals. paid=nil leaves
	// the paid flag and payment date untouched; the first transition to
	// paid sets the payment date exactly once.
	UpdateAdjustments(ctx context.Context, id int64, bonus, deduction, total int64, paid *bool) (Record, error)

	ListByWeek(ctx context.Context, week, year int) ([]Record, error)
	WeekTotal(ctx context.Context, week, year int) (int64, error)

	InsertPaymentHistory(ctx context.Context, ph PaymentHistory) (PaymentHistory, error)
	ListPaymentHistory(ctx context.Context, limit, offset int) ([]PaymentHistory, int64, error)
}
