package payroll

import "context"

type PayrollService interface {
	// Process computes and upserts one record per active teacher for the
	// week, all inside a single transaction.
	Process(ctx context.Context, week, year int) (ProcessPayrollResponse, error)

	// Adjust applies bonus/deduction changes and, on the first paid=true
	// transition, appends exactly one payment history row.
	Adjust(ctx context.Context, req AdjustPayrollRequest) (RecordResponse, error)

	Week(ctx context.Context, week, year int) (WeekPayrollResponse, error)
	History(ctx context.Context, limit, offset int) (HistoryResponse, error)
}
