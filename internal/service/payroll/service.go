package payroll

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/homelesson/lms-backend-go/internal/domain/payroll"
	"github.com/homelesson/lms-backend-go/internal/domain/settings"
	"github.com/homelesson/lms-backend-go/internal/domain/teacher"
	"github.com/homelesson/lms-backend-go/internal/pkg/database"
	"github.com/homelesson/lms-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type PayrollServiceImpl struct {
	db           *database.DB
	payrollRepo  payroll.PayrollRepository
	teacherRepo  teacher.TeacherRepository
	settingsRepo settings.SettingsRepository
}

func NewPayrollService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	teacherRepo teacher.TeacherRepository,
	settingsRepo settings.SettingsRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:           db,
		payrollRepo:  payrollRepo,
		teacherRepo:  teacherRepo,
		settingsRepo: settingsRepo,
	}
}

// allowanceSettings holds the effective payroll configuration for one run.
type allowanceSettings struct {
	teachingDefault  int64
	transportDefault int64
	transportEnabled bool
}

func actorIDFromContext(ctx context.Context) *int64 {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return nil
	}
	raw, ok := claims["user_id"].(float64)
	if !ok {
		return nil
	}
	id := int64(raw)
	return &id
}

// Process computes one payroll record per active teacher for the week.
// Teachers without any attended lesson get zero allowances; everyone else
// gets the full weekly amounts.
func (s *PayrollServiceImpl) Process(ctx context.Context, week, year int) (payroll.ProcessPayrollResponse, error) {
	actorID := actorIDFromContext(ctx)

	var processed int
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		cfg, err := s.loadSettings(txCtx)
		if err != nil {
			return err
		}

		teachers, err := s.teacherRepo.GetActive(txCtx)
		if err != nil {
			return err
		}

		counts, err := s.payrollRepo.AttendanceCounts(txCtx, week, year)
		if err != nil {
			return err
		}
		attendedByTeacher := make(map[int64]int, len(counts))
		for _, c := range counts {
			attendedByTeacher[c.TeacherID] = c.Attended
		}

		for _, t := range teachers {
			teaching, transport := computeAllowances(
				attendedByTeacher[t.ID],
				cfg.teachingDefault,
				cfg.transportDefault,
				cfg.transportEnabled,
			)

			_, err := s.payrollRepo.Upsert(txCtx, payroll.Record{
				TeacherID:          t.ID,
				WeekNumber:         week,
				Year:               year,
				TeachingAllowance:  teaching,
				TransportAllowance: transport,
				TotalAmount:        teaching + transport,
				ProcessedBy:        actorID,
			})
			if err != nil {
				return err
			}
			processed++
		}

		return nil
	})
	if err != nil {
		return payroll.ProcessPayrollResponse{}, fmt.Errorf("%w: %v", payroll.ErrProcessingFailed, err)
	}

	return payroll.ProcessPayrollResponse{
		Message: fmt.Sprintf("Payroll processed for %d teachers for Week %d, %d", processed, week, year),
	}, nil
}

// Adjust recomputes the total from the stored allowances and the new
// adjustments. The first transition to paid also appends one payment
// history row; paying an already paid record appends nothing.
func (s *PayrollServiceImpl) Adjust(ctx context.Context, req payroll.AdjustPayrollRequest) (payroll.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.RecordResponse{}, err
	}

	actorID := actorIDFromContext(ctx)

	var updated payroll.Record
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		current, err := s.payrollRepo.GetByID(txCtx, req.ID)
		if err != nil {
			return err
		}

		bonus := current.Bonus
		if req.Bonus != nil {
			bonus = *req.Bonus
		}
		deduction := current.Deduction
		if req.Deduction != nil {
			deduction = *req.Deduction
		}
		total := adjustTotal(current.TeachingAllowance, current.TransportAllowance, bonus, deduction)

		updated, err = s.payrollRepo.UpdateAdjustments(txCtx, req.ID, bonus, deduction, total, req.Paid)
		if err != nil {
			return err
		}
		updated.TeacherName = current.TeacherName

		if req.Paid != nil && *req.Paid && !current.Paid {
			note := fmt.Sprintf("Weekly payroll for Week %d, %d", updated.WeekNumber, updated.Year)
			_, err = s.payrollRepo.InsertPaymentHistory(txCtx, payroll.PaymentHistory{
				TeacherID:   updated.TeacherID,
				Amount:      updated.TotalAmount,
				PaymentType: payroll.PaymentTypeWeeklyPayroll,
				Status:      payroll.PaymentStatusCompleted,
				Reference:   paymentReference(updated.TeacherID, updated.WeekNumber),
				Notes:       &note,
				CreatedBy:   actorID,
			})
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return payroll.RecordResponse{}, err
	}

	return updated.ToResponse(), nil
}

func (s *PayrollServiceImpl) Week(ctx context.Context, week, year int) (payroll.WeekPayrollResponse, error) {
	records, err := s.payrollRepo.ListByWeek(ctx, week, year)
	if err != nil {
		return payroll.WeekPayrollResponse{}, err
	}

	total, err := s.payrollRepo.WeekTotal(ctx, week, year)
	if err != nil {
		return payroll.WeekPayrollResponse{}, err
	}

	resp := payroll.WeekPayrollResponse{Payroll: []payroll.RecordResponse{}, Total: total}
	for _, rec := range records {
		resp.Payroll = append(resp.Payroll, rec.ToResponse())
	}

	return resp, nil
}

func (s *PayrollServiceImpl) History(ctx context.Context, limit, offset int) (payroll.HistoryResponse, error) {
	payments, total, err := s.payrollRepo.ListPaymentHistory(ctx, limit, offset)
	if err != nil {
		return payroll.HistoryResponse{}, err
	}

	resp := payroll.HistoryResponse{Payments: []payroll.PaymentResponse{}, Total: total}
	for _, p := range payments {
		resp.Payments = append(resp.Payments, p.ToResponse())
	}

	return resp, nil
}

func (s *PayrollServiceImpl) loadSettings(ctx context.Context) (allowanceSettings, error) {
	cfg := allowanceSettings{
		teachingDefault:  settings.DefaultTeachingAllowance,
		transportDefault: settings.DefaultTransportAllowance,
	}

	if v, err := s.getSetting(ctx, settings.KeyTeachingAllowance); err != nil {
		return allowanceSettings{}, err
	} else if v != "" {
		if amount, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.teachingDefault = amount
		}
	}

	if v, err := s.getSetting(ctx, settings.KeyTransportAllowance); err != nil {
		return allowanceSettings{}, err
	} else if v != "" {
		if amount, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.transportDefault = amount
		}
	}

	// Transport stays off unless the toggle is stored as exactly "true".
	v, err := s.getSetting(ctx, settings.KeyEnableTransportAllowance)
	if err != nil {
		return allowanceSettings{}, err
	}
	cfg.transportEnabled = v == "true"

	return cfg, nil
}

func (s *PayrollServiceImpl) getSetting(ctx context.Context, key string) (string, error) {
	v, err := s.settingsRepo.Get(ctx, key)
	if err != nil {
		if errors.Is(err, settings.ErrSettingNotFound) {
			return "", nil
		}
		return "", err
	}
	return v, nil
}

// computeAllowances applies the eligibility rule: any attended lesson in
// the week earns the full weekly allowances, none earns nothing.
func computeAllowances(attended int, teaching, transport int64, transportEnabled bool) (int64, int64) {
	if attended == 0 {
		return 0, 0
	}
	if !transportEnabled {
		transport = 0
	}
	return teaching, transport
}

func adjustTotal(teaching, transport, bonus, deduction int64) int64 {
	return teaching + transport + bonus - deduction
}

func paymentReference(teacherID int64, week int) string {
	return fmt.Sprintf("PAY-%d-%d-%s", teacherID, week, uuid.New().String())
}
