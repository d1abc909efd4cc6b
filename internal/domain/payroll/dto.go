package payroll

import (
	"time"

	"github.com/homelesson/lms-backend-go/internal/pkg/validator"
)

// AdjustPayrollRequest patches bonus/deduction and optionally flips the
// paid flag. Omitted fields keep their stored values.
type AdjustPayrollRequest struct {
	ID        int64  `json:"-"`
	Bonus     *int64 `json:"bonus,omitempty"`
	Deduction *int64 `json:"deduction,omitempty"`
	Paid      *bool  `json:"paid,omitempty"`
}

func (r *AdjustPayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Bonus != nil && *r.Bonus < 0 {
		errs = append(errs, validator.ValidationError{Field: "bonus", Message: "must be non-negative"})
	}
	if r.Deduction != nil && *r.Deduction < 0 {
		errs = append(errs, validator.ValidationError{Field: "deduction", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordResponse struct {
	ID                 int64   `json:"id"`
	TeacherID          int64   `json:"teacher_id"`
	TeacherName        *string `json:"teacher_name,omitempty"`
	WeekNumber         int     `json:"week_number"`
	Year               int     `json:"year"`
	TeachingAllowance  int64   `json:"teaching_allowance"`
	TransportAllowance int64   `json:"transport_allowance"`
	Bonus              int64   `json:"bonus"`
	Deduction          int64   `json:"deduction"`
	TotalAmount        int64   `json:"total_amount"`
	Paid               bool    `json:"paid"`
	PaymentDate        *string `json:"payment_date,omitempty"`
	ProcessedBy        *int64  `json:"processed_by,omitempty"`
	ProcessedAt        string  `json:"processed_at"`
}

func (r Record) ToResponse() RecordResponse {
	resp := RecordResponse{
		ID:                 r.ID,
		TeacherID:          r.TeacherID,
		TeacherName:        r.TeacherName,
		WeekNumber:         r.WeekNumber,
		Year:               r.Year,
		TeachingAllowance:  r.TeachingAllowance,
		TransportAllowance: r.TransportAllowance,
		Bonus:              r.Bonus,
		Deduction:          r.Deduction,
		TotalAmount:        r.TotalAmount,
		Paid:               r.Paid,
		ProcessedBy:        r.ProcessedBy,
		ProcessedAt:        r.ProcessedAt.Format(time.RFC3339),
	}
	if r.PaymentDate != nil {
		d := r.PaymentDate.Format(time.RFC3339)
		resp.PaymentDate = &d
	}
	return resp
}

type WeekPayrollResponse struct {
	Payroll []RecordResponse `json:"payroll"`
	Total   int64            `json:"total"`
}

type ProcessPayrollResponse struct {
	Message string `json:"message"`
}

type PaymentResponse struct {
	ID          int64   `json:"id"`
	TeacherID   int64   `json:"teacher_id"`
	TeacherName *string `json:"teacher_name,omitempty"`
	Amount      int64   `json:"amount"`
	PaymentType string  `json:"payment_type"`
	Status      string  `json:"status"`
	Reference   string  `json:"reference"`
	Notes       *string `json:"notes,omitempty"`
	CreatedBy   *int64  `json:"created_by,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

func (p PaymentHistory) ToResponse() PaymentResponse {
	return PaymentResponse{
		ID:          p.ID,
		TeacherID:   p.TeacherID,
		TeacherName: p.TeacherName,
		Amount:      p.Amount,
		PaymentType: p.PaymentType,
		Status:      p.Status,
		Reference:   p.Reference,
		Notes:       p.Notes,
		CreatedBy:   p.CreatedBy,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
	}
}

type HistoryResponse struct {
	Payments []PaymentResponse `json:"payments"`
	Total    int64             `json:"total"`
}
