package teacher

import (
	"time"

	"github.com/homelesson/lms-backend-go/internal/pkg/validator"
)

type CreateTeacherRequest struct {
	Name               string   `json:"name"`
	Phone              *string  `json:"phone,omitempty"`
	Email              *string  `json:"email,omitempty"`
	Subjects           []string `json:"subjects"`
	TeachingAllowance  int64    `json:"teaching_allowance"`
	TransportAllowance int64    `json:"transport_allowance"`
	Status             string   `json:"status"`
	Notes              *string  `json:"notes,omitempty"`
}

func (r *CreateTeacherRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if r.Phone != nil && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "is not a valid phone number"})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "is not a valid email"})
	}
	if r.Subjects == nil {
		errs = append(errs, validator.ValidationError{Field: "subjects", Message: "must be an array"})
	}
	if r.TeachingAllowance < 0 {
		errs = append(errs, validator.ValidationError{Field: "teaching_allowance", Message: "must be non-negative"})
	}
	if r.TransportAllowance < 0 {
		errs = append(errs, validator.ValidationError{Field: "transport_allowance", Message: "must be non-negative"})
	}
	if !validator.IsInSlice(r.Status, ValidStatuses()) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be 'active', 'inactive' or 'on-leave'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateTeacherRequest is an enumerated patch: only the listed fields can
// change, and at least one must be supplied.
type UpdateTeacherRequest struct {
	ID                 int64     `json:"-"`
	Name               *string   `json:"name,omitempty"`
	Phone              *string   `json:"phone,omitempty"`
	Email              *string   `json:"email,omitempty"`
	Subjects           *[]string `json:"subjects,omitempty"`
	TeachingAllowance  *int64    `json:"teaching_allowance,omitempty"`
	TransportAllowance *int64    `json:"transport_allowance,omitempty"`
	Status             *string   `json:"status,omitempty"`
	Notes              *string   `json:"notes,omitempty"`
}

func (r *UpdateTeacherRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name == nil && r.Phone == nil && r.Email == nil && r.Subjects == nil &&
		r.TeachingAllowance == nil && r.TransportAllowance == nil && r.Status == nil && r.Notes == nil {
		errs = append(errs, validator.ValidationError{Field: "body", Message: "no fields to update"})
		return errs
	}

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must not be empty"})
	}
	if r.Phone != nil && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "is not a valid phone number"})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "is not a valid email"})
	}
	if r.TeachingAllowance != nil && *r.TeachingAllowance < 0 {
		errs = append(errs, validator.ValidationError{Field: "teaching_allowance", Message: "must be non-negative"})
	}
	if r.TransportAllowance != nil && *r.TransportAllowance < 0 {
		errs = append(errs, validator.ValidationError{Field: "transport_allowance", Message: "must be non-negative"})
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, ValidStatuses()) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be 'active', 'inactive' or 'on-leave'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceWeekResponse struct {
	WeekNumber int `json:"week_number"`
	Year       int `json:"year"`
	Percentage int `json:"percentage"`
}

type PayrollPeriodResponse struct {
	WeekNumber  int   `json:"week_number"`
	Year        int   `json:"year"`
	TotalAmount int64 `json:"total_amount"`
	Paid        bool  `json:"paid"`
}

type TeacherResponse struct {
	ID                 int64                    `json:"id"`
	Name               string                   `json:"name"`
	Phone              *string                  `json:"phone,omitempty"`
	Email              *string                  `json:"email,omitempty"`
	Subjects           []string                 `json:"subjects"`
	TeachingAllowance  int64                    `json:"teaching_allowance"`
	TransportAllowance int64                    `json:"transport_allowance"`
	Status             string                   `json:"status"`
	Notes              *string                  `json:"notes,omitempty"`
	CreatedAt          string                   `json:"created_at"`
	UpdatedAt          string                   `json:"updated_at"`
	AttendanceHistory  []AttendanceWeekResponse `json:"attendance_history,omitempty"`
	PayrollHistory     []PayrollPeriodResponse  `json:"payroll_history,omitempty"`
}

// ToResponse maps the entity, including any joined history rows.
func (t Teacher) ToResponse() TeacherResponse {
	resp := TeacherResponse{
		ID:                 t.ID,
		Name:               t.Name,
		Phone:              t.Phone,
		Email:              t.Email,
		Subjects:           t.Subjects,
		TeachingAllowance:  t.TeachingAllowance,
		TransportAllowance: t.TransportAllowance,
		Status:             string(t.Status),
		Notes:              t.Notes,
		CreatedAt:          t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          t.UpdatedAt.Format(time.RFC3339),
	}
	if resp.Subjects == nil {
		resp.Subjects = []string{}
	}
	for _, w := range t.AttendanceHistory {
		resp.AttendanceHistory = append(resp.AttendanceHistory, AttendanceWeekResponse{
			WeekNumber: w.WeekNumber,
			Year:       w.Year,
			Percentage: w.Percentage,
		})
	}
	for _, p := range t.PayrollHistory {
		resp.PayrollHistory = append(resp.PayrollHistory, PayrollPeriodResponse{
			WeekNumber:  p.WeekNumber,
			Year:        p.Year,
			TotalAmount: p.TotalAmount,
			Paid:        p.Paid,
		})
	}
	return resp
}

// AttendanceSummaryResponse - per-week lesson counts for one teacher
type AttendanceSummaryResponse struct {
	WeekNumber   int `json:"week_number"`
	Year         int `json:"year"`
	TotalLessons int `json:"total_lessons"`
	Present      int `json:"present"`
	Absent       int `json:"absent"`
	Late         int `json:"late"`
	Partial      int `json:"partial"`
	Percentage   int `json:"percentage"`
}
