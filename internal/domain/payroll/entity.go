package payroll

import "time"

// Record - one teacher's pay for one week. Unique per (teacher, week, year).
type Record struct {
	ID                 int64
	TeacherID          int64
	WeekNumber         int
	Year               int
	TeachingAllowance  int64
	TransportAllowance int64
	Bonus              int64
	Deduction          int64
	TotalAmount        int64
	Paid               bool
	PaymentDate        *time.Time
	ProcessedBy        *int64
	ProcessedAt        time.Time

	// Joined fields
	TeacherName *string
}

// PaymentHistory - append-only log row written when a record is paid.
// Never updated or deleted.
type PaymentHistory struct {
	ID          int64
	TeacherID   int64
	Amount      int64
	PaymentType string
	Status      string
	Reference   string
	Notes       *string
	CreatedBy   *int64
	CreatedAt   time.Time

	// Joined fields
	TeacherName *string
}

const (
	PaymentTypeWeeklyPayroll = "weekly_payroll"
	PaymentStatusCompleted   = "completed"
)

// AttendanceCount - per-teacher lesson counts used to derive eligibility
type AttendanceCount struct {
	TeacherID    int64
	TotalLessons int
	Attended     int
}
