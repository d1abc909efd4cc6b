package teacher

import "time"

// Status enum
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusOnLeave  Status = "on-leave"
)

func ValidStatuses() []string {
	return []string{string(StatusActive), string(StatusInactive), string(StatusOnLeave)}
}

// Teacher - tutor paid per week from attendance
type Teacher struct {
	ID                 int64
	Name               string
	Phone              *string
	Email              *string
	Subjects           []string
	TeachingAllowance  int64
	TransportAllowance int64
	Status             Status
	Notes              *string
	CreatedAt          time.Time
	UpdatedAt          time.Time

	// Joined fields
	AttendanceHistory []AttendanceWeek // last 4 recorded weeks
	PayrollHistory    []PayrollPeriod  // last 8 payroll periods
}

// AttendanceWeek - one recorded week with its attendance percentage
type AttendanceWeek struct {
	WeekNumber int
	Year       int
	Percentage int
}

// PayrollPeriod - compact payroll history entry embedded in teacher detail
type PayrollPeriod struct {
	WeekNumber  int
	Year        int
	TotalAmount int64
	Paid        bool
}
