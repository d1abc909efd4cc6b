package user

import "time"

// User - back-office account. Admin accounts can mutate teachers,
// timetable and payroll; regular accounts are read-mostly.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
}
