package attendance

import "time"

// Status enum
type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLate    Status = "late"
	StatusPartial Status = "partial"
)

func ValidStatuses() []string {
	return []string{string(StatusPresent), string(StatusAbsent), string(StatusLate), string(StatusPartial)}
}

// Attended reports whether the status counts towards the attendance
// percentage. Late arrivals still count as attended.
func (s Status) Attended() bool {
	return s == StatusPresent || s == StatusLate
}

// Record - one teacher's attendance at one timetable slot in one week.
// Unique per (teacher, timetable slot, week, year, day); marking again
// updates the existing row.
type Record struct {
	ID          int64
	TeacherID   int64
	TimetableID int64
	WeekNumber  int
	Year        int
	DayOfWeek   int
	Status      Status
	Notes       *string
	RecordedBy  *int64
	RecordedAt  time.Time

	// Joined fields
	TeacherName *string
	TimeSlot    *string
	SubjectName *string
}
