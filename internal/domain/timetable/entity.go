package timetable

import "time"

// Entry - one lesson slot (or break) on the weekly grid. The set of
// entries for a day is only ever replaced as a whole.
type Entry struct {
	ID               int64
	DayOfWeek        int
	TimeSlot         string
	SubjectID        *int64
	TeacherID        *int64
	IsBreak          bool
	BreakDescription *string
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Joined fields
	TeacherName *string
	SubjectName *string
}

// Subject referenced by timetable entries
type Subject struct {
	ID   int64
	Name string
}
