package attendance

import (
	"time"

	"github.com/homelesson/lms-backend-go/internal/pkg/validator"
)

type MarkAttendanceRequest struct {
	WeekNumber  int     `json:"week_number"`
	Year        int     `json:"year"`
	DayOfWeek   int     `json:"day_of_week"`
	TimetableID int64   `json:"timetable_id"`
	TeacherID   int64   `json:"teacher_id"`
	Status      string  `json:"status"`
	Notes       *string `json:"notes,omitempty"`
}

func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidWeek(r.WeekNumber) {
		errs = append(errs, validator.ValidationError{Field: "week_number", Message: "must be between 1 and 53"})
	}
	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be between 2023 and 2100"})
	}
	if !validator.IsValidDayOfWeek(r.DayOfWeek) {
		errs = append(errs, validator.ValidationError{Field: "day_of_week", Message: "must be between 0 and 6"})
	}
	if r.TimetableID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "timetable_id", Message: "is required"})
	}
	if r.TeacherID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "teacher_id", Message: "is required"})
	}
	if !validator.IsInSlice(r.Status, ValidStatuses()) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be 'present', 'absent', 'late' or 'partial'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordResponse struct {
	ID          int64   `json:"id"`
	TeacherID   int64   `json:"teacher_id"`
	TeacherName *string `json:"teacher_name,omitempty"`
	TimetableID int64   `json:"timetable_id"`
	WeekNumber  int     `json:"week_number"`
	Year        int     `json:"year"`
	DayOfWeek   int     `json:"day_of_week"`
	TimeSlot    *string `json:"time_slot,omitempty"`
	SubjectName *string `json:"subject_name,omitempty"`
	Status      string  `json:"status"`
	Notes       *string `json:"notes,omitempty"`
	RecordedBy  *int64  `json:"recorded_by,omitempty"`
	RecordedAt  string  `json:"recorded_at"`
}

func (r Record) ToResponse() RecordResponse {
	return RecordResponse{
		ID:          r.ID,
		TeacherID:   r.TeacherID,
		TeacherName: r.TeacherName,
		TimetableID: r.TimetableID,
		WeekNumber:  r.WeekNumber,
		Year:        r.Year,
		DayOfWeek:   r.DayOfWeek,
		TimeSlot:    r.TimeSlot,
		SubjectName: r.SubjectName,
		Status:      string(r.Status),
		Notes:       r.Notes,
		RecordedBy:  r.RecordedBy,
		RecordedAt:  r.RecordedAt.Format(time.RFC3339),
	}
}

// WeeklySummaryRow - one active teacher's counts for a week. Percentage is
// nil when the teacher has no recorded lessons; total 0 is not an error.
type WeeklySummaryRow struct {
	TeacherID    int64  `json:"teacher_id"`
	TeacherName  string `json:"teacher_name"`
	TotalLessons int    `json:"total_lessons"`
	Present      int    `json:"present"`
	Absent       int    `json:"absent"`
	Late         int    `json:"late"`
	Partial      int    `json:"partial"`
	Percentage   *int   `json:"percentage"`
}

// TrendPoint - one week in a teacher's attendance trend, oldest first
type TrendPoint struct {
	WeekNumber   int  `json:"week_number"`
	Year         int  `json:"year"`
	TotalLessons int  `json:"total_lessons"`
	Attended     int  `json:"attended"`
	Percentage   *int `json:"percentage"`
}
