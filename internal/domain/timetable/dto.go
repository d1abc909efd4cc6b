package timetable

import (
	"fmt"

	"github.com/homelesson/lms-backend-go/internal/pkg/validator"
)

type SaveEntryRequest struct {
	DayOfWeek        int     `json:"day_of_week"`
	TimeSlot         string  `json:"time_slot"`
	SubjectID        *int64  `json:"subject_id,omitempty"`
	TeacherID        *int64  `json:"teacher_id,omitempty"`
	IsBreak          *bool   `json:"is_break,omitempty"`
	BreakDescription *string `json:"break_description,omitempty"`
}

// ReplaceRequest replaces every day mentioned in the batch as a unit.
// An empty batch is a no-op, not an error.
type ReplaceRequest []SaveEntryRequest

func (r ReplaceRequest) Validate() error {
	var errs validator.ValidationErrors

	for i, entry := range r {
		if !validator.IsValidDayOfWeek(entry.DayOfWeek) {
			errs = append(errs, validator.ValidationError{
				Field:   fmt.Sprintf("[%d].day_of_week", i),
				Message: "must be between 0 and 6",
			})
		}
		if validator.IsEmpty(entry.TimeSlot) {
			errs = append(errs, validator.ValidationError{
				Field:   fmt.Sprintf("[%d].time_slot", i),
				Message: "is required",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EntryResponse struct {
	ID               int64   `json:"id"`
	DayOfWeek        int     `json:"day_of_week"`
	TimeSlot         string  `json:"time_slot"`
	SubjectID        *int64  `json:"subject_id,omitempty"`
	SubjectName      *string `json:"subject_name,omitempty"`
	TeacherID        *int64  `json:"teacher_id,omitempty"`
	TeacherName      *string `json:"teacher_name,omitempty"`
	IsBreak          bool    `json:"is_break"`
	BreakDescription *string `json:"break_description,omitempty"`
}

func (e Entry) ToResponse() EntryResponse {
	return EntryResponse{
		ID:               e.ID,
		DayOfWeek:        e.DayOfWeek,
		TimeSlot:         e.TimeSlot,
		SubjectID:        e.SubjectID,
		SubjectName:      e.SubjectName,
		TeacherID:        e.TeacherID,
		TeacherName:      e.TeacherName,
		IsBreak:          e.IsBreak,
		BreakDescription: e.BreakDescription,
	}
}

// StatisticsResponse covers non-break entries only
type StatisticsResponse struct {
	TotalLessons     int         `json:"total_lessons"`
	UniqueSubjects   int         `json:"unique_subjects"`
	TeachersInvolved int         `json:"teachers_involved"`
	LessonsPerDay    map[int]int `json:"lessons_per_day"`
}
