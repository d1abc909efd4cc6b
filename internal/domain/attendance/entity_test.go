package attendance

import (
	"testing"

	"github.com/homelesson/lms-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusAttended(t *testing.T) {
	assert.True(t, StatusPresent.Attended())
	assert.True(t, StatusLate.Attended())
	assert.False(t, StatusAbsent.Attended())
	assert.False(t, StatusPartial.Attended())
}

func TestMarkAttendanceRequest_Validate(t *testing.T) {
	valid := MarkAttendanceRequest{
		WeekNumber:  10,
		Year:        2026,
		DayOfWeek:   1,
		TimetableID: 1,
		TeacherID:   1,
		Status:      "present",
	}
	assert.NoError(t, valid.Validate())

	invalid := MarkAttendanceRequest{
		WeekNumber: 54,
		Year:       1999,
		DayOfWeek:  7,
		Status:     "vacation",
	}
	err := invalid.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	details := errs.ToMap()
	assert.Contains(t, details, "week_number")
	assert.Contains(t, details, "year")
	assert.Contains(t, details, "day_of_week")
	assert.Contains(t, details, "timetable_id")
	assert.Contains(t, details, "teacher_id")
	assert.Contains(t, details, "status")
}
