package teacher

import (
	"testing"

	"github.com/homelesson/lms-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTeacherRequest_Validate(t *testing.T) {
	valid := CreateTeacherRequest{
		Name:     "Budi Santoso",
		Subjects: []string{"Mathematics"},
		Status:   "active",
	}
	assert.NoError(t, valid.Validate())

	badPhone := "not-a-phone"
	invalid := CreateTeacherRequest{
		Name:              "",
		Phone:             &badPhone,
		Subjects:          nil,
		TeachingAllowance: -1,
		Status:            "retired",
	}
	err := invalid.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	details := errs.ToMap()
	assert.Contains(t, details, "name")
	assert.Contains(t, details, "phone")
	assert.Contains(t, details, "subjects")
	assert.Contains(t, details, "teaching_allowance")
	assert.Contains(t, details, "status")
}

func TestUpdateTeacherRequest_Validate_RejectsEmptyPatch(t *testing.T) {
	empty := UpdateTeacherRequest{ID: 1}
	err := empty.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "body")
}

func TestUpdateTeacherRequest_Validate_PartialPatch(t *testing.T) {
	name := "Siti Rahayu"
	req := UpdateTeacherRequest{ID: 1, Name: &name}
	assert.NoError(t, req.Validate())

	empty := ""
	req = UpdateTeacherRequest{ID: 1, Name: &empty}
	assert.Error(t, req.Validate())
}

func TestTeacherToResponse(t *testing.T) {
	tr := Teacher{
		ID:     1,
		Name:   "Budi Santoso",
		Status: StatusActive,
		AttendanceHistory: []AttendanceWeek{
			{WeekNumber: 10, Year: 2026, Percentage: 80},
		},
		PayrollHistory: []PayrollPeriod{
			{WeekNumber: 10, Year: 2026, TotalAmount: 32000, Paid: true},
		},
	}

	resp := tr.ToResponse()
	assert.Equal(t, "active", resp.Status)
	assert.NotNil(t, resp.Subjects)
	require.Len(t, resp.AttendanceHistory, 1)
	assert.Equal(t, 80, resp.AttendanceHistory[0].Percentage)
	require.Len(t, resp.PayrollHistory, 1)
	assert.True(t, resp.PayrollHistory[0].Paid)
}
