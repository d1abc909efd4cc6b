package response

import (
	"errors"
	"net/http"

	"github.com/homelesson/lms-backend-go/internal/domain/attendance"
	"github.com/homelesson/lms-backend-go/internal/domain/auth"
	"github.com/homelesson/lms-backend-go/internal/domain/payroll"
	"github.com/homelesson/lms-backend-go/internal/domain/report"
	"github.com/homelesson/lms-backend-go/internal/domain/teacher"
	"github.com/homelesson/lms-backend-go/internal/domain/timetable"
	"github.com/homelesson/lms-backend-go/internal/domain/user"
	"github.com/homelesson/lms-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrAdminRequired):
		Forbidden(w, "Admin privileges required")

	// Teacher domain errors
	case errors.Is(err, teacher.ErrTeacherNotFound):
		NotFound(w, "Teacher not found")
	case errors.Is(err, teacher.ErrNoFieldsToUpdate):
		BadRequest(w, "No fields to update", nil)

	// Timetable domain errors
	case errors.Is(err, timetable.ErrEntryNotFound):
		NotFound(w, "Timetable entry not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrRecordNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrProcessingFailed):
		InternalServerError(w, "Payroll processing failed")

	// Report domain errors
	case errors.Is(err, report.ErrReportNotFound):
		NotFound(w, "Report not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
