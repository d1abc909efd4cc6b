package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/homelesson/lms-backend-go/internal/domain/attendance"
	"github.com/homelesson/lms-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	GetWeek(w http.ResponseWriter, r *http.Request)
	Mark(w http.ResponseWriter, r *http.Request)
	GetWeeklySummary(w http.ResponseWriter, r *http.Request)
	GetTrends(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

// weekYearQuery reads week/year query parameters, defaulting to the
// current ISO week.
func weekYearQuery(r *http.Request) (int, int) {
	nowYear, nowWeek := time.Now().ISOWeek()
	return intQuery(r, "week", nowWeek), intQuery(r, "year", nowYear)
}

// GetWeek implements AttendanceHandler
func (h *attendanceHandlerImpl) GetWeek(w http.ResponseWriter, r *http.Request) {
	week, year := weekYearQuery(r)

	result, err := h.attendanceService.ListByWeek(r.Context(), week, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Mark implements AttendanceHandler
func (h *attendanceHandlerImpl) Mark(w http.ResponseWriter, r *http.Request) {
	var req attendance.MarkAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.attendanceService.Mark(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance recorded", result)
}

// GetWeeklySummary implements AttendanceHandler
func (h *attendanceHandlerImpl) GetWeeklySummary(w http.ResponseWriter, r *http.Request) {
	week, year := weekYearQuery(r)

	result, err := h.attendanceService.WeeklySummary(r.Context(), week, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetTrends implements AttendanceHandler
func (h *attendanceHandlerImpl) GetTrends(w http.ResponseWriter, r *http.Request) {
	teacherID, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Teacher ID is required", nil)
		return
	}

	result, err := h.attendanceService.Trends(r.Context(), teacherID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
