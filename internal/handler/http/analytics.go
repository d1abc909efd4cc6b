package http

import (
	"net/http"

	"github.com/homelesson/lms-backend-go/internal/domain/analytics"
	"github.com/homelesson/lms-backend-go/internal/handler/http/response"
)

type AnalyticsHandler interface {
	GetAttendance(w http.ResponseWriter, r *http.Request)
	GetSubjects(w http.ResponseWriter, r *http.Request)
	GetPayroll(w http.ResponseWriter, r *http.Request)
	GetPerformance(w http.ResponseWriter, r *http.Request)
}

type analyticsHandlerImpl struct {
	analyticsService analytics.AnalyticsService
}

func NewAnalyticsHandler(analyticsService analytics.AnalyticsService) AnalyticsHandler {
	return &analyticsHandlerImpl{analyticsService: analyticsService}
}

// GetAttendance implements AnalyticsHandler
func (h *analyticsHandlerImpl) GetAttendance(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")
	week := intQuery(r, "week", 0)
	year := intQuery(r, "year", 0)

	result, err := h.analyticsService.Attendance(r.Context(), period, week, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetSubjects implements AnalyticsHandler
func (h *analyticsHandlerImpl) GetSubjects(w http.ResponseWriter, r *http.Request) {
	result, err := h.analyticsService.SubjectDistribution(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetPayroll implements AnalyticsHandler
func (h *analyticsHandlerImpl) GetPayroll(w http.ResponseWriter, r *http.Request) {
	result, err := h.analyticsService.PayrollTrends(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetPerformance implements AnalyticsHandler
func (h *analyticsHandlerImpl) GetPerformance(w http.ResponseWriter, r *http.Request) {
	result, err := h.analyticsService.Performance(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
