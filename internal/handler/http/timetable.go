package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/homelesson/lms-backend-go/internal/domain/timetable"
	"github.com/homelesson/lms-backend-go/internal/handler/http/response"
)

type TimetableHandler interface {
	GetDay(w http.ResponseWriter, r *http.Request)
	GetFull(w http.ResponseWriter, r *http.Request)
	Replace(w http.ResponseWriter, r *http.Request)
	GetStatistics(w http.ResponseWriter, r *http.Request)
}

type timetableHandlerImpl struct {
	timetableService timetable.TimetableService
}

func NewTimetableHandler(timetableService timetable.TimetableService) TimetableHandler {
	return &timetableHandlerImpl{timetableService: timetableService}
}

// GetDay implements TimetableHandler
func (h *timetableHandlerImpl) GetDay(w http.ResponseWriter, r *http.Request) {
	day, err := strconv.Atoi(chi.URLParam(r, "day"))
	if err != nil || day < 0 || day > 6 {
		response.BadRequest(w, "Day must be between 0 and 6", nil)
		return
	}

	result, err := h.timetableService.ByDay(r.Context(), day)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetFull implements TimetableHandler
func (h *timetableHandlerImpl) GetFull(w http.ResponseWriter, r *http.Request) {
	result, err := h.timetableService.Full(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Replace implements TimetableHandler
func (h *timetableHandlerImpl) Replace(w http.ResponseWriter, r *http.Request) {
	var req timetable.ReplaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.timetableService.Replace(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Timetable saved", result)
}

// GetStatistics implements TimetableHandler
func (h *timetableHandlerImpl) GetStatistics(w http.ResponseWriter, r *http.Request) {
	result, err := h.timetableService.Statistics(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
