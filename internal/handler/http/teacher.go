package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/homelesson/lms-backend-go/internal/domain/teacher"
	"github.com/homelesson/lms-backend-go/internal/handler/http/response"
)

type TeacherHandler interface {
	ListTeachers(w http.ResponseWriter, r *http.Request)
	GetTeacher(w http.ResponseWriter, r *http.Request)
	CreateTeacher(w http.ResponseWriter, r *http.Request)
	UpdateTeacher(w http.ResponseWriter, r *http.Request)
	DeleteTeacher(w http.ResponseWriter, r *http.Request)
	GetAttendanceSummary(w http.ResponseWriter, r *http.Request)
}

type teacherHandlerImpl struct {
	teacherService teacher.TeacherService
}

func NewTeacherHandler(teacherService teacher.TeacherService) TeacherHandler {
	return &teacherHandlerImpl{teacherService: teacherService}
}

// idParam parses the {id} URL parameter shared by every entity route.
func idParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// intQuery reads an optional integer query parameter, falling back to def.
func intQuery(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

// ListTeachers implements TeacherHandler
func (h *teacherHandlerImpl) ListTeachers(w http.ResponseWriter, r *http.Request) {
	result, err := h.teacherService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetTeacher implements TeacherHandler
func (h *teacherHandlerImpl) GetTeacher(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Teacher ID is required", nil)
		return
	}

	result, err := h.teacherService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CreateTeacher implements TeacherHandler
func (h *teacherHandlerImpl) CreateTeacher(w http.ResponseWriter, r *http.Request) {
	var req teacher.CreateTeacherRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.teacherService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Teacher created", result)
}

// UpdateTeacher implements TeacherHandler
func (h *teacherHandlerImpl) UpdateTeacher(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Teacher ID is required", nil)
		return
	}

	var req teacher.UpdateTeacherRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	result, err := h.teacherService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Teacher updated", result)
}

// DeleteTeacher implements TeacherHandler
func (h *teacherHandlerImpl) DeleteTeacher(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Teacher ID is required", nil)
		return
	}

	if err := h.teacherService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Teacher deleted", nil)
}

// GetAttendanceSummary implements TeacherHandler
func (h *teacherHandlerImpl) GetAttendanceSummary(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Teacher ID is required", nil)
		return
	}

	week := intQuery(r, "week", 0)
	year := intQuery(r, "year", 0)

	result, err := h.teacherService.AttendanceSummary(r.Context(), id, week, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
