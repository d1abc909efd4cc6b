package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/homelesson/lms-backend-go/internal/domain/report"
	"github.com/homelesson/lms-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	GenerateTeacherReport(w http.ResponseWriter, r *http.Request)
	GetHistory(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

func actorID(r *http.Request) *int64 {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return nil
	}
	raw, ok := claims["user_id"].(float64)
	if !ok {
		return nil
	}
	id := int64(raw)
	return &id
}

// GenerateTeacherReport implements ReportHandler
func (h *reportHandlerImpl) GenerateTeacherReport(w http.ResponseWriter, r *http.Request) {
	teacherID, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Teacher ID is required", nil)
		return
	}

	var body struct {
		WeekNumber int `json:"week_number"`
		Year       int `json:"year"`
	}
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			response.BadRequest(w, "Invalid request body", nil)
			return
		}
	}

	req := report.GenerateTeacherReportRequest{
		TeacherID:  teacherID,
		WeekNumber: body.WeekNumber,
		Year:       body.Year,
	}

	result, err := h.reportService.GenerateTeacherReport(r.Context(), &req, actorID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Report generated", result)
}

// GetHistory implements ReportHandler
func (h *reportHandlerImpl) GetHistory(w http.ResponseWriter, r *http.Request) {
	limit := intQuery(r, "limit", 50)
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	offset := intQuery(r, "offset", 0)
	if offset < 0 {
		offset = 0
	}

	result, err := h.reportService.History(r.Context(), limit, offset)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result, &response.Meta{
		Limit:      limit,
		TotalItems: result.Total,
	})
}

// Export implements ReportHandler
func (h *reportHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.Export(r.Context(), actorID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
