package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/homelesson/lms-backend-go/internal/domain/payroll"
	"github.com/homelesson/lms-backend-go/internal/handler/http/response"
	"github.com/homelesson/lms-backend-go/internal/pkg/validator"
)

type PayrollHandler interface {
	Process(w http.ResponseWriter, r *http.Request)
	Adjust(w http.ResponseWriter, r *http.Request)
	GetWeek(w http.ResponseWriter, r *http.Request)
	GetHistory(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

type processPayrollBody struct {
	WeekNumber int `json:"week_number"`
	Year       int `json:"year"`
}

// Process implements PayrollHandler
func (h *payrollHandlerImpl) Process(w http.ResponseWriter, r *http.Request) {
	var body processPayrollBody
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			response.BadRequest(w, "Invalid request body", nil)
			return
		}
	}

	if body.WeekNumber == 0 || body.Year == 0 {
		nowYear, nowWeek := time.Now().ISOWeek()
		if body.WeekNumber == 0 {
			body.WeekNumber = nowWeek
		}
		if body.Year == 0 {
			body.Year = nowYear
		}
	}

	var errs validator.ValidationErrors
	if !validator.IsValidWeek(body.WeekNumber) {
		errs = append(errs, validator.ValidationError{Field: "week_number", Message: "must be between 1 and 53"})
	}
	if !validator.IsValidYear(body.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be between 2023 and 2100"})
	}
	if len(errs) > 0 {
		response.HandleError(w, errs)
		return
	}

	result, err := h.payrollService.Process(r.Context(), body.WeekNumber, body.Year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, result.Message, nil)
}

// Adjust implements PayrollHandler
func (h *payrollHandlerImpl) Adjust(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Payroll ID is required", nil)
		return
	}

	var req payroll.AdjustPayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	result, err := h.payrollService.Adjust(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll updated", result)
}

// GetWeek implements PayrollHandler
func (h *payrollHandlerImpl) GetWeek(w http.ResponseWriter, r *http.Request) {
	week, year := weekYearQuery(r)

	result, err := h.payrollService.Week(r.Context(), week, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetHistory implements PayrollHandler
func (h *payrollHandlerImpl) GetHistory(w http.ResponseWriter, r *http.Request) {
	limit := intQuery(r, "limit", 20)
	if limit <= 0 || limit > 200 {
		limit = 20
	}
	offset := intQuery(r, "offset", 0)
	if offset < 0 {
		offset = 0
	}

	result, err := h.payrollService.History(r.Context(), limit, offset)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result, &response.Meta{
		Limit:      limit,
		TotalItems: result.Total,
	})
}
