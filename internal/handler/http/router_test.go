package http

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/homelesson/lms-backend-go/internal/config"
	"github.com/homelesson/lms-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
)

func newTestRouter() *chi.Mux {
	cfg := &config.Config{}
	jwtService := jwt.NewJWTService("test-secret", "24h")

	return NewRouter(
		cfg,
		jwtService,
		NewSystemHandler(nil),
		NewAuthHandler(nil),
		NewTeacherHandler(nil),
		NewTimetableHandler(nil),
		NewAttendanceHandler(nil),
		NewPayrollHandler(nil),
		NewAnalyticsHandler(nil),
		NewReportHandler(nil),
	)
}

func routeMatches(r *chi.Mux, method, path string) bool {
	rctx := chi.NewRouteContext()
	return r.Match(rctx, method, path)
}

func TestRouter_ReportGenerationIsAPost(t *testing.T) {
	r := newTestRouter()

	// Generating a report persists a history row, so it is not exposed on
	// a read route.
	assert.True(t, routeMatches(r, http.MethodPost, "/api/reports/teacher/1"))
	assert.False(t, routeMatches(r, http.MethodGet, "/api/reports/teacher/1"))
	assert.False(t, routeMatches(r, http.MethodGet, "/api/teachers/1/report"))
}

func TestRouter_CoreRoutes(t *testing.T) {
	r := newTestRouter()

	assert.True(t, routeMatches(r, http.MethodGet, "/api/health"))
	assert.True(t, routeMatches(r, http.MethodPost, "/api/auth/login"))
	assert.True(t, routeMatches(r, http.MethodGet, "/api/teachers/1/attendance-summary"))
	assert.True(t, routeMatches(r, http.MethodPost, "/api/payroll/process"))
	assert.True(t, routeMatches(r, http.MethodGet, "/api/reports/export"))
}
