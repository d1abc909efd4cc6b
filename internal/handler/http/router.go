package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/homelesson/lms-backend-go/internal/config"
	"github.com/homelesson/lms-backend-go/internal/handler/http/middleware"
	"github.com/homelesson/lms-backend-go/internal/handler/http/response"
	"github.com/homelesson/lms-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	systemHandler SystemHandler,
	authHandler AuthHandler,
	teacherHandler TeacherHandler,
	timetableHandler TimetableHandler,
	attendanceHandler AttendanceHandler,
	payrollHandler PayrollHandler,
	analyticsHandler AnalyticsHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "lms-backend"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.CORS.Origin},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  cfg.SlogLevel(),
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Route not found")
	})

	r.Get("/", systemHandler.Root)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", systemHandler.Health)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
				r.Get("/me", authHandler.Me)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/teachers", func(r chi.Router) {
				r.Get("/", teacherHandler.ListTeachers)
				r.Get("/{id}", teacherHandler.GetTeacher)
				r.Get("/{id}/attendance-summary", teacherHandler.GetAttendanceSummary)
				r.Get("/{id}/attendance-trends", attendanceHandler.GetTrends)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", teacherHandler.CreateTeacher)
					r.Put("/{id}", teacherHandler.UpdateTeacher)
					r.Delete("/{id}", teacherHandler.DeleteTeacher)
				})
			})

			r.Route("/timetable", func(r chi.Router) {
				r.Get("/", timetableHandler.GetFull)
				r.Get("/statistics", timetableHandler.GetStatistics)
				r.Get("/{day}", timetableHandler.GetDay)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", timetableHandler.Replace)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/", attendanceHandler.GetWeek)
				r.Post("/", attendanceHandler.Mark)
				r.Get("/summary", attendanceHandler.GetWeeklySummary)
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/", payrollHandler.GetWeek)
				r.Get("/history", payrollHandler.GetHistory)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/process", payrollHandler.Process)
					r.Put("/{id}", payrollHandler.Adjust)
				})
			})

			r.Route("/analytics", func(r chi.Router) {
				r.Get("/attendance", analyticsHandler.GetAttendance)
				r.Get("/subjects", analyticsHandler.GetSubjects)
				r.Get("/payroll", analyticsHandler.GetPayroll)
				r.Get("/performance", analyticsHandler.GetPerformance)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Post("/teacher/{id}", reportHandler.GenerateTeacherReport)
				r.Get("/history", reportHandler.GetHistory)
				r.Get("/export", reportHandler.Export)
			})
		})
	})

	return r
}
