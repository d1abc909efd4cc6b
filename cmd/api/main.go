package main

import (
	"fmt"
	"net/http"

	"github.com/homelesson/lms-backend-go/internal/config"
	appHTTP "github.com/homelesson/lms-backend-go/internal/handler/http"
	"github.com/homelesson/lms-backend-go/internal/pkg/database"
	"github.com/homelesson/lms-backend-go/internal/pkg/jwt"
	"github.com/homelesson/lms-backend-go/internal/repository/postgresql"
	analyticsService "github.com/homelesson/lms-backend-go/internal/service/analytics"
	attendanceService "github.com/homelesson/lms-backend-go/internal/service/attendance"
	authService "github.com/homelesson/lms-backend-go/internal/service/auth"
	payrollService "github.com/homelesson/lms-backend-go/internal/service/payroll"
	reportService "github.com/homelesson/lms-backend-go/internal/service/report"
	teacherService "github.com/homelesson/lms-backend-go/internal/service/teacher"
	timetableService "github.com/homelesson/lms-backend-go/internal/service/timetable"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), database.PoolOptions{
		MaxConns:       cfg.Database.MaxConns,
		MinConns:       cfg.Database.MinConns,
		AcquireTimeout: cfg.Database.AcquireTimeout,
	})
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	teacherRepo := postgresql.NewTeacherRepository(db)
	timetableRepo := postgresql.NewTimetableRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)
	analyticsRepo := postgresql.NewAnalyticsRepository(db)
	reportRepo := postgresql.NewReportRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authSvc := authService.NewAuthService(db, userRepo, jwtSvc)
	teacherSvc := teacherService.NewTeacherService(db, teacherRepo)
	timetableSvc := timetableService.NewTimetableService(db, timetableRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, teacherRepo)
	payrollSvc := payrollService.NewPayrollService(db, payrollRepo, teacherRepo, settingsRepo)
	analyticsSvc := analyticsService.NewAnalyticsService(db, analyticsRepo)
	reportSvc := reportService.NewReportService(db, reportRepo, teacherRepo)

	router := appHTTP.NewRouter(
		cfg,
		jwtSvc,
		appHTTP.NewSystemHandler(db),
		appHTTP.NewAuthHandler(authSvc),
		appHTTP.NewTeacherHandler(teacherSvc),
		appHTTP.NewTimetableHandler(timetableSvc),
		appHTTP.NewAttendanceHandler(attendanceSvc),
		appHTTP.NewPayrollHandler(payrollSvc),
		appHTTP.NewAnalyticsHandler(analyticsSvc),
		appHTTP.NewReportHandler(reportSvc),
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Server listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
