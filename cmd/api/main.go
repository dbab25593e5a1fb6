package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/beteamly/beteamly-backend-go/internal/config"
	appHTTP "github.com/beteamly/beteamly-backend-go/internal/handler/http"
	"github.com/beteamly/beteamly-backend-go/internal/pkg/database"
	"github.com/beteamly/beteamly-backend-go/internal/pkg/jwt"
	"github.com/beteamly/beteamly-backend-go/internal/pkg/redispub"
	"github.com/beteamly/beteamly-backend-go/internal/repository/postgresql"
	analyticsService "github.com/beteamly/beteamly-backend-go/internal/service/analytics"
	attendanceService "github.com/beteamly/beteamly-backend-go/internal/service/attendance"
	employeeService "github.com/beteamly/beteamly-backend-go/internal/service/employee"
	payrollService "github.com/beteamly/beteamly-backend-go/internal/service/payroll"
	settingsService "github.com/beteamly/beteamly-backend-go/internal/service/settings"
	taskService "github.com/beteamly/beteamly-backend-go/internal/service/task"
)

// noopPublisher stands in when no Redis is configured; invalidations then
// only reach the local instance.
type noopPublisher struct{}

func (noopPublisher) PublishSettingsInvalidation(ctx context.Context, companyID string) error {
	return nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	settingsRepo := postgresql.NewSettingsRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	salaryRepo := postgresql.NewSalaryRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	teamRepo := postgresql.NewTeamRepository(db)
	taskRepo := postgresql.NewTaskRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	settingsProvider := settingsService.NewRepositoryProvider(settingsRepo)

	var publisher settingsService.InvalidationPublisher = noopPublisher{}
	if cfg.Redis.Addr != "" {
		rdb, err := redispub.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			fmt.Println("Error connecting to redis:", err)
			return
		}
		broadcaster := redispub.NewBroadcaster(rdb)
		broadcaster.ListenSettingsInvalidations(context.Background(), settingsProvider.Invalidate)
		publisher = broadcaster
	} else {
		slog.Warn("REDIS_ADDR not set, settings invalidations stay local to this instance")
	}

	settingsSvc := settingsService.NewSettingsService(settingsRepo, settingsProvider, publisher)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, settingsProvider)
	payrollSvc := payrollService.NewPayrollService(salaryRepo, attendanceRepo, employeeRepo, settingsProvider)
	analyticsSvc := analyticsService.NewAnalyticsService(employeeRepo, taskRepo, teamRepo, attendanceRepo, salaryRepo)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, teamRepo)
	taskSvc := taskService.NewTaskService(taskRepo, employeeRepo)

	router := appHTTP.NewRouter(JWTService, appHTTP.RouterHandlers{
		Settings:   appHTTP.NewSettingsHandler(settingsSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
		Analytics:  appHTTP.NewAnalyticsHandler(analyticsSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Task:       appHTTP.NewTaskHandler(taskSvc),
	}, cfg.App.AllowedOrigins)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
