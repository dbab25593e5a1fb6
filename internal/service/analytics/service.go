package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/beteamly/beteamly-backend-go/internal/domain/analytics"
	"github.com/beteamly/beteamly-backend-go/internal/domain/attendance"
	"github.com/beteamly/beteamly-backend-go/internal/domain/employee"
	"github.com/beteamly/beteamly-backend-go/internal/domain/payroll"
	"github.com/beteamly/beteamly-backend-go/internal/domain/task"
	"github.com/beteamly/beteamly-backend-go/internal/domain/team"
	"github.com/go-chi/jwtauth/v5"
)

type AnalyticsServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	taskRepo       task.TaskRepository
	teamRepo       team.TeamRepository
	attendanceRepo attendance.AttendanceRepository
	salaryRepo     payroll.SalaryRepository
}

func NewAnalyticsService(
	employeeRepo employee.EmployeeRepository,
	taskRepo task.TaskRepository,
	teamRepo team.TeamRepository,
	attendanceRepo attendance.AttendanceRepository,
	salaryRepo payroll.SalaryRepository,
) analytics.AnalyticsService {
	return &AnalyticsServiceImpl{
		employeeRepo:   employeeRepo,
		taskRepo:       taskRepo,
		teamRepo:       teamRepo,
		attendanceRepo: attendanceRepo,
		salaryRepo:     salaryRepo,
	}
}

// getCompanyIDFromContext extracts company_id from JWT claims
func getCompanyIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id claim is missing or invalid")
	}

	return companyID, nil
}

// GetPerformanceReport implements analytics.AnalyticsService. All the
// aggregation happens in memory over the fetched collections; the
// repositories are the only I/O.
func (s *AnalyticsServiceImpl) GetPerformanceReport(ctx context.Context, req analytics.PerformanceReportRequest) (analytics.PerformanceReport, error) {
	if err := req.Validate(); err != nil {
		return analytics.PerformanceReport{}, err
	}

	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return analytics.PerformanceReport{}, err
	}

	employees, err := s.employeeRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return analytics.PerformanceReport{}, fmt.Errorf("failed to load employees: %w", err)
	}

	tasks, err := s.taskRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return analytics.PerformanceReport{}, fmt.Errorf("failed to load tasks: %w", err)
	}

	teams, err := s.teamRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return analytics.PerformanceReport{}, fmt.Errorf("failed to load teams: %w", err)
	}

	records, err := s.attendanceRepo.ListByCompanyPeriod(ctx, companyID, req.Month, req.Year)
	if err != nil {
		return analytics.PerformanceReport{}, fmt.Errorf("failed to load attendance records: %w", err)
	}

	salaries, err := s.salaryRepo.ListActiveBaseSalaries(ctx, companyID)
	if err != nil {
		return analytics.PerformanceReport{}, fmt.Errorf("failed to load salaries: %w", err)
	}

	performances, warnings := AggregateEmployeePerformance(
		employees, tasks, records,
		DefaultTotalWorkDays, DefaultWorkStartHour,
	)
	teamScores := AggregateTeamScores(teams, employees, tasks, performances)

	amounts := make([]float64, 0, len(salaries))
	for _, amount := range salaries {
		value, _ := amount.Float64()
		amounts = append(amounts, value)
	}

	return analytics.PerformanceReport{
		Month:              req.Month,
		Year:               req.Year,
		GeneratedAt:        time.Now().UTC(),
		Employees:          performances,
		Teams:              teamScores,
		SalaryDistribution: SalaryDistribution(amounts),
		Warnings:           warnings,
	}, nil
}
