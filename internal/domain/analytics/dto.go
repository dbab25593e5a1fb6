package analytics

import (
	"time"

	"github.com/beteamly/beteamly-backend-go/internal/pkg/validator"
)

// EmployeePerformance is the derived per-employee scorecard. It is never
// persisted; it is recomputed per report request.
type EmployeePerformance struct {
	EmployeeID       string `json:"employee_id"`
	EmployeeName     string `json:"employee_name"`
	TasksCompleted   int    `json:"tasks_completed"`
	TasksTotal       int    `json:"tasks_total"`
	CompletionRate   int    `json:"completion_rate"`
	OnTimeCompletion int    `json:"on_time_completion"`
	LateCompletion   int    `json:"late_completion"`
	AttendanceRate   int    `json:"attendance_rate"`
	LateArrivals     int    `json:"late_arrivals"`
	TotalLateMinutes int    `json:"total_late_minutes"`
	PresentDays      int    `json:"present_days"`
	AbsentDays       int    `json:"absent_days"`
	OverallScore     int    `json:"overall_score"`
}

type TeamScore struct {
	TeamID        string `json:"team_id"`
	TeamName      string `json:"team_name"`
	MemberCount   int    `json:"member_count"`
	TasksAssigned int    `json:"tasks_assigned"`
	TasksDone     int    `json:"tasks_done"`
	Score         int    `json:"score"`
}

type SalaryBucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type PerformanceReport struct {
	Month              int                   `json:"month"`
	Year               int                   `json:"year"`
	GeneratedAt        time.Time             `json:"generated_at"`
	Employees          []EmployeePerformance `json:"employees"`
	Teams              []TeamScore           `json:"teams"`
	SalaryDistribution []SalaryBucket        `json:"salary_distribution"`
	Warnings           []string              `json:"warnings,omitempty"`
}

type PerformanceReportRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *PerformanceReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}
	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year is out of range",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
