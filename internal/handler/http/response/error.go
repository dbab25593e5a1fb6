package response

import (
	"errors"
	"net/http"

	"github.com/beteamly/beteamly-backend-go/internal/domain/attendance"
	"github.com/beteamly/beteamly-backend-go/internal/domain/employee"
	"github.com/beteamly/beteamly-backend-go/internal/domain/payroll"
	"github.com/beteamly/beteamly-backend-go/internal/domain/settings"
	"github.com/beteamly/beteamly-backend-go/internal/domain/task"
	"github.com/beteamly/beteamly-backend-go/internal/domain/team"
	"github.com/beteamly/beteamly-backend-go/internal/domain/user"
	"github.com/beteamly/beteamly-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Access errors
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrCompanyIDRequired):
		Unauthorized(w, "Company context missing from token")

	// Settings domain errors
	case errors.Is(err, settings.ErrConfigurationUnavailable):
		ServiceUnavailable(w, "Business settings are temporarily unavailable")
	case errors.Is(err, settings.ErrSettingsNotFound):
		NotFound(w, "Business settings not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "Already clocked in today")
	case errors.Is(err, attendance.ErrNotClockedIn):
		BadRequest(w, "No check-in recorded for today", nil)
	case errors.Is(err, attendance.ErrAlreadyClockedOut):
		Conflict(w, "Already clocked out today")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrSalaryNotFound):
		NotFound(w, "Salary record not found")
	case errors.Is(err, payroll.ErrSalaryExistsForPeriod):
		Conflict(w, "A salary record already exists for this period")
	case errors.Is(err, payroll.ErrSalaryAlreadyProcessed):
		Conflict(w, "Salary record already processed")
	case errors.Is(err, payroll.ErrInvalidBaseSalary):
		BadRequest(w, "Base salary must be greater than zero", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered in this company")

	// Team domain errors
	case errors.Is(err, team.ErrTeamNotFound):
		NotFound(w, "Team not found")
	case errors.Is(err, team.ErrTeamNameExists):
		Conflict(w, "Team name already exists in this company")

	// Task domain errors
	case errors.Is(err, task.ErrTaskNotFound):
		NotFound(w, "Task not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
