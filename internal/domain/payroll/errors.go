package payroll

import "errors"

// Payroll domain errors
var (
	ErrSalaryNotFound         = errors.New("salary record not found")
	ErrSalaryExistsForPeriod  = errors.New("salary record already exists for this period")
	ErrSalaryAlreadyProcessed = errors.New("salary record has already been paid or cancelled")

	// ErrInvalidBaseSalary signals that an adjustment was requested with a
	// base salary that cannot price an hour. The caller gets an explicit
	// "cannot compute", never a zeroed result.
	ErrInvalidBaseSalary = errors.New("base salary must be positive to compute adjustments")
)
