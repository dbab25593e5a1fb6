package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
// All methods include companyID to prevent cross-company data access.
type AttendanceRepository interface {
	// Create creates a new attendance record
	Create(ctx context.Context, record Attendance) (Attendance, error)

	// Update updates an existing attendance record
	Update(ctx context.Context, record Attendance) error

	// GetByEmployeeAndDate retrieves the single record for an employee on a
	// calendar day, or nil. Used to enforce one record per (employee, date).
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, companyID string) (*Attendance, error)

	// List retrieves attendance records with filters and pagination
	List(ctx context.Context, filter AttendanceFilter, companyID string) ([]Attendance, int64, error)

	// ListByEmployeePeriod returns all records of one employee within a
	// month/year, for summary and payroll computation.
	ListByEmployeePeriod(ctx context.Context, employeeID string, month, year int, companyID string) ([]Attendance, error)

	// ListByCompanyPeriod returns all company records within a month/year,
	// raw input for the analytics aggregation.
	ListByCompanyPeriod(ctx context.Context, companyID string, month, year int) ([]Attendance, error)
}
