package payroll

import (
	"context"

	"github.com/shopspring/decimal"
)

// SalaryRepository defines data access methods for salary records.
// All methods include companyID to prevent cross-company data access.
type SalaryRepository interface {
	// Create inserts a salary record; at most one exists per
	// (employee, month, year).
	Create(ctx context.Context, record SalaryRecord) (SalaryRecord, error)

	// Update updates an existing salary record
	Update(ctx context.Context, record SalaryRecord) (SalaryRecord, error)

	// GetByID retrieves a salary record with company isolation
	GetByID(ctx context.Context, id string, companyID string) (SalaryRecord, error)

	// List retrieves salary records with filters and pagination
	List(ctx context.Context, filter SalaryFilter, companyID string) ([]SalaryRecord, int64, error)

	// ListActiveBaseSalaries returns the latest non-cancelled base salary
	// per employee, input to the analytics salary distribution.
	ListActiveBaseSalaries(ctx context.Context, companyID string) (map[string]decimal.Decimal, error)
}
