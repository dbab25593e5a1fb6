package payroll

import "context"

type PayrollService interface {
	CreateSalary(ctx context.Context, req CreateSalaryRequest) (SalaryResponse, error)
	UpdateSalary(ctx context.Context, req UpdateSalaryRequest) (SalaryResponse, error)
	GetSalary(ctx context.Context, id string) (SalaryResponse, error)
	ListSalaries(ctx context.Context, filter SalaryFilter) ([]SalaryResponse, int64, error)

	// ComputeAdjustment summarizes the employee's attendance for the salary
	// record's period and derives draft bonus/deduction/overtime amounts.
	ComputeAdjustment(ctx context.Context, salaryID string, month, year int) (AdjustmentResponse, error)
}
