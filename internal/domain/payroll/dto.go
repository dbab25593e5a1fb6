package payroll

import (
	"github.com/beteamly/beteamly-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== SALARY DTOs ==========

type CreateSalaryRequest struct {
	EmployeeID    string           `json:"employee_id"`
	Month         int              `json:"month"`
	Year          int              `json:"year"`
	BaseSalary    decimal.Decimal  `json:"base_salary"`
	Bonus         *decimal.Decimal `json:"bonus,omitempty"`
	Overtime      *decimal.Decimal `json:"overtime,omitempty"`
	OvertimeHours *decimal.Decimal `json:"overtime_hours,omitempty"`
	Deductions    *decimal.Decimal `json:"deductions,omitempty"`
	EffectiveFrom string           `json:"effective_from"`
}

func (r *CreateSalaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "is out of range"})
	}
	if r.BaseSalary.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be positive"})
	}
	if r.Bonus != nil && r.Bonus.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "bonus", Message: "must be non-negative"})
	}
	if r.Overtime != nil && r.Overtime.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "overtime", Message: "must be non-negative"})
	}
	if r.OvertimeHours != nil && r.OvertimeHours.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "overtime_hours", Message: "must be non-negative"})
	}
	if r.Deductions != nil && r.Deductions.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "deductions", Message: "must be non-negative"})
	}
	if _, ok := validator.IsValidDate(r.EffectiveFrom); !ok {
		errs = append(errs, validator.ValidationError{Field: "effective_from", Message: "must be in YYYY-MM-DD format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateSalaryRequest struct {
	ID            string
	BaseSalary    *decimal.Decimal `json:"base_salary,omitempty"`
	Bonus         *decimal.Decimal `json:"bonus,omitempty"`
	Overtime      *decimal.Decimal `json:"overtime,omitempty"`
	OvertimeHours *decimal.Decimal `json:"overtime_hours,omitempty"`
	Deductions    *decimal.Decimal `json:"deductions,omitempty"`
	Status        *string          `json:"status,omitempty"`
}

func (r *UpdateSalaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.BaseSalary != nil && r.BaseSalary.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be positive"})
	}
	if r.Bonus != nil && r.Bonus.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "bonus", Message: "must be non-negative"})
	}
	if r.Overtime != nil && r.Overtime.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "overtime", Message: "must be non-negative"})
	}
	if r.OvertimeHours != nil && r.OvertimeHours.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "overtime_hours", Message: "must be non-negative"})
	}
	if r.Deductions != nil && r.Deductions.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "deductions", Message: "must be non-negative"})
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{
		string(SalaryStatusPending), string(SalaryStatusPaid), string(SalaryStatusCancelled),
	}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be pending, paid or cancelled"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SalaryResponse struct {
	ID            string          `json:"id"`
	EmployeeID    string          `json:"employee_id"`
	EmployeeName  *string         `json:"employee_name,omitempty"`
	Month         int             `json:"month"`
	Year          int             `json:"year"`
	BaseSalary    decimal.Decimal `json:"base_salary"`
	Bonus         decimal.Decimal `json:"bonus"`
	Overtime      decimal.Decimal `json:"overtime"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
	Deductions    decimal.Decimal `json:"deductions"`
	Total         decimal.Decimal `json:"total"`
	EffectiveFrom string          `json:"effective_from"`
	Status        SalaryStatus    `json:"status"`
	Warnings      []string        `json:"warnings,omitempty"`
	CreatedAt     string          `json:"created_at"`
	UpdatedAt     string          `json:"updated_at"`
}

type SalaryFilter struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	Month      *int    `json:"month,omitempty"`
	Year       *int    `json:"year,omitempty"`
	Status     *string `json:"status,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *SalaryFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Month != nil && !validator.IsValidMonth(*f.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if f.Status != nil && !validator.IsInSlice(*f.Status, []string{
		string(SalaryStatusPending), string(SalaryStatusPaid), string(SalaryStatusCancelled),
	}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be pending, paid or cancelled"})
	}

	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		f.Limit = 100
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AdjustmentResponse is the draft bonus/deduction/overtime derived from an
// attendance summary. The UI submits these values back unchanged through the
// salary update endpoint. Amounts are rounded for presentation only.
type AdjustmentResponse struct {
	EmployeeID       string          `json:"employee_id"`
	Month            int             `json:"month"`
	Year             int             `json:"year"`
	TotalWorkedHours float64         `json:"total_worked_hours"`
	ExpectedHours    float64         `json:"expected_hours"`
	WorkedDays       int             `json:"worked_days"`
	Bonus            decimal.Decimal `json:"bonus"`
	Deductions       decimal.Decimal `json:"deductions"`
	Overtime         decimal.Decimal `json:"overtime"`
	NoChange         bool            `json:"no_change"`
	Warnings         []string        `json:"warnings,omitempty"`
}
