package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type SalaryStatus string

const (
	SalaryStatusPending   SalaryStatus = "pending"
	SalaryStatusPaid      SalaryStatus = "paid"
	SalaryStatusCancelled SalaryStatus = "cancelled"
)

// SalaryRecord is one employee's payroll entry for one month/year period.
type SalaryRecord struct {
	ID            string
	EmployeeID    string
	CompanyID     string
	Month         int
	Year          int
	BaseSalary    decimal.Decimal
	Bonus         decimal.Decimal
	Overtime      decimal.Decimal
	OvertimeHours decimal.Decimal
	Deductions    decimal.Decimal
	EffectiveFrom time.Time
	Status        SalaryStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined for listings
	EmployeeName *string
}

// Total is base + bonus + overtime - deductions. Well-formed records keep
// this non-negative; violations are reported as warnings, not enforced.
func (s SalaryRecord) Total() decimal.Decimal {
	return s.BaseSalary.Add(s.Bonus).Add(s.Overtime).Sub(s.Deductions)
}

// AttendanceSummary is the worked-vs-expected aggregate for one employee
// over one month. It is never persisted; it is recomputed on demand from
// attendance records.
type AttendanceSummary struct {
	TotalWorkedHours float64
	ExpectedHours    float64
	WorkedDays       int
}
