package payroll

import (
	"fmt"

	"github.com/beteamly/beteamly-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// HoursPerMonth is the fixed hour basis that prices one work hour from a
// monthly base salary. Kept as-is for compatibility with existing payroll
// outputs.
const HoursPerMonth = 160

var hoursPerMonth = decimal.NewFromInt(HoursPerMonth)

// Adjustment is the derived payroll delta for one attendance summary.
// Bonus and Deductions are mutually exclusive; NoChange distinguishes a
// zero-variance period from a computed adjustment so the caller can present
// a different message.
type Adjustment struct {
	Bonus      decimal.Decimal
	Deductions decimal.Decimal
	NoChange   bool
}

// HourlyRate is base salary divided by the fixed monthly hour count.
// No rounding happens here; callers round at presentation time.
func HourlyRate(baseSalary decimal.Decimal) (decimal.Decimal, error) {
	if baseSalary.LessThanOrEqual(decimal.Zero) {
		return decimal.Decimal{}, payroll.ErrInvalidBaseSalary
	}
	return baseSalary.Div(hoursPerMonth), nil
}

// OvertimePay prices explicit overtime hours at the hourly rate times the
// tenant's overtime multiplier.
func OvertimePay(overtimeHours, baseSalary, overtimeRate decimal.Decimal) (decimal.Decimal, error) {
	rate, err := HourlyRate(baseSalary)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return overtimeHours.Mul(rate).Mul(overtimeRate), nil
}

// AttendanceAdjustment converts a worked-vs-expected variance into a bonus
// (positive variance) or a deduction (negative variance), never both.
func AttendanceAdjustment(summary payroll.AttendanceSummary, baseSalary decimal.Decimal) (Adjustment, error) {
	rate, err := HourlyRate(baseSalary)
	if err != nil {
		return Adjustment{}, err
	}

	diff := decimal.NewFromFloat(summary.TotalWorkedHours).
		Sub(decimal.NewFromFloat(summary.ExpectedHours))

	switch diff.Sign() {
	case 1:
		return Adjustment{
			Bonus:      diff.Mul(rate),
			Deductions: decimal.Zero,
		}, nil
	case -1:
		return Adjustment{
			Bonus:      decimal.Zero,
			Deductions: diff.Abs().Mul(rate),
		}, nil
	default:
		return Adjustment{
			Bonus:      decimal.Zero,
			Deductions: decimal.Zero,
			NoChange:   true,
		}, nil
	}
}

// CheckSalaryInvariants reports advisory warnings on a salary record.
// Violations are tolerated upstream, so they are surfaced rather than
// enforced.
func CheckSalaryInvariants(record payroll.SalaryRecord) []string {
	var warnings []string

	if record.Total().IsNegative() {
		warnings = append(warnings, fmt.Sprintf(
			"total salary is negative (%s): deductions exceed base + bonus + overtime",
			record.Total().Round(2)))
	}
	if record.Bonus.IsPositive() && record.Deductions.IsPositive() {
		warnings = append(warnings, "record carries both a bonus and a deduction")
	}

	return warnings
}
