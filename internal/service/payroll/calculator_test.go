package payroll

import (
	"testing"

	"github.com/beteamly/beteamly-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHourlyRate_Idempotence(t *testing.T) {
	t.Parallel()

	// hourly_rate(base) * 160 recovers the base salary.
	for _, base := range []string{"160", "4800", "12345.67", "0.01", "99999999.99"} {
		baseSalary := decimal.RequireFromString(base)
		rate, err := HourlyRate(baseSalary)
		require.NoError(t, err)

		roundTrip := rate.Mul(decimal.NewFromInt(HoursPerMonth))
		diff := roundTrip.Sub(baseSalary).Abs()
		assert.True(t, diff.LessThan(decimal.RequireFromString("0.0000001")),
			"base %s round-tripped to %s", base, roundTrip)
	}
}

func TestHourlyRate_InvalidBase(t *testing.T) {
	t.Parallel()

	_, err := HourlyRate(decimal.Zero)
	assert.ErrorIs(t, err, payroll.ErrInvalidBaseSalary)

	_, err = HourlyRate(decimal.NewFromInt(-1000))
	assert.ErrorIs(t, err, payroll.ErrInvalidBaseSalary)
}

func TestOvertimePay(t *testing.T) {
	t.Parallel()

	// 4800/160 = 30 per hour; 10 hours at 1.5x = 450.
	pay, err := OvertimePay(
		decimal.NewFromInt(10),
		decimal.NewFromInt(4800),
		decimal.RequireFromString("1.5"),
	)
	require.NoError(t, err)
	assert.True(t, pay.Equal(decimal.NewFromInt(450)), "got %s", pay)

	_, err = OvertimePay(decimal.NewFromInt(10), decimal.Zero, decimal.NewFromInt(2))
	assert.ErrorIs(t, err, payroll.ErrInvalidBaseSalary)
}

func TestAttendanceAdjustment_PositiveVariance(t *testing.T) {
	t.Parallel()

	adj, err := AttendanceAdjustment(payroll.AttendanceSummary{
		TotalWorkedHours: 168,
		ExpectedHours:    160,
		WorkedDays:       21,
	}, decimal.NewFromInt(4800))
	require.NoError(t, err)

	assert.False(t, adj.NoChange)
	assert.True(t, adj.Bonus.Equal(decimal.NewFromInt(240)), "got bonus %s", adj.Bonus)
	assert.True(t, adj.Deductions.IsZero())
}

func TestAttendanceAdjustment_NegativeVariance(t *testing.T) {
	t.Parallel()

	adj, err := AttendanceAdjustment(payroll.AttendanceSummary{
		TotalWorkedHours: 150,
		ExpectedHours:    160,
		WorkedDays:       19,
	}, decimal.NewFromInt(4800))
	require.NoError(t, err)

	assert.False(t, adj.NoChange)
	assert.True(t, adj.Bonus.IsZero())
	assert.True(t, adj.Deductions.Equal(decimal.NewFromInt(300)), "got deductions %s", adj.Deductions)
}

func TestAttendanceAdjustment_NoChange(t *testing.T) {
	t.Parallel()

	adj, err := AttendanceAdjustment(payroll.AttendanceSummary{
		TotalWorkedHours: 160,
		ExpectedHours:    160,
		WorkedDays:       20,
	}, decimal.NewFromInt(4800))
	require.NoError(t, err)

	assert.True(t, adj.NoChange)
	assert.True(t, adj.Bonus.IsZero())
	assert.True(t, adj.Deductions.IsZero())
}

func TestAttendanceAdjustment_SignExclusivity(t *testing.T) {
	t.Parallel()

	summaries := []payroll.AttendanceSummary{
		{TotalWorkedHours: 200, ExpectedHours: 160},
		{TotalWorkedHours: 100, ExpectedHours: 160},
		{TotalWorkedHours: 160.5, ExpectedHours: 160},
		{TotalWorkedHours: 159.99, ExpectedHours: 160},
		{TotalWorkedHours: 0, ExpectedHours: 0},
	}

	for _, summary := range summaries {
		adj, err := AttendanceAdjustment(summary, decimal.NewFromInt(8000))
		require.NoError(t, err)
		assert.False(t, adj.Bonus.IsPositive() && adj.Deductions.IsPositive(),
			"summary %+v produced both bonus %s and deductions %s",
			summary, adj.Bonus, adj.Deductions)
	}
}

func TestAttendanceAdjustment_InvalidBase(t *testing.T) {
	t.Parallel()

	_, err := AttendanceAdjustment(payroll.AttendanceSummary{
		TotalWorkedHours: 150,
		ExpectedHours:    160,
	}, decimal.Zero)
	assert.ErrorIs(t, err, payroll.ErrInvalidBaseSalary)
}

func TestCheckSalaryInvariants(t *testing.T) {
	t.Parallel()

	clean := payroll.SalaryRecord{
		BaseSalary: decimal.NewFromInt(5000),
		Bonus:      decimal.NewFromInt(100),
		Deductions: decimal.Zero,
	}
	assert.Empty(t, CheckSalaryInvariants(clean))

	negative := payroll.SalaryRecord{
		BaseSalary: decimal.NewFromInt(1000),
		Deductions: decimal.NewFromInt(2000),
	}
	warnings := CheckSalaryInvariants(negative)
	assert.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "negative")

	both := payroll.SalaryRecord{
		BaseSalary: decimal.NewFromInt(5000),
		Bonus:      decimal.NewFromInt(100),
		Deductions: decimal.NewFromInt(50),
	}
	warnings = CheckSalaryInvariants(both)
	assert.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "both a bonus and a deduction")
}
