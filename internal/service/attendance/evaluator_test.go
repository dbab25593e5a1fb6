package attendance

import (
	"testing"

	"github.com/beteamly/beteamly-backend-go/internal/domain/attendance"
	"github.com/beteamly/beteamly-backend-go/internal/domain/settings"
	"github.com/beteamly/beteamly-backend-go/internal/pkg/clock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testSettings() settings.BusinessSettings {
	return settings.BusinessSettings{
		WorkdayStart: clock.MustParse("09:00"),
		WorkdayEnd:   clock.MustParse("17:00"),
		OvertimeRate: decimal.NewFromFloat(1.5),
		Currency:     "USD",
	}
}

func timePtr(s string) *clock.TimeOfDay {
	t := clock.MustParse(s)
	return &t
}

func strPtr(s string) *string {
	return &s
}

func TestEvaluate_GracePeriodBoundary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		checkIn     string
		wantStatus  attendance.Status
		wantLateMin int
	}{
		{"on the dot", "09:00", attendance.StatusPresent, 0},
		{"last graced minute", "09:15", attendance.StatusPresent, 0},
		{"one past grace", "09:16", attendance.StatusLate, 16},
		{"early arrival", "08:59", attendance.StatusPresent, 0},
		{"well late", "10:30", attendance.StatusLate, 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Evaluate(testSettings(), attendance.Attendance{CheckIn: timePtr(tt.checkIn)})
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, tt.wantLateMin, got.LatenessMinutes)
		})
	}
}

func TestEvaluate_LateWhenHourPastStart(t *testing.T) {
	t.Parallel()

	// The hour comparison wins even when the raw overage is inside the
	// grace window: start 09:50, check-in 10:00 is only 10 minutes over
	// but occupies a later hour.
	cfg := testSettings()
	cfg.WorkdayStart = clock.MustParse("09:50")

	got := Evaluate(cfg, attendance.Attendance{CheckIn: timePtr("10:00")})
	assert.Equal(t, attendance.StatusLate, got.Status)
	assert.Equal(t, 10, got.LatenessMinutes)
}

func TestEvaluate_AbsencePrecedence(t *testing.T) {
	t.Parallel()

	// No check-in is absent regardless of the check-out value.
	got := Evaluate(testSettings(), attendance.Attendance{CheckOut: timePtr("16:00")})
	assert.Equal(t, attendance.StatusAbsent, got.Status)

	got = Evaluate(testSettings(), attendance.Attendance{})
	assert.Equal(t, attendance.StatusAbsent, got.Status)
}

func TestEvaluate_ExplicitAbsentShortCircuits(t *testing.T) {
	t.Parallel()

	// An upstream absent marker wins even over a perfectly normal check-in.
	got := Evaluate(testSettings(), attendance.Attendance{
		RawStatus: strPtr("absent"),
		CheckIn:   timePtr("09:00"),
		CheckOut:  timePtr("17:00"),
	})
	assert.Equal(t, attendance.StatusAbsent, got.Status)
}

func TestEvaluate_IncompleteRequiresCheckout(t *testing.T) {
	t.Parallel()

	// Check-in with no check-out can only be present or late.
	got := Evaluate(testSettings(), attendance.Attendance{CheckIn: timePtr("09:00")})
	assert.Equal(t, attendance.StatusPresent, got.Status)
	assert.Equal(t, 0, got.ShortfallMinutes)
}

func TestEvaluate_EarlyCheckout(t *testing.T) {
	t.Parallel()

	got := Evaluate(testSettings(), attendance.Attendance{
		CheckIn:  timePtr("09:00"),
		CheckOut: timePtr("16:30"),
	})
	assert.Equal(t, attendance.StatusIncomplete, got.Status)
	assert.Equal(t, 30, got.ShortfallMinutes)

	// Checkout at or past the workday end is a full day.
	got = Evaluate(testSettings(), attendance.Attendance{
		CheckIn:  timePtr("09:00"),
		CheckOut: timePtr("17:00"),
	})
	assert.Equal(t, attendance.StatusPresent, got.Status)
}

func TestEvaluate_LatenessWinsOverIncomplete(t *testing.T) {
	t.Parallel()

	// Rule order: a late arrival stays late even with an early checkout.
	got := Evaluate(testSettings(), attendance.Attendance{
		CheckIn:  timePtr("09:30"),
		CheckOut: timePtr("15:00"),
	})
	assert.Equal(t, attendance.StatusLate, got.Status)
	assert.Equal(t, 30, got.LatenessMinutes)
	assert.Equal(t, 0, got.ShortfallMinutes)
}

func TestSummarizeRecords(t *testing.T) {
	t.Parallel()

	eight := 8.0
	six := 6.0

	records := []attendance.Attendance{
		{CheckIn: timePtr("09:00"), CheckOut: timePtr("17:00"), WorkedHours: &eight},
		{CheckIn: timePtr("09:00"), CheckOut: timePtr("15:00"), WorkedHours: &six},
		// Derivable from the check times when the stored value is missing.
		{CheckIn: timePtr("09:00"), CheckOut: timePtr("18:00")},
		// Absent days contribute nothing.
		{RawStatus: strPtr("absent")},
		{},
	}

	got := SummarizeRecords(testSettings(), records)
	assert.Equal(t, 3, got.WorkedDays)
	assert.InDelta(t, 23.0, got.TotalWorkedHours, 1e-9)
	assert.InDelta(t, 24.0, got.ExpectedHours, 1e-9)
}
