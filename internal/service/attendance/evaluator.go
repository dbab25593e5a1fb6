package attendance

import (
	"github.com/beteamly/beteamly-backend-go/internal/domain/attendance"
	"github.com/beteamly/beteamly-backend-go/internal/domain/payroll"
	"github.com/beteamly/beteamly-backend-go/internal/domain/settings"
)

// GracePeriodMinutes is how long after the workday start a check-in still
// counts as on time.
const GracePeriodMinutes = 15

// Evaluation is the derived classification of one attendance record.
type Evaluation struct {
	Status           attendance.Status
	LatenessMinutes  int
	ShortfallMinutes int
}

// Evaluate classifies a raw attendance record against the tenant's work
// window. Pure; no I/O. Rules apply in order, first match wins:
//
//  1. an upstream "absent" marker, or a missing check-in, is absent;
//  2. a check-in past the grace window is late, reporting the full overage
//     from the scheduled start (not clamped by the grace window);
//  3. a check-out strictly before the workday end is incomplete;
//  4. everything else is present.
//
// A record with a check-in but no check-out is never incomplete:
// incompleteness requires an observed early checkout. All comparisons are
// wall-clock time of day, hour first then minute.
func Evaluate(cfg settings.BusinessSettings, record attendance.Attendance) Evaluation {
	if record.RawStatus != nil && *record.RawStatus == string(attendance.StatusAbsent) {
		return Evaluation{Status: attendance.StatusAbsent}
	}
	if record.CheckIn == nil {
		return Evaluation{Status: attendance.StatusAbsent}
	}

	checkIn := *record.CheckIn
	start := cfg.WorkdayStart

	if checkIn.Hour > start.Hour ||
		(checkIn.Hour == start.Hour && checkIn.Minute > start.Minute+GracePeriodMinutes) {
		return Evaluation{
			Status:          attendance.StatusLate,
			LatenessMinutes: checkIn.Sub(start),
		}
	}

	if record.CheckOut != nil && record.CheckOut.Before(cfg.WorkdayEnd) {
		return Evaluation{
			Status:           attendance.StatusIncomplete,
			ShortfallMinutes: cfg.WorkdayEnd.Sub(*record.CheckOut),
		}
	}

	return Evaluation{Status: attendance.StatusPresent}
}

// SummarizeRecords folds a month of records into the worked-vs-expected
// aggregate the payroll calculator consumes. A day counts as worked when it
// has a check-in and is not marked absent; its hours come from the stored
// worked-hours value or the check-in/check-out span.
func SummarizeRecords(cfg settings.BusinessSettings, records []attendance.Attendance) payroll.AttendanceSummary {
	var summary payroll.AttendanceSummary

	for _, record := range records {
		if record.RawStatus != nil && *record.RawStatus == string(attendance.StatusAbsent) {
			continue
		}
		if record.CheckIn == nil {
			continue
		}

		summary.WorkedDays++
		if hours := record.DerivedWorkedHours(); hours != nil && *hours > 0 {
			summary.TotalWorkedHours += *hours
		}
	}

	summary.ExpectedHours = float64(summary.WorkedDays) * cfg.ExpectedDailyHours()
	return summary
}
