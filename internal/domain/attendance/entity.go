package attendance

import (
	"time"

	"github.com/beteamly/beteamly-backend-go/internal/pkg/clock"
)

// Status is the derived classification of a day's record. It is never
// stored except for the backend-asserted absent marker.
type Status string

const (
	StatusPresent    Status = "present"
	StatusLate       Status = "late"
	StatusIncomplete Status = "incomplete"
	StatusAbsent     Status = "absent"
)

// Attendance is one employee's record for one calendar day. At most one
// record exists per (employee, date).
type Attendance struct {
	ID         string
	EmployeeID string
	CompanyID  string
	Date       time.Time
	CheckIn    *clock.TimeOfDay
	CheckOut   *clock.TimeOfDay

	// WorkedHours is precomputed at clock-out; derivable from the check
	// times when absent.
	WorkedHours *float64

	// RawStatus is set by upstream imports (e.g. "absent") and takes
	// precedence over the derived classification.
	RawStatus *string

	// Capture metadata, irrelevant to the evaluation rules.
	Latitude  *float64
	Longitude *float64
	Accuracy  *float64

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined for listings
	EmployeeName *string
}

// DerivedWorkedHours returns the stored worked hours, falling back to the
// check-in/check-out span when both times are present.
func (a Attendance) DerivedWorkedHours() *float64 {
	if a.WorkedHours != nil {
		return a.WorkedHours
	}
	if a.CheckIn == nil || a.CheckOut == nil {
		return nil
	}
	hours := float64(a.CheckOut.Sub(*a.CheckIn)) / 60.0
	return &hours
}
