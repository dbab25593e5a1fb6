package attendance

import "errors"

// Attendance domain errors
var (
	ErrAlreadyClockedIn   = errors.New("you have already clocked in today")
	ErrNotClockedIn       = errors.New("you have not clocked in yet")
	ErrAlreadyClockedOut  = errors.New("you have already clocked out today")
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
