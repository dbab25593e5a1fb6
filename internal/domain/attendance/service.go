package attendance

import "context"

type AttendanceService interface {
	// ClockIn opens today's record for the calling employee.
	ClockIn(ctx context.Context, req ClockInRequest) (AttendanceResponse, error)

	// ClockOut closes today's open record and stores the worked hours.
	ClockOut(ctx context.Context, req ClockOutRequest) (AttendanceResponse, error)

	// List returns company records, each annotated with its evaluation.
	List(ctx context.Context, filter AttendanceFilter) ([]AttendanceResponse, int64, error)

	// GetMyAttendance returns the calling employee's own records.
	GetMyAttendance(ctx context.Context, filter AttendanceFilter) ([]AttendanceResponse, int64, error)
}
