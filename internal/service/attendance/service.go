package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/beteamly/beteamly-backend-go/internal/domain/attendance"
	"github.com/beteamly/beteamly-backend-go/internal/domain/settings"
	"github.com/beteamly/beteamly-backend-go/internal/pkg/clock"
	settingsService "github.com/beteamly/beteamly-backend-go/internal/service/settings"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
)

type AttendanceServiceImpl struct {
	attendanceRepo   attendance.AttendanceRepository
	settingsProvider *settingsService.Provider
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	settingsProvider *settingsService.Provider,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo:   attendanceRepo,
		settingsProvider: settingsProvider,
	}
}

// getClaimsFromContext extracts company_id and employee_id from JWT claims
func getClaimsFromContext(ctx context.Context) (companyID, employeeID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", "", fmt.Errorf("company_id claim is missing or invalid")
	}

	employeeID, ok = claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", "", fmt.Errorf("employee_id claim is missing or invalid")
	}

	return companyID, employeeID, nil
}

// ClockIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	companyID, employeeID, err := getClaimsFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	checkIn := clock.TimeOfDay{Hour: now.Hour(), Minute: now.Minute()}

	existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, today, companyID)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check today's attendance: %w", err)
	}
	if existing != nil && existing.CheckIn != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedIn
	}

	id, err := uuid.NewV7()
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to generate attendance id: %w", err)
	}

	record := attendance.Attendance{
		ID:         id.String(),
		EmployeeID: employeeID,
		CompanyID:  companyID,
		Date:       today,
		CheckIn:    &checkIn,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		Accuracy:   req.Accuracy,
	}

	created, err := s.attendanceRepo.Create(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return s.toResponse(ctx, companyID, created), nil
}

// ClockOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockOut(ctx context.Context, req attendance.ClockOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	companyID, employeeID, err := getClaimsFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	checkOut := clock.TimeOfDay{Hour: now.Hour(), Minute: now.Minute()}

	record, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, today, companyID)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to load today's attendance: %w", err)
	}
	if record == nil || record.CheckIn == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotClockedIn
	}
	if record.CheckOut != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedOut
	}

	record.CheckOut = &checkOut
	hours := float64(checkOut.Sub(*record.CheckIn)) / 60.0
	if hours < 0 {
		hours = 0
	}
	record.WorkedHours = &hours

	if err := s.attendanceRepo.Update(ctx, *record); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return s.toResponse(ctx, companyID, *record), nil
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.AttendanceResponse, int64, error) {
	if err := filter.Validate(); err != nil {
		return nil, 0, err
	}

	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, 0, err
	}

	records, total, err := s.attendanceRepo.List(ctx, filter, companyID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance: %w", err)
	}

	return s.toResponses(ctx, companyID, records), total, nil
}

// GetMyAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.AttendanceResponse, int64, error) {
	if err := filter.Validate(); err != nil {
		return nil, 0, err
	}

	companyID, employeeID, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, 0, err
	}

	filter.EmployeeID = &employeeID
	records, total, err := s.attendanceRepo.List(ctx, filter, companyID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance: %w", err)
	}

	return s.toResponses(ctx, companyID, records), total, nil
}

func (s *AttendanceServiceImpl) toResponses(ctx context.Context, companyID string, records []attendance.Attendance) []attendance.AttendanceResponse {
	// One settings lookup covers the whole page; a failed lookup degrades
	// to unevaluated records instead of failing the listing.
	var cfg *settings.BusinessSettings
	if loaded, err := s.settingsProvider.Get(ctx, companyID); err == nil {
		cfg = &loaded
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, buildResponse(record, cfg))
	}
	return responses
}

func (s *AttendanceServiceImpl) toResponse(ctx context.Context, companyID string, record attendance.Attendance) attendance.AttendanceResponse {
	var cfg *settings.BusinessSettings
	if loaded, err := s.settingsProvider.Get(ctx, companyID); err == nil {
		cfg = &loaded
	}
	return buildResponse(record, cfg)
}

// buildResponse annotates a raw record with its evaluation when the tenant
// configuration is available; otherwise Evaluated stays false and the caller
// decides how to degrade.
func buildResponse(record attendance.Attendance, cfg *settings.BusinessSettings) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:           record.ID,
		EmployeeID:   record.EmployeeID,
		EmployeeName: record.EmployeeName,
		Date:         record.Date.Format("2006-01-02"),
		WorkedHours:  record.DerivedWorkedHours(),
		CreatedAt:    record.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:    record.UpdatedAt.Format("2006-01-02 15:04:05"),
	}

	if record.CheckIn != nil {
		v := record.CheckIn.String()
		resp.CheckIn = &v
	}
	if record.CheckOut != nil {
		v := record.CheckOut.String()
		resp.CheckOut = &v
	}

	if cfg != nil {
		evaluation := Evaluate(*cfg, record)
		resp.Status = evaluation.Status
		resp.LatenessMinutes = evaluation.LatenessMinutes
		resp.ShortfallMinutes = evaluation.ShortfallMinutes
		resp.Evaluated = true
	}

	return resp
}
