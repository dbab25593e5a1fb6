package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/beteamly/beteamly-backend-go/internal/domain/attendance"
	"github.com/beteamly/beteamly-backend-go/internal/domain/employee"
	"github.com/beteamly/beteamly-backend-go/internal/domain/payroll"
	attendanceService "github.com/beteamly/beteamly-backend-go/internal/service/attendance"
	settingsService "github.com/beteamly/beteamly-backend-go/internal/service/settings"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	salaryRepo       payroll.SalaryRepository
	attendanceRepo   attendance.AttendanceRepository
	employeeRepo     employee.EmployeeRepository
	settingsProvider *settingsService.Provider
}

func NewPayrollService(
	salaryRepo payroll.SalaryRepository,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	settingsProvider *settingsService.Provider,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		salaryRepo:       salaryRepo,
		attendanceRepo:   attendanceRepo,
		employeeRepo:     employeeRepo,
		settingsProvider: settingsProvider,
	}
}

// getCompanyIDFromContext extracts company_id from JWT claims
func getCompanyIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id claim is missing or invalid")
	}

	return companyID, nil
}

// CreateSalary implements payroll.PayrollService.
func (s *PayrollServiceImpl) CreateSalary(ctx context.Context, req payroll.CreateSalaryRequest) (payroll.SalaryResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.SalaryResponse{}, err
	}

	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return payroll.SalaryResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, companyID); err != nil {
		return payroll.SalaryResponse{}, err
	}

	effectiveFrom, _ := time.Parse("2006-01-02", req.EffectiveFrom) // validated above

	id, err := uuid.NewV7()
	if err != nil {
		return payroll.SalaryResponse{}, fmt.Errorf("failed to generate salary id: %w", err)
	}

	record := payroll.SalaryRecord{
		ID:            id.String(),
		EmployeeID:    req.EmployeeID,
		CompanyID:     companyID,
		Month:         req.Month,
		Year:          req.Year,
		BaseSalary:    req.BaseSalary,
		Bonus:         decimalOrZero(req.Bonus),
		Overtime:      decimalOrZero(req.Overtime),
		OvertimeHours: decimalOrZero(req.OvertimeHours),
		Deductions:    decimalOrZero(req.Deductions),
		EffectiveFrom: effectiveFrom,
		Status:        payroll.SalaryStatusPending,
	}

	created, err := s.salaryRepo.Create(ctx, record)
	if err != nil {
		return payroll.SalaryResponse{}, err
	}

	return toSalaryResponse(created), nil
}

// UpdateSalary implements payroll.PayrollService.
func (s *PayrollServiceImpl) UpdateSalary(ctx context.Context, req payroll.UpdateSalaryRequest) (payroll.SalaryResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.SalaryResponse{}, err
	}

	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return payroll.SalaryResponse{}, err
	}

	record, err := s.salaryRepo.GetByID(ctx, req.ID, companyID)
	if err != nil {
		return payroll.SalaryResponse{}, err
	}

	// Amounts are frozen once a record leaves pending; only rewinding the
	// status is a separate concern the UI does not have.
	if record.Status != payroll.SalaryStatusPending {
		return payroll.SalaryResponse{}, payroll.ErrSalaryAlreadyProcessed
	}

	if req.BaseSalary != nil {
		record.BaseSalary = *req.BaseSalary
	}
	if req.Bonus != nil {
		record.Bonus = *req.Bonus
	}
	if req.Overtime != nil {
		record.Overtime = *req.Overtime
	}
	if req.OvertimeHours != nil {
		record.OvertimeHours = *req.OvertimeHours
	}
	if req.Deductions != nil {
		record.Deductions = *req.Deductions
	}
	if req.Status != nil {
		record.Status = payroll.SalaryStatus(*req.Status)
	}

	updated, err := s.salaryRepo.Update(ctx, record)
	if err != nil {
		return payroll.SalaryResponse{}, err
	}

	return toSalaryResponse(updated), nil
}

// GetSalary implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetSalary(ctx context.Context, id string) (payroll.SalaryResponse, error) {
	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return payroll.SalaryResponse{}, err
	}

	record, err := s.salaryRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return payroll.SalaryResponse{}, err
	}

	return toSalaryResponse(record), nil
}

// ListSalaries implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListSalaries(ctx context.Context, filter payroll.SalaryFilter) ([]payroll.SalaryResponse, int64, error) {
	if err := filter.Validate(); err != nil {
		return nil, 0, err
	}

	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return nil, 0, err
	}

	records, total, err := s.salaryRepo.List(ctx, filter, companyID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list salaries: %w", err)
	}

	responses := make([]payroll.SalaryResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, toSalaryResponse(record))
	}
	return responses, total, nil
}

// ComputeAdjustment implements payroll.PayrollService. It summarizes the
// employee's attendance for the period and derives draft bonus, deduction
// and overtime amounts the UI submits back unchanged.
func (s *PayrollServiceImpl) ComputeAdjustment(ctx context.Context, salaryID string, month, year int) (payroll.AdjustmentResponse, error) {
	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return payroll.AdjustmentResponse{}, err
	}

	record, err := s.salaryRepo.GetByID(ctx, salaryID, companyID)
	if err != nil {
		return payroll.AdjustmentResponse{}, err
	}

	if month == 0 {
		month = record.Month
	}
	if year == 0 {
		year = record.Year
	}

	// The adjustment is meaningless without the tenant work window; this
	// is surfaced, not defaulted.
	cfg, err := s.settingsProvider.Get(ctx, companyID)
	if err != nil {
		return payroll.AdjustmentResponse{}, err
	}

	records, err := s.attendanceRepo.ListByEmployeePeriod(ctx, record.EmployeeID, month, year, companyID)
	if err != nil {
		return payroll.AdjustmentResponse{}, fmt.Errorf("failed to load attendance records: %w", err)
	}

	summary := attendanceService.SummarizeRecords(cfg, records)

	adjustment, err := AttendanceAdjustment(summary, record.BaseSalary)
	if err != nil {
		return payroll.AdjustmentResponse{}, err
	}

	overtime := decimal.Zero
	if record.OvertimeHours.IsPositive() {
		overtime, err = OvertimePay(record.OvertimeHours, record.BaseSalary, cfg.OvertimeRate)
		if err != nil {
			return payroll.AdjustmentResponse{}, err
		}
	}

	draft := record
	draft.Bonus = adjustment.Bonus
	draft.Deductions = adjustment.Deductions
	draft.Overtime = overtime

	// Rounding happens here, at the presentation boundary only.
	return payroll.AdjustmentResponse{
		EmployeeID:       record.EmployeeID,
		Month:            month,
		Year:             year,
		TotalWorkedHours: summary.TotalWorkedHours,
		ExpectedHours:    summary.ExpectedHours,
		WorkedDays:       summary.WorkedDays,
		Bonus:            adjustment.Bonus.Round(2),
		Deductions:       adjustment.Deductions.Round(2),
		Overtime:         overtime.Round(2),
		NoChange:         adjustment.NoChange,
		Warnings:         CheckSalaryInvariants(draft),
	}, nil
}

func toSalaryResponse(record payroll.SalaryRecord) payroll.SalaryResponse {
	return payroll.SalaryResponse{
		ID:            record.ID,
		EmployeeID:    record.EmployeeID,
		EmployeeName:  record.EmployeeName,
		Month:         record.Month,
		Year:          record.Year,
		BaseSalary:    record.BaseSalary,
		Bonus:         record.Bonus,
		Overtime:      record.Overtime,
		OvertimeHours: record.OvertimeHours,
		Deductions:    record.Deductions,
		Total:         record.Total().Round(2),
		EffectiveFrom: record.EffectiveFrom.Format("2006-01-02"),
		Status:        record.Status,
		Warnings:      CheckSalaryInvariants(record),
		CreatedAt:     record.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:     record.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

func decimalOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
