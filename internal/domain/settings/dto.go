package settings

import (
	"github.com/beteamly/beteamly-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type BusinessSettingsResponse struct {
	ID           string          `json:"id"`
	CompanyID    string          `json:"company_id"`
	WorkdayStart string          `json:"workday_start"`
	WorkdayEnd   string          `json:"workday_end"`
	OvertimeRate decimal.Decimal `json:"overtime_rate"`
	Currency     string          `json:"currency"`
}

type UpdateBusinessSettingsRequest struct {
	WorkdayStart *string          `json:"workday_start,omitempty"`
	WorkdayEnd   *string          `json:"workday_end,omitempty"`
	OvertimeRate *decimal.Decimal `json:"overtime_rate,omitempty"`
	Currency     *string          `json:"currency,omitempty"`
}

func (r *UpdateBusinessSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.WorkdayStart != nil && !validator.IsValidTimeOfDay(*r.WorkdayStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "workday_start",
			Message: "must be a valid HH:MM time",
		})
	}

	if r.WorkdayEnd != nil && !validator.IsValidTimeOfDay(*r.WorkdayEnd) {
		errs = append(errs, validator.ValidationError{
			Field:   "workday_end",
			Message: "must be a valid HH:MM time",
		})
	}

	if r.OvertimeRate != nil && r.OvertimeRate.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, validator.ValidationError{
			Field:   "overtime_rate",
			Message: "must be a positive multiplier",
		})
	}

	if r.Currency != nil && !validator.IsValidCurrencyCode(*r.Currency) {
		errs = append(errs, validator.ValidationError{
			Field:   "currency",
			Message: "must be a three-letter ISO-4217 code",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func ToResponse(s BusinessSettings) BusinessSettingsResponse {
	return BusinessSettingsResponse{
		ID:           s.ID,
		CompanyID:    s.CompanyID,
		WorkdayStart: s.WorkdayStart.String(),
		WorkdayEnd:   s.WorkdayEnd.String(),
		OvertimeRate: s.OvertimeRate,
		Currency:     s.Currency,
	}
}
