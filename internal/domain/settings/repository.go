package settings

import "context"

// SettingsRepository defines data access for tenant business settings.
// All methods take companyID to keep tenants isolated.
type SettingsRepository interface {
	// GetByCompanyID returns the settings row for a company, or
	// ErrSettingsNotFound.
	GetByCompanyID(ctx context.Context, companyID string) (BusinessSettings, error)

	// Upsert creates or replaces the settings row for a company.
	Upsert(ctx context.Context, s BusinessSettings) (BusinessSettings, error)
}
