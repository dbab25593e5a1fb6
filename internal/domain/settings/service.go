package settings

import "context"

type SettingsService interface {
	// GetMySettings returns the settings of the caller's company, served
	// through the in-process provider cache.
	GetMySettings(ctx context.Context) (BusinessSettingsResponse, error)

	// UpdateMySettings persists changed fields, invalidates the provider
	// cache and broadcasts the invalidation to other instances.
	UpdateMySettings(ctx context.Context, req UpdateBusinessSettingsRequest) (BusinessSettingsResponse, error)
}
