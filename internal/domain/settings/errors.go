package settings

import "errors"

// Business settings domain errors
var (
	ErrSettingsNotFound = errors.New("business settings not found")

	// ErrConfigurationUnavailable is returned when a computation needs the
	// tenant configuration and the fetch failed or has not resolved yet.
	// Consumers choose their own fallback; nothing substitutes a default here.
	ErrConfigurationUnavailable = errors.New("business settings unavailable")
)
