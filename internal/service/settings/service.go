package settings

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/beteamly/beteamly-backend-go/internal/domain/settings"
	"github.com/beteamly/beteamly-backend-go/internal/pkg/clock"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvalidationPublisher tells other API instances to drop their cached
// settings for a company.
type InvalidationPublisher interface {
	PublishSettingsInvalidation(ctx context.Context, companyID string) error
}

type SettingsServiceImpl struct {
	settingsRepo settings.SettingsRepository
	provider     *Provider
	publisher    InvalidationPublisher
}

func NewSettingsService(
	settingsRepo settings.SettingsRepository,
	provider *Provider,
	publisher InvalidationPublisher,
) settings.SettingsService {
	return &SettingsServiceImpl{
		settingsRepo: settingsRepo,
		provider:     provider,
		publisher:    publisher,
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

// GetMySettings implements settings.SettingsService.
func (s *SettingsServiceImpl) GetMySettings(ctx context.Context) (settings.BusinessSettingsResponse, error) {
	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return settings.BusinessSettingsResponse{}, err
	}

	current, err := s.provider.Get(ctx, companyID)
	if err != nil {
		if errors.Is(err, settings.ErrSettingsNotFound) {
			return settings.BusinessSettingsResponse{}, settings.ErrSettingsNotFound
		}
		return settings.BusinessSettingsResponse{}, err
	}

	return settings.ToResponse(current), nil
}

// UpdateMySettings implements settings.SettingsService.
func (s *SettingsServiceImpl) UpdateMySettings(ctx context.Context, req settings.UpdateBusinessSettingsRequest) (settings.BusinessSettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return settings.BusinessSettingsResponse{}, err
	}

	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return settings.BusinessSettingsResponse{}, err
	}

	current, err := s.settingsRepo.GetByCompanyID(ctx, companyID)
	if err != nil {
		if !errors.Is(err, settings.ErrSettingsNotFound) {
			return settings.BusinessSettingsResponse{}, fmt.Errorf("failed to load settings: %w", err)
		}
		current = defaultSettings(companyID)
	}

	if req.WorkdayStart != nil {
		current.WorkdayStart = clock.MustParse(*req.WorkdayStart) // validated above
	}
	if req.WorkdayEnd != nil {
		current.WorkdayEnd = clock.MustParse(*req.WorkdayEnd)
	}
	if req.OvertimeRate != nil {
		current.OvertimeRate = *req.OvertimeRate
	}
	if req.Currency != nil {
		current.Currency = *req.Currency
	}
	current.UpdatedAt = time.Now().UTC()

	updated, err := s.settingsRepo.Upsert(ctx, current)
	if err != nil {
		return settings.BusinessSettingsResponse{}, fmt.Errorf("failed to upsert settings: %w", err)
	}

	// Local readers see the fresh row immediately; peers get told over the
	// invalidation channel.
	s.provider.Prime(updated)
	if s.publisher != nil {
		if err := s.publisher.PublishSettingsInvalidation(ctx, companyID); err != nil {
			slog.Error("failed to publish settings invalidation", "company_id", companyID, "error", err)
		}
	}

	return settings.ToResponse(updated), nil
}

func defaultSettings(companyID string) settings.BusinessSettings {
	return settings.BusinessSettings{
		ID:           uuid.NewString(),
		CompanyID:    companyID,
		WorkdayStart: clock.MustParse("09:00"),
		WorkdayEnd:   clock.MustParse("17:00"),
		OvertimeRate: decimal.RequireFromString("1.5"),
		Currency:     "USD",
		CreatedAt:    time.Now().UTC(),
	}
}
