package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/beteamly/beteamly-backend-go/internal/domain/settings"
	"github.com/beteamly/beteamly-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type settingsRepository struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) settings.SettingsRepository {
	return &settingsRepository{db: db}
}

// GetByCompanyID implements settings.SettingsRepository.
func (r *settingsRepository) GetByCompanyID(ctx context.Context, companyID string) (settings.BusinessSettings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, workday_start, workday_end, overtime_rate, currency,
			   created_at, updated_at
		FROM business_settings
		WHERE company_id = $1
	`

	var s settings.BusinessSettings
	err := q.QueryRow(ctx, query, companyID).Scan(
		&s.ID, &s.CompanyID, &s.WorkdayStart, &s.WorkdayEnd, &s.OvertimeRate, &s.Currency,
		&s.CreatedAt, &s.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return settings.BusinessSettings{}, settings.ErrSettingsNotFound
		}
		return settings.BusinessSettings{}, fmt.Errorf("failed to get business settings: %w", err)
	}

	return s, nil
}

// Upsert implements settings.SettingsRepository.
func (r *settingsRepository) Upsert(ctx context.Context, s settings.BusinessSettings) (settings.BusinessSettings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO business_settings (
			id, company_id, workday_start, workday_end, overtime_rate, currency
		) VALUES (
			$1, $2, $3, $4, $5, $6
		)
		ON CONFLICT (company_id) DO UPDATE SET
			workday_start = EXCLUDED.workday_start,
			workday_end   = EXCLUDED.workday_end,
			overtime_rate = EXCLUDED.overtime_rate,
			currency      = EXCLUDED.currency,
			updated_at    = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		s.ID,
		s.CompanyID,
		s.WorkdayStart,
		s.WorkdayEnd,
		s.OvertimeRate,
		s.Currency,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)

	if err != nil {
		return settings.BusinessSettings{}, fmt.Errorf("failed to upsert business settings: %w", err)
	}

	return s, nil
}
