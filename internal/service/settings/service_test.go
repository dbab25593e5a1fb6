package settings

import (
	"context"
	"testing"

	"github.com/beteamly/beteamly-backend-go/internal/domain/settings"
	"github.com/beteamly/beteamly-backend-go/internal/pkg/clock"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSettingsRepo struct {
	stored map[string]settings.BusinessSettings
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{stored: make(map[string]settings.BusinessSettings)}
}

func (r *fakeSettingsRepo) GetByCompanyID(ctx context.Context, companyID string) (settings.BusinessSettings, error) {
	s, ok := r.stored[companyID]
	if !ok {
		return settings.BusinessSettings{}, settings.ErrSettingsNotFound
	}
	return s, nil
}

func (r *fakeSettingsRepo) Upsert(ctx context.Context, s settings.BusinessSettings) (settings.BusinessSettings, error) {
	r.stored[s.CompanyID] = s
	return s, nil
}

type recordingPublisher struct {
	published []string
}

func (p *recordingPublisher) PublishSettingsInvalidation(ctx context.Context, companyID string) error {
	p.published = append(p.published, companyID)
	return nil
}

func contextWithCompany(t *testing.T, companyID string) context.Context {
	t.Helper()

	tok := jwt.New()
	require.NoError(t, tok.Set("company_id", companyID))
	require.NoError(t, tok.Set("type", "access"))

	return jwtauth.NewContext(context.Background(), tok, nil)
}

func TestUpdateMySettingsCreatesDefaultsThenPatches(t *testing.T) {
	t.Parallel()

	repo := newFakeSettingsRepo()
	provider := NewRepositoryProvider(repo)
	publisher := &recordingPublisher{}
	svc := NewSettingsService(repo, provider, publisher)

	ctx := contextWithCompany(t, "c1")

	start := "08:30"
	resp, err := svc.UpdateMySettings(ctx, settings.UpdateBusinessSettingsRequest{
		WorkdayStart: &start,
	})
	require.NoError(t, err)

	// Unset fields come from the defaults.
	assert.Equal(t, "08:30", resp.WorkdayStart)
	assert.Equal(t, "17:00", resp.WorkdayEnd)
	assert.Equal(t, "USD", resp.Currency)
	assert.True(t, resp.OvertimeRate.Equal(decimal.RequireFromString("1.5")))

	assert.Equal(t, []string{"c1"}, publisher.published)
}

func TestUpdateMySettingsPrimesProvider(t *testing.T) {
	t.Parallel()

	repo := newFakeSettingsRepo()
	repo.stored["c1"] = settings.BusinessSettings{
		ID:           "s-1",
		CompanyID:    "c1",
		WorkdayStart: clock.MustParse("09:00"),
		WorkdayEnd:   clock.MustParse("17:00"),
		OvertimeRate: decimal.RequireFromString("1.5"),
		Currency:     "USD",
	}
	provider := NewRepositoryProvider(repo)
	svc := NewSettingsService(repo, provider, &recordingPublisher{})

	ctx := contextWithCompany(t, "c1")

	// Warm the cache, then change the end of the workday.
	_, err := svc.GetMySettings(ctx)
	require.NoError(t, err)

	end := "18:00"
	_, err = svc.UpdateMySettings(ctx, settings.UpdateBusinessSettingsRequest{WorkdayEnd: &end})
	require.NoError(t, err)

	// The cached copy must already reflect the update.
	cached, err := provider.Get(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "18:00", cached.WorkdayEnd.String())
}

func TestUpdateMySettingsRejectsBadInput(t *testing.T) {
	t.Parallel()

	repo := newFakeSettingsRepo()
	svc := NewSettingsService(repo, NewRepositoryProvider(repo), &recordingPublisher{})

	ctx := contextWithCompany(t, "c1")

	bad := "25:00"
	_, err := svc.UpdateMySettings(ctx, settings.UpdateBusinessSettingsRequest{WorkdayStart: &bad})
	assert.Error(t, err)
	assert.Empty(t, repo.stored)
}

func TestGetMySettingsMissingRow(t *testing.T) {
	t.Parallel()

	repo := newFakeSettingsRepo()
	svc := NewSettingsService(repo, NewRepositoryProvider(repo), &recordingPublisher{})

	ctx := contextWithCompany(t, "c1")

	_, err := svc.GetMySettings(ctx)
	assert.ErrorIs(t, err, settings.ErrSettingsNotFound)
}
