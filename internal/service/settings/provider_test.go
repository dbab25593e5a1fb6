package settings

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/beteamly/beteamly-backend-go/internal/domain/settings"
	"github.com/beteamly/beteamly-backend-go/internal/pkg/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedSettings(companyID string) settings.BusinessSettings {
	return settings.BusinessSettings{
		ID:           "s-" + companyID,
		CompanyID:    companyID,
		WorkdayStart: clock.MustParse("09:00"),
		WorkdayEnd:   clock.MustParse("17:00"),
		Currency:     "USD",
	}
}

func TestProvider_GetCachesFetch(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	provider := NewProvider(func(ctx context.Context, companyID string) (settings.BusinessSettings, error) {
		calls.Add(1)
		return fixedSettings(companyID), nil
	})

	ctx := context.Background()
	first, err := provider.Get(ctx, "c1")
	require.NoError(t, err)
	second, err := provider.Get(ctx, "c1")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), calls.Load())

	// A different company is its own cache entry.
	_, err = provider.Get(ctx, "c2")
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestProvider_ConcurrentGetsCoalesce(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	release := make(chan struct{})
	provider := NewProvider(func(ctx context.Context, companyID string) (settings.BusinessSettings, error) {
		calls.Add(1)
		<-release
		return fixedSettings(companyID), nil
	})

	ctx := context.Background()
	const waiters = 8
	var wg sync.WaitGroup
	results := make([]settings.BusinessSettings, waiters)
	errs := make([]error, waiters)

	for i := 0; i < waiters; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = provider.Get(ctx, "c1")
		}(i)
	}

	// Let every waiter reach the in-flight fetch before it resolves.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load(), "concurrent gets must share one fetch")
	for i := 0; i < waiters; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, "c1", results[i].CompanyID)
	}
}

func TestProvider_FetchFailureSurfaces(t *testing.T) {
	t.Parallel()

	fetchErr := errors.New("backend down")
	provider := NewProvider(func(ctx context.Context, companyID string) (settings.BusinessSettings, error) {
		return settings.BusinessSettings{}, fetchErr
	})

	_, err := provider.Get(context.Background(), "c1")
	assert.ErrorIs(t, err, settings.ErrConfigurationUnavailable)
	assert.ErrorIs(t, err, fetchErr)
}

func TestProvider_ContextCancelledWaiter(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	provider := NewProvider(func(ctx context.Context, companyID string) (settings.BusinessSettings, error) {
		<-release
		return fixedSettings(companyID), nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := provider.Get(ctx, "c1")
		done <- err
	}()

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("cancelled Get did not return")
	}

	// The shared fetch still completes and populates the cache for others.
	close(release)
	got, err := provider.Get(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "c1", got.CompanyID)
}

func TestProvider_InvalidateRefetches(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	provider := NewProvider(func(ctx context.Context, companyID string) (settings.BusinessSettings, error) {
		calls.Add(1)
		s := fixedSettings(companyID)
		s.Currency = "USD"
		if calls.Load() > 1 {
			s.Currency = "EUR"
		}
		return s, nil
	})

	ctx := context.Background()
	first, err := provider.Get(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "USD", first.Currency)

	provider.Invalidate("c1")

	second, err := provider.Get(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "EUR", second.Currency)
	assert.Equal(t, int32(2), calls.Load())
}

func TestProvider_RefreshOrdering(t *testing.T) {
	t.Parallel()

	currency := "USD"
	var mu sync.Mutex
	provider := NewProvider(func(ctx context.Context, companyID string) (settings.BusinessSettings, error) {
		s := fixedSettings(companyID)
		mu.Lock()
		s.Currency = currency
		mu.Unlock()
		return s, nil
	})

	ctx := context.Background()
	_, err := provider.Get(ctx, "c1")
	require.NoError(t, err)

	mu.Lock()
	currency = "IDR"
	mu.Unlock()

	_, err = provider.Refresh(ctx, "c1")
	require.NoError(t, err)

	// No stale-read window: every Get after Refresh sees the new value.
	got, err := provider.Get(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "IDR", got.Currency)
}

func TestProvider_StaleInFlightFetchDoesNotClobberRefresh(t *testing.T) {
	t.Parallel()

	entered := make(chan struct{})
	release := make(chan struct{})
	var calls atomic.Int32
	provider := NewProvider(func(ctx context.Context, companyID string) (settings.BusinessSettings, error) {
		s := fixedSettings(companyID)
		if calls.Add(1) == 1 {
			close(entered)
			<-release
			s.Currency = "OLD"
			return s, nil
		}
		s.Currency = "NEW"
		return s, nil
	})

	ctx := context.Background()
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = provider.Get(ctx, "c1")
	}()
	<-entered

	// The row changes while the first fetch is still in flight; Refresh
	// installs the new value.
	refreshed, err := provider.Refresh(ctx, "c1")
	require.NoError(t, err)
	require.Equal(t, "NEW", refreshed.Currency)

	close(release)
	<-done

	// The slow fetch resolved to the pre-refresh row; it must not win.
	got, err := provider.Get(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "NEW", got.Currency)
}

func TestProvider_SubscribeAndUnsubscribe(t *testing.T) {
	t.Parallel()

	provider := NewProvider(func(ctx context.Context, companyID string) (settings.BusinessSettings, error) {
		return fixedSettings(companyID), nil
	})

	notified1 := make(chan string, 4)
	notified2 := make(chan string, 4)

	unsub1 := provider.Subscribe(func(companyID string) { notified1 <- companyID })
	unsub2 := provider.Subscribe(func(companyID string) { notified2 <- companyID })
	defer unsub2()

	provider.Invalidate("c1")

	assert.Equal(t, "c1", waitFor(t, notified1))
	assert.Equal(t, "c1", waitFor(t, notified2))

	// Removing one subscriber leaves the other intact; double unsubscribe
	// is harmless.
	unsub1()
	unsub1()

	provider.Invalidate("c2")
	assert.Equal(t, "c2", waitFor(t, notified2))

	select {
	case got := <-notified1:
		t.Fatalf("unsubscribed callback still notified with %q", got)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestProvider_PanickingSubscriberIsIsolated(t *testing.T) {
	t.Parallel()

	provider := NewProvider(func(ctx context.Context, companyID string) (settings.BusinessSettings, error) {
		return fixedSettings(companyID), nil
	})

	provider.Subscribe(func(companyID string) {
		panic("subscriber bug")
	})
	healthy := make(chan string, 1)
	provider.Subscribe(func(companyID string) { healthy <- companyID })

	provider.Invalidate("c1")
	assert.Equal(t, "c1", waitFor(t, healthy))

	// The provider itself keeps working.
	got, err := provider.Get(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "c1", got.CompanyID)
}

func waitFor(t *testing.T, ch chan string) string {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for notification")
		return ""
	}
}
