package settings

import (
	"context"
	"fmt"
	"sync"

	"github.com/beteamly/beteamly-backend-go/internal/domain/settings"
	"golang.org/x/sync/singleflight"
)

// FetchFunc loads the settings of one company from the backing store.
type FetchFunc func(ctx context.Context, companyID string) (settings.BusinessSettings, error)

// Provider is the process-wide read-through cache for tenant business
// settings. Concurrent cache misses for the same company coalesce into a
// single outstanding fetch; subscribers are told when a company's settings
// are invalidated or refreshed.
//
// The rule engines never mutate settings: the provider hands out values,
// writes go through the repository and come back via Invalidate/Refresh.
type Provider struct {
	fetch FetchFunc

	mu    sync.RWMutex
	cache map[string]settings.BusinessSettings
	gen   map[string]uint64

	sf singleflight.Group

	subMu   sync.Mutex
	subs    map[int]func(companyID string)
	nextSub int
}

func NewProvider(fetch FetchFunc) *Provider {
	return &Provider{
		fetch: fetch,
		cache: make(map[string]settings.BusinessSettings),
		gen:   make(map[string]uint64),
		subs:  make(map[int]func(companyID string)),
	}
}

// NewRepositoryProvider wires the provider to the settings repository.
func NewRepositoryProvider(repo settings.SettingsRepository) *Provider {
	return NewProvider(repo.GetByCompanyID)
}

// Get returns the cached settings for a company, fetching on first use or
// after invalidation. Callers waiting on the same in-flight fetch all
// receive its result. Cancelling ctx abandons this caller's wait without
// cancelling the shared fetch other callers depend on.
//
// A failed fetch is surfaced wrapped in ErrConfigurationUnavailable; no
// default is substituted. Degrading gracefully is the consumer's decision.
func (p *Provider) Get(ctx context.Context, companyID string) (settings.BusinessSettings, error) {
	p.mu.RLock()
	cached, ok := p.cache[companyID]
	p.mu.RUnlock()
	if ok {
		return cached, nil
	}

	ch := p.sf.DoChan(companyID, func() (interface{}, error) {
		p.mu.RLock()
		startGen := p.gen[companyID]
		p.mu.RUnlock()

		fetched, err := p.fetch(context.WithoutCancel(ctx), companyID)
		if err != nil {
			return nil, err
		}

		p.mu.Lock()
		// An Invalidate/Refresh/Prime that landed while this fetch was in
		// flight holds a newer value; this fetch must not overwrite it.
		if p.gen[companyID] == startGen {
			p.cache[companyID] = fetched
		}
		p.mu.Unlock()
		return fetched, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return settings.BusinessSettings{}, fmt.Errorf("%w: %w", settings.ErrConfigurationUnavailable, res.Err)
		}
		return res.Val.(settings.BusinessSettings), nil
	case <-ctx.Done():
		return settings.BusinessSettings{}, ctx.Err()
	}
}

// Subscribe registers a callback invoked whenever a company's settings are
// invalidated or refreshed. The returned function deregisters the callback;
// calling it more than once is harmless and other subscribers are unaffected.
func (p *Provider) Subscribe(fn func(companyID string)) (unsubscribe func()) {
	p.subMu.Lock()
	id := p.nextSub
	p.nextSub++
	p.subs[id] = fn
	p.subMu.Unlock()

	return func() {
		p.subMu.Lock()
		delete(p.subs, id)
		p.subMu.Unlock()
	}
}

// Invalidate drops the cached value for a company and notifies subscribers.
// The next Get refetches.
func (p *Provider) Invalidate(companyID string) {
	p.mu.Lock()
	delete(p.cache, companyID)
	p.gen[companyID]++
	p.mu.Unlock()
	p.sf.Forget(companyID)

	p.notify(companyID)
}

// Refresh fetches fresh settings, swaps them into the cache and notifies
// subscribers. Once Refresh returns, every subsequent Get observes the new
// value.
func (p *Provider) Refresh(ctx context.Context, companyID string) (settings.BusinessSettings, error) {
	fetched, err := p.fetch(ctx, companyID)
	if err != nil {
		return settings.BusinessSettings{}, fmt.Errorf("%w: %w", settings.ErrConfigurationUnavailable, err)
	}

	p.mu.Lock()
	p.cache[companyID] = fetched
	p.gen[companyID]++
	p.mu.Unlock()
	p.sf.Forget(companyID)

	p.notify(companyID)
	return fetched, nil
}

// Prime seeds the cache directly, used after a successful write when the
// fresh row is already in hand.
func (p *Provider) Prime(s settings.BusinessSettings) {
	p.mu.Lock()
	p.cache[s.CompanyID] = s
	p.gen[s.CompanyID]++
	p.mu.Unlock()

	p.notify(s.CompanyID)
}

// notify is fire-and-forget: each subscriber runs in its own goroutine and
// a panicking subscriber does not take down the provider or its peers.
func (p *Provider) notify(companyID string) {
	p.subMu.Lock()
	callbacks := make([]func(string), 0, len(p.subs))
	for _, fn := range p.subs {
		callbacks = append(callbacks, fn)
	}
	p.subMu.Unlock()

	for _, fn := range callbacks {
		go func(fn func(string)) {
			defer func() {
				_ = recover()
			}()
			fn(companyID)
		}(fn)
	}
}
