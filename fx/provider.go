// Package fx provides the FX rates of the finance engine.
//
// Rates are fetched from a remote service for a base currency, and cached in a
// finance.Store under the key finance.KeyFXRates for 12 hours. When nothing
// valid is cached and the fetch fails, a static fallback map is used instead:
// callers always get usable rates.
package fx

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/etnz/finance"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// MaxAge is the age after which cached rates are stale.
const MaxAge = 12 * time.Hour

// State is the state of the provider for its current base currency.
type State int

const (
	// Stale means there are no valid rates for the current base currency.
	Stale State = iota
	// Fresh means the rates for the current base currency are resolved.
	Fresh
)

func (s State) String() string {
	switch s {
	case Stale:
		return "stale"
	case Fresh:
		return "fresh"
	default:
		return "unknown"
	}
}

// Fetcher fetches the rates of all currencies relative to base.
type Fetcher interface {
	Fetch(ctx context.Context, base string) (map[string]decimal.Decimal, error)
}

// Provider resolves FX rates for a base currency, from memory, from the store
// cache, from the Fetcher or from the fallback map, in that order.
//
// Concurrent resolutions are not coordinated: when they race, the last one to
// resolve wins.
type Provider struct {
	store   finance.Store
	fetcher Fetcher

	MaxAge time.Duration      // defaults to MaxAge
	Now    func() time.Time   // defaults to time.Now
	Logger logrus.FieldLogger // defaults to the logrus standard logger

	mu       sync.Mutex
	base     string
	rates    finance.Rates
	state    State
	degraded bool
}

// NewProvider returns a stale provider caching into store and fetching with fetcher.
func NewProvider(store finance.Store, fetcher Fetcher) *Provider {
	return &Provider{
		store:   store,
		fetcher: fetcher,
		MaxAge:  MaxAge,
		Now:     time.Now,
		Logger:  logrus.StandardLogger(),
	}
}

// State returns the state of the provider.
func (p *Provider) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Degraded reports whether the current rates are the fallback ones.
func (p *Provider) Degraded() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.degraded
}

// Base returns the current base currency.
func (p *Provider) Base() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.base
}

// SetBase changes the base currency. The provider becomes stale if it differs
// from the current one.
func (p *Provider) SetBase(base string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.base != base {
		p.base = base
		p.state = Stale
		p.degraded = false
	}
}

// Rates returns the rates for base. It never fails: if rates can neither be
// read from cache nor fetched, the fallback rates are returned.
func (p *Provider) Rates(ctx context.Context, base string) finance.Rates {
	p.SetBase(base)
	p.mu.Lock()
	if p.state == Fresh {
		rates := p.rates
		p.mu.Unlock()
		return rates
	}
	p.mu.Unlock()

	log := p.Logger.WithField("base", base)

	if values, ok := p.cached(base); ok {
		log.Debug("using cached rates")
		return p.settle(base, finance.NewRates(base, values), false)
	}

	values, err := p.fetcher.Fetch(ctx, base)
	if err != nil {
		log.Warnf("cannot fetch rates, using fallback rates: %v", err)
		return p.settle(base, finance.FallbackRates(base), true)
	}
	rates := finance.NewRates(base, values)
	if err := p.save(rates); err != nil {
		log.Warnf("cannot cache rates: %v", err)
	}
	log.WithField("currencies", rates.Len()).Debug("fetched rates")
	return p.settle(base, rates, false)
}

func (p *Provider) settle(base string, rates finance.Rates, degraded bool) finance.Rates {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.base = base
	p.rates = rates
	p.state = Fresh
	p.degraded = degraded
	return rates
}

// cacheEntry is the persisted form of the rates.
type cacheEntry struct {
	Base      string                 `json:"base"`
	Timestamp int64                  `json:"timestamp"` // unix milliseconds
	Rates     map[string]json.Number `json:"rates"`
}

// cached returns the cached rates if they were computed for base and are
// younger than MaxAge. A corrupt entry is a cache miss.
func (p *Provider) cached(base string) (map[string]decimal.Decimal, bool) {
	content, ok := p.store.Get(finance.KeyFXRates)
	if !ok {
		return nil, false
	}
	var entry cacheEntry
	if err := json.Unmarshal([]byte(content), &entry); err != nil {
		p.Logger.Debugf("discarding corrupt rates cache: %v", err)
		return nil, false
	}
	if entry.Base != base {
		return nil, false
	}
	age := p.Now().Sub(time.UnixMilli(entry.Timestamp))
	if age >= p.MaxAge {
		p.Logger.WithField("age", age.Round(time.Minute)).Debug("cached rates are stale")
		return nil, false
	}
	values := make(map[string]decimal.Decimal, len(entry.Rates))
	for cur, n := range entry.Rates {
		v, err := decimal.NewFromString(n.String())
		if err != nil {
			return nil, false
		}
		values[cur] = v
	}
	return values, true
}

func (p *Provider) save(rates finance.Rates) error {
	entry := cacheEntry{
		Base:      rates.Base(),
		Timestamp: p.Now().UnixMilli(),
		Rates:     make(map[string]json.Number),
	}
	for cur, v := range rates.Map() {
		entry.Rates[cur] = json.Number(v.String())
	}
	content, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return p.store.Set(finance.KeyFXRates, string(content))
}
