package finance

import (
	"maps"
	"slices"

	"github.com/shopspring/decimal"
)

// Rates maps currency codes to their conversion rate relative to a base currency.
//
// A rate is expressed as units of currency per 1 unit of base, so converting an
// amount to the base currency divides by the rate. The base currency always has
// a rate of exactly 1.
type Rates struct {
	base   string
	values map[string]decimal.Decimal
}

// fallbackRates is the last-known-good map used when rates cannot be fetched.
var fallbackRates = map[string]decimal.Decimal{
	"USD": decimal.NewFromInt(1),
	"EUR": decimal.RequireFromString("0.92"),
	"GBP": decimal.RequireFromString("0.8"),
}

// NewRates returns the rates for 'base' currency.
//
// Non positive rates are ignored, and the base currency is forced to 1.
func NewRates(base string, values map[string]decimal.Decimal) Rates {
	r := Rates{base: base, values: make(map[string]decimal.Decimal, len(values)+1)}
	for cur, rate := range values {
		if !rate.IsPositive() {
			logger.WithField("currency", cur).Debugf("ignoring non positive rate %v", rate)
			continue
		}
		r.values[cur] = rate
	}
	if base != "" {
		r.values[base] = one
	}
	return r
}

// FallbackRates returns the static default rates, merged with a rate of 1 for 'base'.
func FallbackRates(base string) Rates { return NewRates(base, fallbackRates) }

// Base returns the base currency.
func (r Rates) Base() string { return r.base }

// Rate returns the rate for a currency, and whether it is known.
func (r Rates) Rate(currency string) (decimal.Decimal, bool) {
	rate, ok := r.values[currency]
	return rate, ok
}

// Currencies returns the sorted list of currencies with a known rate.
func (r Rates) Currencies() []string {
	return slices.Sorted(maps.Keys(r.values))
}

// Map returns a copy of the underlying currency to rate map.
func (r Rates) Map() map[string]decimal.Decimal { return maps.Clone(r.values) }

// Len returns the number of known rates.
func (r Rates) Len() int { return len(r.values) }
