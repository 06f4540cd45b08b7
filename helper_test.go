package finance

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// EUR is a helper for test to create euro money from const
func EUR(v float64) Money { return M(v, "EUR") }

// R is a helper for test to create a row from const.
func R(account string, amount float64, currency string) Row {
	return NewRow(account, D(amount), currency)
}

// usdRates are rates with USD as base currency.
func usdRates() Rates { return NewRates("USD", nil) }

// mapStore is an in-memory Store for tests.
type mapStore map[string]string

func (s mapStore) Get(key string) (string, bool) { v, ok := s[key]; return v, ok }
func (s mapStore) Set(key, value string) error  { s[key] = value; return nil }

var errWrite = errors.New("disk full")

// failingStore refuses all writes.
type failingStore struct{ mapStore }

func (failingStore) Set(string, string) error { return errWrite }

// ignoreIDs compares rows on their content only.
var ignoreIDs = cmpopts.IgnoreFields(Row{}, "ID")

func assertRows(t *testing.T, got, want []Row, opts ...cmp.Option) {
	t.Helper()
	if diff := cmp.Diff(want, got, opts...); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func assertMoney(t *testing.T, name string, got, want Money) {
	t.Helper()
	if !got.Equal(want) {
		t.Errorf("%s = %v (%s), want %v (%s)", name, got.Decimal(), got.Currency(), want.Decimal(), want.Currency())
	}
}
