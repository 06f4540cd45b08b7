package finance

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNormalize(t *testing.T) {
	rates := NewRates("USD", map[string]decimal.Decimal{"EUR": D(0.5), "GBP": D(0.8)})

	testCases := []struct {
		name string
		row  Row
		want Money
	}{
		{"base currency is identity", R("Revenue", 1234.56, "USD"), USD(1234.56)},
		{"divides by the rate", R("Revenue", 100, "EUR"), USD(200)},
		{"negative amounts keep their sign", R("COGS", -80, "GBP"), USD(-100)},
		{"unknown currency uses rate 1", R("Revenue", 42, "JPY"), USD(42)},
		{"empty currency uses rate 1", R("Revenue", 7, ""), USD(7)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assertMoney(t, "Normalize()", Normalize(tc.row, rates), tc.want)
		})
	}
}

func TestNewRates(t *testing.T) {
	rates := NewRates("EUR", map[string]decimal.Decimal{"EUR": D(3), "USD": D(1.1), "GBP": D(0), "JPY": D(-1)})

	if r, ok := rates.Rate("EUR"); !ok || !r.Equal(D(1)) {
		t.Errorf("Rate(EUR) = %v, %v, want 1, true", r, ok)
	}
	if _, ok := rates.Rate("GBP"); ok {
		t.Error("Rate(GBP) should be ignored, it is not positive")
	}
	if _, ok := rates.Rate("JPY"); ok {
		t.Error("Rate(JPY) should be ignored, it is not positive")
	}
	if got, want := rates.Currencies(), []string{"EUR", "USD"}; len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Currencies() = %v, want %v", got, want)
	}
	// a zero rate must not panic on division.
	assertMoney(t, "Normalize(GBP)", Normalize(R("Revenue", 10, "GBP"), rates), EUR(10))
}

func TestFallbackRates(t *testing.T) {
	rates := FallbackRates("GBP")
	want := map[string]float64{"USD": 1, "EUR": 0.92, "GBP": 1}
	for cur, w := range want {
		r, ok := rates.Rate(cur)
		if !ok || !r.Equal(D(w)) {
			t.Errorf("FallbackRates(GBP).Rate(%s) = %v, %v, want %v", cur, r, ok, w)
		}
	}
	if rates.Base() != "GBP" {
		t.Errorf("Base() = %q, want GBP", rates.Base())
	}
}
