package finance

// Normalize converts the row amount into the base currency of 'rates'.
//
// A currency missing from the rates is assumed to be already in the base
// currency (rate 1). Normalize never fails.
func Normalize(row Row, rates Rates) Money {
	rate, ok := rates.Rate(row.Currency)
	if !ok || rate.Equal(one) {
		return Money{value: row.Amount, cur: rates.Base()}
	}
	return Money{value: row.Amount.Div(rate), cur: rates.Base()}
}

// zero returns a zero amount in the base currency.
func zero(rates Rates) Money { return Money{cur: rates.Base()} }
