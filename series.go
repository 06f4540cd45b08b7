package finance

import "github.com/shopspring/decimal"

// Point is a single labelled value, ready to be charted.
type Point struct {
	Label string
	Value Money
	Total bool // true for derived totals, as opposed to direct sums
}

// Series is an ordered list of points.
type Series []Point

// AccountSeries sums the normalized and scaled amounts by account label, in
// the order accounts are first seen.
func AccountSeries(rows []Row, rates Rates, multiplier decimal.Decimal) Series {
	index := make(map[string]int)
	var s Series
	for _, row := range rows {
		amount := Normalize(row, rates).Mul(multiplier)
		i, ok := index[row.Account]
		if !ok {
			i = len(s)
			index[row.Account] = i
			s = append(s, Point{Label: row.Account, Value: zero(rates)})
		}
		s[i].Value = s[i].Value.Add(amount)
	}
	return s
}

// MaxAbs returns the largest absolute value in the series, or zero.
func (s Series) MaxAbs() decimal.Decimal {
	var m decimal.Decimal
	for _, p := range s {
		if v := p.Value.Decimal().Abs(); v.GreaterThan(m) {
			m = v
		}
	}
	return m
}
