package finance

import "github.com/shopspring/decimal"

// DefaultMultiplier leaves amounts unchanged.
var DefaultMultiplier = decimal.NewFromInt(1)

// Metrics summarizes a row set in the base currency, after applying a scenario
// multiplier.
type Metrics struct {
	Count       int
	Total       Money
	Average     Money
	Max         Money
	Min         Money
	Income      Money // sum of positive amounts
	Expenses    Money // sum of negative amounts
	GrossMargin Money // Income + Expenses
	EBITDA      Money // same as GrossMargin, no D&A or interest is modeled
	CashFlow    Money // same as Total
	ROI         Percent
}

// NewMetrics computes the summary metrics of rows converted with rates and
// scaled by multiplier.
//
// Average, Max and Min are 0 when there are no rows. ROI is 0 when there are
// no expenses.
func NewMetrics(rows []Row, rates Rates, multiplier decimal.Decimal) Metrics {
	m := Metrics{
		Count:    len(rows),
		Total:    zero(rates),
		Average:  zero(rates),
		Max:      zero(rates),
		Min:      zero(rates),
		Income:   zero(rates),
		Expenses: zero(rates),
	}
	for i, row := range rows {
		amount := Normalize(row, rates).Mul(multiplier)
		m.Total = m.Total.Add(amount)
		if i == 0 || amount.GreaterThan(m.Max) {
			m.Max = amount
		}
		if i == 0 || amount.LessThan(m.Min) {
			m.Min = amount
		}
		switch {
		case amount.IsPositive():
			m.Income = m.Income.Add(amount)
		case amount.IsNegative():
			m.Expenses = m.Expenses.Add(amount)
		}
	}
	if m.Count > 0 {
		m.Average = m.Total.Div(decimal.NewFromInt(int64(m.Count)))
	}
	m.GrossMargin = m.Income.Add(m.Expenses)
	m.EBITDA = m.GrossMargin
	m.CashFlow = m.Total
	if !m.Expenses.IsZero() {
		m.ROI = percent(m.CashFlow.DivMoney(m.Expenses.Abs()).Mul(decimal.NewFromInt(100)))
	}
	return m
}

// Series returns the summary metrics as labelled points, ROI excluded.
func (m Metrics) Series() Series {
	return Series{
		{Label: "Total", Value: m.Total},
		{Label: "Average", Value: m.Average},
		{Label: "Max", Value: m.Max},
		{Label: "Min", Value: m.Min},
		{Label: "Income", Value: m.Income},
		{Label: "Expenses", Value: m.Expenses},
		{Label: "Gross Margin", Value: m.GrossMargin},
		{Label: "EBITDA", Value: m.EBITDA},
		{Label: "Cash Flow", Value: m.CashFlow},
	}
}
