package finance

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewMetrics(t *testing.T) {
	rows := []Row{
		R("Revenue", 1000, "USD"),
		R("Cost of Goods Sold", -300, "USD"),
		R("Operating Expenses", -200, "USD"),
	}
	m := NewMetrics(rows, usdRates(), DefaultMultiplier)

	if m.Count != 3 {
		t.Errorf("Count = %d, want 3", m.Count)
	}
	assertMoney(t, "Total", m.Total, USD(500))
	assertMoney(t, "Max", m.Max, USD(1000))
	assertMoney(t, "Min", m.Min, USD(-300))
	assertMoney(t, "Income", m.Income, USD(1000))
	assertMoney(t, "Expenses", m.Expenses, USD(-500))
	assertMoney(t, "GrossMargin", m.GrossMargin, USD(500))
	assertMoney(t, "EBITDA", m.EBITDA, m.GrossMargin)
	assertMoney(t, "CashFlow", m.CashFlow, m.Total)
	if !m.ROI.Equal(100) {
		t.Errorf("ROI = %v, want 100%%", m.ROI)
	}
	if got, want := m.Average.Decimal().Round(2), D(166.67); !got.Equal(want) {
		t.Errorf("Average = %v, want %v", got, want)
	}
}

func TestNewMetrics_Multiplier(t *testing.T) {
	rates := NewRates("USD", map[string]decimal.Decimal{"EUR": D(0.5)})
	rows := []Row{R("Revenue", 100, "EUR"), R("COGS", -50, "USD")}
	m := NewMetrics(rows, rates, D(1.5))

	assertMoney(t, "Total", m.Total, USD(225))
	assertMoney(t, "Max", m.Max, USD(300))
	assertMoney(t, "Min", m.Min, USD(-75))
	assertMoney(t, "Average", m.Average, USD(112.5))
	if !m.ROI.Equal(300) {
		t.Errorf("ROI = %v, want 300%%", m.ROI)
	}
}

func TestNewMetrics_Empty(t *testing.T) {
	m := NewMetrics(nil, usdRates(), DefaultMultiplier)
	for _, p := range m.Series() {
		if !p.Value.IsZero() {
			t.Errorf("%s = %v, want 0", p.Label, p.Value)
		}
	}
	if m.ROI != 0 {
		t.Errorf("ROI = %v, want 0", m.ROI)
	}
}

func TestNewMetrics_ROIWithoutExpenses(t *testing.T) {
	rows := []Row{R("Revenue", 1000, "USD"), R("Zero", 0, "USD")}
	m := NewMetrics(rows, usdRates(), DefaultMultiplier)
	if m.ROI != 0 {
		t.Errorf("ROI = %v, want 0 when there are no expenses", m.ROI)
	}
	assertMoney(t, "CashFlow", m.CashFlow, USD(1000))
	assertMoney(t, "Min", m.Min, USD(0))
}

func TestNewMetrics_SingleNegativeRow(t *testing.T) {
	m := NewMetrics([]Row{R("Rent", -20, "USD")}, usdRates(), DefaultMultiplier)
	assertMoney(t, "Max", m.Max, USD(-20))
	assertMoney(t, "Min", m.Min, USD(-20))
	if !m.ROI.Equal(-100) {
		t.Errorf("ROI = %v, want -100%%", m.ROI)
	}
}
