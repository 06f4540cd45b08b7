package finance

import "github.com/shopspring/decimal"

// Scenario projects the ledger by scaling every normalized amount with a
// multiplier. Stored rows are never altered.
type Scenario struct {
	Name       string
	Multiplier decimal.Decimal
}

// Baseline is the scenario that leaves amounts unchanged.
var Baseline = Scenario{Name: "baseline", Multiplier: DefaultMultiplier}

// NewScenario returns a named scenario.
func NewScenario(name string, multiplier decimal.Decimal) Scenario {
	return Scenario{Name: name, Multiplier: multiplier}
}

// IsBaseline reports whether the scenario leaves amounts unchanged.
func (s Scenario) IsBaseline() bool { return s.Multiplier.Equal(one) }

// Metrics computes the summary metrics of the projected rows.
func (s Scenario) Metrics(rows []Row, rates Rates) Metrics {
	return NewMetrics(rows, rates, s.Multiplier)
}

// ProfitLoss computes the Profit & Loss statement of the projected rows.
func (s Scenario) ProfitLoss(rows []Row, rates Rates) ProfitLoss {
	return calculateProfitLoss(rows, rates, s.Multiplier)
}

// Accounts computes the projected totals by account.
func (s Scenario) Accounts(rows []Row, rates Rates) Series {
	return AccountSeries(rows, rates, s.Multiplier)
}
