package renderer

import "github.com/etnz/finance"

// RateTable is the report listing the FX rates in use.
type RateTable struct {
	Header
	State string     `json:"state"`
	Rates []RateLine `json:"rates"`
}

// RateLine is the rate of one currency: units of Currency for one unit of the
// base currency.
type RateLine struct {
	Currency string `json:"currency"`
	Rate     string `json:"rate"`
}

// NewRateTable builds the rates report, currencies are sorted.
func NewRateTable(h Header, state string, rates finance.Rates) *RateTable {
	t := &RateTable{Header: h, State: state}
	if t.Title == "" {
		t.Title = "FX Rates"
	}
	if t.Currency == "" {
		t.Currency = rates.Base()
	}
	for _, c := range rates.Currencies() {
		r, _ := rates.Rate(c)
		t.Rates = append(t.Rates, RateLine{Currency: c, Rate: r.String()})
	}
	return t
}

// RenderRateTable renders the rates report to markdown.
func RenderRateTable(t *RateTable) string {
	return renderTemplate("rates", "rates.md", headerPartials(), t)
}
