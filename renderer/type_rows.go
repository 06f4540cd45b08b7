package renderer

import (
	"strings"

	"github.com/etnz/finance"
)

// RowList is the report listing the ledger rows.
type RowList struct {
	Header
	Rows  []RowLine     `json:"rows"`
	Total finance.Money `json:"total"`
}

// RowLine is one ledger row, with its normalized amount and the buckets it
// lands in.
type RowLine struct {
	ID         string        `json:"id"`
	Account    string        `json:"account"`
	Amount     string        `json:"amount"`
	Currency   string        `json:"currency"`
	Buckets    string        `json:"buckets"`
	Normalized finance.Money `json:"normalized"`
}

// NewRowList builds the rows report. Rows are listed in ledger order.
func NewRowList(h Header, rows []finance.Row, rates finance.Rates, table finance.Table) *RowList {
	l := &RowList{Header: h}
	if l.Title == "" {
		l.Title = "Rows"
	}
	if l.Currency == "" {
		l.Currency = rates.Base()
	}
	l.Total = finance.M(0, rates.Base())
	for _, r := range rows {
		n := finance.Normalize(r, rates)
		var labels []string
		for _, b := range finance.Classify(r.Account, table).Sorted() {
			labels = append(labels, b.Label())
		}
		l.Rows = append(l.Rows, RowLine{
			ID:         r.ShortID(),
			Account:    r.Account,
			Amount:     r.Amount.StringFixed(2),
			Currency:   r.Currency,
			Buckets:    strings.Join(labels, ", "),
			Normalized: n,
		})
		l.Total = l.Total.Add(n)
	}
	return l
}

// RenderRowList renders the rows report to markdown.
func RenderRowList(l *RowList) string {
	return renderTemplate("rows", "rows.md", headerPartials(), l)
}
