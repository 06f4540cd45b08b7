package renderer

import "github.com/etnz/finance"

// Statement is the Profit & Loss statement report.
type Statement struct {
	Header
	Lines []StatementLine `json:"lines"`
}

// StatementLine is one line of the statement, totals are highlighted.
type StatementLine struct {
	Label  string        `json:"label"`
	Amount finance.Money `json:"amount"`
	Total  bool          `json:"total,omitempty"`
}

// NewStatement builds the statement report from a computed ProfitLoss.
func NewStatement(h Header, pl finance.ProfitLoss) *Statement {
	s := &Statement{Header: h}
	if s.Title == "" {
		s.Title = "Profit & Loss"
	}
	if s.Currency == "" {
		s.Currency = pl.Currency()
	}
	for _, p := range pl.Series() {
		s.Lines = append(s.Lines, StatementLine{Label: p.Label, Amount: p.Value, Total: p.Total})
	}
	return s
}

// RenderStatement renders the statement to markdown.
func RenderStatement(s *Statement) string {
	return renderTemplate("statement", "statement.md", headerPartials(), s)
}
