package renderer

import "github.com/etnz/finance"

// Summary is the summary metrics report.
type Summary struct {
	Header
	Count   int             `json:"count"`
	Metrics []SummaryMetric `json:"metrics"`
	ROI     finance.Percent `json:"roi"`
}

// SummaryMetric is a single labelled metric.
type SummaryMetric struct {
	Label string        `json:"label"`
	Value finance.Money `json:"value"`
}

// NewSummary builds the summary report from computed metrics.
func NewSummary(h Header, m finance.Metrics) *Summary {
	s := &Summary{Header: h, Count: m.Count, ROI: m.ROI}
	if s.Title == "" {
		s.Title = "Summary"
	}
	if s.Currency == "" {
		s.Currency = m.Total.Currency()
	}
	for _, p := range m.Series() {
		s.Metrics = append(s.Metrics, SummaryMetric{Label: p.Label, Value: p.Value})
	}
	return s
}

// RenderSummary renders the summary to markdown.
func RenderSummary(s *Summary) string {
	return renderTemplate("summary", "summary.md", headerPartials(), s)
}
