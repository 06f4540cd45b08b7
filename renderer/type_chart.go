package renderer

import (
	"strings"

	"github.com/etnz/finance"
	"github.com/shopspring/decimal"
)

// barWidth is the width of the longest bar.
const barWidth = 24

// Chart is a bar chart of a series, rendered as a table.
type Chart struct {
	Header
	Bars []ChartBar `json:"bars"`
}

// ChartBar is one bar of the chart.
type ChartBar struct {
	Label string        `json:"label"`
	Value finance.Money `json:"value"`
	Bar   string        `json:"bar"`
}

// NewChart builds a chart of s. Bars are scaled on the largest absolute value,
// negative values are drawn with a lighter shade.
func NewChart(h Header, s finance.Series) *Chart {
	c := &Chart{Header: h}
	if c.Title == "" {
		c.Title = "Chart"
	}
	if c.Currency == "" && len(s) > 0 {
		c.Currency = s[0].Value.Currency()
	}
	top := s.MaxAbs()
	for _, p := range s {
		c.Bars = append(c.Bars, ChartBar{Label: p.Label, Value: p.Value, Bar: bar(p.Value.Decimal(), top)})
	}
	return c
}

func bar(v, top decimal.Decimal) string {
	if top.IsZero() {
		return ""
	}
	n := int(v.Abs().Mul(decimal.NewFromInt(barWidth)).Div(top).Round(0).IntPart())
	if n == 0 && !v.IsZero() {
		n = 1
	}
	shade := "█"
	if v.IsNegative() {
		shade = "░"
	}
	return strings.Repeat(shade, n)
}

// RenderChart renders the chart to markdown.
func RenderChart(c *Chart) string {
	return renderTemplate("chart", "chart.md", headerPartials(), c)
}
