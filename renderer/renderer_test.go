package renderer

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/etnz/finance"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// tableRows parses md and returns the text of every body row of its tables,
// one slice of cells per row.
func tableRows(t *testing.T, md string) [][]string {
	t.Helper()
	src := []byte(md)
	root := goldmark.New(goldmark.WithExtensions(extension.Table)).Parser().Parse(text.NewReader(src))

	var rows [][]string
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || n.Kind() != extast.KindTableRow {
			return ast.WalkContinue, nil
		}
		var cells []string
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			cells = append(cells, nodeText(c, src))
		}
		rows = append(rows, cells)
		return ast.WalkSkipChildren, nil
	})
	if err != nil {
		t.Fatalf("walking markdown: %v", err)
	}
	return rows
}

func nodeText(n ast.Node, src []byte) string {
	var b strings.Builder
	ast.Walk(n, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := n.(type) {
		case *ast.Text:
			b.Write(n.Segment.Value(src))
		case *ast.String:
			b.Write(n.Value)
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}

func row(account string, amount float64, currency string) finance.Row {
	return finance.NewRow(account, decimal.NewFromFloat(amount), currency)
}

func usd() finance.Rates { return finance.NewRates("USD", nil) }

func TestRenderStatement(t *testing.T) {
	rows := []finance.Row{
		row("Revenue", 1000, "USD"),
		row("COGS", -400, "USD"),
		row("Operating Expenses", -100, "USD"),
		row("Tax", -90, "USD"),
	}
	md := RenderStatement(NewStatement(Header{}, finance.CalculateProfitLoss(rows, usd())))

	if !strings.HasPrefix(md, "# Profit & Loss\n") {
		t.Errorf("RenderStatement() title missing:\n%s", md)
	}

	got := tableRows(t, md)
	want := [][]string{
		{"Revenue", "$1,000.00"},
		{"Cost of Goods Sold", "-$400.00"},
		{"Gross Profit", "$600.00"},
		{"Operating Expenses", "-$100.00"},
		{"Administrative", "$0.00"},
		{"Operational Profit", "$500.00"},
		{"Other Income", "$0.00"},
		{"Other Expenses", "$0.00"},
		{"Earnings Before Taxes", "$500.00"},
		{"Taxes", "-$90.00"},
		{"Net Profit", "$410.00"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("RenderStatement() rows mismatch (-want +got):\n%s\n%s", diff, md)
	}
	if !strings.Contains(md, "| **Net Profit** | **$410.00** |") {
		t.Errorf("RenderStatement() totals are not highlighted:\n%s", md)
	}
}

func TestRenderSummary(t *testing.T) {
	rows := []finance.Row{
		row("Sales", 300, "USD"),
		row("Rent", -100, "USD"),
	}
	m := finance.NewMetrics(rows, usd(), finance.DefaultMultiplier)
	md := RenderSummary(NewSummary(Header{Scenario: "optimistic"}, m))

	got := tableRows(t, md)
	if len(got) != 11 {
		t.Fatalf("RenderSummary() got %d rows, want 11:\n%s", len(got), md)
	}
	if diff := cmp.Diff([]string{"Rows", "2"}, got[0]); diff != "" {
		t.Errorf("RenderSummary() first row mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"ROI", "200.00%"}, got[len(got)-1]); diff != "" {
		t.Errorf("RenderSummary() ROI row mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(md, "scenario *optimistic*") {
		t.Errorf("RenderSummary() scenario missing:\n%s", md)
	}
}

func TestRenderChart(t *testing.T) {
	rows := []finance.Row{
		row("Sales", 200, "USD"),
		row("Rent", -100, "USD"),
		row("Coffee", 0, "USD"),
	}
	c := NewChart(Header{Title: "Accounts"}, finance.AccountSeries(rows, usd(), finance.DefaultMultiplier))

	wantBars := []struct {
		label string
		runes int
		shade string
	}{
		{"Sales", barWidth, "█"},
		{"Rent", barWidth / 2, "░"},
		{"Coffee", 0, ""},
	}
	if len(c.Bars) != len(wantBars) {
		t.Fatalf("NewChart() got %d bars, want %d", len(c.Bars), len(wantBars))
	}
	for i, w := range wantBars {
		b := c.Bars[i]
		if b.Label != w.label || utf8.RuneCountInString(b.Bar) != w.runes || strings.Trim(b.Bar, w.shade) != "" {
			t.Errorf("bar %d = %q %q, want %q with %d %q", i, b.Label, b.Bar, w.label, w.runes, w.shade)
		}
	}

	md := RenderChart(c)
	if got := tableRows(t, md); len(got) != 3 || got[1][1] != "-$100.00" {
		t.Errorf("RenderChart() rows = %q\n%s", got, md)
	}
}

func TestChartEmpty(t *testing.T) {
	c := NewChart(Header{}, nil)
	if len(c.Bars) != 0 {
		t.Errorf("NewChart(nil) got %d bars, want 0", len(c.Bars))
	}
	if got := tableRows(t, RenderChart(c)); len(got) != 0 {
		t.Errorf("RenderChart(empty) rows = %q, want none", got)
	}
}

func TestRenderRowList(t *testing.T) {
	rates := finance.NewRates("USD", map[string]decimal.Decimal{"EUR": decimal.RequireFromString("0.5")})
	rows := []finance.Row{
		row("Revenue | online", 100, "EUR"),
		row("Misc", 10, "USD"),
	}
	md := RenderRowList(NewRowList(Header{}, rows, rates, finance.DefaultTable))

	got := tableRows(t, md)
	if len(got) != 3 {
		t.Fatalf("RenderRowList() got %d rows, want 3:\n%s", len(got), md)
	}
	for i, r := range got {
		if len(r) != 6 {
			t.Errorf("row %d has %d cells, want 6: %q", i, len(r), r)
		}
	}
	if diff := cmp.Diff([]string{"100.00", "EUR", "Revenue", "$200.00"}, got[0][2:]); diff != "" {
		t.Errorf("RenderRowList() first row mismatch (-want +got):\n%s", diff)
	}
	if got[2][5] != "$210.00" {
		t.Errorf("RenderRowList() total = %q, want $210.00", got[2][5])
	}
}

func TestRenderRowListEmpty(t *testing.T) {
	md := RenderRowList(NewRowList(Header{}, nil, usd(), finance.DefaultTable))
	if !strings.Contains(md, "No rows yet") {
		t.Errorf("RenderRowList(empty) = %q", md)
	}
}

func TestRenderSnapshotList(t *testing.T) {
	snaps := []finance.Snapshot{
		{ID: "0123456789abcdef", Name: "Q1", Timestamp: time.Date(2025, 3, 31, 12, 0, 0, 0, time.UTC), Rows: []finance.Row{row("Revenue", 1, "USD")}},
		{ID: "fedcba9876543210", Name: "Q2", Timestamp: time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)},
	}
	got := tableRows(t, RenderSnapshotList(NewSnapshotList(snaps)))
	if len(got) != 2 {
		t.Fatalf("RenderSnapshotList() got %d rows, want 2", len(got))
	}
	if got[0][0] != "01234567" || got[0][1] != "Q1" || got[0][3] != "1" {
		t.Errorf("RenderSnapshotList() first row = %q", got[0])
	}
}

func TestRenderRateTable(t *testing.T) {
	rates := finance.FallbackRates("USD")
	md := RenderRateTable(NewRateTable(Header{Degraded: true}, "fresh", rates))

	got := tableRows(t, md)
	want := [][]string{{"EUR", "0.92"}, {"GBP", "0.8"}, {"USD", "1"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("RenderRateTable() rows mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(md, "fallback rates are used") {
		t.Errorf("RenderRateTable() degraded warning missing:\n%s", md)
	}
}

func TestJoin(t *testing.T) {
	got := Join("# A\n", "", "  \n", "# B")
	if want := "# A\n\n# B\n\n"; got != want {
		t.Errorf("Join() = %q, want %q", got, want)
	}
}
