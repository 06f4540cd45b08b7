package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finance"
	"github.com/etnz/finance/renderer"
	"github.com/google/subcommands"
)

// scenarioFlags are the flags of the commands that project a scenario.
type scenarioFlags struct {
	name       string
	multiplier string
}

func (s *scenarioFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&s.name, "scenario", "", "Name of the scenario to project.")
	f.StringVar(&s.multiplier, "x", "", "Multiplier applied to every amount of the scenario (e.g. 1.1 for +10%).")
}

// load reads the scenario flags, then the rows and the rates from the store.
func (s *scenarioFlags) load(ctx context.Context, title string) (*report, subcommands.ExitStatus) {
	sc, err := parseScenario(s.name, s.multiplier)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil, subcommands.ExitUsageError
	}
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return nil, subcommands.ExitFailure
	}
	defer store.Close()

	rows := finance.LoadLedger(store).Rows()
	r, p := rates(ctx, store)
	return &report{
		scenario: sc,
		rows:     rows,
		rates:    r,
		header:   header(title, p, sc),
	}, subcommands.ExitSuccess
}

// report holds what is needed to compute a report.
type report struct {
	scenario finance.Scenario
	rows     []finance.Row
	rates    finance.Rates
	header   renderer.Header
}

type pnlCmd struct {
	scenarioFlags
}

func (*pnlCmd) Name() string     { return "pnl" }
func (*pnlCmd) Synopsis() string { return "display the Profit & Loss statement" }
func (*pnlCmd) Usage() string {
	return `fin pnl [-scenario <name>] [-x <multiplier>]

  Displays the Profit & Loss statement of the ledger, every amount converted to
  the base currency. Rows are assigned to P&L lines by keywords in their
  account. See 'fin topic buckets' and 'fin topic scenarios'.
`
}

func (c *pnlCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rep, status := c.load(ctx, "Profit & Loss")
	if status != subcommands.ExitSuccess {
		return status
	}
	pl := rep.scenario.ProfitLoss(rep.rows, rep.rates)
	printMarkdown(renderer.RenderStatement(renderer.NewStatement(rep.header, pl)))
	return subcommands.ExitSuccess
}

type metricsCmd struct {
	scenarioFlags
}

func (*metricsCmd) Name() string     { return "metrics" }
func (*metricsCmd) Synopsis() string { return "display the summary metrics" }
func (*metricsCmd) Usage() string {
	return `fin metrics [-scenario <name>] [-x <multiplier>]

  Displays the summary metrics of the ledger: totals, income, expenses, margin,
  cash flow and ROI, every amount converted to the base currency.
`
}

func (c *metricsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rep, status := c.load(ctx, "Summary")
	if status != subcommands.ExitSuccess {
		return status
	}
	m := rep.scenario.Metrics(rep.rows, rep.rates)
	printMarkdown(renderer.RenderSummary(renderer.NewSummary(rep.header, m)))
	return subcommands.ExitSuccess
}

type chartCmd struct {
	scenarioFlags
	of string
}

// chartKinds are the series the chart command can draw.
var chartKinds = []string{"accounts", "pnl", "metrics"}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "display a bar chart" }
func (*chartCmd) Usage() string {
	return `fin chart [-of accounts|pnl|metrics] [-scenario <name>] [-x <multiplier>]

  Displays a bar chart of the amounts per account, of the P&L statement lines
  or of the summary metrics.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	c.scenarioFlags.SetFlags(f)
	f.StringVar(&c.of, "of", "accounts", "What to chart: accounts, pnl or metrics.")
}

func (c *chartCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var series func(r *report) finance.Series
	switch c.of {
	case "accounts":
		series = func(r *report) finance.Series { return r.scenario.Accounts(r.rows, r.rates) }
	case "pnl":
		series = func(r *report) finance.Series { return r.scenario.ProfitLoss(r.rows, r.rates).Series() }
	case "metrics":
		series = func(r *report) finance.Series { return r.scenario.Metrics(r.rows, r.rates).Series() }
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown chart %q, want one of %v\n", c.of, chartKinds)
		return subcommands.ExitUsageError
	}

	rep, status := c.load(ctx, "Chart of "+c.of)
	if status != subcommands.ExitSuccess {
		return status
	}
	printMarkdown(renderer.RenderChart(renderer.NewChart(rep.header, series(rep))))
	return subcommands.ExitSuccess
}
