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

type ratesCmd struct{}

func (*ratesCmd) Name() string     { return "rates" }
func (*ratesCmd) Synopsis() string { return "display the FX rates in use" }
func (*ratesCmd) Usage() string {
	return `fin rates

  Displays the FX rates used to convert amounts to the base currency, as units
  of each currency for one unit of the base currency. Rates are cached in the
  store for 12 hours; when they cannot be fetched, static fallback rates are
  used. See 'fin topic fx'.
`
}

func (c *ratesCmd) SetFlags(f *flag.FlagSet) {}

func (c *ratesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	r, p := rates(ctx, store)
	t := renderer.NewRateTable(header("FX Rates", p, finance.Baseline), p.State().String(), r)
	printMarkdown(renderer.RenderRateTable(t))
	return subcommands.ExitSuccess
}
