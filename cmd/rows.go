package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/finance"
	"github.com/etnz/finance/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// parseDecimal parses a user provided amount.
func parseDecimal(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(s))
}

// checkCurrency returns an error for unknown currency codes.
func checkCurrency(code string) error {
	if !finance.ValidCurrency(code) {
		return fmt.Errorf("unknown currency %q", code)
	}
	return nil
}

type rowsCmd struct{}

func (*rowsCmd) Name() string     { return "rows" }
func (*rowsCmd) Synopsis() string { return "list the rows with their buckets and normalized amount" }
func (*rowsCmd) Usage() string {
	return `fin rows

  Lists every row of the ledger, with the P&L buckets its account lands in and
  its amount converted to the base currency.
`
}

func (c *rowsCmd) SetFlags(f *flag.FlagSet) {}

func (c *rowsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	ledger := finance.LoadLedger(store)
	r, p := rates(ctx, store)
	list := renderer.NewRowList(header("Rows", p, finance.Baseline), ledger.Rows(), r, finance.DefaultTable)
	printMarkdown(renderer.RenderRowList(list))
	return subcommands.ExitSuccess
}

type addCmd struct {
	currency string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a row to the ledger" }
func (*addCmd) Usage() string {
	return `fin add [-c <currency>] <account> <amount>

  Adds a row. Amounts are signed: positive for inflows, negative for outflows.
  The account is free text, its keywords decide its P&L buckets (see
  'fin topic buckets').

Usage Examples:
$ fin add "Product revenue" 1200
$ fin add -c EUR "Office rent (operating expenses)" -800
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "c", "", "Currency of the amount. Defaults to the base currency.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: add requires an account and an amount")
		return subcommands.ExitUsageError
	}
	account := strings.TrimSpace(f.Arg(0))
	amount, err := parseDecimal(f.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid amount %q: %v\n", f.Arg(1), err)
		return subcommands.ExitUsageError
	}
	currency := c.currency
	if currency == "" {
		currency = *baseCurrency
	}
	if err := checkCurrency(currency); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	row := finance.NewRow(account, amount, currency)
	if err := finance.LoadLedger(store).Add(row); err != nil {
		fmt.Fprintf(os.Stderr, "Error adding row: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Added row %s: %s %s %s\n", row.ShortID(), row.Account, row.Amount, row.Currency)
	return subcommands.ExitSuccess
}

type editCmd struct {
	account  string
	amount   string
	currency string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit a row of the ledger" }
func (*editCmd) Usage() string {
	return `fin edit [-account <account>] [-amount <amount>] [-c <currency>] <id>

  Edits the row identified by <id>, or an unambiguous prefix of it. Only the
  fields given as flags are changed.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "account", "", "New account of the row.")
	f.StringVar(&c.amount, "amount", "", "New amount of the row.")
	f.StringVar(&c.currency, "c", "", "New currency of the row.")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: edit requires a row id")
		return subcommands.ExitUsageError
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	ledger := finance.LoadLedger(store)
	row, err := ledger.Row(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.account != "" {
		row.Account = strings.TrimSpace(c.account)
	}
	if c.amount != "" {
		if row.Amount, err = parseDecimal(c.amount); err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid amount %q: %v\n", c.amount, err)
			return subcommands.ExitUsageError
		}
	}
	if c.currency != "" {
		if err := checkCurrency(c.currency); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		row.Currency = c.currency
	}
	if err := ledger.Update(row); err != nil {
		fmt.Fprintf(os.Stderr, "Error updating row: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Updated row %s: %s %s %s\n", row.ShortID(), row.Account, row.Amount, row.Currency)
	return subcommands.ExitSuccess
}

type rmCmd struct{}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "remove rows from the ledger" }
func (*rmCmd) Usage() string {
	return `fin rm <id>...

  Removes the rows identified by their id, or an unambiguous prefix of it.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: rm requires at least one row id")
		return subcommands.ExitUsageError
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	ledger := finance.LoadLedger(store)
	status := subcommands.ExitSuccess
	for _, id := range f.Args() {
		err := ledger.Delete(id)
		switch {
		case errors.Is(err, finance.ErrRowNotFound), errors.Is(err, finance.ErrAmbiguousID):
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			status = subcommands.ExitFailure
		case err != nil:
			fmt.Fprintf(os.Stderr, "Error removing row %q: %v\n", id, err)
			return subcommands.ExitFailure
		default:
			fmt.Fprintf(os.Stderr, "Removed row %s\n", id)
		}
	}
	return status
}
