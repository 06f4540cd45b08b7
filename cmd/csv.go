package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/finance"
	"github.com/google/subcommands"
)

type importCmd struct {
	currency string
	replace  bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import rows from a CSV file" }
func (*importCmd) Usage() string {
	return `fin import [-replace] [-c <currency>] <file.csv | ->

  Imports rows from a CSV file with the columns account,amount,currency ("-"
  reads the standard input). The header line is optional. Parsing is lenient:
  a missing or invalid amount is imported as 0 and a missing currency as the
  default one. See 'fin topic csv'.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "c", "", "Currency of rows without one. Defaults to the base currency.")
	f.BoolVar(&c.replace, "replace", false, "Replace the ledger rows instead of appending to them.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: import requires a file")
		return subcommands.ExitUsageError
	}
	text, err := readInput(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}
	currency := c.currency
	if currency == "" {
		currency = *baseCurrency
	}
	rows := finance.ParseCSV(text, finance.NewRow, currency)

	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	ledger := finance.LoadLedger(store)
	if c.replace {
		err = ledger.Replace(rows)
	} else {
		err = ledger.Add(rows...)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing rows: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Imported %d rows, the ledger has %d rows.\n", len(rows), ledger.Len())
	return subcommands.ExitSuccess
}

// readInput reads a whole file, or the standard input for "-".
func readInput(name string) (string, error) {
	var (
		data []byte
		err  error
	)
	if name == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	return string(data), err
}

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export rows to CSV" }
func (*exportCmd) Usage() string {
	return `fin export [-o <file.csv>]

  Exports the rows as CSV with the columns account,amount,currency. Fields are
  not quoted.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file. Defaults to the standard output.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	csv := finance.RowsToCSV(finance.LoadLedger(store).Rows())
	if c.output == "" {
		fmt.Fprint(stdout, csv)
		return subcommands.ExitSuccess
	}
	if err := os.WriteFile(c.output, []byte(csv), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
