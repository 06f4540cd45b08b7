// Command fin manages financial rows and reports on them: P&L statement,
// summary metrics and charts, in a single base currency.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/etnz/finance/cmd"
	"github.com/google/subcommands"
)

func main() {
	// When invoked by the shell for completion, Complete prints the candidates and exits.
	cmd.Completion().Complete("fin")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	if err := cmd.LoadEnv(flag.CommandLine); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(int(subcommands.ExitUsageError))
	}
	flag.Parse()
	cmd.SetupLogging()

	if name := flag.Arg(0); name != "" && !cmd.Has(name) {
		if ok, code := cmd.RunExtension(name, flag.Args()[1:]); ok {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}
