package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/etnz/finance"
	"github.com/etnz/finance/renderer"
	"github.com/google/subcommands"
)

type saveCmd struct{}

func (*saveCmd) Name() string     { return "save" }
func (*saveCmd) Synopsis() string { return "save a snapshot of the rows" }
func (*saveCmd) Usage() string {
	return `fin save <name>

  Saves a copy of the current rows as a named snapshot. Snapshots are never
  modified, 'fin restore' brings their rows back into the ledger.
`
}

func (c *saveCmd) SetFlags(f *flag.FlagSet) {}

func (c *saveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	name := strings.TrimSpace(strings.Join(f.Args(), " "))
	if name == "" {
		fmt.Fprintln(os.Stderr, "Error: save requires a snapshot name")
		return subcommands.ExitUsageError
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	rows := finance.LoadLedger(store).Rows()
	s, err := finance.LoadSnapshots(store).Save(name, rows, time.Now())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Saved snapshot %s %q with %d rows\n", s.ShortID(), s.Name, len(s.Rows))
	return subcommands.ExitSuccess
}

type snapshotsCmd struct{}

func (*snapshotsCmd) Name() string     { return "snapshots" }
func (*snapshotsCmd) Synopsis() string { return "list the snapshots" }
func (*snapshotsCmd) Usage() string {
	return `fin snapshots

  Lists the saved snapshots, oldest first.
`
}

func (c *snapshotsCmd) SetFlags(f *flag.FlagSet) {}

func (c *snapshotsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	list := renderer.NewSnapshotList(finance.LoadSnapshots(store).List())
	printMarkdown(renderer.RenderSnapshotList(list))
	return subcommands.ExitSuccess
}

type restoreCmd struct{}

func (*restoreCmd) Name() string     { return "restore" }
func (*restoreCmd) Synopsis() string { return "replace the rows by a snapshot's rows" }
func (*restoreCmd) Usage() string {
	return `fin restore <id>

  Replaces the current rows by a copy of the rows of the snapshot identified by
  <id>, or an unambiguous prefix of it. The current rows are lost unless saved
  first.
`
}

func (c *restoreCmd) SetFlags(f *flag.FlagSet) {}

func (c *restoreCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: restore requires a snapshot id")
		return subcommands.ExitUsageError
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	s, err := finance.LoadSnapshots(store).Restore(f.Arg(0), finance.LoadLedger(store))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error restoring snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Restored %d rows from snapshot %s %q\n", len(s.Rows), s.ShortID(), s.Name)
	return subcommands.ExitSuccess
}

type dropCmd struct{}

func (*dropCmd) Name() string     { return "drop" }
func (*dropCmd) Synopsis() string { return "delete a snapshot" }
func (*dropCmd) Usage() string {
	return `fin drop <id>

  Deletes the snapshot identified by <id>, or an unambiguous prefix of it. The
  ledger rows are not affected.
`
}

func (c *dropCmd) SetFlags(f *flag.FlagSet) {}

func (c *dropCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: drop requires a snapshot id")
		return subcommands.ExitUsageError
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	if err := finance.LoadSnapshots(store).Delete(f.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Deleted snapshot %s\n", f.Arg(0))
	return subcommands.ExitSuccess
}
