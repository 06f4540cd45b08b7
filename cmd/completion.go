package cmd

import (
	"flag"

	"github.com/etnz/finance"
	"github.com/etnz/finance/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// currencies are the currency codes suggested for currency flags.
var currencies = predict.Set{"USD", "EUR", "GBP", "JPY", "CHF", "CAD", "AUD", "CNY"}

// Completion returns the shell completion of the fin command line, built from
// the registered commands and their flags.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: flagPredictors(flag.CommandLine),
	}
	for _, c := range Commands {
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(fs)
		root.Sub[c.Name()] = &complete.Command{
			Flags: flagPredictors(fs),
			Args:  argPredictor(c.Name()),
		}
	}
	// subcommands builtins.
	for _, name := range []string{"help", "flags", "commands"} {
		root.Sub[name] = &complete.Command{}
	}
	return root
}

func flagPredictors(fs *flag.FlagSet) map[string]complete.Predictor {
	flags := map[string]complete.Predictor{}
	fs.VisitAll(func(f *flag.Flag) {
		if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			flags[f.Name] = predict.Nothing
			return
		}
		switch f.Name {
		case "c", "base":
			flags[f.Name] = currencies
		case "of":
			flags[f.Name] = predict.Set(chartKinds)
		case "store", "o":
			flags[f.Name] = predict.Files("*")
		default:
			flags[f.Name] = predict.Something
		}
	})
	return flags
}

func argPredictor(name string) complete.Predictor {
	switch name {
	case "import":
		return predict.Files("*.csv")
	case "topic":
		topics, _ := docs.GetAllTopics()
		return predict.Set(topics)
	case "edit", "rm":
		return complete.PredictFunc(func(string) []string { return storedIDs(rowIDs) })
	case "restore", "drop":
		return complete.PredictFunc(func(string) []string { return storedIDs(snapshotIDs) })
	}
	return predict.Nothing
}

// storedIDs opens the store and returns the short ids listed by ids.
// Errors are ignored: there is just nothing to complete.
func storedIDs(ids func(finance.Store) []string) []string {
	store, err := openStore()
	if err != nil {
		return nil
	}
	defer store.Close()
	return ids(store)
}

func rowIDs(store finance.Store) (ids []string) {
	for _, r := range finance.LoadLedger(store).Rows() {
		ids = append(ids, r.ShortID())
	}
	return ids
}

func snapshotIDs(store finance.Store) (ids []string) {
	for _, s := range finance.LoadSnapshots(store).List() {
		ids = append(ids, s.ShortID())
	}
	return ids
}
