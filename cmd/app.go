// Package cmd implements the fin CLI application to manage a set of financial
// rows and report on them.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/finance"
	"github.com/etnz/finance/fx"
	"github.com/etnz/finance/kv"
	"github.com/etnz/finance/renderer"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Commands lists the fin subcommands, in the order they are listed by help.
var Commands = []subcommands.Command{
	&rowsCmd{},
	&addCmd{},
	&editCmd{},
	&rmCmd{},
	&importCmd{},
	&exportCmd{},

	&pnlCmd{},
	&metricsCmd{},
	&chartCmd{},
	&ratesCmd{},

	&saveCmd{},
	&snapshotsCmd{},
	&restoreCmd{},
	&dropCmd{},

	&topicCmd{},
}

// groups associates each command to its group in the help.
var groups = map[string]string{
	"rows": "rows", "add": "rows", "edit": "rows", "rm": "rows", "import": "rows", "export": "rows",
	"pnl": "reports", "metrics": "reports", "chart": "reports", "rates": "reports",
	"save": "snapshots", "snapshots": "snapshots", "restore": "snapshots", "drop": "snapshots",
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands {
		c.Register(cmd, groups[cmd.Name()])
	}
}

// Has reports whether name is a builtin fin subcommand.
func Has(name string) bool {
	switch name {
	case "help", "flags", "commands":
		return true
	}
	for _, c := range Commands {
		if c.Name() == name {
			return true
		}
	}
	return false
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	storePath    = flag.String("store", "finance.json", "Path to the store file. Files ending with .db, .sqlite or .sqlite3 use SQLite, any other a JSON file.")
	baseCurrency = flag.String("base", "USD", "Base currency every amount is converted to.")
	fxURL        = flag.String("fx-url", fx.DefaultURL, "FX rates endpoint, %s is replaced by the base currency.")
	Verbose      = flag.Bool("v", false, "verbose mode, log debug messages.")
)

// envFlags maps the global flags to the environment variable that sets their default.
var envFlags = map[string]string{
	"store":  EnvStore,
	"base":   EnvBaseCurrency,
	"fx-url": EnvFXURL,
	"v":      EnvVerbose,
}

// LoadEnv loads the environment from the optional dotenv files (".env" by
// default) and uses it to set the global flags of fs. Values already in the
// environment are not overridden by the files, and flags set on the command
// line still take precedence once fs is parsed.
func LoadEnv(fs *flag.FlagSet, files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("loading %q: %w", file, err)
		}
	}
	for name, env := range envFlags {
		value, ok := os.LookupEnv(env)
		if !ok || fs.Lookup(name) == nil {
			continue
		}
		if err := fs.Set(name, value); err != nil {
			return fmt.Errorf("invalid %s=%q: %w", env, value, err)
		}
	}
	return nil
}

// SetupLogging configures the logger according to the global flags.
func SetupLogging() {
	logger := logrus.StandardLogger()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.WarnLevel)
	if *Verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	finance.SetLogger(logger)
}

// stdout is where commands print their results.
var stdout io.Writer = os.Stdout

// openStore opens the store from the global flags.
func openStore() (kv.Store, error) {
	store, err := kv.Open(*storePath)
	if err != nil {
		return nil, fmt.Errorf("opening store %q: %w", *storePath, err)
	}
	logrus.WithField("store", *storePath).Debug("store opened")
	return store, nil
}

// newProvider returns an FX provider caching in store and fetching from the
// configured endpoint.
func newProvider(store kv.Store) *fx.Provider {
	return fx.NewProvider(store, fx.NewHTTPFetcher(*fxURL))
}

// rates returns the rates for the base currency, with the provider that
// resolved them.
func rates(ctx context.Context, store kv.Store) (finance.Rates, *fx.Provider) {
	p := newProvider(store)
	return p.Rates(ctx, *baseCurrency), p
}

// parseScenario reads the scenario flags. An empty multiplier is the baseline
// multiplier.
func parseScenario(name, multiplier string) (finance.Scenario, error) {
	if multiplier == "" {
		if name == "" {
			return finance.Baseline, nil
		}
		return finance.NewScenario(name, finance.DefaultMultiplier), nil
	}
	m, err := parseDecimal(multiplier)
	if err != nil {
		return finance.Scenario{}, fmt.Errorf("invalid multiplier %q: %w", multiplier, err)
	}
	if name == "" {
		name = "x" + m.String()
	}
	return finance.NewScenario(name, m), nil
}

// header returns the report header for the given scenario.
func header(title string, p *fx.Provider, sc finance.Scenario) renderer.Header {
	h := renderer.Header{
		Title:    title,
		Currency: p.Base(),
		Degraded: p.Degraded(),
	}
	if !sc.IsBaseline() || sc.Name != finance.Baseline.Name {
		h.Scenario = sc.Name
	}
	return h
}
