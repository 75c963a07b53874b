// Package cmd implements the startupcalc CLI commands.
package cmd

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/startupcalc/internal/catalog"
	"github.com/theirongolddev/startupcalc/internal/cli"
	"github.com/theirongolddev/startupcalc/internal/config"
	"github.com/theirongolddev/startupcalc/internal/pipeline"
	"github.com/theirongolddev/startupcalc/internal/report"
	"github.com/theirongolddev/startupcalc/internal/store"
)

var (
	flagBusiness string
	flagSet      map[string]string
	flagCatalog  string
	flagCurrency string
	flagGrouping string
	flagQuiet    bool
	flagVerbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "startupcalc",
	Short: "Startup cost calculator",
	Long:  "Estimate what it takes to launch a business: one-time costs, monthly runway, and a shareable report.",
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		// .env is optional; it may set STARTUPCALC_EXPORT_DIR
		_ = godotenv.Load()
		setupLogger()
	},
	RunE:          runSummary,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagBusiness, "business", "b", "", "Business name shown on reports")
	rootCmd.PersistentFlags().StringToStringVar(&flagSet, "set", nil, "Set an item amount, e.g. --set rent=45000 (repeatable)")
	rootCmd.PersistentFlags().StringVar(&flagCatalog, "catalog", "", "Load categories from a YAML file instead of the built-in catalog")
	rootCmd.PersistentFlags().StringVar(&flagCurrency, "currency", "", "Currency symbol (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagGrouping, "grouping", "", "Digit grouping: indic or western (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Only log errors")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Log debug output")
}

func setupLogger() {
	log.SetOutput(os.Stderr)
	log.SetReportTimestamp(false)
	switch {
	case flagQuiet:
		log.SetLevel(log.ErrorLevel)
	case flagVerbose:
		log.SetLevel(log.DebugLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// session is everything a command needs to compute and render totals.
type session struct {
	cfg      config.Config
	cat      catalog.Catalog
	values   *store.Values
	money    cli.Money
	pdfMoney cli.Money
	business string
}

// loadSession is the shared setup path used by all commands: config, then
// catalog, then a fresh value store with any --set overrides applied.
func loadSession() (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if flagCurrency != "" {
		cfg.SetSymbol(flagCurrency)
	}
	if flagGrouping != "" {
		cfg.Currency.Grouping = flagGrouping
	}

	money, err := cfg.Money()
	if err != nil {
		return nil, err
	}
	pdfMoney, err := cfg.PDFMoney()
	if err != nil {
		return nil, err
	}

	cat, err := loadCatalog(cfg)
	if err != nil {
		return nil, err
	}
	if untagged := pipeline.UntaggedCategories(cat.Categories); len(untagged) > 0 {
		log.Debug("categories excluded from runway", "titles", untagged)
	}

	values := store.New(cat, cfg.Limits)
	if err := applyOverrides(values, flagSet); err != nil {
		return nil, err
	}

	business := flagBusiness
	if business == "" {
		business = cfg.General.BusinessName
	}

	return &session{
		cfg:      cfg,
		cat:      cat,
		values:   values,
		money:    money,
		pdfMoney: pdfMoney,
		business: business,
	}, nil
}

func loadCatalog(cfg config.Config) (catalog.Catalog, error) {
	path := flagCatalog
	if path == "" {
		path = cfg.General.CatalogPath
	}
	if path == "" {
		return catalog.Default(), nil
	}
	log.Debug("loading catalog", "path", path)
	return catalog.Load(path)
}

// applyOverrides writes --set values in sorted id order. Amounts accept
// compact suffixes ("1.5L", "50K"); anything unparseable falls back to the
// store's digit coercion.
func applyOverrides(values *store.Values, overrides map[string]string) error {
	for _, id := range slices.Sorted(maps.Keys(overrides)) {
		raw := overrides[id]

		var (
			got int64
			err error
		)
		if n, perr := cli.ParseAmount(raw); perr == nil {
			got, err = values.SetAmount(id, n)
		} else {
			got, err = values.Set(id, raw)
		}
		if err != nil {
			return fmt.Errorf("--set %s: %w", id, err)
		}
		log.Debug("override", "id", id, "raw", raw, "amount", got)
	}
	return nil
}

// report builds the renderer-neutral report for the current values.
func (s *session) report() report.Report {
	return report.Build(s.business, s.cat, s.values.Snapshot(), time.Now())
}

func notifier() report.Notifier {
	return report.LogNotifier{Logger: log.Default()}
}
