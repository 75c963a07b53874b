package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/startupcalc/internal/catalog"
	"github.com/theirongolddev/startupcalc/internal/cli"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List cost categories and item ids",
	RunE:  runCatalog,
}

var flagWatch bool

var catalogValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a catalog file for duplicate ids, titles and unknown kinds",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCatalogValidate,
}

func init() {
	catalogValidateCmd.Flags().BoolVarP(&flagWatch, "watch", "w", false, "Revalidate whenever the file changes")
	catalogCmd.AddCommand(catalogValidateCmd)
	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(_ *cobra.Command, _ []string) error {
	s, err := loadSession()
	if err != nil {
		return err
	}

	fmt.Println()
	for _, c := range s.cat.Categories {
		rows := make([][]string, 0, len(c.Items))
		for _, it := range c.Items {
			rows = append(rows, []string{
				it.ID,
				it.Label,
				strconv.FormatInt(it.StepOrDefault(), 10),
				s.money.Format(s.values.Get(it.ID)),
			})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   fmt.Sprintf("%s  (%s)", c.Title, kindLabel(c.Kind)),
			Headers: []string{"ID", "Item", "Step", "Amount"},
			Rows:    rows,
		}))
		fmt.Println()
	}
	fmt.Println("  " + cli.RenderMuted("Use --set <id>=<amount> to change an amount."))
	return nil
}

func kindLabel(k catalog.Kind) string {
	switch k {
	case catalog.KindOneTime:
		return "one-time"
	case catalog.KindRecurring:
		return "monthly"
	}
	return "untagged"
}

func runCatalogValidate(cmd *cobra.Command, args []string) error {
	path := flagCatalog
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		if flagWatch {
			return errors.New("--watch needs a catalog file")
		}
		reportCatalog("built-in", catalog.Default(), nil)
		return nil
	}

	cat, err := catalog.Load(path)
	if err != nil && !flagWatch {
		return err
	}
	reportCatalog(path, cat, err)
	if !flagWatch {
		return nil
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	log.Info("watching for changes", "file", path)
	return catalog.Watch(ctx, path, catalog.DefaultDebounce, func(c catalog.Catalog, err error) {
		reportCatalog(path, c, err)
	})
}

func reportCatalog(source string, cat catalog.Catalog, err error) {
	if err != nil {
		log.Error("catalog invalid", "file", source, "err", err)
		return
	}
	log.Info("catalog ok", "file", source,
		"categories", len(cat.Categories), "items", cat.ItemCount())
}
