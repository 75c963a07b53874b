package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/startupcalc/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Business name: %s\n", orNotSet(cfg.General.BusinessName))
	fmt.Printf("    Share URL:     %s\n", cfg.General.ShareURL)
	fmt.Printf("    Catalog:       %s\n", orDefault(cfg.General.CatalogPath, "built-in"))
	fmt.Println()

	fmt.Println("  [Currency]")
	fmt.Printf("    Symbol:     %s\n", cfg.Currency.Symbol)
	fmt.Printf("    PDF symbol: %s\n", cfg.Currency.PDFSymbol)
	fmt.Printf("    Grouping:   %s\n", cfg.Currency.Grouping)
	fmt.Println()

	money, err := cfg.Money()
	if err != nil {
		return err
	}
	fmt.Println("  [Limits]")
	fmt.Printf("    Min: %s\n", money.Format(cfg.Limits.Min))
	fmt.Printf("    Max: %s\n", money.Format(cfg.Limits.Max))
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Export]")
	fmt.Printf("    Directory: %s\n", config.ExportDir(cfg))
	fmt.Println()

	fmt.Println("  [Email]")
	fmt.Printf("    Recipient: %s\n", orNotSet(cfg.Email.Recipient))
	fmt.Println()

	fmt.Println("  Run `startupcalc setup` to reconfigure.")
	return nil
}

func orNotSet(s string) string {
	return orDefault(s, "not set")
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
