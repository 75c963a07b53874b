package cmd

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/startupcalc/internal/cli"
	"github.com/theirongolddev/startupcalc/internal/config"
	"github.com/theirongolddev/startupcalc/internal/tui/theme"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()

	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, name := range theme.Names() {
		themeOpts = append(themeOpts, huh.NewOption(name, name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to startupcalc!").
				Description("A few preferences for reports and the dashboard.\nEntered amounts are never saved."),
			huh.NewInput().
				Title("Business name").
				Description("Shown on PDF and email reports. Leave blank for \"Your Business\".").
				Value(&cfg.General.BusinessName),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Currency symbol").
				Value(&cfg.Currency.Symbol).
				Validate(notBlank("currency symbol")),
			huh.NewSelect[string]().
				Title("Digit grouping").
				Options(
					huh.NewOption("Indian (12,34,567)", string(cli.GroupingIndic)),
					huh.NewOption("Western (1,234,567)", string(cli.GroupingWestern)),
				).
				Value(&cfg.Currency.Grouping),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Export directory").
				Description("Where PDFs are written. Leave blank for the current directory.").
				Value(&cfg.Export.Dir),
			huh.NewInput().
				Title("Default email recipient").
				Value(&cfg.Email.Recipient).
				Validate(optionalAddress),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&cfg.Appearance.Theme),
		),
	).WithTheme(huh.ThemeDracula())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("  Setup cancelled.")
			return nil
		}
		return fmt.Errorf("setup form: %w", err)
	}

	cfg.SetSymbol(strings.TrimSpace(cfg.Currency.Symbol))
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `startupcalc setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}

func notBlank(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func optionalAddress(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := mail.ParseAddress(s); err != nil {
		return errors.New("not a valid email address")
	}
	return nil
}
