package cmd

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/startupcalc/internal/config"
	"github.com/theirongolddev/startupcalc/internal/report"
	"github.com/theirongolddev/startupcalc/internal/tui"
	"github.com/theirongolddev/startupcalc/internal/tui/theme"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive calculator",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	s, err := loadSession()
	if err != nil {
		return err
	}
	theme.SetActive(s.cfg.Appearance.Theme)

	// Force TrueColor profile so all background styling produces ANSI codes
	lipgloss.SetColorProfile(termenv.TrueColor)

	// Log lines would corrupt the alt screen; the TUI reports through toasts.
	quiet := log.New(io.Discard)

	app := tui.NewApp(tui.Options{
		Config:     s.cfg,
		Values:     s.values,
		Money:      s.money,
		PDFMoney:   s.pdfMoney,
		Business:   s.business,
		Sink:       &report.FileSink{Dir: config.ExportDir(s.cfg)},
		Dispatcher: report.StubDispatcher{Logger: quiet},
		Clipboard:  report.SystemClipboard,
		SaveConfig: config.Save,
	})
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
