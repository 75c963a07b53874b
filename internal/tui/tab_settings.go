package tui

import (
	"fmt"
	"net/mail"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/startupcalc/internal/cli"
	"github.com/theirongolddev/startupcalc/internal/config"
	"github.com/theirongolddev/startupcalc/internal/report"
	"github.com/theirongolddev/startupcalc/internal/tui/components"
	"github.com/theirongolddev/startupcalc/internal/tui/theme"
)

const (
	settingsFieldTheme = iota
	settingsFieldSymbol
	settingsFieldGrouping
	settingsFieldExportDir
	settingsFieldRecipient
	settingsFieldShareURL
	settingsFieldCount // sentinel
)

// settingsState tracks the settings tab state.
type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	saved   bool  // flash "saved" message until the next change
	saveErr error // non-nil if last save failed
}

func newSettingsInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 50
	return ti
}

// cycles reports whether a field toggles through fixed choices on enter.
func cycles(field int) bool {
	return field == settingsFieldTheme || field == settingsFieldGrouping
}

func (a App) updateSettingsKey(key string) (tea.Model, tea.Cmd, bool) {
	switch key {
	case "j", "down":
		if a.settings.cursor < settingsFieldCount-1 {
			a.settings.cursor++
		}
	case "k", "up":
		if a.settings.cursor > 0 {
			a.settings.cursor--
		}
	case "enter":
		if cycles(a.settings.cursor) {
			a.settingsCycle()
			return a, nil, true
		}
		m, cmd := a.settingsStartEdit()
		return m, cmd, true
	default:
		return a, nil, false
	}
	return a, nil, true
}

func (a *App) settingsCycle() {
	cfg := a.cfg
	switch a.settings.cursor {
	case settingsFieldTheme:
		names := theme.Names()
		i := slices.Index(names, theme.Active.Name)
		cfg.Appearance.Theme = names[(i+1)%len(names)]
	case settingsFieldGrouping:
		if cfg.Currency.Grouping == string(cli.GroupingWestern) {
			cfg.Currency.Grouping = string(cli.GroupingIndic)
		} else {
			cfg.Currency.Grouping = string(cli.GroupingWestern)
		}
	}
	a.applyConfig(cfg)
}

func (a App) settingsStartEdit() (tea.Model, tea.Cmd) {
	a.settings.editing = true
	a.settings.saved = false

	ti := newSettingsInput()
	switch a.settings.cursor {
	case settingsFieldSymbol:
		ti.Placeholder = "₹"
		ti.CharLimit = 8
		ti.SetValue(a.cfg.Currency.Symbol)
	case settingsFieldExportDir:
		ti.Placeholder = ". (current directory)"
		ti.SetValue(a.cfg.Export.Dir)
	case settingsFieldRecipient:
		ti.Placeholder = "founder@example.com"
		ti.SetValue(a.cfg.Email.Recipient)
	case settingsFieldShareURL:
		ti.Placeholder = report.ProductURL
		ti.SetValue(a.cfg.General.ShareURL)
	}

	ti.CursorEnd()
	ti.Focus()
	a.settings.input = ti
	return a, textinput.Blink
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.settings.editing = false
		cmd := a.settingsSave()
		return a, cmd
	case "esc":
		a.settings.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

// settingsSave applies the edited field. Invalid input is reported as a
// toast and leaves the config unchanged.
func (a *App) settingsSave() tea.Cmd {
	cfg := a.cfg
	val := strings.TrimSpace(a.settings.input.Value())

	switch a.settings.cursor {
	case settingsFieldSymbol:
		if val == "" {
			return a.showToast("Invalid Symbol", "The currency symbol cannot be empty.", true)
		}
		cfg.SetSymbol(val)
	case settingsFieldExportDir:
		cfg.Export.Dir = val
	case settingsFieldRecipient:
		if val != "" {
			if _, err := mail.ParseAddress(val); err != nil {
				return a.showToast("Invalid Address", fmt.Sprintf("%q is not an email address.", val), true)
			}
		}
		cfg.Email.Recipient = val
	case settingsFieldShareURL:
		cfg.General.ShareURL = val
	}

	a.applyConfig(cfg)
	return nil
}

// applyConfig makes cfg live for this session and persists it.
func (a *App) applyConfig(cfg config.Config) {
	if m, err := cfg.Money(); err == nil {
		a.money = m
	}
	if m, err := cfg.PDFMoney(); err == nil {
		a.pdfMoney = m
	}
	theme.SetActive(cfg.Appearance.Theme)
	if fs, ok := a.sink.(*report.FileSink); ok {
		fs.Dir = config.ExportDir(cfg)
	}
	a.cfg = cfg

	a.settings.saveErr = a.saveConfig(cfg)
	a.settings.saved = a.settings.saveErr == nil
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active
	cfg := a.cfg

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceBright).Bold(true)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)
	greenStyle := lipgloss.NewStyle().Foreground(t.GreenBright).Background(t.Surface)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)

	type field struct {
		label string
		value string
	}

	fields := []field{
		{"Theme", theme.Active.Name},
		{"Currency Symbol", cfg.Currency.Symbol},
		{"Digit Grouping", cfg.Currency.Grouping + "  (" + a.money.Format(1234567) + ")"},
		{"Export Directory", config.ExportDir(cfg)},
		{"Email Recipient", orPlaceholder(cfg.Email.Recipient)},
		{"Share Link", orPlaceholder(cfg.General.ShareURL)},
	}

	innerW := components.CardInnerWidth(cw)

	var formBody strings.Builder
	for i, f := range fields {
		if a.settings.editing && i == a.settings.cursor {
			formBody.WriteString(markerStyle.Render("▸ "))
			formBody.WriteString(accentStyle.Render(fmt.Sprintf("%-18s ", f.label)))
			formBody.WriteString(a.settings.input.View())
			formBody.WriteString("\n")
			continue
		}

		if i == a.settings.cursor {
			marker := markerStyle.Render("▸ ")
			label := selectedLabelStyle.Render(fmt.Sprintf("%-18s ", f.label+":"))
			value := selectedStyle.Render(f.value)
			formBody.WriteString(marker + label + value)
			usedWidth := lipgloss.Width(marker) + lipgloss.Width(label) + lipgloss.Width(value)
			if padLen := innerW - usedWidth; padLen > 0 {
				formBody.WriteString(lipgloss.NewStyle().Background(t.SurfaceBright).Render(strings.Repeat(" ", padLen)))
			}
		} else {
			formBody.WriteString(lipgloss.NewStyle().Background(t.Surface).Render("  "))
			formBody.WriteString(labelStyle.Render(fmt.Sprintf("%-18s ", f.label+":")))
			formBody.WriteString(valueStyle.Render(f.value))
		}
		formBody.WriteString("\n")
	}

	if a.settings.saveErr != nil {
		warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)
		formBody.WriteString("\n")
		formBody.WriteString(warnStyle.Render(fmt.Sprintf("Save failed: %s", a.settings.saveErr)))
	} else if a.settings.saved {
		formBody.WriteString("\n")
		formBody.WriteString(greenStyle.Render("Saved!"))
	}

	formBody.WriteString("\n")
	formBody.WriteString(labelStyle.Render("[j/k] navigate  [Enter] edit or cycle  [Esc] cancel"))

	cat := a.values.Catalog()
	limits := a.values.Limits()
	var infoBody strings.Builder
	infoBody.WriteString(labelStyle.Render("Config file:  ") + valueStyle.Render(config.Path()) + "\n")
	infoBody.WriteString(labelStyle.Render("Catalog:      ") + valueStyle.Render(fmt.Sprintf("%d categories, %d items",
		len(cat.Categories), cat.ItemCount())) + "\n")
	infoBody.WriteString(labelStyle.Render("Amount range: ") + valueStyle.Render(a.money.Format(limits.Min)+" to "+a.money.Format(limits.Max)))

	var b strings.Builder
	b.WriteString(components.ContentCard("Settings", formBody.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("General", infoBody.String(), cw))
	return b.String()
}

func orPlaceholder(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}
