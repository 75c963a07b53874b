// Package tui provides the interactive Bubble Tea calculator for startupcalc.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/startupcalc/internal/cli"
	"github.com/theirongolddev/startupcalc/internal/config"
	"github.com/theirongolddev/startupcalc/internal/model"
	"github.com/theirongolddev/startupcalc/internal/pipeline"
	"github.com/theirongolddev/startupcalc/internal/report"
	"github.com/theirongolddev/startupcalc/internal/store"
	"github.com/theirongolddev/startupcalc/internal/tui/components"
	"github.com/theirongolddev/startupcalc/internal/tui/theme"
)

const (
	tabCalculator = iota
	tabBreakdown
	tabTimeline
	tabGuide
	tabSettings
)

const (
	minTerminalWidth = 70
	maxContentWidth  = 140
	minContentHeight = 5

	toastDuration = 4 * time.Second
)

// Options wires the App to its collaborators.
type Options struct {
	Config   config.Config
	Values   *store.Values
	Money    cli.Money
	PDFMoney cli.Money
	Business string

	Sink       report.Sink
	Dispatcher report.Dispatcher
	Clipboard  report.Clipboard
	SaveConfig func(config.Config) error

	// Now defaults to time.Now.
	Now func() time.Time
}

// toastExpiredMsg clears the toast it was scheduled for.
type toastExpiredMsg struct{ id int }

// App is the root Bubble Tea model.
type App struct {
	cfg      config.Config
	values   *store.Values
	money    cli.Money
	pdfMoney cli.Money
	business string

	// Derived on every change
	agg      model.Aggregate
	runway   model.Runway
	chart    []model.ChartSlice
	untagged []string

	sink       report.Sink
	dispatcher report.Dispatcher
	clipboard  report.Clipboard
	saveConfig func(config.Config) error
	now        func() time.Time

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	calc     calcState
	settings settingsState

	emailForm *huh.Form
	emailVals *emailValues

	toast   components.Toast
	toastID int
}

// NewApp creates the calculator model. Values must already be initialized
// from the catalog.
func NewApp(opts Options) App {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	save := opts.SaveConfig
	if save == nil {
		save = func(config.Config) error { return nil }
	}

	a := App{
		cfg:        opts.Config,
		values:     opts.Values,
		money:      opts.Money,
		pdfMoney:   opts.PDFMoney,
		business:   opts.Business,
		sink:       opts.Sink,
		dispatcher: opts.Dispatcher,
		clipboard:  opts.Clipboard,
		saveConfig: save,
		now:        now,
		calc:       newCalcState(),
	}
	a.recompute()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return textinput.Blink
}

// recompute re-runs the aggregator. It is cheap enough for every keystroke.
func (a *App) recompute() {
	cats := a.values.Catalog().Categories
	values := a.values.Snapshot()

	a.agg = pipeline.Aggregate(cats, values)
	a.runway = pipeline.Runway(cats, values)
	a.chart = pipeline.ChartSlices(a.agg)
	a.untagged = pipeline.UntaggedCategories(cats)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.emailForm != nil {
			a.emailForm = a.emailForm.WithWidth(min(msg.Width, 72))
		}
		return a, nil

	case toastExpiredMsg:
		if msg.id == a.toastID {
			a.toast = components.Toast{}
		}
		return a, nil

	case tea.MouseMsg:
		if a.showHelp || a.emailForm != nil || a.editing() {
			return a, nil
		}
		return a.updateMouse(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		// The email form intercepts all keys
		if a.emailForm != nil {
			return a.updateEmailForm(msg)
		}
		if a.calc.naming {
			return a.updateNameInput(msg)
		}
		if a.calc.editing {
			return a.updateAmountInput(msg)
		}
		if a.activeTab == tabSettings && a.settings.editing {
			return a.updateSettingsInput(msg)
		}
		return a.updateKey(msg)
	}

	// Forward unhandled messages (cursor blinks, etc.)
	if a.emailForm != nil {
		return a.updateEmailForm(msg)
	}
	var cmd tea.Cmd
	switch {
	case a.calc.naming:
		a.calc.nameInput, cmd = a.calc.nameInput.Update(msg)
	case a.calc.editing:
		a.calc.input, cmd = a.calc.input.Update(msg)
	case a.settings.editing:
		a.settings.input, cmd = a.settings.input.Update(msg)
	}
	return a, cmd
}

func (a App) editing() bool {
	return a.calc.naming || a.calc.editing || a.settings.editing
}

func (a App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	switch key {
	case "q":
		return a, tea.Quit
	case "p":
		cmd := a.exportPDF()
		return a, cmd
	case "m":
		cmd := a.openEmailForm()
		return a, cmd
	case "y":
		cmd := a.share()
		return a, cmd
	case "tab", "right":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		return a, nil
	case "shift+tab", "left":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		return a, nil
	}

	switch a.activeTab {
	case tabCalculator:
		if m, cmd, ok := a.updateCalculatorKey(key); ok {
			return m, cmd
		}
	case tabSettings:
		if m, cmd, ok := a.updateSettingsKey(key); ok {
			return m, cmd
		}
	}

	if r := []rune(key); len(r) == 1 {
		if idx := components.TabIdxByKey(r[0]); idx >= 0 {
			a.activeTab = idx
		}
	}
	return a, nil
}

func (a App) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if a.activeTab == tabCalculator {
			a.calc.move(-1, len(a.calcRows()))
		}
	case tea.MouseButtonWheelDown:
		if a.activeTab == tabCalculator {
			a.calc.move(1, len(a.calcRows()))
		}
	case tea.MouseButtonLeft:
		if msg.Action == tea.MouseActionPress && msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 {
				a.activeTab = tab
			}
		}
	}
	return a, nil
}

// showToast replaces the current toast and schedules its removal.
func (a *App) showToast(title, message string, isErr bool) tea.Cmd {
	a.toastID++
	a.toast = components.Toast{Title: title, Message: message, Err: isErr}
	id := a.toastID
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if a.emailForm != nil {
		return a.viewEmailForm()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := max(a.height, 5)
	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  startupcalc needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	sections := []struct {
		title    string
		bindings []struct{ key, desc string }
	}{
		{"Navigation", []struct{ key, desc string }{
			{"c b t g x", "Jump to tab"},
			{"← → Tab", "Previous / Next tab"},
			{"j k", "Move between rows"},
			{"Enter Space", "Expand / collapse category"},
		}},
		{"Amounts", []struct{ key, desc string }{
			{"+ -", "Increase / decrease by the item step"},
			{"e 1-9", "Type an amount"},
			{"0", "Reset every amount to its default"},
			{"n", "Edit business name"},
		}},
		{"Actions", []struct{ key, desc string }{
			{"p", "Export PDF"},
			{"m", "Email report"},
			{"y", "Copy calculator link"},
			{"?", "Toggle help"},
			{"q", "Quit"},
		}},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n")
	for _, sec := range sections {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render(sec.title))
		b.WriteString("\n")
		for _, bind := range sec.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-12s", bind.key)),
				descStyle.Render(bind.desc))
		}
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)
	statusBar := components.RenderStatusBar(w, a.money.Format(a.agg.GrandTotal), a.toast)

	contentH := max(h-lipgloss.Height(header)-lipgloss.Height(statusBar), minContentHeight)

	var content string
	switch a.activeTab {
	case tabCalculator:
		content = a.renderCalculatorTab(cw, contentH)
	case tabBreakdown:
		content = a.renderBreakdownTab(cw)
	case tabTimeline:
		content = a.renderTimelineTab(cw)
	case tabGuide:
		content = a.renderGuideTab(cw)
	case tabSettings:
		content = a.renderSettingsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Helpers ────────────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW

		// Separator is one column between tabs.
		if i < len(components.Tabs)-1 {
			pos++
		}
	}
	return -1
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}
