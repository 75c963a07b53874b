package tui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/startupcalc/internal/catalog"
	"github.com/theirongolddev/startupcalc/internal/cli"
	"github.com/theirongolddev/startupcalc/internal/config"
	"github.com/theirongolddev/startupcalc/internal/report"
	"github.com/theirongolddev/startupcalc/internal/store"
	"github.com/theirongolddev/startupcalc/internal/tui/theme"
)

func testCatalog() catalog.Catalog {
	return catalog.Catalog{Categories: []catalog.Category{
		{Title: "Legal", Kind: catalog.KindOneTime, Items: []catalog.Item{
			{ID: "reg", Label: "Registration", Step: 1000, DefaultValue: 5000},
			{ID: "notary", Label: "Notary", Step: 500},
		}},
		{Title: "Ops", Kind: catalog.KindRecurring, Items: []catalog.Item{
			{ID: "rent", Label: "Rent", Step: 5000, DefaultValue: 15000},
		}},
	}}
}

type recordingDispatcher struct {
	sent []report.Email
	err  error
}

func (d *recordingDispatcher) Dispatch(_ context.Context, e report.Email) error {
	if d.err != nil {
		return d.err
	}
	d.sent = append(d.sent, e)
	return nil
}

func newTestAppWith(t *testing.T, cat catalog.Catalog, opts Options) App {
	t.Helper()
	theme.SetActive("evergreen")

	opts.Config = config.DefaultConfig()
	opts.Values = store.New(cat, store.DefaultLimits())
	opts.Money = cli.DefaultMoney()
	opts.PDFMoney = cli.Money{Symbol: "Rs.", Grouping: cli.GroupingIndic}
	opts.Now = func() time.Time { return time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC) }
	return NewApp(opts)
}

func newTestApp(t *testing.T) App {
	t.Helper()
	return newTestAppWith(t, testCatalog(), Options{})
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// press feeds keys through Update and returns the final model and the last
// command produced.
func press(t *testing.T, a App, keys ...string) (App, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var m tea.Model
		m, cmd = a.Update(keyMsg(k))
		a = m.(App)
	}
	return a, cmd
}

func TestNewApp_AggregatesDefaults(t *testing.T) {
	a := newTestApp(t)

	assert.Equal(t, int64(20000), a.agg.GrandTotal)
	assert.Equal(t, int64(5000), a.runway.OneTime)
	assert.Equal(t, int64(15000), a.runway.Monthly)
	assert.Len(t, a.chart, 2)
}

func TestCalculator_RowsAndToggle(t *testing.T) {
	a := newTestApp(t)

	// First category starts expanded: Legal, reg, notary, Ops.
	require.Len(t, a.calcRows(), 4)

	// Collapse Legal from its header.
	a, _ = press(t, a, "enter")
	require.Len(t, a.calcRows(), 2)

	// Expand Ops.
	a, _ = press(t, a, "j", "enter")
	require.Len(t, a.calcRows(), 3)

	// Cursor is clamped at the last row.
	a, _ = press(t, a, "j", "j", "j")
	assert.Equal(t, 2, a.calc.cursor)
}

func TestCalculator_SpaceOnItemCollapsesToHeader(t *testing.T) {
	a := newTestApp(t)

	a, _ = press(t, a, "j", "j", " ")
	assert.Equal(t, 0, a.calc.cursor, "cursor should land on the header")
	assert.False(t, a.calc.expanded[0], "Legal should be collapsed")
}

func TestCalculator_StepKeys(t *testing.T) {
	a := newTestApp(t)

	a, _ = press(t, a, "j", "+", "+")
	assert.Equal(t, int64(7000), a.values.Get("reg"))
	assert.Equal(t, int64(22000), a.agg.GrandTotal)

	// Decrement never goes below the floor.
	a, _ = press(t, a, "j", "-")
	assert.Equal(t, int64(0), a.values.Get("notary"))

	// Step keys on a header are no-ops.
	a, _ = press(t, a, "k", "k", "+")
	assert.Equal(t, int64(22000), a.agg.GrandTotal)
}

func TestCalculator_DigitStartsEdit(t *testing.T) {
	a := newTestApp(t)

	a, _ = press(t, a, "j", "4")
	require.True(t, a.calc.editing)
	assert.Equal(t, "reg", a.calc.editID)
	assert.Equal(t, "4", a.calc.input.Value())

	a, _ = press(t, a, "2", "0", "0", "enter")
	assert.False(t, a.calc.editing, "editor should close on enter")
	assert.Equal(t, int64(4200), a.values.Get("reg"))
	assert.Equal(t, int64(19200), a.agg.GrandTotal)
}

func TestCalculator_EditCoercesAndClamps(t *testing.T) {
	a := newTestApp(t)

	// Non-digits are stripped.
	a, _ = press(t, a, "j", "1", "a", "b", "5", "enter")
	assert.Equal(t, int64(15), a.values.Get("reg"))

	// Over the maximum saturates.
	a, _ = press(t, a, "9", "9", "9", "9", "9", "9", "9", "9", "9", "enter")
	assert.Equal(t, store.DefaultLimits().Max, a.values.Get("reg"))
}

func TestCalculator_EscCancelsEdit(t *testing.T) {
	a := newTestApp(t)

	a, _ = press(t, a, "j", "e", "backspace", "backspace", "esc")
	assert.False(t, a.calc.editing, "editor should close on esc")
	assert.Equal(t, int64(5000), a.values.Get("reg"))
}

func TestCalculator_EditOnHeaderIsIgnored(t *testing.T) {
	a := newTestApp(t)

	a, _ = press(t, a, "e")
	assert.False(t, a.calc.editing, "header rows are not editable")
}

func TestCalculator_ResetRestoresDefaults(t *testing.T) {
	a := newTestApp(t)

	a, _ = press(t, a, "j", "+", "j", "+")
	require.NotEqual(t, int64(20000), a.agg.GrandTotal)

	a, cmd := press(t, a, "0")
	assert.Equal(t, int64(20000), a.agg.GrandTotal)
	assert.Equal(t, "Values Reset", a.toast.Title)
	assert.NotNil(t, cmd, "reset should schedule the toast expiry")
}

func TestCalculator_BusinessName(t *testing.T) {
	a := newTestApp(t)

	a, _ = press(t, a, "n")
	require.True(t, a.calc.naming)

	// Keys go to the editor, not the tab bar.
	a, _ = press(t, a, "b", "e", "e", "s", "enter")
	assert.Equal(t, "bees", a.business)
	assert.Equal(t, tabCalculator, a.activeTab)
	assert.Contains(t, a.buildReport().Heading(), "bees")

	a, _ = press(t, a, "n", "x", "esc")
	assert.Equal(t, "bees", a.business, "esc keeps the previous name")
}

func TestToastExpiry(t *testing.T) {
	a := newTestApp(t)

	a, _ = press(t, a, "0")
	first := a.toastID
	a, _ = press(t, a, "0")

	// A stale expiry leaves the newer toast alone.
	m, _ := a.Update(toastExpiredMsg{id: first})
	a = m.(App)
	require.False(t, a.toast.Empty())

	m, _ = a.Update(toastExpiredMsg{id: a.toastID})
	assert.True(t, m.(App).toast.Empty())
}

func TestTabNavigation(t *testing.T) {
	a := newTestApp(t)

	a, _ = press(t, a, "tab")
	require.Equal(t, tabBreakdown, a.activeTab)

	a, _ = press(t, a, "shift+tab", "shift+tab")
	require.Equal(t, tabSettings, a.activeTab, "shift+tab wraps")

	for key, want := range map[string]int{
		"c": tabCalculator,
		"b": tabBreakdown,
		"t": tabTimeline,
		"g": tabGuide,
		"x": tabSettings,
	} {
		got, _ := press(t, a, key)
		assert.Equal(t, want, got.activeTab, "key %q", key)
	}
}

func TestHelpOverlay(t *testing.T) {
	a := newTestApp(t)

	a, _ = press(t, a, "?")
	require.True(t, a.showHelp)

	// Any key closes help without acting.
	a, _ = press(t, a, "0")
	assert.False(t, a.showHelp)
	assert.True(t, a.toast.Empty(), "0 should not reset while help is open")
}

func TestExportPDF(t *testing.T) {
	dir := t.TempDir()
	sink := &report.FileSink{Dir: dir}
	a := newTestAppWith(t, testCatalog(), Options{Business: "Chai & Co", Sink: sink})

	a, cmd := press(t, a, "p")
	assert.NotNil(t, cmd, "export should schedule a toast expiry")

	want := filepath.Join(dir, report.Filename("Chai & Co"))
	require.Equal(t, want, sink.LastPath)

	data, err := os.ReadFile(want)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF-"))
	assert.Equal(t, report.DownloadTitle, a.toast.Title)
	assert.False(t, a.toast.Err)
}

func TestExportPDF_NoSink(t *testing.T) {
	a := newTestApp(t)

	a, _ = press(t, a, "p")
	assert.True(t, a.toast.Err)
}

func TestShare(t *testing.T) {
	var copied string
	a := newTestAppWith(t, testCatalog(), Options{
		Clipboard: func(s string) error { copied = s; return nil },
	})

	a, _ = press(t, a, "y")
	assert.Equal(t, "https://startupcalc.com", copied)
	assert.Equal(t, report.ShareTitle, a.toast.Title)
}

func TestShare_ClipboardFailure(t *testing.T) {
	a := newTestAppWith(t, testCatalog(), Options{
		Clipboard: func(string) error { return errors.New("no display") },
	})

	a, _ = press(t, a, "y")
	assert.True(t, a.toast.Err)
	assert.Contains(t, a.toast.Message, "no display")
}

func TestEmailForm_OpensAndCancels(t *testing.T) {
	a := newTestApp(t)

	a, _ = press(t, a, "m")
	require.NotNil(t, a.emailForm)
	require.NotNil(t, a.emailVals)
	assert.Equal(t, "Your Startup Cost Analysis", a.emailVals.subject)

	a, _ = press(t, a, "esc")
	assert.Nil(t, a.emailForm, "esc should close the email form")
}

func TestSendEmail(t *testing.T) {
	d := &recordingDispatcher{}
	a := newTestAppWith(t, testCatalog(), Options{Business: "Chai", Dispatcher: d})
	a.emailVals = &emailValues{to: " founder@example.com ", subject: report.DefaultSubject("Chai")}

	cmd := a.sendEmail()
	assert.NotNil(t, cmd, "sendEmail should schedule a toast expiry")
	require.Len(t, d.sent, 1)

	e := d.sent[0]
	assert.Equal(t, "founder@example.com", e.To)
	assert.Equal(t, "Chai Startup Cost Analysis", e.Subject)
	assert.Contains(t, e.HTML, "Chai")
	assert.Contains(t, e.HTML, "₹20,000")
	assert.Equal(t, report.EmailTitle, a.toast.Title)
}

func TestSendEmail_DispatchError(t *testing.T) {
	d := &recordingDispatcher{err: errors.New("smtp down")}
	a := newTestAppWith(t, testCatalog(), Options{Dispatcher: d})
	a.emailVals = &emailValues{to: "founder@example.com"}

	a.sendEmail()
	assert.True(t, a.toast.Err)
	assert.Contains(t, a.toast.Message, "smtp down")
}

func TestValidateRecipient(t *testing.T) {
	assert.Error(t, validateRecipient(""))
	assert.Error(t, validateRecipient("not an address"))
	assert.NoError(t, validateRecipient("a@b.co"))
}

func TestSettings_CycleGrouping(t *testing.T) {
	var saved []config.Config
	a := newTestAppWith(t, testCatalog(), Options{
		SaveConfig: func(c config.Config) error { saved = append(saved, c); return nil },
	})

	a, _ = press(t, a, "x", "j", "j", "enter")
	assert.Equal(t, cli.GroupingWestern, a.money.Grouping)
	require.Len(t, saved, 1)
	assert.Equal(t, "western", saved[0].Currency.Grouping)
	assert.True(t, a.settings.saved)
}

func TestSettings_EditSymbol(t *testing.T) {
	a := newTestApp(t)

	a, _ = press(t, a, "x", "j", "enter")
	require.True(t, a.settings.editing)

	// Replace ₹ with $.
	a, _ = press(t, a, "backspace", "$", "enter")
	assert.Equal(t, "$", a.money.Symbol)
	assert.Equal(t, "$", a.pdfMoney.Symbol)

	// Switching back to ₹ must not leave $ in the PDF.
	a, _ = press(t, a, "enter", "backspace", "₹", "enter")
	assert.Equal(t, "₹", a.money.Symbol)
	assert.Equal(t, "Rs.", a.pdfMoney.Symbol)

	// An empty symbol is refused.
	a, _ = press(t, a, "enter", "backspace", "enter")
	assert.Equal(t, "₹", a.money.Symbol)
	assert.True(t, a.toast.Err)
}

func TestSettings_InvalidRecipient(t *testing.T) {
	a := newTestApp(t)

	a, _ = press(t, a, "x", "j", "j", "j", "j", "enter", "n", "o", "p", "e", "enter")
	assert.Empty(t, a.cfg.Email.Recipient)
	assert.True(t, a.toast.Err)
}

func TestView_AllTabs(t *testing.T) {
	a := newTestApp(t)
	require.Empty(t, a.View(), "View before the first WindowSizeMsg should be empty")

	m, _ := a.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	a = m.(App)

	wants := map[int]string{
		tabCalculator: "Registration",
		tabBreakdown:  "Legal",
		tabTimeline:   "6-Month Runway",
		tabGuide:      "contingenc",
		tabSettings:   "Digit Grouping",
	}
	for tab, want := range wants {
		a.activeTab = tab
		v := a.View()
		assert.Contains(t, v, want, "tab %d", tab)
		assert.LessOrEqual(t, strings.Count(v, "\n")+1, 40, "tab %d taller than the terminal", tab)
	}

	a.showHelp = true
	assert.NotEmpty(t, a.View(), "help view")
}

func TestView_EmptyBreakdownPlaceholder(t *testing.T) {
	cat := catalog.Catalog{Categories: []catalog.Category{
		{Title: "Legal", Items: []catalog.Item{{ID: "reg", Label: "Registration"}}},
	}}
	a := newTestAppWith(t, cat, Options{})
	m, _ := a.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	a = m.(App)
	a.activeTab = tabBreakdown

	assert.Contains(t, a.View(), "Add some costs")
}

func TestView_TooNarrow(t *testing.T) {
	a := newTestApp(t)
	m, _ := a.Update(tea.WindowSizeMsg{Width: 40, Height: 20})

	assert.NotContains(t, m.(App).View(), "Registration")
}
