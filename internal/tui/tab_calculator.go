package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/startupcalc/internal/catalog"
	"github.com/theirongolddev/startupcalc/internal/cli"
	"github.com/theirongolddev/startupcalc/internal/report"
	"github.com/theirongolddev/startupcalc/internal/tui/components"
	"github.com/theirongolddev/startupcalc/internal/tui/theme"
)

// calcState tracks the calculator tab: which categories are open, the
// focused row, and the inline editors.
type calcState struct {
	cursor   int
	expanded map[int]bool

	editing bool
	editID  string
	input   textinput.Model

	naming    bool
	nameInput textinput.Model
}

func newCalcState() calcState {
	return calcState{expanded: map[int]bool{0: true}}
}

// calcRow is one visible line of the category list. item is -1 for a
// category header.
type calcRow struct {
	cat  int
	item int
}

func (r calcRow) isHeader() bool { return r.item < 0 }

func (a App) calcRows() []calcRow {
	var rows []calcRow
	for ci, c := range a.values.Catalog().Categories {
		rows = append(rows, calcRow{cat: ci, item: -1})
		if !a.calc.expanded[ci] {
			continue
		}
		for ii := range c.Items {
			rows = append(rows, calcRow{cat: ci, item: ii})
		}
	}
	return rows
}

func (c *calcState) move(delta, n int) {
	if n == 0 {
		c.cursor = 0
		return
	}
	c.cursor = min(max(c.cursor+delta, 0), n-1)
}

// toggle flips a category. The map is replaced, not mutated, since App is
// copied by value on every update.
func (c *calcState) toggle(cat int) {
	next := make(map[int]bool, len(c.expanded)+1)
	for k, v := range c.expanded {
		next[k] = v
	}
	next[cat] = !next[cat]
	c.expanded = next
}

func (a App) focusedItem() (catalog.Item, bool) {
	rows := a.calcRows()
	if a.calc.cursor < 0 || a.calc.cursor >= len(rows) {
		return catalog.Item{}, false
	}
	r := rows[a.calc.cursor]
	if r.isHeader() {
		return catalog.Item{}, false
	}
	return a.values.Catalog().Categories[r.cat].Items[r.item], true
}

func (a App) updateCalculatorKey(key string) (tea.Model, tea.Cmd, bool) {
	rows := a.calcRows()
	if len(rows) == 0 {
		return a, nil, false
	}
	a.calc.cursor = min(a.calc.cursor, len(rows)-1)
	row := rows[a.calc.cursor]

	switch key {
	case "j", "down":
		a.calc.move(1, len(rows))
	case "k", "up":
		a.calc.move(-1, len(rows))

	case "enter":
		if row.isHeader() {
			a.calc.toggle(row.cat)
			return a, nil, true
		}
		m, cmd := a.startAmountEdit("")
		return m, cmd, true

	case " ", "space":
		a.calc.toggle(row.cat)
		if !row.isHeader() {
			// Collapsing from an item lands on its header.
			a.calc.cursor = a.headerRow(row.cat)
		}

	case "+", "=":
		if it, ok := a.focusedItem(); ok {
			if _, err := a.values.Increment(it.ID); err != nil {
				cmd := a.showToast("Update Failed", err.Error(), true)
				return a, cmd, true
			}
			a.recompute()
		}
	case "-", "_":
		if it, ok := a.focusedItem(); ok {
			if _, err := a.values.Decrement(it.ID); err != nil {
				cmd := a.showToast("Update Failed", err.Error(), true)
				return a, cmd, true
			}
			a.recompute()
		}

	case "e":
		m, cmd := a.startAmountEdit("")
		return m, cmd, true
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		m, cmd := a.startAmountEdit(key)
		return m, cmd, true

	case "0":
		a.values.Reset()
		a.recompute()
		cmd := a.showToast("Values Reset", "Every amount is back to its default.", false)
		return a, cmd, true

	case "n":
		a.calc.naming = true
		a.calc.nameInput = newNameInput(a.business)
		return a, textinput.Blink, true

	default:
		return a, nil, false
	}
	return a, nil, true
}

func (a App) headerRow(cat int) int {
	for i, r := range a.calcRows() {
		if r.cat == cat && r.isHeader() {
			return i
		}
	}
	return 0
}

func newNameInput(current string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "Your Business"
	ti.CharLimit = 80
	ti.Width = 30
	ti.Prompt = ""
	ti.SetValue(current)
	ti.CursorEnd()
	ti.Focus()
	return ti
}

// startAmountEdit opens the inline editor on the focused item. A typed digit
// replaces the current amount; otherwise the raw number is shown for editing.
func (a App) startAmountEdit(prefill string) (tea.Model, tea.Cmd) {
	it, ok := a.focusedItem()
	if !ok {
		return a, nil
	}

	ti := textinput.New()
	ti.CharLimit = 15
	ti.Width = 15
	ti.Prompt = a.money.Symbol
	if prefill != "" {
		ti.SetValue(prefill)
	} else {
		ti.SetValue(strconv.FormatInt(a.values.Get(it.ID), 10))
	}
	ti.CursorEnd()
	ti.Focus()

	a.calc.editing = true
	a.calc.editID = it.ID
	a.calc.input = ti
	return a, textinput.Blink
}

func (a App) updateAmountInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.calc.editing = false
		if _, err := a.values.Set(a.calc.editID, a.calc.input.Value()); err != nil {
			cmd := a.showToast("Update Failed", err.Error(), true)
			return a, cmd
		}
		a.recompute()
		return a, nil
	case "esc":
		a.calc.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.calc.input, cmd = a.calc.input.Update(msg)
	return a, cmd
}

func (a App) updateNameInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.calc.naming = false
		a.business = strings.TrimSpace(a.calc.nameInput.Value())
		return a, nil
	case "esc":
		a.calc.naming = false
		return a, nil
	}

	var cmd tea.Cmd
	a.calc.nameInput, cmd = a.calc.nameInput.Update(msg)
	return a, cmd
}

func (a App) renderCalculatorTab(cw, h int) string {
	t := theme.Active

	nameValue := report.DisplayName(a.business)
	if a.calc.naming {
		nameValue = a.calc.nameInput.View()
	}
	metrics := components.MetricCardRow([]components.Metric{
		{Label: "Business [n]", Value: nameValue},
		{Label: "Grand Total", Value: a.money.Format(a.agg.GrandTotal)},
		{Label: "One-time", Value: a.money.Format(a.runway.OneTime)},
		{Label: "Monthly", Value: a.money.Format(a.runway.Monthly)},
	}, cw)

	innerW := components.CardInnerWidth(cw)
	budget := max(h-lipgloss.Height(metrics)-5, 3)

	rows := a.calcRows()
	cursor := min(a.calc.cursor, max(len(rows)-1, 0))
	offset := max(0, cursor-budget+2) // leave room for the description line

	surface := lipgloss.NewStyle().Background(t.Surface)
	focus := lipgloss.NewStyle().Background(t.SurfaceBright)
	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	itemStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	amountStyle := lipgloss.NewStyle().Foreground(t.GreenBright)
	zeroStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	pctStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Italic(true)

	cats := a.values.Catalog().Categories
	var body strings.Builder
	lines := 0
	for i := offset; i < len(rows) && lines < budget; i++ {
		r := rows[i]
		bg := surface
		if i == cursor {
			bg = focus
		}

		var left, right string
		if r.isHeader() {
			marker := "▸ "
			if a.calc.expanded[r.cat] {
				marker = "▾ "
			}
			ct := a.agg.Categories[r.cat]
			left = headerStyle.Inherit(bg).Render(marker + ct.Title)
			right = pctStyle.Inherit(bg).Render(cli.FormatPercent(ct.Percent)+"  ") +
				headerStyle.Inherit(bg).Render(a.money.Format(ct.Total))
		} else {
			it := cats[r.cat].Items[r.item]
			left = itemStyle.Inherit(bg).Render("    " + it.Label)
			n := a.values.Get(it.ID)
			switch {
			case a.calc.editing && a.calc.editID == it.ID:
				right = a.calc.input.View()
			case n == 0:
				right = zeroStyle.Inherit(bg).Render(a.money.Format(n))
			default:
				right = amountStyle.Inherit(bg).Render(a.money.Format(n))
			}
		}
		body.WriteString(spread(left, right, innerW, bg))
		body.WriteString("\n")
		lines++

		if i == cursor && !r.isHeader() {
			if desc := cats[r.cat].Items[r.item].Description; desc != "" {
				body.WriteString(descStyle.Inherit(surface).Render("      " + truncStr(desc, innerW-6)))
				body.WriteString("\n")
				lines++
			}
		}
	}

	hint := pctStyle.Inherit(surface).Render("[j/k] move  [enter] open/edit  [+/-] step  [1-9] type  [0] reset")
	body.WriteString(hint)

	return metrics + "\n" + components.ContentCard("Startup Costs", body.String(), cw)
}

// spread places left and right at the two edges of a width-w line.
func spread(left, right string, w int, bg lipgloss.Style) string {
	gap := max(w-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + bg.Render(strings.Repeat(" ", gap)) + right
}
