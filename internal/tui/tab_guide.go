package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/startupcalc/internal/tui/components"
	"github.com/theirongolddev/startupcalc/internal/tui/theme"
)

type guideSection struct {
	title string
	body  []string
	tip   bool
}

var guideSections = []guideSection{
	{
		title: "Why calculate startup costs?",
		body: []string{
			"A realistic estimate is what funding conversations, financial projections and your path to profitability are built on. " +
				"Most first-time founders underestimate what they need and run into cash flow trouble within the first year.",
		},
	},
	{
		title: "One-time vs. ongoing costs",
		body: []string{
			"• One-time: spent once during setup. Registration, equipment, initial inventory, security deposits.",
			"• Ongoing: repeats every month once you are operating. Rent, utilities, salaries, marketing.",
			"The Timeline tab adds six months of ongoing costs to your one-time spend.",
		},
	},
	{
		title: "How to use this calculator",
		body: []string{
			"1. Press n to enter your business name (optional).",
			"2. Open each category and adjust the estimates to fit your business.",
			"3. Check the Breakdown and Timeline tabs for your total investment.",
			"4. Press p for a PDF or m to email the breakdown to stakeholders.",
		},
	},
	{
		title: "Planning for contingencies",
		body: []string{
			"Add a buffer of 15-25% on top of your estimate for surprises and delays. " +
				"It matters most on a first venture, where unknowns are the norm.",
		},
	},
	{
		title: "Pro tip",
		body: []string{
			"Build three budgets: bare minimum, realistic and optimal. " +
				"The spread between them tells you how much capital to raise and how much room you have to adapt.",
		},
		tip: true,
	},
}

func (a App) renderGuideTab(cw int) string {
	t := theme.Active
	innerW := components.CardInnerWidth(cw)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	tipStyle := lipgloss.NewStyle().Foreground(t.Yellow).Background(t.Surface).Bold(true)
	textStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Width(innerW)

	var b strings.Builder
	for i, sec := range guideSections {
		if i > 0 {
			b.WriteString("\n\n")
		}
		if sec.tip {
			b.WriteString(tipStyle.Render("★ " + sec.title))
		} else {
			b.WriteString(titleStyle.Render(sec.title))
		}
		for _, p := range sec.body {
			b.WriteString("\n")
			b.WriteString(textStyle.Render(p))
		}
	}

	return components.ContentCard("Understanding Startup Costs", b.String(), cw)
}
