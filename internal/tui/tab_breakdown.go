package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/startupcalc/internal/cli"
	"github.com/theirongolddev/startupcalc/internal/tui/components"
	"github.com/theirongolddev/startupcalc/internal/tui/theme"
)

const emptyChartMessage = "Add some costs to see your expense breakdown"

func (a App) renderBreakdownTab(cw int) string {
	t := theme.Active

	if len(a.chart) == 0 {
		muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
		return components.ContentCard("Cost Breakdown", "\n"+muted.Render(emptyChartMessage)+"\n", cw)
	}

	largest := a.chart[0]
	for _, s := range a.chart[1:] {
		if s.Value > largest.Value {
			largest = s
		}
	}

	metrics := components.MetricCardRow([]components.Metric{
		{Label: "Grand Total", Value: a.money.Format(a.agg.GrandTotal)},
		{Label: "Largest Category", Value: largest.Title, Note: cli.FormatPercent(largest.Percent) + " of total"},
		{Label: "Categories With Costs", Value: cli.FormatNumber(int64(len(a.chart)))},
	}, cw)

	innerW := components.CardInnerWidth(cw)
	palette := t.Palette()

	labelW := 0
	amountW := 0
	for _, s := range a.chart {
		labelW = max(labelW, lipgloss.Width(s.Title))
		amountW = max(amountW, lipgloss.Width(a.money.Format(s.Value)))
	}
	labelW = min(labelW, innerW/3)
	barW := innerW - labelW - amountW - 9

	segments := make([]components.Segment, len(a.chart))
	for i, s := range a.chart {
		segments[i] = components.Segment{Value: s.Value, Color: palette[s.Color%len(palette)]}
	}

	var body strings.Builder
	body.WriteString(components.StackedBar(segments, innerW))
	body.WriteString("\n\n")
	for i, s := range a.chart {
		body.WriteString(components.ShareBar(s.Title, s.Percent, a.money.Format(s.Value),
			palette[s.Color%len(palette)], labelW, barW))
		if i < len(a.chart)-1 {
			body.WriteString("\n")
		}
	}

	return metrics + "\n" + components.ContentCard("Cost Breakdown", body.String(), cw)
}
