package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/startupcalc/internal/pipeline"
	"github.com/theirongolddev/startupcalc/internal/tui/components"
	"github.com/theirongolddev/startupcalc/internal/tui/theme"
)

func (a App) renderTimelineTab(cw int) string {
	t := theme.Active
	r := a.runway
	runwayLabel := fmt.Sprintf("%d-Month Runway", pipeline.RunwayMonths)

	metrics := components.MetricCardRow([]components.Metric{
		{Label: "One-time Costs", Value: a.money.Format(r.OneTime)},
		{Label: "Monthly Costs", Value: a.money.Format(r.Monthly)},
		{Label: runwayLabel, Value: a.money.Format(r.SixMonthProjection),
			Note: fmt.Sprintf("%d × monthly", pipeline.RunwayMonths)},
		{Label: "Total Startup Cost", Value: a.money.Format(r.Total)},
	}, cw)

	chart := components.BarChart([]components.Bar{
		{Label: "One-time Costs", Value: r.OneTime, Display: a.money.Compact(r.OneTime), Color: t.Blue},
		{Label: runwayLabel, Value: r.SixMonthProjection, Display: a.money.Compact(r.SixMonthProjection), Color: t.Yellow},
		{Label: "Total Startup Cost", Value: r.Total, Display: a.money.Compact(r.Total), Color: t.Accent},
	}, components.CardInnerWidth(cw))

	var body strings.Builder
	body.WriteString(chart)

	muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	warn := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)

	body.WriteString("\n\n")
	body.WriteString(muted.Render("Plan for at least six months of operating costs on top of your setup spend."))
	for _, title := range a.untagged {
		body.WriteString("\n")
		body.WriteString(warn.Render(fmt.Sprintf("! %s is neither one-time nor recurring; left out of the runway", title)))
	}

	return metrics + "\n" + components.ContentCard("Startup Timeline", body.String(), cw)
}
