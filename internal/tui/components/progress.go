package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/startupcalc/internal/tui/theme"
)

// ShareBar renders one category line of the breakdown: label, a solid bar
// showing its share of the total, the percentage, and the formatted amount.
func ShareBar(label string, pct int, amount string, color lipgloss.Color, labelW, barWidth int) string {
	t := theme.Active

	frac := float64(min(max(pct, 0), 100)) / 100

	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(max(barWidth, 4)),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.SurfaceBright)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface).Bold(true)
	amountStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return labelStyle.Render(padRight(truncate(label, labelW), labelW)) +
		spaceStyle.Render(" ") +
		bar.ViewAs(frac) +
		spaceStyle.Render(" ") +
		pctStyle.Render(fmt.Sprintf("%4d%%", pct)) +
		spaceStyle.Render("  ") +
		amountStyle.Render(amount)
}

func padRight(s string, w int) string {
	gap := w - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	return s + fmt.Sprintf("%*s", gap, "")
}

func truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
