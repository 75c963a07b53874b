package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/startupcalc/internal/tui/theme"
)

// Toast is a short-lived notification shown in the status bar.
type Toast struct {
	Title   string
	Message string
	Err     bool
}

// Empty reports whether there is nothing to show.
func (t Toast) Empty() bool { return t.Title == "" && t.Message == "" }

// RenderStatusBar renders the bottom status bar: key hints on the left, the
// grand total on the right, or the active toast across the whole bar.
func RenderStatusBar(width int, total string, toast Toast) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Width(width)

	if !toast.Empty() {
		titleColor := t.GreenBright
		if toast.Err {
			titleColor = t.Red
		}
		titleStyle := lipgloss.NewStyle().Foreground(titleColor).Background(t.Surface).Bold(true)
		msgStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)

		bar := titleStyle.Render(" "+toast.Title) + msgStyle.Render("  "+toast.Message)
		return style.Render(truncateVisual(bar, width))
	}

	left := " [?]help  [p]df  [m]ail  [y]share  [q]uit"
	right := ""
	if total != "" {
		right = "Total " + total + " "
	}

	padding := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	totalStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)

	return style.Render(left + strings.Repeat(" ", padding) + totalStyle.Render(right))
}

func truncateVisual(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(s)
}
