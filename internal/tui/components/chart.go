package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/startupcalc/internal/tui/theme"
)

// Bar is one row of a horizontal bar chart.
type Bar struct {
	Label   string
	Value   int64
	Display string // formatted value printed after the bar
	Color   lipgloss.Color
}

// BarChart renders horizontal bars scaled to the largest value. Labels are
// left-aligned in a shared column so the bars start at the same x.
func BarChart(bars []Bar, width int) string {
	if len(bars) == 0 {
		return ""
	}
	t := theme.Active

	labelW := 0
	displayW := 0
	var peak int64
	for _, b := range bars {
		labelW = max(labelW, lipgloss.Width(b.Label))
		displayW = max(displayW, lipgloss.Width(b.Display))
		peak = max(peak, b.Value)
	}

	barW := max(width-labelW-displayW-2, 5)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	emptyStyle := lipgloss.NewStyle().Foreground(t.SurfaceBright).Background(t.Surface)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	var sb strings.Builder
	for i, b := range bars {
		filled := 0
		if peak > 0 {
			filled = int(float64(b.Value) / float64(peak) * float64(barW))
		}
		if b.Value > 0 && filled == 0 {
			filled = 1 // keep non-zero values visible
		}
		filled = min(max(filled, 0), barW)

		barStyle := lipgloss.NewStyle().Foreground(b.Color).Background(t.Surface)

		sb.WriteString(labelStyle.Render(padRight(b.Label, labelW)))
		sb.WriteString(spaceStyle.Render(" "))
		sb.WriteString(barStyle.Render(strings.Repeat("█", filled)))
		sb.WriteString(emptyStyle.Render(strings.Repeat("░", barW-filled)))
		sb.WriteString(spaceStyle.Render(" "))
		sb.WriteString(valueStyle.Render(b.Display))
		if i < len(bars)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// Segment is one coloured run of a StackedBar.
type Segment struct {
	Value int64
	Color lipgloss.Color
}

// StackedBar renders a single line split proportionally between segments,
// the terminal stand-in for a pie chart. Rounding leftovers go to the
// largest segment so the bar always fills width exactly.
func StackedBar(segments []Segment, width int) string {
	t := theme.Active
	if width <= 0 {
		return ""
	}

	var total int64
	largest := -1
	for i, s := range segments {
		total += s.Value
		if largest < 0 || s.Value > segments[largest].Value {
			largest = i
		}
	}
	if total <= 0 {
		return lipgloss.NewStyle().Foreground(t.SurfaceBright).Background(t.Surface).
			Render(strings.Repeat("░", width))
	}

	cells := make([]int, len(segments))
	used := 0
	for i, s := range segments {
		cells[i] = int(float64(s.Value) / float64(total) * float64(width))
		used += cells[i]
	}
	cells[largest] += width - used

	var sb strings.Builder
	for i, s := range segments {
		if cells[i] <= 0 {
			continue
		}
		sb.WriteString(lipgloss.NewStyle().Foreground(s.Color).Background(t.Surface).
			Render(strings.Repeat("█", cells[i])))
	}
	return sb.String()
}
