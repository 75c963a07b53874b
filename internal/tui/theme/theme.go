// Package theme defines color themes for the startupcalc TUI.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name          string
	Background    lipgloss.Color // Main app background
	Surface       lipgloss.Color // Card/panel backgrounds
	SurfaceHover  lipgloss.Color // Highlighted surface (active tab, selected row)
	SurfaceBright lipgloss.Color // Extra bright surface for emphasis
	Border        lipgloss.Color // Subtle borders
	BorderBright  lipgloss.Color // Prominent borders (cards, focus)
	BorderAccent  lipgloss.Color // Accent-colored borders for focus states
	TextDim       lipgloss.Color // Lowest contrast text (hints, disabled)
	TextMuted     lipgloss.Color // Secondary text (labels, metadata)
	TextPrimary   lipgloss.Color // Primary content text
	Accent        lipgloss.Color // Primary accent (links, active states)
	AccentBright  lipgloss.Color // Brighter accent for emphasis
	AccentDim     lipgloss.Color // Dimmed accent for backgrounds
	Green         lipgloss.Color
	GreenBright   lipgloss.Color
	Orange        lipgloss.Color
	Red           lipgloss.Color
	Blue          lipgloss.Color
	BlueBright    lipgloss.Color
	Yellow        lipgloss.Color
	Magenta       lipgloss.Color
	Cyan          lipgloss.Color
}

// Active is the currently selected theme.
var Active = Evergreen

// FlexokiDark is a warm, paper-inspired dark theme.
var FlexokiDark = Theme{
	Name:          "flexoki-dark",
	Background:    lipgloss.Color("#100F0F"),
	Surface:       lipgloss.Color("#1C1B1A"),
	SurfaceHover:  lipgloss.Color("#282726"),
	SurfaceBright: lipgloss.Color("#343331"),
	Border:        lipgloss.Color("#403E3C"),
	BorderBright:  lipgloss.Color("#575653"),
	BorderAccent:  lipgloss.Color("#3AA99F"),
	TextDim:       lipgloss.Color("#575653"),
	TextMuted:     lipgloss.Color("#878580"),
	TextPrimary:   lipgloss.Color("#FFFCF0"),
	Accent:        lipgloss.Color("#3AA99F"),
	AccentBright:  lipgloss.Color("#5BC8BE"),
	AccentDim:     lipgloss.Color("#1A3533"),
	Green:         lipgloss.Color("#879A39"),
	GreenBright:   lipgloss.Color("#A3B859"),
	Orange:        lipgloss.Color("#DA702C"),
	Red:           lipgloss.Color("#D14D41"),
	Blue:          lipgloss.Color("#4385BE"),
	BlueBright:    lipgloss.Color("#6BA3D6"),
	Yellow:        lipgloss.Color("#D0A215"),
	Magenta:       lipgloss.Color("#CE5D97"),
	Cyan:          lipgloss.Color("#24837B"),
}

// Evergreen is the default theme, built around the report's brand greens.
var Evergreen = Theme{
	Name:          "evergreen",
	Background:    lipgloss.Color("#0F1715"),
	Surface:       lipgloss.Color("#16211E"),
	SurfaceHover:  lipgloss.Color("#1F2E2A"),
	SurfaceBright: lipgloss.Color("#2A3D38"),
	Border:        lipgloss.Color("#34493F"),
	BorderBright:  lipgloss.Color("#4E6B60"),
	BorderAccent:  lipgloss.Color("#7AC9A7"),
	TextDim:       lipgloss.Color("#4E6B60"),
	TextMuted:     lipgloss.Color("#8FA89E"),
	TextPrimary:   lipgloss.Color("#F1F5F3"),
	Accent:        lipgloss.Color("#7AC9A7"),
	AccentBright:  lipgloss.Color("#A3E0C5"),
	AccentDim:     lipgloss.Color("#245E4F"),
	Green:         lipgloss.Color("#7AC9A7"),
	GreenBright:   lipgloss.Color("#A3E0C5"),
	Orange:        lipgloss.Color("#F4A261"),
	Red:           lipgloss.Color("#E76F51"),
	Blue:          lipgloss.Color("#5FA8D3"),
	BlueBright:    lipgloss.Color("#8CC4E4"),
	Yellow:        lipgloss.Color("#E9C46A"),
	Magenta:       lipgloss.Color("#C77DBA"),
	Cyan:          lipgloss.Color("#2A9D8F"),
}

// Terminal uses ANSI 16 colors only - maximum compatibility.
var Terminal = Theme{
	Name:          "terminal",
	Background:    lipgloss.Color("0"),
	Surface:       lipgloss.Color("0"),
	SurfaceHover:  lipgloss.Color("8"),
	SurfaceBright: lipgloss.Color("8"),
	Border:        lipgloss.Color("8"),
	BorderBright:  lipgloss.Color("7"),
	BorderAccent:  lipgloss.Color("6"),
	TextDim:       lipgloss.Color("8"),
	TextMuted:     lipgloss.Color("7"),
	TextPrimary:   lipgloss.Color("15"),
	Accent:        lipgloss.Color("6"),
	AccentBright:  lipgloss.Color("14"),
	AccentDim:     lipgloss.Color("0"),
	Green:         lipgloss.Color("2"),
	GreenBright:   lipgloss.Color("10"),
	Orange:        lipgloss.Color("3"),
	Red:           lipgloss.Color("1"),
	Blue:          lipgloss.Color("4"),
	BlueBright:    lipgloss.Color("12"),
	Yellow:        lipgloss.Color("3"),
	Magenta:       lipgloss.Color("5"),
	Cyan:          lipgloss.Color("6"),
}

// All available themes.
var All = []Theme{Evergreen, FlexokiDark, Terminal}

// ByName returns a theme by its name, defaulting to Evergreen.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return Evergreen
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}

// Names lists the theme names in display order.
func Names() []string {
	names := make([]string, len(All))
	for i, t := range All {
		names[i] = t.Name
	}
	return names
}

// Palette returns the six chart colours, indexed by model.ChartSlice.Color.
func (t Theme) Palette() []lipgloss.Color {
	return []lipgloss.Color{t.Accent, t.Yellow, t.Orange, t.Blue, t.Magenta, t.Cyan}
}
