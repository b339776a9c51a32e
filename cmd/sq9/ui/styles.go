// Package ui provides the visual styling and the interactive model of the
// sq9 terminal chart.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Chart palette. The dark values are the classic Square of 9 chart colors.
var (
	DarkBackground = lipgloss.Color("#1e1e1e")
	DarkForeground = lipgloss.Color("#ffffff")
	DarkCell       = lipgloss.Color("#2d2d2d")
	DarkCardinal   = lipgloss.Color("#555555")
	DarkMuted      = lipgloss.Color("#8a8a8a")
	DarkButton     = lipgloss.Color("#444444")
	DarkAccent     = lipgloss.Color("#666666")

	LightBackground = lipgloss.Color("#f4f5f6")
	LightForeground = lipgloss.Color("#101F38")
	LightCell       = lipgloss.Color("#e1e4e8")
	LightCardinal   = lipgloss.Color("#b8bec7")
	LightMuted      = lipgloss.Color("#6b7280")
	LightButton     = lipgloss.Color("#d6dae0")
	LightAccent     = lipgloss.Color("#9aa3ad")

	// Semantic colors (same in both modes)
	TextLight   = lipgloss.Color("#ffffff")
	TextDark    = lipgloss.Color("#000000")
	Retrograde  = lipgloss.Color("#ff0000")
	Stationary  = lipgloss.Color("#ffff00")
	Destructive = lipgloss.Color("#e53935")
)

// Theme holds the current color scheme
type Theme struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Cell       lipgloss.Color
	Cardinal   lipgloss.Color
	Muted      lipgloss.Color
	Button     lipgloss.Color
	Accent     lipgloss.Color
	IsDark     bool
}

// DarkTheme returns the dark chart theme (default).
func DarkTheme() Theme {
	return Theme{
		Background: DarkBackground,
		Foreground: DarkForeground,
		Cell:       DarkCell,
		Cardinal:   DarkCardinal,
		Muted:      DarkMuted,
		Button:     DarkButton,
		Accent:     DarkAccent,
		IsDark:     true,
	}
}

// LightTheme returns the light chart theme.
func LightTheme() Theme {
	return Theme{
		Background: LightBackground,
		Foreground: LightForeground,
		Cell:       LightCell,
		Cardinal:   LightCardinal,
		Muted:      LightMuted,
		Button:     LightButton,
		Accent:     LightAccent,
		IsDark:     false,
	}
}

// ThemeByName resolves the configured theme name. Anything but "light"
// is dark.
func ThemeByName(name string) Theme {
	if strings.EqualFold(strings.TrimSpace(name), "light") {
		return LightTheme()
	}
	return DarkTheme()
}

// Styles holds all the styled components
type Styles struct {
	Theme Theme

	// Layout
	App     lipgloss.Style
	Header  lipgloss.Style
	Footer  lipgloss.Style
	Sidebar lipgloss.Style
	Section lipgloss.Style

	// Text
	Title lipgloss.Style
	Body  lipgloss.Style
	Muted lipgloss.Style
	Label lipgloss.Style
	Error lipgloss.Style

	// Grid
	Cell     lipgloss.Style
	Cardinal lipgloss.Style

	// Controls
	Button       lipgloss.Style
	ButtonActive lipgloss.Style
	Input        lipgloss.Style
	InputFocused lipgloss.Style

	// Motion badges
	Direct     lipgloss.Style
	Retrograde lipgloss.Style
	Stationary lipgloss.Style
	Off        lipgloss.Style
}

// NewStyles creates a new Styles instance with the given theme
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		App: lipgloss.NewStyle().
			Background(theme.Background).
			Foreground(theme.Foreground),

		Header: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 1),

		Sidebar: lipgloss.NewStyle().
			Padding(0, 1).
			MarginRight(1),

		Section: lipgloss.NewStyle().
			MarginTop(1),

		Title: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		Body: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Label: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(Destructive).
			Bold(true),

		Cell: lipgloss.NewStyle().
			Background(theme.Cell).
			Foreground(theme.Foreground).
			Bold(true).
			Align(lipgloss.Center),

		Cardinal: lipgloss.NewStyle().
			Background(theme.Cardinal).
			Foreground(TextLight).
			Bold(true).
			Align(lipgloss.Center),

		Button: lipgloss.NewStyle().
			Background(theme.Button).
			Foreground(theme.Foreground).
			Padding(0, 1),

		ButtonActive: lipgloss.NewStyle().
			Background(theme.Accent).
			Foreground(theme.Foreground).
			Bold(true).
			Padding(0, 1),

		Input: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(theme.Muted).
			Padding(0, 1),

		InputFocused: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(theme.Foreground).
			Padding(0, 1),

		Direct: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Retrograde: lipgloss.NewStyle().
			Background(Retrograde).
			Foreground(TextLight).
			Padding(0, 1),

		Stationary: lipgloss.NewStyle().
			Background(Stationary).
			Foreground(TextDark).
			Padding(0, 1),

		Off: lipgloss.NewStyle().
			Foreground(theme.Muted),
	}
}

// DefaultStyles returns styles for the configured theme name.
func DefaultStyles(theme string) Styles {
	return NewStyles(ThemeByName(theme))
}

// RenderDivider returns a horizontal divider
func (s Styles) RenderDivider(width int) string {
	return s.Muted.Render(strings.Repeat("─", width))
}
