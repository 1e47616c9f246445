// Package styles holds the light and dark palettes and their pre-built styles.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	// Brand/accent colors
	Primary   lipgloss.Color // focused items, active states
	Secondary lipgloss.Color // secondary accent

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	// Backgrounds
	BgCursor lipgloss.Color // Cursor/selection highlight

	// Borders
	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	// Status colors
	Success lipgloss.Color // downloaded, favorite
	Error   lipgloss.Color
	Warning lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base      lipgloss.Style // Default text
	Muted     lipgloss.Style // Dimmed text
	Subtle    lipgloss.Style // Very dim text
	Title     lipgloss.Style // Bold, bright
	Playing   lipgloss.Style // Currently playing track
	Cursor    lipgloss.Style // Cursor background highlight
	TabActive lipgloss.Style
	Tab       lipgloss.Style
	Bar       lipgloss.Style // Player bar frame
	Success   lipgloss.Style
	Error     lipgloss.Style
	Warning   lipgloss.Style
}

var darkTheme = Theme{
	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f1a208"),

	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	BgCursor: lipgloss.Color("#303030"),

	Border:      lipgloss.Color("#585858"),
	BorderFocus: lipgloss.Color("#a78bfa"),

	Success: lipgloss.Color("#42b883"),
	Error:   lipgloss.Color("#ff5555"),
	Warning: lipgloss.Color("#f1a208"),
}

var lightTheme = Theme{
	Primary:   lipgloss.Color("#6d28d9"),
	Secondary: lipgloss.Color("#b45309"),

	FgBase:   lipgloss.Color("#1f1f1f"),
	FgMuted:  lipgloss.Color("#5c5c5c"),
	FgSubtle: lipgloss.Color("#9a9a9a"),

	BgCursor: lipgloss.Color("#e4e4e7"),

	Border:      lipgloss.Color("#a1a1aa"),
	BorderFocus: lipgloss.Color("#6d28d9"),

	Success: lipgloss.Color("#15803d"),
	Error:   lipgloss.Color("#b91c1c"),
	Warning: lipgloss.Color("#b45309"),
}

// Dark returns the dark theme.
func Dark() *Theme {
	return &darkTheme
}

// Light returns the light theme.
func Light() *Theme {
	return &lightTheme
}

// For returns the dark theme when dark is true, else the light one.
func For(dark bool) *Theme {
	if dark {
		return Dark()
	}
	return Light()
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Playing: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		Cursor: lipgloss.NewStyle().
			Background(t.BgCursor).
			Foreground(t.FgBase),
		TabActive: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true).
			Underline(true).
			Padding(0, 1),
		Tab: lipgloss.NewStyle().
			Foreground(t.FgMuted).
			Padding(0, 1),
		Bar: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.Border),
		Success: lipgloss.NewStyle().Foreground(t.Success),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
	}
}
