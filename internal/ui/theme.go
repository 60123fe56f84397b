package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/responsive/internal/breakpoint"
	"github.com/five82/responsive/internal/styles"
)

// Theme defines colors for the demo.
type Theme struct {
	Name string

	Background string
	Surface    string
	Border     string

	Text    string
	Muted   string
	Accent  string
	Warning string

	// ClassColors tints the device class badge.
	ClassColors map[breakpoint.Class]string
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Text      lipgloss.Style
	MutedText lipgloss.Style
	Accent    lipgloss.Style
	Header    lipgloss.Style
	Footer    lipgloss.Style

	classColors map[breakpoint.Class]string
	background  string
	muted       string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text:      lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text)),
		MutedText: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)),
		Accent:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)).Bold(true),
		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),
		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		classColors: t.ClassColors,
		background:  t.Background,
		muted:       t.Muted,
	}
}

// ClassBadge returns a badge style for c.
func (s Styles) ClassBadge(c breakpoint.Class) lipgloss.Style {
	color := s.classColors[c]
	if color == "" {
		color = s.muted
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.background)).
		Background(lipgloss.Color(color)).
		Bold(true).
		Padding(0, 1)
}

// Sheet returns the demo's panel styles authored at the demo baseline width.
// Callers scale it before converting to lipgloss.
func (t Theme) Sheet() styles.Sheet {
	return styles.Sheet{
		"panel": {
			"paddingHorizontal": 2,
			"paddingVertical":   1,
			"marginRight":       1,
			"borderWidth":       1,
			"borderRadius":      8,
			"borderColor":       t.Border,
			"color":             t.Text,
			"flex":              1,
		},
		"title": {
			"color":        t.Accent,
			"fontWeight":   700,
			"marginBottom": 1,
		},
	}
}

var themes = map[string]Theme{
	"Nightfox": nightfoxTheme(),
	"Slate":    slateTheme(),
}

var themeOrder = []string{"Nightfox", "Slate"}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return nightfoxTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func nightfoxTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name: "Nightfox",

		Background: "#131a24", // bg0
		Surface:    "#192330", // bg1
		Border:     "#39506d", // bg4

		Text:    "#cdcecf", // fg1
		Muted:   "#738091", // comment
		Accent:  "#719cd6", // blue
		Warning: "#dbc074", // yellow

		ClassColors: map[breakpoint.Class]string{
			breakpoint.Compact: "#63cdcf", // cyan
			breakpoint.Medium:  "#81b29a", // green
			breakpoint.Large:   "#9d79d6", // magenta
		},
	}
}

func slateTheme() Theme {
	// Tailwind CSS Slate/Sky palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name: "Slate",

		Background: "#020617", // slate-950
		Surface:    "#0f172a", // slate-900
		Border:     "#334155", // slate-700

		Text:    "#f1f5f9", // slate-100
		Muted:   "#94a3b8", // slate-400
		Accent:  "#38bdf8", // sky-400
		Warning: "#f59e0b", // amber-500

		ClassColors: map[breakpoint.Class]string{
			breakpoint.Compact: "#0ea5e9", // sky-500
			breakpoint.Medium:  "#22c55e", // green-500
			breakpoint.Large:   "#f59e0b", // amber-500
		},
	}
}
