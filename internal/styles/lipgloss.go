package styles

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Cells rounds a scaled value to whole terminal cells, never below zero.
func Cells(v float64) int {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	return int(math.Round(v))
}

type boxEdges struct {
	top, right, bottom, left int
	set                      bool
}

// edges resolves shorthand, axis and side keys for one box property, in that
// order of precedence (sides win).
func edges(style Style, prefix string) boxEdges {
	var e boxEdges
	if n, ok := number(style[prefix]); ok {
		c := Cells(n)
		e = boxEdges{c, c, c, c, true}
	}
	if n, ok := number(style[prefix+"Vertical"]); ok {
		e.top, e.bottom, e.set = Cells(n), Cells(n), true
	}
	if n, ok := number(style[prefix+"Horizontal"]); ok {
		e.left, e.right, e.set = Cells(n), Cells(n), true
	}
	for side, dst := range map[string]*int{
		"Top": &e.top, "Right": &e.right, "Bottom": &e.bottom, "Left": &e.left,
	} {
		if n, ok := number(style[prefix+side]); ok {
			*dst, e.set = Cells(n), true
		}
	}
	return e
}

// Lipgloss builds a lipgloss style from an already scaled Style. Unknown keys
// are ignored.
func Lipgloss(style Style) lipgloss.Style {
	out := lipgloss.NewStyle()

	if p := edges(style, "padding"); p.set {
		out = out.Padding(p.top, p.right, p.bottom, p.left)
	}
	if m := edges(style, "margin"); m.set {
		out = out.Margin(m.top, m.right, m.bottom, m.left)
	}

	if n, ok := number(style["width"]); ok {
		out = out.Width(Cells(n))
	}
	if n, ok := number(style["height"]); ok {
		out = out.Height(Cells(n))
	}
	if n, ok := number(style["maxWidth"]); ok {
		out = out.MaxWidth(Cells(n))
	}
	if n, ok := number(style["maxHeight"]); ok {
		out = out.MaxHeight(Cells(n))
	}

	if c, ok := style["color"].(string); ok && c != "" {
		out = out.Foreground(lipgloss.Color(c))
	}
	if c, ok := style["backgroundColor"].(string); ok && c != "" {
		out = out.Background(lipgloss.Color(c))
	}

	if bold(style["fontWeight"]) {
		out = out.Bold(true)
	}
	if s, _ := style["fontStyle"].(string); s == "italic" {
		out = out.Italic(true)
	}
	if s, _ := style["textDecorationLine"].(string); strings.Contains(s, "underline") {
		out = out.Underline(true)
	}

	switch s, _ := style["textAlign"].(string); s {
	case "center":
		out = out.Align(lipgloss.Center)
	case "right":
		out = out.Align(lipgloss.Right)
	case "left":
		out = out.Align(lipgloss.Left)
	}

	if border, ok := borderFor(style); ok {
		out = out.Border(border)
		if c, ok := style["borderColor"].(string); ok && c != "" {
			out = out.BorderForeground(lipgloss.Color(c))
		}
	}
	return out
}

func bold(v any) bool {
	if s, ok := v.(string); ok {
		switch s {
		case "bold", "semibold", "600", "700", "800", "900":
			return true
		}
		return false
	}
	n, ok := number(v)
	return ok && n >= 600
}

func borderFor(style Style) (lipgloss.Border, bool) {
	if name, ok := style["borderStyle"].(string); ok {
		switch name {
		case "rounded":
			return lipgloss.RoundedBorder(), true
		case "thick":
			return lipgloss.ThickBorder(), true
		case "double":
			return lipgloss.DoubleBorder(), true
		case "hidden":
			return lipgloss.HiddenBorder(), true
		case "none":
			return lipgloss.Border{}, false
		default:
			return lipgloss.NormalBorder(), true
		}
	}
	width, ok := number(style["borderWidth"])
	if !ok || width <= 0 {
		return lipgloss.Border{}, false
	}
	if r, ok := number(style["borderRadius"]); ok && r > 0 {
		return lipgloss.RoundedBorder(), true
	}
	return lipgloss.NormalBorder(), true
}
