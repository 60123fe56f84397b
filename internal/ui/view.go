package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/responsive/internal/breakpoint"
	"github.com/five82/responsive/internal/layout"
	"github.com/five82/responsive/internal/responsive"
	"github.com/five82/responsive/internal/styles"
	"github.com/five82/responsive/internal/tokens"
)

// panels is shared by every column layout so a theme change reaches all of
// them, including the inactive ones.
type panels struct {
	reader *responsive.Reader
	theme  Theme
}

type panel struct {
	title string
	lines []string
}

func (p *panels) contents() []panel {
	snap := p.reader.Snapshot()
	set := tokens.Current(p.reader)
	return []panel{
		{
			title: "Viewport",
			lines: []string{
				fmt.Sprintf("size         %.0fx%.0f", snap.ViewportWidth, snap.ViewportHeight),
				fmt.Sprintf("orientation  %s", snap.Orientation),
				fmt.Sprintf("class        %s", snap.Class()),
				fmt.Sprintf("reader       %s", p.reader.Mode()),
			},
		},
		{
			title: "Scaling",
			lines: []string{
				fmt.Sprintf("base width   %.0f", snap.BaseWidth),
				fmt.Sprintf("factor       %.3f", snap.ScaleFactor),
				fmt.Sprintf("medium from  %.0f", snap.Breakpoints.Medium),
				fmt.Sprintf("large from   %.0f", snap.Breakpoints.Large),
			},
		},
		{
			title: "Tokens",
			lines: []string{
				fmt.Sprintf("space  xs %.1f  sm %.1f  md %.1f", set.Space.XS, set.Space.SM, set.Space.MD),
				fmt.Sprintf("       lg %.1f  xl %.1f  xxl %.1f", set.Space.LG, set.Space.XL, set.Space.XXL),
				fmt.Sprintf("font   body %.1f  title %.1f", set.Font.Body, set.Font.Title),
				fmt.Sprintf("radius md %.1f  full %.0f", set.Radius.MD, set.Radius.Full),
			},
		},
	}
}

// render draws the panels in n columns across width cells.
func (p *panels) render(n, width int) string {
	sheet := styles.ScaleSheet(p.theme.Sheet(), p.reader.Scale)
	box := styles.Lipgloss(sheet["panel"])
	title := styles.Lipgloss(sheet["title"])

	inner := 0
	if width > 0 {
		// lipgloss widths include padding but not borders or margins.
		inner = width/n - box.GetHorizontalBorderSize() - box.GetHorizontalMargins()
		if inner < 1 {
			inner = 1
		}
	}

	var blocks []string
	for _, pn := range p.contents() {
		b := box
		if inner > 0 {
			b = b.Width(inner)
		}
		body := append([]string{title.Render(pn.title)}, pn.lines...)
		blocks = append(blocks, b.Render(lipgloss.JoinVertical(lipgloss.Left, body...)))
	}

	var rows []string
	for start := 0; start < len(blocks); start += n {
		end := min(start+n, len(blocks))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, blocks[start:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// columns is one body layout. The switching model holds one per class.
type columns struct {
	n      int
	width  int
	panels *panels
}

func (c columns) Init() tea.Cmd { return nil }

func (c columns) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		c.width = size.Width
	}
	return c, nil
}

func (c columns) View() string {
	return c.panels.render(c.n, c.width)
}

func (m Model) render() string {
	st := m.panels.theme.Styles()
	snap := m.reader.Snapshot()

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		st.Accent.Render("responsive"),
		" ",
		st.ClassBadge(snap.Class()).Render(strings.ToUpper(snap.Class().String())),
		" ",
		st.MutedText.Render(fmt.Sprintf("%.0fx%.0f %s  x%.2f  theme %s",
			snap.ViewportWidth, snap.ViewportHeight, snap.Orientation,
			snap.ScaleFactor, m.panels.theme.Name)),
	)

	footer := m.help.View(m.keys)
	if m.status != "" {
		footer = lipgloss.JoinVertical(lipgloss.Left, st.Text.Render(m.status), footer)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		st.Header.Render(header),
		m.body.View(),
		st.Footer.Render(footer),
		st.MutedText.Render("layout: "+layout.Switch(snap, layoutNames)),
	)
}

var layoutNames = breakpoint.Of("one column").
	WithMedium("two columns").
	WithLarge("three columns")
