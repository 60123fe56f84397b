package host

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/responsive/internal/viewport"
)

type feed struct {
	tracker *viewport.Tracker
	inner   tea.Model
}

// Feed wraps inner so each tea.WindowSizeMsg resizes tracker first.
func Feed(tracker *viewport.Tracker, inner tea.Model) tea.Model {
	return feed{tracker: tracker, inner: inner}
}

func (f feed) Init() tea.Cmd {
	return f.inner.Init()
}

func (f feed) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		f.tracker.Resize(viewport.Dimensions{Width: float64(ws.Width), Height: float64(ws.Height)})
	}
	next, cmd := f.inner.Update(msg)
	f.inner = next
	return f, cmd
}

func (f feed) View() string {
	return f.inner.View()
}
