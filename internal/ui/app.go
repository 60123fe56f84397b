package ui

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/responsive/internal/breakpoint"
	"github.com/five82/responsive/internal/config"
	"github.com/five82/responsive/internal/layout"
	"github.com/five82/responsive/internal/prefs"
	"github.com/five82/responsive/internal/responsive"
	"github.com/five82/responsive/internal/scaling"
)

const baseWidthStep = 10

// Options configures the UI.
type Options struct {
	Reader     *responsive.Reader
	Store      *scaling.Store
	Defaults   scaling.Overrides // restored by the reset key
	ConfigPath string
	PrefsPath  string
	Prefs      prefs.Prefs
	Logger     *zap.Logger
}

// SnapshotMsg carries a republished snapshot into the program.
type SnapshotMsg responsive.Snapshot

type savedMsg struct {
	path string
	err  error
}

// Model is the root application state for Bubble Tea.
type Model struct {
	reader     *responsive.Reader
	store      *scaling.Store
	defaults   scaling.Overrides
	configPath string
	prefsPath  string
	logger     *zap.Logger

	panels *panels
	body   layout.Model

	copyText func(string) error

	keys     keyMap
	help     help.Model
	showHelp bool
	ready    bool
	status   string
}

// New creates the root model.
func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	h := help.New()
	h.ShowAll = opts.Prefs.ShowHelp

	p := &panels{reader: opts.Reader, theme: GetTheme(opts.Prefs.Theme)}
	body := layout.NewModel(opts.Reader, breakpoint.Of[tea.Model](columns{n: 1, panels: p}).
		WithMedium(columns{n: 2, panels: p}).
		WithLarge(columns{n: 3, panels: p}))

	return Model{
		reader:     opts.Reader,
		store:      opts.Store,
		defaults:   opts.Defaults.Clone(),
		configPath: opts.ConfigPath,
		prefsPath:  opts.PrefsPath,
		logger:     logger,
		panels:     p,
		body:       body,
		copyText:   clipboard.WriteAll,
		keys:       DefaultKeyMap(),
		help:       h,
		showHelp:   opts.Prefs.ShowHelp,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.body.Init()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.ready = true
		m.help.Width = msg.Width
		next, cmd := m.body.Update(msg)
		m.body = next.(layout.Model)
		m.logger.Debug("window resized",
			zap.Int("width", msg.Width),
			zap.Int("height", msg.Height),
			zap.Stringer("class", m.reader.Class()))
		return m, cmd

	case SnapshotMsg:
		// Messages may arrive out of order; the reader always holds the
		// latest snapshot. Re-evaluate the layout in case a config change
		// crossed a breakpoint.
		snap := m.reader.Snapshot()
		size := tea.WindowSizeMsg{Width: int(snap.ViewportWidth), Height: int(snap.ViewportHeight)}
		next, cmd := m.body.Update(size)
		m.body = next.(layout.Model)
		return m, cmd

	case savedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("save failed: %v", msg.err)
			m.logger.Warn("save config failed", zap.Error(msg.err))
		} else {
			m.status = "saved " + msg.path
		}
		return m, nil
	}

	next, cmd := m.body.Update(msg)
	m.body = next.(layout.Model)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, m.savePrefs()

	case key.Matches(msg, m.keys.CycleTheme):
		m.panels.theme = GetTheme(NextTheme(m.panels.theme.Name))
		m.status = "theme " + m.panels.theme.Name
		return m, m.savePrefs()

	case key.Matches(msg, m.keys.Wider):
		m.setBaseWidth(m.store.Config().BaseWidth + baseWidthStep)
		return m, nil

	case key.Matches(msg, m.keys.Narrower):
		m.setBaseWidth(max(baseWidthStep, m.store.Config().BaseWidth-baseWidthStep))
		return m, nil

	case key.Matches(msg, m.keys.Reset):
		m.store.Reset()
		m.store.Configure(m.defaults)
		m.status = "config reset"
		return m, nil

	case key.Matches(msg, m.keys.Save):
		return m, saveCmd(m.configPath, m.store.Config())

	case key.Matches(msg, m.keys.Copy):
		m.status = m.copyConfig()
		return m, nil
	}

	next, cmd := m.body.Update(msg)
	m.body = next.(layout.Model)
	return m, cmd
}

func (m *Model) setBaseWidth(w float64) {
	m.store.Configure(scaling.Overrides{BaseWidth: scaling.Float(w)})
	m.status = fmt.Sprintf("base width %.0f", w)
}

// savePrefs persists UI preferences in the background. Failures are logged
// only.
func (m Model) savePrefs() tea.Cmd {
	p := prefs.Prefs{Theme: m.panels.theme.Name, ShowHelp: m.showHelp}
	path, logger := m.prefsPath, m.logger
	return func() tea.Msg {
		if err := prefs.Save(path, p); err != nil {
			logger.Warn("save prefs failed", zap.Error(err))
		}
		return nil
	}
}

func (m Model) copyConfig() string {
	data, err := config.Encode(m.store.Config(), config.TOML)
	if err == nil {
		err = m.copyText(string(data))
	}
	if err != nil {
		m.logger.Warn("copy config failed", zap.Error(err))
		return fmt.Sprintf("copy failed: %v", err)
	}
	return "config copied to clipboard"
}

func saveCmd(path string, cfg scaling.Config) tea.Cmd {
	return func() tea.Msg {
		resolved, err := config.ResolvePath(path)
		if err != nil {
			return savedMsg{err: err}
		}
		return savedMsg{path: resolved, err: config.Save(resolved, cfg)}
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	return m.render()
}
