// Package layout selects whole components or subtrees by device class.
package layout

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/responsive/internal/breakpoint"
)

// ClassReader reports the current device class. *responsive.Reader and
// responsive.Snapshot both satisfy it.
type ClassReader interface {
	Class() breakpoint.Class
}

// Component renders props to a string.
type Component[P any] func(P) string

// ResponsiveComponent returns a component that picks its implementation from
// v each time it renders.
func ResponsiveComponent[P any](r ClassReader, v breakpoint.Variants[Component[P]]) Component[P] {
	return func(props P) string {
		return breakpoint.Resolve(v, r.Class())(props)
	}
}

// Switch returns the prerendered subtree for the current class.
func Switch(r ClassReader, v breakpoint.Variants[string]) string {
	return breakpoint.Resolve(v, r.Class())
}

// SwitchFunc renders only the subtree for the current class.
func SwitchFunc(r ClassReader, v breakpoint.Variants[func() string]) string {
	return breakpoint.Resolve(v, r.Class())()
}

// Model is a bubbletea model that delegates to one of up to three child
// models. Window size messages reach every child so inactive ones stay
// sized; other messages reach only the active child.
type Model struct {
	reader   ClassReader
	variants breakpoint.Variants[tea.Model]
	active   breakpoint.Class
}

// NewModel returns a switching model. The compact child is required.
func NewModel(r ClassReader, v breakpoint.Variants[tea.Model]) Model {
	return Model{
		reader:   r,
		variants: v,
		active:   v.Source(r.Class()),
	}
}

// Active returns the class whose child is currently shown.
func (m Model) Active() breakpoint.Class {
	return m.active
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	for _, c := range m.present() {
		cmds = append(cmds, m.child(c).Init())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.WindowSizeMsg); ok {
		var cmds []tea.Cmd
		for _, c := range m.present() {
			next, cmd := m.child(c).Update(msg)
			m.setChild(c, next)
			cmds = append(cmds, cmd)
		}
		m.active = m.variants.Source(m.reader.Class())
		return m, tea.Batch(cmds...)
	}

	next, cmd := m.child(m.active).Update(msg)
	m.setChild(m.active, next)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	return m.child(m.active).View()
}

func (m Model) present() []breakpoint.Class {
	out := []breakpoint.Class{breakpoint.Compact}
	if m.variants.Medium != nil {
		out = append(out, breakpoint.Medium)
	}
	if m.variants.Large != nil {
		out = append(out, breakpoint.Large)
	}
	return out
}

func (m Model) child(c breakpoint.Class) tea.Model {
	switch c {
	case breakpoint.Large:
		return *m.variants.Large
	case breakpoint.Medium:
		return *m.variants.Medium
	}
	return m.variants.Compact
}

// setChild stores an updated child. It copies the variant set so earlier
// Model values are not affected.
func (m *Model) setChild(c breakpoint.Class, child tea.Model) {
	switch c {
	case breakpoint.Large:
		m.variants = m.variants.WithLarge(child)
	case breakpoint.Medium:
		m.variants = m.variants.WithMedium(child)
	default:
		m.variants.Compact = child
	}
}
