package responsive

import (
	"go.uber.org/zap"

	"github.com/five82/responsive/internal/breakpoint"
	"github.com/five82/responsive/internal/scaling"
	"github.com/five82/responsive/internal/viewport"
)

// Snapshot is the derived responsive state at one point in time.
type Snapshot struct {
	BaseWidth      float64
	Breakpoints    scaling.Breakpoints
	ViewportWidth  float64
	ViewportHeight float64
	ScaleFactor    float64
	Orientation    viewport.Orientation
}

// Compute derives a snapshot from cfg and d.
func Compute(cfg scaling.Config, d viewport.Dimensions) Snapshot {
	return Snapshot{
		BaseWidth:      cfg.BaseWidth,
		Breakpoints:    cfg.Breakpoints,
		ViewportWidth:  d.Width,
		ViewportHeight: d.Height,
		ScaleFactor:    scaling.Factor(d.Width, cfg.BaseWidth),
		Orientation:    viewport.Orient(d),
	}
}

// Class classifies the snapshot's viewport width.
func (s Snapshot) Class() breakpoint.Class {
	return breakpoint.Classify(s.ViewportWidth, s.Breakpoints)
}

// Scale scales a baseline value by the snapshot's factor.
func (s Snapshot) Scale(v float64) float64 {
	return scaling.Scale(v, s.ScaleFactor)
}

// Dimensions returns the viewport size the snapshot was computed from.
func (s Snapshot) Dimensions() viewport.Dimensions {
	return viewport.Dimensions{Width: s.ViewportWidth, Height: s.ViewportHeight}
}

// Env is the store and tracker a scope or reader reads from.
type Env struct {
	Store    *scaling.Store
	Viewport *viewport.Tracker
	Logger   *zap.Logger
}

// DefaultEnv reads the process-wide scaling.Default and viewport.Default.
func DefaultEnv() Env {
	return Env{Store: scaling.Default, Viewport: viewport.Default}
}

func (e Env) withDefaults() Env {
	if e.Store == nil {
		e.Store = scaling.Default
	}
	if e.Viewport == nil {
		e.Viewport = viewport.Default
	}
	if e.Logger == nil {
		e.Logger = zap.NewNop()
	}
	return e
}

// source is what a Reader delegates to in either mode.
type source interface {
	Snapshot() Snapshot
	Subscribe(fn func(Snapshot)) (unsubscribe func())
}
