package scaling

import "github.com/five82/responsive/internal/viewport"

// Default is the process-lifetime store used outside any responsive scope.
var Default = NewStore()

// Factor is the ratio of viewport width to the design baseline.
func Factor(viewportWidth, baseWidth float64) float64 {
	return viewportWidth / baseWidth
}

// Scale multiplies v by factor. Zero maps to exactly 0, never -0.
func Scale(v, factor float64) float64 {
	if v == 0 {
		return 0
	}
	return v * factor
}

// Scaler computes scaled values from a store and a viewport tracker. Nil
// fields fall back to Default and viewport.Default. Nothing is cached: every
// call reads the latest config and dimensions.
type Scaler struct {
	Store    *Store
	Viewport *viewport.Tracker
}

func (s Scaler) store() *Store {
	if s.Store == nil {
		return Default
	}
	return s.Store
}

func (s Scaler) tracker() *viewport.Tracker {
	if s.Viewport == nil {
		return viewport.Default
	}
	return s.Viewport
}

// ScaleFactor returns viewport width over base width.
func (s Scaler) ScaleFactor() float64 {
	return Factor(s.tracker().Get().Width, s.store().Config().BaseWidth)
}

// Scale scales a design value authored at the baseline width.
func (s Scaler) Scale(v float64) float64 {
	if v == 0 {
		return 0
	}
	return Scale(v, s.ScaleFactor())
}

// Configure merges o into Default.
func Configure(o Overrides) {
	Default.Configure(o)
}

// Current returns the Default configuration.
func Current() Config {
	return Default.Config()
}

// ScaleFactor returns the factor for Default and viewport.Default.
func ScaleFactor() float64 {
	return Scaler{}.ScaleFactor()
}

// S scales v against Default and viewport.Default.
func S(v float64) float64 {
	return Scaler{}.Scale(v)
}
