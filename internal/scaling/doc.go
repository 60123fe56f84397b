// Package scaling holds the design baseline configuration and the scale
// engine that maps baseline-authored values onto the current viewport.
//
// # Overview
//
// Designs are authored against a baseline width (375 by default). At runtime
// the scale factor is
//
//	factor = viewportWidth / baseWidth
//
// and every scalable value v becomes v * factor. Zero is special-cased so
// that Scale(0, f) is exactly 0 even when f is negative.
//
// # Configuration Store
//
// Store keeps the Config behind a sync.RWMutex:
//
//   - Config(): copy of the current value (concurrent reads allowed)
//   - Configure(): merge a partial Overrides; nil fields keep old values
//   - Watch(): notification after any Configure that changed the value
//
// Default is the process-lifetime store. Code that runs inside a
// responsive.Scope reads the scope's store instead, which is usually Default.
//
// # Validation
//
// The store accepts any values, including a non-positive base width or
// inverted thresholds. Config.Validate reports those cases so loaders can warn.
//
// # Usage Example
//
//	scaling.Configure(scaling.Overrides{BaseWidth: scaling.Float(80)})
//
//	s := scaling.Scaler{Store: store, Viewport: tracker}
//	padding := s.Scale(16)
//	factor := s.ScaleFactor()
package scaling
