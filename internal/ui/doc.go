// Package ui implements the responsive demo as a Bubble Tea program.
//
// # Layout
//
// The screen has a header, a body and a footer. The header shows the device
// class badge, the viewport size and the scale factor. The body is a
// layout.Model holding one, two and three column variants of the same
// panels; it switches when a resize or a config change moves the viewport
// into another class.
//
// Panel styles are authored as a styles.Sheet at the demo baseline
// (Theme.Sheet), scaled with the reader's current factor and converted to
// lipgloss with styles.Lipgloss on every render.
//
// # Updates
//
// The model never polls. The caller subscribes to the reader and sends
// SnapshotMsg into the program whenever the snapshot changes, and
// tea.WindowSizeMsg arrives from Bubble Tea itself.
//
// # Key Bindings
//
//   - +/-: Raise or lower the base width by 10 cells
//   - r: Reset scaling to the demo defaults
//   - s: Save the current scaling config
//   - c: Copy the current scaling config to the clipboard as TOML
//   - T: Cycle theme
//   - ?: Toggle full help
//   - q or Ctrl+C: Quit
//
// Theme and help visibility are saved to the prefs file when they change.
package ui
