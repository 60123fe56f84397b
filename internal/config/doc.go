// Package config loads, saves and live-reloads the scaling configuration
// file.
//
// # Overview
//
// The file supplies overrides for the scaling store: a design baseline width
// and breakpoint thresholds, plus the demo's log settings. Only keys present
// in the file become overrides, so a file that sets base_width alone keeps
// the default breakpoints.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/responsive/config.toml (default)
//  3. If the config file doesn't exist, return an empty Config (no overrides)
//
// # TOML Format
//
// Example config.toml for a terminal designed at 80 columns:
//
//	base_width = 80
//	log_file = "~/.local/state/responsive/demo.log"
//	log_level = "debug"
//
//	[breakpoints]
//	medium = 100
//	large = 140
//
// Integers and floats are both accepted for numeric keys. A path ending in
// .yaml or .yml is read and written as YAML with the same keys.
//
// # Live Reload
//
// Watcher watches the config file's directory with fsnotify and re-applies
// the file to a scaling.Store after writes, creates and renames. Bursts of
// events (editors often write several times) are coalesced by a short
// debounce. Reload failures are logged and the previous configuration stays
// in effect.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which yields no overrides)
//   - TOML parsing errors and non-numeric threshold values
//
// Values that parse but make no sense (non-positive base width, medium not
// below large) are accepted. Apply logs them as a warning.
//
// # Usage Example
//
//	if err := config.Apply("", scaling.Default, logger); err != nil {
//		return fmt.Errorf("load config: %w", err)
//	}
//
//	w, err := config.NewWatcher("", scaling.Default, logger)
//	if err != nil {
//		return err
//	}
//	go w.Run(ctx)
package config
