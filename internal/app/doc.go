// Package app is the composition root of the responsive demo.
//
// # Overview
//
// Run wires configuration, logging, the viewport tracker, a responsive
// scope and the UI together, then blocks until the program exits.
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()        Read log settings
//	       ├─────> logging.New()        File logger (or no-op)
//	       ├─────> viewport.NewTracker  Seeded from the terminal size
//	       ├─────> responsive.NewScope  Demo defaults, then the config file
//	       ├─────> config.NewWatcher    Live reload into the store
//	       └─────> tea.Program.Run()    Blocks until quit
//
// # Viewport Updates
//
// Bubble Tea reports every resize as a tea.WindowSizeMsg; host.Feed turns
// those into tracker resizes before the UI sees them. With PollEvery set,
// a host.Terminal poller also checks the size on an interval, which covers
// terminals that do not deliver SIGWINCH.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Config file unreadable or invalid TOML
//   - Log file cannot be opened
//   - Bubble Tea program failure
//
// Recoverable errors (logged, the demo keeps running):
//   - Config directory missing, so live reload is off
//   - Terminal size queries failing
//   - Config reloads that fail to parse
//
// Cancelling the context ends the program cleanly.
package app
