// Package host connects the viewport tracker to a real terminal.
//
// # Overview
//
// Two adapters feed viewport.Tracker:
//
//   - Terminal: a viewport.Host that queries the terminal size with
//     golang.org/x/term and polls for changes in a background goroutine
//   - Feed: a bubbletea model wrapper that forwards every tea.WindowSizeMsg
//     to the tracker before the wrapped model sees it
//
// Inside a bubbletea program use Feed: the runtime already delivers resize
// messages, and Feed guarantees the tracker (and every reader subscribed to
// it) is updated before the model's Update runs. Use Terminal for programs
// that draw without bubbletea.
//
// # Polling Behavior
//
// Terminal.Watch polls at a fixed interval (default: 250ms) and reports a
// size only when it differs from the last one reported. When the size query
// fails the interval backs off exponentially, capped at maxBackoff, and resets
// on the next successful query. Failures are logged, never returned.
//
// # Usage Example
//
//	term := host.NewTerminal(os.Stdout, host.WithLogger(logger))
//	if err := viewport.Default.Attach(ctx, term); err != nil {
//		return err
//	}
//
//	p := tea.NewProgram(host.Feed(viewport.Default, root))
package host
