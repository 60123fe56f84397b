// Package broadcast provides the ordered listener registry shared by the
// viewport tracker, the scaling config store and responsive scopes.
//
// # Dispatch Semantics
//
// Publish delivers a value to every listener that was registered when the
// publish began, synchronously and in registration order:
//
//   - Listeners added during a publish are not called for that publish
//   - Listeners removed during a publish are skipped if not yet reached
//   - A panicking listener is recovered and logged; the rest still run
//
// The listener slice is copied under the lock and invoked outside it, so a
// listener may freely add or remove listeners (including itself) or publish
// again without deadlocking.
//
// # Removal Tokens
//
// Add returns a remove function owned by the subscriber. Calling it more than
// once has no additional effect.
//
// # Usage Example
//
//	reg := broadcast.New[viewport.Dimensions]("viewport", logger)
//	remove := reg.Add(func(d viewport.Dimensions) {
//		fmt.Println("resized to", d.Width, d.Height)
//	})
//	defer remove()
//	reg.Publish(viewport.Dimensions{Width: 120, Height: 40})
package broadcast
