// Package responsive propagates viewport and configuration changes to
// consumers as immutable Snapshots.
//
// # Overview
//
// A Snapshot bundles everything a consumer derives from the current state:
// base width, breakpoints, viewport size, scale factor and orientation, plus
// the device class via Snapshot.Class. Snapshots are values; nothing aliases
// the store or tracker.
//
// # Scoped and Unscoped Readers
//
// Reader has exactly two states:
//
//	Scoped:   ctx carries a *Scope (see WithScope)
//	          → reads the scope's shared snapshot
//	          → no subscriptions of its own
//
//	Unscoped: no scope in ctx
//	          → subscribes to the tracker and store directly
//	          → recomputes its own snapshot on every notification
//
// Both states produce identical values for the same store and viewport. The
// unscoped state costs one tracker and one store subscription per reader;
// wrap a subtree in a Scope when many readers are alive at once.
//
// # Scope Lifecycle
//
//	scope := responsive.NewScope(env, overrides)  // applies overrides once
//	ctx = responsive.WithScope(ctx, scope)
//	defer scope.Close()                           // releases its subscriptions
//
// Scope.Apply with override values equal to the last applied ones does not
// reconfigure the store. Equality is by value, so rebuilding an identical
// Overrides literal on every render is fine.
//
// # Usage Example
//
//	r := responsive.NewReader(ctx, responsive.DefaultEnv())
//	defer r.Close()
//
//	columns := responsive.Value(r, breakpoint.Of(1).WithMedium(2).WithLarge(3))
//	padding := r.Scale(16)
//	r.Subscribe(func(s responsive.Snapshot) { redraw(s) })
package responsive
