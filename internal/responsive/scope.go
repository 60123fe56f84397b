package responsive

import (
	"context"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/five82/responsive/internal/broadcast"
	"github.com/five82/responsive/internal/scaling"
	"github.com/five82/responsive/internal/viewport"
)

// Scope configures the store once and shares one recomputed snapshot with
// every reader created under it. It holds exactly one viewport subscription
// and one config subscription regardless of how many readers it serves.
type Scope struct {
	env Env

	mu      sync.Mutex
	applied *scaling.Overrides
	dims    viewport.Dimensions

	snap    atomic.Pointer[Snapshot]
	readers *broadcast.Registry[Snapshot]

	stopViewport func()
	stopConfig   func()
	closeOnce    sync.Once
}

// NewScope applies o to env's store and starts tracking the viewport.
// Call Close to release the subscriptions.
func NewScope(env Env, o scaling.Overrides) *Scope {
	env = env.withDefaults()
	s := &Scope{
		env:     env,
		readers: broadcast.New[Snapshot]("scope", env.Logger),
	}
	s.Apply(o)

	s.mu.Lock()
	s.dims = env.Viewport.Get()
	s.mu.Unlock()
	s.refresh()

	s.stopViewport = env.Viewport.Subscribe(s.onResize)
	s.stopConfig = env.Store.Watch(func(scaling.Config) { s.refresh() })
	return s
}

// Apply reconfigures the store with o unless o has the same values as the
// last applied overrides. It reports whether the store was reconfigured.
func (s *Scope) Apply(o scaling.Overrides) bool {
	s.mu.Lock()
	if s.applied != nil && s.applied.Equal(o) {
		s.mu.Unlock()
		return false
	}
	clone := o.Clone()
	s.applied = &clone
	s.mu.Unlock()

	s.env.Logger.Debug("scope applying overrides", overrideFields(clone)...)
	s.env.Store.Configure(clone)
	return true
}

func (s *Scope) onResize(d viewport.Dimensions) {
	s.mu.Lock()
	s.dims = d
	s.mu.Unlock()
	s.refresh()
}

// refresh recomputes from the store's current config. Config deliveries can
// arrive out of order when Configure is called from a watcher or from
// another goroutine.
func (s *Scope) refresh() {
	s.mu.Lock()
	snap := Compute(s.env.Store.Config(), s.dims)
	s.snap.Store(&snap)
	s.mu.Unlock()

	s.readers.Publish(snap)
}

// Snapshot returns the most recently published snapshot.
func (s *Scope) Snapshot() Snapshot {
	return *s.snap.Load()
}

// Subscribe registers fn for every republished snapshot.
func (s *Scope) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	return s.readers.Add(fn)
}

// Close releases the scope's viewport and config subscriptions. Readers keep
// the last snapshot.
func (s *Scope) Close() {
	s.closeOnce.Do(func() {
		s.stopViewport()
		s.stopConfig()
	})
}

type scopeKey struct{}

// WithScope returns a context that makes s the nearest enclosing scope.
func WithScope(ctx context.Context, s *Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, s)
}

// ScopeFrom returns the nearest enclosing scope, if any.
func ScopeFrom(ctx context.Context) (*Scope, bool) {
	if ctx == nil {
		return nil, false
	}
	s, ok := ctx.Value(scopeKey{}).(*Scope)
	return s, ok && s != nil
}

func overrideFields(o scaling.Overrides) []zap.Field {
	var fields []zap.Field
	if o.BaseWidth != nil {
		fields = append(fields, zap.Float64("base_width", *o.BaseWidth))
	}
	if bp := o.Breakpoints; bp != nil {
		if bp.Medium != nil {
			fields = append(fields, zap.Float64("medium", *bp.Medium))
		}
		if bp.Large != nil {
			fields = append(fields, zap.Float64("large", *bp.Large))
		}
	}
	return fields
}
