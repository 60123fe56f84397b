package responsive

import (
	"context"
	"sync"

	"github.com/five82/responsive/internal/breakpoint"
	"github.com/five82/responsive/internal/broadcast"
	"github.com/five82/responsive/internal/scaling"
	"github.com/five82/responsive/internal/viewport"
)

// Mode records where a Reader gets its snapshots from.
type Mode int

const (
	// Unscoped readers subscribe to the tracker and store themselves.
	Unscoped Mode = iota
	// Scoped readers share the enclosing Scope's snapshot.
	Scoped
)

func (m Mode) String() string {
	if m == Scoped {
		return "scoped"
	}
	return "unscoped"
}

// Reader is the consumer-facing view of responsive state. Values are the
// same in both modes; only the number of underlying subscriptions differs.
type Reader struct {
	mode Mode
	src  source

	mu     sync.Mutex
	tokens []func()
	closed bool
	detach func()
}

// NewReader binds to the nearest Scope in ctx, or subscribes independently
// to env when there is none.
func NewReader(ctx context.Context, env Env) *Reader {
	if scope, ok := ScopeFrom(ctx); ok {
		return &Reader{mode: Scoped, src: scope}
	}
	ind := newIndependent(env.withDefaults())
	return &Reader{mode: Unscoped, src: ind, detach: ind.close}
}

// Use is NewReader against DefaultEnv.
func Use(ctx context.Context) *Reader {
	return NewReader(ctx, DefaultEnv())
}

// Mode reports whether r is scoped.
func (r *Reader) Mode() Mode { return r.mode }

// Snapshot returns the current responsive state.
func (r *Reader) Snapshot() Snapshot { return r.src.Snapshot() }

// Class returns the current device class.
func (r *Reader) Class() breakpoint.Class { return r.Snapshot().Class() }

// Orientation returns the current orientation.
func (r *Reader) Orientation() viewport.Orientation { return r.Snapshot().Orientation }

// ScaleFactor returns the current scale factor.
func (r *Reader) ScaleFactor() float64 { return r.Snapshot().ScaleFactor }

// Scale scales a baseline value by the current factor.
func (r *Reader) Scale(v float64) float64 { return r.Snapshot().Scale(v) }

// Subscribe registers fn for snapshot changes. Subscriptions still held when
// the reader closes are released with it.
func (r *Reader) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	token := r.src.Subscribe(fn)
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		token()
		return func() {}
	}
	r.tokens = append(r.tokens, token)
	return token
}

// Close releases every subscription the reader owns. It never closes an
// enclosing Scope.
func (r *Reader) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	tokens := r.tokens
	r.tokens = nil
	r.mu.Unlock()

	for _, token := range tokens {
		token()
	}
	if r.detach != nil {
		r.detach()
	}
}

// Value resolves v for r's current device class.
func Value[T any](r *Reader, v breakpoint.Variants[T]) T {
	return breakpoint.Resolve(v, r.Class())
}

// independent is the unscoped source: its own tracker and store
// subscriptions, and its own cached dimensions.
type independent struct {
	env Env

	mu   sync.RWMutex
	dims viewport.Dimensions

	listeners    *broadcast.Registry[Snapshot]
	stopViewport func()
	stopConfig   func()
	once         sync.Once
}

func newIndependent(env Env) *independent {
	ind := &independent{
		env:       env,
		dims:      env.Viewport.Get(),
		listeners: broadcast.New[Snapshot]("reader", env.Logger),
	}
	ind.stopViewport = env.Viewport.Subscribe(ind.onResize)
	ind.stopConfig = env.Store.Watch(ind.onConfig)
	return ind
}

func (i *independent) onResize(d viewport.Dimensions) {
	i.mu.Lock()
	i.dims = d
	i.mu.Unlock()
	i.listeners.Publish(i.Snapshot())
}

// onConfig reads the store instead of the delivered config, as
// Scope.refresh does.
func (i *independent) onConfig(scaling.Config) {
	i.listeners.Publish(i.Snapshot())
}

func (i *independent) Snapshot() Snapshot {
	i.mu.RLock()
	d := i.dims
	i.mu.RUnlock()
	return Compute(i.env.Store.Config(), d)
}

func (i *independent) Subscribe(fn func(Snapshot)) func() {
	return i.listeners.Add(fn)
}

func (i *independent) close() {
	i.once.Do(func() {
		i.stopViewport()
		i.stopConfig()
	})
}
