// Package viewport caches the active viewport size and distributes change
// notifications to subscribers.
package viewport

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/five82/responsive/internal/broadcast"
)

// Dimensions is a viewport size in host units (terminal cells for the demo).
type Dimensions struct {
	Width  float64
	Height float64
}

// Orientation of the viewport.
type Orientation int

const (
	Portrait Orientation = iota
	Landscape
)

func (o Orientation) String() string {
	if o == Landscape {
		return "landscape"
	}
	return "portrait"
}

// Orient derives orientation from d. Square viewports are portrait.
func Orient(d Dimensions) Orientation {
	if d.Width > d.Height {
		return Landscape
	}
	return Portrait
}

// DefaultDimensions seeds Default until a host reports a real size. Its width
// matches the default scaling baseline, so the scale factor starts at 1.
var DefaultDimensions = Dimensions{Width: 375, Height: 667}

// Default is the process-wide tracker read by code outside any scope.
var Default = NewTracker(DefaultDimensions)

// Host is the environment that owns the real viewport.
type Host interface {
	// Current returns the size right now.
	Current() (Dimensions, error)
	// Watch reports every size change to fn until ctx is cancelled. It must
	// return immediately.
	Watch(ctx context.Context, fn func(Dimensions))
}

// Tracker holds the last known dimensions and notifies listeners on change.
type Tracker struct {
	mu   sync.RWMutex
	dims Dimensions

	listeners *broadcast.Registry[Dimensions]
}

// Option configures a Tracker.
type Option func(*trackerOptions)

type trackerOptions struct {
	logger *zap.Logger
}

// WithLogger routes recovered listener panics to logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *trackerOptions) { o.logger = logger }
}

// NewTracker returns a tracker seeded with initial.
func NewTracker(initial Dimensions, opts ...Option) *Tracker {
	var o trackerOptions
	for _, opt := range opts {
		opt(&o)
	}
	return &Tracker{
		dims:      initial,
		listeners: broadcast.New[Dimensions]("viewport", o.logger),
	}
}

// Get returns the cached dimensions.
func (t *Tracker) Get() Dimensions {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.dims
}

// Subscribe registers fn for future changes. The returned function removes it
// and is safe to call more than once.
func (t *Tracker) Subscribe(fn func(Dimensions)) (unsubscribe func()) {
	return t.listeners.Add(fn)
}

// Listeners reports the number of active subscriptions.
func (t *Tracker) Listeners() int {
	return t.listeners.Len()
}

// Resize records d and synchronously notifies every listener registered at
// the time of the call, in registration order.
func (t *Tracker) Resize(d Dimensions) {
	t.mu.Lock()
	t.dims = d
	t.mu.Unlock()

	t.listeners.Publish(d)
}

// Attach seeds the cache from host and forwards host changes until ctx ends.
func (t *Tracker) Attach(ctx context.Context, host Host) error {
	d, err := host.Current()
	if err != nil {
		return fmt.Errorf("query viewport: %w", err)
	}
	t.Resize(d)
	host.Watch(ctx, t.Resize)
	return nil
}
