package host

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/five82/responsive/internal/viewport"
)

const (
	defaultPollInterval = 250 * time.Millisecond
	maxBackoff          = 5 * time.Second
)

// SizeFunc returns the width and height of a terminal in cells.
type SizeFunc func() (width, height int, err error)

// Terminal reports the size of a terminal file descriptor.
type Terminal struct {
	size     SizeFunc
	interval time.Duration
	logger   *zap.Logger
}

// Option configures a Terminal.
type Option func(*Terminal)

// WithInterval sets the polling interval.
func WithInterval(d time.Duration) Option {
	return func(t *Terminal) {
		if d > 0 {
			t.interval = d
		}
	}
}

// WithLogger sets the logger for size query failures.
func WithLogger(logger *zap.Logger) Option {
	return func(t *Terminal) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithSizeFunc replaces the size query.
func WithSizeFunc(fn SizeFunc) Option {
	return func(t *Terminal) { t.size = fn }
}

// NewTerminal returns a host for the terminal attached to f.
func NewTerminal(f *os.File, opts ...Option) *Terminal {
	fd := int(f.Fd())
	t := &Terminal{
		size:     func() (int, int, error) { return term.GetSize(fd) },
		interval: defaultPollInterval,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Current implements viewport.Host.
func (t *Terminal) Current() (viewport.Dimensions, error) {
	w, h, err := t.size()
	if err != nil {
		return viewport.Dimensions{}, fmt.Errorf("get terminal size: %w", err)
	}
	return viewport.Dimensions{Width: float64(w), Height: float64(h)}, nil
}

// Watch implements viewport.Host. It launches the polling goroutine and
// returns immediately.
func (t *Terminal) Watch(ctx context.Context, fn func(viewport.Dimensions)) {
	last, err := t.Current()
	failures := 0
	if err != nil {
		failures = 1
	}

	go func() {
		timer := time.NewTimer(calculateBackoff(failures, t.interval))
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-timer.C:
			}

			d, err := t.Current()
			if err != nil {
				failures++
				t.logger.Warn("terminal size poll failed",
					zap.Error(err),
					zap.Int("consecutive_failures", failures))
			} else {
				failures = 0
				if d != last {
					last = d
					fn(d)
				}
			}
			timer.Reset(calculateBackoff(failures, t.interval))
		}
	}()
}

// calculateBackoff doubles base for every consecutive failure, capped at
// maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	d := base
	for i := 0; i < failures; i++ {
		d *= 2
		if d >= maxBackoff {
			return maxBackoff
		}
	}
	return d
}
