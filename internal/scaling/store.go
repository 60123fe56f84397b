package scaling

import (
	"errors"
	"fmt"
	"sync"

	"github.com/five82/responsive/internal/broadcast"
)

const (
	DefaultBaseWidth        = 375
	DefaultMediumBreakpoint = 768
	DefaultLargeBreakpoint  = 1024
)

// ErrInvalid marks a configuration that will produce nonsensical output.
var ErrInvalid = errors.New("invalid scaling config")

// Breakpoints are inclusive lower bounds for the medium and large classes.
type Breakpoints struct {
	Medium float64
	Large  float64
}

// Config is the design baseline plus breakpoint thresholds.
type Config struct {
	BaseWidth   float64
	Breakpoints Breakpoints
}

// DefaultConfig returns the configuration every store starts from.
func DefaultConfig() Config {
	return Config{
		BaseWidth: DefaultBaseWidth,
		Breakpoints: Breakpoints{
			Medium: DefaultMediumBreakpoint,
			Large:  DefaultLargeBreakpoint,
		},
	}
}

// Validate reports misconfiguration. The store never calls it; callers that
// load config from outside decide what to do with the result.
func (c Config) Validate() error {
	var errs []error
	if c.BaseWidth <= 0 {
		errs = append(errs, fmt.Errorf("%w: base width %v must be positive", ErrInvalid, c.BaseWidth))
	}
	if c.Breakpoints.Medium >= c.Breakpoints.Large {
		errs = append(errs, fmt.Errorf("%w: medium breakpoint %v must be below large %v",
			ErrInvalid, c.Breakpoints.Medium, c.Breakpoints.Large))
	}
	return errors.Join(errs...)
}

// BreakpointOverrides is a partial Breakpoints. Nil fields keep their value.
type BreakpointOverrides struct {
	Medium *float64
	Large  *float64
}

// Overrides is a partial Config. Nil fields keep their value.
type Overrides struct {
	BaseWidth   *float64
	Breakpoints *BreakpointOverrides
}

// Float returns a pointer to v for building Overrides literals.
func Float(v float64) *float64 {
	return &v
}

// Merge returns c with every non-nil field of o applied.
func (o Overrides) Merge(c Config) Config {
	if o.BaseWidth != nil {
		c.BaseWidth = *o.BaseWidth
	}
	if bp := o.Breakpoints; bp != nil {
		if bp.Medium != nil {
			c.Breakpoints.Medium = *bp.Medium
		}
		if bp.Large != nil {
			c.Breakpoints.Large = *bp.Large
		}
	}
	return c
}

// Equal compares override values, not pointer identity.
func (o Overrides) Equal(other Overrides) bool {
	if !floatPtrEqual(o.BaseWidth, other.BaseWidth) {
		return false
	}
	a, b := o.Breakpoints, other.Breakpoints
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return floatPtrEqual(a.Medium, b.Medium) && floatPtrEqual(a.Large, b.Large)
}

func floatPtrEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// Store holds a Config that may be reconfigured while others read it. The
// zero value starts from DefaultConfig.
type Store struct {
	mu  sync.RWMutex
	cfg *Config

	watchers broadcast.Registry[Config]
}

// NewStore returns a store holding DefaultConfig.
func NewStore() *Store {
	cfg := DefaultConfig()
	return &Store{cfg: &cfg}
}

// Config returns a copy of the current configuration.
func (s *Store) Config() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current()
}

func (s *Store) current() Config {
	if s.cfg == nil {
		return DefaultConfig()
	}
	return *s.cfg
}

// Configure merges o into the current configuration. Watchers are notified
// only when the merge changed something.
func (s *Store) Configure(o Overrides) {
	s.mu.Lock()
	prev := s.current()
	next := o.Merge(prev)
	s.cfg = &next
	s.mu.Unlock()

	if next != prev {
		s.watchers.Publish(next)
	}
}

// Reset restores DefaultConfig.
func (s *Store) Reset() {
	def := DefaultConfig()
	s.Configure(Overrides{
		BaseWidth: &def.BaseWidth,
		Breakpoints: &BreakpointOverrides{
			Medium: &def.Breakpoints.Medium,
			Large:  &def.Breakpoints.Large,
		},
	})
}

// Watch registers fn for configuration changes and returns its removal token.
func (s *Store) Watch(fn func(Config)) (cancel func()) {
	return s.watchers.Add(fn)
}

// Clone deep-copies o so later writes through the caller's pointers do not
// affect the copy.
func (o Overrides) Clone() Overrides {
	out := Overrides{}
	if o.BaseWidth != nil {
		out.BaseWidth = Float(*o.BaseWidth)
	}
	if bp := o.Breakpoints; bp != nil {
		out.Breakpoints = &BreakpointOverrides{}
		if bp.Medium != nil {
			out.Breakpoints.Medium = Float(*bp.Medium)
		}
		if bp.Large != nil {
			out.Breakpoints.Large = Float(*bp.Large)
		}
	}
	return out
}
