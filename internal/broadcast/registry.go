package broadcast

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

type entry[T any] struct {
	fn     func(T)
	active atomic.Bool
}

// Registry is an ordered set of listeners for values of type T. The zero
// value is ready to use and logs nothing.
type Registry[T any] struct {
	name   string
	logger *zap.Logger

	mu      sync.Mutex
	entries []*entry[T]
}

// New returns a registry whose recovered listener panics are logged under name.
func New[T any](name string, logger *zap.Logger) *Registry[T] {
	return &Registry[T]{name: name, logger: logger}
}

// Add registers fn and returns its removal token.
func (r *Registry[T]) Add(fn func(T)) (remove func()) {
	e := &entry[T]{fn: fn}
	e.active.Store(true)

	r.mu.Lock()
	r.entries = append(r.entries, e)
	r.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { r.remove(e) })
	}
}

func (r *Registry[T]) remove(target *entry[T]) {
	target.active.Store(false)

	r.mu.Lock()
	defer r.mu.Unlock()
	for i, e := range r.entries {
		if e == target {
			// Copy instead of shifting in place: an in-flight Publish may
			// still be iterating the old backing array.
			next := make([]*entry[T], 0, len(r.entries)-1)
			next = append(next, r.entries[:i]...)
			next = append(next, r.entries[i+1:]...)
			r.entries = next
			return
		}
	}
}

// Len reports the number of registered listeners.
func (r *Registry[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Publish invokes the listeners registered at call time with v and returns how
// many were invoked.
func (r *Registry[T]) Publish(v T) int {
	r.mu.Lock()
	pending := r.entries
	r.mu.Unlock()

	delivered := 0
	for _, e := range pending {
		if !e.active.Load() {
			continue
		}
		r.invoke(e, v)
		delivered++
	}
	return delivered
}

func (r *Registry[T]) invoke(e *entry[T], v T) {
	defer func() {
		if rec := recover(); rec != nil {
			r.log().Error("listener panicked",
				zap.String("registry", r.name),
				zap.Any("panic", rec),
				zap.Stack("stack"))
		}
	}()
	e.fn(v)
}

func (r *Registry[T]) log() *zap.Logger {
	if r.logger == nil {
		return zap.NewNop()
	}
	return r.logger
}
