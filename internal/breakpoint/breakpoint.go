// Package breakpoint classifies viewport widths into device classes and
// resolves mobile-first variant sets.
package breakpoint

import (
	"errors"
	"fmt"
	"strings"

	"github.com/five82/responsive/internal/scaling"
)

// Class is a device category derived from viewport width. Classes are
// ordered: Compact < Medium < Large.
type Class int

const (
	Compact Class = iota
	Medium
	Large
)

// Classes lists every class in ascending order.
var Classes = []Class{Compact, Medium, Large}

func (c Class) String() string {
	switch c {
	case Medium:
		return "medium"
	case Large:
		return "large"
	default:
		return "compact"
	}
}

// ParseClass maps a class name (case-insensitive) to its Class.
func ParseClass(name string) (Class, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "compact":
		return Compact, nil
	case "medium":
		return Medium, nil
	case "large":
		return Large, nil
	}
	return Compact, fmt.Errorf("unknown device class %q", name)
}

// Classify returns the class for width. Thresholds are inclusive lower bounds.
func Classify(width float64, bp scaling.Breakpoints) Class {
	switch {
	case width >= bp.Large:
		return Large
	case width >= bp.Medium:
		return Medium
	default:
		return Compact
	}
}

// ErrMissingCompact is returned when a variant set has no compact entry.
var ErrMissingCompact = errors.New("variant set requires a compact value")

// Variants holds up to three alternatives of a value. Compact is mandatory;
// a nil Medium or Large falls back to the next smaller class.
type Variants[T any] struct {
	Compact T
	Medium  *T
	Large   *T
}

// Of starts a variant set from its compact value.
func Of[T any](compact T) Variants[T] {
	return Variants[T]{Compact: compact}
}

// WithMedium returns a copy of v with a medium override.
func (v Variants[T]) WithMedium(medium T) Variants[T] {
	v.Medium = &medium
	return v
}

// WithLarge returns a copy of v with a large override.
func (v Variants[T]) WithLarge(large T) Variants[T] {
	v.Large = &large
	return v
}

// FromMap builds a variant set from per-class entries.
func FromMap[T any](m map[Class]T) (Variants[T], error) {
	compact, ok := m[Compact]
	if !ok {
		return Variants[T]{}, ErrMissingCompact
	}
	v := Of(compact)
	if medium, ok := m[Medium]; ok {
		v = v.WithMedium(medium)
	}
	if large, ok := m[Large]; ok {
		v = v.WithLarge(large)
	}
	return v, nil
}

// Source reports which class's entry Resolve uses for c.
func (v Variants[T]) Source(c Class) Class {
	switch c {
	case Large:
		if v.Large != nil {
			return Large
		}
		if v.Medium != nil {
			return Medium
		}
	case Medium:
		if v.Medium != nil {
			return Medium
		}
	}
	return Compact
}

// Resolve picks the value for c, falling back toward Compact.
func Resolve[T any](v Variants[T], c Class) T {
	switch v.Source(c) {
	case Large:
		return *v.Large
	case Medium:
		return *v.Medium
	}
	return v.Compact
}
