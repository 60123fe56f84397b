// Package styles scales style sheets authored at the design baseline and
// applies them to lipgloss styles.
package styles

import (
	"slices"

	"github.com/five82/responsive/internal/breakpoint"
)

// Style is a property map. Values are numbers, strings, bools, slices or
// nested maps.
type Style map[string]any

// Sheet is a set of named styles.
type Sheet map[string]Style

// Scale maps a baseline value to the current viewport.
type Scale func(float64) float64

// unscaled lists ratio, index and code properties that are not dimensions.
var unscaled = map[string]struct{}{
	"flex":          {},
	"flexGrow":      {},
	"flexShrink":    {},
	"opacity":       {},
	"shadowOpacity": {},
	"zIndex":        {},
	"elevation":     {},
	"aspectRatio":   {},
	"scale":         {},
	"scaleX":        {},
	"scaleY":        {},
	"fontWeight":    {},
}

// Scaled reports whether numeric values under key are scaled.
func Scaled(key string) bool {
	_, skip := unscaled[key]
	return !skip
}

// ScaleSheet returns a copy of sheet with every dimensional numeric leaf
// passed through scale. Nested maps are walked with the same rules and keep
// their dynamic type (Style or map[string]any). Slices are shallow-copied
// and never scaled; elements that are themselves maps or slices are shared
// with the input.
func ScaleSheet(sheet Sheet, scale Scale) Sheet {
	out := make(Sheet, len(sheet))
	for name, style := range sheet {
		out[name] = scaleMap(style, scale)
	}
	return out
}

// ScaleStyle applies ScaleSheet's rules to a single style.
func ScaleStyle(style Style, scale Scale) Style {
	return scaleMap(style, scale)
}

func scaleMap(m map[string]any, scale Scale) Style {
	out := make(Style, len(m))
	for key, value := range m {
		out[key] = scaleValue(key, value, scale)
	}
	return out
}

func scaleValue(key string, value any, scale Scale) any {
	switch v := value.(type) {
	case nil:
		return nil
	case Style:
		return scaleMap(v, scale)
	case map[string]any:
		return map[string]any(scaleMap(v, scale))
	case []any:
		return slices.Clone(v)
	case []float64:
		return slices.Clone(v)
	case []int:
		return slices.Clone(v)
	case []string:
		return slices.Clone(v)
	}
	if n, ok := number(value); ok {
		if !Scaled(key) {
			return value
		}
		return scale(n)
	}
	return value
}

// ScaleFlat scales every top-level numeric value of style, ignoring the
// exclusion list and leaving nested maps as they are.
func ScaleFlat(style Style, scale Scale) Style {
	out := make(Style, len(style))
	for key, value := range style {
		if n, ok := number(value); ok {
			out[key] = scale(n)
			continue
		}
		out[key] = value
	}
	return out
}

// Responsive picks a sheet for class with mobile-first fallback.
func Responsive(v breakpoint.Variants[Sheet], class breakpoint.Class) Sheet {
	return breakpoint.Resolve(v, class)
}

func number(value any) (float64, bool) {
	switch n := value.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}
