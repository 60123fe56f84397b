package scaling

import (
	"math"
	"testing"

	"github.com/five82/responsive/internal/viewport"
)

func newScaler(base, width float64) (Scaler, *Store, *viewport.Tracker) {
	store := NewStore()
	store.Configure(Overrides{BaseWidth: Float(base)})
	tracker := viewport.NewTracker(viewport.Dimensions{Width: width, Height: 600})
	return Scaler{Store: store, Viewport: tracker}, store, tracker
}

func TestScale_ZeroIsPositiveZero(t *testing.T) {
	got := Scale(0, -2)
	if got != 0 || math.Signbit(got) {
		t.Fatalf("Scale(0, -2) = %v (signbit %v), want +0", got, math.Signbit(got))
	}
	got = Scale(math.Copysign(0, -1), 3)
	if math.Signbit(got) {
		t.Fatalf("Scale(-0, 3) has sign bit set, want +0")
	}
}

func TestScaler_Proportional(t *testing.T) {
	tests := []struct {
		base, width float64
	}{
		{375, 375},
		{375, 800},
		{375, 1024},
		{80, 120},
		{414, 320},
	}
	values := []float64{1, 4, 16, -8, 0.5, 1000}

	for _, tt := range tests {
		s, _, _ := newScaler(tt.base, tt.width)
		factor := tt.width / tt.base
		if got := s.ScaleFactor(); got != factor {
			t.Fatalf("ScaleFactor(base=%v width=%v) = %v, want %v", tt.base, tt.width, got, factor)
		}
		for _, v := range values {
			if got := s.Scale(v); got != v*factor {
				t.Fatalf("Scale(%v) = %v, want %v", v, got, v*factor)
			}
			if s.Scale(-v) != -s.Scale(v) {
				t.Fatalf("Scale(-%v) = %v, want %v", v, s.Scale(-v), -s.Scale(v))
			}
		}
	}
}

func TestScaler_EndToEndMedium(t *testing.T) {
	s, _, _ := newScaler(375, 800)
	got := s.Scale(16)
	if math.Abs(got-34.1333) > 0.001 {
		t.Fatalf("Scale(16) = %v, want ~34.13", got)
	}
}

func TestScaler_ReconfigurePropagates(t *testing.T) {
	s, store, _ := newScaler(375, 750)
	before := s.Scale(16)

	store.Configure(Overrides{BaseWidth: Float(750)})
	after := s.Scale(16)
	if after != before/2 {
		t.Fatalf("Scale(16) after doubling base = %v, want %v", after, before/2)
	}

	store.Configure(Overrides{})
	if s.Scale(16) != after {
		t.Fatalf("Scale(16) after empty Configure = %v, want %v", s.Scale(16), after)
	}
}

func TestScaler_ViewportChangePropagates(t *testing.T) {
	s, _, tracker := newScaler(100, 100)
	tracker.Resize(viewport.Dimensions{Width: 300, Height: 100})
	if got := s.Scale(10); got != 30 {
		t.Fatalf("Scale(10) after resize = %v, want 30", got)
	}
}

func TestScaler_NilFieldsUseDefaults(t *testing.T) {
	want := Factor(viewport.Default.Get().Width, Default.Config().BaseWidth)
	if got := ScaleFactor(); got != want {
		t.Fatalf("ScaleFactor() = %v, want %v", got, want)
	}
	if got := S(0); got != 0 {
		t.Fatalf("S(0) = %v, want 0", got)
	}
}
