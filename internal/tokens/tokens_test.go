package tokens

import (
	"testing"

	"github.com/five82/responsive/internal/scaling"
	"github.com/five82/responsive/internal/viewport"
)

func TestFor_IdentityAtFactorOne(t *testing.T) {
	set := For(1)
	want := Space{XS: 4, SM: 8, MD: 16, LG: 24, XL: 32, XXL: 48}
	if set.Space != want {
		t.Fatalf("Space = %+v, want %+v", set.Space, want)
	}
	if set.Font != (Font{Caption: 12, Body: 16, Subtitle: 18, Title: 24, Headline: 32}) {
		t.Fatalf("Font = %+v", set.Font)
	}
}

func TestFor_ScalesAndPassesThrough(t *testing.T) {
	set := For(2)
	if set.Space.MD != 32 || set.Font.Title != 48 || set.Radius.LG != 32 {
		t.Fatalf("For(2) = %+v, want doubled values", set)
	}
	if set.Radius.None != 0 || set.Radius.Full != RadiusFull {
		t.Fatalf("Radius passthrough = %+v, want None=0 Full=%d", set.Radius, RadiusFull)
	}
}

func TestCurrent_UsesScalerFactor(t *testing.T) {
	store := scaling.NewStore()
	tracker := viewport.NewTracker(viewport.Dimensions{Width: 750, Height: 1000})
	set := Current(scaling.Scaler{Store: store, Viewport: tracker})
	if set.Factor != 2 || set.Space.XS != 8 {
		t.Fatalf("Current = %+v, want factor 2", set)
	}

	tracker.Resize(viewport.Dimensions{Width: 375, Height: 1000})
	if got := Current(scaling.Scaler{Store: store, Viewport: tracker}); got.Space.XS != 4 {
		t.Fatalf("Current after resize Space.XS = %v, want 4", got.Space.XS)
	}
}
