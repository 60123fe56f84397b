// Package tokens computes the spacing, typography and radius scales for a
// given scale factor.
package tokens

import "github.com/five82/responsive/internal/scaling"

// Baseline values, authored at the design baseline width.
const (
	SpaceXS  = 4
	SpaceSM  = 8
	SpaceMD  = 16
	SpaceLG  = 24
	SpaceXL  = 32
	SpaceXXL = 48

	FontCaption  = 12
	FontBody     = 16
	FontSubtitle = 18
	FontTitle    = 24
	FontHeadline = 32

	RadiusSM   = 4
	RadiusMD   = 8
	RadiusLG   = 16
	RadiusFull = 9999
)

type Space struct {
	XS, SM, MD, LG, XL, XXL float64
}

type Font struct {
	Caption, Body, Subtitle, Title, Headline float64
}

// Radius.None and Radius.Full are never scaled.
type Radius struct {
	None, SM, MD, LG, Full float64
}

// Set is every token scale for one scale factor.
type Set struct {
	Factor float64
	Space  Space
	Font   Font
	Radius Radius
}

// For computes the token set for factor.
func For(factor float64) Set {
	s := func(v float64) float64 { return scaling.Scale(v, factor) }
	return Set{
		Factor: factor,
		Space: Space{
			XS:  s(SpaceXS),
			SM:  s(SpaceSM),
			MD:  s(SpaceMD),
			LG:  s(SpaceLG),
			XL:  s(SpaceXL),
			XXL: s(SpaceXXL),
		},
		Font: Font{
			Caption:  s(FontCaption),
			Body:     s(FontBody),
			Subtitle: s(FontSubtitle),
			Title:    s(FontTitle),
			Headline: s(FontHeadline),
		},
		Radius: Radius{
			None: 0,
			SM:   s(RadiusSM),
			MD:   s(RadiusMD),
			LG:   s(RadiusLG),
			Full: RadiusFull,
		},
	}
}

// Factorer is anything that knows the current scale factor.
type Factorer interface {
	ScaleFactor() float64
}

// Current computes the token set for f's current factor.
func Current(f Factorer) Set {
	return For(f.ScaleFactor())
}
