package ramp

import "math"

// Scale describes a curve-driven ramp: a base colour, the values the
// ramp runs between at its extremes, and a piecewise eased curve per
// channel per half. Zero-value curves evaluate as linear, so a Scale
// with only the base colour and endpoint fields set is already usable.
type Scale struct {
	// Base colour in the working space: hue in degrees, saturation and
	// lightness in 0..100.
	Hue        float64
	Saturation float64
	Lightness  float64

	// Lightness at the outermost steps. StartL is the lightest step,
	// EndL the darkest.
	StartL float64
	EndL   float64

	// Saturation at the outermost steps.
	StartS float64
	EndS   float64

	// Hue shift in degrees at the outermost steps, applied on top of
	// the base hue. The pivot always carries a zero shift.
	StartHueShift float64
	EndHueShift   float64

	// PeakStep names a shade-half step label where saturation peaks
	// instead of following the shade curves; zero disables the peak.
	// PeakBoost is the multiplier applied to the base saturation there.
	PeakStep  int
	PeakBoost float64

	// Per-channel curves. Tint curves interpolate from the outer value
	// to the base, shade curves from the base to the outer value.
	LightnessTint   Curve
	LightnessShade  Curve
	SaturationTint  Curve
	SaturationShade Curve
	HueTint         Curve
	HueShade        Curve
}

// AnchorScale describes an anchor-driven ramp: a base colour, the
// lightness extremes, and sparse per-channel control points keyed by
// step label. Steps between control points interpolate linearly by
// label distance.
type AnchorScale struct {
	// Base colour in the working space.
	Hue        float64
	Saturation float64
	Lightness  float64

	// Lightness at the outermost steps.
	StartL float64
	EndL   float64

	// LightnessPoints are percentages of the half sub-range between the
	// nearest fixed lightness (StartL, base, EndL) pair.
	LightnessPoints map[int]float64

	// SaturationPoints are percentages of the base saturation.
	SaturationPoints map[int]float64

	// HueShiftPoints are additive degrees on the base hue.
	HueShiftPoints map[int]float64
}

// WrapHue normalises a hue angle to [0, 360) degrees.
func WrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h == 360 {
		return 0
	}
	return h
}
