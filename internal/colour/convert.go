// Package colour handles conversion between the HSLuv working space
// used for ramp definitions and the lightness/chroma/hue samples the
// generation engine emits, plus hex parsing and rendering for display.
package colour

import (
	"fmt"
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// hsluvD65 is the D65 white point the HSLuv reference implementation
// uses, which differs slightly from colorful's default D65.
var hsluvD65 = [3]float64{0.95045592705167, 1.0, 1.089057750759878}

// Sample is one ramp entry in the cylindrical working space: lightness
// and chroma on a 0..100-oriented scale, hue in degrees. Chroma is not
// clipped to the sRGB gamut; gamut mapping only happens when a sample
// is converted for display.
type Sample struct {
	L float64
	C float64
	H float64
}

// ToSample converts an HSLuv triple (hue in degrees, saturation and
// lightness in 0..100) to a sample. Lightness and hue carry through
// unchanged; saturation becomes chroma as its share of the maximum
// chroma the sRGB gamut allows at that lightness and hue, so saturation
// above 100 yields an out-of-gamut chroma rather than an error.
// A zero, negative or NaN saturation forces chroma to exactly zero.
func ToSample(hue, sat, light float64) Sample {
	s := Sample{L: light, H: hue}
	if math.IsNaN(sat) || sat <= 0 {
		return s
	}
	if light < lightFloor || light > lightCeil {
		return s
	}
	s.C = maxChromaFor(light, hue) / 100 * sat
	return s
}

// HSLuv converts the sample back to its HSLuv triple. Round-trips with
// ToSample are lossless for in-gamut samples up to float noise.
func (s Sample) HSLuv() (hue, sat, light float64) {
	if s.C <= 0 || s.L < lightFloor || s.L > lightCeil {
		return s.H, 0, s.L
	}
	return s.H, s.C / maxChromaFor(s.L, s.H) * 100, s.L
}

// Color converts the sample to a displayable sRGB colour, clipping
// out-of-gamut chroma channel-wise.
func (s Sample) Color() colorful.Color {
	l, u, v := colorful.LuvLChToLuv(s.L/100, s.C/100, s.H)
	x, y, z := colorful.LuvToXyzWhiteRef(l, u, v, hsluvD65)
	return colorful.LinearRgb(colorful.XyzToLinearRgb(x, y, z)).Clamped()
}

// Hex renders the sample as a lowercase #rrggbb string.
func (s Sample) Hex() string {
	return s.Color().Hex()
}

// FromColor converts a displayable sRGB colour into a sample.
func FromColor(c colorful.Color) Sample {
	l, ch, h := c.LuvLChWhiteRef(hsluvD65)
	return Sample{L: l * 100, C: ch * 100, H: h}
}

// ParseHex parses a hex colour string, with or without the leading
// hash, into an HSLuv triple. Shorthand #rgb form is accepted. A
// malformed string is an error; colour identity is never guessed.
func ParseHex(hex string) (hue, sat, light float64, err error) {
	trimmed := strings.TrimSpace(hex)
	if trimmed != "" && !strings.HasPrefix(trimmed, "#") {
		trimmed = "#" + trimmed
	}
	c, err := colorful.Hex(strings.ToLower(trimmed))
	if err != nil {
		return 0, 0, 0, fmt.Errorf("parsing hex colour %q: %w", hex, err)
	}
	hue, sat, light = FromColor(c).HSLuv()
	return hue, sat, light, nil
}
