package contrast

import (
	"math"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
)

func grey(v float64) colorful.Color {
	return colorful.Color{R: v, G: v, B: v}
}

func TestLuminance(t *testing.T) {
	if got := Luminance(Black); got != 0 {
		t.Errorf("Luminance(Black) = %v, want 0", got)
	}
	if got := Luminance(White); math.Abs(got-1) > 1e-9 {
		t.Errorf("Luminance(White) = %v, want 1", got)
	}
	if light, dark := Luminance(grey(0.8)), Luminance(grey(0.2)); light <= dark {
		t.Errorf("Luminance(0.8 grey) = %v, not above Luminance(0.2 grey) = %v", light, dark)
	}
}

func TestRatio(t *testing.T) {
	if got := Ratio(White, Black); math.Abs(got-21) > 1e-9 {
		t.Errorf("Ratio(White, Black) = %v, want 21", got)
	}
	if got := Ratio(White, White); got != 1 {
		t.Errorf("Ratio(White, White) = %v, want 1", got)
	}

	// The ratio is symmetric in its arguments.
	pairs := [][2]colorful.Color{
		{White, grey(0.3)},
		{grey(0.1), grey(0.9)},
		{{R: 0.2, G: 0.4, B: 0.9}, {R: 0.9, G: 0.8, B: 0.1}},
	}
	for _, p := range pairs {
		if a, b := Ratio(p[0], p[1]), Ratio(p[1], p[0]); a != b {
			t.Errorf("Ratio not symmetric: %v vs %v", a, b)
		}
	}
}

func TestLcKnownValues(t *testing.T) {
	// Published APCA reference values for the black/white extremes.
	if got := Lc(Black, White); math.Abs(got-106.04) > 0.1 {
		t.Errorf("Lc(Black, White) = %v, want about 106.04", got)
	}
	if got := Lc(White, Black); math.Abs(got-(-107.88)) > 0.1 {
		t.Errorf("Lc(White, Black) = %v, want about -107.88", got)
	}
}

func TestLcPolarity(t *testing.T) {
	dark := grey(0.1)
	light := grey(0.95)

	if got := Lc(dark, light); got <= 0 {
		t.Errorf("Lc(dark text, light background) = %v, want positive", got)
	}
	if got := Lc(light, dark); got >= 0 {
		t.Errorf("Lc(light text, dark background) = %v, want negative", got)
	}
}

func TestLcLowContrastClips(t *testing.T) {
	for _, v := range []float64{0.2, 0.5, 0.8} {
		if got := Lc(grey(v), grey(v)); got != 0 {
			t.Errorf("Lc of identical colours = %v, want 0", got)
		}
	}
	if got := Lc(grey(0.5), grey(0.52)); got != 0 {
		t.Errorf("Lc of near-identical colours = %v, want clipped to 0", got)
	}
}
