package contrast

import (
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/jmylchreest/tonal/internal/ramp"
)

// scoredColours builds a 13-entry ramp whose red channel carries an
// arbitrary per-step score, so scan behaviour can be tested with a
// metric independent of any real contrast formula.
func scoredColours(scores map[int]float64) []colorful.Color {
	colours := make([]colorful.Color, ramp.StepCount)
	for i := range colours {
		colours[i] = colorful.Color{R: scores[i]}
	}
	return colours
}

func scoreMetric(c colorful.Color) float64 {
	return c.R
}

func TestFirstMeetingThreshold(t *testing.T) {
	tests := []struct {
		name      string
		scores    map[int]float64
		threshold float64
		want      int
	}{
		{
			name:      "no step qualifies",
			scores:    map[int]float64{},
			threshold: 5,
			want:      None,
		},
		{
			name:      "lightest step already qualifies",
			scores:    map[int]float64{0: 9, 1: 9, 2: 9},
			threshold: 5,
			want:      0,
		},
		{
			name:      "first match mid ramp",
			scores:    map[int]float64{4: 3, 7: 6, 9: 8},
			threshold: 5,
			want:      7,
		},
		{
			name:      "threshold met exactly",
			scores:    map[int]float64{5: 5},
			threshold: 5,
			want:      5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FirstMeetingThreshold(scoredColours(tt.scores), scoreMetric, tt.threshold)
			if got != tt.want {
				t.Errorf("FirstMeetingThreshold() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRepresentativeStep(t *testing.T) {
	tests := []struct {
		name      string
		scores    map[int]float64
		threshold float64
		want      int
	}{
		{
			name:      "pivot preferred over an earlier match",
			scores:    map[int]float64{2: 9, 6: 9},
			threshold: 5,
			want:      ramp.PivotIndex,
		},
		{
			name:      "pivot not qualifying falls back to scan order",
			scores:    map[int]float64{2: 9, 10: 9},
			threshold: 5,
			want:      2,
		},
		{
			name:      "nothing qualifies",
			scores:    map[int]float64{},
			threshold: 5,
			want:      None,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RepresentativeStep(scoredColours(tt.scores), scoreMetric, tt.threshold)
			if got != tt.want {
				t.Errorf("RepresentativeStep() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestThresholdMasks(t *testing.T) {
	colours := scoredColours(map[int]float64{0: 2, 2: 9, 6: 9, 12: 4})
	masks := ThresholdMasks(colours, []MaskQuery{
		{Metric: scoreMetric, Threshold: 5},
		{Metric: scoreMetric, Threshold: 1},
	})

	if len(masks) != 2 {
		t.Fatalf("ThresholdMasks() returned %d masks, want 2", len(masks))
	}
	for qi, mask := range masks {
		if len(mask) != ramp.StepCount {
			t.Fatalf("mask %d has %d entries, want %d", qi, len(mask), ramp.StepCount)
		}
	}

	// Masks carry no pivot preference: index 2 stays set even though
	// the pivot qualifies too.
	strict := masks[0]
	if !strict[2] || !strict[6] {
		t.Errorf("strict mask = %v, want indices 2 and 6 set", strict)
	}
	if strict[0] || strict[12] {
		t.Errorf("strict mask = %v, want indices 0 and 12 clear", strict)
	}

	loose := masks[1]
	for _, i := range []int{0, 2, 6, 12} {
		if !loose[i] {
			t.Errorf("loose mask missing index %d", i)
		}
	}
	if loose[1] {
		t.Error("loose mask should not include an unscored step")
	}
}

func TestDirectionByName(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   Direction
		wantOK bool
	}{
		{name: "canonical", in: "colour-on-white", want: ColourOnWhite, wantOK: true},
		{name: "american spelling", in: "color-on-black", want: ColourOnBlack, wantOK: true},
		{name: "mixed case", in: "White-On-Colour", want: WhiteOnColour, wantOK: true},
		{name: "padded", in: "  black-on-colour ", want: BlackOnColour, wantOK: true},
		{name: "unknown", in: "sideways", want: ColourOnWhite, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DirectionByName(tt.in)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("DirectionByName(%q) = %v, %v, want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestMetricByName(t *testing.T) {
	for _, name := range []string{"ratio", "wcag", "apca", "lc", "RATIO"} {
		if _, ok := MetricByName(name, ColourOnWhite); !ok {
			t.Errorf("MetricByName(%q) not resolved", name)
		}
	}
	if _, ok := MetricByName("squint", ColourOnWhite); ok {
		t.Error("MetricByName(\"squint\") should not resolve")
	}
}

func TestRatioMetricSymmetry(t *testing.T) {
	c := colorful.Color{R: 0.4, G: 0.2, B: 0.7}
	asText := RatioMetric(ColourOnWhite)(c)
	asBackground := RatioMetric(WhiteOnColour)(c)
	if asText != asBackground {
		t.Errorf("ratio direction asymmetry: %v vs %v", asText, asBackground)
	}
}

func TestLcMetricMagnitude(t *testing.T) {
	dark := colorful.Color{R: 0.1, G: 0.1, B: 0.2}
	light := colorful.Color{R: 0.95, G: 0.95, B: 0.9}

	for _, d := range []Direction{ColourOnWhite, ColourOnBlack, WhiteOnColour, BlackOnColour} {
		m := LcMetric(d)
		if got := m(dark); got < 0 {
			t.Errorf("%v metric on dark = %v, want non-negative", d, got)
		}
		if got := m(light); got < 0 {
			t.Errorf("%v metric on light = %v, want non-negative", d, got)
		}
	}

	// White text on a dark colour reads well; the magnitude must agree
	// with the signed Lc.
	m := LcMetric(WhiteOnColour)
	if got, want := m(dark), -Lc(White, dark); got != want {
		t.Errorf("WhiteOnColour metric = %v, want %v", got, want)
	}
}
