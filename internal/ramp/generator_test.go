package ramp

import (
	"math"
	"testing"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/tonal/internal/colour"
)

func testScale() Scale {
	return Scale{
		Hue: 250.41, Saturation: 93.95, Lightness: 60.67,
		StartL: 98, EndL: 8,
		StartS: 90, EndS: 70,
		StartHueShift: -4, EndHueShift: 6,
	}
}

func TestWrapHue(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{name: "zero", in: 0, want: 0},
		{name: "in range", in: 250.41, want: 250.41},
		{name: "full turn", in: 360, want: 0},
		{name: "over a turn", in: 450, want: 90},
		{name: "negative", in: -90, want: 270},
		{name: "negative fraction", in: -0.25, want: 359.75},
		{name: "two turns and a half", in: 720.5, want: 0.5},
		{name: "large negative", in: -1170, want: 270},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WrapHue(tt.in); !approxEqual(got, tt.want) {
				t.Errorf("WrapHue(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestWrapHueRangeAndIdempotence(t *testing.T) {
	inputs := []float64{-1e9, -720, -360.0001, -1e-14, 0, 1e-14, 359.9999999, 360, 361, 1e9}
	for _, in := range inputs {
		got := WrapHue(in)
		if got < 0 || got >= 360 {
			t.Errorf("WrapHue(%v) = %v, outside [0,360)", in, got)
		}
		if again := WrapHue(got); again != got {
			t.Errorf("WrapHue(WrapHue(%v)) = %v, want %v", in, again, got)
		}
	}
}

func TestGeneratePivotIsExactBase(t *testing.T) {
	g := New(hclog.NewNullLogger())
	s := testScale()

	r := g.Generate(s)

	want := colour.ToSample(s.Hue, s.Saturation, s.Lightness)
	if r[PivotIndex] != want {
		t.Errorf("pivot sample = %+v, want %+v", r[PivotIndex], want)
	}
	if r[PivotIndex].L != 60.67 {
		t.Errorf("pivot L = %v, want exactly 60.67", r[PivotIndex].L)
	}
	if r[PivotIndex].H != 250.41 {
		t.Errorf("pivot H = %v, want exactly 250.41", r[PivotIndex].H)
	}
}

func TestGenerateEndpointLightnessExact(t *testing.T) {
	g := New(hclog.NewNullLogger())

	scales := []Scale{
		testScale(),
		func() Scale {
			s := testScale()
			s.LightnessTint = Curve{Segments: []Segment{
				{Start: 0, End: 3, Easing: EasingSpec{Name: "ease-in-sine", Rate: 0.4}},
				{Start: 3, End: 6, Easing: EasingSpec{Name: "ease-out-quad", Rate: 0.6}},
			}}
			s.LightnessShade = Curve{Segments: []Segment{
				{Start: 6, End: 12, Easing: EasingSpec{Name: "ease-in-out-cubic", Rate: 1}},
			}}
			return s
		}(),
	}

	for i, s := range scales {
		r := g.Generate(s)
		if r[0].L != s.StartL {
			t.Errorf("scale %d: step 50 L = %v, want exactly %v", i, r[0].L, s.StartL)
		}
		if r[LastIndex].L != s.EndL {
			t.Errorf("scale %d: step 950 L = %v, want exactly %v", i, r[LastIndex].L, s.EndL)
		}
	}
}

func TestGenerateDeterminism(t *testing.T) {
	g := New(hclog.NewNullLogger())
	s := testScale()
	s.SaturationShade = Curve{Segments: []Segment{
		{Start: 6, End: 9, Easing: EasingSpec{Name: "ease-out-sine", Rate: 0.5}},
		{Start: 9, End: 12, Easing: EasingSpec{Name: "ease-in-quint", Rate: 0.5}},
	}}
	s.PeakStep = 800
	s.PeakBoost = 1.15

	if first, second := g.Generate(s), g.Generate(s); first != second {
		t.Errorf("Generate() differs between identical calls:\n%+v\n%+v", first, second)
	}

	a := AnchorScale{
		Hue: 145.2, Saturation: 70, Lightness: 45,
		StartL: 97, EndL: 10,
		LightnessPoints:  map[int]float64{200: 40, 700: 55},
		SaturationPoints: map[int]float64{100: 30, 850: 90},
		HueShiftPoints:   map[int]float64{100: -8, 900: 12},
	}
	if first, second := g.GenerateAnchors(a), g.GenerateAnchors(a); first != second {
		t.Errorf("GenerateAnchors() differs between identical calls:\n%+v\n%+v", first, second)
	}
}

func TestGenerateAchromaticBase(t *testing.T) {
	g := New(hclog.NewNullLogger())
	s := testScale()
	s.Saturation, s.StartS, s.EndS = 0, 0, 0
	s.SaturationTint = Curve{Segments: []Segment{
		{Start: 0, End: 6, Easing: EasingSpec{Name: "ease-in-expo", Rate: 1}},
	}}

	for i, sample := range g.Generate(s) {
		if sample.C != 0 {
			t.Errorf("step %d chroma = %v, want exactly 0", LabelAt(i), sample.C)
		}
	}

	a := AnchorScale{Hue: 30, Saturation: 0, Lightness: 50, StartL: 95, EndL: 5}
	for i, sample := range g.GenerateAnchors(a) {
		if sample.C != 0 {
			t.Errorf("anchor step %d chroma = %v, want exactly 0", LabelAt(i), sample.C)
		}
	}
}

func TestGenerateHueWraps(t *testing.T) {
	g := New(hclog.NewNullLogger())
	s := testScale()
	s.Hue = 350
	s.EndHueShift = 30

	r := g.Generate(s)

	if got := r[LastIndex].H; got != 20 {
		t.Errorf("step 950 hue = %v, want 20", got)
	}
	for i, sample := range r {
		if sample.H < 0 || sample.H >= 360 {
			t.Errorf("step %d hue = %v, outside [0,360)", LabelAt(i), sample.H)
		}
	}
}

func TestGenerateAnchorsStraightLine(t *testing.T) {
	g := New(hclog.NewNullLogger())
	a := AnchorScale{
		Hue: 250, Saturation: 80, Lightness: 60,
		StartL: 98, EndL: 8,
	}

	r := g.GenerateAnchors(a)

	// With points only at the three mandatory labels, every
	// intermediate lightness lies on the straight line between its
	// bracketing labels, by label distance.
	for i, label := range Labels() {
		var want float64
		switch {
		case label <= 500:
			want = 98 + float64(label-50)/450*(60-98)
		default:
			want = 60 + float64(label-500)/450*(8-60)
		}
		if !approxEqual(r[i].L, want) {
			t.Errorf("step %d L = %v, want %v", label, r[i].L, want)
		}
	}
	if r[0].L != 98 {
		t.Errorf("step 50 L = %v, want exactly 98", r[0].L)
	}
	if r[LastIndex].L != 8 {
		t.Errorf("step 950 L = %v, want exactly 8", r[LastIndex].L)
	}
}

func TestPeakIndex(t *testing.T) {
	log := hclog.NewNullLogger()

	tests := []struct {
		name  string
		step  int
		boost float64
		want  int
		ok    bool
	}{
		{name: "disabled", step: 0, boost: 1.2, want: 0, ok: false},
		{name: "valid shade step", step: 800, boost: 1.2, want: 9, ok: true},
		{name: "last step", step: 950, boost: 1.1, want: 12, ok: true},
		{name: "tint step rejected", step: 200, boost: 1.2, want: 0, ok: false},
		{name: "pivot rejected", step: 500, boost: 1.2, want: 0, ok: false},
		{name: "unknown label rejected", step: 760, boost: 1.2, want: 0, ok: false},
		{name: "non-positive boost rejected", step: 800, boost: 0, want: 0, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testScale()
			s.PeakStep = tt.step
			s.PeakBoost = tt.boost
			got, ok := s.peakIndex(log)
			if ok != tt.ok || got != tt.want {
				t.Errorf("peakIndex() = %d, %v, want %d, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestPeakValuesExactAtPeak(t *testing.T) {
	s := testScale()
	s.PeakStep = 800
	s.PeakBoost = 1.15

	sat, _ := s.peakValues(9, 9)
	if want := s.Saturation * s.PeakBoost; sat != want {
		t.Errorf("saturation at the peak = %v, want exactly %v", sat, want)
	}

	sat, shift := s.peakValues(LastIndex, 9)
	if sat != s.EndS {
		t.Errorf("saturation at the last step = %v, want exactly %v", sat, s.EndS)
	}
	if shift != s.EndHueShift {
		t.Errorf("hue shift at the last step = %v, want exactly %v", shift, s.EndHueShift)
	}
}

func TestPeakValuesMonotonicBump(t *testing.T) {
	s := testScale()
	s.PeakStep = 850
	s.PeakBoost = 1.3

	peak, ok := s.peakIndex(hclog.NewNullLogger())
	if !ok {
		t.Fatal("peakIndex() not ok for a valid peak")
	}

	prev := s.Saturation
	for i := PivotIndex + 1; i <= peak; i++ {
		sat, _ := s.peakValues(i, peak)
		if sat < prev {
			t.Errorf("saturation fell from %v to %v before the peak at index %d", prev, sat, i)
		}
		prev = sat
	}
	for i := peak + 1; i <= LastIndex; i++ {
		sat, _ := s.peakValues(i, peak)
		if sat > prev {
			t.Errorf("saturation rose from %v to %v after the peak at index %d", prev, sat, i)
		}
		prev = sat
	}
}

func TestGenerateInvalidPeakFallsBackToCurves(t *testing.T) {
	g := New(hclog.NewNullLogger())

	plain := testScale()
	invalid := testScale()
	invalid.PeakStep = 300
	invalid.PeakBoost = 1.4

	if got, want := g.Generate(invalid), g.Generate(plain); got != want {
		t.Errorf("a tint-half peak should be ignored:\n%+v\n%+v", got, want)
	}
}

func TestRampAt(t *testing.T) {
	g := New(hclog.NewNullLogger())
	r := g.Generate(testScale())

	sample, ok := r.At(500)
	if !ok {
		t.Fatal("At(500) not ok")
	}
	if sample != r.Pivot() {
		t.Errorf("At(500) = %+v, want the pivot %+v", sample, r.Pivot())
	}
	if _, ok := r.At(275); ok {
		t.Error("At(275) should not resolve")
	}
	if math.IsNaN(sample.C) {
		t.Error("pivot chroma is NaN")
	}
}
