package ramp

import (
	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/tonal/internal/colour"
)

// Ramp is a generated ramp, index-aligned with Labels. The pivot entry
// always carries the unmodified base colour.
type Ramp [StepCount]colour.Sample

// At returns the sample for a step label and whether the label exists.
func (r Ramp) At(label int) (colour.Sample, bool) {
	i, ok := IndexOf(label)
	if !ok {
		return colour.Sample{}, false
	}
	return r[i], true
}

// Pivot returns the base colour sample.
func (r Ramp) Pivot() colour.Sample {
	return r[PivotIndex]
}

// Generator produces ramps from scale definitions. It only logs; all
// generation is pure computation, so a single Generator is safe for
// concurrent use.
type Generator struct {
	log hclog.Logger
}

// New returns a Generator logging through log. A nil logger discards
// all output.
func New(log hclog.Logger) *Generator {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &Generator{log: log}
}

// Generate evaluates a curve-driven scale into a ramp. Tint steps
// interpolate each channel from its outer value to the base along the
// tint curves, shade steps from the base to the outer value along the
// shade curves, with the saturation peak overriding saturation and hue
// on the shade half when configured. Every final hue is wrapped to
// [0, 360).
func (g *Generator) Generate(s Scale) Ramp {
	s = s.normalised()
	peak, peakActive := s.peakIndex(g.log)

	var out Ramp
	for i := 0; i < StepCount; i++ {
		if i == PivotIndex {
			out[i] = colour.ToSample(WrapHue(s.Hue), s.Saturation, s.Lightness)
			continue
		}

		var light, sat, shift float64
		if IsTint(i) {
			light = s.LightnessTint.Evaluate(i, s.StartL, s.Lightness, g.log)
			sat = s.SaturationTint.Evaluate(i, s.StartS, s.Saturation, g.log)
			shift = s.HueTint.Evaluate(i, s.StartHueShift, 0, g.log)
		} else {
			light = s.LightnessShade.Evaluate(i, s.Lightness, s.EndL, g.log)
			if peakActive {
				sat, shift = s.peakValues(i, peak)
			} else {
				sat = s.SaturationShade.Evaluate(i, s.Saturation, s.EndS, g.log)
				shift = s.HueShade.Evaluate(i, 0, s.EndHueShift, g.log)
			}
		}
		out[i] = colour.ToSample(WrapHue(s.Hue+shift), sat, light)
	}
	return out
}

// GenerateAnchors evaluates an anchor-driven scale into a ramp. The
// control point sets are assembled once, with the fixed points pinned
// and invalid user points discarded, then every step label resolves
// against them.
func (g *Generator) GenerateAnchors(a AnchorScale) Ramp {
	lightPoints := a.lightnessPoints(g.log)
	satPoints := a.saturationPoints(g.log)
	huePoints := a.hueShiftPoints(g.log)

	var out Ramp
	for i, label := range stepLabels {
		if i == PivotIndex {
			out[i] = colour.ToSample(WrapHue(a.Hue), a.Saturation, a.Lightness)
			continue
		}
		light := AnchorValue(label, lightPoints)
		sat := AnchorValue(label, satPoints)
		shift := AnchorValue(label, huePoints)
		out[i] = colour.ToSample(WrapHue(a.Hue+shift), sat, light)
	}
	return out
}

// normalised pins each curve field to the half it covers.
func (s Scale) normalised() Scale {
	s.LightnessTint.Half = TintHalf
	s.SaturationTint.Half = TintHalf
	s.HueTint.Half = TintHalf
	s.LightnessShade.Half = ShadeHalf
	s.SaturationShade.Half = ShadeHalf
	s.HueShade.Half = ShadeHalf
	return s
}
