package ramp

import (
	"sort"

	"github.com/hashicorp/go-hclog"
)

// AnchorValue resolves a step label against a sparse set of control
// points keyed by step label. An exact hit returns the point's value;
// labels between two points interpolate linearly by label distance, so
// the uneven label spacing is deliberate: 800 sits closer to 850 than
// 700 sits to 800. Labels outside the covered range clamp to the
// nearest point.
func AnchorValue(label int, points map[int]float64) float64 {
	if v, ok := points[label]; ok {
		return v
	}
	if len(points) == 0 {
		return 0
	}

	keys := make([]int, 0, len(points))
	for k := range points {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	if label <= keys[0] {
		return points[keys[0]]
	}
	last := keys[len(keys)-1]
	if label >= last {
		return points[last]
	}
	for i := 1; i < len(keys); i++ {
		if label < keys[i] {
			lower, upper := keys[i-1], keys[i]
			t := float64(label-lower) / float64(upper-lower)
			return points[lower] + t*(points[upper]-points[lower])
		}
	}
	return points[last]
}

// lightnessPoints assembles the lightness control points for an anchor
// scale. The three fixed points are absolute: the lightest step carries
// StartL, the pivot carries the base lightness and the darkest step
// carries EndL. User points are percentages of their half's sub-range:
// on the tint side 0 means StartL and 100 means the base lightness, on
// the shade side 0 means the base lightness and 100 means EndL.
func (a AnchorScale) lightnessPoints(log hclog.Logger) map[int]float64 {
	first, last := stepLabels[0], stepLabels[LastIndex]
	points := map[int]float64{
		first:      a.StartL,
		PivotLabel: a.Lightness,
		last:       a.EndL,
	}
	for label, pct := range a.LightnessPoints {
		idx, ok := IndexOf(label)
		if !ok {
			log.Warn("unknown step label in lightness anchors", "label", label)
			continue
		}
		if label == first || label == PivotLabel || label == last {
			log.Warn("lightness anchor at a fixed step, ignoring", "label", label)
			continue
		}
		if idx < PivotIndex {
			points[label] = a.StartL + pct/100*(a.Lightness-a.StartL)
		} else {
			points[label] = a.Lightness + pct/100*(a.EndL-a.Lightness)
		}
	}
	return points
}

// saturationPoints assembles the saturation control points. Values are
// percentages of the base saturation, so 0 yields a fully achromatic
// step. The pivot is pinned to the base saturation and the outermost
// steps default to it when not anchored.
func (a AnchorScale) saturationPoints(log hclog.Logger) map[int]float64 {
	points := map[int]float64{PivotLabel: a.Saturation}
	for label, pct := range a.SaturationPoints {
		if _, ok := IndexOf(label); !ok {
			log.Warn("unknown step label in saturation anchors", "label", label)
			continue
		}
		if label == PivotLabel {
			log.Warn("saturation anchor at the pivot, ignoring", "label", label)
			continue
		}
		points[label] = pct / 100 * a.Saturation
	}
	a.defaultEndpoints(points, a.Saturation)
	return points
}

// hueShiftPoints assembles the hue shift control points. Values are
// additive degrees applied to the base hue. The pivot is pinned to zero
// shift and the outermost steps default to zero when not anchored.
func (a AnchorScale) hueShiftPoints(log hclog.Logger) map[int]float64 {
	points := map[int]float64{PivotLabel: 0}
	for label, shift := range a.HueShiftPoints {
		if _, ok := IndexOf(label); !ok {
			log.Warn("unknown step label in hue anchors", "label", label)
			continue
		}
		if label == PivotLabel {
			log.Warn("hue anchor at the pivot, ignoring", "label", label)
			continue
		}
		points[label] = shift
	}
	a.defaultEndpoints(points, 0)
	return points
}

// defaultEndpoints pins the outermost step labels to value unless the
// caller already anchored them.
func (a AnchorScale) defaultEndpoints(points map[int]float64, value float64) {
	for _, label := range [2]int{stepLabels[0], stepLabels[LastIndex]} {
		if _, ok := points[label]; !ok {
			points[label] = value
		}
	}
}
