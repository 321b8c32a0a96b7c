package contrast

import (
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/jmylchreest/tonal/internal/ramp"
)

// Metric scores one ramp colour against a fixed reference. The
// classifier never assumes which metric is active; callers bind the
// metric, reference and direction up front and pass the closure in.
type Metric func(c colorful.Color) float64

// None is the sentinel returned when no step reaches a threshold.
const None = -1

// Direction selects the role the ramp colour plays and the reference it
// is measured against.
type Direction int

const (
	// ColourOnWhite measures the ramp colour as text on a white background.
	ColourOnWhite Direction = iota
	// ColourOnBlack measures the ramp colour as text on a black background.
	ColourOnBlack
	// WhiteOnColour measures white text on the ramp colour.
	WhiteOnColour
	// BlackOnColour measures black text on the ramp colour.
	BlackOnColour
)

var directionNames = map[Direction]string{
	ColourOnWhite: "colour-on-white",
	ColourOnBlack: "colour-on-black",
	WhiteOnColour: "white-on-colour",
	BlackOnColour: "black-on-colour",
}

// String returns the direction's configuration name.
func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return "colour-on-white"
}

// reference returns the white or black side of the pairing.
func (d Direction) reference() colorful.Color {
	if d == ColourOnBlack || d == BlackOnColour {
		return Black
	}
	return White
}

// DirectionByName resolves a configuration name to a Direction. Both
// the "colour" and "color" spellings are accepted.
func DirectionByName(name string) (Direction, bool) {
	name = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "color", "colour")
	for d, n := range directionNames {
		if n == name {
			return d, true
		}
	}
	return ColourOnWhite, false
}

// RatioMetric binds the WCAG contrast ratio to a direction. The ratio
// is direction-symmetric, so only the direction's reference matters.
func RatioMetric(d Direction) Metric {
	ref := d.reference()
	return func(c colorful.Color) float64 {
		return Ratio(c, ref)
	}
}

// LcMetric binds the APCA metric to a direction, as an absolute
// magnitude so thresholds stay positive in either polarity.
func LcMetric(d Direction) Metric {
	ref := d.reference()
	colourIsText := d == ColourOnWhite || d == ColourOnBlack
	return func(c colorful.Color) float64 {
		if colourIsText {
			return math.Abs(Lc(c, ref))
		}
		return math.Abs(Lc(ref, c))
	}
}

// MetricByName resolves a configuration identifier to a bound metric:
// "ratio" (or "wcag") for the contrast ratio, "apca" (or "lc") for the
// APCA magnitude.
func MetricByName(name string, d Direction) (Metric, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ratio", "wcag":
		return RatioMetric(d), true
	case "apca", "lc":
		return LcMetric(d), true
	}
	return nil, false
}

// FirstMeetingThreshold scans the ramp colours in step order and
// returns the index of the first one whose metric value reaches
// threshold, or None when no colour qualifies.
func FirstMeetingThreshold(colors []colorful.Color, metric Metric, threshold float64) int {
	for i, c := range colors {
		if metric(c) >= threshold {
			return i
		}
	}
	return None
}

// RepresentativeStep picks the single step to indicate for a threshold.
// The pivot step wins whenever it qualifies on its own, even if an
// earlier step also does; otherwise the first qualifying step in scan
// order is used, and None when nothing qualifies.
func RepresentativeStep(colors []colorful.Color, metric Metric, threshold float64) int {
	if len(colors) > ramp.PivotIndex && metric(colors[ramp.PivotIndex]) >= threshold {
		return ramp.PivotIndex
	}
	return FirstMeetingThreshold(colors, metric, threshold)
}

// MaskQuery pairs a bound metric with its target threshold.
type MaskQuery struct {
	Metric    Metric
	Threshold float64
}

// ThresholdMasks evaluates each query against every ramp colour and
// returns one boolean mask per query, index-aligned with the colours.
// Masks carry no pivot preference.
func ThresholdMasks(colors []colorful.Color, queries []MaskQuery) [][]bool {
	masks := make([][]bool, len(queries))
	for qi, q := range queries {
		mask := make([]bool, len(colors))
		for i, c := range colors {
			mask[i] = q.Metric(c) >= q.Threshold
		}
		masks[qi] = mask
	}
	return masks
}
