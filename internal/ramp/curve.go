package ramp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// Half identifies which side of the pivot a curve covers. Tint curves
// run from the lightest step down to the pivot, shade curves from the
// pivot down to the darkest step.
type Half int

const (
	// TintHalf covers step indices 0 through PivotIndex.
	TintHalf Half = iota
	// ShadeHalf covers step indices PivotIndex through LastIndex.
	ShadeHalf
)

// String returns the half's name for log output.
func (h Half) String() string {
	if h == ShadeHalf {
		return "shade"
	}
	return "tint"
}

// Bounds returns the inclusive step index range the half covers.
func (h Half) Bounds() (lo, hi int) {
	if h == ShadeHalf {
		return PivotIndex, LastIndex
	}
	return 0, PivotIndex
}

// EasingSpec is a named easing with a relative rate weight. Rate
// controls how much of the overall progression the segment consumes
// relative to its siblings; it is always positive.
type EasingSpec struct {
	Name string
	Rate float64
}

// Segment is one eased span of a piecewise curve, covering step indices
// Start through End inclusive within a half.
type Segment struct {
	Start  int
	End    int
	Easing EasingSpec
}

// Curve is a piecewise eased progression across one half of the step
// table. Segments are contiguous and ordered; an empty curve evaluates
// as plain linear interpolation.
type Curve struct {
	Half     Half
	Segments []Segment
}

// ParseCurve builds a Curve from the raw list form used in
// configuration files: alternating easing specs ("name" or
// "name@rate") and boundary steps (a step label or a bare index).
// The first segment starts at the half's first index; each boundary
// closes the pending segment and starts the next one there. A trailing
// easing with no boundary runs to the half's final index.
//
// Malformed entries are skipped with a warning rather than failing the
// whole curve; unknown easing names are kept as written and resolved at
// evaluation time.
func ParseCurve(items []any, half Half, log hclog.Logger) Curve {
	lo, hi := half.Bounds()
	cur := lo
	var segments []Segment
	var pending *EasingSpec

	closeAt := func(end int) {
		segments = append(segments, Segment{Start: cur, End: end, Easing: *pending})
		cur = end
		pending = nil
	}

	for _, item := range items {
		if idx, ok, isBoundary := boundaryIndex(item, log); isBoundary {
			if !ok {
				continue
			}
			if pending == nil {
				log.Warn("curve boundary without a preceding easing", "half", half.String(), "boundary", item)
				continue
			}
			if idx < cur {
				log.Warn("curve boundary precedes the current segment start", "half", half.String(), "boundary", item)
				continue
			}
			if idx > hi {
				log.Warn("curve boundary beyond the half, clamping", "half", half.String(), "boundary", item)
				idx = hi
			}
			closeAt(idx)
			continue
		}

		spec, ok := item.(string)
		if !ok {
			log.Warn("unexpected curve entry", "half", half.String(), "entry", fmt.Sprintf("%v", item))
			continue
		}
		if pending != nil {
			log.Warn("easing without a boundary before the next easing, running it to the end of the half", "half", half.String(), "easing", pending.Name)
			closeAt(hi)
		}
		parsed := parseEasingSpec(spec, log)
		pending = &parsed
	}

	if pending != nil {
		closeAt(hi)
	}
	return Curve{Half: half, Segments: segments}
}

// boundaryIndex interprets a curve entry as a segment boundary. It
// returns the resolved step index, whether resolution succeeded, and
// whether the entry was numeric at all. Step labels take precedence;
// small numbers that are not labels are treated as raw step indices.
func boundaryIndex(item any, log hclog.Logger) (idx int, ok bool, isBoundary bool) {
	var n float64
	switch v := item.(type) {
	case int:
		n = float64(v)
	case int64:
		n = float64(v)
	case float64:
		n = v
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false, false
		}
		n = parsed
	default:
		return 0, false, false
	}

	whole := int(n)
	if float64(whole) != n {
		log.Warn("curve boundary is not a whole number", "boundary", n)
		return 0, false, true
	}
	if i, found := IndexOf(whole); found {
		return i, true, true
	}
	if whole >= 0 && whole <= LastIndex {
		return whole, true, true
	}
	log.Warn("curve boundary is neither a step label nor a step index", "boundary", whole)
	return 0, false, true
}

// parseEasingSpec splits "name@rate" into its parts. A missing or
// invalid rate falls back to 1; the name is not validated here.
func parseEasingSpec(s string, log hclog.Logger) EasingSpec {
	name, rateStr, hasRate := strings.Cut(s, "@")
	spec := EasingSpec{Name: strings.ToLower(strings.TrimSpace(name)), Rate: 1}
	if !hasRate {
		return spec
	}
	rate, err := strconv.ParseFloat(strings.TrimSpace(rateStr), 64)
	if err != nil || rate <= 0 {
		log.Warn("invalid easing rate, using 1", "easing", spec.Name, "rate", strings.TrimSpace(rateStr))
		return spec
	}
	spec.Rate = rate
	return spec
}

// Evaluate computes the interpolated value for a step index between
// start (the value at the half's first index) and end (the value at the
// half's final index).
//
// Each segment contributes its rate's share of the overall start-to-end
// progression, eased over the segment's own span. An empty curve is
// plain linear interpolation. Indices inside the half but not covered
// by any segment resolve to end; indices outside the step table resolve
// to the half's base-side value. The half's first index always yields
// exactly start and the final index exactly end.
func (c Curve) Evaluate(stepIndex int, start, end float64, log hclog.Logger) float64 {
	lo, hi := c.Half.Bounds()

	if stepIndex < 0 || stepIndex >= StepCount {
		log.Warn("step index outside the step table", "half", c.Half.String(), "index", stepIndex)
		if c.Half == ShadeHalf {
			return start
		}
		return end
	}

	total := 0.0
	for _, seg := range c.Segments {
		total += seg.Easing.Rate
	}
	if len(c.Segments) == 0 || total <= 0 {
		return resolve(start, end, float64(stepIndex-lo)/float64(hi-lo))
	}

	before := 0.0
	for _, seg := range c.Segments {
		if stepIndex < seg.Start || stepIndex > seg.End {
			before += seg.Easing.Rate
			continue
		}

		localT := 0.0
		if span := seg.End - seg.Start; span > 0 {
			localT = float64(stepIndex-seg.Start) / float64(span)
		}

		var eased float64
		switch {
		case localT <= 0:
			eased = 0
		case localT >= 1:
			eased = 1
		default:
			fn, ok := EasingByName(seg.Easing.Name)
			if !ok {
				log.Warn("unknown easing, falling back to linear", "easing", seg.Easing.Name)
				fn = easeLinear
			}
			eased = fn(localT)
		}

		return resolve(start, end, (before+seg.Easing.Rate*eased)/total)
	}

	log.Warn("step index not covered by any curve segment", "half", c.Half.String(), "index", stepIndex)
	return end
}

// resolve maps a 0..1 progress onto the start..end span. The endpoints
// return start and end themselves, so the half's outermost steps carry
// their configured values with no float drift.
func resolve(start, end, progress float64) float64 {
	if progress <= 0 {
		return start
	}
	if progress >= 1 {
		return end
	}
	return start + (end-start)*progress
}
