package ramp

import "github.com/hashicorp/go-hclog"

// peakIndex validates the configured saturation peak and returns its
// step index. The peak only applies on the shade half; a zero PeakStep
// means no peak is configured, anything else invalid logs a warning and
// falls back to the plain shade curves.
func (s Scale) peakIndex(log hclog.Logger) (int, bool) {
	if s.PeakStep == 0 {
		return 0, false
	}
	if s.PeakBoost <= 0 {
		log.Warn("peak boost must be positive, ignoring the peak", "step", s.PeakStep, "boost", s.PeakBoost)
		return 0, false
	}
	idx, ok := IndexOf(s.PeakStep)
	if !ok {
		log.Warn("peak step is not a step label, ignoring the peak", "step", s.PeakStep)
		return 0, false
	}
	if idx <= PivotIndex {
		log.Warn("peak step must sit in the shade half, ignoring the peak", "step", s.PeakStep)
		return 0, false
	}
	return idx, true
}

// peakValues computes saturation and hue shift for a shade step when a
// peak is active, replacing the shade curves for those two channels.
// Saturation climbs from the base to exactly base times boost at the
// peak step (ease-out-sine), then descends to EndS (ease-in-sine); the
// hue shift follows the same two legs towards a boosted blend of the
// configured extreme shifts.
func (s Scale) peakValues(index, peak int) (sat, shift float64) {
	peakSat := s.Saturation * s.PeakBoost
	along := float64(peak-PivotIndex) / float64(LastIndex-PivotIndex)
	peakShift := s.PeakBoost * (s.StartHueShift + (s.EndHueShift-s.StartHueShift)*along)

	switch {
	case index == peak:
		return peakSat, peakShift
	case index < peak:
		e := easeOutSine(float64(index-PivotIndex) / float64(peak-PivotIndex))
		return s.Saturation + (peakSat-s.Saturation)*e, peakShift * e
	case index == LastIndex:
		return s.EndS, s.EndHueShift
	default:
		e := easeInSine(float64(index-peak) / float64(LastIndex-peak))
		return peakSat + (s.EndS-peakSat)*e, peakShift + (s.EndHueShift-peakShift)*e
	}
}
