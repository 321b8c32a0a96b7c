// Package ramp implements the colour ramp generation engine: a fixed
// 13-step table of tints and shades derived from a single base colour,
// with two interpolation strategies (eased curves and sparse anchors)
// sharing the same step table.
package ramp

// Step table constants. The table is fixed: 13 labels from 50 to 950
// with 500 as the pivot, the step that always carries the unmodified
// base colour.
const (
	// StepCount is the number of steps in every ramp.
	StepCount = 13

	// PivotIndex is the position of the base colour step.
	PivotIndex = 6

	// PivotLabel is the label of the base colour step.
	PivotLabel = 500

	// LastIndex is the position of the darkest step.
	LastIndex = StepCount - 1
)

// stepLabels is the fixed ordered set of step labels. The labels are not
// evenly spaced numerically (700 to 800 spans 100, 800 to 850 spans 50),
// which is why curve-based interpolation works on indices while
// anchor-based interpolation works on label magnitudes.
var stepLabels = [StepCount]int{50, 100, 150, 200, 300, 400, 500, 600, 700, 800, 850, 900, 950}

// stepIndex maps each label back to its position in stepLabels.
var stepIndex = func() map[int]int {
	m := make(map[int]int, StepCount)
	for i, label := range stepLabels {
		m[label] = i
	}
	return m
}()

// Labels returns the ordered step labels.
func Labels() [StepCount]int {
	return stepLabels
}

// LabelAt returns the label at the given step index.
// The index must be in [0, StepCount).
func LabelAt(index int) int {
	return stepLabels[index]
}

// IndexOf returns the index of a step label and whether the label exists
// in the step table.
func IndexOf(label int) (int, bool) {
	i, ok := stepIndex[label]
	return i, ok
}

// IsTint reports whether the step at index is lighter than the base
// colour. The pivot itself is neither tint nor shade.
func IsTint(index int) bool {
	return index < PivotIndex
}

// IsShade reports whether the step at index is darker than the base
// colour.
func IsShade(index int) bool {
	return index > PivotIndex
}
