package colour

import "math"

// Saturation maps to chroma through the largest chroma the sRGB gamut
// admits at a given lightness and hue. colorful keeps this part of its
// HSLuv support unexported, so the bounding-line computation from the
// HSLuv reference implementation lives here; all remaining conversion
// legs go through colorful.

// Lightness this close to the extremes has no usable chroma; samples
// there are treated as achromatic, matching the HSLuv reference cutoffs.
const (
	lightFloor = 0.00000001
	lightCeil  = 99.9999999
)

// sRGB linear transform matrix, XYZ to linear RGB rows.
var xyzToRGB = [3][3]float64{
	{3.2409699419045214, -1.5373831775700935, -0.49861076029300328},
	{-0.96924363628087983, 1.8759675015077207, 0.041555057407175613},
	{0.055630079696993609, -0.20397695888897657, 1.0569715142428786},
}

const (
	cieKappa   = 903.2962962962963
	cieEpsilon = 0.0088564516790356308
)

// boundLine is one gamut boundary in chroma space, as a line in
// slope/intercept form.
type boundLine struct {
	slope     float64
	intercept float64
}

// chromaBounds computes the six sRGB gamut boundary lines for a given
// lightness. Each RGB channel contributes two lines, one where the
// channel hits 0 and one where it hits 1.
func chromaBounds(l float64) [6]boundLine {
	var bounds [6]boundLine

	sub1 := math.Pow(l+16, 3) / 1560896
	sub2 := sub1
	if sub1 <= cieEpsilon {
		sub2 = l / cieKappa
	}

	for i, row := range xyzToRGB {
		for k := 0; k < 2; k++ {
			top1 := (284517*row[0] - 94839*row[2]) * sub2
			top2 := (838422*row[2]+769860*row[1]+731718*row[0])*l*sub2 - 769860*float64(k)*l
			bottom := (632260*row[2]-126452*row[1])*sub2 + 126452*float64(k)
			bounds[i*2+k] = boundLine{slope: top1 / bottom, intercept: top2 / bottom}
		}
	}
	return bounds
}

// maxChromaFor returns the largest in-gamut chroma at the given
// lightness (0..100) and hue (degrees), the HSLuv 100%-saturation
// magnitude.
func maxChromaFor(l, h float64) float64 {
	hRad := h / 360 * 2 * math.Pi
	sin, cos := math.Sin(hRad), math.Cos(hRad)

	min := math.MaxFloat64
	for _, line := range chromaBounds(l) {
		length := line.intercept / (sin - line.slope*cos)
		if length > 0 && length < min {
			min = length
		}
	}
	return min
}
