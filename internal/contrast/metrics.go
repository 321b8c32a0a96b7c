// Package contrast implements the two contrast metrics used to judge
// ramp steps against black and white, and the scan operations that pick
// indicator steps from a generated ramp.
package contrast

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Reference colours the classifier measures against.
var (
	White = colorful.Color{R: 1, G: 1, B: 1}
	Black = colorful.Color{R: 0, G: 0, B: 0}
)

// Luminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Luminance(c colorful.Color) float64 {
	return 0.2126*gammaCorrect(c.R) + 0.7152*gammaCorrect(c.G) + 0.0722*gammaCorrect(c.B)
}

// gammaCorrect applies gamma correction to a colour component.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// Ratio calculates the contrast ratio between two colours according to WCAG 2.0.
// Returns a value between 1 and 21, where 21 is maximum contrast (black vs
// white). The measure is symmetric, so text and background can be passed in
// either order. Meets WCAG AA for normal text at 4.5:1, large text at 3:1.
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func Ratio(c1, c2 colorful.Color) float64 {
	l1 := Luminance(c1)
	l2 := Luminance(c2)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// APCA-W3 0.0.98G-4g constants.
const (
	apcaBlkThrs = 0.022
	apcaBlkClmp = 1.414
	apcaScale   = 1.14
	apcaOffset  = 0.027
	apcaLoClip  = 0.1
	apcaNormBG  = 0.56
	apcaNormTXT = 0.57
	apcaRevBG   = 0.65
	apcaRevTXT  = 0.62
)

// apcaY estimates screen luminance the APCA way, with a plain 2.4
// exponent instead of the piecewise sRGB transfer.
func apcaY(c colorful.Color) float64 {
	return 0.2126729*math.Pow(c.R, 2.4) + 0.7151522*math.Pow(c.G, 2.4) + 0.0721750*math.Pow(c.B, 2.4)
}

// softClamp lifts near-black luminance to model flare and ambient
// reflection on real screens.
func softClamp(y float64) float64 {
	if y < apcaBlkThrs {
		return y + math.Pow(apcaBlkThrs-y, apcaBlkClmp)
	}
	return y
}

// Lc calculates the APCA lightness contrast of text on a background.
// Unlike Ratio it is polarity aware: dark text on a light background
// yields a positive value, light text on a dark background a negative
// one, with magnitudes running roughly 0 to 106.
// https://github.com/Myndex/SAPC-APCA.
func Lc(text, background colorful.Color) float64 {
	ytxt := softClamp(apcaY(text))
	ybg := softClamp(apcaY(background))

	if ybg > ytxt {
		sapc := (math.Pow(ybg, apcaNormBG) - math.Pow(ytxt, apcaNormTXT)) * apcaScale
		if sapc < apcaLoClip {
			return 0
		}
		return (sapc - apcaOffset) * 100
	}

	sapc := (math.Pow(ybg, apcaRevBG) - math.Pow(ytxt, apcaRevTXT)) * apcaScale
	if sapc > -apcaLoClip {
		return 0
	}
	return (sapc + apcaOffset) * 100
}
