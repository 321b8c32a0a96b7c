package ramp

import (
	"math"
	"sort"
)

// EasingFunc maps a normalised position t in [0,1] to an eased position
// in [0,1]. Every function in the catalog satisfies f(0)=0 and f(1)=1.
type EasingFunc func(t float64) float64

// easings is the catalog of named easing curves. Names follow the
// conventional kebab-case scheme: in/out/in-out variants of the sine,
// quad, cubic, quart, quint and expo families, plus linear.
var easings = map[string]EasingFunc{
	"linear":            easeLinear,
	"ease-in-sine":      easeInSine,
	"ease-out-sine":     easeOutSine,
	"ease-in-out-sine":  easeInOutSine,
	"ease-in-quad":      easeInQuad,
	"ease-out-quad":     easeOutQuad,
	"ease-in-out-quad":  easeInOutQuad,
	"ease-in-cubic":     easeInCubic,
	"ease-out-cubic":    easeOutCubic,
	"ease-in-out-cubic": easeInOutCubic,
	"ease-in-quart":     easeInQuart,
	"ease-out-quart":    easeOutQuart,
	"ease-in-out-quart": easeInOutQuart,
	"ease-in-quint":     easeInQuint,
	"ease-out-quint":    easeOutQuint,
	"ease-in-out-quint": easeInOutQuint,
	"ease-in-expo":      easeInExpo,
	"ease-out-expo":     easeOutExpo,
	"ease-in-out-expo":  easeInOutExpo,
}

// EasingByName returns the easing function registered under name and
// whether the name is known. Unknown names are not an error here;
// callers decide how to fall back.
func EasingByName(name string) (EasingFunc, bool) {
	fn, ok := easings[name]
	return fn, ok
}

// EasingNames returns the sorted names of all registered easing curves.
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func easeLinear(t float64) float64 {
	return t
}

func easeInSine(t float64) float64 {
	return 1 - math.Cos(t*math.Pi/2)
}

func easeOutSine(t float64) float64 {
	return math.Sin(t * math.Pi / 2)
}

func easeInOutSine(t float64) float64 {
	return -(math.Cos(math.Pi*t) - 1) / 2
}

func easeInQuad(t float64) float64 {
	return t * t
}

func easeOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

func easeInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}

func easeInCubic(t float64) float64 {
	return t * t * t
}

func easeOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

func easeInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

func easeInQuart(t float64) float64 {
	return t * t * t * t
}

func easeOutQuart(t float64) float64 {
	return 1 - math.Pow(1-t, 4)
}

func easeInOutQuart(t float64) float64 {
	if t < 0.5 {
		return 8 * t * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 4)/2
}

func easeInQuint(t float64) float64 {
	return t * t * t * t * t
}

func easeOutQuint(t float64) float64 {
	return 1 - math.Pow(1-t, 5)
}

func easeInOutQuint(t float64) float64 {
	if t < 0.5 {
		return 16 * t * t * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 5)/2
}

func easeInExpo(t float64) float64 {
	if t == 0 {
		return 0
	}
	return math.Pow(2, 10*t-10)
}

func easeOutExpo(t float64) float64 {
	if t == 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*t)
}

func easeInOutExpo(t float64) float64 {
	if t == 0 {
		return 0
	}
	if t == 1 {
		return 1
	}
	if t < 0.5 {
		return math.Pow(2, 20*t-10) / 2
	}
	return (2 - math.Pow(2, -20*t+10)) / 2
}
