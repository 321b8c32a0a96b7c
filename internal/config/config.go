// Package config loads the tonal configuration file and resolves it
// into the scale definitions the ramp engine consumes. Loading is
// viper-backed (file, TONAL_ environment variables, defaults);
// resolution merges each family over the shared defaults block and
// validates what cannot be defaulted.
package config

import (
	"github.com/spf13/viper"

	"github.com/jmylchreest/tonal/internal/contrast"
	"github.com/jmylchreest/tonal/internal/ramp"
)

// Fallback values applied during resolution when the file leaves a
// field unset.
const (
	// DefaultStartLightness is the lightness of the lightest step.
	DefaultStartLightness = 98.0

	// DefaultEndLightness is the lightness of the darkest step.
	DefaultEndLightness = 8.0

	// DefaultContrastMetric is the contrast metric used when none is
	// configured.
	DefaultContrastMetric = "apca"

	// DefaultLcTarget is the contrast target for the APCA metric,
	// roughly the readability floor for large fluent text.
	DefaultLcTarget = 60.0

	// DefaultRatioTarget is the contrast target for the WCAG ratio
	// metric, the AA threshold for normal text.
	DefaultRatioTarget = 4.5
)

// File is the raw shape of a tonal configuration file. Families merge
// over the shared defaults block field by field; list- and map-valued
// keys (curve lists, anchor maps) replace the default at that key
// wholesale rather than merging element-wise.
type File struct {
	Defaults FamilySpec            `mapstructure:"defaults"`
	Families map[string]FamilySpec `mapstructure:"families"`
	Contrast ContrastSpec          `mapstructure:"contrast"`
}

// FamilySpec is one family entry (or the defaults block) as written in
// the file. Scalar fields are pointers so an absent key can be told
// apart from an explicit zero when merging over defaults.
type FamilySpec struct {
	// Base is the family's base colour: either a hex string or a
	// mapping with hue, saturation and lightness keys.
	Base any `mapstructure:"base"`

	// Mode selects the interpolation strategy: "curve" (the default)
	// or "anchor".
	Mode string `mapstructure:"mode"`

	StartLightness  *float64 `mapstructure:"start-lightness"`
	EndLightness    *float64 `mapstructure:"end-lightness"`
	StartSaturation *float64 `mapstructure:"start-saturation"`
	EndSaturation   *float64 `mapstructure:"end-saturation"`
	StartHueShift   *float64 `mapstructure:"start-hue-shift"`
	EndHueShift     *float64 `mapstructure:"end-hue-shift"`

	// PeakStep and PeakBoost configure the shade-half saturation peak.
	// A peak step without a boost keeps the base saturation at the
	// peak (boost 1).
	PeakStep  *int     `mapstructure:"peak-step"`
	PeakBoost *float64 `mapstructure:"peak-boost"`

	Curves  CurvesSpec  `mapstructure:"curves"`
	Anchors AnchorsSpec `mapstructure:"anchors"`
}

// CurvesSpec holds the per-channel curve lists for curve mode.
type CurvesSpec struct {
	Lightness  HalvesSpec `mapstructure:"lightness"`
	Saturation HalvesSpec `mapstructure:"saturation"`
	Hue        HalvesSpec `mapstructure:"hue"`
}

// HalvesSpec is a pair of curve lists, one per half of the ramp. Each
// list is the flat alternating easing/boundary form the curve parser
// accepts, e.g. [ease-in-quad@0.4, 150, ease-out-sine@0.6].
type HalvesSpec struct {
	Tint  []any `mapstructure:"tint"`
	Shade []any `mapstructure:"shade"`
}

// AnchorsSpec holds the per-channel control point maps for anchor
// mode, keyed by step label. Keys arrive as strings because YAML
// integer keys are stringified on the way through viper.
type AnchorsSpec struct {
	Lightness  map[string]float64 `mapstructure:"lightness"`
	Saturation map[string]float64 `mapstructure:"saturation"`
	Hue        map[string]float64 `mapstructure:"hue"`
}

// ContrastSpec is the contrast block as written in the file.
type ContrastSpec struct {
	Metric string  `mapstructure:"metric"`
	Target float64 `mapstructure:"target"`
}

// Config is a fully resolved configuration: every family merged over
// the defaults, validated and converted into engine scale definitions.
type Config struct {
	// Families in sorted name order, so generation output is
	// deterministic regardless of map iteration.
	Families []Family

	Contrast Contrast
}

// Family returns the named family and whether it exists.
func (c *Config) Family(name string) (Family, bool) {
	for _, f := range c.Families {
		if f.Name == name {
			return f, true
		}
	}
	return Family{}, false
}

// Mode is a family's resolved interpolation strategy.
type Mode int

const (
	// ModeCurve interpolates with eased piecewise curves over step
	// indices.
	ModeCurve Mode = iota
	// ModeAnchor interpolates between sparse control points over step
	// label magnitudes.
	ModeAnchor
)

// String returns the mode's configuration name.
func (m Mode) String() string {
	if m == ModeAnchor {
		return "anchor"
	}
	return "curve"
}

// Family is one resolved colour family. Exactly one of Scale and
// Anchors is meaningful, selected by Mode.
type Family struct {
	Name string
	Mode Mode

	Scale   ramp.Scale
	Anchors ramp.AnchorScale
}

// Generate evaluates the family through the generator using whichever
// strategy the family is configured with.
func (f Family) Generate(g *ramp.Generator) ramp.Ramp {
	if f.Mode == ModeAnchor {
		return g.GenerateAnchors(f.Anchors)
	}
	return g.Generate(f.Scale)
}

// Contrast is the resolved contrast block: a validated metric name and
// a positive target value.
type Contrast struct {
	Metric string
	Target float64
}

// Bind resolves the configured metric against a direction, ready to
// score ramp colours.
func (c Contrast) Bind(d contrast.Direction) contrast.Metric {
	m, ok := contrast.MetricByName(c.Metric, d)
	if !ok {
		return contrast.LcMetric(d)
	}
	return m
}

// setDefaults seeds the viper instance so environment overrides work
// for keys the file leaves out. The contrast target is deliberately
// not defaulted here: its fallback depends on the resolved metric.
func setDefaults(v *viper.Viper) {
	v.SetDefault("defaults.start-lightness", DefaultStartLightness)
	v.SetDefault("defaults.end-lightness", DefaultEndLightness)
	v.SetDefault("defaults.start-hue-shift", 0.0)
	v.SetDefault("defaults.end-hue-shift", 0.0)
	v.SetDefault("contrast.metric", DefaultContrastMetric)
}
