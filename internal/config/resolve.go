package config

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/jmylchreest/tonal/internal/contrast"
	"github.com/jmylchreest/tonal/internal/ramp"
)

// Resolve merges, validates and converts a raw file into engine-ready
// scale definitions. Families resolve in sorted name order. Errors are
// reserved for configurations with no usable meaning (no base colour,
// unknown mode or metric); recoverable oddities inside curve lists and
// anchor maps are logged and skipped by the engine parsers instead.
func Resolve(file File, log hclog.Logger) (*Config, error) {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	if len(file.Families) == 0 {
		return nil, errors.New("no families configured")
	}

	con, err := resolveContrast(file.Contrast)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(file.Families))
	for name := range file.Families {
		names = append(names, name)
	}
	sort.Strings(names)

	cfg := &Config{Families: make([]Family, 0, len(names)), Contrast: con}
	for _, name := range names {
		merged := mergeFamily(file.Defaults, file.Families[name])
		fam, err := resolveFamily(name, merged, log)
		if err != nil {
			return nil, err
		}
		cfg.Families = append(cfg.Families, fam)
	}
	return cfg, nil
}

func resolveContrast(spec ContrastSpec) (Contrast, error) {
	metric := strings.ToLower(strings.TrimSpace(spec.Metric))
	if metric == "" {
		metric = DefaultContrastMetric
	}
	if _, ok := contrast.MetricByName(metric, contrast.ColourOnWhite); !ok {
		return Contrast{}, fmt.Errorf("unknown contrast metric %q (ratio, wcag, apca or lc)", spec.Metric)
	}
	target := spec.Target
	if target <= 0 {
		target = DefaultTarget(metric)
	}
	return Contrast{Metric: metric, Target: target}, nil
}

// DefaultTarget picks the conventional threshold for a metric: WCAG AA
// for the ratio, the large-text readability floor for APCA.
func DefaultTarget(metric string) float64 {
	switch metric {
	case "ratio", "wcag":
		return DefaultRatioTarget
	}
	return DefaultLcTarget
}

func resolveFamily(name string, spec FamilySpec, log hclog.Logger) (Family, error) {
	hue, sat, light, err := baseColour(name, spec.Base)
	if err != nil {
		return Family{}, err
	}
	mode, err := parseMode(spec.Mode)
	if err != nil {
		return Family{}, fmt.Errorf("family %q: %w", name, err)
	}

	startL := valueOr(spec.StartLightness, DefaultStartLightness)
	endL := valueOr(spec.EndLightness, DefaultEndLightness)

	fam := Family{Name: name, Mode: mode}
	if mode == ModeAnchor {
		if spec.PeakStep != nil {
			log.Warn("peak step has no effect in anchor mode", "family", name, "step", *spec.PeakStep)
		}
		fam.Anchors = ramp.AnchorScale{
			Hue:              hue,
			Saturation:       sat,
			Lightness:        light,
			StartL:           startL,
			EndL:             endL,
			LightnessPoints:  anchorPoints(name, "lightness", spec.Anchors.Lightness, log),
			SaturationPoints: anchorPoints(name, "saturation", spec.Anchors.Saturation, log),
			HueShiftPoints:   anchorPoints(name, "hue", spec.Anchors.Hue, log),
		}
		return fam, nil
	}

	scale := ramp.Scale{
		Hue:           hue,
		Saturation:    sat,
		Lightness:     light,
		StartL:        startL,
		EndL:          endL,
		StartS:        valueOr(spec.StartSaturation, sat),
		EndS:          valueOr(spec.EndSaturation, sat),
		StartHueShift: valueOr(spec.StartHueShift, 0),
		EndHueShift:   valueOr(spec.EndHueShift, 0),
	}
	if spec.PeakStep != nil {
		scale.PeakStep = *spec.PeakStep
		scale.PeakBoost = valueOr(spec.PeakBoost, 1)
	}
	scale.LightnessTint = ramp.ParseCurve(spec.Curves.Lightness.Tint, ramp.TintHalf, log)
	scale.LightnessShade = ramp.ParseCurve(spec.Curves.Lightness.Shade, ramp.ShadeHalf, log)
	scale.SaturationTint = ramp.ParseCurve(spec.Curves.Saturation.Tint, ramp.TintHalf, log)
	scale.SaturationShade = ramp.ParseCurve(spec.Curves.Saturation.Shade, ramp.ShadeHalf, log)
	scale.HueTint = ramp.ParseCurve(spec.Curves.Hue.Tint, ramp.TintHalf, log)
	scale.HueShade = ramp.ParseCurve(spec.Curves.Hue.Shade, ramp.ShadeHalf, log)
	fam.Scale = scale
	return fam, nil
}

// baseColour interprets a family's base entry: a hex string, or a
// mapping carrying all three of hue, saturation and lightness. A
// partial mapping is an error; colour identity is never guessed.
func baseColour(name string, raw any) (hue, sat, light float64, err error) {
	switch v := raw.(type) {
	case nil:
		return 0, 0, 0, fmt.Errorf("family %q has no base colour", name)
	case string:
		hue, sat, light, err = colour.ParseHex(v)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("family %q: %w", name, err)
		}
		return hue, sat, light, nil
	case map[string]any:
		hue, okH := numeric(v["hue"])
		sat, okS := numeric(v["saturation"])
		light, okL := numeric(v["lightness"])
		if !okH || !okS || !okL {
			return 0, 0, 0, fmt.Errorf("family %q: base colour mapping needs numeric hue, saturation and lightness", name)
		}
		return hue, sat, light, nil
	}
	return 0, 0, 0, fmt.Errorf("family %q: base colour must be a hex string or a hue/saturation/lightness mapping", name)
}

// numeric widens the scalar types YAML decoding produces.
func numeric(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func parseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "curve", "curves":
		return ModeCurve, nil
	case "anchor", "anchors":
		return ModeAnchor, nil
	}
	return ModeCurve, fmt.Errorf("unknown mode %q (curve or anchor)", name)
}

// anchorPoints converts a raw anchor map into label-keyed control
// points. YAML integer keys reach this as strings; a key that is not a
// number is logged and dropped, and labels outside the step table are
// left for the engine to reject with its own warning.
func anchorPoints(family, channel string, raw map[string]float64, log hclog.Logger) map[int]float64 {
	if len(raw) == 0 {
		return nil
	}
	points := make(map[int]float64, len(raw))
	for key, value := range raw {
		label, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil {
			log.Warn("anchor label is not a number, ignoring", "family", family, "channel", channel, "label", key)
			continue
		}
		points[label] = value
	}
	return points
}

func valueOr(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return *v
}
