package config

// mergeFamily lays a family entry over the defaults block. Scalar
// fields win individually when set; each curve list and anchor map is
// taken from the family wholesale when the family defines that key,
// even if the family's value is empty.
func mergeFamily(def, fam FamilySpec) FamilySpec {
	out := fam
	if out.Base == nil {
		out.Base = def.Base
	}
	if out.Mode == "" {
		out.Mode = def.Mode
	}
	if out.StartLightness == nil {
		out.StartLightness = def.StartLightness
	}
	if out.EndLightness == nil {
		out.EndLightness = def.EndLightness
	}
	if out.StartSaturation == nil {
		out.StartSaturation = def.StartSaturation
	}
	if out.EndSaturation == nil {
		out.EndSaturation = def.EndSaturation
	}
	if out.StartHueShift == nil {
		out.StartHueShift = def.StartHueShift
	}
	if out.EndHueShift == nil {
		out.EndHueShift = def.EndHueShift
	}
	if out.PeakStep == nil {
		out.PeakStep = def.PeakStep
	}
	if out.PeakBoost == nil {
		out.PeakBoost = def.PeakBoost
	}
	out.Curves = mergeCurves(def.Curves, fam.Curves)
	out.Anchors = mergeAnchors(def.Anchors, fam.Anchors)
	return out
}

func mergeCurves(def, fam CurvesSpec) CurvesSpec {
	return CurvesSpec{
		Lightness:  mergeHalves(def.Lightness, fam.Lightness),
		Saturation: mergeHalves(def.Saturation, fam.Saturation),
		Hue:        mergeHalves(def.Hue, fam.Hue),
	}
}

// mergeHalves keeps a nil family list as "inherit" but an empty one as
// an explicit reset to linear.
func mergeHalves(def, fam HalvesSpec) HalvesSpec {
	out := fam
	if out.Tint == nil {
		out.Tint = def.Tint
	}
	if out.Shade == nil {
		out.Shade = def.Shade
	}
	return out
}

func mergeAnchors(def, fam AnchorsSpec) AnchorsSpec {
	out := fam
	if out.Lightness == nil {
		out.Lightness = def.Lightness
	}
	if out.Saturation == nil {
		out.Saturation = def.Saturation
	}
	if out.Hue == nil {
		out.Hue = def.Hue
	}
	return out
}
