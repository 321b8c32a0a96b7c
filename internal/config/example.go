package config

// Example returns a commented starter configuration demonstrating both
// interpolation modes. It parses and resolves cleanly as-is.
func Example() string {
	return `# tonal configuration.
# Priority: TONAL_* environment variables > this file > built-in defaults.

# Shared defaults; every family inherits these unless it overrides
# them. Curve lists and anchor maps replace the inherited value at
# their key wholesale.
defaults:
  start-lightness: 98
  end-lightness: 8
  # start-saturation and end-saturation fall back to each family's
  # base saturation, which keeps grey ramps grey.
  start-hue-shift: 0
  end-hue-shift: 0
  curves:
    lightness:
      tint: [ease-out-sine]
      shade: [ease-in-out-quad]

families:
  # Curve mode (the default): each channel is eased between its outer
  # value and the base across the half. A curve list alternates
  # easings and boundary steps; rates after @ weight each segment's
  # share of the progression. The peak overrides the shade-half
  # saturation and hue curves, lifting saturation to base x boost at
  # the peak step.
  iris:
    base: "#5b5bd6"
    start-saturation: 20
    peak-step: 800
    peak-boost: 1.15
    curves:
      saturation:
        tint: [ease-out-quad@0.7, 200, linear@0.3]

  # Anchor mode: sparse control points per channel, keyed by step
  # label, interpolated linearly by label distance. Lightness values
  # are percentages of their half's range, saturation values are
  # percentages of the base saturation, hue values are degree shifts.
  clay:
    base: {hue: 40, saturation: 70, lightness: 55}
    mode: anchor
    anchors:
      lightness: {200: 30, 700: 45}
      saturation: {100: 40, 900: 85}
      hue: {950: 8}

contrast:
  metric: apca # apca | wcag
  target: 60
`
}
