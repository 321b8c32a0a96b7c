package sink

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/lucasb-eyer/go-colorful"
)

// TemplateFuncs returns standard template functions for all output sinks.
// These functions provide consistent colour formatting across all templates,
// including user-supplied template overrides.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		// Format conversion.
		"hexNoHash": hexNoHashFunc,
		"rgb":       rgbFunc,
		"rgba":      rgbaFunc,

		// String manipulation (custom wrappers for pipe-friendly argument order).
		"trimPrefix": trimPrefixFunc,
		"trimSuffix": trimSuffixFunc,
		"replace":    replaceFunc,
		"toLower":    strings.ToLower,
		"toUpper":    strings.ToUpper,
	}
}

// hexNoHashFunc returns a hex colour in RRGGBB format (no # prefix).
func hexNoHashFunc(hex string) string {
	return strings.TrimPrefix(hex, "#")
}

// rgbFunc returns a hex colour as a "r, g, b" triplet for use in CSS
// channel variables, e.g. rgba(var(--primary-500-rgb), 0.5).
func rgbFunc(hex string) (string, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return "", fmt.Errorf("invalid hex colour %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return fmt.Sprintf("%d, %d, %d", r, g, b), nil
}

// rgbaFunc returns a hex colour in CSS rgba(r, g, b, a) format.
func rgbaFunc(hex string, alpha float64) (string, error) {
	triplet, err := rgbFunc(hex)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("rgba(%s, %g)", triplet, alpha), nil
}

// trimPrefixFunc removes a prefix from a string (pipe-friendly argument order).
// Unlike strings.TrimPrefix, this takes prefix first so it works in pipes:
//
//	{{ value | trimPrefix "#" }}
func trimPrefixFunc(prefix, s string) string {
	return strings.TrimPrefix(s, prefix)
}

// trimSuffixFunc removes a suffix from a string (pipe-friendly argument order).
func trimSuffixFunc(suffix, s string) string {
	return strings.TrimSuffix(s, suffix)
}

// replaceFunc replaces all occurrences of old with new (pipe-friendly argument order).
func replaceFunc(old, new, s string) string {
	return strings.ReplaceAll(s, old, new)
}
