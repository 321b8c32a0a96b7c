// Package css provides an output sink for CSS custom properties.
package css

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/spf13/pflag"

	"github.com/jmylchreest/tonal/internal/sink"
	tmplloader "github.com/jmylchreest/tonal/internal/sink/template"
	"github.com/jmylchreest/tonal/internal/token"
)

//go:embed *.tmpl
var templates embed.FS

// Sink implements the sink.Sink interface for CSS custom properties.
type Sink struct {
	selector string
	prefix   string
	verbose  bool
}

// New creates a new CSS output sink with default settings.
func New() *Sink {
	return &Sink{
		selector: ":root",
	}
}

// Name returns the sink name.
func (s *Sink) Name() string {
	return "css"
}

// Description returns the sink description.
func (s *Sink) Description() string {
	return "Generate CSS custom properties for the colour ramps"
}

// Templates returns the embedded template filesystem.
// Implements the sink.TemplateProvider interface.
func (s *Sink) Templates() embed.FS {
	return templates
}

// SetVerbose enables or disables verbose logging for the sink.
// Implements the sink.Verbose interface.
func (s *Sink) SetVerbose(verbose bool) {
	s.verbose = verbose
}

// RegisterFlags registers sink-specific flags with the flag set.
func (s *Sink) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&s.selector, "css.selector", ":root", "Selector the custom properties are declared on")
	flags.StringVar(&s.prefix, "css.prefix", "", "Optional prefix for variable names (e.g. \"tonal\")")
}

// Validate checks if the sink configuration is valid.
func (s *Sink) Validate() error {
	if strings.TrimSpace(s.selector) == "" {
		return fmt.Errorf("css.selector cannot be empty")
	}
	return nil
}

// templateData holds data for the CSS template.
type templateData struct {
	Selector string
	Prefix   string
	Set      token.Set
}

// Render creates the CSS file from the given token set.
// Returns map of filename -> content
func (s *Sink) Render(set token.Set) (map[string][]byte, error) {
	loader := tmplloader.New(s.Name(), templates)
	if s.verbose {
		loader.WithVerbose(true, sink.NewVerboseLogger(os.Stderr))
	}
	tmplContent, _, err := loader.Load("tonal.css.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to read CSS template: %w", err)
	}

	tmpl, err := template.New("tonal.css").Funcs(sink.TemplateFuncs()).Parse(string(tmplContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSS template: %w", err)
	}

	data := templateData{
		Selector: s.selector,
		Prefix:   variablePrefix(s.prefix),
		Set:      set,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute CSS template: %w", err)
	}

	return map[string][]byte{"tonal.css": buf.Bytes()}, nil
}

// variablePrefix normalises the user-supplied prefix so templates can
// concatenate it directly in front of variable names.
func variablePrefix(prefix string) string {
	prefix = strings.TrimSpace(prefix)
	prefix = strings.TrimSuffix(prefix, "-")
	if prefix == "" {
		return ""
	}
	return prefix + "-"
}
