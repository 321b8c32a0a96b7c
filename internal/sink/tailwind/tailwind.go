// Package tailwind provides a Tailwind CSS output sink.
package tailwind

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"text/template"

	"github.com/spf13/pflag"

	"github.com/jmylchreest/tonal/internal/sink"
	tmplloader "github.com/jmylchreest/tonal/internal/sink/template"
	"github.com/jmylchreest/tonal/internal/token"
)

//go:embed *.tmpl
var templates embed.FS

// Sink implements the sink.Sink interface for Tailwind CSS.
type Sink struct {
	format  string // "css" or "config"
	verbose bool
}

// New creates a new Tailwind CSS output sink.
func New() *Sink {
	return &Sink{
		format: "css",
	}
}

// NewWithFormat creates a new Tailwind CSS output sink with a specific format.
func NewWithFormat(format string) *Sink {
	return &Sink{
		format: format,
	}
}

// Name returns the sink name.
func (s *Sink) Name() string {
	return "tailwind"
}

// Description returns the sink description.
func (s *Sink) Description() string {
	return "Generate Tailwind CSS theme variables or a v3 config extension"
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
	flags.StringVar(&s.format, "tailwind.format", "css", "Output format (css for a v4 @theme block, config for a v3 tailwind.config.js)")
}

// Validate checks if the sink configuration is valid.
func (s *Sink) Validate() error {
	if s.format != "css" && s.format != "config" {
		return fmt.Errorf("invalid format: %s (must be 'css' or 'config')", s.format)
	}
	return nil
}

// Render creates the Tailwind CSS output from the given token set.
// Returns map of filename -> content
func (s *Sink) Render(set token.Set) (map[string][]byte, error) {
	files := make(map[string][]byte)

	if s.format == "config" {
		content, err := s.render("tailwind.config.js.tmpl", set)
		if err != nil {
			return nil, err
		}
		files["tailwind.config.js"] = content
	} else {
		content, err := s.render("theme.css.tmpl", set)
		if err != nil {
			return nil, err
		}
		files["tonal.tailwind.css"] = content
	}

	return files, nil
}

// render loads and executes one of the embedded templates.
func (s *Sink) render(name string, set token.Set) ([]byte, error) {
	loader := tmplloader.New(s.Name(), templates)
	if s.verbose {
		loader.WithVerbose(true, sink.NewVerboseLogger(os.Stderr))
	}
	tmplContent, _, err := loader.Load(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read template %s: %w", name, err)
	}

	tmpl, err := template.New(name).Funcs(sink.TemplateFuncs()).Parse(string(tmplContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, set); err != nil {
		return nil, fmt.Errorf("failed to execute template %s: %w", name, err)
	}

	return buf.Bytes(), nil
}
