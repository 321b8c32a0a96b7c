// Package scss provides an output sink for SCSS variables and maps.
package scss

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

// Sink implements the sink.Sink interface for SCSS output.
type Sink struct {
	prefix  string
	verbose bool
}

// New creates a new SCSS output sink with default settings.
func New() *Sink {
	return &Sink{}
}

// Name returns the sink name.
func (s *Sink) Name() string {
	return "scss"
}

// Description returns the sink description.
func (s *Sink) Description() string {
	return "Generate SCSS variables and maps for the colour ramps"
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
	flags.StringVar(&s.prefix, "scss.prefix", "", "Optional prefix for variable names (e.g. \"tonal\")")
}

// Validate checks if the sink configuration is valid.
func (s *Sink) Validate() error {
	return nil
}

// templateData holds data for the SCSS template.
type templateData struct {
	Prefix string
	Set    token.Set
}

// Render creates the SCSS partial from the given token set.
// Returns map of filename -> content
func (s *Sink) Render(set token.Set) (map[string][]byte, error) {
	loader := tmplloader.New(s.Name(), templates)
	if s.verbose {
		loader.WithVerbose(true, sink.NewVerboseLogger(os.Stderr))
	}
	tmplContent, _, err := loader.Load("tonal.scss.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to read SCSS template: %w", err)
	}

	tmpl, err := template.New("tonal.scss").Funcs(sink.TemplateFuncs()).Parse(string(tmplContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse SCSS template: %w", err)
	}

	prefix := s.prefix
	if prefix != "" {
		prefix += "-"
	}

	data := templateData{
		Prefix: prefix,
		Set:    set,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute SCSS template: %w", err)
	}

	return map[string][]byte{"_tonal.scss": buf.Bytes()}, nil
}
