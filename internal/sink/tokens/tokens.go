// Package tokens provides an output sink for the raw JSON token document.
package tokens

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/jmylchreest/tonal/internal/token"
)

// Sink implements the sink.Sink interface for JSON token output.
type Sink struct {
	file string
}

// New creates a new JSON token sink with default settings.
func New() *Sink {
	return &Sink{
		file: "tonal.json",
	}
}

// Name returns the sink name.
func (s *Sink) Name() string {
	return "tokens"
}

// Description returns the sink description.
func (s *Sink) Description() string {
	return "Generate the raw JSON token document"
}

// RegisterFlags registers sink-specific flags with the flag set.
func (s *Sink) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&s.file, "tokens.file", "tonal.json", "Output filename for the JSON token document")
}

// Validate checks if the sink configuration is valid.
func (s *Sink) Validate() error {
	if strings.TrimSpace(s.file) == "" {
		return fmt.Errorf("tokens.file cannot be empty")
	}
	return nil
}

// Render creates the JSON token document from the given set.
// Returns map of filename -> content
func (s *Sink) Render(set token.Set) (map[string][]byte, error) {
	content, err := set.Indent()
	if err != nil {
		return nil, fmt.Errorf("failed to encode token document: %w", err)
	}

	return map[string][]byte{s.file: content}, nil
}
