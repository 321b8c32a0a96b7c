// Package sink provides the interface and base types for output sinks.
package sink

import (
	"embed"
	"sort"

	"github.com/spf13/pflag"

	"github.com/jmylchreest/tonal/internal/token"
)

// Sink represents an output sink that can render a token set into one
// or more files in a target format.
type Sink interface {
	// Name returns the sink's name (e.g., "css", "tailwind").
	Name() string

	// Description returns a human-readable description of the sink.
	Description() string

	// Render creates output file(s) from the given token set.
	// Returns map of filename -> content to support sinks that produce multiple files.
	Render(set token.Set) (map[string][]byte, error)

	// RegisterFlags registers sink-specific flags with the flag set.
	RegisterFlags(flags *pflag.FlagSet)

	// Validate checks if the sink configuration is valid.
	Validate() error
}

// TemplateProvider is implemented by sinks whose output is rendered
// from embedded templates that users can override.
type TemplateProvider interface {
	// Templates returns the embedded template filesystem.
	Templates() embed.FS
}

// Verbose is implemented by sinks that can emit extra diagnostics
// while rendering.
type Verbose interface {
	// SetVerbose enables or disables verbose logging for the sink.
	SetVerbose(verbose bool)
}

// Registry holds all registered output sinks.
type Registry struct {
	sinks map[string]Sink
}

// NewRegistry creates a new sink registry.
func NewRegistry() *Registry {
	return &Registry{
		sinks: make(map[string]Sink),
	}
}

// Register adds a sink to the registry.
func (r *Registry) Register(s Sink) {
	r.sinks[s.Name()] = s
}

// Get retrieves a sink by name.
func (r *Registry) Get(name string) (Sink, bool) {
	s, ok := r.sinks[name]
	return s, ok
}

// List returns all registered sink names in sorted order.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.sinks))
	for name := range r.sinks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns all registered sinks.
func (r *Registry) All() map[string]Sink {
	// Return a copy to prevent external modification
	sinks := make(map[string]Sink, len(r.sinks))
	for name, s := range r.sinks {
		sinks[name] = s
	}
	return sinks
}
