// Package cli provides the command-line interface for Tonal.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tonal/internal/ramp"
	"github.com/jmylchreest/tonal/internal/sink"
	"github.com/jmylchreest/tonal/internal/sink/css"
	"github.com/jmylchreest/tonal/internal/sink/scss"
	"github.com/jmylchreest/tonal/internal/sink/tailwind"
	"github.com/jmylchreest/tonal/internal/sink/tokens"
	"github.com/jmylchreest/tonal/internal/token"
)

var (
	// Shared sink registry used by the generate and templates commands
	sinkRegistry *sink.Registry

	// Generate command flags
	generateOutputs   []string
	generateOutputDir string
	generateDryRun    bool
	generatePreview   bool
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate colour ramps and write them to output sinks",
	Long: `Generate a thirteen-step ramp for every configured colour family and
write the result to the selected output sinks.

Each family anchors its base colour at step 500 and interpolates
lightness, saturation and hue outwards to the tint and shade ends.
Every sink renders the same token set into a different format and
contributes one file to the output directory.

Output Sinks:
  css       - CSS custom properties (:root block)
  scss      - SCSS variables
  tailwind  - Tailwind CSS theme block
  tokens    - Design token JSON document
  all       - Run all sinks (default)

Examples:
  # Every sink, into the current directory
  tonal generate

  # Only the CSS custom properties, into ./dist
  tonal generate --outputs css --output-dir dist

  # Inspect the ramps without writing anything
  tonal generate --preview --dry-run

  # Custom config location and variable prefix
  tonal generate -c themes/brand.yaml --outputs css --css.prefix brand`,
	RunE: runGenerate,
}

func init() {
	sinkRegistry = sink.NewRegistry()
	sinkRegistry.Register(tokens.New())
	sinkRegistry.Register(css.New())
	sinkRegistry.Register(scss.New())
	sinkRegistry.Register(tailwind.New())

	// Output sink selection
	generateCmd.Flags().StringSliceVarP(&generateOutputs, "outputs", "o", []string{"all"}, "Output sinks (comma-separated or 'all')")

	// General options
	generateCmd.Flags().StringVar(&generateOutputDir, "output-dir", ".", "Directory generated files are written into")
	generateCmd.Flags().BoolVar(&generateDryRun, "dry-run", false, "Preview without writing files")
	generateCmd.Flags().BoolVar(&generatePreview, "preview", false, "Show ramp swatches before writing")

	// Register sink flags
	for _, name := range sinkRegistry.List() {
		if s, ok := sinkRegistry.Get(name); ok {
			s.RegisterFlags(generateCmd.Flags())
		}
	}
}

// runGenerate executes the generate command.
func runGenerate(cmd *cobra.Command, args []string) error {
	log := newLogger()

	cfg, err := loadConfig(log)
	if err != nil {
		return err
	}

	// Generate every family up front so a sink failure can never leave a
	// partial token set behind.
	gen := ramp.New(log)
	ramps := make([]ramp.Ramp, len(cfg.Families))
	var set token.Set
	for i, fam := range cfg.Families {
		ramps[i] = fam.Generate(gen)
		set.Add(token.NewFamily(fam.Name, ramps[i]))

		if rootVerbose {
			base := ramps[i].Pivot()
			fmt.Fprintf(os.Stderr, "✓ Family: %s (%s mode)\n", fam.Name, fam.Mode)
			fmt.Fprintf(os.Stderr, "  └─ base %s\n", base.Hex())
		}
	}

	// Show preview if requested
	if generatePreview {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		for i, fam := range cfg.Families {
			printRampPreview(out, fam.Name, ramps[i], terminalWidth())
		}
	}

	selected, err := selectSinks(generateOutputs)
	if err != nil {
		return err
	}

	// Execute output sinks
	successCount := 0
	for _, s := range selected {
		if err := s.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "⚠ Skipping %s: %v\n", s.Name(), err)
			continue
		}

		if v, ok := s.(sink.Verbose); ok {
			v.SetVerbose(rootVerbose)
		}

		if rootVerbose {
			fmt.Fprintf(os.Stderr, "\n✓ Output sink: %s\n", s.Name())
			fmt.Fprintf(os.Stderr, "  └─ %s\n", s.Description())
		}

		files, err := s.Render(set)
		if err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s failed: %v\n", s.Name(), err)
			continue
		}

		// Write files in a stable order
		names := make([]string, 0, len(files))
		for filename := range files {
			names = append(names, filename)
		}
		sort.Strings(names)

		for _, filename := range names {
			content := files[filename]
			fullPath := filepath.Join(generateOutputDir, filename)

			if generateDryRun {
				fmt.Printf("  Would write: %s (%d bytes)\n", fullPath, len(content))
			} else {
				if err := writeFile(fullPath, content); err != nil {
					return fmt.Errorf("failed to write %s: %w", fullPath, err)
				}
				fmt.Printf("  ├─ %s (%d bytes)\n", fullPath, len(content))
			}
		}

		successCount++
	}

	// Summary
	if !generateDryRun {
		fmt.Println()
		if successCount > 0 {
			fmt.Printf("✓ Done! Wrote %d output sink(s)\n", successCount)
		} else {
			return fmt.Errorf("no output sinks succeeded")
		}
	}

	return nil
}

// selectSinks resolves the --outputs flag into sink instances, expanding
// the "all" shorthand into every registered sink.
func selectSinks(names []string) ([]sink.Sink, error) {
	if len(names) == 1 && names[0] == "all" {
		names = sinkRegistry.List()
	}

	selected := make([]sink.Sink, 0, len(names))
	for _, name := range names {
		s, ok := sinkRegistry.Get(name)
		if !ok {
			return nil, fmt.Errorf("unknown output sink: %s (available: %s)", name, strings.Join(sinkRegistry.List(), ", "))
		}
		selected = append(selected, s)
	}
	return selected, nil
}

// writeFile writes content to a file, creating directories as needed.
func writeFile(path string, content []byte) error {
	// Expand ~ to home directory
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	// Check if file exists and create backup
	if _, err := os.Stat(path); err == nil {
		backupPath := path + ".backup"
		if err := os.Rename(path, backupPath); err != nil {
			// If backup fails, continue anyway
			fmt.Fprintf(os.Stderr, "  ⚠ Could not create backup: %v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "  ℹ Created backup: %s\n", backupPath)
		}
	}

	// Write the file
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}
