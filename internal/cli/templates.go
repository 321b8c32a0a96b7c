// Package cli provides the command-line interface for Tonal.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tonal/internal/sink"
	"github.com/jmylchreest/tonal/internal/sink/template"
)

var (
	templateSinks    []string
	templateForce    bool
	templateLocation string
)

// templatesCmd represents the templates command.
var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Manage output sink templates",
	Long: `Manage output sink templates including listing and dumping embedded templates.

Templates can be customised by extracting them to ~/.config/tonal/templates/{sink}/
and modifying them. Custom templates will be used instead of embedded ones.

Examples:
  tonal templates list
  tonal templates dump -o css,scss
  tonal templates dump -o css --force`,
}

// templatesListCmd lists available templates.
var templatesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available sink templates",
	Long: `List all available templates from output sinks.

Shows which templates are embedded and which have custom overrides.`,
	RunE: runTemplatesList,
}

// templatesDumpCmd dumps embedded templates to files.
var templatesDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Dump embedded templates to files",
	Long: `Extract embedded sink templates to ~/.config/tonal/templates/{sink}/

This allows you to customise the templates used for generating output files.
By default, every sink with templates is dumped.

Use -o/--outputs to specify which sinks to dump.
Use -l/--location to specify a custom output directory.

Examples:
  tonal templates dump
  tonal templates dump -o css,scss
  tonal templates dump -o css --force
  tonal templates dump -l ./templates`,
	RunE: runTemplatesDump,
}

func init() {
	templatesCmd.AddCommand(templatesListCmd)
	templatesCmd.AddCommand(templatesDumpCmd)

	// Dump flags.
	templatesDumpCmd.Flags().StringSliceVarP(&templateSinks, "outputs", "o", []string{}, "comma-separated list of sinks (default: all)")
	templatesDumpCmd.Flags().BoolVarP(&templateForce, "force", "f", false, "overwrite existing custom templates")
	templatesDumpCmd.Flags().StringVarP(&templateLocation, "location", "l", "", "custom location to dump templates (default: ~/.config/tonal/templates)")

	// List flags.
	templatesListCmd.Flags().StringSliceVarP(&templateSinks, "outputs", "o", []string{}, "comma-separated list of sinks to list (default: all)")
}

// templateSinkNames resolves the --outputs filter against the registry,
// defaulting to every registered sink in sorted order.
func templateSinkNames() ([]string, error) {
	if len(templateSinks) == 0 {
		return sinkRegistry.List(), nil
	}
	for _, name := range templateSinks {
		if _, ok := sinkRegistry.Get(name); !ok {
			return nil, fmt.Errorf("unknown output sink: %s (available: %s)", name, strings.Join(sinkRegistry.List(), ", "))
		}
	}
	return templateSinks, nil
}

func runTemplatesList(cmd *cobra.Command, args []string) error {
	names, err := templateSinkNames()
	if err != nil {
		return err
	}

	fmt.Println("Available sink templates:")
	fmt.Println()

	hasCustomTemplates := false
	for _, name := range names {
		s, _ := sinkRegistry.Get(name)
		loader := sinkTemplateLoader(s, "")
		if loader == nil {
			fmt.Printf("Sink: %s (no templates)\n", name)
			fmt.Println()
			continue
		}

		templates, err := loader.ListEmbeddedTemplates()
		if err != nil {
			return fmt.Errorf("failed to list templates for %s: %w", name, err)
		}

		fmt.Printf("Sink: %s\n", name)
		fmt.Printf("  Custom template directory: %s\n", loader.CustomDir())
		fmt.Printf("  Templates:\n")

		for _, tmpl := range templates {
			info := loader.GetInfo(tmpl)
			if info.CustomExists {
				fmt.Printf("    - %s*\n", tmpl)
				hasCustomTemplates = true
			} else {
				fmt.Printf("    - %s\n", tmpl)
			}
		}
		fmt.Println()
	}

	fmt.Println("To customise a template, use: tonal templates dump -o <sink>")
	if hasCustomTemplates {
		fmt.Println("Templates with active overrides are shown with an asterisk (*).")
	}

	return nil
}

func runTemplatesDump(cmd *cobra.Command, args []string) error {
	names, err := templateSinkNames()
	if err != nil {
		return err
	}

	// Expand the custom location if provided.
	customBase := templateLocation
	if customBase != "" {
		if strings.HasPrefix(customBase, "~/") {
			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("failed to get home directory: %w", err)
			}
			customBase = filepath.Join(home, customBase[2:])
		}
		fmt.Printf("Dumping templates to custom location: %s\n", customBase)
		fmt.Println()
	}

	totalDumped := 0
	for _, name := range names {
		s, _ := sinkRegistry.Get(name)
		loader := sinkTemplateLoader(s, customBase)
		if loader == nil {
			if rootVerbose {
				fmt.Printf("Skipping %s: no templates\n", name)
			}
			continue
		}

		templates, err := loader.ListEmbeddedTemplates()
		if err != nil {
			return fmt.Errorf("failed to list templates for %s: %w", name, err)
		}
		if len(templates) == 0 {
			if rootVerbose {
				fmt.Printf("Skipping %s: no templates\n", name)
			}
			continue
		}

		fmt.Printf("Dumping templates for %s...\n", name)

		dumped, err := loader.DumpAllTemplates(templateForce)
		for _, path := range dumped {
			fmt.Printf("   %s\n", path)
			totalDumped++
		}

		if err == nil {
			continue
		}

		// Anything other than skipped existing files is a real failure.
		if templateForce || !strings.Contains(err.Error(), "already exists") {
			return fmt.Errorf("failed to dump templates for %s: %w", name, err)
		}

		// Split combined errors and show each skipped file.
		errorParts := strings.Split(err.Error(), "; ")
		for _, errPart := range errorParts {
			if !strings.Contains(errPart, "already exists") {
				continue
			}
			idx := strings.Index(errPart, "already exists: ")
			if idx == -1 {
				continue
			}
			path := strings.TrimPrefix(errPart[idx:], "already exists: ")
			path = strings.TrimSuffix(path, " (use --force to overwrite)")
			fmt.Printf("  ⊘ %s (already exists)\n", path)
		}
		if len(dumped) == 0 {
			fmt.Fprintf(os.Stderr, "  Use --force to overwrite existing templates\n")
		}
	}

	if totalDumped == 0 {
		if templateForce {
			fmt.Println("No templates were dumped.")
		} else {
			fmt.Println("No templates were dumped. Custom templates may already exist.")
			fmt.Println("Use --force to overwrite existing templates.")
		}
		return nil
	}

	fmt.Println()
	fmt.Printf("Successfully dumped %d template(s)\n", totalDumped)
	fmt.Println()
	fmt.Println("You can now customise these templates. They will be used instead of the embedded versions.")

	return nil
}

// sinkTemplateLoader returns a template loader for the given sink, or nil
// when the sink has no embedded templates.
func sinkTemplateLoader(s sink.Sink, customBase string) *template.Loader {
	provider, ok := s.(sink.TemplateProvider)
	if !ok {
		return nil
	}

	loader := template.New(s.Name(), provider.Templates())
	if customBase != "" {
		loader = loader.WithCustomBase(customBase)
	}
	return loader
}
