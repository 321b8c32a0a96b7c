// Package cli provides the command-line interface for Tonal.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/tonal/internal/config"
	"github.com/jmylchreest/tonal/internal/version"
)

var (
	// Global flags
	rootConfig  string
	rootVerbose bool
	rootQuiet   bool

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "tonal",
		Short: "A perceptual colour ramp generator",
		Long: `Tonal derives thirteen-step tint and shade ramps from seed colours and
writes them out as design tokens: JSON, CSS custom properties, SCSS
variables and Tailwind theme blocks.

Each family in the configuration anchors the middle of its ramp with a
base colour; lightness, saturation and hue are interpolated outwards
with eased curves or sparse anchors, and every generated step can be
checked for WCAG or APCA contrast against black and white.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}
)

// NewRootCmd returns the fully wired root command. It is called by
// main.main() and by command tests that need a fresh entry point.
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&rootConfig, "config", "c", "", "config file (default searches ./tonal.yaml and ~/.config/tonal/)")
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&rootQuiet, "quiet", "q", false, "suppress non-error output")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(contrastCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(templatesCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the logger shared by all commands. Engine warnings
// (discarded anchors, malformed curve entries) surface here, so the
// default level keeps them visible; --quiet wins over --verbose.
func newLogger() hclog.Logger {
	level := hclog.Warn
	if rootVerbose {
		level = hclog.Debug
	}
	if rootQuiet {
		level = hclog.Off
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "tonal",
		Level:  level,
		Output: os.Stderr,
	})
}

// loadConfig resolves the configuration from --config or the search path.
func loadConfig(log hclog.Logger) (*config.Config, error) {
	return config.Load(rootConfig, log)
}

// selectFamilies returns the families named in args, or every configured
// family when args is empty. Order follows the configuration (sorted).
func selectFamilies(cfg *config.Config, args []string) ([]config.Family, error) {
	if len(args) == 0 {
		return cfg.Families, nil
	}
	selected := make([]config.Family, 0, len(args))
	for _, name := range args {
		fam, ok := cfg.Family(name)
		if !ok {
			return nil, fmt.Errorf("unknown family: %s (configured: %s)", name, familyNames(cfg))
		}
		selected = append(selected, fam)
	}
	return selected, nil
}

func familyNames(cfg *config.Config) string {
	names := ""
	for i, fam := range cfg.Families {
		if i > 0 {
			names += ", "
		}
		names += fam.Name
	}
	return names
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}
