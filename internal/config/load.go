package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/viper"
)

// DefaultConfigName is the base name of the configuration file
// searched for when no explicit path is given.
const DefaultConfigName = "tonal"

// Load reads and resolves a configuration with the usual priority:
// environment variables (TONAL_ prefix) over the file over built-in
// defaults. An explicit path must exist and parse; with no path the
// search covers tonal.yaml in the working directory and
// ~/.config/tonal, then the legacy ~/.tonal.yaml dotfile, and a
// missing file simply falls through to environment and defaults.
func Load(path string, log hclog.Logger) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	home, homeErr := os.UserHomeDir()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(DefaultConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if homeErr == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "tonal"))
		}
	}

	v.SetEnvPrefix("TONAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	err := v.ReadInConfig()
	if _, notFound := err.(viper.ConfigFileNotFoundError); notFound && path == "" && homeErr == nil {
		// Legacy dotfile location.
		v.SetConfigName("." + DefaultConfigName)
		v.AddConfigPath(home)
		err = v.ReadInConfig()
	}
	if err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound || path != "" {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		// No file anywhere; environment and defaults still apply.
	}

	var file File
	if err := v.Unmarshal(&file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return Resolve(file, log)
}
