// Package config handles global dateseq configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/dateseq/dateseq/internal/atomicfile"
	"github.com/dateseq/dateseq/internal/paths"
)

// Config represents the global dateseq configuration.
type Config struct {
	// Defaults override the built-in gen flag defaults. Flags always win.
	Defaults DefaultsConfig `toml:"defaults"`

	// History controls generation-history recording.
	History HistoryConfig `toml:"history"`

	// UI controls optional CLI theming preferences.
	UI UIConfig `toml:"ui"`
}

// DefaultsConfig overrides built-in gen defaults.
type DefaultsConfig struct {
	// Separator joins dates in text output. Escape tokens \t, \n, \r are
	// recognized the same way as on the command line.
	Separator string `toml:"separator"`

	// OutputFormat is the strftime format for rendered dates.
	OutputFormat string `toml:"output_format"`

	// InputFormat is the strftime format for begin/end arguments.
	InputFormat string `toml:"input_format"`
}

// HistoryConfig controls the generation-history store.
type HistoryConfig struct {
	// Disabled turns off recording entirely.
	Disabled bool `toml:"disabled"`

	// MaxEntries caps retained rows; 0 keeps the built-in cap.
	MaxEntries int `toml:"max_entries"`
}

// UIConfig represents optional CLI theming preferences.
type UIConfig struct {
	// Accent is an optional accent color for CLI output and markdown
	// rendering. Supported values are ANSI color codes ("0" to "255") or
	// hex colors ("#RRGGBB").
	Accent string `toml:"accent"`

	// CodeTheme sets the Glamour/Chroma theme used for rendered markdown
	// code blocks. Example values: "monokai", "dracula", "github".
	CodeTheme string `toml:"code_theme"`
}

// Load loads the configuration from the default location.
// Returns a zero config if the file doesn't exist.
func Load() (*Config, error) {
	configPath := DefaultPath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &Config{}, nil
	}

	return LoadFrom(configPath)
}

// LoadFrom loads the configuration from a specific path.
func LoadFrom(path string) (*Config, error) {
	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &config, nil
}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return paths.ConfigFile()
}

const defaultConfig = `# dateseq configuration
# See: https://github.com/dateseq/dateseq

# Defaults for dsq gen. Command-line flags always win.
# [defaults]
# separator = "\\n"
# output_format = "%Y-%m-%d"
# input_format = "%Y-%m-%d"

# Generation history (dsq history).
# [history]
# disabled = false
# max_entries = 500

# Optional UI accent color for headers/links in terminal output.
# Supports ANSI color codes (0-255) or hex (#RRGGBB).
# [ui]
# accent = "39"
# code_theme = "monokai"
`

// CreateDefault writes the commented default config file to the default
// path. When the file already exists it is left alone unless force is
// set. The boolean reports whether a file was written.
func CreateDefault(force bool) (string, bool, error) {
	return CreateDefaultAt(DefaultPath(), force)
}

// CreateDefaultAt writes the commented default config file to an
// explicit path.
func CreateDefaultAt(path string, force bool) (string, bool, error) {
	if _, err := os.Stat(path); err == nil && !force {
		return path, false, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", false, fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := atomicfile.WriteFile(path, []byte(defaultConfig), 0o644); err != nil {
		return "", false, fmt.Errorf("failed to write config file: %w", err)
	}

	return path, true, nil
}
