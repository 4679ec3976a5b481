package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/dateseq/dateseq/internal/atomicfile"
)

// persistedConfig mirrors Config with pointer fields so that unset values
// stay out of the written file.
type persistedConfig struct {
	Defaults *persistedDefaults `toml:"defaults,omitempty"`
	History  *persistedHistory  `toml:"history,omitempty"`
	UI       *persistedUI       `toml:"ui,omitempty"`
}

type persistedDefaults struct {
	Separator    *string `toml:"separator,omitempty"`
	OutputFormat *string `toml:"output_format,omitempty"`
	InputFormat  *string `toml:"input_format,omitempty"`
}

type persistedHistory struct {
	Disabled   *bool `toml:"disabled,omitempty"`
	MaxEntries *int  `toml:"max_entries,omitempty"`
}

type persistedUI struct {
	Accent    *string `toml:"accent,omitempty"`
	CodeTheme *string `toml:"code_theme,omitempty"`
}

func nonEmptyPtr(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// Save writes the global config to the default config path.
func Save(cfg *Config) error {
	return SaveTo(DefaultPath(), cfg)
}

// SaveTo writes the global config to a specific path atomically.
func SaveTo(path string, cfg *Config) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("config path is required")
	}
	if cfg == nil {
		cfg = &Config{}
	}

	var out persistedConfig

	separator := nonEmptyPtr(cfg.Defaults.Separator)
	outputFormat := nonEmptyPtr(cfg.Defaults.OutputFormat)
	inputFormat := nonEmptyPtr(cfg.Defaults.InputFormat)
	if separator != nil || outputFormat != nil || inputFormat != nil {
		out.Defaults = &persistedDefaults{
			Separator:    separator,
			OutputFormat: outputFormat,
			InputFormat:  inputFormat,
		}
	}

	if cfg.History.Disabled || cfg.History.MaxEntries > 0 {
		h := &persistedHistory{}
		if cfg.History.Disabled {
			disabled := true
			h.Disabled = &disabled
		}
		if cfg.History.MaxEntries > 0 {
			maxEntries := cfg.History.MaxEntries
			h.MaxEntries = &maxEntries
		}
		out.History = h
	}

	accent := nonEmptyPtr(cfg.UI.Accent)
	codeTheme := nonEmptyPtr(cfg.UI.CodeTheme)
	if accent != nil || codeTheme != nil {
		out.UI = &persistedUI{
			Accent:    accent,
			CodeTheme: codeTheme,
		}
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(out); err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := atomicfile.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}

	return nil
}
