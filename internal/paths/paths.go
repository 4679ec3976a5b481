// Package paths resolves where dateseq keeps its files on disk.
//
// Config and the generation-history database live under one application
// directory so that a single override relocates the whole footprint:
// the DATESEQ_DIR environment variable wins, then ~/.config/dateseq
// (XDG style) when it already exists, then the OS-specific user config
// directory.
package paths

import (
	"os"
	"path/filepath"
)

// EnvDir is the environment variable overriding the application directory.
const EnvDir = "DATESEQ_DIR"

const (
	appDirName      = "dateseq"
	configFileName  = "config.toml"
	historyFileName = "history.db"
)

// AppDir returns the directory holding dateseq's config and state.
func AppDir() string {
	if dir := os.Getenv(EnvDir); dir != "" {
		return dir
	}

	// Prefer an existing XDG-style ~/.config/dateseq.
	if home, err := os.UserHomeDir(); err == nil {
		xdg := filepath.Join(home, ".config", appDirName)
		if _, err := os.Stat(xdg); err == nil {
			return xdg
		}
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, appDirName)
	}

	// Last resort fallback
	return "."
}

// ConfigFile returns the path of the TOML config file.
func ConfigFile() string {
	return filepath.Join(AppDir(), configFileName)
}

// HistoryDB returns the path of the generation-history database.
func HistoryDB() string {
	return filepath.Join(AppDir(), historyFileName)
}
