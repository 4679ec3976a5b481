// Package testutil provides reusable test utilities for dateseq
// integration tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TestEnv represents an isolated dateseq application directory. Commands
// run through it see their own config.toml and history.db, never the
// developer's real ones.
type TestEnv struct {
	// Dir is the application directory passed via DATESEQ_DIR.
	Dir    string
	t      *testing.T
	config string
}

// NewTestEnv creates a new test environment builder.
// Call Build() to create the actual directory.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()
	return &TestEnv{t: t}
}

// WithConfig sets the config.toml content for the environment.
func (e *TestEnv) WithConfig(toml string) *TestEnv {
	e.config = toml
	return e
}

// Build creates the application directory and any configured files.
// Returns the TestEnv for method chaining.
func (e *TestEnv) Build() *TestEnv {
	e.t.Helper()

	e.Dir = e.t.TempDir()
	if e.config != "" {
		e.WriteFile("config.toml", e.config)
	}
	return e
}

// WriteFile writes a file into the application directory.
func (e *TestEnv) WriteFile(relPath, content string) {
	e.t.Helper()
	fullPath := filepath.Join(e.Dir, relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		e.t.Fatalf("failed to create directory for %s: %v", relPath, err)
	}
	if err := os.WriteFile(fullPath, []byte(content), 0o644); err != nil {
		e.t.Fatalf("failed to write %s: %v", relPath, err)
	}
}

// ReadFile reads a file from the application directory.
func (e *TestEnv) ReadFile(relPath string) string {
	e.t.Helper()
	content, err := os.ReadFile(filepath.Join(e.Dir, relPath))
	if err != nil {
		e.t.Fatalf("failed to read %s: %v", relPath, err)
	}
	return string(content)
}

// AssertFileExists fails the test if the file does not exist.
func (e *TestEnv) AssertFileExists(relPath string) {
	e.t.Helper()
	if _, err := os.Stat(filepath.Join(e.Dir, relPath)); os.IsNotExist(err) {
		e.t.Errorf("expected file to exist: %s", relPath)
	}
}

// AssertFileNotExists fails the test if the file exists.
func (e *TestEnv) AssertFileNotExists(relPath string) {
	e.t.Helper()
	if _, err := os.Stat(filepath.Join(e.Dir, relPath)); err == nil {
		e.t.Errorf("expected file to not exist: %s", relPath)
	}
}
