package commands

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// The binary was renamed to dsq and the gen flags settled on
// --begin-date/--end-date/--increment. Canonical docs must not drift
// back to the old spellings.
func TestCanonicalDocsUseCurrentCommandSyntax(t *testing.T) {
	t.Parallel()

	files := []string{
		"docs/index.yaml",
		"docs/getting-started.md",
		"docs/sequences.md",
		"docs/format-codes.md",
		"docs/configuration.md",
		"internal/commands/registry.go",
	}

	legacyTokens := []string{
		"dateseq gen",
		"--start-date",
		"--stop-date",
		"--step ",
	}

	root := repoRoot(t)
	for _, rel := range files {
		path := filepath.Join(root, rel)
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read %s: %v", rel, err)
		}
		content := string(data)
		for _, token := range legacyTokens {
			if strings.Contains(content, token) {
				t.Errorf("%s contains legacy token %q", rel, token)
			}
		}
	}
}

func repoRoot(t *testing.T) string {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("failed to resolve caller path")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(thisFile), "..", ".."))
}
