package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/dateseq/dateseq/internal/config"
	"github.com/dateseq/dateseq/internal/history"
	"github.com/dateseq/dateseq/internal/paths"
)

var captureStdoutMu sync.Mutex

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	captureStdoutMu.Lock()
	defer captureStdoutMu.Unlock()

	orig := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}

	os.Stdout = w

	outputCh := make(chan string, 1)
	errCh := make(chan error, 1)
	go func() {
		var buf bytes.Buffer
		_, copyErr := io.Copy(&buf, r)
		_ = r.Close()
		if copyErr != nil {
			errCh <- copyErr
			return
		}
		outputCh <- buf.String()
	}()

	fn()

	os.Stdout = orig
	_ = w.Close()
	select {
	case err := <-errCh:
		t.Fatalf("io.Copy: %v", err)
		return ""
	case output := <-outputCh:
		return output
	}
}

func resetGenFlagsForTest() {
	for _, name := range []string{"separator", "output-format", "input-format", "begin-date", "end-date", "increment", "days", "reverse"} {
		f := genCmd.Flags().Lookup(name)
		if f == nil {
			continue
		}
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
}

// setupGenTest isolates the global state a gen run touches. History is
// disabled unless the test opts back in.
func setupGenTest(t *testing.T) {
	t.Helper()

	prevCfg := cfg
	prevJSON := jsonOutput
	t.Cleanup(func() {
		cfg = prevCfg
		jsonOutput = prevJSON
		resetGenFlagsForTest()
	})

	cfg = &config.Config{History: config.HistoryConfig{Disabled: true}}
	jsonOutput = false
	resetGenFlagsForTest()
}

func setGenFlag(t *testing.T, name, value string) {
	t.Helper()
	if err := genCmd.Flags().Set(name, value); err != nil {
		t.Fatalf("set --%s=%s: %v", name, value, err)
	}
}

func TestGenPrintsRangeOnePerLine(t *testing.T) {
	setupGenTest(t)
	setGenFlag(t, "begin-date", "2025-01-01")
	setGenFlag(t, "end-date", "2025-01-03")

	out := captureStdout(t, func() {
		if err := genCmd.RunE(genCmd, []string{}); err != nil {
			t.Fatalf("genCmd.RunE: %v", err)
		}
	})

	want := "2025-01-01\n2025-01-02\n2025-01-03\n"
	if out != want {
		t.Fatalf("gen output = %q, want %q", out, want)
	}
}

func TestGenDaysWindowOverridesEndDate(t *testing.T) {
	setupGenTest(t)
	setGenFlag(t, "begin-date", "2025-01-01")
	setGenFlag(t, "end-date", "2025-12-31")
	setGenFlag(t, "days", "3")

	out := captureStdout(t, func() {
		if err := genCmd.RunE(genCmd, []string{}); err != nil {
			t.Fatalf("genCmd.RunE: %v", err)
		}
	})

	want := "2025-01-01\n2025-01-02\n2025-01-03\n"
	if out != want {
		t.Fatalf("gen output = %q, want %q", out, want)
	}
}

func TestGenCountsDownWhenEndPrecedesBegin(t *testing.T) {
	setupGenTest(t)
	setGenFlag(t, "begin-date", "2025-01-03")
	setGenFlag(t, "end-date", "2025-01-01")

	out := captureStdout(t, func() {
		if err := genCmd.RunE(genCmd, []string{}); err != nil {
			t.Fatalf("genCmd.RunE: %v", err)
		}
	})

	want := "2025-01-03\n2025-01-02\n2025-01-01\n"
	if out != want {
		t.Fatalf("gen output = %q, want %q", out, want)
	}
}

func TestGenReverseWalksWindowBackward(t *testing.T) {
	setupGenTest(t)
	setGenFlag(t, "begin-date", "2025-06-03")
	setGenFlag(t, "days", "3")
	setGenFlag(t, "reverse", "true")

	out := captureStdout(t, func() {
		if err := genCmd.RunE(genCmd, []string{}); err != nil {
			t.Fatalf("genCmd.RunE: %v", err)
		}
	})

	want := "2025-06-03\n2025-06-02\n2025-06-01\n"
	if out != want {
		t.Fatalf("gen output = %q, want %q", out, want)
	}
}

func TestGenSeparatorEscapeForms(t *testing.T) {
	setupGenTest(t)
	setGenFlag(t, "begin-date", "2025-01-01")
	setGenFlag(t, "days", "2")
	setGenFlag(t, "separator", `\t`)

	out := captureStdout(t, func() {
		if err := genCmd.RunE(genCmd, []string{}); err != nil {
			t.Fatalf("genCmd.RunE: %v", err)
		}
	})

	want := "2025-01-01\t2025-01-02\n"
	if out != want {
		t.Fatalf("gen output = %q, want %q", out, want)
	}
}

func TestGenUsesConfigDefaultsForUntouchedFlags(t *testing.T) {
	setupGenTest(t)
	cfg.Defaults.Separator = ", "
	cfg.Defaults.OutputFormat = "%d/%m/%Y"
	setGenFlag(t, "begin-date", "2025-06-01")
	setGenFlag(t, "end-date", "2025-06-02")

	out := captureStdout(t, func() {
		if err := genCmd.RunE(genCmd, []string{}); err != nil {
			t.Fatalf("genCmd.RunE: %v", err)
		}
	})

	want := "01/06/2025, 02/06/2025\n"
	if out != want {
		t.Fatalf("gen output = %q, want %q", out, want)
	}
}

func TestGenExplicitFlagBeatsConfigDefault(t *testing.T) {
	setupGenTest(t)
	cfg.Defaults.OutputFormat = "%d/%m/%Y"
	setGenFlag(t, "begin-date", "2025-06-01")
	setGenFlag(t, "output-format", "%Y")

	out := captureStdout(t, func() {
		if err := genCmd.RunE(genCmd, []string{}); err != nil {
			t.Fatalf("genCmd.RunE: %v", err)
		}
	})

	if out != "2025\n" {
		t.Fatalf("gen output = %q, want %q", out, "2025\n")
	}
}

func TestGenJSONIncludesDatesAndMeta(t *testing.T) {
	setupGenTest(t)
	jsonOutput = true
	setGenFlag(t, "begin-date", "2025-01-01")
	setGenFlag(t, "end-date", "2025-01-05")
	setGenFlag(t, "increment", "2")

	out := captureStdout(t, func() {
		if err := genCmd.RunE(genCmd, []string{}); err != nil {
			t.Fatalf("genCmd.RunE: %v", err)
		}
	})

	var resp struct {
		OK   bool `json:"ok"`
		Data struct {
			Dates []string `json:"dates"`
			First string   `json:"first"`
			Last  string   `json:"last"`
		} `json:"data"`
		Meta struct {
			Count int `json:"count"`
		} `json:"meta"`
	}
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("expected JSON output, got parse error: %v; out=%s", err, out)
	}
	if !resp.OK {
		t.Fatalf("expected ok=true; out=%s", out)
	}
	wantDates := []string{"2025-01-01", "2025-01-03", "2025-01-05"}
	if len(resp.Data.Dates) != len(wantDates) {
		t.Fatalf("expected %d dates, got %d; out=%s", len(wantDates), len(resp.Data.Dates), out)
	}
	for i, d := range wantDates {
		if resp.Data.Dates[i] != d {
			t.Fatalf("dates[%d] = %q, want %q", i, resp.Data.Dates[i], d)
		}
	}
	if resp.Data.First != "2025-01-01" || resp.Data.Last != "2025-01-05" {
		t.Fatalf("first/last = %q/%q, want 2025-01-01/2025-01-05", resp.Data.First, resp.Data.Last)
	}
	if resp.Meta.Count != 3 {
		t.Fatalf("meta.count = %d, want 3", resp.Meta.Count)
	}
}

func TestGenJSONParseErrorEnvelope(t *testing.T) {
	setupGenTest(t)
	jsonOutput = true
	setGenFlag(t, "begin-date", "not-a-date")

	out := captureStdout(t, func() {
		if err := genCmd.RunE(genCmd, []string{}); err != nil {
			t.Fatalf("genCmd.RunE should return nil in JSON mode, got: %v", err)
		}
	})

	var resp struct {
		OK    bool `json:"ok"`
		Error *struct {
			Code    string            `json:"code"`
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("expected JSON output, got parse error: %v; out=%s", err, out)
	}
	if resp.OK {
		t.Fatalf("expected ok=false; out=%s", out)
	}
	if resp.Error == nil || resp.Error.Code != ErrDateParseError {
		t.Fatalf("expected error.code=%s, got %#v; out=%s", ErrDateParseError, resp.Error, out)
	}
	if resp.Error.Details["text"] != "not-a-date" {
		t.Fatalf("expected details.text=not-a-date, got %#v", resp.Error.Details)
	}
}

func TestGenRejectsZeroIncrementInTextMode(t *testing.T) {
	setupGenTest(t)
	setGenFlag(t, "increment", "0")

	err := genCmd.RunE(genCmd, []string{})
	if err == nil {
		t.Fatalf("expected error for zero increment")
	}
	if !strings.Contains(err.Error(), "increment cannot be 0") {
		t.Fatalf("expected increment error, got: %v", err)
	}
}

func TestGenRecordsHistoryEntry(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv(paths.EnvDir, tmp)

	setupGenTest(t)
	cfg = nil // no config file means history stays enabled
	setGenFlag(t, "begin-date", "2025-03-01")
	setGenFlag(t, "days", "7")

	_ = captureStdout(t, func() {
		if err := genCmd.RunE(genCmd, []string{}); err != nil {
			t.Fatalf("genCmd.RunE: %v", err)
		}
	})

	store, err := history.Open(paths.HistoryDB(), history.DefaultMaxEntries)
	if err != nil {
		t.Fatalf("open history: %v", err)
	}
	defer store.Close()

	entries, err := store.Recent(10)
	if err != nil {
		t.Fatalf("read history: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 history entry, got %d", len(entries))
	}
	e := entries[0]
	if e.First != "2025-03-01" || e.Last != "2025-03-07" {
		t.Fatalf("entry range = %q..%q, want 2025-03-01..2025-03-07", e.First, e.Last)
	}
	if e.Count != 7 {
		t.Fatalf("entry count = %d, want 7", e.Count)
	}
	if e.Days != 7 {
		t.Fatalf("entry days = %d, want 7", e.Days)
	}
	if e.OutputFormat != "%Y-%m-%d" {
		t.Fatalf("entry output format = %q, want %%Y-%%m-%%d", e.OutputFormat)
	}
}

func TestGenSkipsHistoryWhenDisabled(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv(paths.EnvDir, tmp)

	setupGenTest(t)
	setGenFlag(t, "begin-date", "2025-03-01")

	_ = captureStdout(t, func() {
		if err := genCmd.RunE(genCmd, []string{}); err != nil {
			t.Fatalf("genCmd.RunE: %v", err)
		}
	})

	if _, err := os.Stat(filepath.Join(tmp, "history.db")); !os.IsNotExist(err) {
		t.Fatalf("expected no history database, stat err = %v", err)
	}
}
