package cli

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/dateseq/dateseq/internal/history"
	"github.com/dateseq/dateseq/internal/paths"
)

// setupHistoryTest points the history database at a temp dir and resets
// the list flags and pipe override.
func setupHistoryTest(t *testing.T) {
	t.Helper()
	t.Setenv(paths.EnvDir, t.TempDir())

	prevCfg := cfg
	prevJSON := jsonOutput
	prevLimit := historyListLimit
	prevPipe := historyListPipe
	prevNoPipe := historyListNoPipe
	prevOverride := pipeFormatOverride
	t.Cleanup(func() {
		cfg = prevCfg
		jsonOutput = prevJSON
		historyListLimit = prevLimit
		historyListPipe = prevPipe
		historyListNoPipe = prevNoPipe
		pipeFormatOverride = prevOverride
	})

	cfg = nil
	jsonOutput = false
	historyListLimit = 20
	historyListPipe = false
	historyListNoPipe = false
	pipeFormatOverride = nil
}

func seedHistoryEntries(t *testing.T, entries ...history.Entry) {
	t.Helper()
	store, err := history.Open(paths.HistoryDB(), history.DefaultMaxEntries)
	if err != nil {
		t.Fatalf("open history: %v", err)
	}
	defer store.Close()
	for _, e := range entries {
		if err := store.Record(e); err != nil {
			t.Fatalf("record entry: %v", err)
		}
	}
}

func TestHistoryListJSONReturnsNewestFirst(t *testing.T) {
	setupHistoryTest(t)
	now := time.Now()
	seedHistoryEntries(t,
		history.Entry{RunAt: now.Add(-2 * time.Hour), First: "2025-01-01", Last: "2025-01-03", Count: 3, Increment: 1, OutputFormat: "%Y-%m-%d"},
		history.Entry{RunAt: now.Add(-1 * time.Hour), First: "2025-02-01", Last: "2025-02-07", Count: 7, Increment: 1, Days: 7, OutputFormat: "%Y-%m-%d"},
	)

	jsonOutput = true
	out := captureStdout(t, func() {
		if err := runHistoryList(historyListCmd, []string{}); err != nil {
			t.Fatalf("runHistoryList: %v", err)
		}
	})

	var resp struct {
		OK   bool `json:"ok"`
		Data struct {
			Entries []struct {
				First string `json:"first"`
				Last  string `json:"last"`
				Count int64  `json:"count"`
			} `json:"entries"`
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
	if len(resp.Data.Entries) != 2 || resp.Meta.Count != 2 {
		t.Fatalf("expected 2 entries, got %d (meta %d); out=%s", len(resp.Data.Entries), resp.Meta.Count, out)
	}
	if resp.Data.Entries[0].First != "2025-02-01" {
		t.Fatalf("expected newest entry first, got %q", resp.Data.Entries[0].First)
	}
	if resp.Data.Entries[1].Count != 3 {
		t.Fatalf("expected older entry count=3, got %d", resp.Data.Entries[1].Count)
	}
}

func TestHistoryListPipeFormat(t *testing.T) {
	setupHistoryTest(t)
	seedHistoryEntries(t,
		history.Entry{First: "2025-01-01", Last: "2025-01-03", Count: 3, Increment: 1, OutputFormat: "%Y-%m-%d"},
	)

	historyListPipe = true
	out := captureStdout(t, func() {
		if err := runHistoryList(historyListCmd, []string{}); err != nil {
			t.Fatalf("runHistoryList: %v", err)
		}
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 pipe line, got %d:\n%s", len(lines), out)
	}
	fields := strings.Split(lines[0], "\t")
	if len(fields) != 3 {
		t.Fatalf("expected 3 tab-separated fields, got %d: %q", len(fields), lines[0])
	}
	if fields[0] != "1" {
		t.Fatalf("expected row number 1, got %q", fields[0])
	}
	if !strings.Contains(fields[2], "2025-01-01 .. 2025-01-03 (3)") {
		t.Fatalf("expected range summary in content, got %q", fields[2])
	}
}

func TestHistoryListEmptyState(t *testing.T) {
	setupHistoryTest(t)

	historyListNoPipe = true
	out := captureStdout(t, func() {
		if err := runHistoryList(historyListCmd, []string{}); err != nil {
			t.Fatalf("runHistoryList: %v", err)
		}
	})

	if !strings.Contains(out, "No generations recorded yet") {
		t.Fatalf("expected empty-state notice, got:\n%s", out)
	}
	if !strings.Contains(out, "dsq gen") {
		t.Fatalf("expected gen hint, got:\n%s", out)
	}
}

func TestHistoryListRespectsLimit(t *testing.T) {
	setupHistoryTest(t)
	now := time.Now()
	seedHistoryEntries(t,
		history.Entry{RunAt: now.Add(-3 * time.Hour), First: "2025-01-01", Last: "2025-01-01", Count: 1, Increment: 1, OutputFormat: "%Y-%m-%d"},
		history.Entry{RunAt: now.Add(-2 * time.Hour), First: "2025-01-02", Last: "2025-01-02", Count: 1, Increment: 1, OutputFormat: "%Y-%m-%d"},
		history.Entry{RunAt: now.Add(-1 * time.Hour), First: "2025-01-03", Last: "2025-01-03", Count: 1, Increment: 1, OutputFormat: "%Y-%m-%d"},
	)

	jsonOutput = true
	historyListLimit = 2
	out := captureStdout(t, func() {
		if err := runHistoryList(historyListCmd, []string{}); err != nil {
			t.Fatalf("runHistoryList: %v", err)
		}
	})

	var resp struct {
		Meta struct {
			Count int `json:"count"`
		} `json:"meta"`
	}
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("expected JSON output, got parse error: %v; out=%s", err, out)
	}
	if resp.Meta.Count != 2 {
		t.Fatalf("expected 2 entries with limit=2, got %d", resp.Meta.Count)
	}
}

func TestHistoryClearDeletesEntries(t *testing.T) {
	setupHistoryTest(t)
	seedHistoryEntries(t,
		history.Entry{First: "2025-01-01", Last: "2025-01-03", Count: 3, Increment: 1, OutputFormat: "%Y-%m-%d"},
		history.Entry{First: "2025-02-01", Last: "2025-02-07", Count: 7, Increment: 1, OutputFormat: "%Y-%m-%d"},
	)

	jsonOutput = true
	out := captureStdout(t, func() {
		if err := historyClearCmd.RunE(historyClearCmd, []string{}); err != nil {
			t.Fatalf("historyClearCmd.RunE: %v", err)
		}
	})

	var resp struct {
		OK   bool `json:"ok"`
		Data struct {
			Deleted int64 `json:"deleted"`
		} `json:"data"`
	}
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("expected JSON output, got parse error: %v; out=%s", err, out)
	}
	if !resp.OK || resp.Data.Deleted != 2 {
		t.Fatalf("expected deleted=2, got ok=%t deleted=%d", resp.OK, resp.Data.Deleted)
	}

	store, err := history.Open(paths.HistoryDB(), history.DefaultMaxEntries)
	if err != nil {
		t.Fatalf("reopen history: %v", err)
	}
	defer store.Close()
	entries, err := store.Recent(10)
	if err != nil {
		t.Fatalf("read history: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty history after clear, got %d entries", len(entries))
	}
}

func TestHistoryParamsSummary(t *testing.T) {
	tests := []struct {
		name  string
		entry history.Entry
		want  string
	}{
		{
			name:  "plain step",
			entry: history.Entry{Increment: 1, OutputFormat: "%Y-%m-%d"},
			want:  "step 1, fmt %Y-%m-%d",
		},
		{
			name:  "window",
			entry: history.Entry{Increment: 2, Days: 7, OutputFormat: "%Y-%m-%d"},
			want:  "step 2, window 7d, fmt %Y-%m-%d",
		},
		{
			name:  "reverse window",
			entry: history.Entry{Increment: 1, Days: 5, Reverse: true, OutputFormat: "%d/%m/%Y"},
			want:  "step 1, window 5d, reverse, fmt %d/%m/%Y",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := historyParamsSummary(tt.entry)
			if got != tt.want {
				t.Errorf("historyParamsSummary() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatTimeAgo(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"just now", now.Add(-30 * time.Second), "just now"},
		{"minutes", now.Add(-5 * time.Minute), "5 minutes ago"},
		{"one hour", now.Add(-90 * time.Minute), "1 hour ago"},
		{"days", now.Add(-49 * time.Hour), "2 days ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatTimeAgo(tt.t)
			if got != tt.want {
				t.Errorf("formatTimeAgo() = %q, want %q", got, tt.want)
			}
		})
	}
}
