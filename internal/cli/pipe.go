// Package cli implements the command-line interface.
// This file provides pipe-friendly output helpers for commands that return lists.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// PipeableItem is one line of pipe-friendly list output.
type PipeableItem struct {
	Num     int    // 1-indexed result number for reference
	ID      string // The unique identifier (used by downstream commands)
	Content string // Human-readable description
}

// pipeFormatOverride stores explicit --pipe/--no-pipe flag values.
// nil means use auto-detection.
var pipeFormatOverride *bool

// SetPipeFormat sets an explicit pipe format override.
// Pass nil to use auto-detection.
func SetPipeFormat(usePipe *bool) {
	pipeFormatOverride = usePipe
}

// ShouldUsePipeFormat reports whether list output should be tab-separated.
// An explicit --pipe/--no-pipe flag wins; otherwise a non-TTY stdout turns
// pipe format on. JSON mode never uses it (the envelope is the format).
func ShouldUsePipeFormat() bool {
	if isJSONOutput() {
		return false
	}
	if pipeFormatOverride != nil {
		return *pipeFormatOverride
	}
	return !isatty.IsTerminal(os.Stdout.Fd())
}

// WritePipeableList writes items as Num<tab>ID<tab>Content lines, the
// shape fzf and cut handle well. Tabs and newlines inside the content are
// flattened to spaces so each item stays on one line.
func WritePipeableList(w io.Writer, items []PipeableItem) {
	for _, item := range items {
		content := strings.ReplaceAll(item.Content, "\t", " ")
		content = strings.ReplaceAll(content, "\n", " ")

		fmt.Fprintf(w, "%d\t%s\t%s\n", item.Num, item.ID, content)
	}
}

// TruncateContent truncates content to a maximum length, adding "..." if truncated.
// Tries to break at word boundaries.
func TruncateContent(content string, maxLen int) string {
	if len(content) <= maxLen {
		return content
	}

	truncated := content[:maxLen-3]
	if lastSpace := strings.LastIndex(truncated, " "); lastSpace > maxLen/2 {
		truncated = truncated[:lastSpace]
	}
	return truncated + "..."
}
