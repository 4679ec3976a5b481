package ui

import (
	"os"

	"github.com/charmbracelet/x/term"
)

// DefaultTermWidth is assumed when stdout is not a terminal or its size
// cannot be read. Markdown and table rendering wrap against it.
const DefaultTermWidth = 120

// DisplayContext carries the terminal facts renderers need. Commands
// create one per invocation and hand it to the renderer.
type DisplayContext struct {
	TermWidth int
	IsTTY     bool
}

// NewDisplayContext probes stdout and returns its rendering context.
func NewDisplayContext() *DisplayContext {
	fd := os.Stdout.Fd()
	if !term.IsTerminal(fd) {
		return &DisplayContext{TermWidth: DefaultTermWidth}
	}

	width := DefaultTermWidth
	if w, _, err := term.GetSize(fd); err == nil && w > 0 {
		width = w
	}
	return &DisplayContext{TermWidth: width, IsTTY: true}
}

// NewDisplayContextWithWidth returns a context with a fixed width so table
// layout tests are independent of the test runner's terminal.
func NewDisplayContextWithWidth(width int) *DisplayContext {
	return &DisplayContext{TermWidth: width, IsTTY: true}
}
