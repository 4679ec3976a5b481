package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// defaultAccentColor is the accent used when no theme is configured.
const defaultAccentColor = "#7AA2F7"

// Shared styles for terminal output.
var (
	// Accent highlights primary values such as dates and paths.
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccentColor))

	// Muted is for secondary information like counts and parameters.
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))

	// Bold is for emphasis without color.
	Bold = lipgloss.NewStyle().Bold(true)

	// AccentBold combines the accent color with bold weight.
	AccentBold = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccentColor)).Bold(true)
)

// accentColor tracks the active accent for renderers that need the raw color
// value rather than a lipgloss style. Empty means accents are disabled.
var accentColor = defaultAccentColor

// ConfigureTheme applies the accent color from configuration. An empty value
// keeps the default theme; "none", "off", and "default" disable accent
// coloring, as do values that fail to parse.
func ConfigureTheme(accent string) {
	if strings.TrimSpace(accent) == "" {
		return
	}

	color, ok := normalizeAccentColor(accent)
	if !ok {
		accentColor = ""
		Accent = lipgloss.NewStyle()
		AccentBold = lipgloss.NewStyle().Bold(true)
		return
	}

	accentColor = color
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	AccentBold = lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true)
}

// AccentColor returns the active accent color and whether accents are enabled.
func AccentColor() (string, bool) {
	if accentColor == "" {
		return "", false
	}
	return accentColor, true
}

// normalizeAccentColor validates a configured accent value. It accepts ANSI
// 256 color codes ("39") and hex colors ("#7aa2f7", "#abc"); the keywords
// "none", "off", and "default" mean no accent.
func normalizeAccentColor(value string) (string, bool) {
	v := strings.ToLower(strings.TrimSpace(value))
	switch v {
	case "", "none", "off", "default":
		return "", false
	}

	if strings.HasPrefix(v, "#") {
		hex := v[1:]
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		if len(hex) != 6 {
			return "", false
		}
		for i := 0; i < len(hex); i++ {
			if !isHexDigit(hex[i]) {
				return "", false
			}
		}
		return "#" + hex, true
	}

	if n, err := strconv.Atoi(v); err == nil {
		if n < 0 || n > 255 {
			return "", false
		}
		return strconv.Itoa(n), true
	}

	return "", false
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')
}
