package ui

import "testing"

func TestNormalizeAccentColor(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{name: "empty", input: "", want: "", ok: false},
		{name: "none", input: "none", want: "", ok: false},
		{name: "off", input: "off", want: "", ok: false},
		{name: "default", input: "default", want: "", ok: false},
		{name: "ansi code", input: "39", want: "39", ok: true},
		{name: "ansi with whitespace", input: "  244 ", want: "244", ok: true},
		{name: "ansi out of range", input: "256", want: "", ok: false},
		{name: "negative ansi", input: "-1", want: "", ok: false},
		{name: "hex 6", input: "#7aa2f7", want: "#7aa2f7", ok: true},
		{name: "hex 3", input: "#abc", want: "#aabbcc", ok: true},
		{name: "hex uppercase", input: "#A78BFA", want: "#a78bfa", ok: true},
		{name: "bad hex", input: "#zzzzzz", want: "", ok: false},
		{name: "named color", input: "blue", want: "", ok: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, ok := normalizeAccentColor(tt.input)
			if ok != tt.ok {
				t.Fatalf("expected ok=%v, got %v", tt.ok, ok)
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestConfigureThemeAccentColor(t *testing.T) {
	origAccent := Accent
	origAccentBold := AccentBold
	origAccentColor := accentColor
	t.Cleanup(func() {
		Accent = origAccent
		AccentBold = origAccentBold
		accentColor = origAccentColor
	})

	ConfigureTheme("39")
	got, ok := AccentColor()
	if !ok {
		t.Fatalf("expected accent color to be configured")
	}
	if got != "39" {
		t.Fatalf("expected accent color '39', got %q", got)
	}

	ConfigureTheme("none")
	_, ok = AccentColor()
	if ok {
		t.Fatalf("expected accent color to be disabled")
	}
}

func TestConfigureThemeKeepsDefaultWhenUnset(t *testing.T) {
	origAccentColor := accentColor
	t.Cleanup(func() {
		accentColor = origAccentColor
	})

	ConfigureTheme("")
	got, ok := AccentColor()
	if !ok {
		t.Fatalf("expected default accent to stay enabled")
	}
	if got != defaultAccentColor {
		t.Fatalf("expected default accent %q, got %q", defaultAccentColor, got)
	}
}
