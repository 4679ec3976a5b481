package dates

import (
	"strings"
	"time"
)

var relativeKeywords = map[string]struct{}{
	"today":     {},
	"tomorrow":  {},
	"yesterday": {},
}

// NormalizeKeyword normalizes and validates a relative date keyword.
// Returns the canonical keyword and true when valid.
func NormalizeKeyword(value string) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if _, ok := relativeKeywords[normalized]; !ok {
		return "", false
	}
	return normalized, true
}

// IsKeyword reports whether value is a supported relative date keyword.
func IsKeyword(value string) bool {
	_, ok := NormalizeKeyword(value)
	return ok
}

// ResolveKeyword resolves a relative date keyword against the provided
// "now", returning the normalized calendar date.
func ResolveKeyword(value string, now time.Time) (time.Time, bool) {
	keyword, ok := NormalizeKeyword(value)
	if !ok {
		return time.Time{}, false
	}

	anchor := Normalize(now)
	switch keyword {
	case "today":
		return anchor, true
	case "tomorrow":
		return Normalize(anchor.AddDate(0, 0, 1)), true
	case "yesterday":
		return Normalize(anchor.AddDate(0, 0, -1)), true
	default:
		return time.Time{}, false
	}
}
