// Package slugs provides canonical slugification helpers used across
// dateseq.
//
// Two strategies live here on purpose:
//   - Heading slugs: fragment anchors generated from Markdown headings in
//     the bundled docs, derived with a conservative ASCII-ish transform.
//   - Topic slugs: docs section/topic identifiers, built on gosimple/slug
//     so lookups tolerate spacing, case, and punctuation differences.
package slugs

import (
	"strings"
	"unicode"

	goslug "github.com/gosimple/slug"
)

// HeadingSlug converts heading text to a URL-friendly fragment anchor.
func HeadingSlug(text string) string {
	var result strings.Builder
	prevDash := false

	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			result.WriteRune(r)
			prevDash = false
		case r == ' ' || r == '-' || r == '_' || r == ':':
			if !prevDash && result.Len() > 0 {
				result.WriteRune('-')
				prevDash = true
			}
		}
	}

	return strings.TrimSuffix(result.String(), "-")
}

// TopicSlug converts a docs section or topic name to its canonical ID.
func TopicSlug(s string) string {
	s = strings.TrimSuffix(s, ".md")
	slugged := goslug.Make(s)
	if slugged == "" {
		slugged = strings.ToLower(strings.ReplaceAll(s, " ", "-"))
	}
	return slugged
}
