// Package outline extracts section structure from Markdown documents.
// The docs command uses it to show per-topic tables of contents.
package outline

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/dateseq/dateseq/internal/slugs"
)

// Heading is one section heading of a docs topic.
type Heading struct {
	Level  int    `json:"level"`
	Text   string `json:"text"`
	Anchor string `json:"anchor"`
}

// Headings extracts the headings of a Markdown document in order,
// using goldmark so fenced code blocks and other structures cannot
// masquerade as headings.
func Headings(content string) []Heading {
	var headings []Heading

	source := []byte(content)
	md := goldmark.New()
	reader := text.NewReader(source)
	doc := md.Parser().Parse(reader)

	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		heading, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}

		var textBuilder strings.Builder
		for child := heading.FirstChild(); child != nil; child = child.NextSibling() {
			if textNode, ok := child.(*ast.Text); ok {
				textBuilder.Write(textNode.Segment.Value(source))
			}
		}

		headingText := strings.TrimSpace(textBuilder.String())
		if headingText == "" {
			return ast.WalkContinue, nil
		}

		headings = append(headings, Heading{
			Level:  heading.Level,
			Text:   headingText,
			Anchor: slugs.HeadingSlug(headingText),
		})
		return ast.WalkContinue, nil
	})

	return headings
}
