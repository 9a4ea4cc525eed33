// Package markdown provides lightweight analysis of generated markdown
// sections. It parses, it never re-renders.
package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// FirstHeading returns the text of the first level-1 heading in the body, or
// an empty string when the body has none. Export uses this as the display
// title for archive entries.
func FirstHeading(body []byte) string {
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(body))

	var title string
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering || title != "" {
			return gmast.WalkContinue, nil
		}
		if h, ok := n.(*gmast.Heading); ok && h.Level == 1 {
			title = headingText(h, body)
			return gmast.WalkStop, nil
		}
		return gmast.WalkContinue, nil
	})
	return title
}

// HasContent reports whether the body parses into at least one block-level
// node. A capability response consisting only of whitespace fails this check.
func HasContent(body []byte) bool {
	if len(strings.TrimSpace(string(body))) == 0 {
		return false
	}
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(body))
	return root.HasChildren()
}

// headingText concatenates the raw text segments under a heading node.
func headingText(h *gmast.Heading, body []byte) string {
	var sb strings.Builder
	for c := h.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*gmast.Text); ok {
			sb.Write(t.Segment.Value(body))
		}
	}
	return strings.TrimSpace(sb.String())
}
