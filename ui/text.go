package ui

import (
	"strings"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/xraph/dashub/internal/slug"
)

// BoldFirstWord wraps the first word of text in <strong>. Words are split on
// whitespace and the rest is joined by single spaces. Both parts are escaped.
// Text without words renders nothing.
func BoldFirstWord(text string) g.Node {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	if len(words) == 1 {
		return html.Strong(g.Text(words[0]))
	}

	return g.Group([]g.Node{html.Strong(g.Text(words[0])), g.Text(" " + strings.Join(words[1:], " "))})
}

// Slugify turns text into a lower-case, hyphen-separated identifier.
func Slugify(text string) string {
	return slug.Make(text)
}
