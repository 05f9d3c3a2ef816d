package ui

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/xraph/dashub/changelist"
)

// Paginator renders the change list pagination. Nothing is rendered for a
// single page.
func Paginator(page, numPages int, href func(page int) string) g.Node {
	links := changelist.Pages(page, numPages, href)
	if links == nil {
		return nil
	}

	nodes := make([]g.Node, 0, len(links))

	for _, l := range links {
		class := "page-item"

		switch {
		case l.Current:
			class += " active"
		case l.Disabled, l.Spacer:
			class += " disabled"
		}

		if l.End {
			class += " end"
		}

		nodes = append(nodes, html.Li(
			html.Class(class),
			html.A(html.Class("page-link"), html.Href(l.URL), g.Text(l.Label)),
		))
	}

	return html.Nav(html.Ul(html.Class("pagination"), g.Group(nodes)))
}
