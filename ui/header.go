package ui

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/xraph/dashub/menu"
)

// User is the signed-in user shown in the header.
type User struct {
	Name   string
	Avatar string
}

// Header renders the top bar: sidebar toggles, top menu and user menu.
func Header(top, user []menu.Entry, u User) g.Node {
	return html.Header(
		html.Class("ps-header"),
		html.A(html.Href("#"), html.Class("ps-toggle"), g.Attr("data-ps-toggle", "collapse"),
			g.Attr("aria-label", "Toggle sidebar"), html.I(html.Class("fas fa-bars"))),
		html.A(html.Href("#"), html.Class("ps-toggle ps-mob-toggle"), g.Attr("data-ps-toggle", "mobile"),
			g.Attr("aria-label", "Toggle sidebar"), html.I(html.Class("fas fa-bars"))),
		TopMenu(top),
		UserMenu(user, u),
	)
}

// TopMenu renders the top navigation. Entries with children become dropdowns.
func TopMenu(entries []menu.Entry) g.Node {
	if len(entries) == 0 {
		return nil
	}

	return html.Ul(html.Class("ps-topmenu"), g.Group(entryNodes(entries)))
}

// UserMenu renders the avatar dropdown with the user links.
func UserMenu(entries []menu.Entry, u User) g.Node {
	return html.Div(
		html.Class("ps-usermenu dropdown"),
		html.A(
			html.Href("#"),
			html.Class("dropdown-toggle"),
			g.If(u.Avatar != "", html.Img(html.Class("ps-avatar"), html.Src(u.Avatar), html.Alt(u.Name))),
			html.Span(g.Text(u.Name)),
		),
		g.If(len(entries) > 0, html.Ul(html.Class("dropdown-menu"), g.Group(entryNodes(entries)))),
	)
}

func entryNodes(entries []menu.Entry) []g.Node {
	nodes := make([]g.Node, 0, len(entries))

	for _, e := range entries {
		link := html.A(
			html.Href(e.URL),
			html.Class("ps-link"),
			g.If(e.NewWindow, html.Target("_blank")),
			icon(e.Icon),
			g.Text(e.Name),
		)

		if len(e.Children) == 0 {
			nodes = append(nodes, html.Li(link))
			continue
		}

		nodes = append(nodes, html.Li(
			html.Class("dropdown"),
			link,
			html.Ul(html.Class("dropdown-menu"), g.Group(entryNodes(e.Children))),
		))
	}

	return nodes
}
