// Package ui renders the admin chrome with gomponents: sidebar, header menus,
// change form panes, paginator and the page shell around host content.
package ui

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/xraph/dashub/menu"
	"github.com/xraph/dashub/session"
	"github.com/xraph/dashub/theme"
)

// NavCaption heads the sidebar menu.
const NavCaption = "Navigation"

// Sidebar renders the side navigation for the resolved sections. state
// carries the open and active menus; nil renders every menu closed.
func Sidebar(sections []menu.Section, state *session.Sidebar, brand theme.Branding, homeURL string) g.Node {
	if state == nil {
		state = session.NewSidebar(sections)
	}

	items := make([]g.Node, 0, len(sections)+1)
	items = append(items, html.Li(html.Class("ps-item ps-caption"), html.Span(g.Text(NavCaption))))

	for _, s := range sections {
		items = append(items, sectionNode(s, state))
	}

	return html.Nav(
		html.Class("ps-sidebar"),
		html.Div(
			html.Class("ps-brand"),
			html.A(
				html.Href(homeURL),
				g.If(brand.Logo != "", html.Img(html.Src(brand.Logo), html.Alt(brand.Brand))),
				html.Span(html.Class("ps-brand-text"), g.Text(brand.Brand)),
			),
		),
		html.Div(
			html.Class("ps-search"),
			html.Input(html.Type("search"), html.Placeholder("Search"), g.Attr("data-ps-search", "")),
		),
		html.Ul(html.Class("ps-menu"), g.Group(items)),
	)
}

func sectionNode(s menu.Section, state *session.Sidebar) g.Node {
	id := session.MenuID(s, nil)

	children := make([]g.Node, 0, len(s.Items))
	for i := range s.Items {
		children = append(children, itemNode(s, &s.Items[i], state))
	}

	return html.Li(
		html.Class(state.MenuClasses(id)),
		g.Attr("data-ps-menu", id),
		g.Attr("data-ps-group", id),
		html.A(html.Href("#"), html.Class("ps-link"), icon(s.Icon), label(s.Name)),
		html.Ul(html.Class("ps-submenu"), g.Group(children)),
	)
}

func itemNode(s menu.Section, it *menu.Item, state *session.Sidebar) g.Node {
	id := session.MenuID(s, it)

	if !it.HasSubmenu() {
		return html.Li(
			html.Class("ps-item"),
			g.Attr("data-ps-entry", id),
			html.A(
				html.Href(it.URL),
				html.Class("ps-link"),
				g.If(it.NewWindow, html.Target("_blank")),
				icon(it.Icon),
				label(it.Name),
			),
		)
	}

	subs := make([]g.Node, 0, len(it.Submenu))
	for _, sub := range it.Submenu {
		subs = append(subs, html.Li(
			html.Class("ps-item"),
			html.A(html.Href(sub.URL), html.Class("ps-link"), g.Text(sub.Name)),
		))
	}

	return html.Li(
		html.Class(state.MenuClasses(id)),
		g.Attr("data-ps-menu", id),
		g.Attr("data-ps-entry", id),
		html.A(html.Href("#"), html.Class("ps-link"), icon(it.Icon), label(it.Name)),
		html.Ul(html.Class("ps-submenu"), g.Group(subs)),
	)
}

func icon(class string) g.Node {
	if class == "" {
		return nil
	}

	return html.Span(html.Class("ps-micon"), html.I(html.Class(class)))
}

func label(text string) g.Node {
	return html.Span(html.Class("ps-mtext"), g.Text(text))
}
