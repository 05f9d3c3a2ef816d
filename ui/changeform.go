package ui

import (
	"strconv"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/xraph/dashub/changeform"
	"github.com/xraph/dashub/session"
)

// FormPanes returns the navigable panes of the sections.
func FormPanes(sections []changeform.Section) []session.Pane {
	targets := changeform.Targets(sections)

	panes := make([]session.Pane, 0, len(sections))
	for i, s := range sections {
		panes = append(panes, session.Pane{Target: targets[i], HasErrors: s.HasErrors()})
	}

	return panes
}

// ChangeForm renders the sections of a change form in the given layout.
// body renders the fields of one section. In paned layouts the first pane
// holding errors starts visible, otherwise the first pane.
func ChangeForm(format changeform.Format, sections []changeform.Section, body func(changeform.Section) g.Node) g.Node {
	active := 0
	targets := changeform.Targets(sections)

	tabs := session.NewTabs(FormPanes(sections), nil)
	if _, ok := tabs.Restore(""); ok {
		active = tabs.ActiveIndex()
	}

	switch format {
	case changeform.HorizontalTabs, changeform.VerticalTabs:
		return html.Div(
			html.Class("ps-format-"+string(format)),
			html.Ul(html.Class("ps-tabs"), g.Group(tabNodes(sections, targets, active))),
			html.Div(html.Class("ps-panes"), g.Group(paneNodes(sections, targets, active, "ps-pane", body))),
		)

	case changeform.Carousel:
		return html.Div(
			html.Class("ps-format-carousel carousel slide"),
			g.Attr("data-bs-interval", "false"),
			html.Ul(html.Class("ps-tabs carousel-indicators"), g.Group(tabNodes(sections, targets, active))),
			html.Div(html.Class("carousel-inner"), g.Group(paneNodes(sections, targets, active, "ps-pane carousel-item", body))),
			html.Button(html.Type("button"), html.Class("carousel-control-prev"), g.Attr("data-bs-slide", "prev"),
				html.I(html.Class("fas fa-chevron-left"))),
			html.Button(html.Type("button"), html.Class("carousel-control-next"), g.Attr("data-bs-slide", "next"),
				html.I(html.Class("fas fa-chevron-right"))),
		)

	case changeform.Collapsible:
		nodes := make([]g.Node, 0, len(sections))
		for i, s := range sections {
			nodes = append(nodes, html.Div(
				html.Class("ps-collapse"),
				html.Div(html.Class(headingClass(s)), g.Text(s.Name), errorMarker(s)),
				html.Div(html.ID(targets[i]), html.Class("ps-pane"), body(s)),
			))
		}

		return html.Div(html.Class("ps-format-collapsible"), g.Group(nodes))

	default:
		return html.Div(html.Class("ps-format-single"), g.Group(paneNodes(sections, targets, -1, "ps-pane", body)))
	}
}

func tabNodes(sections []changeform.Section, targets []string, active int) []g.Node {
	nodes := make([]g.Node, 0, len(sections))

	for i, s := range sections {
		class := "ps-tab"
		if i == active {
			class += " active"
		}

		nodes = append(nodes, html.Li(
			html.Class(class),
			g.Attr("data-ps-target", targets[i]),
			g.Attr("data-bs-slide-to", strconv.Itoa(i)),
			g.If(s.HasErrors(), g.Attr("data-ps-errors", strconv.Itoa(s.Errors))),
			html.A(html.Href("#"+targets[i]), g.Text(s.Name)),
			errorMarker(s),
		))
	}

	return nodes
}

func paneNodes(sections []changeform.Section, targets []string, active int, class string, body func(changeform.Section) g.Node) []g.Node {
	nodes := make([]g.Node, 0, len(sections))

	for i, s := range sections {
		c := class
		if i == active {
			c += " active"
		}

		nodes = append(nodes, html.Div(html.ID(targets[i]), html.Class(c), body(s)))
	}

	return nodes
}

func headingClass(s changeform.Section) string {
	if s.HasErrors() {
		return "ps-collapse-heading text-danger"
	}

	return "ps-collapse-heading"
}

func errorMarker(s changeform.Section) g.Node {
	if !s.HasErrors() {
		return nil
	}

	return html.Span(html.Class("badge bg-danger ps-error-count"), g.Text(strconv.Itoa(s.Errors)))
}
