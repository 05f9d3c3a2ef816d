package ui

import (
	"github.com/google/uuid"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/xraph/dashub/assets"
	"github.com/xraph/dashub/menu"
	"github.com/xraph/dashub/session"
	"github.com/xraph/dashub/theme"
	"github.com/xraph/dashub/widgets"
)

// PageData is everything the page shell needs around the host content.
type PageData struct {
	Title        string
	Theme        *theme.Manager
	Sections     []menu.Section
	Sidebar      *session.Sidebar
	TopMenu      []menu.Entry
	UserMenu     []menu.Entry
	User         User
	HomeURL      string
	StaticURL    string
	Media        widgets.Media
	RelatedModal bool
	Content      g.Node
}

// Page renders a full HTML document. Theme is required.
func Page(p PageData) g.Node {
	state := p.Sidebar
	if state == nil {
		state = session.NewSidebar(p.Sections)
	}

	brand := p.Theme.Branding()

	title := p.Title
	if title == "" {
		title = brand.Title
	} else if brand.Title != "" {
		title += " | " + brand.Title
	}

	head := []g.Node{
		html.Meta(html.Charset("utf-8")),
		html.Meta(html.Name("viewport"), html.Content("width=device-width, initial-scale=1")),
		html.TitleEl(g.Text(title)),
		html.Link(html.Rel("stylesheet"), html.Href(p.StaticURL+assets.Stylesheet)),
	}
	head = append(head, p.Media.HeadNodes()...)
	head = append(head, p.Theme.HeadNodes()...)

	scripts := p.Media.ScriptNodes()
	for _, js := range assets.Scripts {
		scripts = append(scripts, html.Script(html.Src(p.StaticURL+js)))
	}

	if js := p.Theme.CustomJSNode(); js != nil {
		scripts = append(scripts, js)
	}

	var modal g.Node
	if p.RelatedModal {
		modal = RelatedModal()
	}

	return html.Doctype(
		html.HTML(
			html.Lang("en"),
			html.Head(g.Group(head)),
			html.Body(
				g.If(state.BodyClasses() != "", html.Class(state.BodyClasses())),
				Sidebar(p.Sections, state, brand, p.HomeURL),
				html.Div(
					html.Class("ps-container"),
					Header(p.TopMenu, p.UserMenu, p.User),
					html.Main(html.Class("ps-content"), p.Content),
				),
				modal,
				g.Group(scripts),
			),
		),
	)
}

// RelatedModal renders the dialog that hosts related-object popups. Each
// render gets a fresh id so several pages can be composed.
func RelatedModal() g.Node {
	id := "related-modal-" + uuid.NewString()

	return html.Div(
		html.ID(id),
		html.Class("ps-modal"),
		g.Attr("data-ps-related-modal", ""),
		g.Attr("role", "dialog"),
		html.Div(
			html.Class("ps-modal-dialog"),
			html.Button(html.Type("button"), html.Class("btn-close"), g.Attr("data-ps-dismiss", ""),
				g.Attr("aria-label", "Close")),
			html.IFrame(html.Src("about:blank"), g.Attr("title", "Related object")),
		),
	)
}
