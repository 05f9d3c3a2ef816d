package server

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/xraph/dashub/changeform"
	"github.com/xraph/dashub/internal/errors"
	"github.com/xraph/dashub/internal/logger"
	"github.com/xraph/dashub/menu"
	"github.com/xraph/dashub/search"
	"github.com/xraph/dashub/session"
	"github.com/xraph/dashub/ui"
)

// previewPages is the page count of the sample paginator.
const previewPages = 12

var previewFieldsets = []changeform.Section{
	{Name: "General", Fields: []string{"title", "author"}},
	{Name: "Publishing", Fields: []string{"publisher", "published_on"}},
}

var previewInlines = []changeform.Section{
	{Name: "Chapters", Fields: []string{"number", "title"}},
}

// MenuResponse is the body of GET /api/menu.
type MenuResponse struct {
	Sections []menu.Section `json:"sections"`
	TopMenu  []menu.Entry   `json:"topmenu"`
	UserMenu []menu.Entry   `json:"usermenu"`
}

// SearchResponse is the body of GET /api/search.
type SearchResponse struct {
	Query   string          `json:"query"`
	Results []search.Result `json:"results"`
}

// handlePreview renders the admin shell around a sample change form.
// ?path= activates the matching sidebar menu, ?model= picks the change form
// layout and ?p= the paginator page.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	settings := s.dash.Settings()
	sections := s.dash.SideMenu(s.apps)

	state := session.NewSidebar(sections)
	if path := q.Get("path"); path != "" {
		state.Activate(path)
	}

	page, err := strconv.Atoi(q.Get("p"))
	if err != nil {
		page = 1
	}

	format := s.dash.ChangeFormFormat(q.Get("model"), true, true)
	form := ui.ChangeForm(format, changeform.Sections(previewFieldsets, previewInlines, nil), previewFields)

	content := g.Group([]g.Node{
		html.H1(ui.BoldFirstWord(settings.SiteHeader)),
		form,
		ui.Paginator(page, previewPages, func(p int) string { return fmt.Sprintf("?p=%d", p) }),
	})

	doc := ui.Page(ui.PageData{
		Title:        "Preview",
		Theme:        s.dash.Theme(),
		Sections:     sections,
		Sidebar:      state,
		TopMenu:      s.dash.TopMenu(s.apps),
		UserMenu:     s.dash.UserMenu(s.apps),
		User:         ui.User{Name: "admin", Avatar: s.dash.DefaultAvatar()},
		HomeURL:      "/",
		StaticURL:    settings.StaticURL,
		Media:        s.dash.Media(),
		RelatedModal: settings.RelatedModalActive,
		Content:      content,
	})

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if err := doc.Render(w); err != nil {
		logger.FromContext(r.Context()).Error("render preview", logger.Err(err))
	}
}

func previewFields(sec changeform.Section) g.Node {
	rows := make([]g.Node, 0, len(sec.Fields))
	for _, f := range sec.Fields {
		id := "id_" + f
		if sec.Inline {
			id = "id_" + strings.ToLower(sec.Name) + "-0-" + f
		}

		rows = append(rows, html.Div(
			html.Class("form-row"),
			html.Input(html.ID(id), html.Name(f), html.Type("text"), html.Class("form-control")),
		))
	}

	return g.Group(rows)
}

func (s *Server) handleMenu(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, MenuResponse{
		Sections: s.dash.SideMenu(s.apps),
		TopMenu:  s.dash.TopMenu(s.apps),
		UserMenu: s.dash.UserMenu(s.apps),
	})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit := search.DefaultLimit
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, errors.BadRequest("limit must be a positive integer"))
			return
		}

		limit = n
	}

	results := s.index.Search(q.Get("q"), limit)
	if results == nil {
		results = []search.Result{}
	}

	writeJSON(w, http.StatusOK, SearchResponse{Query: q.Get("q"), Results: results})
}

func (s *Server) handleSettings(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.dash.Settings())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	status := errors.GetHTTPStatusCode(err)

	msg := err.Error()
	if status >= http.StatusInternalServerError {
		msg = http.StatusText(status)
	}

	writeJSON(w, status, map[string]string{"error": msg})
}
