// Package widgets declares the third-party browser widgets dashub wires into
// admin forms (searchable select, rich text, date/time picker, data grid),
// the CSS classes form fields receive, and the initializers that bind widgets
// to newly rendered form rows.
package widgets

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

// CDN holds the asset URLs of every third-party widget library.
type CDN struct {
	JQuery        string `json:"jquery"         yaml:"jquery"`
	Select2CSS    string `json:"select2_css"    yaml:"select2_css"`
	Select2JS     string `json:"select2_js"     yaml:"select2_js"`
	QuillCSS      string `json:"quill_css"      yaml:"quill_css"`
	QuillJS       string `json:"quill_js"       yaml:"quill_js"`
	FlatpickrCSS  string `json:"flatpickr_css"  yaml:"flatpickr_css"`
	FlatpickrJS   string `json:"flatpickr_js"   yaml:"flatpickr_js"`
	DataTablesCSS string `json:"datatables_css" yaml:"datatables_css"`
	DataTablesJS  string `json:"datatables_js"  yaml:"datatables_js"`
}

// DefaultCDN returns the jsDelivr URLs of the pinned library versions.
func DefaultCDN() CDN {
	return CDN{
		JQuery:        "https://cdn.jsdelivr.net/npm/jquery@3.7.1/dist/jquery.min.js",
		Select2CSS:    "https://cdn.jsdelivr.net/npm/select2@4.1.0-rc.0/dist/css/select2.min.css",
		Select2JS:     "https://cdn.jsdelivr.net/npm/select2@4.1.0-rc.0/dist/js/select2.min.js",
		QuillCSS:      "https://cdn.jsdelivr.net/npm/quill@2.0.2/dist/quill.snow.css",
		QuillJS:       "https://cdn.jsdelivr.net/npm/quill@2.0.2/dist/quill.js",
		FlatpickrCSS:  "https://cdn.jsdelivr.net/npm/flatpickr@4.6.13/dist/flatpickr.min.css",
		FlatpickrJS:   "https://cdn.jsdelivr.net/npm/flatpickr@4.6.13/dist/flatpickr.min.js",
		DataTablesCSS: "https://cdn.jsdelivr.net/npm/datatables.net-bs5@2.1.8/css/dataTables.bootstrap5.min.css",
		DataTablesJS:  "https://cdn.jsdelivr.net/npm/datatables.net@2.1.8/js/dataTables.min.js",
	}
}

// WithDefaults fills every empty URL from DefaultCDN.
func (c CDN) WithDefaults() CDN {
	d := DefaultCDN()

	fill := func(v *string, def string) {
		if *v == "" {
			*v = def
		}
	}

	fill(&c.JQuery, d.JQuery)
	fill(&c.Select2CSS, d.Select2CSS)
	fill(&c.Select2JS, d.Select2JS)
	fill(&c.QuillCSS, d.QuillCSS)
	fill(&c.QuillJS, d.QuillJS)
	fill(&c.FlatpickrCSS, d.FlatpickrCSS)
	fill(&c.FlatpickrJS, d.FlatpickrJS)
	fill(&c.DataTablesCSS, d.DataTablesCSS)
	fill(&c.DataTablesJS, d.DataTablesJS)

	return c
}

// Media is the set of stylesheets and scripts a widget needs on the page.
type Media struct {
	CSS []string `json:"css"`
	JS  []string `json:"js"`
}

// Merge combines media, dropping duplicates while keeping first-seen order.
// Script order matters (jQuery before its plugins), so it is never sorted.
func (m Media) Merge(others ...Media) Media {
	out := Media{}
	seenCSS := make(map[string]bool)
	seenJS := make(map[string]bool)

	for _, media := range append([]Media{m}, others...) {
		for _, css := range media.CSS {
			if css != "" && !seenCSS[css] {
				seenCSS[css] = true
				out.CSS = append(out.CSS, css)
			}
		}

		for _, js := range media.JS {
			if js != "" && !seenJS[js] {
				seenJS[js] = true
				out.JS = append(out.JS, js)
			}
		}
	}

	return out
}

// HeadNodes returns a stylesheet link per CSS entry.
func (m Media) HeadNodes() []g.Node {
	nodes := make([]g.Node, 0, len(m.CSS))
	for _, css := range m.CSS {
		nodes = append(nodes, html.Link(html.Rel("stylesheet"), html.Href(css)))
	}

	return nodes
}

// ScriptNodes returns a script tag per JS entry.
func (m Media) ScriptNodes() []g.Node {
	nodes := make([]g.Node, 0, len(m.JS))
	for _, js := range m.JS {
		nodes = append(nodes, html.Script(html.Src(js)))
	}

	return nodes
}

// SelectMedia is the media of the searchable select widget.
func SelectMedia(cdn CDN) Media {
	return Media{CSS: []string{cdn.Select2CSS}, JS: []string{cdn.JQuery, cdn.Select2JS}}
}

// RichTextMedia is the media of the rich-text editor.
func RichTextMedia(cdn CDN) Media {
	return Media{CSS: []string{cdn.QuillCSS}, JS: []string{cdn.QuillJS}}
}

// DateTimeMedia is the media of the date/time picker.
func DateTimeMedia(cdn CDN) Media {
	return Media{CSS: []string{cdn.FlatpickrCSS}, JS: []string{cdn.FlatpickrJS}}
}

// DataGridMedia is the media of the tabular data grid.
func DataGridMedia(cdn CDN) Media {
	return Media{CSS: []string{cdn.DataTablesCSS}, JS: []string{cdn.JQuery, cdn.DataTablesJS}}
}

// AllMedia merges the media of every widget.
func AllMedia(cdn CDN) Media {
	return SelectMedia(cdn).Merge(RichTextMedia(cdn), DateTimeMedia(cdn), DataGridMedia(cdn))
}
