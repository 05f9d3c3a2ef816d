// Package changelist holds the helpers behind the admin change list page:
// pagination links, sortable header classes, filter matching and the
// rendering of change-log messages.
package changelist

import "strconv"

const (
	// OnEachSide is how many page numbers are shown around the current page.
	OnEachSide = 3
	// OnEnds is how many page numbers are shown at each end of the range.
	OnEnds = 2
	// Ellipsis marks elided pages.
	Ellipsis = "…"
)

// PageRange returns the page numbers to show, with 0 marking an elided run.
// A run is only elided when it hides at least two pages.
func PageRange(page, numPages int) []int {
	if numPages <= (OnEachSide+OnEnds)*2 {
		out := make([]int, 0, numPages)
		for i := 1; i <= numPages; i++ {
			out = append(out, i)
		}

		return out
	}

	var out []int

	if page > 1+OnEachSide+OnEnds+1 {
		for i := 1; i <= OnEnds; i++ {
			out = append(out, i)
		}

		out = append(out, 0)

		for i := page - OnEachSide; i <= page; i++ {
			out = append(out, i)
		}
	} else {
		for i := 1; i <= page; i++ {
			out = append(out, i)
		}
	}

	if page < numPages-OnEachSide-OnEnds-1 {
		for i := page + 1; i <= page+OnEachSide; i++ {
			out = append(out, i)
		}

		out = append(out, 0)

		for i := numPages - OnEnds + 1; i <= numPages; i++ {
			out = append(out, i)
		}
	} else {
		for i := page + 1; i <= numPages; i++ {
			out = append(out, i)
		}
	}

	return out
}

// PageLink is one entry of the paginator.
type PageLink struct {
	Label    string `json:"label"`
	URL      string `json:"url"`
	Page     int    `json:"page,omitempty"`
	Current  bool   `json:"current,omitempty"`
	Disabled bool   `json:"disabled,omitempty"`
	Spacer   bool   `json:"spacer,omitempty"`
	Previous bool   `json:"previous,omitempty"`
	Next     bool   `json:"next,omitempty"`
	End      bool   `json:"end,omitempty"`
}

// Pages builds the paginator for page out of numPages. href renders the URL
// of a page. Previous and Next point at "#" and are disabled at the edges.
// A single page needs no paginator and yields nil.
func Pages(page, numPages int, href func(page int) string) []PageLink {
	if numPages < 2 {
		return nil
	}

	page = min(max(page, 1), numPages)

	links := []PageLink{{Label: "Previous", URL: "#", Previous: true, Disabled: true}}
	if page > 1 {
		links[0].URL = href(page - 1)
		links[0].Disabled = false
	}

	for _, i := range PageRange(page, numPages) {
		switch {
		case i == 0:
			links = append(links, PageLink{Label: Ellipsis, URL: "javascript:void(0);", Spacer: true})
		case i == page:
			links = append(links, PageLink{Label: strconv.Itoa(i), URL: "javascript:void(0);", Page: i, Current: true})
		default:
			links = append(links, PageLink{Label: strconv.Itoa(i), URL: href(i), Page: i, End: i == numPages})
		}
	}

	next := PageLink{Label: "Next", URL: "#", Next: true, Disabled: true}
	if page < numPages {
		next.URL = href(page + 1)
		next.Disabled = false
	}

	return append(links, next)
}
