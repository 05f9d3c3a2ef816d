// Package search filters and searches the resolved sidebar menu.
package search

import (
	"strings"

	"github.com/xraph/dashub/internal/slug"
	"github.com/xraph/dashub/menu"
)

// Entry is one filterable sidebar row.
type Entry struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Group is a sidebar heading with the rows beneath it.
type Group struct {
	ID      string  `json:"id"`
	Heading string  `json:"heading"`
	Entries []Entry `json:"entries"`
}

// EntryVisibility is the filter outcome of one row.
type EntryVisibility struct {
	ID      string `json:"id"`
	Visible bool   `json:"visible"`
}

// GroupVisibility is the filter outcome of one heading and its rows.
type GroupVisibility struct {
	ID      string            `json:"id"`
	Visible bool              `json:"visible"`
	Entries []EntryVisibility `json:"entries"`
}

// Visibility is the outcome of filtering the whole sidebar.
type Visibility struct {
	Query  string            `json:"query"`
	Groups []GroupVisibility `json:"groups"`
}

// VisibleEntries returns the ids of the visible rows in sidebar order.
func (v Visibility) VisibleEntries() []string {
	var ids []string

	for _, g := range v.Groups {
		for _, e := range g.Entries {
			if e.Visible {
				ids = append(ids, e.ID)
			}
		}
	}

	return ids
}

// VisibleHeadings returns the ids of the visible headings in sidebar order.
func (v Visibility) VisibleHeadings() []string {
	var ids []string

	for _, g := range v.Groups {
		if g.Visible {
			ids = append(ids, g.ID)
		}
	}

	return ids
}

// Filter evaluates every row against query. A row is visible when its text
// contains the trimmed query, ignoring case. A heading is visible when the
// query is empty or at least one of its rows is visible.
func Filter(groups []Group, query string) Visibility {
	q := strings.ToLower(strings.TrimSpace(query))
	out := Visibility{Query: q, Groups: make([]GroupVisibility, 0, len(groups))}

	for _, g := range groups {
		gv := GroupVisibility{ID: g.ID, Visible: q == "", Entries: make([]EntryVisibility, 0, len(g.Entries))}

		for _, e := range g.Entries {
			visible := strings.Contains(strings.ToLower(e.Text), q)
			if visible {
				gv.Visible = true
			}

			gv.Entries = append(gv.Entries, EntryVisibility{ID: e.ID, Visible: visible})
		}

		out.Groups = append(out.Groups, gv)
	}

	return out
}

// GroupsFromMenu turns resolved sidebar sections into filterable groups.
// Model rows are identified by their "app.model" key, custom links by the
// section label and the slug of their name.
func GroupsFromMenu(sections []menu.Section) []Group {
	groups := make([]Group, 0, len(sections))

	for _, s := range sections {
		g := Group{ID: s.Label, Heading: s.Name, Entries: make([]Entry, 0, len(s.Items))}

		for _, it := range s.Items {
			id := it.Key
			if id == "" {
				id = strings.ToLower(s.Label) + ":" + slug.Make(it.Name)
			}

			g.Entries = append(g.Entries, Entry{ID: id, Text: it.Name})
		}

		groups = append(groups, g)
	}

	return groups
}
