package search

import (
	"slices"
	"strings"
	"sync"

	"github.com/xraph/dashub/menu"
)

// DefaultLimit caps results when the caller passes no limit.
const DefaultLimit = 20

// IndexEntry is a searchable menu destination.
type IndexEntry struct {
	Title    string `json:"title"`
	Section  string `json:"section"`
	URL      string `json:"url"`
	Icon     string `json:"icon"`
	Category string `json:"category"` // "app", "model", "link", "submenu"
}

// Result is a scored IndexEntry.
type Result struct {
	IndexEntry

	Score float64 `json:"score"`
}

// Index is an in-memory search index over the resolved menu. It is safe for
// concurrent use.
type Index struct {
	mu      sync.RWMutex
	entries []IndexEntry
}

// NewIndex creates an empty index.
func NewIndex() *Index {
	return &Index{}
}

// Len returns the number of indexed entries.
func (idx *Index) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return len(idx.entries)
}

// Rebuild replaces the index content with the given sections.
func (idx *Index) Rebuild(sections []menu.Section) {
	var entries []IndexEntry

	for _, s := range sections {
		if s.URL != "" && s.URL != "#" {
			entries = append(entries, IndexEntry{Title: s.Name, URL: s.URL, Icon: s.Icon, Category: "app"})
		}

		for _, it := range s.Items {
			category := "model"
			if it.Custom {
				category = "link"
			}

			entries = append(entries, IndexEntry{
				Title:    it.Name,
				Section:  s.Name,
				URL:      it.URL,
				Icon:     it.Icon,
				Category: category,
			})

			for _, sub := range it.Submenu {
				if sub.URL == "" || sub.URL == "#" || sub.URL == it.URL {
					continue
				}

				entries = append(entries, IndexEntry{
					Title:    sub.Name,
					Section:  s.Name + " / " + it.Name,
					URL:      sub.URL,
					Icon:     it.Icon,
					Category: "submenu",
				})
			}
		}
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.entries = entries
}

// Search scores every entry against query: exact title 1.0, title prefix
// 0.8, title substring 0.6, section substring 0.3. Results are ordered by
// score, then index order, and truncated to limit.
func (idx *Index) Search(query string, limit int) []Result {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	if limit <= 0 {
		limit = DefaultLimit
	}

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	var results []Result

	for _, entry := range idx.entries {
		titleLower := strings.ToLower(entry.Title)

		var score float64

		switch {
		case titleLower == query:
			score = 1.0
		case strings.HasPrefix(titleLower, query):
			score = 0.8
		case strings.Contains(titleLower, query):
			score = 0.6
		case strings.Contains(strings.ToLower(entry.Section), query):
			score = 0.3
		default:
			continue
		}

		results = append(results, Result{IndexEntry: entry, Score: score})
	}

	slices.SortStableFunc(results, func(a, b Result) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		default:
			return 0
		}
	})

	if len(results) > limit {
		results = results[:limit]
	}

	return results
}
