package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xraph/dashub/menu"
)

func indexedMenu() *Index {
	idx := NewIndex()
	idx.Rebuild([]menu.Section{
		{
			Label: "books", Name: "Books", URL: "/admin/books/", Icon: "fas fa-book",
			Items: []menu.Item{
				{Key: "books.book", Name: "Books", URL: "/admin/books/book/", Submenu: []menu.SubItem{
					{Name: "Add New", URL: "/admin/books/book/add/"},
					{Name: "Books", URL: "/admin/books/book/"},
					{Name: "ghost.Thing", URL: "#"},
				}},
				{Key: "books.author", Name: "Authors", URL: "/admin/books/author/"},
				{Name: "Bookshop site", URL: "https://shop.example.com", Custom: true},
			},
		},
		{
			Label: "support", Name: "Support", URL: "#", Custom: true,
			Items: []menu.Item{{Name: "Docs", URL: "/docs/", Custom: true}},
		},
	})

	return idx
}

func TestIndexRebuild(t *testing.T) {
	idx := indexedMenu()

	// app + 3 items + "Add New" submenu for books, 1 item for support.
	assert.Equal(t, 6, idx.Len())
}

func TestIndexSearchScoring(t *testing.T) {
	results := indexedMenu().Search("books", 0)
	require.Len(t, results, 5)

	assert.Equal(t, "app", results[0].Category)
	assert.Equal(t, 1.0, results[0].Score)
	assert.Equal(t, "model", results[1].Category)
	assert.Equal(t, 1.0, results[1].Score)

	// Section matches keep index order.
	assert.Equal(t, "Add New", results[3].Title)
	assert.Equal(t, 0.3, results[3].Score)
	assert.Equal(t, "Authors", results[4].Title)
	assert.Equal(t, "Bookshop site", results[2].Title)
	assert.Equal(t, 0.8, results[2].Score)
}

func TestIndexSearchContainsAndLimit(t *testing.T) {
	idx := indexedMenu()

	results := idx.Search("THOR", 10)
	require.Len(t, results, 1)
	assert.Equal(t, 0.6, results[0].Score)
	assert.Equal(t, "/admin/books/author/", results[0].URL)

	assert.Len(t, idx.Search("o", 2), 2)
	assert.Nil(t, idx.Search("  ", 10))
	assert.Empty(t, idx.Search("nothing-here", 10))
}
