package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xraph/dashub/menu"
)

func sections() []menu.Section {
	return []menu.Section{
		{
			Label: "books", Name: "Books",
			Items: []menu.Item{
				{Key: "books.book", Name: "Books", URL: "/admin/books/book/", Submenu: []menu.SubItem{
					{Name: "Add New", URL: "/admin/books/book/add/"},
					{Name: "Books", URL: "/admin/books/book/"},
				}},
				{Key: "books.author", Name: "Authors", URL: "/admin/books/author/", Submenu: []menu.SubItem{
					{Name: "Add New", URL: "/admin/books/author/add/"},
				}},
				{Name: "Import", URL: "/import/", Custom: true},
			},
		},
		{
			Label: "Auth", Name: "Authentication",
			Items: []menu.Item{{Key: "auth.user", Name: "Users", URL: "/admin/auth/user/"}},
		},
	}
}

func TestSidebarBodyClasses(t *testing.T) {
	s := NewSidebar(sections())
	assert.Equal(t, "", s.BodyClasses())

	assert.True(t, s.ToggleCollapse())
	assert.True(t, s.ToggleMobile())
	assert.Equal(t, "ps-sidebar-hide mob-sidebar-active", s.BodyClasses())

	s.CloseMobile()
	assert.False(t, s.MobileActive())
	assert.Equal(t, "ps-sidebar-hide", s.BodyClasses())

	assert.False(t, s.ToggleCollapse())
	assert.False(t, s.Collapsed())
}

func TestSidebarAccordion(t *testing.T) {
	s := NewSidebar(sections())

	assert.True(t, s.ToggleMenu("books"))
	assert.True(t, s.ToggleMenu("books.book"))
	assert.Equal(t, []string{"books", "books.book"}, s.OpenMenus())

	// Opening a sibling closes the other submenu, not the parent section.
	assert.True(t, s.ToggleMenu("books.author"))
	assert.Equal(t, []string{"books", "books.author"}, s.OpenMenus())

	// Opening another section closes the first section.
	assert.True(t, s.ToggleMenu("auth"))
	assert.Equal(t, []string{"books.author", "auth"}, s.OpenMenus())

	assert.False(t, s.ToggleMenu("auth"))
	assert.False(t, s.IsOpen("auth"))

	assert.False(t, s.ToggleMenu("ghost"))
}

func TestSidebarMenuClasses(t *testing.T) {
	s := NewSidebar(sections())
	s.ToggleMenu("books.book")

	assert.Equal(t, "ps-hasmenu open-menu", s.MenuClasses("books.book"))
	assert.Equal(t, "ps-hasmenu", s.MenuClasses("books"))
	assert.Equal(t, "", s.MenuClasses("auth.user"))
	assert.Equal(t, "", s.MenuClasses("books:import"))
}

func TestSidebarActivate(t *testing.T) {
	s := NewSidebar(sections())

	assert.True(t, s.Activate("/admin/books/book/add/"))
	assert.Equal(t, "books.book", s.ActiveMenu())
	assert.Equal(t, []string{"books", "books.book"}, s.OpenMenus())
	assert.Equal(t, "ps-hasmenu open-menu active", s.MenuClasses("books.book"))

	// The changelist URL is listed by both the section and the submenu.
	assert.True(t, s.Activate("/admin/books/book/?q=x"))
	assert.Equal(t, "books.book", s.ActiveMenu())

	assert.True(t, s.Activate("/import/"))
	assert.Equal(t, "books", s.ActiveMenu())
	assert.Equal(t, []string{"books"}, s.OpenMenus())

	assert.False(t, s.Activate("/elsewhere/"))
	assert.Equal(t, "books", s.ActiveMenu())
}
