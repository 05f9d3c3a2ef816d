package session

import (
	"strings"

	"github.com/xraph/dashub/internal/slug"
	"github.com/xraph/dashub/menu"
)

// CSS classes shared with the sidebar markup and scripts.
const (
	ClassHasMenu     = "ps-hasmenu"
	ClassOpenMenu    = "open-menu"
	ClassSidebarHide = "ps-sidebar-hide"
	ClassMobActive   = "mob-sidebar-active"
	ClassActive      = "active"
)

type menuNode struct {
	parent string
	urls   []string
}

// Sidebar is the collapsed, mobile and open-menu state of the sidebar.
type Sidebar struct {
	collapsed    bool
	mobileActive bool
	open         map[string]bool
	menus        map[string]menuNode
	order        []string
	active       string
}

// MenuID is the id of a collapsible sidebar menu: the section label for
// sections, the model key (or label and slug for custom links) for items.
func MenuID(section menu.Section, item *menu.Item) string {
	if item == nil {
		return strings.ToLower(section.Label)
	}

	if item.Key != "" {
		return item.Key
	}

	return strings.ToLower(section.Label) + ":" + slug.Make(item.Name)
}

// NewSidebar creates a sidebar for the resolved sections with every menu
// closed.
func NewSidebar(sections []menu.Section) *Sidebar {
	s := &Sidebar{open: make(map[string]bool), menus: make(map[string]menuNode)}

	for _, section := range sections {
		sectionID := MenuID(section, nil)
		node := menuNode{}
		s.order = append(s.order, sectionID)

		for i := range section.Items {
			item := &section.Items[i]
			node.urls = append(node.urls, item.URL)

			if !item.HasSubmenu() {
				continue
			}

			itemID := MenuID(section, item)
			child := menuNode{parent: sectionID}

			for _, sub := range item.Submenu {
				child.urls = append(child.urls, sub.URL)
			}

			s.menus[itemID] = child
			s.order = append(s.order, itemID)
		}

		s.menus[sectionID] = node
	}

	return s
}

// Collapsed reports whether the desktop sidebar is collapsed.
func (s *Sidebar) Collapsed() bool { return s.collapsed }

// MobileActive reports whether the mobile sidebar is shown.
func (s *Sidebar) MobileActive() bool { return s.mobileActive }

// ToggleCollapse flips the desktop collapsed state.
func (s *Sidebar) ToggleCollapse() bool {
	s.collapsed = !s.collapsed
	return s.collapsed
}

// ToggleMobile flips the mobile sidebar.
func (s *Sidebar) ToggleMobile() bool {
	s.mobileActive = !s.mobileActive
	return s.mobileActive
}

// CloseMobile hides the mobile sidebar, as a click on the overlay does.
func (s *Sidebar) CloseMobile() {
	s.mobileActive = false
}

// IsOpen reports whether the menu is expanded.
func (s *Sidebar) IsOpen(id string) bool { return s.open[id] }

// OpenMenus returns the expanded menus in sidebar order.
func (s *Sidebar) OpenMenus() []string {
	var ids []string

	for _, id := range s.order {
		if s.open[id] {
			ids = append(ids, id)
		}
	}

	return ids
}

// ToggleMenu expands or collapses a menu. Expanding closes its siblings.
// Unknown ids are ignored. It reports whether the menu is now open.
func (s *Sidebar) ToggleMenu(id string) bool {
	node, ok := s.menus[id]
	if !ok {
		return false
	}

	if s.open[id] {
		delete(s.open, id)
		return false
	}

	for other, n := range s.menus {
		if other != id && n.parent == node.parent {
			delete(s.open, other)
		}
	}

	s.open[id] = true

	return true
}

// Activate marks the menu whose entry URL is the longest prefix of path as
// current and opens the menus containing it. On equal matches a submenu wins
// over its section. It reports whether anything matched.
func (s *Sidebar) Activate(path string) bool {
	best, bestLen := "", 0

	for _, id := range s.order {
		for _, u := range s.menus[id].urls {
			if u == "" || u == "#" || !strings.HasPrefix(path, u) || len(u) < bestLen {
				continue
			}

			if len(u) == bestLen && s.menus[id].parent != best {
				continue
			}

			best, bestLen = id, len(u)
		}
	}

	if best == "" {
		return false
	}

	s.active = best
	s.open = make(map[string]bool)

	for id := best; id != ""; id = s.menus[id].parent {
		s.open[id] = true
	}

	return true
}

// ActiveMenu returns the menu holding the current page, if any.
func (s *Sidebar) ActiveMenu() string { return s.active }

// BodyClasses returns the classes the <body> carries for the sidebar state.
func (s *Sidebar) BodyClasses() string {
	var classes []string

	if s.collapsed {
		classes = append(classes, ClassSidebarHide)
	}

	if s.mobileActive {
		classes = append(classes, ClassMobActive)
	}

	return strings.Join(classes, " ")
}

// MenuClasses returns the classes of a collapsible menu's list item, or ""
// for ids that are not menus.
func (s *Sidebar) MenuClasses(id string) string {
	if _, ok := s.menus[id]; !ok {
		return ""
	}

	classes := ClassHasMenu
	if s.open[id] {
		classes += " " + ClassOpenMenu
	}

	if s.active == id {
		classes += " " + ClassActive
	}

	return classes
}
