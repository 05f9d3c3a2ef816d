package menu

import (
	"slices"
	"strings"
)

const (
	// DefaultParentIcon is used for sections without a configured icon.
	DefaultParentIcon = "fas fa-chevron-circle-right"
	// DefaultChildIcon is used for items without a configured icon.
	DefaultChildIcon = "fas fa-circle"
	// AddNewLabel is the first entry of every generated model submenu.
	AddNewLabel = "Add New"
)

// Options configures a Resolver. Identifiers are compared case-insensitively.
type Options struct {
	Order          []OrderRule
	HideApps       []string
	HideModels     []string
	Icons          map[string]string
	ParentIcon     string
	ChildIcon      string
	SubmenuModels  []string
	ModelSubmenus  map[string][]SubmenuLink
	CustomLinks    map[string][]CustomLink
	CustomLinkKeys []string
	Lookup         ModelLookup
}

type appRule struct {
	order  int
	models map[string]int
}

// Resolver turns the host's app list into ordered sidebar sections. It is
// immutable after construction and safe for concurrent use.
type Resolver struct {
	rules         map[string]appRule
	hideApps      map[string]bool
	hideModels    map[string]bool
	icons         map[string]string
	parentIcon    string
	childIcon     string
	submenuModels map[string]bool
	modelSubmenus map[string][]SubmenuLink
	customLinks   map[string][]CustomLink
	customOrder   []string
	lookup        ModelLookup
}

// NewResolver builds a Resolver. When the same app appears in several order
// rules the first one wins; validation of the settings reports the duplicate.
func NewResolver(opts Options) *Resolver {
	r := &Resolver{
		rules:         make(map[string]appRule, len(opts.Order)),
		hideApps:      toSet(opts.HideApps),
		hideModels:    toSet(opts.HideModels),
		icons:         make(map[string]string, len(opts.Icons)),
		parentIcon:    opts.ParentIcon,
		childIcon:     opts.ChildIcon,
		submenuModels: toSet(opts.SubmenuModels),
		modelSubmenus: make(map[string][]SubmenuLink, len(opts.ModelSubmenus)),
		customLinks:   make(map[string][]CustomLink, len(opts.CustomLinks)),
		lookup:        opts.Lookup,
	}

	if r.parentIcon == "" {
		r.parentIcon = DefaultParentIcon
	}

	if r.childIcon == "" {
		r.childIcon = DefaultChildIcon
	}

	for _, rule := range opts.Order {
		app := lower(rule.App)
		if _, dup := r.rules[app]; dup {
			continue
		}

		models := make(map[string]int, len(rule.Models))
		for _, m := range rule.Models {
			key := lower(m.Model)
			if _, dup := models[key]; !dup {
				models[key] = m.Order
			}
		}

		r.rules[app] = appRule{order: rule.Order, models: models}
	}

	for k, v := range opts.Icons {
		r.icons[lower(k)] = v
	}

	for k, v := range opts.ModelSubmenus {
		r.modelSubmenus[lower(k)] = v
	}

	for k, v := range opts.CustomLinks {
		r.customLinks[lower(k)] = v
	}

	// Map iteration order is random, so new custom sections follow the
	// declared key order when it is known and sorted keys otherwise.
	r.customOrder = customKeyOrder(opts.CustomLinkKeys, r.customLinks)

	return r
}

// Resolve builds the ordered sidebar for apps. The input is not modified.
func (r *Resolver) Resolve(apps []App) []Section {
	lookup := r.lookup
	if lookup == nil {
		lookup = AppsLookup(apps)
	}

	installed := make(map[string]bool, len(apps))
	for _, app := range apps {
		installed[lower(app.Label)] = true
	}

	all := make([]App, 0, len(apps)+len(r.customOrder))
	all = append(all, apps...)

	for _, label := range r.customOrder {
		if installed[lower(label)] {
			continue
		}

		all = append(all, App{Label: label, Name: label, URL: "#"})
	}

	sections := make([]Section, 0, len(all))

	for _, app := range all {
		label := lower(app.Label)
		if r.hideApps[label] {
			continue
		}

		section := Section{
			Label:  app.Label,
			Name:   app.Name,
			URL:    app.URL,
			Icon:   r.icon(label, r.parentIcon),
			Custom: !installed[label],
		}

		items := make([]Item, 0, len(app.Models))

		for _, m := range app.Models {
			key := m.Key(app.Label)
			if r.hideModels[key] {
				continue
			}

			item := Item{
				Key:    key,
				Name:   m.Name,
				URL:    m.AdminURL,
				AddURL: m.AddURL,
				Icon:   r.icon(key, r.childIcon),
				Count:  m.Count,
			}

			if r.submenuModels[key] {
				item.Submenu = r.submenu(key, m, lookup)
			}

			items = append(items, item)
		}

		items = r.orderModels(label, app.Label, items)

		for _, link := range r.customLinks[label] {
			items = append(items, r.customItem(link))
		}

		if len(items) == 0 {
			continue
		}

		section.Items = items
		sections = append(sections, section)
	}

	return sortByRank(sections, func(s Section) (int, bool) {
		rule, ok := r.rules[lower(s.Label)]
		return rule.order, ok
	})
}

func (r *Resolver) orderModels(label, appLabel string, items []Item) []Item {
	rule, ok := r.rules[label]
	if !ok || len(rule.models) == 0 {
		return items
	}

	return sortByRank(items, func(it Item) (int, bool) {
		if order, ok := rule.models[it.Key]; ok {
			return order, true
		}

		bare := strings.TrimPrefix(it.Key, lower(appLabel)+".")
		order, ok := rule.models[bare]

		return order, ok
	})
}

func (r *Resolver) submenu(key string, m Model, lookup ModelLookup) []SubItem {
	subs := []SubItem{
		{Name: AddNewLabel, URL: m.AddURL},
		{Name: m.Name, URL: m.AdminURL},
	}

	for _, extra := range r.modelSubmenus[key] {
		sub := SubItem{Name: extra.Name, URL: extra.URL, Order: extra.Order}

		if extra.Model != "" {
			sub.Name, sub.URL = resolveModelRef(extra.Model, lookup)
		}

		subs = append(subs, sub)
	}

	return sortByRank(subs, func(s SubItem) (int, bool) {
		return s.Order, true
	})
}

func (r *Resolver) customItem(link CustomLink) Item {
	item := Item{
		Name:      link.Name,
		URL:       link.URL,
		Icon:      link.Icon,
		Custom:    true,
		NewWindow: link.NewWindow,
	}

	if item.Icon == "" {
		item.Icon = r.childIcon
	}

	for _, sub := range link.Submenu {
		item.Submenu = append(item.Submenu, SubItem{Name: sub.Name, URL: sub.URL})
	}

	return item
}

func (r *Resolver) icon(key, fallback string) string {
	if icon, ok := r.icons[key]; ok && icon != "" {
		return icon
	}

	return fallback
}

// resolveModelRef turns "app.Model" into a display name and URL. Unresolvable
// references render as the raw reference pointing nowhere.
func resolveModelRef(ref string, lookup ModelLookup) (string, string) {
	appLabel, objectName, ok := strings.Cut(ref, ".")
	if !ok || lookup == nil {
		return ref, "#"
	}

	name, url, found := lookup.LookupModel(appLabel, objectName)
	if !found {
		return ref, "#"
	}

	return name, url
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[lower(v)] = true
	}

	return set
}

// customKeyOrder returns the custom section names. links is keyed by the
// lower-cased label; declared names keep their casing for display.
func customKeyOrder(declared []string, links map[string][]CustomLink) []string {
	seen := make(map[string]bool, len(links))
	order := make([]string, 0, len(links))

	for _, k := range declared {
		key := lower(k)
		if _, ok := links[key]; ok && !seen[key] {
			seen[key] = true
			order = append(order, strings.TrimSpace(k))
		}
	}

	rest := make([]string, 0, len(links))
	for k := range links {
		if !seen[k] {
			rest = append(rest, k)
		}
	}

	slices.Sort(rest)

	return append(order, rest...)
}
