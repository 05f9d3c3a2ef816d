// Package menu builds the admin sidebar from the host's installed apps and the
// ordering, visibility and custom-link rules in the dashub settings.
package menu

// App is one installed application as reported by the host admin framework.
type App struct {
	Label  string  `json:"app_label" yaml:"app_label"`
	Name   string  `json:"name"      yaml:"name"`
	URL    string  `json:"app_url"   yaml:"app_url"`
	Models []Model `json:"models"    yaml:"models"`
}

// Model is one registered model of an App.
type Model struct {
	ObjectName string `json:"object_name" yaml:"object_name"`
	Name       string `json:"name"        yaml:"name"`
	AdminURL   string `json:"admin_url"   yaml:"admin_url"`
	AddURL     string `json:"add_url"     yaml:"add_url"`
	Count      int    `json:"count"       yaml:"count"`
}

// Key returns the lower-cased "app.model" identifier used by every rule.
func (m Model) Key(appLabel string) string {
	return lower(appLabel + "." + m.ObjectName)
}

// OrderRule positions an app section and, optionally, the models inside it.
type OrderRule struct {
	App    string           `json:"app"              yaml:"app"`
	Order  int              `json:"order"            yaml:"order"`
	Models []ModelOrderRule `json:"models,omitempty" yaml:"models,omitempty"`
}

// ModelOrderRule positions one model within its app section. Model may be the
// bare object name or the full "app.model" identifier.
type ModelOrderRule struct {
	Model string `json:"model" yaml:"model"`
	Order int    `json:"order" yaml:"order"`
}

// CustomLink is an extra sidebar entry attached to an app section.
type CustomLink struct {
	Name      string          `json:"name"                 yaml:"name"`
	URL       string          `json:"url"                  yaml:"url"`
	Icon      string          `json:"icon,omitempty"       yaml:"icon,omitempty"`
	NewWindow bool            `json:"new_window,omitempty" yaml:"new_window,omitempty"`
	Submenu   []CustomSubLink `json:"submenu,omitempty"    yaml:"submenu,omitempty"`
}

// CustomSubLink is a leaf under a CustomLink.
type CustomSubLink struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url"  yaml:"url"`
}

// SubmenuLink is an extra entry appended to a model's submenu. When Model is
// set ("app.Model"), Name and URL are resolved through a ModelLookup.
type SubmenuLink struct {
	Name  string `json:"name,omitempty"  yaml:"name,omitempty"`
	URL   string `json:"url,omitempty"   yaml:"url,omitempty"`
	Model string `json:"model,omitempty" yaml:"model,omitempty"`
	Order int    `json:"order,omitempty" yaml:"order,omitempty"`
}

// Link is a top-menu or user-menu entry. Exactly one of URL, Model or App is
// normally set.
type Link struct {
	Name      string `json:"name,omitempty"       yaml:"name,omitempty"`
	URL       string `json:"url,omitempty"        yaml:"url,omitempty"`
	Model     string `json:"model,omitempty"      yaml:"model,omitempty"`
	App       string `json:"app,omitempty"        yaml:"app,omitempty"`
	Icon      string `json:"icon,omitempty"       yaml:"icon,omitempty"`
	NewWindow bool   `json:"new_window,omitempty" yaml:"new_window,omitempty"`
}

// Section is one rendered app group of the sidebar.
type Section struct {
	Label  string `json:"app_label"`
	Name   string `json:"name"`
	URL    string `json:"app_url"`
	Icon   string `json:"icon"`
	Custom bool   `json:"custom,omitempty"`
	Items  []Item `json:"models"`
}

// Item is one clickable row inside a Section.
type Item struct {
	Key       string    `json:"model_str,omitempty"`
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	AddURL    string    `json:"add_url,omitempty"`
	Icon      string    `json:"icon"`
	Count     int       `json:"count"`
	Custom    bool      `json:"custom,omitempty"`
	NewWindow bool      `json:"new_window,omitempty"`
	Submenu   []SubItem `json:"submenu,omitempty"`
}

// HasSubmenu reports whether the item renders as a collapsible parent.
func (i Item) HasSubmenu() bool {
	return len(i.Submenu) > 0
}

// SubItem is a leaf inside an item's submenu.
type SubItem struct {
	Name  string `json:"name"`
	URL   string `json:"url"`
	Order int    `json:"order"`
}

// Entry is a resolved top-menu or user-menu link. Children is set for app
// dropdowns.
type Entry struct {
	Name      string  `json:"name"`
	URL       string  `json:"url"`
	Icon      string  `json:"icon,omitempty"`
	NewWindow bool    `json:"new_window,omitempty"`
	Children  []Entry `json:"children,omitempty"`
}

// ModelLookup resolves an "app.Model" reference to its display name and
// changelist URL.
type ModelLookup interface {
	LookupModel(appLabel, objectName string) (name, url string, ok bool)
}

// ModelLookupFunc adapts a function to ModelLookup.
type ModelLookupFunc func(appLabel, objectName string) (string, string, bool)

// LookupModel implements ModelLookup.
func (f ModelLookupFunc) LookupModel(appLabel, objectName string) (string, string, bool) {
	return f(appLabel, objectName)
}

// AppsLookup resolves references against the installed app list itself.
func AppsLookup(apps []App) ModelLookup {
	return ModelLookupFunc(func(appLabel, objectName string) (string, string, bool) {
		for _, app := range apps {
			if lower(app.Label) != lower(appLabel) {
				continue
			}

			for _, m := range app.Models {
				if lower(m.ObjectName) == lower(objectName) {
					return m.Name, m.AdminURL, true
				}
			}
		}

		return "", "", false
	})
}
