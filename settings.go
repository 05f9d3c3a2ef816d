// Package dashub is a configuration-driven theme layer for server-rendered
// admin panels. It resolves the sidebar from the host's installed apps,
// renders branding and change-form layouts, and ships the browser scripts
// that drive the sidebar, tabs and form widgets.
package dashub

import (
	"bytes"
	"fmt"
	"maps"
	"slices"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/xraph/dashub/menu"
	"github.com/xraph/dashub/theme"
	"github.com/xraph/dashub/widgets"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// DefaultSiteTitle is the browser title when none is configured.
	DefaultSiteTitle = "Admin Dashboard"
	// DefaultSiteLogo is the brand image when none is configured.
	DefaultSiteLogo = "https://cdn.practet.com/static/logo-new.webp"
	// DefaultStaticURL is where the embedded assets are served.
	DefaultStaticURL = "/static/"
)

// Settings is the complete dashub configuration. It is read once at start-up
// and is read-only afterwards.
type Settings struct {
	// Branding
	SiteTitle     string `json:"site_title"                yaml:"site_title"`
	SiteHeader    string `json:"site_header"               yaml:"site_header"`
	SiteBrand     string `json:"site_brand"                yaml:"site_brand"`
	SiteLogo      string `json:"site_logo"                 yaml:"site_logo"`
	SiteIcon      string `json:"site_icon"                 yaml:"site_icon"`
	ThemeColor    string `json:"theme_color"               yaml:"theme_color"`
	ThemeColorRGB string `json:"theme_color_rgb,omitempty" yaml:"-"`

	// Top and user menus
	TopmenuLinks  []menu.Link `json:"topmenu_links"  yaml:"topmenu_links"`
	UsermenuLinks []menu.Link `json:"usermenu_links" yaml:"usermenu_links"`

	// Side menu
	HideApps            StringList                    `json:"hide_apps"             yaml:"hide_apps"`
	HideModels          StringList                    `json:"hide_models"           yaml:"hide_models"`
	OrderMenus          OrderRules                    `json:"order_menus"           yaml:"order_menus"`
	SubmenusModels      StringList                    `json:"submenus_models"       yaml:"submenus_models"`
	ModelSubmenus       map[string][]menu.SubmenuLink `json:"model_submenus"        yaml:"model_submenus"`
	CustomLinks         map[string][]menu.CustomLink  `json:"custom_links"          yaml:"custom_links"`
	Icons               map[string]string             `json:"icons"                 yaml:"icons"`
	DefaultIconParents  string                        `json:"default_icon_parents"  yaml:"default_icon_parents"`
	DefaultIconChildren string                        `json:"default_icon_children" yaml:"default_icon_children"`

	// UI tweaks
	CustomCSS          string `json:"custom_css"           yaml:"custom_css"`
	CustomJS           string `json:"custom_js"            yaml:"custom_js"`
	RelatedModalActive bool   `json:"related_modal_active" yaml:"related_modal_active"`
	LanguageChooser    bool   `json:"language_chooser"     yaml:"language_chooser"`
	UserAvatar         string `json:"user_avatar"          yaml:"user_avatar"`
	StaticURL          string `json:"static_url"           yaml:"static_url"`

	// Change view
	ChangeformFormat          string            `json:"changeform_format"           yaml:"changeform_format"`
	ChangeformFormatOverrides map[string]string `json:"changeform_format_overrides" yaml:"changeform_format_overrides"`

	// Widget library URLs
	Assets widgets.CDN `json:"assets" yaml:"assets"`

	Logging LogSettings `json:"logging" yaml:"logging"`

	customLinkKeys []string
	lookup         menu.ModelLookup
	zap            *zap.Logger
}

// LogSettings configures the dashub logger.
type LogSettings struct {
	Level  string `json:"level"  yaml:"level"`  // debug, info, warn, error
	Format string `json:"format" yaml:"format"` // console or json
}

// DefaultSettings returns the settings used for every key that is not
// configured.
func DefaultSettings() Settings {
	return Settings{
		SiteTitle:  DefaultSiteTitle,
		SiteLogo:   DefaultSiteLogo,
		ThemeColor: theme.DefaultColor,

		ModelSubmenus: map[string][]menu.SubmenuLink{},
		CustomLinks:   map[string][]menu.CustomLink{},
		Icons: map[string]string{
			"auth":       "fas fa-users-cog",
			"auth.user":  "fas fa-user",
			"auth.group": "fas fa-users",
		},
		DefaultIconParents:  menu.DefaultParentIcon,
		DefaultIconChildren: menu.DefaultChildIcon,

		RelatedModalActive: true,
		StaticURL:          DefaultStaticURL,

		ChangeformFormat:          "horizontal_tabs",
		ChangeformFormatOverrides: map[string]string{},

		Assets: widgets.DefaultCDN(),

		Logging: LogSettings{Level: "info", Format: "console"},
	}
}

// clone returns a copy that shares no maps or slices with s, so options can
// be applied without touching the caller's settings.
func (s Settings) clone() Settings {
	c := s

	c.TopmenuLinks = slices.Clone(s.TopmenuLinks)
	c.UsermenuLinks = slices.Clone(s.UsermenuLinks)
	c.HideApps = slices.Clone(s.HideApps)
	c.HideModels = slices.Clone(s.HideModels)
	c.OrderMenus = slices.Clone(s.OrderMenus)
	c.SubmenusModels = slices.Clone(s.SubmenusModels)
	c.Icons = maps.Clone(s.Icons)
	c.ChangeformFormatOverrides = maps.Clone(s.ChangeformFormatOverrides)
	c.customLinkKeys = slices.Clone(s.customLinkKeys)

	if s.ModelSubmenus != nil {
		c.ModelSubmenus = make(map[string][]menu.SubmenuLink, len(s.ModelSubmenus))
		for k, v := range s.ModelSubmenus {
			c.ModelSubmenus[k] = slices.Clone(v)
		}
	}

	if s.CustomLinks != nil {
		c.CustomLinks = make(map[string][]menu.CustomLink, len(s.CustomLinks))
		for k, v := range s.CustomLinks {
			c.CustomLinks[k] = slices.Clone(v)
		}
	}

	return c
}

// CustomLinkKeys returns the custom link sections in declaration order.
func (s Settings) CustomLinkKeys() []string {
	return append([]string(nil), s.customLinkKeys...)
}

// Branding returns the branding part of the settings.
func (s Settings) Branding() theme.Branding {
	return theme.Branding{
		Title:  s.SiteTitle,
		Header: s.SiteHeader,
		Brand:  s.SiteBrand,
		Logo:   s.SiteLogo,
		Icon:   s.SiteIcon,
		Color:  s.ThemeColor,
	}
}

// MenuOptions converts the side menu settings for the menu resolver.
func (s Settings) MenuOptions() menu.Options {
	rules := make([]menu.OrderRule, len(s.OrderMenus))
	copy(rules, s.OrderMenus)

	return menu.Options{
		Order:          rules,
		HideApps:       s.HideApps,
		HideModels:     s.HideModels,
		Icons:          s.Icons,
		ParentIcon:     s.DefaultIconParents,
		ChildIcon:      s.DefaultIconChildren,
		SubmenuModels:  s.SubmenusModels,
		ModelSubmenus:  s.ModelSubmenus,
		CustomLinks:    s.CustomLinks,
		CustomLinkKeys: s.customLinkKeys,
		Lookup:         s.lookup,
	}
}

// StringList is a list of strings that also accepts a single string.
type StringList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *StringList) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		if value.Tag == "!!null" {
			*l = nil
			return nil
		}

		*l = StringList{value.Value}

		return nil
	}

	var many []string
	if err := value.Decode(&many); err != nil {
		return err
	}

	*l = many

	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *StringList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*l = nil
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var one string
		if err := json.Unmarshal(data, &one); err != nil {
			return err
		}

		*l = StringList{one}

		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}

	*l = many

	return nil
}

// OrderRules is the order_menus setting. Besides full rules it accepts bare
// app labels, which are ordered by their position in the list.
type OrderRules []menu.OrderRule

// UnmarshalYAML implements yaml.Unmarshaler.
func (r *OrderRules) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode {
		return fmt.Errorf("order_menus: expected a list at line %d", value.Line)
	}

	rules := make(OrderRules, 0, len(value.Content))

	for i, n := range value.Content {
		if n.Kind == yaml.ScalarNode {
			rules = append(rules, menu.OrderRule{App: n.Value, Order: i})
			continue
		}

		var rule menu.OrderRule
		if err := n.Decode(&rule); err != nil {
			return err
		}

		rules = append(rules, rule)
	}

	*r = rules

	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *OrderRules) UnmarshalJSON(data []byte) error {
	var raw []jsoniter.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("order_menus: %w", err)
	}

	rules := make(OrderRules, 0, len(raw))

	for i, item := range raw {
		item = bytes.TrimSpace(item)

		if len(item) > 0 && item[0] == '"' {
			var app string
			if err := json.Unmarshal(item, &app); err != nil {
				return err
			}

			rules = append(rules, menu.OrderRule{App: app, Order: i})

			continue
		}

		var rule menu.OrderRule
		if err := json.Unmarshal(item, &rule); err != nil {
			return err
		}

		rules = append(rules, rule)
	}

	*r = rules

	return nil
}
