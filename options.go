package dashub

import (
	"go.uber.org/zap"

	"github.com/xraph/dashub/menu"
	"github.com/xraph/dashub/widgets"
)

// Option is a functional option for Settings.
type Option func(*Settings)

// WithSiteTitle sets the browser title.
func WithSiteTitle(title string) Option {
	return func(s *Settings) { s.SiteTitle = title }
}

// WithSiteHeader sets the login screen title.
func WithSiteHeader(header string) Option {
	return func(s *Settings) { s.SiteHeader = header }
}

// WithSiteBrand sets the text next to the logo.
func WithSiteBrand(brand string) Option {
	return func(s *Settings) { s.SiteBrand = brand }
}

// WithSiteLogo sets the brand image URL.
func WithSiteLogo(url string) Option {
	return func(s *Settings) { s.SiteLogo = url }
}

// WithSiteIcon sets the favicon URL.
func WithSiteIcon(url string) Option {
	return func(s *Settings) { s.SiteIcon = url }
}

// WithThemeColor sets the theme colour (#rgb or #rrggbb).
func WithThemeColor(color string) Option {
	return func(s *Settings) { s.ThemeColor = color }
}

// WithRelatedModal enables or disables editing related objects in a modal.
func WithRelatedModal(enabled bool) Option {
	return func(s *Settings) { s.RelatedModalActive = enabled }
}

// WithOrder appends side menu order rules.
func WithOrder(rules ...menu.OrderRule) Option {
	return func(s *Settings) { s.OrderMenus = append(s.OrderMenus, rules...) }
}

// WithSubmenus gives the listed "app.model" entries a submenu.
func WithSubmenus(models ...string) Option {
	return func(s *Settings) { s.SubmenusModels = append(s.SubmenusModels, models...) }
}

// WithModelSubmenu appends extra entries to a model's submenu.
func WithModelSubmenu(model string, links ...menu.SubmenuLink) Option {
	return func(s *Settings) {
		if s.ModelSubmenus == nil {
			s.ModelSubmenus = map[string][]menu.SubmenuLink{}
		}

		s.ModelSubmenus[model] = append(s.ModelSubmenus[model], links...)
	}
}

// WithCustomLinks appends custom links to an app section. Sections that name
// no installed app are created in the order they are first declared.
func WithCustomLinks(app string, links ...menu.CustomLink) Option {
	return func(s *Settings) {
		if s.CustomLinks == nil {
			s.CustomLinks = map[string][]menu.CustomLink{}
		}

		if _, ok := s.CustomLinks[app]; !ok {
			s.customLinkKeys = append(s.customLinkKeys, app)
		}

		s.CustomLinks[app] = append(s.CustomLinks[app], links...)
	}
}

// WithHiddenApps hides apps from the side menu.
func WithHiddenApps(apps ...string) Option {
	return func(s *Settings) { s.HideApps = append(s.HideApps, apps...) }
}

// WithHiddenModels hides "app.model" entries from the side menu.
func WithHiddenModels(models ...string) Option {
	return func(s *Settings) { s.HideModels = append(s.HideModels, models...) }
}

// WithIcon sets the icon class of an app or "app.model".
func WithIcon(key, class string) Option {
	return func(s *Settings) {
		if s.Icons == nil {
			s.Icons = map[string]string{}
		}

		s.Icons[key] = class
	}
}

// WithTopMenu appends top menu links.
func WithTopMenu(links ...menu.Link) Option {
	return func(s *Settings) { s.TopmenuLinks = append(s.TopmenuLinks, links...) }
}

// WithUserMenu appends user menu links.
func WithUserMenu(links ...menu.Link) Option {
	return func(s *Settings) { s.UsermenuLinks = append(s.UsermenuLinks, links...) }
}

// WithChangeformFormat sets the default change form layout.
func WithChangeformFormat(format string) Option {
	return func(s *Settings) { s.ChangeformFormat = format }
}

// WithChangeformOverride sets the change form layout of one model.
func WithChangeformOverride(model, format string) Option {
	return func(s *Settings) {
		if s.ChangeformFormatOverrides == nil {
			s.ChangeformFormatOverrides = map[string]string{}
		}

		s.ChangeformFormatOverrides[model] = format
	}
}

// WithCustomCSS sets the URL of an extra stylesheet.
func WithCustomCSS(url string) Option {
	return func(s *Settings) { s.CustomCSS = url }
}

// WithCustomJS sets the URL of an extra script.
func WithCustomJS(url string) Option {
	return func(s *Settings) { s.CustomJS = url }
}

// WithAssets overrides widget library URLs. Empty fields keep their default.
func WithAssets(cdn widgets.CDN) Option {
	return func(s *Settings) { s.Assets = cdn }
}

// WithLogging sets the log level and format.
func WithLogging(level, format string) Option {
	return func(s *Settings) { s.Logging = LogSettings{Level: level, Format: format} }
}

// WithZapLogger makes dashub log through an existing zap logger.
func WithZapLogger(z *zap.Logger) Option {
	return func(s *Settings) { s.zap = z }
}

// WithModelLookup resolves "app.Model" references in model submenus through
// the host instead of the installed app list.
func WithModelLookup(lookup menu.ModelLookup) Option {
	return func(s *Settings) { s.lookup = lookup }
}
