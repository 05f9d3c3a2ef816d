package dashub

import (
	"github.com/xraph/dashub/changeform"
	"github.com/xraph/dashub/internal/errors"
	"github.com/xraph/dashub/internal/logger"
	"github.com/xraph/dashub/menu"
	"github.com/xraph/dashub/search"
	"github.com/xraph/dashub/session"
	"github.com/xraph/dashub/theme"
	"github.com/xraph/dashub/widgets"
)

// Dashub ties the settings to the menu resolver, theme, change form selector
// and widget registry. It is read-only after New and safe for concurrent use;
// the session.Page values it creates are not.
type Dashub struct {
	settings Settings
	log      logger.Logger
	resolver *menu.Resolver
	theme    *theme.Manager
	forms    *changeform.Selector
	widgets  *widgets.Registry
}

// New applies opts to settings, normalizes and validates them and builds the
// components. Warnings are logged; error-level issues fail construction.
func New(settings Settings, opts ...Option) (*Dashub, error) {
	settings = settings.clone()

	for _, opt := range opts {
		opt(&settings)
	}

	settings.Normalize()

	var log logger.Logger
	if settings.zap != nil {
		log = logger.NewFromZap(settings.zap)
	} else {
		log = logger.NewLogger(logger.LoggingConfig{Level: settings.Logging.Level, Format: settings.Logging.Format})
	}

	log = log.Named("dashub")

	issues := settings.Validate()
	for _, issue := range issues {
		if issue.Level == LevelWarning {
			log.Warn("settings warning",
				logger.String("field", issue.Field),
				logger.String("message", issue.Message),
			)
		}
	}

	if issues.HasErrors() {
		return nil, errors.ErrConfigError("invalid settings", issues.Err())
	}

	return &Dashub{
		settings: settings,
		log:      log,
		resolver: menu.NewResolver(settings.MenuOptions()),
		theme: theme.NewManager(theme.ThemeConfig{
			Branding:  settings.Branding(),
			CustomCSS: settings.CustomCSS,
			CustomJS:  settings.CustomJS,
		}, log),
		forms:   changeform.NewSelector(settings.ChangeformFormat, settings.ChangeformFormatOverrides),
		widgets: widgets.DefaultRegistry(log),
	}, nil
}

// Settings returns the normalized settings.
func (d *Dashub) Settings() Settings { return d.settings }

// Logger returns the dashub logger.
func (d *Dashub) Logger() logger.Logger { return d.log }

// Theme returns the theme manager.
func (d *Dashub) Theme() *theme.Manager { return d.theme }

// Widgets returns the widget initializer registry.
func (d *Dashub) Widgets() *widgets.Registry { return d.widgets }

// Media returns the stylesheets and scripts of every widget library.
func (d *Dashub) Media() widgets.Media { return widgets.AllMedia(d.settings.Assets) }

// SideMenu resolves the sidebar for the installed apps.
func (d *Dashub) SideMenu(apps []menu.App) []menu.Section {
	return d.resolver.Resolve(apps)
}

// TopMenu resolves the top navigation links; app links become dropdowns.
func (d *Dashub) TopMenu(apps []menu.App) []menu.Entry {
	return menu.MakeLinks(d.settings.TopmenuLinks, apps, true)
}

// UserMenu resolves the user dropdown links.
func (d *Dashub) UserMenu(apps []menu.App) []menu.Entry {
	return menu.MakeLinks(d.settings.UsermenuLinks, apps, false)
}

// ChangeFormFormat returns the change form layout of model ("app.model").
func (d *Dashub) ChangeFormFormat(model string, hasFieldsets, hasInlines bool) changeform.Format {
	return d.forms.Format(model, hasFieldsets, hasInlines)
}

// ChangeFormTemplate returns the template the host renders for model.
func (d *Dashub) ChangeFormTemplate(model string, hasFieldsets, hasInlines bool) string {
	return d.forms.Template(model, hasFieldsets, hasInlines)
}

// SearchIndex builds a search index over the resolved sidebar.
func (d *Dashub) SearchIndex(apps []menu.App) *search.Index {
	idx := search.NewIndex()
	idx.Rebuild(d.SideMenu(apps))

	return idx
}

// NewPage creates the interaction state of a page showing the sidebar for
// apps and the given change form panes.
func (d *Dashub) NewPage(apps []menu.App, panes []session.Pane, history session.History, passwordFields ...string) *session.Page {
	return session.NewPage(session.PageConfig{
		Sections:       d.SideMenu(apps),
		Panes:          panes,
		History:        history,
		PasswordFields: passwordFields,
		Widgets:        d.widgets,
		Logger:         d.log,
	})
}

// AvatarSource exposes user attributes by field name.
type AvatarSource interface {
	AvatarField(name string) (value string, ok bool)
}

// DefaultAvatar returns the placeholder avatar URL.
func (d *Dashub) DefaultAvatar() string {
	return d.settings.StaticURL + "img/avatar.svg"
}

// UserAvatar returns the avatar URL of a user: the value of the configured
// user_avatar field, or the placeholder when it is unset, missing or empty.
func (d *Dashub) UserAvatar(user AvatarSource) string {
	field := d.settings.UserAvatar
	if field == "" || user == nil {
		return d.DefaultAvatar()
	}

	value, ok := user.AvatarField(field)
	if !ok {
		d.log.Warn("avatar field not found on user", logger.String("user_avatar", field))
		return d.DefaultAvatar()
	}

	if value == "" {
		return d.DefaultAvatar()
	}

	return value
}
