package session

import (
	"github.com/xraph/dashub/internal/errors"
	"github.com/xraph/dashub/internal/logger"
	"github.com/xraph/dashub/menu"
	"github.com/xraph/dashub/search"
	"github.com/xraph/dashub/widgets"
)

// PageConfig describes a rendered admin page.
type PageConfig struct {
	Sections       []menu.Section
	Panes          []Pane
	History        History
	PasswordFields []string
	Widgets        *widgets.Registry
	Logger         logger.Logger
}

// Page is the interaction state of one admin page.
type Page struct {
	sidebar    *Sidebar
	tabs       *Tabs
	groups     []search.Group
	visibility search.Visibility
	passwords  map[string]*PasswordField
	widgets    *widgets.Registry
	bindings   []widgets.Binding
	failures   []error
	dispatcher *Dispatcher
	log        logger.Logger
}

// NewPage builds the page state and registers the built-in handlers.
func NewPage(cfg PageConfig) *Page {
	log := cfg.Logger
	if log == nil {
		log = logger.NewNoopLogger()
	}

	registry := cfg.Widgets
	if registry == nil {
		registry = widgets.DefaultRegistry(log)
	}

	p := &Page{
		sidebar:    NewSidebar(cfg.Sections),
		tabs:       NewTabs(cfg.Panes, cfg.History),
		groups:     search.GroupsFromMenu(cfg.Sections),
		passwords:  make(map[string]*PasswordField, len(cfg.PasswordFields)),
		widgets:    registry,
		dispatcher: NewDispatcher(log.Named("session")),
		log:        log,
	}

	for _, id := range cfg.PasswordFields {
		p.passwords[id] = &PasswordField{ID: id}
	}

	p.visibility = search.Filter(p.groups, "")
	p.registerHandlers()

	return p
}

func (p *Page) registerHandlers() {
	d := p.dispatcher

	d.On(EventPageLoad, func(ev Event) error {
		p.tabs.Restore(ev.Value)
		p.initWidgets(ev.Row)

		return nil
	})

	d.On(EventMenuToggle, func(ev Event) error {
		p.sidebar.ToggleMenu(ev.Target)
		return nil
	})

	d.On(EventSidebarToggle, func(Event) error {
		p.sidebar.ToggleCollapse()
		return nil
	})

	d.On(EventSidebarMobile, func(Event) error {
		p.sidebar.ToggleMobile()
		return nil
	})

	d.On(EventTabClick, func(ev Event) error {
		return p.tabs.Click(ev.Target)
	})

	d.On(EventCarouselSlide, func(ev Event) error {
		return p.tabs.Slide(ev.Index)
	})

	d.On(EventSearchInput, func(ev Event) error {
		p.visibility = search.Filter(p.groups, ev.Value)
		return nil
	})

	d.On(EventPasswordToggle, func(ev Event) error {
		field, ok := p.passwords[ev.Target]
		if !ok {
			return errors.ErrValidationError(ev.Target, errors.New("no such password field"))
		}

		field.Toggle()

		return nil
	})

	d.On(EventFormsetAdded, func(ev Event) error {
		p.initWidgets(ev.Row)
		return nil
	})
}

// initWidgets binds widgets to a row. Failures are logged by the registry
// and kept; the page stays usable.
func (p *Page) initWidgets(row widgets.Row) {
	if len(row.Elements) == 0 {
		return
	}

	bindings, failures := p.widgets.Initialize(row)
	p.bindings = append(p.bindings, bindings...)
	p.failures = append(p.failures, failures...)
}

// Dispatch delivers ev to its handlers. See Dispatcher.Dispatch.
func (p *Page) Dispatch(ev Event) []error { return p.dispatcher.Dispatch(ev) }

// Dispatcher exposes the dispatcher so callers can add handlers.
func (p *Page) Dispatcher() *Dispatcher { return p.dispatcher }

// Sidebar returns the sidebar state.
func (p *Page) Sidebar() *Sidebar { return p.sidebar }

// Tabs returns the pane state.
func (p *Page) Tabs() *Tabs { return p.tabs }

// Visibility returns the outcome of the last sidebar search.
func (p *Page) Visibility() search.Visibility { return p.visibility }

// Password returns the password field with the given id.
func (p *Page) Password(id string) (*PasswordField, bool) {
	f, ok := p.passwords[id]
	return f, ok
}

// Bindings returns every widget bound so far.
func (p *Page) Bindings() []widgets.Binding { return p.bindings }

// WidgetFailures returns every widget initialization failure so far.
func (p *Page) WidgetFailures() []error { return p.failures }
