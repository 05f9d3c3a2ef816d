// Package session models the state of one admin page in the browser: the
// sidebar, the change-form panes, the sidebar search, password fields and
// widgets of newly added inline rows. State changes only through events
// dispatched to registered handlers.
package session

import (
	"fmt"
	"sort"

	"github.com/xraph/dashub/internal/errors"
	"github.com/xraph/dashub/internal/logger"
	"github.com/xraph/dashub/widgets"
)

// Event kinds understood by Page.
const (
	EventPageLoad       = "page:load"
	EventMenuToggle     = "menu:toggle"
	EventSidebarToggle  = "sidebar:toggle"
	EventSidebarMobile  = "sidebar:mobile"
	EventTabClick       = "tab:click"
	EventCarouselSlide  = "carousel:slide"
	EventSearchInput    = "search:input"
	EventPasswordToggle = "password:toggle"
	EventFormsetAdded   = "formset:added"
)

// Event is a user or browser interaction.
type Event struct {
	Kind   string      `json:"kind"`
	Target string      `json:"target,omitempty"` // menu, pane or field id
	Index  int         `json:"index,omitempty"`  // carousel slide
	Value  string      `json:"value,omitempty"`  // search query, location hash or path
	Row    widgets.Row `json:"row"`
}

// Handler reacts to an event.
type Handler func(Event) error

// Dispatcher maps event kinds to handlers and invokes them synchronously in
// registration order. It belongs to one page and is not safe for concurrent
// use.
type Dispatcher struct {
	handlers map[string][]Handler
	log      logger.Logger
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher(log logger.Logger) *Dispatcher {
	if log == nil {
		log = logger.NewNoopLogger()
	}

	return &Dispatcher{handlers: make(map[string][]Handler), log: log}
}

// On registers h for kind after any existing handlers.
func (d *Dispatcher) On(kind string, h Handler) {
	d.handlers[kind] = append(d.handlers[kind], h)
}

// Kinds returns the event kinds that have handlers, sorted.
func (d *Dispatcher) Kinds() []string {
	kinds := make([]string, 0, len(d.handlers))
	for k := range d.handlers {
		kinds = append(kinds, k)
	}

	sort.Strings(kinds)

	return kinds
}

// Dispatch runs every handler of ev.Kind. A handler that fails or panics is
// logged and the remaining handlers still run. The failures are returned in
// handler order; events without handlers are ignored.
func (d *Dispatcher) Dispatch(ev Event) []error {
	var failures []error

	for i, h := range d.handlers[ev.Kind] {
		if err := d.call(h, ev); err != nil {
			d.log.Warn("event handler failed",
				logger.String("event", ev.Kind),
				logger.Int("handler", i),
				logger.Err(err),
			)

			failures = append(failures, err)
		}
	}

	return failures
}

func (d *Dispatcher) call(h Handler, ev Event) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = errors.ErrHandlerPanic(ev.Kind, rec)
		}
	}()

	if err := h(ev); err != nil {
		return fmt.Errorf("%s: %w", ev.Kind, err)
	}

	return nil
}
