package widgets

import (
	"fmt"
	"strings"
	"sync"

	"github.com/xraph/dashub/internal/errors"
	"github.com/xraph/dashub/internal/logger"
)

// EmptyFormPrefix marks the hidden template row of an inline formset. Widgets
// are never bound to it; they are bound once the row is cloned.
const EmptyFormPrefix = "__prefix__"

// Element is one form control inside a row.
type Element struct {
	ID   string `json:"id"`
	Kind Kind   `json:"kind"`
}

// Row is a rendered form or a newly added inline formset row.
type Row struct {
	Prefix   string    `json:"prefix"`
	Elements []Element `json:"elements"`
}

// Binding records a widget attached to an element.
type Binding struct {
	Widget    string         `json:"widget"`
	ElementID string         `json:"element_id"`
	Options   map[string]any `json:"options,omitempty"`
}

// Initializer binds one widget library to the matching elements of a row.
type Initializer interface {
	Name() string
	Init(row Row) ([]Binding, error)
}

type kindInitializer struct {
	name    string
	kinds   map[Kind]bool
	options func(Kind) map[string]any
}

func (k *kindInitializer) Name() string { return k.name }

func (k *kindInitializer) Init(row Row) ([]Binding, error) {
	var bindings []Binding

	for _, el := range row.Elements {
		if !k.kinds[el.Kind] {
			continue
		}

		if strings.Contains(el.ID, EmptyFormPrefix) {
			continue
		}

		if el.ID == "" {
			return bindings, fmt.Errorf("%s element in row %q has no id", el.Kind, row.Prefix)
		}

		bindings = append(bindings, Binding{Widget: k.name, ElementID: el.ID, Options: k.options(el.Kind)})
	}

	return bindings, nil
}

// SearchableSelect binds select2 to select fields.
func SearchableSelect() Initializer {
	return &kindInitializer{
		name:  "select2",
		kinds: map[Kind]bool{KindSelect: true, KindSelectMultiple: true},
		options: func(kind Kind) map[string]any {
			return map[string]any{"width": "100%", "multiple": kind == KindSelectMultiple}
		},
	}
}

// RichText binds the Quill editor to rich-text fields.
func RichText() Initializer {
	return &kindInitializer{
		name:  "quill",
		kinds: map[Kind]bool{KindRichText: true},
		options: func(Kind) map[string]any {
			return map[string]any{"theme": "snow"}
		},
	}
}

// DateTimePicker binds flatpickr to date, time and datetime fields.
func DateTimePicker() Initializer {
	return &kindInitializer{
		name:  "flatpickr",
		kinds: map[Kind]bool{KindDate: true, KindTime: true, KindDateTime: true},
		options: func(kind Kind) map[string]any {
			switch kind {
			case KindTime:
				return map[string]any{"enableTime": true, "noCalendar": true, "dateFormat": "H:i"}
			case KindDateTime:
				return map[string]any{"enableTime": true, "dateFormat": "Y-m-d H:i"}
			default:
				return map[string]any{"dateFormat": "Y-m-d"}
			}
		},
	}
}

// DataGrid binds DataTables to data grid tables.
func DataGrid() Initializer {
	return &kindInitializer{
		name:  "datatables",
		kinds: map[Kind]bool{KindDataGrid: true},
		options: func(Kind) map[string]any {
			return map[string]any{"paging": true, "searching": true}
		},
	}
}

// Registry runs initializers in registration order. It is safe for
// concurrent use.
type Registry struct {
	mu    sync.RWMutex
	inits []Initializer
	log   logger.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(log logger.Logger) *Registry {
	if log == nil {
		log = logger.NewNoopLogger()
	}

	return &Registry{log: log.Named("widgets")}
}

// DefaultRegistry holds the built-in initializers.
func DefaultRegistry(log logger.Logger) *Registry {
	r := NewRegistry(log)
	r.Register(SearchableSelect(), RichText(), DateTimePicker(), DataGrid())

	return r
}

// Register appends initializers.
func (r *Registry) Register(inits ...Initializer) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.inits = append(r.inits, inits...)
}

// Names lists the registered initializers in run order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.inits))
	for i, ini := range r.inits {
		names[i] = ini.Name()
	}

	return names
}

// Initialize runs every initializer on row. A failing or panicking
// initializer is logged and skipped; the others still run. The returned
// errors are the failures, each a WIDGET_INIT_FAILED error.
func (r *Registry) Initialize(row Row) ([]Binding, []error) {
	r.mu.RLock()
	inits := append([]Initializer(nil), r.inits...)
	r.mu.RUnlock()

	var (
		bindings []Binding
		failures []error
	)

	for _, ini := range inits {
		got, err := r.run(ini, row)
		bindings = append(bindings, got...)

		if err != nil {
			failure := errors.ErrWidgetInitFailed(ini.Name(), err).WithContext("row", row.Prefix)
			r.log.Warn("widget initialization failed",
				logger.String("widget", ini.Name()),
				logger.String("row", row.Prefix),
				logger.Err(err),
			)

			failures = append(failures, failure)
		}
	}

	return bindings, failures
}

func (r *Registry) run(ini Initializer, row Row) (bindings []Binding, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic: %v", rec)
		}
	}()

	return ini.Init(row)
}
