// Package changeform decides how an admin change form is laid out (single
// page, tabs, collapsible panels or carousel) and which sections it shows.
package changeform

import (
	"strconv"
	"strings"

	"github.com/xraph/dashub/internal/slug"
	"github.com/xraph/dashub/menu"
)

// Format is a change form layout.
type Format string

const (
	Single         Format = "single"
	HorizontalTabs Format = "horizontal_tabs"
	VerticalTabs   Format = "vertical_tabs"
	Collapsible    Format = "collapsible"
	Carousel       Format = "carousel"
)

// DefaultFormat is used when no valid format is configured.
const DefaultFormat = HorizontalTabs

var formats = map[Format]bool{
	Single:         true,
	HorizontalTabs: true,
	VerticalTabs:   true,
	Collapsible:    true,
	Carousel:       true,
}

// Formats lists every supported layout.
func Formats() []Format {
	return []Format{Single, HorizontalTabs, VerticalTabs, Collapsible, Carousel}
}

// ParseFormat parses a format name case-insensitively.
func ParseFormat(s string) (Format, bool) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	return f, formats[f]
}

// Template returns the template the host renders for this layout.
func (f Format) Template() string {
	return "dashub/includes/" + string(f) + ".html"
}

// Paned reports whether the layout shows one section at a time and therefore
// synchronizes the URL hash with the visible pane.
func (f Format) Paned() bool {
	return f == HorizontalTabs || f == VerticalTabs || f == Carousel
}

// Selector picks the layout of a model's change form.
type Selector struct {
	def       string
	overrides map[string]string
}

// NewSelector creates a Selector from the configured default format and the
// per-model overrides keyed by "app.model".
func NewSelector(defaultFormat string, overrides map[string]string) *Selector {
	s := &Selector{def: defaultFormat, overrides: make(map[string]string, len(overrides))}
	for model, format := range overrides {
		s.overrides[strings.ToLower(strings.TrimSpace(model))] = format
	}

	return s
}

// Format returns the layout for model. A form with neither fieldsets nor
// inlines is always Single; an unknown or empty format falls back to
// DefaultFormat.
func (s *Selector) Format(model string, hasFieldsets, hasInlines bool) Format {
	configured := s.def
	if override, ok := s.overrides[strings.ToLower(strings.TrimSpace(model))]; ok {
		configured = override
	}

	if !hasFieldsets && !hasInlines {
		return Single
	}

	f, ok := ParseFormat(configured)
	if !ok {
		return DefaultFormat
	}

	return f
}

// Template returns the template name for model.
func (s *Selector) Template(model string, hasFieldsets, hasInlines bool) string {
	return s.Format(model, hasFieldsets, hasInlines).Template()
}

// Section is one fieldset or inline formset of a change form.
type Section struct {
	Name   string   `json:"name"`
	Fields []string `json:"fields,omitempty"`
	Inline bool     `json:"inline,omitempty"`
	Errors int      `json:"errors,omitempty"`
}

// Target is the pane id the section renders under; tabs link to "#"+Target.
func (s Section) Target() string {
	id := slug.Make(s.Name)
	if id == "" {
		id = "general"
	}

	return id + "-tab"
}

// Targets returns the pane id of every section. Target is used as is for
// the first section that yields it; a repeated id gets the section's
// position appended, so every pane stays addressable.
func Targets(sections []Section) []string {
	taken := make(map[string]bool, len(sections))
	for _, s := range sections {
		taken[s.Target()] = true
	}

	used := make(map[string]bool, len(sections))
	out := make([]string, len(sections))

	for i, s := range sections {
		id := s.Target()
		if used[id] {
			base := strings.TrimSuffix(id, "-tab")
			for n := i + 1; ; n++ {
				id = base + "-" + strconv.Itoa(n) + "-tab"
				if !used[id] && !taken[id] {
					break
				}
			}
		}

		used[id] = true
		out[i] = id
	}

	return out
}

// HasErrors reports whether the section holds fields that failed validation.
func (s Section) HasErrors() bool {
	return s.Errors > 0
}

// Sections combines fieldsets and inline formsets into the rendered section
// list. Inlines follow the fieldsets. When order is given, sections are
// ordered by name according to it; unlisted sections keep their position
// after the listed ones.
func Sections(fieldsets, inlines []Section, order []string) []Section {
	all := make([]Section, 0, len(fieldsets)+len(inlines))
	all = append(all, fieldsets...)

	for _, inline := range inlines {
		inline.Inline = true
		all = append(all, inline)
	}

	if len(order) == 0 {
		return all
	}

	return menu.OrderWithRespectTo(all, order, func(s Section) string { return s.Name })
}
