package widgets

import "strings"

// Kind classifies a form field by the widget it renders with.
type Kind string

const (
	KindText           Kind = "text"
	KindJSON           Kind = "json"
	KindSelect         Kind = "select"
	KindSelectMultiple Kind = "select_multiple"
	KindCheckbox       Kind = "checkbox"
	KindCheckboxList   Kind = "checkbox_multiple"
	KindRadio          Kind = "radio"
	KindRichText       Kind = "rich_text"
	KindDate           Kind = "date"
	KindTime           Kind = "time"
	KindDateTime       Kind = "datetime"
	KindDataGrid       Kind = "data_grid"
)

// Attrs are HTML attributes of a widget.
type Attrs map[string]string

// Select builds the attributes of a searchable select. Extra attributes win.
func Select(base, extra Attrs) Attrs {
	out := make(Attrs, len(base)+len(extra))
	for k, v := range base {
		out[k] = v
	}

	for k, v := range extra {
		out[k] = v
	}

	return out
}

// SelectMultiple is Select with multiple="multiple" always set.
func SelectMultiple(base, extra Attrs) Attrs {
	out := Select(base, extra)
	out["multiple"] = "multiple"

	return out
}

// DefaultClass is the CSS class a field of the given kind receives.
// Checkboxes and radios get none.
func DefaultClass(kind Kind) string {
	switch kind {
	case KindJSON:
		return "form-control jsoneditor"
	case KindSelect, KindSelectMultiple:
		return "form-select"
	case KindCheckbox, KindCheckboxList, KindRadio:
		return ""
	default:
		return "form-control"
	}
}

// FieldClass returns the class attribute for a form field. override replaces
// the kind's default class when non-empty. Fields with errors get is-invalid.
// Existing classes are kept and nothing is added twice.
func FieldClass(kind Kind, existing, override string, hasErrors bool) string {
	classes := strings.Fields(existing)

	add := func(class string) {
		if class != "" && !strings.Contains(" "+strings.Join(classes, " ")+" ", " "+class+" ") {
			classes = append(classes, class)
		}
	}

	class := override
	if class == "" {
		class = DefaultClass(kind)
	}

	add(class)

	if hasErrors {
		add("is-invalid")
	}

	return strings.Join(classes, " ")
}
