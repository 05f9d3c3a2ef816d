package changelist

import (
	"net/url"
	"strings"
)

// CheckboxColumnClass is the class the host gives the bulk-action column.
const CheckboxColumnClass = "action-checkbox-column"

// Header is one column header of the result table.
type Header struct {
	Text       string `json:"text"`
	Class      string `json:"class,omitempty"`
	Sortable   bool   `json:"sortable"`
	Sorted     bool   `json:"sorted"`
	Ascending  bool   `json:"ascending"`
	Descending bool   `json:"descending"`
}

// HeaderClass returns the CSS classes of the header at index.
func HeaderClass(h Header, index int) string {
	var classes []string

	if index == 0 && h.Class == CheckboxColumnClass {
		classes = append(classes, "djn-checkbox-select-all")
	}

	if !h.Sortable {
		return strings.Join(classes, " ")
	}

	switch {
	case h.Sorted && h.Ascending:
		classes = append(classes, "sorting_asc")
	case h.Sorted && h.Descending:
		classes = append(classes, "sorting_desc")
	default:
		classes = append(classes, "sorting")
	}

	return strings.Join(classes, " ")
}

// ExtraFilters returns the query parameters not consumed by any list filter,
// so the filter form can carry them as hidden inputs.
func ExtraFilters(params map[string]string, used []string) map[string]string {
	skip := make(map[string]bool, len(used))
	for _, u := range used {
		skip[u] = true
	}

	out := make(map[string]string, len(params))
	for k, v := range params {
		if !skip[k] {
			out[k] = v
		}
	}

	return out
}

// MatchFilterChoice finds the parameter of a filter choice's query string
// ("?a=1&b=2") that belongs to fieldKey: the key itself, a lookup on it
// ("field__gte") or a related lookup ("rel__field__exact"). The first match
// in query order wins.
func MatchFilterChoice(fieldKey, queryString string) (name, value string, ok bool) {
	qs := strings.TrimPrefix(queryString, "?")

	for _, part := range strings.Split(qs, "&") {
		if part == "" {
			continue
		}

		rawKey, rawValue, _ := strings.Cut(part, "=")

		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			continue
		}

		val, err := url.QueryUnescape(rawValue)
		if err != nil || val == "" {
			continue
		}

		if key == fieldKey || strings.HasPrefix(key, fieldKey+"__") || strings.Contains(key, "__"+fieldKey+"__") {
			return key, val, true
		}
	}

	return "", "", false
}
