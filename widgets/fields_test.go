package widgets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectAttrs(t *testing.T) {
	base := Attrs{"id": "id_tags", "class": "a"}

	got := Select(base, Attrs{"class": "b"})
	assert.Equal(t, Attrs{"id": "id_tags", "class": "b"}, got)
	assert.Equal(t, "a", base["class"])

	multi := SelectMultiple(base, nil)
	assert.Equal(t, "multiple", multi["multiple"])
	assert.NotContains(t, base, "multiple")
}

func TestFieldClass(t *testing.T) {
	tests := []struct {
		name      string
		kind      Kind
		existing  string
		override  string
		hasErrors bool
		want      string
	}{
		{name: "text", kind: KindText, want: "form-control"},
		{name: "json", kind: KindJSON, want: "form-control jsoneditor"},
		{name: "select", kind: KindSelect, want: "form-select"},
		{name: "select multiple", kind: KindSelectMultiple, existing: "tags", want: "tags form-select"},
		{name: "checkbox gets nothing", kind: KindCheckbox, want: ""},
		{name: "radio with errors", kind: KindRadio, hasErrors: true, want: "is-invalid"},
		{name: "override", kind: KindText, override: "form-control-sm", want: "form-control-sm"},
		{name: "no duplicates", kind: KindText, existing: "form-control is-invalid", hasErrors: true, want: "form-control is-invalid"},
		{name: "errors appended", kind: KindDate, existing: "vDateField", hasErrors: true, want: "vDateField form-control is-invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FieldClass(tt.kind, tt.existing, tt.override, tt.hasErrors))
		})
	}
}
