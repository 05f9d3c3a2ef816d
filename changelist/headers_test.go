package changelist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeaderClass(t *testing.T) {
	tests := []struct {
		name   string
		header Header
		index  int
		want   string
	}{
		{name: "checkbox column", header: Header{Class: CheckboxColumnClass}, want: "djn-checkbox-select-all"},
		{name: "checkbox class not first", header: Header{Class: CheckboxColumnClass}, index: 1, want: ""},
		{name: "unsorted", header: Header{Sortable: true}, index: 1, want: "sorting"},
		{name: "ascending", header: Header{Sortable: true, Sorted: true, Ascending: true}, index: 2, want: "sorting_asc"},
		{name: "descending", header: Header{Sortable: true, Sorted: true, Descending: true}, index: 2, want: "sorting_desc"},
		{name: "not sortable", header: Header{Sorted: true, Ascending: true}, index: 2, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HeaderClass(tt.header, tt.index))
		})
	}
}

func TestExtraFilters(t *testing.T) {
	got := ExtraFilters(map[string]string{"q": "x", "status__exact": "1", "_popup": "1"}, []string{"status__exact"})

	assert.Equal(t, map[string]string{"q": "x", "_popup": "1"}, got)
}

func TestMatchFilterChoice(t *testing.T) {
	tests := []struct {
		name      string
		fieldKey  string
		qs        string
		wantName  string
		wantValue string
		wantOK    bool
	}{
		{name: "exact key", fieldKey: "status", qs: "?q=a&status=open", wantName: "status", wantValue: "open", wantOK: true},
		{name: "lookup", fieldKey: "created", qs: "?created__gte=2024-01-01&created__lt=2024-02-01", wantName: "created__gte", wantValue: "2024-01-01", wantOK: true},
		{name: "related lookup", fieldKey: "author", qs: "?book__author__id__exact=4", wantName: "book__author__id__exact", wantValue: "4", wantOK: true},
		{name: "escaped value", fieldKey: "tag", qs: "?tag=a%20b", wantName: "tag", wantValue: "a b", wantOK: true},
		{name: "empty value skipped", fieldKey: "tag", qs: "?tag=&other=1"},
		{name: "no match", fieldKey: "tag", qs: "?status=open"},
		{name: "prefix is not a lookup", fieldKey: "tag", qs: "?tagline=x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, value, ok := MatchFilterChoice(tt.fieldKey, tt.qs)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantValue, value)
		})
	}
}
