package changelist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActionMessagesStructured(t *testing.T) {
	msg := `[{"added": {"name": "chapter", "object": "Intro"}},` +
		`{"changed": {"fields": ["title", "price", "stock"]}},` +
		`{"deleted": {"name": "chapter", "object": "Old"}},` +
		`{"added": {}}]`

	assert.Equal(t, []ActionMessage{
		{Msg: "Added chapter “Intro”.", Icon: "plus-circle", Colour: "success"},
		{Msg: "Changed title, price and stock.", Icon: "edit", Colour: "blue"},
		{Msg: "Deleted “Old”.", Icon: "trash", Colour: "danger"},
		{Msg: "Added.", Icon: "plus-circle", Colour: "success"},
	}, ActionMessages(msg))
}

func TestActionMessagesFallbacks(t *testing.T) {
	assert.Equal(t, []ActionMessage{{Msg: "[not json"}}, ActionMessages("[not json"))
	assert.Equal(t, []ActionMessage{{Msg: "Imported from CSV", Icon: "edit", Colour: "blue"}}, ActionMessages("Imported from CSV"))
	assert.Equal(t, []ActionMessage{{Msg: "[]", Icon: "edit", Colour: "blue"}}, ActionMessages("[]"))
}

func TestTextList(t *testing.T) {
	assert.Equal(t, "", TextList(nil, "and"))
	assert.Equal(t, "a", TextList([]string{"a"}, "and"))
	assert.Equal(t, "a or b", TextList([]string{"a", "b"}, "or"))
	assert.Equal(t, "a, b and c", TextList([]string{"a", "b", "c"}, "and"))
}
