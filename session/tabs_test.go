package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xraph/dashub/internal/errors"
)

func panes() []Pane {
	return []Pane{{Target: "general-tab"}, {Target: "pricing-tab"}, {Target: "chapters-tab"}}
}

func TestTabsRestoreFromHash(t *testing.T) {
	for _, hash := range []string{"#pricing-tab", "pricing-tab"} {
		tabs := NewTabs(panes(), nil)

		target, ok := tabs.Restore(hash)
		assert.True(t, ok)
		assert.Equal(t, "pricing-tab", target)
		assert.Equal(t, 1, tabs.ActiveIndex())
	}
}

func TestTabsRestoreErrorsBeatHash(t *testing.T) {
	p := panes()
	p[2].HasErrors = true

	history := &MemoryHistory{}
	tabs := NewTabs(p, history)

	target, ok := tabs.Restore("#pricing-tab")
	assert.True(t, ok)
	assert.Equal(t, "chapters-tab", target)
	assert.Empty(t, history.Hashes)
}

func TestTabsRestoreWithoutMatchKeepsDefault(t *testing.T) {
	tabs := NewTabs(panes(), nil)

	for _, hash := range []string{"", "#", "#unknown"} {
		_, ok := tabs.Restore(hash)
		assert.False(t, ok)

		_, active := tabs.Active()
		assert.False(t, active)
		assert.Equal(t, -1, tabs.ActiveIndex())
	}
}

func TestTabsClickAndSlidePushHistory(t *testing.T) {
	history := &MemoryHistory{}
	tabs := NewTabs(panes(), history)

	require.NoError(t, tabs.Click("pricing-tab"))
	require.NoError(t, tabs.Click("#pricing-tab"))
	require.NoError(t, tabs.Slide(2))

	assert.Equal(t, []string{"#pricing-tab", "#chapters-tab"}, history.Hashes)
	assert.Equal(t, "#chapters-tab", history.Current())

	active, _ := tabs.Active()
	assert.Equal(t, "chapters-tab", active)
}

func TestTabsUnknownPaneLeavesState(t *testing.T) {
	history := &MemoryHistory{}
	tabs := NewTabs(panes(), history)
	require.NoError(t, tabs.Click("general-tab"))

	err := tabs.Click("ghost-tab")
	assert.True(t, errors.IsUnknownPane(err))

	err = tabs.Slide(3)
	assert.True(t, errors.IsUnknownPane(err))
	assert.True(t, errors.IsUnknownPane(tabs.Slide(-1)))

	active, _ := tabs.Active()
	assert.Equal(t, "general-tab", active)
	assert.Equal(t, []string{"#general-tab"}, history.Hashes)
	assert.Equal(t, "", (&MemoryHistory{}).Current())
}
