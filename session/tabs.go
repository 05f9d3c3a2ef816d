package session

import (
	"strconv"
	"strings"

	"github.com/xraph/dashub/internal/errors"
)

// Pane is one tab or carousel slide of a change form.
type Pane struct {
	Target    string `json:"target"` // element id, without "#"
	HasErrors bool   `json:"has_errors"`
}

// History receives the location hash whenever the visible pane changes.
type History interface {
	PushHash(hash string)
}

// MemoryHistory records pushed hashes.
type MemoryHistory struct {
	Hashes []string
}

// PushHash implements History.
func (h *MemoryHistory) PushHash(hash string) {
	h.Hashes = append(h.Hashes, hash)
}

// Current returns the last pushed hash, or "".
func (h *MemoryHistory) Current() string {
	if len(h.Hashes) == 0 {
		return ""
	}

	return h.Hashes[len(h.Hashes)-1]
}

// Tabs keeps the visible pane of a tabbed or carousel change form in sync
// with the location hash. With no pane active the host shows its default
// first pane.
type Tabs struct {
	panes   []Pane
	active  int
	history History
}

// NewTabs creates Tabs with no active pane. history may be nil.
func NewTabs(panes []Pane, history History) *Tabs {
	return &Tabs{panes: append([]Pane(nil), panes...), active: -1, history: history}
}

// Panes returns the panes in display order.
func (t *Tabs) Panes() []Pane { return append([]Pane(nil), t.panes...) }

// Active returns the target of the active pane.
func (t *Tabs) Active() (string, bool) {
	if t.active < 0 {
		return "", false
	}

	return t.panes[t.active].Target, true
}

// ActiveIndex returns the index of the active pane, or -1.
func (t *Tabs) ActiveIndex() int { return t.active }

// Restore picks the pane to show on page load. A pane holding validation
// errors always wins; otherwise the pane matching hash (with or without the
// leading "#"); otherwise nothing is activated. Restoring never pushes
// history.
func (t *Tabs) Restore(hash string) (string, bool) {
	for i, p := range t.panes {
		if p.HasErrors {
			t.active = i
			return p.Target, true
		}
	}

	if i := t.indexOf(strings.TrimPrefix(hash, "#")); i >= 0 {
		t.active = i
		return t.panes[i].Target, true
	}

	t.active = -1

	return "", false
}

// Click activates the pane with the given target and pushes its hash.
func (t *Tabs) Click(target string) error {
	i := t.indexOf(strings.TrimPrefix(target, "#"))
	if i < 0 {
		return errors.ErrUnknownPane(target)
	}

	t.show(i)

	return nil
}

// Slide activates the carousel slide at index and pushes its hash.
func (t *Tabs) Slide(index int) error {
	if index < 0 || index >= len(t.panes) {
		return errors.ErrUnknownPane(strconv.Itoa(index))
	}

	t.show(index)

	return nil
}

// show pushes history only on an actual change, matching the browser which
// fires no "shown" event for the pane already visible.
func (t *Tabs) show(i int) {
	if t.active == i {
		return
	}

	t.active = i

	if t.history != nil {
		t.history.PushHash("#" + t.panes[i].Target)
	}
}

func (t *Tabs) indexOf(target string) int {
	if target == "" {
		return -1
	}

	for i, p := range t.panes {
		if p.Target == target {
			return i
		}
	}

	return -1
}
