// Package history keeps a bounded undo/redo stack of full element
// snapshots.
package history

import (
	"slices"

	"github.com/philipparndt/goconstruct/internal/element"
)

// DefaultLimit is the number of snapshots kept when no limit is given.
const DefaultLimit = 50

// History is a list of snapshots with a cursor pointing at the snapshot
// that matches the live store. It starts with one empty snapshot.
type History struct {
	snapshots [][]element.Element
	cursor    int
	limit     int
	replaying bool
}

// New creates a history holding the given initial state.
func New(limit int, initial []element.Element) *History {
	if limit < 1 {
		limit = DefaultLimit
	}
	return &History{
		snapshots: [][]element.Element{slices.Clone(initial)},
		limit:     limit,
	}
}

// Record observes the current store contents. A state equal to the one
// under the cursor is ignored, as is the first observation after an undo or
// redo. Any redo branch beyond the cursor is discarded. It reports whether
// a snapshot was appended.
func (h *History) Record(state []element.Element) bool {
	if h.replaying {
		h.replaying = false
		return false
	}
	if element.Equal(h.snapshots[h.cursor], state) {
		return false
	}
	h.snapshots = append(h.snapshots[:h.cursor+1], slices.Clone(state))
	if len(h.snapshots) > h.limit {
		drop := len(h.snapshots) - h.limit
		h.snapshots = slices.Delete(h.snapshots, 0, drop)
	}
	h.cursor = len(h.snapshots) - 1
	return true
}

// Undo moves the cursor back and returns the snapshot to restore. The next
// Record call is treated as the echo of this replay. At the oldest
// snapshot it returns false and changes nothing.
func (h *History) Undo() ([]element.Element, bool) {
	if !h.CanUndo() {
		return nil, false
	}
	h.cursor--
	h.replaying = true
	return slices.Clone(h.snapshots[h.cursor]), true
}

// Redo moves the cursor forward and returns the snapshot to restore.
func (h *History) Redo() ([]element.Element, bool) {
	if !h.CanRedo() {
		return nil, false
	}
	h.cursor++
	h.replaying = true
	return slices.Clone(h.snapshots[h.cursor]), true
}

// CanUndo reports whether an older snapshot exists.
func (h *History) CanUndo() bool {
	return h.cursor > 0
}

// CanRedo reports whether a newer snapshot exists.
func (h *History) CanRedo() bool {
	return h.cursor < len(h.snapshots)-1
}

// Len returns the number of snapshots held.
func (h *History) Len() int {
	return len(h.snapshots)
}

// Cursor returns the index of the snapshot matching the live store.
func (h *History) Cursor() int {
	return h.cursor
}

// SetLimit changes the capacity, dropping the oldest snapshots if needed.
func (h *History) SetLimit(limit int) {
	if limit < 1 {
		limit = DefaultLimit
	}
	h.limit = limit
	if over := len(h.snapshots) - limit; over > 0 {
		h.snapshots = slices.Delete(h.snapshots, 0, over)
		h.cursor = max(h.cursor-over, 0)
	}
}
