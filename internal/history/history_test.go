package history

import (
	"testing"

	"github.com/philipparndt/goconstruct/internal/element"
	"github.com/philipparndt/goconstruct/pkg/geometry"
)

func point(id element.ID, x float64) element.Element {
	return element.Element{ID: id, Shape: element.PointShape{Point: geometry.Point2D{X: x}}}
}

// states builds n growing states: [p1], [p1 p2], ...
func states(n int) [][]element.Element {
	var out [][]element.Element
	var cur []element.Element
	for i := 1; i <= n; i++ {
		cur = append(cur, point(element.ID(i), float64(i)))
		out = append(out, append([]element.Element(nil), cur...))
	}
	return out
}

func TestUndoRedoRoundTrip(t *testing.T) {
	h := New(50, nil)
	all := states(5)
	for _, s := range all {
		if !h.Record(s) {
			t.Fatalf("Record(%v) = false", s)
		}
	}

	var live []element.Element
	for i := 0; i < 5; i++ {
		s, ok := h.Undo()
		if !ok {
			t.Fatalf("Undo %d failed", i)
		}
		live = s
		if h.Record(live) {
			t.Errorf("replayed undo was recorded")
		}
	}
	if len(live) != 0 {
		t.Errorf("after undoing everything: expected empty, got %v", live)
	}
	if _, ok := h.Undo(); ok {
		t.Errorf("Undo at oldest snapshot should be a no-op")
	}

	for i := 0; i < 5; i++ {
		s, ok := h.Redo()
		if !ok {
			t.Fatalf("Redo %d failed", i)
		}
		live = s
		h.Record(live)
	}
	if !element.Equal(live, all[4]) {
		t.Errorf("after redoing everything: expected %v, got %v", all[4], live)
	}
	if _, ok := h.Redo(); ok {
		t.Errorf("Redo at newest snapshot should be a no-op")
	}
}

func TestRecordSkipsUnchanged(t *testing.T) {
	h := New(50, nil)
	s := states(1)[0]
	h.Record(s)
	if h.Record(s) {
		t.Errorf("Record of identical state appended a snapshot")
	}
	if h.Len() != 2 {
		t.Errorf("Len: expected 2, got %d", h.Len())
	}
}

func TestRecordDropsRedoBranch(t *testing.T) {
	h := New(50, nil)
	all := states(3)
	for _, s := range all {
		h.Record(s)
	}
	s, _ := h.Undo()
	h.Record(s)

	branch := append(s, point(99, 99))
	h.Record(branch)
	if h.CanRedo() {
		t.Errorf("recording after undo must discard the redo branch")
	}
	if h.Len() != 4 {
		t.Errorf("Len: expected 4, got %d", h.Len())
	}
}

func TestCapDropsOldest(t *testing.T) {
	h := New(50, nil)
	all := states(60)
	for _, s := range all {
		h.Record(s)
	}
	if h.Len() != 50 {
		t.Fatalf("Len: expected 50, got %d", h.Len())
	}
	if h.Cursor() != 49 {
		t.Errorf("Cursor: expected 49, got %d", h.Cursor())
	}

	undos := 0
	var oldest []element.Element
	for h.CanUndo() {
		oldest, _ = h.Undo()
		undos++
	}
	if undos != 49 {
		t.Errorf("undo steps: expected 49, got %d", undos)
	}
	// 61 states were seen (empty + 60); the oldest kept is the 12th.
	if !element.Equal(oldest, all[10]) {
		t.Errorf("oldest kept snapshot has %d elements, want %d", len(oldest), len(all[10]))
	}
}

func TestSetLimitShrinks(t *testing.T) {
	h := New(50, nil)
	for _, s := range states(10) {
		h.Record(s)
	}
	h.SetLimit(4)
	if h.Len() != 4 || h.Cursor() != 3 {
		t.Errorf("after SetLimit(4): Len=%d Cursor=%d", h.Len(), h.Cursor())
	}
}
