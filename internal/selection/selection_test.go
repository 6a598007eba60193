package selection

import (
	"slices"
	"testing"

	"github.com/philipparndt/goconstruct/internal/element"
	"github.com/philipparndt/goconstruct/pkg/geometry"
)

func seed(t *testing.T, n int) (*element.Store, []element.ID) {
	t.Helper()
	store := element.NewStore()
	var ids []element.ID
	for i := 0; i < n; i++ {
		e, err := store.Add(element.New(element.PointShape{Point: geometry.Point2D{X: float64(i), Y: 0}}, "#000000"))
		if err != nil {
			t.Fatalf("Add: %v", err)
		}
		ids = append(ids, e.ID)
	}
	return store, ids
}

func TestToggleReplaceClear(t *testing.T) {
	s := New()
	s.Toggle(1)
	s.Toggle(2)
	s.Toggle(1)
	if got := s.Selected(); !slices.Equal(got, []element.ID{2}) {
		t.Errorf("Toggle: got %v, want [#2]", got)
	}
	s.Replace(3, 3, 4)
	if got := s.Selected(); !slices.Equal(got, []element.ID{3, 4}) {
		t.Errorf("Replace: got %v, want [#3 #4]", got)
	}
	if !s.IsSelected(4) || s.IsSelected(2) {
		t.Errorf("IsSelected mismatch")
	}
	s.Clear()
	if s.Len() != 0 {
		t.Errorf("Clear left %d ids", s.Len())
	}
}

func TestPrune(t *testing.T) {
	store, ids := seed(t, 2)
	s := New()
	s.Replace(ids[0], ids[1], 42)
	store.Remove(ids[0])
	s.Prune(store)
	if got := s.Selected(); !slices.Equal(got, []element.ID{ids[1]}) {
		t.Errorf("Prune: got %v", got)
	}
}

func TestCopyPasteOffsetsAndFreshIDs(t *testing.T) {
	store, ids := seed(t, 3)
	s := New()
	s.Replace(ids...)
	if n := s.Copy(store); n != 3 {
		t.Fatalf("Copy: expected 3, got %d", n)
	}

	offset := geometry.Vector2D{X: 20, Y: 20}
	pasted, err := s.Paste(store, offset)
	if err != nil {
		t.Fatalf("Paste: %v", err)
	}
	if len(pasted) != 3 {
		t.Fatalf("Paste: expected 3 elements, got %d", len(pasted))
	}
	for i, p := range pasted {
		src, _ := store.Get(ids[i])
		if slices.Contains(ids, p.ID) {
			t.Errorf("pasted element reused id %v", p.ID)
		}
		want := src.Shape.(element.PointShape).Point.Add(offset)
		if got := p.Shape.(element.PointShape).Point; got != want {
			t.Errorf("pasted %d: expected %v, got %v", i, want, got)
		}
		if src.Shape.(element.PointShape).Point.X != float64(i) {
			t.Errorf("source %d changed", i)
		}
	}
	if got := s.Selected(); len(got) != 3 || got[0] != pasted[0].ID {
		t.Errorf("pasted elements should be selected, got %v", got)
	}

	// Pasting again lands at the same offset from the source, not from the
	// previous paste.
	again, err := s.Paste(store, offset)
	if err != nil {
		t.Fatalf("second Paste: %v", err)
	}
	for i, p := range again {
		want := geometry.Point2D{X: float64(i) + 20, Y: 20}
		if got := p.Shape.(element.PointShape).Point; got != want {
			t.Errorf("second paste %d: expected %v, got %v", i, want, got)
		}
		if p.ID == pasted[i].ID {
			t.Errorf("second paste reused id %v", p.ID)
		}
	}
	if store.Len() != 9 {
		t.Errorf("expected 9 elements after two pastes, got %d", store.Len())
	}
}

func TestPasteEmptyClipboard(t *testing.T) {
	store, _ := seed(t, 1)
	pasted, err := New().Paste(store, geometry.Vector2D{X: 1})
	if err != nil || len(pasted) != 0 || store.Len() != 1 {
		t.Errorf("empty paste: pasted=%v err=%v len=%d", pasted, err, store.Len())
	}
}

func TestHideAndInteractive(t *testing.T) {
	store, ids := seed(t, 3)
	s := New()
	s.Replace(ids[1])
	n, err := s.Hide(store)
	if err != nil || n != 1 {
		t.Fatalf("Hide: n=%d err=%v", n, err)
	}
	if s.Len() != 0 {
		t.Errorf("Hide must clear the selection")
	}
	if got := len(s.Interactive(store.All())); got != 2 {
		t.Errorf("Interactive: expected 2, got %d", got)
	}
	s.SetShowHidden(true)
	if got := len(s.Interactive(store.All())); got != 3 {
		t.Errorf("Interactive with show hidden: expected 3, got %d", got)
	}

	n, err = s.UnhideAll(store)
	if err != nil || n != 1 {
		t.Errorf("UnhideAll: n=%d err=%v", n, err)
	}
}

func TestDeleteEmptySelection(t *testing.T) {
	store, _ := seed(t, 2)
	if n := New().Delete(store); n != 0 || store.Len() != 2 {
		t.Errorf("Delete with empty selection: n=%d len=%d", n, store.Len())
	}
}

func TestMoveThreshold(t *testing.T) {
	store, ids := seed(t, 1)
	s := New()
	s.Replace(ids[0])

	moved, err := s.Move(store, geometry.Vector2D{X: 0.2}, 1)
	if err != nil || moved {
		t.Errorf("sub-threshold move: moved=%v err=%v", moved, err)
	}
	moved, err = s.Move(store, geometry.Vector2D{X: 1}, 1)
	if err != nil || moved {
		t.Errorf("move equal to the threshold: moved=%v err=%v", moved, err)
	}
	moved, err = s.Move(store, geometry.Vector2D{X: 5, Y: 5}, 1)
	if err != nil || !moved {
		t.Fatalf("move: moved=%v err=%v", moved, err)
	}
	e, _ := store.Get(ids[0])
	if got := e.Shape.(element.PointShape).Point; got != (geometry.Point2D{X: 5, Y: 5}) {
		t.Errorf("moved point: got %v", got)
	}
}

func TestMirrorKeepsOriginals(t *testing.T) {
	store, ids := seed(t, 2)
	s := New()
	s.Replace(ids[1])
	axis, err := geometry.NewLine2D(geometry.Point2D{X: 0, Y: 0}, geometry.Point2D{X: 0, Y: 1})
	if err != nil {
		t.Fatalf("NewLine2D: %v", err)
	}
	copies, err := s.Mirror(store, axis)
	if err != nil || len(copies) != 1 {
		t.Fatalf("Mirror: copies=%v err=%v", copies, err)
	}
	if got := copies[0].Shape.(element.PointShape).Point; !got.Equals(geometry.Point2D{X: -1}, 1e-9) {
		t.Errorf("mirrored point: got %v", got)
	}
	if store.Len() != 3 {
		t.Errorf("expected 3 elements, got %d", store.Len())
	}
}
