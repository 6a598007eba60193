// Package selection tracks the selected elements, the clipboard and the
// show-hidden flag, and applies batch operations to the selection.
package selection

import (
	"slices"

	"github.com/philipparndt/goconstruct/internal/element"
	"github.com/philipparndt/goconstruct/pkg/geometry"
)

// State is the selection state. The zero value is ready to use.
type State struct {
	selected   []element.ID
	clipboard  []element.Element
	showHidden bool
}

// New creates an empty selection state.
func New() *State {
	return &State{}
}

// Selected returns the selected IDs in selection order.
func (s *State) Selected() []element.ID {
	return slices.Clone(s.selected)
}

// Len returns the number of selected elements.
func (s *State) Len() int {
	return len(s.selected)
}

// IsSelected reports whether id is selected.
func (s *State) IsSelected(id element.ID) bool {
	return slices.Contains(s.selected, id)
}

// Toggle adds id to the selection or removes it if already selected.
func (s *State) Toggle(id element.ID) {
	s.selected = Toggled(s.selected, id)
}

// Replace sets the selection to ids, dropping duplicates.
func (s *State) Replace(ids ...element.ID) {
	s.selected = unique(ids)
}

// Clear empties the selection.
func (s *State) Clear() {
	s.selected = nil
}

// Prune drops selected IDs that no longer exist in store, keeping the
// selection consistent after undo, delete or trim.
func (s *State) Prune(store *element.Store) {
	s.selected = slices.DeleteFunc(s.selected, func(id element.ID) bool {
		return !store.Has(id)
	})
}

// ShowHidden reports whether hidden elements are currently revealed.
func (s *State) ShowHidden() bool {
	return s.showHidden
}

// SetShowHidden reveals or conceals hidden elements for interaction.
func (s *State) SetShowHidden(on bool) {
	s.showHidden = on
}

// Interactive filters elems to those the user can currently click on.
func (s *State) Interactive(elems []element.Element) []element.Element {
	if s.showHidden {
		return elems
	}
	out := make([]element.Element, 0, len(elems))
	for _, e := range elems {
		if !e.Hidden {
			out = append(out, e)
		}
	}
	return out
}

// Clipboard returns a copy of the clipboard contents.
func (s *State) Clipboard() []element.Element {
	return slices.Clone(s.clipboard)
}

// Copy snapshots the selected elements into the clipboard and returns how
// many were copied. An empty selection leaves the clipboard untouched.
func (s *State) Copy(store *element.Store) int {
	var copied []element.Element
	for _, id := range s.selected {
		if e, ok := store.Get(id); ok {
			copied = append(copied, e)
		}
	}
	if len(copied) == 0 {
		return 0
	}
	s.clipboard = copied
	return len(copied)
}

// Paste adds clones of the clipboard moved by offset with fresh IDs and
// selects them. The clipboard is left as copied, so every paste lands at
// the same offset from the source.
func (s *State) Paste(store *element.Store, offset geometry.Vector2D) ([]element.Element, error) {
	if len(s.clipboard) == 0 {
		return nil, nil
	}
	pasted := make([]element.Element, 0, len(s.clipboard))
	for _, e := range s.clipboard {
		c := e.Translated(offset)
		c.ID = 0
		c.Hidden = false
		pasted = append(pasted, c)
	}
	added, err := addAll(store, pasted)
	if err != nil {
		return nil, err
	}
	s.selected = ids(added)
	return added, nil
}

// Hide flags every selected element hidden and clears the selection.
func (s *State) Hide(store *element.Store) (int, error) {
	n := 0
	for _, id := range s.selected {
		e, ok := store.Get(id)
		if !ok || e.Hidden {
			continue
		}
		e.Hidden = true
		if err := store.Replace(e); err != nil {
			return n, err
		}
		n++
	}
	s.Clear()
	return n, nil
}

// UnhideAll clears the hidden flag on every element.
func (s *State) UnhideAll(store *element.Store) (int, error) {
	n := 0
	for _, e := range store.All() {
		if !e.Hidden {
			continue
		}
		e.Hidden = false
		if err := store.Replace(e); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// Delete removes the selected elements from store and clears the selection.
func (s *State) Delete(store *element.Store) int {
	n := store.Remove(s.selected...)
	s.Clear()
	return n
}

// Move translates every selected element by offset in place. Offsets
// no longer than threshold are ignored so a click does not register as a drag.
func (s *State) Move(store *element.Store, offset geometry.Vector2D, threshold float64) (bool, error) {
	if len(s.selected) == 0 || offset.Magnitude() <= threshold || offset.IsZero(0) {
		return false, nil
	}
	for _, id := range s.selected {
		e, ok := store.Get(id)
		if !ok {
			continue
		}
		if err := store.Replace(e.Translated(offset)); err != nil {
			return false, err
		}
	}
	return true, nil
}

// Mirror adds mirrored copies of the selected elements, reflected across
// the infinite line through axis. The originals are kept.
func (s *State) Mirror(store *element.Store, axis geometry.Line2D) ([]element.Element, error) {
	var copies []element.Element
	for _, id := range s.selected {
		e, ok := store.Get(id)
		if !ok {
			continue
		}
		m := e.Mirrored(axis)
		m.ID = 0
		copies = append(copies, m)
	}
	return addAll(store, copies)
}

// Toggled returns ids with id removed if present and appended otherwise.
// The input slice is not modified.
func Toggled(ids []element.ID, id element.ID) []element.ID {
	if i := slices.Index(ids, id); i >= 0 {
		return slices.Delete(slices.Clone(ids), i, i+1)
	}
	return append(slices.Clone(ids), id)
}

func unique(in []element.ID) []element.ID {
	out := make([]element.ID, 0, len(in))
	for _, id := range in {
		if !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}

func addAll(store *element.Store, elems []element.Element) ([]element.Element, error) {
	added := make([]element.Element, 0, len(elems))
	for _, e := range elems {
		a, err := store.Add(e)
		if err != nil {
			store.Remove(ids(added)...)
			return nil, err
		}
		added = append(added, a)
	}
	return added, nil
}

func ids(elems []element.Element) []element.ID {
	out := make([]element.ID, len(elems))
	for i, e := range elems {
		out[i] = e.ID
	}
	return out
}
