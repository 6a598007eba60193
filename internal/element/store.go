package element

import (
	"errors"
	"fmt"
	"slices"

	"github.com/philipparndt/goconstruct/pkg/geometry"
)

var (
	// ErrDuplicateID is returned when adding an element whose ID is taken.
	ErrDuplicateID = errors.New("element: duplicate id")
	// ErrNotFound is returned when an ID does not exist in the store.
	ErrNotFound = errors.New("element: not found")
)

// Store is a flat, insertion-ordered collection of elements with unique IDs.
// It is owned by a single interaction loop and is not safe for concurrent use.
type Store struct {
	elements []Element
	index    map[ID]int
	nextID   ID
	revision uint64
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		index:  make(map[ID]int),
		nextID: 1,
	}
}

// Revision increases on every mutation. Observers compare revisions to
// detect changes without diffing.
func (s *Store) Revision() uint64 {
	return s.revision
}

// Len returns the number of elements.
func (s *Store) Len() int {
	return len(s.elements)
}

// NextID reserves and returns a fresh ID. IDs are never reused, even after
// a snapshot restore.
func (s *Store) NextID() ID {
	id := s.nextID
	s.nextID++
	return id
}

// Add appends e. An unassigned (zero) ID is replaced with a fresh one.
// It returns the stored element.
func (s *Store) Add(e Element) (Element, error) {
	if e.Shape == nil {
		return Element{}, fmt.Errorf("add element: no shape")
	}
	if e.ID == 0 {
		e.ID = s.NextID()
	} else if _, ok := s.index[e.ID]; ok {
		return Element{}, fmt.Errorf("add %v: %w", e.ID, ErrDuplicateID)
	} else if e.ID >= s.nextID {
		s.nextID = e.ID + 1
	}
	s.index[e.ID] = len(s.elements)
	s.elements = append(s.elements, e)
	s.revision++
	return e, nil
}

// Get returns the element with the given ID.
func (s *Store) Get(id ID) (Element, bool) {
	i, ok := s.index[id]
	if !ok {
		return Element{}, false
	}
	return s.elements[i], true
}

// Has reports whether id exists.
func (s *Store) Has(id ID) bool {
	_, ok := s.index[id]
	return ok
}

// Replace overwrites the element with the same ID in place, keeping order.
func (s *Store) Replace(e Element) error {
	i, ok := s.index[e.ID]
	if !ok {
		return fmt.Errorf("replace %v: %w", e.ID, ErrNotFound)
	}
	if e.Shape == nil {
		return fmt.Errorf("replace %v: no shape", e.ID)
	}
	if s.elements[i] == e {
		return nil
	}
	s.elements[i] = e
	s.revision++
	return nil
}

// Remove deletes the given IDs and returns how many were removed.
// Unknown IDs are ignored.
func (s *Store) Remove(ids ...ID) int {
	drop := make(map[ID]bool, len(ids))
	for _, id := range ids {
		if s.Has(id) {
			drop[id] = true
		}
	}
	if len(drop) == 0 {
		return 0
	}
	s.elements = slices.DeleteFunc(s.elements, func(e Element) bool {
		return drop[e.ID]
	})
	s.reindex()
	s.revision++
	return len(drop)
}

// Clear removes every element.
func (s *Store) Clear() {
	if len(s.elements) == 0 {
		return
	}
	s.elements = nil
	s.reindex()
	s.revision++
}

// All returns a copy of the elements in insertion order.
func (s *Store) All() []Element {
	return slices.Clone(s.elements)
}

// Visible returns the elements that are not hidden, in insertion order.
func (s *Store) Visible() []Element {
	out := make([]Element, 0, len(s.elements))
	for _, e := range s.elements {
		if !e.Hidden {
			out = append(out, e)
		}
	}
	return out
}

// Snapshot returns a copy suitable for history. Shapes are immutable values,
// so a shallow copy of the slice is a full snapshot.
func (s *Store) Snapshot() []Element {
	return slices.Clone(s.elements)
}

// Restore replaces the content with a snapshot.
func (s *Store) Restore(snapshot []Element) {
	s.elements = slices.Clone(snapshot)
	s.reindex()
	for _, e := range s.elements {
		if e.ID >= s.nextID {
			s.nextID = e.ID + 1
		}
	}
	s.revision++
}

// FindPoint returns a visible point element located at p within tol.
func (s *Store) FindPoint(p geometry.Point2D, tol float64) (Element, bool) {
	for _, e := range s.elements {
		if e.Hidden {
			continue
		}
		if ps, ok := e.Shape.(PointShape); ok && ps.Point.Equals(p, tol) {
			return e, true
		}
	}
	return Element{}, false
}

func (s *Store) reindex() {
	s.index = make(map[ID]int, len(s.elements))
	for i, e := range s.elements {
		s.index[e.ID] = i
	}
}

// Equal reports whether two element lists are identical, element by element.
func Equal(a, b []Element) bool {
	return slices.Equal(a, b)
}
