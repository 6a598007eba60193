package snap

import (
	"testing"

	"github.com/philipparndt/goconstruct/internal/config"
	"github.com/philipparndt/goconstruct/internal/element"
	"github.com/philipparndt/goconstruct/internal/intersection"
	"github.com/philipparndt/goconstruct/pkg/geometry"
)

func scene(t *testing.T) []element.Element {
	t.Helper()
	a, err := geometry.NewLine2D(geometry.Point2D{X: 0, Y: 0}, geometry.Point2D{X: 100, Y: 100})
	if err != nil {
		t.Fatalf("NewLine2D: %v", err)
	}
	b, err := geometry.NewLine2D(geometry.Point2D{X: 0, Y: 100}, geometry.Point2D{X: 100, Y: 0})
	if err != nil {
		t.Fatalf("NewLine2D: %v", err)
	}
	return []element.Element{
		{ID: 1, Shape: element.LineShape{Line: a}},
		{ID: 2, Shape: element.LineShape{Line: b}},
	}
}

func TestResolveRawWhenNothingNear(t *testing.T) {
	elems := scene(t)
	q := geometry.Point2D{X: 30, Y: 70.5}
	got := Resolve(q, config.Default(), elems, intersection.Aggregate(elems, 1e-9))
	if got.Kind != None || got.Point != q {
		t.Errorf("Resolve() = %+v, want raw point", got)
	}
}

func TestResolveVertex(t *testing.T) {
	elems := scene(t)
	got := Resolve(geometry.Point2D{X: 2, Y: 1}, config.Default(), elems, nil)
	if got.Kind != Vertex || got.Point != (geometry.Point2D{}) || got.Source != 1 {
		t.Errorf("Resolve() = %+v, want vertex (0, 0) of #1", got)
	}
}

func TestResolveIntersection(t *testing.T) {
	elems := scene(t)
	s := config.Default()
	s.ShowIntersections = false
	got := Resolve(geometry.Point2D{X: 52, Y: 49}, s, elems, intersection.Aggregate(elems, 1e-9))
	if got.Kind != Intersection {
		t.Fatalf("Resolve() kind = %v, want intersection", got.Kind)
	}
	if !got.Point.Equals(geometry.Point2D{X: 50, Y: 50}, 1e-9) {
		t.Errorf("Resolve() point = %v, want (50, 50)", got.Point)
	}
}

func TestResolveGridFirst(t *testing.T) {
	elems := scene(t)
	s := config.Default()
	s.SnapToGrid = true
	// (48, 52) rounds to grid node (50, 50) before the intersection is considered.
	got := Resolve(geometry.Point2D{X: 48, Y: 52}, s, elems, intersection.Aggregate(elems, 1e-9))
	if got.Kind != Grid || got.Point != (geometry.Point2D{X: 50, Y: 50}) {
		t.Errorf("Resolve() = %+v, want grid (50, 50)", got)
	}
}

func TestResolveGridRejectedBeyondSnapDistance(t *testing.T) {
	s := config.Default()
	s.SnapToGrid = true
	s.GridSize = 100
	q := geometry.Point2D{X: 40, Y: 40}
	got := Resolve(q, s, nil, nil)
	if got.Kind != None || got.Point != q {
		t.Errorf("Resolve() = %+v, want raw point", got)
	}
}

func TestResolveIgnoresHidden(t *testing.T) {
	elems := scene(t)
	elems[0].Hidden = true
	got := Resolve(geometry.Point2D{X: 1, Y: 1}, config.Default(), elems, nil)
	if got.Kind != None {
		t.Errorf("Resolve() = %+v, hidden element attracted the snap", got)
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	elems := scene(t)
	infos := intersection.Aggregate(elems, 1e-9)
	s := config.Default()
	s.SnapToGrid = true
	for _, q := range []geometry.Point2D{{X: 3, Y: 2}, {X: 51, Y: 49}, {X: 33.3, Y: 71.1}} {
		first := Resolve(q, s, elems, infos)
		for i := 0; i < 3; i++ {
			if again := Resolve(q, s, elems, infos); again != first {
				t.Errorf("Resolve(%v) changed: %+v then %+v", q, first, again)
			}
		}
		// Snapping a snapped point is stable as well.
		if again := Resolve(first.Point, s, elems, infos); again.Point != first.Point {
			t.Errorf("Resolve(Resolve(%v)) = %v, want %v", q, again.Point, first.Point)
		}
	}
}

func TestGridPoint(t *testing.T) {
	got := GridPoint(geometry.Point2D{X: 14, Y: -16}, 10)
	if got != (geometry.Point2D{X: 10, Y: -20}) {
		t.Errorf("GridPoint() = %v, want (10, -20)", got)
	}
}
