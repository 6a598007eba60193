package intersection

import (
	"math"
	"testing"

	"github.com/philipparndt/goconstruct/internal/element"
	"github.com/philipparndt/goconstruct/pkg/geometry"
)

func lineElem(t *testing.T, id element.ID, x1, y1, x2, y2 float64) element.Element {
	t.Helper()
	l, err := geometry.NewLine2D(geometry.Point2D{X: x1, Y: y1}, geometry.Point2D{X: x2, Y: y2})
	if err != nil {
		t.Fatalf("NewLine2D: %v", err)
	}
	return element.Element{ID: id, Shape: element.LineShape{Line: l}}
}

func circleElem(t *testing.T, id element.ID, x, y, r float64) element.Element {
	t.Helper()
	c, err := geometry.NewCircle2D(geometry.Point2D{X: x, Y: y}, r)
	if err != nil {
		t.Fatalf("NewCircle2D: %v", err)
	}
	return element.Element{ID: id, Shape: element.CircleShape{Circle: c}}
}

func pointElem(id element.ID, x, y float64) element.Element {
	return element.Element{ID: id, Shape: element.PointShape{Point: geometry.Point2D{X: x, Y: y}}}
}

func TestAggregateCrossingLines(t *testing.T) {
	infos := Aggregate([]element.Element{
		lineElem(t, 1, 0, 0, 10, 10),
		lineElem(t, 2, 0, 10, 10, 0),
	}, 1e-9)

	if len(infos) != 1 {
		t.Fatalf("expected 1 intersection, got %d", len(infos))
	}
	got := infos[0]
	if !got.Point.Equals(geometry.Point2D{X: 5, Y: 5}, 1e-9) {
		t.Errorf("point: expected (5, 5), got %v", got.Point)
	}
	if got.Type != "line-line" {
		t.Errorf("type: expected line-line, got %s", got.Type)
	}
	if len(got.Elements) != 2 || got.Elements[0] != 1 || got.Elements[1] != 2 {
		t.Errorf("elements: expected [#1 #2], got %v", got.Elements)
	}
}

func TestAggregateMergesCoincidentPoints(t *testing.T) {
	// Three lines through (5, 5) produce three pairwise hits at one spot.
	infos := Aggregate([]element.Element{
		lineElem(t, 1, 0, 0, 10, 10),
		lineElem(t, 2, 0, 10, 10, 0),
		lineElem(t, 3, 5, 0, 5, 10),
	}, 1e-9)

	if len(infos) != 1 {
		t.Fatalf("expected 1 merged intersection, got %d: %v", len(infos), infos)
	}
	if len(infos[0].Elements) != 3 {
		t.Errorf("expected 3 contributing elements, got %v", infos[0].Elements)
	}
}

func TestAggregateTwoCircles(t *testing.T) {
	infos := Aggregate([]element.Element{
		circleElem(t, 1, 0, 0, 5),
		circleElem(t, 2, 8, 0, 5),
	}, 1e-9)

	if len(infos) != 2 {
		t.Fatalf("expected 2 intersections, got %d", len(infos))
	}
	for _, info := range infos {
		if math.Abs(info.Point.X-4) > 1e-9 || math.Abs(math.Abs(info.Point.Y)-3) > 1e-9 {
			t.Errorf("unexpected point %v", info.Point)
		}
		if info.Type != "circle-circle" {
			t.Errorf("type: expected circle-circle, got %s", info.Type)
		}
	}
}

func TestAggregateSkipsPointPairsAndHidden(t *testing.T) {
	hidden := lineElem(t, 3, 0, 10, 10, 0)
	hidden.Hidden = true
	infos := Aggregate([]element.Element{
		pointElem(1, 0, 0),
		pointElem(2, 0, 0),
		hidden,
		lineElem(t, 4, 0, 0, 10, 10),
	}, 1e-9)

	// Only the points lying on line #4 remain; both sit at the origin and merge.
	if len(infos) != 1 {
		t.Fatalf("expected 1 intersection, got %d: %v", len(infos), infos)
	}
	if infos[0].Type != "point-line" {
		t.Errorf("type: expected point-line, got %s", infos[0].Type)
	}
	if len(infos[0].Elements) != 3 {
		t.Errorf("expected elements #1 #4 #2, got %v", infos[0].Elements)
	}
}

func TestAggregateLineCircleTangent(t *testing.T) {
	infos := Aggregate([]element.Element{
		lineElem(t, 1, 0, 0, 10, 0),
		circleElem(t, 2, 5, 5, 5),
	}, 1e-9)
	if len(infos) != 1 {
		t.Fatalf("tangent: expected 1 intersection, got %d", len(infos))
	}
	if !infos[0].Point.Equals(geometry.Point2D{X: 5, Y: 0}, 1e-9) {
		t.Errorf("tangent point: expected (5, 0), got %v", infos[0].Point)
	}
}

func TestOnElement(t *testing.T) {
	infos := Aggregate([]element.Element{
		lineElem(t, 1, 0, 0, 10, 0),
		lineElem(t, 2, 2, -5, 2, 5),
		lineElem(t, 3, 8, -5, 8, 5),
	}, 1e-9)
	if n := len(OnElement(infos, 1)); n != 2 {
		t.Errorf("OnElement(#1): expected 2, got %d", n)
	}
	if n := len(OnElement(infos, 2)); n != 1 {
		t.Errorf("OnElement(#2): expected 1, got %d", n)
	}
}
