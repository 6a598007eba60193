package analysis

import (
	"math"
	"testing"

	"github.com/philipparndt/goconstruct/pkg/geometry"
)

func mustLine(t *testing.T, x1, y1, x2, y2 float64) geometry.Line2D {
	t.Helper()
	l, err := geometry.NewLine2D(geometry.Point2D{X: x1, Y: y1}, geometry.Point2D{X: x2, Y: y2})
	if err != nil {
		t.Fatalf("NewLine2D: %v", err)
	}
	return l
}

func TestAnalyze(t *testing.T) {
	circle, err := geometry.NewCircle2D(geometry.Point2D{X: 0, Y: 0}, 1)
	if err != nil {
		t.Fatalf("NewCircle2D: %v", err)
	}
	result := Analyze([]Outline{
		{Label: "#1", Lines: []geometry.Line2D{mustLine(t, 0, 0, 3, 4)}},
		{Label: "#2", Lines: []geometry.Line2D{mustLine(t, 10, 0, 10, 1)}},
		{Label: "#3", Circles: []geometry.Circle2D{circle}},
		{Label: "#4", Points: []geometry.Point2D{{X: -5, Y: 2}}},
	})

	if result.Empty {
		t.Fatalf("result should not be empty")
	}
	if result.EdgeCount != 2 || result.CircleCount != 1 || result.PointCount != 1 {
		t.Errorf("counts: edges=%d circles=%d points=%d", result.EdgeCount, result.CircleCount, result.PointCount)
	}
	if math.Abs(result.TotalLength-6) > 1e-10 {
		t.Errorf("TotalLength failed: expected 6, got %v", result.TotalLength)
	}
	if result.MinEdgeLength != 1 || result.MaxEdgeLength != 5 {
		t.Errorf("edge lengths: min=%v max=%v", result.MinEdgeLength, result.MaxEdgeLength)
	}
	if math.Abs(result.CircleArea-math.Pi) > 1e-10 {
		t.Errorf("CircleArea failed: expected %v, got %v", math.Pi, result.CircleArea)
	}
	wantMin := geometry.Point2D{X: -5, Y: -1}
	wantMax := geometry.Point2D{X: 10, Y: 4}
	if result.BoundingBox.Min != wantMin || result.BoundingBox.Max != wantMax {
		t.Errorf("BoundingBox failed: expected %v-%v, got %v-%v", wantMin, wantMax, result.BoundingBox.Min, result.BoundingBox.Max)
	}
}

func TestAnalyzeEmpty(t *testing.T) {
	result := Analyze(nil)
	if !result.Empty || result.EdgeCount != 0 || result.MinEdgeLength != 0 {
		t.Errorf("empty analysis: got %+v", result)
	}
}

func TestFindLongestEdges(t *testing.T) {
	result := Analyze([]Outline{{Lines: []geometry.Line2D{
		mustLine(t, 0, 0, 1, 0),
		mustLine(t, 0, 0, 3, 0),
		mustLine(t, 0, 0, 2, 0),
	}}})
	longest := FindLongestEdges(result, 2)
	if len(longest) != 2 || longest[0].Length != 3 || longest[1].Length != 2 {
		t.Errorf("FindLongestEdges failed: got %+v", longest)
	}
	if n := len(FindLongestEdges(result, 10)); n != 3 {
		t.Errorf("FindLongestEdges clamps count: expected 3, got %d", n)
	}
}

func TestFindNearestPoint(t *testing.T) {
	pts := []geometry.Point2D{{X: 0, Y: 0}, {X: 10, Y: 0}}
	p, d, ok := FindNearestPoint(pts, geometry.Point2D{X: 8, Y: 0})
	if !ok || p != pts[1] || math.Abs(d-2) > 1e-10 {
		t.Errorf("FindNearestPoint failed: got %v %v %v", p, d, ok)
	}
	if _, _, ok := FindNearestPoint(nil, geometry.Point2D{}); ok {
		t.Errorf("FindNearestPoint on empty input reported a match")
	}
}

func TestFormat(t *testing.T) {
	if got := FormatPoint(geometry.Point2D{X: 1, Y: -2.5}); got != "(1.000000, -2.500000)" {
		t.Errorf("FormatPoint failed: got %s", got)
	}
	if got := FormatMeasurement(2, ""); got != "2.000000 units" {
		t.Errorf("FormatMeasurement failed: got %s", got)
	}
}
