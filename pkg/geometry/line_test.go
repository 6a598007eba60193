package geometry

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
)

func mustLine(t *testing.T, x1, y1, x2, y2 float64) Line2D {
	t.Helper()
	l, err := NewLine2D(Point2D{x1, y1}, Point2D{x2, y2})
	if err != nil {
		t.Fatalf("NewLine2D: %v", err)
	}
	return l
}

func mustCircle(t *testing.T, x, y, r float64) Circle2D {
	t.Helper()
	c, err := NewCircle2D(Point2D{x, y}, r)
	if err != nil {
		t.Fatalf("NewCircle2D: %v", err)
	}
	return c
}

func TestNewLine2DRejectsZeroLength(t *testing.T) {
	_, err := NewLine2D(Point2D{1, 1}, Point2D{1, 1 + 1e-12})
	if !errors.Is(err, ErrZeroLength) {
		t.Errorf("NewLine2D(same point) error = %v, want ErrZeroLength", err)
	}
	_, err = NewLine2D(Point2D{math.NaN(), 0}, Point2D{1, 1})
	if !errors.Is(err, ErrNonFinite) {
		t.Errorf("NewLine2D(NaN) error = %v, want ErrNonFinite", err)
	}
}

func TestLineDerived(t *testing.T) {
	l := mustLine(t, 0, 0, 6, 8)

	if got := l.Length(); math.Abs(got-10) > 1e-12 {
		t.Errorf("Length = %v, want 10", got)
	}
	if got := l.Midpoint(); got != (Point2D{3, 4}) {
		t.Errorf("Midpoint = %v, want (3, 4)", got)
	}
	u := l.UnitDirection()
	if math.Abs(u.X()-0.6) > 1e-12 || math.Abs(u.Y()-0.8) > 1e-12 {
		t.Errorf("UnitDirection = %v, want <0.6, 0.8>", u)
	}
	if got := l.PointAt(0.25); !got.Equals(Point2D{1.5, 2}, 1e-12) {
		t.Errorf("PointAt(0.25) = %v, want (1.5, 2)", got)
	}
}

func TestLineClosestPointLiesOnSegment(t *testing.T) {
	l := mustLine(t, 0, 0, 10, 0)
	queries := []Point2D{
		{5, 3}, {-4, 2}, {14, -7}, {10, 0}, {0, 0}, {3.3, -0.1},
	}
	for _, p := range queries {
		cp := l.ClosestPoint(p)
		if !l.ContainsPoint(cp, 1e-9) {
			t.Errorf("ClosestPoint(%v) = %v is not on the segment", p, cp)
		}
		if d := l.DistanceToPoint(p); math.Abs(d-p.DistanceTo(cp)) > 1e-9 {
			t.Errorf("DistanceToPoint(%v) = %v, want %v", p, d, p.DistanceTo(cp))
		}
	}
}

func TestLineDistanceToPoint(t *testing.T) {
	l := mustLine(t, 0, 0, 10, 0)
	tests := []struct {
		p    Point2D
		want float64
	}{
		{Point2D{5, 3}, 3},
		{Point2D{-3, 4}, 5},
		{Point2D{13, -4}, 5},
	}
	for _, tt := range tests {
		if got := l.DistanceToPoint(tt.p); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("DistanceToPoint(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestLineMirror(t *testing.T) {
	l := mustLine(t, 1, 1, 3, 2)
	axis := mustLine(t, 0, 0, 0, 5)
	m := l.Mirror(axis)
	if !m.Start().Equals(Point2D{-1, 1}, 1e-12) || !m.End().Equals(Point2D{-3, 2}, 1e-12) {
		t.Errorf("Mirror = %v, want (-1,1)-(-3,2)", m)
	}
}

func TestLineJSONRejectsZeroLength(t *testing.T) {
	var l Line2D
	err := json.Unmarshal([]byte(`{"start":{"x":1,"y":1},"end":{"x":1,"y":1}}`), &l)
	if !errors.Is(err, ErrZeroLength) {
		t.Errorf("Unmarshal error = %v, want ErrZeroLength", err)
	}
}

func TestNewCircle2DRejectsNonPositiveRadius(t *testing.T) {
	for _, r := range []float64{0, -1} {
		if _, err := NewCircle2D(Point2D{}, r); !errors.Is(err, ErrNonPositiveRadius) {
			t.Errorf("NewCircle2D(r=%v) error = %v, want ErrNonPositiveRadius", r, err)
		}
	}
}

func TestCircleDerived(t *testing.T) {
	c := mustCircle(t, 1, 1, 2)
	if got := c.Area(); math.Abs(got-4*math.Pi) > 1e-12 {
		t.Errorf("Area = %v, want 4pi", got)
	}
	if got := c.Circumference(); math.Abs(got-4*math.Pi) > 1e-12 {
		t.Errorf("Circumference = %v, want 4pi", got)
	}
	if !c.Contains(Point2D{2, 2}, 0) {
		t.Error("Contains((2,2)) = false, want true")
	}
	if c.Contains(Point2D{3, 3}, 0) {
		t.Error("Contains((3,3)) = true, want false")
	}
	if got := c.PointAtAngle(math.Pi / 2); !got.Equals(Point2D{1, 3}, 1e-12) {
		t.Errorf("PointAtAngle(pi/2) = %v, want (1, 3)", got)
	}
}
