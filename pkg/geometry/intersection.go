package geometry

import (
	"fmt"
	"math"
)

// LineLineIntersection intersects the infinite lines through a and b.
// It reports false when the lines are parallel (the sine of the angle
// between them is within tol of zero).
func LineLineIntersection(a, b Line2D, tol float64) (Point2D, bool) {
	p, _, _, ok := lineLineParams(a, b, tol)
	return p, ok
}

// LineSegmentIntersection intersects the segments a and b. Both parameters
// must lie in [0, 1]; parallel and overlapping segments report false.
func LineSegmentIntersection(a, b Line2D, tol float64) (Point2D, bool) {
	tol = tolOrDefault(tol)
	p, t, u, ok := lineLineParams(a, b, tol)
	if !ok || !inUnitInterval(t, tol) || !inUnitInterval(u, tol) {
		return Point2D{}, false
	}
	return p, true
}

// lineLineParams solves a.start + t*da = b.start + u*db.
func lineLineParams(a, b Line2D, tol float64) (Point2D, float64, float64, bool) {
	tol = tolOrDefault(tol)
	da := a.Direction()
	db := b.Direction()
	denom := da.Cross(db)
	// Compare the sine of the angle, so short segments are not parallel.
	if math.Abs(denom) < tol*da.Magnitude()*db.Magnitude() {
		return Point2D{}, 0, 0, false
	}
	diff := b.start.Sub(a.start)
	t := diff.Cross(db) / denom
	u := diff.Cross(da) / denom
	return a.PointAt(t), t, u, true
}

// LineCircleIntersections intersects the segment l with the circumference
// of c. It returns zero, one (tangent) or two points, ordered along l.
func LineCircleIntersections(l Line2D, c Circle2D, tol float64) []Point2D {
	tol = tolOrDefault(tol)

	t0 := l.Parameter(c.center)
	foot := l.PointAt(t0)
	dist := foot.DistanceTo(c.center)

	if dist > c.radius+tol {
		return nil
	}
	if math.Abs(dist-c.radius) < tol {
		if inUnitInterval(t0, tol) {
			return []Point2D{foot}
		}
		return nil
	}

	half := math.Sqrt(c.radius*c.radius - dist*dist)
	dt := half / l.Length()

	var out []Point2D
	for _, t := range [2]float64{t0 - dt, t0 + dt} {
		if inUnitInterval(t, tol) {
			out = append(out, l.PointAt(t))
		}
	}
	return out
}

// CircleCircleIntersections intersects the circumferences of a and b.
// Circles that are too far apart, nested, or identical yield no points;
// tangent circles yield exactly one.
func CircleCircleIntersections(a, b Circle2D, tol float64) []Point2D {
	tol = tolOrDefault(tol)

	r1, r2 := a.radius, b.radius
	d := a.center.DistanceTo(b.center)

	if d < tol {
		// Concentric: identical circles are treated as degenerate, not infinite.
		return nil
	}
	if d > r1+r2+tol || d < math.Abs(r1-r2)-tol {
		return nil
	}

	u := b.center.Sub(a.center).Scale(1 / d)

	if math.Abs(d-(r1+r2)) < tol {
		return []Point2D{a.center.Add(u.Scale(r1))}
	}
	if math.Abs(d-math.Abs(r1-r2)) < tol {
		if r1 >= r2 {
			return []Point2D{a.center.Add(u.Scale(r1))}
		}
		return []Point2D{a.center.Add(u.Scale(-r1))}
	}

	// Distance from a.center to the radical line along u, then the half chord.
	along := (r1*r1 - r2*r2 + d*d) / (2 * d)
	h := math.Sqrt(math.Max(r1*r1-along*along, 0))
	base := a.center.Add(u.Scale(along))
	perp := u.Perpendicular().Scale(h)
	return []Point2D{base.Add(perp), base.Add(perp.Neg())}
}

// PerpendicularBisector returns the segment of total length length that is
// perpendicular to l and centered on its midpoint.
func PerpendicularBisector(l Line2D, length float64) (Line2D, error) {
	if !isFinite(length) || length <= 0 {
		return Line2D{}, fmt.Errorf("perpendicular bisector length %v: %w", length, ErrZeroLength)
	}
	mid := l.Midpoint()
	half := l.UnitDirection().Perpendicular().Scale(length / 2)
	return NewLine2D(mid.Add(half.Neg()), mid.Add(half))
}

// CircleFromThreePoints returns the circle through a, b and c by
// intersecting the perpendicular bisectors of the chords a-b and b-c.
// It reports false for collinear or coincident points.
func CircleFromThreePoints(a, b, c Point2D, tol float64) (Circle2D, bool) {
	ab, err := NewLine2D(a, b)
	if err != nil {
		return Circle2D{}, false
	}
	bc, err := NewLine2D(b, c)
	if err != nil {
		return Circle2D{}, false
	}
	// Any positive length defines the bisector's infinite line.
	bis1, err := PerpendicularBisector(ab, 1)
	if err != nil {
		return Circle2D{}, false
	}
	bis2, err := PerpendicularBisector(bc, 1)
	if err != nil {
		return Circle2D{}, false
	}
	center, ok := LineLineIntersection(bis1, bis2, tol)
	if !ok {
		return Circle2D{}, false
	}
	circle, err := NewCircle2D(center, center.DistanceTo(a))
	if err != nil {
		return Circle2D{}, false
	}
	return circle, true
}
