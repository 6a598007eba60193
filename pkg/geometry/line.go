package geometry

import (
	"encoding/json"
	"fmt"
	"math"
)

// Line2D is a finite line segment between two distinct points.
type Line2D struct {
	start, end Point2D
}

// NewLine2D creates a segment from start to end.
// It fails if either point is non-finite or the points coincide within
// DefaultTolerance.
func NewLine2D(start, end Point2D) (Line2D, error) {
	if !start.IsFinite() || !end.IsFinite() {
		return Line2D{}, fmt.Errorf("line %v-%v: %w", start, end, ErrNonFinite)
	}
	if start.Equals(end, DefaultTolerance) {
		return Line2D{}, fmt.Errorf("line %v-%v: %w", start, end, ErrZeroLength)
	}
	return Line2D{start: start, end: end}, nil
}

// Start returns the first endpoint.
func (l Line2D) Start() Point2D { return l.start }

// End returns the second endpoint.
func (l Line2D) End() Point2D { return l.end }

// Length returns the segment length.
func (l Line2D) Length() float64 {
	return l.start.DistanceTo(l.end)
}

// Direction returns end - start.
func (l Line2D) Direction() Vector2D {
	return l.end.Sub(l.start)
}

// UnitDirection returns the normalized direction. A valid Line2D always has
// a non-zero direction.
func (l Line2D) UnitDirection() UnitVector2D {
	d := l.Direction()
	m := d.Magnitude()
	return UnitVector2D{x: d.X / m, y: d.Y / m}
}

// Midpoint returns the point halfway along the segment.
func (l Line2D) Midpoint() Point2D {
	return l.start.Midpoint(l.end)
}

// PointAt evaluates the segment at parameter t (0 = start, 1 = end).
// Values outside [0, 1] extrapolate along the infinite line.
func (l Line2D) PointAt(t float64) Point2D {
	return l.start.Lerp(l.end, t)
}

// Parameter returns the parameter t of the orthogonal projection of p onto
// the infinite line. It is not clamped.
func (l Line2D) Parameter(p Point2D) float64 {
	d := l.Direction()
	return p.Sub(l.start).Dot(d) / d.Dot(d)
}

// ProjectInfinite projects p onto the infinite extension of the segment.
func (l Line2D) ProjectInfinite(p Point2D) Point2D {
	return l.PointAt(l.Parameter(p))
}

// ClosestPoint returns the point on the segment nearest to p.
func (l Line2D) ClosestPoint(p Point2D) Point2D {
	t := math.Max(0, math.Min(1, l.Parameter(p)))
	return l.PointAt(t)
}

// DistanceToPoint returns the distance from p to the segment.
func (l Line2D) DistanceToPoint(p Point2D) float64 {
	return p.DistanceTo(l.ClosestPoint(p))
}

// DistanceToLine returns the distance from p to the infinite line.
func (l Line2D) DistanceToLine(p Point2D) float64 {
	return math.Abs(l.Direction().Cross(p.Sub(l.start))) / l.Length()
}

// ContainsPoint reports whether p lies on the segment within tol.
func (l Line2D) ContainsPoint(p Point2D, tol float64) bool {
	return l.DistanceToPoint(p) <= tolOrDefault(tol)
}

// Translate returns the segment moved by v.
func (l Line2D) Translate(v Vector2D) Line2D {
	return Line2D{start: l.start.Add(v), end: l.end.Add(v)}
}

// Mirror reflects the segment across the infinite line through axis.
// Reflection is an isometry, so the result is always a valid segment.
func (l Line2D) Mirror(axis Line2D) Line2D {
	return Line2D{start: l.start.MirrorAcross(axis), end: l.end.MirrorAcross(axis)}
}

// Reverse swaps the endpoints.
func (l Line2D) Reverse() Line2D {
	return Line2D{start: l.end, end: l.start}
}

// Bounds returns the axis-aligned bounding box of the segment.
func (l Line2D) Bounds() Rect {
	return RectFromCorners(l.start, l.end)
}

// Equals reports whether both endpoints match within tol.
func (l Line2D) Equals(o Line2D, tol float64) bool {
	return l.start.Equals(o.start, tol) && l.end.Equals(o.end, tol)
}

// String implements fmt.Stringer.
func (l Line2D) String() string {
	return fmt.Sprintf("%v-%v", l.start, l.end)
}

type lineJSON struct {
	Start Point2D `json:"start"`
	End   Point2D `json:"end"`
}

// MarshalJSON implements json.Marshaler.
func (l Line2D) MarshalJSON() ([]byte, error) {
	return json.Marshal(lineJSON{Start: l.start, End: l.end})
}

// UnmarshalJSON implements json.Unmarshaler and re-validates the segment.
func (l *Line2D) UnmarshalJSON(data []byte) error {
	var raw lineJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	line, err := NewLine2D(raw.Start, raw.End)
	if err != nil {
		return err
	}
	*l = line
	return nil
}
