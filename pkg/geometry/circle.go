package geometry

import (
	"encoding/json"
	"fmt"
	"math"
)

// Circle2D is a circle with a strictly positive radius.
type Circle2D struct {
	center Point2D
	radius float64
}

// NewCircle2D creates a circle. The center must be finite and the radius
// strictly positive.
func NewCircle2D(center Point2D, radius float64) (Circle2D, error) {
	if !center.IsFinite() || !isFinite(radius) {
		return Circle2D{}, fmt.Errorf("circle %v r=%v: %w", center, radius, ErrNonFinite)
	}
	if radius <= 0 {
		return Circle2D{}, fmt.Errorf("circle %v r=%v: %w", center, radius, ErrNonPositiveRadius)
	}
	return Circle2D{center: center, radius: radius}, nil
}

// Center returns the circle center.
func (c Circle2D) Center() Point2D { return c.center }

// Radius returns the circle radius.
func (c Circle2D) Radius() float64 { return c.radius }

// Area returns pi*r^2.
func (c Circle2D) Area() float64 {
	return math.Pi * c.radius * c.radius
}

// Circumference returns 2*pi*r.
func (c Circle2D) Circumference() float64 {
	return 2 * math.Pi * c.radius
}

// Contains reports whether p lies inside the circle or on its boundary,
// within tol.
func (c Circle2D) Contains(p Point2D, tol float64) bool {
	return c.center.DistanceTo(p) <= c.radius+tolOrDefault(tol)
}

// OnBoundary reports whether p lies on the circumference within tol.
func (c Circle2D) OnBoundary(p Point2D, tol float64) bool {
	return c.DistanceToBoundary(p) <= tolOrDefault(tol)
}

// DistanceToBoundary returns the distance from p to the circumference.
func (c Circle2D) DistanceToBoundary(p Point2D) float64 {
	return math.Abs(c.center.DistanceTo(p) - c.radius)
}

// PointAtAngle returns the boundary point at angle radians from +X.
func (c Circle2D) PointAtAngle(angle float64) Point2D {
	return Point2D{
		X: c.center.X + c.radius*math.Cos(angle),
		Y: c.center.Y + c.radius*math.Sin(angle),
	}
}

// Translate returns the circle moved by v.
func (c Circle2D) Translate(v Vector2D) Circle2D {
	return Circle2D{center: c.center.Add(v), radius: c.radius}
}

// Mirror reflects the circle across the infinite line through axis.
func (c Circle2D) Mirror(axis Line2D) Circle2D {
	return Circle2D{center: c.center.MirrorAcross(axis), radius: c.radius}
}

// Bounds returns the axis-aligned bounding box.
func (c Circle2D) Bounds() Rect {
	return Rect{
		Min: Point2D{X: c.center.X - c.radius, Y: c.center.Y - c.radius},
		Max: Point2D{X: c.center.X + c.radius, Y: c.center.Y + c.radius},
	}
}

// String implements fmt.Stringer.
func (c Circle2D) String() string {
	return fmt.Sprintf("circle%v r=%.6g", c.center, c.radius)
}

type circleJSON struct {
	Center Point2D `json:"center"`
	Radius float64 `json:"radius"`
}

// MarshalJSON implements json.Marshaler.
func (c Circle2D) MarshalJSON() ([]byte, error) {
	return json.Marshal(circleJSON{Center: c.center, Radius: c.radius})
}

// UnmarshalJSON implements json.Unmarshaler and re-validates the circle.
func (c *Circle2D) UnmarshalJSON(data []byte) error {
	var raw circleJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	circle, err := NewCircle2D(raw.Center, raw.Radius)
	if err != nil {
		return err
	}
	*c = circle
	return nil
}
