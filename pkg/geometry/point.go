package geometry

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// Point2D represents a position in world space.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NewPoint2D creates a new Point2D. Both coordinates must be finite.
func NewPoint2D(x, y float64) (Point2D, error) {
	if !isFinite(x) || !isFinite(y) {
		return Point2D{}, fmt.Errorf("point (%v, %v): %w", x, y, ErrNonFinite)
	}
	return Point2D{X: x, Y: y}, nil
}

// Origin returns the point (0, 0).
func Origin() Point2D {
	return Point2D{}
}

func (p Point2D) vec() r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y}
}

func pointFromVec(v r2.Vec) Point2D {
	return Point2D{X: v.X, Y: v.Y}
}

// IsFinite reports whether both coordinates are finite.
func (p Point2D) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y)
}

// Add returns the point displaced by v.
func (p Point2D) Add(v Vector2D) Point2D {
	return pointFromVec(r2.Add(p.vec(), v.vec()))
}

// Sub returns the vector from q to p.
func (p Point2D) Sub(q Point2D) Vector2D {
	return vectorFromVec(r2.Sub(p.vec(), q.vec()))
}

// VectorTo returns the vector from p to q.
func (p Point2D) VectorTo(q Point2D) Vector2D {
	return q.Sub(p)
}

// DistanceTo returns the Euclidean distance between p and q.
func (p Point2D) DistanceTo(q Point2D) float64 {
	return r2.Norm(r2.Sub(p.vec(), q.vec()))
}

// Equals reports whether p and q coincide within tol.
// A non-positive tol selects DefaultTolerance.
func (p Point2D) Equals(q Point2D, tol float64) bool {
	tol = tolOrDefault(tol)
	return nearlyEqual(p.X, q.X, tol) && nearlyEqual(p.Y, q.Y, tol)
}

// Midpoint returns the point halfway between p and q.
func (p Point2D) Midpoint(q Point2D) Point2D {
	return p.Lerp(q, 0.5)
}

// Lerp interpolates linearly between p (t=0) and q (t=1).
func (p Point2D) Lerp(q Point2D, t float64) Point2D {
	return Point2D{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// RotateAround rotates p by angle radians counter-clockwise around center.
func (p Point2D) RotateAround(center Point2D, angle float64) Point2D {
	return pointFromVec(r2.Rotate(p.vec(), angle, center.vec()))
}

// MirrorAcross reflects p across the infinite line through axis.
func (p Point2D) MirrorAcross(axis Line2D) Point2D {
	foot := axis.ProjectInfinite(p)
	return Point2D{X: 2*foot.X - p.X, Y: 2*foot.Y - p.Y}
}

// String implements fmt.Stringer.
func (p Point2D) String() string {
	return fmt.Sprintf("(%.6g, %.6g)", p.X, p.Y)
}
