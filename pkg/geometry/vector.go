package geometry

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Vector2D represents a 2D displacement.
// Unlike Point2D it carries direction and magnitude, not position.
type Vector2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NewVector2D creates a new Vector2D. Both components must be finite.
func NewVector2D(x, y float64) (Vector2D, error) {
	if !isFinite(x) || !isFinite(y) {
		return Vector2D{}, fmt.Errorf("vector (%v, %v): %w", x, y, ErrNonFinite)
	}
	return Vector2D{X: x, Y: y}, nil
}

func (v Vector2D) vec() r2.Vec {
	return r2.Vec{X: v.X, Y: v.Y}
}

func vectorFromVec(v r2.Vec) Vector2D {
	return Vector2D{X: v.X, Y: v.Y}
}

// Magnitude returns the length of the vector.
func (v Vector2D) Magnitude() float64 {
	return r2.Norm(v.vec())
}

// Add returns v + w.
func (v Vector2D) Add(w Vector2D) Vector2D {
	return vectorFromVec(r2.Add(v.vec(), w.vec()))
}

// Sub returns v - w.
func (v Vector2D) Sub(w Vector2D) Vector2D {
	return vectorFromVec(r2.Sub(v.vec(), w.vec()))
}

// Scale returns the vector multiplied by f.
func (v Vector2D) Scale(f float64) Vector2D {
	return vectorFromVec(r2.Scale(f, v.vec()))
}

// Neg returns -v.
func (v Vector2D) Neg() Vector2D {
	return Vector2D{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product.
func (v Vector2D) Dot(w Vector2D) float64 {
	return r2.Dot(v.vec(), w.vec())
}

// Cross returns the z component of the 3D cross product (v.X*w.Y - v.Y*w.X).
func (v Vector2D) Cross(w Vector2D) float64 {
	return r2.Cross(v.vec(), w.vec())
}

// Perpendicular returns v rotated 90 degrees counter-clockwise.
func (v Vector2D) Perpendicular() Vector2D {
	return Vector2D{X: -v.Y, Y: v.X}
}

// Rotate returns v rotated counter-clockwise by angle radians.
func (v Vector2D) Rotate(angle float64) Vector2D {
	return vectorFromVec(r2.Rotate(v.vec(), angle, r2.Vec{}))
}

// IsZero reports whether the magnitude is below tol.
func (v Vector2D) IsZero(tol float64) bool {
	return v.Magnitude() < tolOrDefault(tol)
}

// Normalize returns the unit vector pointing along v.
// It fails with ErrZeroVector when the magnitude is below DefaultTolerance.
func (v Vector2D) Normalize() (UnitVector2D, error) {
	m := v.Magnitude()
	if !isFinite(m) {
		return UnitVector2D{}, fmt.Errorf("normalize %v: %w", v, ErrNonFinite)
	}
	if m < DefaultTolerance {
		return UnitVector2D{}, fmt.Errorf("normalize %v: %w", v, ErrZeroVector)
	}
	return UnitVector2D{x: v.X / m, y: v.Y / m}, nil
}

// AngleTo returns the signed angle in radians from v to w, in (-pi, pi].
func (v Vector2D) AngleTo(w Vector2D) (float64, error) {
	if v.IsZero(DefaultTolerance) || w.IsZero(DefaultTolerance) {
		return 0, fmt.Errorf("angle between %v and %v: %w", v, w, ErrZeroVector)
	}
	return math.Atan2(v.Cross(w), v.Dot(w)), nil
}

// String implements fmt.Stringer.
func (v Vector2D) String() string {
	return fmt.Sprintf("<%.6g, %.6g>", v.X, v.Y)
}

// UnitVector2D is a vector guaranteed to have magnitude 1.
// The zero value is not valid; obtain one from Vector2D.Normalize or
// UnitVectorFromAngle.
type UnitVector2D struct {
	x, y float64
}

// UnitVectorFromAngle returns the unit vector at angle radians from +X.
func UnitVectorFromAngle(angle float64) (UnitVector2D, error) {
	if !isFinite(angle) {
		return UnitVector2D{}, fmt.Errorf("unit vector at angle %v: %w", angle, ErrNonFinite)
	}
	return UnitVector2D{x: math.Cos(angle), y: math.Sin(angle)}, nil
}

// X returns the x component.
func (u UnitVector2D) X() float64 { return u.x }

// Y returns the y component.
func (u UnitVector2D) Y() float64 { return u.y }

// Vector returns u as a plain Vector2D.
func (u UnitVector2D) Vector() Vector2D {
	return Vector2D{X: u.x, Y: u.y}
}

// Scale returns u multiplied by f.
func (u UnitVector2D) Scale(f float64) Vector2D {
	return Vector2D{X: u.x * f, Y: u.y * f}
}

// Dot returns the dot product with w.
func (u UnitVector2D) Dot(w UnitVector2D) float64 {
	return u.x*w.x + u.y*w.y
}

// Cross returns the 2D cross product with w.
func (u UnitVector2D) Cross(w UnitVector2D) float64 {
	return u.x*w.y - u.y*w.x
}

// Neg returns the opposite direction.
func (u UnitVector2D) Neg() UnitVector2D {
	return UnitVector2D{x: -u.x, y: -u.y}
}

// Perpendicular returns u rotated 90 degrees counter-clockwise.
func (u UnitVector2D) Perpendicular() UnitVector2D {
	return UnitVector2D{x: -u.y, y: u.x}
}

// Rotate returns u rotated counter-clockwise by angle radians.
func (u UnitVector2D) Rotate(angle float64) UnitVector2D {
	r := u.Vector().Rotate(angle)
	return UnitVector2D{x: r.X, y: r.Y}
}

// Angle returns the direction of u in radians, measured from +X.
func (u UnitVector2D) Angle() float64 {
	return math.Atan2(u.y, u.x)
}

// AngleTo returns the signed angle from u to w via atan2(cross, dot).
func (u UnitVector2D) AngleTo(w UnitVector2D) float64 {
	return math.Atan2(u.Cross(w), u.Dot(w))
}

// String implements fmt.Stringer.
func (u UnitVector2D) String() string {
	return fmt.Sprintf("<%.6g, %.6g>", u.x, u.y)
}
