// Package geometry provides immutable 2D primitives and shapes together with
// the closed-form intersection algorithms used by the construction engine.
//
// Every constructor validates its invariants and returns an error instead of
// coercing bad input. Comparisons between floating-point values always go
// through an explicit tolerance.
package geometry

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// DefaultTolerance is the equality tolerance used when none is given.
const DefaultTolerance = 1e-9

var (
	// ErrNonFinite is returned when a coordinate or scalar is NaN or infinite.
	ErrNonFinite = errors.New("geometry: non-finite value")
	// ErrZeroLength is returned when a line's endpoints coincide.
	ErrZeroLength = errors.New("geometry: zero-length line")
	// ErrNonPositiveRadius is returned for circles and cog wheels with radius <= 0.
	ErrNonPositiveRadius = errors.New("geometry: radius must be positive")
	// ErrZeroVector is returned when normalizing or measuring an angle
	// against a vector whose magnitude is below tolerance.
	ErrZeroVector = errors.New("geometry: zero-length vector")
	// ErrInvalidCogWheel is returned for inconsistent cog wheel parameters.
	ErrInvalidCogWheel = errors.New("geometry: invalid cog wheel")
	// ErrDegenerateShape is returned for triangles and rectangles that
	// collapse onto a line or a point.
	ErrDegenerateShape = errors.New("geometry: degenerate shape")
)

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// nearlyEqual reports whether a and b differ by at most tol.
func nearlyEqual(a, b, tol float64) bool {
	return scalar.EqualWithinAbs(a, b, tol)
}

// tolOrDefault falls back to DefaultTolerance for non-positive tolerances.
func tolOrDefault(tol float64) float64 {
	if tol <= 0 || !isFinite(tol) {
		return DefaultTolerance
	}
	return tol
}

// inUnitInterval reports whether t lies in [0, 1] allowing tol slack at the ends.
func inUnitInterval(t, tol float64) bool {
	return t >= -tol && t <= 1+tol
}
