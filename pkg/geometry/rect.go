package geometry

import "math"

// Rect is an axis-aligned bounding box. Min holds the smallest coordinates.
type Rect struct {
	Min Point2D `json:"min"`
	Max Point2D `json:"max"`
}

// RectFromCorners returns the normalized rectangle spanned by two opposite
// corners, regardless of drag direction.
func RectFromCorners(a, b Point2D) Rect {
	return Rect{
		Min: Point2D{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)},
		Max: Point2D{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)},
	}
}

// BoundsOf returns the bounding box of a set of points.
// It returns the zero Rect for an empty set.
func BoundsOf(points []Point2D) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	r := Rect{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		r = r.Extend(p)
	}
	return r
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the vertical extent.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Center returns the center point.
func (r Rect) Center() Point2D { return r.Min.Midpoint(r.Max) }

// Extend returns the smallest rectangle containing r and p.
func (r Rect) Extend(p Point2D) Rect {
	return Rect{
		Min: Point2D{X: math.Min(r.Min.X, p.X), Y: math.Min(r.Min.Y, p.Y)},
		Max: Point2D{X: math.Max(r.Max.X, p.X), Y: math.Max(r.Max.Y, p.Y)},
	}
}

// Union returns the smallest rectangle containing both rectangles.
func (r Rect) Union(o Rect) Rect {
	return r.Extend(o.Min).Extend(o.Max)
}

// Contains reports whether p lies inside r or on its border, within tol.
func (r Rect) Contains(p Point2D, tol float64) bool {
	return p.X >= r.Min.X-tol && p.X <= r.Max.X+tol &&
		p.Y >= r.Min.Y-tol && p.Y <= r.Max.Y+tol
}

// ContainsRect reports whether o lies entirely inside r.
func (r Rect) ContainsRect(o Rect, tol float64) bool {
	return r.Contains(o.Min, tol) && r.Contains(o.Max, tol)
}

// Intersects reports whether the two rectangles overlap or touch.
func (r Rect) Intersects(o Rect) bool {
	return r.Min.X <= o.Max.X && r.Max.X >= o.Min.X &&
		r.Min.Y <= o.Max.Y && r.Max.Y >= o.Min.Y
}

// Corners returns the four corners counter-clockwise from Min.
func (r Rect) Corners() [4]Point2D {
	return [4]Point2D{
		r.Min,
		{X: r.Max.X, Y: r.Min.Y},
		r.Max,
		{X: r.Min.X, Y: r.Max.Y},
	}
}

// Edges returns the border segments. Degenerate edges (zero width or
// height) are omitted.
func (r Rect) Edges() []Line2D {
	c := r.Corners()
	edges := make([]Line2D, 0, 4)
	for i := range c {
		if l, err := NewLine2D(c[i], c[(i+1)%4]); err == nil {
			edges = append(edges, l)
		}
	}
	return edges
}
