package geometry

import (
	"encoding/json"
	"fmt"
	"math"
)

// Triangle2D is a triangle with three distinct vertices.
type Triangle2D struct {
	a, b, c Point2D
}

// NewTriangle2D creates a triangle. The vertices must be finite and
// pairwise distinct; collinear vertices are rejected with ErrDegenerateShape.
func NewTriangle2D(a, b, c Point2D) (Triangle2D, error) {
	if !a.IsFinite() || !b.IsFinite() || !c.IsFinite() {
		return Triangle2D{}, fmt.Errorf("triangle %v %v %v: %w", a, b, c, ErrNonFinite)
	}
	if math.Abs(b.Sub(a).Cross(c.Sub(a))) < DefaultTolerance {
		return Triangle2D{}, fmt.Errorf("triangle %v %v %v: %w", a, b, c, ErrDegenerateShape)
	}
	return Triangle2D{a: a, b: b, c: c}, nil
}

// Vertices returns the three vertices in construction order.
func (t Triangle2D) Vertices() [3]Point2D {
	return [3]Point2D{t.a, t.b, t.c}
}

// Edges returns the edges a-b, b-c and c-a.
func (t Triangle2D) Edges() [3]Line2D {
	return [3]Line2D{
		{start: t.a, end: t.b},
		{start: t.b, end: t.c},
		{start: t.c, end: t.a},
	}
}

// Area returns the (unsigned) area.
func (t Triangle2D) Area() float64 {
	return math.Abs(t.b.Sub(t.a).Cross(t.c.Sub(t.a))) / 2
}

// Perimeter returns the sum of the edge lengths.
func (t Triangle2D) Perimeter() float64 {
	var sum float64
	for _, e := range t.Edges() {
		sum += e.Length()
	}
	return sum
}

// Centroid returns the average of the vertices.
func (t Triangle2D) Centroid() Point2D {
	return Point2D{X: (t.a.X + t.b.X + t.c.X) / 3, Y: (t.a.Y + t.b.Y + t.c.Y) / 3}
}

// Contains reports whether p lies inside or on the triangle.
func (t Triangle2D) Contains(p Point2D, tol float64) bool {
	tol = tolOrDefault(tol)
	d1 := t.b.Sub(t.a).Cross(p.Sub(t.a))
	d2 := t.c.Sub(t.b).Cross(p.Sub(t.b))
	d3 := t.a.Sub(t.c).Cross(p.Sub(t.c))
	hasNeg := d1 < -tol || d2 < -tol || d3 < -tol
	hasPos := d1 > tol || d2 > tol || d3 > tol
	return !(hasNeg && hasPos)
}

// DistanceToPoint returns the distance from p to the triangle outline.
func (t Triangle2D) DistanceToPoint(p Point2D) float64 {
	e := t.Edges()
	return minEdgeDistance(e[:], p)
}

// Translate returns the triangle moved by v.
func (t Triangle2D) Translate(v Vector2D) Triangle2D {
	return Triangle2D{a: t.a.Add(v), b: t.b.Add(v), c: t.c.Add(v)}
}

// Mirror reflects the triangle across the infinite line through axis.
func (t Triangle2D) Mirror(axis Line2D) Triangle2D {
	return Triangle2D{
		a: t.a.MirrorAcross(axis),
		b: t.b.MirrorAcross(axis),
		c: t.c.MirrorAcross(axis),
	}
}

// Bounds returns the bounding box.
func (t Triangle2D) Bounds() Rect {
	v := t.Vertices()
	return BoundsOf(v[:])
}

type triangleJSON struct {
	Vertices [3]Point2D `json:"vertices"`
}

// MarshalJSON implements json.Marshaler.
func (t Triangle2D) MarshalJSON() ([]byte, error) {
	return json.Marshal(triangleJSON{Vertices: t.Vertices()})
}

// UnmarshalJSON implements json.Unmarshaler and re-validates the triangle.
func (t *Triangle2D) UnmarshalJSON(data []byte) error {
	var raw triangleJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	tri, err := NewTriangle2D(raw.Vertices[0], raw.Vertices[1], raw.Vertices[2])
	if err != nil {
		return err
	}
	*t = tri
	return nil
}

// Rectangle2D is an axis-aligned rectangle with non-zero width and height.
type Rectangle2D struct {
	box Rect
}

// NewRectangle2D creates an axis-aligned rectangle from two opposite corners.
func NewRectangle2D(a, b Point2D) (Rectangle2D, error) {
	if !a.IsFinite() || !b.IsFinite() {
		return Rectangle2D{}, fmt.Errorf("rectangle %v %v: %w", a, b, ErrNonFinite)
	}
	box := RectFromCorners(a, b)
	if box.Width() < DefaultTolerance || box.Height() < DefaultTolerance {
		return Rectangle2D{}, fmt.Errorf("rectangle %v %v: %w", a, b, ErrDegenerateShape)
	}
	return Rectangle2D{box: box}, nil
}

// Box returns the normalized bounds.
func (r Rectangle2D) Box() Rect { return r.box }

// Corners returns the four corners counter-clockwise from the minimum corner.
func (r Rectangle2D) Corners() [4]Point2D { return r.box.Corners() }

// Edges returns the four border segments.
func (r Rectangle2D) Edges() [4]Line2D {
	c := r.box.Corners()
	return [4]Line2D{
		{start: c[0], end: c[1]},
		{start: c[1], end: c[2]},
		{start: c[2], end: c[3]},
		{start: c[3], end: c[0]},
	}
}

// Width returns the horizontal extent.
func (r Rectangle2D) Width() float64 { return r.box.Width() }

// Height returns the vertical extent.
func (r Rectangle2D) Height() float64 { return r.box.Height() }

// Area returns width*height.
func (r Rectangle2D) Area() float64 { return r.box.Width() * r.box.Height() }

// Contains reports whether p lies inside or on the rectangle.
func (r Rectangle2D) Contains(p Point2D, tol float64) bool {
	return r.box.Contains(p, tolOrDefault(tol))
}

// DistanceToPoint returns the distance from p to the rectangle outline.
func (r Rectangle2D) DistanceToPoint(p Point2D) float64 {
	e := r.Edges()
	return minEdgeDistance(e[:], p)
}

// Translate returns the rectangle moved by v.
func (r Rectangle2D) Translate(v Vector2D) Rectangle2D {
	return Rectangle2D{box: Rect{Min: r.box.Min.Add(v), Max: r.box.Max.Add(v)}}
}

// Mirror reflects the rectangle across axis. The image of an axis-aligned
// rectangle is only axis-aligned for horizontal or vertical axes, so for
// other axes the result is the bounding box of the mirrored corners.
func (r Rectangle2D) Mirror(axis Line2D) Rectangle2D {
	c := r.box.Corners()
	mirrored := make([]Point2D, len(c))
	for i, p := range c {
		mirrored[i] = p.MirrorAcross(axis)
	}
	return Rectangle2D{box: BoundsOf(mirrored)}
}

// Bounds returns the bounding box.
func (r Rectangle2D) Bounds() Rect { return r.box }

type rectangleJSON struct {
	Min Point2D `json:"min"`
	Max Point2D `json:"max"`
}

// MarshalJSON implements json.Marshaler.
func (r Rectangle2D) MarshalJSON() ([]byte, error) {
	return json.Marshal(rectangleJSON{Min: r.box.Min, Max: r.box.Max})
}

// UnmarshalJSON implements json.Unmarshaler and re-validates the rectangle.
func (r *Rectangle2D) UnmarshalJSON(data []byte) error {
	var raw rectangleJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	rect, err := NewRectangle2D(raw.Min, raw.Max)
	if err != nil {
		return err
	}
	*r = rect
	return nil
}

// PointInPolygon tests if a point is inside a closed polygon using ray casting.
func PointInPolygon(p Point2D, polygon []Point2D) bool {
	if len(polygon) < 3 {
		return false
	}

	inside := false
	n := len(polygon)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		pi, pj := polygon[i], polygon[j]

		// Check if ray from p going right crosses edge pi-pj
		if ((pi.Y > p.Y) != (pj.Y > p.Y)) &&
			(p.X < (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y)+pi.X) {
			inside = !inside
		}
	}
	return inside
}

func minEdgeDistance(edges []Line2D, p Point2D) float64 {
	best := math.Inf(1)
	for _, e := range edges {
		best = math.Min(best, e.DistanceToPoint(p))
	}
	return best
}
