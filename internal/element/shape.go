// Package element defines the tagged geometric element records stored on the
// canvas and the insertion-ordered store that owns them.
package element

import (
	"fmt"

	"github.com/philipparndt/goconstruct/pkg/geometry"
)

// Kind is the element type tag.
type Kind string

const (
	KindPoint         Kind = "point"
	KindLine          Kind = "line"
	KindCircle        Kind = "circle"
	KindPerpendicular Kind = "perpendicular"
	KindTriangle      Kind = "triangle"
	KindRectangle     Kind = "rectangle"
	KindCogWheel      Kind = "cogwheel"
)

// Kinds lists every element kind in declaration order.
var Kinds = []Kind{
	KindPoint, KindLine, KindCircle, KindPerpendicular,
	KindTriangle, KindRectangle, KindCogWheel,
}

// Shape is the payload of an element. The set of implementations is closed;
// consumers switch over the concrete types.
type Shape interface {
	Kind() Kind
	isShape()
}

// PointShape is a standalone point.
type PointShape struct {
	Point geometry.Point2D
}

// LineShape is a line segment.
type LineShape struct {
	Line geometry.Line2D
}

// CircleShape is a circle.
type CircleShape struct {
	Circle geometry.Circle2D
}

// PerpendicularShape is a perpendicular bisector segment.
type PerpendicularShape struct {
	Line geometry.Line2D
}

// TriangleShape is a triangle.
type TriangleShape struct {
	Triangle geometry.Triangle2D
}

// RectangleShape is an axis-aligned rectangle.
type RectangleShape struct {
	Rectangle geometry.Rectangle2D
}

// CogWheelShape is a toothed wheel.
type CogWheelShape struct {
	Wheel geometry.CogWheel
}

func (PointShape) Kind() Kind         { return KindPoint }
func (LineShape) Kind() Kind          { return KindLine }
func (CircleShape) Kind() Kind        { return KindCircle }
func (PerpendicularShape) Kind() Kind { return KindPerpendicular }
func (TriangleShape) Kind() Kind      { return KindTriangle }
func (RectangleShape) Kind() Kind     { return KindRectangle }
func (CogWheelShape) Kind() Kind      { return KindCogWheel }

func (PointShape) isShape()         {}
func (LineShape) isShape()          {}
func (CircleShape) isShape()        {}
func (PerpendicularShape) isShape() {}
func (TriangleShape) isShape()      {}
func (RectangleShape) isShape()     {}
func (CogWheelShape) isShape()      {}

func unknownShape(s Shape) string {
	return fmt.Sprintf("element: unknown shape %T", s)
}

// Translate returns s moved by v.
func Translate(s Shape, v geometry.Vector2D) Shape {
	switch s := s.(type) {
	case PointShape:
		return PointShape{Point: s.Point.Add(v)}
	case LineShape:
		return LineShape{Line: s.Line.Translate(v)}
	case CircleShape:
		return CircleShape{Circle: s.Circle.Translate(v)}
	case PerpendicularShape:
		return PerpendicularShape{Line: s.Line.Translate(v)}
	case TriangleShape:
		return TriangleShape{Triangle: s.Triangle.Translate(v)}
	case RectangleShape:
		return RectangleShape{Rectangle: s.Rectangle.Translate(v)}
	case CogWheelShape:
		return CogWheelShape{Wheel: s.Wheel.Translate(v)}
	default:
		panic(unknownShape(s))
	}
}

// Mirror returns s reflected across the infinite line through axis.
func Mirror(s Shape, axis geometry.Line2D) Shape {
	switch s := s.(type) {
	case PointShape:
		return PointShape{Point: s.Point.MirrorAcross(axis)}
	case LineShape:
		return LineShape{Line: s.Line.Mirror(axis)}
	case CircleShape:
		return CircleShape{Circle: s.Circle.Mirror(axis)}
	case PerpendicularShape:
		return PerpendicularShape{Line: s.Line.Mirror(axis)}
	case TriangleShape:
		return TriangleShape{Triangle: s.Triangle.Mirror(axis)}
	case RectangleShape:
		return RectangleShape{Rectangle: s.Rectangle.Mirror(axis)}
	case CogWheelShape:
		return CogWheelShape{Wheel: s.Wheel.Mirror(axis)}
	default:
		panic(unknownShape(s))
	}
}

// SnapPoints returns the characteristic points of s: the point itself, line
// endpoints, circle and wheel centers, rectangle corners, triangle vertices.
func SnapPoints(s Shape) []geometry.Point2D {
	switch s := s.(type) {
	case PointShape:
		return []geometry.Point2D{s.Point}
	case LineShape:
		return []geometry.Point2D{s.Line.Start(), s.Line.End()}
	case CircleShape:
		return []geometry.Point2D{s.Circle.Center()}
	case PerpendicularShape:
		return []geometry.Point2D{s.Line.Start(), s.Line.End()}
	case TriangleShape:
		v := s.Triangle.Vertices()
		return v[:]
	case RectangleShape:
		c := s.Rectangle.Corners()
		return c[:]
	case CogWheelShape:
		return []geometry.Point2D{s.Wheel.Center()}
	default:
		panic(unknownShape(s))
	}
}

// Bounds returns the axis-aligned bounding box of s.
func Bounds(s Shape) geometry.Rect {
	switch s := s.(type) {
	case PointShape:
		return geometry.Rect{Min: s.Point, Max: s.Point}
	case LineShape:
		return s.Line.Bounds()
	case CircleShape:
		return s.Circle.Bounds()
	case PerpendicularShape:
		return s.Line.Bounds()
	case TriangleShape:
		return s.Triangle.Bounds()
	case RectangleShape:
		return s.Rectangle.Bounds()
	case CogWheelShape:
		return s.Wheel.Bounds()
	default:
		panic(unknownShape(s))
	}
}

// Distance returns the distance from p to the drawn outline of s. It is used
// for hit testing clicks against elements.
func Distance(s Shape, p geometry.Point2D) float64 {
	switch s := s.(type) {
	case PointShape:
		return s.Point.DistanceTo(p)
	case LineShape:
		return s.Line.DistanceToPoint(p)
	case CircleShape:
		return s.Circle.DistanceToBoundary(p)
	case PerpendicularShape:
		return s.Line.DistanceToPoint(p)
	case TriangleShape:
		return s.Triangle.DistanceToPoint(p)
	case RectangleShape:
		return s.Rectangle.DistanceToPoint(p)
	case CogWheelShape:
		return s.Wheel.DistanceToPoint(p)
	default:
		panic(unknownShape(s))
	}
}

// Primitives decomposes s into the segments and circles that make up its
// outline. Points have no outline and return nothing.
func Primitives(s Shape) ([]geometry.Line2D, []geometry.Circle2D) {
	switch s := s.(type) {
	case PointShape:
		return nil, nil
	case LineShape:
		return []geometry.Line2D{s.Line}, nil
	case CircleShape:
		return nil, []geometry.Circle2D{s.Circle}
	case PerpendicularShape:
		return []geometry.Line2D{s.Line}, nil
	case TriangleShape:
		e := s.Triangle.Edges()
		return e[:], nil
	case RectangleShape:
		e := s.Rectangle.Edges()
		return e[:], nil
	case CogWheelShape:
		return s.Wheel.Edges(), nil
	default:
		panic(unknownShape(s))
	}
}
