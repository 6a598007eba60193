// Package intersection finds every pairwise intersection across a
// collection of elements and merges coincident results.
package intersection

import (
	"slices"

	"github.com/philipparndt/goconstruct/internal/element"
	"github.com/philipparndt/goconstruct/pkg/geometry"
)

// MergeFactor scales the base tolerance to the distance below which two
// intersection points are considered the same.
const MergeFactor = 10

// Info is an aggregated intersection point. Elements holds every element
// that contributed, without duplicates, in first-seen order.
type Info struct {
	Point    geometry.Point2D `json:"point"`
	Elements []element.ID     `json:"elements"`
	Type     string           `json:"type"`
}

// Aggregate intersects every pair of visible elements. Point-point pairs
// are skipped; a point paired with a shape contributes the point when it
// lies on the shape's outline. The work is quadratic in the element count.
func Aggregate(elems []element.Element, tol float64) []Info {
	if tol <= 0 {
		tol = geometry.DefaultTolerance
	}
	a := aggregator{merge: tol * MergeFactor}

	visible := make([]element.Element, 0, len(elems))
	for _, e := range elems {
		if !e.Hidden {
			visible = append(visible, e)
		}
	}

	for i := 0; i < len(visible); i++ {
		for j := i + 1; j < len(visible); j++ {
			ea, eb := visible[i], visible[j]
			kind := string(ea.Kind()) + "-" + string(eb.Kind())
			for _, p := range Between(ea.Shape, eb.Shape, tol) {
				a.add(p, kind, ea.ID, eb.ID)
			}
		}
	}
	return a.out
}

// Between returns the intersection points of two shapes.
func Between(a, b element.Shape, tol float64) []geometry.Point2D {
	pa, aIsPoint := a.(element.PointShape)
	pb, bIsPoint := b.(element.PointShape)
	switch {
	case aIsPoint && bIsPoint:
		return nil
	case aIsPoint:
		return pointOn(pa.Point, b, tol)
	case bIsPoint:
		return pointOn(pb.Point, a, tol)
	}

	linesA, circlesA := element.Primitives(a)
	linesB, circlesB := element.Primitives(b)

	var out []geometry.Point2D
	for _, la := range linesA {
		for _, lb := range linesB {
			if p, ok := geometry.LineSegmentIntersection(la, lb, tol); ok {
				out = append(out, p)
			}
		}
		for _, cb := range circlesB {
			out = append(out, geometry.LineCircleIntersections(la, cb, tol)...)
		}
	}
	for _, ca := range circlesA {
		for _, lb := range linesB {
			out = append(out, geometry.LineCircleIntersections(lb, ca, tol)...)
		}
		for _, cb := range circlesB {
			out = append(out, geometry.CircleCircleIntersections(ca, cb, tol)...)
		}
	}
	return out
}

func pointOn(p geometry.Point2D, s element.Shape, tol float64) []geometry.Point2D {
	if element.Distance(s, p) <= tol {
		return []geometry.Point2D{p}
	}
	return nil
}

type aggregator struct {
	merge float64
	out   []Info
}

func (a *aggregator) add(p geometry.Point2D, kind string, ids ...element.ID) {
	for i := range a.out {
		if a.out[i].Point.Equals(p, a.merge) {
			for _, id := range ids {
				if !slices.Contains(a.out[i].Elements, id) {
					a.out[i].Elements = append(a.out[i].Elements, id)
				}
			}
			return
		}
	}
	a.out = append(a.out, Info{Point: p, Elements: slices.Clone(ids), Type: kind})
}

// Points returns just the positions of infos.
func Points(infos []Info) []geometry.Point2D {
	out := make([]geometry.Point2D, len(infos))
	for i, info := range infos {
		out[i] = info.Point
	}
	return out
}

// OnElement returns the intersections that element id contributed to.
func OnElement(infos []Info, id element.ID) []Info {
	var out []Info
	for _, info := range infos {
		if slices.Contains(info.Elements, id) {
			out = append(out, info)
		}
	}
	return out
}
