// Package snap replaces raw input points with nearby meaningful points:
// grid nodes, element vertices and intersections.
package snap

import (
	"fmt"
	"math"

	"github.com/philipparndt/goconstruct/internal/config"
	"github.com/philipparndt/goconstruct/internal/element"
	"github.com/philipparndt/goconstruct/internal/intersection"
	"github.com/philipparndt/goconstruct/pkg/analysis"
	"github.com/philipparndt/goconstruct/pkg/geometry"
)

// Kind tells which rule produced a snapped point.
type Kind int

const (
	None Kind = iota
	Grid
	Vertex
	Intersection
)

func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case Grid:
		return "grid"
	case Vertex:
		return "vertex"
	case Intersection:
		return "intersection"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Result is the outcome of a snap query.
type Result struct {
	Point geometry.Point2D
	Kind  Kind
	// Source is the element that owns a vertex snap, zero otherwise.
	Source element.ID
}

// Resolve snaps query in priority order: grid (when enabled and within
// snap distance), then the nearest vertex or intersection within snap
// distance, then the raw point. Hidden elements never attract. Vertices
// win ties against intersections.
func Resolve(query geometry.Point2D, s config.Settings, elems []element.Element, infos []intersection.Info) Result {
	if s.SnapToGrid {
		if g := GridPoint(query, s.GridSize); g.DistanceTo(query) <= s.SnapDistance {
			return Result{Point: g, Kind: Grid}
		}
	}

	best := Result{Point: query, Kind: None}
	bestDist := math.Inf(1)

	for _, e := range elems {
		if e.Hidden {
			continue
		}
		for _, p := range element.SnapPoints(e.Shape) {
			d := p.DistanceTo(query)
			if d <= s.SnapDistance && d < bestDist {
				best = Result{Point: p, Kind: Vertex, Source: e.ID}
				bestDist = d
			}
		}
	}

	if p, d, ok := analysis.FindNearestPoint(intersection.Points(infos), query); ok && d <= s.SnapDistance && d < bestDist {
		best = Result{Point: p, Kind: Intersection}
	}
	return best
}

// GridPoint rounds p to the nearest multiple of size on both axes.
func GridPoint(p geometry.Point2D, size float64) geometry.Point2D {
	if size <= 0 {
		return p
	}
	return geometry.Point2D{
		X: math.Round(p.X/size) * size,
		Y: math.Round(p.Y/size) * size,
	}
}
