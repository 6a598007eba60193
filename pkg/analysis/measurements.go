// Package analysis computes summary measurements over 2D drawing geometry.
package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/goconstruct/pkg/geometry"
)

// Outline is the geometry of one drawing element broken into primitives.
type Outline struct {
	Label   string
	Points  []geometry.Point2D
	Lines   []geometry.Line2D
	Circles []geometry.Circle2D
}

// EdgeInfo contains information about a straight edge in the drawing
type EdgeInfo struct {
	Start   geometry.Point2D
	End     geometry.Point2D
	Length  float64
	Element string
}

// MeasurementResult contains various measurements of a drawing
type MeasurementResult struct {
	BoundingBox   geometry.Rect
	Empty         bool
	PointCount    int
	EdgeCount     int
	CircleCount   int
	TotalLength   float64
	CircleArea    float64
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
	AllEdges      []EdgeInfo
}

// Analyze performs comprehensive analysis over the given outlines
func Analyze(outlines []Outline) *MeasurementResult {
	result := &MeasurementResult{
		Empty:    true,
		AllEdges: make([]EdgeInfo, 0),
	}

	extend := func(r geometry.Rect) {
		if result.Empty {
			result.BoundingBox = r
			result.Empty = false
			return
		}
		result.BoundingBox = result.BoundingBox.Union(r)
	}

	minLength := math.MaxFloat64
	maxLength := 0.0

	for _, o := range outlines {
		for _, p := range o.Points {
			result.PointCount++
			extend(geometry.Rect{Min: p, Max: p})
		}
		for _, c := range o.Circles {
			result.CircleCount++
			result.CircleArea += c.Area()
			extend(c.Bounds())
		}
		for _, l := range o.Lines {
			length := l.Length()
			result.AllEdges = append(result.AllEdges, EdgeInfo{
				Start:   l.Start(),
				End:     l.End(),
				Length:  length,
				Element: o.Label,
			})
			extend(l.Bounds())

			result.TotalLength += length
			if length < minLength {
				minLength = length
			}
			if length > maxLength {
				maxLength = length
			}
		}
	}

	result.EdgeCount = len(result.AllEdges)
	if result.EdgeCount > 0 {
		result.MinEdgeLength = minLength
		result.MaxEdgeLength = maxLength
		result.AvgEdgeLength = result.TotalLength / float64(result.EdgeCount)
	}

	return result
}

// FindLongestEdges returns the N longest edges
func FindLongestEdges(result *MeasurementResult, count int) []EdgeInfo {
	edges := make([]EdgeInfo, len(result.AllEdges))
	copy(edges, result.AllEdges)

	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Length > edges[j].Length
	})

	if count > len(edges) {
		count = len(edges)
	}

	return edges[:count]
}

// FindNearestPoint finds the candidate nearest to a given point
func FindNearestPoint(candidates []geometry.Point2D, point geometry.Point2D) (geometry.Point2D, float64, bool) {
	var nearest geometry.Point2D
	minDistance := math.MaxFloat64
	found := false

	for _, c := range candidates {
		distance := point.DistanceTo(c)
		if distance < minDistance {
			minDistance = distance
			nearest = c
			found = true
		}
	}

	return nearest, minDistance, found
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatPoint formats a 2D point
func FormatPoint(p geometry.Point2D) string {
	return fmt.Sprintf("(%.6f, %.6f)", p.X, p.Y)
}
