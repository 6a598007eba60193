// Package report renders engine snapshots for the command line.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/philipparndt/goconstruct/internal/element"
	"github.com/philipparndt/goconstruct/internal/engine"
	"github.com/philipparndt/goconstruct/internal/intersection"
	"github.com/philipparndt/goconstruct/internal/script"
	"github.com/philipparndt/goconstruct/internal/snap"
	"github.com/philipparndt/goconstruct/pkg/analysis"
	"github.com/philipparndt/goconstruct/pkg/geometry"
)

const longestEdges = 3

// Outlines converts elements into analysis input, skipping hidden ones.
func Outlines(elems []element.Element) []analysis.Outline {
	out := make([]analysis.Outline, 0, len(elems))
	for _, e := range elems {
		if e.Hidden {
			continue
		}
		o := analysis.Outline{Label: e.ID.String()}
		if p, ok := e.Shape.(element.PointShape); ok {
			o.Points = []geometry.Point2D{p.Point}
		}
		o.Lines, o.Circles = element.Primitives(e.Shape)
		out = append(out, o)
	}
	return out
}

// Describe returns a one-line description of an element's geometry.
func Describe(e element.Element) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v %s", e.ID, e.Kind())
	switch s := e.Shape.(type) {
	case element.PointShape:
		fmt.Fprintf(&b, " at %s", analysis.FormatPoint(s.Point))
	case element.LineShape:
		fmt.Fprintf(&b, " %s -> %s, length %s", analysis.FormatPoint(s.Line.Start()), analysis.FormatPoint(s.Line.End()),
			analysis.FormatMeasurement(s.Line.Length(), ""))
	case element.PerpendicularShape:
		fmt.Fprintf(&b, " %s -> %s", analysis.FormatPoint(s.Line.Start()), analysis.FormatPoint(s.Line.End()))
	case element.CircleShape:
		fmt.Fprintf(&b, " center %s, radius %s", analysis.FormatPoint(s.Circle.Center()),
			analysis.FormatMeasurement(s.Circle.Radius(), ""))
	case element.TriangleShape:
		v := s.Triangle.Vertices()
		fmt.Fprintf(&b, " %s %s %s, area %s", analysis.FormatPoint(v[0]), analysis.FormatPoint(v[1]), analysis.FormatPoint(v[2]),
			analysis.FormatMeasurement(s.Triangle.Area(), "square units"))
	case element.RectangleShape:
		box := s.Rectangle.Box()
		fmt.Fprintf(&b, " %s - %s, %.6f x %.6f", analysis.FormatPoint(box.Min), analysis.FormatPoint(box.Max),
			s.Rectangle.Width(), s.Rectangle.Height())
	case element.CogWheelShape:
		fmt.Fprintf(&b, " center %s, radii %.6f/%.6f, %d teeth", analysis.FormatPoint(s.Wheel.Center()),
			s.Wheel.OuterRadius(), s.Wheel.InnerRadius(), s.Wheel.Teeth())
	}
	if e.Hidden {
		b.WriteString(" [hidden]")
	}
	return b.String()
}

// Text writes a human-readable report of s.
func Text(w io.Writer, s engine.Snapshot) {
	result := analysis.Analyze(Outlines(s.Elements))

	fmt.Fprintln(w, "Canvas")
	fmt.Fprintln(w, "======")
	fmt.Fprintf(w, "Tool: %s\n", s.Tool)
	if len(s.Pending) > 0 {
		fmt.Fprintf(w, "Pending clicks: %d\n", len(s.Pending))
	}
	fmt.Fprintf(w, "Undo: %t  Redo: %t\n\n", s.CanUndo, s.CanRedo)

	fmt.Fprintf(w, "Elements (%d):\n", len(s.Elements))
	for _, e := range s.Elements {
		fmt.Fprintf(w, "  %s\n", Describe(e))
	}
	fmt.Fprintln(w)

	if !result.Empty {
		fmt.Fprintln(w, "Bounding Box:")
		fmt.Fprintf(w, "  Min: %s\n", analysis.FormatPoint(result.BoundingBox.Min))
		fmt.Fprintf(w, "  Max: %s\n", analysis.FormatPoint(result.BoundingBox.Max))
		fmt.Fprintf(w, "  Center: %s\n\n", analysis.FormatPoint(result.BoundingBox.Center()))
	}

	if result.EdgeCount > 0 {
		fmt.Fprintln(w, "Edge Lengths:")
		fmt.Fprintf(w, "  Edges: %d\n", result.EdgeCount)
		fmt.Fprintf(w, "  Total: %s\n", analysis.FormatMeasurement(result.TotalLength, ""))
		fmt.Fprintf(w, "  Minimum: %s\n", analysis.FormatMeasurement(result.MinEdgeLength, ""))
		fmt.Fprintf(w, "  Maximum: %s\n", analysis.FormatMeasurement(result.MaxEdgeLength, ""))
		fmt.Fprintf(w, "  Average: %s\n\n", analysis.FormatMeasurement(result.AvgEdgeLength, ""))

		fmt.Fprintln(w, "Longest Edges:")
		for i, edge := range analysis.FindLongestEdges(result, longestEdges) {
			fmt.Fprintf(w, "  %d. %s %s -> %s (%s)\n", i+1, edge.Element, analysis.FormatPoint(edge.Start),
				analysis.FormatPoint(edge.End), analysis.FormatMeasurement(edge.Length, ""))
		}
		fmt.Fprintln(w)
	}

	if len(s.Intersections) > 0 {
		Intersections(w, s.Intersections)
		fmt.Fprintln(w)
	}

	if len(s.Selection) > 0 {
		ids := make([]string, len(s.Selection))
		for i, id := range s.Selection {
			ids[i] = id.String()
		}
		fmt.Fprintf(w, "Selection: %s\n", strings.Join(ids, " "))
	}
	if s.Clipboard > 0 {
		fmt.Fprintf(w, "Clipboard: %d elements\n", s.Clipboard)
	}
}

// Intersections writes one line per intersection.
func Intersections(w io.Writer, infos []intersection.Info) {
	fmt.Fprintf(w, "Intersections (%d):\n", len(infos))
	for i, info := range infos {
		ids := make([]string, len(info.Elements))
		for j, id := range info.Elements {
			ids[j] = id.String()
		}
		fmt.Fprintf(w, "  %d. %s %s [%s]\n", i+1, analysis.FormatPoint(info.Point), info.Type, strings.Join(ids, " "))
	}
}

// Snap writes the outcome of a snap query.
func Snap(w io.Writer, query geometry.Point2D, r snap.Result) {
	fmt.Fprintf(w, "Query: %s\n", analysis.FormatPoint(query))
	fmt.Fprintf(w, "Snapped: %s (%s)\n", analysis.FormatPoint(r.Point), r.Kind)
	if r.Source != 0 {
		fmt.Fprintf(w, "Source: %v\n", r.Source)
	}
	fmt.Fprintf(w, "Distance: %s\n", analysis.FormatMeasurement(query.DistanceTo(r.Point), ""))
}

// Warnings writes skipped script statements.
func Warnings(w io.Writer, warnings []script.Warning) {
	if len(warnings) == 0 {
		return
	}
	fmt.Fprintf(w, "Warnings (%d):\n", len(warnings))
	for _, warn := range warnings {
		fmt.Fprintf(w, "  %s\n", warn)
	}
}

// JSON writes s as indented JSON.
func JSON(w io.Writer, s engine.Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return nil
}
