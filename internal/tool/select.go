package tool

import (
	"math"
	"slices"

	"github.com/philipparndt/goconstruct/internal/element"
	"github.com/philipparndt/goconstruct/internal/selection"
	"github.com/philipparndt/goconstruct/pkg/geometry"
)

// SelectMode distinguishes window from crossing rectangle selection.
type SelectMode int

const (
	// Window selects elements fully enclosed by the rectangle.
	Window SelectMode = iota
	// Crossing selects elements that overlap the rectangle at all.
	Crossing
)

func (m SelectMode) String() string {
	if m == Crossing {
		return "crossing"
	}
	return "window"
}

// SelectionRect is a rubber band rectangle from the first to the second click.
type SelectionRect struct {
	Start geometry.Point2D
	End   geometry.Point2D
}

// NewSelectionRect creates a new selection rectangle.
func NewSelectionRect(start, end geometry.Point2D) SelectionRect {
	return SelectionRect{Start: start, End: end}
}

// Rect returns the normalized rectangle regardless of drag direction.
func (s SelectionRect) Rect() geometry.Rect {
	return geometry.RectFromCorners(s.Start, s.End)
}

// Mode is Window when dragged left to right and Crossing otherwise.
func (s SelectionRect) Mode() SelectMode {
	if s.End.X >= s.Start.X {
		return Window
	}
	return Crossing
}

// Selects reports whether the rectangle picks shape in its mode.
func (s SelectionRect) Selects(shape element.Shape, tol float64) bool {
	r := s.Rect()
	if r.ContainsRect(element.Bounds(shape), tol) {
		return true
	}
	if s.Mode() == Window {
		return false
	}

	for _, p := range element.SnapPoints(shape) {
		if r.Contains(p, tol) {
			return true
		}
	}
	lines, circles := element.Primitives(shape)
	for _, l := range lines {
		if r.Contains(l.Start(), tol) || r.Contains(l.End(), tol) {
			return true
		}
	}
	for _, edge := range r.Edges() {
		for _, l := range lines {
			if _, ok := geometry.LineSegmentIntersection(edge, l, tol); ok {
				return true
			}
		}
		for _, c := range circles {
			if len(geometry.LineCircleIntersections(edge, c, tol)) > 0 {
				return true
			}
		}
	}
	return false
}

// Pick returns the IDs of elems selected by the rectangle, in store order.
func (s SelectionRect) Pick(elems []element.Element, tol float64) []element.ID {
	var ids []element.ID
	for _, e := range elems {
		if s.Selects(e.Shape, tol) {
			ids = append(ids, e.ID)
		}
	}
	return ids
}

// HitTest returns the element whose outline is closest to p within maxDist.
// On ties the most recently added element wins, as it is drawn on top.
func HitTest(elems []element.Element, p geometry.Point2D, maxDist float64) (element.Element, bool) {
	var best element.Element
	bestDist := math.Inf(1)
	for i := len(elems) - 1; i >= 0; i-- {
		e := elems[i]
		if d := element.Distance(e.Shape, p); d <= maxDist && d < bestDist {
			best, bestDist = e, d
		}
	}
	return best, !math.IsInf(bestDist, 1)
}

// selectTool handles click selection and rectangle selection. A click on an
// element replaces the selection, or toggles the element with Shift held.
// A click on empty space starts a rectangle which the next click completes.
func selectTool(ctx Context, c Click) (Result, error) {
	if len(ctx.Points) == 0 {
		hit, ok := HitTest(ctx.Elements, c.Raw, ctx.Settings.SnapDistance)
		if !ok {
			return await([]geometry.Point2D{c.Raw})
		}
		var sel []element.ID
		if c.Mods.Has(Shift) {
			sel = selection.Toggled(ctx.Selection, hit.ID)
		} else {
			sel = []element.ID{hit.ID}
		}
		return Result{Selection: sel, SelectionSet: true}, nil
	}

	rect := NewSelectionRect(ctx.Points[0], c.Raw)
	picked := rect.Pick(ctx.Elements, ctx.Settings.Tolerance)
	if c.Mods.Has(Shift) {
		sel := slices.Clone(ctx.Selection)
		for _, id := range picked {
			if !slices.Contains(sel, id) {
				sel = append(sel, id)
			}
		}
		picked = sel
	}
	return Result{Selection: picked, SelectionSet: true}, nil
}
