package tool

import (
	"fmt"
	"math"
	"slices"

	"github.com/philipparndt/goconstruct/internal/element"
	"github.com/philipparndt/goconstruct/internal/intersection"
	"github.com/philipparndt/goconstruct/pkg/geometry"
)

// mirrorTool reflects the selection across the axis through two clicks.
// With nothing selected there is nothing to mirror and the clicks are dropped.
func mirrorTool(ctx Context, c Click) (Result, error) {
	if len(ctx.Selection) == 0 {
		return Result{}, nil
	}
	pts := clicks(ctx, c)
	if len(pts) < 2 {
		return await(pts)
	}
	axis, err := geometry.NewLine2D(pts[0], pts[1])
	if err != nil {
		return Result{}, fmt.Errorf("mirror axis: %w", err)
	}

	var add []element.Element
	for _, e := range ctx.lookup(ctx.Selection) {
		m := e.Mirrored(axis)
		m.ID = 0
		add = append(add, m)
	}
	add = append(add, ctx.newElement(element.LineShape{Line: axis}))
	return Result{Add: add}, nil
}

func moveTool(ctx Context, c Click) (Result, error) {
	return offsetTool(ctx, c, false)
}

func copyTool(ctx Context, c Click) (Result, error) {
	return offsetTool(ctx, c, true)
}

// offsetTool implements move and copy. The first click anchors and, with an
// empty selection, picks the element under the cursor. The second click is
// the destination.
func offsetTool(ctx Context, c Click, duplicate bool) (Result, error) {
	if len(ctx.Points) == 0 {
		if len(ctx.Selection) > 0 {
			return await([]geometry.Point2D{c.Point})
		}
		hit, ok := HitTest(ctx.Elements, c.Raw, ctx.Settings.SnapDistance)
		if !ok {
			return Result{}, nil
		}
		return Result{
			Continue:     true,
			Points:       []geometry.Point2D{c.Point},
			Selection:    []element.ID{hit.ID},
			SelectionSet: true,
		}, nil
	}

	offset := c.Point.Sub(ctx.Points[0])
	if offset.Magnitude() <= ctx.Settings.MoveThreshold || offset.IsZero(ctx.Settings.Tolerance) {
		return Result{}, nil
	}

	moved := make([]element.Element, 0, len(ctx.Selection))
	for _, e := range ctx.lookup(ctx.Selection) {
		t := e.Translated(offset)
		if duplicate {
			t.ID = 0
		}
		moved = append(moved, t)
	}
	if duplicate {
		return Result{Add: moved}, nil
	}
	return Result{Update: moved}, nil
}

// trimTool cuts the line under the click at the two intersections nearest
// the click and keeps the outer pieces. Only crossings with other outlines
// count; point elements lying on the line never cut it.
func trimTool(ctx Context, c Click) (Result, error) {
	target, ok := nearestLine(ctx.Elements, c.Raw, ctx.Settings.SnapDistance)
	if !ok {
		return Result{}, nil
	}
	line, _ := lineOf(target.Shape)

	kindOf := make(map[element.ID]element.Kind, len(ctx.Elements))
	for _, e := range ctx.Elements {
		kindOf[e.ID] = e.Kind()
	}
	crossed := func(info intersection.Info) bool {
		return slices.ContainsFunc(info.Elements, func(id element.ID) bool {
			k, ok := kindOf[id]
			return ok && id != target.ID && k != element.KindPoint
		})
	}

	var params []float64
	for _, info := range intersection.OnElement(ctx.Intersections, target.ID) {
		if !crossed(info) {
			continue
		}
		t := line.Parameter(info.Point)
		if !slices.ContainsFunc(params, func(p float64) bool { return math.Abs(p-t) < ctx.Settings.Tolerance }) {
			params = append(params, t)
		}
	}
	if len(params) < 2 {
		return Result{}, nil
	}
	slices.Sort(params)

	lo, hi := cutParams(params, line.Parameter(c.Raw))

	var add []element.Element
	for _, piece := range [][2]float64{{0, lo}, {hi, 1}} {
		if (piece[1]-piece[0])*line.Length() <= ctx.Settings.TrimMinLength {
			continue
		}
		seg, err := geometry.NewLine2D(line.PointAt(piece[0]), line.PointAt(piece[1]))
		if err != nil {
			continue
		}
		e := element.New(withLine(target.Shape, seg), target.Color)
		add = append(add, e)
	}
	return Result{Add: add, Remove: []element.ID{target.ID}}, nil
}

// cutParams picks the pair of sorted parameters that brackets tc, so the
// clicked piece is always the one removed even when a farther cutter on the
// other side is not among the two closest. When the click lies outside all
// of them it falls back to the two parameters closest to tc.
func cutParams(sorted []float64, tc float64) (float64, float64) {
	for i := 0; i+1 < len(sorted); i++ {
		if sorted[i] <= tc && tc <= sorted[i+1] {
			return sorted[i], sorted[i+1]
		}
	}
	byDist := slices.Clone(sorted)
	slices.SortStableFunc(byDist, func(a, b float64) int {
		da, db := math.Abs(a-tc), math.Abs(b-tc)
		switch {
		case da < db:
			return -1
		case da > db:
			return 1
		default:
			return 0
		}
	})
	return math.Min(byDist[0], byDist[1]), math.Max(byDist[0], byDist[1])
}

// nearestLine returns the line-like element closest to p within maxDist.
func nearestLine(elems []element.Element, p geometry.Point2D, maxDist float64) (element.Element, bool) {
	var best element.Element
	bestDist := math.Inf(1)
	for _, e := range elems {
		l, ok := lineOf(e.Shape)
		if !ok {
			continue
		}
		if d := l.DistanceToPoint(p); d <= maxDist && d < bestDist {
			best, bestDist = e, d
		}
	}
	return best, !math.IsInf(bestDist, 1)
}

func lineOf(s element.Shape) (geometry.Line2D, bool) {
	switch s := s.(type) {
	case element.LineShape:
		return s.Line, true
	case element.PerpendicularShape:
		return s.Line, true
	default:
		return geometry.Line2D{}, false
	}
}

// withLine rebuilds a line-like shape of the same kind around l.
func withLine(s element.Shape, l geometry.Line2D) element.Shape {
	if _, ok := s.(element.PerpendicularShape); ok {
		return element.PerpendicularShape{Line: l}
	}
	return element.LineShape{Line: l}
}
