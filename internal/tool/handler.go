package tool

import (
	"fmt"

	"github.com/philipparndt/goconstruct/internal/config"
	"github.com/philipparndt/goconstruct/internal/element"
	"github.com/philipparndt/goconstruct/internal/intersection"
	"github.com/philipparndt/goconstruct/pkg/geometry"
)

// Context is the read-only view a handler works on.
type Context struct {
	// Points are the clicks accumulated so far for the active tool.
	Points []geometry.Point2D
	// Elements are the elements the user can interact with.
	Elements      []element.Element
	Intersections []intersection.Info
	Settings      config.Settings
	Dynamic       DynamicInput
	Selection     []element.ID
}

// Click is a committed pointer event. Point is the snapped position, Raw
// the position before snapping.
type Click struct {
	Point geometry.Point2D
	Raw   geometry.Point2D
	Mods  Modifiers
}

// Result tells the engine what to do after a click. When Continue is set
// the handler awaits more input and Points replaces the accumulated clicks;
// otherwise the accumulation is reset. New elements carry ID 0 and get
// their IDs from the store.
type Result struct {
	Continue bool
	Points   []geometry.Point2D

	Add    []element.Element
	Update []element.Element
	Remove []element.ID

	// Selection replaces the current selection when SelectionSet is true.
	Selection    []element.ID
	SelectionSet bool
}

// Changed reports whether the result mutates the store.
func (r Result) Changed() bool {
	return len(r.Add) > 0 || len(r.Update) > 0 || len(r.Remove) > 0
}

// Handler is the click protocol of a single tool.
type Handler func(ctx Context, c Click) (Result, error)

var handlers = map[Kind]Handler{
	Point:         pointTool,
	Line:          lineTool,
	Circle:        circleTool,
	Rectangle:     rectangleTool,
	Triangle:      triangleTool,
	Perpendicular: perpendicularTool,
	Mirror:        mirrorTool,
	Move:          moveTool,
	Copy:          copyTool,
	Trim:          trimTool,
	Fillet:        filletTool,
	CogWheel:      cogWheelTool,
	Select:        selectTool,
	Array:         notImplemented,
	Extend:        notImplemented,
}

// Handle dispatches a click to the handler of k. A returned error means the
// construction was aborted; the caller resets the accumulated clicks and
// commits nothing.
func Handle(k Kind, ctx Context, c Click) (Result, error) {
	h, ok := handlers[k]
	if !ok {
		return Result{}, fmt.Errorf("%q: %w", k, ErrUnknownTool)
	}
	return h(ctx, c)
}

func notImplemented(Context, Click) (Result, error) {
	return Result{}, ErrNotImplemented
}

// await keeps collecting clicks.
func await(points []geometry.Point2D) (Result, error) {
	return Result{Continue: true, Points: points}, nil
}

// clicks returns the accumulated points with c appended, without aliasing
// the caller's slice.
func clicks(ctx Context, c Click) []geometry.Point2D {
	out := make([]geometry.Point2D, 0, len(ctx.Points)+1)
	out = append(out, ctx.Points...)
	return append(out, c.Point)
}

func (ctx Context) newElement(s element.Shape) element.Element {
	return element.New(s, ctx.Settings.DefaultColor)
}

// lookup returns the elements of ids that are present in ctx, in store order.
func (ctx Context) lookup(ids []element.ID) []element.Element {
	want := make(map[element.ID]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []element.Element
	for _, e := range ctx.Elements {
		if want[e.ID] {
			out = append(out, e)
		}
	}
	return out
}

// pointBuilder collects auto-created point elements, skipping positions
// already occupied by an existing or pending point.
type pointBuilder struct {
	ctx     Context
	pending []element.Element
}

func (b *pointBuilder) ensure(p geometry.Point2D) {
	tol := b.ctx.Settings.Tolerance
	if hasPointAt(b.ctx.Elements, p, tol) || hasPointAt(b.pending, p, tol) {
		return
	}
	b.pending = append(b.pending, b.ctx.newElement(element.PointShape{Point: p}))
}

func hasPointAt(elems []element.Element, p geometry.Point2D, tol float64) bool {
	for _, e := range elems {
		if ps, ok := e.Shape.(element.PointShape); ok && ps.Point.Equals(p, tol) {
			return true
		}
	}
	return false
}
