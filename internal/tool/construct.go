package tool

import (
	"fmt"
	"math"

	"github.com/philipparndt/goconstruct/internal/element"
	"github.com/philipparndt/goconstruct/pkg/geometry"
)

func pointTool(ctx Context, c Click) (Result, error) {
	if hasPointAt(ctx.Elements, c.Point, ctx.Settings.Tolerance) {
		return Result{}, nil
	}
	return Result{Add: []element.Element{ctx.newElement(element.PointShape{Point: c.Point})}}, nil
}

func lineTool(ctx Context, c Click) (Result, error) {
	pts := clicks(ctx, c)
	if len(pts) == 1 {
		if ctx.Dynamic.Mode != DynamicDistance {
			return await(pts)
		}
		end, err := dynamicEnd(pts[0], ctx.Dynamic)
		if err != nil {
			return Result{}, err
		}
		pts = append(pts, end)
	}

	line, err := geometry.NewLine2D(pts[0], pts[1])
	if err != nil {
		return Result{}, fmt.Errorf("line: %w", err)
	}
	b := pointBuilder{ctx: ctx}
	b.ensure(line.Start())
	b.ensure(line.End())
	return Result{Add: append([]element.Element{ctx.newElement(element.LineShape{Line: line})}, b.pending...)}, nil
}

// dynamicEnd places the second endpoint at the configured distance and angle.
func dynamicEnd(start geometry.Point2D, d DynamicInput) (geometry.Point2D, error) {
	dir, err := geometry.UnitVectorFromAngle(d.Angle * math.Pi / 180)
	if err != nil {
		return geometry.Point2D{}, fmt.Errorf("dynamic angle: %w", err)
	}
	if d.Distance <= 0 || math.IsNaN(d.Distance) || math.IsInf(d.Distance, 0) {
		return geometry.Point2D{}, fmt.Errorf("dynamic distance %v: %w", d.Distance, geometry.ErrZeroLength)
	}
	return start.Add(dir.Scale(d.Distance)), nil
}

func circleTool(ctx Context, c Click) (Result, error) {
	pts := clicks(ctx, c)
	var radius float64
	switch {
	case len(pts) == 1 && ctx.Dynamic.Mode == DynamicRadius:
		radius = ctx.Dynamic.Radius
	case len(pts) == 1:
		return await(pts)
	default:
		radius = pts[0].DistanceTo(pts[1])
	}

	circle, err := geometry.NewCircle2D(pts[0], radius)
	if err != nil {
		return Result{}, fmt.Errorf("circle: %w", err)
	}
	b := pointBuilder{ctx: ctx}
	b.ensure(circle.Center())
	return Result{Add: append([]element.Element{ctx.newElement(element.CircleShape{Circle: circle})}, b.pending...)}, nil
}

func rectangleTool(ctx Context, c Click) (Result, error) {
	pts := clicks(ctx, c)
	if len(pts) < 2 {
		return await(pts)
	}
	rect, err := geometry.NewRectangle2D(pts[0], pts[1])
	if err != nil {
		return Result{}, fmt.Errorf("rectangle: %w", err)
	}
	return Result{Add: []element.Element{ctx.newElement(element.RectangleShape{Rectangle: rect})}}, nil
}

func triangleTool(ctx Context, c Click) (Result, error) {
	pts := clicks(ctx, c)
	if len(pts) < 3 {
		return await(pts)
	}
	tri, err := geometry.NewTriangle2D(pts[0], pts[1], pts[2])
	if err != nil {
		return Result{}, fmt.Errorf("triangle: %w", err)
	}
	return Result{Add: []element.Element{ctx.newElement(element.TriangleShape{Triangle: tri})}}, nil
}

func perpendicularTool(ctx Context, c Click) (Result, error) {
	pts := clicks(ctx, c)
	if len(pts) < 2 {
		return await(pts)
	}
	base, err := geometry.NewLine2D(pts[0], pts[1])
	if err != nil {
		return Result{}, fmt.Errorf("perpendicular base: %w", err)
	}
	bisector, err := geometry.PerpendicularBisector(base, ctx.Settings.PerpendicularLength)
	if err != nil {
		return Result{}, fmt.Errorf("perpendicular: %w", err)
	}
	b := pointBuilder{ctx: ctx}
	b.ensure(base.Start())
	b.ensure(base.End())
	add := []element.Element{
		ctx.newElement(element.LineShape{Line: base}),
		ctx.newElement(element.PerpendicularShape{Line: bisector}),
	}
	return Result{Add: append(add, b.pending...)}, nil
}

// filletTool draws an auxiliary circle of the configured radius centered
// between the two clicks. It does not compute a tangent arc.
func filletTool(ctx Context, c Click) (Result, error) {
	pts := clicks(ctx, c)
	if len(pts) < 2 {
		return await(pts)
	}
	circle, err := geometry.NewCircle2D(pts[0].Midpoint(pts[1]), ctx.Settings.FilletRadius)
	if err != nil {
		return Result{}, fmt.Errorf("fillet: %w", err)
	}
	return Result{Add: []element.Element{ctx.newElement(element.CircleShape{Circle: circle})}}, nil
}

func cogWheelTool(ctx Context, c Click) (Result, error) {
	pts := clicks(ctx, c)
	if len(pts) < 2 {
		return await(pts)
	}
	outer := pts[0].DistanceTo(pts[1])
	wheel, err := geometry.NewCogWheel(pts[0], outer, outer*geometry.CogInnerRatio, ctx.Settings.CogTeeth)
	if err != nil {
		return Result{}, fmt.Errorf("cog wheel: %w", err)
	}
	b := pointBuilder{ctx: ctx}
	b.ensure(wheel.Center())
	return Result{Add: append([]element.Element{ctx.newElement(element.CogWheelShape{Wheel: wheel})}, b.pending...)}, nil
}
