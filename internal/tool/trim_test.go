package tool

import (
	"testing"

	"github.com/philipparndt/goconstruct/internal/element"
)

func trimScene(t *testing.T) Context {
	t.Helper()
	return newCtx(
		lineElem(t, 1, 0, 0, 100, 0),
		lineElem(t, 2, 20, -10, 20, 10),
		lineElem(t, 3, 60, -10, 60, 10),
	)
}

func TestTrimKeepsOuterPieces(t *testing.T) {
	res := run(t, Trim, trimScene(t), at(40, 0.5))

	if len(res.Remove) != 1 || res.Remove[0] != 1 {
		t.Fatalf("trim: expected removal of #1, got %v", res.Remove)
	}
	if len(res.Add) != 2 {
		t.Fatalf("trim: expected two pieces, got %v", kinds(res.Add))
	}
	left := res.Add[0].Shape.(element.LineShape).Line
	right := res.Add[1].Shape.(element.LineShape).Line
	if !left.Start().Equals(pt(0, 0), 1e-9) || !left.End().Equals(pt(20, 0), 1e-9) {
		t.Errorf("left piece: got %v", left)
	}
	if !right.Start().Equals(pt(60, 0), 1e-9) || !right.End().Equals(pt(100, 0), 1e-9) {
		t.Errorf("right piece: got %v", right)
	}
}

func TestTrimDropsShortPieces(t *testing.T) {
	// Cutters at the very ends leave nothing worth keeping.
	ctx := newCtx(
		lineElem(t, 1, 0, 0, 100, 0),
		lineElem(t, 2, 0, -10, 0, 10),
		lineElem(t, 3, 100, -10, 100, 10),
	)
	res := run(t, Trim, ctx, at(50, 0))
	if len(res.Remove) != 1 || len(res.Add) != 0 {
		t.Errorf("trim between end cutters: got add=%v remove=%v", kinds(res.Add), res.Remove)
	}
}

func TestTrimNeedsTwoIntersections(t *testing.T) {
	ctx := newCtx(
		lineElem(t, 1, 0, 0, 100, 0),
		lineElem(t, 2, 20, -10, 20, 10),
	)
	res := run(t, Trim, ctx, at(40, 0))
	if res.Changed() {
		t.Errorf("trim with one intersection should be a no-op, got %+v", res)
	}
}

func TestTrimMissIsNoop(t *testing.T) {
	res := run(t, Trim, trimScene(t), at(40, 40))
	if res.Changed() {
		t.Errorf("trim away from any line should be a no-op, got %+v", res)
	}
}

func TestCutParamsOutsideBracket(t *testing.T) {
	lo, hi := cutParams([]float64{0.2, 0.5, 0.6}, 0.9)
	if lo != 0.5 || hi != 0.6 {
		t.Errorf("cutParams() = %v, %v, want 0.5, 0.6", lo, hi)
	}
}

func pointElem(id element.ID, x, y float64) element.Element {
	return element.Element{ID: id, Shape: element.PointShape{Point: pt(x, y)}}
}

func TestTrimIgnoresEndpointPoints(t *testing.T) {
	// The line tool leaves point elements on both ends; they are not cutters.
	ctx := newCtx(
		pointElem(1, 0, 0),
		pointElem(2, 100, 0),
		lineElem(t, 3, 0, 0, 100, 0),
	)
	if res := run(t, Trim, ctx, at(50, 1)); res.Changed() {
		t.Errorf("trim of an uncrossed line should be a no-op, got %+v", res)
	}

	ctx = newCtx(
		pointElem(1, 0, 0),
		pointElem(2, 100, 0),
		lineElem(t, 3, 0, 0, 100, 0),
		lineElem(t, 4, 50, -10, 50, 10),
	)
	if res := run(t, Trim, ctx, at(25, 1)); res.Changed() {
		t.Errorf("trim with one real crossing should be a no-op, got %+v", res)
	}
}

func TestTrimCutsAtBracketingPair(t *testing.T) {
	// Cutters at 10, 40 and 50: the click at 35 lies between 10 and 40, so
	// that span is removed even though 50 is closer to the click than 10.
	ctx := newCtx(
		lineElem(t, 1, 0, 0, 100, 0),
		lineElem(t, 2, 10, -10, 10, 10),
		lineElem(t, 3, 40, -10, 40, 10),
		lineElem(t, 4, 50, -10, 50, 10),
	)
	res := run(t, Trim, ctx, at(35, 0.5))
	if len(res.Add) != 2 {
		t.Fatalf("trim: expected two pieces, got %v", kinds(res.Add))
	}
	left := res.Add[0].Shape.(element.LineShape).Line
	right := res.Add[1].Shape.(element.LineShape).Line
	if !left.Start().Equals(pt(0, 0), 1e-9) || !left.End().Equals(pt(10, 0), 1e-9) {
		t.Errorf("left piece: got %v", left)
	}
	if !right.Start().Equals(pt(40, 0), 1e-9) || !right.End().Equals(pt(100, 0), 1e-9) {
		t.Errorf("right piece: got %v", right)
	}
}

func TestCutParamsBracket(t *testing.T) {
	lo, hi := cutParams([]float64{0.1, 0.4, 0.5}, 0.35)
	if lo != 0.1 || hi != 0.4 {
		t.Errorf("cutParams() = %v, %v, want 0.1, 0.4", lo, hi)
	}
}
