package engine

import (
	"fmt"
	"math"

	"github.com/philipparndt/goconstruct/internal/config"
	"github.com/philipparndt/goconstruct/internal/element"
	"github.com/philipparndt/goconstruct/internal/snap"
	"github.com/philipparndt/goconstruct/internal/tool"
	"github.com/philipparndt/goconstruct/pkg/geometry"
)

// PointerCommit handles a click at p in world coordinates. Construction
// errors abort only this commit: nothing is added, the accumulated clicks
// are reset and the error is returned.
func (e *Engine) PointerCommit(p geometry.Point2D, mods tool.Modifiers) error {
	if !p.IsFinite() {
		e.points = nil
		return fmt.Errorf("click at %v: %w", p, geometry.ErrNonFinite)
	}

	click := tool.Click{Point: p, Raw: p, Mods: mods}
	if e.tool.Snaps() {
		r := e.Snap(p)
		click.Point = r.Point
		if r.Kind != snap.None {
			e.log.Debug("snapped", "from", p, "to", r.Point, "kind", r.Kind)
		}
	}

	ctx := tool.Context{
		Points:        e.points,
		Elements:      e.interactive(),
		Intersections: e.intersections,
		Settings:      e.settings,
		Dynamic:       e.dynamic,
		Selection:     e.sel.Selected(),
	}
	res, err := tool.Handle(e.tool, ctx, click)
	if err != nil {
		e.points = nil
		e.log.Warn("construction aborted", "tool", e.tool, "error", err)
		return err
	}

	if res.SelectionSet {
		e.sel.Replace(res.Selection...)
	}
	if res.Continue {
		e.points = res.Points
		e.log.Debug("click accumulated", "tool", e.tool, "points", len(e.points))
	} else {
		e.points = nil
	}
	if !res.Changed() {
		return nil
	}

	added, err := e.apply(res)
	if err != nil {
		e.points = nil
		e.log.Warn("commit failed", "tool", e.tool, "error", err)
		return err
	}
	e.log.Info("committed", "tool", e.tool,
		"added", len(added), "updated", len(res.Update), "removed", len(res.Remove))
	e.commit(string(e.tool))
	return nil
}

// Snap returns what a click at p would snap to under the current state.
func (e *Engine) Snap(p geometry.Point2D) snap.Result {
	return snap.Resolve(p, e.settings, e.interactive(), e.intersections)
}

// SelectTool activates k, discarding any clicks accumulated by the
// previous tool.
func (e *Engine) SelectTool(k tool.Kind) {
	if len(e.points) > 0 {
		e.log.Debug("tool switch cancels pending clicks", "tool", e.tool, "points", len(e.points))
	}
	e.points = nil
	e.tool = k
	e.log.Debug("tool selected", "tool", k)
}

// Cancel discards accumulated clicks without committing anything.
func (e *Engine) Cancel() {
	e.points = nil
}

// Undo restores the previous snapshot. It reports false at the oldest one.
func (e *Engine) Undo() bool {
	snapshot, ok := e.hist.Undo()
	if !ok {
		return false
	}
	e.points = nil
	e.store.Restore(snapshot)
	e.commit("undo")
	e.log.Info("undo", "elements", len(snapshot))
	return true
}

// Redo reapplies the next snapshot. It reports false at the newest one.
func (e *Engine) Redo() bool {
	snapshot, ok := e.hist.Redo()
	if !ok {
		return false
	}
	e.points = nil
	e.store.Restore(snapshot)
	e.commit("redo")
	e.log.Info("redo", "elements", len(snapshot))
	return true
}

// Copy puts the selected elements on the clipboard.
func (e *Engine) Copy() int {
	n := e.sel.Copy(e.store)
	e.log.Debug("copied", "elements", n)
	return n
}

// Paste adds the clipboard contents at the configured paste offset and
// selects the pasted elements.
func (e *Engine) Paste() (int, error) {
	pasted, err := e.sel.Paste(e.store, e.settings.PasteOffset)
	if err != nil {
		return 0, err
	}
	if len(pasted) > 0 {
		e.log.Info("pasted", "elements", len(pasted))
		e.commit("paste")
	}
	return len(pasted), nil
}

// DeleteSelected removes the selected elements.
func (e *Engine) DeleteSelected() int {
	n := e.sel.Delete(e.store)
	if n > 0 {
		e.log.Info("deleted", "elements", n)
		e.commit("delete")
	}
	return n
}

// HideSelected hides the selected elements and clears the selection.
func (e *Engine) HideSelected() (int, error) {
	n, err := e.sel.Hide(e.store)
	if n > 0 {
		e.commit("hide")
	}
	return n, err
}

// UnhideAll makes every hidden element visible again.
func (e *Engine) UnhideAll() (int, error) {
	n, err := e.sel.UnhideAll(e.store)
	if n > 0 {
		e.commit("unhide")
	}
	return n, err
}

// ShowHidden reveals hidden elements for picking and snapping without
// changing their hidden flag.
func (e *Engine) ShowHidden(on bool) {
	e.sel.SetShowHidden(on)
}

// ClearCanvas removes every element. It is recorded in history and can be
// undone.
func (e *Engine) ClearCanvas() {
	e.points = nil
	e.sel.Clear()
	if e.store.Len() == 0 {
		return
	}
	e.store.Clear()
	e.log.Info("canvas cleared")
	e.commit("clear")
}

// DragSelection moves the selection by to - from. Drags no longer than the
// move threshold are ignored. It reports whether anything moved.
func (e *Engine) DragSelection(from, to geometry.Point2D) (bool, error) {
	moved, err := e.sel.Move(e.store, to.Sub(from), e.settings.MoveThreshold)
	if err != nil {
		return false, err
	}
	if moved {
		e.commit("drag")
	}
	return moved, nil
}

// MirrorSelected adds copies of the selection reflected across the line
// through a and b, without the reference axis the mirror tool draws.
func (e *Engine) MirrorSelected(a, b geometry.Point2D) (int, error) {
	axis, err := geometry.NewLine2D(a, b)
	if err != nil {
		return 0, fmt.Errorf("mirror axis: %w", err)
	}
	copies, err := e.sel.Mirror(e.store, axis)
	if err != nil {
		return 0, err
	}
	if len(copies) > 0 {
		e.log.Info("mirrored", "elements", len(copies))
		e.commit("mirror")
	}
	return len(copies), nil
}

// Select replaces the selection with ids that exist in the store.
func (e *Engine) Select(ids ...element.ID) {
	e.sel.Replace(ids...)
	e.sel.Prune(e.store)
}

// ChangeSettings applies a partial settings update. Invalid updates are
// rejected as a whole.
func (e *Engine) ChangeSettings(p config.Patch) error {
	next, err := e.settings.Apply(p)
	if err != nil {
		return err
	}
	prev := e.settings
	e.settings = next
	if next.HistoryLimit != prev.HistoryLimit {
		e.hist.SetLimit(next.HistoryLimit)
	}
	if next.Tolerance != prev.Tolerance {
		e.refresh()
	}
	e.log.Debug("settings changed", "settings", next)
	return nil
}

// SetDynamicInput configures out-of-band numeric input for line and circle.
func (e *Engine) SetDynamicInput(d tool.DynamicInput) error {
	switch d.Mode {
	case tool.DynamicOff:
		d = tool.DynamicInput{}
	case tool.DynamicDistance:
		if !(d.Distance > 0) || math.IsInf(d.Distance, 0) || math.IsNaN(d.Angle) || math.IsInf(d.Angle, 0) {
			return fmt.Errorf("dynamic distance %v angle %v: %w", d.Distance, d.Angle, geometry.ErrZeroLength)
		}
	case tool.DynamicRadius:
		if !(d.Radius > 0) || math.IsInf(d.Radius, 0) {
			return fmt.Errorf("dynamic radius %v: %w", d.Radius, geometry.ErrNonPositiveRadius)
		}
	default:
		return fmt.Errorf("dynamic mode %d: %w", d.Mode, config.ErrInvalidSettings)
	}
	e.dynamic = d
	return nil
}
