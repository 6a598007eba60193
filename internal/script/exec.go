package script

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/philipparndt/goconstruct/internal/config"
	"github.com/philipparndt/goconstruct/internal/element"
	"github.com/philipparndt/goconstruct/internal/engine"
	"github.com/philipparndt/goconstruct/internal/tool"
	"github.com/philipparndt/goconstruct/pkg/geometry"
)

// Warning is a statement whose construction was aborted. The script keeps
// running after a warning, the same way the interaction loop survives a
// failed construction.
type Warning struct {
	Line int
	Err  error
}

func (w Warning) String() string {
	return fmt.Sprintf("line %d: %v", w.Line, w.Err)
}

// Executor feeds script statements into an engine.
type Executor struct {
	eng *engine.Engine
	log *slog.Logger
}

// NewExecutor creates an executor for eng. A nil logger discards output.
func NewExecutor(eng *engine.Engine, log *slog.Logger) *Executor {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Executor{eng: eng, log: log}
}

// Run executes every statement in order. Construction errors become
// warnings; malformed statements (unknown tool, bad setting) stop the run.
// ctx is checked between statements.
func (x *Executor) Run(ctx context.Context, s *Script) ([]Warning, error) {
	var warnings []Warning
	for _, st := range s.Statements {
		if err := ctx.Err(); err != nil {
			return warnings, err
		}
		err := x.exec(st)
		if err == nil {
			continue
		}
		if isConstructionError(err) {
			x.log.Warn("statement skipped", "line", st.Pos.Line, "error", err)
			warnings = append(warnings, Warning{Line: st.Pos.Line, Err: err})
			continue
		}
		return warnings, fmt.Errorf("%s: %w", st.Pos, err)
	}
	return warnings, nil
}

func isConstructionError(err error) bool {
	for _, target := range []error{
		geometry.ErrNonFinite,
		geometry.ErrZeroLength,
		geometry.ErrNonPositiveRadius,
		geometry.ErrZeroVector,
		geometry.ErrInvalidCogWheel,
		geometry.ErrDegenerateShape,
		tool.ErrNotImplemented,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func (x *Executor) exec(st *Statement) error {
	e := x.eng
	switch {
	case st.Tool != nil:
		k, err := tool.ParseKind(st.Tool.Name)
		if err != nil {
			return err
		}
		e.SelectTool(k)
	case st.Click != nil:
		mods, err := modifiers(st.Click.Mods)
		if err != nil {
			return err
		}
		return e.PointerCommit(geometry.Point2D{X: st.Click.X, Y: st.Click.Y}, mods)
	case st.Drag != nil:
		d := st.Drag
		_, err := e.DragSelection(geometry.Point2D{X: d.X1, Y: d.Y1}, geometry.Point2D{X: d.X2, Y: d.Y2})
		return err
	case st.Mirror != nil:
		m := st.Mirror
		_, err := e.MirrorSelected(geometry.Point2D{X: m.X1, Y: m.Y1}, geometry.Point2D{X: m.X2, Y: m.Y2})
		return err
	case st.Select != nil:
		if strings.EqualFold(st.Select.What, "all") {
			e.Select(visibleIDs(e)...)
		} else {
			e.Select()
		}
	case st.Show != nil:
		e.ShowHidden(strings.EqualFold(st.Show.State, "on"))
	case st.Set != nil:
		p, err := config.ParsePatch(st.Set.Name, st.Set.Value)
		if err != nil {
			return err
		}
		return e.ChangeSettings(p)
	case st.Dynamic != nil:
		return e.SetDynamicInput(dynamicInput(st.Dynamic))
	default:
		return x.command(strings.ToLower(st.Command))
	}
	return nil
}

func (x *Executor) command(name string) error {
	e := x.eng
	switch name {
	case "cancel":
		e.Cancel()
	case "undo":
		e.Undo()
	case "redo":
		e.Redo()
	case "copy":
		e.Copy()
	case "paste":
		_, err := e.Paste()
		return err
	case "delete":
		e.DeleteSelected()
	case "hide":
		_, err := e.HideSelected()
		return err
	case "unhide":
		_, err := e.UnhideAll()
		return err
	case "clear":
		e.ClearCanvas()
	default:
		return fmt.Errorf("unknown command %q", name)
	}
	return nil
}

func modifiers(names []string) (tool.Modifiers, error) {
	var m tool.Modifiers
	for _, n := range names {
		switch strings.ToLower(n) {
		case "shift":
			m |= tool.Shift
		case "ctrl":
			m |= tool.Ctrl
		default:
			return 0, fmt.Errorf("unknown modifier %q", n)
		}
	}
	return m, nil
}

func dynamicInput(d *DynamicStmt) tool.DynamicInput {
	switch {
	case d.Distance != nil:
		in := tool.DynamicInput{Mode: tool.DynamicDistance, Distance: d.Distance.Value}
		if d.Distance.Angle != nil {
			in.Angle = *d.Distance.Angle
		}
		return in
	case d.Radius != nil:
		return tool.DynamicInput{Mode: tool.DynamicRadius, Radius: *d.Radius}
	default:
		return tool.DynamicInput{}
	}
}

func visibleIDs(e *engine.Engine) []element.ID {
	snap := e.Snapshot()
	var ids []element.ID
	for _, el := range snap.Elements {
		if !el.Hidden || snap.ShowHidden {
			ids = append(ids, el.ID)
		}
	}
	return ids
}

// RunFile parses and executes the script at path against a fresh engine.
func RunFile(ctx context.Context, path string, log *slog.Logger, opts ...engine.Option) (*engine.Engine, []Warning, error) {
	p, err := NewParser()
	if err != nil {
		return nil, nil, err
	}
	s, err := p.ParseFile(path)
	if err != nil {
		return nil, nil, err
	}
	eng, err := engine.New(append([]engine.Option{engine.WithLogger(log)}, opts...)...)
	if err != nil {
		return nil, nil, err
	}
	warnings, err := NewExecutor(eng, log).Run(ctx, s)
	return eng, warnings, err
}
