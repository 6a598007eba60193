package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/philipparndt/goconstruct/internal/element"
	"github.com/philipparndt/goconstruct/internal/engine"
	"github.com/philipparndt/goconstruct/internal/script"
	"github.com/philipparndt/goconstruct/internal/snap"
	"github.com/philipparndt/goconstruct/internal/tool"
	"github.com/philipparndt/goconstruct/pkg/geometry"
)

func crossingLines(t *testing.T) *engine.Engine {
	t.Helper()
	e, err := engine.New()
	if err != nil {
		t.Fatalf("engine.New: %v", err)
	}
	e.SelectTool(tool.Line)
	for _, p := range []geometry.Point2D{{X: 0, Y: 0}, {X: 100, Y: 100}, {X: 0, Y: 100}, {X: 100, Y: 0}} {
		if err := e.PointerCommit(p, 0); err != nil {
			t.Fatalf("PointerCommit(%v): %v", p, err)
		}
	}
	return e
}

func TestText(t *testing.T) {
	var buf bytes.Buffer
	Text(&buf, crossingLines(t).Snapshot())
	out := buf.String()

	for _, want := range []string{
		"Tool: line",
		"Elements (6):",
		"line (0.000000, 0.000000) -> (100.000000, 100.000000)",
		"Min: (0.000000, 0.000000)",
		"Max: (100.000000, 100.000000)",
		"Edges: 2",
		"(50.000000, 50.000000) line-line",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Text output missing %q:\n%s", want, out)
		}
	}
}

func TestDescribeHidden(t *testing.T) {
	c, err := geometry.NewCircle2D(geometry.Point2D{X: 1, Y: 2}, 3)
	if err != nil {
		t.Fatalf("NewCircle2D: %v", err)
	}
	e := element.Element{ID: 7, Shape: element.CircleShape{Circle: c}, Hidden: true}
	got := Describe(e)
	want := "#7 circle center (1.000000, 2.000000), radius 3.000000 units [hidden]"
	if got != want {
		t.Errorf("Describe() = %q, want %q", got, want)
	}
}

func TestOutlinesSkipsHidden(t *testing.T) {
	elems := crossingLines(t).Elements()
	elems[0].Hidden = true
	outlines := Outlines(elems)
	if len(outlines) != len(elems)-1 {
		t.Errorf("Outlines() returned %d entries, want %d", len(outlines), len(elems)-1)
	}
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, crossingLines(t).Snapshot()); err != nil {
		t.Fatalf("JSON: %v", err)
	}
	var decoded struct {
		Elements      []element.Element `json:"elements"`
		Intersections []json.RawMessage `json:"intersections"`
		CanUndo       bool              `json:"canUndo"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(decoded.Elements) != 6 || !decoded.CanUndo {
		t.Errorf("decoded snapshot: %d elements, canUndo %t", len(decoded.Elements), decoded.CanUndo)
	}
	if len(decoded.Intersections) == 0 {
		t.Errorf("decoded snapshot has no intersections")
	}
}

func TestSnapAndWarnings(t *testing.T) {
	var buf bytes.Buffer
	Snap(&buf, geometry.Point2D{X: 1, Y: 0}, snap.Result{Kind: snap.Vertex, Source: 3})
	Warnings(&buf, []script.Warning{{Line: 4, Err: errors.New("boom")}})
	out := buf.String()
	for _, want := range []string{"Snapped: (0.000000, 0.000000) (vertex)", "Source: #3", "Distance: 1.000000 units", "line 4: boom"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
