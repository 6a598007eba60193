// Package engine is the interactive construction state machine. It owns the
// element store, the selection, the undo history, the settings and the
// active tool, and exposes one method per input event.
//
// An Engine is driven by a single interaction loop and is not safe for
// concurrent use. Every method runs to completion without blocking.
package engine

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/philipparndt/goconstruct/internal/config"
	"github.com/philipparndt/goconstruct/internal/element"
	"github.com/philipparndt/goconstruct/internal/history"
	"github.com/philipparndt/goconstruct/internal/intersection"
	"github.com/philipparndt/goconstruct/internal/selection"
	"github.com/philipparndt/goconstruct/internal/tool"
	"github.com/philipparndt/goconstruct/pkg/geometry"
)

// Settings is an alias for config.Settings.
type Settings = config.Settings

// Engine is the single owned state aggregate.
type Engine struct {
	log      *slog.Logger
	settings config.Settings

	store *element.Store
	sel   *selection.State
	hist  *history.History

	tool    tool.Kind
	points  []geometry.Point2D
	dynamic tool.DynamicInput

	intersections []intersection.Info
}

// New creates an engine with an empty canvas and the select tool active.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		log:      newNopLogger(),
		settings: config.Default(),
		store:    element.NewStore(),
		sel:      selection.New(),
		tool:     tool.Select,
	}
	for _, opt := range opts {
		opt(e)
	}
	if err := e.settings.Validate(); err != nil {
		return nil, fmt.Errorf("engine settings: %w", err)
	}
	e.hist = history.New(e.settings.HistoryLimit, nil)
	return e, nil
}

// Snapshot is the read-only output surface polled by a renderer after each
// input event.
type Snapshot struct {
	Elements      []element.Element   `json:"elements"`
	Intersections []intersection.Info `json:"intersections"`
	Selection     []element.ID        `json:"selection"`
	CanUndo       bool                `json:"canUndo"`
	CanRedo       bool                `json:"canRedo"`
	Tool          tool.Kind           `json:"tool"`
	Pending       []geometry.Point2D  `json:"pending"`
	Dynamic       tool.DynamicInput   `json:"dynamic"`
	ShowHidden    bool                `json:"showHidden"`
	Clipboard     int                 `json:"clipboard"`
	Settings      config.Settings     `json:"settings"`
}

// Snapshot returns a copy of the current state. Intersections are left out
// when their display is switched off; they still take part in snapping.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Elements:   e.store.All(),
		Selection:  e.sel.Selected(),
		CanUndo:    e.hist.CanUndo(),
		CanRedo:    e.hist.CanRedo(),
		Tool:       e.tool,
		Pending:    slices.Clone(e.points),
		Dynamic:    e.dynamic,
		ShowHidden: e.sel.ShowHidden(),
		Clipboard:  len(e.sel.Clipboard()),
		Settings:   e.settings,
	}
	if e.settings.ShowIntersections {
		s.Intersections = slices.Clone(e.intersections)
	}
	return s
}

// Tool returns the active tool.
func (e *Engine) Tool() tool.Kind { return e.tool }

// Settings returns the current settings.
func (e *Engine) Settings() config.Settings { return e.settings }

// Elements returns the elements in insertion order.
func (e *Engine) Elements() []element.Element { return e.store.All() }

// Intersections returns the aggregated intersections regardless of the
// display flag.
func (e *Engine) Intersections() []intersection.Info {
	return slices.Clone(e.intersections)
}

// Selected returns the selected IDs.
func (e *Engine) Selected() []element.ID { return e.sel.Selected() }

// interactive returns the elements clicks can pick or snap to.
func (e *Engine) interactive() []element.Element {
	return e.sel.Interactive(e.store.All())
}

// commit runs after every store mutation: intersections are recomputed,
// dangling selection IDs dropped and the new state offered to history.
func (e *Engine) commit(reason string) {
	e.refresh()
	if e.hist.Record(e.store.Snapshot()) {
		e.log.Debug("history recorded", "reason", reason, "snapshots", e.hist.Len())
	}
}

func (e *Engine) refresh() {
	e.intersections = intersection.Aggregate(e.store.All(), e.settings.Tolerance)
	e.sel.Prune(e.store)
}

// apply commits a tool result all or nothing.
func (e *Engine) apply(res tool.Result) ([]element.Element, error) {
	before := e.store.Snapshot()
	rollback := func(err error) ([]element.Element, error) {
		e.store.Restore(before)
		return nil, err
	}

	e.store.Remove(res.Remove...)
	for _, u := range res.Update {
		if err := e.store.Replace(u); err != nil {
			return rollback(err)
		}
	}
	added := make([]element.Element, 0, len(res.Add))
	for _, a := range res.Add {
		stored, err := e.store.Add(a)
		if err != nil {
			return rollback(err)
		}
		added = append(added, stored)
	}
	return added, nil
}
