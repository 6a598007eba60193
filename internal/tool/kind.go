// Package tool implements the per-tool click protocols of the construction
// engine. Every handler is a pure function from the accumulated clicks and a
// read-only view of the canvas to a Result describing what to commit.
package tool

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownTool is returned by ParseKind for unrecognized names.
	ErrUnknownTool = errors.New("tool: unknown tool")
	// ErrNotImplemented is returned by tools that have no committed behavior.
	ErrNotImplemented = errors.New("tool: not implemented")
)

// Kind identifies a tool.
type Kind string

const (
	Point         Kind = "point"
	Line          Kind = "line"
	Circle        Kind = "circle"
	Rectangle     Kind = "rectangle"
	Triangle      Kind = "triangle"
	Perpendicular Kind = "perpendicular"
	Mirror        Kind = "mirror"
	Move          Kind = "move"
	Copy          Kind = "copy"
	Trim          Kind = "trim"
	Fillet        Kind = "fillet"
	CogWheel      Kind = "cogwheel"
	Select        Kind = "select"
	Array         Kind = "array"
	Extend        Kind = "extend"
)

// Kinds lists every tool.
var Kinds = []Kind{
	Point, Line, Circle, Rectangle, Triangle, Perpendicular, Mirror,
	Move, Copy, Trim, Fillet, CogWheel, Select, Array, Extend,
}

var aliases = map[string]Kind{
	"perpendicular-bisector": Perpendicular,
	"bisector":               Perpendicular,
	"cog-wheel":              CogWheel,
	"cog":                    CogWheel,
	"rect":                   Rectangle,
}

// ParseKind resolves a tool name. Matching is case-insensitive and accepts
// a few aliases such as "perpendicular-bisector" and "cog-wheel".
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, k := range Kinds {
		if string(k) == name {
			return k, nil
		}
	}
	if k, ok := aliases[name]; ok {
		return k, nil
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnknownTool)
}

// Clicks returns the number of clicks the tool needs to commit without
// dynamic input. Unimplemented tools return 0.
func (k Kind) Clicks() int {
	switch k {
	case Point, Trim, Select:
		return 1
	case Line, Circle, Rectangle, Perpendicular, Mirror, Move, Copy, Fillet, CogWheel:
		return 2
	case Triangle:
		return 3
	default:
		return 0
	}
}

// Snaps reports whether clicks for this tool go through the snap resolver.
// Select and trim pick existing geometry and use the raw click position.
func (k Kind) Snaps() bool {
	return k != Select && k != Trim
}

// Modifiers is a bit set of keyboard modifiers held during a click.
type Modifiers uint8

const (
	Shift Modifiers = 1 << iota
	Ctrl
)

// Has reports whether m contains all bits of o.
func (m Modifiers) Has(o Modifiers) bool {
	return m&o == o
}

func (m Modifiers) String() string {
	var parts []string
	if m.Has(Shift) {
		parts = append(parts, "shift")
	}
	if m.Has(Ctrl) {
		parts = append(parts, "ctrl")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "+")
}

// DynamicMode selects which numeric value is supplied out of band.
type DynamicMode int

const (
	DynamicOff DynamicMode = iota
	DynamicDistance
	DynamicRadius
)

// DynamicInput lets line and circle commit on a single click. Angle is in
// degrees, counter-clockwise from the positive x axis.
type DynamicInput struct {
	Mode     DynamicMode `json:"mode"`
	Distance float64     `json:"distance,omitempty"`
	Angle    float64     `json:"angle,omitempty"`
	Radius   float64     `json:"radius,omitempty"`
}

// Active reports whether dynamic input is enabled.
func (d DynamicInput) Active() bool {
	return d.Mode != DynamicOff
}
