// Package config holds the canvas settings and engine tunables together with
// their defaults, validation and partial updates.
package config

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/philipparndt/goconstruct/pkg/geometry"
)

// ErrInvalidSettings is returned when a settings value is out of range.
var ErrInvalidSettings = errors.New("config: invalid settings")

// Settings controls snapping, display flags and per-tool parameters.
// All lengths are in world units.
type Settings struct {
	// Canvas
	GridSize          float64 `json:"gridSize"`
	SnapDistance      float64 `json:"snapDistance"`
	Tolerance         float64 `json:"tolerance"`
	SnapToGrid        bool    `json:"snapToGrid"`
	ShowGrid          bool    `json:"showGrid"`
	ShowScale         bool    `json:"showScale"`
	ShowIntersections bool    `json:"showIntersections"`

	// Tools
	PerpendicularLength float64           `json:"perpendicularLength"`
	FilletRadius        float64           `json:"filletRadius"`
	CogTeeth            int               `json:"cogTeeth"`
	PasteOffset         geometry.Vector2D `json:"pasteOffset"`
	MoveThreshold       float64           `json:"moveThreshold"`
	TrimMinLength       float64           `json:"trimMinLength"`
	DefaultColor        string            `json:"defaultColor"`

	// History
	HistoryLimit int `json:"historyLimit"`
}

// Default returns the settings used when nothing is configured.
func Default() Settings {
	return Settings{
		GridSize:            10,
		SnapDistance:        5,
		Tolerance:           1e-6,
		SnapToGrid:          false,
		ShowGrid:            true,
		ShowScale:           true,
		ShowIntersections:   true,
		PerpendicularLength: 100,
		FilletRadius:        10,
		CogTeeth:            12,
		PasteOffset:         geometry.Vector2D{X: 20, Y: 20},
		MoveThreshold:       1,
		TrimMinLength:       1e-3,
		DefaultColor:        "#000000",
		HistoryLimit:        50,
	}
}

// Validate checks every field. Unlike a sanitizing config it never coerces
// values; the first offending field is reported.
func (s Settings) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"gridSize", s.GridSize},
		{"snapDistance", s.SnapDistance},
		{"tolerance", s.Tolerance},
		{"perpendicularLength", s.PerpendicularLength},
		{"filletRadius", s.FilletRadius},
	}
	for _, f := range positive {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) || f.value <= 0 {
			return fmt.Errorf("%s must be positive, got %v: %w", f.name, f.value, ErrInvalidSettings)
		}
	}
	if s.MoveThreshold < 0 || math.IsNaN(s.MoveThreshold) {
		return fmt.Errorf("moveThreshold must not be negative, got %v: %w", s.MoveThreshold, ErrInvalidSettings)
	}
	if s.TrimMinLength < 0 || math.IsNaN(s.TrimMinLength) {
		return fmt.Errorf("trimMinLength must not be negative, got %v: %w", s.TrimMinLength, ErrInvalidSettings)
	}
	if s.CogTeeth < geometry.MinCogTeeth {
		return fmt.Errorf("cogTeeth must be at least %d, got %d: %w", geometry.MinCogTeeth, s.CogTeeth, ErrInvalidSettings)
	}
	if s.HistoryLimit < 1 {
		return fmt.Errorf("historyLimit must be at least 1, got %d: %w", s.HistoryLimit, ErrInvalidSettings)
	}
	if _, err := geometry.NewVector2D(s.PasteOffset.X, s.PasteOffset.Y); err != nil {
		return fmt.Errorf("pasteOffset: %w", ErrInvalidSettings)
	}
	return nil
}

// Patch is a partial settings update. Nil fields are left unchanged.
type Patch struct {
	GridSize            *float64
	SnapDistance        *float64
	Tolerance           *float64
	SnapToGrid          *bool
	ShowGrid            *bool
	ShowScale           *bool
	ShowIntersections   *bool
	PerpendicularLength *float64
	FilletRadius        *float64
	CogTeeth            *int
	PasteOffset         *geometry.Vector2D
	MoveThreshold       *float64
	TrimMinLength       *float64
	DefaultColor        *string
	HistoryLimit        *int
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p == Patch{}
}

// Apply returns s with p applied. The result is validated; on error s is
// returned unchanged alongside the error.
func (s Settings) Apply(p Patch) (Settings, error) {
	next := s
	setFloat(&next.GridSize, p.GridSize)
	setFloat(&next.SnapDistance, p.SnapDistance)
	setFloat(&next.Tolerance, p.Tolerance)
	setBool(&next.SnapToGrid, p.SnapToGrid)
	setBool(&next.ShowGrid, p.ShowGrid)
	setBool(&next.ShowScale, p.ShowScale)
	setBool(&next.ShowIntersections, p.ShowIntersections)
	setFloat(&next.PerpendicularLength, p.PerpendicularLength)
	setFloat(&next.FilletRadius, p.FilletRadius)
	if p.CogTeeth != nil {
		next.CogTeeth = *p.CogTeeth
	}
	if p.PasteOffset != nil {
		next.PasteOffset = *p.PasteOffset
	}
	setFloat(&next.MoveThreshold, p.MoveThreshold)
	setFloat(&next.TrimMinLength, p.TrimMinLength)
	if p.DefaultColor != nil {
		next.DefaultColor = *p.DefaultColor
	}
	if p.HistoryLimit != nil {
		next.HistoryLimit = *p.HistoryLimit
	}
	if err := next.Validate(); err != nil {
		return s, err
	}
	return next, nil
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

// Names lists the setting names accepted by ParsePatch.
var Names = []string{
	"grid", "snap", "tolerance", "snapToGrid", "showGrid", "showScale",
	"showIntersections", "perpendicularLength", "filletRadius", "cogTeeth",
	"pasteOffset", "moveThreshold", "trimMinLength", "color", "historyLimit",
}

// ParsePatch builds a single-field patch from a textual name and value, as
// used by `set` statements in scripts. Names are matched case-insensitively.
// pasteOffset takes "x,y".
func ParsePatch(name, value string) (Patch, error) {
	var p Patch
	var err error
	switch strings.ToLower(name) {
	case "grid", "gridsize":
		p.GridSize, err = parseFloat(value)
	case "snap", "snapdistance":
		p.SnapDistance, err = parseFloat(value)
	case "tolerance":
		p.Tolerance, err = parseFloat(value)
	case "snaptogrid":
		p.SnapToGrid, err = parseBool(value)
	case "showgrid":
		p.ShowGrid, err = parseBool(value)
	case "showscale":
		p.ShowScale, err = parseBool(value)
	case "showintersections":
		p.ShowIntersections, err = parseBool(value)
	case "perpendicularlength":
		p.PerpendicularLength, err = parseFloat(value)
	case "filletradius":
		p.FilletRadius, err = parseFloat(value)
	case "cogteeth":
		p.CogTeeth, err = parseInt(value)
	case "pasteoffset":
		var v geometry.Vector2D
		v, err = ParseVector(value)
		p.PasteOffset = &v
	case "movethreshold":
		p.MoveThreshold, err = parseFloat(value)
	case "trimminlength":
		p.TrimMinLength, err = parseFloat(value)
	case "color", "defaultcolor":
		p.DefaultColor = &value
	case "historylimit":
		p.HistoryLimit, err = parseInt(value)
	default:
		return Patch{}, fmt.Errorf("unknown setting %q: %w", name, ErrInvalidSettings)
	}
	if err != nil {
		return Patch{}, fmt.Errorf("setting %s=%q: %w", name, value, err)
	}
	return p, nil
}

// ParseVector parses "x,y" into a vector.
func ParseVector(s string) (geometry.Vector2D, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return geometry.Vector2D{}, fmt.Errorf("expected x,y, got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return geometry.Vector2D{}, err
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return geometry.Vector2D{}, err
	}
	return geometry.NewVector2D(x, y)
}

func parseFloat(s string) (*float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func parseInt(s string) (*int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func parseBool(s string) (*bool, error) {
	var v bool
	switch strings.ToLower(s) {
	case "on", "yes":
		v = true
	case "off", "no":
		v = false
	default:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return nil, err
		}
		v = b
	}
	return &v, nil
}
