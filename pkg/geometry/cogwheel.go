package geometry

import (
	"encoding/json"
	"fmt"
	"math"
)

// Cog wheel proportions.
const (
	// CogInnerRatio is the inner (root) radius as a fraction of the outer
	// radius for wheels built from a single radius.
	CogInnerRatio = 0.6
	// CogHoleRatio is the center hole radius as a fraction of the inner radius.
	CogHoleRatio = 0.3
	// MinCogTeeth is the smallest supported tooth count.
	MinCogTeeth = 3
)

// CogWheel is a toothed wheel: a closed polygon profile alternating between
// the inner (root) radius and the outer (tip) radius, with a center hole.
type CogWheel struct {
	center      Point2D
	outerRadius float64
	innerRadius float64
	teeth       int
}

// NewCogWheel creates a cog wheel. Both radii must be positive with
// inner < outer, and teeth must be at least MinCogTeeth.
func NewCogWheel(center Point2D, outerRadius, innerRadius float64, teeth int) (CogWheel, error) {
	if !center.IsFinite() || !isFinite(outerRadius) || !isFinite(innerRadius) {
		return CogWheel{}, fmt.Errorf("cog wheel at %v: %w", center, ErrNonFinite)
	}
	if outerRadius <= 0 || innerRadius <= 0 {
		return CogWheel{}, fmt.Errorf("cog wheel radii %v/%v: %w", outerRadius, innerRadius, ErrNonPositiveRadius)
	}
	if innerRadius >= outerRadius {
		return CogWheel{}, fmt.Errorf("cog wheel inner radius %v not below outer %v: %w", innerRadius, outerRadius, ErrInvalidCogWheel)
	}
	if teeth < MinCogTeeth {
		return CogWheel{}, fmt.Errorf("cog wheel with %d teeth: %w", teeth, ErrInvalidCogWheel)
	}
	return CogWheel{center: center, outerRadius: outerRadius, innerRadius: innerRadius, teeth: teeth}, nil
}

// Center returns the wheel center.
func (w CogWheel) Center() Point2D { return w.center }

// OuterRadius returns the tooth tip radius.
func (w CogWheel) OuterRadius() float64 { return w.outerRadius }

// InnerRadius returns the tooth root radius.
func (w CogWheel) InnerRadius() float64 { return w.innerRadius }

// Teeth returns the tooth count.
func (w CogWheel) Teeth() int { return w.teeth }

// Profile returns the closed outline, four vertices per tooth:
// root, rising flank top, tip end, falling flank bottom.
func (w CogWheel) Profile() []Point2D {
	step := 2 * math.Pi / float64(w.teeth)
	pts := make([]Point2D, 0, 4*w.teeth)
	for i := 0; i < w.teeth; i++ {
		a := float64(i) * step
		pts = append(pts,
			w.at(a, w.innerRadius),
			w.at(a+step*0.25, w.outerRadius),
			w.at(a+step*0.5, w.outerRadius),
			w.at(a+step*0.75, w.innerRadius),
		)
	}
	return pts
}

func (w CogWheel) at(angle, radius float64) Point2D {
	return Point2D{
		X: w.center.X + radius*math.Cos(angle),
		Y: w.center.Y + radius*math.Sin(angle),
	}
}

// Edges returns the profile as closed polyline segments.
func (w CogWheel) Edges() []Line2D {
	pts := w.Profile()
	edges := make([]Line2D, 0, len(pts))
	for i := range pts {
		edges = append(edges, Line2D{start: pts[i], end: pts[(i+1)%len(pts)]})
	}
	return edges
}

// CenterHole returns the center hole circle.
func (w CogWheel) CenterHole() Circle2D {
	return Circle2D{center: w.center, radius: w.innerRadius * CogHoleRatio}
}

// Contains reports whether p lies on the wheel body: inside the tooth
// profile and outside the center hole.
func (w CogWheel) Contains(p Point2D) bool {
	if w.center.DistanceTo(p) < w.innerRadius*CogHoleRatio {
		return false
	}
	return PointInPolygon(p, w.Profile())
}

// DistanceToPoint returns the distance from p to the profile outline.
func (w CogWheel) DistanceToPoint(p Point2D) float64 {
	return minEdgeDistance(w.Edges(), p)
}

// Bounds returns the bounding box of the profile.
func (w CogWheel) Bounds() Rect {
	return BoundsOf(w.Profile())
}

// Translate returns the wheel moved by v.
func (w CogWheel) Translate(v Vector2D) CogWheel {
	w.center = w.center.Add(v)
	return w
}

// Mirror reflects the wheel center across axis. The profile is regenerated
// from the parameters, so tooth phase is preserved.
func (w CogWheel) Mirror(axis Line2D) CogWheel {
	w.center = w.center.MirrorAcross(axis)
	return w
}

// String implements fmt.Stringer.
func (w CogWheel) String() string {
	return fmt.Sprintf("cog%v r=%.6g/%.6g teeth=%d", w.center, w.outerRadius, w.innerRadius, w.teeth)
}

type cogWheelJSON struct {
	Center      Point2D `json:"center"`
	OuterRadius float64 `json:"outerRadius"`
	InnerRadius float64 `json:"innerRadius"`
	Teeth       int     `json:"teeth"`
}

// MarshalJSON implements json.Marshaler.
func (w CogWheel) MarshalJSON() ([]byte, error) {
	return json.Marshal(cogWheelJSON{
		Center:      w.center,
		OuterRadius: w.outerRadius,
		InnerRadius: w.innerRadius,
		Teeth:       w.teeth,
	})
}

// UnmarshalJSON implements json.Unmarshaler and re-validates the wheel.
func (w *CogWheel) UnmarshalJSON(data []byte) error {
	var raw cogWheelJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	wheel, err := NewCogWheel(raw.Center, raw.OuterRadius, raw.InnerRadius, raw.Teeth)
	if err != nil {
		return err
	}
	*w = wheel
	return nil
}
