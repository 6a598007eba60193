package element

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/philipparndt/goconstruct/pkg/geometry"
)

// ID identifies an element within a store. Zero means "not yet assigned".
type ID uint64

// String implements fmt.Stringer.
func (id ID) String() string {
	return "#" + strconv.FormatUint(uint64(id), 10)
}

// Element is a tagged geometric record. The type tag is derived from the
// shape, so tag and payload cannot disagree.
type Element struct {
	ID     ID
	Color  string
	Shape  Shape
	Hidden bool
}

// New returns an unassigned element carrying s.
func New(s Shape, color string) Element {
	return Element{Shape: s, Color: color}
}

// Kind returns the element type tag.
func (e Element) Kind() Kind {
	return e.Shape.Kind()
}

// Translated returns a copy of e moved by v, keeping its ID.
func (e Element) Translated(v geometry.Vector2D) Element {
	e.Shape = Translate(e.Shape, v)
	return e
}

// Mirrored returns a copy of e reflected across axis, keeping its ID.
func (e Element) Mirrored(axis geometry.Line2D) Element {
	e.Shape = Mirror(e.Shape, axis)
	return e
}

// String implements fmt.Stringer.
func (e Element) String() string {
	return fmt.Sprintf("%v %s", e.ID, e.Kind())
}

type elementJSON struct {
	ID     ID              `json:"id"`
	Type   Kind            `json:"type"`
	Color  string          `json:"color"`
	Data   json.RawMessage `json:"data"`
	Hidden bool            `json:"hidden,omitempty"`
}

// MarshalJSON encodes the element as {"id","type","color","data","hidden"}.
func (e Element) MarshalJSON() ([]byte, error) {
	if e.Shape == nil {
		return nil, fmt.Errorf("element %v: no shape", e.ID)
	}
	data, err := marshalShape(e.Shape)
	if err != nil {
		return nil, err
	}
	return json.Marshal(elementJSON{
		ID:     e.ID,
		Type:   e.Kind(),
		Color:  e.Color,
		Data:   data,
		Hidden: e.Hidden,
	})
}

// UnmarshalJSON decodes the tagged form, dispatching on "type".
func (e *Element) UnmarshalJSON(b []byte) error {
	var raw elementJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	shape, err := unmarshalShape(raw.Type, raw.Data)
	if err != nil {
		return fmt.Errorf("element %v: %w", raw.ID, err)
	}
	*e = Element{ID: raw.ID, Color: raw.Color, Shape: shape, Hidden: raw.Hidden}
	return nil
}

func marshalShape(s Shape) ([]byte, error) {
	switch s := s.(type) {
	case PointShape:
		return json.Marshal(s.Point)
	case LineShape:
		return json.Marshal(s.Line)
	case CircleShape:
		return json.Marshal(s.Circle)
	case PerpendicularShape:
		return json.Marshal(s.Line)
	case TriangleShape:
		return json.Marshal(s.Triangle)
	case RectangleShape:
		return json.Marshal(s.Rectangle)
	case CogWheelShape:
		return json.Marshal(s.Wheel)
	default:
		return nil, fmt.Errorf("%s", unknownShape(s))
	}
}

func unmarshalShape(kind Kind, data []byte) (Shape, error) {
	switch kind {
	case KindPoint:
		var p geometry.Point2D
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, err
		}
		if _, err := geometry.NewPoint2D(p.X, p.Y); err != nil {
			return nil, err
		}
		return PointShape{Point: p}, nil
	case KindLine:
		var l geometry.Line2D
		if err := json.Unmarshal(data, &l); err != nil {
			return nil, err
		}
		return LineShape{Line: l}, nil
	case KindCircle:
		var c geometry.Circle2D
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, err
		}
		return CircleShape{Circle: c}, nil
	case KindPerpendicular:
		var l geometry.Line2D
		if err := json.Unmarshal(data, &l); err != nil {
			return nil, err
		}
		return PerpendicularShape{Line: l}, nil
	case KindTriangle:
		var t geometry.Triangle2D
		if err := json.Unmarshal(data, &t); err != nil {
			return nil, err
		}
		return TriangleShape{Triangle: t}, nil
	case KindRectangle:
		var r geometry.Rectangle2D
		if err := json.Unmarshal(data, &r); err != nil {
			return nil, err
		}
		return RectangleShape{Rectangle: r}, nil
	case KindCogWheel:
		var w geometry.CogWheel
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, err
		}
		return CogWheelShape{Wheel: w}, nil
	default:
		return nil, fmt.Errorf("unknown element type %q", kind)
	}
}
