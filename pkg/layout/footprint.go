package layout

import (
	"encoding/json"
	"fmt"
)

// Footprint kinds used as the JSON discriminator.
const (
	KindRect = "rect"
	KindPoly = "poly"
)

// Footprint is an element's 2D shape in its own local frame, centered at the
// local origin and before rotation. The only implementations are [Rect] and
// [Poly].
type Footprint interface {
	// Kind returns the JSON discriminator of the variant.
	Kind() string

	footprint()
}

// Rect is a rectangular footprint. Width runs along the local X axis and
// Depth along the local Y axis.
type Rect struct {
	Width float64
	Depth float64
}

// Poly is a polygonal footprint given by its local vertices.
type Poly struct {
	Vertices []Point2D
}

func (Rect) Kind() string { return KindRect }
func (Poly) Kind() string { return KindPoly }

func (Rect) footprint() {}
func (Poly) footprint() {}

// MarshalJSON encodes the rectangle with its discriminator.
func (r Rect) MarshalJSON() ([]byte, error) {
	return json.Marshal(rectJSON{Kind: KindRect, Width: r.Width, Depth: r.Depth})
}

// MarshalJSON encodes the polygon with its discriminator.
func (p Poly) MarshalJSON() ([]byte, error) {
	return json.Marshal(polyJSON{Kind: KindPoly, Vertices: p.Vertices})
}

type rectJSON struct {
	Kind  string  `json:"kind"`
	Width float64 `json:"width"`
	Depth float64 `json:"depth"`
}

type polyJSON struct {
	Kind     string    `json:"kind"`
	Vertices []Point2D `json:"vertices"`
}

// decodeFootprint resolves the variant named by the "kind" field.
func decodeFootprint(data json.RawMessage) (Footprint, error) {
	if len(data) == 0 || string(data) == "null" {
		return nil, fmt.Errorf("missing footprint")
	}

	var head struct {
		Kind string `json:"kind"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("footprint: %w", err)
	}

	switch head.Kind {
	case KindRect:
		var r rectJSON
		if err := strictUnmarshal(data, &r); err != nil {
			return nil, fmt.Errorf("rect footprint: %w", err)
		}
		return Rect{Width: r.Width, Depth: r.Depth}, nil
	case KindPoly:
		var p polyJSON
		if err := strictUnmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("poly footprint: %w", err)
		}
		return Poly{Vertices: p.Vertices}, nil
	default:
		return nil, fmt.Errorf("unknown footprint kind %q", head.Kind)
	}
}
