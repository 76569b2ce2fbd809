package layout

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Defaults applied when the corresponding JSON field is absent.
const (
	DefaultHeight       = 2.7
	DefaultRoomGridSize = 0.25
)

// Point2D is a position in meters.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// OpeningKind is the high-level category of a boundary opening.
type OpeningKind string

// Opening kinds.
const (
	OpeningDoor   OpeningKind = "door"
	OpeningWindow OpeningKind = "window"
	OpeningOther  OpeningKind = "other"
)

// UnmarshalText rejects unknown opening kinds.
func (k *OpeningKind) UnmarshalText(text []byte) error {
	switch v := OpeningKind(text); v {
	case OpeningDoor, OpeningWindow, OpeningOther:
		*k = v
		return nil
	default:
		return fmt.Errorf("unknown opening kind %q", string(text))
	}
}

// Opening is a door, window or other gap anchored to one boundary edge.
//
// Edge i joins Boundary[i] and Boundary[(i+1) mod n]. Center is the
// normalized position of the opening's midpoint along that edge.
type Opening struct {
	Kind      OpeningKind `json:"kind"`
	EdgeIndex int         `json:"edge_index"`
	Center    float64     `json:"center"`
	Width     float64     `json:"width"`
}

// Envelope is the room container: boundary polygon, ceiling height and openings.
type Envelope struct {
	Boundary []Point2D `json:"boundary"`
	Height   float64   `json:"height"`
	Openings []Opening `json:"openings,omitempty"`
}

// UnmarshalJSON decodes strictly and applies the default height.
func (e *Envelope) UnmarshalJSON(data []byte) error {
	type envelopeJSON Envelope
	v := envelopeJSON{Height: DefaultHeight}
	if err := strictUnmarshal(data, &v); err != nil {
		return err
	}
	*e = Envelope(v)
	return nil
}

// Edge returns the endpoints of boundary edge i.
func (e Envelope) Edge(i int) (start, end Point2D) {
	n := len(e.Boundary)
	return e.Boundary[i], e.Boundary[(i+1)%n]
}

// Transform places an element: center position in meters and yaw in degrees.
// Positive yaw is counter-clockwise.
type Transform struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	YawDeg float64 `json:"yaw_deg"`
}

// Element is a placed item.
type Element struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	Placement Placement `json:"placement"`
	Transform Transform `json:"transform"`
	Footprint Footprint `json:"footprint"`
}

// Center returns the element's world-space center.
func (e Element) Center() Point2D {
	return Point2D{X: e.Transform.X, Y: e.Transform.Y}
}

// UnmarshalJSON decodes strictly, resolving the footprint variant from its
// "kind" discriminator.
func (e *Element) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID        string          `json:"id"`
		Label     string          `json:"label"`
		Placement Placement       `json:"placement"`
		Transform Transform       `json:"transform"`
		Footprint json.RawMessage `json:"footprint"`
	}
	if err := strictUnmarshal(data, &raw); err != nil {
		return err
	}

	fp, err := decodeFootprint(raw.Footprint)
	if err != nil {
		return fmt.Errorf("element %q: %w", raw.ID, err)
	}

	*e = Element{
		ID:        raw.ID,
		Label:     raw.Label,
		Placement: raw.Placement,
		Transform: raw.Transform,
		Footprint: fp,
	}
	return nil
}

// Plan is one room: its envelope and the elements placed in it.
// The validation engine reads a plan and never mutates it.
type Plan struct {
	Space        Envelope  `json:"space"`
	Elements     []Element `json:"elements"`
	RoomGridSize float64   `json:"room_grid_size"`
}

// UnmarshalJSON decodes strictly and applies the default grid size.
func (p *Plan) UnmarshalJSON(data []byte) error {
	type planJSON Plan
	v := planJSON{RoomGridSize: DefaultRoomGridSize}
	if err := strictUnmarshal(data, &v); err != nil {
		return err
	}
	*p = Plan(v)
	return nil
}

// strictUnmarshal decodes data into v, rejecting unknown fields and
// trailing content.
func strictUnmarshal(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return fmt.Errorf("unexpected trailing data")
	}
	return nil
}
