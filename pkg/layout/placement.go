package layout

import "fmt"

// Placement is how an element is installed. It selects which spatial rules
// apply during validation.
type Placement int

const (
	// Floor items occupy floor space: the whole footprint must be inside the
	// room and must not overlap other floor items.
	Floor Placement = iota
	// On items sit on top of another element. Only the center must be inside.
	On
	// Wall items are wall-mounted. The center must be inside and near a wall.
	Wall
)

var placementNames = [...]string{
	Floor: "floor",
	On:    "on",
	Wall:  "wall",
}

// String returns the wire name of the placement.
func (p Placement) String() string {
	if p < 0 || int(p) >= len(placementNames) {
		return fmt.Sprintf("placement(%d)", int(p))
	}
	return placementNames[p]
}

// ParsePlacement parses a wire name. The empty string means [Floor].
func ParsePlacement(s string) (Placement, error) {
	switch s {
	case "", "floor":
		return Floor, nil
	case "on":
		return On, nil
	case "wall":
		return Wall, nil
	}
	return Floor, fmt.Errorf("unknown placement %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (p Placement) MarshalText() ([]byte, error) {
	if p < 0 || int(p) >= len(placementNames) {
		return nil, fmt.Errorf("invalid placement %d", int(p))
	}
	return []byte(placementNames[p]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Placement) UnmarshalText(text []byte) error {
	v, err := ParsePlacement(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
