package layout

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AndySiamas/LayoutLens/pkg/errors"
)

const samplePlan = `{
	"space": {
		"boundary": [{"x": 0, "y": 0}, {"x": 4, "y": 0}, {"x": 4, "y": 3}, {"x": 0, "y": 3}],
		"openings": [{"kind": "door", "edge_index": 0, "center": 0.5, "width": 1.0}]
	},
	"elements": [
		{
			"id": "bed_01",
			"label": "Bed",
			"transform": {"x": 2, "y": 1.5, "yaw_deg": 90},
			"footprint": {"kind": "rect", "width": 2.0, "depth": 1.6}
		},
		{
			"id": "lamp_01",
			"label": "Lamp",
			"placement": "on",
			"transform": {"x": 1, "y": 1},
			"footprint": {"kind": "poly", "vertices": [{"x": 0, "y": 0}, {"x": 0.2, "y": 0}, {"x": 0, "y": 0.2}]}
		}
	]
}`

func TestReadPlan(t *testing.T) {
	p, err := ReadPlan(strings.NewReader(samplePlan))
	if err != nil {
		t.Fatalf("ReadPlan() error = %v", err)
	}

	if p.Space.Height != DefaultHeight {
		t.Errorf("Height = %v, want default %v", p.Space.Height, DefaultHeight)
	}
	if p.RoomGridSize != DefaultRoomGridSize {
		t.Errorf("RoomGridSize = %v, want default %v", p.RoomGridSize, DefaultRoomGridSize)
	}
	if len(p.Elements) != 2 {
		t.Fatalf("len(Elements) = %d, want 2", len(p.Elements))
	}

	bed := p.Elements[0]
	if bed.Placement != Floor {
		t.Errorf("bed placement = %v, want floor (default)", bed.Placement)
	}
	rect, ok := bed.Footprint.(Rect)
	if !ok {
		t.Fatalf("bed footprint = %T, want Rect", bed.Footprint)
	}
	if rect.Width != 2.0 || rect.Depth != 1.6 {
		t.Errorf("bed rect = %+v, want 2.0x1.6", rect)
	}
	if bed.Transform.YawDeg != 90 {
		t.Errorf("bed yaw = %v, want 90", bed.Transform.YawDeg)
	}

	lamp := p.Elements[1]
	if lamp.Placement != On {
		t.Errorf("lamp placement = %v, want on", lamp.Placement)
	}
	poly, ok := lamp.Footprint.(Poly)
	if !ok {
		t.Fatalf("lamp footprint = %T, want Poly", lamp.Footprint)
	}
	if len(poly.Vertices) != 3 {
		t.Errorf("lamp vertices = %d, want 3", len(poly.Vertices))
	}

	if err := CheckPlan(p); err != nil {
		t.Errorf("CheckPlan() error = %v", err)
	}
}

func TestReadPlanRejectsMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unknown top-level key", `{"space": {"boundary": []}, "elements": [], "extra": 1}`},
		{"unknown envelope key", `{"space": {"boundary": [], "floor": "oak"}, "elements": []}`},
		{"unknown element key", `{"space": {"boundary": []}, "elements": [{"id": "a", "label": "A", "transform": {"x": 0, "y": 0}, "footprint": {"kind": "rect", "width": 1, "depth": 1}, "color": "red"}]}`},
		{"unknown footprint kind", `{"space": {"boundary": []}, "elements": [{"id": "a", "label": "A", "transform": {"x": 0, "y": 0}, "footprint": {"kind": "circle", "radius": 1}}]}`},
		{"rect with vertices", `{"space": {"boundary": []}, "elements": [{"id": "a", "label": "A", "transform": {"x": 0, "y": 0}, "footprint": {"kind": "rect", "width": 1, "depth": 1, "vertices": []}}]}`},
		{"missing footprint", `{"space": {"boundary": []}, "elements": [{"id": "a", "label": "A", "transform": {"x": 0, "y": 0}}]}`},
		{"unknown placement", `{"space": {"boundary": []}, "elements": [{"id": "a", "label": "A", "placement": "ceiling", "transform": {"x": 0, "y": 0}, "footprint": {"kind": "rect", "width": 1, "depth": 1}}]}`},
		{"unknown opening kind", `{"space": {"boundary": [], "openings": [{"kind": "hatch", "edge_index": 0, "center": 0.5, "width": 1}]}, "elements": []}`},
		{"not json", `space: {}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadPlan(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("ReadPlan() error = nil, want error")
			}
			if !errors.Is(err, errors.ErrCodeInvalidPlan) {
				t.Errorf("ReadPlan() code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidPlan)
			}
		})
	}
}

func TestPlanRoundTrip(t *testing.T) {
	p, err := ReadPlan(strings.NewReader(samplePlan))
	if err != nil {
		t.Fatalf("ReadPlan() error = %v", err)
	}

	path := filepath.Join(t.TempDir(), "plan.json")
	if err := WritePlanFile(p, path); err != nil {
		t.Fatalf("WritePlanFile() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte(`"kind": "rect"`)) || !bytes.Contains(data, []byte(`"placement": "on"`)) {
		t.Errorf("written plan missing discriminators:\n%s", data)
	}

	back, err := ReadPlanFile(path)
	if err != nil {
		t.Fatalf("ReadPlanFile() error = %v", err)
	}
	if back.Elements[1].Footprint.Kind() != KindPoly {
		t.Errorf("round-tripped footprint kind = %q, want %q", back.Elements[1].Footprint.Kind(), KindPoly)
	}
	if back.Space.Openings[0].Kind != OpeningDoor {
		t.Errorf("round-tripped opening kind = %q, want door", back.Space.Openings[0].Kind)
	}
}

func TestReadPlanFileNotFound(t *testing.T) {
	_, err := ReadPlanFile(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("ReadPlanFile() error = %v, want %v", err, errors.ErrCodeFileNotFound)
	}
}

func TestReadEnvelope(t *testing.T) {
	env, err := ReadEnvelope(strings.NewReader(`{"boundary": [{"x": 0, "y": 0}, {"x": 4, "y": 0}, {"x": 4, "y": 3}, {"x": 0, "y": 3}], "height": 3.1}`))
	if err != nil {
		t.Fatalf("ReadEnvelope() error = %v", err)
	}
	if env.Height != 3.1 {
		t.Errorf("Height = %v, want 3.1", env.Height)
	}
	start, end := env.Edge(3)
	if start != (Point2D{0, 3}) || end != (Point2D{0, 0}) {
		t.Errorf("Edge(3) = %v -> %v, want wrap-around edge", start, end)
	}

	if _, err := ReadEnvelope(strings.NewReader(`{"boundary": [], "walls": 4}`)); !errors.Is(err, errors.ErrCodeInvalidEnvelope) {
		t.Errorf("ReadEnvelope() unknown key error = %v, want %v", err, errors.ErrCodeInvalidEnvelope)
	}
}

func TestParsePlacement(t *testing.T) {
	tests := []struct {
		input   string
		want    Placement
		wantErr bool
	}{
		{"", Floor, false},
		{"floor", Floor, false},
		{"on", On, false},
		{"wall", Wall, false},
		{"Wall", Floor, true},
		{"ceiling", Floor, true},
	}

	for _, tt := range tests {
		got, err := ParsePlacement(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePlacement(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParsePlacement(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}

	if s := Placement(7).String(); s != "placement(7)" {
		t.Errorf("String() = %q, want placement(7)", s)
	}
}

func square() Envelope {
	return Envelope{
		Boundary: []Point2D{{0, 0}, {4, 0}, {4, 3}, {0, 3}},
		Height:   2.7,
	}
}

func TestCheckEnvelope(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(e *Envelope)
		wantErr bool
	}{
		{"valid", func(e *Envelope) {}, false},
		{"valid opening", func(e *Envelope) {
			e.Openings = []Opening{{Kind: OpeningWindow, EdgeIndex: 1, Center: 0.5, Width: 1}}
		}, false},
		{"three points", func(e *Envelope) { e.Boundary = e.Boundary[:3] }, true},
		{"zero height", func(e *Envelope) { e.Height = 0 }, true},
		{"negative edge index", func(e *Envelope) {
			e.Openings = []Opening{{Kind: OpeningDoor, EdgeIndex: -1, Center: 0.5, Width: 1}}
		}, true},
		{"center above one", func(e *Envelope) {
			e.Openings = []Opening{{Kind: OpeningDoor, EdgeIndex: 0, Center: 1.2, Width: 1}}
		}, true},
		{"zero width", func(e *Envelope) {
			e.Openings = []Opening{{Kind: OpeningDoor, EdgeIndex: 0, Center: 0.5, Width: 0}}
		}, true},
		{"missing kind", func(e *Envelope) {
			e.Openings = []Opening{{EdgeIndex: 0, Center: 0.5, Width: 1}}
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := square()
			tt.mutate(&e)
			err := CheckEnvelope(&e)
			if (err != nil) != tt.wantErr {
				t.Errorf("CheckEnvelope() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidEnvelope) {
				t.Errorf("CheckEnvelope() code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidEnvelope)
			}
		})
	}
}

func TestCheckElement(t *testing.T) {
	base := Element{
		ID:        "desk_01",
		Label:     "Desk",
		Transform: Transform{X: 1, Y: 1},
		Footprint: Rect{Width: 1.2, Depth: 0.6},
	}

	tests := []struct {
		name     string
		mutate   func(el *Element)
		wantCode errors.Code
	}{
		{"valid", func(el *Element) {}, ""},
		{"bad id", func(el *Element) { el.ID = "Desk-1" }, errors.ErrCodeInvalidElementID},
		{"empty label", func(el *Element) { el.Label = "" }, errors.ErrCodeInvalidPlan},
		{"zero depth", func(el *Element) { el.Footprint = Rect{Width: 1} }, errors.ErrCodeInvalidPlan},
		{"two vertices", func(el *Element) {
			el.Footprint = Poly{Vertices: []Point2D{{0, 0}, {1, 0}}}
		}, errors.ErrCodeInvalidPlan},
		{"nil footprint", func(el *Element) { el.Footprint = nil }, errors.ErrCodeInvalidPlan},
		{"pointer footprint", func(el *Element) { el.Footprint = &Rect{Width: 1, Depth: 1} }, errors.ErrCodeUnsupported},
		{"bad placement", func(el *Element) { el.Placement = Placement(9) }, errors.ErrCodeInvalidPlan},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el := base
			tt.mutate(&el)
			err := CheckElement(el)
			if got := errors.GetCode(err); got != tt.wantCode {
				t.Errorf("CheckElement() code = %q, want %q (err = %v)", got, tt.wantCode, err)
			}
		})
	}
}
