package repair

import (
	"math"
	"testing"

	"github.com/paulmach/orb"

	"github.com/AndySiamas/LayoutLens/pkg/geometry"
	"github.com/AndySiamas/LayoutLens/pkg/observability"
)

func box(cx, cy, w, d float64) geometry.Polygon {
	hw, hd := w/2, d/2
	return geometry.New([]orb.Point{
		{cx - hw, cy - hd},
		{cx + hw, cy - hd},
		{cx + hw, cy + hd},
		{cx - hw, cy + hd},
	})
}

func room(w, d float64) geometry.Polygon {
	return geometry.New([]orb.Point{{0, 0}, {w, 0}, {w, d}, {0, d}})
}

func lRoom() geometry.Polygon {
	return geometry.New([]orb.Point{{0, 0}, {4, 0}, {4, 2}, {2, 2}, {2, 4}, {0, 4}})
}

func near(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

func TestPushIntoEnvelope(t *testing.T) {
	tests := []struct {
		name    string
		room    geometry.Polygon
		element geometry.Polygon
		wantOK  bool
		wantDX  float64
		wantDY  float64
		exact   bool
	}{
		{
			name:    "already inside",
			room:    room(4, 3),
			element: box(2, 1.5, 1, 1),
			wantOK:  true,
			exact:   true,
		},
		{
			name:    "escapes right wall",
			room:    room(4, 3),
			element: box(4.9, 1, 2, 2),
			wantOK:  true,
			wantDX:  -1.95 * 1.05,
			wantDY:  0.05 * 1.05,
			exact:   true,
		},
		{
			name:    "below the floor line",
			room:    room(4, 3),
			element: box(2, 0.2, 1, 1),
			wantOK:  true,
			wantDX:  0,
			wantDY:  0.35 * 1.05,
			exact:   true,
		},
		{
			name:    "past the left wall along the inset edge",
			room:    room(4, 3),
			element: box(0.1, 1.5, 1.6, 0.8),
			wantOK:  true,
			wantDX:  0.75 * 1.05,
			wantDY:  0,
			exact:   true,
		},
		{
			name:    "into the notch of an l-shaped room",
			room:    lRoom(),
			element: box(3, 2.3, 1, 1),
			wantOK:  true,
		},
		{
			name:    "wider than the room",
			room:    room(4, 3),
			element: box(2, 1.5, 5, 1),
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			delta, ok := PushIntoEnvelope(tt.room, tt.element, DefaultOptions())
			if ok != tt.wantOK {
				t.Fatalf("PushIntoEnvelope() ok = %v, want %v (delta %v)", ok, tt.wantOK, delta)
			}
			if !ok {
				if delta != (Vec{}) {
					t.Errorf("PushIntoEnvelope() failed but returned delta %v", delta)
				}
				return
			}
			if tt.exact && (!near(delta.X, tt.wantDX, 1e-6) || !near(delta.Y, tt.wantDY, 1e-6)) {
				t.Errorf("PushIntoEnvelope() = %v, want (%v, %v)", delta, tt.wantDX, tt.wantDY)
			}
			moved := tt.element.Translate(delta.X, delta.Y)
			if !tt.room.Covers(moved, geometry.Epsilon) {
				t.Errorf("moved element %v not covered by room", moved.Vertices())
			}
		})
	}
}

// Any successful push must leave the element inside the unshrunk room.
func TestPushIntoEnvelopeResultIsCovered(t *testing.T) {
	r := room(4, 3)
	for _, cx := range []float64{-0.6, 0.1, 2, 3.9, 4.6} {
		for _, cy := range []float64{-0.4, 0.2, 1.5, 2.9, 3.5} {
			for _, yaw := range []float64{0, 90} {
				el := box(0, 0, 1.6, 0.8).Rotate(yaw).Translate(cx, cy)
				delta, ok := PushIntoEnvelope(r, el, DefaultOptions())
				if !ok {
					t.Errorf("PushIntoEnvelope(center=(%v,%v), yaw=%v) found no move", cx, cy, yaw)
					continue
				}
				if moved := el.Translate(delta.X, delta.Y); !r.Covers(moved, geometry.Epsilon) {
					t.Errorf("PushIntoEnvelope(center=(%v,%v), yaw=%v) = %v leaves element outside", cx, cy, yaw, delta)
				}
			}
		}
	}
}

func TestSeparateOverlap(t *testing.T) {
	tests := []struct {
		name   string
		room   geometry.Polygon
		anchor geometry.Polygon
		moving geometry.Polygon
		wantOK bool
		want   Vec
	}{
		{
			name:   "cheapest axis is +x",
			room:   room(4, 3),
			anchor: box(1, 1, 1, 1),
			moving: box(1.5, 1, 1, 1),
			wantOK: true,
			want:   Vec{0.6, 0},
		},
		{
			name:   "+x blocked by wall falls back to +y",
			room:   room(2.2, 3),
			anchor: box(1, 1, 1, 1),
			moving: box(1.5, 1, 1, 1),
			wantOK: true,
			want:   Vec{0, 1.1},
		},
		{
			name:   "no room to separate",
			room:   room(2, 2),
			anchor: box(1, 1, 1, 1),
			moving: box(1.5, 1, 1, 1),
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			delta, ok := SeparateOverlap(tt.room, tt.anchor, tt.moving, DefaultOptions())
			if ok != tt.wantOK {
				t.Fatalf("SeparateOverlap() ok = %v, want %v (delta %v)", ok, tt.wantOK, delta)
			}
			if !ok {
				return
			}
			if !near(delta.X, tt.want.X, 1e-6) || !near(delta.Y, tt.want.Y, 1e-6) {
				t.Errorf("SeparateOverlap() = %v, want %v", delta, tt.want)
			}
			moved := tt.moving.Translate(delta.X, delta.Y)
			if moved.Overlaps(tt.anchor) {
				t.Errorf("moved element still overlaps anchor")
			}
			if !tt.room.Covers(moved, geometry.Epsilon) {
				t.Errorf("moved element left the room")
			}
		})
	}
}

func TestSeparationCandidatesOrder(t *testing.T) {
	got := separationCandidates(box(1, 1, 1, 1), box(1.5, 1, 1, 1), 0.1)
	want := []Vec{{0.6, 0}, {0, 1.1}, {0, -1.1}, {-1.6, 0}}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if !near(got[i].X, want[i].X, 1e-9) || !near(got[i].Y, want[i].Y, 1e-9) {
			t.Errorf("candidate %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRepairHooks(t *testing.T) {
	observability.Reset()
	defer observability.Reset()

	rec := &recordingHooks{}
	observability.SetValidationHooks(rec)

	PushIntoEnvelope(room(4, 3), box(4.9, 1, 2, 2), DefaultOptions())
	SeparateOverlap(room(4, 3), box(1, 1, 1, 1), box(1.5, 1, 1, 1), DefaultOptions())

	if len(rec.events) != 2 {
		t.Fatalf("events = %v, want 2", rec.events)
	}
	if e := rec.events[0]; e.heuristic != observability.RepairPush || !e.found || e.iterations != 1 {
		t.Errorf("push event = %+v, want push found after 1 iteration", e)
	}
	if e := rec.events[1]; e.heuristic != observability.RepairSeparate || !e.found || e.iterations != 1 {
		t.Errorf("separate event = %+v, want separate found on first candidate", e)
	}
}

func TestOptionsWithDefaults(t *testing.T) {
	got := Options{Overshoot: 1.2}.withDefaults()
	want := DefaultOptions()
	want.Overshoot = 1.2
	if got != want {
		t.Errorf("withDefaults() = %+v, want %+v", got, want)
	}
}

type repairEvent struct {
	heuristic  string
	found      bool
	iterations int
}

type recordingHooks struct {
	observability.NoopValidationHooks
	events []repairEvent
}

func (r *recordingHooks) OnRepair(heuristic string, found bool, iterations int) {
	r.events = append(r.events, repairEvent{heuristic, found, iterations})
}
