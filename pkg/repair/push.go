package repair

import (
	"github.com/AndySiamas/LayoutLens/pkg/geometry"
	"github.com/AndySiamas/LayoutLens/pkg/observability"
)

// minPush is the length below which a push step is considered stalled.
const minPush = 1e-9

// PushIntoEnvelope returns a translation that moves element fully inside room.
//
// The target is room shrunk by opts.InsetMargin (or room itself when the
// inset leaves nothing). An element already inside the target gets a zero
// delta. Otherwise each step finds the vertices of the outside fragment that
// are still outside the target, takes the one farthest from the target's
// boundary and moves the element by that displacement times opts.Overshoot.
// The loop runs at most opts.MaxIterations steps. The result is accepted only
// if the moved element is covered by the unshrunk room; otherwise ok is false.
func PushIntoEnvelope(room, element geometry.Polygon, opts Options) (delta Vec, ok bool) {
	opts = opts.withDefaults()

	safe, inset := room.Inset(opts.InsetMargin)
	if !inset {
		safe = room
	}
	if safe.Covers(element, geometry.Epsilon) {
		observability.Validation().OnRepair(observability.RepairPush, true, 0)
		return Vec{}, true
	}

	var total Vec
	moved := element
	steps := 0
	for ; steps < opts.MaxIterations; steps++ {
		if safe.Covers(moved, geometry.Epsilon) {
			break
		}
		outside := moved.Difference(safe)
		if len(outside) == 0 {
			// The clipper can miss a sliver along a shared edge; the
			// element's own vertices still show what is outside.
			outside = []geometry.Polygon{moved}
		}
		step, found := worstVertexPush(safe, outside)
		if !found {
			break
		}
		step = step.Scale(opts.Overshoot)
		total = total.Add(step)
		moved = moved.Translate(step.X, step.Y)
	}

	ok = room.Covers(moved, geometry.Epsilon)
	observability.Validation().OnRepair(observability.RepairPush, ok, steps)
	if !ok {
		return Vec{}, false
	}
	return total, true
}

// worstVertexPush returns the largest vertex-to-boundary displacement among
// the fragment vertices that lie outside safe.
func worstVertexPush(safe geometry.Polygon, fragments []geometry.Polygon) (Vec, bool) {
	var best Vec
	bestDist := -1.0
	for _, frag := range fragments {
		for _, v := range frag.Vertices() {
			if safe.CoversPoint(v, 0) {
				continue
			}
			target := safe.NearestBoundaryPoint(v)
			d := Vec{target[0] - v[0], target[1] - v[1]}
			if l := d.Len(); l > bestDist {
				bestDist = l
				best = d
			}
		}
	}
	if bestDist <= minPush {
		return Vec{}, false
	}
	return best, true
}
