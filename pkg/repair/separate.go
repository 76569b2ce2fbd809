package repair

import (
	"sort"

	"github.com/AndySiamas/LayoutLens/pkg/geometry"
	"github.com/AndySiamas/LayoutLens/pkg/observability"
)

// SeparateOverlap returns a translation of moving that removes its overlap
// with anchor while keeping it inside room. Touching is allowed.
//
// Candidates are the four axis-aligned moves that clear the bounding boxes
// (+x, -x, +y, -y), each padded by opts.SeparationMargin, tried in order of
// increasing |dx|+|dy|. A candidate that leaves the room is corrected with
// PushIntoEnvelope and the correction added to it. The first candidate that
// ends inside room without overlapping anchor wins.
func SeparateOverlap(room, anchor, moving geometry.Polygon, opts Options) (delta Vec, ok bool) {
	opts = opts.withDefaults()

	tried := 0
	for _, cand := range separationCandidates(anchor, moving, opts.SeparationMargin) {
		tried++
		total := cand
		moved := moving.Translate(total.X, total.Y)

		if !room.Covers(moved, geometry.Epsilon) {
			fix, found := PushIntoEnvelope(room, moved, opts)
			if !found {
				continue
			}
			total = total.Add(fix)
			moved = moving.Translate(total.X, total.Y)
		}

		if !room.Covers(moved, geometry.Epsilon) {
			continue
		}
		if geometry.AnyOverlap([]geometry.Polygon{anchor, moved}) {
			continue
		}
		observability.Validation().OnRepair(observability.RepairSeparate, true, tried)
		return total, true
	}

	observability.Validation().OnRepair(observability.RepairSeparate, false, tried)
	return Vec{}, false
}

// separationCandidates returns the clearing moves for moving, cheapest first.
func separationCandidates(anchor, moving geometry.Polygon, margin float64) []Vec {
	a, b := anchor.Bound(), moving.Bound()

	right := (a.Max[0] - b.Min[0]) + margin
	left := (b.Max[0] - a.Min[0]) + margin
	up := (a.Max[1] - b.Min[1]) + margin
	down := (b.Max[1] - a.Min[1]) + margin

	cands := []Vec{
		{right, 0},
		{-left, 0},
		{0, up},
		{0, -down},
	}
	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].Manhattan() < cands[j].Manhattan()
	})
	return cands
}
