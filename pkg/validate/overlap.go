package validate

import (
	"fmt"
	"sort"

	"github.com/dhconnelly/rtreego"

	"github.com/AndySiamas/LayoutLens/pkg/geometry"
	"github.com/AndySiamas/LayoutLens/pkg/layout"
	"github.com/AndySiamas/LayoutLens/pkg/repair"
)

// R-tree fan-out for the broad phase.
const (
	rtreeMinChildren = 2
	rtreeMaxChildren = 8
)

// minExtent keeps degenerate bounding boxes indexable; rtreego rejects
// zero-length sides.
const minExtent = 1e-9

// indexed is a floor element in the broad-phase index. seq is its position
// among the floor elements.
type indexed struct {
	seq  int
	rect rtreego.Rect
}

func (x *indexed) Bounds() rtreego.Rect { return x.rect }

// checkOverlaps reports every pair of floor elements whose shared area
// exceeds the tolerance. Pairs are visited in plan order. Once more than
// MaxReportedOverlaps pairs are found, the individual issues are replaced
// by one summary issue.
func (v *Validator) checkOverlaps(r *Report, st *planState) {
	floor := floorIndices(st.plan)
	if len(floor) < 2 {
		return
	}

	var issues []Issue
	count := 0
	for _, pair := range candidatePairs(st.polys, floor) {
		ia, ib := floor[pair[0]], floor[pair[1]]
		a, b := st.polys[ia], st.polys[ib]

		area := a.IntersectionArea(b)
		// Touching is not an overlap, and neither is a sliver within tolerance.
		if area <= geometry.AreaEpsilon || area <= v.opts.OverlapAreaTolerance {
			continue
		}

		count++
		if count > v.opts.MaxReportedOverlaps {
			r.add(Issue{
				Code: IssueOverlapLimit,
				Message: fmt.Sprintf("More than %d overlapping floor-element pairs detected. "+
					"Spread floor elements out / reduce sizes and retry.", v.opts.MaxReportedOverlaps),
			})
			return
		}
		issues = append(issues, v.overlapIssue(st, st.plan.Elements[ia], a, st.plan.Elements[ib], b))
	}

	for _, is := range issues {
		r.add(is)
	}
}

// overlapIssue proposes a move for the second element of the pair.
func (v *Validator) overlapIssue(st *planState, ea layout.Element, a geometry.Polygon, eb layout.Element, b geometry.Polygon) Issue {
	ids := []string{ea.ID, eb.ID}
	delta, ok := repair.SeparateOverlap(st.tolerant, a, b, v.opts.repair())
	if !ok {
		return Issue{
			Code:     IssueFloorOverlap,
			Elements: ids,
			Message: fmt.Sprintf("Floor elements overlap: '%s' (%s) and '%s' (%s). "+
				"Unable to find a simple nudge for '%s' that stays inside the room and removes the overlap. "+
				"Resize/rotate/move one of them, or delete a smaller/less important item.",
				ea.ID, ea.Label, eb.ID, eb.Label, eb.ID),
		}
	}

	s := suggest(eb, delta)
	return Issue{
		Code:       IssueFloorOverlap,
		Elements:   ids,
		Suggestion: s,
		Message: fmt.Sprintf("Floor elements overlap: '%s' (%s) and '%s' (%s). "+
			"Move ONLY '%s' by about Δx=%.2fm, Δy=%.2fm to new center=(%.2f, %.2f), "+
			"or resize/rotate it to eliminate the overlap.",
			ea.ID, ea.Label, eb.ID, eb.Label, eb.ID, s.DX, s.DY, s.NewX, s.NewY),
	}
}

// candidatePairs returns the (a, b) positions in floor, a < b, whose bounding
// boxes intersect, sorted lexicographically.
func candidatePairs(polys []geometry.Polygon, floor []int) [][2]int {
	items := make([]*indexed, len(floor))
	objs := make([]rtreego.Spatial, len(floor))
	for seq, idx := range floor {
		items[seq] = &indexed{seq: seq, rect: boundsRect(polys[idx])}
		objs[seq] = items[seq]
	}
	tree := rtreego.NewTree(2, rtreeMinChildren, rtreeMaxChildren, objs...)

	var pairs [][2]int
	for _, it := range items {
		for _, hit := range tree.SearchIntersect(it.rect) {
			other := hit.(*indexed)
			if other.seq > it.seq {
				pairs = append(pairs, [2]int{it.seq, other.seq})
			}
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i][0] != pairs[j][0] {
			return pairs[i][0] < pairs[j][0]
		}
		return pairs[i][1] < pairs[j][1]
	})
	return pairs
}

func boundsRect(p geometry.Polygon) rtreego.Rect {
	b := p.Bound()
	rect, _ := rtreego.NewRect(
		rtreego.Point{b.Min[0], b.Min[1]},
		[]float64{max(b.Max[0]-b.Min[0], minExtent), max(b.Max[1]-b.Min[1], minExtent)},
	)
	return rect
}
