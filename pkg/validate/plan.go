package validate

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/AndySiamas/LayoutLens/pkg/geometry"
	"github.com/AndySiamas/LayoutLens/pkg/layout"
	"github.com/AndySiamas/LayoutLens/pkg/repair"
)

// zeroDelta is the per-axis size under which a suggested move is too small
// to be worth reporting as numbers.
const zeroDelta = 1e-3

// planState is what the plan checks share during one call.
type planState struct {
	plan *layout.Plan
	// room is the envelope as given; tolerant is room grown by
	// BoundaryTolerance and is what containment is checked against.
	room     geometry.Polygon
	tolerant geometry.Polygon
	// polys[i] is the world polygon of plan.Elements[i].
	polys []geometry.Polygon
}

// ValidatePlan runs every plan rule and collects the violations in order:
// duplicate ids, per-element bounds, floor-floor overlaps and near-duplicate
// floor elements.
//
// The returned error is non-nil only for contract violations (see
// [layout.CheckPlan]) and for element polygons that cannot be built. If the
// envelope itself is not a usable polygon the report holds just that issue.
// The plan is never modified.
func (v *Validator) ValidatePlan(p *layout.Plan) (*Report, error) {
	if err := layout.CheckPlan(p); err != nil {
		return nil, err
	}

	r := &Report{Kind: KindPlan}
	room, ok := v.checkBoundary(r, &p.Space)
	if !ok {
		return r, nil
	}

	st := &planState{plan: p, room: room, tolerant: room}
	if grown, ok := room.Offset(v.opts.BoundaryTolerance); ok {
		st.tolerant = grown
	}
	st.polys = make([]geometry.Polygon, len(p.Elements))
	for i, el := range p.Elements {
		poly, err := geometry.ElementPolygon(el)
		if err != nil {
			return nil, err
		}
		st.polys[i] = poly
	}

	v.checkDuplicateIDs(r, st)
	v.checkBounds(r, st)
	v.checkOverlaps(r, st)
	v.checkNearDuplicates(r, st)
	return r, nil
}

func (v *Validator) checkDuplicateIDs(r *Report, st *planState) {
	seen := make(map[string]bool, len(st.plan.Elements))
	var dups []string
	for _, el := range st.plan.Elements {
		if done, ok := seen[el.ID]; ok {
			if !done {
				dups = append(dups, el.ID)
				seen[el.ID] = true
			}
			continue
		}
		seen[el.ID] = false
	}
	if len(dups) == 0 {
		return
	}
	sort.Strings(dups)
	r.add(Issue{
		Code:     IssueDuplicateIDs,
		Elements: dups,
		Message:  fmt.Sprintf("Duplicate element ids found: %s. Make every element.id unique.", strings.Join(dups, ", ")),
	})
}

func (v *Validator) checkBounds(r *Report, st *planState) {
	for i, el := range st.plan.Elements {
		center := geometry.Point(el.Center())

		switch el.Placement {
		case layout.Wall:
			if !st.tolerant.CoversPoint(center, 0) {
				r.add(Issue{
					Code:     IssueWallOutside,
					Elements: []string{el.ID},
					Message: fmt.Sprintf("Wall element '%s' (%s) center is outside room. "+
						"Move its center just inside the boundary.", el.ID, el.Label),
				})
				continue
			}
			// Measured to the drawn walls, not the tolerance-grown room.
			if st.room.DistanceToBoundary(center) > v.opts.WallMaxDistance {
				r.add(Issue{
					Code:     IssueWallTooFar,
					Elements: []string{el.ID},
					Message: fmt.Sprintf("Wall element '%s' (%s) should be near a wall. "+
						"Move its center within ~%.2fm of the boundary.", el.ID, el.Label, v.opts.WallMaxDistance),
				})
			}

		case layout.On:
			if !st.tolerant.CoversPoint(center, 0) {
				r.add(Issue{
					Code:     IssueOnOutside,
					Elements: []string{el.ID},
					Message: fmt.Sprintf("On-element '%s' (%s) center is outside room. "+
						"Move its center inside the boundary.", el.ID, el.Label),
				})
			}

		case layout.Floor:
			if st.tolerant.Covers(st.polys[i], geometry.Epsilon) {
				continue
			}
			r.add(v.floorOutsideIssue(st, el, st.polys[i]))
		}
	}
}

func (v *Validator) floorOutsideIssue(st *planState, el layout.Element, poly geometry.Polygon) Issue {
	delta, ok := repair.PushIntoEnvelope(st.tolerant, poly, v.opts.repair())
	if !ok {
		return Issue{
			Code:     IssueFloorCannotFit,
			Elements: []string{el.ID},
			Message: fmt.Sprintf("Element '%s' (%s) is outside the room and cannot fit with its current size/rotation. "+
				"Shrink its footprint and/or rotate it so it fits fully inside.", el.ID, el.Label),
		}
	}
	if delta.Negligible(zeroDelta) {
		return Issue{
			Code:     IssueFloorOutside,
			Elements: []string{el.ID},
			Message: fmt.Sprintf("Element '%s' (%s) is outside the room boundary (likely near a slanted wall). "+
				"Move it inward so the entire footprint is inside the polygon.", el.ID, el.Label),
		}
	}

	s := suggest(el, delta)
	return Issue{
		Code:       IssueFloorOutside,
		Elements:   []string{el.ID},
		Suggestion: s,
		Message: fmt.Sprintf("Element '%s' (%s) is outside the room boundary. "+
			"Move its center by approximately Δx=%.2fm, Δy=%.2fm to new center=(%.2f, %.2f).",
			el.ID, el.Label, s.DX, s.DY, s.NewX, s.NewY),
	}
}

func (v *Validator) checkNearDuplicates(r *Report, st *planState) {
	floor := floorIndices(st.plan)
	d := v.opts.NearDuplicateDistance
	for a := 0; a < len(floor); a++ {
		ea := st.plan.Elements[floor[a]]
		for b := a + 1; b < len(floor); b++ {
			eb := st.plan.Elements[floor[b]]
			if ea.Label != eb.Label {
				continue
			}
			if math.Abs(ea.Transform.X-eb.Transform.X) < d && math.Abs(ea.Transform.Y-eb.Transform.Y) < d {
				r.add(Issue{
					Code:     IssueNearDuplicate,
					Elements: []string{ea.ID, eb.ID},
					Message: fmt.Sprintf("Floor elements '%s' and '%s' look like duplicates "+
						"(same label and nearly same position). Delete one of them or move it clearly elsewhere.", ea.ID, eb.ID),
				})
			}
		}
	}
}

// floorIndices returns the indices of floor elements in plan order.
func floorIndices(p *layout.Plan) []int {
	var out []int
	for i, el := range p.Elements {
		if el.Placement == layout.Floor {
			out = append(out, i)
		}
	}
	return out
}

func suggest(el layout.Element, delta repair.Vec) *Suggestion {
	return &Suggestion{
		ElementID: el.ID,
		DX:        delta.X,
		DY:        delta.Y,
		NewX:      el.Transform.X + delta.X,
		NewY:      el.Transform.Y + delta.Y,
	}
}
