package validate

import (
	"fmt"
	"math"

	"github.com/AndySiamas/LayoutLens/pkg/geometry"
	"github.com/AndySiamas/LayoutLens/pkg/layout"
)

// Validator runs the envelope and plan rules with a fixed set of tolerances.
// It holds no mutable state and may be shared between goroutines.
type Validator struct {
	opts Options
}

// New returns a validator. Zero option fields take their defaults.
func New(opts Options) *Validator {
	return &Validator{opts: opts.WithDefaults()}
}

// Options returns the effective tolerances.
func (v *Validator) Options() Options { return v.opts }

var defaultValidator = New(DefaultOptions())

// ValidateEnvelope validates e with the default tolerances.
func ValidateEnvelope(e *layout.Envelope) (*Report, error) {
	return defaultValidator.ValidateEnvelope(e)
}

// ValidatePlan validates p with the default tolerances.
func ValidatePlan(p *layout.Plan) (*Report, error) {
	return defaultValidator.ValidatePlan(p)
}

// ValidateEnvelope checks that the boundary is a simple polygon with positive
// area and that every opening fits on its edge.
//
// The returned error is non-nil only when the envelope breaks the field-level
// contract (see [layout.CheckEnvelope]). Rule violations are returned in the
// report. A bad polygon stops validation with a single issue; opening problems
// are all collected.
func (v *Validator) ValidateEnvelope(e *layout.Envelope) (*Report, error) {
	if err := layout.CheckEnvelope(e); err != nil {
		return nil, err
	}
	r := &Report{Kind: KindEnvelope}
	if _, ok := v.checkBoundary(r, e); !ok {
		return r, nil
	}
	v.checkOpenings(r, e)
	return r, nil
}

// checkBoundary builds the room polygon and reports whether it is usable.
func (v *Validator) checkBoundary(r *Report, e *layout.Envelope) (geometry.Polygon, bool) {
	room, err := geometry.EnvelopePolygon(e)
	if err != nil || !room.IsSimple() {
		r.add(Issue{
			Code:    IssueInvalidBoundary,
			Message: "Space boundary polygon is invalid. Output a simple non-self-intersecting polygon.",
		})
		return geometry.Polygon{}, false
	}
	if room.Area() <= 0 {
		r.add(Issue{
			Code:    IssueNonPositiveArea,
			Message: "Space boundary polygon has zero/negative area. Output a polygon with positive area.",
		})
		return geometry.Polygon{}, false
	}
	return room, true
}

func (v *Validator) checkOpenings(r *Report, e *layout.Envelope) {
	n := len(e.Boundary)
	clearance := v.opts.CornerClearance

	for i, o := range e.Openings {
		num := i + 1
		if o.EdgeIndex >= n {
			r.add(Issue{
				Code:    IssueOpeningEdgeRange,
				Message: fmt.Sprintf("Opening #%d (%s) edge_index=%d is out of range (0..%d).", num, o.Kind, o.EdgeIndex, n-1),
			})
			continue
		}

		start, end := e.Edge(o.EdgeIndex)
		length := math.Hypot(end.X-start.X, end.Y-start.Y)
		if length == 0 {
			r.add(Issue{
				Code: IssueOpeningZeroEdge,
				Message: fmt.Sprintf("Opening #%d (%s) is on a zero-length edge (edge_index=%d). "+
					"Fix the boundary points or choose a different edge.", num, o.Kind, o.EdgeIndex),
			})
			continue
		}

		if o.Width+2*clearance > length {
			r.add(Issue{
				Code: IssueOpeningTooWide,
				Message: fmt.Sprintf("Opening #%d (%s) width=%.2f is too large for edge_index=%d (edge length ≈ %.2f). "+
					"Reduce width or choose a longer edge.", num, o.Kind, o.Width, o.EdgeIndex, length),
			})
			continue
		}

		minCenter := (o.Width/2 + clearance) / length
		maxCenter := 1 - minCenter
		if o.Center < minCenter || o.Center > maxCenter {
			r.add(Issue{
				Code: IssueOpeningNearCorner,
				Message: fmt.Sprintf("Opening #%d (%s) center=%.2f is too close to a corner for width=%.2f on edge_index=%d. "+
					"Use center in approximately [%.2f, %.2f].", num, o.Kind, o.Center, o.Width, o.EdgeIndex, minCenter, maxCenter),
			})
		}
	}
}
