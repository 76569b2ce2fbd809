package layout

import (
	"math"

	"github.com/AndySiamas/LayoutLens/pkg/errors"
)

// Minimum counts from the upstream schema.
const (
	MinBoundaryPoints = 4
	MinPolyVertices   = 3
)

// CheckEnvelope enforces the field-level envelope contract. It does not look
// at the geometry of the boundary; that is the validator's job.
func CheckEnvelope(e *Envelope) error {
	if e == nil {
		return errors.New(errors.ErrCodeInvalidEnvelope, "envelope is missing")
	}
	if len(e.Boundary) < MinBoundaryPoints {
		return errors.New(errors.ErrCodeInvalidEnvelope,
			"boundary needs at least %d points, got %d", MinBoundaryPoints, len(e.Boundary))
	}
	for i, p := range e.Boundary {
		if !finite(p.X) || !finite(p.Y) {
			return errors.New(errors.ErrCodeInvalidEnvelope, "boundary point %d is not finite", i)
		}
	}
	if !(e.Height > 0) {
		return errors.New(errors.ErrCodeInvalidEnvelope, "height must be positive, got %v", e.Height)
	}

	for i, o := range e.Openings {
		n := i + 1
		switch o.Kind {
		case OpeningDoor, OpeningWindow, OpeningOther:
		default:
			return errors.New(errors.ErrCodeInvalidEnvelope, "opening #%d has unknown kind %q", n, o.Kind)
		}
		if o.EdgeIndex < 0 {
			return errors.New(errors.ErrCodeInvalidEnvelope, "opening #%d edge_index must be >= 0", n)
		}
		if !(o.Center >= 0 && o.Center <= 1) {
			return errors.New(errors.ErrCodeInvalidEnvelope, "opening #%d center must be in [0, 1], got %v", n, o.Center)
		}
		if !(o.Width > 0) || !finite(o.Width) {
			return errors.New(errors.ErrCodeInvalidEnvelope, "opening #%d width must be positive, got %v", n, o.Width)
		}
	}
	return nil
}

// CheckPlan enforces the field-level plan contract, including the envelope.
// Duplicate ids are not checked here: they are a reported diagnostic.
func CheckPlan(p *Plan) error {
	if p == nil {
		return errors.New(errors.ErrCodeInvalidPlan, "plan is missing")
	}
	if err := CheckEnvelope(&p.Space); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPlan, err, "space")
	}
	for i, el := range p.Elements {
		if err := CheckElement(el); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidPlan, err, "element %d", i)
		}
	}
	return nil
}

// CheckElement enforces the field-level element contract.
func CheckElement(el Element) error {
	if err := errors.ValidateElementID(el.ID); err != nil {
		return err
	}
	if err := errors.ValidateLabel(el.Label); err != nil {
		return err
	}
	switch el.Placement {
	case Floor, On, Wall:
	default:
		return errors.New(errors.ErrCodeInvalidPlan, "element %q has invalid placement %d", el.ID, int(el.Placement))
	}
	t := el.Transform
	if !finite(t.X) || !finite(t.Y) || !finite(t.YawDeg) {
		return errors.New(errors.ErrCodeInvalidPlan, "element %q transform is not finite", el.ID)
	}

	switch fp := el.Footprint.(type) {
	case Rect:
		if !(fp.Width > 0) || !(fp.Depth > 0) || !finite(fp.Width) || !finite(fp.Depth) {
			return errors.New(errors.ErrCodeInvalidPlan,
				"element %q rect footprint needs positive width and depth", el.ID)
		}
	case Poly:
		if len(fp.Vertices) < MinPolyVertices {
			return errors.New(errors.ErrCodeInvalidPlan,
				"element %q poly footprint needs at least %d vertices", el.ID, MinPolyVertices)
		}
		for _, v := range fp.Vertices {
			if !finite(v.X) || !finite(v.Y) {
				return errors.New(errors.ErrCodeInvalidPlan, "element %q poly vertex is not finite", el.ID)
			}
		}
	case nil:
		return errors.New(errors.ErrCodeInvalidPlan, "element %q has no footprint", el.ID)
	default:
		return errors.New(errors.ErrCodeUnsupported, "element %q has unsupported footprint %T", el.ID, fp)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
