package geometry

import (
	"github.com/paulmach/orb"

	"github.com/AndySiamas/LayoutLens/pkg/errors"
	"github.com/AndySiamas/LayoutLens/pkg/layout"
)

// EnvelopePolygon builds the room polygon from the boundary points in order.
// It does not check simplicity.
func EnvelopePolygon(e *layout.Envelope) (Polygon, error) {
	if e == nil || len(e.Boundary) < 3 {
		return Polygon{}, errors.New(errors.ErrCodeInvalidEnvelope, "boundary needs at least 3 points to form a polygon")
	}
	return FromPoints(e.Boundary), nil
}

// ElementPolygon builds an element's world polygon from its footprint and
// transform.
func ElementPolygon(el layout.Element) (Polygon, error) {
	local, err := FootprintPolygon(el.Footprint)
	if err != nil {
		return Polygon{}, errors.Wrap(errors.GetCode(err), err, "element %q", el.ID)
	}
	t := el.Transform
	return local.Rotate(t.YawDeg).Translate(t.X, t.Y), nil
}

// FootprintPolygon builds the footprint in the element's local frame.
// Rectangles are centered on the origin.
func FootprintPolygon(fp layout.Footprint) (Polygon, error) {
	switch fp := fp.(type) {
	case layout.Rect:
		hw, hd := fp.Width/2, fp.Depth/2
		return Polygon{ring: orb.Ring{
			{-hw, -hd},
			{hw, -hd},
			{hw, hd},
			{-hw, hd},
		}}, nil
	case layout.Poly:
		if len(fp.Vertices) < 3 {
			return Polygon{}, errors.New(errors.ErrCodeInvalidPlan, "poly footprint needs at least 3 vertices")
		}
		return FromPoints(fp.Vertices), nil
	case nil:
		return Polygon{}, errors.New(errors.ErrCodeUnsupported, "missing footprint")
	default:
		return Polygon{}, errors.New(errors.ErrCodeUnsupported, "unsupported footprint %T", fp)
	}
}

// ClearancePolygon returns the element's polygon grown outward by d meters,
// the space it needs kept free around it. If the offset cannot be built the
// plain element polygon is returned.
func ClearancePolygon(el layout.Element, d float64) (Polygon, error) {
	poly, err := ElementPolygon(el)
	if err != nil {
		return Polygon{}, err
	}
	if grown, ok := poly.Offset(d); ok {
		return grown, nil
	}
	return poly, nil
}

// FromPoints converts layout points to a polygon.
func FromPoints(pts []layout.Point2D) Polygon {
	ring := make([]orb.Point, len(pts))
	for i, p := range pts {
		ring[i] = orb.Point{p.X, p.Y}
	}
	return New(ring)
}

// Point converts a layout point to an orb point.
func Point(p layout.Point2D) orb.Point {
	return orb.Point{p.X, p.Y}
}
