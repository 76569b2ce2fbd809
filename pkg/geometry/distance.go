package geometry

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// DistanceToBoundary returns the shortest distance from pt to the polygon's
// boundary, regardless of whether pt is inside.
func (p Polygon) DistanceToBoundary(pt orb.Point) float64 {
	if len(p.ring) == 0 {
		return 0
	}
	return planar.DistanceFrom(p.closed(), pt)
}

// NearestBoundaryPoint returns the point on the polygon's boundary closest
// to pt.
func (p Polygon) NearestBoundaryPoint(pt orb.Point) orb.Point {
	switch len(p.ring) {
	case 0:
		return pt
	case 1:
		return p.ring[0]
	}
	ring := p.closed()
	_, i := planar.DistanceFromWithIndex(ring, pt)
	if i < 0 || i >= len(ring)-1 {
		i = 0
	}
	return projectOntoSegment(pt, ring[i], ring[i+1])
}

// CoversPoint reports whether pt is inside the polygon, on its boundary, or
// within tol of the boundary.
func (p Polygon) CoversPoint(pt orb.Point, tol float64) bool {
	if p.ContainsPoint(pt) {
		return true
	}
	return p.DistanceToBoundary(pt) <= tol+Epsilon
}

func projectOntoSegment(p, a, b orb.Point) orb.Point {
	dx, dy := b[0]-a[0], b[1]-a[1]
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return a
	}
	t := ((p[0]-a[0])*dx + (p[1]-a[1])*dy) / l2
	switch {
	case t <= 0:
		return a
	case t >= 1:
		return b
	}
	return orb.Point{a[0] + t*dx, a[1] + t*dy}
}
