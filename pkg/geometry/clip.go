package geometry

import (
	"github.com/ctessum/geom"
	"github.com/paulmach/orb"
)

// ContainsPoint reports whether pt is inside the polygon or on its boundary.
func (p Polygon) ContainsPoint(pt orb.Point) bool {
	if len(p.ring) < 3 {
		return false
	}
	return geom.Point{X: pt[0], Y: pt[1]}.Within(p.toGeom()) != geom.Outside
}

// Covers reports whether every point of q lies inside p or within tol of p's
// boundary.
func (p Polygon) Covers(q Polygon, tol float64) bool {
	if len(p.ring) < 3 || len(q.ring) == 0 {
		return false
	}
	for _, v := range q.ring {
		if !p.CoversPoint(v, tol) {
			return false
		}
	}
	// Vertices inside is not enough for a concave p: an edge of q can still
	// cross a notch.
	return totalArea(q.Difference(p)) <= AreaEpsilon
}

// Difference returns the parts of p that lie outside q, one polygon per
// resulting ring.
func (p Polygon) Difference(q Polygon) []Polygon {
	if len(p.ring) < 3 {
		return nil
	}
	if len(q.ring) < 3 || !boundsOverlap(p.Bound(), q.Bound()) {
		return []Polygon{p}
	}
	var out []Polygon
	for _, gp := range p.toGeom().Difference(q.toGeom()).Polygons() {
		out = append(out, fromGeom(gp)...)
	}
	return out
}

// IntersectionArea returns the area shared by p and q.
func (p Polygon) IntersectionArea(q Polygon) float64 {
	if len(p.ring) < 3 || len(q.ring) < 3 || !boundsOverlap(p.Bound(), q.Bound()) {
		return 0
	}
	return p.toGeom().Intersection(q.toGeom()).Area()
}

// Overlaps reports whether p and q share more than a boundary.
func (p Polygon) Overlaps(q Polygon) bool {
	return p.IntersectionArea(q) > AreaEpsilon
}

// Touches reports whether p and q meet without overlapping: their boundaries
// share at least one point but the shared area is empty.
func (p Polygon) Touches(q Polygon) bool {
	if p.Overlaps(q) {
		return false
	}
	for _, v := range q.ring {
		if p.DistanceToBoundary(v) <= Epsilon {
			return true
		}
	}
	for _, v := range p.ring {
		if q.DistanceToBoundary(v) <= Epsilon {
			return true
		}
	}
	return false
}

// AnyOverlap reports whether any two of the polygons overlap by more than a
// touch.
func AnyOverlap(polys []Polygon) bool {
	for i := range polys {
		for j := i + 1; j < len(polys); j++ {
			if polys[i].Overlaps(polys[j]) {
				return true
			}
		}
	}
	return false
}

func totalArea(polys []Polygon) float64 {
	var sum float64
	for _, p := range polys {
		sum += p.Area()
	}
	return sum
}

func boundsOverlap(a, b orb.Bound) bool {
	return a.Min[0] <= b.Max[0] && b.Min[0] <= a.Max[0] &&
		a.Min[1] <= b.Max[1] && b.Min[1] <= a.Max[1]
}

// toGeom converts p to a closed single-ring geom.Polygon.
func (p Polygon) toGeom() geom.Polygon {
	path := make(geom.Path, 0, len(p.ring)+1)
	for _, v := range p.ring {
		path = append(path, geom.Point{X: v[0], Y: v[1]})
	}
	if len(p.ring) > 0 {
		path = append(path, path[0])
	}
	return geom.Polygon{path}
}

func fromGeom(gp geom.Polygon) []Polygon {
	out := make([]Polygon, 0, len(gp))
	for _, path := range gp {
		pts := make([]orb.Point, len(path))
		for i, v := range path {
			pts[i] = orb.Point{v.X, v.Y}
		}
		poly := New(pts)
		if poly.Len() < 3 {
			continue
		}
		out = append(out, poly)
	}
	return out
}
