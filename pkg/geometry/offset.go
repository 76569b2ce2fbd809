package geometry

import (
	"math"

	"github.com/paulmach/orb"
)

// offsetLine is an edge moved along its outward normal: it passes through
// origin with unit direction dir.
type offsetLine struct {
	origin orb.Point
	dir    orb.Point
}

// Offset returns the polygon with every edge moved outward by d (inward for
// negative d), joined with mitered corners. Edges that shrink to nothing are
// removed. The second result is false when no valid polygon remains: too few
// edges survive, the result self-intersects, or its orientation flips.
func (p Polygon) Offset(d float64) (Polygon, bool) {
	ring := dedupe(p.ring)
	if len(ring) < 3 {
		return Polygon{}, false
	}
	if d == 0 {
		return Polygon{ring: ring}, true
	}

	orientation := 1.0
	signed := Polygon{ring: ring}.SignedArea()
	if signed < 0 {
		orientation = -1
	} else if signed == 0 {
		return Polygon{}, false
	}

	n := len(ring)
	lines := make([]offsetLine, 0, n)
	for i := 0; i < n; i++ {
		a, b := ring[i], ring[(i+1)%n]
		dx, dy := b[0]-a[0], b[1]-a[1]
		l := math.Hypot(dx, dy)
		ux, uy := dx/l, dy/l
		nx, ny := orientation*uy, -orientation*ux
		lines = append(lines, offsetLine{
			origin: orb.Point{a[0] + nx*d, a[1] + ny*d},
			dir:    orb.Point{ux, uy},
		})
	}

	for len(lines) >= 3 {
		verts := miterVertices(lines)
		collapsed := -1
		for j := range lines {
			a, b := verts[j], verts[(j+1)%len(verts)]
			if (b[0]-a[0])*lines[j].dir[0]+(b[1]-a[1])*lines[j].dir[1] < -Epsilon {
				collapsed = j
				break
			}
		}
		if collapsed < 0 {
			out := Polygon{ring: dedupe(snap(verts))}
			if !out.IsSimple() || out.SignedArea()*orientation <= AreaEpsilon {
				return Polygon{}, false
			}
			return out, true
		}
		lines = append(lines[:collapsed], lines[collapsed+1:]...)
	}
	return Polygon{}, false
}

// snapScale sets the 1e-9 grid offset vertices are rounded to. Miter
// intersections otherwise carry float noise that the clipper treats as real
// geometry.
const snapScale = 1e9

func snap(pts []orb.Point) []orb.Point {
	for i, v := range pts {
		pts[i] = orb.Point{math.Round(v[0]*snapScale) / snapScale, math.Round(v[1]*snapScale) / snapScale}
	}
	return pts
}

// Inset returns the polygon shrunk inward by d. It is Offset(-d).
func (p Polygon) Inset(d float64) (Polygon, bool) {
	return p.Offset(-d)
}

// miterVertices intersects each offset line with its predecessor. Vertex j
// starts line j.
func miterVertices(lines []offsetLine) []orb.Point {
	n := len(lines)
	verts := make([]orb.Point, n)
	for j := 0; j < n; j++ {
		prev, cur := lines[(j+n-1)%n], lines[j]
		verts[j] = intersectLines(prev, cur)
	}
	return verts
}

// intersectLines returns the intersection of two offset lines. Parallel lines
// meet at the start of the second.
func intersectLines(a, b offsetLine) orb.Point {
	denom := a.dir[0]*b.dir[1] - a.dir[1]*b.dir[0]
	if math.Abs(denom) < 1e-12 {
		return b.origin
	}
	wx, wy := b.origin[0]-a.origin[0], b.origin[1]-a.origin[1]
	t := (wx*b.dir[1] - wy*b.dir[0]) / denom
	return orb.Point{a.origin[0] + t*a.dir[0], a.origin[1] + t*a.dir[1]}
}
