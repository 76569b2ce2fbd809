package geometry

import (
	"math"

	"github.com/paulmach/orb"
)

// Tolerances shared by the geometric predicates.
const (
	// Epsilon is the distance below which two positions are treated as equal.
	Epsilon = 1e-9

	// AreaEpsilon is the area at or below which a boolean-operation result is
	// considered empty. Two polygons whose intersection area does not exceed
	// it only touch.
	AreaEpsilon = 1e-9
)

// Polygon is a simple planar ring stored without a closing duplicate vertex.
// The zero value is the empty polygon.
type Polygon struct {
	ring orb.Ring
}

// New returns a polygon with the given vertices. A trailing vertex equal to
// the first is dropped. The input slice is copied.
func New(points []orb.Point) Polygon {
	n := len(points)
	if n > 1 && points[0] == points[n-1] {
		n--
	}
	ring := make(orb.Ring, n)
	copy(ring, points[:n])
	return Polygon{ring: ring}
}

// Vertices returns a copy of the polygon's vertices.
func (p Polygon) Vertices() []orb.Point {
	out := make([]orb.Point, len(p.ring))
	copy(out, p.ring)
	return out
}

// Len returns the number of vertices.
func (p Polygon) Len() int { return len(p.ring) }

// IsEmpty reports whether the polygon has fewer than three vertices or no
// area.
func (p Polygon) IsEmpty() bool {
	return len(p.ring) < 3 || p.Area() <= AreaEpsilon
}

// Edge returns the endpoints of edge i, which joins vertex i to vertex
// (i+1) mod n.
func (p Polygon) Edge(i int) (orb.Point, orb.Point) {
	return p.ring[i], p.ring[(i+1)%len(p.ring)]
}

// SignedArea returns the shoelace area: positive for counter-clockwise rings.
func (p Polygon) SignedArea() float64 {
	n := len(p.ring)
	if n < 3 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		a, b := p.ring[i], p.ring[(i+1)%n]
		sum += a[0]*b[1] - b[0]*a[1]
	}
	return sum / 2
}

// Area returns the absolute enclosed area.
func (p Polygon) Area() float64 {
	return math.Abs(p.SignedArea())
}

// Centroid returns the area centroid, or the vertex average when the polygon
// has no area.
func (p Polygon) Centroid() orb.Point {
	n := len(p.ring)
	if n == 0 {
		return orb.Point{}
	}
	a := p.SignedArea()
	if math.Abs(a) <= AreaEpsilon {
		var cx, cy float64
		for _, v := range p.ring {
			cx += v[0]
			cy += v[1]
		}
		return orb.Point{cx / float64(n), cy / float64(n)}
	}
	var cx, cy float64
	for i := 0; i < n; i++ {
		v, w := p.ring[i], p.ring[(i+1)%n]
		cross := v[0]*w[1] - w[0]*v[1]
		cx += (v[0] + w[0]) * cross
		cy += (v[1] + w[1]) * cross
	}
	return orb.Point{cx / (6 * a), cy / (6 * a)}
}

// Bound returns the axis-aligned bounding box.
func (p Polygon) Bound() orb.Bound {
	return p.ring.Bound()
}

// Translate returns the polygon moved by (dx, dy).
func (p Polygon) Translate(dx, dy float64) Polygon {
	out := make(orb.Ring, len(p.ring))
	for i, v := range p.ring {
		out[i] = orb.Point{v[0] + dx, v[1] + dy}
	}
	return Polygon{ring: out}
}

// Rotate returns the polygon rotated counter-clockwise by deg degrees about
// the origin. Quarter turns are exact.
func (p Polygon) Rotate(deg float64) Polygon {
	sin, cos := sinCosDeg(deg)
	out := make(orb.Ring, len(p.ring))
	for i, v := range p.ring {
		out[i] = orb.Point{
			v[0]*cos - v[1]*sin,
			v[0]*sin + v[1]*cos,
		}
	}
	return Polygon{ring: out}
}

// closed returns the ring with the first vertex appended, the form orb's
// planar functions expect.
func (p Polygon) closed() orb.Ring {
	out := make(orb.Ring, len(p.ring)+1)
	copy(out, p.ring)
	if len(p.ring) > 0 {
		out[len(p.ring)] = p.ring[0]
	}
	return out
}

func sinCosDeg(deg float64) (sin, cos float64) {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	switch d {
	case 0:
		return 0, 1
	case 90:
		return 1, 0
	case 180:
		return 0, -1
	case 270:
		return -1, 0
	}
	return math.Sincos(d * math.Pi / 180)
}
