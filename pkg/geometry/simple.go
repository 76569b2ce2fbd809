package geometry

import "github.com/paulmach/orb"

// IsSimple reports whether the ring is a valid simple polygon: at least three
// distinct vertices, no two non-adjacent edges touching or crossing, and no
// adjacent edges folding back over each other. Repeated consecutive vertices
// (zero-length edges) are ignored.
func (p Polygon) IsSimple() bool {
	ring := dedupe(p.ring)
	n := len(ring)
	if n < 3 {
		return false
	}

	for i := 0; i < n; i++ {
		a1, a2 := ring[i], ring[(i+1)%n]
		for j := i + 1; j < n; j++ {
			b1, b2 := ring[j], ring[(j+1)%n]
			switch {
			case j == i+1:
				// shared vertex a2 == b1
				if foldsBack(a1, a2, b2) {
					return false
				}
			case i == 0 && j == n-1:
				// shared vertex b2 == a1
				if foldsBack(b1, b2, a2) {
					return false
				}
			default:
				if segmentsIntersect(a1, a2, b1, b2) {
					return false
				}
			}
		}
	}
	return true
}

// dedupe drops vertices equal to their predecessor, including across the
// wrap-around.
func dedupe(ring orb.Ring) orb.Ring {
	out := make(orb.Ring, 0, len(ring))
	for _, v := range ring {
		if len(out) > 0 && out[len(out)-1] == v {
			continue
		}
		out = append(out, v)
	}
	for len(out) > 1 && out[0] == out[len(out)-1] {
		out = out[:len(out)-1]
	}
	return out
}

// foldsBack reports whether the path a -> b -> c reverses onto itself.
func foldsBack(a, b, c orb.Point) bool {
	if orient(a, b, c) != 0 {
		return false
	}
	return (b[0]-a[0])*(c[0]-b[0])+(b[1]-a[1])*(c[1]-b[1]) < 0
}

// orient returns the sign of the cross product (b-a) x (c-a).
func orient(a, b, c orb.Point) int {
	v := (b[0]-a[0])*(c[1]-a[1]) - (b[1]-a[1])*(c[0]-a[0])
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func onSegment(a, b, p orb.Point) bool {
	return min(a[0], b[0]) <= p[0] && p[0] <= max(a[0], b[0]) &&
		min(a[1], b[1]) <= p[1] && p[1] <= max(a[1], b[1])
}

// segmentsIntersect reports whether closed segments p1p2 and q1q2 share any
// point.
func segmentsIntersect(p1, p2, q1, q2 orb.Point) bool {
	o1 := orient(p1, p2, q1)
	o2 := orient(p1, p2, q2)
	o3 := orient(q1, q2, p1)
	o4 := orient(q1, q2, p2)

	if o1 != o2 && o3 != o4 {
		return true
	}
	switch {
	case o1 == 0 && onSegment(p1, p2, q1):
		return true
	case o2 == 0 && onSegment(p1, p2, q2):
		return true
	case o3 == 0 && onSegment(q1, q2, p1):
		return true
	case o4 == 0 && onSegment(q1, q2, p2):
		return true
	}
	return false
}
