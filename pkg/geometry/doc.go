// Package geometry builds and queries the planar polygons used to validate a
// room layout.
//
// # Polygons
//
// A [Polygon] is a single ring of vertices stored open (the first vertex is not
// repeated at the end). Orientation is not normalized; every operation works
// with either winding. Polygons are values: Translate, Rotate and Offset return
// new polygons and never modify the receiver.
//
// # Building
//
// [EnvelopePolygon] turns a room boundary into a polygon as given. [ElementPolygon]
// builds an element's local footprint, rotates it about the local origin by the
// element's yaw in degrees (counter-clockwise positive) and translates it to the
// element's world center. Element polygons are always derived on demand from
// the element's transform and footprint; nothing is cached.
//
// # Predicates and measures
//
// Boolean operations (difference, intersection) and point-in-polygon tests are
// delegated to github.com/ctessum/geom. Boundary distance and nearest-segment
// queries use github.com/paulmach/orb/planar.
//
//	room, _ := geometry.EnvelopePolygon(&plan.Space)
//	bed, _ := geometry.ElementPolygon(plan.Elements[0])
//	if !room.Covers(bed, geometry.Epsilon) {
//	    outside := bed.Difference(room)
//	    // ...
//	}
//
// # Offsetting
//
// [Polygon.Offset] moves every edge along its outward normal and rejoins the
// edges with mitered corners. Edges that collapse under a negative offset are
// dropped. An offset that cannot produce a simple polygon with the original
// orientation reports failure, and callers fall back to the unmodified polygon.
package geometry
