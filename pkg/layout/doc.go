// Package layout defines the room plan data model shared by every LayoutLens
// component.
//
// A [Plan] is one room: an [Envelope] (boundary polygon, ceiling height and
// wall [Opening]s) plus the placed [Element]s. Each element carries only its
// local description, a [Transform] and a [Footprint]; the world-space polygon
// is always derived by the geometry package and never stored, so a moved
// transform can never disagree with a stale cached shape.
//
// # Closed Variants
//
// [Footprint] is a sealed sum type with exactly two variants, [Rect] and
// [Poly]. [Placement] is a closed enum ([Floor], [On], [Wall]). Code that
// dispatches on either uses an exhaustive type switch.
//
// # Wire Format
//
// The JSON format matches the upstream generation pipeline:
//
//	{
//	  "space": {
//	    "boundary": [{"x": 0, "y": 0}, {"x": 4, "y": 0}, {"x": 4, "y": 3}, {"x": 0, "y": 3}],
//	    "height": 2.7,
//	    "openings": [{"kind": "door", "edge_index": 0, "center": 0.5, "width": 1.0}]
//	  },
//	  "elements": [
//	    {
//	      "id": "bed_01",
//	      "label": "Bed",
//	      "placement": "floor",
//	      "transform": {"x": 2, "y": 1.5, "yaw_deg": 90},
//	      "footprint": {"kind": "rect", "width": 2.0, "depth": 1.6}
//	    }
//	  ],
//	  "room_grid_size": 0.25
//	}
//
// Unknown keys are rejected. Missing optional fields take the upstream
// defaults: height 2.7, placement "floor", room grid size 0.25.
//
// # Schema Checks
//
// [CheckEnvelope] and [CheckPlan] enforce the field-level contract (id
// pattern, positive sizes, opening ranges). Failures there are structural
// errors, distinct from the geometric diagnostics produced by package validate.
package layout
