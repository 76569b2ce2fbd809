// Package validate checks room envelopes and room plans and reports every
// rule violation as a numbered, human-readable diagnostic.
//
// # Results
//
// Validation does not fail fast. [Validator.ValidateEnvelope] and
// [Validator.ValidatePlan] return a [Report]: an empty report means the input
// is accepted unchanged, a non-empty one lists every problem found so the
// producer can fix them all in one retry. The error result is reserved for
// contract violations (malformed fields, footprints that cannot be built);
// those are not folded into the report.
//
//	report, err := validate.New(validate.DefaultOptions()).ValidatePlan(plan)
//	if err != nil {
//	    return err // caller bug, not a layout problem
//	}
//	if !report.OK() {
//	    retryWith(report.String())
//	}
//
// # Rules
//
// Envelope: the boundary must be a simple polygon with positive area, and each
// opening must sit on an existing, non-degenerate edge with at least
// CornerClearance to both corners.
//
// Plan, in report order:
//   - duplicate element ids, reported once in sorted order
//   - bounds: wall elements need their center inside and within
//     WallMaxDistance of the boundary, on elements need their center inside,
//     floor elements need their whole footprint inside
//   - floor-floor overlaps larger than OverlapAreaTolerance (touching is fine)
//   - floor elements with the same label and nearly the same center
//
// Containment is tested against the room grown by BoundaryTolerance. Floor
// elements that stick out, and overlapping pairs, get a suggested move from
// package repair when one can be found.
//
// A Validator is immutable and safe for concurrent use.
package validate
