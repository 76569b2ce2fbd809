package validate

import (
	"github.com/AndySiamas/LayoutLens/pkg/errors"
	"github.com/AndySiamas/LayoutLens/pkg/repair"
)

// Options holds every tolerance used by the validators. Distances are in
// meters and areas in square meters. Zero fields are replaced by the
// corresponding DefaultOptions value when a Validator is built, so a zero
// tolerance cannot be expressed; Validate rejects it.
type Options struct {
	// BoundaryTolerance grows the room outward before containment checks so
	// that floating-point "barely outside" placements pass.
	BoundaryTolerance float64 `toml:"boundary_tolerance" json:"boundary_tolerance"`
	// CornerClearance is the minimum gap between an opening and either end of
	// its edge.
	CornerClearance float64 `toml:"corner_clearance" json:"corner_clearance"`
	// InsetMargin shrinks the room to the safe polygon targeted by repairs.
	InsetMargin float64 `toml:"inset_margin" json:"inset_margin"`
	// OverlapAreaTolerance is the largest floor-floor intersection ignored.
	OverlapAreaTolerance float64 `toml:"overlap_area_tolerance" json:"overlap_area_tolerance"`
	// SeparationMargin pads overlap-clearing moves.
	SeparationMargin float64 `toml:"separation_margin" json:"separation_margin"`
	// MaxReportedOverlaps caps the overlap pairs listed individually.
	MaxReportedOverlaps int `toml:"max_reported_overlaps" json:"max_reported_overlaps"`
	// WallMaxDistance is how far a wall element's center may be from the
	// boundary.
	WallMaxDistance float64 `toml:"wall_max_distance" json:"wall_max_distance"`
	// NearDuplicateDistance is the per-axis center distance under which two
	// same-label floor elements look duplicated.
	NearDuplicateDistance float64 `toml:"near_duplicate_distance" json:"near_duplicate_distance"`
	// MaxPushIterations bounds the push-into-room repair loop.
	MaxPushIterations int `toml:"max_push_iterations" json:"max_push_iterations"`
	// Overshoot scales each push step.
	Overshoot float64 `toml:"overshoot" json:"overshoot"`
}

// DefaultOptions returns the standard tolerances.
func DefaultOptions() Options {
	return Options{
		BoundaryTolerance:     0.02,
		CornerClearance:       0.05,
		InsetMargin:           0.05,
		OverlapAreaTolerance:  0.002,
		SeparationMargin:      0.10,
		MaxReportedOverlaps:   12,
		WallMaxDistance:       0.35,
		NearDuplicateDistance: 0.05,
		MaxPushIterations:     6,
		Overshoot:             1.05,
	}
}

// Validate rejects values that are not positive and an overshoot below 1.
// Zero is rejected too: WithDefaults would silently replace it, so a
// configured zero could never take effect.
func (o Options) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"boundary_tolerance", o.BoundaryTolerance},
		{"corner_clearance", o.CornerClearance},
		{"inset_margin", o.InsetMargin},
		{"overlap_area_tolerance", o.OverlapAreaTolerance},
		{"separation_margin", o.SeparationMargin},
		{"wall_max_distance", o.WallMaxDistance},
		{"near_duplicate_distance", o.NearDuplicateDistance},
		{"max_reported_overlaps", float64(o.MaxReportedOverlaps)},
		{"max_push_iterations", float64(o.MaxPushIterations)},
	}
	for _, f := range positive {
		if f.v <= 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "%s must be positive, got %v", f.name, f.v)
		}
	}
	if o.Overshoot < 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "overshoot must be at least 1, got %v", o.Overshoot)
	}
	return nil
}

// WithDefaults returns o with every zero field set from DefaultOptions.
func (o Options) WithDefaults() Options {
	d := DefaultOptions()
	if o.BoundaryTolerance == 0 {
		o.BoundaryTolerance = d.BoundaryTolerance
	}
	if o.CornerClearance == 0 {
		o.CornerClearance = d.CornerClearance
	}
	if o.InsetMargin == 0 {
		o.InsetMargin = d.InsetMargin
	}
	if o.OverlapAreaTolerance == 0 {
		o.OverlapAreaTolerance = d.OverlapAreaTolerance
	}
	if o.SeparationMargin == 0 {
		o.SeparationMargin = d.SeparationMargin
	}
	if o.MaxReportedOverlaps == 0 {
		o.MaxReportedOverlaps = d.MaxReportedOverlaps
	}
	if o.WallMaxDistance == 0 {
		o.WallMaxDistance = d.WallMaxDistance
	}
	if o.NearDuplicateDistance == 0 {
		o.NearDuplicateDistance = d.NearDuplicateDistance
	}
	if o.MaxPushIterations == 0 {
		o.MaxPushIterations = d.MaxPushIterations
	}
	if o.Overshoot == 0 {
		o.Overshoot = d.Overshoot
	}
	return o
}

func (o Options) repair() repair.Options {
	return repair.Options{
		InsetMargin:      o.InsetMargin,
		MaxIterations:    o.MaxPushIterations,
		Overshoot:        o.Overshoot,
		SeparationMargin: o.SeparationMargin,
	}
}
