package repair

import "math"

// Options tunes the repair heuristics. Zero fields take the DefaultOptions
// value; callers that need to reject zero do so before building Options.
type Options struct {
	// InsetMargin shrinks the room to form the safe target polygon.
	InsetMargin float64
	// MaxIterations bounds the push loop.
	MaxIterations int
	// Overshoot scales every push step so the element does not stall exactly
	// on the safe boundary.
	Overshoot float64
	// SeparationMargin pads every overlap-clearing candidate move.
	SeparationMargin float64
}

// DefaultOptions returns the standard tuning.
func DefaultOptions() Options {
	return Options{
		InsetMargin:      0.05,
		MaxIterations:    6,
		Overshoot:        1.05,
		SeparationMargin: 0.10,
	}
}

// withDefaults fills zero fields from DefaultOptions.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.InsetMargin == 0 {
		o.InsetMargin = d.InsetMargin
	}
	if o.MaxIterations == 0 {
		o.MaxIterations = d.MaxIterations
	}
	if o.Overshoot == 0 {
		o.Overshoot = d.Overshoot
	}
	if o.SeparationMargin == 0 {
		o.SeparationMargin = d.SeparationMargin
	}
	return o
}

// Vec is a translation in meters.
type Vec struct {
	X, Y float64
}

// Add returns v + w.
func (v Vec) Add(w Vec) Vec { return Vec{v.X + w.X, v.Y + w.Y} }

// Scale returns v * k.
func (v Vec) Scale(k float64) Vec { return Vec{v.X * k, v.Y * k} }

// Len returns the Euclidean length.
func (v Vec) Len() float64 { return math.Hypot(v.X, v.Y) }

// Manhattan returns |x| + |y|, the cost used to rank candidate moves.
func (v Vec) Manhattan() float64 { return math.Abs(v.X) + math.Abs(v.Y) }

// Negligible reports whether both components are below tol.
func (v Vec) Negligible(tol float64) bool {
	return math.Abs(v.X) < tol && math.Abs(v.Y) < tol
}
