package cache

// ReportKeyOpts holds everything besides the input that changes a report.
type ReportKeyOpts struct {
	// OptionsHash identifies the tolerances the report was computed with.
	OptionsHash string `json:"options"`
	// Version is the engine version; a new release never reuses old entries.
	Version string `json:"version,omitempty"`
}

// Keyer builds cache keys for validation reports.
type Keyer interface {
	// EnvelopeKey returns the key for an envelope report.
	EnvelopeKey(inputHash string, opts ReportKeyOpts) string

	// PlanKey returns the key for a plan report.
	PlanKey(inputHash string, opts ReportKeyOpts) string
}

// DefaultKeyer produces keys of the form "envelope:<sha256>" and
// "plan:<sha256>".
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// EnvelopeKey generates a key for envelope report caching.
func (DefaultKeyer) EnvelopeKey(inputHash string, opts ReportKeyOpts) string {
	return hashKey("envelope", inputHash, opts)
}

// PlanKey generates a key for plan report caching.
func (DefaultKeyer) PlanKey(inputHash string, opts ReportKeyOpts) string {
	return hashKey("plan", inputHash, opts)
}

var _ Keyer = DefaultKeyer{}
