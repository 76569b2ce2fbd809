package cache

// ScopedKeyer wraps a Keyer with a prefix so several callers can share one
// backend without seeing each other's entries.
//
// Example usage:
//
//	// Reports computed by the HTTP API
//	apiKeyer := NewScopedKeyer(NewDefaultKeyer(), "api:")
//
//	// Reports computed by the CLI
//	cliKeyer := NewDefaultKeyer()
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// EnvelopeKey generates a prefixed key for envelope report caching.
func (k *ScopedKeyer) EnvelopeKey(inputHash string, opts ReportKeyOpts) string {
	return k.prefix + k.inner.EnvelopeKey(inputHash, opts)
}

// PlanKey generates a prefixed key for plan report caching.
func (k *ScopedKeyer) PlanKey(inputHash string, opts ReportKeyOpts) string {
	return k.prefix + k.inner.PlanKey(inputHash, opts)
}
