// Package pipeline runs validations with caching and run history.
//
// The CLI and the HTTP API both validate through a [Runner], so a report is
// computed, cached and persisted the same way regardless of entry point.
//
// # Flow
//
// For each call the runner:
//
//  1. Rejects structurally malformed input (never cached, never stored)
//  2. Looks the report up in the cache, keyed by the canonical JSON of the
//     input, the validator options and the build version
//  3. On a miss, runs the validator and caches the report
//  4. Saves rejected runs to the store under a fresh run id
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	runner.Store = st
//	result, err := runner.ValidatePlan(ctx, plan)
//	if err != nil {
//	    return err
//	}
//	if !result.Report.OK() {
//	    fmt.Println(result.Report)
//	}
package pipeline

import (
	"time"

	"github.com/AndySiamas/LayoutLens/pkg/validate"
)

// Result is the outcome of one validation run.
type Result struct {
	// RunID identifies this run in the store. Every run gets one, stored or not.
	RunID string

	// Report is the validation report. It is never nil.
	Report *validate.Report

	// InputHash is the content hash of the canonical input JSON.
	InputHash string

	// CacheHit is true when the report came from the cache.
	CacheHit bool

	// Stored is true when the run was persisted to the store.
	Stored bool

	// Duration is the wall time of the whole call.
	Duration time.Duration
}

// Accepted reports whether the input passed every rule.
func (r *Result) Accepted() bool { return r.Report.OK() }

// Summary is the JSON view of a Result shared by the CLI --json output and
// the HTTP API.
type Summary struct {
	RunID    string           `json:"run_id"`
	Kind     validate.Kind    `json:"kind"`
	Accepted bool             `json:"accepted"`
	Cached   bool             `json:"cached"`
	Issues   []validate.Issue `json:"issues"`
	// Report is the numbered text to replay to the producer; empty when accepted.
	Report string `json:"report,omitempty"`
}

// Summary returns the JSON view of r. Issues is never nil.
func (r *Result) Summary() Summary {
	s := Summary{
		RunID:    r.RunID,
		Kind:     r.Report.Kind,
		Accepted: r.Report.OK(),
		Cached:   r.CacheHit,
		Issues:   r.Report.Issues,
		Report:   r.Report.String(),
	}
	if s.Issues == nil {
		s.Issues = []validate.Issue{}
	}
	return s
}
