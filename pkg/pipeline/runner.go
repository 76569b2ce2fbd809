package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/AndySiamas/LayoutLens/pkg/buildinfo"
	"github.com/AndySiamas/LayoutLens/pkg/cache"
	"github.com/AndySiamas/LayoutLens/pkg/layout"
	"github.com/AndySiamas/LayoutLens/pkg/observability"
	"github.com/AndySiamas/LayoutLens/pkg/store"
	"github.com/AndySiamas/LayoutLens/pkg/validate"
)

// Runner validates envelopes and plans with caching and persistence.
//
// A Runner holds no per-call state; multiple goroutines can use the same
// Runner. Fields must not be changed once calls are in flight.
type Runner struct {
	Validator *validate.Validator
	Cache     cache.Cache
	Keyer     cache.Keyer
	Store     store.Store
	Logger    *log.Logger
}

// NewRunner creates a runner with the default validator and no store.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Validator: validate.New(validate.DefaultOptions()),
		Cache:     c,
		Keyer:     keyer,
		Store:     store.NewNullStore(),
		Logger:    logger,
	}
}

// ValidateEnvelope validates a room envelope.
func (r *Runner) ValidateEnvelope(ctx context.Context, e *layout.Envelope) (*Result, error) {
	if err := layout.CheckEnvelope(e); err != nil {
		return nil, err
	}
	input, err := layout.MarshalEnvelope(e)
	if err != nil {
		return nil, err
	}
	return r.run(ctx, job{
		kind:     validate.KindEnvelope,
		input:    input,
		elements: 0,
		key:      r.Keyer.EnvelopeKey,
		check:    func() (*validate.Report, error) { return r.Validator.ValidateEnvelope(e) },
	})
}

// ValidatePlan validates a room plan.
func (r *Runner) ValidatePlan(ctx context.Context, p *layout.Plan) (*Result, error) {
	if err := layout.CheckPlan(p); err != nil {
		return nil, err
	}
	input, err := layout.MarshalPlan(p)
	if err != nil {
		return nil, err
	}
	return r.run(ctx, job{
		kind:     validate.KindPlan,
		input:    input,
		elements: len(p.Elements),
		key:      r.Keyer.PlanKey,
		check:    func() (*validate.Report, error) { return r.Validator.ValidatePlan(p) },
	})
}

// Close releases the cache and the store.
func (r *Runner) Close() error {
	var first error
	if r.Cache != nil {
		first = r.Cache.Close()
	}
	if r.Store != nil {
		if err := r.Store.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// =============================================================================
// Shared run logic
// =============================================================================

type job struct {
	kind     validate.Kind
	input    []byte
	elements int
	key      func(string, cache.ReportKeyOpts) string
	check    func() (*validate.Report, error)
}

func (r *Runner) run(ctx context.Context, j job) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()
	res := &Result{
		RunID:     store.NewRunID(),
		InputHash: cache.Hash(j.input),
	}
	logger := r.Logger.With("run", res.RunID, "kind", j.kind)

	key, err := r.cacheKey(j, res.InputHash)
	if err != nil {
		return nil, err
	}

	if report, ok := r.lookup(ctx, logger, string(j.kind), key); ok {
		res.Report = report
		res.CacheHit = true
	} else {
		hooks := observability.Validation()
		hooks.OnValidateStart(ctx, string(j.kind), j.elements)
		vStart := time.Now()
		report, err := j.check()
		hooks.OnValidateComplete(ctx, string(j.kind), report.Len(), time.Since(vStart), err)
		if err != nil {
			return nil, err
		}
		res.Report = report
		r.save(ctx, logger, string(j.kind), key, report)
	}

	if !res.Report.OK() {
		rec := store.NewRecord(res.RunID, res.InputHash, res.Report)
		if err := r.Store.Save(ctx, rec); err != nil {
			logger.Warn("failed to store run", "error", err)
		} else {
			res.Stored = true
		}
	}

	res.Duration = time.Since(start)
	logger.Info("validated",
		"elements", j.elements,
		"issues", res.Report.Len(),
		"cached", res.CacheHit,
		"duration", res.Duration)
	return res, nil
}

func (r *Runner) cacheKey(j job, inputHash string) (string, error) {
	optsHash, err := cache.HashJSON(r.Validator.Options())
	if err != nil {
		return "", fmt.Errorf("hash options: %w", err)
	}
	return j.key(inputHash, cache.ReportKeyOpts{
		OptionsHash: optsHash,
		Version:     buildinfo.Version,
	}), nil
}

// lookup returns a cached report. Read failures and undecodable entries
// count as misses.
func (r *Runner) lookup(ctx context.Context, logger *log.Logger, kind, key string) (*validate.Report, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		logger.Warn("cache read failed", "error", err)
		return nil, false
	}
	if !hit {
		observability.Cache().OnCacheMiss(ctx, kind)
		return nil, false
	}
	var report validate.Report
	if err := json.Unmarshal(data, &report); err != nil {
		logger.Debug("discarding undecodable cache entry", "error", err)
		_ = r.Cache.Delete(ctx, key)
		observability.Cache().OnCacheMiss(ctx, kind)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, kind)
	logger.Debug("cache hit", "key", key)
	return &report, true
}

func (r *Runner) save(ctx context.Context, logger *log.Logger, kind, key string, report *validate.Report) {
	data, err := json.Marshal(report)
	if err != nil {
		logger.Warn("encode report for cache", "error", err)
		return
	}
	if err := r.Cache.Set(ctx, key, data, cache.TTLReport); err != nil {
		logger.Warn("cache write failed", "error", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, kind, len(data))
}
