package pipeline

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/AndySiamas/LayoutLens/pkg/cache"
	"github.com/AndySiamas/LayoutLens/pkg/errors"
	"github.com/AndySiamas/LayoutLens/pkg/layout"
	"github.com/AndySiamas/LayoutLens/pkg/observability"
	"github.com/AndySiamas/LayoutLens/pkg/store"
	"github.com/AndySiamas/LayoutLens/pkg/validate"
)

// memCache is an in-memory Cache that counts operations.
type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
	sets int
}

func newMemCache() *memCache { return &memCache{data: map[string][]byte{}} }

func (c *memCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	d, ok := c.data[key]
	return d, ok, nil
}

func (c *memCache) Set(_ context.Context, key string, data []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
	c.sets++
	return nil
}

func (c *memCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

func (c *memCache) Close() error { return nil }

type cacheEvents struct {
	mu                sync.Mutex
	hits, misses, set int
}

func (h *cacheEvents) OnCacheHit(context.Context, string) {
	h.mu.Lock()
	h.hits++
	h.mu.Unlock()
}

func (h *cacheEvents) OnCacheMiss(context.Context, string) {
	h.mu.Lock()
	h.misses++
	h.mu.Unlock()
}

func (h *cacheEvents) OnCacheSet(context.Context, string, int) {
	h.mu.Lock()
	h.set++
	h.mu.Unlock()
}

func quietLogger() *log.Logger {
	return log.New(&bytes.Buffer{})
}

func room() layout.Envelope {
	return layout.Envelope{
		Boundary: []layout.Point2D{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 3}, {X: 0, Y: 3}},
		Height:   layout.DefaultHeight,
	}
}

func overlappingPlan() *layout.Plan {
	return &layout.Plan{
		Space: room(),
		Elements: []layout.Element{
			{ID: "a", Label: "Chair", Transform: layout.Transform{X: 1, Y: 1}, Footprint: layout.Rect{Width: 1, Depth: 1}},
			{ID: "b", Label: "Table", Transform: layout.Transform{X: 1.5, Y: 1}, Footprint: layout.Rect{Width: 1, Depth: 1}},
		},
	}
}

func acceptedPlan() *layout.Plan {
	return &layout.Plan{
		Space: room(),
		Elements: []layout.Element{
			{ID: "bed", Label: "Bed", Transform: layout.Transform{X: 2, Y: 1.5}, Footprint: layout.Rect{Width: 1, Depth: 2}},
		},
	}
}

func TestNewRunnerDefaults(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	if r.Cache == nil || r.Keyer == nil || r.Logger == nil || r.Store == nil || r.Validator == nil {
		t.Fatalf("NewRunner(nil, nil, nil) left a nil field: %+v", r)
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestValidatePlanCaches(t *testing.T) {
	defer observability.Reset()
	events := &cacheEvents{}
	observability.SetCacheHooks(events)

	ctx := context.Background()
	c := newMemCache()
	r := NewRunner(c, nil, quietLogger())

	first, err := r.ValidatePlan(ctx, overlappingPlan())
	if err != nil {
		t.Fatalf("ValidatePlan: %v", err)
	}
	if first.CacheHit {
		t.Error("first run should miss the cache")
	}
	if first.Accepted() || first.Report.Len() != 1 {
		t.Fatalf("first run report = %v, want one issue", first.Report)
	}

	second, err := r.ValidatePlan(ctx, overlappingPlan())
	if err != nil {
		t.Fatalf("ValidatePlan: %v", err)
	}
	if !second.CacheHit {
		t.Error("second run should hit the cache")
	}
	if second.Report.String() != first.Report.String() {
		t.Errorf("cached report differs:\n%s\nvs\n%s", second.Report, first.Report)
	}
	if second.RunID == first.RunID {
		t.Error("every run should get its own run id")
	}
	if second.InputHash != first.InputHash {
		t.Error("same input should hash the same")
	}
	if c.sets != 1 {
		t.Errorf("cache sets = %d, want 1", c.sets)
	}
	if events.hits != 1 || events.misses != 1 || events.set != 1 {
		t.Errorf("cache hooks hits=%d misses=%d sets=%d, want 1/1/1", events.hits, events.misses, events.set)
	}
}

func TestValidatePlanOptionsChangeKey(t *testing.T) {
	ctx := context.Background()
	c := newMemCache()

	strict := NewRunner(c, nil, quietLogger())
	if _, err := strict.ValidatePlan(ctx, overlappingPlan()); err != nil {
		t.Fatal(err)
	}

	loose := NewRunner(c, nil, quietLogger())
	opts := validate.DefaultOptions()
	opts.OverlapAreaTolerance = 1.0
	loose.Validator = validate.New(opts)

	res, err := loose.ValidatePlan(ctx, overlappingPlan())
	if err != nil {
		t.Fatal(err)
	}
	if res.CacheHit {
		t.Error("different options must not share a cache entry")
	}
	if !res.Accepted() {
		t.Errorf("0.5 m² overlap should pass a 1.0 m² tolerance, got %v", res.Report)
	}
}

func TestValidatePlanStoresRejectedRuns(t *testing.T) {
	ctx := context.Background()
	st, err := store.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(nil, nil, quietLogger())
	r.Store = st

	rejected, err := r.ValidatePlan(ctx, overlappingPlan())
	if err != nil {
		t.Fatal(err)
	}
	if !rejected.Stored {
		t.Fatal("rejected run should be stored")
	}
	rec, err := st.Get(ctx, rejected.RunID)
	if err != nil {
		t.Fatalf("store.Get: %v", err)
	}
	if rec.Text != rejected.Report.String() || rec.InputHash != rejected.InputHash {
		t.Errorf("stored record = %+v", rec)
	}

	accepted, err := r.ValidatePlan(ctx, acceptedPlan())
	if err != nil {
		t.Fatal(err)
	}
	if !accepted.Accepted() {
		t.Fatalf("plan should be accepted, got %v", accepted.Report)
	}
	if accepted.Stored {
		t.Error("accepted run should not be stored")
	}
}

func TestValidatePlanStructuralError(t *testing.T) {
	ctx := context.Background()
	c := newMemCache()
	r := NewRunner(c, nil, quietLogger())

	p := acceptedPlan()
	p.Elements[0].ID = "Bad-ID"
	_, err := r.ValidatePlan(ctx, p)
	if !errors.Is(err, errors.ErrCodeInvalidElementID) {
		t.Fatalf("ValidatePlan() error = %v, want INVALID_ELEMENT_ID", err)
	}
	if c.sets != 0 {
		t.Error("structural errors must not be cached")
	}
}

func TestValidateEnvelope(t *testing.T) {
	ctx := context.Background()
	r := NewRunner(newMemCache(), nil, quietLogger())

	env := room()
	res, err := r.ValidateEnvelope(ctx, &env)
	if err != nil {
		t.Fatalf("ValidateEnvelope: %v", err)
	}
	if !res.Accepted() || res.Report.Kind != validate.KindEnvelope {
		t.Errorf("ValidateEnvelope() = %+v", res.Report)
	}

	env.Openings = []layout.Opening{{Kind: layout.OpeningDoor, EdgeIndex: 9, Center: 0.5, Width: 0.9}}
	res, err = r.ValidateEnvelope(ctx, &env)
	if err != nil {
		t.Fatalf("ValidateEnvelope: %v", err)
	}
	if res.Accepted() {
		t.Error("opening on a missing edge should be rejected")
	}
}

func TestValidateCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := NewRunner(nil, nil, quietLogger())
	if _, err := r.ValidatePlan(ctx, acceptedPlan()); err != context.Canceled {
		t.Errorf("ValidatePlan() error = %v, want context.Canceled", err)
	}
}

func TestValidateUndecodableCacheEntry(t *testing.T) {
	ctx := context.Background()
	c := newMemCache()
	r := NewRunner(c, nil, quietLogger())

	first, err := r.ValidatePlan(ctx, overlappingPlan())
	if err != nil {
		t.Fatal(err)
	}
	for k := range c.data {
		c.data[k] = []byte("{not json")
	}

	again, err := r.ValidatePlan(ctx, overlappingPlan())
	if err != nil {
		t.Fatal(err)
	}
	if again.CacheHit {
		t.Error("undecodable entry should count as a miss")
	}
	if again.Report.String() != first.Report.String() {
		t.Error("recomputed report should match the original")
	}
}

var _ cache.Cache = (*memCache)(nil)

func TestResultSummary(t *testing.T) {
	ctx := context.Background()
	r := NewRunner(nil, nil, quietLogger())

	ok, err := r.ValidatePlan(ctx, acceptedPlan())
	if err != nil {
		t.Fatal(err)
	}
	s := ok.Summary()
	if !s.Accepted || s.Issues == nil || len(s.Issues) != 0 || s.Report != "" || s.Kind != validate.KindPlan {
		t.Errorf("Summary() of accepted run = %+v", s)
	}

	bad, err := r.ValidatePlan(ctx, overlappingPlan())
	if err != nil {
		t.Fatal(err)
	}
	s = bad.Summary()
	if s.Accepted || len(s.Issues) != 1 || s.RunID != bad.RunID || s.Report != bad.Report.String() {
		t.Errorf("Summary() of rejected run = %+v", s)
	}
}
