// Package viewcache memoizes computed views in memory. Entries are keyed by
// the catalog contents, the query, and the query instant truncated to the
// minute, so a cached view never shows a stale local clock for long.
package viewcache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"sync/atomic"
	"time"

	"github.com/maypok86/otter/v2"

	"github.com/codeGROOVE-dev/tzmatch/pkg/location"
	"github.com/codeGROOVE-dev/tzmatch/pkg/tzmatch"
)

// Option configures a Cache.
type Option func(*OptionHolder)

// WithMaximumSize bounds the number of cached views.
func WithMaximumSize(n int) Option {
	return func(o *OptionHolder) {
		o.maximumSize = n
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *OptionHolder) {
		o.logger = logger
	}
}

// OptionHolder holds configuration options.
type OptionHolder struct {
	logger      *slog.Logger
	maximumSize int
}

// Cache memoizes tzmatch views. It is safe for concurrent use.
type Cache struct {
	cache  *otter.Cache[string, *tzmatch.View]
	engine *tzmatch.Engine
	logger *slog.Logger
	hits   atomic.Int64
	misses atomic.Int64
	ttl    time.Duration
}

// New creates a Cache in front of engine. Views expire ttl after they are written.
func New(engine *tzmatch.Engine, ttl time.Duration, opts ...Option) *Cache {
	optHolder := &OptionHolder{maximumSize: 1_000}
	for _, opt := range opts {
		opt(optHolder)
	}
	logger := optHolder.logger
	if logger == nil {
		logger = slog.Default()
	}

	cache := otter.Must(&otter.Options[string, *tzmatch.View]{
		MaximumSize:      optHolder.maximumSize,
		InitialCapacity:  min(optHolder.maximumSize, 64),
		ExpiryCalculator: otter.ExpiryWriting[string, *tzmatch.View](ttl),
	})

	return &Cache{
		cache:  cache,
		engine: engine,
		logger: logger,
		ttl:    ttl,
	}
}

// ComputeView returns the cached view for raw and q, computing and storing
// it on a miss. A zero q.Now is replaced by the current time. The returned
// view is a copy the caller may modify.
func (c *Cache) ComputeView(raw []location.RawRecord, q tzmatch.Query) (*tzmatch.View, error) {
	if q.Now.IsZero() {
		q.Now = time.Now()
	}
	q.Now = q.Now.UTC().Truncate(time.Minute)

	key, err := Key(raw, &q)
	if err != nil {
		return nil, err
	}

	if view, found := c.cache.GetIfPresent(key); found {
		c.hits.Add(1)
		c.logger.Debug("view cache hit", "reference", q.PrimaryReference, "key", key)
		return cloneView(view), nil
	}
	c.misses.Add(1)
	c.logger.Debug("view cache miss", "reference", q.PrimaryReference, "key", key)

	view, err := c.engine.ComputeView(raw, q)
	if err != nil {
		return nil, err
	}
	c.cache.Set(key, cloneView(view))
	return view, nil
}

// Invalidate drops the cached view for raw and q, if any.
func (c *Cache) Invalidate(raw []location.RawRecord, q tzmatch.Query) {
	if q.Now.IsZero() {
		q.Now = time.Now()
	}
	q.Now = q.Now.UTC().Truncate(time.Minute)
	key, err := Key(raw, &q)
	if err != nil {
		c.logger.Debug("invalidate skipped", "error", err)
		return
	}
	c.cache.Invalidate(key)
}

// Stats returns cache statistics.
func (c *Cache) Stats() map[string]any {
	return map[string]any{
		"entries": c.cache.EstimatedSize(),
		"hits":    c.hits.Load(),
		"misses":  c.misses.Load(),
		"ttl":     c.ttl.String(),
	}
}

// Key returns the cache key for raw and q. q.Now is used as given.
func Key(raw []location.RawRecord, q *tzmatch.Query) (string, error) {
	h := sha256.New()
	if err := json.NewEncoder(h).Encode(raw); err != nil {
		return "", fmt.Errorf("hashing catalog: %w", err)
	}
	if err := json.NewEncoder(h).Encode(q); err != nil {
		return "", fmt.Errorf("hashing query: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

func cloneView(v *tzmatch.View) *tzmatch.View {
	out := *v
	out.Primary = cloneLocation(v.Primary)
	out.Additional = cloneLocations(v.Additional)
	out.Locations = cloneLocations(v.Locations)
	return &out
}

func cloneLocations(locs []location.Location) []location.Location {
	if locs == nil {
		return nil
	}
	out := make([]location.Location, len(locs))
	for i := range locs {
		out[i] = cloneLocation(locs[i])
	}
	return out
}

func cloneLocation(l location.Location) location.Location {
	l.MainCities = slices.Clone(l.MainCities)
	l.Languages = slices.Clone(l.Languages)
	return l
}
