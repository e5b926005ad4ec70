// Package tzmatch compares world locations against a reference timezone:
// it normalizes a raw catalog, then filters, sorts, pins and paginates it.
package tzmatch

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/codeGROOVE-dev/tzmatch/pkg/constants"
	"github.com/codeGROOVE-dev/tzmatch/pkg/filter"
	"github.com/codeGROOVE-dev/tzmatch/pkg/langs"
	"github.com/codeGROOVE-dev/tzmatch/pkg/location"
	"github.com/codeGROOVE-dev/tzmatch/pkg/ordering"
	"github.com/codeGROOVE-dev/tzmatch/pkg/paginate"
)

var (
	// ErrInvalidCatalog is returned when no record in the catalog has a usable offset.
	ErrInvalidCatalog = errors.New("catalog has no record with a valid offset")
	// ErrUnknownReference is returned when an additional reference name is not in the catalog.
	ErrUnknownReference = errors.New("unknown reference")
)

// Engine computes views over a raw catalog. It holds configuration only and
// is safe for concurrent use.
type Engine struct {
	logger      *slog.Logger
	resolver    *langs.Resolver
	normalizer  *location.Normalizer
	now         func() time.Time
	tailCountry string
	pagination  paginate.Config
}

// New creates an Engine.
func New(opts ...Option) *Engine {
	optHolder := &OptionHolder{}
	for _, opt := range opts {
		opt(optHolder)
	}

	logger := optHolder.logger
	if logger == nil {
		logger = slog.Default()
	}
	resolver := optHolder.resolver
	if resolver == nil {
		resolver = langs.NewResolver(langs.DefaultTables())
	}
	now := optHolder.now
	if now == nil {
		now = time.Now
	}
	pagination := paginate.DefaultConfig()
	if optHolder.paginationSet {
		pagination = optHolder.pagination
	}

	return &Engine{
		logger:      logger,
		resolver:    resolver,
		normalizer:  location.NewNormalizer(resolver, logger),
		now:         now,
		tailCountry: optHolder.tailCountry,
		pagination:  pagination,
	}
}

// Resolver returns the language resolver the engine normalizes with.
func (e *Engine) Resolver() *langs.Resolver {
	return e.resolver
}

// ComputeView normalizes raw against the primary reference and returns the
// filtered, sorted and pinned locations. raw is not modified.
func (e *Engine) ComputeView(raw []location.RawRecord, q Query) (*View, error) {
	now := q.Now
	if now.IsZero() {
		now = e.now()
	}

	ref, fallback, err := e.primaryRecord(raw, q.PrimaryReference)
	if err != nil {
		return nil, err
	}
	refOffset := *ref.CurrentOffsetMinutes

	canonical := e.normalizer.Normalize(raw, now, &refOffset)
	primary, ok := find(canonical, location.Key{CountryCode: ref.CountryCode, OffsetMinutes: refOffset})
	if !ok {
		// Unreachable while Normalize keeps every record with an offset.
		return nil, fmt.Errorf("primary reference %q missing after normalization: %w", ref.Name, ErrInvalidCatalog)
	}

	additional, err := e.additionalReferences(raw, canonical, &q)
	if err != nil {
		return nil, err
	}

	key := q.SortKey
	if key == "" {
		key = ordering.ByProximityTier
	}
	dir := q.Direction
	if dir == "" {
		dir = ordering.Ascending
	}

	filtered := filter.Apply(canonical, q.Criteria, &primary, additional...)
	sorted := ordering.Sort(filtered, key, dir, &primary)
	pinned := ordering.Pin(sorted, &primary, additional, e.tailCountry)

	e.logger.Debug("computed view",
		"reference", primary.Name,
		"offset", refOffset,
		"canonical", len(canonical),
		"filtered", len(filtered),
		"additional", len(additional),
		"locations", len(pinned))

	return &View{
		Primary:    primary,
		Additional: additional,
		Locations:  pinned,
		Fallback:   fallback,
	}, nil
}

// Paginate plans pages for total items with the engine's pagination config.
func (e *Engine) Paginate(total int) paginate.Result {
	return paginate.Plan(total, e.pagination)
}

// primaryRecord finds the record named name. When it is missing or has no
// offset, the first UTC record is used, else the first record with an offset.
func (e *Engine) primaryRecord(raw []location.RawRecord, name string) (*location.RawRecord, bool, error) {
	var firstValid, firstUTC *location.RawRecord
	for i := range raw {
		r := &raw[i]
		if r.CurrentOffsetMinutes == nil {
			continue
		}
		if r.Name == name {
			return r, false, nil
		}
		if firstValid == nil {
			firstValid = r
		}
		if firstUTC == nil && *r.CurrentOffsetMinutes == 0 {
			firstUTC = r
		}
	}

	fallback := firstUTC
	if fallback == nil {
		fallback = firstValid
	}
	if fallback == nil {
		return nil, false, ErrInvalidCatalog
	}
	e.logger.Warn("reference timezone not found, using fallback",
		"requested", name,
		"fallback", fallback.Name,
		"offset", *fallback.CurrentOffsetMinutes)
	return fallback, true, nil
}

// additionalReferences resolves q.AdditionalNames, merges them with
// q.Additional and trims the result to the reference limit.
func (e *Engine) additionalReferences(raw []location.RawRecord, canonical []location.Location, q *Query) ([]location.Location, error) {
	refs := make([]location.Location, 0, len(q.Additional)+len(q.AdditionalNames))
	seen := make(map[location.Key]bool)
	add := func(loc location.Location) {
		if seen[loc.Key()] {
			return
		}
		seen[loc.Key()] = true
		refs = append(refs, loc)
	}

	for i := range q.Additional {
		add(q.Additional[i])
	}
	for _, name := range q.AdditionalNames {
		rec := recordByName(raw, name)
		if rec == nil {
			return nil, fmt.Errorf("resolving additional reference %q: %w", name, ErrUnknownReference)
		}
		loc, ok := find(canonical, location.Key{CountryCode: rec.CountryCode, OffsetMinutes: *rec.CurrentOffsetMinutes})
		if !ok {
			return nil, fmt.Errorf("resolving additional reference %q: %w", name, ErrUnknownReference)
		}
		add(loc)
	}

	if len(refs) > constants.MaxAdditionalReferences {
		e.logger.Warn("too many additional references, ignoring extras",
			"count", len(refs),
			"limit", constants.MaxAdditionalReferences)
		refs = refs[:constants.MaxAdditionalReferences]
	}
	return refs, nil
}

func recordByName(raw []location.RawRecord, name string) *location.RawRecord {
	for i := range raw {
		if raw[i].Name == name && raw[i].CurrentOffsetMinutes != nil {
			return &raw[i]
		}
	}
	return nil
}

func find(locs []location.Location, key location.Key) (location.Location, bool) {
	for i := range locs {
		if locs[i].Key() == key {
			return locs[i], true
		}
	}
	return location.Location{}, false
}
