package tzmatch

import (
	"log/slog"
	"time"

	"github.com/codeGROOVE-dev/tzmatch/pkg/langs"
	"github.com/codeGROOVE-dev/tzmatch/pkg/paginate"
)

// Option configures an Engine.
type Option func(*OptionHolder)

// WithLogger sets the logger used by the engine and its normalizer.
func WithLogger(logger *slog.Logger) Option {
	return func(o *OptionHolder) {
		o.logger = logger
	}
}

// WithTables replaces the embedded language and country tables.
func WithTables(t langs.Tables) Option {
	return func(o *OptionHolder) {
		o.resolver = langs.NewResolver(t)
	}
}

// WithResolver sets a prebuilt resolver. It takes precedence over WithTables.
func WithResolver(r *langs.Resolver) Option {
	return func(o *OptionHolder) {
		o.resolver = r
	}
}

// WithTailCountry sets the country whose locations are always listed last.
func WithTailCountry(countryCode string) Option {
	return func(o *OptionHolder) {
		o.tailCountry = countryCode
	}
}

// WithPagination overrides the default page sizing.
func WithPagination(cfg paginate.Config) Option {
	return func(o *OptionHolder) {
		o.pagination = cfg
		o.paginationSet = true
	}
}

// WithClock sets the function used for the current instant when a Query has none.
func WithClock(now func() time.Time) Option {
	return func(o *OptionHolder) {
		o.now = now
	}
}

// OptionHolder holds configuration options.
type OptionHolder struct {
	logger        *slog.Logger
	resolver      *langs.Resolver
	now           func() time.Time
	tailCountry   string
	pagination    paginate.Config
	paginationSet bool
}
