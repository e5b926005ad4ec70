// Package main implements the tzmatch CLI for comparing local times around the world.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/codeGROOVE-dev/tzmatch/pkg/catalog"
	"github.com/codeGROOVE-dev/tzmatch/pkg/filter"
	"github.com/codeGROOVE-dev/tzmatch/pkg/location"
	"github.com/codeGROOVE-dev/tzmatch/pkg/ordering"
	"github.com/codeGROOVE-dev/tzmatch/pkg/proximity"
	"github.com/codeGROOVE-dev/tzmatch/pkg/render"
	"github.com/codeGROOVE-dev/tzmatch/pkg/tzconvert"
	"github.com/codeGROOVE-dev/tzmatch/pkg/tzmatch"
	"github.com/codeGROOVE-dev/tzmatch/pkg/viewcache"
)

var (
	catalogPath = flag.String("catalog", "", "JSON timezone catalog (or set TZMATCH_CATALOG); defaults to the built-in zone list")
	reference   = flag.String("reference", "", "Reference timezone name or UTC offset such as +05:30 (or set TZMATCH_REFERENCE)")
	languages   = flag.String("lang", "", "Comma-separated language codes to keep, e.g. en,de")
	proximities = flag.String("proximity", "", "Comma-separated proximity categories: same,close,reverse,different")
	timesOfDay  = flag.String("time-of-day", "", "Comma-separated buckets: early-morning,morning,afternoon,evening,night,late-night")
	sortKey     = flag.String("sort", "proximity", "Sort key: proximity or name")
	direction   = flag.String("direction", "asc", "Sort direction: asc or desc")
	compare     = flag.String("compare", "", "Comma-separated additional reference timezones (at most 3)")
	tailCountry = flag.String("tail-country", "", "Country code always listed last (or set TZMATCH_TAIL_COUNTRY)")
	page        = flag.Int("page", 1, "Page to show")
	at          = flag.String("at", "", "Instant to compute local times for (RFC 3339); defaults to now")
	jsonOutput  = flag.Bool("json", false, "Print the view as JSON")
	watch       = flag.Duration("watch", 0, "Redraw at this interval until interrupted")
	verbose     = flag.Bool("verbose", false, "Enable verbose logging")
	version     = flag.Bool("version", false, "Show version")
)

func main() {
	flag.Parse()

	if *version {
		fmt.Println("tzmatch CLI v1.0.0")
		return
	}

	level := slog.LevelError
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	if *catalogPath == "" {
		*catalogPath = os.Getenv("TZMATCH_CATALOG")
	}
	if *reference == "" {
		*reference = os.Getenv("TZMATCH_REFERENCE")
	}
	if *reference == "" {
		*reference = localZoneName()
	}
	if *tailCountry == "" {
		*tailCountry = os.Getenv("TZMATCH_TAIL_COUNTRY")
	}

	query, err := buildQuery()
	if err != nil {
		fmt.Fprintf(os.Stderr, "tzmatch: %v\n", err)
		flag.PrintDefaults()
		os.Exit(2)
	}

	engine := tzmatch.New(
		tzmatch.WithLogger(logger),
		tzmatch.WithTailCountry(*tailCountry),
	)

	if *watch <= 0 {
		if err := run(engine.ComputeView, engine, query, logger); err != nil {
			logger.Error("computing view failed", "error", err)
			os.Exit(1)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cache := viewcache.New(engine, time.Minute, viewcache.WithLogger(logger))
	ticker := time.NewTicker(*watch)
	defer ticker.Stop()
	for {
		fmt.Print("\033[H\033[2J")
		if err := run(cache.ComputeView, engine, query, logger); err != nil {
			logger.Error("computing view failed", "error", err)
			os.Exit(1)
		}
		select {
		case <-ctx.Done():
			logger.Debug("watch stopped", "cache", cache.Stats())
			return
		case <-ticker.C:
		}
	}
}

type computeFunc func([]location.RawRecord, tzmatch.Query) (*tzmatch.View, error)

func run(compute computeFunc, engine *tzmatch.Engine, q tzmatch.Query, logger *slog.Logger) error {
	if q.Now.IsZero() {
		q.Now = time.Now()
	}

	raw, err := loadCatalog(q.Now, logger)
	if err != nil {
		return err
	}
	q.PrimaryReference = referenceName(raw, q.PrimaryReference)

	view, err := compute(raw, q)
	if err != nil {
		return fmt.Errorf("computing view: %w", err)
	}

	if *jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	}

	layout := engine.Paginate(len(view.Locations))
	fmt.Print(render.Table(view, *page, layout))
	return nil
}

func loadCatalog(now time.Time, logger *slog.Logger) ([]location.RawRecord, error) {
	if *catalogPath == "" {
		return catalog.Build(catalog.DefaultZones(), now, logger), nil
	}
	f, err := os.Open(*catalogPath)
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			logger.Debug("failed to close catalog", "error", closeErr)
		}
	}()
	return catalog.Load(f)
}

func buildQuery() (tzmatch.Query, error) {
	q := tzmatch.Query{
		PrimaryReference: *reference,
		AdditionalNames:  splitList(*compare),
		Criteria: filter.Criteria{
			Languages: splitList(*languages),
		},
	}

	if *at != "" {
		t, err := time.Parse(time.RFC3339, *at)
		if err != nil {
			return q, fmt.Errorf("parsing -at: %w", err)
		}
		q.Now = t
	}

	for _, s := range splitList(*proximities) {
		c, err := proximity.ParseCategory(s)
		if err != nil {
			return q, err
		}
		q.Criteria.Proximity = append(q.Criteria.Proximity, c)
	}
	for _, s := range splitList(*timesOfDay) {
		tod, err := location.ParseTimeOfDay(s)
		if err != nil {
			return q, err
		}
		q.Criteria.TimesOfDay = append(q.Criteria.TimesOfDay, tod)
	}

	key, err := ordering.ParseKey(*sortKey)
	if err != nil {
		return q, err
	}
	q.SortKey = key

	dir, err := ordering.ParseDirection(*direction)
	if err != nil {
		return q, err
	}
	q.Direction = dir
	return q, nil
}

// referenceName maps an offset such as "+05:30" to the first catalog record
// at that offset. Anything else is returned unchanged.
func referenceName(raw []location.RawRecord, ref string) string {
	offset, err := tzconvert.ParseOffset(ref)
	if err != nil {
		return ref
	}
	for i := range raw {
		if raw[i].CurrentOffsetMinutes != nil && *raw[i].CurrentOffsetMinutes == offset {
			return raw[i].Name
		}
	}
	return ref
}

func localZoneName() string {
	if tz := os.Getenv("TZ"); tz != "" {
		return strings.TrimPrefix(tz, ":")
	}
	if name := time.Local.String(); name != "Local" {
		return name
	}
	_, offset := time.Now().Zone()
	return tzconvert.FormatOffset(offset / 60)
}

func splitList(s string) []string {
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
