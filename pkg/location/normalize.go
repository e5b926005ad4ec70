package location

import (
	"log/slog"
	"slices"
	"time"

	"github.com/codeGROOVE-dev/tzmatch/pkg/langs"
	"github.com/codeGROOVE-dev/tzmatch/pkg/tzconvert"
)

// similarHours is the widest offset distance, in hours, that still counts as a similar time.
const similarHours = 2

// Normalizer builds canonical locations from raw catalog records.
type Normalizer struct {
	resolver *langs.Resolver
	logger   *slog.Logger
}

// NewNormalizer returns a Normalizer that resolves languages with r.
// A nil logger falls back to slog.Default().
func NewNormalizer(r *langs.Resolver, logger *slog.Logger) *Normalizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Normalizer{resolver: r, logger: logger}
}

// Normalize converts raw records into merged canonical locations as of now.
// referenceOffset is the primary reference's offset in minutes; when nil every
// location has IsSimilarTime false. Records without an offset are skipped.
func (n *Normalizer) Normalize(raw []RawRecord, now time.Time, referenceOffset *int) []Location {
	out := make([]Location, 0, len(raw))
	dropped := 0
	for i := range raw {
		loc, ok := n.normalizeOne(&raw[i], now, referenceOffset)
		if !ok {
			dropped++
			n.logger.Debug("dropping record without offset", "name", raw[i].Name, "country", raw[i].CountryCode)
			continue
		}
		out = append(out, loc)
	}

	merged := Merge(out)
	n.logger.Debug("normalized catalog",
		"raw", len(raw),
		"dropped", dropped,
		"canonical", len(merged))
	return merged
}

func (n *Normalizer) normalizeOne(r *RawRecord, now time.Time, referenceOffset *int) (Location, bool) {
	if r.CurrentOffsetMinutes == nil {
		return Location{}, false
	}
	offset := *r.CurrentOffsetMinutes
	hour, minute := tzconvert.LocalClock(now, offset)

	return Location{
		Name:            r.Name,
		AlternativeName: r.AlternativeName,
		CountryName:     r.CountryName,
		CountryCode:     r.CountryCode,
		Emoji:           n.resolver.Emoji(r.CountryCode),
		MainCities:      appendCities(nil, r.MainCities),
		Languages:       n.resolver.Languages(r.CountryCode),
		OffsetMinutes:   offset,
		LocalHour:       hour,
		LocalMinute:     minute,
		IsSimilarTime:   IsSimilarTime(offset, referenceOffset),
	}, true
}

// IsSimilarTime reports whether offset lies within two hours of the reference.
// It is false when there is no reference.
func IsSimilarTime(offset int, referenceOffset *int) bool {
	if referenceOffset == nil {
		return false
	}
	return tzconvert.HourDiff(offset, *referenceOffset) <= similarHours
}

// Merge collapses locations sharing a (CountryCode, OffsetMinutes) key. The
// first location of each group is kept and the city lists of the rest are
// appended to it, skipping exact duplicates. Groups are returned in the order
// their first member appeared. The input is not modified.
func Merge(locs []Location) []Location {
	out := make([]Location, 0, len(locs))
	index := make(map[Key]int, len(locs))
	for i := range locs {
		key := locs[i].Key()
		if at, ok := index[key]; ok {
			out[at].MainCities = appendCities(out[at].MainCities, locs[i].MainCities)
			continue
		}
		base := locs[i]
		base.MainCities = appendCities(nil, base.MainCities)
		base.Languages = slices.Clone(base.Languages)
		index[key] = len(out)
		out = append(out, base)
	}
	return out
}

// appendCities appends the cities not already present in dst.
func appendCities(dst, cities []string) []string {
	for _, c := range cities {
		if !slices.Contains(dst, c) {
			dst = append(dst, c)
		}
	}
	return dst
}
