// Package ordering sorts canonical locations and pins selected references.
package ordering

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/codeGROOVE-dev/tzmatch/pkg/location"
	"github.com/codeGROOVE-dev/tzmatch/pkg/proximity"
	"github.com/codeGROOVE-dev/tzmatch/pkg/tzconvert"
)

// Key selects the sort order.
type Key string

// Sort keys.
const (
	ByProximityTier Key = "proximity"
	ByName          Key = "name"
)

// Direction of the primary sort key.
type Direction string

// Directions.
const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// UnclassifiedTier is used when there is no primary reference to compare against.
const UnclassifiedTier = 9

type tierKey struct {
	category proximity.Category
	match    bool
}

var tiers = map[tierKey]int{
	{proximity.SameTime, true}:       1,
	{proximity.SameTime, false}:      2,
	{proximity.CloseTime, true}:      3,
	{proximity.CloseTime, false}:     4,
	{proximity.ReverseTime, true}:    5,
	{proximity.ReverseTime, false}:   6,
	{proximity.DifferentTime, true}:  7,
	{proximity.DifferentTime, false}: 8,
}

// Tier ranks a location against the primary reference: lower is closer, and a
// shared language ranks ahead of no shared language within the same category.
func Tier(loc, primary *location.Location) int {
	if primary == nil {
		return UnclassifiedTier
	}
	category := proximity.Classify(loc.OffsetMinutes, primary.OffsetMinutes, loc.IsSimilarTime)
	tier, ok := tiers[tierKey{category: category, match: loc.Languages.Intersects(primary.Languages)}]
	if !ok {
		return UnclassifiedTier
	}
	return tier
}

// Sort returns a stably sorted copy of locs. Only the primary key honors dir:
// proximity ties are always broken by ascending hour distance from primary.
func Sort(locs []location.Location, key Key, dir Direction, primary *location.Location) []location.Location {
	out := slices.Clone(locs)
	sign := 1
	if dir == Descending {
		sign = -1
	}

	switch key {
	case ByName:
		col := collate.New(language.English)
		slices.SortStableFunc(out, func(a, b location.Location) int {
			return sign * col.CompareString(a.CountryName, b.CountryName)
		})
	default:
		slices.SortStableFunc(out, func(a, b location.Location) int {
			if c := cmp.Compare(Tier(&a, primary), Tier(&b, primary)); c != 0 {
				return sign * c
			}
			return cmp.Compare(hourDistance(&a, primary), hourDistance(&b, primary))
		})
	}
	return out
}

func hourDistance(loc, primary *location.Location) float64 {
	if primary == nil {
		return 0
	}
	return tzconvert.HourDiff(loc.OffsetMinutes, primary.OffsetMinutes)
}

// ParseKey accepts "proximity" (the default for an empty string) or "name".
func ParseKey(s string) (Key, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "proximity", "tier":
		return ByProximityTier, nil
	case "name", "country":
		return ByName, nil
	default:
		return "", fmt.Errorf("unknown sort key %q", s)
	}
}

// ParseDirection accepts "asc" (the default for an empty string) or "desc".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	default:
		return "", fmt.Errorf("unknown sort direction %q", s)
	}
}
