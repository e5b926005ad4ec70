// Package filter selects canonical locations by language, proximity and time of day.
//
// Values within one dimension are alternatives (OR); dimensions are combined
// with AND. An empty dimension does not constrain the result.
package filter

import (
	"slices"
	"strings"

	"github.com/codeGROOVE-dev/tzmatch/pkg/location"
	"github.com/codeGROOVE-dev/tzmatch/pkg/proximity"
)

// Criteria is a user's filter selection.
type Criteria struct {
	Languages  []string             `json:"languages,omitempty"`
	Proximity  []proximity.Category `json:"proximity,omitempty"`
	TimesOfDay []location.TimeOfDay `json:"times_of_day,omitempty"`
}

// IsEmpty reports whether no dimension is constrained.
func (c *Criteria) IsEmpty() bool {
	return len(c.Languages) == 0 && len(c.Proximity) == 0 && len(c.TimesOfDay) == 0
}

// Apply returns the locations matching c, in input order. primary may be nil;
// additional holds the other selected references.
func Apply(set []location.Location, c Criteria, primary *location.Location, additional ...location.Location) []location.Location {
	if c.IsEmpty() {
		return slices.Clone(set)
	}
	out := make([]location.Location, 0, len(set))
	for i := range set {
		if Matches(&set[i], &c, primary, additional) {
			out = append(out, set[i])
		}
	}
	return out
}

// Matches reports whether a single location passes every dimension of c.
func Matches(loc *location.Location, c *Criteria, primary *location.Location, additional []location.Location) bool {
	return matchesLanguage(loc, c.Languages) &&
		matchesProximity(loc, c.Proximity, primary, additional) &&
		matchesTimeOfDay(loc, c.TimesOfDay)
}

func matchesLanguage(loc *location.Location, codes []string) bool {
	if len(codes) == 0 {
		return true
	}
	for _, code := range codes {
		if loc.Languages.Contains(strings.TrimSpace(code)) {
			return true
		}
	}
	return false
}

func matchesProximity(loc *location.Location, selected []proximity.Category, primary *location.Location, additional []location.Location) bool {
	if len(selected) == 0 {
		return true
	}
	// IsSimilarTime was computed against the primary reference only.
	if primary != nil && slices.Contains(selected, proximity.Classify(loc.OffsetMinutes, primary.OffsetMinutes, loc.IsSimilarTime)) {
		return true
	}
	for i := range additional {
		if slices.Contains(selected, proximity.Classify(loc.OffsetMinutes, additional[i].OffsetMinutes, false)) {
			return true
		}
	}
	return false
}

func matchesTimeOfDay(loc *location.Location, selected []location.TimeOfDay) bool {
	if len(selected) == 0 {
		return true
	}
	return slices.Contains(selected, loc.TimeOfDay())
}
