// Package location turns raw timezone catalog records into canonical,
// deduplicated locations.
package location

import (
	"fmt"
	"strings"

	"github.com/codeGROOVE-dev/tzmatch/pkg/langs"
)

// RawRecord is a timezone catalog entry as supplied by the caller.
// CurrentOffsetMinutes is nil when the catalog had no usable offset.
type RawRecord struct {
	CurrentOffsetMinutes *int     `json:"currentTimeOffsetInMinutes,omitempty"`
	Name                 string   `json:"name"`
	AlternativeName      string   `json:"alternativeName"`
	CountryCode          string   `json:"countryCode"`
	CountryName          string   `json:"countryName"`
	MainCities           []string `json:"mainCities"`
}

// Location is a canonical timezone record. There is at most one Location per
// (CountryCode, OffsetMinutes) pair.
type Location struct {
	Name            string    `json:"name"`
	AlternativeName string    `json:"alternative_name"`
	CountryName     string    `json:"country_name"`
	CountryCode     string    `json:"country_code"`
	Emoji           string    `json:"emoji"`
	MainCities      []string  `json:"main_cities"`
	Languages       langs.Set `json:"languages"`
	OffsetMinutes   int       `json:"offset_minutes"`
	LocalHour       int       `json:"local_hour"`
	LocalMinute     int       `json:"local_minute"`
	IsSimilarTime   bool      `json:"is_similar_time"`
}

// Key identifies a canonical location.
type Key struct {
	CountryCode   string
	OffsetMinutes int
}

// Key returns the merge key of l.
func (l *Location) Key() Key {
	return Key{CountryCode: l.CountryCode, OffsetMinutes: l.OffsetMinutes}
}

// TimeOfDay is a coarse bucket of the local hour.
type TimeOfDay string

// Time-of-day buckets.
const (
	EarlyMorning TimeOfDay = "early-morning" // 04:00-07:59
	Morning      TimeOfDay = "morning"       // 08:00-11:59
	Afternoon    TimeOfDay = "afternoon"     // 12:00-15:59
	Evening      TimeOfDay = "evening"       // 16:00-19:59
	Night        TimeOfDay = "night"         // 20:00-23:59
	LateNight    TimeOfDay = "late-night"    // 00:00-03:59
)

// TimesOfDay lists every bucket in clock order starting at 04:00.
var TimesOfDay = []TimeOfDay{EarlyMorning, Morning, Afternoon, Evening, Night, LateNight}

// TimeOfDayFor returns the bucket of a local hour.
func TimeOfDayFor(hour int) TimeOfDay {
	switch {
	case hour >= 4 && hour < 8:
		return EarlyMorning
	case hour >= 8 && hour < 12:
		return Morning
	case hour >= 12 && hour < 16:
		return Afternoon
	case hour >= 16 && hour < 20:
		return Evening
	case hour >= 20 && hour < 24:
		return Night
	default:
		return LateNight
	}
}

// TimeOfDay returns the bucket of the location's local hour.
func (l *Location) TimeOfDay() TimeOfDay {
	return TimeOfDayFor(l.LocalHour)
}

// ParseTimeOfDay accepts a bucket name, ignoring case and treating "_" and " " like "-".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	norm := strings.NewReplacer("_", "-", " ", "-").Replace(strings.ToLower(strings.TrimSpace(s)))
	for _, t := range TimesOfDay {
		if string(t) == norm {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown time of day %q", s)
}
