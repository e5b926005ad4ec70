// Package tzconvert provides UTC offset utilities.
// Offsets are always carried as integer minutes east of UTC.
// Wall-clock fields are derived from the UTC representation of an instant so
// the result never depends on the host's local timezone.
package tzconvert

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// LocalClock returns the wall-clock hour and minute at offsetMinutes for the given instant.
// Example: LocalClock(15:30 UTC, -240) returns 11, 30 (EDT)
// Example: LocalClock(20:00 UTC, 480) returns 4, 0 (CST, next day)
// Example: LocalClock(10:00 UTC, 345) returns 15, 45 (Nepal)
func LocalClock(now time.Time, offsetMinutes int) (hour, minute int) {
	local := now.UTC().Add(time.Duration(offsetMinutes) * time.Minute)
	return local.Hour(), local.Minute()
}

// HourDiff returns the absolute distance between two offsets in hours.
// Example: HourDiff(0, 150) returns 2.5
func HourDiff(a, b int) float64 {
	return math.Abs(float64(a-b)) / 60
}

// FormatOffset renders an offset as UTC±HH:MM.
// Example: FormatOffset(330) returns "UTC+05:30"
// Example: FormatOffset(-300) returns "UTC-05:00"
func FormatOffset(offsetMinutes int) string {
	sign := "+"
	if offsetMinutes < 0 {
		sign = "-"
		offsetMinutes = -offsetMinutes
	}
	return fmt.Sprintf("UTC%s%02d:%02d", sign, offsetMinutes/60, offsetMinutes%60)
}

// ParseOffset extracts an offset in minutes from a UTC offset string.
// Accepted forms:
//   - "UTC" or "GMT" returns 0
//   - "UTC+8", "UTC-4" returns whole hours
//   - "UTC+05:30", "+0545", "-03:30" returns hours and minutes
func ParseOffset(s string) (int, error) {
	str := strings.TrimSpace(strings.ToUpper(s))
	str = strings.TrimPrefix(str, "UTC")
	str = strings.TrimPrefix(str, "GMT")
	if str == "" {
		return 0, nil
	}

	sign := 1
	switch str[0] {
	case '-':
		sign = -1
		str = str[1:]
	case '+':
		str = str[1:]
	default:
		return 0, fmt.Errorf("offset %q: missing sign", s)
	}

	hoursStr, minutesStr := str, ""
	if h, m, found := strings.Cut(str, ":"); found {
		hoursStr, minutesStr = h, m
	} else if len(str) == 4 {
		hoursStr, minutesStr = str[:2], str[2:]
	}

	hours, err := strconv.Atoi(hoursStr)
	if err != nil {
		return 0, fmt.Errorf("offset %q: parsing hours: %w", s, err)
	}
	minutes := 0
	if minutesStr != "" {
		minutes, err = strconv.Atoi(minutesStr)
		if err != nil {
			return 0, fmt.Errorf("offset %q: parsing minutes: %w", s, err)
		}
	}
	if hours > 14 || minutes >= 60 {
		return 0, fmt.Errorf("offset %q: out of range", s)
	}

	return sign * (hours*60 + minutes), nil
}

// ZoneOffsetMinutes returns the offset of an IANA zone at the given instant.
// Example: ZoneOffsetMinutes("Asia/Kolkata", t) returns 330
// Example: ZoneOffsetMinutes("America/New_York", t) returns -240 or -300 depending on DST
func ZoneOffsetMinutes(zone string, at time.Time) (int, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return 0, fmt.Errorf("loading zone %q: %w", zone, err)
	}
	_, offset := at.In(loc).Zone()
	return offset / 60, nil
}
