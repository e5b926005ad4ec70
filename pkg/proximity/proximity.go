// Package proximity classifies how close two UTC offsets are.
package proximity

import (
	"fmt"
	"strings"

	"github.com/codeGROOVE-dev/tzmatch/pkg/tzconvert"
)

// Category describes the relationship between a location and a reference.
type Category string

// Categories, from closest to furthest.
const (
	SameTime      Category = "same"
	CloseTime     Category = "close"
	ReverseTime   Category = "reverse"
	DifferentTime Category = "different"
)

// Categories lists every category.
var Categories = []Category{SameTime, CloseTime, ReverseTime, DifferentTime}

const (
	reverseHours = 12
	closeHours   = 3
)

// Classify compares two offsets (in minutes). similar is a precomputed hint
// that the pair is close even when the offsets alone would say otherwise.
// The checks run in a fixed order: an exact 12 hour gap is ReverseTime even
// when similar is set.
func Classify(a, b int, similar bool) Category {
	diff := tzconvert.HourDiff(a, b)
	switch {
	case diff == 0:
		return SameTime
	case diff == reverseHours:
		return ReverseTime
	case diff <= closeHours || similar:
		return CloseTime
	default:
		return DifferentTime
	}
}

// ParseCategory accepts a category name such as "same" or "SameTime".
func ParseCategory(s string) (Category, error) {
	norm := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "time")
	norm = strings.TrimSuffix(norm, "-")
	norm = strings.TrimSuffix(norm, "_")
	for _, c := range Categories {
		if string(c) == norm {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown proximity category %q", s)
}

// Badge is a day annotation for locations exactly half a day away.
type Badge string

// Day badges.
const (
	NoBadge   Badge = ""
	Tomorrow  Badge = "Tomorrow"
	Yesterday Badge = "Yesterday"
)

// DayBadge flags a location whose offset is exactly 12 hours ahead of
// (Tomorrow) or behind (Yesterday) the reference. Unlike Classify it uses the
// signed difference.
func DayBadge(offset, reference int) Badge {
	switch offset - reference {
	case reverseHours * 60:
		return Tomorrow
	case -reverseHours * 60:
		return Yesterday
	default:
		return NoBadge
	}
}
