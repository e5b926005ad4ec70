// Package render formats a page of a computed view as a colored text table.
package render

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/codeGROOVE-dev/tzmatch/pkg/location"
	"github.com/codeGROOVE-dev/tzmatch/pkg/paginate"
	"github.com/codeGROOVE-dev/tzmatch/pkg/proximity"
	"github.com/codeGROOVE-dev/tzmatch/pkg/tzconvert"
	"github.com/codeGROOVE-dev/tzmatch/pkg/tzmatch"
)

const (
	ruleWidth    = 72
	countryWidth = 22
	maxCities    = 3
)

// categoryColor returns the color for a proximity category.
func categoryColor(c proximity.Category) *color.Color {
	switch c {
	case proximity.SameTime:
		return color.New(color.FgGreen)
	case proximity.CloseTime:
		return color.New(color.FgCyan)
	case proximity.ReverseTime:
		return color.New(color.FgMagenta)
	default:
		return color.New(color.FgHiBlack)
	}
}

// Table renders page (1-based) of view using the page layout r.
func Table(view *tzmatch.View, page int, r paginate.Result) string {
	var output strings.Builder

	primary := &view.Primary
	output.WriteString(fmt.Sprintf("🌍 Local times relative to %s (%s, %02d:%02d)\n",
		primary.Name, tzconvert.FormatOffset(primary.OffsetMinutes), primary.LocalHour, primary.LocalMinute))
	if view.Fallback {
		output.WriteString(color.New(color.FgYellow).Sprintf("⚠️  Reference not found, showing %s instead\n", primary.Name))
	}
	output.WriteString(strings.Repeat("─", ruleWidth) + "\n")

	rows := paginate.Page(view.Locations, page, r)
	if len(rows) == 0 {
		output.WriteString("No matching locations\n")
		return output.String()
	}

	for i := range rows {
		output.WriteString(row(&rows[i], view) + "\n")
	}

	output.WriteString(strings.Repeat("─", ruleWidth) + "\n")
	output.WriteString(fmt.Sprintf("Page %d of %d (%d locations)\n", page, r.TotalPages, len(view.Locations)))
	return output.String()
}

func row(loc *location.Location, view *tzmatch.View) string {
	marker := " "
	switch {
	case loc.Key() == view.Primary.Key():
		marker = color.New(color.Bold).Sprint("★")
	case isAdditional(loc, view.Additional):
		marker = color.New(color.Bold).Sprint("☆")
	}

	category := proximity.Classify(loc.OffsetMinutes, view.Primary.OffsetMinutes, loc.IsSimilarTime)
	line := fmt.Sprintf("%s %s %-*s %02d:%02d  %-10s %s %-13s %s",
		marker,
		loc.Emoji,
		countryWidth, truncate(loc.CountryName, countryWidth),
		loc.LocalHour, loc.LocalMinute,
		tzconvert.FormatOffset(loc.OffsetMinutes),
		categoryColor(category).Sprintf("%-9s", category),
		loc.TimeOfDay(),
		cities(loc.MainCities))

	if badge := proximity.DayBadge(loc.OffsetMinutes, view.Primary.OffsetMinutes); badge != proximity.NoBadge {
		line += " " + color.New(color.FgYellow).Sprintf("[%s]", badge)
	}
	return line
}

func isAdditional(loc *location.Location, refs []location.Location) bool {
	for i := range refs {
		if refs[i].Key() == loc.Key() {
			return true
		}
	}
	return false
}

func cities(list []string) string {
	if len(list) <= maxCities {
		return strings.Join(list, ", ")
	}
	return strings.Join(list[:maxCities], ", ") + fmt.Sprintf(" +%d", len(list)-maxCities)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
