// Package constants defines shared constants for the tzmatch application.
package constants

const (
	// MaxPerPage is the number of locations shown on a full page.
	MaxPerPage = 11

	// MinLastPage is the smallest acceptable final page. Anything smaller is
	// redistributed across the earlier pages.
	MinLastPage = 4

	// SinglePageCeiling is the largest result set that is shown on a single page
	// even though it exceeds MaxPerPage.
	SinglePageCeiling = 14
)

// MaxAdditionalReferences is how many locations a user may select for comparison
// alongside their own timezone.
const MaxAdditionalReferences = 3
