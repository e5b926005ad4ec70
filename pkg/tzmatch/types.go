package tzmatch

import (
	"time"

	"github.com/codeGROOVE-dev/tzmatch/pkg/filter"
	"github.com/codeGROOVE-dev/tzmatch/pkg/location"
	"github.com/codeGROOVE-dev/tzmatch/pkg/ordering"
)

// Query describes one view of the catalog.
type Query struct {
	// Now is the instant local clocks are computed for. Zero means the engine clock.
	Now time.Time
	// PrimaryReference is the catalog name of the user's timezone, e.g. "Europe/Berlin".
	PrimaryReference string
	SortKey          ordering.Key
	Direction        ordering.Direction
	Criteria         filter.Criteria
	// Additional are extra reference locations, compared and pinned alongside the primary.
	Additional []location.Location
	// AdditionalNames are catalog names resolved to canonical locations and
	// appended to Additional.
	AdditionalNames []string
}

// View is the filtered, sorted and pinned result of a Query.
type View struct {
	Primary    location.Location   `json:"primary"`
	Additional []location.Location `json:"additional,omitempty"`
	Locations  []location.Location `json:"locations"`
	// Fallback is true when PrimaryReference was not usable and another record was chosen.
	Fallback bool `json:"fallback,omitempty"`
}
