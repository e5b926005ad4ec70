// Package catalog supplies raw timezone records: decoded from JSON, or built
// from IANA zone definitions at a given instant.
package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"time"
	_ "time/tzdata" // zone data for hosts without /usr/share/zoneinfo

	"github.com/codeGROOVE-dev/tzmatch/pkg/location"
	"github.com/codeGROOVE-dev/tzmatch/pkg/tzconvert"
)

//go:embed zones.json
var defaultZonesJSON []byte

// Zone describes an IANA zone without its offset.
type Zone struct {
	Name            string   `json:"name"`
	AlternativeName string   `json:"alternativeName"`
	CountryCode     string   `json:"countryCode"`
	CountryName     string   `json:"countryName"`
	MainCities      []string `json:"mainCities"`
}

// record mirrors location.RawRecord but keeps the offset undecoded so a bad
// value drops one record instead of failing the whole catalog.
type record struct {
	Zone
	Offset json.RawMessage `json:"currentTimeOffsetInMinutes"`
}

// Load decodes a JSON array of raw records. Offsets that are missing, null,
// non-numeric or fractional are left nil.
func Load(r io.Reader) ([]location.RawRecord, error) {
	var recs []record
	if err := json.NewDecoder(r).Decode(&recs); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	out := make([]location.RawRecord, len(recs))
	for i := range recs {
		out[i] = location.RawRecord{
			Name:                 recs[i].Name,
			AlternativeName:      recs[i].AlternativeName,
			CountryCode:          recs[i].CountryCode,
			CountryName:          recs[i].CountryName,
			MainCities:           recs[i].MainCities,
			CurrentOffsetMinutes: parseOffset(recs[i].Offset),
		}
	}
	return out, nil
}

func parseOffset(raw json.RawMessage) *int {
	if len(raw) == 0 {
		return nil
	}
	var n json.Number
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&n); err != nil {
		return nil
	}
	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) || math.Abs(f) > 24*60 {
		return nil
	}
	v := int(f)
	return &v
}

// DefaultZones returns the embedded zone list.
func DefaultZones() []Zone {
	var zones []Zone
	if err := json.Unmarshal(defaultZonesJSON, &zones); err != nil {
		panic(fmt.Sprintf("decoding embedded zones: %v", err))
	}
	return zones
}

// Build resolves each zone's offset at now. Zones the tz database does not
// know are kept with a nil offset and logged.
func Build(zones []Zone, now time.Time, logger *slog.Logger) []location.RawRecord {
	if logger == nil {
		logger = slog.Default()
	}
	out := make([]location.RawRecord, 0, len(zones))
	for i := range zones {
		z := &zones[i]
		rec := location.RawRecord{
			Name:            z.Name,
			AlternativeName: z.AlternativeName,
			CountryCode:     z.CountryCode,
			CountryName:     z.CountryName,
			MainCities:      z.MainCities,
		}
		if offset, err := tzconvert.ZoneOffsetMinutes(z.Name, now); err != nil {
			logger.Warn("zone offset unavailable", "zone", z.Name, "error", err)
		} else {
			rec.CurrentOffsetMinutes = &offset
		}
		out = append(out, rec)
	}
	return out
}
