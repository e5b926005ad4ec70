package ordering

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/codeGROOVE-dev/tzmatch/pkg/langs"
	"github.com/codeGROOVE-dev/tzmatch/pkg/location"
)

func loc(cc, country string, offset int, codes ...string) location.Location {
	var set langs.Set
	for _, c := range codes {
		set = set.Add(langs.New(c, c))
	}
	return location.Location{Name: cc, CountryCode: cc, CountryName: country, OffsetMinutes: offset, Languages: set}
}

func codes(locs []location.Location) []string {
	out := make([]string, len(locs))
	for i := range locs {
		out[i] = locs[i].CountryCode
	}
	return out
}

var (
	gb    = loc("GB", "United Kingdom", 0, "en")
	ie    = loc("IE", "Ireland", 0, "en", "ga")
	pt    = loc("PT", "Portugal", 0, "pt")
	fr    = loc("FR", "France", 60, "fr")
	ca    = loc("CA", "Canada", 120, "en", "fr")
	india = loc("IN", "India", 330, "hi", "en")
	jp    = loc("JP", "Japan", 540, "ja")
	nz    = loc("NZ", "New Zealand", 720, "en")
	fj    = loc("FJ", "Fiji", -720, "fj")
	ax    = loc("AX", "Åland", 180, "sv")
)

func TestTier(t *testing.T) {
	tests := []struct {
		loc     location.Location
		primary *location.Location
		want    int
	}{
		{ie, &gb, 1},
		{pt, &gb, 2},
		{ca, &gb, 3},
		{fr, &gb, 4},
		{nz, &gb, 5},
		{fj, &gb, 6},
		{india, &gb, 7},
		{jp, &gb, 8},
		{jp, nil, UnclassifiedTier},
	}
	for _, tt := range tests {
		if got := Tier(&tt.loc, tt.primary); got != tt.want {
			t.Errorf("Tier(%s) = %d, want %d", tt.loc.CountryCode, got, tt.want)
		}
	}
}

func TestSimilarFlagRaisesTier(t *testing.T) {
	far := loc("XX", "Far", 300, "en")
	if got := Tier(&far, &gb); got != 7 {
		t.Fatalf("Tier without hint = %d, want 7", got)
	}
	far.IsSimilarTime = true
	if got := Tier(&far, &gb); got != 3 {
		t.Errorf("Tier with hint = %d, want 3", got)
	}
}

func TestSortByProximityTier(t *testing.T) {
	in := []location.Location{jp, india, fj, nz, fr, ca, pt, ie, gb}

	asc := Sort(in, ByProximityTier, Ascending, &gb)
	if diff := cmp.Diff([]string{"IE", "GB", "PT", "CA", "FR", "NZ", "FJ", "IN", "JP"}, codes(asc)); diff != "" {
		t.Errorf("ascending mismatch (-want +got):\n%s", diff)
	}

	desc := Sort(in, ByProximityTier, Descending, &gb)
	if diff := cmp.Diff([]string{"JP", "IN", "FJ", "NZ", "FR", "CA", "PT", "IE", "GB"}, codes(desc)); diff != "" {
		t.Errorf("descending mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff(codes(asc), codes(Sort(asc, ByProximityTier, Ascending, &gb))); diff != "" {
		t.Errorf("resorting changed the order (-want +got):\n%s", diff)
	}
	if in[0].CountryCode != "JP" {
		t.Error("Sort() modified its input")
	}
}

func TestSortTieBreakIgnoresDirection(t *testing.T) {
	// Same tier (close, shared language) at different distances.
	near := loc("A1", "A", 60, "en")
	mid := loc("A2", "A", -120, "en")
	far := loc("A3", "A", 180, "en")
	in := []location.Location{far, near, mid}

	for _, dir := range []Direction{Ascending, Descending} {
		got := Sort(in, ByProximityTier, dir, &gb)
		if diff := cmp.Diff([]string{"A1", "A2", "A3"}, codes(got)); diff != "" {
			t.Errorf("%s: tie-break mismatch (-want +got):\n%s", dir, diff)
		}
	}
}

func TestSortIsStable(t *testing.T) {
	a := loc("S1", "Same", 0, "en")
	b := loc("S2", "Same", 0, "en")
	c := loc("S3", "Same", 0, "en")
	in := []location.Location{c, a, b}

	for _, key := range []Key{ByName, ByProximityTier} {
		got := Sort(in, key, Ascending, &gb)
		if diff := cmp.Diff([]string{"S3", "S1", "S2"}, codes(got)); diff != "" {
			t.Errorf("%s: stable order mismatch (-want +got):\n%s", key, diff)
		}
	}
}

func TestSortByName(t *testing.T) {
	in := []location.Location{nz, jp, ax, fr, ca, ie}

	got := Sort(in, ByName, Ascending, nil)
	if diff := cmp.Diff([]string{"AX", "CA", "FR", "IE", "JP", "NZ"}, codes(got)); diff != "" {
		t.Errorf("ascending mismatch (-want +got):\n%s", diff)
	}
	got = Sort(in, ByName, Descending, nil)
	if diff := cmp.Diff([]string{"NZ", "JP", "IE", "FR", "CA", "AX"}, codes(got)); diff != "" {
		t.Errorf("descending mismatch (-want +got):\n%s", diff)
	}
}

func TestPin(t *testing.T) {
	list := []location.Location{ie, pt, fr, ca, india, jp, nz}

	tests := []struct {
		name       string
		primary    *location.Location
		additional []location.Location
		tail       string
		want       []string
	}{
		{
			name: "nothing to pin",
			want: []string{"IE", "PT", "FR", "CA", "IN", "JP", "NZ"},
		},
		{
			name:       "additional then primary",
			primary:    &fr,
			additional: []location.Location{jp, pt},
			want:       []string{"JP", "PT", "FR", "IE", "CA", "IN", "NZ"},
		},
		{
			name:       "primary already among additional",
			primary:    &jp,
			additional: []location.Location{jp, ca},
			want:       []string{"JP", "CA", "IE", "PT", "FR", "IN", "NZ"},
		},
		{
			name:    "missing primary is inserted",
			primary: &gb,
			want:    []string{"GB", "IE", "PT", "FR", "CA", "IN", "JP", "NZ"},
		},
		{
			name:    "tail country",
			primary: &jp,
			tail:    "ie",
			want:    []string{"JP", "PT", "FR", "CA", "IN", "NZ", "IE"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			once := Pin(list, tt.primary, tt.additional, tt.tail)
			if diff := cmp.Diff(tt.want, codes(once)); diff != "" {
				t.Errorf("Pin() mismatch (-want +got):\n%s", diff)
			}
			twice := Pin(once, tt.primary, tt.additional, tt.tail)
			if diff := cmp.Diff(codes(once), codes(twice)); diff != "" {
				t.Errorf("Pin() is not idempotent (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPinKeepsTailOrder(t *testing.T) {
	us1 := loc("US", "United States", -300)
	us2 := loc("US", "United States", -360)
	us3 := loc("US", "United States", -480)
	list := []location.Location{us1, gb, us2, fr, us3}

	got := Pin(list, &fr, nil, "US")
	want := []int{60, 0, -300, -360, -480}
	offsets := make([]int, len(got))
	for i := range got {
		offsets[i] = got[i].OffsetMinutes
	}
	if diff := cmp.Diff(want, offsets); diff != "" {
		t.Errorf("Pin() offsets mismatch (-want +got):\n%s", diff)
	}
}

func TestParseKeyAndDirection(t *testing.T) {
	if k, err := ParseKey(""); err != nil || k != ByProximityTier {
		t.Errorf("ParseKey(\"\") = %q, %v", k, err)
	}
	if k, err := ParseKey("Name"); err != nil || k != ByName {
		t.Errorf("ParseKey(Name) = %q, %v", k, err)
	}
	if _, err := ParseKey("population"); err == nil {
		t.Error("ParseKey(population) succeeded, want error")
	}
	if d, err := ParseDirection("DESC"); err != nil || d != Descending {
		t.Errorf("ParseDirection(DESC) = %q, %v", d, err)
	}
	if _, err := ParseDirection("sideways"); err == nil {
		t.Error("ParseDirection(sideways) succeeded, want error")
	}
}
