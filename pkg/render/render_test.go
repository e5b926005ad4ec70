package render

import (
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/codeGROOVE-dev/tzmatch/pkg/location"
	"github.com/codeGROOVE-dev/tzmatch/pkg/paginate"
	"github.com/codeGROOVE-dev/tzmatch/pkg/tzmatch"
)

func testView() *tzmatch.View {
	berlin := location.Location{Name: "Europe/Berlin", CountryCode: "DE", CountryName: "Germany", Emoji: "🇩🇪", MainCities: []string{"Berlin"}, OffsetMinutes: 60, LocalHour: 13}
	tokyo := location.Location{Name: "Asia/Tokyo", CountryCode: "JP", CountryName: "Japan", Emoji: "🇯🇵", MainCities: []string{"Tokyo", "Yokohama", "Osaka", "Nagoya"}, OffsetMinutes: 540, LocalHour: 21}
	tonga := location.Location{Name: "Pacific/Tongatapu", CountryCode: "TO", CountryName: "Tonga", Emoji: "🇹🇴", MainCities: []string{"Nuku'alofa"}, OffsetMinutes: 780, LocalHour: 1}
	return &tzmatch.View{
		Primary:    berlin,
		Additional: []location.Location{tokyo},
		Locations:  []location.Location{tokyo, berlin, tonga},
	}
}

func TestTable(t *testing.T) {
	color.NoColor = true

	out := Table(testView(), 1, paginate.Result{ItemsPerPage: 11, TotalPages: 1})

	for _, want := range []string{
		"relative to Europe/Berlin (UTC+01:00, 13:00)",
		"★ 🇩🇪 Germany",
		"☆ 🇯🇵 Japan",
		"Tokyo, Yokohama, Osaka +1",
		"21:00  UTC+09:00",
		"different",
		"reverse",
		"[Tomorrow]",
		"late-night",
		"Page 1 of 1 (3 locations)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Table() output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Reference not found") {
		t.Errorf("Table() shows fallback warning without fallback:\n%s", out)
	}
}

func TestTableFallbackAndEmptyPage(t *testing.T) {
	color.NoColor = true

	view := testView()
	view.Fallback = true
	out := Table(view, 3, paginate.Result{ItemsPerPage: 11, TotalPages: 1})

	if !strings.Contains(out, "Reference not found, showing Europe/Berlin instead") {
		t.Errorf("Table() missing fallback warning:\n%s", out)
	}
	if !strings.Contains(out, "No matching locations") {
		t.Errorf("Table() missing empty page notice:\n%s", out)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"Germany", 10, "Germany"},
		{"United Arab Emirates", 10, "United Ar…"},
		{"Åland", 5, "Åland"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}
