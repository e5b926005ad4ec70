package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/codeGROOVE-dev/tzmatch/pkg/location"
)

func intPtr(v int) *int { return &v }

func TestSplitList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"en", []string{"en"}},
		{" en, de ,,fr ", []string{"en", "de", "fr"}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, splitList(tt.in)); diff != "" {
			t.Errorf("splitList(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestReferenceName(t *testing.T) {
	raw := []location.RawRecord{
		{Name: "Broken/Zone"},
		{Name: "Asia/Kolkata", CurrentOffsetMinutes: intPtr(330)},
		{Name: "Europe/London", CurrentOffsetMinutes: intPtr(0)},
	}

	tests := []struct {
		in   string
		want string
	}{
		{"Asia/Kolkata", "Asia/Kolkata"},
		{"+05:30", "Asia/Kolkata"},
		{"UTC+0530", "Asia/Kolkata"},
		{"UTC", "Europe/London"},
		{"+09:00", "+09:00"},
		{"Mars/Olympus_Mons", "Mars/Olympus_Mons"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := referenceName(raw, tt.in); got != tt.want {
				t.Errorf("referenceName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
