package ordering

import (
	"strings"

	"github.com/codeGROOVE-dev/tzmatch/pkg/location"
)

// Pin moves the selected references to the front of locs: the additional
// references in selection order, followed by primary unless it was one of
// them. A reference missing from locs is inserted. Every location of
// tailCountry is then moved to the end, keeping its relative order. Pin is
// idempotent and does not modify locs.
func Pin(locs []location.Location, primary *location.Location, additional []location.Location, tailCountry string) []location.Location {
	refs := additional
	if primary != nil {
		refs = append(refs[:len(refs):len(refs)], *primary)
	}

	index := make(map[location.Key]int, len(locs))
	for i := range locs {
		if _, ok := index[locs[i].Key()]; !ok {
			index[locs[i].Key()] = i
		}
	}

	out := make([]location.Location, 0, len(locs)+len(refs))
	placed := make(map[location.Key]bool, len(refs))
	for i := range refs {
		key := refs[i].Key()
		if placed[key] {
			continue
		}
		placed[key] = true
		if at, ok := index[key]; ok {
			out = append(out, locs[at])
		} else {
			out = append(out, refs[i])
		}
	}
	for i := range locs {
		if !placed[locs[i].Key()] {
			out = append(out, locs[i])
		}
	}

	if tailCountry == "" {
		return out
	}
	head := make([]location.Location, 0, len(out))
	var tail []location.Location
	for i := range out {
		if strings.EqualFold(out[i].CountryCode, tailCountry) {
			tail = append(tail, out[i])
		} else {
			head = append(head, out[i])
		}
	}
	return append(head, tail...)
}
