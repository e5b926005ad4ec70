package langs

import (
	"maps"
	"slices"
	"strings"
)

// Resolver maps country codes to spoken languages and flag emoji.
// It is immutable after construction and safe for concurrent use.
type Resolver struct {
	languages map[string]string
	standard  map[string]string
	overrides map[string]Set
	countries map[string]Country
}

// NewResolver builds a Resolver from t. Country keys are uppercased and
// language keys lowercased; t itself is not retained.
func NewResolver(t Tables) *Resolver {
	r := &Resolver{
		languages: make(map[string]string, len(t.Languages)),
		standard:  make(map[string]string, len(t.Standardization)),
		overrides: make(map[string]Set, len(t.Overrides)),
		countries: make(map[string]Country, len(t.Countries)),
	}
	for code, name := range t.Languages {
		r.languages[strings.ToLower(code)] = name
	}
	for code, name := range t.Standardization {
		r.standard[strings.ToLower(code)] = name
	}
	for cc, list := range t.Overrides {
		var set Set
		for _, l := range list {
			set = set.Add(New(l.Code, l.Name))
		}
		r.overrides[strings.ToUpper(cc)] = set
	}
	for cc, c := range t.Countries {
		r.countries[strings.ToUpper(cc)] = c
	}
	return r
}

// Lookup resolves a single language code. The standardization table wins over
// the language catalog; unknown codes come back with the code as name and display.
func (r *Resolver) Lookup(code string) Language {
	code = CanonicalCode(code)
	if name, ok := r.standard[code]; ok {
		return New(code, name)
	}
	if name, ok := r.languages[code]; ok {
		return New(code, name)
	}
	return unknown(code)
}

// Languages returns the languages spoken in a country.
func (r *Resolver) Languages(countryCode string) Set {
	cc := strings.ToUpper(countryCode)
	if set, ok := r.overrides[cc]; ok {
		return slices.Clone(set)
	}
	country, ok := r.countries[cc]
	if !ok {
		return nil
	}
	var set Set
	for _, code := range splitLanguages(country.Languages) {
		set = set.Add(r.Lookup(code))
	}
	return set
}

// Country returns the catalog entry for a country code.
func (r *Resolver) Country(countryCode string) (Country, bool) {
	c, ok := r.countries[strings.ToUpper(countryCode)]
	return c, ok
}

// Emoji returns the flag emoji for a country code.
func (*Resolver) Emoji(countryCode string) string {
	return Emoji(countryCode)
}

// KnownLanguages lists every language a country in the catalog resolves to,
// sorted by code. It backs language pickers and validation of user input.
func (r *Resolver) KnownLanguages() Set {
	byCode := make(map[string]Language)
	for cc := range r.countries {
		for _, l := range r.Languages(cc) {
			byCode[l.Code] = l
		}
	}
	for _, set := range r.overrides {
		for _, l := range set {
			byCode[l.Code] = l
		}
	}
	var out Set
	for _, code := range slices.Sorted(maps.Keys(byCode)) {
		out = append(out, byCode[code])
	}
	return out
}
