// Package langs resolves the languages spoken in a country and the flag emoji
// used to display it.
package langs

import (
	"strings"

	"golang.org/x/text/language"
)

// Language describes a spoken language. Code is the only identity field.
type Language struct {
	Code    string `json:"code" yaml:"code"`
	Name    string `json:"name" yaml:"name"`
	Display string `json:"display" yaml:"-"`
}

// New returns a Language with a canonical lowercase code and a "{name} ({code})" display string.
func New(code, name string) Language {
	code = strings.ToLower(strings.TrimSpace(code))
	return Language{Code: code, Name: name, Display: name + " (" + code + ")"}
}

// unknown is used when a code has no catalog entry.
func unknown(code string) Language {
	return Language{Code: code, Name: code, Display: code}
}

// Set is an ordered collection of languages without duplicate codes.
type Set []Language

// Add appends lang unless a language with the same code is already present.
func (s Set) Add(lang Language) Set {
	if s.Contains(lang.Code) {
		return s
	}
	return append(s, lang)
}

// Contains reports whether the set holds a language with the given code.
// The comparison is case-insensitive.
func (s Set) Contains(code string) bool {
	for _, l := range s {
		if strings.EqualFold(l.Code, code) {
			return true
		}
	}
	return false
}

// Intersects reports whether the sets share at least one code.
func (s Set) Intersects(other Set) bool {
	for _, l := range s {
		if other.Contains(l.Code) {
			return true
		}
	}
	return false
}

// Codes returns the codes in set order.
func (s Set) Codes() []string {
	codes := make([]string, len(s))
	for i, l := range s {
		codes[i] = l.Code
	}
	return codes
}

// CanonicalCode reduces an ISO language identifier to its lowercase base code.
// Region and script subtags are dropped: "en-US" and "EN" both become "en".
// Identifiers the language registry does not know are lowercased and kept.
func CanonicalCode(raw string) string {
	raw = strings.TrimSpace(raw)
	prefix, _, _ := strings.Cut(raw, "-")
	prefix, _, _ = strings.Cut(prefix, "_")
	prefix = strings.ToLower(prefix)
	if prefix == "" {
		return ""
	}
	base, err := language.ParseBase(prefix)
	if err != nil {
		return prefix
	}
	return base.String()
}
