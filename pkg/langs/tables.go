package langs

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed tables.yaml
var defaultTablesYAML []byte

// Country is a country catalog entry. Languages uses the geonames countryInfo
// notation: a comma separated list of ISO 639 codes, optionally region qualified
// ("en-US,es-US,haw,fr").
type Country struct {
	Name      string `yaml:"name"`
	Native    string `yaml:"native"`
	Languages string `yaml:"languages"`
}

// Tables holds the lookup data the Resolver is built from.
type Tables struct {
	// Languages maps a language code to its English name.
	Languages map[string]string `yaml:"languages"`
	// Standardization renames codes whose catalog names are legacy
	// multi-script entries ("Serbo-Croatian", "Chinese (Simplified)").
	Standardization map[string]string `yaml:"standardization"`
	// Overrides lists the languages actually spoken in countries where ISO data
	// is misleading. Entries are used verbatim and in order.
	Overrides map[string][]Language `yaml:"overrides"`
	// Countries maps an ISO 3166 alpha-2 code to its catalog entry.
	Countries map[string]Country `yaml:"countries"`
}

// ParseTables decodes tables from YAML.
func ParseTables(data []byte) (Tables, error) {
	var t Tables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tables{}, fmt.Errorf("decoding language tables: %w", err)
	}
	return t, nil
}

// DefaultTables returns the embedded tables. Each call returns a fresh copy.
func DefaultTables() Tables {
	t, err := ParseTables(defaultTablesYAML)
	if err != nil {
		panic(err)
	}
	return t
}

// splitLanguages parses a geonames language list into canonical base codes, deduplicated in order.
func splitLanguages(list string) []string {
	var codes []string
	seen := make(map[string]bool)
	for _, raw := range strings.Split(list, ",") {
		code := CanonicalCode(raw)
		if code == "" || seen[code] {
			continue
		}
		seen[code] = true
		codes = append(codes, code)
	}
	return codes
}
