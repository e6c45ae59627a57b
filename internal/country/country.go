// internal/country/country.go
//
// Core type definitions for country data.
// Defines:
//   - Country: a single country with its population figure.
//   - record: the wire shape returned by the restcountries API.

package country

// Country is one playable country. Immutable once fetched.
type Country struct {
	Name       string `json:"name"`
	Population int    `json:"population"`
}

// record mirrors the relevant fields of a restcountries v3.1 entry.
// Only the common name and the population figure are consumed.
type record struct {
	Name struct {
		Common string `json:"common"`
	} `json:"name"`
	Population int `json:"population"`
}

// normalize converts raw API records into validated countries.
// Malformed entries (blank name, negative population) are dropped at
// this boundary rather than propagated into the game, and duplicate
// names keep only their first occurrence so every pool entry is unique.
func normalize(raw []record) []Country {
	seen := make(map[string]struct{}, len(raw))
	out := make([]Country, 0, len(raw))
	for _, r := range raw {
		if r.Name.Common == "" || r.Population < 0 {
			continue
		}
		if _, dup := seen[r.Name.Common]; dup {
			continue
		}
		seen[r.Name.Common] = struct{}{}
		out = append(out, Country{Name: r.Name.Common, Population: r.Population})
	}
	return out
}
