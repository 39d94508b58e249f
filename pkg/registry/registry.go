// pkg/registry/registry.go
package registry

import (
	"encoding/json"
	"os"
	"strings"
)

func LoadRegistry(path string) (*PlaceRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var reg PlaceRegistry
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, err
	}
	return &reg, nil
}

// buildIndexes folds the word lists into case-insensitive lookup sets.
func (r *PlaceRegistry) buildIndexes() {
	r.indexOnce.Do(func() {
		r.knownIndex = toSet(r.KnownPlaces)
		r.denyIndex = toSet(r.DenylistWords)
		r.commonIndex = toSet(r.CommonWords)
	})
}

func toSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = true
	}
	return set
}

// IsKnownPlace reports whether the single-word destination is on the curated
// allow-list. Matching is case-insensitive.
func (r *PlaceRegistry) IsKnownPlace(word string) bool {
	r.buildIndexes()
	return r.knownIndex[strings.ToLower(strings.TrimSpace(word))]
}

// IsDenied reports whether the destination is on the non-place denylist.
func (r *PlaceRegistry) IsDenied(destination string) bool {
	r.buildIndexes()
	return r.denyIndex[strings.ToLower(strings.TrimSpace(destination))]
}

// IsCommonWord reports whether a capitalized single token should still be
// rejected as a common word.
func (r *PlaceRegistry) IsCommonWord(word string) bool {
	r.buildIndexes()
	return r.commonIndex[strings.ToLower(strings.TrimSpace(word))]
}

// FallbackAttractions returns the curated attraction list for the first
// destination substring matching the query, or the generic fallback.
// The result is a copy so concurrent runs never share a slice.
func (r *PlaceRegistry) FallbackAttractions(query string) []Attraction {
	q := strings.ToLower(query)
	for dest, attractions := range r.Attractions {
		if strings.Contains(q, dest) {
			out := make([]Attraction, len(attractions))
			copy(out, attractions)
			return out
		}
	}
	out := make([]Attraction, len(r.GenericAttractions))
	copy(out, r.GenericAttractions)
	return out
}

// WeatherFor returns the curated typical weather for a destination, if known.
func (r *PlaceRegistry) WeatherFor(destination string) (WeatherNorm, bool) {
	w, ok := r.Weather[strings.ToLower(strings.TrimSpace(destination))]
	return w, ok
}
