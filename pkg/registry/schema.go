// pkg/registry/schema.go
package registry

import "sync"

// PlaceRegistry is the data backing destination validation, activity fallback
// and the curated weather table. It can be loaded from JSON so deployments can
// extend the lists without a rebuild; Default() ships a compiled-in copy.
type PlaceRegistry struct {
	Version     string `json:"version"`
	LastUpdated string `json:"lastUpdated"`

	// KnownPlaces are single-word destinations accepted regardless of casing.
	KnownPlaces []string `json:"knownPlaces"`

	// DenylistWords are inputs rejected outright (greetings, placeholders,
	// common nouns, colors).
	DenylistWords []string `json:"denylistWords"`

	// CommonWords reject a capitalized single token that is still clearly not
	// a place ("Paper", "The").
	CommonWords []string `json:"commonWords"`

	// Attractions maps a lowercase destination substring to its curated
	// fallback attraction list.
	Attractions map[string][]Attraction `json:"attractions"`

	// GenericAttractions is the fallback for destinations matching no curated
	// entry.
	GenericAttractions []Attraction `json:"genericAttractions"`

	// Weather maps a lowercase destination to typical conditions.
	Weather map[string]WeatherNorm `json:"weather"`

	indexOnce   sync.Once
	knownIndex  map[string]bool
	denyIndex   map[string]bool
	commonIndex map[string]bool
}

type Attraction struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

type WeatherNorm struct {
	TempC       int    `json:"tempC"`
	Condition   string `json:"condition"`
	HumidityPct int    `json:"humidityPct"`
	WindKmh     int    `json:"windKmh"`
}
