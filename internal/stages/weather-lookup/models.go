// internal/stages/weather-lookup/models.go
package weatherlookup

import (
	"fmt"
	"time"

	"trip-planner/internal/common/guard"
)

// Observation is a point-in-time weather reading for a destination.
type Observation struct {
	TemperatureC int    `json:"temperatureC"`
	Condition    string `json:"condition"`
	HumidityPct  int    `json:"humidityPct"`
	WindKmh      int    `json:"windKmh"`
}

// Fact is the cached, provenance-tagged output of a weather lookup.
type Fact struct {
	SourceQuery    string       `json:"sourceQuery"`
	Destination    string       `json:"destination"`
	Observation    Observation  `json:"observation"`
	Recommendation string       `json:"recommendation"`
	Origin         guard.Origin `json:"origin"`
	FetchedAt      time.Time    `json:"fetchedAt"`
}

// Report renders the fact as the prose block handed to the drafting stage.
func (f Fact) Report() string {
	return fmt.Sprintf(
		"Weather in %s:\nTemperature: %d°C\nCondition: %s\nHumidity: %d%%\nWind Speed: %d km/h\n\nRecommendation: %s",
		f.Destination,
		f.Observation.TemperatureC,
		f.Observation.Condition,
		f.Observation.HumidityPct,
		f.Observation.WindKmh,
		f.Recommendation,
	)
}
