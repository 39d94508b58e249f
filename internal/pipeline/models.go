// internal/pipeline/models.go
package pipeline

import (
	"time"

	activitylookup "trip-planner/internal/stages/activity-lookup"
	weatherlookup "trip-planner/internal/stages/weather-lookup"
)

// ProgressEvent is one step of the run narrated to the caller.
type ProgressEvent struct {
	Percent int    `json:"percent"`
	Message string `json:"message"`
}

// Observer receives progress events during a run. Nil observers are allowed.
type Observer func(ProgressEvent)

// Process summarizes which stages ran and how they ended.
type Process struct {
	StepsCompleted    int  `json:"stepsCompleted"`
	WeatherSuccess    bool `json:"weatherSuccess"`
	ActivitySuccess   bool `json:"activitySuccess"`
	ItinerarySuccess  bool `json:"itinerarySuccess"`
	CritiqueSuccess   bool `json:"critiqueSuccess"`
	CritiqueSkipped   bool `json:"critiqueSkipped"`
	RefinementSkipped bool `json:"refinementSkipped"`
}

// WeatherSection carries both the rendered report and the raw fact.
type WeatherSection struct {
	Report string             `json:"report"`
	Raw    weatherlookup.Fact `json:"raw"`
}

// ActivitySection carries both the rendered research text and the raw fact.
type ActivitySection struct {
	Research string              `json:"research"`
	Raw      activitylookup.Fact `json:"raw"`
}

// ItinerarySection carries every text artifact of the drafting stages.
// Final always holds the best itinerary available: the refined version when
// refinement ran, otherwise the initial draft.
type ItinerarySection struct {
	Initial  string `json:"initial"`
	Critique string `json:"critique,omitempty"`
	Final    string `json:"final"`
}

// Result is the complete outcome of one run, also the unit stored in the
// result cache.
type Result struct {
	Success     bool   `json:"success"`
	Error       string `json:"error,omitempty"`
	ErrorCode   string `json:"errorCode,omitempty"`
	Destination string `json:"destination"`
	Duration    int    `json:"duration"`

	Weather   WeatherSection   `json:"weather"`
	Activity  ActivitySection  `json:"activity"`
	Itinerary ItinerarySection `json:"itinerary"`

	Process     Process   `json:"process"`
	GeneratedAt time.Time `json:"generatedAt"`
	RunID       string    `json:"runId"`
}
