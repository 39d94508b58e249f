// internal/stages/activity-lookup/models.go
package activitylookup

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"trip-planner/internal/common/guard"
)

// Activity is one candidate thing to do at the destination.
type Activity struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Source      string `json:"source,omitempty"`
}

// Fact is the cached, provenance-tagged output of an activity lookup.
type Fact struct {
	SourceQuery string       `json:"sourceQuery"`
	Destination string       `json:"destination"`
	Activities  []Activity   `json:"activities"`
	Origin      guard.Origin `json:"origin"`
	FetchedAt   time.Time    `json:"fetchedAt"`
}

// ResearchText renders the fact as the bullet list handed to the drafting
// stage. At most five activities appear; descriptions are clipped to keep
// the prompt compact.
func (f Fact) ResearchText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Top activities in %s:", f.Destination)
	for i, activity := range f.Activities {
		if i >= 5 {
			break
		}
		b.WriteString("\n• ")
		b.WriteString(activity.Name)
		if activity.Description != "" {
			b.WriteString(" - ")
			b.WriteString(clip(activity.Description, 80))
		}
	}
	return b.String()
}

// clip cuts s to at most max bytes without splitting a rune.
func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := s[:max]
	for len(cut) > 0 && !utf8.ValidString(cut) {
		cut = cut[:len(cut)-1]
	}
	return cut
}
