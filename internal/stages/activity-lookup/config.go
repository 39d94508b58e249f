// internal/stages/activity-lookup/config.go
package activitylookup

import "time"

type Config struct {
	// Deadline bounds the external search call.
	Deadline time.Duration

	// MaxResults caps how many activities a lookup returns.
	MaxResults int
}

func DefaultConfig() *Config {
	return &Config{
		Deadline:   3 * time.Second,
		MaxResults: 5,
	}
}
