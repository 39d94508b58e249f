// internal/stages/weather-lookup/config.go
package weatherlookup

import "time"

type Config struct {
	// Deadline bounds the external observation call. Expiry degrades to
	// fallback data instead of failing the pipeline.
	Deadline time.Duration

	// Seed makes synthesized observations reproducible across runs.
	Seed int64
}

func DefaultConfig() *Config {
	return &Config{
		Deadline: 3 * time.Second,
		Seed:     1,
	}
}
