// internal/stages/activity-lookup/handler.go
package activitylookup

import (
	"context"
	"fmt"
	"strings"
	"time"

	"trip-planner/internal/common/cache"
	"trip-planner/internal/common/guard"
	"trip-planner/internal/common/logger"
	"trip-planner/internal/common/metrics"
	"trip-planner/internal/common/search"
	"trip-planner/pkg/registry"
)

// Handler resolves destination activities from web search with a lookup
// cache in front and curated fallback data behind a bounded call.
type Handler struct {
	config   *Config
	searcher search.Searcher
	places   *registry.PlaceRegistry
	store    cache.Store
	logger   logger.Logger
}

func NewHandler(config *Config, searcher search.Searcher, places *registry.PlaceRegistry, store cache.Store, log logger.Logger) *Handler {
	return &Handler{
		config:   config,
		searcher: searcher,
		places:   places,
		store:    store,
		logger:   log,
	}
}

// Lookup returns activities for a destination, optionally narrowed to an
// activity type ("museums", "food"). It never fails: search results inside
// the deadline, curated fallback otherwise, a cached copy when one is fresh.
func (h *Handler) Lookup(ctx context.Context, destination, activityType string) Fact {
	key := cacheKey(destination, activityType)

	var cached Fact
	if h.store.Get(ctx, key, &cached) {
		metrics.CacheHits.WithLabelValues("activities").Inc()
		h.logger.Debug("activity cache hit", map[string]interface{}{"destination": destination})
		return cached
	}
	metrics.CacheMisses.WithLabelValues("activities").Inc()

	query := buildQuery(destination, activityType)

	outcome := guard.Call(ctx, "activities", h.config.Deadline,
		func(callCtx context.Context) ([]Activity, error) {
			return h.searchActivities(callCtx, query)
		},
		func() []Activity {
			return h.fallbackActivities(destination)
		},
		h.logger,
	)

	fact := Fact{
		SourceQuery: query,
		Destination: destination,
		Activities:  outcome.Payload,
		Origin:      outcome.Origin,
		FetchedAt:   time.Now().UTC(),
	}

	h.store.Put(ctx, key, fact)
	return fact
}

func cacheKey(destination, activityType string) string {
	variant := "general"
	if activityType != "" {
		variant = strings.ToLower(strings.TrimSpace(activityType))
	}
	return "activities_" + strings.ToLower(strings.TrimSpace(destination)) + "_" + variant
}

func buildQuery(destination, activityType string) string {
	if activityType != "" {
		return fmt.Sprintf("%s in %s travel attractions", activityType, destination)
	}
	return fmt.Sprintf("top attractions things to do in %s travel guide", destination)
}

func (h *Handler) searchActivities(ctx context.Context, query string) ([]Activity, error) {
	results, err := h.searcher.Search(ctx, query, h.config.MaxResults)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("search returned no results")
	}

	activities := make([]Activity, 0, len(results))
	for _, r := range results {
		activities = append(activities, Activity{
			Name:        r.Title,
			Description: r.Snippet,
			Type:        "attraction",
			Source:      r.URL,
		})
	}
	return activities, nil
}

func (h *Handler) fallbackActivities(destination string) []Activity {
	curated := h.places.FallbackAttractions(destination)
	activities := make([]Activity, 0, len(curated))
	for _, a := range curated {
		activities = append(activities, Activity{
			Name:        a.Name,
			Description: a.Description,
			Type:        a.Type,
		})
	}
	return activities
}
