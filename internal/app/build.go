// internal/app/build.go

// Package app wires configuration into a ready-to-run pipeline. Both the
// server and the CLI build their orchestrator here so they agree on defaults.
package app

import (
	"context"
	"fmt"
	"time"

	"trip-planner/internal/common/cache"
	"trip-planner/internal/common/config"
	"trip-planner/internal/common/genai"
	"trip-planner/internal/common/logger"
	"trip-planner/internal/common/observability"
	"trip-planner/internal/common/search"
	"trip-planner/internal/pipeline"
	activitylookup "trip-planner/internal/stages/activity-lookup"
	itinerarycritique "trip-planner/internal/stages/itinerary-critique"
	itinerarydraft "trip-planner/internal/stages/itinerary-draft"
	itineraryrefine "trip-planner/internal/stages/itinerary-refine"
	weatherlookup "trip-planner/internal/stages/weather-lookup"
	"trip-planner/pkg/registry"
)

// Build assembles the orchestrator from configuration. The returned cleanup
// closes any backing connections and must be called on shutdown.
func Build(cfg *config.Config, log logger.Logger, obs *observability.Observability) (*pipeline.Orchestrator, func(), error) {
	places, err := loadPlaces(cfg, log)
	if err != nil {
		return nil, nil, err
	}

	store, cleanup, err := buildLookupStore(cfg, log)
	if err != nil {
		return nil, nil, err
	}

	seed := cfg.Pipeline.WeatherSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	weatherProvider := weatherlookup.NewTableProvider(places, seed)
	weatherHandler := weatherlookup.NewHandler(
		&weatherlookup.Config{
			Deadline: config.GetDuration(cfg.APIs.WebSearch.Timeout),
			Seed:     seed,
		},
		weatherProvider, places, store, log,
	)

	searcher := search.NewClient(&search.Config{
		BaseURL:  cfg.APIs.WebSearch.BaseURL,
		APIKey:   cfg.APIs.WebSearch.APIKey,
		EngineID: cfg.APIs.WebSearch.EngineID,
		Timeout:  config.GetDuration(cfg.APIs.WebSearch.Timeout),
	})
	activityHandler := activitylookup.NewHandler(
		&activitylookup.Config{
			Deadline:   config.GetDuration(cfg.APIs.WebSearch.Timeout),
			MaxResults: cfg.APIs.WebSearch.MaxResults,
		},
		searcher, places, store, log,
	)

	generator := genai.NewClient(&genai.Config{
		BaseURL:     cfg.APIs.GenAI.BaseURL,
		APIKey:      cfg.APIs.GenAI.APIKey,
		Model:       cfg.APIs.GenAI.Model,
		Temperature: cfg.APIs.GenAI.Temperature,
		Timeout:     config.GetDuration(cfg.APIs.GenAI.Timeout),
		MaxRetries:  cfg.APIs.GenAI.MaxRetries,
	}, log)

	orch := pipeline.New(
		&cfg.Pipeline,
		places,
		weatherHandler,
		activityHandler,
		itinerarydraft.NewHandler(generator, log),
		itinerarycritique.NewHandler(generator, log),
		itineraryrefine.NewHandler(generator, log),
		log,
		obs,
	)
	return orch, cleanup, nil
}

func loadPlaces(cfg *config.Config, log logger.Logger) (*registry.PlaceRegistry, error) {
	if cfg.Registry.Path == "" {
		return registry.Default(), nil
	}
	places, err := registry.LoadRegistry(cfg.Registry.Path)
	if err != nil {
		return nil, fmt.Errorf("loading place registry: %w", err)
	}
	log.Info("loaded place registry", map[string]interface{}{
		"path":    cfg.Registry.Path,
		"version": places.Version,
	})
	return places, nil
}

func buildLookupStore(cfg *config.Config, log logger.Logger) (cache.Store, func(), error) {
	ttl := config.GetDuration(cfg.Cache.LookupTTL)

	if cfg.Cache.Redis.Address == "" {
		return cache.NewMemoryStore(ttl), func() {}, nil
	}

	store := cache.NewRedisStore(cfg.Cache.Redis.Address, cfg.Cache.Redis.Password, cfg.Cache.Redis.DB, ttl)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := store.Ping(ctx); err != nil {
		return nil, nil, fmt.Errorf("connecting to redis at %s: %w", cfg.Cache.Redis.Address, err)
	}
	log.Info("lookup caches backed by redis", map[string]interface{}{
		"address": cfg.Cache.Redis.Address,
	})
	return store, func() { store.Close() }, nil
}
