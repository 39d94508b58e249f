// internal/pipeline/orchestrator.go

// Package pipeline runs the trip-planning stages in order: validate, weather
// research, activity research, draft, critique, refine. Lookups degrade to
// fallback data; a drafting failure is the only fatal stage error.
package pipeline

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"trip-planner/internal/common/cache"
	"trip-planner/internal/common/config"
	"trip-planner/internal/common/errors"
	"trip-planner/internal/common/logger"
	"trip-planner/internal/common/metrics"
	"trip-planner/internal/common/observability"
	"trip-planner/internal/common/validation"
	activitylookup "trip-planner/internal/stages/activity-lookup"
	itinerarycritique "trip-planner/internal/stages/itinerary-critique"
	itinerarydraft "trip-planner/internal/stages/itinerary-draft"
	itineraryrefine "trip-planner/internal/stages/itinerary-refine"
	weatherlookup "trip-planner/internal/stages/weather-lookup"
	"trip-planner/pkg/registry"
)

// Orchestrator owns the stage handlers and the result cache for completed runs.
type Orchestrator struct {
	config     *config.PipelineConfig
	places     *registry.PlaceRegistry
	weather    *weatherlookup.Handler
	activities *activitylookup.Handler
	draft      *itinerarydraft.Handler
	critique   *itinerarycritique.Handler
	refine     *itineraryrefine.Handler
	results    *cache.FIFOCache[Result]
	logger     logger.Logger
	obs        *observability.Observability
}

func New(
	cfg *config.PipelineConfig,
	places *registry.PlaceRegistry,
	weather *weatherlookup.Handler,
	activities *activitylookup.Handler,
	draft *itinerarydraft.Handler,
	critique *itinerarycritique.Handler,
	refine *itineraryrefine.Handler,
	log logger.Logger,
	obs *observability.Observability,
) *Orchestrator {
	return &Orchestrator{
		config:     cfg,
		places:     places,
		weather:    weather,
		activities: activities,
		draft:      draft,
		critique:   critique,
		refine:     refine,
		results:    cache.NewFIFO[Result](cfg.ResultCacheCapacity),
		logger:     log,
		obs:        obs,
	}
}

// PlanTrip runs the whole pipeline for one request. It never returns an
// error; failures are reported through the result's Success/ErrorCode
// fields so callers always get a well-formed answer.
func (o *Orchestrator) PlanTrip(ctx context.Context, destination string, duration int, observer Observer) (result Result) {
	started := time.Now()
	runID := uuid.New().String()
	log := o.logger.WithFields(map[string]interface{}{"run_id": runID})

	defer func() {
		if r := recover(); r != nil {
			log.Error("pipeline run panicked", map[string]interface{}{"panic": fmt.Sprintf("%v", r)})
			result = o.failure(runID, destination, duration,
				errors.NewUnexpectedError(fmt.Errorf("%v", r)), Process{})
			o.finishRun(ctx, started, "panic")
		}
	}()

	emit := func(percent int, message string) {
		if observer != nil {
			observer(ProgressEvent{Percent: percent, Message: message})
		}
		log.Debug("progress", map[string]interface{}{"percent": percent, "message": message})
	}

	emit(0, "Validating request")
	req, verr := validation.Validate(destination, duration, o.places)
	if verr != nil {
		log.Info("request rejected", map[string]interface{}{
			"destination": destination,
			"code":        string(verr.Code),
		})
		o.finishRun(ctx, started, "rejected")
		return o.failure(runID, destination, duration, verr, Process{})
	}

	key := resultKey(req)
	if cached, ok := o.results.Get(key); ok {
		metrics.CacheHits.WithLabelValues("results").Inc()
		log.Info("result cache hit", map[string]interface{}{"key": key})
		emit(100, "Trip plan ready")
		o.finishRun(ctx, started, "cache_hit")
		return cached
	}
	metrics.CacheMisses.WithLabelValues("results").Inc()

	var process Process

	emit(30, "Researching weather")
	weatherStart := time.Now()
	weatherFact := o.weather.Lookup(ctx, req.Destination)
	metrics.StageDuration.WithLabelValues("weather").Observe(time.Since(weatherStart).Seconds())
	process.WeatherSuccess = true
	process.StepsCompleted++

	emit(45, "Researching activities")
	activityStart := time.Now()
	activityFact := o.activities.Lookup(ctx, req.Destination, "")
	metrics.StageDuration.WithLabelValues("activities").Observe(time.Since(activityStart).Seconds())
	process.ActivitySuccess = true
	process.StepsCompleted++

	weatherSection := WeatherSection{Report: weatherFact.Report(), Raw: weatherFact}
	activitySection := ActivitySection{Research: activityFact.ResearchText(), Raw: activityFact}

	emit(70, "Drafting itinerary")
	draftStart := time.Now()
	draft, err := o.draft.Run(ctx, itinerarydraft.Input{
		Destination:      req.Destination,
		Duration:         req.Duration,
		WeatherReport:    weatherSection.Report,
		ActivityResearch: activitySection.Research,
	})
	metrics.StageDuration.WithLabelValues("itinerary").Observe(time.Since(draftStart).Seconds())
	if err != nil {
		log.WithError(err).Error("itinerary drafting failed", nil)
		o.finishRun(ctx, started, "failure")
		failed := o.failure(runID, req.Destination, req.Duration, errors.NewItineraryFailedError(err), process)
		failed.Weather = weatherSection
		failed.Activity = activitySection
		return failed
	}
	process.ItinerarySuccess = true
	process.StepsCompleted++

	itinerary := ItinerarySection{Initial: draft, Final: draft}

	if o.config.EnableCritique {
		emit(85, "Reviewing itinerary")
		critiqueStart := time.Now()
		critique, err := o.critique.Run(ctx, itinerarycritique.Input{
			Destination: req.Destination,
			Duration:    req.Duration,
			Itinerary:   draft,
		})
		metrics.StageDuration.WithLabelValues("critique").Observe(time.Since(critiqueStart).Seconds())
		if err != nil {
			log.WithError(err).Warn("critique failed, keeping the draft", map[string]interface{}{
				"code": string(errors.ErrCodeCritiqueFailed),
			})
		} else {
			itinerary.Critique = critique
			process.CritiqueSuccess = true
			process.StepsCompleted++
		}
	} else {
		process.CritiqueSkipped = true
	}

	if !o.config.EnableRefinement || itinerary.Critique == "" {
		process.RefinementSkipped = true
	} else {
		emit(95, "Refining itinerary")
		refineStart := time.Now()
		refined, err := o.refine.Run(ctx, itineraryrefine.Input{
			Destination: req.Destination,
			Duration:    req.Duration,
			Itinerary:   draft,
			Critique:    itinerary.Critique,
		})
		metrics.StageDuration.WithLabelValues("refinement").Observe(time.Since(refineStart).Seconds())
		if err != nil {
			log.WithError(err).Warn("refinement failed, keeping the draft", map[string]interface{}{
				"code": string(errors.ErrCodeRefinementFailed),
			})
			process.RefinementSkipped = true
		} else {
			itinerary.Final = refined
			process.StepsCompleted++
		}
	}

	emit(100, "Trip plan ready")

	result = Result{
		Success:     true,
		Destination: req.Destination,
		Duration:    req.Duration,
		Weather:     weatherSection,
		Activity:    activitySection,
		Itinerary:   itinerary,
		Process:     process,
		GeneratedAt: time.Now().UTC(),
		RunID:       runID,
	}

	o.results.Put(key, result)
	o.finishRun(ctx, started, "success")
	log.Info("pipeline run complete", map[string]interface{}{
		"destination": req.Destination,
		"duration":    req.Duration,
		"steps":       process.StepsCompleted,
	})
	return result
}

// CachedResults reports how many completed runs the result cache holds.
func (o *Orchestrator) CachedResults() int {
	return o.results.Len()
}

func resultKey(req validation.Request) string {
	return req.Destination + "_" + strconv.Itoa(req.Duration)
}

func (o *Orchestrator) failure(runID, destination string, duration int, serr *errors.StandardError, process Process) Result {
	metrics.PipelineRuns.WithLabelValues("failure").Inc()
	return Result{
		Success:     false,
		Error:       serr.Message,
		ErrorCode:   string(serr.Code),
		Destination: destination,
		Duration:    duration,
		Process:     process,
		GeneratedAt: time.Now().UTC(),
		RunID:       runID,
	}
}

func (o *Orchestrator) finishRun(ctx context.Context, started time.Time, outcome string) {
	if outcome == "success" || outcome == "cache_hit" {
		metrics.PipelineRuns.WithLabelValues("success").Inc()
	}
	if o.obs != nil {
		o.obs.RecordRun(ctx, outcome)
		o.obs.RecordRunDuration(ctx, time.Since(started), outcome)
	}
}
