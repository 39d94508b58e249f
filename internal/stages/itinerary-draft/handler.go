// internal/stages/itinerary-draft/handler.go
package itinerarydraft

import (
	"context"
	"fmt"
	"strings"

	"trip-planner/internal/common/genai"
	"trip-planner/internal/common/logger"
)

const systemContext = "You are an expert travel planner. You produce realistic, " +
	"day-by-day trip itineraries grounded in the research you are given. " +
	"Reply with the itinerary only, then TERMINATE."

// Input carries everything the draft prompt is built from.
type Input struct {
	Destination      string
	Duration         int
	WeatherReport    string
	ActivityResearch string
}

// Handler drafts the initial day-by-day itinerary. A failure here is fatal
// to the run; there is no meaningful trip plan without a draft.
type Handler struct {
	generator genai.Generator
	logger    logger.Logger
}

func NewHandler(generator genai.Generator, log logger.Logger) *Handler {
	return &Handler{generator: generator, logger: log}
}

func (h *Handler) Run(ctx context.Context, in Input) (string, error) {
	h.logger.Info("drafting itinerary", map[string]interface{}{
		"destination": in.Destination,
		"duration":    in.Duration,
	})

	draft, err := h.generator.Generate(ctx, systemContext, buildPrompt(in), 1)
	if err != nil {
		return "", err
	}
	return draft, nil
}

func buildPrompt(in Input) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a %d-day itinerary for %s.\n\n", in.Duration, in.Destination)

	if in.WeatherReport != "" {
		b.WriteString("Weather research:\n")
		b.WriteString(in.WeatherReport)
		b.WriteString("\n\n")
	}
	if in.ActivityResearch != "" {
		b.WriteString("Activity research:\n")
		b.WriteString(in.ActivityResearch)
		b.WriteString("\n\n")
	}

	b.WriteString("Requirements:\n")
	b.WriteString("- One section per day, labelled Day 1 through Day ")
	fmt.Fprintf(&b, "%d.\n", in.Duration)
	b.WriteString("- Morning, afternoon and evening suggestions for each day.\n")
	b.WriteString("- Work the researched activities in where they fit.\n")
	b.WriteString("- Adjust indoor/outdoor balance to the weather above.\n")
	return b.String()
}
