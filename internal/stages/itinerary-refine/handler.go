// internal/stages/itinerary-refine/handler.go
package itineraryrefine

import (
	"context"
	"fmt"
	"strings"

	"trip-planner/internal/common/genai"
	"trip-planner/internal/common/logger"
)

const systemContext = "You are an expert travel planner revising an itinerary " +
	"based on reviewer feedback. Apply every actionable point, keep what was " +
	"not criticised, and reply with the full revised itinerary only, then TERMINATE."

type Input struct {
	Destination string
	Duration    int
	Itinerary   string
	Critique    string
}

// Handler rewrites the draft to address the critique. A failure here
// degrades the run: the unrefined draft is returned instead.
type Handler struct {
	generator genai.Generator
	logger    logger.Logger
}

func NewHandler(generator genai.Generator, log logger.Logger) *Handler {
	return &Handler{generator: generator, logger: log}
}

func (h *Handler) Run(ctx context.Context, in Input) (string, error) {
	h.logger.Info("refining itinerary", map[string]interface{}{
		"destination": in.Destination,
	})

	refined, err := h.generator.Generate(ctx, systemContext, buildPrompt(in), 2)
	if err != nil {
		return "", err
	}
	return refined, nil
}

func buildPrompt(in Input) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Revise this %d-day itinerary for %s.\n\n", in.Duration, in.Destination)
	b.WriteString("Current itinerary:\n")
	b.WriteString(in.Itinerary)
	b.WriteString("\n\nReviewer feedback:\n")
	b.WriteString(in.Critique)
	b.WriteString("\n\nInstructions:\n")
	b.WriteString("- Address every point in the feedback.\n")
	b.WriteString("- Keep the same number of days and overall structure.\n")
	b.WriteString("- Do not drop activities unless the feedback asks for it.\n")
	b.WriteString("- Output the complete revised itinerary, not a diff.\n")
	return b.String()
}
