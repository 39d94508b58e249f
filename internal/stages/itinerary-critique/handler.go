// internal/stages/itinerary-critique/handler.go
package itinerarycritique

import (
	"context"
	"fmt"
	"strings"

	"trip-planner/internal/common/genai"
	"trip-planner/internal/common/logger"
)

const systemContext = "You are a meticulous travel plan reviewer. You point out " +
	"concrete problems in an itinerary, not style preferences. " +
	"Reply with your critique only, then TERMINATE."

var checkpoints = []string{
	"Does every day have morning, afternoon and evening activities?",
	"Are travel times between activities realistic?",
	"Does the plan respect the reported weather?",
	"Are the researched activities actually used?",
	"Is any activity scheduled twice?",
	"Are meal breaks accounted for?",
	"Is the pacing sustainable, with no overloaded days?",
	"Are opening hours plausible for the slots chosen?",
	"Does the plan match the stated trip length?",
	"Is there a sensible geographic grouping per day?",
}

type Input struct {
	Destination string
	Duration    int
	Itinerary   string
}

// Handler reviews a drafted itinerary. A failure here degrades the run: the
// draft stands and refinement is skipped, but the trip plan still ships.
type Handler struct {
	generator genai.Generator
	logger    logger.Logger
}

func NewHandler(generator genai.Generator, log logger.Logger) *Handler {
	return &Handler{generator: generator, logger: log}
}

func (h *Handler) Run(ctx context.Context, in Input) (string, error) {
	h.logger.Info("critiquing itinerary", map[string]interface{}{
		"destination": in.Destination,
	})

	critique, err := h.generator.Generate(ctx, systemContext, buildPrompt(in), 1)
	if err != nil {
		return "", err
	}
	return critique, nil
}

func buildPrompt(in Input) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Review this %d-day itinerary for %s against each checkpoint:\n\n", in.Duration, in.Destination)
	for i, c := range checkpoints {
		fmt.Fprintf(&b, "%d. %s\n", i+1, c)
	}
	b.WriteString("\nItinerary:\n")
	b.WriteString(in.Itinerary)
	b.WriteString("\n\nList only the checkpoints that fail, with a one-line fix for each.")
	return b.String()
}
