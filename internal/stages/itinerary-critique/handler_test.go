// internal/stages/itinerary-critique/handler_test.go
package itinerarycritique

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trip-planner/internal/common/logger"
)

type stubGenerator struct {
	lastPrompt string
	lastTurns  int
	output     string
	err        error
}

func (s *stubGenerator) Generate(_ context.Context, _, prompt string, maxTurns int) (string, error) {
	s.lastPrompt = prompt
	s.lastTurns = maxTurns
	return s.output, s.err
}

func TestRun_PromptListsEveryCheckpoint(t *testing.T) {
	gen := &stubGenerator{output: "Checkpoint 3 fails."}
	h := NewHandler(gen, logger.NewTestLogger(t))

	out, err := h.Run(context.Background(), Input{
		Destination: "Tokyo",
		Duration:    5,
		Itinerary:   "Day 1: Senso-ji Temple",
	})

	require.NoError(t, err)
	assert.Equal(t, "Checkpoint 3 fails.", out)
	assert.Equal(t, 1, gen.lastTurns)
	assert.Contains(t, gen.lastPrompt, "Day 1: Senso-ji Temple")
	for i := 1; i <= 10; i++ {
		assert.Contains(t, gen.lastPrompt, fmt.Sprintf("%d. ", i))
	}
	assert.Contains(t, gen.lastPrompt, "respect the reported weather")
}

func TestRun_PropagatesGeneratorError(t *testing.T) {
	gen := &stubGenerator{err: fmt.Errorf("model unavailable")}
	h := NewHandler(gen, logger.NewTestLogger(t))

	_, err := h.Run(context.Background(), Input{Destination: "Tokyo", Duration: 5})
	assert.Error(t, err)
}
