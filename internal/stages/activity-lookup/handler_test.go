// internal/stages/activity-lookup/handler_test.go
package activitylookup

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trip-planner/internal/common/cache"
	"trip-planner/internal/common/guard"
	"trip-planner/internal/common/logger"
	"trip-planner/internal/common/search"
	"trip-planner/pkg/registry"
)

type stubSearcher struct {
	calls   int32
	results []search.Result
	err     error
	delay   time.Duration
}

func (s *stubSearcher) Search(ctx context.Context, query string, maxResults int) ([]search.Result, error) {
	atomic.AddInt32(&s.calls, 1)
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return s.results, s.err
}

func newHandler(t *testing.T, searcher search.Searcher) *Handler {
	t.Helper()
	return NewHandler(
		&Config{Deadline: time.Second, MaxResults: 5},
		searcher,
		registry.Default(),
		cache.NewMemoryStore(time.Hour),
		logger.NewTestLogger(t),
	)
}

func TestLookup_LiveResults(t *testing.T) {
	searcher := &stubSearcher{results: []search.Result{
		{Title: "Eiffel Tower tickets", Snippet: "Skip the line", URL: "https://example.com/a"},
		{Title: "Louvre guide", Snippet: "Best rooms", URL: "https://example.com/b"},
	}}
	h := newHandler(t, searcher)

	fact := h.Lookup(context.Background(), "Paris", "")

	assert.Equal(t, guard.OriginLive, fact.Origin)
	require.Len(t, fact.Activities, 2)
	assert.Equal(t, "Eiffel Tower tickets", fact.Activities[0].Name)
	assert.Equal(t, "https://example.com/a", fact.Activities[0].Source)
	assert.Equal(t, "top attractions things to do in Paris travel guide", fact.SourceQuery)
}

func TestLookup_TypedQuery(t *testing.T) {
	searcher := &stubSearcher{results: []search.Result{{Title: "x"}}}
	h := newHandler(t, searcher)

	fact := h.Lookup(context.Background(), "Paris", "museums")

	assert.Equal(t, "museums in Paris travel attractions", fact.SourceQuery)
}

func TestLookup_SearchFailureFallsBackToCuratedList(t *testing.T) {
	searcher := &stubSearcher{err: fmt.Errorf("engine unavailable")}
	h := newHandler(t, searcher)

	fact := h.Lookup(context.Background(), "Paris", "")

	assert.Equal(t, guard.OriginFallback, fact.Origin)
	require.Len(t, fact.Activities, 5)
	names := make([]string, 0, 5)
	for _, a := range fact.Activities {
		names = append(names, a.Name)
	}
	assert.Equal(t, []string{
		"Eiffel Tower",
		"Louvre Museum",
		"Notre-Dame Cathedral",
		"Seine River Cruise",
		"Montmartre",
	}, names)
}

func TestLookup_EmptyResultsFallBack(t *testing.T) {
	searcher := &stubSearcher{results: nil}
	h := newHandler(t, searcher)

	fact := h.Lookup(context.Background(), "Nowhereville", "")

	assert.Equal(t, guard.OriginFallback, fact.Origin)
	require.NotEmpty(t, fact.Activities)
	assert.Equal(t, "City Center", fact.Activities[0].Name)
}

func TestLookup_SlowSearchFallsBack(t *testing.T) {
	searcher := &stubSearcher{delay: 2 * time.Second, results: []search.Result{{Title: "late"}}}
	h := NewHandler(
		&Config{Deadline: 50 * time.Millisecond, MaxResults: 5},
		searcher,
		registry.Default(),
		cache.NewMemoryStore(time.Hour),
		logger.NewTestLogger(t),
	)

	start := time.Now()
	fact := h.Lookup(context.Background(), "Tokyo", "")

	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, guard.OriginFallback, fact.Origin)
	assert.Equal(t, "Senso-ji Temple", fact.Activities[0].Name)
}

func TestLookup_CacheHitSkipsSearch(t *testing.T) {
	searcher := &stubSearcher{results: []search.Result{{Title: "x"}}}
	h := newHandler(t, searcher)

	h.Lookup(context.Background(), "Paris", "")
	h.Lookup(context.Background(), "Paris", "")

	assert.Equal(t, int32(1), atomic.LoadInt32(&searcher.calls))
}

func TestLookup_TypeVariantsCacheSeparately(t *testing.T) {
	searcher := &stubSearcher{results: []search.Result{{Title: "x"}}}
	h := newHandler(t, searcher)

	h.Lookup(context.Background(), "Paris", "")
	h.Lookup(context.Background(), "Paris", "museums")

	assert.Equal(t, int32(2), atomic.LoadInt32(&searcher.calls))
}

func TestFact_ResearchText(t *testing.T) {
	fact := Fact{
		Destination: "Paris",
		Activities: []Activity{
			{Name: "Eiffel Tower", Description: "Iconic iron lattice tower with panoramic views"},
			{Name: "Louvre Museum", Description: ""},
		},
	}

	text := fact.ResearchText()
	assert.Contains(t, text, "Top activities in Paris:")
	assert.Contains(t, text, "• Eiffel Tower - Iconic iron lattice tower")
	assert.Contains(t, text, "• Louvre Museum")
}

func TestFact_ResearchTextClipsOnRuneBoundary(t *testing.T) {
	// A two-byte rune straddles the 80-byte description cut.
	fact := Fact{
		Destination: "Paris",
		Activities: []Activity{
			{Name: "Montmartre", Description: strings.Repeat("a", 79) + "œ basilica"},
		},
	}

	text := fact.ResearchText()
	assert.True(t, utf8.ValidString(text))
	assert.Contains(t, text, "• Montmartre - "+strings.Repeat("a", 79))
	assert.NotContains(t, text, "œ")
}

func TestFact_ResearchTextCapsAtFive(t *testing.T) {
	fact := Fact{Destination: "Paris"}
	for i := 0; i < 8; i++ {
		fact.Activities = append(fact.Activities, Activity{Name: fmt.Sprintf("Spot %d", i)})
	}

	text := fact.ResearchText()
	assert.Contains(t, text, "Spot 4")
	assert.NotContains(t, text, "Spot 5")
}
