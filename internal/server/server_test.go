// internal/server/server_test.go
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trip-planner/internal/common/cache"
	"trip-planner/internal/common/config"
	"trip-planner/internal/common/logger"
	"trip-planner/internal/common/search"
	"trip-planner/internal/pipeline"
	activitylookup "trip-planner/internal/stages/activity-lookup"
	itinerarycritique "trip-planner/internal/stages/itinerary-critique"
	itinerarydraft "trip-planner/internal/stages/itinerary-draft"
	itineraryrefine "trip-planner/internal/stages/itinerary-refine"
	weatherlookup "trip-planner/internal/stages/weather-lookup"
	"trip-planner/pkg/registry"
)

type stubSearcher struct{}

func (stubSearcher) Search(context.Context, string, int) ([]search.Result, error) {
	return []search.Result{{Title: "Eiffel Tower", Snippet: "Iconic tower"}}, nil
}

type stubGenerator struct{ output string }

func (s stubGenerator) Generate(context.Context, string, string, int) (string, error) {
	return s.output, nil
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	log := logger.NewTestLogger(t)
	places := registry.Default()
	store := cache.NewMemoryStore(time.Hour)

	orch := pipeline.New(
		&config.PipelineConfig{EnableCritique: true, EnableRefinement: true, ResultCacheCapacity: 10},
		places,
		weatherlookup.NewHandler(&weatherlookup.Config{Deadline: time.Second, Seed: 1},
			weatherlookup.NewTableProvider(places, 1), places, store, log),
		activitylookup.NewHandler(&activitylookup.Config{Deadline: time.Second, MaxResults: 5},
			stubSearcher{}, places, store, log),
		itinerarydraft.NewHandler(stubGenerator{output: "Day 1: Eiffel Tower"}, log),
		itinerarycritique.NewHandler(stubGenerator{output: "Looks fine."}, log),
		itineraryrefine.NewHandler(stubGenerator{output: "Day 1 (revised)"}, log),
		log,
		nil,
	)

	srv, err := New(orch, log)
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Routes())
	t.Cleanup(ts.Close)
	return ts
}

func postPlan(t *testing.T, ts *httptest.Server, body string) (*http.Response, map[string]interface{}) {
	t.Helper()
	resp, err := http.Post(ts.URL+"/api/plan", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var parsed map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return resp, parsed
}

func TestPlanEndpoint_Success(t *testing.T) {
	ts := newTestServer(t)

	resp, parsed := postPlan(t, ts, `{"destination":"Paris","duration":3}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, parsed["success"])
	assert.Equal(t, "Paris", parsed["destination"])

	itinerary, ok := parsed["itinerary"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Day 1 (revised)", itinerary["final"])
}

func TestPlanEndpoint_ValidationFailure(t *testing.T) {
	ts := newTestServer(t)

	resp, parsed := postPlan(t, ts, `{"destination":"test","duration":3}`)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, false, parsed["success"])
	assert.Equal(t, "NOT_A_PLACE", parsed["errorCode"])
}

func TestPlanEndpoint_SchemaRejections(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"missing fields", `{}`},
		{"wrong duration type", `{"destination":"Paris","duration":"three"}`},
		{"extra field", `{"destination":"Paris","duration":3,"budget":100}`},
		{"not json", `destination=Paris`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, parsed := postPlan(t, ts, tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, false, parsed["success"])
		})
	}
}

func TestPlanEndpoint_MethodNotAllowed(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/plan")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestHealthEndpoint(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
