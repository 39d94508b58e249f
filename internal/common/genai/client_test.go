// internal/common/genai/client_test.go
package genai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trip-planner/internal/common/logger"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := NewClient(&Config{
		BaseURL:     server.URL,
		Model:       "test-model",
		Temperature: 0.5,
		Timeout:     2 * time.Second,
		MaxRetries:  2,
	}, logger.NewTestLogger(t))
	return server, client
}

func completion(content string) string {
	b, _ := json.Marshal(map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]string{"content": content}},
		},
	})
	return string(b)
}

func TestGenerate_ReturnsCompletion(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req.Model)
		assert.Equal(t, "system", req.Messages[0].Role)
		w.Write([]byte(completion("Day 1: visit the old town. TERMINATE")))
	})

	out, err := client.Generate(context.Background(), "You are a planner.", "Plan a trip.", 1)
	require.NoError(t, err)
	assert.Equal(t, "Day 1: visit the old town.", out)
}

func TestGenerate_MultiTurnStopsOnTerminate(t *testing.T) {
	var calls int32
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&calls, 1)
		if n == 1 {
			w.Write([]byte(completion("first draft")))
			return
		}
		w.Write([]byte(completion("final draft TERMINATE")))
	})

	out, err := client.Generate(context.Background(), "ctx", "prompt", 3)
	require.NoError(t, err)
	assert.Equal(t, "final draft", out)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestGenerate_RetriesTransientFailures(t *testing.T) {
	var calls int32
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":{"message":"overloaded"}}`))
			return
		}
		w.Write([]byte(completion("recovered")))
	})

	out, err := client.Generate(context.Background(), "ctx", "prompt", 1)
	require.NoError(t, err)
	assert.Equal(t, "recovered", out)
}

func TestGenerate_ExhaustedRetriesFail(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"message":"overloaded"}}`))
	})

	_, err := client.Generate(context.Background(), "ctx", "prompt", 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LLM_GENERATION_FAILED")
}

func TestGenerate_EmptyCompletionIsError(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(completion("TERMINATE")))
	})

	_, err := client.Generate(context.Background(), "ctx", "prompt", 1)
	require.Error(t, err)
}

func TestGenerate_DeadlineSurfacesAsTimeout(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.Write([]byte(completion("late")))
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.Generate(ctx, "ctx", "prompt", 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LLM_TIMEOUT")
}
