// internal/common/guard/guard.go

// Package guard wraps a single external lookup with a deadline and a
// deterministic fallback. A partial or failed live call never aborts the
// pipeline; it degrades to a known-good static answer so the orchestrator
// always has something to hand to the next stage.
package guard

import (
	"context"
	"time"

	"trip-planner/internal/common/logger"
	"trip-planner/internal/common/metrics"
)

// Origin marks whether a payload came from the live source or fallback data.
type Origin string

const (
	OriginLive     Origin = "live"
	OriginFallback Origin = "fallback"
)

// Outcome is the always-resolved result of a bounded call.
type Outcome[T any] struct {
	Payload T
	Origin  Origin
}

type result[T any] struct {
	payload T
	err     error
}

// Call invokes thunk subject to the deadline. On success within the deadline
// the live payload is returned; on timeout or any thunk error the failure is
// swallowed and the fallback payload is substituted. On deadline expiry the
// underlying I/O may still be outstanding; its result is discarded.
func Call[T any](ctx context.Context, kind string, deadline time.Duration, thunk func(context.Context) (T, error), fallback func() T, log logger.Logger) Outcome[T] {
	callCtx, cancel := context.WithTimeout(ctx, deadline)
	defer cancel()

	done := make(chan result[T], 1)
	go func() {
		payload, err := thunk(callCtx)
		done <- result[T]{payload: payload, err: err}
	}()

	select {
	case res := <-done:
		if res.err == nil {
			return Outcome[T]{Payload: res.payload, Origin: OriginLive}
		}
		log.Warn("external call failed, using fallback data", map[string]interface{}{
			"kind":  kind,
			"error": res.err.Error(),
		})
	case <-callCtx.Done():
		log.Warn("external call exceeded deadline, using fallback data", map[string]interface{}{
			"kind":     kind,
			"deadline": deadline.String(),
		})
	}

	metrics.LookupFallbacks.WithLabelValues(kind).Inc()
	return Outcome[T]{Payload: fallback(), Origin: OriginFallback}
}
