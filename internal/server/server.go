// internal/server/server.go
package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/xeipuuv/gojsonschema"

	"trip-planner/internal/common/errors"
	"trip-planner/internal/common/logger"
	"trip-planner/internal/pipeline"
)

// planRequestSchema rejects malformed bodies before the pipeline sees them.
// Field-level rules (length, ranges, denylist) stay in the pipeline's own
// validation so the CLI and HTTP paths agree.
const planRequestSchema = `{
	"type": "object",
	"required": ["destination", "duration"],
	"properties": {
		"destination": {"type": "string"},
		"duration": {"type": "integer"}
	},
	"additionalProperties": false
}`

type planRequest struct {
	Destination string `json:"destination"`
	Duration    int    `json:"duration"`
}

// Server exposes the pipeline over HTTP.
type Server struct {
	orch   *pipeline.Orchestrator
	logger logger.Logger
	schema *gojsonschema.Schema
}

func New(orch *pipeline.Orchestrator, log logger.Logger) (*Server, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(planRequestSchema))
	if err != nil {
		return nil, err
	}
	return &Server{orch: orch, logger: log, schema: schema}, nil
}

// Routes returns the full handler tree: the plan endpoint, health and
// Prometheus metrics.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/plan", s.handlePlan)
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<16))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "unreadable request body")
		return
	}

	validated, err := s.schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "request body is not valid JSON")
		return
	}
	if !validated.Valid() {
		s.writeError(w, http.StatusBadRequest, schemaErrorMessage(validated))
		return
	}

	var req planRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "request body is not valid JSON")
		return
	}

	result := s.orch.PlanTrip(r.Context(), req.Destination, req.Duration, nil)

	status := http.StatusOK
	if !result.Success {
		if errors.IsValidationCode(errors.ErrorCode(result.ErrorCode)) {
			status = http.StatusUnprocessableEntity
		} else {
			status = http.StatusBadGateway
		}
	}
	s.writeJSON(w, status, result)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func schemaErrorMessage(result *gojsonschema.Result) string {
	if len(result.Errors()) > 0 {
		return result.Errors()[0].String()
	}
	return "invalid request"
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]interface{}{
		"success": false,
		"error":   message,
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.WithError(err).Error("failed to write response", nil)
	}
}
