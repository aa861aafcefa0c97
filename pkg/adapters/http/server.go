package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/plantctl/pkg/ports"
	"github.com/go-chi/chi/v5"
)

//go:generate go tool oapi-codegen -package http -generate types,chi-server,client,spec -o api.gen.go ../../../api/openapi.yaml

// Server serves one simulator session over HTTP.
type Server struct {
	Simulator ports.Simulator
	Version   string
	Logger    *slog.Logger

	mu        sync.Mutex
	timelines map[string]ports.Timeline
}

// Ensure Server implements ServerInterface
var _ ServerInterface = (*Server)(nil)

// NewHandler creates the HTTP handler for a simulator. Extra routes (for
// example /metrics) can be mounted on the returned router.
func NewHandler(sim ports.Simulator, version string, logger *slog.Logger) chi.Router {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		Simulator: sim,
		Version:   version,
		Logger:    logger,
		timelines: make(map[string]ports.Timeline),
	}

	r := chi.NewRouter()
	r.Use(s.logRequests)

	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		spec, err := rawSpec()
		if err != nil {
			http.Error(w, "Failed to load spec", http.StatusInternalServerError)
			s.Logger.Error("bridge: failed to load OpenAPI spec", "error", err)
			return
		}
		w.Header().Set("Content-Type", "text/yaml")
		_, _ = w.Write(spec)
	})
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(swaggerHTML))
	})

	HandlerWithOptions(s, ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: s.paramError,
	})
	return r
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>plantctl Engine Bridge</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.Logger.Debug("bridge request", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}

// paramError reports a missing or malformed path or query parameter.
func (s *Server) paramError(w http.ResponseWriter, r *http.Request, err error) {
	s.writeError(w, http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: CodeBadRequest})
}

// timeline returns the named timeline, activating it on first use.
func (s *Server) timeline(w http.ResponseWriter, r *http.Request, name string) (ports.Timeline, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if tl, ok := s.timelines[name]; ok {
		return tl, true
	}
	tl, err := s.Simulator.ActivateTimeline(r.Context(), name)
	if err != nil {
		s.writeError(w, http.StatusNotFound, ErrorResponse{Error: err.Error(), Code: CodeNotFound})
		return nil, false
	}
	s.timelines[name] = tl
	return tl, true
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, Health{Status: "ok"})
}

// GetInfo handles GET /info.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	apiVersion := "unknown"
	if swagger, err := GetSwagger(); err == nil && swagger.Info != nil {
		apiVersion = swagger.Info.Version
	}
	s.writeJSON(w, Info{
		App:        "plantctl-bridge",
		Version:    strings.TrimSpace(s.Version),
		ApiVersion: apiVersion,
	})
}

// ActivateTimeline handles POST /timelines/{timeline}/activate.
func (s *Server) ActivateTimeline(w http.ResponseWriter, r *http.Request, timeline string) {
	tl, ok := s.timeline(w, r, timeline)
	if !ok {
		return
	}
	s.writeJSON(w, TimelineResponse{Timeline: tl.Name()})
}

// LoadTimeline handles POST /timelines/{timeline}/load.
func (s *Server) LoadTimeline(w http.ResponseWriter, r *http.Request, timeline string) {
	var body LoadTimelineJSONRequestBody
	if !s.decode(w, r, &body) {
		return
	}
	tl, ok := s.timeline(w, r, timeline)
	if !ok {
		return
	}
	if err := tl.Load(r.Context(), body.Model, body.Parameters, body.InitialConditions); err != nil {
		s.fail(w, "load", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// LoadInitialCondition handles POST /timelines/{timeline}/initial-condition.
func (s *Server) LoadInitialCondition(w http.ResponseWriter, r *http.Request, timeline string) {
	var body LoadInitialConditionJSONRequestBody
	if !s.decode(w, r, &body) {
		return
	}
	tl, ok := s.timeline(w, r, timeline)
	if !ok {
		return
	}
	if err := tl.LoadInitialCondition(r.Context(), body.Name); err != nil {
		s.fail(w, "load initial condition", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// InitializeTimeline handles POST /timelines/{timeline}/initialize.
func (s *Server) InitializeTimeline(w http.ResponseWriter, r *http.Request, timeline string) {
	tl, ok := s.timeline(w, r, timeline)
	if !ok {
		return
	}
	if err := tl.Initialize(r.Context()); err != nil {
		s.fail(w, "initialize", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetSpeed handles POST /timelines/{timeline}/speed.
func (s *Server) SetSpeed(w http.ResponseWriter, r *http.Request, timeline string) {
	var body SetSpeedJSONRequestBody
	if !s.decode(w, r, &body) {
		return
	}
	tl, ok := s.timeline(w, r, timeline)
	if !ok {
		return
	}
	if err := tl.SetSpeed(r.Context(), body.Factor); err != nil {
		s.fail(w, "set speed", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListApplications handles GET /timelines/{timeline}/applications.
func (s *Server) ListApplications(w http.ResponseWriter, r *http.Request, timeline string) {
	tl, ok := s.timeline(w, r, timeline)
	if !ok {
		return
	}
	apps, err := tl.Applications(r.Context())
	if err != nil {
		s.fail(w, "applications", err)
		return
	}
	s.writeJSON(w, ListResponse{Items: apps})
}

// ListBlockNames handles GET /timelines/{timeline}/block-names.
func (s *Server) ListBlockNames(w http.ResponseWriter, r *http.Request, timeline string, params ListBlockNamesParams) {
	tl, ok := s.timeline(w, r, timeline)
	if !ok {
		return
	}
	names, err := tl.BlockNames(r.Context(), params.Application)
	if err != nil {
		s.fail(w, "block names", err)
		return
	}
	s.writeJSON(w, ListResponse{Items: names})
}

// GetBlocks handles POST /timelines/{timeline}/blocks.
func (s *Server) GetBlocks(w http.ResponseWriter, r *http.Request, timeline string) {
	var body GetBlocksJSONRequestBody
	if !s.decode(w, r, &body) {
		return
	}
	tl, ok := s.timeline(w, r, timeline)
	if !ok {
		return
	}
	var names []string
	if body.Names != nil {
		names = *body.Names
	}
	if len(names) == 0 {
		var err error
		names, err = tl.BlockNames(r.Context(), body.Application)
		if err != nil {
			s.fail(w, "block names", err)
			return
		}
	}
	blocks, err := tl.Blocks(r.Context(), body.Application, names)
	if err != nil {
		s.fail(w, "blocks", err)
		return
	}
	s.writeJSON(w, BlocksResponse{Blocks: blocks})
}

// GetValue handles GET /timelines/{timeline}/value.
func (s *Server) GetValue(w http.ResponseWriter, r *http.Request, timeline string, params GetValueParams) {
	tl, ok := s.timeline(w, r, timeline)
	if !ok {
		return
	}
	v, err := tl.GetValue(r.Context(), params.Application, params.Name, deref(params.Unit))
	if err != nil {
		s.fail(w, "get value", err)
		return
	}
	s.writeJSON(w, ValueResponse{Value: v})
}

// GetValues handles POST /timelines/{timeline}/values.
func (s *Server) GetValues(w http.ResponseWriter, r *http.Request, timeline string) {
	var body GetValuesJSONRequestBody
	if !s.decode(w, r, &body) {
		return
	}
	tl, ok := s.timeline(w, r, timeline)
	if !ok {
		return
	}
	values, err := tl.GetValues(r.Context(), body.Application, body.Variables)
	if err != nil {
		s.fail(w, "get values", err)
		return
	}
	s.writeJSON(w, ValuesResponse{Values: values})
}

// SetValue handles POST /timelines/{timeline}/value.
func (s *Server) SetValue(w http.ResponseWriter, r *http.Request, timeline string) {
	var body SetValueJSONRequestBody
	if !s.decode(w, r, &body) {
		return
	}
	if body.Name == "" {
		s.writeError(w, http.StatusBadRequest, ErrorResponse{Error: "name is required", Code: CodeBadRequest})
		return
	}
	tl, ok := s.timeline(w, r, timeline)
	if !ok {
		return
	}
	if err := tl.SetValue(r.Context(), body.Application, body.Name, body.Value, deref(body.Unit)); err != nil {
		s.fail(w, "set value", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RunFor handles POST /timelines/{timeline}/run.
func (s *Server) RunFor(w http.ResponseWriter, r *http.Request, timeline string) {
	var body RunForJSONRequestBody
	if !s.decode(w, r, &body) {
		return
	}
	tl, ok := s.timeline(w, r, timeline)
	if !ok {
		return
	}
	if err := tl.RunFor(r.Context(), time.Duration(body.DurationNs)); err != nil {
		s.fail(w, "run", err)
		return
	}
	s.GetModelTime(w, r, timeline)
}

// GetModelTime handles GET /timelines/{timeline}/model-time.
func (s *Server) GetModelTime(w http.ResponseWriter, r *http.Request, timeline string) {
	tl, ok := s.timeline(w, r, timeline)
	if !ok {
		return
	}
	mt, err := tl.ModelTime(r.Context())
	if err != nil {
		s.fail(w, "model time", err)
		return
	}
	s.writeJSON(w, clockResponse(mt))
}

// -- Helpers --

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.writeError(w, http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("invalid request body: %v", err), Code: CodeBadRequest})
		s.Logger.Warn("bridge: invalid request body", "path", r.URL.Path, "error", err)
		return false
	}
	return true
}

func (s *Server) fail(w http.ResponseWriter, op string, err error) {
	status, body := classify(err)
	if status >= http.StatusInternalServerError {
		s.Logger.Error("bridge: engine call failed", "op", op, "error", err)
	}
	s.writeError(w, status, body)
}

func (s *Server) writeError(w http.ResponseWriter, status int, body ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.Logger.Error("bridge: error encode failed", "error", err)
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("bridge: response encode failed", "error", err)
	}
}
