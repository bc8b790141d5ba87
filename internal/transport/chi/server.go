package chi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/proverbs-one/npslocator/internal/domain"
	"github.com/proverbs-one/npslocator/internal/geojson"
	logpkg "github.com/proverbs-one/npslocator/internal/logger"
	healthuc "github.com/proverbs-one/npslocator/internal/usecase/health"
	locatoruc "github.com/proverbs-one/npslocator/internal/usecase/locator"
)

const formatGeoJSON = "geojson"

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// SearchDefaults fills in omitted query parameters.
type SearchDefaults struct {
	Radius   float64 // max_distance when omitted
	Limit    int     // limit when omitted
	MaxLimit int     // upper bound for limit; 0 = unbounded
}

// Server serves the agent locator HTTP API.
type Server struct {
	locator       *locatoruc.Service
	health        *healthuc.Service
	defaults      SearchDefaults
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	locator *locatoruc.Service,
	health *healthuc.Service,
	defaults SearchDefaults,
	logger *zap.Logger,
) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		locator:  locator,
		health:   health,
		defaults: defaults,
		logger:   logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrInvalidQuery, http.StatusBadRequest, ErrorCodeInvalidQuery),
		sentinelHandler(domain.ErrValidation, http.StatusUnprocessableEntity, ErrorCodeValidationFailed),
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, ErrorCodeAgentNotFound),
	}
	return s
}

// Register mounts every route on r.
func (s *Server) Register(r chi.Router) {
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)

	r.Route("/agents", func(r chi.Router) {
		r.Get("/", s.ListAgents)
		r.Get("/nearest", s.NearestGET)
		r.Post("/nearest", s.NearestPOST)
		r.Get("/{id}", s.GetAgent)
	})
	r.Post("/admin/reload", s.Reload)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, ErrorCodeNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, ErrorCodeMethodNotAllowed, "method not allowed")
	})
}

// NearestGET handles GET /agents/nearest?lat=&lng=&max_distance=&limit=&format=.
func (s *Server) NearestGET(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var (
		lat, lng    float64
		maxDistance *float64
		limit       *int
		format      *string
	)
	params := []struct {
		name     string
		required bool
		dest     any
	}{
		{"lat", true, &lat},
		{"lng", true, &lng},
		{"max_distance", false, &maxDistance},
		{"limit", false, &limit},
		{"format", false, &format},
	}
	for _, p := range params {
		if err := runtime.BindQueryParameter("form", true, p.required, p.name, q, p.dest); err != nil {
			writeError(w, http.StatusBadRequest, ErrorCodeBadRequest,
				fmt.Sprintf("Invalid query parameter %s", p.name))
			return
		}
	}

	f := ""
	if format != nil {
		f = *format
	}
	s.nearest(w, r, lat, lng, maxDistance, limit, f)
}

// NearestPOST handles POST /agents/nearest.
func (s *Server) NearestPOST(w http.ResponseWriter, r *http.Request) {
	var req NearestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Latitude == nil || req.Longitude == nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "latitude and longitude are required")
		return
	}

	s.nearest(w, r, *req.Latitude, *req.Longitude, req.MaxDistance, req.Limit, req.Format)
}

func (s *Server) nearest(
	w http.ResponseWriter,
	r *http.Request,
	lat, lng float64,
	maxDistancePtr *float64,
	limitPtr *int,
	format string,
) {
	if format != "" && format != "json" && format != formatGeoJSON {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, `format must be "json" or "geojson"`)
		return
	}

	maxDistance := s.defaults.Radius
	if maxDistancePtr != nil {
		maxDistance = *maxDistancePtr
	}
	limit := s.resolveLimit(limitPtr)

	results, err := s.locator.Search(r.Context(), lat, lng, maxDistance, limit)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	if format == formatGeoJSON {
		writeGeoJSON(w, http.StatusOK, geojson.FromResults(results, s.locator.Unit()))
		return
	}

	items := make([]NearestItem, len(results))
	for i := range results {
		items[i] = resultToWire(&results[i])
	}

	writeJSON(w, http.StatusOK, NearestResponse{
		Items: items,
		Total: len(items),
		Unit:  s.locator.Unit(),
		Query: NearestQuery{
			Latitude:    lat,
			Longitude:   lng,
			MaxDistance: maxDistance,
			Limit:       limit,
		},
	})
}

// resolveLimit applies the configured default and cap.
// Negative values pass through so the search rejects them.
func (s *Server) resolveLimit(p *int) int {
	if p == nil {
		return s.defaults.Limit
	}
	limit := *p
	if limit < 0 {
		return limit
	}
	if s.defaults.MaxLimit > 0 && (limit == 0 || limit > s.defaults.MaxLimit) {
		return s.defaults.MaxLimit
	}
	return limit
}

// ListAgents handles GET /agents.
func (s *Server) ListAgents(w http.ResponseWriter, r *http.Request) {
	agents := s.locator.Agents(r.Context())

	items := make([]Agent, len(agents))
	for i := range agents {
		items[i] = agentToWire(&agents[i])
	}

	writeJSON(w, http.StatusOK, AgentListResponse{Items: items, Total: len(items)})
}

// GetAgent handles GET /agents/{id}.
func (s *Server) GetAgent(w http.ResponseWriter, r *http.Request) {
	a, err := s.locator.Agent(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, agentToWire(&a))
}

// Reload handles POST /admin/reload.
func (s *Server) Reload(w http.ResponseWriter, r *http.Request) {
	n, err := s.locator.Reload(r.Context())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ReloadResponse{Agents: n})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status: string(report.Status),
		Agents: report.Agents,
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			logpkg.FromContext(r.Context()).Debug("request rejected", zap.Error(err))
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, ErrorCodeInternalError, "internal error")
}
