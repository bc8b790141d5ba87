package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/proverbs-one/npslocator/internal/domain"
	"github.com/proverbs-one/npslocator/internal/domain/agent"
	"github.com/proverbs-one/npslocator/internal/domain/geo"
	"github.com/proverbs-one/npslocator/internal/domain/search/result"
)

// ErrorCode is the machine-readable error code of an ErrorResponse.
type ErrorCode string

// Error codes.
const (
	ErrorCodeBadRequest       ErrorCode = "bad_request"
	ErrorCodeInvalidQuery     ErrorCode = "invalid_query"
	ErrorCodeValidationFailed ErrorCode = "validation_failed"
	ErrorCodeAgentNotFound    ErrorCode = "agent_not_found"
	ErrorCodeUnauthorized     ErrorCode = "unauthorized"
	ErrorCodeNotFound         ErrorCode = "not_found"
	ErrorCodeMethodNotAllowed ErrorCode = "method_not_allowed"
	ErrorCodeInternalError    ErrorCode = "internal_error"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// Agent is the wire form of a registry agent.
type Agent struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// AgentListResponse lists the registry snapshot in load order.
type AgentListResponse struct {
	Items []Agent `json:"items"`
	Total int     `json:"total"`
}

// NearestItem is one ranked match.
type NearestItem struct {
	Agent
	Distance float64 `json:"distance"`
}

// NearestQuery echoes the effective query after defaults were applied.
type NearestQuery struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	MaxDistance float64 `json:"max_distance"`
	Limit       int     `json:"limit"`
}

// NearestResponse is the body of a successful proximity search.
type NearestResponse struct {
	Items []NearestItem `json:"items"`
	Total int           `json:"total"`
	Unit  geo.Unit      `json:"unit"`
	Query NearestQuery  `json:"query"`
}

// NearestRequest is the JSON body of POST /agents/nearest.
type NearestRequest struct {
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	MaxDistance *float64 `json:"max_distance,omitempty"`
	Limit       *int     `json:"limit,omitempty"`
	Format      string   `json:"format,omitempty"`
}

// ReloadResponse reports the size of the freshly swapped registry.
type ReloadResponse struct {
	Agents int `json:"agents"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string            `json:"status"`
	Agents int               `json:"agents"`
	Checks map[string]string `json:"checks"`
}

func agentToWire(a *agent.Agent) Agent {
	c := a.Coordinate()
	return Agent{
		ID:        a.ID(),
		Name:      a.Name(),
		Latitude:  c.Lat(),
		Longitude: c.Lng(),
	}
}

func resultToWire(r *result.Result) NearestItem {
	a := r.Agent()
	return NearestItem{
		Agent:    agentToWire(&a),
		Distance: r.Distance(),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeGeoJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/geo+json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a client-facing message without exposing internals.
// Query and registry validation errors carry their field-level detail.
func safeDomainMessage(err error) string {
	var iqe *domain.InvalidQueryError
	if errors.As(err, &iqe) {
		return iqe.Error()
	}
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return ve.Error()
	}
	sentinels := []error{
		domain.ErrInvalidQuery,
		domain.ErrValidation,
		domain.ErrNotFound,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}
