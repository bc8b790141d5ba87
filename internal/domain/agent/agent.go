package agent

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/proverbs-one/npslocator/internal/domain"
	"github.com/proverbs-one/npslocator/internal/domain/geo"
)

var idRegex = regexp.MustCompile(`^[a-zA-Z0-9_.:-]+$`)

// Field limits.
const (
	MaxIDLength   = 256
	MaxNameLength = 255
)

// Agent is a geo-located service agent (immutable value object).
type Agent struct {
	id         string
	name       string
	coordinate geo.Coordinate
}

// New validates and creates an Agent.
// ID: ^[a-zA-Z0-9_.:-]+$, 1-256 chars. Name: non-blank, max 255 bytes.
// Coordinates must be finite and in range. Failures are ValidationErrors.
func New(id, name string, lat, lng float64) (Agent, error) {
	if id == "" {
		return Agent{}, domain.NewValidationError("id", "agent ID is required")
	}
	if len(id) > MaxIDLength {
		return Agent{}, domain.NewValidationError("id", fmt.Sprintf("agent ID too long (max %d)", MaxIDLength))
	}
	if !idRegex.MatchString(id) {
		return Agent{}, domain.NewValidationError("id",
			fmt.Sprintf("agent ID %q must contain only letters, digits, '_', '-', '.', ':'", id))
	}
	if strings.TrimSpace(name) == "" {
		return Agent{}, domain.NewValidationError("name", "agent name cannot be empty or whitespace")
	}
	if len(name) > MaxNameLength {
		return Agent{}, domain.NewValidationError("name", fmt.Sprintf("agent name too long (max %d)", MaxNameLength))
	}
	coord, err := geo.NewCoordinate(lat, lng)
	if err != nil {
		return Agent{}, domain.NewValidationError("coordinate", err.Error())
	}

	return Agent{id: id, name: name, coordinate: coord}, nil
}

// ID returns the agent identifier.
func (a *Agent) ID() string { return a.id }

// Name returns the display name.
func (a *Agent) Name() string { return a.name }

// Coordinate returns the agent location.
func (a *Agent) Coordinate() geo.Coordinate { return a.coordinate }
