// Package registry holds the immutable snapshot of searchable agents.
package registry

import (
	"fmt"

	"github.com/proverbs-one/npslocator/internal/domain"
	"github.com/proverbs-one/npslocator/internal/domain/agent"
	"github.com/proverbs-one/npslocator/internal/domain/geo"
)

// Registry is an ordered, read-only collection of agents keyed by ID.
// It is never mutated after Load; reloads build a new Registry.
type Registry struct {
	agents []agent.Agent
	byID   map[string]int
}

// Empty returns a registry with no agents.
func Empty() *Registry {
	return &Registry{byID: map[string]int{}}
}

// Load builds a Registry preserving the given order.
// Fails with a ValidationError on an invalid record or a duplicate ID.
func Load(agents []agent.Agent) (*Registry, error) {
	r := &Registry{
		agents: make([]agent.Agent, 0, len(agents)),
		byID:   make(map[string]int, len(agents)),
	}
	for i := range agents {
		a := agents[i]
		if a.ID() == "" {
			return nil, domain.NewValidationError(fmt.Sprintf("agents[%d].id", i), "agent ID is required")
		}
		c := a.Coordinate()
		if err := geo.ValidateCoordinates(c.Lat(), c.Lng()); err != nil {
			return nil, domain.NewValidationError(fmt.Sprintf("agents[%d].coordinate", i), err.Error())
		}
		if prev, ok := r.byID[a.ID()]; ok {
			return nil, domain.NewValidationError(fmt.Sprintf("agents[%d].id", i),
				fmt.Sprintf("duplicate agent ID %q (first seen at agents[%d])", a.ID(), prev))
		}
		r.byID[a.ID()] = len(r.agents)
		r.agents = append(r.agents, a)
	}
	return r, nil
}

// All returns a copy of the agents in load order.
func (r *Registry) All() []agent.Agent {
	out := make([]agent.Agent, len(r.agents))
	copy(out, r.agents)
	return out
}

// Len returns the number of agents.
func (r *Registry) Len() int { return len(r.agents) }

// Get looks up an agent by ID.
func (r *Registry) Get(id string) (agent.Agent, bool) {
	i, ok := r.byID[id]
	if !ok {
		return agent.Agent{}, false
	}
	return r.agents[i], true
}

// Each calls fn for every agent in load order with its position.
// The agent pointer is only valid for the duration of the call.
func (r *Registry) Each(fn func(pos int, a *agent.Agent)) {
	for i := range r.agents {
		fn(i, &r.agents[i])
	}
}
