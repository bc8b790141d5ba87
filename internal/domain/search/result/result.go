package result

import "github.com/proverbs-one/npslocator/internal/domain/agent"

// Result is a single proximity match: the agent and its distance from the query.
type Result struct {
	agent    agent.Agent
	distance float64
}

// New creates a search result.
func New(a agent.Agent, distance float64) Result {
	return Result{agent: a, distance: distance}
}

// Agent returns the matched agent.
func (r *Result) Agent() agent.Agent { return r.agent }

// Distance returns the great-circle distance in the service unit.
func (r *Result) Distance() float64 { return r.distance }
