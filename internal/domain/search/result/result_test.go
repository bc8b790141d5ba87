package result

import (
	"testing"

	"github.com/proverbs-one/npslocator/internal/domain/agent"
)

func TestNew(t *testing.T) {
	a, err := agent.New("nps-1", "Agent One", 38.9, -77.03)
	if err != nil {
		t.Fatalf("agent.New: %v", err)
	}

	r := New(a, 0.383486)

	got := r.Agent()
	if got.ID() != "nps-1" {
		t.Errorf("Agent().ID() = %q", got.ID())
	}
	if r.Distance() != 0.383486 {
		t.Errorf("Distance() = %f", r.Distance())
	}
}
