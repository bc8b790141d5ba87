package locator

import (
	"context"
	"errors"
	"testing"
)

func TestQuery_Builder(t *testing.T) {
	c, err := New(WithAgents(dcAgents))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	matches, err := c.Query().Near(38.8970, -77.0360).Do(context.Background())
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if got := matchIDs(matches); len(got) != 2 || got[0] != "A" || got[1] != "B" {
		t.Errorf("default radius ids = %v", got)
	}

	matches, err = c.Query().Near(38.8970, -77.0360).Within(0.5).Do(context.Background())
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if got := matchIDs(matches); len(got) != 1 || got[0] != "A" {
		t.Errorf("0.5 mi ids = %v", got)
	}

	matches, err = c.Query().Near(38.8970, -77.0360).Within(300).Limit(2).Do(context.Background())
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if len(matches) != 2 {
		t.Errorf("limit 2 returned %d", len(matches))
	}
}

func TestQuery_RequiresNear(t *testing.T) {
	c, err := New(WithAgents(dcAgents))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := c.Query().Within(5).Do(context.Background()); !errors.Is(err, ErrInvalidQuery) {
		t.Errorf("expected ErrInvalidQuery, got %v", err)
	}
}
