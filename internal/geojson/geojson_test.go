package geojson

import (
	"encoding/json"
	"testing"

	"github.com/proverbs-one/npslocator/internal/domain/agent"
	"github.com/proverbs-one/npslocator/internal/domain/geo"
	"github.com/proverbs-one/npslocator/internal/domain/search/result"
)

func mustAgent(t *testing.T, id, name string, lat, lng float64) agent.Agent {
	t.Helper()
	a, err := agent.New(id, name, lat, lng)
	if err != nil {
		t.Fatalf("agent.New: %v", err)
	}
	return a
}

func TestFromResults(t *testing.T) {
	results := []result.Result{
		result.New(mustAgent(t, "a", "Agent A", 38.9, -77.03), 0.38),
		result.New(mustAgent(t, "b", "Agent B", 38.89, -77.05), 0.92),
	}

	fc := FromResults(results, geo.Miles)

	if fc.Type != "FeatureCollection" {
		t.Errorf("expected type FeatureCollection, got %s", fc.Type)
	}
	if len(fc.Features) != 2 {
		t.Fatalf("expected 2 features, got %d", len(fc.Features))
	}

	f := fc.Features[0]
	if f.Geometry.Type != "Point" {
		t.Errorf("expected Point geometry, got %s", f.Geometry.Type)
	}
	coords, ok := f.Geometry.Coordinates.(PointCoordinates)
	if !ok {
		t.Fatalf("expected PointCoordinates, got %T", f.Geometry.Coordinates)
	}
	// GeoJSON is [lng, lat]
	if coords[0] != -77.03 || coords[1] != 38.9 {
		t.Errorf("unexpected coordinates %v", coords)
	}
	if f.Properties["name"] != "Agent A" || f.Properties["unit"] != "mi" || f.Properties["rank"] != 1 {
		t.Errorf("unexpected properties %v", f.Properties)
	}
	if fc.Features[1].ID != "b" {
		t.Errorf("expected second feature b, got %s", fc.Features[1].ID)
	}
}

func TestFromResults_EmptyEncodesArray(t *testing.T) {
	data, err := json.Marshal(FromResults(nil, geo.Kilometers))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"type":"FeatureCollection","features":[]}`
	if string(data) != want {
		t.Errorf("got %s, want %s", data, want)
	}
}
