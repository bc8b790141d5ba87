// Package geojson renders proximity results as GeoJSON (RFC 7946).
package geojson

import (
	"github.com/proverbs-one/npslocator/internal/domain/geo"
	"github.com/proverbs-one/npslocator/internal/domain/search/result"
)

// FeatureCollection represents a GeoJSON FeatureCollection.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// Feature represents a GeoJSON Feature.
type Feature struct {
	Type       string         `json:"type"`
	ID         string         `json:"id,omitempty"`
	Geometry   Geometry       `json:"geometry"`
	Properties map[string]any `json:"properties"`
}

// Geometry represents a GeoJSON Geometry.
type Geometry struct {
	Type        string `json:"type"`
	Coordinates any    `json:"coordinates"`
}

// PointCoordinates represents [longitude, latitude] for a Point.
type PointCoordinates [2]float64

// FromResults converts ranked results to a FeatureCollection of Points.
// Feature order follows result order; rank is 1-based.
func FromResults(results []result.Result, unit geo.Unit) *FeatureCollection {
	features := make([]Feature, 0, len(results))

	for i := range results {
		a := results[i].Agent()
		c := a.Coordinate()

		features = append(features, Feature{
			Type: "Feature",
			ID:   a.ID(),
			Geometry: Geometry{
				Type:        "Point",
				Coordinates: PointCoordinates{c.Lng(), c.Lat()},
			},
			Properties: map[string]any{
				"id":       a.ID(),
				"name":     a.Name(),
				"distance": results[i].Distance(),
				"unit":     string(unit),
				"rank":     i + 1,
			},
		})
	}

	return &FeatureCollection{
		Type:     "FeatureCollection",
		Features: features,
	}
}
