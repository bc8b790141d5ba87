package geo

import (
	"fmt"
	"math"
)

// Coordinate is an immutable latitude/longitude pair in degrees.
type Coordinate struct {
	lat float64
	lng float64
}

// NewCoordinate validates and creates a Coordinate.
// Out-of-range values are rejected, never clamped.
func NewCoordinate(lat, lng float64) (Coordinate, error) {
	if err := ValidateCoordinates(lat, lng); err != nil {
		return Coordinate{}, err
	}
	return Coordinate{lat: lat, lng: lng}, nil
}

// Lat returns the latitude in degrees.
func (c Coordinate) Lat() float64 { return c.lat }

// Lng returns the longitude in degrees.
func (c Coordinate) Lng() float64 { return c.lng }

// String formats the coordinate as "lat,lng".
func (c Coordinate) String() string {
	return fmt.Sprintf("%.6f,%.6f", c.lat, c.lng)
}

// ValidateCoordinates checks that both values are finite,
// latitude is in [-90,90] and longitude in [-180,180].
func ValidateCoordinates(lat, lng float64) error {
	if math.IsNaN(lat) || math.IsNaN(lng) {
		return fmt.Errorf("coordinates cannot be NaN")
	}
	if math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return fmt.Errorf("coordinates cannot be infinite")
	}
	if lat < -90 || lat > 90 {
		return fmt.Errorf("latitude must be between -90 and 90, got %g", lat)
	}
	if lng < -180 || lng > 180 {
		return fmt.Errorf("longitude must be between -180 and 180, got %g", lng)
	}
	return nil
}
