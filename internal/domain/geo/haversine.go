package geo

import (
	"fmt"
	"math"
	"strings"
)

// Mean Earth radii used for haversine distance. The miles value is part of the
// public contract: every reported distance is computed with exactly this constant.
const (
	EarthRadiusMiles      = 3958.8
	EarthRadiusKilometers = 6371.0
)

// Unit is the distance unit a service instance reports in.
type Unit string

// Supported distance units.
const (
	Miles      Unit = "mi"
	Kilometers Unit = "km"
)

// ParseUnit accepts "mi", "miles", "km", "kilometers" (case-insensitive).
// Empty input selects Miles.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "mi", "mile", "miles":
		return Miles, nil
	case "km", "kilometer", "kilometers", "kilometre", "kilometres":
		return Kilometers, nil
	default:
		return "", fmt.Errorf("unknown distance unit %q", s)
	}
}

// IsValid reports whether u is a supported unit.
func (u Unit) IsValid() bool { return u == Miles || u == Kilometers }

// EarthRadius returns the mean Earth radius expressed in u.
// Unknown units fall back to miles.
func (u Unit) EarthRadius() float64 {
	if u == Kilometers {
		return EarthRadiusKilometers
	}
	return EarthRadiusMiles
}

// Haversine returns the great-circle distance between two points given in
// degrees, on a sphere of the given radius. The result has the radius' unit.
func Haversine(lat1, lng1, lat2, lng2, radius float64) float64 {
	lat1r := lat1 * math.Pi / 180
	lat2r := lat2 * math.Pi / 180
	dLat := (lat2 - lat1) * math.Pi / 180
	dLng := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1r)*math.Cos(lat2r)*math.Sin(dLng/2)*math.Sin(dLng/2)
	// Rounding can push a slightly above 1 for near-antipodal points.
	if a > 1 {
		a = 1
	}
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return radius * c
}

// Distance returns the great-circle distance between a and b in unit u.
func Distance(a, b Coordinate, u Unit) float64 {
	return Haversine(a.lat, a.lng, b.lat, b.lng, u.EarthRadius())
}
