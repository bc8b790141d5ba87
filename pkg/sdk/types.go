package locator

import "github.com/proverbs-one/npslocator/internal/domain/geo"

// Unit selects the distance unit of a Client.
type Unit string

// Supported units.
const (
	Miles      Unit = Unit(geo.Miles)
	Kilometers Unit = Unit(geo.Kilometers)
)

// EarthRadiusMiles is the mean Earth radius used for every distance.
const EarthRadiusMiles = geo.EarthRadiusMiles

// Agent is a geo-located notary public service agent.
type Agent struct {
	ID        string
	Name      string
	Latitude  float64
	Longitude float64
}

// Point is a WGS84 coordinate in degrees.
type Point struct {
	Latitude  float64
	Longitude float64
}

// Match is an agent within range of a query, with its distance in the client unit.
type Match struct {
	Agent    Agent
	Distance float64
}
