package request

import (
	"math"

	"github.com/proverbs-one/npslocator/internal/domain"
	"github.com/proverbs-one/npslocator/internal/domain/geo"
)

// Request is a validated proximity query.
type Request struct {
	origin      geo.Coordinate
	maxDistance float64
	limit       int
}

// New validates query parameters. Failures are InvalidQueryErrors.
// maxDistance must be finite and >= 0 (0 is legal); limit 0 means no cap.
func New(lat, lng, maxDistance float64, limit int) (Request, error) {
	origin, err := geo.NewCoordinate(lat, lng)
	if err != nil {
		return Request{}, domain.NewInvalidQuery("coordinate", err.Error())
	}
	if err := ValidateMaxDistance(maxDistance); err != nil {
		return Request{}, err
	}
	if limit < 0 {
		return Request{}, domain.NewInvalidQuery("limit", "limit must not be negative")
	}

	return Request{origin: origin, maxDistance: maxDistance, limit: limit}, nil
}

// ValidateMaxDistance checks that a radius is finite and non-negative.
func ValidateMaxDistance(maxDistance float64) error {
	if math.IsNaN(maxDistance) || math.IsInf(maxDistance, 0) {
		return domain.NewInvalidQuery("max_distance", "max distance must be a finite number")
	}
	if maxDistance < 0 {
		return domain.NewInvalidQuery("max_distance", "max distance must not be negative")
	}
	return nil
}

// Origin returns the query point.
func (r *Request) Origin() geo.Coordinate { return r.origin }

// MaxDistance returns the inclusive search radius.
func (r *Request) MaxDistance() float64 { return r.maxDistance }

// Limit returns the result cap (0 = unlimited).
func (r *Request) Limit() int { return r.limit }
