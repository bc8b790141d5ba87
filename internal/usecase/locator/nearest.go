package locator

import (
	"math"
	"sort"

	"github.com/proverbs-one/npslocator/internal/domain"
	"github.com/proverbs-one/npslocator/internal/domain/agent"
	"github.com/proverbs-one/npslocator/internal/domain/geo"
	"github.com/proverbs-one/npslocator/internal/domain/registry"
	"github.com/proverbs-one/npslocator/internal/domain/search/request"
	"github.com/proverbs-one/npslocator/internal/domain/search/result"
)

// Nearest scans the registry and returns agents within maxDistance of origin,
// ordered nearest-first. The radius bound is inclusive and equal distances keep
// registry load order. limit > 0 truncates the ordered matches.
// The result is never nil; an empty slice means nothing is in range.
func Nearest(
	reg *registry.Registry, origin geo.Coordinate, maxDistance float64, limit int, unit geo.Unit,
) ([]result.Result, error) {
	if err := geo.ValidateCoordinates(origin.Lat(), origin.Lng()); err != nil {
		return nil, domain.NewInvalidQuery("coordinate", err.Error())
	}
	if err := request.ValidateMaxDistance(maxDistance); err != nil {
		return nil, err
	}
	if limit < 0 {
		return nil, domain.NewInvalidQuery("limit", "limit must not be negative")
	}

	matches := make([]result.Result, 0)
	var nanErr error
	reg.Each(func(_ int, a *agent.Agent) {
		if nanErr != nil {
			return
		}
		d := geo.Distance(origin, a.Coordinate(), unit)
		if math.IsNaN(d) {
			nanErr = domain.NewInvalidQuery("coordinate", "distance to agent "+a.ID()+" is not a number")
			return
		}
		if d <= maxDistance {
			matches = append(matches, result.New(*a, d))
		}
	})
	if nanErr != nil {
		return nil, nanErr
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Distance() < matches[j].Distance()
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

// LocateNearest runs Nearest for a validated request.
func LocateNearest(reg *registry.Registry, req *request.Request, unit geo.Unit) ([]result.Result, error) {
	return Nearest(reg, req.Origin(), req.MaxDistance(), req.Limit(), unit)
}
