package locator

import (
	"context"
	"fmt"
)

// DefaultRadius is the search radius a Query uses until Within is called.
const DefaultRadius = 10.0

// Query is a fluent builder for proximity searches.
//
//	matches, err := client.Query().Near(38.897, -77.036).Within(5).Limit(3).Do(ctx)
type Query struct {
	client *Client

	lat, lng float64
	hasPoint bool
	radius   float64
	limit    int
}

// Query starts a proximity search with DefaultRadius and no result cap.
func (c *Client) Query() *Query {
	return &Query{client: c, radius: DefaultRadius}
}

// Near sets the query coordinate.
func (q *Query) Near(lat, lng float64) *Query {
	q.lat = lat
	q.lng = lng
	q.hasPoint = true
	return q
}

// Within sets the inclusive search radius in the client unit.
func (q *Query) Within(radius float64) *Query {
	q.radius = radius
	return q
}

// Limit caps the number of results. 0 returns every match.
func (q *Query) Limit(n int) *Query {
	q.limit = n
	return q
}

// Do executes the search.
func (q *Query) Do(ctx context.Context) ([]Match, error) {
	if !q.hasPoint {
		return nil, fmt.Errorf("query: %w: Near was not called", ErrInvalidQuery)
	}
	return q.client.Nearest(ctx, q.lat, q.lng, q.radius, q.limit)
}
