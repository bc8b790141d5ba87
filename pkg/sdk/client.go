package locator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/proverbs-one/npslocator/internal/domain"
	"github.com/proverbs-one/npslocator/internal/domain/agent"
	"github.com/proverbs-one/npslocator/internal/domain/geo"
	"github.com/proverbs-one/npslocator/internal/domain/search/result"
	"github.com/proverbs-one/npslocator/internal/repository/agentsource"
	locatoruc "github.com/proverbs-one/npslocator/internal/usecase/locator"
)

// Client answers proximity queries against an in-memory agent registry.
// Safe for concurrent use; Reload swaps the registry atomically.
type Client struct {
	svc *locatoruc.Service
	obs *observer
}

// New builds a Client and loads its registry.
// Exactly one of WithAgents or WithRegistryFile is required.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{unit: Miles}
	for _, o := range opts {
		o.apply(cfg)
	}

	unit, err := geo.ParseUnit(string(cfg.unit))
	if err != nil {
		return nil, fmt.Errorf("locator: %w", err)
	}

	switch {
	case cfg.agentsSet && cfg.registryFile != "":
		return nil, errors.New("locator: WithAgents and WithRegistryFile are mutually exclusive")
	case !cfg.agentsSet && cfg.registryFile == "":
		return nil, errors.New("locator: registry required (use WithAgents or WithRegistryFile)")
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	c := &Client{obs: obs}
	start := time.Now()

	if cfg.registryFile != "" {
		c.svc = locatoruc.New(agentsource.New(cfg.registryFile), unit, nil)
		_, err = c.svc.Reload(context.Background())
	} else {
		c.svc = locatoruc.New(nil, unit, nil)
		err = c.replace(cfg.agents)
	}
	obs.observe("load", start, err)
	if err != nil {
		return nil, fmt.Errorf("locator: %w", err)
	}
	return c, nil
}

// Nearest returns agents within maxDistance of (lat, lng), nearest first.
// A limit of 0 returns every match. An empty result is not an error.
func (c *Client) Nearest(
	ctx context.Context, lat, lng, maxDistance float64, limit int,
) (_ []Match, err error) {
	start := time.Now()
	defer func() { c.obs.observe("nearest", start, err) }()

	results, err := c.svc.Search(ctx, lat, lng, maxDistance, limit)
	if err != nil {
		return nil, fmt.Errorf("nearest: %w", err)
	}

	matches := make([]Match, len(results))
	for i := range results {
		matches[i] = fromInternalResult(&results[i])
	}
	return matches, nil
}

// Agents returns the registry in load order.
func (c *Client) Agents() []Agent {
	agents := c.svc.Agents(context.Background())
	out := make([]Agent, len(agents))
	for i := range agents {
		out[i] = fromInternalAgent(&agents[i])
	}
	return out
}

// Agent returns a single agent by ID or ErrNotFound.
func (c *Client) Agent(ctx context.Context, id string) (Agent, error) {
	a, err := c.svc.Agent(ctx, id)
	if err != nil {
		return Agent{}, err
	}
	return fromInternalAgent(&a), nil
}

// Len returns the number of agents in the registry.
func (c *Client) Len() int { return c.svc.Size() }

// Unit returns the distance unit of the client.
func (c *Client) Unit() Unit { return Unit(c.svc.Unit()) }

// Reload re-reads the registry file. On error the previous registry stays in use.
// Clients built WithAgents should call Replace instead.
func (c *Client) Reload(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("reload", start, err) }()

	if _, err = c.svc.Reload(ctx); err != nil {
		return fmt.Errorf("reload: %w", err)
	}
	return nil
}

// Replace swaps in a new in-process registry. On error the previous registry stays in use.
func (c *Client) Replace(agents []Agent) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("replace", start, err) }()

	if err = c.replace(agents); err != nil {
		return fmt.Errorf("replace: %w", err)
	}
	return nil
}

// Distance returns the great-circle distance between a and b in the client unit.
func (c *Client) Distance(a, b Point) (float64, error) {
	from, err := geo.NewCoordinate(a.Latitude, a.Longitude)
	if err != nil {
		return 0, domain.NewInvalidQuery("from", err.Error())
	}
	to, err := geo.NewCoordinate(b.Latitude, b.Longitude)
	if err != nil {
		return 0, domain.NewInvalidQuery("to", err.Error())
	}
	return geo.Distance(from, to, c.svc.Unit()), nil
}

func (c *Client) replace(agents []Agent) error {
	internal, err := toInternalAgents(agents)
	if err != nil {
		return err
	}
	_, err = c.svc.Replace(internal)
	return err
}

func toInternalAgents(agents []Agent) ([]agent.Agent, error) {
	out := make([]agent.Agent, len(agents))
	for i, a := range agents {
		ia, err := agent.New(a.ID, a.Name, a.Latitude, a.Longitude)
		if err != nil {
			var ve *domain.ValidationError
			if errors.As(err, &ve) {
				return nil, domain.NewValidationError(fmt.Sprintf("agents[%d].%s", i, ve.Field), ve.Reason)
			}
			return nil, fmt.Errorf("agents[%d]: %w", i, err)
		}
		out[i] = ia
	}
	return out, nil
}

func fromInternalAgent(a *agent.Agent) Agent {
	c := a.Coordinate()
	return Agent{
		ID:        a.ID(),
		Name:      a.Name(),
		Latitude:  c.Lat(),
		Longitude: c.Lng(),
	}
}

func fromInternalResult(r *result.Result) Match {
	a := r.Agent()
	return Match{
		Agent:    fromInternalAgent(&a),
		Distance: r.Distance(),
	}
}
