package locator

import (
	"context"
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/proverbs-one/npslocator/internal/domain"
	"github.com/proverbs-one/npslocator/internal/domain/agent"
	"github.com/proverbs-one/npslocator/internal/domain/geo"
	"github.com/proverbs-one/npslocator/internal/domain/registry"
	"github.com/proverbs-one/npslocator/internal/domain/search/request"
	"github.com/proverbs-one/npslocator/internal/domain/search/result"
	logpkg "github.com/proverbs-one/npslocator/internal/logger"
)

// Service answers proximity queries against the current registry snapshot.
// Queries take no locks: the snapshot pointer is swapped atomically on reload.
type Service struct {
	source   Source
	unit     geo.Unit
	snapshot atomic.Pointer[registry.Registry]
	recorder Recorder
	logger   *zap.Logger
}

// New creates a locator service with an empty registry. Call Reload to populate it.
func New(source Source, unit geo.Unit, logger *zap.Logger) *Service {
	if !unit.IsValid() {
		unit = geo.Miles
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{source: source, unit: unit, logger: logger}
	s.snapshot.Store(registry.Empty())
	return s
}

// WithRecorder attaches a metrics recorder.
func (s *Service) WithRecorder(r Recorder) *Service {
	s.recorder = r
	return s
}

// Unit returns the distance unit of every reported distance.
func (s *Service) Unit() geo.Unit { return s.unit }

// Registry returns the current snapshot.
func (s *Service) Registry() *registry.Registry { return s.snapshot.Load() }

// Size returns the number of agents in the current snapshot.
func (s *Service) Size() int { return s.snapshot.Load().Len() }

// Reload rebuilds the registry from the source and swaps it in.
// On failure the previous snapshot stays in place.
func (s *Service) Reload(ctx context.Context) (int, error) {
	if s.source == nil {
		return 0, fmt.Errorf("reload: no registry source configured")
	}
	agents, err := s.source.Load(ctx)
	if err != nil {
		s.observeReload(0, err)
		return 0, fmt.Errorf("load registry source: %w", err)
	}
	return s.Replace(agents)
}

// Replace builds a registry from agents and swaps it in.
func (s *Service) Replace(agents []agent.Agent) (int, error) {
	reg, err := registry.Load(agents)
	if err != nil {
		s.observeReload(0, err)
		return 0, fmt.Errorf("build registry: %w", err)
	}
	prev := s.snapshot.Swap(reg)
	s.observeReload(reg.Len(), nil)
	s.logger.Info("Registry loaded",
		zap.Int("agents", reg.Len()),
		zap.Int("previous_agents", prev.Len()),
	)
	return reg.Len(), nil
}

// Search validates raw query parameters and runs the proximity search.
func (s *Service) Search(
	ctx context.Context, lat, lng, maxDistance float64, limit int,
) ([]result.Result, error) {
	req, err := request.New(lat, lng, maxDistance, limit)
	if err != nil {
		s.observeSearch(ctx, 0, err)
		return nil, err
	}
	return s.LocateNearest(ctx, &req)
}

// LocateNearest runs a validated request against the current snapshot.
func (s *Service) LocateNearest(ctx context.Context, req *request.Request) ([]result.Result, error) {
	results, err := LocateNearest(s.snapshot.Load(), req, s.unit)
	s.observeSearch(ctx, len(results), err)
	if err != nil {
		return nil, fmt.Errorf("locate nearest: %w", err)
	}
	return results, nil
}

// Agents returns the current snapshot in load order.
func (s *Service) Agents(_ context.Context) []agent.Agent {
	return s.snapshot.Load().All()
}

// Agent looks up a single agent by ID.
func (s *Service) Agent(_ context.Context, id string) (agent.Agent, error) {
	a, ok := s.snapshot.Load().Get(id)
	if !ok {
		return agent.Agent{}, fmt.Errorf("agent %q: %w", id, domain.ErrNotFound)
	}
	return a, nil
}

func (s *Service) observeSearch(ctx context.Context, matches int, err error) {
	if s.recorder != nil {
		s.recorder.ObserveSearch(matches, err)
	}
	l := logpkg.FromContext(ctx)
	if err != nil {
		l.Debug("proximity search rejected", zap.Error(err))
		return
	}
	l.Debug("proximity search", zap.Int("matches", matches), zap.String("unit", string(s.unit)))
}

func (s *Service) observeReload(agents int, err error) {
	if s.recorder != nil {
		s.recorder.ObserveReload(agents, err)
	}
	if err != nil {
		s.logger.Warn("Registry reload failed, keeping previous snapshot", zap.Error(err))
	}
}
