package locator

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	agents       []Agent
	agentsSet    bool
	registryFile string
	unit         Unit

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithAgents supplies the registry in-process. Order is kept for tie-breaks.
func WithAgents(agents []Agent) Option {
	return optionFunc(func(c *clientConfig) {
		c.agents = append([]Agent(nil), agents...)
		c.agentsSet = true
	})
}

// WithRegistryFile loads the registry from a YAML or JSON file.
// Client.Reload re-reads it.
func WithRegistryFile(path string) Option {
	return optionFunc(func(c *clientConfig) {
		c.registryFile = path
	})
}

// WithUnit sets the distance unit for radii and reported distances.
// Defaults to Miles.
func WithUnit(u Unit) Option {
	return optionFunc(func(c *clientConfig) {
		c.unit = u
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithMetrics registers SDK metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithMetrics(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
