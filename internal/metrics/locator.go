package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Locator Prometheus metrics.
var (
	SearchTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "npslocator",
			Name:      "search_total",
			Help:      "Total number of proximity searches",
		},
		[]string{"status"}, // "ok" / "invalid" / "error"
	)

	SearchMatches = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "npslocator",
			Name:      "search_matches",
			Help:      "Number of agents returned per successful search",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100, 250},
		},
	)

	RegistryAgents = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "npslocator",
			Name:      "registry_agents",
			Help:      "Number of agents in the current registry snapshot",
		},
	)

	RegistryReloadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "npslocator",
			Name:      "registry_reloads_total",
			Help:      "Registry reload attempts",
		},
		[]string{"status"}, // "ok" / "error"
	)
)

var locatorMetricsRegistered bool

// RegisterLocatorMetrics registers Prometheus locator metrics. Must be called once from main.
func RegisterLocatorMetrics() {
	if locatorMetricsRegistered {
		return
	}
	prometheus.MustRegister(SearchTotal)
	prometheus.MustRegister(SearchMatches)
	prometheus.MustRegister(RegistryAgents)
	prometheus.MustRegister(RegistryReloadsTotal)
	locatorMetricsRegistered = true
}

// LocatorRecorder feeds locator observations into the package metrics.
type LocatorRecorder struct {
	// IsInvalid classifies caller errors; nil counts every error as "error".
	IsInvalid func(error) bool
}

// ObserveSearch records a search outcome.
func (r LocatorRecorder) ObserveSearch(matches int, err error) {
	switch {
	case err == nil:
		SearchTotal.WithLabelValues("ok").Inc()
		SearchMatches.Observe(float64(matches))
	case r.IsInvalid != nil && r.IsInvalid(err):
		SearchTotal.WithLabelValues("invalid").Inc()
	default:
		SearchTotal.WithLabelValues("error").Inc()
	}
}

// ObserveReload records a registry reload outcome.
func (r LocatorRecorder) ObserveReload(agents int, err error) {
	if err != nil {
		RegistryReloadsTotal.WithLabelValues("error").Inc()
		return
	}
	RegistryReloadsTotal.WithLabelValues("ok").Inc()
	RegistryAgents.Set(float64(agents))
}
