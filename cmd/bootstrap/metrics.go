package bootstrap

import (
	"raffle-draw/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		NewRegistry,
		NewGatherer,
		NewMetrics,
	),
)

func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return registry
}

func NewGatherer(registry *prometheus.Registry) prometheus.Gatherer {
	return registry
}

func NewMetrics(registry *prometheus.Registry) (*metrics.Metrics, error) {
	m := metrics.New()
	if err := m.Register(registry); err != nil {
		return nil, err
	}
	return m, nil
}
