package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "raffle"

// Metrics groups every collector the draw pipeline reports to.
type Metrics struct {
	DrawsTotal        *prometheus.CounterVec
	RandomnessCalls   *prometheus.CounterVec
	KeyRequestsUsed   *prometheus.GaugeVec
	KeyQuota          *prometheus.GaugeVec
	QueueDepth        prometheus.Gauge
	ContentFetchTotal *prometheus.CounterVec
}

func New() *Metrics {
	return &Metrics{
		DrawsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "draws_total",
			Help:      "Draw attempts by outcome.",
		}, []string{"outcome"}),
		RandomnessCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "randomness_requests_total",
			Help:      "Signed-randomness requests by key and result.",
		}, []string{"key", "result"}),
		KeyRequestsUsed: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "api_key_requests_used",
			Help:      "Requests used today per API key.",
		}, []string{"key"}),
		KeyQuota: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "api_key_daily_quota",
			Help:      "Daily request quota per API key.",
		}, []string{"key"}),
		QueueDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "queue_depth",
			Help:      "Draw requests waiting in the queue.",
		}),
		ContentFetchTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "content_fetch_total",
			Help:      "Content source fetches by kind and result.",
		}, []string{"kind", "result"}),
	}
}

func (m *Metrics) Register(registry prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{
		m.DrawsTotal,
		m.RandomnessCalls,
		m.KeyRequestsUsed,
		m.KeyQuota,
		m.QueueDepth,
		m.ContentFetchTotal,
	} {
		if err := registry.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// NewNop returns unregistered collectors; tests and CLI commands use it.
func NewNop() *Metrics {
	return New()
}
