package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Xausdorf/girocode/internal/domain/girocode"
)

// Metrics counts generated and rejected codes on its own registry.
type Metrics struct {
	registry    *prometheus.Registry
	generated   *prometheus.CounterVec
	failed      *prometheus.CounterVec
	payloadSize prometheus.Histogram
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		generated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "girocode_generated_total",
			Help: "Payment codes rendered, by character set.",
		}, []string{"charset"}),
		failed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "girocode_failed_total",
			Help: "Payment code requests rejected, by reason.",
		}, []string{"reason"}),
		payloadSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "girocode_payload_bytes",
			Help:    "Encoded payload size of rendered codes.",
			Buckets: prometheus.LinearBuckets(50, 50, 7),
		}),
	}
	m.registry.MustRegister(m.generated, m.failed, m.payloadSize)
	return m
}

func (m *Metrics) CodeGenerated(cs girocode.CharacterSet, payloadSize int) {
	m.generated.WithLabelValues(cs.String()).Inc()
	m.payloadSize.Observe(float64(payloadSize))
}

func (m *Metrics) CodeFailed(reason string) {
	m.failed.WithLabelValues(reason).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
