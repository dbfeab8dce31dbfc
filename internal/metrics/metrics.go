// Package metrics exposes Prometheus counters for media resolution and asset
// materialization.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jpp0ca/storybook-media/internal/domain"
)

const namespace = "storybook_media"

// Metrics holds the collectors registered by New.
type Metrics struct {
	registry         *prometheus.Registry
	resolutions      *prometheus.CounterVec
	materializations *prometheus.CounterVec
	uploadBytes      prometheus.Histogram
}

// New registers the collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		resolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resolutions_total",
			Help:      "Media URLs resolved, by detected platform and kind.",
		}, []string{"platform", "kind"}),
		materializations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "materializations_total",
			Help:      "Uploaded files materialized, by mode (inline, stored, degraded, failed).",
		}, []string{"mode"}),
		uploadBytes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upload_size_bytes",
			Help:      "Size of files passed to the materializer.",
			Buckets:   prometheus.ExponentialBuckets(1024, 4, 10),
		}),
	}
	m.registry.MustRegister(
		m.resolutions,
		m.materializations,
		m.uploadBytes,
		collectors.NewGoCollector(),
	)
	return m
}

// ObserveResolution counts one resolved URL.
func (m *Metrics) ObserveResolution(res domain.ResolvedMedia) {
	if m == nil {
		return
	}
	m.resolutions.WithLabelValues(string(res.Platform), string(res.Kind)).Inc()
}

// ObserveMaterialization counts one materialization. An empty mode means the
// call failed without producing an asset.
func (m *Metrics) ObserveMaterialization(mode domain.MaterializeMode, sizeBytes int64) {
	if m == nil {
		return
	}
	label := string(mode)
	if label == "" {
		label = "failed"
	}
	m.materializations.WithLabelValues(label).Inc()
	m.uploadBytes.Observe(float64(sizeBytes))
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
