// Package metrics holds the prometheus collectors exported at /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups the collectors. Each server or test gets its own registry.
type Metrics struct {
	registry *prometheus.Registry

	RPCRequests   *prometheus.CounterVec
	RPCDuration   *prometheus.HistogramVec
	StoreOps      *prometheus.CounterVec
	Recoveries    *prometheus.CounterVec
	ChangeSignals prometheus.Counter
}

// New registers all collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		RPCRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pasajeros",
			Name:      "rpc_requests_total",
			Help:      "RPC calls by procedure and result code.",
		}, []string{"procedure", "code"}),
		RPCDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "pasajeros",
			Name:      "rpc_duration_seconds",
			Help:      "RPC latency by procedure.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure"}),
		StoreOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pasajeros",
			Name:      "store_operations_total",
			Help:      "Record store operations by name and outcome.",
		}, []string{"op", "outcome"}),
		Recoveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pasajeros",
			Name:      "store_recoveries_total",
			Help:      "Reads that fell back to defaults because stored data was missing or malformed.",
		}, []string{"key"}),
		ChangeSignals: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pasajeros",
			Name:      "change_signals_total",
			Help:      "Storage change signals raised.",
		}),
	}
	reg.MustRegister(
		m.RPCRequests,
		m.RPCDuration,
		m.StoreOps,
		m.Recoveries,
		m.ChangeSignals,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry exposes the underlying registry, mostly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
