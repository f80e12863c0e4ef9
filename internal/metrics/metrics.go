// Package metrics holds the Prometheus collectors of the sentinel agent.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Lookup results recorded by CacheLookupsTotal.
const (
	ResultHit  = "hit"
	ResultMiss = "miss"
)

// Metrics holds Prometheus metrics for the agent.
type Metrics struct {
	// Cache
	CacheLookupsTotal *prometheus.CounterVec
	CacheWritesTotal  *prometheus.CounterVec

	// Strategy outcomes by strategy and response source
	ResponsesTotal *prometheus.CounterVec

	// Queue and replay
	QueueLength        prometheus.Gauge
	ReplayResultsTotal *prometheus.CounterVec
	SyncRunsTotal      *prometheus.CounterVec

	// Backups
	BackupsTotal prometheus.Counter

	// Connectivity
	Online prometheus.Gauge

	gatherer prometheus.Gatherer
}

// NewMetrics creates the agent's metrics and registers them with reg.
// Each agent owns its registry, so tests can build as many instances as they
// need without duplicate registration panics.
//
// All metrics are prefixed with "sentinel_".
//
// Metrics:
//   - sentinel_cache_lookups_total{partition,result} - cache hits and misses
//   - sentinel_cache_writes_total{partition} - responses stored
//   - sentinel_responses_total{strategy,source} - answered requests
//   - sentinel_queue_length - queued requests awaiting replay
//   - sentinel_replay_results_total{result} - replayed queue items
//   - sentinel_sync_runs_total{mode,outcome} - queue drains
//   - sentinel_backups_total - completed state backups
//   - sentinel_online - 1 while the origin is reachable
func NewMetrics(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		CacheLookupsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sentinel_cache_lookups_total",
				Help: "Total number of cache lookups",
			},
			[]string{"partition", "result"},
		),

		CacheWritesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sentinel_cache_writes_total",
				Help: "Total number of responses stored in the cache",
			},
			[]string{"partition"},
		),

		ResponsesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sentinel_responses_total",
				Help: "Total number of intercepted requests answered",
			},
			[]string{"strategy", "source"},
		),

		QueueLength: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "sentinel_queue_length",
				Help: "Current number of queued requests awaiting replay",
			},
		),

		ReplayResultsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sentinel_replay_results_total",
				Help: "Total number of replayed queue items",
			},
			[]string{"result"}, // "success" or "failure"
		),

		SyncRunsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sentinel_sync_runs_total",
				Help: "Total number of queue drains",
			},
			[]string{"mode", "outcome"}, // mode: "background", "manual"
		),

		BackupsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "sentinel_backups_total",
				Help: "Total number of completed state backups",
			},
		),

		Online: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "sentinel_online",
				Help: "1 while the origin is considered reachable",
			},
		),

		gatherer: reg,
	}
}

// NewProcessMetrics is NewMetrics on a fresh registry that also carries the
// Go runtime and process collectors.
func NewProcessMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return NewMetrics(reg)
}

// Nop returns metrics registered on a private throwaway registry.
func Nop() *Metrics {
	return NewMetrics(prometheus.NewRegistry())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// RecordLookup records a cache hit or miss.
func (m *Metrics) RecordLookup(partition string, hit bool) {
	result := ResultMiss
	if hit {
		result = ResultHit
	}
	m.CacheLookupsTotal.WithLabelValues(partition, result).Inc()
}

// RecordReplay records the outcome of one replayed queue item.
func (m *Metrics) RecordReplay(success bool) {
	if success {
		m.ReplayResultsTotal.WithLabelValues("success").Inc()
		return
	}
	m.ReplayResultsTotal.WithLabelValues("failure").Inc()
}

// SetOnline records the connectivity state.
func (m *Metrics) SetOnline(online bool) {
	if online {
		m.Online.Set(1)
		return
	}
	m.Online.Set(0)
}
