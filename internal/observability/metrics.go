// SPDX-License-Identifier: MIT

package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/katalvlaran/graphpoet/poet"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Reload outcomes recorded on corpus_reloads_total.
const (
	ReloadOK     = "ok"
	ReloadFailed = "failed"
)

// Collector holds every graphpoet metric on a private registry, so several
// collectors (one per test, say) never collide.
type Collector struct {
	registry *prometheus.Registry

	Poems         prometheus.Counter
	Bridges       prometheus.Counter
	Reloads       *prometheus.CounterVec
	GraphVertices prometheus.Gauge
	GraphEdges    prometheus.Gauge
	HTTPRequests  *prometheus.CounterVec
	HTTPDuration  *prometheus.HistogramVec
}

// NewCollector creates and registers all metrics under namespace.
func NewCollector(namespace string) *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		Poems: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "poems_total",
			Help:      "Total number of poems composed",
		}),
		Bridges: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bridges_inserted_total",
			Help:      "Total number of bridge words inserted into poems",
		}),
		Reloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "corpus_reloads_total",
			Help:      "Corpus (re)loads by outcome",
		}, []string{"status"}),
		GraphVertices: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "graph_vertices",
			Help:      "Vertices in the live affinity graph",
		}),
		GraphEdges: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "graph_edges",
			Help:      "Edges in the live affinity graph",
		}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	c.registry.MustRegister(
		c.Poems,
		c.Bridges,
		c.Reloads,
		c.GraphVertices,
		c.GraphEdges,
		c.HTTPRequests,
		c.HTTPDuration,
	)

	return c
}

// Registry exposes the underlying registry (tests gather from it).
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// ObservePoem records one composed poem and its insertions.
func (c *Collector) ObservePoem(insertions int) {
	c.Poems.Inc()
	c.Bridges.Add(float64(insertions))
}

// ObserveReload records a reload outcome and, on success, the new graph size.
func (c *Collector) ObserveReload(stats poet.Stats, err error) {
	if err != nil {
		c.Reloads.WithLabelValues(ReloadFailed).Inc()
		return
	}
	c.Reloads.WithLabelValues(ReloadOK).Inc()
	c.GraphVertices.Set(float64(stats.Words))
	c.GraphEdges.Set(float64(stats.Pairs))
}

// ObserveHTTP records one finished request.
func (c *Collector) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	c.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.HTTPDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
