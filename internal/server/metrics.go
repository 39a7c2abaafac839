// Package server exposes scan metrics over HTTP for Prometheus scraping.
// The endpoint is optional: it is only started when -metrics-addr is set,
// so the default program opens no network surface at all.
package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fermatscan/fermatscan/internal/fermat"
	"github.com/fermatscan/fermatscan/internal/scan"
)

// Metrics holds the Prometheus instruments describing scan progress and
// outcomes. It implements scan.Observer so the scanner can feed it without
// depending on this package.
type Metrics struct {
	registry *prometheus.Registry
	handler  http.Handler

	candidatesScanned  prometheus.Counter
	probablePrimes     prometheus.Counter
	composites         prometheus.Counter
	liarsFound         prometheus.Counter
	trialsPerCandidate prometheus.Histogram
}

var _ scan.Observer = (*Metrics)(nil)

// NewMetrics creates a Metrics instance with its own registry. A dedicated
// registry keeps tests independent of global state and limits the exposition
// to scanner and Go runtime metrics.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		candidatesScanned: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fermatscan_candidates_scanned_total",
			Help: "Total number of candidates classified.",
		}),
		probablePrimes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fermatscan_probable_primes_total",
			Help: "Total number of candidates classified as probable primes.",
		}),
		composites: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fermatscan_composites_total",
			Help: "Total number of candidates proven composite by a witness.",
		}),
		liarsFound: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fermatscan_fermat_liars_total",
			Help: "Total number of Fermat liars identified alongside witnesses.",
		}),
		trialsPerCandidate: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "fermatscan_trials_per_candidate",
			Help:    "Number of bases drawn before a candidate was classified.",
			Buckets: prometheus.LinearBuckets(1, 2, 12),
		}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		m.candidatesScanned,
		m.probablePrimes,
		m.composites,
		m.liarsFound,
		m.trialsPerCandidate,
	)
	m.handler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	return m
}

// ObserveVerdict records a classified candidate.
func (m *Metrics) ObserveVerdict(v fermat.Verdict) {
	m.candidatesScanned.Inc()
	if v.Composite() {
		m.composites.Inc()
		if v.HasLiar() {
			m.liarsFound.Inc()
		}
	} else {
		m.probablePrimes.Inc()
	}
	m.trialsPerCandidate.Observe(float64(v.Trials))
}

// WritePrometheus serves the metrics exposition for the registry.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}
