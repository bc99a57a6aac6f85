// ============================================================================
// Functions Host Metrics - Prometheus Monitoring
// ============================================================================
//
// Package: internal/metrics
// File: metrics.go
// Purpose: Collect and expose worker channel metrics for Prometheus
//
// Metric Categories:
//
//   1. Protocol phase events - one begin/end pair per phase, labeled with the
//      phase name. The load and specialization phases use the well-known
//      event names consumed by the platform pipeline:
//      - FunctionLoadRequestResponse
//      - SpecializationEnvironmentReloadRequestResponse
//
//   2. Invocation counters:
//      - host_invocations_started_total
//      - host_invocations_completed_total (label: status)
//
//   3. Performance metrics (Histogram):
//      - host_invocation_latency_seconds
//      - host_phase_duration_seconds (label: phase)
//      - host_worker_probe_latency_seconds
//
//   4. Status metrics (Gauge):
//      - host_workers: live worker channels
//      - host_invocations_in_flight
//
// Prometheus Query Examples:
//
//   # Invocations per minute
//   rate(host_invocations_completed_total[1m])
//
//   # 95th percentile invocation latency
//   histogram_quantile(0.95, host_invocation_latency_seconds_bucket)
//
// ============================================================================

package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Well-known phase event names
const (
	EventFunctionLoadRequestResponse                    = "FunctionLoadRequestResponse"
	EventSpecializationEnvironmentReloadRequestResponse = "SpecializationEnvironmentReloadRequestResponse"
	EventWorkerInitRequestResponse                      = "WorkerInitRequestResponse"
	EventWorkerStartupRequestResponse                   = "WorkerStartupRequestResponse"
)

// Collector collects Prometheus metrics for the host
type Collector struct {
	phaseBegun   *prometheus.CounterVec
	phaseEnded   *prometheus.CounterVec
	phaseLatency *prometheus.HistogramVec

	invocationsStarted   prometheus.Counter
	invocationsCompleted *prometheus.CounterVec
	invocationLatency    prometheus.Histogram

	probeLatency prometheus.Histogram

	workers             prometheus.Gauge
	invocationsInFlight prometheus.Gauge
}

// NewCollector creates a metrics collector registered against reg.
// A nil reg uses the default Prometheus registerer.
func NewCollector(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	c := &Collector{
		phaseBegun: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "host_phase_begun_total",
			Help: "Total number of protocol phases begun",
		}, []string{"phase"}),
		phaseEnded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "host_phase_ended_total",
			Help: "Total number of protocol phases ended",
		}, []string{"phase"}),
		phaseLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "host_phase_duration_seconds",
			Help:    "Protocol phase duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"phase"}),
		invocationsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "host_invocations_started_total",
			Help: "Total number of invocations sent to workers",
		}),
		invocationsCompleted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "host_invocations_completed_total",
			Help: "Total number of invocations completed, by status",
		}, []string{"status"}),
		invocationLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "host_invocation_latency_seconds",
			Help:    "Invocation round-trip latency in seconds",
			Buckets: prometheus.DefBuckets,
		}),
		probeLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "host_worker_probe_latency_seconds",
			Help:    "Worker status probe round-trip latency in seconds",
			Buckets: []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}),
		workers: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "host_workers",
			Help: "Current number of live worker channels",
		}),
		invocationsInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "host_invocations_in_flight",
			Help: "Current number of in-flight invocations",
		}),
	}

	reg.MustRegister(
		c.phaseBegun,
		c.phaseEnded,
		c.phaseLatency,
		c.invocationsStarted,
		c.invocationsCompleted,
		c.invocationLatency,
		c.probeLatency,
		c.workers,
		c.invocationsInFlight,
	)

	return c
}

// PhaseBegin records the start of a protocol phase
func (c *Collector) PhaseBegin(phase string) {
	c.phaseBegun.WithLabelValues(phase).Inc()
}

// PhaseEnd records the end of a protocol phase with its duration
func (c *Collector) PhaseEnd(phase string, seconds float64) {
	c.phaseEnded.WithLabelValues(phase).Inc()
	c.phaseLatency.WithLabelValues(phase).Observe(seconds)
}

// RecordInvocationStarted records an invocation crossing the wire
func (c *Collector) RecordInvocationStarted() {
	c.invocationsStarted.Inc()
	c.invocationsInFlight.Inc()
}

// RecordInvocationCompleted records a terminal invocation result
func (c *Collector) RecordInvocationCompleted(status string, latencySeconds float64) {
	c.invocationsCompleted.WithLabelValues(status).Inc()
	c.invocationLatency.Observe(latencySeconds)
	c.invocationsInFlight.Dec()
}

// RecordProbeLatency records one worker status round trip
func (c *Collector) RecordProbeLatency(seconds float64) {
	c.probeLatency.Observe(seconds)
}

// WorkerUp records a channel reaching a usable state
func (c *Collector) WorkerUp() {
	c.workers.Inc()
}

// WorkerDown records a channel terminating
func (c *Collector) WorkerDown() {
	c.workers.Dec()
}

// StartServer starts the Prometheus metrics HTTP server
//
// Parameters:
//   - port: HTTP server port
//
// Returns:
//   - error: Error on startup failure
func StartServer(port int) error {
	http.Handle("/metrics", promhttp.Handler())
	addr := fmt.Sprintf(":%d", port)
	return http.ListenAndServe(addr, nil)
}
