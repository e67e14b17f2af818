package metrics

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// jsonSnapshot is the literal wire shape the Pricing Aggregator's /metrics
// endpoint renders: `{ rps, errorRate, p50Latency, p95Latency, p99Latency, cpuUsage,
// memoryUsage, loadAverage, timestamp }`.
type jsonSnapshot struct {
	RPS         float64 `json:"rps"`
	ErrorRate   float64 `json:"errorRate"`
	P50Latency  float64 `json:"p50Latency"`
	P95Latency  float64 `json:"p95Latency"`
	P99Latency  float64 `json:"p99Latency"`
	CPUUsage    float64 `json:"cpuUsage"`
	MemoryUsage float64 `json:"memoryUsage"`
	LoadAverage float64 `json:"loadAverage"`
	Timestamp   int64   `json:"timestamp"`
}

// PromGauges mirrors the same snapshot onto the Prometheus exposition
// format at /metrics/prom, supplementing (not replacing) the spec's literal
// JSON /metrics contract.
type PromGauges struct {
	rps         prometheus.Gauge
	errorRate   prometheus.Gauge
	p50         prometheus.Gauge
	p95         prometheus.Gauge
	p99         prometheus.Gauge
	cpuUsage    prometheus.Gauge
	memoryUsage prometheus.Gauge
	loadAverage prometheus.Gauge
	registry    *prometheus.Registry
}

// NewPromGauges registers a fresh set of gauges on a private registry so
// this process's /metrics/prom output never collides with another
// component's default-registry collectors.
func NewPromGauges() *PromGauges {
	g := &PromGauges{
		registry: prometheus.NewRegistry(),
		rps:         prometheus.NewGauge(prometheus.GaugeOpts{Name: "pricing_rps", Help: "requests per second over the recent window"}),
		errorRate:   prometheus.NewGauge(prometheus.GaugeOpts{Name: "pricing_error_rate_pct", Help: "error rate percentage over the recent window"}),
		p50:         prometheus.NewGauge(prometheus.GaugeOpts{Name: "pricing_latency_p50_ms", Help: "p50 vendor task latency in ms"}),
		p95:         prometheus.NewGauge(prometheus.GaugeOpts{Name: "pricing_latency_p95_ms", Help: "p95 vendor task latency in ms"}),
		p99:         prometheus.NewGauge(prometheus.GaugeOpts{Name: "pricing_latency_p99_ms", Help: "p99 vendor task latency in ms"}),
		cpuUsage:    prometheus.NewGauge(prometheus.GaugeOpts{Name: "pricing_cpu_usage_fraction", Help: "approximate process CPU usage fraction"}),
		memoryUsage: prometheus.NewGauge(prometheus.GaugeOpts{Name: "pricing_memory_usage_fraction", Help: "heap-in-use fraction of reported system memory"}),
		loadAverage: prometheus.NewGauge(prometheus.GaugeOpts{Name: "pricing_load_average_1m", Help: "host 1-minute load average"}),
	}
	g.registry.MustRegister(g.rps, g.errorRate, g.p50, g.p95, g.p99, g.cpuUsage, g.memoryUsage, g.loadAverage)
	return g
}

func (g *PromGauges) update(s Snapshot) {
	g.rps.Set(s.RPS)
	g.errorRate.Set(s.ErrorRatePct)
	g.p50.Set(float64(s.P50.Milliseconds()))
	g.p95.Set(float64(s.P95.Milliseconds()))
	g.p99.Set(float64(s.P99.Milliseconds()))
	g.cpuUsage.Set(s.CPUUsageFrac)
	g.memoryUsage.Set(s.MemoryUsageFrac)
	g.loadAverage.Set(s.LoadAverage)
}

// Handler builds the Pricing Aggregator's metrics HTTP surface: the spec's
// literal JSON /metrics, a supplemental Prometheus /metrics/prom, and
// /health.
func Handler(recent *RecentWindow, latency *LatencyWindow, gauges *PromGauges) http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}).Methods(http.MethodGet)

	router.HandleFunc("/metrics", func(w http.ResponseWriter, r *http.Request) {
		snap := recent.Query(latency)
		gauges.update(snap)

		payload := jsonSnapshot{
			RPS:         snap.RPS,
			ErrorRate:   snap.ErrorRatePct,
			P50Latency:  float64(snap.P50.Milliseconds()),
			P95Latency:  float64(snap.P95.Milliseconds()),
			P99Latency:  float64(snap.P99.Milliseconds()),
			CPUUsage:    snap.CPUUsageFrac,
			MemoryUsage: snap.MemoryUsageFrac,
			LoadAverage: snap.LoadAverage,
			Timestamp:   snap.Timestamp.UnixMilli(),
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(payload)
	}).Methods(http.MethodGet)

	router.Handle("/metrics/prom", promhttp.HandlerFor(gauges.registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	return router
}

// Elapsed is a tiny helper so callers don't import time just to measure a
// task's duration before recording a sample.
func Elapsed(start time.Time) time.Duration {
	return time.Since(start)
}
