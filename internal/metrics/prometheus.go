package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "coincount"

// Recorder owns a Prometheus registry with the counting metrics.
// Each Recorder has its own registry, so tests never share state.
type Recorder struct {
	registry *prometheus.Registry

	runs      *prometheus.CounterVec
	durations *prometheus.HistogramVec
	lastCount *prometheus.GaugeVec
	cells     prometheus.Gauge
	mismatch  prometheus.Counter
}

// NewRecorder creates a Recorder with the Go runtime collector registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Counter executions by counter name and outcome.",
		}, []string{"counter", "status"}),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time of counter executions.",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 12),
		}, []string{"counter"}),
		lastCount: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_count",
			Help:      "Most recent count (mod 1e9+7) returned by each counter.",
		}, []string{"counter"}),
		cells: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "table_cells",
			Help:      "DP cells evaluated per counter for the last problem (n*(x+1)).",
		}),
		mismatch: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "result_mismatches_total",
			Help:      "Comparison runs whose counters disagreed.",
		}),
	}
	r.registry.MustRegister(r.runs, r.durations, r.lastCount, r.cells, r.mismatch,
		collectors.NewGoCollector())
	return r
}

// Registry exposes the underlying registry (e.g. for an HTTP handler).
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// ObserveProblem records the size of the problem being counted.
func (r *Recorder) ObserveProblem(n, x int) {
	r.cells.Set(float64(n) * float64(x+1))
}

// ObserveRun records one counter execution.
func (r *Recorder) ObserveRun(counter string, count int64, d time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "failure"
	}
	r.runs.WithLabelValues(counter, status).Inc()
	r.durations.WithLabelValues(counter).Observe(d.Seconds())
	if err == nil {
		r.lastCount.WithLabelValues(counter).Set(float64(count))
	}
}

// ObserveMismatch records a comparison whose counters disagreed.
func (r *Recorder) ObserveMismatch() { r.mismatch.Inc() }

// WriteTextfile writes every metric to path in the Prometheus text format,
// suitable for the node_exporter textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("writing metrics to %s: %w", path, err)
	}
	return nil
}
