package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// Recorder holds the bank's collectors on a dedicated registry.
type Recorder struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	saves      *prometheus.HistogramVec
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "simple_bank",
				Name:      "operations_total",
				Help:      "Account operations by outcome.",
			},
			[]string{"operation", "outcome"},
		),
		saves: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "simple_bank",
				Name:      "store_save_seconds",
				Help:      "Time spent rewriting the data file.",
				Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12), // 0.5ms to ~1s
			},
			[]string{"success"},
		),
	}
	r.registry.MustRegister(r.operations, r.saves)
	return r
}

// RecordOperation counts one finished operation. Safe on a nil Recorder.
func (r *Recorder) RecordOperation(operation, outcome string) {
	if r == nil {
		return
	}
	r.operations.WithLabelValues(operation, outcome).Inc()
}

// ObserveSave implements storage.SaveObserver.
func (r *Recorder) ObserveSave(elapsed time.Duration, err error) {
	if r == nil {
		return
	}
	success := "true"
	if err != nil {
		success = "false"
	}
	r.saves.WithLabelValues(success).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}
