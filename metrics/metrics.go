// Package metrics exposes Prometheus collectors for hashing pool activity.
package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hasbyte1/go-bcrypt/hashing"
)

// PoolMetricsOptions configures [NewPoolMetrics].
type PoolMetricsOptions struct {
	Registerer prometheus.Registerer
	Namespace  string
	Subsystem  string
	Buckets    []float64
}

// PoolMetrics records bcrypt operations run on a [hashing.Pool]. It
// implements [hashing.Observer]:
//
//	m, _ := metrics.NewPoolMetrics(metrics.PoolMetricsOptions{})
//	pool := hashing.NewPool(0).WithObserver(m)
type PoolMetrics struct {
	Operations *prometheus.CounterVec
	Duration   *prometheus.HistogramVec
	InFlight   prometheus.Gauge
}

var _ hashing.Observer = (*PoolMetrics)(nil)

// defaultBuckets spans cost 4 (~1 ms) through cost 16 (~4 s).
var defaultBuckets = prometheus.ExponentialBuckets(0.001, 2, 13)

// NewPoolMetrics constructs the collectors and registers them with the
// provided registerer. Collectors that are already registered are reused.
func NewPoolMetrics(opts PoolMetricsOptions) (*PoolMetrics, error) {
	namespace := opts.Namespace
	if namespace == "" {
		namespace = "bcrypt"
	}

	subsystem := opts.Subsystem
	if subsystem == "" {
		subsystem = "pool"
	}

	reg := opts.Registerer
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	buckets := opts.Buckets
	if len(buckets) == 0 {
		buckets = defaultBuckets
	}

	operations, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "operations_total",
		Help:      "Total number of bcrypt operations partitioned by operation and result.",
	}, []string{"op", "result"}))
	if err != nil {
		return nil, fmt.Errorf("register operations collector: %w", err)
	}

	duration, err := register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "operation_duration_seconds",
		Help:      "Histogram of bcrypt operation latencies in seconds partitioned by operation.",
		Buckets:   buckets,
	}, []string{"op"}))
	if err != nil {
		return nil, fmt.Errorf("register duration collector: %w", err)
	}

	inFlight, err := register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "in_flight",
		Help:      "Number of bcrypt operations currently running.",
	}))
	if err != nil {
		return nil, fmt.Errorf("register in-flight collector: %w", err)
	}

	return &PoolMetrics{
		Operations: operations,
		Duration:   duration,
		InFlight:   inFlight,
	}, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	err := reg.Register(c)
	if err == nil {
		return c, nil
	}
	var already prometheus.AlreadyRegisteredError
	if !errors.As(err, &already) {
		return c, err
	}
	existing, ok := already.ExistingCollector.(C)
	if !ok {
		return c, fmt.Errorf("existing collector has unexpected type %T", already.ExistingCollector)
	}
	return existing, nil
}

// Started implements [hashing.Observer].
func (m *PoolMetrics) Started(string) {
	if m == nil {
		return
	}
	m.InFlight.Inc()
}

// Finished implements [hashing.Observer].
func (m *PoolMetrics) Finished(op string, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	m.InFlight.Dec()
	m.Operations.WithLabelValues(op, resultLabel(err)).Inc()
	m.Duration.WithLabelValues(op).Observe(elapsed.Seconds())
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, hashing.ErrMalformedDigest):
		return "malformed_digest"
	case errors.Is(err, hashing.ErrEmptyCredential),
		errors.Is(err, hashing.ErrCredentialTooLong),
		errors.Is(err, hashing.ErrUnsupportedPrefixOrCost):
		return "rejected"
	default:
		return "error"
	}
}
