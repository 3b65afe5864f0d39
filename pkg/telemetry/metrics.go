package telemetry

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the simulator's Prometheus instrumentation. All fields
// are safe to use on a nil *Metrics receiver's methods: every method
// below nil-checks m first, so callers that don't want metrics can pass
// a nil *Metrics through Options unconditionally.
type Metrics struct {
	PathsSimulated prometheus.Counter
	BatchesRun     prometheus.Counter
	SimulDuration  prometheus.Histogram
	ArenaBlocks    prometheus.Gauge
}

// NewMetrics registers the simulator's metrics under namespace and
// returns them wired to registry. Pass prometheus.DefaultRegisterer for
// the global registry.
func NewMetrics(namespace string, registry prometheus.Registerer) *Metrics {
	m := &Metrics{
		PathsSimulated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "paths_simulated_total",
			Help:      "Total number of Monte Carlo paths simulated.",
		}),
		BatchesRun: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "batches_run_total",
			Help:      "Total number of path batches dispatched to the worker pool.",
		}),
		SimulDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "simulation_duration_seconds",
			Help:      "Wall-clock duration of one top-level simulation call.",
			Buckets:   prometheus.DefBuckets,
		}),
		ArenaBlocks: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "tape_arena_blocks",
			Help:      "Number of fixed-size arena blocks currently held by an AAD tape.",
		}),
	}
	registry.MustRegister(m.PathsSimulated, m.BatchesRun, m.SimulDuration, m.ArenaBlocks)
	return m
}

// AddPaths increments the paths-simulated counter. No-op on a nil m.
func (m *Metrics) AddPaths(n int) {
	if m == nil {
		return
	}
	m.PathsSimulated.Add(float64(n))
}

// AddBatch increments the batches-run counter. No-op on a nil m.
func (m *Metrics) AddBatch() {
	if m == nil {
		return
	}
	m.BatchesRun.Inc()
}

// ObserveDuration records one simulation call's wall-clock duration.
// No-op on a nil m.
func (m *Metrics) ObserveDuration(seconds float64) {
	if m == nil {
		return
	}
	m.SimulDuration.Observe(seconds)
}

// SetArenaBlocks reports a tape's current arena block count. No-op on a
// nil m.
func (m *Metrics) SetArenaBlocks(n int) {
	if m == nil {
		return
	}
	m.ArenaBlocks.Set(float64(n))
}
