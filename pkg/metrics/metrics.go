package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Config configures the collectors.
type Config struct {
	// Namespace is the metrics namespace (default: "ripple").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for tick and pass durations.
	Buckets []float64

	// Registry receives the collectors. A fresh registry is created when nil.
	Registry *prometheus.Registry
}

// Option configures the collectors.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) Option {
	return func(c *Config) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) Option {
	return func(c *Config) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry *prometheus.Registry) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

func defaultConfig() Config {
	return Config{
		Namespace: "ripple",
		// Ticks are bounded by the scheduler budget, so the interesting
		// range sits well below the default buckets.
		Buckets: []float64{.0001, .0005, .001, .0025, .005, .01, .02, .04, .08, .16},
	}
}

// Metrics holds the runtime collectors.
type Metrics struct {
	registry *prometheus.Registry

	tasksRun     prometheus.Counter
	taskPanics   prometheus.Counter
	ticks        prometheus.Counter
	yields       prometheus.Counter
	tickDuration prometheus.Histogram
	passes       *prometheus.CounterVec
	passDuration prometheus.Histogram
	domInserts   prometheus.Counter
	domRemoves   prometheus.Counter
	animFrames   prometheus.Counter
	warnings     *prometheus.CounterVec
	activeRuns   prometheus.Gauge
	coalesced    prometheus.Counter
	fragFailed   prometheus.Counter
}

// New registers the collectors and returns them.
func New(opts ...Option) *Metrics {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	if config.Registry == nil {
		config.Registry = prometheus.NewRegistry()
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		registry: config.Registry,

		tasksRun: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "scheduler_tasks_total",
			Help:        "Total number of scheduled actions run",
			ConstLabels: config.ConstLabels,
		}),

		taskPanics: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "scheduler_task_panics_total",
			Help:        "Total number of scheduled actions that panicked",
			ConstLabels: config.ConstLabels,
		}),

		ticks: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "scheduler_ticks_total",
			Help:        "Total number of scheduler ticks",
			ConstLabels: config.ConstLabels,
		}),

		yields: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "scheduler_yields_total",
			Help:        "Ticks that ran out of budget and yielded to the host",
			ConstLabels: config.ConstLabels,
		}),

		tickDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "scheduler_tick_seconds",
			Help:        "Scheduler tick duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		passes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "reconcile_passes_total",
			Help:        "Total number of reconciliation passes by status",
			ConstLabels: config.ConstLabels,
		}, []string{"status"}),

		passDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "reconcile_pass_seconds",
			Help:        "Reconciliation pass duration in seconds, animations included",
			ConstLabels: config.ConstLabels,
			Buckets:     prometheus.DefBuckets,
		}),

		domInserts: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "dom_inserts_total",
			Help:        "Total number of DOM node insertions",
			ConstLabels: config.ConstLabels,
		}),

		domRemoves: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "dom_removes_total",
			Help:        "Total number of DOM node removals",
			ConstLabels: config.ConstLabels,
		}),

		animFrames: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "animation_frames_total",
			Help:        "Total number of animation frames computed",
			ConstLabels: config.ConstLabels,
		}),

		warnings: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "warnings_total",
			Help:        "Programmer-error warnings by code",
			ConstLabels: config.ConstLabels,
		}, []string{"code"}),

		activeRuns: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "active_runs",
			Help:        "Number of documents currently attached to the DOM",
			ConstLabels: config.ConstLabels,
		}),

		coalesced: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "mailbox_coalesced_total",
			Help:        "Mailbox requests absorbed by an already pending rerun",
			ConstLabels: config.ConstLabels,
		}),

		fragFailed: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "fragment_failures_total",
			Help:        "Document updates whose signal failed and was contained",
			ConstLabels: config.ConstLabels,
		}),
	}
}

// Gatherer returns the registry the collectors live in.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	if m == nil {
		return prometheus.NewRegistry()
	}
	return m.registry
}

// =============================================================================
// Recording
// =============================================================================

// TaskRun records one scheduled action.
func (m *Metrics) TaskRun() {
	if m != nil {
		m.tasksRun.Inc()
	}
}

// TaskPanic records a scheduled action that panicked.
func (m *Metrics) TaskPanic() {
	if m != nil {
		m.taskPanics.Inc()
	}
}

// Tick records a finished scheduler tick and whether it yielded.
func (m *Metrics) Tick(d time.Duration, yielded bool) {
	if m == nil {
		return
	}
	m.ticks.Inc()
	m.tickDuration.Observe(d.Seconds())
	if yielded {
		m.yields.Inc()
	}
}

// Pass records a reconciliation pass.
func (m *Metrics) Pass(d time.Duration, err error) {
	if m == nil {
		return
	}
	status := "success"
	if err != nil {
		status = "error"
	}
	m.passes.WithLabelValues(status).Inc()
	m.passDuration.Observe(d.Seconds())
}

// DOMInsert records one node insertion.
func (m *Metrics) DOMInsert() {
	if m != nil {
		m.domInserts.Inc()
	}
}

// DOMRemove records one node removal.
func (m *Metrics) DOMRemove() {
	if m != nil {
		m.domRemoves.Inc()
	}
}

// AnimationFrame records one computed animation frame.
func (m *Metrics) AnimationFrame() {
	if m != nil {
		m.animFrames.Inc()
	}
}

// Warning records a warning by code. Its signature matches
// WarnerConfig.OnWarn.
func (m *Metrics) Warning(code string) {
	if m != nil {
		m.warnings.WithLabelValues(code).Inc()
	}
}

// RunAttached adjusts the number of attached documents by delta.
func (m *Metrics) RunAttached(delta int) {
	if m != nil {
		m.activeRuns.Add(float64(delta))
	}
}

// Coalesced records a mailbox request that was merged into a pending rerun.
func (m *Metrics) Coalesced() {
	if m != nil {
		m.coalesced.Inc()
	}
}

// FragmentFailed records a failed document update signal.
func (m *Metrics) FragmentFailed() {
	if m != nil {
		m.fragFailed.Inc()
	}
}

// Total gathers the family called name and sums its counter and gauge
// samples across all label sets. Histograms contribute their sample
// count. Unknown names yield zero.
func (m *Metrics) Total(name string) float64 {
	fams, err := m.Gatherer().Gather()
	if err != nil {
		return 0
	}
	var sum float64
	for _, f := range fams {
		if f.GetName() != name {
			continue
		}
		for _, s := range f.GetMetric() {
			sum += s.GetCounter().GetValue() + s.GetGauge().GetValue() + float64(s.GetHistogram().GetSampleCount())
		}
	}
	return sum
}

// Registerer exposes the registry so other collectors, such as HTTP
// middleware, can share it.
func (m *Metrics) Registerer() prometheus.Registerer {
	if m == nil {
		return prometheus.NewRegistry()
	}
	return m.registry
}
