package sched

import (
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/vango-dev/ripple/internal/errors"
	"github.com/vango-dev/ripple/pkg/metrics"
)

// DefaultBudget is how long one tick may run before yielding to the host.
const DefaultBudget = 40 * time.Millisecond

// Scheduler is a time-sliced queue of actions run on a Host.
// It must only be used from the host goroutine.
type Scheduler struct {
	host    Host
	budget  time.Duration
	logger  *slog.Logger
	metrics *metrics.Metrics

	queue     []func()
	scheduled bool
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithBudget sets the tick budget.
func WithBudget(d time.Duration) Option {
	return func(s *Scheduler) {
		if d > 0 {
			s.budget = d
		}
	}
}

// WithLogger sets the logger for panicking actions and failed sink values.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scheduler) {
		s.logger = logger
	}
}

// WithMetrics attaches Prometheus collectors.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Scheduler) {
		s.metrics = m
	}
}

// New creates a Scheduler running on host.
func New(host Host, opts ...Option) *Scheduler {
	s := &Scheduler{
		host:   host,
		budget: DefaultBudget,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Host returns the host the scheduler posts to.
func (s *Scheduler) Host() Host {
	return s.host
}

// Logger returns the scheduler logger.
func (s *Scheduler) Logger() *slog.Logger {
	return s.logger
}

// Budget returns the tick budget.
func (s *Scheduler) Budget() time.Duration {
	return s.budget
}

// Fork queues action and schedules a tick if none is pending.
func (s *Scheduler) Fork(action func()) {
	s.queue = append(s.queue, action)
	if !s.scheduled {
		s.scheduled = true
		s.host.Post(s.tick)
	}
}

// Pending returns the number of queued actions.
func (s *Scheduler) Pending() int {
	return len(s.queue)
}

// Idle reports whether no tick is scheduled.
func (s *Scheduler) Idle() bool {
	return !s.scheduled
}

func (s *Scheduler) tick() {
	start := s.host.Now()
	for len(s.queue) > 0 {
		if elapsed := s.host.Now().Sub(start); elapsed >= s.budget {
			s.metrics.Tick(elapsed, true)
			s.host.Post(s.tick)
			return
		}
		action := s.queue[0]
		s.queue[0] = nil
		s.queue = s.queue[1:]
		s.run(action)
	}
	s.queue = nil
	s.scheduled = false
	s.metrics.Tick(s.host.Now().Sub(start), false)
}

func (s *Scheduler) run(action func()) {
	defer func() {
		if r := recover(); r != nil {
			s.reportPanic(r)
		}
	}()
	s.metrics.TaskRun()
	action()
}

func (s *Scheduler) reportPanic(r any) {
	s.metrics.TaskPanic()
	s.logger.Error("scheduled task panicked",
		"error", errors.FromPanic("E102", r),
		"stack", string(debug.Stack()))
}
