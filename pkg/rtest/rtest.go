package rtest

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/ripple/internal/errors"
	"github.com/vango-dev/ripple/pkg/docs"
	"github.com/vango-dev/ripple/pkg/dom"
	"github.com/vango-dev/ripple/pkg/metrics"
	"github.com/vango-dev/ripple/pkg/reactive"
	"github.com/vango-dev/ripple/pkg/render"
	"github.com/vango-dev/ripple/pkg/sched"
)

// Harness runs documents against a headless root under manual time.
type Harness struct {
	T         testing.TB
	Stepper   *sched.Stepper
	Scheduler *sched.Scheduler
	Runtime   *docs.Runtime
	Metrics   *metrics.Metrics
	Root      *dom.Node

	logs *bytes.Buffer

	mu     sync.Mutex
	warned []string
}

// Option configures a Harness.
type Option func(*config)

type config struct {
	animations    bool
	frameInterval time.Duration
	rootTag       string
}

// WithAnimations enables animated passes. They are off by default so a
// single Flush settles every pass at once.
func WithAnimations(on bool) Option {
	return func(c *config) { c.animations = on }
}

// WithFrameInterval sets how far each stepped frame moves the clock.
func WithFrameInterval(d time.Duration) Option {
	return func(c *config) { c.frameInterval = d }
}

// WithRootTag changes the tag of the root element (default "div").
func WithRootTag(tag string) Option {
	return func(c *config) { c.rootTag = tag }
}

// New creates a Harness. Logs go to an in-memory buffer that is dumped
// through t.Log when the test fails.
func New(t testing.TB, opts ...Option) *Harness {
	t.Helper()
	cfg := config{frameInterval: sched.DefaultFrameInterval, rootTag: "div"}
	for _, opt := range opts {
		opt(&cfg)
	}

	h := &Harness{
		T:       t,
		Stepper: sched.NewStepper(),
		Metrics: metrics.New(),
		Root:    dom.NewElement(cfg.rootTag),
		logs:    &bytes.Buffer{},
	}
	h.Stepper.FrameInterval = cfg.frameInterval

	logger := slog.New(slog.NewTextHandler(h.logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	warner := errors.NewWarner(logger, errors.WarnerConfig{
		OnWarn: func(code string) {
			h.mu.Lock()
			h.warned = append(h.warned, code)
			h.mu.Unlock()
			h.Metrics.Warning(code)
		},
	})

	h.Scheduler = sched.New(h.Stepper, sched.WithLogger(logger), sched.WithMetrics(h.Metrics))
	h.Runtime = docs.NewRuntime(h.Scheduler,
		docs.WithLogger(logger),
		docs.WithMetrics(h.Metrics),
		docs.WithWarner(warner),
		docs.WithAnimations(cfg.animations),
		docs.WithRuntimeID("rtest"),
	)

	t.Cleanup(func() {
		if t.Failed() && h.logs.Len() > 0 {
			t.Logf("runtime log:\n%s", h.logs.String())
		}
	})
	return h
}

// Run attaches d to the root, replacing its children, and settles.
func (h *Harness) Run(d docs.Doc) *docs.RunState {
	h.T.Helper()
	st := h.Runtime.Run(h.Root, d)
	h.Flush()
	return st
}

// Flush runs queued tasks and frames until nothing is left.
func (h *Harness) Flush() int {
	return h.Stepper.Flush()
}

// HTML renders the children of the root.
func (h *Harness) HTML() string {
	return render.InnerHTML(h.Root)
}

// Logs returns everything the runtime logged so far.
func (h *Harness) Logs() string {
	return h.logs.String()
}

// Warnings returns the warning codes raised so far, in order.
func (h *Harness) Warnings() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.warned...)
}

// Find returns the first element under the root matching selector and
// fails the test when there is none.
func (h *Harness) Find(selector string) *dom.Node {
	h.T.Helper()
	el := h.Root.QuerySelector(selector)
	require.NotNilf(h.T, el, "no element matches %q in:\n%s", selector, truncate(h.HTML(), 500))
	return el
}

// Click clicks the element matching selector and settles.
func (h *Harness) Click(selector string) {
	h.T.Helper()
	h.Find(selector).Click()
	h.Flush()
}

// Input types value into the element matching selector and settles.
func (h *Harness) Input(selector, value string) {
	h.T.Helper()
	h.Find(selector).Input(value)
	h.Flush()
}

// ExpectHTML asserts the root renders exactly want.
func (h *Harness) ExpectHTML(want string) {
	h.T.Helper()
	assert.Equal(h.T, want, h.HTML())
}

// ExpectContains asserts the rendered root contains expected.
func (h *Harness) ExpectContains(expected string) {
	h.T.Helper()
	if html := h.HTML(); !strings.Contains(html, expected) {
		h.T.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectNotContains asserts the rendered root does not contain unexpected.
func (h *Harness) ExpectNotContains(unexpected string) {
	h.T.Helper()
	if html := h.HTML(); strings.Contains(html, unexpected) {
		h.T.Errorf("expected rendered output to NOT contain %q, got:\n%s", unexpected, truncate(html, 500))
	}
}

// ExpectWarning asserts code was raised at least once.
func (h *Harness) ExpectWarning(code string) {
	h.T.Helper()
	assert.Contains(h.T, h.Warnings(), code)
}

// Recorder collects the values a View goes through.
type Recorder[T any] struct {
	mu     sync.Mutex
	values []T
}

// Record sinks v into a new Recorder. Values arrive as the scheduler
// runs, so flush the host before reading them.
func Record[T any](s *sched.Scheduler, v reactive.View[T]) *Recorder[T] {
	r := &Recorder[T]{}
	reactive.Sink(s, v, r.add)
	return r
}

func (r *Recorder[T]) add(v T) {
	r.mu.Lock()
	r.values = append(r.values, v)
	r.mu.Unlock()
}

// Values returns a copy of the recorded values.
func (r *Recorder[T]) Values() []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]T(nil), r.values...)
}

// Last returns the most recent value.
func (r *Recorder[T]) Last() (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.values) == 0 {
		var zero T
		return zero, false
	}
	return r.values[len(r.values)-1], true
}

// Len returns how many values were recorded.
func (r *Recorder[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.values)
}

// Reset forgets the recorded values.
func (r *Recorder[T]) Reset() {
	r.mu.Lock()
	r.values = nil
	r.mu.Unlock()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
