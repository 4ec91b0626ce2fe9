package docs

import (
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/ripple/internal/errors"
	"github.com/vango-dev/ripple/internal/fresh"
	"github.com/vango-dev/ripple/pkg/attr"
	"github.com/vango-dev/ripple/pkg/dom"
	"github.com/vango-dev/ripple/pkg/metrics"
	"github.com/vango-dev/ripple/pkg/reactive"
	"github.com/vango-dev/ripple/pkg/sched"
)

// TracerName is the instrumentation name used for reconciliation spans.
const TracerName = "github.com/vango-dev/ripple/pkg/docs"

// Runtime attaches documents to the DOM and keeps them in sync.
// All methods must be called on the host goroutine.
type Runtime struct {
	id         string
	sched      *sched.Scheduler
	host       sched.Host
	logger     *slog.Logger
	metrics    *metrics.Metrics
	tracer     trace.Tracer
	warner     *errors.Warner
	animations bool
	runs       *fresh.Source
}

// Option configures a Runtime.
type Option func(*Runtime)

// WithLogger sets the logger. Default: slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(r *Runtime) { r.logger = l }
}

// WithMetrics sets the collectors passes are recorded in.
func WithMetrics(m *metrics.Metrics) Option {
	return func(r *Runtime) { r.metrics = m }
}

// WithTracer sets the tracer. Default: the global provider's tracer.
func WithTracer(t trace.Tracer) Option {
	return func(r *Runtime) { r.tracer = t }
}

// WithWarner sets the warning channel. Default: errors.DefaultWarner().
func WithWarner(w *errors.Warner) Option {
	return func(r *Runtime) { r.warner = w }
}

// WithAnimations turns enter, exit and change animations on or off.
// Default: on.
func WithAnimations(on bool) Option {
	return func(r *Runtime) { r.animations = on }
}

// WithIDSource sets the source run IDs are drawn from.
func WithIDSource(src *fresh.Source) Option {
	return func(r *Runtime) { r.runs = src }
}

// WithRuntimeID overrides the random runtime ID.
func WithRuntimeID(id string) Option {
	return func(r *Runtime) { r.id = id }
}

// NewRuntime creates a Runtime that schedules passes on s.
func NewRuntime(s *sched.Scheduler, opts ...Option) *Runtime {
	r := &Runtime{
		id:         uuid.NewString(),
		sched:      s,
		host:       s.Host(),
		animations: true,
		warner:     errors.DefaultWarner(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	r.logger = r.logger.With("runtime_id", r.id)
	if r.tracer == nil {
		r.tracer = otel.Tracer(TracerName)
	}
	if r.runs == nil {
		r.runs = fresh.New("run-")
	}
	return r
}

// ID returns the runtime ID.
func (r *Runtime) ID() string { return r.id }

// Animations reports whether animations are played.
func (r *Runtime) Animations() bool { return r.animations }

// SetAnimations turns animations on or off for subsequent passes.
func (r *Runtime) SetAnimations(on bool) { r.animations = on }

// Scheduler returns the scheduler passes run on.
func (r *Runtime) Scheduler() *sched.Scheduler { return r.sched }

// Logger returns the runtime logger.
func (r *Runtime) Logger() *slog.Logger { return r.logger }

// RunState is one attached document.
type RunState struct {
	id      string
	rt      *Runtime
	top     *ElemNode
	prev    NodeSet
	passes  int
	stopped bool
	stop    func()
}

// ID returns the run ID.
func (st *RunState) ID() string { return st.id }

// Passes returns the number of completed passes.
func (st *RunState) Passes() int { return st.passes }

// Top returns the node the document is attached under.
func (st *RunState) Top() *ElemNode { return st.top }

// Stop detaches the document from further updates. The DOM is left as it
// is.
func (st *RunState) Stop() {
	if st.stopped {
		return
	}
	st.stopped = true
	st.stop()
	st.rt.metrics.RunAttached(-1)
	st.rt.logger.Debug("run stopped", "run_id", st.id, "passes", st.passes)
}

// Run makes doc the content of parent, replacing what parent held.
func (r *Runtime) Run(parent *dom.Node, d Doc) *RunState {
	n := nodeOf(d)
	parent.RemoveChildren()
	linkElement(parent, n)
	top := &ElemNode{Attr: attr.Empty(parent), Children: n, El: parent}
	return r.start(top, d)
}

// RunBetween keeps doc between two siblings. Only the nodes between them
// are ever touched.
func (r *Runtime) RunBetween(ldelim, rdelim *dom.Node, d Doc) *RunState {
	n := nodeOf(d)
	linkPrevElement(rdelim, n)
	top := &ElemNode{
		Attr:     attr.Empty(ldelim.Parent()),
		Children: n,
		El:       ldelim.Parent(),
		delims:   &[2]*dom.Node{ldelim, rdelim},
	}
	return r.start(top, d)
}

// RunBefore keeps doc right before marker.
func (r *Runtime) RunBefore(marker *dom.Node, d Doc) *RunState {
	ldelim := dom.NewText("")
	marker.Parent().InsertBefore(ldelim, marker)
	return r.RunBetween(ldelim, marker, d)
}

// RunAfter keeps doc right after marker.
func (r *Runtime) RunAfter(marker *dom.Node, d Doc) *RunState {
	rdelim := dom.NewText("")
	marker.Parent().InsertBefore(rdelim, marker.NextSibling())
	return r.RunBetween(marker, rdelim, d)
}

// RunPrepend keeps doc before the existing children of parent.
func (r *Runtime) RunPrepend(parent *dom.Node, d Doc) *RunState {
	rdelim := dom.NewText("")
	parent.InsertBefore(rdelim, parent.FirstChild())
	return r.RunBefore(rdelim, d)
}

// RunAppend keeps doc after the existing children of parent.
func (r *Runtime) RunAppend(parent *dom.Node, d Doc) *RunState {
	rdelim := dom.NewText("")
	parent.AppendChild(rdelim)
	return r.RunBefore(rdelim, d)
}

// RunByID runs doc inside the element of root with the given id. It warns
// and returns nil when there is no such element.
func (r *Runtime) RunByID(root *dom.Node, id string, d Doc) *RunState {
	el := root.GetElementByID(id)
	if el == nil {
		r.warner.Warn("W004", "id", id, "runtime_id", r.id)
		return nil
	}
	return r.Run(el, d)
}

// RunReplace puts doc in place of el. It warns and returns nil when el is
// not attached.
func (r *Runtime) RunReplace(el *dom.Node, d Doc) *RunState {
	parent := el.Parent()
	if parent == nil {
		r.warner.Warn("W004", "tag", el.Tag, "runtime_id", r.id)
		return nil
	}
	rdelim := dom.NewText("")
	parent.ReplaceChild(rdelim, el)
	return r.RunBefore(rdelim, d)
}

func (r *Runtime) start(top *ElemNode, d Doc) *RunState {
	st := &RunState{
		id:   r.runs.ID(),
		rt:   r,
		top:  top,
		prev: EmptyNodeSet(),
	}
	trigger := sched.StartProcessor(r.sched, func(done func()) {
		r.pass(st, done)
	})
	st.stop = reactive.RemovableSink(r.sched, r.contain(st, updatesOf(d)), func(reactive.Unit) {
		trigger()
	})
	r.metrics.RunAttached(1)
	r.logger.Debug("run started", "run_id", st.id)
	return st
}

// contain turns a failed update signal into a tick. A failing fragment
// keeps its last synced content while the rest of the run goes on
// updating; the failure stays logged until the fragment recovers.
func (r *Runtime) contain(st *RunState, updates reactive.View[reactive.Unit]) reactive.View[reactive.Unit] {
	return reactive.TryWith(func(err error) reactive.View[reactive.Unit] {
		r.logger.Error("document update failed", "run_id", st.id, "error", err)
		r.metrics.FragmentFailed()
		return reactive.Const(reactive.Unit{})
	}, updates)
}
