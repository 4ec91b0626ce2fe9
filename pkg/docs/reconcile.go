package docs

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/ripple/internal/errors"
	"github.com/vango-dev/ripple/pkg/anim"
	"github.com/vango-dev/ripple/pkg/metrics"
	"github.com/vango-dev/ripple/pkg/sched"
)

// countingFrames counts the frames animations consume.
type countingFrames struct {
	host    sched.Host
	metrics *metrics.Metrics
}

func (f countingFrames) RequestFrame(fn func(now time.Time)) {
	f.host.RequestFrame(func(now time.Time) {
		f.metrics.AnimationFrame()
		fn(now)
	})
}

// pass brings the DOM of st in line with its document. With animations
// on, change and exit animations play first, the DOM is synced on the
// next frame, then enter animations play. done is called once the pass
// has finished, whether or not it succeeded.
func (r *Runtime) pass(st *RunState, done func()) {
	if st.stopped {
		done()
		return
	}
	start := r.host.Now()
	cur := findAll(st.top.Children)

	_, span := r.tracer.Start(context.Background(), "ripple.reconcile",
		trace.WithAttributes(
			attribute.String("ripple.runtime_id", r.id),
			attribute.String("ripple.run_id", st.id),
			attribute.Int("ripple.nodes", cur.Len()),
			attribute.Bool("ripple.animations", r.animations),
		),
	)

	finish := func(err error) {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			r.logger.Error("sync failed", "run_id", st.id, "error", err)
		} else {
			st.prev = cur
			span.SetStatus(codes.Ok, "")
		}
		st.passes++
		span.End()
		r.metrics.Pass(r.host.Now().Sub(start), err)
		done()
	}

	if !r.animations {
		r.host.RequestFrame(func(time.Time) {
			finish(r.syncTop(st))
		})
		return
	}

	change := st.prev.Filter(hasChangeAnim).Intersect(cur.Filter(hasChangeAnim))
	exit := st.prev.Filter(hasExitAnim).Except(cur)
	// New nodes that only animate changes still need their first value,
	// which their enter animation delivers.
	enter := cur.Filter(canEnter).Except(st.prev)
	span.SetAttributes(
		attribute.Int("ripple.anim.change", change.Len()),
		attribute.Int("ripple.anim.exit", exit.Len()),
		attribute.Int("ripple.anim.enter", enter.Len()),
	)

	frames := countingFrames{host: r.host, metrics: r.metrics}
	enterAn := collectAnims(enter, (*ElemNode).enterAnim)
	first := anim.Append(collectAnims(change, (*ElemNode).changeAnim), collectAnims(exit, (*ElemNode).exitAnim))
	anim.Play(frames, first, func() {
		r.host.RequestFrame(func(time.Time) {
			if err := r.syncTop(st); err != nil {
				finish(err)
				return
			}
			anim.Play(frames, enterAn, func() { finish(nil) })
		})
	})
}

// syncTop syncs the whole run, turning a panic into an E201 error.
func (r *Runtime) syncTop(st *RunState) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = errors.FromPanic("E201", rec)
		}
	}()
	syncer{metrics: r.metrics, animating: r.animations}.syncElemNode(st.top)
	return nil
}

func hasChangeAnim(n *ElemNode) bool { return n.Attr.HasChangeAnim() }
func hasExitAnim(n *ElemNode) bool   { return n.Attr.HasExitAnim() }
func canEnter(n *ElemNode) bool      { return n.Attr.HasEnterAnim() || n.Attr.HasChangeAnim() }

func (n *ElemNode) enterAnim() anim.An  { return n.Attr.EnterAnim() }
func (n *ElemNode) exitAnim() anim.An   { return n.Attr.ExitAnim() }
func (n *ElemNode) changeAnim() anim.An { return n.Attr.ChangeAnim() }

func collectAnims(s NodeSet, f func(*ElemNode) anim.An) anim.An {
	nodes := s.ToSlice()
	xs := make([]anim.An, len(nodes))
	for i, n := range nodes {
		xs[i] = f(n)
	}
	return anim.Concat(xs...)
}
