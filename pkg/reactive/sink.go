package reactive

import (
	"context"

	"github.com/vango-dev/ripple/internal/errors"
	"github.com/vango-dev/ripple/pkg/sched"
	"github.com/vango-dev/ripple/pkg/snap"
)

// observeGuarded evaluates v, turning a panic in the evaluator itself into
// an E101 error.
func observeGuarded[T any](v View[T]) (sn *snap.Snap[T], err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.FromPanic("E101", r)
		}
	}()
	return v.Snap(), nil
}

// Sink calls act with every value of v, on s, for as long as v can change.
// Failed values are logged to the scheduler's logger and skipped.
func Sink[T any](s *sched.Scheduler, v View[T], act func(T)) {
	sink(s, v, act, nil)
}

// RemovableSink is Sink with a stop function. After stop, act is never
// called again.
func RemovableSink[T any](s *sched.Scheduler, v View[T], act func(T)) (stop func()) {
	live := true
	sink(s, v, act, &live)
	return func() { live = false }
}

func sink[T any](s *sched.Scheduler, v View[T], act func(T), live *bool) {
	alive := func() bool { return live == nil || *live }
	var loop func()
	loop = func() {
		if !alive() {
			return
		}
		sn, err := observeGuarded(v)
		if err != nil {
			s.Logger().Error("sink view failed", "error", err)
			return
		}
		sn.WhenRun(func(x T) {
			if alive() {
				act(x)
			}
		}, func(err error) {
			s.Logger().Error("sink skipped failed value", "error", err)
		}, func() {
			if alive() {
				s.Fork(loop)
			}
		})
	}
	s.Fork(loop)
}

// Get calls ok with the current value of v once it is available, or fail
// with the error if evaluation fails. If v changes before producing a
// value, the new value is used. Exactly one of the callbacks runs, at most
// once. fail may be nil.
func Get[T any](v View[T], ok func(T), fail func(error)) {
	done := false
	var obs func()
	obs = func() {
		sn, err := observeGuarded(v)
		if err != nil {
			done = true
			if fail != nil {
				fail(err)
			}
			return
		}
		sn.WhenRun(func(x T) {
			if !done {
				done = true
				ok(x)
			}
		}, func(err error) {
			if !done {
				done = true
				if fail != nil {
					fail(err)
				}
			}
		}, func() {
			if !done {
				obs()
			}
		})
	}
	obs()
}

type result[T any] struct {
	v   T
	err error
}

// Await reads v from any goroutine. The read happens on host.
func Await[T any](ctx context.Context, host sched.Host, v View[T]) (T, error) {
	return AwaitWhere(ctx, host, v, nil)
}

// AwaitWhere waits until v holds a value satisfying pred. A nil pred
// accepts the first value.
func AwaitWhere[T any](ctx context.Context, host sched.Host, v View[T], pred func(T) bool) (T, error) {
	ch := make(chan result[T], 1)
	host.Post(func() {
		done := false
		finish := func(r result[T]) {
			if !done {
				done = true
				ch <- r
			}
		}
		var obs func()
		obs = func() {
			if done || ctx.Err() != nil {
				return
			}
			sn, err := observeGuarded(v)
			if err != nil {
				finish(result[T]{err: err})
				return
			}
			sn.WhenRun(func(x T) {
				if pred == nil || pred(x) {
					finish(result[T]{v: x})
				}
			}, func(err error) {
				finish(result[T]{err: err})
			}, func() {
				host.Post(obs)
			})
		}
		obs()
	})

	select {
	case r := <-ch:
		return r.v, r.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
