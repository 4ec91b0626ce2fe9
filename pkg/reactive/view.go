package reactive

import (
	"github.com/vango-dev/ripple/pkg/snap"
)

// Unit is the value of change-only views.
type Unit = snap.Unit

// View is a lazily evaluated reactive value. The zero View is a constant
// holding the zero value of T.
type View[T any] struct {
	get func() *snap.Snap[T]
}

// Snap returns the current Snap of the view, computing it if needed.
func (v View[T]) Snap() *snap.Snap[T] {
	if v.get == nil {
		var zero T
		return snap.NewForever(zero)
	}
	return v.get()
}

// Value returns the current value if the view has one right now.
func (v View[T]) Value() (T, bool) {
	return v.Snap().Value()
}

// CreateLazy builds a View from an evaluator. The first call to Snap runs
// observe and caches the result until it goes obsolete. Once observe
// returns a Forever Snap it is never called again.
func CreateLazy[T any](observe func() *snap.Snap[T]) View[T] {
	var cur *snap.Snap[T]
	return View[T]{get: func() *snap.Snap[T] {
		if cur != nil && !cur.IsObsolete() {
			return cur
		}
		cur = observe()
		if cur.IsForever() {
			observe = nil
		}
		return cur
	}}
}

// Const returns a View that never changes.
func Const[T any](v T) View[T] {
	sn := snap.NewForever(v)
	return View[T]{get: func() *snap.Snap[T] { return sn }}
}

// ConstAsync returns a View that is pending until complete is called with
// the value. Later calls are ignored.
func ConstAsync[T any]() (View[T], func(T)) {
	sn := snap.NewPending[T]()
	return View[T]{get: func() *snap.Snap[T] { return sn }}, sn.MarkForever
}

// Map applies fn to every value of v.
func Map[A, B any](v View[A], fn func(A) B) View[B] {
	return CreateLazy(func() *snap.Snap[B] {
		return snap.Map(v.Snap(), fn)
	})
}

// MapErr is Map with a projection that can fail. A returned error turns
// the result into a failed Snap.
func MapErr[A, B any](v View[A], fn func(A) (B, error)) View[B] {
	return CreateLazy(func() *snap.Snap[B] {
		return snap.MapErr(v.Snap(), fn)
	})
}

// Map2 combines two views.
func Map2[A, B, C any](v1 View[A], v2 View[B], fn func(A, B) C) View[C] {
	return CreateLazy(func() *snap.Snap[C] {
		return snap.Map2(v1.Snap(), v2.Snap(), fn)
	})
}

// Map3 combines three views.
func Map3[A, B, C, D any](v1 View[A], v2 View[B], v3 View[C], fn func(A, B, C) D) View[D] {
	return CreateLazy(func() *snap.Snap[D] {
		return snap.Map3(v1.Snap(), v2.Snap(), v3.Snap(), fn)
	})
}

// Map2Unit ticks whenever either change signal ticks.
func Map2Unit(v1, v2 View[Unit]) View[Unit] {
	return CreateLazy(func() *snap.Snap[Unit] {
		return snap.Map2Unit(v1.Snap(), v2.Snap())
	})
}

// Apply applies a view of functions to a view of arguments.
func Apply[A, B any](fn View[func(A) B], v View[A]) View[B] {
	return Map2(fn, v, func(f func(A) B, a A) B { return f(a) })
}

// MapCached is Map that skips fn when the input did not change.
func MapCached[A comparable, B any](v View[A], fn func(A) B) View[B] {
	return MapCachedBy(v, func(a, b A) bool { return a == b }, fn)
}

// MapCachedBy is MapCached with a custom equality.
func MapCachedBy[A, B any](v View[A], eq func(A, A) bool, fn func(A) B) View[B] {
	var cache snap.Cache[A, B]
	return CreateLazy(func() *snap.Snap[B] {
		return snap.MapCachedBy(v.Snap(), eq, &cache, fn)
	})
}

// Join flattens a view of views.
func Join[T any](vv View[View[T]]) View[T] {
	return CreateLazy(func() *snap.Snap[T] {
		return snap.Join(snap.Map(vv.Snap(), inner[T]))
	})
}

// JoinInner is Join that also obsoletes the inner Snap when the outer view
// changes. Use it when the inner view is created by the projection and
// nothing else holds on to it.
func JoinInner[T any](vv View[View[T]]) View[T] {
	return CreateLazy(func() *snap.Snap[T] {
		return snap.JoinInner(snap.Map(vv.Snap(), inner[T]))
	})
}

func inner[T any](v View[T]) func() *snap.Snap[T] {
	return v.Snap
}

// Bind feeds each value of v to fn and follows the view it returns.
func Bind[A, B any](v View[A], fn func(A) View[B]) View[B] {
	return Join(Map(v, fn))
}

// BindInner is Bind over JoinInner.
func BindInner[A, B any](v View[A], fn func(A) View[B]) View[B] {
	return JoinInner(Map(v, fn))
}

// Sequence collects the values of views in order.
func Sequence[T any](views []View[T]) View[[]T] {
	return CreateLazy(func() *snap.Snap[[]T] {
		snaps := make([]*snap.Snap[T], len(views))
		for i, v := range views {
			snaps[i] = v.Snap()
		}
		return snap.Sequence(snaps)
	})
}

// SnapshotOn holds def until trigger first changes, then samples value
// every time trigger changes. Changes of value alone are not propagated.
func SnapshotOn[T, U any](def T, trigger View[U], value View[T]) View[T] {
	initial := snap.NewReady(def)
	return CreateLazy(func() *snap.Snap[T] {
		st := trigger.Snap()
		if initial.IsObsolete() {
			return snap.SnapshotOn(st, value.Snap())
		}
		st.WhenObsolete(initial)
		return initial
	})
}

// UpdateWhile follows value while pred holds and otherwise keeps the last
// value it saw, starting from def.
func UpdateWhile[T any](def T, pred View[bool], value View[T]) View[T] {
	last := def
	return Bind(pred, func(on bool) View[T] {
		if on {
			return Map(value, func(x T) T {
				last = x
				return x
			})
		}
		return Const(last)
	})
}

// TryWith replaces v by handler(err) whenever evaluating v fails.
func TryWith[T any](handler func(error) View[T], v View[T]) View[T] {
	return CreateLazy(func() *snap.Snap[T] {
		sn, err := observeGuarded(v)
		if err != nil {
			return handler(err).Snap()
		}
		res := snap.NewPending[T]()
		sn.When(func(x T) {
			snap.MarkDone(res, sn, x)
		}, func(err error) {
			alt := handler(err).Snap()
			alt.When(res.MarkReady, res.MarkFailed, res)
		}, res)
		return res
	})
}

// TryFinally runs f after every evaluation of v, even one that panics.
func TryFinally[T any](f func(), v View[T]) View[T] {
	return CreateLazy(func() *snap.Snap[T] {
		defer f()
		return v.Snap()
	})
}
