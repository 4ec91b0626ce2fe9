package snap

import "fmt"

func settle[T any](res *Snap[T], v T, forever bool) {
	if forever {
		res.MarkForever(v)
	} else {
		res.MarkReady(v)
	}
}

func constant[T any](v T, err error) *Snap[T] {
	if err != nil {
		return NewFailed[T](err)
	}
	return NewForever(v)
}

// Map derives a Snap by applying fn to the value of sn.
func Map[A, B any](sn *Snap[A], fn func(A) B) *Snap[B] {
	if st, ok := sn.s.(*foreverState[A]); ok {
		return constant(guard1(fn, st.value))
	}
	res := NewPending[B]()
	sn.When(func(a A) {
		b, err := guard1(fn, a)
		if err != nil {
			res.MarkFailed(err)
			return
		}
		MarkDone(res, sn, b)
	}, res.MarkFailed, res)
	return res
}

// MapErr is Map for projections that can fail.
func MapErr[A, B any](sn *Snap[A], fn func(A) (B, error)) *Snap[B] {
	type result struct {
		v   B
		err error
	}
	r := Map(sn, func(a A) result {
		v, err := fn(a)
		return result{v, err}
	})
	return Bind(r, func(x result) *Snap[B] {
		if x.err != nil {
			return NewFailed[B](x.err)
		}
		return NewForever(x.v)
	})
}

// Map2 derives a Snap from two inputs. The projection runs once both
// inputs hold a value.
func Map2[A, B, C any](s1 *Snap[A], s2 *Snap[B], fn func(A, B) C) *Snap[C] {
	v1, f1 := s1.s.(*foreverState[A])
	v2, f2 := s2.s.(*foreverState[B])
	switch {
	case f1 && f2:
		return constant(guard2(fn, v1.value, v2.value))
	case f1:
		x := v1.value
		return Map(s2, func(y B) C { return fn(x, y) })
	case f2:
		y := v2.value
		return Map(s1, func(x A) C { return fn(x, y) })
	}

	res := NewPending[C]()
	cont := func() {
		if !res.IsPending() {
			return
		}
		a, fa, ok1 := s1.valueAndForever()
		b, fb, ok2 := s2.valueAndForever()
		if !ok1 || !ok2 {
			return
		}
		c, err := guard2(fn, a, b)
		if err != nil {
			res.MarkFailed(err)
			return
		}
		settle(res, c, fa && fb)
	}
	s1.When(func(A) { cont() }, res.MarkFailed, res)
	s2.When(func(B) { cont() }, res.MarkFailed, res)
	return res
}

// Map3 derives a Snap from three inputs.
func Map3[A, B, C, D any](s1 *Snap[A], s2 *Snap[B], s3 *Snap[C], fn func(A, B, C) D) *Snap[D] {
	v1, f1 := s1.s.(*foreverState[A])
	v2, f2 := s2.s.(*foreverState[B])
	v3, f3 := s3.s.(*foreverState[C])
	switch {
	case f1 && f2 && f3:
		return constant(guard3(fn, v1.value, v2.value, v3.value))
	case f1 && f2:
		x, y := v1.value, v2.value
		return Map(s3, func(z C) D { return fn(x, y, z) })
	case f1 && f3:
		x, z := v1.value, v3.value
		return Map(s2, func(y B) D { return fn(x, y, z) })
	case f2 && f3:
		y, z := v2.value, v3.value
		return Map(s1, func(x A) D { return fn(x, y, z) })
	case f1:
		x := v1.value
		return Map2(s2, s3, func(y B, z C) D { return fn(x, y, z) })
	case f2:
		y := v2.value
		return Map2(s1, s3, func(x A, z C) D { return fn(x, y, z) })
	case f3:
		z := v3.value
		return Map2(s1, s2, func(x A, y B) D { return fn(x, y, z) })
	}

	res := NewPending[D]()
	cont := func() {
		if !res.IsPending() {
			return
		}
		a, fa, ok1 := s1.valueAndForever()
		b, fb, ok2 := s2.valueAndForever()
		c, fc, ok3 := s3.valueAndForever()
		if !ok1 || !ok2 || !ok3 {
			return
		}
		d, err := guard3(fn, a, b, c)
		if err != nil {
			res.MarkFailed(err)
			return
		}
		settle(res, d, fa && fb && fc)
	}
	s1.When(func(A) { cont() }, res.MarkFailed, res)
	s2.When(func(B) { cont() }, res.MarkFailed, res)
	s3.When(func(C) { cont() }, res.MarkFailed, res)
	return res
}

// Map2Unit combines two change signals.
func Map2Unit(s1, s2 *Snap[Unit]) *Snap[Unit] {
	f1, f2 := s1.IsForever(), s2.IsForever()
	switch {
	case f1 && f2:
		return NewForever(Unit{})
	case f1:
		return s2
	case f2:
		return s1
	}

	res := NewPending[Unit]()
	cont := func(Unit) {
		if !res.IsPending() {
			return
		}
		_, fa, ok1 := s1.valueAndForever()
		_, fb, ok2 := s2.valueAndForever()
		if ok1 && ok2 {
			settle(res, Unit{}, fa && fb)
		}
	}
	s1.When(cont, res.MarkFailed, res)
	s2.When(cont, res.MarkFailed, res)
	return res
}

// Sequence waits for every input and yields their values in order. It is
// Forever only when all inputs are. An empty input yields Forever(empty).
func Sequence[T any](snaps []*Snap[T]) *Snap[[]T] {
	if len(snaps) == 0 {
		return NewForever([]T{})
	}
	res := NewPending[[]T]()
	waiting := len(snaps) - 1
	cont := func(T) {
		if waiting > 0 {
			waiting--
			return
		}
		if !res.IsPending() {
			return
		}
		vs := make([]T, len(snaps))
		forever := true
		for i, s := range snaps {
			v, f, ok := s.valueAndForever()
			if !ok {
				res.MarkFailed(fmt.Errorf("snap: sequence element %d has no value", i))
				return
			}
			vs[i] = v
			forever = forever && f
		}
		settle(res, vs, forever)
	}
	for _, s := range snaps {
		s.When(cont, res.MarkFailed, res)
	}
	return res
}

// Bind feeds the value of sn to fn and follows the returned Snap.
func Bind[A, B any](sn *Snap[A], fn func(A) *Snap[B]) *Snap[B] {
	return Join(Map(sn, func(a A) func() *Snap[B] {
		return func() *Snap[B] { return fn(a) }
	}))
}

func join[T any](sn *Snap[func() *Snap[T]], inner bool) *Snap[T] {
	res := NewPending[T]()
	sn.When(func(x func() *Snap[T]) {
		var y *Snap[T]
		if err := guard(func() { y = x() }); err != nil {
			res.MarkFailed(err)
			return
		}
		y.When(func(v T) {
			settle(res, v, y.IsForever() && sn.IsForever())
		}, res.MarkFailed, res)
		if inner {
			sn.WhenObsolete(y)
		}
	}, res.MarkFailed, res)
	return res
}

// Join flattens a Snap of Snap evaluators. The result goes obsolete when
// either level does.
func Join[T any](sn *Snap[func() *Snap[T]]) *Snap[T] {
	return join(sn, false)
}

// JoinInner is Join that also obsoletes the inner Snap when the outer one
// goes obsolete.
func JoinInner[T any](sn *Snap[func() *Snap[T]]) *Snap[T] {
	return join(sn, true)
}

// SnapshotOn yields the value of sn2 sampled when trigger sn1 is ready.
// The result is Forever if either input is.
func SnapshotOn[A, B any](sn1 *Snap[A], sn2 *Snap[B]) *Snap[B] {
	res := NewPending[B]()
	cont := func() {
		if !res.IsPending() {
			return
		}
		_, f1, ok1 := sn1.valueAndForever()
		v, f2, ok2 := sn2.valueAndForever()
		if ok1 && ok2 {
			settle(res, v, f1 || f2)
		}
	}
	sn1.When(func(A) { cont() }, res.MarkFailed, res)
	sn2.When(func(B) { cont() }, res.MarkFailed, nil)
	return res
}

// Cache remembers the last input and output of MapCachedBy.
type Cache[A, B any] struct {
	set bool
	in  A
	out B
}

// MapCachedBy is Map that skips fn when the input equals the previous one
// according to eq.
func MapCachedBy[A, B any](sn *Snap[A], eq func(A, A) bool, prev *Cache[A, B], fn func(A) B) *Snap[B] {
	return Map(sn, func(x A) B {
		if prev.set && eq(x, prev.in) {
			return prev.out
		}
		y := fn(x)
		prev.set, prev.in, prev.out = true, x, y
		return y
	})
}

// Copy returns a Snap that mirrors sn but has its own obsolete queue.
func Copy[T any](sn *Snap[T]) *Snap[T] {
	switch st := sn.s.(type) {
	case *readyState[T]:
		res := NewReady(st.value)
		sn.WhenObsolete(res)
		return res
	case *pendingState[T]:
		res := NewPending[T]()
		sn.When(func(v T) { MarkDone(res, sn, v) }, res.MarkFailed, res)
		return res
	}
	return sn
}
