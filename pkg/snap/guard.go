package snap

import "github.com/vango-dev/ripple/internal/errors"

// Projections run under guard so a panic turns into a Failed snapshot
// instead of unwinding through the scheduler.

func guard(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.FromPanic("E101", r)
		}
	}()
	fn()
	return nil
}

func guard1[A, B any](fn func(A) B, a A) (b B, err error) {
	err = guard(func() { b = fn(a) })
	return b, err
}

func guard2[A, B, C any](fn func(A, B) C, a A, b B) (c C, err error) {
	err = guard(func() { c = fn(a, b) })
	return c, err
}

func guard3[A, B, C, D any](fn func(A, B, C) D, a A, b B, c C) (d D, err error) {
	err = guard(func() { d = fn(a, b, c) })
	return d, err
}
