package anim

import (
	"time"
)

// Unit is the value type of animations run for their side effects.
type Unit = struct{}

// Anim is a value that varies over Duration.
type Anim[T any] struct {
	Compute  func(t time.Duration) T
	Duration time.Duration
}

// Def builds an Anim from a duration and a compute function.
func Def[T any](d time.Duration, compute func(time.Duration) T) Anim[T] {
	return Anim[T]{Compute: compute, Duration: d}
}

// Const is a zero-length animation holding v.
func Const[T any](v T) Anim[T] {
	return Def(0, func(time.Duration) T { return v })
}

// Simple interpolates from x to y over dur.
func Simple[T any](inter Interpolation[T], easing Easing, dur time.Duration, x, y T) Anim[T] {
	return Anim[T]{
		Compute: func(t time.Duration) T {
			if dur <= 0 {
				return y
			}
			return inter.Interpolate(easing.TransformTime(float64(t)/float64(dur)), x, y)
		},
		Duration: dur,
	}
}

// Delayed holds x for delay, then interpolates to y over dur.
func Delayed[T any](inter Interpolation[T], easing Easing, dur, delay time.Duration, x, y T) Anim[T] {
	return Anim[T]{
		Compute: func(t time.Duration) T {
			if t <= delay {
				return x
			}
			if dur <= 0 {
				return y
			}
			return inter.Interpolate(easing.TransformTime(float64(t-delay)/float64(dur)), x, y)
		},
		Duration: dur + delay,
	}
}

// Map transforms every frame of a.
func Map[A, B any](a Anim[A], fn func(A) B) Anim[B] {
	compute := a.Compute
	return Def(a.Duration, func(t time.Duration) B { return fn(compute(t)) })
}

// Prolong stretches a to next, repeating its final frame once it is over.
func Prolong[T any](next time.Duration, a Anim[T]) Anim[T] {
	var (
		last     T
		haveLast bool
	)
	return Def(next, func(t time.Duration) T {
		if t < a.Duration {
			return a.Compute(t)
		}
		if !haveLast {
			last, haveLast = a.Compute(a.Duration), true
		}
		return last
	})
}

// ConcatActions runs unit animations side by side for the longest of
// their durations.
func ConcatActions(xs []Anim[Unit]) Anim[Unit] {
	switch len(xs) {
	case 0:
		return Const(Unit{})
	case 1:
		return xs[0]
	}
	var dur time.Duration
	for _, a := range xs {
		dur = max(dur, a.Duration)
	}
	prolonged := make([]Anim[Unit], len(xs))
	for i, a := range xs {
		prolonged[i] = Prolong(dur, a)
	}
	return Def(dur, func(t time.Duration) Unit {
		for _, a := range prolonged {
			a.Compute(t)
		}
		return Unit{}
	})
}

// step is one entry of an An: either a finishing action or an animation.
type step struct {
	action func()
	anim   *Anim[Unit]
}

// An is a collection of unit animations and actions to run after them.
// The zero An is empty.
type An struct {
	steps appendList[step]
}

// Empty returns an empty An.
func Empty() An {
	return An{}
}

// Pack wraps an animation.
func Pack(a Anim[Unit]) An {
	return An{steps: single(step{anim: &a})}
}

// WhenDone adds f to run after main has finished.
func WhenDone(f func(), main An) An {
	return Append(An{steps: single(step{action: f})}, main)
}

// Append combines two collections.
func Append(a, b An) An {
	return An{steps: appendBoth(a.steps, b.steps)}
}

// Concat combines many collections.
func Concat(xs ...An) An {
	lists := make([]appendList[step], len(xs))
	for i, x := range xs {
		lists[i] = x.steps
	}
	return An{steps: concatLists(lists)}
}

// IsEmpty reports whether a holds nothing.
func (a An) IsEmpty() bool {
	return a.steps == nil
}

// Actions merges the animations of a into one.
func (a An) Actions() Anim[Unit] {
	var anims []Anim[Unit]
	for _, s := range toSlice(a.steps) {
		if s.anim != nil {
			anims = append(anims, *s.anim)
		}
	}
	return ConcatActions(anims)
}

// Finalize runs the actions of a in order.
func (a An) Finalize() {
	for _, s := range toSlice(a.steps) {
		if s.action != nil {
			s.action()
		}
	}
}

// Frames is the frame clock animations run against. sched.Host
// satisfies it.
type Frames interface {
	RequestFrame(fn func(now time.Time))
}

// Run plays a, calling onFrame with each computed frame, then done. The
// first frame is computed at t=0 and the last at exactly a.Duration. A
// zero-length animation calls done at once without computing anything.
func Run[T any](frames Frames, a Anim[T], onFrame func(T), done func()) {
	if done == nil {
		done = func() {}
	}
	if a.Duration <= 0 {
		done()
		return
	}
	var (
		start time.Time
		loop  func(now time.Time)
	)
	loop = func(now time.Time) {
		t := min(now.Sub(start), a.Duration)
		v := a.Compute(t)
		if onFrame != nil {
			onFrame(v)
		}
		if t < a.Duration {
			frames.RequestFrame(loop)
			return
		}
		done()
	}
	frames.RequestFrame(func(now time.Time) {
		start = now
		loop(now)
	})
}

// Play runs every animation of a together, then its actions, then done.
func Play(frames Frames, a An, done func()) {
	Run(frames, a.Actions(), nil, func() {
		a.Finalize()
		if done != nil {
			done()
		}
	})
}
