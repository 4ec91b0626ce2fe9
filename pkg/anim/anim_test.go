package anim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/ripple/pkg/sched"
)

func TestEasing(t *testing.T) {
	assert.InDelta(t, 0.0, CubicInOut.TransformTime(0), 1e-9)
	assert.InDelta(t, 0.5, CubicInOut.TransformTime(0.5), 1e-9)
	assert.InDelta(t, 1.0, CubicInOut.TransformTime(1), 1e-9)
	assert.InDelta(t, 0.104, CubicInOut.TransformTime(0.2), 1e-9)
	assert.Equal(t, 0.3, Linear.TransformTime(0.3))
	assert.Equal(t, 0.7, Easing{}.TransformTime(0.7))
}

func TestFloat64Interpolation(t *testing.T) {
	assert.Equal(t, 15.0, Float64{}.Interpolate(0.5, 10, 20))
	assert.Equal(t, 10.0, Float64{}.Interpolate(0, 10, 20))

	ints := InterpolationFunc[int](func(t float64, x, y int) int { return x + int(t*float64(y-x)) })
	assert.Equal(t, 5, ints.Interpolate(0.5, 0, 10))
}

func TestSimpleAndDelayed(t *testing.T) {
	a := Simple(Float64{}, Linear, 100*time.Millisecond, 0, 10)
	assert.Equal(t, 100*time.Millisecond, a.Duration)
	assert.Equal(t, 5.0, a.Compute(50*time.Millisecond))

	d := Delayed(Float64{}, Linear, 100*time.Millisecond, 50*time.Millisecond, 0, 10)
	assert.Equal(t, 150*time.Millisecond, d.Duration)
	assert.Equal(t, 0.0, d.Compute(40*time.Millisecond))
	assert.Equal(t, 5.0, d.Compute(100*time.Millisecond))

	z := Simple(Float64{}, Linear, 0, 1, 2)
	assert.Equal(t, 2.0, z.Compute(0))
}

func TestMapAndProlong(t *testing.T) {
	a := Map(Simple(Float64{}, Linear, 10*time.Millisecond, 0, 10), func(x float64) int { return int(x) })
	assert.Equal(t, 5, a.Compute(5*time.Millisecond))

	calls := 0
	base := Def(10*time.Millisecond, func(t time.Duration) time.Duration { calls++; return t })
	p := Prolong(30*time.Millisecond, base)
	assert.Equal(t, 30*time.Millisecond, p.Duration)
	assert.Equal(t, 5*time.Millisecond, p.Compute(5*time.Millisecond))
	assert.Equal(t, 10*time.Millisecond, p.Compute(20*time.Millisecond))
	assert.Equal(t, 10*time.Millisecond, p.Compute(25*time.Millisecond))
	assert.Equal(t, 2, calls, "the final frame is computed once")
}

func TestConcatActions(t *testing.T) {
	assert.Equal(t, time.Duration(0), ConcatActions(nil).Duration)

	var short, long []time.Duration
	a := Def(10*time.Millisecond, func(t time.Duration) Unit { short = append(short, t); return Unit{} })
	b := Def(30*time.Millisecond, func(t time.Duration) Unit { long = append(long, t); return Unit{} })

	assert.Equal(t, 10*time.Millisecond, ConcatActions([]Anim[Unit]{a}).Duration)

	both := ConcatActions([]Anim[Unit]{a, b})
	assert.Equal(t, 30*time.Millisecond, both.Duration)
	both.Compute(5 * time.Millisecond)
	both.Compute(20 * time.Millisecond)
	assert.Equal(t, []time.Duration{5 * time.Millisecond, 10 * time.Millisecond}, short)
	assert.Equal(t, []time.Duration{5 * time.Millisecond, 20 * time.Millisecond}, long)
}

func TestRun_DrivesFramesUntilDuration(t *testing.T) {
	st := sched.NewStepper()
	st.FrameInterval = 10 * time.Millisecond
	a := Simple(Float64{}, Linear, 25*time.Millisecond, 0, 100)

	var frames []float64
	done := false
	Run(st, a, func(v float64) { frames = append(frames, v) }, func() { done = true })
	assert.False(t, done)

	st.Flush()
	assert.True(t, done)
	assert.Equal(t, []float64{0, 40, 80, 100}, frames)
}

func TestRun_ZeroDurationIsImmediate(t *testing.T) {
	st := sched.NewStepper()
	computed := false
	done := false
	Run(st, Def(0, func(time.Duration) int { computed = true; return 0 }), nil, func() { done = true })
	assert.True(t, done)
	assert.False(t, computed)
	assert.Equal(t, 0, st.PendingFrames())
}

func TestAn_PlayRunsAnimationsThenActions(t *testing.T) {
	st := sched.NewStepper()
	var log []string
	anim := func(name string, d time.Duration) An {
		return Pack(Def(d, func(t time.Duration) Unit {
			if t == d {
				log = append(log, name+" end")
			}
			return Unit{}
		}))
	}

	an := Concat(
		WhenDone(func() { log = append(log, "first done") }, anim("a", 32*time.Millisecond)),
		anim("b", 16*time.Millisecond),
		WhenDone(func() { log = append(log, "second done") }, Empty()),
	)
	require.False(t, an.IsEmpty())

	finished := false
	Play(st, an, func() { finished = true })
	st.Flush()

	assert.True(t, finished)
	assert.Equal(t, []string{"b end", "a end", "first done", "second done"}, log)
}

func TestAn_EmptyPlaysSynchronously(t *testing.T) {
	st := sched.NewStepper()
	finished := false
	ran := false
	Play(st, WhenDone(func() { ran = true }, Empty()), func() { finished = true })
	assert.True(t, ran)
	assert.True(t, finished)
	assert.True(t, Empty().IsEmpty())
	assert.True(t, Append(Empty(), Empty()).IsEmpty())
}

func TestTrans(t *testing.T) {
	triv := Trivial[float64]()
	assert.Equal(t, TransFlags(0), triv.Flags())
	assert.Equal(t, 2.0, triv.AnimateChange(1, 2).Compute(0))

	change := func(x, y float64) Anim[float64] { return Simple(Float64{}, Linear, time.Second, x, y) }
	tr := NewTrans(change)
	assert.True(t, tr.CanAnimateChange())
	assert.False(t, tr.CanAnimateEnter())
	assert.False(t, tr.CanAnimateExit())
	assert.Equal(t, time.Second, tr.AnimateChange(0, 1).Duration)
	assert.Equal(t, time.Duration(0), tr.AnimateEnter(1).Duration)

	fade := func(x float64) Anim[float64] { return Simple(Float64{}, Linear, time.Second, 0, x) }
	full := tr.Enter(fade).Exit(fade)
	assert.Equal(t, TransChange|TransEnter|TransExit, full.Flags())
	assert.Equal(t, TransFlags(7), full.Flags())
	assert.False(t, tr.CanAnimateEnter(), "modifiers return copies")

	created := CreateTrans(change, fade, nil)
	assert.True(t, created.CanAnimateEnter())
	assert.False(t, created.CanAnimateExit())

	exitOnly := Trivial[float64]().Exit(fade)
	assert.Equal(t, TransExit, exitOnly.Flags())
}
