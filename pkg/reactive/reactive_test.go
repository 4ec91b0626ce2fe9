package reactive

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rerrors "github.com/vango-dev/ripple/internal/errors"
	"github.com/vango-dev/ripple/pkg/sched"
	"github.com/vango-dev/ripple/pkg/snap"
)

func newScheduler() (*sched.Stepper, *sched.Scheduler) {
	st := sched.NewStepper()
	return st, sched.New(st)
}

func record[T any](s *sched.Scheduler, v View[T]) *[]T {
	got := &[]T{}
	Sink(s, v, func(x T) { *got = append(*got, x) })
	return got
}

func newQuietScheduler() (*sched.Stepper, *sched.Scheduler, *bytes.Buffer) {
	st := sched.NewStepper()
	logs := &bytes.Buffer{}
	return st, sched.New(st, sched.WithLogger(slog.New(slog.NewTextHandler(logs, nil)))), logs
}

func TestSink_InitialValueThenOneUpdate(t *testing.T) {
	st, s := newScheduler()
	x := NewVar(0)
	got := record(s, Map(x.View(), func(n int) int { return n * 2 }))

	st.RunPending()
	x.Set(5)
	st.RunPending()

	assert.Equal(t, []int{0, 10}, *got)
}

func TestMap2_SetsInOneBatchNotifyOnce(t *testing.T) {
	st, s := newScheduler()
	a, b := NewVar(1), NewVar(2)
	got := record(s, Map2(a.View(), b.View(), func(x, y int) int { return x + y }))
	st.RunPending()

	a.Set(10)
	b.Set(20)
	st.RunPending()

	assert.Equal(t, []int{3, 30}, *got)
}

func TestDiamond_RecomputesOncePerChange(t *testing.T) {
	st, s := newScheduler()
	a := NewVar(1)
	left, right, joined := 0, 0, 0
	l := Map(a.View(), func(x int) int { left++; return x + 1 })
	r := Map(a.View(), func(x int) int { right++; return x * 2 })
	d := Map2(l, r, func(x, y int) int { joined++; return x + y })
	got := record(s, d)
	st.RunPending()

	a.Set(2)
	a.Set(3)
	st.RunPending()

	assert.Equal(t, []int{4, 10}, *got)
	assert.Equal(t, 2, left)
	assert.Equal(t, 2, right)
	assert.Equal(t, 2, joined)
}

func TestView_Memoization(t *testing.T) {
	x := NewVar(1)
	calls := 0
	v := Map(x.View(), func(n int) int { calls++; return n })

	first := v.Snap()
	assert.Same(t, first, v.Snap())
	assert.Equal(t, 1, calls)

	x.Set(2)
	second := v.Snap()
	assert.NotSame(t, first, second)
	assert.Same(t, second, v.Snap())
	assert.Equal(t, 2, calls)
}

func TestCreateLazy_DropsEvaluatorOnceForever(t *testing.T) {
	calls := 0
	v := Map(Const(3), func(n int) int { calls++; return n })
	for i := 0; i < 3; i++ {
		got, ok := v.Value()
		require.True(t, ok)
		assert.Equal(t, 3, got)
	}
	assert.Equal(t, 1, calls)
}

func TestZeroView_IsConstZero(t *testing.T) {
	var v View[string]
	got, ok := v.Value()
	assert.True(t, ok)
	assert.Equal(t, "", got)
	assert.True(t, v.Snap().IsForever())
}

func TestVar_SetFinal(t *testing.T) {
	var warned []string
	w := rerrors.NewWarner(slog.New(slog.NewTextHandler(io.Discard, nil)), rerrors.WarnerConfig{
		OnWarn: func(code string) { warned = append(warned, code) },
	})
	st, s := newScheduler()
	x := NewVar(1, WithWarner(w))
	got := record(s, x.View())
	st.RunPending()

	x.SetFinal(7)
	st.RunPending()
	final := x.View().Snap()
	assert.True(t, final.IsForever())

	x.Set(8)
	x.Update(func(n int) int { return n + 1 })
	x.SetFinal(9)
	st.RunPending()

	assert.Equal(t, 7, x.Get())
	assert.True(t, x.IsFinal())
	assert.Same(t, final, x.View().Snap())
	assert.Equal(t, []int{1, 7}, *got)
	assert.Equal(t, []string{"W001", "W001", "W001"}, warned)
}

func TestVar_WithEqualSkipsSameValue(t *testing.T) {
	st, s := newScheduler()
	x := NewVar("a", WithEqual(func(a, b string) bool { return a == b }))
	got := record(s, x.View())
	st.RunPending()

	x.Set("a")
	st.RunPending()
	x.Set("b")
	st.RunPending()

	assert.Equal(t, []string{"a", "b"}, *got)
}

func TestVar_UpdateMaybe(t *testing.T) {
	x := NewVar(1)
	x.UpdateMaybe(func(n int) (int, bool) { return n + 1, false })
	assert.Equal(t, 1, x.Get())
	x.UpdateMaybe(func(n int) (int, bool) { return n + 1, true })
	assert.Equal(t, 2, x.Get())
}

func TestVarWaiting_PendingUntilSet(t *testing.T) {
	x := NewVarWaiting[int]()
	var got []int
	Get(x.View(), func(n int) { got = append(got, n) }, nil)
	assert.Empty(t, got)

	x.Set(3)
	assert.Equal(t, []int{3}, got)
	x.Set(4)
	assert.Equal(t, []int{3}, got, "Get fires once")
}

func TestGet_FailedProjection(t *testing.T) {
	x := NewVar(0)
	v := Map(x.View(), func(n int) int { return 10 / n })

	var gotErr error
	Get(v, func(int) { t.Fatal("ok must not run") }, func(err error) { gotErr = err })
	require.Error(t, gotErr)
	assert.Equal(t, "E101", rerrors.Code(gotErr))
}

func TestSink_SkipsFailedValuesAndRecovers(t *testing.T) {
	st, s, logs := newQuietScheduler()
	x := NewVar(0)
	got := record(s, Map(x.View(), func(n int) int { return 10 / n }))
	st.RunPending()
	assert.Empty(t, *got)
	assert.Contains(t, logs.String(), "sink skipped failed value")

	x.Set(2)
	st.RunPending()
	assert.Equal(t, []int{5}, *got)
}

func TestRemovableSink(t *testing.T) {
	st, s := newScheduler()
	x := NewVar(1)
	var got []int
	stop := RemovableSink(s, x.View(), func(n int) { got = append(got, n) })
	st.RunPending()
	x.Set(2)
	st.RunPending()
	stop()
	x.Set(3)
	st.RunPending()
	assert.Equal(t, []int{1, 2}, got)
}

func TestBind_FollowsOnlySelectedBranch(t *testing.T) {
	st, s := newScheduler()
	sel := NewVar(true)
	a, b := NewVar("a1"), NewVar("b1")
	v := Bind(sel.View(), func(useA bool) View[string] {
		if useA {
			return a.View()
		}
		return b.View()
	})
	got := record(s, v)
	st.RunPending()

	b.Set("b2")
	st.RunPending()
	a.Set("a2")
	st.RunPending()
	sel.Set(false)
	st.RunPending()
	a.Set("a3")
	st.RunPending()

	assert.Equal(t, []string{"a1", "a2", "b2"}, *got)
}

func TestBindInner_ObsoletesCreatedViews(t *testing.T) {
	sel := NewVar(1)
	other := NewVar(10)
	var inners []View[int]
	v := BindInner(sel.View(), func(n int) View[int] {
		inner := Map(other.View(), func(x int) int { return x * n })
		inners = append(inners, inner)
		return inner
	})
	got, _ := v.Value()
	assert.Equal(t, 10, got)
	old := inners[0].Snap()

	sel.Set(2)
	assert.True(t, old.IsObsolete())
	got, _ = v.Value()
	assert.Equal(t, 20, got)
}

func TestSequence(t *testing.T) {
	st, s := newScheduler()
	a, b := NewVar(1), NewVar(2)
	got := record(s, Sequence([]View[int]{a.View(), Const(0), b.View()}))
	st.RunPending()
	b.Set(5)
	st.RunPending()
	assert.Equal(t, [][]int{{1, 0, 2}, {1, 0, 5}}, *got)

	empty, ok := Sequence[int](nil).Value()
	assert.True(t, ok)
	assert.Empty(t, empty)
}

func TestMap3AndApply(t *testing.T) {
	a, b, c := NewVar(1), NewVar(2), NewVar(3)
	v := Map3(a.View(), b.View(), c.View(), func(x, y, z int) int { return x*100 + y*10 + z })
	got, _ := v.Value()
	assert.Equal(t, 123, got)

	f := NewVar(func(n int) string { return "n" })
	ap := Apply(f.View(), a.View())
	s, _ := ap.Value()
	assert.Equal(t, "n", s)
	f.Set(func(n int) string { return "m" })
	s, _ = ap.Value()
	assert.Equal(t, "m", s)
}

func TestMap2Unit(t *testing.T) {
	st, s := newScheduler()
	a, b := NewVar(Unit{}), NewVar(Unit{})
	ticks := record(s, Map2Unit(a.View(), b.View()))
	st.RunPending()
	a.Set(Unit{})
	st.RunPending()
	b.Set(Unit{})
	st.RunPending()
	assert.Len(t, *ticks, 3)
}

func TestMapErr(t *testing.T) {
	x := NewVar("1")
	boom := errors.New("not a number")
	v := MapErr(x.View(), func(s string) (int, error) {
		if s == "1" {
			return 1, nil
		}
		return 0, boom
	})
	n, ok := v.Value()
	assert.True(t, ok)
	assert.Equal(t, 1, n)

	x.Set("x")
	assert.ErrorIs(t, v.Snap().Err(), boom)
}

func TestMapCached_SkipsEqualInputs(t *testing.T) {
	x := NewVar(1)
	calls := 0
	v := MapCached(x.View(), func(n int) int { calls++; return n * 2 })
	v.Snap()
	x.Set(1)
	v.Snap()
	x.Set(2)
	got, _ := v.Value()
	assert.Equal(t, 4, got)
	assert.Equal(t, 2, calls)
}

type item struct {
	ID   int
	Name string
}

func TestMapSeqCachedBy_ConvertsOnlyNewKeys(t *testing.T) {
	st, s := newScheduler()
	list := NewVar([]item{{1, "a"}})
	calls := 0
	v := MapSeqCachedBy(list.View(), func(it item) int { return it.ID }, func(it item) string {
		calls++
		return it.Name
	})
	got := record(s, v)
	st.RunPending()

	list.Set([]item{{1, "a"}, {2, "b"}})
	st.RunPending()
	assert.Equal(t, 2, calls)
	assert.Equal(t, [][]string{{"a"}, {"a", "b"}}, *got)

	// A key that disappears is forgotten.
	list.Set([]item{{2, "b"}})
	st.RunPending()
	list.Set([]item{{1, "a"}, {2, "b"}})
	st.RunPending()
	assert.Equal(t, 3, calls)
}

func TestMapSeqCached(t *testing.T) {
	list := NewVar([]string{"x"})
	calls := 0
	v := MapSeqCached(list.View(), func(s string) int { calls++; return len(s) })
	v.Snap()
	list.Set([]string{"x", "yy"})
	got, _ := v.Value()
	assert.Equal(t, []int{1, 2}, got)
	assert.Equal(t, 2, calls)
}

func TestMapSeqCachedViewBy_UpdatesItemCell(t *testing.T) {
	st, s := newScheduler()
	list := NewVar([]item{{1, "a"}})
	calls := 0
	var names []View[string]
	v := MapSeqCachedViewBy(list.View(), func(it item) int { return it.ID }, func(id int, iv View[item]) View[string] {
		calls++
		nv := Map(iv, func(it item) string { return it.Name })
		names = append(names, nv)
		return nv
	})
	record(s, v)
	first := record(s, Bind(v, func(vs []View[string]) View[string] { return vs[0] }))
	st.RunPending()

	list.Set([]item{{1, "z"}, {2, "b"}})
	st.RunPending()

	assert.Equal(t, 2, calls)
	require.Len(t, names, 2)
	name, _ := names[0].Value()
	assert.Equal(t, "z", name)
	assert.Equal(t, []string{"a", "z"}, *first)
}

func TestSnapshotOn_AndSubmitter(t *testing.T) {
	st, s := newScheduler()
	input := NewVar("typed")
	sub := NewSubmitter(input.View(), "init")
	got := record(s, sub.View())
	st.RunPending()

	input.Set("x")
	st.RunPending()
	assert.Equal(t, []string{"init"}, *got)

	sub.Trigger()
	st.RunPending()
	input.Set("y")
	st.RunPending()
	assert.Equal(t, []string{"init", "x"}, *got)

	sub.Trigger()
	st.RunPending()
	assert.Equal(t, []string{"init", "x", "y"}, *got)
	cur, _ := sub.Input().Value()
	assert.Equal(t, "y", cur)
}

func TestUpdateWhile(t *testing.T) {
	st, s := newScheduler()
	pred := NewVar(true)
	val := NewVar(1)
	got := record(s, UpdateWhile(0, pred.View(), val.View()))
	st.RunPending()

	val.Set(2)
	st.RunPending()
	pred.Set(false)
	st.RunPending()
	val.Set(3)
	st.RunPending()
	pred.Set(true)
	st.RunPending()

	assert.Equal(t, []int{1, 2, 2, 3}, *got)
}

func TestTryWith(t *testing.T) {
	x := NewVar(0)
	v := TryWith(func(err error) View[int] { return Const(-1) },
		Map(x.View(), func(n int) int { return 10 / n }))
	got, _ := v.Value()
	assert.Equal(t, -1, got)

	x.Set(5)
	got, _ = v.Value()
	assert.Equal(t, 2, got)

	panicky := TryWith(func(err error) View[string] { return Const(rerrors.Code(err)) },
		CreateLazy(func() *snap.Snap[string] { panic("evaluator") }))
	code, _ := panicky.Value()
	assert.Equal(t, "E101", code)
}

func TestTryFinally(t *testing.T) {
	x := NewVar(1)
	runs := 0
	v := TryFinally(func() { runs++ }, x.View())
	v.Snap()
	v.Snap()
	assert.Equal(t, 1, runs)
	x.Set(2)
	v.Snap()
	assert.Equal(t, 2, runs)
}

func TestLens(t *testing.T) {
	type point struct{ X, Y int }
	p := NewVar(point{1, 2})
	x := Lens[point, int](p, func(pt point) int { return pt.X }, func(pt point, v int) point {
		pt.X = v
		return pt
	})

	x.Set(5)
	assert.Equal(t, point{5, 2}, p.Get())
	x.Update(func(v int) int { return v * 2 })
	assert.Equal(t, 10, x.Get())
	got, _ := x.View().Value()
	assert.Equal(t, 10, got)
}

func TestUpdates_SwapSource(t *testing.T) {
	st, s := newScheduler()
	src := NewVar(1)
	u := NewUpdates(src.View())
	got := record(s, u.View())
	st.RunPending()

	u.Set(Const(2))
	st.RunPending()
	src.Set(3)
	st.RunPending()

	assert.Equal(t, []int{1, 2}, *got)
	cur, _ := u.Current().Value()
	assert.Equal(t, 2, cur)
}

func TestConstAsync(t *testing.T) {
	v, complete := ConstAsync[string]()
	assert.True(t, v.Snap().IsPending())
	complete("done")
	got, ok := v.Value()
	assert.True(t, ok)
	assert.Equal(t, "done", got)
	assert.True(t, v.Snap().IsForever())
}

func settle(t *testing.T, st *sched.Stepper, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not reached")
		}
		st.RunPending()
		time.Sleep(time.Millisecond)
	}
}

func TestMapAsync(t *testing.T) {
	st, s := newScheduler()
	x := NewVar(2)
	v := MapAsync(st, x.View(), func(_ context.Context, n int) (int, error) { return n * 2, nil })
	got := record(s, v)
	settle(t, st, func() bool { return len(*got) == 1 })
	assert.Equal(t, []int{4}, *got)

	x.Set(5)
	settle(t, st, func() bool { return len(*got) == 2 })
	assert.Equal(t, []int{4, 10}, *got)
}

func TestMapAsync_ErrorAndCancel(t *testing.T) {
	st := sched.NewStepper()
	boom := errors.New("backend down")
	v := MapAsync(st, Const(1), func(context.Context, int) (int, error) { return 0, boom })
	var gotErr error
	Get(v, func(int) {}, func(err error) { gotErr = err })
	settle(t, st, func() bool { return gotErr != nil })
	assert.Equal(t, "E103", rerrors.Code(gotErr))
	assert.ErrorIs(t, gotErr, boom)

	x := NewVar(1)
	cancelled := make(chan struct{})
	slow := MapAsync(st, x.View(), func(ctx context.Context, n int) (int, error) {
		if n == 1 {
			<-ctx.Done()
			close(cancelled)
			return 0, ctx.Err()
		}
		return n, nil
	})
	slow.Snap()
	x.Set(2)
	select {
	case <-cancelled:
	case <-time.After(2 * time.Second):
		t.Fatal("stale computation was not cancelled")
	}
}

func TestAwait(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	loop := sched.NewLoop()
	go loop.Run(ctx)

	x := NewVar(0)
	doubled := Map(x.View(), func(n int) int { return n * 2 })

	got, err := Await(ctx, loop, doubled)
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	res := make(chan int, 1)
	go func() {
		v, err := AwaitWhere(ctx, loop, doubled, func(n int) bool { return n >= 6 })
		if err == nil {
			res <- v
		}
	}()
	for i := 1; i <= 3; i++ {
		n := i
		require.NoError(t, loop.Do(ctx, func() { x.Set(n) }))
	}
	select {
	case v := <-res:
		assert.Equal(t, 6, v)
	case <-ctx.Done():
		t.Fatal("AwaitWhere did not return")
	}
}

func TestAwait_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	// A stepper nobody steps never answers.
	_, err := Await(ctx, sched.NewStepper(), Const(1))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
