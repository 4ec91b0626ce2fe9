// Package reactive provides mutable cells (Var) and derived, memoized
// values (View) on top of package snap.
//
// # Core Types
//
// Var[T] holds a value and the Snap that describes it:
//
//	count := reactive.NewVar(0)
//	count.Set(5)
//	count.Update(func(n int) int { return n + 1 })
//
// View[T] is a lazily evaluated, cached computation:
//
//	doubled := reactive.Map(count.View(), func(n int) int { return n * 2 })
//
// A View computes its Snap on first use and hands out the same Snap until
// it goes obsolete. Setting a Var obsoletes every View derived from it at
// once, and nothing is recomputed until somebody asks again. A diamond such
// as Map2(Map(a), Map(a)) therefore recomputes once per change of a.
//
// # Observation
//
// Views are pulled. Sink re-arms itself through a sched.Scheduler each time
// the observed Snap goes obsolete:
//
//	reactive.Sink(s, doubled, func(n int) { fmt.Println(n) })
//
// Get reads a View once; Await does the same from another goroutine.
//
// # Thread Safety
//
// Vars and Views belong to the host goroutine. Use sched.Host.Post or
// Await to reach them from elsewhere.
package reactive
