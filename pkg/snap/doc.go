// Package snap implements Snap, the single-assignment-with-invalidation
// cell at the bottom of the ripple dataflow graph.
//
// A Snap starts Pending, receives its value exactly once (Ready, Forever or
// Failed) and may later become Obsolete. Obsolescence is pushed eagerly and
// synchronously to every registered dependent, so a reader either holds a
// live Snap with a guaranteed future obsolete notification or is told at
// registration time that the Snap is already dead.
//
//	a := snap.NewReady(1)
//	b := snap.Map(a, func(x int) int { return x * 2 })
//	b.WhenReady(func(v int) { fmt.Println(v) }) // prints 2
//	a.MarkObsolete()                              // b is now obsolete too
//
// Derived snapshots (Map, Map2, Map3, Sequence, Join) fire only once every
// input has a value for the current generation, and are Forever only when
// all of their inputs are. A panic inside a projection does not escape: the
// derived Snap becomes Failed and carries the recovered error.
//
// Snaps are not safe for concurrent use. The whole graph belongs to the
// goroutine that runs the scheduler.
package snap
