// Package anim describes timed value changes and plays them against a
// frame clock.
//
// An Anim[T] is a pure function of elapsed time plus a duration. An is an
// ordered collection of unit animations and finishing actions, which is
// what the reconciler gathers from attribute nodes and plays in one go:
// all animations run side by side, the shorter ones holding their last
// frame, and the actions run once every animation is done.
//
// Trans[T] bundles the animations an attribute uses when its value
// changes, when its element enters the tree and when it leaves.
//
//	tr := anim.NewTrans(func(x, y float64) anim.Anim[float64] {
//	    return anim.Simple(anim.Float64{}, anim.CubicInOut, 300*time.Millisecond, x, y)
//	})
package anim
