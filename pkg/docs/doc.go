// Package docs builds reactive documents and keeps them in sync with a DOM
// tree.
//
// A Doc is a tree of DOM nodes plus a View that goes obsolete whenever some
// part of the tree changed. A Runtime attaches documents to the DOM and runs
// one reconciliation pass per batch of changes:
//
//	rt := docs.NewRuntime(sched.New(host))
//	count := reactive.NewVar(0)
//	rt.Run(root, docs.Element("p", nil,
//	    docs.TextView(reactive.Map(count.View(), strconv.Itoa)),
//	    docs.Button("+1", func() { count.Update(func(n int) int { return n + 1 }) }),
//	))
//
// Passes only touch nodes the document owns. Documents run between
// delimiters (RunBetween, RunAfter, ...) never modify siblings outside
// their range.
//
// Templates are plain markup with ws-* attributes marking holes, filled
// by ChildrenTemplate or through a TemplateRegistry.
package docs
