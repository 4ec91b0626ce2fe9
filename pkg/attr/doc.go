// Package attr describes element attributes, static or driven by Views,
// and applies them to headless dom elements.
//
// An Attr is an immutable tree. Leaves either run once when the element is
// created (Create, Class, Handler), contribute a dynamic node whose value
// follows a View (Dynamic, DynamicStyle, Animated), or schedule a callback
// after the element is first rendered (OnAfterRender).
//
//	a := attr.Concat(
//	    attr.Class("item"),
//	    attr.Dynamic("title", title.View()),
//	    attr.Handler("click", func(el *dom.Node, ev *dom.Event) { count.Update(inc) }),
//	)
//	dyn := attr.Insert(el, a)
//
// Insert applies the static parts and returns a *Dyn. The reconciler
// watches Dyn.Updates and calls Dyn.Sync to push changed values into the
// element; animated nodes additionally provide enter, change and exit
// animations.
package attr
