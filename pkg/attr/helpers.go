package attr

import (
	"github.com/vango-dev/ripple/internal/fresh"
	"github.com/vango-dev/ripple/pkg/anim"
	"github.com/vango-dev/ripple/pkg/dom"
	"github.com/vango-dev/ripple/pkg/reactive"
)

// Create sets a plain attribute.
func Create(name, value string) *Attr {
	return Static(func(el *dom.Node) { el.SetAttribute(name, value) })
}

// Class adds a CSS class.
func Class(name string) *Attr {
	return Static(func(el *dom.Node) { el.AddClass(name) })
}

// Style sets one inline style property.
func Style(name, value string) *Attr {
	return Static(func(el *dom.Node) { el.SetStyle(name, value) })
}

// Dynamic binds an attribute to a View.
func Dynamic(name string, v reactive.View[string]) *Attr {
	return DynamicCustom(func(el *dom.Node, x string) { el.SetAttribute(name, x) }, v)
}

// DynamicProp binds a live property to a View.
func DynamicProp[T any](name string, v reactive.View[T]) *Attr {
	return DynamicCustom(func(el *dom.Node, x T) { el.SetProperty(name, x) }, v)
}

// DynamicStyle binds an inline style property to a View.
func DynamicStyle(name string, v reactive.View[string]) *Attr {
	return DynamicCustom(func(el *dom.Node, x string) { el.SetStyle(name, x) }, v)
}

// DynamicPred sets the attribute to the value of val while pred holds and
// removes it otherwise.
func DynamicPred(name string, pred reactive.View[bool], val reactive.View[string]) *Attr {
	type pv struct {
		ok bool
		v  string
	}
	both := reactive.Map2(pred, val, func(ok bool, v string) pv { return pv{ok, v} })
	return DynamicCustom(func(el *dom.Node, x pv) {
		if x.ok {
			el.SetAttribute(name, x.v)
		} else {
			el.RemoveAttribute(name)
		}
	}, both)
}

// DynamicClass adds the class while ok holds for the value of v.
func DynamicClass[T any](name string, v reactive.View[T], ok func(T) bool) *Attr {
	return DynamicCustom(func(el *dom.Node, x T) {
		if ok(x) {
			el.AddClass(name)
		} else {
			el.RemoveClass(name)
		}
	}, v)
}

// DynamicCustom calls set with every new value of v.
func DynamicCustom[T any](set func(el *dom.Node, v T), v reactive.View[T]) *Attr {
	return FromNode(NewDynamicNode(v, set), 0)
}

// AnimatedCustom binds v through a transition.
func AnimatedCustom[T any](tr anim.Trans[T], v reactive.View[T], set func(el *dom.Node, v T)) *Attr {
	flags := HasChangeAnim
	if tr.CanAnimateEnter() {
		flags |= HasEnterAnim
	}
	if tr.CanAnimateExit() {
		flags |= HasExitAnim
	}
	return FromNode(NewAnimatedNode(tr, v, set), flags)
}

// Animated binds an attribute through a transition; format renders the
// interpolated value.
func Animated[T any](name string, tr anim.Trans[T], v reactive.View[T], format func(T) string) *Attr {
	return AnimatedCustom(tr, v, func(el *dom.Node, x T) { el.SetAttribute(name, format(x)) })
}

// AnimatedStyle is Animated for an inline style property.
func AnimatedStyle[T any](name string, tr anim.Trans[T], v reactive.View[T], format func(T) string) *Attr {
	return AnimatedCustom(tr, v, func(el *dom.Node, x T) { el.SetStyle(name, format(x)) })
}

// Handler listens for an event on the element.
func Handler(event string, fn func(el *dom.Node, ev *dom.Event)) *Attr {
	return Static(func(el *dom.Node) {
		el.AddEventListener(event, func(ev *dom.Event) { fn(el, ev) })
	})
}

// HandlerView listens for an event and passes the current value of v.
func HandlerView[T any](event string, v reactive.View[T], fn func(el *dom.Node, ev *dom.Event, x T)) *Attr {
	return Static(func(el *dom.Node) {
		el.AddEventListener(event, func(ev *dom.Event) {
			reactive.Get(v, func(x T) { fn(el, ev, x) }, nil)
		})
	})
}

// propSlots names the element properties OnAfterRenderView stores into.
var propSlots = fresh.New("ripple.afterrender.")

// OnAfterRender runs fn once the element has been rendered for the first
// time.
func OnAfterRender(fn func(el *dom.Node)) *Attr {
	return &Attr{kind: kindAfterRender, after: fn}
}

// OnAfterRenderView is OnAfterRender with the value v had when the element
// was rendered.
func OnAfterRenderView[T any](v reactive.View[T], fn func(el *dom.Node, x T)) *Attr {
	key := propSlots.ID()
	return Append(
		OnAfterRender(func(el *dom.Node) {
			x, _ := el.Property(key)
			val, _ := x.(T)
			fn(el, val)
		}),
		DynamicCustom(func(el *dom.Node, x T) { el.SetProperty(key, x) }, v),
	)
}
