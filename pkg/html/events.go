package html

import (
	"github.com/vango-dev/ripple/pkg/attr"
	"github.com/vango-dev/ripple/pkg/dom"
)

// On attaches fn to event typ with full access to the element and event.
func On(typ string, fn func(el *dom.Node, ev *dom.Event)) *attr.Attr {
	return attr.Handler(typ, fn)
}

func event(typ string, fn func()) *attr.Attr {
	return attr.Handler(typ, func(*dom.Node, *dom.Event) { fn() })
}

// Mouse events

func OnClick(fn func()) *attr.Attr { return event("click", fn) }
func OnDblClick(fn func()) *attr.Attr { return event("dblclick", fn) }
func OnMouseDown(fn func()) *attr.Attr { return event("mousedown", fn) }
func OnMouseUp(fn func()) *attr.Attr { return event("mouseup", fn) }
func OnMouseEnter(fn func()) *attr.Attr { return event("mouseenter", fn) }
func OnMouseLeave(fn func()) *attr.Attr { return event("mouseleave", fn) }

// Focus events

func OnFocus(fn func()) *attr.Attr { return event("focus", fn) }
func OnBlur(fn func()) *attr.Attr { return event("blur", fn) }

// Form events pass the element's current value.

func OnInput(fn func(value string)) *attr.Attr {
	return attr.Handler("input", func(el *dom.Node, _ *dom.Event) { fn(el.Value()) })
}

func OnChange(fn func(value string)) *attr.Attr {
	return attr.Handler("change", func(el *dom.Node, _ *dom.Event) { fn(el.Value()) })
}

// OnSubmit calls fn and prevents the default submission.
func OnSubmit(fn func()) *attr.Attr {
	return attr.Handler("submit", func(_ *dom.Node, ev *dom.Event) {
		ev.PreventDefault()
		fn()
	})
}

// OnKeyDown receives the "key" entry of the event data.
func OnKeyDown(fn func(key string)) *attr.Attr {
	return attr.Handler("keydown", func(_ *dom.Node, ev *dom.Event) {
		fn(ev.Data["key"])
	})
}

// OnMount runs fn once the element has been rendered for the first time.
func OnMount(fn func(el *dom.Node)) *attr.Attr { return attr.OnAfterRender(fn) }
