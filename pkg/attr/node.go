package attr

import (
	"github.com/vango-dev/ripple/pkg/anim"
	"github.com/vango-dev/ripple/pkg/dom"
	"github.com/vango-dev/ripple/pkg/reactive"
)

// DynamicNode pushes the latest value of a View into an element.
type DynamicNode[T any] struct {
	push    func(el *dom.Node, v T)
	value   T
	dirty   bool
	updates reactive.View[reactive.Unit]
}

// NewDynamicNode creates a node that calls push with each new value of v.
func NewDynamicNode[T any](v reactive.View[T], push func(el *dom.Node, v T)) *DynamicNode[T] {
	n := &DynamicNode[T]{push: push}
	n.updates = reactive.Map(v, func(x T) reactive.Unit {
		n.value = x
		n.dirty = true
		return reactive.Unit{}
	})
	return n
}

func (n *DynamicNode[T]) Changed() reactive.View[reactive.Unit] { return n.updates }

func (n *DynamicNode[T]) Sync(el *dom.Node, _ bool) {
	if n.dirty {
		n.push(el, n.value)
		n.dirty = false
	}
}

func (n *DynamicNode[T]) EnterAnim(*dom.Node) anim.An  { return anim.Empty() }
func (n *DynamicNode[T]) ExitAnim(*dom.Node) anim.An   { return anim.Empty() }
func (n *DynamicNode[T]) ChangeAnim(*dom.Node) anim.An { return anim.Empty() }

// AnimatedNode tracks the logical value from its View and the value
// currently visible in the element, and animates between them.
type AnimatedNode[T any] struct {
	tr   anim.Trans[T]
	push func(el *dom.Node, v T)

	logical    T
	hasLogical bool
	visible    T
	hasVisible bool
	dirty      bool
	updates    reactive.View[reactive.Unit]
}

// NewAnimatedNode creates a node animated by tr.
func NewAnimatedNode[T any](tr anim.Trans[T], v reactive.View[T], push func(el *dom.Node, v T)) *AnimatedNode[T] {
	n := &AnimatedNode[T]{tr: tr, push: push, dirty: true}
	n.updates = reactive.Map(v, func(x T) reactive.Unit {
		n.logical = x
		n.hasLogical = true
		n.dirty = true
		return reactive.Unit{}
	})
	return n
}

func (n *AnimatedNode[T]) Changed() reactive.View[reactive.Unit] { return n.updates }

// Sync pushes the logical value directly when animations are off. With
// animations on, values reach the element through the animations.
func (n *AnimatedNode[T]) Sync(el *dom.Node, animating bool) {
	if !animating {
		n.sync(el)
	}
}

func (n *AnimatedNode[T]) sync(el *dom.Node) {
	if !n.dirty {
		return
	}
	if n.hasLogical {
		n.push(el, n.logical)
	}
	n.visible, n.hasVisible = n.logical, n.hasLogical
	n.dirty = false
}

func (n *AnimatedNode[T]) pushVisible(el *dom.Node, v T) {
	n.visible, n.hasVisible = v, true
	n.dirty = true
	n.push(el, v)
}

func (n *AnimatedNode[T]) pack(el *dom.Node, a anim.Anim[T]) anim.An {
	return anim.Pack(anim.Map(a, func(v T) anim.Unit {
		n.pushVisible(el, v)
		return anim.Unit{}
	}))
}

func (n *AnimatedNode[T]) changeOrEmpty(el *dom.Node) (anim.An, bool) {
	if n.hasVisible && n.hasLogical && n.dirty {
		return n.pack(el, n.tr.AnimateChange(n.visible, n.logical)), true
	}
	return anim.Empty(), false
}

func (n *AnimatedNode[T]) EnterAnim(el *dom.Node) anim.An {
	a, ok := n.changeOrEmpty(el)
	if !ok && !n.hasVisible && n.hasLogical {
		a = n.pack(el, n.tr.AnimateEnter(n.logical))
	}
	return anim.WhenDone(func() { n.sync(el) }, a)
}

func (n *AnimatedNode[T]) ChangeAnim(el *dom.Node) anim.An {
	a, _ := n.changeOrEmpty(el)
	return anim.WhenDone(func() { n.sync(el) }, a)
}

func (n *AnimatedNode[T]) ExitAnim(el *dom.Node) anim.An {
	a := anim.Empty()
	if n.hasVisible {
		a = n.pack(el, n.tr.AnimateExit(n.visible))
	}
	return anim.WhenDone(func() {
		n.dirty = true
		var zero T
		n.visible, n.hasVisible = zero, false
	}, a)
}
