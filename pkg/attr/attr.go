package attr

import (
	"github.com/vango-dev/ripple/pkg/anim"
	"github.com/vango-dev/ripple/pkg/dom"
	"github.com/vango-dev/ripple/pkg/reactive"
)

// Flags record which animations an attribute tree can produce.
type Flags uint8

const (
	HasEnterAnim  Flags = 1
	HasExitAnim   Flags = 2
	HasChangeAnim Flags = 4
)

// Node is the dynamic part of an attribute. Changed goes obsolete when the
// node has a new value to push; Sync pushes it into the element.
type Node interface {
	Changed() reactive.View[reactive.Unit]
	Sync(el *dom.Node, animating bool)
	EnterAnim(el *dom.Node) anim.An
	ExitAnim(el *dom.Node) anim.An
	ChangeAnim(el *dom.Node) anim.An
}

type attrKind uint8

const (
	kindStatic attrKind = iota
	kindDynamic
	kindAppend
	kindAfterRender
)

// Attr is an attribute tree. The nil *Attr is the empty attribute.
type Attr struct {
	kind        attrKind
	flags       Flags
	static      func(*dom.Node)
	node        Node
	left, right *Attr
	after       func(*dom.Node)
}

// Static wraps a function run once on the element at insertion.
func Static(fn func(el *dom.Node)) *Attr {
	return &Attr{kind: kindStatic, static: fn}
}

// FromNode wraps a dynamic node.
func FromNode(n Node, flags Flags) *Attr {
	return &Attr{kind: kindDynamic, node: n, flags: flags}
}

// Append combines two attributes. Either may be nil.
func Append(a, b *Attr) *Attr {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return &Attr{kind: kindAppend, left: a, right: b, flags: a.flags | b.flags}
}

// Concat combines attributes as a balanced tree.
func Concat(xs ...*Attr) *Attr {
	switch len(xs) {
	case 0:
		return nil
	case 1:
		return xs[0]
	}
	mid := len(xs) / 2
	return Append(Concat(xs[:mid]...), Concat(xs[mid:]...))
}

// Flags returns the animation flags of a.
func (a *Attr) Flags() Flags {
	if a == nil {
		return 0
	}
	return a.flags
}

// Dyn is an attribute tree inserted into an element.
type Dyn struct {
	El    *dom.Node
	Flags Flags
	Nodes []Node

	afterRender []func(*dom.Node)
}

// Empty is a Dyn with no dynamic parts.
func Empty(el *dom.Node) *Dyn {
	return &Dyn{El: el}
}

// Insert applies the static parts of tree to el and collects its dynamic
// nodes and after-render callbacks.
func Insert(el *dom.Node, tree *Attr) *Dyn {
	d := &Dyn{El: el, Flags: tree.Flags()}
	var walk func(a *Attr)
	walk = func(a *Attr) {
		if a == nil {
			return
		}
		switch a.kind {
		case kindStatic:
			a.static(el)
		case kindDynamic:
			d.Nodes = append(d.Nodes, a.node)
		case kindAppend:
			walk(a.left)
			walk(a.right)
		case kindAfterRender:
			d.afterRender = append(d.afterRender, a.after)
		}
	}
	walk(tree)
	return d
}

// Updates goes obsolete whenever any dynamic node changes.
func (d *Dyn) Updates() reactive.View[reactive.Unit] {
	return treeReduce(d.Nodes)
}

func treeReduce(nodes []Node) reactive.View[reactive.Unit] {
	switch len(nodes) {
	case 0:
		return reactive.Const(reactive.Unit{})
	case 1:
		return nodes[0].Changed()
	}
	mid := len(nodes) / 2
	return reactive.Map2Unit(treeReduce(nodes[:mid]), treeReduce(nodes[mid:]))
}

// Sync pushes pending values into the element. animating reports whether
// the runtime plays animations; when it does, animated nodes push through
// their animations instead.
func (d *Dyn) Sync(animating bool) {
	for _, n := range d.Nodes {
		n.Sync(d.El, animating)
	}
}

// AfterRender returns the combined after-render callback, or nil.
func (d *Dyn) AfterRender() func(*dom.Node) {
	if len(d.afterRender) == 0 {
		return nil
	}
	fns := d.afterRender
	return func(el *dom.Node) {
		for _, f := range fns {
			f(el)
		}
	}
}

func (d *Dyn) HasEnterAnim() bool  { return d.Flags&HasEnterAnim != 0 }
func (d *Dyn) HasExitAnim() bool   { return d.Flags&HasExitAnim != 0 }
func (d *Dyn) HasChangeAnim() bool { return d.Flags&HasChangeAnim != 0 }

// EnterAnim concatenates the enter animations of every node.
func (d *Dyn) EnterAnim() anim.An {
	return d.collect(Node.EnterAnim)
}

// ExitAnim concatenates the exit animations of every node.
func (d *Dyn) ExitAnim() anim.An {
	return d.collect(Node.ExitAnim)
}

// ChangeAnim concatenates the change animations of every node.
func (d *Dyn) ChangeAnim() anim.An {
	return d.collect(Node.ChangeAnim)
}

func (d *Dyn) collect(f func(Node, *dom.Node) anim.An) anim.An {
	xs := make([]anim.An, len(d.Nodes))
	for i, n := range d.Nodes {
		xs[i] = f(n, d.El)
	}
	return anim.Concat(xs...)
}
