package docs

import (
	"github.com/vango-dev/ripple/pkg/attr"
	"github.com/vango-dev/ripple/pkg/dom"
	"github.com/vango-dev/ripple/pkg/reactive"
	"github.com/vango-dev/ripple/pkg/render"
)

// Elt is a Doc made of exactly one element. Its children can be changed
// after creation.
type Elt struct {
	elem    *ElemNode
	tree    *treeNode
	el      *dom.Node
	updates reactive.View[reactive.Unit]
	rv      *reactive.Updates[reactive.Unit]
}

func newElt(el *dom.Node, a *attr.Attr, children Doc) *Elt {
	n := newElemNode(el, a, nodeOf(children))
	rv := reactive.NewUpdates(updatesOf(children))
	return &Elt{
		elem:    n,
		el:      el,
		updates: reactive.Map2Unit(n.Attr.Updates(), rv.View()),
		rv:      rv,
	}
}

// newTreeElt wraps a template whose only top-level node is an element.
func newTreeElt(t *treeNode, updates reactive.View[reactive.Unit]) *Elt {
	rv := reactive.NewUpdates(reactive.Const(reactive.Unit{}))
	return &Elt{
		tree:    t,
		el:      t.els[0].node,
		updates: reactive.Map2Unit(updates, rv.View()),
		rv:      rv,
	}
}

func (e *Elt) node() docNode {
	if e.elem != nil {
		return e.elem
	}
	return e.tree
}

// Updates implements Doc.
func (e *Elt) Updates() reactive.View[reactive.Unit] { return e.updates }

// Element returns the underlying DOM element.
func (e *Elt) Element() *dom.Node { return e.el }

// Text returns the text content of the element.
func (e *Elt) Text() string { return e.el.TextContent() }

// HTML renders the element.
func (e *Elt) HTML() string { return render.String(e.el) }

// Append adds d after the current children.
func (e *Elt) Append(d Doc) {
	n := nodeOf(d)
	if e.elem != nil {
		e.elem.Children = joinNodes(e.elem.Children, n)
		linkElement(e.el, n)
	} else {
		after := e.el.AppendChild(dom.NewText(""))
		before := insertBeforeDelim(after, n)
		e.addHole(before, after, n)
	}
	e.rv.Set(reactive.Map2Unit(e.rv.Current(), updatesOf(d)))
}

// Prepend adds d before the current children.
func (e *Elt) Prepend(d Doc) {
	n := nodeOf(d)
	if e.elem != nil {
		e.elem.Children = joinNodes(n, e.elem.Children)
		syncer{}.insertDoc(e.el, n, e.el.FirstChild())
	} else {
		after := e.el.InsertBefore(dom.NewText(""), e.el.FirstChild())
		before := insertBeforeDelim(after, n)
		e.addHole(before, after, n)
	}
	e.rv.Set(reactive.Map2Unit(e.rv.Current(), updatesOf(d)))
}

func (e *Elt) addHole(before, after *dom.Node, n docNode) {
	e.tree.holes = append(e.tree.holes, &ElemNode{
		Attr:     attr.Empty(e.el),
		Children: n,
		El:       e.el,
		delims:   &[2]*dom.Node{before, after},
	})
}

func joinNodes(a, b docNode) docNode {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return &appendNode{left: a, right: b}
}

// Clear removes every child.
func (e *Elt) Clear() {
	if e.elem != nil {
		e.elem.Children = nil
	} else {
		e.tree.holes = nil
	}
	e.rv.Set(reactive.Const(reactive.Unit{}))
	e.el.RemoveChildren()
}

// SetText replaces the children with a single text.
func (e *Elt) SetText(s string) {
	e.Clear()
	e.el.SetTextContent(s)
}

// OnAfterRender adds a callback run once after the element is first
// rendered.
func (e *Elt) OnAfterRender(fn func(el *dom.Node)) *Elt {
	if e.elem != nil {
		prev := e.elem.render
		e.elem.render = chainRender(prev, fn)
		return e
	}
	prev, el := e.tree.render, e.el
	e.tree.render = func() {
		if prev != nil {
			prev()
		}
		fn(el)
	}
	return e
}

func chainRender(prev, next func(*dom.Node)) func(*dom.Node) {
	if prev == nil {
		return next
	}
	return func(el *dom.Node) {
		prev(el)
		next(el)
	}
}

// On adds an event listener to the element.
func (e *Elt) On(event string, fn func(el *dom.Node, ev *dom.Event)) *Elt {
	el := e.el
	el.AddEventListener(event, func(ev *dom.Event) { fn(el, ev) })
	return e
}

// OnAfterRenderView adds an after-render callback that receives the value v
// had when the element was rendered.
func OnAfterRenderView[T any](e *Elt, v reactive.View[T], fn func(el *dom.Node, x T)) *Elt {
	var latest T
	e.Append(BindView(v, func(x T) Doc {
		latest = x
		return Empty()
	}))
	return e.OnAfterRender(func(el *dom.Node) { fn(el, latest) })
}

// OnView adds an event listener that also receives the current value of v.
func OnView[T any](e *Elt, event string, v reactive.View[T], fn func(el *dom.Node, ev *dom.Event, x T)) *Elt {
	el := e.el
	el.AddEventListener(event, func(ev *dom.Event) {
		reactive.Get(v, func(x T) { fn(el, ev, x) }, nil)
	})
	return e
}

func reduceUnits(vs []reactive.View[reactive.Unit]) reactive.View[reactive.Unit] {
	switch len(vs) {
	case 0:
		return reactive.Const(reactive.Unit{})
	case 1:
		return vs[0]
	}
	mid := len(vs) / 2
	return reactive.Map2Unit(reduceUnits(vs[:mid]), reduceUnits(vs[mid:]))
}
