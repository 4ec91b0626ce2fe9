package docs

import (
	"github.com/vango-dev/ripple/pkg/dom"
	"github.com/vango-dev/ripple/pkg/metrics"
)

// syncer brings the DOM in line with the document tree during a pass.
// Outside a pass the zero syncer is used, which counts nothing.
type syncer struct {
	metrics   *metrics.Metrics
	animating bool
}

// insertAt inserts node before pos unless it is already there.
func (s syncer) insertAt(parent, node, pos *dom.Node) *dom.Node {
	if node.Parent() != parent || node.NextSibling() != pos {
		parent.InsertBefore(node, pos)
		s.metrics.DOMInsert()
	}
	return node
}

// remove detaches node if it is still a child of parent.
func (s syncer) remove(parent, node *dom.Node) {
	if node.Parent() == parent {
		parent.RemoveChild(node)
		s.metrics.DOMRemove()
	}
}

// insertDoc inserts the DOM of d before pos and returns the first node
// inserted, or pos when d is empty.
func (s syncer) insertDoc(parent *dom.Node, d docNode, pos *dom.Node) *dom.Node {
	switch d := d.(type) {
	case nil:
		return pos
	case *appendNode:
		return s.insertDoc(parent, d.left, s.insertDoc(parent, d.right, pos))
	case *ElemNode:
		return s.insertAt(parent, d.El, pos)
	case *embedNode:
		d.dirty = false
		return s.insertDoc(parent, d.current, pos)
	case *staticNode:
		return s.insertAt(parent, d.node, pos)
	case *textNode:
		return s.insertAt(parent, d.text, pos)
	case *treeNode:
		for i := len(d.els) - 1; i >= 0; i-- {
			if it := d.els[i]; it.doc != nil {
				pos = s.insertDoc(parent, it.doc, pos)
			} else {
				pos = s.insertAt(parent, it.node, pos)
			}
		}
		return pos
	}
	return pos
}

func linkElement(el *dom.Node, children docNode) {
	syncer{}.insertDoc(el, children, nil)
}

func linkPrevElement(el *dom.Node, children docNode) {
	syncer{}.insertDoc(el.Parent(), children, el)
}

// insertBeforeDelim inserts d before afterDelim and returns a fresh empty
// text node placed in front of it, to serve as the left delimiter.
func insertBeforeDelim(afterDelim *dom.Node, d docNode) *dom.Node {
	before := dom.NewText("")
	afterDelim.Parent().InsertBefore(before, afterDelim)
	linkPrevElement(afterDelim, d)
	return before
}

func (s syncer) syncElemNode(n *ElemNode) {
	s.syncElement(n)
	s.sync(n.Children)
	if n.render != nil {
		f := n.render
		n.render = nil
		f(n.El)
	}
}

func (s syncer) syncElement(n *ElemNode) {
	n.Attr.Sync(s.animating)
	if hasDirtyChildren(n) {
		s.doSyncElement(n)
	}
}

// doSyncElement removes DOM children the document no longer has, then
// walks the document right to left re-inserting changed parts.
func (s syncer) doSyncElement(n *ElemNode) {
	parent := n.El
	keep := make(map[*dom.Node]struct{})
	for _, c := range docChildren(n) {
		keep[c] = struct{}{}
	}
	for _, c := range domChildren(parent, n.delims) {
		if _, ok := keep[c]; !ok {
			s.remove(parent, c)
		}
	}
	var pos *dom.Node
	if n.delims != nil {
		pos = n.delims[1]
	}
	s.ins(parent, n.Children, pos)
}

// ins positions the document before pos. Unchanged elements are left
// where they are; dirty embeds are inserted afresh.
func (s syncer) ins(parent *dom.Node, d docNode, pos *dom.Node) *dom.Node {
	switch d := d.(type) {
	case nil:
		return pos
	case *appendNode:
		return s.ins(parent, d.left, s.ins(parent, d.right, pos))
	case *ElemNode:
		return d.El
	case *embedNode:
		if d.dirty {
			d.dirty = false
			return s.insertDoc(parent, d.current, pos)
		}
		return s.ins(parent, d.current, pos)
	case *staticNode:
		return d.node
	case *textNode:
		return d.text
	case *treeNode:
		d.dirty = false
		for i := len(d.els) - 1; i >= 0; i-- {
			if it := d.els[i]; it.doc != nil {
				pos = s.ins(parent, it.doc, pos)
			} else {
				pos = it.node
			}
		}
		return pos
	}
	return pos
}

func (s syncer) sync(d docNode) {
	switch d := d.(type) {
	case *appendNode:
		s.sync(d.left)
		s.sync(d.right)
	case *ElemNode:
		s.syncElemNode(d)
	case *embedNode:
		s.sync(d.current)
	case *textNode:
		if d.dirty {
			d.text.Data = d.value
			d.dirty = false
		}
	case *treeNode:
		for _, it := range d.els {
			if it.doc != nil {
				s.sync(it.doc)
			}
		}
		for _, h := range d.holes {
			s.syncElemNode(h)
		}
		for _, a := range d.attrs {
			a.dyn.Sync(s.animating)
		}
		if d.render != nil {
			f := d.render
			d.render = nil
			f()
		}
	}
}
