package docs

import (
	"github.com/vango-dev/ripple/pkg/attr"
	"github.com/vango-dev/ripple/pkg/dom"
)

// docNode is the structure behind a Doc. The nil docNode is empty; the
// remaining cases are the types below.
type docNode interface {
	isDocNode()
}

// appendNode places two documents side by side.
type appendNode struct {
	left, right docNode
}

// ElemNode is an element owned by the runtime together with its inserted
// attributes and child document. ElemNodes are compared by identity.
type ElemNode struct {
	Attr     *attr.Dyn
	Children docNode
	El       *dom.Node

	// delims bound the children inside El when the node only owns a
	// range of El's children.
	delims *[2]*dom.Node
	render func(*dom.Node)
}

// embedNode is a slot whose content is replaced wholesale.
type embedNode struct {
	current docNode
	dirty   bool
}

// staticNode is a DOM node that never changes, such as a constant text.
type staticNode struct {
	node *dom.Node
}

// textNode is a text node driven by a View.
type textNode struct {
	text  *dom.Node
	value string
	dirty bool
}

// treeItem is either a plain DOM node of a template or a document that
// replaced one.
type treeItem struct {
	node *dom.Node
	doc  docNode
}

// treeAttr is an attribute inserted into an element of a template.
type treeAttr struct {
	el  *dom.Node
	dyn *attr.Dyn
}

// treeNode is an instantiated template: fixed DOM with holes.
type treeNode struct {
	els    []treeItem
	dirty  bool
	holes  []*ElemNode
	attrs  []treeAttr
	render func()
}

func (*appendNode) isDocNode() {}
func (*ElemNode) isDocNode()   {}
func (*embedNode) isDocNode()  {}
func (*staticNode) isDocNode() {}
func (*textNode) isDocNode()   {}
func (*treeNode) isDocNode()   {}

// Element returns the DOM element of the node.
func (n *ElemNode) Element() *dom.Node { return n.El }

// Delimited reports whether the node owns a delimited range of its
// element's children rather than all of them.
func (n *ElemNode) Delimited() bool { return n.delims != nil }

func newElemNode(el *dom.Node, a *attr.Attr, children docNode) *ElemNode {
	linkElement(el, children)
	dyn := attr.Insert(el, a)
	return &ElemNode{Attr: dyn, Children: children, El: el, render: dyn.AfterRender()}
}

func newDelimitedElemNode(ldelim, rdelim *dom.Node, a *attr.Attr, children docNode) *ElemNode {
	el := ldelim.Parent()
	linkPrevElement(rdelim, children)
	dyn := attr.Insert(el, a)
	return &ElemNode{
		Attr:     dyn,
		Children: children,
		El:       el,
		delims:   &[2]*dom.Node{ldelim, rdelim},
		render:   dyn.AfterRender(),
	}
}

func newTextNode() *textNode {
	return &textNode{text: dom.NewText("")}
}

func (t *textNode) update(s string) {
	t.value = s
	t.dirty = true
}

func (e *embedNode) update(n docNode) {
	e.current = n
	e.dirty = true
}

// docChildren lists the DOM nodes the document places directly under the
// node's element.
func docChildren(n *ElemNode) []*dom.Node {
	var out []*dom.Node
	var walk func(d docNode)
	walk = func(d docNode) {
		switch d := d.(type) {
		case nil:
		case *appendNode:
			walk(d.left)
			walk(d.right)
		case *ElemNode:
			out = append(out, d.El)
		case *embedNode:
			walk(d.current)
		case *staticNode:
			out = append(out, d.node)
		case *textNode:
			out = append(out, d.text)
		case *treeNode:
			for _, it := range d.els {
				if it.doc != nil {
					walk(it.doc)
				} else {
					out = append(out, it.node)
				}
			}
		}
	}
	walk(n.Children)
	return out
}

// domChildren lists the DOM children currently owned by the node: every
// child of el, or only those between the delimiters.
func domChildren(el *dom.Node, delims *[2]*dom.Node) []*dom.Node {
	if delims == nil {
		return el.ChildNodes()
	}
	var out []*dom.Node
	for n := delims[0].NextSibling(); n != nil && n != delims[1]; n = n.NextSibling() {
		out = append(out, n)
	}
	return out
}

func hasDirtyChildren(n *ElemNode) bool {
	var dirty func(d docNode) bool
	dirty = func(d docNode) bool {
		switch d := d.(type) {
		case *appendNode:
			return dirty(d.left) || dirty(d.right)
		case *embedNode:
			return d.dirty || dirty(d.current)
		case *treeNode:
			if d.dirty {
				return true
			}
			for _, it := range d.els {
				if it.doc != nil && dirty(it.doc) {
					return true
				}
			}
			for _, h := range d.holes {
				if hasDirtyChildren(h) {
					return true
				}
			}
		}
		return false
	}
	return dirty(n.Children)
}
