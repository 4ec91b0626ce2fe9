package dom

import (
	"strings"
)

// NodeKind is the node type discriminator.
type NodeKind uint8

const (
	ElementNode NodeKind = iota // <div>, <button>, etc.
	TextNode                    // Character data
	CommentNode                 // <!-- ... -->
)

// String returns the string representation of the NodeKind.
func (k NodeKind) String() string {
	switch k {
	case ElementNode:
		return "Element"
	case TextNode:
		return "Text"
	case CommentNode:
		return "Comment"
	default:
		return "Unknown"
	}
}

// SVGNamespace is the namespace of elements created by NewElementNS for SVG.
const SVGNamespace = "http://www.w3.org/2000/svg"

// Attribute is a single name/value pair.
type Attribute struct {
	Name  string
	Value string
}

// Node is a DOM node.
type Node struct {
	Kind      NodeKind
	Tag       string // lower-case tag name, elements only
	Namespace string // empty for HTML
	Data      string // text and comment content

	attrs     []Attribute
	props     map[string]any
	listeners map[string][]*listener

	parent      *Node
	firstChild  *Node
	lastChild   *Node
	prevSibling *Node
	nextSibling *Node
}

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// NewElement creates a detached HTML element.
func NewElement(tag string) *Node {
	return &Node{Kind: ElementNode, Tag: strings.ToLower(tag)}
}

// NewElementNS creates a detached element in namespace ns.
func NewElementNS(ns, tag string) *Node {
	return &Node{Kind: ElementNode, Tag: tag, Namespace: ns}
}

// NewText creates a detached text node.
func NewText(data string) *Node {
	return &Node{Kind: TextNode, Data: data}
}

// NewComment creates a detached comment node.
func NewComment(data string) *Node {
	return &Node{Kind: CommentNode, Data: data}
}

// IsElement reports whether n is an element.
func (n *Node) IsElement() bool {
	return n != nil && n.Kind == ElementNode
}

// =============================================================================
// Tree navigation
// =============================================================================

func (n *Node) Parent() *Node      { return n.parent }
func (n *Node) FirstChild() *Node  { return n.firstChild }
func (n *Node) LastChild() *Node   { return n.lastChild }
func (n *Node) NextSibling() *Node { return n.nextSibling }
func (n *Node) PrevSibling() *Node { return n.prevSibling }

// ChildNodes returns a snapshot of the children.
func (n *Node) ChildNodes() []*Node {
	var out []*Node
	for c := n.firstChild; c != nil; c = c.nextSibling {
		out = append(out, c)
	}
	return out
}

// Children returns the element children only.
func (n *Node) Children() []*Node {
	var out []*Node
	for c := n.firstChild; c != nil; c = c.nextSibling {
		if c.Kind == ElementNode {
			out = append(out, c)
		}
	}
	return out
}

// Contains reports whether other is n or a descendant of n.
func (n *Node) Contains(other *Node) bool {
	for p := other; p != nil; p = p.parent {
		if p == n {
			return true
		}
	}
	return false
}

// =============================================================================
// Tree edits
// =============================================================================

// AppendChild inserts c as the last child of n.
func (n *Node) AppendChild(c *Node) *Node {
	return n.InsertBefore(c, nil)
}

// InsertBefore inserts c before ref, or at the end when ref is nil. A node
// that already has a parent is moved. Inserting relative to a node that is
// not a child of n, or inserting an ancestor of n, panics.
func (n *Node) InsertBefore(c, ref *Node) *Node {
	if ref != nil && ref.parent != n {
		panic("dom: InsertBefore reference is not a child of this node")
	}
	if c.Contains(n) {
		panic("dom: cannot insert a node into its own subtree")
	}
	if c == ref {
		return c
	}
	if c.parent != nil {
		c.parent.unlink(c)
	}
	c.parent = n
	if ref == nil {
		c.prevSibling = n.lastChild
		if n.lastChild != nil {
			n.lastChild.nextSibling = c
		} else {
			n.firstChild = c
		}
		n.lastChild = c
		return c
	}
	c.nextSibling = ref
	c.prevSibling = ref.prevSibling
	if ref.prevSibling != nil {
		ref.prevSibling.nextSibling = c
	} else {
		n.firstChild = c
	}
	ref.prevSibling = c
	return c
}

// RemoveChild detaches c from n. It returns nil if c is not a child of n.
func (n *Node) RemoveChild(c *Node) *Node {
	if c == nil || c.parent != n {
		return nil
	}
	n.unlink(c)
	return c
}

// ReplaceChild puts repl where old is and detaches old.
func (n *Node) ReplaceChild(repl, old *Node) *Node {
	if old.parent != n {
		return nil
	}
	if repl == old {
		return old
	}
	n.InsertBefore(repl, old)
	n.unlink(old)
	return old
}

// Remove detaches n from its parent, if any.
func (n *Node) Remove() {
	if n.parent != nil {
		n.parent.unlink(n)
	}
}

// RemoveChildren detaches all children of n.
func (n *Node) RemoveChildren() {
	for n.firstChild != nil {
		n.unlink(n.firstChild)
	}
}

func (n *Node) unlink(c *Node) {
	if c.prevSibling != nil {
		c.prevSibling.nextSibling = c.nextSibling
	} else {
		n.firstChild = c.nextSibling
	}
	if c.nextSibling != nil {
		c.nextSibling.prevSibling = c.prevSibling
	} else {
		n.lastChild = c.prevSibling
	}
	c.parent, c.prevSibling, c.nextSibling = nil, nil, nil
}

// =============================================================================
// Text
// =============================================================================

// TextContent returns the concatenated text of n and its descendants.
func (n *Node) TextContent() string {
	switch n.Kind {
	case TextNode, CommentNode:
		return n.Data
	}
	var b strings.Builder
	n.collectText(&b)
	return b.String()
}

func (n *Node) collectText(b *strings.Builder) {
	for c := n.firstChild; c != nil; c = c.nextSibling {
		switch c.Kind {
		case TextNode:
			b.WriteString(c.Data)
		case ElementNode:
			c.collectText(b)
		}
	}
}

// SetTextContent replaces the content of n with s. Elements get a single
// text child, or none when s is empty.
func (n *Node) SetTextContent(s string) {
	if n.Kind != ElementNode {
		n.Data = s
		return
	}
	n.RemoveChildren()
	if s != "" {
		n.AppendChild(NewText(s))
	}
}

// =============================================================================
// Cloning
// =============================================================================

// Clone copies n. Listeners are not copied. With deep set, the subtree is
// copied as well.
func (n *Node) Clone(deep bool) *Node {
	c := &Node{
		Kind:      n.Kind,
		Tag:       n.Tag,
		Namespace: n.Namespace,
		Data:      n.Data,
	}
	if len(n.attrs) > 0 {
		c.attrs = append([]Attribute(nil), n.attrs...)
	}
	if len(n.props) > 0 {
		c.props = make(map[string]any, len(n.props))
		for k, v := range n.props {
			c.props[k] = v
		}
	}
	if deep {
		for ch := n.firstChild; ch != nil; ch = ch.nextSibling {
			c.AppendChild(ch.Clone(true))
		}
	}
	return c
}

// Walk calls fn for n and every descendant in document order. Returning
// false from fn skips the children of that node.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for c := n.firstChild; c != nil; {
		next := c.nextSibling
		c.Walk(fn)
		c = next
	}
}
