package docs

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// NodeSet is a set of element nodes. It is a value type; operations
// return new sets.
type NodeSet struct {
	set mapset.Set[*ElemNode]
}

// EmptyNodeSet returns a set with no nodes.
func EmptyNodeSet() NodeSet {
	return NodeSet{set: mapset.NewThreadUnsafeSet[*ElemNode]()}
}

// FindAll collects every element node reachable from the document,
// including nodes nested inside other elements and template holes.
func FindAll(d Doc) NodeSet {
	return findAll(nodeOf(d))
}

func findAll(root docNode) NodeSet {
	s := EmptyNodeSet()
	var walk func(d docNode)
	var walkElem func(n *ElemNode)
	walk = func(d docNode) {
		switch d := d.(type) {
		case *appendNode:
			walk(d.left)
			walk(d.right)
		case *ElemNode:
			walkElem(d)
		case *embedNode:
			walk(d.current)
		case *treeNode:
			for _, it := range d.els {
				if it.doc != nil {
					walk(it.doc)
				}
			}
			for _, h := range d.holes {
				walkElem(h)
			}
		}
	}
	walkElem = func(n *ElemNode) {
		s.set.Add(n)
		walk(n.Children)
	}
	walk(root)
	return s
}

func (s NodeSet) get() mapset.Set[*ElemNode] {
	if s.set == nil {
		return mapset.NewThreadUnsafeSet[*ElemNode]()
	}
	return s.set
}

// Filter returns the nodes for which keep holds.
func (s NodeSet) Filter(keep func(*ElemNode) bool) NodeSet {
	out := EmptyNodeSet()
	s.get().Each(func(n *ElemNode) bool {
		if keep(n) {
			out.set.Add(n)
		}
		return false
	})
	return out
}

// Intersect returns the nodes present in both sets.
func (s NodeSet) Intersect(other NodeSet) NodeSet {
	return NodeSet{set: s.get().Intersect(other.get())}
}

// Except returns the nodes of s that are not in other.
func (s NodeSet) Except(other NodeSet) NodeSet {
	return NodeSet{set: s.get().Difference(other.get())}
}

// Contains reports whether n is in the set.
func (s NodeSet) Contains(n *ElemNode) bool {
	return s.get().Contains(n)
}

// Len returns the number of nodes.
func (s NodeSet) Len() int {
	return s.get().Cardinality()
}

// IsEmpty reports whether the set has no nodes.
func (s NodeSet) IsEmpty() bool {
	return s.Len() == 0
}

// ToSlice returns the nodes in no particular order.
func (s NodeSet) ToSlice() []*ElemNode {
	return s.get().ToSlice()
}
