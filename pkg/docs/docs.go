package docs

import (
	"context"
	"fmt"

	"github.com/vango-dev/ripple/pkg/attr"
	"github.com/vango-dev/ripple/pkg/dom"
	"github.com/vango-dev/ripple/pkg/reactive"
	"github.com/vango-dev/ripple/pkg/sched"
)

// Doc is a reactive document fragment: a tree of DOM nodes plus a View
// that goes obsolete whenever some part of the tree has changed. A nil Doc
// is treated as Empty.
type Doc interface {
	// Updates goes obsolete whenever the document needs syncing.
	Updates() reactive.View[reactive.Unit]

	node() docNode
}

type doc struct {
	n       docNode
	updates reactive.View[reactive.Unit]
}

func (d *doc) node() docNode                          { return d.n }
func (d *doc) Updates() reactive.View[reactive.Unit] { return d.updates }

func mk(n docNode, updates reactive.View[reactive.Unit]) Doc {
	return &doc{n: n, updates: updates}
}

func nodeOf(d Doc) docNode {
	if d == nil {
		return nil
	}
	return d.node()
}

func updatesOf(d Doc) reactive.View[reactive.Unit] {
	if d == nil {
		return reactive.Const(reactive.Unit{})
	}
	return d.Updates()
}

// Empty is the document with no content.
func Empty() Doc {
	return mk(nil, reactive.Const(reactive.Unit{}))
}

// Text is a constant text node.
func Text(s string) Doc {
	return mk(&staticNode{node: dom.NewText(s)}, reactive.Const(reactive.Unit{}))
}

// TextView is a text node that follows v.
func TextView(v reactive.View[string]) Doc {
	t := newTextNode()
	return mk(t, reactive.Map(v, func(s string) reactive.Unit {
		t.update(s)
		return reactive.Unit{}
	}))
}

// Append places b after a.
func Append(a, b Doc) Doc {
	switch {
	case a == nil:
		return orEmpty(b)
	case b == nil:
		return a
	}
	return mk(&appendNode{left: a.node(), right: b.node()},
		reactive.Map2Unit(a.Updates(), b.Updates()))
}

// Concat places documents one after another.
func Concat(xs ...Doc) Doc {
	switch len(xs) {
	case 0:
		return Empty()
	case 1:
		return orEmpty(xs[0])
	}
	mid := len(xs) / 2
	return Append(Concat(xs[:mid]...), Concat(xs[mid:]...))
}

func orEmpty(d Doc) Doc {
	if d == nil {
		return Empty()
	}
	return d
}

// Element creates an element with attributes and children.
func Element(tag string, a *attr.Attr, children ...Doc) *Elt {
	return newElt(dom.NewElement(tag), a, Concat(children...))
}

// SvgElement creates an element in the SVG namespace.
func SvgElement(tag string, a *attr.Attr, children ...Doc) *Elt {
	return newElt(dom.NewElementNS(dom.SVGNamespace, tag), a, Concat(children...))
}

// ElementMixed creates an element from a mix of attributes and content.
// Accepted items: *attr.Attr, Doc, string, *dom.Node, reactive.View[string],
// reactive.View[Doc], *reactive.Var[string] and fmt.Stringer. nil items are
// skipped and anything else is rendered with fmt.Sprint.
func ElementMixed(tag string, items ...any) *Elt {
	attrs, children := mixed(items)
	return newElt(dom.NewElement(tag), attr.Concat(attrs...), Concat(children...))
}

// SvgElementMixed is ElementMixed in the SVG namespace.
func SvgElementMixed(tag string, items ...any) *Elt {
	attrs, children := mixed(items)
	return newElt(dom.NewElementNS(dom.SVGNamespace, tag), attr.Concat(attrs...), Concat(children...))
}

func mixed(items []any) ([]*attr.Attr, []Doc) {
	var attrs []*attr.Attr
	var children []Doc
	for _, it := range items {
		switch x := it.(type) {
		case nil:
		case *attr.Attr:
			attrs = append(attrs, x)
		case Doc:
			children = append(children, x)
		case string:
			children = append(children, Text(x))
		case *dom.Node:
			children = append(children, Static(x))
		case reactive.View[string]:
			children = append(children, TextView(x))
		case reactive.View[Doc]:
			children = append(children, EmbedView(x))
		case *reactive.Var[string]:
			children = append(children, TextView(x.View()))
		case fmt.Stringer:
			children = append(children, Text(x.String()))
		default:
			children = append(children, Text(fmt.Sprint(x)))
		}
	}
	return attrs, children
}

// Static wraps an existing DOM element without attributes or managed
// children.
func Static(el *dom.Node) *Elt {
	return newElt(el, nil, Empty())
}

// Verbatim parses markup into static nodes. Markup that fails to parse is
// shown as text.
func Verbatim(markup string) Doc {
	nodes, err := dom.ParseHTML(markup)
	if err != nil {
		return Text(markup)
	}
	xs := make([]Doc, len(nodes))
	for i, n := range nodes {
		if n.IsElement() {
			xs[i] = mk(newElemNode(n, nil, nil), reactive.Const(reactive.Unit{}))
		} else {
			xs[i] = mk(&staticNode{node: n}, reactive.Const(reactive.Unit{}))
		}
	}
	return Concat(xs...)
}

// EmbedView shows whichever document v currently holds.
func EmbedView(v reactive.View[Doc]) Doc {
	e := &embedNode{}
	return mk(e, reactive.Bind(v, func(d Doc) reactive.View[reactive.Unit] {
		e.update(nodeOf(d))
		return updatesOf(d)
	}))
}

// BindView shows the document f builds from the current value of v.
func BindView[T any](v reactive.View[T], f func(T) Doc) Doc {
	return EmbedView(reactive.Map(v, f))
}

// Flatten shows a changing list of documents.
func Flatten(v reactive.View[[]Doc]) Doc {
	return EmbedView(reactive.Map(v, func(xs []Doc) Doc { return Concat(xs...) }))
}

// Convert renders a list, reusing the document of every item that was
// already present.
func Convert[T comparable](v reactive.View[[]T], render func(T) Doc) Doc {
	return Flatten(reactive.MapSeqCached(v, render))
}

// ConvertBy is Convert with items identified by key.
func ConvertBy[T any, K comparable](v reactive.View[[]T], key func(T) K, render func(T) Doc) Doc {
	return Flatten(reactive.MapSeqCachedBy(v, key, render))
}

// ConvertSeq renders each item once and hands the renderer a View that
// follows the item.
func ConvertSeq[T comparable](v reactive.View[[]T], render func(reactive.View[T]) Doc) Doc {
	return Flatten(reactive.MapSeqCachedView(v, func(_ T, item reactive.View[T]) Doc {
		return render(item)
	}))
}

// ConvertSeqBy is ConvertSeq with items identified by key.
func ConvertSeqBy[T any, K comparable](v reactive.View[[]T], key func(T) K, render func(K, reactive.View[T]) Doc) Doc {
	return Flatten(reactive.MapSeqCachedViewBy(v, key, render))
}

// ConvertModel renders the items of a ListModel by key, handing the
// renderer a View that follows each item.
func ConvertModel[K comparable, T any](m *reactive.ListModel[K, T], render func(K, reactive.View[T]) Doc) Doc {
	return ConvertSeqBy(m.View(), m.Key, render)
}

// Async shows the document fn produces. Like any pending View it holds
// back the pass of the enclosing run until fn returns. A failure is logged
// to the scheduler's logger and leaves the slot empty.
func Async(s *sched.Scheduler, fn func(context.Context) (Doc, error)) Doc {
	v := reactive.MapAsync(s.Host(), reactive.Const(reactive.Unit{}), func(ctx context.Context, _ reactive.Unit) (Doc, error) {
		return fn(ctx)
	})
	return EmbedView(reactive.TryWith(func(err error) reactive.View[Doc] {
		s.Logger().Error("async doc failed", "error", err)
		return reactive.Const(Empty())
	}, v))
}
