package docs

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/vango-dev/ripple/internal/errors"
	"github.com/vango-dev/ripple/pkg/attr"
	"github.com/vango-dev/ripple/pkg/dom"
	"github.com/vango-dev/ripple/pkg/reactive"
)

// Template markup attributes.
const (
	attrHole          = "ws-hole"
	attrReplace       = "ws-replace"
	attrAttr          = "ws-attr"
	attrOn            = "ws-on"
	attrOnAfterRender = "ws-onafterrender"
	attrVar           = "ws-var"
	attrAttrHoles     = "ws-attr-holes"
)

// textHoleRE matches ${name} placeholders.
var textHoleRE = regexp.MustCompile(`\$\{([^}]+)\}`)

// Hole fills a named hole of a template.
type Hole interface {
	// HoleName is the name the template refers to, matched case
	// insensitively.
	HoleName() string

	isHole()
}

// EltHole fills a ws-hole or ws-replace with a document.
type EltHole struct {
	Name string
	Doc  Doc
}

// TextHole fills a hole with constant text.
type TextHole struct {
	Name string
	Text string
}

// TextViewHole fills a hole with changing text.
type TextViewHole struct {
	Name string
	View reactive.View[string]
}

// AttrHole fills a ws-attr hole.
type AttrHole struct {
	Name string
	Attr *attr.Attr
}

// EventHole fills a ws-on hole.
type EventHole struct {
	Name    string
	Handler func(el *dom.Node, ev *dom.Event)
}

// AfterRenderHole fills a ws-onafterrender hole.
type AfterRenderHole struct {
	Name        string
	AfterRender func(el *dom.Node)
}

// VarHole binds a ws-var input to a string.
type VarHole struct {
	Name string
	Ref  reactive.Ref[string]
}

// BoolVarHole binds a ws-var checkbox.
type BoolVarHole struct {
	Name string
	Ref  reactive.Ref[bool]
}

// IntVarHole binds a ws-var number input, keeping unparsable text.
type IntVarHole struct {
	Name string
	Ref  reactive.Ref[attr.CheckedInput[int]]
}

// IntUncheckedVarHole binds a ws-var number input.
type IntUncheckedVarHole struct {
	Name string
	Ref  reactive.Ref[int]
}

// FloatVarHole binds a ws-var number input, keeping unparsable text.
type FloatVarHole struct {
	Name string
	Ref  reactive.Ref[attr.CheckedInput[float64]]
}

// FloatUncheckedVarHole binds a ws-var number input.
type FloatUncheckedVarHole struct {
	Name string
	Ref  reactive.Ref[float64]
}

func (h EltHole) HoleName() string               { return h.Name }
func (h TextHole) HoleName() string              { return h.Name }
func (h TextViewHole) HoleName() string          { return h.Name }
func (h AttrHole) HoleName() string              { return h.Name }
func (h EventHole) HoleName() string             { return h.Name }
func (h AfterRenderHole) HoleName() string       { return h.Name }
func (h VarHole) HoleName() string               { return h.Name }
func (h BoolVarHole) HoleName() string           { return h.Name }
func (h IntVarHole) HoleName() string            { return h.Name }
func (h IntUncheckedVarHole) HoleName() string   { return h.Name }
func (h FloatVarHole) HoleName() string          { return h.Name }
func (h FloatUncheckedVarHole) HoleName() string { return h.Name }

func (EltHole) isHole()               {}
func (TextHole) isHole()              {}
func (TextViewHole) isHole()          {}
func (AttrHole) isHole()              {}
func (EventHole) isHole()             {}
func (AfterRenderHole) isHole()       {}
func (VarHole) isHole()               {}
func (BoolVarHole) isHole()           {}
func (IntVarHole) isHole()            {}
func (IntUncheckedVarHole) isHole()   {}
func (FloatVarHole) isHole()          {}
func (FloatUncheckedVarHole) isHole() {}

func formatFloat(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }

func checkedText[T any](c attr.CheckedInput[T]) string { return c.Input() }

// textView returns the text a hole shows, as a View. Holes that carry no
// text report false.
func textView(h Hole) (reactive.View[string], bool) {
	switch h := h.(type) {
	case TextHole:
		return reactive.Const(h.Text), true
	case TextViewHole:
		return h.View, true
	case VarHole:
		return h.Ref.View(), true
	case BoolVarHole:
		return reactive.Map(h.Ref.View(), strconv.FormatBool), true
	case IntVarHole:
		return reactive.Map(h.Ref.View(), checkedText[int]), true
	case IntUncheckedVarHole:
		return reactive.Map(h.Ref.View(), strconv.Itoa), true
	case FloatVarHole:
		return reactive.Map(h.Ref.View(), checkedText[float64]), true
	case FloatUncheckedVarHole:
		return reactive.Map(h.Ref.View(), formatFloat), true
	}
	return reactive.View[string]{}, false
}

// ChildrenTemplate turns the children of root into a document, filling
// the holes marked in the markup. root is consumed: its children move
// into the document.
func ChildrenTemplate(root *dom.Node, holes ...Hole) Doc {
	return childrenTemplate(errors.DefaultWarner(), root, holes)
}

type templateBuilder struct {
	warner      *errors.Warner
	root        *dom.Node
	fill        map[string]Hole
	used        map[string]bool
	els         []treeItem
	holes       []*ElemNode
	attrs       []treeAttr
	updates     []reactive.View[reactive.Unit]
	afterRender []func()
}

func childrenTemplate(w *errors.Warner, root *dom.Node, holes []Hole) Doc {
	b := &templateBuilder{
		warner: w,
		root:   root,
		fill:   make(map[string]Hole, len(holes)),
		used:   make(map[string]bool, len(holes)),
	}
	for _, h := range holes {
		b.fill[strings.ToLower(h.HoleName())] = h
	}
	for _, n := range root.ChildNodes() {
		b.els = append(b.els, treeItem{node: n})
	}

	b.each(attrHole, b.fillHole)
	b.each(attrReplace, b.fillReplace)
	b.each(attrAttr, b.fillAttr)
	b.each(attrOn, b.fillEvents)
	b.each(attrOnAfterRender, b.fillAfterRender)
	b.each(attrVar, b.fillVar)
	b.each(attrAttrHoles, b.fillAttrHoles)
	b.warnUnused(holes)

	tree := &treeNode{els: b.els, dirty: true, holes: b.holes, attrs: b.attrs}
	if len(b.afterRender) > 0 {
		fs := b.afterRender
		tree.render = func() {
			for _, f := range fs {
				f()
			}
		}
	}
	updates := reduceUnits(b.updates)
	if len(b.els) == 1 && b.els[0].doc == nil && b.els[0].node.IsElement() {
		return newTreeElt(tree, updates)
	}
	return mk(tree, updates)
}

// each calls f for every element under the root carrying the attribute,
// skipping elements a previous fill has removed.
func (b *templateBuilder) each(name string, f func(el *dom.Node, value string)) {
	for _, el := range b.root.QuerySelectorAll("[" + name + "]") {
		if !b.root.Contains(el) {
			continue
		}
		v, _ := el.GetAttribute(name)
		f(el, v)
	}
}

func (b *templateBuilder) lookup(name string) (Hole, bool) {
	key := strings.ToLower(name)
	h, ok := b.fill[key]
	if ok {
		b.used[key] = true
	}
	return h, ok
}

// warnUnused reports every supplied hole the markup never refers to.
func (b *templateBuilder) warnUnused(holes []Hole) {
	for _, h := range holes {
		key := strings.ToLower(h.HoleName())
		if b.used[key] {
			continue
		}
		b.used[key] = true
		b.warner.Warn("W006", "hole", h.HoleName())
	}
}

func (b *templateBuilder) docHole(name string) (Doc, bool) {
	h, ok := b.lookup(name)
	if !ok {
		return nil, false
	}
	if eh, ok := h.(EltHole); ok {
		return orEmpty(eh.Doc), true
	}
	if v, ok := textView(h); ok {
		if th, ok := h.(TextHole); ok {
			return Text(th.Text), true
		}
		return TextView(v), true
	}
	b.warner.Warn("W002", "hole", name, "expected", "content")
	return nil, false
}

func (b *templateBuilder) addAttr(el *dom.Node, a *attr.Attr) {
	dyn := attr.Insert(el, a)
	b.updates = append(b.updates, dyn.Updates())
	b.attrs = append(b.attrs, treeAttr{el: el, dyn: dyn})
	if f := dyn.AfterRender(); f != nil {
		b.afterRender = append(b.afterRender, func() { f(el) })
	}
}

func (b *templateBuilder) fillHole(p *dom.Node, name string) {
	p.RemoveAttribute(attrHole)
	p.RemoveChildren()
	d, ok := b.docHole(name)
	if !ok {
		return
	}
	n := nodeOf(d)
	linkElement(p, n)
	b.holes = append(b.holes, &ElemNode{Attr: attr.Empty(p), Children: n, El: p})
	b.updates = append(b.updates, d.Updates())
}

func (b *templateBuilder) fillReplace(e *dom.Node, name string) {
	d, ok := b.docHole(name)
	if !ok {
		return
	}
	n := nodeOf(d)
	b.updates = append(b.updates, d.Updates())
	for i, it := range b.els {
		if it.node == e {
			b.root.RemoveChild(e)
			b.els[i] = treeItem{doc: n}
			return
		}
	}
	p := e.Parent()
	after := dom.NewText("")
	p.ReplaceChild(after, e)
	before := insertBeforeDelim(after, n)
	b.holes = append(b.holes, &ElemNode{
		Attr:     attr.Empty(p),
		Children: n,
		El:       p,
		delims:   &[2]*dom.Node{before, after},
	})
}

func (b *templateBuilder) fillAttr(el *dom.Node, name string) {
	el.RemoveAttribute(attrAttr)
	h, ok := b.lookup(name)
	if !ok {
		return
	}
	ah, ok := h.(AttrHole)
	if !ok {
		b.warner.Warn("W002", "hole", name, "expected", "attr")
		return
	}
	b.addAttr(el, ah.Attr)
}

func (b *templateBuilder) fillEvents(el *dom.Node, value string) {
	el.RemoveAttribute(attrOn)
	var handlers []*attr.Attr
	for _, spec := range strings.Fields(value) {
		event, name, ok := strings.Cut(spec, ":")
		if !ok {
			continue
		}
		h, ok := b.lookup(name)
		if !ok {
			continue
		}
		eh, ok := h.(EventHole)
		if !ok {
			b.warner.Warn("W002", "hole", name, "expected", "event", "event", event)
			continue
		}
		handlers = append(handlers, attr.Handler(event, eh.Handler))
	}
	if len(handlers) > 0 {
		b.addAttr(el, attr.Concat(handlers...))
	}
}

func (b *templateBuilder) fillAfterRender(el *dom.Node, name string) {
	h, ok := b.lookup(name)
	if !ok {
		return
	}
	ah, ok := h.(AfterRenderHole)
	if !ok {
		b.warner.Warn("W002", "hole", name, "expected", "afterrender")
		return
	}
	el.RemoveAttribute(attrOnAfterRender)
	b.addAttr(el, attr.OnAfterRender(ah.AfterRender))
}

func (b *templateBuilder) fillVar(el *dom.Node, name string) {
	el.RemoveAttribute(attrVar)
	h, ok := b.lookup(name)
	if !ok {
		return
	}
	var a *attr.Attr
	switch h := h.(type) {
	case VarHole:
		a = attr.Value(h.Ref)
	case BoolVarHole:
		a = attr.Checked(h.Ref)
	case IntVarHole:
		a = attr.IntValue(h.Ref)
	case IntUncheckedVarHole:
		a = attr.IntValueUnchecked(h.Ref)
	case FloatVarHole:
		a = attr.FloatValue(h.Ref)
	case FloatUncheckedVarHole:
		a = attr.FloatValueUnchecked(h.Ref)
	default:
		b.warner.Warn("W002", "hole", name, "expected", "var")
		return
	}
	b.addAttr(el, a)
}

func (b *templateBuilder) fillAttrHoles(el *dom.Node, value string) {
	el.RemoveAttribute(attrAttrHoles)
	for _, name := range strings.Fields(value) {
		raw, _ := el.GetAttribute(name)
		b.addAttr(el, b.placeholderAttr(name, raw))
	}
}

// placeholderAttr builds the attribute for a value with ${hole}
// placeholders. Constant pieces are folded into plain text.
func (b *templateBuilder) placeholderAttr(name, raw string) *attr.Attr {
	var (
		parts []reactive.View[string]
		text  strings.Builder
	)
	flush := func() {
		if text.Len() > 0 {
			parts = append(parts, reactive.Const(text.String()))
			text.Reset()
		}
	}
	last := 0
	for _, m := range textHoleRE.FindAllStringSubmatchIndex(raw, -1) {
		text.WriteString(raw[last:m[0]])
		last = m[1]
		hole := raw[m[2]:m[3]]
		h, ok := b.lookup(hole)
		if !ok {
			b.warner.Warn("W003", "hole", hole, "attr", name)
			continue
		}
		if th, ok := h.(TextHole); ok {
			text.WriteString(th.Text)
			continue
		}
		v, ok := textView(h)
		if !ok {
			b.warner.Warn("W003", "hole", hole, "attr", name)
			continue
		}
		flush()
		parts = append(parts, v)
	}
	text.WriteString(raw[last:])

	if len(parts) == 0 {
		return attr.Create(name, text.String())
	}
	flush()
	return attr.Dynamic(name, reactive.Map(reactive.Sequence(parts), func(xs []string) string {
		return strings.Join(xs, "")
	}))
}
