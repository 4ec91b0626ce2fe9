package render

import (
	"bytes"
	"io"
	"strings"

	"github.com/vango-dev/ripple/pkg/dom"
)

// Config configures a Renderer.
type Config struct {
	// Pretty puts block-level children on their own indented lines.
	Pretty bool

	// Indent is the string used per depth level in pretty mode.
	// Defaults to two spaces.
	Indent string

	// LiveProperties writes the "value" and "checked" properties as
	// attributes, so the output reflects what a user would see.
	LiveProperties bool
}

// Renderer writes dom nodes as HTML.
type Renderer struct {
	config Config
}

// New creates a Renderer.
func New(config Config) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

var defaultRenderer = New(Config{})

// String renders nodes with the default configuration.
func String(nodes ...*dom.Node) string {
	return defaultRenderer.String(nodes...)
}

// InnerHTML renders the children of n.
func InnerHTML(n *dom.Node) string {
	return defaultRenderer.String(n.ChildNodes()...)
}

// String renders nodes to a string.
func (r *Renderer) String(nodes ...*dom.Node) string {
	var buf bytes.Buffer
	// bytes.Buffer writes do not fail.
	_ = r.Write(&buf, nodes...)
	return buf.String()
}

// Write renders nodes to w, returning the first write error.
func (r *Renderer) Write(w io.Writer, nodes ...*dom.Node) error {
	sw := &stickyWriter{w: w}
	for _, n := range nodes {
		r.node(sw, n, 0)
		if r.config.Pretty && n.IsElement() {
			sw.str("\n")
		}
	}
	return sw.err
}

// stickyWriter remembers the first error and drops later writes.
type stickyWriter struct {
	w   io.Writer
	err error
}

func (s *stickyWriter) str(v string) {
	if s.err != nil {
		return
	}
	_, s.err = io.WriteString(s.w, v)
}

func (r *Renderer) node(w *stickyWriter, n *dom.Node, depth int) {
	if n == nil {
		return
	}
	switch n.Kind {
	case dom.ElementNode:
		r.element(w, n, depth)
	case dom.TextNode:
		if p := n.Parent(); p != nil && rawTextElements[p.Tag] {
			w.str(n.Data)
			return
		}
		w.str(escapeText(n.Data))
	case dom.CommentNode:
		w.str("<!--")
		w.str(n.Data)
		w.str("-->")
	}
}

func (r *Renderer) element(w *stickyWriter, n *dom.Node, depth int) {
	w.str("<")
	w.str(n.Tag)
	for _, a := range r.attributes(n) {
		w.str(" ")
		w.str(a.Name)
		if booleanAttrs[a.Name] && n.Namespace == "" {
			continue
		}
		w.str(`="`)
		w.str(escapeAttr(a.Value))
		w.str(`"`)
	}
	if dom.IsVoidElement(n.Tag) && n.Namespace == "" {
		w.str(">")
		return
	}
	if n.Namespace != "" && n.FirstChild() == nil {
		w.str("/>")
		return
	}
	w.str(">")

	if r.config.LiveProperties && n.Tag == "textarea" {
		w.str(escapeText(n.Value()))
	} else if r.config.Pretty && hasBlockChild(n) {
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			if c.Kind == dom.TextNode && strings.TrimSpace(c.Data) == "" {
				continue
			}
			w.str("\n")
			r.indent(w, depth+1)
			r.node(w, c, depth+1)
		}
		w.str("\n")
		r.indent(w, depth)
	} else {
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			r.node(w, c, depth+1)
		}
	}

	w.str("</")
	w.str(n.Tag)
	w.str(">")
}

// attributes returns the attributes to write for n, overlaying live
// properties when configured.
func (r *Renderer) attributes(n *dom.Node) []dom.Attribute {
	attrs := n.Attributes()
	if !r.config.LiveProperties {
		return attrs
	}
	if v, ok := n.Property("value"); ok && n.Tag != "textarea" {
		if s, ok := v.(string); ok {
			attrs = setAttr(attrs, "value", s, true)
		}
	}
	if v, ok := n.Property("checked"); ok {
		if b, ok := v.(bool); ok {
			attrs = setAttr(attrs, "checked", "", b)
		}
	}
	return attrs
}

func setAttr(attrs []dom.Attribute, name, value string, present bool) []dom.Attribute {
	out := attrs[:0:0]
	found := false
	for _, a := range attrs {
		if a.Name == name {
			found = true
			if present {
				out = append(out, dom.Attribute{Name: name, Value: value})
			}
			continue
		}
		out = append(out, a)
	}
	if !found && present {
		out = append(out, dom.Attribute{Name: name, Value: value})
	}
	return out
}

func hasBlockChild(n *dom.Node) bool {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if c.IsElement() && !inlineElements[c.Tag] {
			return true
		}
	}
	return false
}

func (r *Renderer) indent(w *stickyWriter, depth int) {
	for i := 0; i < depth; i++ {
		w.str(r.config.Indent)
	}
}
