package dom

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ParseHTML parses markup as the content of a <body> element and returns
// the resulting top-level nodes, detached.
func ParseHTML(markup string) ([]*Node, error) {
	return ParseFragment("body", markup)
}

// ParseFragment parses markup as the content of an element with tag
// contextTag.
func ParseFragment(contextTag, markup string) ([]*Node, error) {
	ctx := &html.Node{
		Type:     html.ElementNode,
		Data:     contextTag,
		DataAtom: atom.Lookup([]byte(contextTag)),
	}
	parsed, err := html.ParseFragment(strings.NewReader(markup), ctx)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	out := make([]*Node, 0, len(parsed))
	for _, p := range parsed {
		if n := convert(p); n != nil {
			out = append(out, n)
		}
	}
	return out, nil
}

// MustParseHTML is ParseHTML that panics on error, for static markup.
func MustParseHTML(markup string) []*Node {
	nodes, err := ParseHTML(markup)
	if err != nil {
		panic(err)
	}
	return nodes
}

func convert(p *html.Node) *Node {
	var n *Node
	switch p.Type {
	case html.TextNode:
		return NewText(p.Data)
	case html.CommentNode:
		return NewComment(p.Data)
	case html.ElementNode:
		switch p.Namespace {
		case "":
			n = NewElement(p.Data)
		case "svg":
			n = NewElementNS(SVGNamespace, p.Data)
		default:
			n = NewElementNS(p.Namespace, p.Data)
		}
		for _, a := range p.Attr {
			name := a.Key
			if a.Namespace != "" {
				name = a.Namespace + ":" + a.Key
			}
			n.SetAttribute(name, a.Val)
		}
	default:
		return nil
	}
	for c := p.FirstChild; c != nil; c = c.NextSibling {
		if child := convert(c); child != nil {
			n.AppendChild(child)
		}
	}
	return n
}
