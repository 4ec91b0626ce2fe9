package dom

import (
	"strings"
)

// selector is one compound selector: tag, #id, .class and [attr] or
// [attr=value] parts, all of which must match.
type selector struct {
	tag     string
	id      string
	classes []string
	attrs   []attrTest
}

type attrTest struct {
	name     string
	value    string
	hasValue bool
}

func parseSelectors(s string) []selector {
	var out []selector
	for _, part := range strings.Split(s, ",") {
		if sel, ok := parseSelector(strings.TrimSpace(part)); ok {
			out = append(out, sel)
		}
	}
	return out
}

func parseSelector(s string) (selector, bool) {
	var sel selector
	if s == "" {
		return sel, false
	}
	i := 0
	readName := func() string {
		start := i
		for i < len(s) && !strings.ContainsRune("#.[", rune(s[i])) {
			i++
		}
		return s[start:i]
	}
	sel.tag = strings.ToLower(readName())
	for i < len(s) {
		switch s[i] {
		case '#':
			i++
			sel.id = readName()
		case '.':
			i++
			sel.classes = append(sel.classes, readName())
		case '[':
			end := strings.IndexByte(s[i:], ']')
			if end < 0 {
				return sel, false
			}
			body := s[i+1 : i+end]
			i += end + 1
			name, value, hasValue := strings.Cut(body, "=")
			value = strings.Trim(value, `"'`)
			sel.attrs = append(sel.attrs, attrTest{name: strings.TrimSpace(name), value: value, hasValue: hasValue})
		default:
			return sel, false
		}
	}
	return sel, true
}

func (sel selector) matches(n *Node) bool {
	if n.Kind != ElementNode {
		return false
	}
	if sel.tag != "" && sel.tag != "*" && !strings.EqualFold(sel.tag, n.Tag) {
		return false
	}
	if sel.id != "" && n.ID() != sel.id {
		return false
	}
	for _, c := range sel.classes {
		if !n.HasClass(c) {
			return false
		}
	}
	for _, t := range sel.attrs {
		v, ok := n.GetAttribute(t.name)
		if !ok || (t.hasValue && v != t.value) {
			return false
		}
	}
	return true
}

// QuerySelectorAll returns the descendants of n matching any of the
// comma-separated compound selectors, in document order. Combinators are
// not supported.
func (n *Node) QuerySelectorAll(selectors string) []*Node {
	sels := parseSelectors(selectors)
	var out []*Node
	for c := n.firstChild; c != nil; c = c.nextSibling {
		c.Walk(func(x *Node) bool {
			for _, sel := range sels {
				if sel.matches(x) {
					out = append(out, x)
					break
				}
			}
			return true
		})
	}
	return out
}

// QuerySelector returns the first match of QuerySelectorAll, or nil.
func (n *Node) QuerySelector(selectors string) *Node {
	if all := n.QuerySelectorAll(selectors); len(all) > 0 {
		return all[0]
	}
	return nil
}

// Matches reports whether n itself matches selectors.
func (n *Node) Matches(selectors string) bool {
	for _, sel := range parseSelectors(selectors) {
		if sel.matches(n) {
			return true
		}
	}
	return false
}

// GetElementByID returns the first element in the subtree of n, n
// included, whose id is id.
func (n *Node) GetElementByID(id string) *Node {
	var found *Node
	n.Walk(func(x *Node) bool {
		if found != nil {
			return false
		}
		if x.Kind == ElementNode && x.ID() == id {
			found = x
			return false
		}
		return true
	})
	return found
}
