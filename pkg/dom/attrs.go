package dom

import (
	"strings"
)

// GetAttribute returns the value of the named attribute.
func (n *Node) GetAttribute(name string) (string, bool) {
	for _, a := range n.attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// HasAttribute reports whether the named attribute is set.
func (n *Node) HasAttribute(name string) bool {
	_, ok := n.GetAttribute(name)
	return ok
}

// SetAttribute sets an attribute, keeping its position if it already exists.
func (n *Node) SetAttribute(name, value string) {
	for i := range n.attrs {
		if n.attrs[i].Name == name {
			n.attrs[i].Value = value
			return
		}
	}
	n.attrs = append(n.attrs, Attribute{Name: name, Value: value})
}

// RemoveAttribute deletes an attribute.
func (n *Node) RemoveAttribute(name string) {
	for i, a := range n.attrs {
		if a.Name == name {
			n.attrs = append(n.attrs[:i], n.attrs[i+1:]...)
			return
		}
	}
}

// Attributes returns a copy of the attributes in insertion order.
func (n *Node) Attributes() []Attribute {
	return append([]Attribute(nil), n.attrs...)
}

// ID returns the id attribute.
func (n *Node) ID() string {
	id, _ := n.GetAttribute("id")
	return id
}

// =============================================================================
// Properties
// =============================================================================

// SetProperty sets a live property. Properties do not appear in markup.
func (n *Node) SetProperty(name string, v any) {
	if n.props == nil {
		n.props = make(map[string]any)
	}
	n.props[name] = v
}

// Property returns a live property.
func (n *Node) Property(name string) (any, bool) {
	v, ok := n.props[name]
	return v, ok
}

// Value returns the "value" property of a form control, falling back to
// the value attribute, then to the text content for textareas.
func (n *Node) Value() string {
	if v, ok := n.props["value"].(string); ok {
		return v
	}
	if v, ok := n.GetAttribute("value"); ok {
		return v
	}
	if n.Tag == "textarea" {
		return n.TextContent()
	}
	return ""
}

// SetValue sets the "value" property.
func (n *Node) SetValue(v string) {
	n.SetProperty("value", v)
}

// Checked returns the "checked" property, falling back to the attribute.
func (n *Node) Checked() bool {
	if v, ok := n.props["checked"].(bool); ok {
		return v
	}
	return n.HasAttribute("checked")
}

// SetChecked sets the "checked" property.
func (n *Node) SetChecked(v bool) {
	n.SetProperty("checked", v)
}

// =============================================================================
// Style
// =============================================================================

func parseStyle(s string) []Attribute {
	var out []Attribute
	for _, decl := range strings.Split(s, ";") {
		name, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		out = append(out, Attribute{Name: name, Value: strings.TrimSpace(value)})
	}
	return out
}

func formatStyle(decls []Attribute) string {
	parts := make([]string, len(decls))
	for i, d := range decls {
		parts[i] = d.Name + ": " + d.Value
	}
	return strings.Join(parts, "; ")
}

// Style returns one style property.
func (n *Node) Style(name string) string {
	s, _ := n.GetAttribute("style")
	for _, d := range parseStyle(s) {
		if d.Name == name {
			return d.Value
		}
	}
	return ""
}

// SetStyle sets one style property. An empty value removes it.
func (n *Node) SetStyle(name, value string) {
	s, _ := n.GetAttribute("style")
	decls := parseStyle(s)
	found := false
	for i := 0; i < len(decls); i++ {
		if decls[i].Name != name {
			continue
		}
		found = true
		if value == "" {
			decls = append(decls[:i], decls[i+1:]...)
			i--
		} else {
			decls[i].Value = value
		}
	}
	if !found && value != "" {
		decls = append(decls, Attribute{Name: name, Value: value})
	}
	if len(decls) == 0 {
		n.RemoveAttribute("style")
		return
	}
	n.SetAttribute("style", formatStyle(decls))
}

// =============================================================================
// Classes
// =============================================================================

// Classes returns the class list.
func (n *Node) Classes() []string {
	s, _ := n.GetAttribute("class")
	return strings.Fields(s)
}

// HasClass reports whether the class list contains c.
func (n *Node) HasClass(c string) bool {
	for _, x := range n.Classes() {
		if x == c {
			return true
		}
	}
	return false
}

// AddClass adds c to the class list once.
func (n *Node) AddClass(c string) {
	if c == "" || n.HasClass(c) {
		return
	}
	n.SetAttribute("class", strings.Join(append(n.Classes(), c), " "))
}

// RemoveClass removes c from the class list.
func (n *Node) RemoveClass(c string) {
	classes := n.Classes()
	kept := classes[:0]
	for _, x := range classes {
		if x != c {
			kept = append(kept, x)
		}
	}
	if len(kept) == 0 {
		n.RemoveAttribute("class")
		return
	}
	n.SetAttribute("class", strings.Join(kept, " "))
}
