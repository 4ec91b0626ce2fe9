// Package dom is a small in-process DOM: element, text and comment nodes
// linked into a tree, with the subset of the browser API that the ripple
// reconciler drives.
//
// # Core Types
//
// Node is the only node type; Kind tells elements, text and comments
// apart. Tree edits follow browser semantics: inserting a node that is
// already attached moves it.
//
//	ul := dom.NewElement("ul")
//	li := dom.NewElement("li")
//	li.AppendChild(dom.NewText("one"))
//	ul.AppendChild(li)
//
// # Attributes, properties and styles
//
// Attributes are ordered name/value pairs. Properties are live values such
// as an input's "value" or "checked" that do not show up in markup. Style
// and class helpers keep the "style" and "class" attributes in sync.
//
// # Events
//
// AddEventListener registers a handler; Dispatch delivers an Event to the
// target and then bubbles it up through the ancestors.
//
// # Parsing
//
// ParseHTML turns a fragment of markup into detached nodes using
// golang.org/x/net/html.
//
// Nodes are not safe for concurrent use.
package dom
