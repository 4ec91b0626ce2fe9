// Package render serializes headless dom trees to HTML.
//
// # Basic Usage
//
//	html := render.String(root)
//
// A Renderer with options controls pretty printing and whether live
// properties (an input's current value, a checkbox's checked state) are
// written out as attributes:
//
//	r := render.New(render.Config{Pretty: true, LiveProperties: true})
//	err := r.Write(w, root)
//
// InnerHTML renders only the children of a node.
//
// # Security
//
// Text and attribute values are escaped. The contents of script and style
// elements are written as-is, which matches how a browser parses them.
package render
