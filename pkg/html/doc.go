// Package html provides shorthand constructors for HTML elements,
// attributes and event handlers.
//
// Every element constructor takes a mix of attributes and content, the
// same items docs.ElementMixed accepts:
//
//	import . "github.com/vango-dev/ripple/pkg/html"
//
//	Div(Class("card"),
//	    H1("Hello ", name),
//	    Button(OnClick(func() { count.Update(inc) }), "+1"),
//	)
//
// Attribute and event helpers return *attr.Attr values, so they compose
// with the dynamic attributes in pkg/attr.
package html
