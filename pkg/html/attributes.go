package html

import (
	"strconv"
	"strings"

	"github.com/vango-dev/ripple/pkg/attr"
	"github.com/vango-dev/ripple/pkg/reactive"
)

// Identity attributes

// ID sets the id attribute.
func ID(id string) *attr.Attr { return attr.Create("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) *attr.Attr { return attr.Create("class", strings.Join(classes, " ")) }

// StyleAttr sets the whole style attribute.
func StyleAttr(style string) *attr.Attr { return attr.Create("style", style) }

// Data creates a data-* attribute.
// Example: Data("id", "123") → data-id="123"
func Data(key, value string) *attr.Attr { return attr.Create("data-"+key, value) }

// Accessibility attributes

func Role(role string) *attr.Attr { return attr.Create("role", role) }
func AriaLabel(label string) *attr.Attr { return attr.Create("aria-label", label) }
func AriaHidden(hidden bool) *attr.Attr { return boolString("aria-hidden", hidden) }
func AriaExpanded(v bool) *attr.Attr { return boolString("aria-expanded", v) }
func AriaControls(id string) *attr.Attr { return attr.Create("aria-controls", id) }
func AriaLive(mode string) *attr.Attr { return attr.Create("aria-live", mode) }
func AriaCurrent(value string) *attr.Attr { return attr.Create("aria-current", value) }

func boolString(name string, v bool) *attr.Attr {
	return attr.Create(name, strconv.FormatBool(v))
}

// Links and media

func Href(url string) *attr.Attr { return attr.Create("href", url) }
func Target(t string) *attr.Attr { return attr.Create("target", t) }
func Src(url string) *attr.Attr { return attr.Create("src", url) }
func Alt(text string) *attr.Attr { return attr.Create("alt", text) }
func Title(text string) *attr.Attr { return attr.Create("title", text) }

// Form attributes

func Name(name string) *attr.Attr { return attr.Create("name", name) }
func Type(t string) *attr.Attr { return attr.Create("type", t) }
func Placeholder(text string) *attr.Attr { return attr.Create("placeholder", text) }
func For(id string) *attr.Attr { return attr.Create("for", id) }
func Min(v string) *attr.Attr { return attr.Create("min", v) }
func Max(v string) *attr.Attr { return attr.Create("max", v) }
func Step(v string) *attr.Attr { return attr.Create("step", v) }
func Rows(n int) *attr.Attr { return attr.Create("rows", strconv.Itoa(n)) }
func Cols(n int) *attr.Attr { return attr.Create("cols", strconv.Itoa(n)) }
func TabIndex(n int) *attr.Attr { return attr.Create("tabindex", strconv.Itoa(n)) }

// Boolean attributes are written without a value.

func Disabled() *attr.Attr { return attr.Create("disabled", "") }
func Required() *attr.Attr { return attr.Create("required", "") }
func ReadOnly() *attr.Attr { return attr.Create("readonly", "") }
func Autofocus() *attr.Attr { return attr.Create("autofocus", "") }
func Hidden() *attr.Attr { return attr.Create("hidden", "") }

// Style sets one style property.
func Style(name, value string) *attr.Attr { return attr.Style(name, value) }

// Dynamic variants

// AttrView keeps attribute name in sync with v.
func AttrView(name string, v reactive.View[string]) *attr.Attr { return attr.Dynamic(name, v) }

// ClassIf toggles class name while v is true.
func ClassIf(name string, v reactive.View[bool]) *attr.Attr {
	return attr.DynamicClass(name, v, func(b bool) bool { return b })
}

// StyleView keeps style property name in sync with v.
func StyleView(name string, v reactive.View[string]) *attr.Attr { return attr.DynamicStyle(name, v) }

// DisabledIf sets the disabled attribute while v is true.
func DisabledIf(v reactive.View[bool]) *attr.Attr {
	return attr.DynamicPred("disabled", v, reactive.Const(""))
}

// Attrs combines attributes into one.
func Attrs(xs ...*attr.Attr) *attr.Attr { return attr.Concat(xs...) }
