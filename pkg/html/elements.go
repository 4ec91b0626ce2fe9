package html

import "github.com/vango-dev/ripple/pkg/docs"

// el builds tag from mixed attributes and content.
func el(tag string, items []any) *docs.Elt {
	return docs.ElementMixed(tag, items...)
}

// Form controls carry an El suffix; the two-way bound versions live in
// pkg/docs (docs.Input, docs.Button, docs.Select).

func A(items ...any) *docs.Elt { return el("a", items) }
func Abbr(items ...any) *docs.Elt { return el("abbr", items) }
func Address(items ...any) *docs.Elt { return el("address", items) }
func Article(items ...any) *docs.Elt { return el("article", items) }
func Aside(items ...any) *docs.Elt { return el("aside", items) }
func Audio(items ...any) *docs.Elt { return el("audio", items) }
func B(items ...any) *docs.Elt { return el("b", items) }
func Blockquote(items ...any) *docs.Elt { return el("blockquote", items) }
func Body(items ...any) *docs.Elt { return el("body", items) }
func Br(items ...any) *docs.Elt { return el("br", items) }
func ButtonEl(items ...any) *docs.Elt { return el("button", items) }
func Canvas(items ...any) *docs.Elt { return el("canvas", items) }
func Caption(items ...any) *docs.Elt { return el("caption", items) }
func Cite(items ...any) *docs.Elt { return el("cite", items) }
func Code(items ...any) *docs.Elt { return el("code", items) }
func Col(items ...any) *docs.Elt { return el("col", items) }
func Colgroup(items ...any) *docs.Elt { return el("colgroup", items) }
func Dd(items ...any) *docs.Elt { return el("dd", items) }
func Del(items ...any) *docs.Elt { return el("del", items) }
func Details(items ...any) *docs.Elt { return el("details", items) }
func Dfn(items ...any) *docs.Elt { return el("dfn", items) }
func Dialog(items ...any) *docs.Elt { return el("dialog", items) }
func Div(items ...any) *docs.Elt { return el("div", items) }
func Dl(items ...any) *docs.Elt { return el("dl", items) }
func Dt(items ...any) *docs.Elt { return el("dt", items) }
func Em(items ...any) *docs.Elt { return el("em", items) }
func Fieldset(items ...any) *docs.Elt { return el("fieldset", items) }
func Figcaption(items ...any) *docs.Elt { return el("figcaption", items) }
func Figure(items ...any) *docs.Elt { return el("figure", items) }
func Footer(items ...any) *docs.Elt { return el("footer", items) }
func Form(items ...any) *docs.Elt { return el("form", items) }
func H1(items ...any) *docs.Elt { return el("h1", items) }
func H2(items ...any) *docs.Elt { return el("h2", items) }
func H3(items ...any) *docs.Elt { return el("h3", items) }
func H4(items ...any) *docs.Elt { return el("h4", items) }
func H5(items ...any) *docs.Elt { return el("h5", items) }
func H6(items ...any) *docs.Elt { return el("h6", items) }
func Head(items ...any) *docs.Elt { return el("head", items) }
func Header(items ...any) *docs.Elt { return el("header", items) }
func Hr(items ...any) *docs.Elt { return el("hr", items) }
func I(items ...any) *docs.Elt { return el("i", items) }
func Iframe(items ...any) *docs.Elt { return el("iframe", items) }
func Img(items ...any) *docs.Elt { return el("img", items) }
func InputEl(items ...any) *docs.Elt { return el("input", items) }
func Ins(items ...any) *docs.Elt { return el("ins", items) }
func Kbd(items ...any) *docs.Elt { return el("kbd", items) }
func Label(items ...any) *docs.Elt { return el("label", items) }
func Legend(items ...any) *docs.Elt { return el("legend", items) }
func Li(items ...any) *docs.Elt { return el("li", items) }
func Main(items ...any) *docs.Elt { return el("main", items) }
func Mark(items ...any) *docs.Elt { return el("mark", items) }
func Meta(items ...any) *docs.Elt { return el("meta", items) }
func Nav(items ...any) *docs.Elt { return el("nav", items) }
func Ol(items ...any) *docs.Elt { return el("ol", items) }
func Optgroup(items ...any) *docs.Elt { return el("optgroup", items) }
func Option(items ...any) *docs.Elt { return el("option", items) }
func Output(items ...any) *docs.Elt { return el("output", items) }
func P(items ...any) *docs.Elt { return el("p", items) }
func Pre(items ...any) *docs.Elt { return el("pre", items) }
func Progress(items ...any) *docs.Elt { return el("progress", items) }
func Q(items ...any) *docs.Elt { return el("q", items) }
func S(items ...any) *docs.Elt { return el("s", items) }
func Samp(items ...any) *docs.Elt { return el("samp", items) }
func Section(items ...any) *docs.Elt { return el("section", items) }
func SelectEl(items ...any) *docs.Elt { return el("select", items) }
func Small(items ...any) *docs.Elt { return el("small", items) }
func Span(items ...any) *docs.Elt { return el("span", items) }
func Strong(items ...any) *docs.Elt { return el("strong", items) }
func Sub(items ...any) *docs.Elt { return el("sub", items) }
func Summary(items ...any) *docs.Elt { return el("summary", items) }
func Sup(items ...any) *docs.Elt { return el("sup", items) }
func Table(items ...any) *docs.Elt { return el("table", items) }
func Tbody(items ...any) *docs.Elt { return el("tbody", items) }
func Td(items ...any) *docs.Elt { return el("td", items) }
func TextareaEl(items ...any) *docs.Elt { return el("textarea", items) }
func Tfoot(items ...any) *docs.Elt { return el("tfoot", items) }
func Th(items ...any) *docs.Elt { return el("th", items) }
func Thead(items ...any) *docs.Elt { return el("thead", items) }
func Time(items ...any) *docs.Elt { return el("time", items) }
func Tr(items ...any) *docs.Elt { return el("tr", items) }
func U(items ...any) *docs.Elt { return el("u", items) }
func Ul(items ...any) *docs.Elt { return el("ul", items) }
func Video(items ...any) *docs.Elt { return el("video", items) }
func Wbr(items ...any) *docs.Elt { return el("wbr", items) }

// Svg creates an svg root. Children built with SvgEl share its namespace.
func Svg(items ...any) *docs.Elt { return docs.SvgElementMixed("svg", items...) }

// SvgEl creates any element in the SVG namespace.
func SvgEl(tag string, items ...any) *docs.Elt { return docs.SvgElementMixed(tag, items...) }

// El creates an element with an arbitrary tag.
func El(tag string, items ...any) *docs.Elt { return el(tag, items) }
