package html

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vango-dev/ripple/pkg/docs"
	"github.com/vango-dev/ripple/pkg/dom"
	"github.com/vango-dev/ripple/pkg/reactive"
	"github.com/vango-dev/ripple/pkg/rtest"
)

func TestElements(t *testing.T) {
	h := rtest.New(t)
	name := reactive.NewVar("ann")
	h.Run(Div(Class("card", "wide"), ID("c1"),
		H1("Hello ", name),
		Ul(Li("a"), Li(Data("k", "2"), "b")),
		Br(),
	))
	h.ExpectHTML(`<div class="card wide" id="c1"><h1>Hello ann</h1><ul><li>a</li><li data-k="2">b</li></ul><br></div>`)

	name.Set("bob")
	h.Flush()
	h.ExpectContains("<h1>Hello bob</h1>")
}

func TestSvg(t *testing.T) {
	h := rtest.New(t)
	h.Run(Svg(Attrs(Type("x")), SvgEl("circle", docs.Empty())))
	h.ExpectHTML(`<svg type="x"><circle/></svg>`)
}

func TestEvents(t *testing.T) {
	h := rtest.New(t)
	count := 0
	var typed, changed string
	submitted := false
	h.Run(Div(
		ButtonEl(OnClick(func() { count++ }), "go"),
		InputEl(ID("in"), OnInput(func(v string) { typed = v }), OnChange(func(v string) { changed = v })),
		Form(OnSubmit(func() { submitted = true })),
	))

	h.Click("button")
	h.Input("#in", "hi")
	h.Find("#in").Dispatch(dom.NewEvent("change"))
	h.Find("form").Dispatch(dom.NewEvent("submit"))

	assert.Equal(t, 1, count)
	assert.Equal(t, "hi", typed)
	assert.Equal(t, "hi", changed)
	assert.True(t, submitted)
}

func TestKeyDown(t *testing.T) {
	h := rtest.New(t)
	var key string
	h.Run(InputEl(OnKeyDown(func(k string) { key = k })))
	ev := dom.NewEvent("keydown")
	ev.Data = map[string]string{"key": "Enter"}
	h.Find("input").Dispatch(ev)
	assert.Equal(t, "Enter", key)
}

func TestDynamicAttributes(t *testing.T) {
	h := rtest.New(t)
	active := reactive.NewVar(false)
	color := reactive.NewVar("red")
	h.Run(Span(ClassIf("on", active.View()), StyleView("color", color.View()), DisabledIf(active.View())))
	h.ExpectHTML(`<span style="color: red"></span>`)

	active.Set(true)
	color.Set("blue")
	h.Flush()
	el := h.Find("span")
	assert.True(t, el.HasClass("on"))
	assert.Equal(t, "blue", el.Style("color"))
	assert.True(t, el.HasAttribute("disabled"))
}

func TestOnMount(t *testing.T) {
	h := rtest.New(t)
	mounted := 0
	h.Run(P(OnMount(func(*dom.Node) { mounted++ }), "x"))
	assert.Equal(t, 1, mounted)
}
