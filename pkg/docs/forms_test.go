package docs

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/ripple/pkg/attr"
	"github.com/vango-dev/ripple/pkg/dom"
	"github.com/vango-dev/ripple/pkg/reactive"
)

func TestInput_TwoWay(t *testing.T) {
	h := newHarness(t, false)
	v := reactive.NewVar("hi")
	in := Input(v, attr.Create("name", "q"))
	h.run(in)
	assert.Equal(t, `<input name="q">`, h.html())
	assert.Equal(t, "hi", in.Element().Value())

	in.Element().Input("yo")
	assert.Equal(t, "yo", v.Get())

	v.Set("set")
	h.flush()
	assert.Equal(t, "set", in.Element().Value())
}

func TestPasswordAndTextArea(t *testing.T) {
	h := newHarness(t, false)
	pw := reactive.NewVar("")
	body := reactive.NewVar("text")
	h.run(Concat(PasswordBox(pw), InputArea(body)))
	assert.Equal(t, `<input type="password"><textarea></textarea>`, h.html())
	assert.Equal(t, "text", h.root.QuerySelector("textarea").Value())
}

func TestIntInput(t *testing.T) {
	h := newHarness(t, false)
	v := reactive.NewVar(attr.MakeChecked(5))
	in := IntInput(v)
	h.run(in)
	assert.Equal(t, "5", in.Element().Value())

	in.Element().Input("abc")
	assert.True(t, v.Get().IsInvalid())
	assert.Equal(t, "abc", v.Get().Input())

	in.Element().Input("12")
	n, ok := v.Get().Value()
	require.True(t, ok)
	assert.Equal(t, 12, n)
}

func TestFloatInputUnchecked(t *testing.T) {
	h := newHarness(t, false)
	v := reactive.NewVar(1.5)
	in := FloatInputUnchecked(v)
	h.run(in)
	in.Element().Input("2.25")
	assert.Equal(t, 2.25, v.Get())
	in.Element().Input("junk")
	assert.Equal(t, 2.25, v.Get())
}

func TestButtonAndLink(t *testing.T) {
	h := newHarness(t, false)
	count := 0
	label := reactive.NewVar("L")
	var got []string
	b := Button("Add", func() { count++ })
	bv := ButtonView("Show", label.View(), func(s string) { got = append(got, "button "+s) })
	l := Link("More", func() { count += 10 })
	lv := LinkView("Open", label.View(), func(s string) { got = append(got, "link "+s) })
	h.run(Concat(b, bv, l, lv))
	assert.Equal(t, `<button>Add</button><button>Show</button><a href="#">More</a><a href="#">Open</a>`, h.html())

	b.Element().Click()
	ev := dom.NewEvent("click")
	l.Element().Dispatch(ev)
	assert.Equal(t, 11, count)
	assert.True(t, ev.DefaultPrevented())

	bv.Element().Click()
	lv.Element().Click()
	assert.Equal(t, []string{"button L", "link L"}, got)
}

func TestCheckBox(t *testing.T) {
	h := newHarness(t, false)
	v := reactive.NewVar(true)
	cb := CheckBox(v)
	h.run(cb)
	assert.True(t, cb.Element().Checked())

	cb.Element().SetChecked(false)
	cb.Element().Dispatch(dom.NewEvent("change"))
	assert.False(t, v.Get())
}

func TestCheckBoxGroup(t *testing.T) {
	h := newHarness(t, false)
	list := reactive.NewVar([]string{"a"})
	a := CheckBoxGroup("a", list)
	b := CheckBoxGroup("b", list)
	h.run(Concat(a, b))
	assert.True(t, a.Element().Checked())
	assert.False(t, b.Element().Checked())

	b.Element().SetChecked(true)
	b.Element().Dispatch(dom.NewEvent("change"))
	assert.Equal(t, []string{"a", "b"}, list.Get())

	a.Element().SetChecked(false)
	a.Element().Dispatch(dom.NewEvent("change"))
	assert.Equal(t, []string{"b"}, list.Get())
}

func TestRadio(t *testing.T) {
	h := newHarness(t, false)
	v := reactive.NewVar("a")
	ra := Radio("a", v)
	rb := Radio("b", v)
	h.run(Concat(ra, rb))
	nameA, _ := ra.Element().GetAttribute("name")
	nameB, _ := rb.Element().GetAttribute("name")
	assert.Equal(t, nameA, nameB)
	assert.True(t, ra.Element().Checked())
	assert.False(t, rb.Element().Checked())

	rb.Element().Click()
	assert.Equal(t, "b", v.Get())
	h.flush()
	assert.False(t, ra.Element().Checked())
	assert.True(t, rb.Element().Checked())
}

func TestSelect(t *testing.T) {
	h := newHarness(t, false)
	v := reactive.NewVar("y")
	sel := Select([]string{"x", "y", "z"}, strings.ToUpper, v)
	h.run(sel)
	assert.Equal(t,
		`<select><option value="0">X</option><option value="1" selected>Y</option><option value="2">Z</option></select>`,
		h.html())
	assert.Equal(t, 1, SelectedIndex(sel.Element()))

	SelectOption(sel.Element(), 2)
	assert.Equal(t, "z", v.Get())
	h.flush()
	opts := sel.Element().QuerySelectorAll("option")
	require.Len(t, opts, 3)
	assert.False(t, opts[1].HasAttribute("selected"))
	assert.True(t, opts[2].HasAttribute("selected"))
}

func TestSelectDyn_OptionsChange(t *testing.T) {
	h := newHarness(t, false)
	options := reactive.NewVar([]int{1, 2})
	v := reactive.NewVar(2)
	sel := SelectDyn(options.View(), func(i int) string { return strings.Repeat("*", i) }, v)
	h.run(sel)
	assert.Equal(t, 1, SelectedIndex(sel.Element()))

	options.Set([]int{2, 3, 1})
	h.flush()
	assert.Equal(t, 0, SelectedIndex(sel.Element()))
	assert.Len(t, sel.Element().QuerySelectorAll("option"), 3)
}
