package rtest

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/ripple/pkg/attr"
	"github.com/vango-dev/ripple/pkg/docs"
	"github.com/vango-dev/ripple/pkg/dom"
	"github.com/vango-dev/ripple/pkg/reactive"
)

func counter(n *reactive.Var[int]) docs.Doc {
	return docs.Concat(
		docs.Element("p", nil, docs.TextView(reactive.Map(n.View(), strconv.Itoa))),
		docs.Button("+1", func() { n.Update(func(x int) int { return x + 1 }) }),
	)
}

func TestHarness_RunAndClick(t *testing.T) {
	h := New(t)
	n := reactive.NewVar(0)
	st := h.Run(counter(n))
	require.NotNil(t, st)

	h.ExpectHTML(`<p>0</p><button>+1</button>`)
	h.Click("button")
	h.Click("button")
	h.ExpectHTML(`<p>2</p><button>+1</button>`)
	assert.Equal(t, 2, n.Get())
}

func TestHarness_Input(t *testing.T) {
	h := New(t)
	name := reactive.NewVar("")
	h.Run(docs.Concat(
		docs.Input(name, attr.Create("id", "name")),
		docs.Element("span", nil, docs.TextView(name.View())),
	))

	h.Input("#name", "ann")
	assert.Equal(t, "ann", name.Get())
	h.ExpectContains("<span>ann</span>")
	h.ExpectNotContains("<span></span>")
}

func TestHarness_Warnings(t *testing.T) {
	h := New(t)
	assert.Nil(t, h.Runtime.RunByID(h.Root, "missing", docs.Text("x")))
	h.ExpectWarning("W004")
	assert.Contains(t, h.Logs(), "W004")
}

func TestHarness_RootTag(t *testing.T) {
	h := New(t, WithRootTag("ul"))
	assert.Equal(t, "ul", h.Root.Tag)
}

func TestRecorder_CoalescesBetweenTicks(t *testing.T) {
	h := New(t)
	v := reactive.NewVar(0)
	rec := Record(h.Scheduler, v.View())
	h.Flush()

	v.Set(5)
	v.Set(10)
	h.Flush()

	assert.Equal(t, []int{0, 10}, rec.Values())
	last, ok := rec.Last()
	assert.True(t, ok)
	assert.Equal(t, 10, last)

	rec.Reset()
	assert.Zero(t, rec.Len())
	_, ok = rec.Last()
	assert.False(t, ok)
}

func TestRecorder_Map2Once(t *testing.T) {
	h := New(t)
	a := reactive.NewVar(1)
	b := reactive.NewVar(2)
	rec := Record(h.Scheduler, reactive.Map2(a.View(), b.View(), func(x, y int) int { return x + y }))
	h.Flush()

	a.Set(10)
	b.Set(20)
	h.Flush()

	assert.Equal(t, []int{3, 30}, rec.Values())
}

func TestHarness_Find(t *testing.T) {
	h := New(t)
	h.Run(docs.Element("div", attr.Class("box"), docs.Text("x")))
	el := h.Find(".box")
	assert.Equal(t, dom.ElementNode, el.Kind)
}
