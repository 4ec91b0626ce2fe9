package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/vango-dev/ripple/internal/fresh"
	"github.com/vango-dev/ripple/pkg/anim"
	"github.com/vango-dev/ripple/pkg/attr"
	"github.com/vango-dev/ripple/pkg/docs"
	"github.com/vango-dev/ripple/pkg/html"
	"github.com/vango-dev/ripple/pkg/reactive"
)

type todo struct {
	ID    uint64
	Title string
	Done  bool
}

// demoApp is the counter and todo list shared by demo and serve. All
// methods must run on the host loop.
type demoApp struct {
	ids   *fresh.Source
	count *reactive.Var[int]
	draft *reactive.Var[string]
	todos *reactive.ListModel[uint64, todo]
}

func newDemoApp() *demoApp {
	return &demoApp{
		ids:   fresh.New("todo-"),
		count: reactive.NewVar(0),
		draft: reactive.NewVar(""),
		todos: reactive.NewListModel(todoKey),
	}
}

func (a *demoApp) increment() {
	a.count.Update(func(n int) int { return n + 1 })
}

func (a *demoApp) add() {
	title := strings.TrimSpace(a.draft.Get())
	if title == "" {
		return
	}
	a.todos.Add(todo{ID: a.ids.Int(), Title: title})
	a.draft.Set("")
}

func (a *demoApp) toggle(id uint64) {
	a.todos.UpdateBy(id, func(t todo) (todo, bool) {
		t.Done = !t.Done
		return t, true
	})
}

func (a *demoApp) remove(id uint64) {
	a.todos.RemoveByKey(id)
}

func (a *demoApp) clearDone() {
	a.todos.RemoveBy(func(t todo) bool { return t.Done })
}

var fade = anim.CreateTrans(
	func(x, y float64) anim.Anim[float64] {
		return anim.Simple[float64](anim.Float64{}, anim.CubicInOut, 150*time.Millisecond, x, y)
	},
	func(x float64) anim.Anim[float64] {
		return anim.Simple[float64](anim.Float64{}, anim.CubicInOut, 200*time.Millisecond, 0, x)
	},
	func(x float64) anim.Anim[float64] {
		return anim.Simple[float64](anim.Float64{}, anim.CubicInOut, 200*time.Millisecond, x, 0)
	},
)

func opacity(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}

func (a *demoApp) view() docs.Doc {
	todos := a.todos.View()
	return html.Div(html.Class("app"),
		html.H1("ripple"),
		html.P(html.ID("counter"), "count: ", reactive.Map(a.count.View(), strconv.Itoa)),
		docs.Button("+1", a.increment, html.ID("inc")),
		html.Form(html.OnSubmit(a.add),
			docs.Input(a.draft, html.ID("draft"), html.Placeholder("what next?")),
			docs.Button("add", a.add, html.ID("add")),
		),
		html.Ul(html.ID("todos"), docs.ConvertModel(a.todos, a.item)),
		html.P(html.ID("summary"), reactive.Map(todos, summary)),
		docs.Button("clear done", a.clearDone, html.ID("clear"),
			html.DisabledIf(reactive.Map(todos, func(xs []todo) bool { return countDone(xs) == 0 }))),
	)
}

func todoKey(t todo) uint64 { return t.ID }

func (a *demoApp) item(id uint64, v reactive.View[todo]) docs.Doc {
	done := reactive.Map(v, func(t todo) bool { return t.Done })
	return html.Li(html.ID(fmt.Sprintf("todo-%d", id)),
		html.ClassIf("done", done),
		attr.AnimatedStyle("opacity", fade, reactive.Const(1.0), opacity),
		reactive.Map(v, func(t todo) string { return t.Title }),
		" ",
		docs.Button("toggle", func() { a.toggle(id) }, html.ID(fmt.Sprintf("toggle-%d", id))),
		docs.Button("remove", func() { a.remove(id) }, html.ID(fmt.Sprintf("remove-%d", id))),
	)
}

func countDone(xs []todo) int {
	n := 0
	for _, x := range xs {
		if x.Done {
			n++
		}
	}
	return n
}

func summary(xs []todo) string {
	left := len(xs) - countDone(xs)
	return fmt.Sprintf("%s %s left", humanize.Comma(int64(left)), plural(left, "item", "items"))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
