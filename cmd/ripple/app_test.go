package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vango-dev/ripple/pkg/rtest"
)

func TestDemoApp_Counter(t *testing.T) {
	h := rtest.New(t)
	app := newDemoApp()
	h.Run(app.view())

	h.ExpectContains(`<p id="counter">count: 0</p>`)
	h.Click("#inc")
	h.Click("#inc")
	h.ExpectContains(`<p id="counter">count: 2</p>`)
}

func TestDemoApp_Todos(t *testing.T) {
	h := rtest.New(t)
	app := newDemoApp()
	h.Run(app.view())
	h.ExpectContains(`<p id="summary">0 items left</p>`)
	assert.True(t, h.Find("#clear").HasAttribute("disabled"))

	h.Input("#draft", "write docs")
	h.Click("#add")
	h.Input("#draft", "ship it")
	h.Click("#add")
	assert.Equal(t, "", app.draft.Get())
	h.Input("#draft", "   ")
	h.Click("#add")

	assert.Equal(t, 2, app.todos.Len())
	assert.Len(t, h.Root.QuerySelectorAll("li"), 2)
	h.ExpectContains(`<p id="summary">2 items left</p>`)

	first := h.Find("#todo-1")
	h.Click("#toggle-1")
	assert.Same(t, first, h.Find("#todo-1"))
	assert.True(t, first.HasClass("done"))
	assert.False(t, h.Find("#clear").HasAttribute("disabled"))
	h.ExpectContains(`<p id="summary">1 item left</p>`)

	h.Click("#clear")
	assert.Nil(t, h.Root.GetElementByID("todo-1"))
	h.Click("#remove-2")
	assert.Empty(t, h.Root.QuerySelectorAll("li"))
	assert.Empty(t, h.Warnings())
}

func TestDemoApp_FadeOut(t *testing.T) {
	h := rtest.New(t, rtest.WithAnimations(true))
	app := newDemoApp()
	h.Run(app.view())

	h.Input("#draft", "x")
	h.Click("#add")
	assert.Equal(t, "1.00", h.Find("#todo-1").Style("opacity"))

	h.Click("#remove-1")
	assert.Nil(t, h.Root.GetElementByID("todo-1"))
	assert.Positive(t, h.Metrics.Total("ripple_animation_frames_total"))
}
