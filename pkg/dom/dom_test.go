package dom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(nodes []*Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		if n.Kind == ElementNode {
			out[i] = n.Tag
		} else {
			out[i] = "#" + n.Data
		}
	}
	return out
}

func TestInsertBeforeAndRemove(t *testing.T) {
	p := NewElement("DIV")
	assert.Equal(t, "div", p.Tag)

	a, b, c := NewText("a"), NewText("b"), NewText("c")
	p.AppendChild(a)
	p.AppendChild(c)
	p.InsertBefore(b, c)

	if diff := cmp.Diff([]string{"#a", "#b", "#c"}, names(p.ChildNodes())); diff != "" {
		t.Errorf("children mismatch (-want +got):\n%s", diff)
	}
	assert.Same(t, p, b.Parent())
	assert.Same(t, c, b.NextSibling())
	assert.Same(t, a, b.PrevSibling())
	assert.Same(t, a, p.FirstChild())
	assert.Same(t, c, p.LastChild())

	assert.Same(t, b, p.RemoveChild(b))
	assert.Nil(t, b.Parent())
	assert.Nil(t, p.RemoveChild(b), "removing a non-child is a no-op")
	assert.Equal(t, []string{"#a", "#c"}, names(p.ChildNodes()))

	c.Remove()
	a.Remove()
	assert.Nil(t, p.FirstChild())
	assert.Nil(t, p.LastChild())
}

func TestInsertMovesAttachedNode(t *testing.T) {
	p1, p2 := NewElement("ul"), NewElement("ol")
	x := NewElement("li")
	p1.AppendChild(x)
	p2.AppendChild(x)
	assert.Empty(t, p1.ChildNodes())
	assert.Same(t, p2, x.Parent())

	y := NewElement("li")
	p2.AppendChild(y)
	p2.InsertBefore(y, x)
	assert.Equal(t, []*Node{y, x}, p2.ChildNodes())

	// Re-inserting at the same position leaves the list intact.
	p2.InsertBefore(y, x)
	assert.Equal(t, []*Node{y, x}, p2.ChildNodes())
}

func TestInsertBeforePanicsOnBadReference(t *testing.T) {
	p := NewElement("div")
	stranger := NewElement("span")
	assert.Panics(t, func() { p.InsertBefore(NewText("x"), stranger) })
	assert.Panics(t, func() { p.AppendChild(p) })
}

func TestReplaceChild(t *testing.T) {
	p := NewElement("div")
	old := p.AppendChild(NewText("old"))
	p.AppendChild(NewText("tail"))
	repl := NewText("new")
	assert.Same(t, old, p.ReplaceChild(repl, old))
	assert.Equal(t, []string{"#new", "#tail"}, names(p.ChildNodes()))
	assert.Nil(t, old.Parent())
}

func TestTextContent(t *testing.T) {
	p := NewElement("p")
	p.AppendChild(NewText("Hello, "))
	b := p.AppendChild(NewElement("b"))
	b.AppendChild(NewText("world"))
	p.AppendChild(NewComment("ignored"))
	assert.Equal(t, "Hello, world", p.TextContent())

	p.SetTextContent("plain")
	require.Len(t, p.ChildNodes(), 1)
	assert.Equal(t, "plain", p.TextContent())
	p.SetTextContent("")
	assert.Empty(t, p.ChildNodes())
}

func TestAttributesStylesClasses(t *testing.T) {
	el := NewElement("div")
	el.SetAttribute("id", "main")
	el.SetAttribute("title", "t")
	el.SetAttribute("id", "other")
	assert.Equal(t, []Attribute{{"id", "other"}, {"title", "t"}}, el.Attributes())
	el.RemoveAttribute("title")
	assert.False(t, el.HasAttribute("title"))

	el.SetStyle("color", "red")
	el.SetStyle("width", "10px")
	el.SetStyle("color", "blue")
	assert.Equal(t, "blue", el.Style("color"))
	v, _ := el.GetAttribute("style")
	assert.Equal(t, "color: blue; width: 10px", v)
	el.SetStyle("color", "")
	el.SetStyle("width", "")
	assert.False(t, el.HasAttribute("style"))

	el.AddClass("a")
	el.AddClass("b")
	el.AddClass("a")
	assert.Equal(t, []string{"a", "b"}, el.Classes())
	el.RemoveClass("a")
	assert.True(t, el.HasClass("b"))
	assert.False(t, el.HasClass("a"))
	el.RemoveClass("b")
	assert.False(t, el.HasAttribute("class"))
}

func TestPropertiesAndFormValues(t *testing.T) {
	in := NewElement("input")
	in.SetAttribute("value", "initial")
	assert.Equal(t, "initial", in.Value())
	in.SetValue("typed")
	assert.Equal(t, "typed", in.Value())
	v, _ := in.GetAttribute("value")
	assert.Equal(t, "initial", v, "the property does not touch markup")

	cb := NewElement("input")
	assert.False(t, cb.Checked())
	cb.SetAttribute("checked", "")
	assert.True(t, cb.Checked())
	cb.SetChecked(false)
	assert.False(t, cb.Checked())

	ta := NewElement("textarea")
	ta.AppendChild(NewText("body"))
	assert.Equal(t, "body", ta.Value())
}

func TestEventsBubble(t *testing.T) {
	outer := NewElement("div")
	inner := outer.AppendChild(NewElement("button"))

	var log []string
	outer.AddEventListener("click", func(e *Event) {
		log = append(log, "outer:"+e.Target.Tag+"/"+e.CurrentTarget.Tag)
	})
	remove := inner.AddEventListener("click", func(e *Event) { log = append(log, "inner") })

	inner.Click()
	assert.Equal(t, []string{"inner", "outer:button/div"}, log)

	remove()
	assert.Equal(t, 0, inner.ListenerCount("click"))
	log = nil
	inner.AddEventListener("click", func(e *Event) {
		log = append(log, "stopper")
		e.StopPropagation()
	})
	inner.Click()
	assert.Equal(t, []string{"stopper"}, log)
}

func TestInputDispatch(t *testing.T) {
	in := NewElement("input")
	var seen string
	in.AddEventListener("input", func(e *Event) { seen = e.Target.Value() })
	in.Input("hello")
	assert.Equal(t, "hello", seen)
}

func TestQuerySelectorAll(t *testing.T) {
	nodes, err := ParseHTML(`<div id="root"><p class="x y" ws-hole="a">1</p><span ws-hole="b"></span><p data-k="v">2</p></div>`)
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	root := nodes[0]

	assert.Equal(t, []string{"p", "span"}, names(root.QuerySelectorAll("[ws-hole]")))
	assert.Len(t, root.QuerySelectorAll("p"), 2)
	assert.Len(t, root.QuerySelectorAll("p.x.y"), 1)
	assert.Len(t, root.QuerySelectorAll("[data-k=v]"), 1)
	assert.Len(t, root.QuerySelectorAll(`[data-k="w"]`), 0)
	assert.Len(t, root.QuerySelectorAll("span, [data-k]"), 2)
	assert.Empty(t, root.QuerySelectorAll("#root"), "the receiver itself is not a descendant")
	assert.Same(t, root, root.GetElementByID("root"))
	assert.True(t, root.Matches("div#root"))
	assert.Nil(t, root.QuerySelector("table"))
}

func TestParseHTML(t *testing.T) {
	nodes, err := ParseHTML(`text <b title="t">bold</b><!--c--><svg><circle r="1"></circle></svg>`)
	require.NoError(t, err)
	require.Len(t, nodes, 4)

	assert.Equal(t, TextNode, nodes[0].Kind)
	assert.Equal(t, "text ", nodes[0].Data)
	assert.Equal(t, "b", nodes[1].Tag)
	title, _ := nodes[1].GetAttribute("title")
	assert.Equal(t, "t", title)
	assert.Equal(t, CommentNode, nodes[2].Kind)
	assert.Equal(t, SVGNamespace, nodes[3].Namespace)
	assert.Equal(t, "circle", nodes[3].FirstChild().Tag)
	for _, n := range nodes {
		assert.Nil(t, n.Parent())
	}
}

func TestClone(t *testing.T) {
	src := NewElement("div")
	src.SetAttribute("id", "a")
	src.AppendChild(NewText("x"))
	src.AddEventListener("click", func(*Event) {})

	shallow := src.Clone(false)
	assert.Empty(t, shallow.ChildNodes())
	assert.Equal(t, "a", shallow.ID())

	deep := src.Clone(true)
	assert.Equal(t, "x", deep.TextContent())
	assert.Equal(t, 0, deep.ListenerCount("click"))
	deep.SetAttribute("id", "b")
	assert.Equal(t, "a", src.ID())
	assert.NotSame(t, src.FirstChild(), deep.FirstChild())
}

func TestNodeKindString(t *testing.T) {
	assert.Equal(t, "Element", ElementNode.String())
	assert.Equal(t, "Text", TextNode.String())
	assert.Equal(t, "Comment", CommentNode.String())
	assert.Equal(t, "Unknown", NodeKind(9).String())
	assert.True(t, IsVoidElement("br"))
	assert.False(t, IsVoidElement("div"))
}
