package docs

import (
	"fmt"
	"strconv"

	"github.com/vango-dev/ripple/pkg/attr"
	"github.com/vango-dev/ripple/pkg/dom"
	"github.com/vango-dev/ripple/pkg/reactive"
)

// Input is a text box bound to ref.
func Input(ref reactive.Ref[string], attrs ...*attr.Attr) *Elt {
	return inputElt("input", attr.Concat(attrs...), attr.Value(ref))
}

// PasswordBox is a password box bound to ref.
func PasswordBox(ref reactive.Ref[string], attrs ...*attr.Attr) *Elt {
	return inputElt("input", attr.Concat(attrs...), attr.Create("type", "password"), attr.Value(ref))
}

// IntInput is a number box that keeps text it cannot parse.
func IntInput(ref reactive.Ref[attr.CheckedInput[int]], attrs ...*attr.Attr) *Elt {
	return inputElt("input", attr.Concat(attrs...), attr.Create("type", "number"), attr.IntValue(ref))
}

// IntInputUnchecked is a number box that ignores text it cannot parse.
func IntInputUnchecked(ref reactive.Ref[int], attrs ...*attr.Attr) *Elt {
	return inputElt("input", attr.Concat(attrs...), attr.Create("type", "number"), attr.IntValueUnchecked(ref))
}

// FloatInput is a number box for floating point values that keeps text
// it cannot parse.
func FloatInput(ref reactive.Ref[attr.CheckedInput[float64]], attrs ...*attr.Attr) *Elt {
	return inputElt("input", attr.Concat(attrs...), attr.Create("type", "number"), attr.FloatValue(ref))
}

// FloatInputUnchecked is FloatInput ignoring text it cannot parse.
func FloatInputUnchecked(ref reactive.Ref[float64], attrs ...*attr.Attr) *Elt {
	return inputElt("input", attr.Concat(attrs...), attr.Create("type", "number"), attr.FloatValueUnchecked(ref))
}

// InputArea is a textarea bound to ref.
func InputArea(ref reactive.Ref[string], attrs ...*attr.Attr) *Elt {
	return inputElt("textarea", attr.Concat(attrs...), attr.Value(ref))
}

func inputElt(tag string, attrs ...*attr.Attr) *Elt {
	return Element(tag, attr.Concat(attrs...))
}

// Button is a button that calls action when clicked.
func Button(caption string, action func(), attrs ...*attr.Attr) *Elt {
	return Element("button",
		attr.Concat(attr.Concat(attrs...), attr.Handler("click", func(*dom.Node, *dom.Event) { action() })),
		Text(caption))
}

// ButtonView is a button that calls action with the current value of v.
func ButtonView[T any](caption string, v reactive.View[T], action func(T), attrs ...*attr.Attr) *Elt {
	return Element("button",
		attr.Concat(attr.Concat(attrs...), attr.HandlerView("click", v, func(_ *dom.Node, _ *dom.Event, x T) { action(x) })),
		Text(caption))
}

// Link is an anchor that calls action instead of navigating.
func Link(caption string, action func(), attrs ...*attr.Attr) *Elt {
	return Element("a",
		attr.Concat(attr.Concat(attrs...),
			attr.Create("href", "#"),
			attr.Handler("click", func(_ *dom.Node, ev *dom.Event) {
				ev.PreventDefault()
				action()
			})),
		Text(caption))
}

// LinkView is a Link whose action receives the current value of v.
func LinkView[T any](caption string, v reactive.View[T], action func(T), attrs ...*attr.Attr) *Elt {
	return Element("a",
		attr.Concat(attr.Concat(attrs...),
			attr.Create("href", "#"),
			attr.HandlerView("click", v, func(_ *dom.Node, ev *dom.Event, x T) {
				ev.PreventDefault()
				action(x)
			})),
		Text(caption))
}

// CheckBox is a checkbox bound to ref.
func CheckBox(ref reactive.Ref[bool], attrs ...*attr.Attr) *Elt {
	return inputElt("input", attr.Concat(attrs...), attr.Create("type", "checkbox"), attr.Checked(ref))
}

// CheckBoxGroup is a checkbox that is checked while item is in the list
// held by ref. Checking adds item; unchecking removes it.
func CheckBoxGroup[T comparable](item T, ref reactive.Ref[[]T], attrs ...*attr.Attr) *Elt {
	member := reactive.Lens(ref,
		func(xs []T) bool { return indexOf(xs, item) >= 0 },
		func(xs []T, on bool) []T {
			i := indexOf(xs, item)
			switch {
			case on && i < 0:
				return append(append([]T(nil), xs...), item)
			case !on && i >= 0:
				out := make([]T, 0, len(xs)-1)
				out = append(out, xs[:i]...)
				return append(out, xs[i+1:]...)
			}
			return xs
		})
	return CheckBox(member, attrs...)
}

func indexOf[T comparable](xs []T, x T) int {
	for i, y := range xs {
		if y == x {
			return i
		}
	}
	return -1
}

// Radio is a radio button that is checked while ref holds value. Radios
// bound to the same ref share a group name.
func Radio[T comparable](value T, ref reactive.Ref[T], attrs ...*attr.Attr) *Elt {
	name := fmt.Sprintf("radio-%p", ref)
	return inputElt("input",
		attr.Concat(attrs...),
		attr.Create("type", "radio"),
		attr.Create("name", name),
		attr.DynamicCustom(func(el *dom.Node, cur T) { el.SetChecked(cur == value) }, ref.View()),
		attr.Handler("click", func(el *dom.Node, _ *dom.Event) {
			if ref.Get() != value {
				ref.Set(value)
			}
		}),
	)
}

// Select is a drop-down list over options. ref holds the selected option.
func Select[T comparable](options []T, show func(T) string, ref reactive.Ref[T], attrs ...*attr.Attr) *Elt {
	return SelectDyn(reactive.Const(options), show, ref, attrs...)
}

// SelectDyn is Select with a changing list of options.
func SelectDyn[T comparable](options reactive.View[[]T], show func(T) string, ref reactive.Ref[T], attrs ...*attr.Attr) *Elt {
	var current []T
	optionDocs := BindView(options, func(xs []T) Doc {
		current = xs
		docs := make([]Doc, len(xs))
		for i, x := range xs {
			x := x // per-iteration copy (go 1.21 loop semantics)
			isSelected := reactive.Map(ref.View(), func(cur T) bool { return cur == x })
			docs[i] = Element("option",
				attr.Concat(
					attr.Create("value", strconv.Itoa(i)),
					attr.DynamicPred("selected", isSelected, reactive.Const("")),
				),
				Text(show(x)))
		}
		return Concat(docs...)
	})
	selected := reactive.Map2(options, ref.View(), func(xs []T, cur T) int {
		return indexOf(xs, cur)
	})
	onChange := func(el *dom.Node, _ *dom.Event) {
		i, ok := selectedIndex(el)
		if ok && i >= 0 && i < len(current) && current[i] != ref.Get() {
			ref.Set(current[i])
		}
	}
	return Element("select",
		attr.Concat(attr.Concat(attrs...),
			attr.DynamicCustom(setSelectedIndex, selected),
			attr.Handler("change", onChange)),
		optionDocs)
}

const selectedIndexProp = "selectedIndex"

func selectedIndex(el *dom.Node) (int, bool) {
	v, ok := el.Property(selectedIndexProp)
	if !ok {
		return 0, false
	}
	i, ok := v.(int)
	return i, ok
}

func setSelectedIndex(el *dom.Node, i int) {
	el.SetProperty(selectedIndexProp, i)
}

// SelectedIndex returns the index of the selected option of a select
// element, or -1.
func SelectedIndex(el *dom.Node) int {
	if i, ok := selectedIndex(el); ok {
		return i
	}
	return -1
}

// SelectOption selects the i-th option of a select element and
// dispatches a change event, the way a user picking it would.
func SelectOption(el *dom.Node, i int) {
	setSelectedIndex(el, i)
	el.Dispatch(dom.NewEvent("change"))
}
