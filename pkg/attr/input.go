package attr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vango-dev/ripple/pkg/dom"
	"github.com/vango-dev/ripple/pkg/reactive"
	"github.com/vango-dev/ripple/pkg/render"
)

type checkedKind uint8

const (
	checkedValid checkedKind = iota
	checkedInvalid
	checkedBlank
)

// CheckedInput is the parsed value of a text input together with the raw
// text it came from. Invalid and blank inputs carry only the text.
type CheckedInput[T any] struct {
	kind  checkedKind
	value T
	input string
}

// Valid is a successfully parsed input.
func Valid[T any](v T, input string) CheckedInput[T] {
	return CheckedInput[T]{kind: checkedValid, value: v, input: input}
}

// Invalid is text that did not parse.
func Invalid[T any](input string) CheckedInput[T] {
	return CheckedInput[T]{kind: checkedInvalid, input: input}
}

// Blank is empty or whitespace-only text.
func Blank[T any](input string) CheckedInput[T] {
	return CheckedInput[T]{kind: checkedBlank, input: input}
}

// MakeChecked wraps v with its default text form.
func MakeChecked[T any](v T) CheckedInput[T] {
	return Valid(v, fmt.Sprint(v))
}

// Input returns the raw text.
func (c CheckedInput[T]) Input() string { return c.input }

// Value returns the parsed value and whether the input was valid.
func (c CheckedInput[T]) Value() (T, bool) { return c.value, c.kind == checkedValid }

func (c CheckedInput[T]) IsValid() bool   { return c.kind == checkedValid }
func (c CheckedInput[T]) IsInvalid() bool { return c.kind == checkedInvalid }
func (c CheckedInput[T]) IsBlank() bool   { return c.kind == checkedBlank }

// CustomVar two-way binds an element to a Ref. set writes a value into the
// element; get reads it back and may report that the element holds nothing
// usable. The Ref is written on change, input and keypress events.
func CustomVar[T comparable](ref reactive.Ref[T], set func(el *dom.Node, v T), get func(el *dom.Node) (T, bool)) *Attr {
	onChange := func(el *dom.Node, _ *dom.Event) {
		if v, ok := get(el); ok && v != ref.Get() {
			ref.Set(v)
		}
	}
	return Concat(
		Handler("change", onChange),
		Handler("input", onChange),
		Handler("keypress", onChange),
		DynamicCustom(func(el *dom.Node, v T) {
			if cur, ok := get(el); ok && cur == v {
				return
			}
			set(el, v)
		}, ref.View()),
	)
}

// CustomValue binds the element's value property through string
// conversions.
func CustomValue[T comparable](ref reactive.Ref[T], toString func(T) string, fromString func(string) (T, bool)) *Attr {
	return CustomVar(ref,
		func(el *dom.Node, v T) { el.SetValue(toString(v)) },
		func(el *dom.Node) (T, bool) { return fromString(el.Value()) },
	)
}

// Value binds the element's value to a string Ref.
func Value(ref reactive.Ref[string]) *Attr {
	return CustomValue(ref,
		func(s string) string { return s },
		func(s string) (string, bool) { return s, true },
	)
}

// Checked binds the checked state of a checkbox or radio button.
func Checked(ref reactive.Ref[bool]) *Attr {
	onSet := func(el *dom.Node, _ *dom.Event) {
		if ref.Get() != el.Checked() {
			ref.Set(el.Checked())
		}
	}
	return Concat(
		DynamicCustom(func(el *dom.Node, v bool) { el.SetChecked(v) }, ref.View()),
		Handler("change", onSet),
		Handler("click", onSet),
	)
}

// IntValue binds an integer input, keeping invalid text visible.
func IntValue(ref reactive.Ref[CheckedInput[int]]) *Attr {
	return checkedValue(ref, strconv.Atoi)
}

// FloatValue binds a floating point input, keeping invalid text visible.
func FloatValue(ref reactive.Ref[CheckedInput[float64]]) *Attr {
	return checkedValue(ref, func(s string) (float64, error) {
		return strconv.ParseFloat(strings.TrimSpace(s), 64)
	})
}

func checkedValue[T comparable](ref reactive.Ref[CheckedInput[T]], parse func(string) (T, error)) *Attr {
	return CustomVar(ref,
		func(el *dom.Node, c CheckedInput[T]) {
			if el.Value() != c.Input() {
				el.SetValue(c.Input())
			}
		},
		func(el *dom.Node) (CheckedInput[T], bool) {
			s := el.Value()
			if strings.TrimSpace(s) == "" {
				return Blank[T](s), true
			}
			v, err := parse(s)
			if err != nil {
				return Invalid[T](s), true
			}
			return Valid(v, s), true
		},
	)
}

// IntValueUnchecked binds an integer input. Blank text reads as 0 and
// unparsable text leaves the Ref unchanged.
func IntValueUnchecked(ref reactive.Ref[int]) *Attr {
	return CustomValue(ref, strconv.Itoa, func(s string) (int, bool) {
		if strings.TrimSpace(s) == "" {
			return 0, true
		}
		i, err := strconv.Atoi(s)
		return i, err == nil
	})
}

// FloatValueUnchecked is IntValueUnchecked for float64.
func FloatValueUnchecked(ref reactive.Ref[float64]) *Attr {
	return CustomValue(ref,
		func(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) },
		func(s string) (float64, bool) {
			if strings.TrimSpace(s) == "" {
				return 0, true
			}
			f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			return f, err == nil
		})
}

// ContentEditableText makes the element editable and binds its text.
func ContentEditableText(ref reactive.Ref[string]) *Attr {
	return Append(Create("contenteditable", "true"), CustomVar(ref,
		func(el *dom.Node, v string) { el.SetTextContent(v) },
		func(el *dom.Node) (string, bool) { return el.TextContent(), true },
	))
}

// ContentEditableHTML makes the element editable and binds its markup.
// Markup that fails to parse leaves the element unchanged.
func ContentEditableHTML(ref reactive.Ref[string]) *Attr {
	return Append(Create("contenteditable", "true"), CustomVar(ref,
		func(el *dom.Node, v string) {
			nodes, err := dom.ParseFragment(el.Tag, v)
			if err != nil {
				return
			}
			el.RemoveChildren()
			for _, n := range nodes {
				el.AppendChild(n)
			}
		},
		func(el *dom.Node) (string, bool) { return render.InnerHTML(el), true },
	))
}
