package reactive

import (
	"github.com/vango-dev/ripple/internal/errors"
	"github.com/vango-dev/ripple/pkg/snap"
)

// Ref is a readable and writable reactive location: a Var or a Lens over one.
type Ref[T any] interface {
	Get() T
	Set(T)
	Update(func(T) T)
	View() View[T]
}

// Var is a reactive mutable cell.
type Var[T any] struct {
	value  T
	sn     *snap.Snap[T]
	final  bool
	equal  func(T, T) bool
	warner *errors.Warner
}

// VarOption configures a Var.
type VarOption func(*varConfig)

type varConfig struct {
	equal  func(any, any) bool
	warner *errors.Warner
}

// WithWarner routes the Var's warnings to w instead of the default warner.
func WithWarner(w *errors.Warner) VarOption {
	return func(c *varConfig) {
		c.warner = w
	}
}

// WithEqual makes Set a no-op when the new value equals the current one.
func WithEqual[T any](eq func(a, b T) bool) VarOption {
	return func(c *varConfig) {
		c.equal = func(a, b any) bool { return eq(a.(T), b.(T)) }
	}
}

func newVar[T any](sn *snap.Snap[T], v T, opts []VarOption) *Var[T] {
	var c varConfig
	for _, opt := range opts {
		opt(&c)
	}
	x := &Var[T]{value: v, sn: sn, warner: c.warner}
	if x.warner == nil {
		x.warner = errors.DefaultWarner()
	}
	if c.equal != nil {
		eq := c.equal
		x.equal = func(a, b T) bool { return eq(a, b) }
	}
	return x
}

// NewVar creates a Var holding v.
func NewVar[T any](v T, opts ...VarOption) *Var[T] {
	return newVar(snap.NewReady(v), v, opts)
}

// NewVarWaiting creates a Var whose View stays pending until the first Set.
// Get returns the zero value until then.
func NewVarWaiting[T any](opts ...VarOption) *Var[T] {
	var zero T
	return newVar(snap.NewPending[T](), zero, opts)
}

// Get returns the current value.
func (v *Var[T]) Get() T {
	return v.value
}

// Set replaces the value and obsoletes everything derived from the old one.
func (v *Var[T]) Set(x T) {
	if v.final {
		v.warner.Warn("W001", "op", "Set")
		return
	}
	if v.equal != nil && !v.sn.IsPending() && v.equal(v.value, x) {
		return
	}
	v.replace(x, snap.NewReady(x))
}

// SetFinal sets the value for the last time. Later writes are ignored
// with a W001 warning.
func (v *Var[T]) SetFinal(x T) {
	if v.final {
		v.warner.Warn("W001", "op", "SetFinal")
		return
	}
	v.final = true
	v.replace(x, snap.NewForever(x))
}

// Update sets the value to fn applied to the current one.
func (v *Var[T]) Update(fn func(T) T) {
	if v.final {
		v.warner.Warn("W001", "op", "Update")
		return
	}
	v.Set(fn(v.value))
}

// UpdateMaybe is Update that leaves the Var alone when fn returns false.
func (v *Var[T]) UpdateMaybe(fn func(T) (T, bool)) {
	if v.final {
		v.warner.Warn("W001", "op", "UpdateMaybe")
		return
	}
	if x, ok := fn(v.value); ok {
		v.Set(x)
	}
}

// IsFinal reports whether SetFinal was called.
func (v *Var[T]) IsFinal() bool {
	return v.final
}

// View returns a View that always reflects the current Snap of the Var.
func (v *Var[T]) View() View[T] {
	return View[T]{get: func() *snap.Snap[T] { return v.sn }}
}

// replace installs the new Snap before obsoleting the old one, so anything
// that re-reads during the cascade already sees the new value.
func (v *Var[T]) replace(x T, next *snap.Snap[T]) {
	old := v.sn
	v.value = x
	v.sn = next
	old.MarkObsolete()
}

type lens[A, B any] struct {
	parent Ref[A]
	get    func(A) B
	update func(A, B) A
}

// Lens projects a part of parent as its own Ref. Writes go through update,
// which returns a copy of the parent value with the part replaced.
func Lens[A, B any](parent Ref[A], get func(A) B, update func(A, B) A) Ref[B] {
	return &lens[A, B]{parent: parent, get: get, update: update}
}

func (l *lens[A, B]) Get() B {
	return l.get(l.parent.Get())
}

func (l *lens[A, B]) Set(b B) {
	l.parent.Update(func(a A) A { return l.update(a, b) })
}

func (l *lens[A, B]) Update(fn func(B) B) {
	l.parent.Update(func(a A) A { return l.update(a, fn(l.get(a))) })
}

func (l *lens[A, B]) View() View[B] {
	return Map(l.parent.View(), l.get)
}
