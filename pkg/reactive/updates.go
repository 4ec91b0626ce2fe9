package reactive

// Updates is a stable View whose source can be swapped. Consumers subscribe
// once to View and follow every later Set.
type Updates[T any] struct {
	src  *Var[View[T]]
	view View[T]
}

// NewUpdates creates an Updates following v.
func NewUpdates[T any](v View[T]) *Updates[T] {
	src := NewVar(v)
	return &Updates[T]{
		src:  src,
		view: Join(src.View()),
	}
}

// View returns the stable view.
func (u *Updates[T]) View() View[T] {
	return u.view
}

// Set switches the source.
func (u *Updates[T]) Set(v View[T]) {
	u.src.Set(v)
}

// Current returns the current source.
func (u *Updates[T]) Current() View[T] {
	return u.src.Get()
}
