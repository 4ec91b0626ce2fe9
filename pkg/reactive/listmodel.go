package reactive

// ListModel is a keyed list stored in a Var. Every item has a unique key;
// writes copy the backing slice, so values already read from View are
// never changed afterwards.
type ListModel[K comparable, T any] struct {
	key func(T) K
	v   *Var[[]T]
}

// NewListModel creates a ListModel holding items. When two items share a
// key the later one replaces the earlier in its position.
func NewListModel[K comparable, T any](key func(T) K, items ...T) *ListModel[K, T] {
	m := &ListModel[K, T]{key: key}
	m.v = NewVar(m.dedupe(items))
	return m
}

func (m *ListModel[K, T]) dedupe(items []T) []T {
	out := make([]T, 0, len(items))
	at := make(map[K]int, len(items))
	for _, x := range items {
		k := m.key(x)
		if i, ok := at[k]; ok {
			out[i] = x
			continue
		}
		at[k] = len(out)
		out = append(out, x)
	}
	return out
}

// Key returns the key of x.
func (m *ListModel[K, T]) Key(x T) K { return m.key(x) }

// View follows the items in order.
func (m *ListModel[K, T]) View() View[[]T] { return m.v.View() }

// Var returns the underlying Var.
func (m *ListModel[K, T]) Var() *Var[[]T] { return m.v }

// Items returns the current items. The slice must not be modified.
func (m *ListModel[K, T]) Items() []T { return m.v.Get() }

// Len returns the number of items.
func (m *ListModel[K, T]) Len() int { return len(m.v.Get()) }

func (m *ListModel[K, T]) index(k K) int {
	for i, x := range m.v.Get() {
		if m.key(x) == k {
			return i
		}
	}
	return -1
}

// Set replaces every item.
func (m *ListModel[K, T]) Set(items []T) {
	m.v.Set(m.dedupe(items))
}

// Add appends x, or replaces the item with the same key in place.
func (m *ListModel[K, T]) Add(x T) {
	m.v.Update(func(xs []T) []T {
		out := make([]T, len(xs), len(xs)+1)
		copy(out, xs)
		if i := m.index(m.key(x)); i >= 0 {
			out[i] = x
			return out
		}
		return append(out, x)
	})
}

// Remove removes the item with the same key as x.
func (m *ListModel[K, T]) Remove(x T) {
	m.RemoveByKey(m.key(x))
}

// RemoveByKey removes the item with key k. Nothing happens when there is
// none.
func (m *ListModel[K, T]) RemoveByKey(k K) {
	m.v.UpdateMaybe(func(xs []T) ([]T, bool) {
		i := m.index(k)
		if i < 0 {
			return nil, false
		}
		out := make([]T, 0, len(xs)-1)
		out = append(out, xs[:i]...)
		return append(out, xs[i+1:]...), true
	})
}

// RemoveBy removes every item matching pred.
func (m *ListModel[K, T]) RemoveBy(pred func(T) bool) {
	m.v.UpdateMaybe(func(xs []T) ([]T, bool) {
		out := make([]T, 0, len(xs))
		for _, x := range xs {
			if !pred(x) {
				out = append(out, x)
			}
		}
		return out, len(out) != len(xs)
	})
}

// Clear removes every item.
func (m *ListModel[K, T]) Clear() {
	m.v.Set([]T{})
}

// UpdateBy replaces the item with key k by fn's result. fn returning false
// leaves the list untouched. fn must keep the key.
func (m *ListModel[K, T]) UpdateBy(k K, fn func(T) (T, bool)) {
	m.v.UpdateMaybe(func(xs []T) ([]T, bool) {
		i := m.index(k)
		if i < 0 {
			return nil, false
		}
		y, ok := fn(xs[i])
		if !ok {
			return nil, false
		}
		out := make([]T, len(xs))
		copy(out, xs)
		out[i] = y
		return out, true
	})
}

// UpdateAll replaces every item for which fn reports true.
func (m *ListModel[K, T]) UpdateAll(fn func(T) (T, bool)) {
	m.v.UpdateMaybe(func(xs []T) ([]T, bool) {
		var out []T
		for i, x := range xs {
			y, ok := fn(x)
			if !ok {
				continue
			}
			if out == nil {
				out = make([]T, len(xs))
				copy(out, xs)
			}
			out[i] = y
		}
		return out, out != nil
	})
}

// TryFindByKey returns the item with key k.
func (m *ListModel[K, T]) TryFindByKey(k K) (T, bool) {
	if i := m.index(k); i >= 0 {
		return m.v.Get()[i], true
	}
	var zero T
	return zero, false
}

// ContainsKey reports whether an item has key k.
func (m *ListModel[K, T]) ContainsKey(k K) bool {
	return m.index(k) >= 0
}

// FindByKeyView follows the item with key k. It reports false while there
// is no such item.
func (m *ListModel[K, T]) FindByKeyView(k K) View[Found[T]] {
	return Map(m.v.View(), func(xs []T) Found[T] {
		for _, x := range xs {
			if m.key(x) == k {
				return Found[T]{Value: x, OK: true}
			}
		}
		return Found[T]{}
	})
}

// Found is an optional value.
type Found[T any] struct {
	Value T
	OK    bool
}

// LengthView follows the number of items.
func (m *ListModel[K, T]) LengthView() View[int] {
	return Map(m.v.View(), func(xs []T) int { return len(xs) })
}

// Lens is a Ref to the item with key k. Reads of a missing item return
// the zero value and writes to it leave the items as they are.
func (m *ListModel[K, T]) Lens(k K) Ref[T] {
	return Lens[[]T, T](m.v,
		func(xs []T) T {
			for _, x := range xs {
				if m.key(x) == k {
					return x
				}
			}
			var zero T
			return zero
		},
		func(xs []T, y T) []T {
			for i, x := range xs {
				if m.key(x) == k {
					out := make([]T, len(xs))
					copy(out, xs)
					out[i] = y
					return out
				}
			}
			return xs
		})
}
