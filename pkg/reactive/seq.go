package reactive

// MapSeqCachedBy converts each item of a sequence view, reusing the result
// of the previous tick for every key that is still present. conv runs only
// for keys it has not seen on the previous tick.
func MapSeqCachedBy[T any, K comparable, B any](v View[[]T], key func(T) K, conv func(T) B) View[[]B] {
	prev := map[K]B{}
	return Map(v, func(xs []T) []B {
		next := make(map[K]B, len(xs))
		out := make([]B, len(xs))
		for i, x := range xs {
			k := key(x)
			y, ok := prev[k]
			if !ok {
				y = conv(x)
			}
			next[k] = y
			out[i] = y
		}
		prev = next
		return out
	})
}

// MapSeqCached is MapSeqCachedBy keyed on the items themselves.
func MapSeqCached[T comparable, B any](v View[[]T], conv func(T) B) View[[]B] {
	return MapSeqCachedBy(v, func(x T) T { return x }, conv)
}

type seqItem[T, B any] struct {
	v   *Var[T]
	out B
}

// MapSeqCachedViewBy is MapSeqCachedBy for converters that want to react
// to later changes of an item. Each key owns a Var; a key that survives a
// tick keeps its converted result and only has its Var set to the new item.
func MapSeqCachedViewBy[T any, K comparable, B any](v View[[]T], key func(T) K, conv func(K, View[T]) B) View[[]B] {
	prev := map[K]*seqItem[T, B]{}
	return Map(v, func(xs []T) []B {
		next := make(map[K]*seqItem[T, B], len(xs))
		out := make([]B, len(xs))
		for i, x := range xs {
			k := key(x)
			it, ok := prev[k]
			if ok {
				it.v.Set(x)
			} else {
				nv := NewVar(x)
				it = &seqItem[T, B]{v: nv, out: conv(k, nv.View())}
			}
			next[k] = it
			out[i] = it.out
		}
		prev = next
		return out
	})
}

// MapSeqCachedView is MapSeqCachedViewBy keyed on the items themselves.
func MapSeqCachedView[T comparable, B any](v View[[]T], conv func(T, View[T]) B) View[[]B] {
	return MapSeqCachedViewBy(v, func(x T) T { return x }, conv)
}
