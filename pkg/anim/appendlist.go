package anim

// appendList is a persistent list with constant-time append. nil is the
// empty list.
type appendList[T any] interface {
	appendTo(dst []T) []T
}

type singleList[T any] struct {
	v T
}

type pairList[T any] struct {
	left, right appendList[T]
}

func (l singleList[T]) appendTo(dst []T) []T { return append(dst, l.v) }

func (l pairList[T]) appendTo(dst []T) []T {
	return l.right.appendTo(l.left.appendTo(dst))
}

func single[T any](v T) appendList[T] {
	return singleList[T]{v: v}
}

func appendBoth[T any](a, b appendList[T]) appendList[T] {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return pairList[T]{left: a, right: b}
}

func concatLists[T any](xs []appendList[T]) appendList[T] {
	var out appendList[T]
	for _, x := range xs {
		out = appendBoth(out, x)
	}
	return out
}

func toSlice[T any](l appendList[T]) []T {
	if l == nil {
		return nil
	}
	return l.appendTo(nil)
}
