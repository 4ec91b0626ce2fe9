package anim

// TransFlags records which kinds of animation a Trans provides.
type TransFlags uint8

const (
	TransChange TransFlags = 1 << iota
	TransEnter
	TransExit
)

// Trans describes how a value animates when it changes, appears and
// disappears.
type Trans[T any] struct {
	change func(x, y T) Anim[T]
	enter  func(T) Anim[T]
	exit   func(T) Anim[T]
	flags  TransFlags
}

// Trivial returns a Trans that never animates.
func Trivial[T any]() Trans[T] {
	return Trans[T]{
		change: func(_, y T) Anim[T] { return Const(y) },
		enter:  Const[T],
		exit:   Const[T],
	}
}

// NewTrans returns a Trans that animates changes with change.
func NewTrans[T any](change func(x, y T) Anim[T]) Trans[T] {
	return Trans[T]{change: change, enter: Const[T], exit: Const[T], flags: TransChange}
}

// CreateTrans returns a Trans with all three animations. enter and exit
// may be nil.
func CreateTrans[T any](change func(x, y T) Anim[T], enter, exit func(T) Anim[T]) Trans[T] {
	tr := NewTrans(change)
	if enter != nil {
		tr = tr.Enter(enter)
	}
	if exit != nil {
		tr = tr.Exit(exit)
	}
	return tr
}

// Change returns a copy of tr that animates changes with ch.
func (tr Trans[T]) Change(ch func(x, y T) Anim[T]) Trans[T] {
	tr.change = ch
	tr.flags |= TransChange
	return tr
}

// Enter returns a copy of tr that animates appearance with f.
func (tr Trans[T]) Enter(f func(T) Anim[T]) Trans[T] {
	tr.enter = f
	tr.flags |= TransEnter
	return tr
}

// Exit returns a copy of tr that animates disappearance with f.
func (tr Trans[T]) Exit(f func(T) Anim[T]) Trans[T] {
	tr.exit = f
	tr.flags |= TransExit
	return tr
}

// Flags returns the animation kinds tr provides.
func (tr Trans[T]) Flags() TransFlags { return tr.flags }

func (tr Trans[T]) CanAnimateChange() bool { return tr.flags&TransChange != 0 }
func (tr Trans[T]) CanAnimateEnter() bool  { return tr.flags&TransEnter != 0 }
func (tr Trans[T]) CanAnimateExit() bool   { return tr.flags&TransExit != 0 }

// AnimateChange returns the animation from x to y.
func (tr Trans[T]) AnimateChange(x, y T) Anim[T] {
	if tr.change == nil {
		return Const(y)
	}
	return tr.change(x, y)
}

// AnimateEnter returns the appearance animation ending at x.
func (tr Trans[T]) AnimateEnter(x T) Anim[T] {
	if tr.enter == nil {
		return Const(x)
	}
	return tr.enter(x)
}

// AnimateExit returns the disappearance animation starting at x.
func (tr Trans[T]) AnimateExit(x T) Anim[T] {
	if tr.exit == nil {
		return Const(x)
	}
	return tr.exit(x)
}
