package dom

// Event is delivered to listeners by Dispatch.
type Event struct {
	Type          string
	Target        *Node
	CurrentTarget *Node

	// Data carries event specific payload, such as a key name.
	Data map[string]string

	stopped   bool
	prevented bool
}

// NewEvent creates an event of the given type.
func NewEvent(typ string) *Event {
	return &Event{Type: typ}
}

// StopPropagation prevents the event from reaching further ancestors.
func (e *Event) StopPropagation() {
	e.stopped = true
}

// PreventDefault marks the default action of the event as cancelled.
func (e *Event) PreventDefault() {
	e.prevented = true
}

// DefaultPrevented reports whether PreventDefault was called.
func (e *Event) DefaultPrevented() bool {
	return e.prevented
}

type listener struct {
	fn func(*Event)
}

// AddEventListener registers fn for events of type typ on n and returns a
// function that removes it again.
func (n *Node) AddEventListener(typ string, fn func(*Event)) (remove func()) {
	if n.listeners == nil {
		n.listeners = make(map[string][]*listener)
	}
	l := &listener{fn: fn}
	n.listeners[typ] = append(n.listeners[typ], l)
	return func() {
		ls := n.listeners[typ]
		for i, x := range ls {
			if x == l {
				n.listeners[typ] = append(ls[:i:i], ls[i+1:]...)
				return
			}
		}
	}
}

// ListenerCount returns the number of listeners for typ on n.
func (n *Node) ListenerCount(typ string) int {
	return len(n.listeners[typ])
}

// Dispatch delivers ev to n and then to each ancestor until a listener
// stops propagation.
func (n *Node) Dispatch(ev *Event) {
	ev.Target = n
	for cur := n; cur != nil && !ev.stopped; cur = cur.parent {
		ls := cur.listeners[ev.Type]
		if len(ls) == 0 {
			continue
		}
		ev.CurrentTarget = cur
		for _, l := range append([]*listener(nil), ls...) {
			l.fn(ev)
		}
	}
}

// Click dispatches a click event on n.
func (n *Node) Click() {
	n.Dispatch(NewEvent("click"))
}

// Input sets the value of a form control and dispatches an input event,
// the way typing into it would.
func (n *Node) Input(value string) {
	n.SetValue(value)
	n.Dispatch(NewEvent("input"))
}
