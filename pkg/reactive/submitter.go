package reactive

// Submitter samples an input view only when Trigger is called, the way a
// form publishes its fields on submit.
type Submitter[T any] struct {
	input   View[T]
	trigger *Var[Unit]
	view    View[T]
}

// NewSubmitter creates a Submitter whose View holds init until the first
// Trigger.
func NewSubmitter[T any](input View[T], init T) *Submitter[T] {
	trigger := NewVar(Unit{})
	return &Submitter[T]{
		input:   input,
		trigger: trigger,
		view:    SnapshotOn(init, trigger.View(), input),
	}
}

// Trigger publishes the current input.
func (s *Submitter[T]) Trigger() {
	s.trigger.Set(Unit{})
}

// View returns the submitted values.
func (s *Submitter[T]) View() View[T] {
	return s.view
}

// Input returns the view being sampled.
func (s *Submitter[T]) Input() View[T] {
	return s.input
}
