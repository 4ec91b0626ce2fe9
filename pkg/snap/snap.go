package snap

// Unit is the value type of snapshots that only signal change.
type Unit = struct{}

// State identifies which variant a Snap is in.
type State uint8

const (
	StateObsolete State = iota
	StatePending
	StateReady
	StateForever
	StateFailed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateReady:
		return "ready"
	case StateForever:
		return "forever"
	case StateFailed:
		return "failed"
	default:
		return "obsolete"
	}
}

// compactEvery is how many pushes an obsolete queue takes between
// compaction passes.
const compactEvery = 20

// Dependent is anything that must be obsoleted together with a Snap.
type Dependent interface {
	MarkObsolete()
	IsObsolete() bool
}

// obsEntry is either a callback or a dependent snapshot.
type obsEntry struct {
	fn  func()
	dep Dependent
}

type obsQueue struct {
	items []obsEntry
}

func (q *obsQueue) push(e obsEntry) {
	q.items = append(q.items, e)
	if len(q.items)%compactEvery != 0 {
		return
	}
	kept := q.items[:0]
	for _, it := range q.items {
		if it.dep != nil && it.dep.IsObsolete() {
			continue
		}
		kept = append(kept, it)
	}
	for i := len(kept); i < len(q.items); i++ {
		q.items[i] = obsEntry{}
	}
	q.items = kept
}

type waiter[T any] struct {
	ready func(T)
	fail  func(error)
}

// state is the closed set of live Snap variants. A nil state is Obsolete.
type state[T any] interface {
	kind() State
}

type foreverState[T any] struct {
	value T
}

type readyState[T any] struct {
	value T
	obs   *obsQueue
}

type pendingState[T any] struct {
	await []waiter[T]
	obs   *obsQueue
}

type failedState[T any] struct {
	err error
	obs *obsQueue
}

func (*foreverState[T]) kind() State { return StateForever }
func (*readyState[T]) kind() State   { return StateReady }
func (*pendingState[T]) kind() State { return StatePending }
func (*failedState[T]) kind() State  { return StateFailed }

// Snap is a reactive cell. See the package documentation.
type Snap[T any] struct {
	s state[T]
}

// NewForever returns a terminal Snap holding v.
func NewForever[T any](v T) *Snap[T] {
	return &Snap[T]{s: &foreverState[T]{value: v}}
}

// NewReady returns a Snap holding v that may later become obsolete.
func NewReady[T any](v T) *Snap[T] {
	return &Snap[T]{s: &readyState[T]{value: v, obs: &obsQueue{}}}
}

// NewPending returns a Snap waiting for its value.
func NewPending[T any]() *Snap[T] {
	return &Snap[T]{s: &pendingState[T]{obs: &obsQueue{}}}
}

// NewFailed returns a Snap that settled with err.
func NewFailed[T any](err error) *Snap[T] {
	return &Snap[T]{s: &failedState[T]{err: err, obs: &obsQueue{}}}
}

// State reports the current variant.
func (sn *Snap[T]) State() State {
	if sn.s == nil {
		return StateObsolete
	}
	return sn.s.kind()
}

// IsObsolete reports whether the Snap is dead.
func (sn *Snap[T]) IsObsolete() bool {
	return sn.s == nil
}

// IsForever reports whether the Snap is terminal.
func (sn *Snap[T]) IsForever() bool {
	_, ok := sn.s.(*foreverState[T])
	return ok
}

// IsPending reports whether the Snap still waits for its value.
func (sn *Snap[T]) IsPending() bool {
	_, ok := sn.s.(*pendingState[T])
	return ok
}

// IsDone reports whether the Snap has settled with a value or an error.
func (sn *Snap[T]) IsDone() bool {
	switch sn.s.(type) {
	case *foreverState[T], *readyState[T], *failedState[T]:
		return true
	}
	return false
}

// Value returns the held value when the Snap is Ready or Forever.
func (sn *Snap[T]) Value() (T, bool) {
	v, _, ok := sn.valueAndForever()
	return v, ok
}

// Err returns the error of a Failed Snap, or nil.
func (sn *Snap[T]) Err() error {
	if st, ok := sn.s.(*failedState[T]); ok {
		return st.err
	}
	return nil
}

func (sn *Snap[T]) valueAndForever() (v T, forever bool, ok bool) {
	switch st := sn.s.(type) {
	case *foreverState[T]:
		return st.value, true, true
	case *readyState[T]:
		return st.value, false, true
	}
	return v, false, false
}

func (sn *Snap[T]) queue() *obsQueue {
	switch st := sn.s.(type) {
	case *readyState[T]:
		return st.obs
	case *pendingState[T]:
		return st.obs
	case *failedState[T]:
		return st.obs
	}
	return nil
}

// MarkObsolete kills the Snap and runs its obsolete queue, recursively
// obsoleting dependent snapshots. Forever and already obsolete snapshots
// are left alone.
func (sn *Snap[T]) MarkObsolete() {
	q := sn.queue()
	if q == nil {
		return
	}
	sn.s = nil
	for _, e := range q.items {
		if e.dep != nil {
			e.dep.MarkObsolete()
		} else {
			e.fn()
		}
	}
}

// MarkReady settles a Pending Snap with v. Other states are unchanged.
func (sn *Snap[T]) MarkReady(v T) {
	st, ok := sn.s.(*pendingState[T])
	if !ok {
		return
	}
	sn.s = &readyState[T]{value: v, obs: st.obs}
	for _, w := range st.await {
		w.ready(v)
	}
}

// MarkForever settles a Pending Snap with v for good.
func (sn *Snap[T]) MarkForever(v T) {
	st, ok := sn.s.(*pendingState[T])
	if !ok {
		return
	}
	sn.s = &foreverState[T]{value: v}
	for _, w := range st.await {
		w.ready(v)
	}
}

// MarkFailed settles a Pending Snap with err.
func (sn *Snap[T]) MarkFailed(err error) {
	st, ok := sn.s.(*pendingState[T])
	if !ok {
		return
	}
	sn.s = &failedState[T]{err: err, obs: st.obs}
	for _, w := range st.await {
		if w.fail != nil {
			w.fail(err)
		}
	}
}

// MarkDone settles sn with v, as Forever when from is Forever and as
// Ready otherwise.
func MarkDone[T any, S interface{ IsForever() bool }](sn *Snap[T], from S, v T) {
	if from.IsForever() {
		sn.MarkForever(v)
	} else {
		sn.MarkReady(v)
	}
}

// When registers avail for the value, fail for an error, and dep for
// obsolescence. If sn is already obsolete dep is obsoleted immediately.
// dep may be nil.
func (sn *Snap[T]) When(avail func(T), fail func(error), dep Dependent) {
	switch st := sn.s.(type) {
	case nil:
		if dep != nil {
			dep.MarkObsolete()
		}
	case *foreverState[T]:
		avail(st.value)
	case *readyState[T]:
		if dep != nil {
			st.obs.push(obsEntry{dep: dep})
		}
		avail(st.value)
	case *pendingState[T]:
		st.await = append(st.await, waiter[T]{ready: avail, fail: fail})
		if dep != nil {
			st.obs.push(obsEntry{dep: dep})
		}
	case *failedState[T]:
		if dep != nil {
			st.obs.push(obsEntry{dep: dep})
		}
		if fail != nil {
			fail(st.err)
		}
	}
}

// WhenRun is When with a plain callback for obsolescence.
func (sn *Snap[T]) WhenRun(avail func(T), fail func(error), obs func()) {
	switch st := sn.s.(type) {
	case nil:
		obs()
	case *foreverState[T]:
		avail(st.value)
	case *readyState[T]:
		st.obs.push(obsEntry{fn: obs})
		avail(st.value)
	case *pendingState[T]:
		st.await = append(st.await, waiter[T]{ready: avail, fail: fail})
		st.obs.push(obsEntry{fn: obs})
	case *failedState[T]:
		st.obs.push(obsEntry{fn: obs})
		if fail != nil {
			fail(st.err)
		}
	}
}

// WhenReady calls avail with the value, now or once it arrives. Nothing
// happens for obsolete or failed snapshots.
func (sn *Snap[T]) WhenReady(avail func(T)) {
	switch st := sn.s.(type) {
	case *foreverState[T]:
		avail(st.value)
	case *readyState[T]:
		avail(st.value)
	case *pendingState[T]:
		st.await = append(st.await, waiter[T]{ready: avail})
	}
}

// WhenObsolete obsoletes dep together with sn.
func (sn *Snap[T]) WhenObsolete(dep Dependent) {
	if sn.s == nil {
		dep.MarkObsolete()
		return
	}
	if q := sn.queue(); q != nil {
		q.push(obsEntry{dep: dep})
	}
}

// WhenObsoleteRun calls obs when sn becomes obsolete, or now if it
// already is.
func (sn *Snap[T]) WhenObsoleteRun(obs func()) {
	if sn.s == nil {
		obs()
		return
	}
	if q := sn.queue(); q != nil {
		q.push(obsEntry{fn: obs})
	}
}

func (sn *Snap[T]) obsLen() int {
	if q := sn.queue(); q != nil {
		return len(q.items)
	}
	return 0
}
