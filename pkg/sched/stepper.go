package sched

import (
	"sync"
	"time"
)

// Stepper is a Host driven by hand. Time only moves through Frame and
// Advance, which makes scheduling and animation deterministic in tests.
type Stepper struct {
	// FrameInterval is how far Frame moves the clock.
	FrameInterval time.Duration

	mu     sync.Mutex
	now    time.Time
	tasks  []func()
	frames []func(time.Time)
}

// maxFlushFrames bounds Flush so a never-ending animation fails fast.
const maxFlushFrames = 100_000

// NewStepper creates a Stepper whose clock starts at the Unix epoch.
func NewStepper() *Stepper {
	return &Stepper{
		FrameInterval: DefaultFrameInterval,
		now:           time.Unix(0, 0).UTC(),
	}
}

// Post implements Host.
func (s *Stepper) Post(fn func()) {
	s.mu.Lock()
	s.tasks = append(s.tasks, fn)
	s.mu.Unlock()
}

// RequestFrame implements Host.
func (s *Stepper) RequestFrame(fn func(time.Time)) {
	s.mu.Lock()
	s.frames = append(s.frames, fn)
	s.mu.Unlock()
}

// Now implements Host.
func (s *Stepper) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// Advance moves the clock forward without running anything.
func (s *Stepper) Advance(d time.Duration) {
	s.mu.Lock()
	s.now = s.now.Add(d)
	s.mu.Unlock()
}

// Step runs the oldest queued task and reports whether there was one.
func (s *Stepper) Step() bool {
	s.mu.Lock()
	if len(s.tasks) == 0 {
		s.mu.Unlock()
		return false
	}
	fn := s.tasks[0]
	s.tasks[0] = nil
	s.tasks = s.tasks[1:]
	s.mu.Unlock()

	fn()
	return true
}

// RunPending runs tasks until the queue is empty and returns how many ran.
func (s *Stepper) RunPending() int {
	n := 0
	for s.Step() {
		n++
	}
	return n
}

// Frame advances the clock by one frame, runs the callbacks requested so
// far, then runs pending tasks. It returns the number of frame callbacks.
func (s *Stepper) Frame() int {
	s.mu.Lock()
	s.now = s.now.Add(s.FrameInterval)
	now := s.now
	batch := s.frames
	s.frames = nil
	s.mu.Unlock()

	for _, fn := range batch {
		fn(now)
	}
	s.RunPending()
	return len(batch)
}

// Flush runs tasks and frames until nothing is queued and returns the
// number of frames it stepped through.
func (s *Stepper) Flush() int {
	frames := 0
	for {
		s.RunPending()
		if s.PendingFrames() == 0 {
			return frames
		}
		if frames >= maxFlushFrames {
			panic("sched: Stepper.Flush did not settle")
		}
		s.Frame()
		frames++
	}
}

// PendingTasks returns the number of queued tasks.
func (s *Stepper) PendingTasks() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// PendingFrames returns the number of queued frame callbacks.
func (s *Stepper) PendingFrames() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.frames)
}
