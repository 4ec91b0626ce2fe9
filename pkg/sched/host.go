package sched

import (
	"context"
	"errors"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"
)

// Host is the event loop the runtime is attached to.
type Host interface {
	// Post queues fn to run after the current task. Safe to call from any
	// goroutine.
	Post(fn func())

	// RequestFrame queues fn to run on the next frame with the frame time.
	RequestFrame(fn func(now time.Time))

	// Now returns the host clock.
	Now() time.Time
}

// ErrStopped is returned by Loop.Do once Run has returned.
var ErrStopped = errors.New("sched: loop stopped")

// DefaultFrameInterval is the frame period of a Loop.
const DefaultFrameInterval = 16 * time.Millisecond

// Loop is a Host backed by one worker goroutine started with Run.
type Loop struct {
	logger   *slog.Logger
	interval time.Duration

	mu     sync.Mutex
	tasks  []func()
	frames []func(time.Time)
	wake   chan struct{}

	stopped  chan struct{}
	stopOnce sync.Once
}

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithLoopLogger sets the logger used for task panics.
func WithLoopLogger(logger *slog.Logger) LoopOption {
	return func(l *Loop) {
		l.logger = logger
	}
}

// WithFrameInterval sets the frame period.
func WithFrameInterval(d time.Duration) LoopOption {
	return func(l *Loop) {
		if d > 0 {
			l.interval = d
		}
	}
}

// NewLoop creates a Loop. It does nothing until Run is called.
func NewLoop(opts ...LoopOption) *Loop {
	l := &Loop{
		logger:   slog.Default(),
		interval: DefaultFrameInterval,
		wake:     make(chan struct{}, 1),
		stopped:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Post implements Host.
func (l *Loop) Post(fn func()) {
	l.mu.Lock()
	l.tasks = append(l.tasks, fn)
	l.mu.Unlock()
	l.signal()
}

// RequestFrame implements Host.
func (l *Loop) RequestFrame(fn func(time.Time)) {
	l.mu.Lock()
	l.frames = append(l.frames, fn)
	l.mu.Unlock()
	l.signal()
}

// Now implements Host.
func (l *Loop) Now() time.Time {
	return time.Now()
}

func (l *Loop) signal() {
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Run processes tasks and frames until ctx is cancelled. A Loop runs
// once: after Run returns, Do fails with ErrStopped.
func (l *Loop) Run(ctx context.Context) error {
	var (
		timer  *time.Timer
		frameC <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
		l.stopOnce.Do(func() { close(l.stopped) })
	}()

	for {
		l.drain()

		l.mu.Lock()
		wantFrame := len(l.frames) > 0
		l.mu.Unlock()
		if wantFrame && frameC == nil {
			timer = time.NewTimer(l.interval)
			frameC = timer.C
		}

		select {
		case <-ctx.Done():
			return nil
		case <-l.wake:
		case now := <-frameC:
			frameC = nil
			l.runFrames(now)
		}
	}
}

// drain runs queued tasks, including ones posted while draining.
func (l *Loop) drain() {
	for {
		l.mu.Lock()
		if len(l.tasks) == 0 {
			l.mu.Unlock()
			return
		}
		batch := l.tasks
		l.tasks = nil
		l.mu.Unlock()

		for _, fn := range batch {
			l.execute(fn)
		}
	}
}

func (l *Loop) runFrames(now time.Time) {
	l.mu.Lock()
	batch := l.frames
	l.frames = nil
	l.mu.Unlock()

	for _, fn := range batch {
		l.execute(func() { fn(now) })
	}
}

// execute runs one task with panic recovery.
func (l *Loop) execute(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			l.logger.Error("host task panic",
				"panic", r,
				"stack", string(debug.Stack()))
		}
	}()
	fn()
}

// Do runs fn on the loop and waits for it to return. It fails with
// ErrStopped when the loop is no longer running.
func (l *Loop) Do(ctx context.Context, fn func()) error {
	if l.Stopped() {
		return ErrStopped
	}
	done := make(chan struct{})
	l.Post(func() {
		defer close(done)
		fn()
	})
	select {
	case <-done:
		return nil
	case <-l.stopped:
		select {
		case <-done:
			return nil
		default:
			return ErrStopped
		}
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stopped reports whether Run has returned.
func (l *Loop) Stopped() bool {
	select {
	case <-l.stopped:
		return true
	default:
		return false
	}
}

// PendingFrames returns the number of callbacks waiting for the next frame.
func (l *Loop) PendingFrames() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.frames)
}
