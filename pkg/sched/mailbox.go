package sched

type mailboxState uint8

const (
	mailboxIdle mailboxState = iota
	mailboxRunning
	mailboxPending
)

// StartProcessor returns a trigger for work. Triggering while idle forks
// work on s. Triggering while it runs records one rerun; further triggers
// before that rerun starts are merged into it. work must call done exactly
// once when it has finished, possibly from a later task or frame.
func StartProcessor(s *Scheduler, work func(done func())) func() {
	state := mailboxIdle

	var start func()
	finish := func() {
		if state == mailboxPending {
			state = mailboxRunning
			s.Fork(start)
			return
		}
		state = mailboxIdle
	}
	start = func() {
		finished := false
		done := func() {
			if finished {
				return
			}
			finished = true
			finish()
		}
		defer func() {
			if r := recover(); r != nil {
				s.reportPanic(r)
				done()
			}
		}()
		work(done)
	}

	return func() {
		switch state {
		case mailboxIdle:
			state = mailboxRunning
			s.Fork(start)
		case mailboxRunning:
			state = mailboxPending
		case mailboxPending:
			s.metrics.Coalesced()
		}
	}
}
