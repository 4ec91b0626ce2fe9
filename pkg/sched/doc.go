// Package sched drives the reactive graph and the reconciler from a single
// host goroutine.
//
// # Host
//
// A Host runs callbacks one at a time. Post queues a task for after the
// current one; RequestFrame queues a callback for the next animation frame.
// Two hosts are provided:
//
//   - Loop, a worker goroutine with an unbounded task queue and a frame
//     timer, for real programs.
//   - Stepper, a manual host with a fake clock, for tests.
//
// All graph and DOM state belongs to the host goroutine. Other goroutines
// hand work over with Post, or with Loop.Do when they need to wait.
//
// # Scheduler
//
// The Scheduler is a time-sliced FIFO of actions. A tick drains the queue
// until it is empty or the budget runs out, then posts itself back to the
// host so input and frames get a chance to run in between:
//
//	s := sched.New(loop, sched.WithBudget(40*time.Millisecond))
//	s.Fork(func() { ... })
//
// # Mailbox
//
// StartProcessor wraps a continuation-style job so that any number of
// requests made while it runs collapse into a single rerun.
package sched
