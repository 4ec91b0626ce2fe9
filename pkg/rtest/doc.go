// Package rtest provides helpers for testing ripple documents.
//
// A Harness wires a deterministic Stepper host, a Scheduler and a docs
// Runtime around a detached root element, so tests can run a document,
// fire events and assert on the rendered HTML without a real loop:
//
//	func TestCounter(t *testing.T) {
//	    h := rtest.New(t)
//	    n := reactive.NewVar(0)
//	    h.Run(Counter(n))
//	    h.Click("button")
//	    h.ExpectHTML(`<p>1</p><button>+1</button>`)
//	}
//
// A Recorder collects every value a View takes:
//
//	rec := rtest.Record(h.Scheduler, view)
//	h.Flush()
//	assert.Equal(t, []int{0, 10}, rec.Values())
package rtest
