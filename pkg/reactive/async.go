package reactive

import (
	"context"

	"github.com/vango-dev/ripple/internal/errors"
	"github.com/vango-dev/ripple/pkg/sched"
	"github.com/vango-dev/ripple/pkg/snap"
)

// MapAsync runs fn on its own goroutine for every value of v. The result
// is delivered back on host, so the graph is only touched from the host
// goroutine. The context passed to fn is cancelled as soon as the result
// is no longer wanted, that is when v changes again.
func MapAsync[A, B any](host sched.Host, v View[A], fn func(context.Context, A) (B, error)) View[B] {
	return CreateLazy(func() *snap.Snap[B] {
		src := v.Snap()
		res := snap.NewPending[B]()
		src.When(func(a A) {
			ctx, cancel := context.WithCancel(context.Background())
			res.WhenObsoleteRun(cancel)
			go func() {
				b, err := fn(ctx, a)
				host.Post(func() {
					cancel()
					if err != nil {
						res.MarkFailed(errors.New("E103").Wrap(err))
						return
					}
					res.MarkReady(b)
				})
			}()
		}, res.MarkFailed, res)
		return res
	})
}
