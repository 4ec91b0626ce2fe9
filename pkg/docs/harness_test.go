package docs

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vango-dev/ripple/internal/errors"
	"github.com/vango-dev/ripple/pkg/anim"
	"github.com/vango-dev/ripple/pkg/dom"
	"github.com/vango-dev/ripple/pkg/metrics"
	"github.com/vango-dev/ripple/pkg/render"
	"github.com/vango-dev/ripple/pkg/sched"
)

type harness struct {
	st      *sched.Stepper
	rt      *Runtime
	root    *dom.Node
	metrics *metrics.Metrics
	logs    *bytes.Buffer
	warned  []string
}

func newHarness(t *testing.T, animations bool) *harness {
	t.Helper()
	h := &harness{
		st:      sched.NewStepper(),
		root:    dom.NewElement("div"),
		metrics: metrics.New(),
		logs:    &bytes.Buffer{},
	}
	h.st.FrameInterval = 25 * time.Millisecond
	logger := slog.New(slog.NewTextHandler(h.logs, nil))
	w := errors.NewWarner(logger, errors.WarnerConfig{
		OnWarn: func(code string) { h.warned = append(h.warned, code) },
	})
	h.rt = NewRuntime(sched.New(h.st, sched.WithLogger(logger)),
		WithAnimations(animations),
		WithLogger(logger),
		WithMetrics(h.metrics),
		WithWarner(w),
		WithRuntimeID("test"),
	)
	return h
}

func (h *harness) flush() { h.st.Flush() }

func (h *harness) html() string { return render.InnerHTML(h.root) }

func (h *harness) run(d Doc) *RunState {
	st := h.rt.Run(h.root, d)
	h.flush()
	return st
}

// metricValue sums a gathered counter or gauge family, optionally
// restricted to series carrying the given label pair.
func (h *harness) metricValue(t *testing.T, name string, label ...string) float64 {
	t.Helper()
	fams, err := h.metrics.Gatherer().Gather()
	require.NoError(t, err)
	var sum float64
	for _, f := range fams {
		if f.GetName() != name {
			continue
		}
	series:
		for _, m := range f.GetMetric() {
			if len(label) == 2 {
				for _, lp := range m.GetLabel() {
					if lp.GetName() == label[0] && lp.GetValue() != label[1] {
						continue series
					}
				}
			}
			sum += m.GetCounter().GetValue() + m.GetGauge().GetValue()
		}
	}
	return sum
}

func linearTrans() anim.Trans[float64] {
	lin := func(x, y float64) anim.Anim[float64] {
		return anim.Simple[float64](anim.Float64{}, anim.Linear, 100*time.Millisecond, x, y)
	}
	return anim.CreateTrans(lin,
		func(x float64) anim.Anim[float64] { return lin(0, x) },
		func(x float64) anim.Anim[float64] { return lin(x, 0) },
	)
}
