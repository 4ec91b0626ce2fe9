package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("counter Write() error: %v", err)
	}
	return m.GetCounter().GetValue()
}

func gaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	var m dto.Metric
	if err := g.Write(&m); err != nil {
		t.Fatalf("gauge Write() error: %v", err)
	}
	return m.GetGauge().GetValue()
}

func histogramCount(t *testing.T, h prometheus.Histogram) uint64 {
	t.Helper()
	var m dto.Metric
	if err := h.Write(&m); err != nil {
		t.Fatalf("histogram Write() error: %v", err)
	}
	return m.GetHistogram().GetSampleCount()
}

func TestMetrics_Scheduler(t *testing.T) {
	m := New()
	m.TaskRun()
	m.TaskRun()
	m.TaskPanic()
	m.Tick(5*time.Millisecond, false)
	m.Tick(50*time.Millisecond, true)

	if got := counterValue(t, m.tasksRun); got != 2 {
		t.Errorf("tasks=%v, want 2", got)
	}
	if got := counterValue(t, m.taskPanics); got != 1 {
		t.Errorf("panics=%v, want 1", got)
	}
	if got := counterValue(t, m.ticks); got != 2 {
		t.Errorf("ticks=%v, want 2", got)
	}
	if got := counterValue(t, m.yields); got != 1 {
		t.Errorf("yields=%v, want 1", got)
	}
	if got := histogramCount(t, m.tickDuration); got != 2 {
		t.Errorf("tick samples=%v, want 2", got)
	}
}

func TestMetrics_Passes(t *testing.T) {
	m := New()
	m.Pass(time.Millisecond, nil)
	m.Pass(time.Millisecond, errors.New("boom"))
	m.Pass(time.Millisecond, nil)

	if got := counterValue(t, m.passes.WithLabelValues("success")); got != 2 {
		t.Errorf("success=%v, want 2", got)
	}
	if got := counterValue(t, m.passes.WithLabelValues("error")); got != 1 {
		t.Errorf("error=%v, want 1", got)
	}
}

func TestMetrics_DOMAndWarnings(t *testing.T) {
	m := New()
	m.DOMInsert()
	m.DOMInsert()
	m.DOMRemove()
	m.AnimationFrame()
	m.Warning("W001")
	m.Warning("W001")
	m.Warning("W004")
	m.RunAttached(1)
	m.RunAttached(1)
	m.RunAttached(-1)
	m.Coalesced()

	if got := counterValue(t, m.domInserts); got != 2 {
		t.Errorf("inserts=%v, want 2", got)
	}
	if got := counterValue(t, m.domRemoves); got != 1 {
		t.Errorf("removes=%v, want 1", got)
	}
	if got := counterValue(t, m.warnings.WithLabelValues("W001")); got != 2 {
		t.Errorf("W001=%v, want 2", got)
	}
	if got := gaugeValue(t, m.activeRuns); got != 1 {
		t.Errorf("active runs=%v, want 1", got)
	}
	if got := counterValue(t, m.coalesced); got != 1 {
		t.Errorf("coalesced=%v, want 1", got)
	}
}

func TestMetrics_NilIsSafe(t *testing.T) {
	var m *Metrics
	m.TaskRun()
	m.TaskPanic()
	m.Tick(time.Millisecond, true)
	m.Pass(time.Millisecond, nil)
	m.DOMInsert()
	m.DOMRemove()
	m.AnimationFrame()
	m.Warning("W001")
	m.RunAttached(1)
	m.Coalesced()
	if m.Gatherer() == nil {
		t.Fatal("Gatherer() on nil metrics must not be nil")
	}
}

func TestMetrics_Namespace(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(WithRegistry(reg), WithNamespace("app"), WithConstLabels(prometheus.Labels{"env": "test"}))
	m.TaskRun()

	families, err := m.Gatherer().Gather()
	if err != nil {
		t.Fatalf("Gather() error: %v", err)
	}
	found := false
	for _, f := range families {
		if f.GetName() == "app_scheduler_tasks_total" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected app_scheduler_tasks_total to be registered")
	}

	// Two runtimes sharing one process must not collide.
	New()
	New()
}

func TestMetrics_Total(t *testing.T) {
	m := New()
	m.Warning("W001")
	m.Warning("W001")
	m.Warning("W004")
	m.Pass(time.Millisecond, nil)

	if got := m.Total("ripple_warnings_total"); got != 3 {
		t.Errorf("Total(warnings) = %v, want 3", got)
	}
	if got := m.Total("ripple_reconcile_passes_total"); got != 1 {
		t.Errorf("Total(passes) = %v, want 1", got)
	}
	if got := m.Total("ripple_unknown"); got != 0 {
		t.Errorf("Total(unknown) = %v, want 0", got)
	}

	var nilMetrics *Metrics
	if got := nilMetrics.Total("ripple_warnings_total"); got != 0 {
		t.Errorf("nil Total() = %v, want 0", got)
	}
}
